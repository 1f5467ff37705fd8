package middleware

import (
	"context"
	"net/http"
	"time"

	"trailerhub/internal/session"

	"github.com/gin-gonic/gin"
)

type sessionContextKey struct{}

// SessionFromContext returns the request's authenticated session, if
// LoadSession attached one.
func SessionFromContext(ctx context.Context) (*session.Session, bool) {
	s, ok := ctx.Value(sessionContextKey{}).(*session.Session)
	return s, ok
}

// LoadSession resolves the session cookie into a request-scoped
// identity. Requests without a valid, live session proceed anonymously;
// expired sessions are deleted from the store on sight.
func LoadSession(store session.Store, codec session.Codec) gin.HandlerFunc {
	return func(c *gin.Context) {
		cookie, err := c.Request.Cookie(session.CookieName)
		if err != nil || cookie.Value == "" {
			c.Next()
			return
		}

		id, ok := codec.Decode(cookie.Value)
		if !ok {
			c.Next()
			return
		}

		sess, err := store.Get(c.Request.Context(), id)
		if err != nil || sess == nil {
			c.Next()
			return
		}

		if sess.Expired(time.Now()) {
			_ = store.Delete(c.Request.Context(), id)
			c.Next()
			return
		}

		ctx := context.WithValue(c.Request.Context(), sessionContextKey{}, sess)
		c.Request = c.Request.WithContext(ctx)
		c.Next()
	}
}

// RequireAuth rejects requests that carry no authenticated session
// before any handler or store code runs.
func RequireAuth() gin.HandlerFunc {
	return func(c *gin.Context) {
		if _, ok := SessionFromContext(c.Request.Context()); !ok {
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{
				"error": "Must be logged in to post reviews",
			})
			return
		}
		c.Next()
	}
}
