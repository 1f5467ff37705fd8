package handler

import (
	"net/http"

	"trailerhub/internal/auth"
	"trailerhub/internal/db"
	"trailerhub/internal/logger"
	"trailerhub/internal/middleware"
	"trailerhub/internal/session"

	"github.com/gin-gonic/gin"
)

func (h *Handler) Home(c *gin.Context) {
	var user *session.Session
	if sess, ok := middleware.SessionFromContext(c.Request.Context()); ok {
		user = sess
	}
	c.HTML(http.StatusOK, "home.html", gin.H{"user": user})
}

func (h *Handler) SignupForm(c *gin.Context) {
	c.HTML(http.StatusOK, "signup.html", nil)
}

func (h *Handler) LoginForm(c *gin.Context) {
	c.HTML(http.StatusOK, "login.html", nil)
}

type signupForm struct {
	Fullname string `form:"fullname" binding:"required"`
	Email    string `form:"email" binding:"required"`
	Password string `form:"password" binding:"required"`
}

func (h *Handler) Signup(c *gin.Context) {
	var form signupForm
	if err := c.ShouldBind(&form); err != nil {
		c.String(http.StatusBadRequest, "fullname, email and password are required.")
		return
	}

	hash, err := auth.HashPassword(form.Password)
	if err != nil {
		logger.Error("signup: hash password", map[string]any{"error": err.Error()})
		c.String(http.StatusInternalServerError, "An error occurred. Please try again later.")
		return
	}

	userID, err := h.store.CreateUser(c.Request.Context(), form.Fullname, form.Email, hash)
	if err != nil {
		if db.IsDuplicateEntry(err) {
			c.String(http.StatusBadRequest, "Email is already registered.")
			return
		}
		logger.Error("signup: create user", map[string]any{"error": err.Error()})
		c.String(http.StatusInternalServerError, "An error occurred. Please try again later.")
		return
	}

	logger.Info("user registered", map[string]any{"user_id": userID})
	c.Redirect(http.StatusFound, "/login")
}

type loginForm struct {
	Email    string `form:"email" binding:"required"`
	Password string `form:"password" binding:"required"`
}

func (h *Handler) Login(c *gin.Context) {
	var form loginForm
	if err := c.ShouldBind(&form); err != nil {
		c.String(http.StatusBadRequest, "Invalid email or password.")
		return
	}

	user, err := h.store.UserByEmail(c.Request.Context(), form.Email)
	if err != nil {
		if db.IsNotFound(err) {
			// Same message as a wrong password so the response does
			// not reveal whether the account exists.
			c.String(http.StatusBadRequest, "Invalid email or password.")
			return
		}
		logger.Error("login: lookup user", map[string]any{"error": err.Error()})
		c.String(http.StatusInternalServerError, "An error occurred. Please try again later.")
		return
	}

	if err := auth.VerifyPassword(user.Password, form.Password); err != nil {
		c.String(http.StatusBadRequest, "Invalid email or password.")
		return
	}

	sess, err := session.New(user.ID, user.Fullname, user.Email)
	if err != nil {
		logger.Error("login: create session", map[string]any{"error": err.Error()})
		c.String(http.StatusInternalServerError, "An error occurred. Please try again later.")
		return
	}

	if err := h.sessions.Create(c.Request.Context(), sess); err != nil {
		logger.Error("login: persist session", map[string]any{"error": err.Error()})
		c.String(http.StatusInternalServerError, "An error occurred. Please try again later.")
		return
	}

	session.SetCookie(c.Writer, h.codec.Encode(sess.ID), sess.ExpiresAt, h.cookieOpts)

	logger.Info("user logged in", map[string]any{"user_id": user.ID})
	c.Redirect(http.StatusFound, "/home")
}

// Logout destroys the current session. A store failure is soft: the
// cookie is left alone and the user is routed back home as if still
// logged in.
func (h *Handler) Logout(c *gin.Context) {
	cookie, err := c.Request.Cookie(session.CookieName)
	if err == nil && cookie.Value != "" {
		if id, ok := h.codec.Decode(cookie.Value); ok {
			if err := h.sessions.Delete(c.Request.Context(), id); err != nil {
				logger.Warn("logout: delete session", map[string]any{"error": err.Error()})
				c.Redirect(http.StatusFound, "/home")
				return
			}
		}
	}

	session.ClearCookie(c.Writer, h.cookieOpts)
	c.Redirect(http.StatusFound, "/login")
}
