package app

import (
	"context"

	"trailerhub/internal/config"
	"trailerhub/internal/handler"
	"trailerhub/internal/middleware"
	"trailerhub/internal/session"
	"trailerhub/internal/store"

	"github.com/gin-gonic/gin"
)

func setupHTTP(ctx context.Context, cfg config.Config) (*gin.Engine, func() error, error) {
	infra, err := setupInfra(ctx, cfg)
	if err != nil {
		return nil, nil, err
	}

	codec := session.NewCodec(cfg.SessionSecret)
	cookieOpts := session.CookieOptions{} // non-Secure: plaintext transport assumed
	st := store.New(infra.DB)

	h := handler.New(st, infra.Sessions, codec, cookieOpts)

	router := gin.New()
	router.Use(gin.Recovery())
	router.Use(middleware.RequestID())
	router.Use(middleware.LoadSession(infra.Sessions, codec))

	router.LoadHTMLGlob("templates/*.html")
	router.Static("/public", "./public")

	router.GET("/health", func(c *gin.Context) {
		c.JSON(200, gin.H{"status": "ok"})
	})

	h.RegisterRoutes(router)

	return router, func() error {
		return infra.DB.Close()
	}, nil
}
