package handler

import (
	"trailerhub/internal/middleware"
	"trailerhub/internal/session"
	"trailerhub/internal/store"

	"github.com/gin-gonic/gin"
)

type Handler struct {
	store      *store.Store
	sessions   session.Store
	codec      session.Codec
	cookieOpts session.CookieOptions
}

func New(st *store.Store, sessions session.Store, codec session.Codec, cookieOpts session.CookieOptions) *Handler {
	return &Handler{
		store:      st,
		sessions:   sessions,
		codec:      codec,
		cookieOpts: cookieOpts,
	}
}

func (h *Handler) RegisterRoutes(r *gin.Engine) {
	r.GET("/home", h.Home)
	r.GET("/signup", h.SignupForm)
	r.POST("/signup", h.Signup)
	r.GET("/login", h.LoginForm)
	r.POST("/login", h.Login)
	r.POST("/logout", h.Logout)

	api := r.Group("/api")
	api.GET("/featured-trailer", h.FeaturedTrailer)
	api.GET("/reviews/:trailerId", h.ListReviews)
	api.POST("/reviews", middleware.RequireAuth(), h.AddReview)
}
