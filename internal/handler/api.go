package handler

import (
	"net/http"

	"trailerhub/internal/db"
	"trailerhub/internal/logger"
	"trailerhub/internal/middleware"

	"github.com/gin-gonic/gin"
)

func (h *Handler) FeaturedTrailer(c *gin.Context) {
	trailer, err := h.store.LatestTrailer(c.Request.Context())
	if err != nil {
		if db.IsNotFound(err) {
			c.JSON(http.StatusNotFound, gin.H{"error": "No trailers found"})
			return
		}
		logger.Error("fetch featured trailer", map[string]any{"error": err.Error()})
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to fetch trailer"})
		return
	}
	c.JSON(http.StatusOK, trailer)
}

func (h *Handler) ListReviews(c *gin.Context) {
	reviews, err := h.store.ReviewsByTrailer(c.Request.Context(), c.Param("trailerId"))
	if err != nil {
		logger.Error("fetch reviews", map[string]any{"error": err.Error()})
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to fetch reviews"})
		return
	}
	c.JSON(http.StatusOK, reviews)
}

type addReviewRequest struct {
	TrailerID string `json:"trailerId" binding:"required"`
	Review    string `json:"review" binding:"required"`
}

// AddReview inserts a review for the session's user. A trailer ID that
// fails the foreign key check is not distinguished from any other
// store failure; both come back as the generic 500.
func (h *Handler) AddReview(c *gin.Context) {
	sess, ok := middleware.SessionFromContext(c.Request.Context())
	if !ok {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "Must be logged in to post reviews"})
		return
	}

	var req addReviewRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "trailerId and review are required"})
		return
	}

	if err := h.store.CreateReview(c.Request.Context(), sess.UserID, req.TrailerID, req.Review); err != nil {
		logger.Error("add review", map[string]any{"error": err.Error(), "user_id": sess.UserID})
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to add review"})
		return
	}

	c.JSON(http.StatusOK, gin.H{"message": "Review added successfully"})
}
