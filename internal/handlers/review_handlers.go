package handlers

import (
	"errors"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/menzofashion/menzo/internal/models"
	"github.com/menzofashion/menzo/internal/store"
	"go.uber.org/zap"
)

func (h *Handlers) GetAllReviews(c *gin.Context) {
	reviews, err := h.Store.ListReviews(c.Request.Context())
	if err != nil {
		h.Log.Error("list reviews failed", zap.Error(err))
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Database error"})
		return
	}
	if reviews == nil {
		reviews = []models.Review{}
	}
	c.JSON(http.StatusOK, reviews)
}

// CreateReview stores a review. The server assigns the id and the date
// (date-only precision); ownership of the review is whatever userId the
// caller claims, there is no server-side identity check.
func (h *Handlers) CreateReview(c *gin.Context) {
	var r models.Review
	if err := c.ShouldBindJSON(&r); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}
	if r.ProductID == "" {
		c.JSON(http.StatusBadRequest, gin.H{"message": "Review productId is required"})
		return
	}
	if r.Rating < 1 || r.Rating > 5 {
		c.JSON(http.StatusBadRequest, gin.H{"message": "Rating must be between 1 and 5"})
		return
	}

	r.ID = ""
	r.Date = time.Now().UTC().Format("2006-01-02")

	if err := h.Store.CreateReview(c.Request.Context(), &r); err != nil {
		h.Log.Error("create review failed", zap.Error(err))
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to create review"})
		return
	}
	c.JSON(http.StatusCreated, r)
}

// PutReview replaces the full review record. This is the write path for
// helpful-increments; concurrent increments race and the last write wins.
func (h *Handlers) PutReview(c *gin.Context) {
	var r models.Review
	if err := c.ShouldBindJSON(&r); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}
	r.ID = c.Param("id")

	if err := h.Store.PutReview(c.Request.Context(), &r); err != nil {
		if errors.Is(err, store.ErrNotFound) {
			c.JSON(http.StatusNotFound, gin.H{"message": "Review not found"})
			return
		}
		h.Log.Error("put review failed", zap.Error(err))
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to update review"})
		return
	}
	c.JSON(http.StatusOK, r)
}

// DeleteReview is caller-trusted: author-only deletion is enforced at the
// storefront layer, not here.
func (h *Handlers) DeleteReview(c *gin.Context) {
	if err := h.Store.DeleteReview(c.Request.Context(), c.Param("id")); err != nil {
		if errors.Is(err, store.ErrNotFound) {
			c.JSON(http.StatusNotFound, gin.H{"message": "Review not found"})
			return
		}
		h.Log.Error("delete review failed", zap.Error(err))
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to delete review"})
		return
	}
	c.JSON(http.StatusOK, gin.H{})
}
