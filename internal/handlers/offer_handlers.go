package handlers

import (
	"encoding/json"
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/menzofashion/menzo/internal/models"
	"github.com/menzofashion/menzo/internal/store"
	"go.uber.org/zap"
)

func (h *Handlers) GetAllOffers(c *gin.Context) {
	offers, err := h.Store.ListOffers(c.Request.Context())
	if err != nil {
		h.Log.Error("list offers failed", zap.Error(err))
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Database error"})
		return
	}
	if offers == nil {
		offers = []models.Offer{}
	}
	c.JSON(http.StatusOK, offers)
}

// createOfferInput lets Active default to true when the field is absent.
type createOfferInput struct {
	Title        string  `json:"title" binding:"required"`
	Subtitle     string  `json:"subtitle"`
	Image        string  `json:"image"`
	CTA          string  `json:"cta"`
	ProductID    string  `json:"productId"`
	CategorySlug string  `json:"categorySlug"`
	Discount     float64 `json:"discount"`
	Active       *bool   `json:"active"`
}

func (h *Handlers) CreateOffer(c *gin.Context) {
	var input createOfferInput
	if err := c.ShouldBindJSON(&input); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	o := models.Offer{
		Title:        input.Title,
		Subtitle:     input.Subtitle,
		Image:        input.Image,
		CTA:          input.CTA,
		ProductID:    input.ProductID,
		CategorySlug: input.CategorySlug,
		Discount:     input.Discount,
		Active:       true,
	}
	if input.Active != nil {
		o.Active = *input.Active
	}

	if err := h.Store.CreateOffer(c.Request.Context(), &o); err != nil {
		h.Log.Error("create offer failed", zap.Error(err))
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to create offer"})
		return
	}
	c.JSON(http.StatusCreated, o)
}

func (h *Handlers) UpdateOffer(c *gin.Context) {
	raw, err := c.GetRawData()
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}
	var patch models.OfferPatch
	if err := json.Unmarshal(raw, &patch); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	o, err := h.Store.PatchOffer(c.Request.Context(), c.Param("id"), patch)
	if err != nil {
		if errors.Is(err, store.ErrNotFound) {
			c.JSON(http.StatusNotFound, gin.H{"message": "Offer not found"})
			return
		}
		h.Log.Error("patch offer failed", zap.Error(err))
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to update offer"})
		return
	}
	c.JSON(http.StatusOK, o)
}

func (h *Handlers) DeleteOffer(c *gin.Context) {
	if err := h.Store.DeleteOffer(c.Request.Context(), c.Param("id")); err != nil {
		if errors.Is(err, store.ErrNotFound) {
			c.JSON(http.StatusNotFound, gin.H{"message": "Offer not found"})
			return
		}
		h.Log.Error("delete offer failed", zap.Error(err))
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to delete offer"})
		return
	}
	c.JSON(http.StatusOK, gin.H{})
}
