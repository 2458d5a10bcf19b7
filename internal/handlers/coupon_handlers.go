package handlers

import (
	"context"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/menzofashion/menzo/internal/models"
	"go.uber.org/zap"
)

func (h *Handlers) GetAllCoupons(c *gin.Context) {
	coupons, err := h.Store.ListCoupons(c.Request.Context())
	if err != nil {
		h.Log.Error("list coupons failed", zap.Error(err))
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Database error"})
		return
	}
	if coupons == nil {
		coupons = []models.Coupon{}
	}
	c.JSON(http.StatusOK, coupons)
}

// ProcessExpiredCoupons deactivates every coupon past its expiry date. Runs
// on a schedule from main.
func (h *Handlers) ProcessExpiredCoupons() {
	ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer cancel()

	n, err := h.Store.DeactivateExpiredCoupons(ctx, time.Now().UTC())
	if err != nil {
		h.Log.Error("coupon expiry sweep failed", zap.Error(err))
		return
	}
	if n > 0 {
		h.Log.Info("deactivated expired coupons", zap.Int("count", n))
	}
}
