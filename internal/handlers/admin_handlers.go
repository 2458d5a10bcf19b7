package handlers

import (
	"crypto/subtle"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/menzofashion/menzo/internal/auth"
	"go.uber.org/zap"
)

type adminLoginInput struct {
	Password string `json:"password" binding:"required"`
}

// AdminLogin checks the shared admin secret and issues a session token for
// the guarded order-management routes.
func (h *Handlers) AdminLogin(c *gin.Context) {
	var input adminLoginInput
	if err := c.ShouldBindJSON(&input); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"message": "Password is required"})
		return
	}

	if subtle.ConstantTimeCompare([]byte(input.Password), []byte(h.Cfg.Admin.Secret)) != 1 {
		c.JSON(http.StatusUnauthorized, gin.H{"message": "Incorrect password"})
		return
	}

	token, err := auth.GenerateAdminToken(h.Cfg.Admin.JWTSecret)
	if err != nil {
		h.Log.Error("admin token generation failed", zap.Error(err))
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to create session"})
		return
	}

	c.JSON(http.StatusOK, gin.H{"token": token})
}
