package handlers

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/menzofashion/menzo/internal/models"
	"github.com/menzofashion/menzo/internal/store"
	"go.uber.org/zap"
)

func (h *Handlers) GetAllOrders(c *gin.Context) {
	orders, err := h.Store.ListOrders(c.Request.Context())
	if err != nil {
		h.Log.Error("list orders failed", zap.Error(err))
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Database error"})
		return
	}
	if orders == nil {
		orders = []models.Order{}
	}
	c.JSON(http.StatusOK, orders)
}

func (h *Handlers) GetOrder(c *gin.Context) {
	o, err := h.Store.GetOrder(c.Request.Context(), c.Param("id"))
	if err != nil {
		if errors.Is(err, store.ErrNotFound) {
			c.JSON(http.StatusNotFound, gin.H{"message": "Order not found"})
			return
		}
		h.Log.Error("get order failed", zap.Error(err))
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Database error"})
		return
	}
	c.JSON(http.StatusOK, o)
}

// CreateOrder accepts the order assembled at checkout. The client may supply
// its own id (ORD-<millis>); the store assigns one otherwise.
func (h *Handlers) CreateOrder(c *gin.Context) {
	var o models.Order
	if err := c.ShouldBindJSON(&o); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}
	if len(o.Items) == 0 {
		c.JSON(http.StatusBadRequest, gin.H{"message": "Order must contain at least one item"})
		return
	}
	if o.Status == "" {
		o.Status = models.OrderStatusPending
	}

	if err := h.Store.CreateOrder(c.Request.Context(), &o); err != nil {
		h.Log.Error("create order failed", zap.Error(err))
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to create order"})
		return
	}
	c.JSON(http.StatusCreated, o)
}

// UpdateOrderStatus moves an order to any status; transitions are
// deliberately unconstrained.
func (h *Handlers) UpdateOrderStatus(c *gin.Context) {
	var input models.OrderStatusInput
	if err := c.ShouldBindJSON(&input); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"message": "Status is required"})
		return
	}

	o, err := h.Store.UpdateOrderStatus(c.Request.Context(), c.Param("id"), input.Status)
	if err != nil {
		if errors.Is(err, store.ErrNotFound) {
			c.JSON(http.StatusNotFound, gin.H{"message": "Order not found"})
			return
		}
		h.Log.Error("update order status failed", zap.Error(err))
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to update order"})
		return
	}
	c.JSON(http.StatusOK, o)
}

func (h *Handlers) DeleteOrder(c *gin.Context) {
	if err := h.Store.DeleteOrder(c.Request.Context(), c.Param("id")); err != nil {
		if errors.Is(err, store.ErrNotFound) {
			c.JSON(http.StatusNotFound, gin.H{"message": "Order not found"})
			return
		}
		h.Log.Error("delete order failed", zap.Error(err))
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to delete order"})
		return
	}
	c.JSON(http.StatusOK, gin.H{})
}
