package handler

import (
	"context"
	"errors"
	"io"
	"net/http"

	"github.com/gin-gonic/gin"
)

// PaymentGateway creates a payment intent and returns its client secret.
type PaymentGateway interface {
	CreateIntent(ctx context.Context, price float64) (string, error)
}

// PaymentHandler bridges the checkout flow to the payment processor.
type PaymentHandler struct {
	Gateway PaymentGateway
}

func (h *PaymentHandler) RegisterRoutes(r *gin.Engine) {
	r.POST("/create-payment-intent", h.CreateIntent)
}

type intentRequest struct {
	Price float64 `json:"price"`
}

// POST /create-payment-intent — a missing or zero price returns an empty
// success body without calling the processor.
func (h *PaymentHandler) CreateIntent(c *gin.Context) {
	var req intentRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		// an empty body is an absent price, not a client error
		if !errors.Is(err, io.EOF) {
			c.JSON(http.StatusBadRequest, gin.H{"error": "invalid payload"})
			return
		}
	}

	if req.Price == 0 {
		c.Status(http.StatusOK)
		return
	}

	secret, err := h.Gateway.CreateIntent(c.Request.Context(), req.Price)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}
	c.JSON(http.StatusOK, gin.H{"clientSecret": secret})
}
