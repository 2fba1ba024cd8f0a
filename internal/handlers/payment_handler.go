package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"
)

type paymentIntentRequest struct {
	Price float64 `json:"price" binding:"required,gt=0"`
}

type paymentIntentResponse struct {
	ClientSecret string `json:"clientSecret"`
}

func (h *Handler) CreatePaymentIntent(c *gin.Context) {
	var req paymentIntentRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		badRequest(c, err)
		return
	}

	secret, err := h.Payments.CreateIntent(c.Request.Context(), req.Price)
	if err != nil {
		h.fail(c, "create payment intent", err)
		return
	}
	c.JSON(http.StatusOK, paymentIntentResponse{ClientSecret: secret})
}
