package controller

import (
	"log/slog"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/iyhunko/storefront-search/internal/payment"
	"github.com/iyhunko/storefront-search/internal/service"
)

const paymentFailedMessage = "payment failed"

// CheckoutController handles HTTP requests for checkout.
type CheckoutController struct {
	checkoutService *service.CheckoutService
}

// NewCheckoutController creates a new CheckoutController with the given checkout service.
func NewCheckoutController(checkoutService *service.CheckoutService) *CheckoutController {
	return &CheckoutController{
		checkoutService: checkoutService,
	}
}

// CheckoutRequest represents the request body for a checkout.
type CheckoutRequest struct {
	PaymentMethod string `json:"payment_method" binding:"required"`
}

// CheckoutResponse describes the created payment session.
type CheckoutResponse struct {
	SessionID     string `json:"session_id"`
	PaymentMethod string `json:"payment_method"`
	Currency      string `json:"currency"`
	Total         string `json:"total"`
	DisplayTotal  string `json:"display_total"`
	Items         int    `json:"items"`
}

// Checkout pays for the cart with the requested method and clears it.
func (cc *CheckoutController) Checkout(c *gin.Context) {
	var req CheckoutRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	method, err := payment.ParseMethod(req.PaymentMethod)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	session, err := cc.checkoutService.Checkout(c.Request.Context(), method)
	if err != nil {
		if service.IsPaymentError(err) {
			slog.Warn("Payment rejected", slog.Any("err", err))
			c.JSON(http.StatusPaymentRequired, gin.H{"error": paymentFailedMessage})
			return
		}
		c.JSON(http.StatusInternalServerError, gin.H{"error": paymentFailedMessage})
		return
	}

	items := 0
	for _, line := range session.Lines {
		items += int(line.Quantity)
	}
	c.JSON(http.StatusCreated, CheckoutResponse{
		SessionID:     session.ID.String(),
		PaymentMethod: string(session.PaymentMethod),
		Currency:      session.Currency,
		Total:         session.Total.StringFixed(2),
		DisplayTotal:  payment.FormatAmount(session.Total),
		Items:         items,
	})
}
