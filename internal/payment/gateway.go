// Package payment builds mock checkout sessions. No request ever leaves the process.
package payment

import (
	"errors"
	"fmt"
	"strconv"
	"strings"

	"github.com/iyhunko/storefront-search/internal/config"
	"github.com/iyhunko/storefront-search/internal/model"
	"github.com/shopspring/decimal"
	"github.com/stripe/stripe-go/v74"
)

var (
	// ErrInitialization is returned for card payments when no publishable key is configured.
	ErrInitialization = errors.New("payment provider failed to initialize")
	// ErrUnsupportedMethod is returned for payment methods other than card, upi and cod.
	ErrUnsupportedMethod = errors.New("unsupported payment method")
	// ErrEmptyCart is returned when checking out an empty cart.
	ErrEmptyCart = errors.New("cart is empty")
)

var minorUnits = decimal.NewFromInt(100)

// Session is a created checkout session. StripeParams is only set for card payments.
type Session struct {
	model.CheckoutSession
	StripeParams *stripe.CheckoutSessionParams
}

// Gateway creates checkout sessions.
type Gateway struct {
	publishableKey string
	currency       string
}

// NewGateway creates a gateway from the payment configuration.
func NewGateway(conf config.Payment) *Gateway {
	return &Gateway{
		publishableKey: conf.PublishableKey,
		currency:       strings.ToLower(conf.Currency),
	}
}

// ParseMethod validates a payment method name.
func ParseMethod(s string) (model.PaymentMethod, error) {
	switch m := model.PaymentMethod(strings.ToLower(strings.TrimSpace(s))); m {
	case model.PaymentMethodCard, model.PaymentMethodUPI, model.PaymentMethodCOD:
		return m, nil
	}
	return "", fmt.Errorf("%w: %q", ErrUnsupportedMethod, s)
}

// CreateSession prices every cart line in minor units and returns the session.
// Zero-quantity lines are left out; a cart without any other line is empty.
// Card sessions also carry the provider checkout parameters.
func (g *Gateway) CreateSession(cart model.Cart, method model.PaymentMethod) (*Session, error) {
	if _, err := ParseMethod(string(method)); err != nil {
		return nil, err
	}
	cart = cart.Payable()
	if cart.IsEmpty() {
		return nil, ErrEmptyCart
	}
	if method == model.PaymentMethodCard && g.publishableKey == "" {
		return nil, ErrInitialization
	}

	lines := make([]model.CheckoutLine, 0, len(cart.Items))
	for _, item := range cart.Items {
		lines = append(lines, model.CheckoutLine{
			ProductID:  item.ID,
			Name:       item.Name,
			Image:      item.Image,
			UnitAmount: UnitAmount(item.Price),
			Quantity:   int64(item.Quantity),
		})
	}

	session := &Session{
		CheckoutSession: model.CheckoutSession{
			PaymentMethod: method,
			Currency:      g.currency,
			Lines:         lines,
			Total:         cart.Total(),
		},
	}
	session.InitMeta()

	if method == model.PaymentMethodCard {
		session.StripeParams = g.stripeParams(session)
	}
	return session, nil
}

func (g *Gateway) stripeParams(session *Session) *stripe.CheckoutSessionParams {
	params := &stripe.CheckoutSessionParams{
		Mode:               stripe.String(string(stripe.CheckoutSessionModePayment)),
		PaymentMethodTypes: stripe.StringSlice([]string{"card"}),
		ClientReferenceID:  stripe.String(session.ID.String()),
	}
	for _, line := range session.Lines {
		productData := &stripe.CheckoutSessionLineItemPriceDataProductDataParams{
			Name: stripe.String(line.Name),
		}
		if line.Image != "" {
			productData.Images = stripe.StringSlice([]string{line.Image})
		}
		params.LineItems = append(params.LineItems, &stripe.CheckoutSessionLineItemParams{
			PriceData: &stripe.CheckoutSessionLineItemPriceDataParams{
				Currency:    stripe.String(g.currency),
				ProductData: productData,
				UnitAmount:  stripe.Int64(line.UnitAmount),
			},
			Quantity: stripe.Int64(line.Quantity),
		})
	}
	params.AddMetadata("session_id", session.ID.String())
	params.AddMetadata("items", strconv.Itoa(len(session.Lines)))
	return params
}

// UnitAmount converts a price to minor units, rounding half away from zero.
func UnitAmount(price float64) int64 {
	return decimal.NewFromFloat(price).Mul(minorUnits).Round(0).IntPart()
}
