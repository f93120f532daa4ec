package model

import (
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// PaymentMethod is the payment option chosen at checkout.
type PaymentMethod string

const (
	PaymentMethodCard PaymentMethod = "card"
	PaymentMethodUPI  PaymentMethod = "upi"
	PaymentMethodCOD  PaymentMethod = "cod"
)

// CheckoutLine is a single priced line of a checkout session.
type CheckoutLine struct {
	ProductID  int    `json:"product_id"`
	Name       string `json:"name"`
	Image      string `json:"image"`
	UnitAmount int64  `json:"unit_amount"` // minor units
	Quantity   int64  `json:"quantity"`
}

// CheckoutSession describes a mocked payment session.
type CheckoutSession struct {
	ID            uuid.UUID
	PaymentMethod PaymentMethod
	Currency      string
	Lines         []CheckoutLine
	Total         decimal.Decimal
	CreatedAt     time.Time
}

// InitMeta initializes the session id and creation time.
func (s *CheckoutSession) InitMeta() {
	s.ID = uuid.New()
	s.CreatedAt = time.Now()
}
