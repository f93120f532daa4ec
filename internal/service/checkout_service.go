package service

import (
	"context"
	"errors"
	"fmt"
	"log/slog"

	"github.com/iyhunko/storefront-search/internal/metrics"
	"github.com/iyhunko/storefront-search/internal/model"
	"github.com/iyhunko/storefront-search/internal/payment"
	"github.com/iyhunko/storefront-search/internal/repository"
	reposql "github.com/iyhunko/storefront-search/internal/repository/sql"
	"github.com/iyhunko/storefront-search/internal/sqs"
)

// CheckoutRecorder stores the checkout event and clears the cart.
type CheckoutRecorder interface {
	RecordCheckout(ctx context.Context, event *model.Event) error
}

// SequentialCheckoutRecorder records checkouts when the cart lives outside the
// events database: the event is written first, then the cart is deleted.
type SequentialCheckoutRecorder struct {
	events repository.Repository
	state  repository.StateRepository
}

func NewSequentialCheckoutRecorder(events repository.Repository, state repository.StateRepository) *SequentialCheckoutRecorder {
	return &SequentialCheckoutRecorder{events: events, state: state}
}

func (r *SequentialCheckoutRecorder) RecordCheckout(ctx context.Context, event *model.Event) error {
	if _, err := r.events.Create(ctx, event); err != nil {
		return fmt.Errorf("failed to create event: %w", err)
	}
	if err := r.state.Delete(ctx, repository.CartKey); err != nil {
		return fmt.Errorf("failed to clear cart: %w", err)
	}
	return nil
}

// CheckoutService turns the cart into a mock payment session.
type CheckoutService struct {
	store    *StoreService
	gateway  *payment.Gateway
	recorder CheckoutRecorder
}

func NewCheckoutService(store *StoreService, gateway *payment.Gateway, recorder CheckoutRecorder) *CheckoutService {
	return &CheckoutService{
		store:    store,
		gateway:  gateway,
		recorder: recorder,
	}
}

// Checkout creates a payment session for the current cart, then records the
// checkout event and clears the cart.
func (cs *CheckoutService) Checkout(ctx context.Context, method model.PaymentMethod) (*payment.Session, error) {
	var session *payment.Session
	err := cs.store.WithCart(ctx, func(cart model.Cart) error {
		var err error
		session, err = cs.gateway.CreateSession(cart, method)
		if err != nil {
			return err
		}

		event, err := reposql.CreateEvent(model.EventTypeCheckoutCompleted, sqs.CheckoutMessage{
			Action:        sqs.ActionCheckout,
			SessionID:     session.ID.String(),
			PaymentMethod: string(session.PaymentMethod),
			Total:         session.Total.StringFixed(2),
			Currency:      session.Currency,
			Items:         cart.Count(),
		})
		if err != nil {
			return err
		}
		return cs.recorder.RecordCheckout(ctx, event)
	})
	if err != nil {
		metrics.CheckoutsTotal.WithLabelValues(string(method), "failure").Inc()
		slog.Error("checkout failed", slog.String("payment_method", string(method)), slog.Any("err", err))
		return nil, fmt.Errorf("checkout: %w", err)
	}

	metrics.CheckoutsTotal.WithLabelValues(string(method), "success").Inc()
	slog.Info("checkout completed",
		slog.String("session_id", session.ID.String()),
		slog.String("payment_method", string(method)),
		slog.String("total", payment.FormatAmount(session.Total)))
	return session, nil
}

// IsPaymentError reports whether err is a payment failure the client caused.
func IsPaymentError(err error) bool {
	return errors.Is(err, payment.ErrEmptyCart) ||
		errors.Is(err, payment.ErrUnsupportedMethod) ||
		errors.Is(err, payment.ErrInitialization)
}
