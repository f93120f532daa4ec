package service

import (
	"context"
	"encoding/json"
	"fmt"
	"log/slog"
	"strconv"
	"time"

	"github.com/iyhunko/storefront-search/internal/metrics"
	"github.com/iyhunko/storefront-search/internal/model"
	"github.com/iyhunko/storefront-search/internal/repository"
	"github.com/iyhunko/storefront-search/internal/sqs"
)

const outboxBatchSize = 100

// CheckoutPublisher sends checkout notifications downstream.
type CheckoutPublisher interface {
	PublishCheckoutMessage(ctx context.Context, msg sqs.CheckoutMessage) error
}

// OutboxWorker polls the events table and publishes pending checkout events
type OutboxWorker struct {
	events    repository.EventRepository
	publisher CheckoutPublisher
	interval  time.Duration
	stopChan  chan struct{}
}

// NewOutboxWorker creates a new OutboxWorker
func NewOutboxWorker(events repository.EventRepository, publisher CheckoutPublisher, interval time.Duration) *OutboxWorker {
	return &OutboxWorker{
		events:    events,
		publisher: publisher,
		interval:  interval,
		stopChan:  make(chan struct{}),
	}
}

// Start begins processing events from the outbox
func (w *OutboxWorker) Start(ctx context.Context) {
	ticker := time.NewTicker(w.interval)
	defer ticker.Stop()

	slog.Info("Outbox worker started", slog.Duration("interval", w.interval))

	for {
		select {
		case <-ctx.Done():
			slog.Info("Outbox worker stopped by context")
			return
		case <-w.stopChan:
			slog.Info("Outbox worker stopped")
			return
		case <-ticker.C:
			w.ProcessEvents(ctx)
		}
	}
}

// Stop stops the outbox worker
func (w *OutboxWorker) Stop() {
	close(w.stopChan)
}

// ProcessEvents publishes one batch of pending events and marks each of them
// processed or failed.
func (w *OutboxWorker) ProcessEvents(ctx context.Context) {
	query := repository.NewQuery().With(repository.StatusField, string(model.EventStatusPending))
	query.Limit = outboxBatchSize
	resources, err := w.events.List(ctx, *query)
	if err != nil {
		slog.Error("Failed to retrieve pending events", slog.Any("err", err))
		return
	}

	if len(resources) == 0 {
		return
	}

	slog.Info("Processing pending events", slog.Int("count", len(resources)))

	for _, resource := range resources {
		event, ok := resource.(*model.Event)
		if !ok {
			slog.Error("Invalid event type in outbox")
			continue
		}

		status := model.EventStatusProcessed
		if err := w.processEvent(ctx, event); err != nil {
			slog.Error("Failed to process event",
				slog.String("event_id", event.ID.String()),
				slog.String("event_type", event.EventType),
				slog.Any("err", err))
			status = model.EventStatusFailed
		}
		metrics.OutboxEventsPublished.WithLabelValues(string(status)).Inc()

		if err := w.events.UpdateStatus(ctx, event.ID, status); err != nil {
			slog.Error("Failed to update event status",
				slog.String("event_id", event.ID.String()),
				slog.String("status", string(status)),
				slog.Any("err", err))
			continue
		}
		slog.Info("Event handled",
			slog.String("event_id", event.ID.String()),
			slog.String("event_type", event.EventType),
			slog.String("status", string(status)))
	}
}

// processEvent publishes a single checkout event
func (w *OutboxWorker) processEvent(ctx context.Context, event *model.Event) error {
	if event.EventType != model.EventTypeCheckoutCompleted {
		return fmt.Errorf("unsupported event type %s", strconv.Quote(event.EventType))
	}

	var msg sqs.CheckoutMessage
	if err := json.Unmarshal(event.EventData, &msg); err != nil {
		return fmt.Errorf("failed to decode event data: %w", err)
	}

	return w.publisher.PublishCheckoutMessage(ctx, msg)
}
