package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

var (
	// SearchesTotal counts search queries by kind ("live" or "submitted").
	SearchesTotal = promauto.NewCounterVec(prometheus.CounterOpts{
		Name: "storefront_searches_total",
		Help: "The total number of search queries",
	}, []string{"kind"})

	// SearchResults observes how many products a search returned.
	SearchResults = promauto.NewHistogram(prometheus.HistogramOpts{
		Name:    "storefront_search_results",
		Help:    "Number of products returned per search",
		Buckets: []float64{0, 1, 5, 10, 25, 50, 100, 200},
	})

	// SearchDuration observes search latency in seconds.
	SearchDuration = promauto.NewHistogram(prometheus.HistogramOpts{
		Name:    "storefront_search_duration_seconds",
		Help:    "Time spent ranking one search query",
		Buckets: prometheus.DefBuckets,
	})

	// CartUpdates counts cart mutations by operation.
	CartUpdates = promauto.NewCounterVec(prometheus.CounterOpts{
		Name: "storefront_cart_updates_total",
		Help: "The total number of cart mutations",
	}, []string{"operation"})

	// WishlistUpdates counts wishlist mutations by operation.
	WishlistUpdates = promauto.NewCounterVec(prometheus.CounterOpts{
		Name: "storefront_wishlist_updates_total",
		Help: "The total number of wishlist mutations",
	}, []string{"operation"})

	// CheckoutsTotal counts checkout attempts by payment method and result.
	CheckoutsTotal = promauto.NewCounterVec(prometheus.CounterOpts{
		Name: "storefront_checkouts_total",
		Help: "The total number of checkout attempts",
	}, []string{"method", "result"})

	// OutboxEventsPublished counts outbox events by final status.
	OutboxEventsPublished = promauto.NewCounterVec(prometheus.CounterOpts{
		Name: "storefront_outbox_events_total",
		Help: "The total number of outbox events handled by the worker",
	}, []string{"status"})

	// CheckoutNotificationsReceived counts checkout messages consumed from SQS.
	CheckoutNotificationsReceived = promauto.NewCounter(prometheus.CounterOpts{
		Name: "storefront_checkout_notifications_received_total",
		Help: "The total number of checkout notifications received",
	})
)
