package monitoring

import (
	"strconv"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

var (
	httpRequests = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "http_requests_total",
			Help: "Total HTTP requests by route and status",
		},
		[]string{"method", "path", "status"},
	)

	httpDuration = promauto.NewHistogramVec(
		prometheus.HistogramOpts{
			Name:    "http_request_duration_seconds",
			Help:    "HTTP request latency by route",
			Buckets: prometheus.DefBuckets,
		},
		[]string{"method", "path"},
	)

	ticketPurchases = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "ticket_purchases_total",
			Help: "Purchase attempts by outcome",
		},
		[]string{"outcome"},
	)

	ticketsSold = promauto.NewCounter(
		prometheus.CounterOpts{
			Name: "tickets_sold_total",
			Help: "Total ticket units sold",
		},
	)

	eventTransitions = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "event_lifecycle_transitions_total",
			Help: "Event lifecycle transitions applied",
		},
		[]string{"transition"},
	)
)

const (
	PurchaseCompleted    = "completed"
	PurchaseInsufficient = "insufficient_inventory"
	PurchaseRejected     = "rejected"
)

func ObserveRequest(method, path string, status int, duration time.Duration) {
	httpRequests.WithLabelValues(method, path, strconv.Itoa(status)).Inc()
	httpDuration.WithLabelValues(method, path).Observe(duration.Seconds())
}

func RecordPurchase(outcome string, quantity int) {
	ticketPurchases.WithLabelValues(outcome).Inc()
	if outcome == PurchaseCompleted {
		ticketsSold.Add(float64(quantity))
	}
}

func RecordTransition(transition string) {
	eventTransitions.WithLabelValues(transition).Inc()
}
