package usecase

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

var (
	webhookEventsCounter = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Namespace: "whatsapp_gateway",
			Name:      "webhook_events_total",
			Help:      "Webhook deliveries by outcome status and type (discard reason or intent).",
		},
		[]string{"status", "type"},
	)

	repliesSentCounter = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Namespace: "whatsapp_gateway",
			Name:      "replies_total",
			Help:      "Outbound replies by delivery result.",
		},
		[]string{"result"}, // delivered, failed
	)

	assistantRequestsCounter = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Namespace: "whatsapp_gateway",
			Name:      "assistant_requests_total",
			Help:      "AI assistant invocations by result.",
		},
		[]string{"result"}, // answered, empty, error, unavailable
	)

	senderBurstCounter = promauto.NewCounter(
		prometheus.CounterOpts{
			Namespace: "whatsapp_gateway",
			Name:      "sender_over_rate_limit_total",
			Help:      "Actionable messages from senders above the per-sender rate window. Observational only.",
		},
	)

	webhookProcessingDuration = promauto.NewHistogramVec(
		prometheus.HistogramOpts{
			Namespace: "whatsapp_gateway",
			Name:      "webhook_processing_duration_seconds",
			Help:      "Time spent processing a webhook delivery.",
			Buckets:   prometheus.DefBuckets,
		},
		[]string{"status"},
	)
)
