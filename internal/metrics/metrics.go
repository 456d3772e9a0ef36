package metrics

import (
	"net/http"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

var (
	EnrollmentsTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "academy_enrollments_total",
			Help: "Total number of enrollment runs by result",
		},
		[]string{"result"},
	)

	ReconcileTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "academy_reconcile_total",
			Help: "Total number of reconciliation runs by matching strategy",
		},
		[]string{"strategy"},
	)

	MailProcessedTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "academy_mail_processed_total",
			Help: "Total number of queued emails handed to the provider by outcome",
		},
		[]string{"outcome"},
	)

	MailWebhookEventsTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "academy_mail_webhook_events_total",
			Help: "Total number of provider webhook events by event and outcome",
		},
		[]string{"event", "outcome"},
	)

	MailSendDuration = promauto.NewHistogram(
		prometheus.HistogramOpts{
			Name: "academy_mail_send_duration_seconds",
			Help: "Duration of a single provider send call in seconds",
		},
	)
)

// Handler exposes the default registry.
func Handler() http.Handler {
	return promhttp.Handler()
}
