package metrics

import (
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

var (
	emailsSentTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "email_sent_total",
			Help: "Total number of emails sent successfully",
		},
		[]string{"type"},
	)

	emailsFailedTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "email_failed_total",
			Help: "Total number of failed email sends",
		},
		[]string{"type"},
	)

	emailSendDuration = promauto.NewHistogramVec(
		prometheus.HistogramOpts{
			Name:    "email_send_duration_seconds",
			Help:    "Email sending duration in seconds",
			Buckets: []float64{0.1, 0.5, 1, 2, 5, 10, 30},
		},
		[]string{"type"},
	)

	cleanupFailedTotal = promauto.NewCounter(
		prometheus.CounterOpts{
			Name: "resume_cleanup_failed_total",
			Help: "Total number of failed resume file deletions",
		},
	)
)

// RecordEmailSent records a successful email send of the given type
// ("admin" or "applicant").
func RecordEmailSent(emailType string, duration time.Duration) {
	emailsSentTotal.WithLabelValues(emailType).Inc()
	emailSendDuration.WithLabelValues(emailType).Observe(duration.Seconds())
}

// RecordEmailFailed records a failed email send.
func RecordEmailFailed(emailType string, duration time.Duration) {
	emailsFailedTotal.WithLabelValues(emailType).Inc()
	emailSendDuration.WithLabelValues(emailType).Observe(duration.Seconds())
}

// RecordCleanupFailed records a failed uploaded-file deletion.
func RecordCleanupFailed() {
	cleanupFailedTotal.Inc()
}
