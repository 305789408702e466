package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

var (
	HTTPRequestsTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "gymdash_http_requests_total",
			Help: "Total number of HTTP requests",
		},
		[]string{"method", "path", "status"},
	)

	HTTPRequestDuration = promauto.NewHistogramVec(
		prometheus.HistogramOpts{
			Name:    "gymdash_http_request_duration_seconds",
			Help:    "HTTP request duration in seconds",
			Buckets: prometheus.DefBuckets,
		},
		[]string{"method", "path"},
	)

	UsersCreatedTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "gymdash_users_created_total",
			Help: "Total number of users created",
		},
		[]string{"role"},
	)

	LoginAttemptsTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "gymdash_login_attempts_total",
			Help: "Total number of dashboard login attempts",
		},
		[]string{"result"},
	)

	PaymentsTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "gymdash_payments_total",
			Help: "Total number of payments recorded",
		},
		[]string{"method", "status"},
	)

	CheckInsTotal = promauto.NewCounter(
		prometheus.CounterOpts{
			Name: "gymdash_checkins_total",
			Help: "Total number of member check-ins",
		},
	)

	PTSessionsTotal = promauto.NewCounter(
		prometheus.CounterOpts{
			Name: "gymdash_pt_sessions_total",
			Help: "Total number of personal training sessions consumed",
		},
	)

	ActivityLogEntriesTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "gymdash_activity_log_entries_total",
			Help: "Total number of activity log entries",
		},
		[]string{"action"},
	)

	PersistFailuresTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "gymdash_persist_failures_total",
			Help: "Total number of failed snapshot writes",
		},
		[]string{"store"},
	)

	EmailsQueuedTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "gymdash_emails_queued_total",
			Help: "Total number of emails pushed to the mail queue",
		},
		[]string{"type", "status"},
	)

	ActiveMembers = promauto.NewGauge(
		prometheus.GaugeOpts{
			Name: "gymdash_active_members",
			Help: "Number of active members",
		},
	)
)

func RecordHTTPRequest(method, path, status string, duration float64) {
	HTTPRequestsTotal.WithLabelValues(method, path, status).Inc()
	HTTPRequestDuration.WithLabelValues(method, path).Observe(duration)
}

func RecordUserCreated(role string) {
	UsersCreatedTotal.WithLabelValues(role).Inc()
}

func RecordLogin(success bool) {
	result := "failure"
	if success {
		result = "success"
	}
	LoginAttemptsTotal.WithLabelValues(result).Inc()
}

func RecordPayment(method, status string) {
	PaymentsTotal.WithLabelValues(method, status).Inc()
}

func RecordCheckIn() {
	CheckInsTotal.Inc()
}

func RecordPTSession() {
	PTSessionsTotal.Inc()
}

func RecordActivity(action string) {
	ActivityLogEntriesTotal.WithLabelValues(action).Inc()
}

func RecordPersistFailure(store string) {
	PersistFailuresTotal.WithLabelValues(store).Inc()
}

func RecordEmail(emailType, status string) {
	EmailsQueuedTotal.WithLabelValues(emailType, status).Inc()
}

func SetActiveMembers(n int) {
	ActiveMembers.Set(float64(n))
}
