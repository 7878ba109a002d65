// Package metrics holds the Prometheus collectors of the membership service.
// A nil *Metrics is valid and records nothing.
package metrics

import (
	"net/http"
	"strconv"
	"time"

	"github.com/prometheus/client_golang/prometheus"
)

const namespace = "membership"

// Result labels.
const (
	ResultOK               = "ok"
	ResultInvalidFormat    = "invalid_format"
	ResultNotFound         = "not_found"
	ResultAlreadyActivated = "already_activated"
	ResultExpired          = "expired"
	ResultFailed           = "failed"
)

type Metrics struct {
	registrationsIssued *prometheus.CounterVec
	validations         *prometheus.CounterVec
	activations         *prometheus.CounterVec
	activationPartial   prometheus.Counter
	expiredPending      prometheus.Gauge
	rolesReverted       prometheus.Counter

	httpRequests *prometheus.CounterVec
	httpDuration *prometheus.HistogramVec
}

// New creates the collectors and registers them with reg.
func New(reg prometheus.Registerer) *Metrics {
	m := &Metrics{
		registrationsIssued: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "registrations_issued_total",
			Help:      "Registrations issued, by membership type.",
		}, []string{"membership_type"}),
		validations: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "validations_total",
			Help:      "Registration QR validations, by result.",
		}, []string{"result"}),
		activations: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "activations_total",
			Help:      "Registration activations, by result.",
		}, []string{"result"}),
		activationPartial: prometheus.NewCounter(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "activation_partial_total",
			Help:      "Activations that promoted the user's role but failed to record the member.",
		}),
		expiredPending: prometheus.NewGauge(prometheus.GaugeOpts{
			Namespace: namespace,
			Name:      "expired_pending_registrations",
			Help:      "Pending registrations past their expiry, as of the last reconcile run.",
		}),
		rolesReverted: prometheus.NewCounter(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "roles_reverted_total",
			Help:      "Orphaned member role promotions reverted to guest by the reconciler.",
		}),
		httpRequests: prometheus.NewCounterVec(prometheus.CounterOpts{
			Name: "http_requests_total",
			Help: "Total number of HTTP requests.",
		}, []string{"route", "method", "status"}),
		httpDuration: prometheus.NewHistogramVec(prometheus.HistogramOpts{
			Name:    "http_request_duration_seconds",
			Help:    "Duration of HTTP requests.",
			Buckets: prometheus.DefBuckets,
		}, []string{"route", "method"}),
	}

	reg.MustRegister(
		m.registrationsIssued,
		m.validations,
		m.activations,
		m.activationPartial,
		m.expiredPending,
		m.rolesReverted,
		m.httpRequests,
		m.httpDuration,
	)
	return m
}

func (m *Metrics) RegistrationIssued(membershipType string) {
	if m == nil {
		return
	}
	m.registrationsIssued.WithLabelValues(membershipType).Inc()
}

func (m *Metrics) Validation(result string) {
	if m == nil {
		return
	}
	m.validations.WithLabelValues(result).Inc()
}

func (m *Metrics) Activation(result string) {
	if m == nil {
		return
	}
	m.activations.WithLabelValues(result).Inc()
}

func (m *Metrics) ActivationPartial() {
	if m == nil {
		return
	}
	m.activationPartial.Inc()
}

func (m *Metrics) SetExpiredPending(n int) {
	if m == nil {
		return
	}
	m.expiredPending.Set(float64(n))
}

func (m *Metrics) RoleReverted() {
	if m == nil {
		return
	}
	m.rolesReverted.Inc()
}

// HTTPMiddleware records request counts and latency labelled by the
// ServeMux pattern that matched, so path parameters do not explode the
// label space.
func (m *Metrics) HTTPMiddleware(next http.Handler) http.Handler {
	if m == nil {
		return next
	}
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		start := time.Now()
		rec := &statusRecorder{ResponseWriter: w, status: http.StatusOK}

		next.ServeHTTP(rec, r)

		route := r.Pattern
		if route == "" {
			route = "unmatched"
		}
		m.httpRequests.WithLabelValues(route, r.Method, strconv.Itoa(rec.status)).Inc()
		m.httpDuration.WithLabelValues(route, r.Method).Observe(time.Since(start).Seconds())
	})
}

type statusRecorder struct {
	http.ResponseWriter
	status int
}

func (rw *statusRecorder) WriteHeader(code int) {
	rw.status = code
	rw.ResponseWriter.WriteHeader(code)
}
