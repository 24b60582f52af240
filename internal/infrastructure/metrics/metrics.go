// Package metrics holds the Prometheus collectors of the quotation service.
package metrics

import (
	"fmt"
	"time"

	"github.com/prometheus/client_golang/prometheus"
)

const (
	ResultOK    = "ok"
	ResultError = "error"

	WelcomeClaimed = "claimed"
	WelcomeLost    = "lost"
)

// Quotation groups the lifecycle collectors. A nil *Quotation is valid and records nothing.
type Quotation struct {
	AdjustmentsTotal   *prometheus.CounterVec
	SavesTotal         *prometheus.CounterVec
	WelcomeClaimsTotal *prometheus.CounterVec
}

func NewQuotation(namespace string, reg prometheus.Registerer) *Quotation {
	if reg == nil {
		reg = prometheus.DefaultRegisterer
	}
	m := &Quotation{
		AdjustmentsTotal: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "adjustments_total",
			Help:      "Pricing adjustments recorded on saved quotations, by label.",
		}, []string{"label"}),
		SavesTotal: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "saves_total",
			Help:      "Quotation writes by operation and outcome.",
		}, []string{"operation", "result"}),
		WelcomeClaimsTotal: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "welcome_claims_total",
			Help:      "Attempts to claim the first-quotation welcome discount.",
		}, []string{"result"}),
	}
	mustRegisterCounter(reg, &m.AdjustmentsTotal)
	mustRegisterCounter(reg, &m.SavesTotal)
	mustRegisterCounter(reg, &m.WelcomeClaimsTotal)
	return m
}

func (m *Quotation) ObserveAdjustment(label string) {
	if m == nil {
		return
	}
	m.AdjustmentsTotal.WithLabelValues(label).Inc()
}

func (m *Quotation) ObserveSave(operation string, err error) {
	if m == nil {
		return
	}
	result := ResultOK
	if err != nil {
		result = ResultError
	}
	m.SavesTotal.WithLabelValues(operation, result).Inc()
}

func (m *Quotation) ObserveWelcomeClaim(result string) {
	if m == nil {
		return
	}
	m.WelcomeClaimsTotal.WithLabelValues(result).Inc()
}

// HTTP groups the request collectors used by the gin middleware.
type HTTP struct {
	ReqTotal *prometheus.CounterVec
	ReqDur   *prometheus.HistogramVec
}

func NewHTTP(namespace string, reg prometheus.Registerer) *HTTP {
	if reg == nil {
		reg = prometheus.DefaultRegisterer
	}
	m := &HTTP{
		ReqTotal: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "http_requests_total",
			Help:      "Total number of HTTP requests handled by the server.",
		}, []string{"method", "route", "status"}),
		ReqDur: prometheus.NewHistogramVec(prometheus.HistogramOpts{
			Namespace: namespace,
			Name:      "http_request_duration_ms",
			Help:      "HTTP request latency distribution in milliseconds.",
			Buckets:   []float64{5, 10, 25, 50, 100, 250, 500, 1000, 2500},
		}, []string{"method", "route"}),
	}
	mustRegisterCounter(reg, &m.ReqTotal)
	if err := reg.Register(m.ReqDur); err != nil {
		are, ok := err.(prometheus.AlreadyRegisteredError)
		if !ok {
			panic(fmt.Errorf("register histogram: %w", err))
		}
		if existing, ok := are.ExistingCollector.(*prometheus.HistogramVec); ok {
			m.ReqDur = existing
		}
	}
	return m
}

// DurationMillis converts a duration to milliseconds for metric observation.
func DurationMillis(d time.Duration) float64 {
	return float64(d) / float64(time.Millisecond)
}

// mustRegisterCounter reuses an already registered collector so constructors can be
// called more than once against the same registry.
func mustRegisterCounter(reg prometheus.Registerer, counter **prometheus.CounterVec) {
	if err := reg.Register(*counter); err != nil {
		are, ok := err.(prometheus.AlreadyRegisteredError)
		if !ok {
			panic(fmt.Errorf("register counter: %w", err))
		}
		if existing, ok := are.ExistingCollector.(*prometheus.CounterVec); ok {
			*counter = existing
		}
	}
}
