// Package metrics provides Prometheus-based metrics recording for the
// intake wizard and the assist service.
package metrics

import (
	"net/http"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
	"github.com/prometheus/client_golang/prometheus/promhttp"

	"structor/pkg/logx"
)

// Recorder holds the wizard metric families. A single instance is shared by
// the navigation controller and the assist service.
type Recorder struct {
	turnsTotal        *prometheus.CounterVec
	questionsAsked    prometheus.Counter
	answersTotal      *prometheus.CounterVec
	skipsTotal        prometheus.Counter
	backsTotal        prometheus.Counter
	resetsTotal       prometheus.Counter
	specialistEntered *prometheus.CounterVec
	assistTotal       *prometheus.CounterVec
	assistDuration    prometheus.Histogram
}

// NewRecorder creates the metric families on the default registry.
// Call at most once per process; promauto panics on duplicate registration.
func NewRecorder() *Recorder {
	return &Recorder{
		turnsTotal: promauto.NewCounterVec(
			prometheus.CounterOpts{
				Name: "wizard_turns_total",
				Help: "Total user turns handled, by outcome kind",
			},
			[]string{"kind"},
		),
		questionsAsked: promauto.NewCounter(
			prometheus.CounterOpts{
				Name: "wizard_questions_asked_total",
				Help: "Total questions presented to the user",
			},
		),
		answersTotal: promauto.NewCounterVec(
			prometheus.CounterOpts{
				Name: "wizard_answers_total",
				Help: "Total accepted answers, by question type",
			},
			[]string{"type"},
		),
		skipsTotal: promauto.NewCounter(
			prometheus.CounterOpts{
				Name: "wizard_skips_total",
				Help: "Total questions skipped",
			},
		),
		backsTotal: promauto.NewCounter(
			prometheus.CounterOpts{
				Name: "wizard_backs_total",
				Help: "Total back navigations",
			},
		),
		resetsTotal: promauto.NewCounter(
			prometheus.CounterOpts{
				Name: "wizard_resets_total",
				Help: "Total session restarts",
			},
		),
		specialistEntered: promauto.NewCounterVec(
			prometheus.CounterOpts{
				Name: "wizard_specialist_entered_total",
				Help: "Total specialist sub-flow entries, by specialist",
			},
			[]string{"specialist"},
		),
		assistTotal: promauto.NewCounterVec(
			prometheus.CounterOpts{
				Name: "assist_requests_total",
				Help: "Total AI-assist invocations, by action and outcome",
			},
			[]string{"action", "outcome"},
		),
		assistDuration: promauto.NewHistogram(
			prometheus.HistogramOpts{
				Name:    "assist_request_duration_seconds",
				Help:    "Duration of AI-assist calls in seconds",
				Buckets: prometheus.DefBuckets,
			},
		),
	}
}

// ObserveTurn records a handled turn by outcome kind (answer, command,
// error, fallback, ...).
func (r *Recorder) ObserveTurn(kind string) {
	if r == nil {
		return
	}
	r.turnsTotal.WithLabelValues(kind).Inc()
}

// ObserveQuestionAsked records a question presentation.
func (r *Recorder) ObserveQuestionAsked() {
	if r == nil {
		return
	}
	r.questionsAsked.Inc()
}

// ObserveAnswer records an accepted answer by question type.
func (r *Recorder) ObserveAnswer(questionType string) {
	if r == nil {
		return
	}
	r.answersTotal.WithLabelValues(questionType).Inc()
}

// ObserveSkip records a skipped question.
func (r *Recorder) ObserveSkip() {
	if r == nil {
		return
	}
	r.skipsTotal.Inc()
}

// ObserveBack records a back navigation.
func (r *Recorder) ObserveBack() {
	if r == nil {
		return
	}
	r.backsTotal.Inc()
}

// ObserveReset records a session restart.
func (r *Recorder) ObserveReset() {
	if r == nil {
		return
	}
	r.resetsTotal.Inc()
}

// ObserveSpecialistEntered records a specialist sub-flow entry.
func (r *Recorder) ObserveSpecialistEntered(name string) {
	if r == nil {
		return
	}
	r.specialistEntered.WithLabelValues(name).Inc()
}

// ObserveAssist records an assist invocation with its outcome
// ("success", "fallback", "error") and duration.
func (r *Recorder) ObserveAssist(action, outcome string, duration time.Duration) {
	if r == nil {
		return
	}
	r.assistTotal.WithLabelValues(action, outcome).Inc()
	r.assistDuration.Observe(duration.Seconds())
}

// Serve exposes /metrics on addr in a background goroutine. Errors are
// logged, not fatal; the assistant works without the endpoint.
func Serve(addr string) {
	logger := logx.NewLogger("metrics")
	mux := http.NewServeMux()
	mux.Handle("/metrics", promhttp.Handler())

	go func() {
		logger.Info("Serving Prometheus metrics on %s", addr)
		if err := http.ListenAndServe(addr, mux); err != nil { //nolint:gosec // Local metrics endpoint
			logger.Warn("Metrics endpoint stopped: %v", err)
		}
	}()
}
