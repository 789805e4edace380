package observability

import (
	"io"
	"net/http"
	"strconv"
	"time"
)

// Metrics is a small Prometheus text-format registry for the API and the
// content generators. All methods are safe on a nil receiver.
type Metrics struct {
	apiRequests  *CounterVec
	apiLatency   *HistogramVec
	apiInflight  *Gauge
	apiReqTotal  *Counter
	apiReqError  *Counter
	generations  *CounterVec
	hooks        *CounterVec
	hookFallback *Counter
	exampleSaves *CounterVec
	examples     *GaugeVec
}

func NewMetrics() *Metrics {
	return &Metrics{
		apiRequests: NewCounterVec("reelcraft_api_requests_total", "Total API requests by method/route/status.", []string{"method", "route", "status"}),
		apiLatency: NewHistogramVec(
			"reelcraft_api_request_duration_seconds",
			"API request latency in seconds by method/route/status.",
			[]string{"method", "route", "status"},
			[]float64{0.001, 0.005, 0.01, 0.025, 0.05, 0.1, 0.25, 0.5, 1},
		),
		apiInflight:  NewGauge("reelcraft_api_inflight_requests", "In-flight API requests."),
		apiReqTotal:  NewCounter("reelcraft_api_requests_total_all", "Total API requests (all)."),
		apiReqError:  NewCounter("reelcraft_api_requests_error_total", "API requests answered with a 5xx status."),
		generations:  NewCounterVec("reelcraft_generations_total", "Generated content by kind.", []string{"kind"}),
		hooks:        NewCounterVec("reelcraft_hooks_total", "Hooks produced by method.", []string{"method"}),
		hookFallback: NewCounter("reelcraft_hook_fallbacks_total", "Hook templates that fell back to the generic line."),
		exampleSaves: NewCounterVec("reelcraft_example_saves_total", "Example save attempts by backend/status.", []string{"backend", "status"}),
		examples:     NewGaugeVec("reelcraft_examples", "Stored user examples by kind.", []string{"kind"}),
	}
}

// Handler serves the registry in Prometheus text format.
func (m *Metrics) Handler() http.Handler {
	return http.HandlerFunc(m.WriteHTTP)
}

func (m *Metrics) WriteHTTP(w http.ResponseWriter, r *http.Request) {
	if m == nil {
		w.WriteHeader(http.StatusServiceUnavailable)
		return
	}
	w.Header().Set("Content-Type", "text/plain; version=0.0.4")
	_ = m.WritePrometheus(w)
}

type promWriter interface {
	WritePrometheus(w io.Writer) error
}

func (m *Metrics) WritePrometheus(w io.Writer) error {
	if m == nil {
		return nil
	}
	for _, c := range []promWriter{
		m.apiRequests, m.apiLatency, m.apiInflight, m.apiReqTotal, m.apiReqError,
		m.generations, m.hooks, m.hookFallback, m.exampleSaves, m.examples,
	} {
		if err := c.WritePrometheus(w); err != nil {
			return err
		}
	}
	return nil
}

func (m *Metrics) ObserveAPI(method, route, status string, dur time.Duration) {
	if m == nil {
		return
	}
	if method == "" {
		method = "UNKNOWN"
	}
	if route == "" {
		route = "unknown"
	}
	if status == "" {
		status = "0"
	}
	m.apiRequests.Inc(method, route, status)
	m.apiLatency.Observe(dur.Seconds(), method, route, status)
	m.apiReqTotal.Inc()
	if isServerErrorStatus(status) {
		m.apiReqError.Inc()
	}
}

func (m *Metrics) ApiInflightInc() {
	if m == nil {
		return
	}
	m.apiInflight.Inc()
}

func (m *Metrics) ApiInflightDec() {
	if m == nil {
		return
	}
	m.apiInflight.Dec()
}

// IncGeneration counts one generated item (reel, hooks, quick_ideas, ...).
func (m *Metrics) IncGeneration(kind string) {
	if m == nil {
		return
	}
	m.generations.Inc(kind)
}

func (m *Metrics) ObserveHook(method string, fallbackUsed bool) {
	if m == nil {
		return
	}
	m.hooks.Inc(method)
	if fallbackUsed {
		m.hookFallback.Inc()
	}
}

func (m *Metrics) ObserveExampleSave(backend string, ok bool) {
	if m == nil {
		return
	}
	m.exampleSaves.Inc(backend, strconv.FormatBool(ok))
}

func (m *Metrics) SetExampleCount(kind string, n int) {
	if m == nil {
		return
	}
	m.examples.Set(float64(n), kind)
}

func isServerErrorStatus(status string) bool {
	return len(status) == 3 && status[0] == '5'
}
