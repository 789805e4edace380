package observability

import (
	"bytes"
	"net/http/httptest"
	"strings"
	"testing"
	"time"
)

func TestMetricsExposition(t *testing.T) {
	m := NewMetrics()
	m.ObserveAPI("POST", "/api/generate/reel", "200", 20*time.Millisecond)
	m.ObserveAPI("GET", "/api/topics", "500", time.Millisecond)
	m.IncGeneration("reel")
	m.ObserveHook("technique", true)
	m.ObserveExampleSave("file", false)
	m.SetExampleCount("hook", 4)

	var buf bytes.Buffer
	if err := m.WritePrometheus(&buf); err != nil {
		t.Fatalf("WritePrometheus: %v", err)
	}
	out := buf.String()
	for _, want := range []string{
		`reelcraft_api_requests_total{method="POST",route="/api/generate/reel",status="200"} 1`,
		`reelcraft_api_request_duration_seconds_bucket{method="POST",route="/api/generate/reel",status="200",le="0.025"} 1`,
		`reelcraft_api_requests_error_total 1`,
		`reelcraft_generations_total{kind="reel"} 1`,
		`reelcraft_hooks_total{method="technique"} 1`,
		`reelcraft_hook_fallbacks_total 1`,
		`reelcraft_example_saves_total{backend="file",status="false"} 1`,
		`reelcraft_examples{kind="hook"} 4`,
	} {
		if !strings.Contains(out, want) {
			t.Fatalf("missing %q in:\n%s", want, out)
		}
	}
}

func TestMetricsNilSafe(t *testing.T) {
	var m *Metrics
	m.ObserveAPI("GET", "/", "200", time.Millisecond)
	m.ApiInflightInc()
	m.IncGeneration("reel")
	rec := httptest.NewRecorder()
	m.WriteHTTP(rec, httptest.NewRequest("GET", "/metrics", nil))
	if rec.Code != 503 {
		t.Fatalf("nil metrics status: got=%d want=503", rec.Code)
	}
}

func TestLabelEscaping(t *testing.T) {
	got := labelString([]string{"a", "b"}, []string{`x"y`})
	if got != `{a="x\"y",b="unknown"}` {
		t.Fatalf("labelString: got=%s", got)
	}
	if withLe("", "+Inf") != `{le="+Inf"}` {
		t.Fatalf("withLe empty: got=%s", withLe("", "+Inf"))
	}
}
