package metrics

import (
	"bytes"
	"strings"
	"testing"
)

func TestHistogramCumulativeBuckets(t *testing.T) {
	h := newHistogram([]float64{100, 500, 1000})
	for _, v := range []float64{50, 80, 400, 900, 5000} {
		h.Observe(v)
	}

	var buf bytes.Buffer
	writeHistogram(&buf, "test_duration_ms", "test", h.Snapshot())
	out := buf.String()

	lines := []string{
		`test_duration_ms_bucket{le="100"} 2`,
		`test_duration_ms_bucket{le="500"} 3`,
		`test_duration_ms_bucket{le="1000"} 4`,
		`test_duration_ms_bucket{le="+Inf"} 5`,
		`test_duration_ms_count 5`,
	}
	for _, line := range lines {
		if !strings.Contains(out, line) {
			t.Fatalf("missing %q in:\n%s", line, out)
		}
	}
}

func TestRenderIncludesAllSeries(t *testing.T) {
	out := Render()
	for _, name := range []string{
		"generation_started_total",
		"generation_completed_total",
		"result_cache_hit_total",
		"nlg_fallback_total",
		"generation_duration_ms_bucket",
	} {
		if !strings.Contains(out, name) {
			t.Fatalf("missing series %q in:\n%s", name, out)
		}
	}
}

func TestFormatFloat(t *testing.T) {
	cases := []struct {
		in   float64
		want string
	}{
		{100, "100"},
		{0.5, "0.5"},
		{2500, "2500"},
	}
	for _, tc := range cases {
		if got := formatFloat(tc.in); got != tc.want {
			t.Fatalf("formatFloat(%v): got %q, want %q", tc.in, got, tc.want)
		}
	}
}
