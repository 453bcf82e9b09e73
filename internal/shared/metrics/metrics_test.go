package metrics

import (
	"strings"
	"testing"
)

func TestHistogramCountsFirstMatchingBucket(t *testing.T) {
	h := newHistogram([]float64{10, 100})
	h.Observe(5)
	h.Observe(50)
	h.Observe(500)

	snap := h.Snapshot()
	if snap.count != 3 {
		t.Fatalf("expected count 3, got %d", snap.count)
	}
	if snap.counts[0] != 1 || snap.counts[1] != 1 {
		t.Fatalf("unexpected bucket counts: %v", snap.counts)
	}
}

func TestRenderIncludesCounters(t *testing.T) {
	IncResumesSaved()
	out := Render()
	for _, name := range []string{
		"users_registered_total",
		"logins_failed_total",
		"resumes_saved_total",
		"resumes_generated_total",
		`render_duration_ms_bucket{le="+Inf"}`,
	} {
		if !strings.Contains(out, name) {
			t.Fatalf("expected %s in metrics output:\n%s", name, out)
		}
	}
}
