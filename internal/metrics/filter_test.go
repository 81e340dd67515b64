package metrics

import (
	"testing"

	"github.com/prometheus/client_golang/prometheus/testutil"
)

func TestObserveFilter(t *testing.T) {
	before := testutil.ToFloat64(FilterEvaluationsTotal.WithLabelValues("test"))

	ObserveFilter("test", 12, 3, 2)
	ObserveFilter("test", 0, 0, 0)

	after := testutil.ToFloat64(FilterEvaluationsTotal.WithLabelValues("test"))
	if after-before != 2 {
		t.Errorf("filter_evaluations_total delta = %f, want 2", after-before)
	}
	if testutil.CollectAndCount(FilterMatchedRatio) == 0 {
		t.Error("expected filter_matched_ratio observations")
	}
	if testutil.CollectAndCount(FilterActiveOptions) == 0 {
		t.Error("expected filter_active_options observations")
	}
}

func TestRegisterFilterMetrics_Idempotent(t *testing.T) {
	RegisterFilterMetrics()
	RegisterFilterMetrics()
	RegisterHTTPMetrics()
	RegisterHTTPMetrics()
}
