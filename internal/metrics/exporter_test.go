package metrics

import (
	"net/http/httptest"
	"testing"

	"github.com/prometheus/client_golang/prometheus/testutil"
	"github.com/stretchr/testify/require"

	"github.com/benchlab/perfkit/pkg/perftimer"
)

func TestExporter_Observe(t *testing.T) {
	e := NewExporter()

	e.Observe("demo", perftimer.Stats{
		Count:  3,
		Total:  600,
		Mean:   200,
		StdDev: 81.65,
		Min:    100,
		Max:    300,
	})

	require.Equal(t, 3.0, testutil.ToFloat64(e.trials.WithLabelValues("demo")))
	require.Equal(t, 600.0, testutil.ToFloat64(e.total.WithLabelValues("demo")))
	require.Equal(t, 200.0, testutil.ToFloat64(e.mean.WithLabelValues("demo")))
	require.Equal(t, 81.65, testutil.ToFloat64(e.stdDev.WithLabelValues("demo")))
	require.Equal(t, 100.0, testutil.ToFloat64(e.min.WithLabelValues("demo")))
	require.Equal(t, 300.0, testutil.ToFloat64(e.max.WithLabelValues("demo")))
}

func TestExporter_Handler(t *testing.T) {
	e := NewExporter()
	e.Observe("demo", perftimer.Stats{Count: 1, Total: 42, Mean: 42, Min: 42, Max: 42})

	req := httptest.NewRequest("GET", "/metrics", nil)
	rec := httptest.NewRecorder()
	e.Handler().ServeHTTP(rec, req)

	require.Equal(t, 200, rec.Code)
	require.Contains(t, rec.Body.String(), `perfbench_timer_mean_nanoseconds{timer="demo"} 42`)
}

func TestExporter_Text(t *testing.T) {
	e := NewExporter()
	e.Observe("demo", perftimer.Stats{Count: 2, Total: 10, Mean: 5, Min: 4, Max: 6})

	text, err := e.Text()
	require.NoError(t, err)
	require.Contains(t, text, `perfbench_timer_trials{timer="demo"} 2`)
	require.Contains(t, text, "# HELP perfbench_timer_trials")
}
