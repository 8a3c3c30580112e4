package perftimer

import (
	"bytes"
	"fmt"
	"math"
	"testing"

	"github.com/stretchr/testify/require"
)

func TestReportStats_Format(t *testing.T) {
	timer := New("demo")
	timer.samples = []float64{100, 200, 300}

	var buf bytes.Buffer
	require.NoError(t, timer.ReportStats(&buf))

	want := fmt.Sprintf(
		"Timer name: demo\n  Number of trials: 3, Total time: 600ns, Average Time: 200ns, Standard Deviation: %gns, Fastest Run: 100ns, Slowest Run: 300ns\n",
		math.Sqrt(20000.0/3.0),
	)
	require.Equal(t, want, buf.String())
}

func TestReportStats_UnitsChosenIndependently(t *testing.T) {
	timer := New("mixed")
	// One 2ms sample: total/mean/min/max land in the ms tier while the
	// zero standard deviation stays in ns.
	timer.samples = []float64{2e6}

	var buf bytes.Buffer
	require.NoError(t, timer.ReportStats(&buf))

	want := "Timer name: mixed\n  Number of trials: 1, Total time: 2ms, Average Time: 2ms, Standard Deviation: 0ns, Fastest Run: 2ms, Slowest Run: 2ms\n"
	require.Equal(t, want, buf.String())
}

func TestReportStats_NoSamples(t *testing.T) {
	timer := New("empty")
	var buf bytes.Buffer
	require.ErrorIs(t, timer.ReportStats(&buf), ErrNoSamples)
	require.Zero(t, buf.Len())
}
