package perftimer

import (
	"fmt"
	"io"
	"os"
	"strconv"
	"strings"
)

// ReportStats writes the timer name and its statistics to w. Each of
// total, mean, standard deviation, min and max is unit-scaled on its own,
// so entries on the same line may carry different units; the trial count
// has no unit.
func (t *Timer) ReportStats(w io.Writer) error {
	st, err := t.Stats()
	if err != nil {
		return err
	}

	total, totalUnit := convert(st.Total)
	mean, meanUnit := convert(st.Mean)
	stdDev, stdDevUnit := convert(st.StdDev)
	minTime, minUnit := convert(st.Min)
	maxTime, maxUnit := convert(st.Max)

	if _, err := fmt.Fprintf(w, "Timer name: %s\n", t.name); err != nil {
		return fmt.Errorf("writing timer report: %w", err)
	}
	_, err = fmt.Fprintf(w,
		"  Number of trials: %d, Total time: %g%s, Average Time: %g%s, Standard Deviation: %g%s, Fastest Run: %g%s, Slowest Run: %g%s\n",
		st.Count,
		total, totalUnit,
		mean, meanUnit,
		stdDev, stdDevUnit,
		minTime, minUnit,
		maxTime, maxUnit,
	)
	if err != nil {
		return fmt.Errorf("writing timer report: %w", err)
	}
	return nil
}

// Report writes the statistics report to standard output.
func (t *Timer) Report() error {
	return t.ReportStats(os.Stdout)
}

// sampleRow renders every raw sample, unscaled nanoseconds, as one
// comma-separated line. Values are formatted for exact float64 round-trip.
func (t *Timer) sampleRow() string {
	row := make([]string, len(t.samples))
	for i, s := range t.samples {
		row[i] = strconv.FormatFloat(s, 'g', -1, 64)
	}
	return strings.Join(row, ",")
}
