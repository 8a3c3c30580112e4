package perftimer

import "fmt"

// Unit tier boundaries in raw nanoseconds. A value equal to a boundary
// stays in the smaller unit. The breakpoints are a display policy, not a
// physical constraint; adjust them here without touching convert.
const (
	maxNanos   = 1.0e3   // one microsecond
	maxMicros  = 1.0e6   // one millisecond
	maxMillis  = 1.0e9   // one second
	maxSeconds = 6.0e11  // ten minutes
	maxMinutes = 1.08e13 // three hours
)

// convert scales a raw nanosecond value to the largest unit that keeps it
// in a readable range and returns the scaled value with its unit label.
func convert(ns float64) (float64, string) {
	switch {
	case ns <= maxNanos:
		return ns, "ns"
	case ns <= maxMicros:
		return ns * 1e-3, "µs"
	case ns <= maxMillis:
		return ns * 1e-6, "ms"
	case ns <= maxSeconds:
		return ns * 1e-9, "s"
	case ns <= maxMinutes:
		return ns * 1e-9 / 60, "mins"
	default:
		return ns * 1e-9 / 3600, "hrs"
	}
}

// FormatDuration renders a raw nanosecond value with the same unit
// selection the statistics report uses.
func FormatDuration(ns float64) string {
	v, unit := convert(ns)
	return fmt.Sprintf("%g%s", v, unit)
}
