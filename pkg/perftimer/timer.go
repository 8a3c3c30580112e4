package perftimer

import (
	"math"
	"time"

	"github.com/sirupsen/logrus"
)

// Timer accumulates elapsed-time samples for repeated runs of a piece of
// code. Call Start and Stop around each run; every completed pair appends
// one sample, measured in nanoseconds, to the timer. Statistics are always
// computed over every recorded sample.
//
// A single Timer must not be shared between goroutines without external
// synchronization. Independent Timers are fully independent.
type Timer struct {
	name    string
	startAt time.Time
	samples []float64 // nanoseconds
	armed   bool
	log     logrus.FieldLogger
}

// New creates an unarmed timer with the given display name.
func New(name string) *Timer {
	return NewWithLogger(name, logrus.StandardLogger())
}

// NewWithLogger creates a timer that writes diagnostics to log.
func NewWithLogger(name string, log logrus.FieldLogger) *Timer {
	return &Timer{name: name, log: log}
}

// Name returns the timer's display name.
func (t *Timer) Name() string { return t.name }

// Count returns the number of recorded samples.
func (t *Timer) Count() int { return len(t.samples) }

// Running reports whether the timer is armed, i.e. between a Start and its
// matching Stop.
func (t *Timer) Running() bool { return t.armed }

// Samples returns a copy of the recorded samples in nanoseconds, in the
// order they were recorded.
func (t *Timer) Samples() []float64 {
	out := make([]float64, len(t.samples))
	copy(out, t.samples)
	return out
}

// Start arms the timer at the current time. Starting an already-armed
// timer is a logged no-op: the original start mark is kept.
func (t *Timer) Start() {
	if t.armed {
		t.log.Warnf("timer %q is already running, start ignored", t.name)
		return
	}
	t.startAt = time.Now()
	t.armed = true
}

// Stop records the time elapsed since the matching Start as one sample and
// disarms the timer. Returns ErrNotStarted when the timer is not armed.
func (t *Timer) Stop() error {
	if !t.armed {
		return ErrNotStarted
	}
	t.samples = append(t.samples, float64(time.Since(t.startAt).Nanoseconds()))
	t.armed = false
	return nil
}

// Measure records the time spent executing fn as one sample.
func (t *Timer) Measure(fn func()) {
	t.Start()
	fn()
	_ = t.Stop()
}

// Stats holds descriptive statistics over a timer's samples. All duration
// fields are raw nanoseconds; see ReportStats for unit-scaled output.
type Stats struct {
	Count  int
	Total  float64
	Mean   float64
	StdDev float64 // population standard deviation (divide by n)
	Min    float64
	Max    float64
}

// Stats computes statistics over every recorded sample. Returns
// ErrNoSamples before any start/stop pair has completed.
func (t *Timer) Stats() (Stats, error) {
	return Compute(t.samples)
}

// Compute calculates descriptive statistics over an arbitrary nanosecond
// sample sequence. Returns ErrNoSamples for an empty sequence.
func Compute(samples []float64) (Stats, error) {
	if len(samples) == 0 {
		return Stats{}, ErrNoSamples
	}

	st := Stats{
		Count: len(samples),
		Min:   samples[0],
		Max:   samples[0],
	}
	for _, s := range samples {
		st.Total += s
		if s < st.Min {
			st.Min = s
		}
		if s > st.Max {
			st.Max = s
		}
	}
	st.Mean = st.Total / float64(st.Count)

	var sqSum float64
	for _, s := range samples {
		d := s - st.Mean
		sqSum += d * d
	}
	st.StdDev = math.Sqrt(sqSum / float64(st.Count))

	return st, nil
}
