package metrics

import (
	"bytes"
	"net/http"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"github.com/prometheus/common/expfmt"

	"github.com/benchlab/perfkit/pkg/perftimer"
)

// Exporter publishes timer statistics as Prometheus gauges on a private
// registry, one series per timer name.
type Exporter struct {
	registry *prometheus.Registry

	trials *prometheus.GaugeVec
	total  *prometheus.GaugeVec
	mean   *prometheus.GaugeVec
	stdDev *prometheus.GaugeVec
	min    *prometheus.GaugeVec
	max    *prometheus.GaugeVec
}

// NewExporter creates an exporter with an empty registry.
func NewExporter() *Exporter {
	e := &Exporter{registry: prometheus.NewRegistry()}

	gauge := func(name, help string) *prometheus.GaugeVec {
		v := prometheus.NewGaugeVec(
			prometheus.GaugeOpts{Name: name, Help: help},
			[]string{"timer"},
		)
		e.registry.MustRegister(v)
		return v
	}

	e.trials = gauge("perfbench_timer_trials", "Number of recorded samples per timer")
	e.total = gauge("perfbench_timer_total_nanoseconds", "Sum of all samples per timer")
	e.mean = gauge("perfbench_timer_mean_nanoseconds", "Mean sample duration per timer")
	e.stdDev = gauge("perfbench_timer_stddev_nanoseconds", "Population standard deviation of samples per timer")
	e.min = gauge("perfbench_timer_min_nanoseconds", "Fastest sample per timer")
	e.max = gauge("perfbench_timer_max_nanoseconds", "Slowest sample per timer")

	return e
}

// Observe records the statistics of one timer, replacing any previous
// observation under the same name.
func (e *Exporter) Observe(name string, st perftimer.Stats) {
	e.trials.WithLabelValues(name).Set(float64(st.Count))
	e.total.WithLabelValues(name).Set(st.Total)
	e.mean.WithLabelValues(name).Set(st.Mean)
	e.stdDev.WithLabelValues(name).Set(st.StdDev)
	e.min.WithLabelValues(name).Set(st.Min)
	e.max.WithLabelValues(name).Set(st.Max)
}

// Handler returns an HTTP handler serving the registry in the Prometheus
// exposition format.
func (e *Exporter) Handler() http.Handler {
	return promhttp.HandlerFor(e.registry, promhttp.HandlerOpts{})
}

// Text renders the current metrics as exposition text, for dumping to a
// terminal or file without an HTTP round trip.
func (e *Exporter) Text() (string, error) {
	families, err := e.registry.Gather()
	if err != nil {
		return "", err
	}

	var buf bytes.Buffer
	enc := expfmt.NewEncoder(&buf, expfmt.NewFormat(expfmt.TypeTextPlain))
	for _, mf := range families {
		if err := enc.Encode(mf); err != nil {
			return "", err
		}
	}
	return buf.String(), nil
}
