package cmd

import (
	"encoding/json"
	"net/http"

	"github.com/gorilla/mux"
	"github.com/sirupsen/logrus"
	"github.com/spf13/cobra"

	"github.com/benchlab/perfkit/internal/config"
	"github.com/benchlab/perfkit/internal/metrics"
	"github.com/benchlab/perfkit/internal/store"
	"github.com/benchlab/perfkit/pkg/perftimer"
)

var serveAddr string

// serveCmd represents the serve command
var serveCmd = &cobra.Command{
	Use:   "serve",
	Short: "Serve benchmark history and Prometheus metrics over HTTP",
	Long: `Expose the results store over HTTP: /metrics serves per-timer statistics
in the Prometheus exposition format, /runs serves the raw run history as JSON.`,
	RunE: runServe,
}

func init() {
	rootCmd.AddCommand(serveCmd)
	serveCmd.Flags().StringVar(&serveAddr, "addr", "", "listen address (default from config)")
}

func runServe(cmd *cobra.Command, args []string) error {
	cfg := config.Get()
	addr := serveAddr
	if addr == "" {
		addr = cfg.Serve.Addr
	}

	st, err := openStore()
	if err != nil {
		return err
	}
	defer st.Close()

	exporter := metrics.NewExporter()

	r := mux.NewRouter()
	r.Handle("/metrics", refreshMetrics(st, exporter)).Methods("GET")
	r.HandleFunc("/runs", serveRuns(st)).Methods("GET")
	r.HandleFunc("/healthz", func(w http.ResponseWriter, _ *http.Request) {
		w.WriteHeader(http.StatusOK)
	}).Methods("GET")

	logrus.Infof("serving benchmark results on %s", addr)
	srv := &http.Server{Addr: addr, Handler: r}
	return srv.ListenAndServe()
}

// refreshMetrics re-observes every stored run before each scrape so the
// exposed gauges follow the store without a restart.
func refreshMetrics(st store.Store, exporter *metrics.Exporter) http.Handler {
	handler := exporter.Handler()
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		runs, err := st.ListRuns(0)
		if err != nil {
			http.Error(w, err.Error(), http.StatusInternalServerError)
			return
		}
		for _, run := range runs {
			stats, err := perftimer.Compute(run.Samples)
			if err != nil {
				logrus.Warnf("run %s has no samples, skipping", run.ID)
				continue
			}
			exporter.Observe(run.Timer, stats)
		}
		handler.ServeHTTP(w, r)
	})
}

func serveRuns(st store.Store) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		runs, err := st.ListRuns(0)
		if err != nil {
			http.Error(w, err.Error(), http.StatusInternalServerError)
			return
		}
		w.Header().Set("Content-Type", "application/json")
		if err := json.NewEncoder(w).Encode(runs); err != nil {
			logrus.Errorf("encoding runs response: %v", err)
		}
	}
}
