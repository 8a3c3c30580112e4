package config

import (
	"fmt"

	"github.com/sirupsen/logrus"
	"github.com/spf13/viper"
)

type Config struct {
	Log   Log
	Store Store
	Run   Run
	Serve Serve
}

type Log struct {
	Level int
}

type Store struct {
	Driver string // "sqlite" or "postgres"
	DSN    string
}

type Run struct {
	Iterations int
	ResultsDir string
}

type Serve struct {
	Addr string
}

var cfg *Config

// Get returns the configuration bound to environment variables, applying
// defaults for anything unset.
func Get() Config {
	if cfg != nil {
		return *cfg
	}

	_ = viper.BindEnv("log.level", "PERFBENCH_LOG_LEVEL")

	_ = viper.BindEnv("store.driver", "PERFBENCH_STORE_DRIVER")
	_ = viper.BindEnv("store.dsn", "PERFBENCH_STORE_DSN")

	_ = viper.BindEnv("run.iterations", "PERFBENCH_RUN_ITERATIONS")
	_ = viper.BindEnv("run.resultsdir", "PERFBENCH_RESULTS_DIR")

	_ = viper.BindEnv("serve.addr", "PERFBENCH_SERVE_ADDR")

	cfg = &Config{}
	if err := viper.Unmarshal(&cfg); err != nil {
		panic(fmt.Errorf("parsing configuration: %v", err))
	}

	if cfg.Log.Level == 0 {
		cfg.Log.Level = int(logrus.InfoLevel)
	}
	if cfg.Store.Driver == "" {
		cfg.Store.Driver = "sqlite"
	}
	if cfg.Store.DSN == "" && cfg.Store.Driver == "sqlite" {
		cfg.Store.DSN = "perfbench.db"
	}
	if cfg.Run.Iterations == 0 {
		cfg.Run.Iterations = 10
	}
	if cfg.Run.ResultsDir == "" {
		cfg.Run.ResultsDir = "results"
	}
	if cfg.Serve.Addr == "" {
		cfg.Serve.Addr = ":9090"
	}

	return *cfg
}

// Reset is used only for unit testing to reset configuration and rebind
// variables.
func Reset() {
	cfg = nil
	viper.Reset()
}
