package store

import (
	"errors"
	"fmt"
	"time"

	"github.com/benchlab/perfkit/internal/hostinfo"
)

// ErrRunNotFound is returned by GetRun for an unknown run ID.
var ErrRunNotFound = errors.New("store: run not found")

// Run is one persisted benchmark run: the timer's raw samples plus the
// host they were measured on.
type Run struct {
	ID        string        `json:"id"`
	Timer     string        `json:"timer"`
	Samples   []float64     `json:"samples"` // nanoseconds
	Host      hostinfo.Info `json:"host"`
	CreatedAt time.Time     `json:"created_at"`
}

// Store persists benchmark runs.
type Store interface {
	SaveRun(run *Run) error
	GetRun(id string) (*Run, error)
	ListRuns(limit int) ([]*Run, error)
	Close() error
}

// Open builds a store for the configured driver.
func Open(driver, dsn string) (Store, error) {
	switch driver {
	case "sqlite":
		return NewSQLiteStore(dsn)
	case "postgres":
		return NewPostgresStore(dsn)
	default:
		return nil, fmt.Errorf("store: unknown driver %q", driver)
	}
}
