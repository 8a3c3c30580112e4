package perftimer

import "errors"

var (
	// ErrNotStarted is returned by Stop when no matching Start preceded it.
	ErrNotStarted = errors.New("perftimer: stop without a matching start")

	// ErrNoSamples is returned by statistics and export operations invoked
	// before at least one start/stop pair has completed.
	ErrNoSamples = errors.New("perftimer: no samples recorded")
)
