package perftimer

import (
	"fmt"
	"os"
)

// SaveTimingData writes the timing data to the file at path, creating or
// truncating it. The file holds the two report lines followed by one
// comma-separated line of every raw sample in nanoseconds.
//
// Returns ErrNoSamples before any sample exists, and a wrapped error when
// the file cannot be opened or written; nothing is written unless the file
// opened successfully.
func (t *Timer) SaveTimingData(path string) error {
	if len(t.samples) == 0 {
		return ErrNoSamples
	}

	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("opening timing data file: %w", err)
	}

	if err := t.ReportStats(f); err != nil {
		f.Close()
		return err
	}
	if _, err := fmt.Fprintln(f, t.sampleRow()); err != nil {
		f.Close()
		return fmt.Errorf("writing timing data samples: %w", err)
	}

	if err := f.Close(); err != nil {
		return fmt.Errorf("closing timing data file: %w", err)
	}
	return nil
}
