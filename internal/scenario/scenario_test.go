package scenario

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/require"
)

func writeScenario(t *testing.T, contents string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "scenario.yaml")
	require.NoError(t, os.WriteFile(path, []byte(contents), 0o644))
	return path
}

func TestLoad(t *testing.T) {
	path := writeScenario(t, `
name: sorting
steps:
  - name: quicksort
    command: ["./bench", "--algo", "quick"]
    iterations: 20
  - name: mergesort
    command: ["./bench", "--algo", "merge"]
`)

	sc, err := Load(path)
	require.NoError(t, err)
	require.Equal(t, "sorting", sc.Name)
	require.Len(t, sc.Steps, 2)
	require.Equal(t, "quicksort", sc.Steps[0].Name)
	require.Equal(t, []string{"./bench", "--algo", "quick"}, sc.Steps[0].Command)
	require.Equal(t, 20, sc.Steps[0].Iterations)
	require.Equal(t, 0, sc.Steps[1].Iterations)
}

func TestLoad_Invalid(t *testing.T) {
	tests := []struct {
		name     string
		contents string
		wantErr  string
	}{
		{"no steps", "name: empty\n", "has no steps"},
		{"unnamed step", "steps:\n  - command: [\"ls\"]\n", "has no name"},
		{"missing command", "steps:\n  - name: broken\n", "has no command"},
		{"negative iterations", "steps:\n  - name: neg\n    command: [\"ls\"]\n    iterations: -1\n", "negative iterations"},
		{"bad yaml", "steps: [", "parsing scenario file"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := Load(writeScenario(t, tt.contents))
			require.Error(t, err)
			require.Contains(t, err.Error(), tt.wantErr)
		})
	}
}

func TestLoad_MissingFile(t *testing.T) {
	_, err := Load(filepath.Join(t.TempDir(), "absent.yaml"))
	require.Error(t, err)
	require.Contains(t, err.Error(), "reading scenario file")
}
