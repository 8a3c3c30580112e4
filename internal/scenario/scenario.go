package scenario

import (
	"fmt"
	"os"

	"gopkg.in/yaml.v3"
)

// Scenario is a YAML-defined benchmark: a list of named steps, each timed
// under its own timer.
type Scenario struct {
	Name  string `yaml:"name"`
	Steps []Step `yaml:"steps"`
}

// Step is one command to benchmark. Iterations of zero means "use the
// configured default".
type Step struct {
	Name       string   `yaml:"name"`
	Command    []string `yaml:"command"`
	Iterations int      `yaml:"iterations"`
}

// Load reads and validates a scenario file.
func Load(path string) (*Scenario, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("reading scenario file: %w", err)
	}

	var sc Scenario
	if err := yaml.Unmarshal(data, &sc); err != nil {
		return nil, fmt.Errorf("parsing scenario file: %w", err)
	}

	if len(sc.Steps) == 0 {
		return nil, fmt.Errorf("scenario %s has no steps", path)
	}
	for i, step := range sc.Steps {
		if step.Name == "" {
			return nil, fmt.Errorf("scenario step %d has no name", i)
		}
		if len(step.Command) == 0 {
			return nil, fmt.Errorf("scenario step %q has no command", step.Name)
		}
		if step.Iterations < 0 {
			return nil, fmt.Errorf("scenario step %q has negative iterations", step.Name)
		}
	}

	return &sc, nil
}
