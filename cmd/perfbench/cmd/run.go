package cmd

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"os"
	"os/exec"
	"path/filepath"
	"strings"

	"github.com/olekukonko/tablewriter"
	"github.com/sirupsen/logrus"
	"github.com/spf13/cobra"
	"golang.org/x/time/rate"

	"github.com/benchlab/perfkit/internal/config"
	"github.com/benchlab/perfkit/internal/hostinfo"
	"github.com/benchlab/perfkit/internal/scenario"
	"github.com/benchlab/perfkit/internal/store"
	"github.com/benchlab/perfkit/pkg/perftimer"
)

var (
	runName       string
	runIterations int
	runCSV        string
	runPersist    bool
	runRate       float64
	runScenario   string
)

// runCmd represents the run command
var runCmd = &cobra.Command{
	Use:   "run [flags] -- <command> [args...]",
	Short: "Time repeated executions of a command",
	Long: `Execute a command a fixed number of times, timing every execution, then
report count, total, average, standard deviation, fastest and slowest run.
With --scenario, runs every step of a YAML scenario file under its own timer.`,
	RunE: runRun,
}

func init() {
	rootCmd.AddCommand(runCmd)

	runCmd.Flags().StringVar(&runName, "name", "", "timer name (default: the command line)")
	runCmd.Flags().IntVar(&runIterations, "iterations", 0, "number of timed executions (default from config)")
	runCmd.Flags().StringVar(&runCSV, "csv", "", "export raw timing data to this file")
	runCmd.Flags().BoolVar(&runPersist, "store", false, "persist the run in the benchmark history")
	runCmd.Flags().Float64Var(&runRate, "rate", 0, "maximum iterations per second (0 = unpaced)")
	runCmd.Flags().StringVar(&runScenario, "scenario", "", "YAML scenario file to run instead of a single command")
}

func runRun(cmd *cobra.Command, args []string) error {
	cfg := config.Get()

	var steps []scenario.Step
	if runScenario != "" {
		sc, err := scenario.Load(runScenario)
		if err != nil {
			return err
		}
		steps = sc.Steps
	} else {
		if len(args) == 0 {
			return fmt.Errorf("nothing to benchmark: pass a command after -- or use --scenario")
		}
		name := runName
		if name == "" {
			name = strings.Join(args, " ")
		}
		steps = []scenario.Step{{Name: name, Command: args, Iterations: runIterations}}
	}

	var timers []*perftimer.Timer
	for _, step := range steps {
		iterations := step.Iterations
		if iterations <= 0 {
			iterations = cfg.Run.Iterations
		}
		timer, err := benchStep(cmd.Context(), step, iterations)
		if err != nil {
			return err
		}
		timers = append(timers, timer)
	}

	if err := printTimers(timers); err != nil {
		return err
	}

	if runCSV != "" {
		if err := exportCSV(timers); err != nil {
			return err
		}
	}

	if runPersist {
		return persistRuns(timers)
	}
	return nil
}

// benchStep times iterations executions of one step's command.
func benchStep(ctx context.Context, step scenario.Step, iterations int) (*perftimer.Timer, error) {
	logrus.Infof("benchmarking %q: %d iterations", step.Name, iterations)

	timer := perftimer.New(step.Name)

	var limiter *rate.Limiter
	if runRate > 0 {
		limiter = rate.NewLimiter(rate.Limit(runRate), 1)
	}

	for i := 0; i < iterations; i++ {
		if limiter != nil {
			if err := limiter.Wait(ctx); err != nil {
				return nil, err
			}
		}

		c := exec.CommandContext(ctx, step.Command[0], step.Command[1:]...)
		c.Stdout = io.Discard
		c.Stderr = io.Discard

		timer.Start()
		runErr := c.Run()
		if err := timer.Stop(); err != nil {
			return nil, err
		}
		if runErr != nil {
			return nil, fmt.Errorf("iteration %d of %q failed: %w", i+1, step.Name, runErr)
		}
	}

	return timer, nil
}

type runResult struct {
	Timer    string    `json:"timer"`
	Count    int       `json:"count"`
	TotalNS  float64   `json:"total_ns"`
	MeanNS   float64   `json:"mean_ns"`
	StdDevNS float64   `json:"stddev_ns"`
	MinNS    float64   `json:"min_ns"`
	MaxNS    float64   `json:"max_ns"`
	Samples  []float64 `json:"samples"`
}

func printTimers(timers []*perftimer.Timer) error {
	if IsJSONOutput() {
		results := make([]runResult, 0, len(timers))
		for _, timer := range timers {
			st, err := timer.Stats()
			if err != nil {
				return err
			}
			results = append(results, runResult{
				Timer:    timer.Name(),
				Count:    st.Count,
				TotalNS:  st.Total,
				MeanNS:   st.Mean,
				StdDevNS: st.StdDev,
				MinNS:    st.Min,
				MaxNS:    st.Max,
				Samples:  timer.Samples(),
			})
		}
		output, err := json.MarshalIndent(results, "", "  ")
		if err != nil {
			return fmt.Errorf("failed to marshal JSON: %w", err)
		}
		fmt.Println(string(output))
		return nil
	}

	table := tablewriter.NewWriter(os.Stdout)
	table.Header("Timer", "Trials", "Total", "Average", "Std Dev", "Fastest", "Slowest")

	for _, timer := range timers {
		st, err := timer.Stats()
		if err != nil {
			return err
		}
		table.Append(
			timer.Name(),
			fmt.Sprintf("%d", st.Count),
			perftimer.FormatDuration(st.Total),
			perftimer.FormatDuration(st.Mean),
			perftimer.FormatDuration(st.StdDev),
			perftimer.FormatDuration(st.Min),
			perftimer.FormatDuration(st.Max),
		)
	}

	return table.Render()
}

// exportCSV saves each timer's raw timing data. A single timer goes to the
// --csv path as given; multiple scenario steps get the step name appended
// before the extension.
func exportCSV(timers []*perftimer.Timer) error {
	for _, timer := range timers {
		path := csvPath(runCSV, timer.Name(), len(timers) > 1)
		if err := timer.SaveTimingData(path); err != nil {
			return err
		}
		logrus.Infof("timing data written to %s", path)
	}
	return nil
}

func csvPath(base, timerName string, multi bool) string {
	if !multi {
		return base
	}
	ext := filepath.Ext(base)
	return fmt.Sprintf("%s-%s%s", strings.TrimSuffix(base, ext), sanitize(timerName), ext)
}

func persistRuns(timers []*perftimer.Timer) error {
	st, err := openStore()
	if err != nil {
		return err
	}
	defer st.Close()

	host := hostinfo.Collect()
	for _, timer := range timers {
		run := &store.Run{
			Timer:   timer.Name(),
			Samples: timer.Samples(),
			Host:    host,
		}
		if err := st.SaveRun(run); err != nil {
			return err
		}
		logrus.Infof("run %s stored as %s", timer.Name(), run.ID)
	}
	return nil
}

// sanitize makes a timer name safe to embed in a file name.
func sanitize(name string) string {
	return strings.Map(func(r rune) rune {
		switch {
		case r >= 'a' && r <= 'z', r >= 'A' && r <= 'Z', r >= '0' && r <= '9', r == '-', r == '_':
			return r
		default:
			return '_'
		}
	}, name)
}
