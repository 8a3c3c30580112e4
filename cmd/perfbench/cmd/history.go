package cmd

import (
	"encoding/json"
	"fmt"
	"os"
	"time"

	"github.com/olekukonko/tablewriter"
	"github.com/spf13/cobra"

	"github.com/benchlab/perfkit/pkg/perftimer"
)

var historyLimit int

// historyCmd represents the history command
var historyCmd = &cobra.Command{
	Use:   "history",
	Short: "List persisted benchmark runs",
	Long:  `Retrieve and display benchmark runs from the results store, newest first.`,
	RunE:  runHistory,
}

func init() {
	rootCmd.AddCommand(historyCmd)
	historyCmd.Flags().IntVar(&historyLimit, "limit", 20, "maximum number of runs to list (0 = all)")
}

func runHistory(cmd *cobra.Command, args []string) error {
	st, err := openStore()
	if err != nil {
		return err
	}
	defer st.Close()

	runs, err := st.ListRuns(historyLimit)
	if err != nil {
		return err
	}

	if IsJSONOutput() {
		output, err := json.MarshalIndent(runs, "", "  ")
		if err != nil {
			return fmt.Errorf("failed to marshal JSON: %w", err)
		}
		fmt.Println(string(output))
		return nil
	}

	if len(runs) == 0 {
		fmt.Println("No runs stored")
		return nil
	}

	table := tablewriter.NewWriter(os.Stdout)
	table.Header("ID", "Timer", "Trials", "Average", "Fastest", "Slowest", "When")

	for _, run := range runs {
		stats, err := perftimer.Compute(run.Samples)
		if err != nil {
			return fmt.Errorf("run %s: %w", run.ID, err)
		}
		table.Append(
			run.ID,
			run.Timer,
			fmt.Sprintf("%d", stats.Count),
			perftimer.FormatDuration(stats.Mean),
			perftimer.FormatDuration(stats.Min),
			perftimer.FormatDuration(stats.Max),
			run.CreatedAt.Local().Format(time.RFC3339),
		)
	}

	return table.Render()
}
