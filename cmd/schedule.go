package cmd

import (
	"fmt"
	"io"

	"github.com/spf13/cobra"

	"gutwipe/utils/gutmann"
)

func NewScheduleCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "schedule",
		Short: "Print the 35-pass Gutmann plan",
		Long: `Print the 35-pass plan. Pattern rows refer to the table before it is
shuffled; every wipe shuffles the rows into a fresh random order.`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runSchedule(cmd.OutOrStdout())
		},
	}
}

func runSchedule(out io.Writer) error {
	schedule := gutmann.DefaultSchedule()
	patterns := gutmann.DefaultPatterns()

	for pass := 1; pass <= gutmann.Passes; pass++ {
		step, err := schedule.Step(pass)
		if err != nil {
			return err
		}
		if step.Kind == gutmann.Fixed {
			p := patterns[step.Row]
			fmt.Fprintf(out, "Pass %02d: %-6s row %2d  %02X %02X %02X\n", step.Pass, step.Kind, step.Row, p[0], p[1], p[2])
			continue
		}
		fmt.Fprintf(out, "Pass %02d: %s\n", step.Pass, step.Kind)
	}
	fmt.Fprintf(out, "\n%d passes x %d sub-passes, every write flushed to disk.\n", gutmann.Passes, gutmann.SubPasses)
	return nil
}
