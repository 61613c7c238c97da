package cmd

import (
	"errors"
	"fmt"
	"io"
	"time"

	"github.com/dustin/go-humanize"
	"github.com/spf13/cobra"

	"gutwipe/utils/command"
	"gutwipe/utils/report"
)

func NewReportsCmd(a *app) *cobra.Command {
	var (
		limit  int
		since  string
		status string
	)

	reportsCmd := &cobra.Command{
		Use:   "reports",
		Short: "List erasure reports kept in the report directory",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			opts := report.QueryOptions{Limit: limit, Status: status}
			if since != "" {
				t, err := time.Parse("2006-01-02", since)
				if err != nil {
					return fmt.Errorf("invalid date format for --since, use YYYY-MM-DD: %w", err)
				}
				opts.Since = t
			}
			return runReports(a.utils, cmd.OutOrStdout(), opts)
		},
	}

	reportsCmd.Flags().IntVar(&limit, "limit", 0, "Limit the number of entries")
	reportsCmd.Flags().StringVar(&since, "since", "", "Show entries since date (YYYY-MM-DD)")
	reportsCmd.Flags().StringVar(&status, "status", "", "Only show reports with this status (success or failure)")
	reportsCmd.Flags().String("report-dir", "", "Directory holding erasure reports")

	return reportsCmd
}

func runReports(utils command.Utils, out io.Writer, opts report.QueryOptions) error {
	dir := utils.GetConfig().Report.Dir
	if dir == "" {
		return errors.New("no report directory configured (set report.dir or --report-dir)")
	}

	all, err := report.LoadDir(dir)
	if err != nil {
		return err
	}

	fmt.Fprintf(out, "Erasure reports in %s:\n", dir)
	reports := report.Query(all, opts)
	if len(reports) == 0 {
		fmt.Fprintln(out, "No reports found")
		return nil
	}

	for _, r := range reports {
		fmt.Fprintf(out, "\n%s\n", r.StartedAt.Local().Format(timeLayout))
		fmt.Fprintf(out, "  ID: %s\n", r.ID)
		fmt.Fprintf(out, "  File: %s (%s)\n", r.FullPath, humanize.IBytes(uint64(r.Size)))
		fmt.Fprintf(out, "  Status: %s, %d/35 passes\n", r.Status, r.PassesDone)
		fmt.Fprintf(out, "  Deleted: %t\n", r.Deleted)
		if r.Operator != "" {
			fmt.Fprintf(out, "  Operator: %s\n", r.Operator)
		}
		if r.Failure != nil {
			fmt.Fprintf(out, "  Error: %s\n", r.Failure.Message)
		}
	}

	stats := report.Summarize(all)
	if stats.Total > 1 {
		fmt.Fprintf(out, "\nStatistics:\n")
		fmt.Fprintf(out, "  Total: %d\n", stats.Total)
		fmt.Fprintf(out, "  Successful: %d\n", stats.Successful)
		fmt.Fprintf(out, "  Failed: %d\n", stats.Failed)
		fmt.Fprintf(out, "  Deleted: %d\n", stats.Deleted)
		fmt.Fprintf(out, "  Bytes written: %s\n", humanize.IBytes(uint64(stats.BytesWritten)))
	}

	return nil
}
