package cmd

import (
	"context"
	"errors"
	"fmt"
	"io"

	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"gutwipe/utils/command"
	"gutwipe/utils/gutmann"
	"gutwipe/utils/prompt"
	"gutwipe/utils/report"
)

type wipeOptions struct {
	yes  bool
	keep bool
}

func NewWipeCmd(a *app) *cobra.Command {
	var opts wipeOptions

	wipeCmd := &cobra.Command{
		Use:   "wipe [file]",
		Short: "Overwrite a file 35 times and delete it",
		Long: `Overwrite a file with the 35-pass Gutmann schedule and then delete it.

The file is opened write-only under an exclusive lock. Every chunk is flushed
to disk before the next one is written. A failed or interrupted run leaves the
file partially overwritten; it is not resumed.`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			confirmer := prompt.NewConfirmer(nil, nil)
			if opts.yes {
				confirmer = prompt.Always(true)
			}
			return runWipe(cmd.Context(), a.utils, confirmer, cmd.OutOrStdout(), args[0], opts)
		},
	}

	wipeCmd.Flags().BoolVarP(&opts.yes, "yes", "y", false, "Overwrite and delete without confirmation")
	wipeCmd.Flags().BoolVar(&opts.keep, "keep", false, "Keep the overwritten file instead of deleting it")
	wipeCmd.Flags().String("random-source", "", "Random source: crypto or clock")
	wipeCmd.Flags().Int("chunk-size", 0, "Largest single write in bytes")
	wipeCmd.Flags().Bool("no-progress", false, "Do not print the pass counter")
	wipeCmd.Flags().String("report-dir", "", "Directory to write the erasure report to")

	return wipeCmd
}

func runWipe(ctx context.Context, utils command.Utils, confirmer prompt.Confirmer, out io.Writer, path string, opts wipeOptions) error {
	cfg := utils.GetConfig()
	files := utils.GetFileUtils()
	logger := utils.GetLogger().With(zap.String("path", path))

	info, err := files.GetFileInfo(path)
	if err != nil {
		return err
	}
	if !info.Mode.IsRegular() {
		return fmt.Errorf("%s is not a regular file", path)
	}

	printFileInfo(out, info)
	fmt.Fprintln(out)

	ok, err := confirmer.Confirm(fmt.Sprintf("After overwrite, %q should be deleted without recovery. Overwrite it", path), false)
	if err != nil {
		return err
	}
	if !ok {
		return errors.New("wipe cancelled by user")
	}

	reports, err := utils.GetReportManager(ctx)
	if err != nil {
		return err
	}
	rep := report.New(info, cfg.RandomSource, cfg.ChunkSize)

	res, runErr := overwrite(ctx, utils, out, path)
	rep.Complete(res, runErr)
	if runErr == nil {
		logger.Info("file overwritten", zap.Int64("size", info.Size), zap.Int64("bytes_written", rep.BytesWritten))
		fmt.Fprintf(out, "File %s successfully overwritten using the Gutmann method.\n", path)
	} else {
		logger.Error("wipe failed", zap.Error(runErr))
		fmt.Fprintf(out, "Cannot overwrite the file: %v\n", runErr)
	}

	// an interrupted run stops here; the file is left for the user to deal with
	if ctx.Err() == nil {
		if err := deleteOrDigest(utils, confirmer, out, path, opts, rep); err != nil {
			logger.Error("delete failed", zap.Error(err))
			fmt.Fprintf(out, "Cannot delete the file: %v\n", err)
			if runErr == nil {
				runErr = err
			}
		}
	}

	if reports != nil {
		locations, err := reports.Publish(context.WithoutCancel(ctx), rep)
		for _, loc := range locations {
			fmt.Fprintf(out, "Report: %s\n", loc)
		}
		if err != nil {
			logger.Warn("failed to publish report", zap.Error(err))
			if runErr == nil {
				runErr = fmt.Errorf("failed to publish report: %w", err)
			}
		}
	}

	if runErr != nil {
		return fmt.Errorf("failed to wipe %s: %w", path, runErr)
	}
	return nil
}

// overwrite holds the exclusive handle for exactly the duration of the run.
func overwrite(ctx context.Context, utils command.Utils, out io.Writer, path string) (res *gutmann.Result, err error) {
	cfg := utils.GetConfig()

	f, err := utils.GetFileUtils().OpenExclusive(path)
	if err != nil {
		return nil, gutmann.NewOpenError(err)
	}
	defer func() {
		if cerr := f.Close(); cerr != nil && err == nil {
			err = cerr
		}
	}()

	src, err := utils.NewSource()
	if err != nil {
		return nil, err
	}

	opts := []gutmann.Option{
		gutmann.WithSource(src),
		gutmann.WithChunkSize(cfg.ChunkSize),
		gutmann.WithLogger(utils.GetLogger()),
	}
	if cfg.Progress {
		fmt.Fprintln(out, "Overwrite this file:")
		opts = append(opts, gutmann.WithProgress(passCounter(out)))
		defer fmt.Fprintln(out)
	}

	return gutmann.NewOverwriter(opts...).Overwrite(ctx, f, f.Size())
}

// passCounter prints "01 02 ... 07" and breaks the line every seven passes.
func passCounter(out io.Writer) gutmann.ProgressFunc {
	return func(pass int) {
		sep := " "
		if pass%7 == 0 {
			sep = "\n"
		}
		fmt.Fprintf(out, "%02d%s", pass, sep)
	}
}

func deleteOrDigest(utils command.Utils, confirmer prompt.Confirmer, out io.Writer, path string, opts wipeOptions, rep *report.Report) error {
	files := utils.GetFileUtils()

	if !opts.keep {
		ok, err := confirmer.Confirm("Delete this file", true)
		if err != nil {
			return err
		}
		if ok {
			if err := files.Remove(path); err != nil {
				return err
			}
			rep.Deleted = true
			fmt.Fprintln(out, "File successfully deleted.")
			return nil
		}
	}

	// the file stays; record what is left on disk
	if sum, err := files.CalculateHash(path, nil); err == nil {
		rep.Digest = sum
	}
	return nil
}
