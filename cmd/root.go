package cmd

import (
	"fmt"

	"github.com/spf13/cobra"
	"github.com/spf13/pflag"
	"go.uber.org/zap"

	"gutwipe/config"
	"gutwipe/utils/command"
	"gutwipe/utils/logging"
)

// app carries state built once flags are parsed.
type app struct {
	configFile string
	utils      command.Utils
}

// flagKeys maps config keys to the flags that override them.
var flagKeys = map[string]string{
	"log.level":     "log-level",
	"log.format":    "log-format",
	"random_source": "random-source",
	"chunk_size":    "chunk-size",
	"report.dir":    "report-dir",
}

func (a *app) init(cmd *cobra.Command) error {
	mgr, err := config.NewManager(a.configFile)
	if err != nil {
		return err
	}

	for key, name := range flagKeys {
		if f := lookupFlag(cmd, name); f != nil {
			if err := mgr.BindFlag(key, f); err != nil {
				return fmt.Errorf("failed to bind flag %s: %w", name, err)
			}
		}
	}

	cfg, err := mgr.Load()
	if err != nil {
		return err
	}
	if f := lookupFlag(cmd, "no-progress"); f != nil && f.Changed {
		cfg.Progress = false
	}

	logger, err := logging.New(cfg.Log.Level, cfg.Log.Format)
	if err != nil {
		return err
	}
	if used := mgr.ConfigFileUsed(); used != "" {
		logger.Debug("loaded config", zap.String("path", used))
	}

	a.utils = command.NewUtils(cfg, logger)
	return nil
}

func (a *app) sync() {
	if a.utils != nil {
		_ = a.utils.GetLogger().Sync()
	}
}

func lookupFlag(cmd *cobra.Command, name string) *pflag.Flag {
	if f := cmd.Flags().Lookup(name); f != nil {
		return f
	}
	return cmd.InheritedFlags().Lookup(name)
}

// NewRootCmd creates the root command for gutwipe CLI.
func NewRootCmd() *cobra.Command {
	a := &app{}

	rootCmd := &cobra.Command{
		Use:   "gutwipe",
		Short: "Securely overwrite and delete a file using the Gutmann method.",
		Long: `gutwipe overwrites a file 35 times with the Gutmann pattern schedule,
flushing every write to disk, and then deletes it.

Overwriting file content does not guarantee destruction on journaling or
copy-on-write filesystems, SSDs, snapshots or files with several hard links.`,
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			return a.init(cmd)
		},
		PersistentPostRun: func(cmd *cobra.Command, args []string) {
			a.sync()
		},
	}

	rootCmd.PersistentFlags().StringVar(&a.configFile, "config", "", "Config file (default .gutwipe.yaml in the working or home directory)")
	rootCmd.PersistentFlags().String("log-level", "", "Log level: debug, info, warn, error")
	rootCmd.PersistentFlags().String("log-format", "", "Log format: console or json")

	// Add individual commands
	rootCmd.AddCommand(NewWipeCmd(a))
	rootCmd.AddCommand(NewInfoCmd(a))
	rootCmd.AddCommand(NewReportsCmd(a))
	rootCmd.AddCommand(NewScheduleCmd())
	rootCmd.AddCommand(NewVersionCmd())

	return rootCmd
}
