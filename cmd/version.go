package cmd

import (
	"fmt"
	"runtime"

	"github.com/spf13/cobra"
)

var (
	ver       = "dev"
	commit    = "none"
	buildDate = "unknown"
)

func NewVersionCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "version",
		Short: "Print the version information",
		Run: func(cmd *cobra.Command, args []string) {
			out := cmd.OutOrStdout()
			fmt.Fprintf(out, "gutwipe version %s\n", ver)
			fmt.Fprintf(out, "  Git commit: %s\n", commit)
			fmt.Fprintf(out, "  Built: %s\n", buildDate)
			fmt.Fprintf(out, "  Go version: %s\n", runtime.Version())
			fmt.Fprintf(out, "  OS/Arch: %s/%s\n", runtime.GOOS, runtime.GOARCH)
		},
	}
}
