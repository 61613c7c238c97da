package cmd

import (
	"fmt"
	"io"

	"github.com/dustin/go-humanize"
	"github.com/spf13/cobra"

	"gutwipe/utils/command"
	"gutwipe/utils/file"
	"gutwipe/utils/gutmann"
)

const timeLayout = "2006-01-02 15:04:05"

func NewInfoCmd(a *app) *cobra.Command {
	return &cobra.Command{
		Use:   "info [file]",
		Short: "Show the metadata of a file and the cost of wiping it",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return runInfo(a.utils, cmd.OutOrStdout(), args[0])
		},
	}
}

func runInfo(utils command.Utils, out io.Writer, path string) error {
	info, err := utils.GetFileUtils().GetFileInfo(path)
	if err != nil {
		return err
	}
	printFileInfo(out, info)

	total := info.Size * gutmann.Passes * gutmann.SubPasses
	fmt.Fprintf(out, "Bytes to write: %s (%s)\n", humanize.IBytes(uint64(total)), humanize.Comma(total))
	fmt.Fprintf(out, "Chunk writes per pass: %d\n", chunksFor(info.Size, utils.GetConfig().ChunkSize)*gutmann.SubPasses)
	return nil
}

func printFileInfo(out io.Writer, info *file.FileInfo) {
	fmt.Fprintf(out, "Filename: %s\n", info.Name)
	if !info.CreatedAt.IsZero() {
		fmt.Fprintf(out, "Creation date: %s\n", info.CreatedAt.Format(timeLayout))
	}
	fmt.Fprintf(out, "Modified: %s\n", info.ModifiedAt.Format(timeLayout))
	fmt.Fprintf(out, "Filesize: %s (%s bytes)\n", humanize.IBytes(uint64(info.Size)), humanize.Comma(info.Size))
	fmt.Fprintf(out, "Mode: %s\n", info.Mode)
	fmt.Fprintf(out, "Full path: %s\n", info.FullPath)
}

func chunksFor(size int64, chunkSize int) int64 {
	if chunkSize <= 0 {
		chunkSize = gutmann.DefaultChunkSize
	}
	return (size + int64(chunkSize) - 1) / int64(chunkSize)
}
