// zarc archives a file or directory into a compressed container chosen
// by the destination suffix, and extracts such archives back.
package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"zarc/pkg/core"
	"zarc/pkg/progress"
)

func main() {
	if err := newRootCommand().Execute(); err != nil {
		fmt.Fprintf(os.Stderr, "error: %v\n", err)
		os.Exit(1)
	}
}

func newRootCommand() *cobra.Command {
	root := &cobra.Command{
		Use:   "zarc",
		Short: "Archive and extract files with bzip2, zstd, gzip, xz, or lz4 compression",
		Long: `zarc compresses a file or directory into a container chosen by the
destination suffix and reverses the operation. Raw suffixes (.bz2, .zst,
.gz, .xz, .lz4) compress a single file's bytes directly; tar suffixes
(.tar.bz2, .tar.zst, .tgz, ...) wrap a tar stream first, which is what
directory sources require.`,
		SilenceUsage:  true,
		SilenceErrors: true,
	}
	root.AddCommand(newArchiveCommand(), newExtractCommand())
	return root
}

func newArchiveCommand() *cobra.Command {
	var opts core.Options
	cmd := &cobra.Command{
		Use:   "archive <source> <destination>",
		Short: "Archive a file or directory",
		Example: `  # Compress a single file with zstd
  zarc archive notes.txt notes.txt.zst

  # Pack a directory into a bzip2-compressed tarball, timing the run
  zarc archive data/ backup.tar.bz2 --benchmark

  # Show progress while archiving
  zarc archive big.bin big.bin.xz --progress`,
		Args: cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			_, err := newArchiver(cmd, opts).Archive(args[0], args[1], opts)
			return err
		},
	}
	cmd.Flags().BoolVar(&opts.Progress, "progress", false, "show a progress bar")
	cmd.Flags().BoolVar(&opts.Benchmark, "benchmark", false, "report elapsed time, sizes, and compression ratio")
	return cmd
}

func newExtractCommand() *cobra.Command {
	var opts core.Options
	cmd := &cobra.Command{
		Use:   "extract <archive> [destination]",
		Short: "Extract an archive",
		Example: `  # Unpack into the current directory
  zarc extract notes.txt.zst

  # Unpack a tarball into a new directory, with progress
  zarc extract backup.tar.bz2 restored/ --progress`,
		Args: cobra.RangeArgs(1, 2),
		RunE: func(cmd *cobra.Command, args []string) error {
			destDir := "."
			if len(args) == 2 {
				destDir = args[1]
			}
			_, err := newArchiver(cmd, opts).Extract(args[0], destDir, opts)
			return err
		},
	}
	cmd.Flags().BoolVar(&opts.Progress, "progress", false, "show a progress bar")
	cmd.Flags().BoolVar(&opts.Benchmark, "benchmark", false, "report elapsed time")
	return cmd
}

// newArchiver wires a console reporter when progress display is
// requested, printing to the command's output stream either way.
func newArchiver(cmd *cobra.Command, opts core.Options) *core.Archiver {
	out := cmd.OutOrStdout()
	reporter := progress.Discard
	if opts.Progress {
		reporter = progress.Console(out)
	}
	return core.New(out, reporter)
}
