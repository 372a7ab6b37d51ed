// langnames-stream reads language tags from stdin, one per line, and writes
// a row with their display names as soon as each line is read.
//
// Usage:
//
//	printf 'en\nfr\n' | langnames-stream
package main

import (
	"context"
	"errors"
	"fmt"
	"io"
	"os"

	"github.com/RobinCoderZhao/langnames/internal/langnames/config"
	"github.com/RobinCoderZhao/langnames/internal/langnames/report"
	"github.com/spf13/cobra"
)

var version = "dev"

func main() {
	os.Exit(run(context.Background(), os.Args[1:], os.Stdin, os.Stdout, os.Stderr))
}

// run executes the command and returns the process exit code.
func run(ctx context.Context, args []string, stdin io.Reader, stdout, stderr io.Writer) int {
	cmd := rootCmd(stdin, stdout, stderr)
	if args == nil {
		// cobra falls back to os.Args when given nil.
		args = []string{}
	}
	cmd.SetArgs(args)

	err := cmd.ExecuteContext(ctx)
	switch {
	case err == nil:
		return 0
	case errors.Is(err, report.ErrIncomplete):
		return 1
	default:
		fmt.Fprintf(stderr, "langnames-stream: %v\n", err)
		return 1
	}
}

func rootCmd(stdin io.Reader, stdout, stderr io.Writer) *cobra.Command {
	cmd := &cobra.Command{
		Use:           "langnames-stream",
		Short:         "Print display names for language tags read from stdin",
		Long:          "Reads one BCP 47 language tag per line from stdin and writes its English and self-localized display names, flushing every row.",
		Version:       version,
		Args:          cobra.NoArgs,
		SilenceErrors: true,
		SilenceUsage:  true,
		RunE: func(cmd *cobra.Command, args []string) error {
			logger := config.Logger(stderr)

			r := report.New(stdout, stderr)
			r.Logger = logger

			logger.Debug("reading language tags from stdin")
			return r.Stream(cmd.Context(), stdin)
		},
	}
	cmd.SetIn(stdin)
	cmd.SetOut(stdout)
	cmd.SetErr(stderr)
	return cmd
}
