// langnames prints the English and self-localized display names of the
// language tags given on the command line.
//
// Usage:
//
//	langnames en fr pt-br
package main

import (
	"errors"
	"fmt"
	"io"
	"os"

	"github.com/RobinCoderZhao/langnames/internal/langnames/config"
	"github.com/RobinCoderZhao/langnames/internal/langnames/report"
	"github.com/spf13/cobra"
)

const usage = `This program should be passed, on the command line, a list of language tags.
Example: langnames en fr pt-br
`

var errUsage = errors.New("no language tags given")

func main() {
	os.Exit(run(os.Args[1:], os.Stdout, os.Stderr))
}

// run executes the command and returns the process exit code.
func run(args []string, stdout, stderr io.Writer) int {
	cmd := rootCmd(stdout, stderr)
	if args == nil {
		// cobra falls back to os.Args when given nil.
		args = []string{}
	}
	cmd.SetArgs(args)

	err := cmd.Execute()
	switch {
	case err == nil:
		return 0
	case errors.Is(err, errUsage), errors.Is(err, report.ErrIncomplete):
		return 1
	default:
		fmt.Fprintf(stderr, "langnames: %v\n", err)
		return 1
	}
}

func rootCmd(stdout, stderr io.Writer) *cobra.Command {
	cmd := &cobra.Command{
		Use:           "langnames <tag> [<tag> ...]",
		Short:         "Print display names for language tags",
		Long:          "Resolves each BCP 47 language tag and prints its English and self-localized display names as tab-separated rows.",
		SilenceErrors: true,
		SilenceUsage:  true,
		RunE: func(cmd *cobra.Command, args []string) error {
			if len(args) == 0 {
				fmt.Fprint(stderr, usage)
				return errUsage
			}
			return runBatch(args, stdout, stderr)
		},
	}
	// Every argument is a tag, including ones that look like flags.
	cmd.DisableFlagParsing = true
	cmd.SetOut(stdout)
	cmd.SetErr(stderr)
	return cmd
}

func runBatch(tags []string, stdout, stderr io.Writer) error {
	logger := config.Logger(stderr)

	r := report.New(stdout, stderr)
	r.Logger = logger

	logger.Debug("resolving language tags", "count", len(tags))
	return r.Batch(tags)
}
