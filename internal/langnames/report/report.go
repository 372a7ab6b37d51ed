// Package report writes language name tables in the batch and streaming
// layouts.
package report

import (
	"bufio"
	"context"
	"errors"
	"fmt"
	"io"
	"log/slog"

	"github.com/RobinCoderZhao/langnames/pkg/i18n"
)

const (
	// BatchHeader is the first line of batch output.
	BatchHeader = "# Language tag\tEnglish display name\tLocalized display name"
	// StreamHeader is the first line of streaming output.
	StreamHeader = "# Language tag\tEnglish display name\tLocalized display name\tError message, if any"
)

// ErrIncomplete is returned after all input was processed when at least one
// tag was invalid. The diagnostic warning has already been written.
var ErrIncomplete = errors.New("some language tags were invalid")

// Runner resolves tags and writes rows to Out and diagnostics to Diag.
// A nil Resolver uses the default one and a nil Logger discards records.
type Runner struct {
	Resolver *i18n.Resolver
	Out      io.Writer
	Diag     io.Writer
	Logger   *slog.Logger
}

// New creates a Runner with the default resolver and a discarding logger.
func New(out, diag io.Writer) *Runner {
	return &Runner{
		Resolver: i18n.NewResolver(nil),
		Out:      out,
		Diag:     diag,
		Logger:   slog.New(slog.DiscardHandler),
	}
}

// Batch writes the batch header and one row per valid tag, in order.
// Invalid tags are only reported on Diag.
func (r *Runner) Batch(tags []string) error {
	w := bufio.NewWriter(r.Out)

	if _, err := fmt.Fprintln(w, BatchHeader); err != nil {
		return fmt.Errorf("write header: %w", err)
	}

	hadErrors := false
	for _, tag := range tags {
		rec := r.resolve(tag)
		if !rec.Valid() {
			fmt.Fprintf(r.Diag, "Invalid language tag: %s\n", tag)
			hadErrors = true
			continue
		}
		if _, err := fmt.Fprintf(w, "%s\t%s\t%s\n", rec.Tag, rec.EnglishName, rec.LocalizedName); err != nil {
			return fmt.Errorf("write row for %q: %w", tag, err)
		}
	}

	if err := w.Flush(); err != nil {
		return fmt.Errorf("flush output: %w", err)
	}

	if hadErrors {
		fmt.Fprintln(r.Diag, "Warning: Some language tags were invalid. Output is incomplete.")
		return ErrIncomplete
	}
	return nil
}

// Stream reads one tag per line from in until EOF and writes one row per
// line, flushing after the header and after every row so a consumer on the
// other end of a pipe sees each result as soon as it is produced.
func (r *Runner) Stream(ctx context.Context, in io.Reader) error {
	w := bufio.NewWriter(r.Out)
	writeRow := func(format string, args ...any) error {
		if _, err := fmt.Fprintf(w, format, args...); err != nil {
			return err
		}
		return w.Flush()
	}

	if err := writeRow("%s\n", StreamHeader); err != nil {
		return fmt.Errorf("write header: %w", err)
	}

	br := bufio.NewReader(in)
	hadErrors := false
	lineNum := 0
	for {
		if err := ctx.Err(); err != nil {
			return err
		}

		line, readErr := br.ReadString('\n')
		if readErr != nil && readErr != io.EOF {
			return fmt.Errorf("read input: %w", readErr)
		}
		if line == "" && readErr == io.EOF {
			break
		}
		lineNum++

		tag := i18n.TrimLineEnding(line)
		rec := r.resolve(tag)

		var err error
		if rec.Valid() {
			err = writeRow("%s\t%s\t%s\t\n", rec.Tag, rec.EnglishName, rec.LocalizedName)
		} else {
			hadErrors = true
			fmt.Fprintf(r.Diag, "Invalid language tag on line %d: %s\n", lineNum, tag)
			// Four columns like the header: both names empty, message last.
			err = writeRow("%s\t\t\t%s\n", rec.Tag, rec.ErrorMessage())
		}
		if err != nil {
			return fmt.Errorf("write row for line %d: %w", lineNum, err)
		}

		if readErr == io.EOF {
			break
		}
	}

	if hadErrors {
		fmt.Fprintln(r.Diag, "Warning: Some language tags were invalid.")
		return ErrIncomplete
	}
	return nil
}

func (r *Runner) resolve(tag string) i18n.Record {
	var rec i18n.Record
	if r.Resolver != nil {
		rec = r.Resolver.Resolve(tag)
	} else {
		rec = i18n.Resolve(tag)
	}

	if r.Logger == nil {
		return rec
	}
	if rec.Valid() {
		r.Logger.Debug("resolved language tag", "tag", tag, "english", rec.EnglishName, "localized", rec.LocalizedName)
	} else {
		r.Logger.Debug("invalid language tag", "tag", tag, "error", rec.Err)
	}
	return rec
}
