package i18n

import (
	"bufio"
	"errors"
	"fmt"
	"io"
	"strings"
)

// Names holds the display names of one tag in a names table.
type Names struct {
	EnglishName   string
	LocalizedName string
}

// ReadNames loads a tab-separated names table, as printed by langnames or
// langnames-stream, into a map keyed by tag. It is the entry point for
// programs that consume a generated table; the binaries only write tables.
//
// Blank lines and lines starting with '#' are skipped. Rows with fewer than
// three columns and rows carrying an error message in the fourth column are
// reported; all problems are returned together.
func ReadNames(r io.Reader) (map[string]Names, error) {
	result := make(map[string]Names)
	var errs []error

	br := bufio.NewReader(r)
	lineNum := 0
	for {
		line, readErr := br.ReadString('\n')
		if readErr != nil && readErr != io.EOF {
			return nil, fmt.Errorf("read names table: %w", readErr)
		}
		if line == "" && readErr == io.EOF {
			break
		}
		lineNum++

		line = TrimLineEnding(line)
		trimmed := strings.TrimSpace(line)
		if trimmed != "" && !strings.HasPrefix(trimmed, "#") {
			cells := strings.Split(line, "\t")
			switch {
			case len(cells) < 3:
				errs = append(errs, fmt.Errorf("line %d: row does not have at least three columns", lineNum))
			case len(cells) > 3 && cells[3] != "":
				errs = append(errs, fmt.Errorf("line %d: tag %q: %s", lineNum, cells[0], cells[3]))
			case len(errs) == 0:
				result[cells[0]] = Names{EnglishName: cells[1], LocalizedName: cells[2]}
			}
		}

		if readErr == io.EOF {
			break
		}
	}

	if len(errs) > 0 {
		return nil, errors.Join(errs...)
	}
	return result, nil
}

// TrimLineEnding strips a trailing "\n" or "\r\n" from line.
func TrimLineEnding(line string) string {
	line = strings.TrimSuffix(line, "\n")
	return strings.TrimSuffix(line, "\r")
}
