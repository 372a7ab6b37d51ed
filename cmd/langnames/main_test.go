package main

import (
	"bytes"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/require"
)

// isolateConfig keeps a developer's ~/.langnames.yaml out of the tests.
func isolateConfig(t *testing.T) string {
	t.Helper()
	t.Setenv("HOME", t.TempDir())
	dir := t.TempDir()
	t.Chdir(dir)
	return dir
}

func TestRun_NoArgs(t *testing.T) {
	isolateConfig(t)
	var stdout, stderr bytes.Buffer

	code := run(nil, &stdout, &stderr)

	require.Equal(t, 1, code)
	require.Empty(t, stdout.String())
	require.Contains(t, stderr.String(), "a list of language tags")
	require.Contains(t, stderr.String(), "Example: langnames en fr pt-br")
}

func TestRun_AllValid(t *testing.T) {
	isolateConfig(t)
	var stdout, stderr bytes.Buffer

	code := run([]string{"en", "fr"}, &stdout, &stderr)

	require.Equal(t, 0, code)
	require.Equal(t,
		"# Language tag\tEnglish display name\tLocalized display name\n"+
			"en\tEnglish\tEnglish\n"+
			"fr\tFrench\tfrançais\n",
		stdout.String())
	require.Empty(t, stderr.String())
}

func TestRun_InvalidTag(t *testing.T) {
	isolateConfig(t)
	var stdout, stderr bytes.Buffer

	code := run([]string{"en", "zz-ZZ-bogus-tag"}, &stdout, &stderr)

	require.Equal(t, 1, code)
	lines := strings.Split(strings.TrimSuffix(stdout.String(), "\n"), "\n")
	require.Len(t, lines, 2)
	require.Equal(t, "en\tEnglish\tEnglish", lines[1])
	require.Contains(t, stderr.String(), "Invalid language tag: zz-ZZ-bogus-tag")
	require.Contains(t, stderr.String(), "Output is incomplete.")
}

func TestRun_CaseInsensitive(t *testing.T) {
	isolateConfig(t)
	var lower, upper, stderr bytes.Buffer

	require.Equal(t, 0, run([]string{"pt-br"}, &lower, &stderr))
	require.Equal(t, 0, run([]string{"PT-BR"}, &upper, &stderr))

	lowerRow := strings.SplitN(strings.Split(lower.String(), "\n")[1], "\t", 2)
	upperRow := strings.SplitN(strings.Split(upper.String(), "\n")[1], "\t", 2)
	require.Equal(t, "pt-br", lowerRow[0])
	require.Equal(t, "PT-BR", upperRow[0])
	require.Equal(t, lowerRow[1], upperRow[1])
}

func TestRun_DebugLogging(t *testing.T) {
	dir := isolateConfig(t)
	require.NoError(t, os.WriteFile(filepath.Join(dir, ".langnames.yaml"), []byte("log:\n  level: debug\n"), 0o644))
	var stdout, stderr bytes.Buffer

	code := run([]string{"de"}, &stdout, &stderr)

	require.Equal(t, 0, code)
	require.Contains(t, stdout.String(), "de\tGerman\tDeutsch\n")
	require.Contains(t, stderr.String(), "resolved language tag")
}

func TestRun_BadConfigFallsBack(t *testing.T) {
	isolateConfig(t)
	t.Setenv("LANGNAMES_LOG_LEVEL", "chatty")
	var stdout, stderr bytes.Buffer

	code := run([]string{"en"}, &stdout, &stderr)

	require.Equal(t, 0, code)
	require.Contains(t, stdout.String(), "en\tEnglish\tEnglish\n")
	require.Contains(t, stderr.String(), "invalid log level")
}

func TestRun_FlagLikeArgsAreTags(t *testing.T) {
	isolateConfig(t)
	header := "# Language tag\tEnglish display name\tLocalized display name\n"

	for _, bad := range []string{"-x", "--help", "-v", "--version", "--"} {
		t.Run(bad, func(t *testing.T) {
			var stdout, stderr bytes.Buffer

			code := run([]string{"en", bad}, &stdout, &stderr)

			require.Equal(t, 1, code)
			require.Equal(t, header+"en\tEnglish\tEnglish\n", stdout.String())
			require.Contains(t, stderr.String(), "Invalid language tag: "+bad+"\n")
			require.Contains(t, stderr.String(), "Output is incomplete.")
		})
	}
}

func TestRun_LeadingDoubleDash(t *testing.T) {
	isolateConfig(t)
	var stdout, stderr bytes.Buffer

	code := run([]string{"--", "en"}, &stdout, &stderr)

	require.Equal(t, 1, code)
	require.Contains(t, stdout.String(), "en\tEnglish\tEnglish\n")
	require.Contains(t, stderr.String(), "Invalid language tag: --\n")
}
