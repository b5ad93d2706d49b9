package convert

import (
	"bytes"
	"compress/gzip"
	"errors"
	"io"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
	"go.uber.org/zap/zaptest/observer"

	"github.com/inodb/clinvar2vcf/internal/clinvar"
)

func TestRun_MatchesExpectedVCF(t *testing.T) {
	input := findTestFile(t, "clinvar_sample.tsv")
	want, err := os.ReadFile(findTestFile(t, "clinvar_sample.vcf"))
	require.NoError(t, err)

	out := filepath.Join(t.TempDir(), "out.vcf")
	n, err := Run(Options{InputPath: input, OutputPath: out})
	require.NoError(t, err)
	assert.Equal(t, 4, n)

	got, err := os.ReadFile(out)
	require.NoError(t, err)
	assert.Equal(t, string(want), string(got))
}

func TestRun_Idempotent(t *testing.T) {
	input := findTestFile(t, "clinvar_sample.tsv")
	out := filepath.Join(t.TempDir(), "out.vcf")

	_, err := Run(Options{InputPath: input, OutputPath: out})
	require.NoError(t, err)
	first, err := os.ReadFile(out)
	require.NoError(t, err)

	_, err = Run(Options{InputPath: input, OutputPath: out})
	require.NoError(t, err)
	second, err := os.ReadFile(out)
	require.NoError(t, err)

	assert.Equal(t, first, second)
}

func TestRun_OverwritesOutput(t *testing.T) {
	input := findTestFile(t, "clinvar_sample.tsv")
	out := filepath.Join(t.TempDir(), "out.vcf")
	require.NoError(t, os.WriteFile(out, bytes.Repeat([]byte("stale\n"), 10000), 0644))

	_, err := Run(Options{InputPath: input, OutputPath: out})
	require.NoError(t, err)

	got, err := os.ReadFile(out)
	require.NoError(t, err)
	assert.NotContains(t, string(got), "stale")
}

func TestRun_BGZFOutput(t *testing.T) {
	input := findTestFile(t, "clinvar_sample.tsv")
	want, err := os.ReadFile(findTestFile(t, "clinvar_sample.vcf"))
	require.NoError(t, err)

	out := filepath.Join(t.TempDir(), "out.vcf.gz")
	_, err = Run(Options{InputPath: input, OutputPath: out})
	require.NoError(t, err)

	f, err := os.Open(out)
	require.NoError(t, err)
	defer f.Close()

	gz, err := gzip.NewReader(f)
	require.NoError(t, err)
	got, err := io.ReadAll(gz)
	require.NoError(t, err)
	assert.Equal(t, string(want), string(got))
}

func TestRun_ShortRowFails(t *testing.T) {
	input := findTestFile(t, "clinvar_short_row.tsv")
	out := filepath.Join(t.TempDir(), "out.vcf")

	_, err := Run(Options{InputPath: input, OutputPath: out})
	require.Error(t, err)

	var pe *clinvar.ParseError
	require.True(t, errors.As(err, &pe))
	assert.Equal(t, 3, pe.Line)

	// The short row is never written, truncated or otherwise
	got, err := os.ReadFile(out)
	require.NoError(t, err)
	assert.NotContains(t, string(got), "32906729")
	assert.NotContains(t, string(got), "7577120")
}

func TestRun_MissingInput(t *testing.T) {
	dir := t.TempDir()
	out := filepath.Join(dir, "out.vcf")

	_, err := Run(Options{InputPath: filepath.Join(dir, "missing.tsv"), OutputPath: out})
	require.Error(t, err)
	assert.True(t, errors.Is(err, os.ErrNotExist))

	// Output is not created when the input cannot be opened
	_, statErr := os.Stat(out)
	assert.True(t, os.IsNotExist(statErr))
}

func TestRun_UnwritableOutput(t *testing.T) {
	input := findTestFile(t, "clinvar_sample.tsv")
	out := filepath.Join(t.TempDir(), "no", "such", "dir", "out.vcf")

	_, err := Run(Options{InputPath: input, OutputPath: out})
	require.Error(t, err)
	assert.Contains(t, err.Error(), "create vcf file")
}

func TestRun_SummaryLog(t *testing.T) {
	core, logs := observer.New(zap.InfoLevel)

	input := findTestFile(t, "clinvar_sample.tsv")
	out := filepath.Join(t.TempDir(), "out.vcf")

	_, err := Run(Options{InputPath: input, OutputPath: out, Logger: zap.New(core)})
	require.NoError(t, err)

	entries := logs.All()
	require.Len(t, entries, 1)
	assert.Equal(t, "Written 4 variants to "+out+".", entries[0].Message)
	assert.Equal(t, int64(3), entries[0].ContextMap()["skipped_lines"])
}

// findTestFile locates a test data file.
func findTestFile(t *testing.T, name string) string {
	t.Helper()

	paths := []string{
		filepath.Join("testdata", name),
		filepath.Join("..", "..", "testdata", name),
	}

	for _, p := range paths {
		if _, err := os.Stat(p); err == nil {
			return p
		}
	}

	t.Fatalf("Test file not found: %s", name)
	return ""
}
