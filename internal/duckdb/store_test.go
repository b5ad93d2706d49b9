package duckdb

import (
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/inodb/clinvar2vcf/internal/clinvar"
)

func openInMemory(t *testing.T) *Store {
	t.Helper()
	s, err := Open("")
	require.NoError(t, err)
	t.Cleanup(func() { s.Close() })
	return s
}

func row(line string) *clinvar.Row {
	return clinvar.NewRow(strings.Split(line, "\t"))
}

var (
	brca1 = row("chr1\t12345\tA\tT\tsnv\t100\tBRCA1\tPathogenic\treviewed_by_expert_panel\tc.123A>T\tp.Lys41*\tLab1;Lab2\tCancer\t12345678\t1\t0")
	tp53  = row("17\t7577120\tC\tT\tsnv\t200;201\tTP53;WRAP53\tPathogenic;Benign\tcriteria provided\tc.818G>A\tp.Arg273His\tLab3\tLi-Fraumeni syndrome\t1;2\t1\t1")
)

func TestOpenClose(t *testing.T) {
	s := openInMemory(t)
	assert.NotNil(t, s.DB())
	assert.Equal(t, "", s.Path())
}

func TestOpen_CreatesDirectory(t *testing.T) {
	path := filepath.Join(t.TempDir(), "nested", "clinvar.duckdb")
	s, err := Open(path)
	require.NoError(t, err)
	defer s.Close()

	_, err = os.Stat(filepath.Dir(path))
	assert.NoError(t, err)
}

func TestWriteAndLookupVariants(t *testing.T) {
	s := openInMemory(t)

	require.NoError(t, s.WriteRows([]*clinvar.Row{brca1, tp53}))

	n, err := s.Count()
	require.NoError(t, err)
	assert.Equal(t, int64(2), n)

	got, err := s.LookupVariant("chr1", "12345", "A", "T")
	require.NoError(t, err)
	require.Len(t, got, 1)

	v := got[0]
	assert.Equal(t, "snv", v.MutationType)
	assert.Equal(t, "BRCA1", v.Symbol)
	assert.Equal(t, "Lab1,Lab2", v.Submitters)
	assert.True(t, v.Pathogenic)
	assert.False(t, v.Conflicted)
	assert.Equal(t, "MEASURESET=100;HGNC=BRCA1;CLNSIGSTR=Pathogenic;REVSTAT=reviewed_by_expert_panel;"+
		"HGVSC=c.123A>T;HGVSP=p.Lys41*;ALLSUBM=Lab1,Lab2;ALLTRAITS=Cancer;ALLPMID=12345678;PATHOGENIC", v.Info)

	missing, err := s.LookupVariant("chr1", "12345", "A", "G")
	require.NoError(t, err)
	assert.Empty(t, missing)
}

func TestWriteRows_Empty(t *testing.T) {
	s := openInMemory(t)
	require.NoError(t, s.WriteRows(nil))

	n, err := s.Count()
	require.NoError(t, err)
	assert.Equal(t, int64(0), n)
}

func TestSearchByGene(t *testing.T) {
	s := openInMemory(t)
	require.NoError(t, s.WriteRows([]*clinvar.Row{brca1, tp53}))

	got, err := s.SearchByGene("WRAP53")
	require.NoError(t, err)
	require.Len(t, got, 1)
	assert.Equal(t, "7577120", got[0].Pos)
	assert.Equal(t, "Li-Fraumeni_syndrome", got[0].Traits)
	assert.Equal(t, "criteria_provided", got[0].ReviewStatus)
	assert.True(t, got[0].Conflicted)

	// Symbol matching is on whole list elements
	got, err = s.SearchByGene("TP5")
	require.NoError(t, err)
	assert.Empty(t, got)
}

func TestClear(t *testing.T) {
	s := openInMemory(t)
	require.NoError(t, s.WriteRows([]*clinvar.Row{brca1}))
	require.NoError(t, s.Clear())

	n, err := s.Count()
	require.NoError(t, err)
	assert.Equal(t, int64(0), n)
}

func TestRecordLoad(t *testing.T) {
	s := openInMemory(t)

	path := filepath.Join(t.TempDir(), "clinvar.tsv")
	require.NoError(t, os.WriteFile(path, []byte("chrom\tpos\n"), 0644))

	fp, err := StatFile(path)
	require.NoError(t, err)
	assert.Equal(t, int64(10), fp.Size)

	require.NoError(t, s.RecordLoad(fp, 42))

	loads, err := s.Loads()
	require.NoError(t, err)
	require.Len(t, loads, 1)
	assert.Equal(t, path, loads[0].Source.Path)
	assert.Equal(t, int64(10), loads[0].Source.Size)
	assert.Equal(t, int64(42), loads[0].Variants)
}

func TestStatFile_Missing(t *testing.T) {
	_, err := StatFile(filepath.Join(t.TempDir(), "nope.tsv"))
	assert.Error(t, err)
}
