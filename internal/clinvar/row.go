// Package clinvar reads the tab-separated ClinVar flat file and maps its
// rows onto VCF records.
package clinvar

import (
	"strings"

	"github.com/inodb/clinvar2vcf/internal/vcf"
)

// Column positions in the flat file.
const (
	ColChrom = iota
	ColPos
	ColRef
	ColAlt
	ColMutationType
	ColMeasureSet
	ColSymbol
	ColClinicalSignificance
	ColReviewStatus
	ColHGVSc
	ColHGVSp
	ColSubmitters
	ColTraits
	ColPubMedIDs
	ColPathogenic
	ColConflicted

	// NumColumns is the minimum number of fields in a data row.
	NumColumns
)

// Row is one data line of the flat file.
type Row struct {
	Chrom        string
	Pos          string
	Ref          string
	Alt          string
	MutationType string

	MeasureSet           []string
	Symbol               []string
	ClinicalSignificance []string
	ReviewStatus         []string
	HGVSc                []string
	HGVSp                []string
	Submitters           []string
	Traits               []string
	PubMedIDs            []string

	Pathogenic bool
	Conflicted bool
}

// NewRow builds a Row from the fields of a split data line.
// fields must hold at least NumColumns elements.
func NewRow(fields []string) *Row {
	return &Row{
		Chrom:                fields[ColChrom],
		Pos:                  fields[ColPos],
		Ref:                  fields[ColRef],
		Alt:                  fields[ColAlt],
		MutationType:         fields[ColMutationType],
		MeasureSet:           splitMulti(fields[ColMeasureSet]),
		Symbol:               splitMulti(fields[ColSymbol]),
		ClinicalSignificance: splitMulti(fields[ColClinicalSignificance]),
		ReviewStatus:         splitMulti(fields[ColReviewStatus]),
		HGVSc:                splitMulti(fields[ColHGVSc]),
		HGVSp:                splitMulti(fields[ColHGVSp]),
		Submitters:           splitMulti(fields[ColSubmitters]),
		Traits:               splitMulti(fields[ColTraits]),
		PubMedIDs:            splitMulti(fields[ColPubMedIDs]),
		Pathogenic:           fields[ColPathogenic] == "1",
		Conflicted:           fields[ColConflicted] == "1",
	}
}

// splitMulti replaces spaces with underscores and splits on semicolons.
func splitMulti(s string) []string {
	return strings.Split(strings.ReplaceAll(s, " ", "_"), ";")
}

// Info assembles the INFO field in the order declared by InfoFields.
func (r *Row) Info() vcf.Info {
	var info vcf.Info
	for _, f := range InfoFields {
		if f.flag != nil {
			if f.flag(r) {
				info.AddFlag(f.ID)
			}
			continue
		}
		info.AddList(f.ID, f.list(r))
	}
	return info
}

// Record converts the row to a VCF record.
func (r *Row) Record() *vcf.Record {
	rec := vcf.NewRecord(r.Chrom, r.Pos, r.Ref, r.Alt)
	rec.Info = r.Info()
	return rec
}

// VariantID returns a compact chrom:pos ref/alt label for logging.
func (r *Row) VariantID() string {
	return r.Chrom + ":" + r.Pos + " " + r.Ref + "/" + r.Alt
}
