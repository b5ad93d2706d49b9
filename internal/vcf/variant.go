package vcf

import "strings"

// Missing is the VCF placeholder for an absent value.
const Missing = "."

// Record is a single sites-only VCF data line.
// Chrom and Pos are carried as text and written verbatim.
type Record struct {
	Chrom  string // Chromosome name (e.g., "1", "chr1")
	Pos    string // 1-based position, as read from the input
	ID     string // Variant identifier, "." when unknown
	Ref    string // Reference allele
	Alt    string // Alternate allele
	Qual   string // Quality, "." when unknown
	Filter string // Filter status, "." when unknown
	Info   Info
}

// NewRecord returns a record with ID, QUAL and FILTER set to ".".
func NewRecord(chrom, pos, ref, alt string) *Record {
	return &Record{
		Chrom:  chrom,
		Pos:    pos,
		ID:     Missing,
		Ref:    ref,
		Alt:    alt,
		Qual:   Missing,
		Filter: Missing,
	}
}

// Line formats the record as a tab-separated VCF data line without newline.
func (r *Record) Line() string {
	var b strings.Builder
	b.Grow(256)
	r.writeTo(&b)
	return b.String()
}

func (r *Record) writeTo(b *strings.Builder) {
	b.WriteString(r.Chrom)
	b.WriteByte('\t')
	b.WriteString(r.Pos)
	b.WriteByte('\t')
	b.WriteString(orMissing(r.ID))
	b.WriteByte('\t')
	b.WriteString(r.Ref)
	b.WriteByte('\t')
	b.WriteString(r.Alt)
	b.WriteByte('\t')
	b.WriteString(orMissing(r.Qual))
	b.WriteByte('\t')
	b.WriteString(orMissing(r.Filter))
	b.WriteByte('\t')
	if r.Info.Len() == 0 {
		b.WriteString(Missing)
	} else {
		r.Info.writeTo(b)
	}
}

func orMissing(s string) string {
	if s == "" {
		return Missing
	}
	return s
}
