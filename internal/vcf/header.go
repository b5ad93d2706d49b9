package vcf

import (
	"fmt"
	"strings"
)

// FileFormat is the VCF version declared by every header we write.
const FileFormat = "VCFv4.2"

// Columns are the fixed body columns of a sites-only VCF.
var Columns = []string{"CHROM", "POS", "ID", "REF", "ALT", "QUAL", "FILTER", "INFO"}

// INFO Type values.
const (
	TypeString  = "String"
	TypeInteger = "Integer"
	TypeFlag    = "Flag"
)

// InfoDef declares a single INFO field in the VCF header.
type InfoDef struct {
	ID          string
	Number      string // "0", "1", "." etc.
	Type        string
	Description string
}

// Line formats the definition as a ##INFO meta-information line.
func (d InfoDef) Line() string {
	return fmt.Sprintf("##INFO=<ID=%s,Number=%s,Type=%s,Description=\"%s\">",
		d.ID, d.Number, d.Type, escapeDescription(d.Description))
}

// Header is the meta-information and column header of a VCF file.
type Header struct {
	FileFormat string
	Infos      []InfoDef
}

// NewHeader returns a VCFv4.2 header declaring the given INFO fields in order.
func NewHeader(infos []InfoDef) *Header {
	return &Header{FileFormat: FileFormat, Infos: infos}
}

// Lines returns every header line, without trailing newlines, in output order.
func (h *Header) Lines() []string {
	lines := make([]string, 0, len(h.Infos)+2)
	lines = append(lines, "##fileformat="+h.FileFormat)
	for _, d := range h.Infos {
		lines = append(lines, d.Line())
	}
	lines = append(lines, "#"+strings.Join(Columns, "\t"))
	return lines
}

func escapeDescription(s string) string {
	if !strings.ContainsAny(s, `"\`) {
		return s
	}
	return strings.NewReplacer(`\`, `\\`, `"`, `\"`).Replace(s)
}
