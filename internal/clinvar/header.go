package clinvar

import "github.com/inodb/clinvar2vcf/internal/vcf"

// INFO keys written for every record.
const (
	InfoMeasureSet = "MEASURESET"
	InfoSymbol     = "HGNC"
	InfoClinSig    = "CLNSIGSTR"
	InfoRevStat    = "REVSTAT"
	InfoHGVSc      = "HGVSC"
	InfoHGVSp      = "HGVSP"
	InfoSubmitters = "ALLSUBM"
	InfoTraits     = "ALLTRAITS"
	InfoPubMedIDs  = "ALLPMID"
	InfoPathogenic = "PATHOGENIC"
	InfoConflicted = "CONFLICTED"
)

// InfoField ties a header declaration to the row value it emits.
// Exactly one of list or flag is set.
type InfoField struct {
	vcf.InfoDef
	list func(*Row) []string
	flag func(*Row) bool
}

// InfoFields is the header declaration order and the INFO emission order.
var InfoFields = []InfoField{
	{InfoDef: vcf.InfoDef{ID: InfoMeasureSet, Number: "1", Type: vcf.TypeString, Description: "Measure set"},
		list: func(r *Row) []string { return r.MeasureSet }},
	{InfoDef: vcf.InfoDef{ID: InfoSymbol, Number: "1", Type: vcf.TypeString, Description: "HGNC Symbol"},
		list: func(r *Row) []string { return r.Symbol }},
	{InfoDef: vcf.InfoDef{ID: InfoClinSig, Number: ".", Type: vcf.TypeString, Description: "Clinical Significance"},
		list: func(r *Row) []string { return r.ClinicalSignificance }},
	{InfoDef: vcf.InfoDef{ID: InfoRevStat, Number: "1", Type: vcf.TypeString, Description: "Review Status"},
		list: func(r *Row) []string { return r.ReviewStatus }},
	{InfoDef: vcf.InfoDef{ID: InfoHGVSc, Number: ".", Type: vcf.TypeString, Description: "HGVS-c"},
		list: func(r *Row) []string { return r.HGVSc }},
	{InfoDef: vcf.InfoDef{ID: InfoHGVSp, Number: ".", Type: vcf.TypeString, Description: "HGVS-p"},
		list: func(r *Row) []string { return r.HGVSp }},
	{InfoDef: vcf.InfoDef{ID: InfoSubmitters, Number: ".", Type: vcf.TypeString, Description: "All submitters"},
		list: func(r *Row) []string { return r.Submitters }},
	{InfoDef: vcf.InfoDef{ID: InfoTraits, Number: ".", Type: vcf.TypeString, Description: "All traits associated with this variant"},
		list: func(r *Row) []string { return r.Traits }},
	{InfoDef: vcf.InfoDef{ID: InfoPubMedIDs, Number: ".", Type: vcf.TypeString, Description: "All pubmed IDs"},
		list: func(r *Row) []string { return r.PubMedIDs }},
	{InfoDef: vcf.InfoDef{ID: InfoPathogenic, Number: "0", Type: vcf.TypeFlag,
		Description: "Set if ever asserted Pathogenic/Likely pathogenic by any submitter for any phenotype"},
		flag: func(r *Row) bool { return r.Pathogenic }},
	{InfoDef: vcf.InfoDef{ID: InfoConflicted, Number: "0", Type: vcf.TypeFlag,
		Description: "Set if ever asserted both Pathogenic/Likely pathogenic and Benign/Likely benign (uncertain-significance co-occurrence does not count)"},
		flag: func(r *Row) bool { return r.Conflicted }},
}

// Header returns the VCF header declaring every field in InfoFields.
func Header() *vcf.Header {
	defs := make([]vcf.InfoDef, len(InfoFields))
	for i, f := range InfoFields {
		defs[i] = f.InfoDef
	}
	return vcf.NewHeader(defs)
}
