package duckdb

import (
	"context"
	"database/sql/driver"
	"fmt"
	"strings"

	goduckdb "github.com/marcboeker/go-duckdb"

	"github.com/inodb/clinvar2vcf/internal/clinvar"
)

// Variant is a stored flat-file row. Multi-valued fields are comma-joined
// exactly as they appear in the VCF INFO field.
type Variant struct {
	Chrom                string
	Pos                  string
	Ref                  string
	Alt                  string
	MutationType         string
	MeasureSet           string
	Symbol               string
	ClinicalSignificance string
	ReviewStatus         string
	HGVSc                string
	HGVSp                string
	Submitters           string
	Traits               string
	PubMedIDs            string
	Pathogenic           bool
	Conflicted           bool
	Info                 string
}

const selectColumns = `chrom, pos, ref, alt, mutation_type,
	measureset, symbol, clinical_significance, review_status,
	hgvsc, hgvsp, submitters, traits, pmids,
	pathogenic, conflicted, info`

// WriteRows batch-inserts rows into DuckDB using the Appender API.
func (s *Store) WriteRows(rows []*clinvar.Row) error {
	if len(rows) == 0 {
		return nil
	}

	conn, err := s.db.Conn(context.Background())
	if err != nil {
		return fmt.Errorf("get connection: %w", err)
	}
	defer conn.Close()

	var appender *goduckdb.Appender
	if err := conn.Raw(func(driverConn any) error {
		var err error
		appender, err = goduckdb.NewAppenderFromConn(driverConn.(driver.Conn), "", "clinvar_variants")
		return err
	}); err != nil {
		return fmt.Errorf("create appender: %w", err)
	}
	defer appender.Close()

	for _, r := range rows {
		info := r.Info()
		if err := appender.AppendRow(
			r.Chrom, r.Pos, r.Ref, r.Alt, r.MutationType,
			join(r.MeasureSet), join(r.Symbol), join(r.ClinicalSignificance), join(r.ReviewStatus),
			join(r.HGVSc), join(r.HGVSp), join(r.Submitters), join(r.Traits), join(r.PubMedIDs),
			r.Pathogenic, r.Conflicted, info.String(),
		); err != nil {
			return fmt.Errorf("append variant: %w", err)
		}
	}

	return appender.Flush()
}

func join(values []string) string {
	return strings.Join(values, ",")
}

// Clear removes all stored variants.
func (s *Store) Clear() error {
	_, err := s.db.Exec("DELETE FROM clinvar_variants")
	return err
}

// Count returns the number of stored variants.
func (s *Store) Count() (int64, error) {
	var n int64
	if err := s.db.QueryRow("SELECT count(*) FROM clinvar_variants").Scan(&n); err != nil {
		return 0, fmt.Errorf("count variants: %w", err)
	}
	return n, nil
}

// LookupVariant returns the stored rows for a specific variant.
func (s *Store) LookupVariant(chrom, pos, ref, alt string) ([]Variant, error) {
	rows, err := s.db.Query(`SELECT `+selectColumns+`
		FROM clinvar_variants
		WHERE chrom=? AND pos=? AND ref=? AND alt=?`,
		chrom, pos, ref, alt)
	if err != nil {
		return nil, fmt.Errorf("query variant: %w", err)
	}
	defer rows.Close()

	return scanVariants(rows)
}

// SearchByGene returns stored rows whose symbol list contains symbol.
func (s *Store) SearchByGene(symbol string) ([]Variant, error) {
	rows, err := s.db.Query(`SELECT `+selectColumns+`
		FROM clinvar_variants
		WHERE list_contains(string_split(symbol, ','), ?)`, symbol)
	if err != nil {
		return nil, fmt.Errorf("query by gene: %w", err)
	}
	defer rows.Close()

	return scanVariants(rows)
}

// scanVariants scans rows into Variant slices.
func scanVariants(rows interface {
	Next() bool
	Scan(dest ...any) error
	Err() error
}) ([]Variant, error) {
	var variants []Variant
	for rows.Next() {
		var v Variant
		if err := rows.Scan(
			&v.Chrom, &v.Pos, &v.Ref, &v.Alt, &v.MutationType,
			&v.MeasureSet, &v.Symbol, &v.ClinicalSignificance, &v.ReviewStatus,
			&v.HGVSc, &v.HGVSp, &v.Submitters, &v.Traits, &v.PubMedIDs,
			&v.Pathogenic, &v.Conflicted, &v.Info,
		); err != nil {
			return nil, fmt.Errorf("scan variant: %w", err)
		}
		variants = append(variants, v)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterate variants: %w", err)
	}
	return variants, nil
}
