// Package convert turns ClinVar flat-file rows into VCF records.
package convert

import (
	"go.uber.org/zap"

	"github.com/inodb/clinvar2vcf/internal/clinvar"
	"github.com/inodb/clinvar2vcf/internal/vcf"
)

// RowSource yields flat-file rows.
type RowSource interface {
	// Next reads the next row.
	// Returns nil, nil when there are no more rows.
	Next() (*clinvar.Row, error)
}

// Converter writes the VCF header and one record per row.
type Converter struct {
	logger *zap.Logger
}

// NewConverter creates a converter that logs nothing.
func NewConverter() *Converter {
	return &Converter{logger: zap.NewNop()}
}

// SetLogger sets the logger for debug and info messages.
func (c *Converter) SetLogger(l *zap.Logger) {
	c.logger = l
}

// Convert writes the header followed by every row of src and returns the
// number of records written. The first read error aborts the conversion.
// The caller is responsible for flushing w.
func (c *Converter) Convert(src RowSource, w *vcf.Writer) (int, error) {
	w.SetLogger(c.logger)

	c.logger.Debug("setting up INFO in header")
	if err := w.WriteHeader(clinvar.Header()); err != nil {
		return 0, err
	}

	c.logger.Debug("parsing clinvar flat file")
	written := 0
	for {
		row, err := src.Next()
		if err != nil {
			return written, err
		}
		if row == nil {
			break
		}

		if err := w.Write(row.Record()); err != nil {
			return written, err
		}
		c.logger.Debug("wrote variant", zap.String("variant", row.VariantID()))
		written++
	}

	return written, nil
}
