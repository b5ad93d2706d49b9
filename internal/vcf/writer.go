package vcf

import (
	"bufio"
	"io"
	"strings"

	"go.uber.org/zap"
)

// Writer writes a VCF header followed by data records.
type Writer struct {
	w      *bufio.Writer
	logger *zap.Logger
	lb     strings.Builder
}

// NewWriter creates a new VCF writer.
func NewWriter(w io.Writer) *Writer {
	return &Writer{
		w:      bufio.NewWriter(w),
		logger: zap.NewNop(),
	}
}

// SetLogger sets the logger used for debug output of header lines.
func (vw *Writer) SetLogger(l *zap.Logger) {
	vw.logger = l
}

// WriteHeader writes the meta-information lines and the #CHROM line.
func (vw *Writer) WriteHeader(h *Header) error {
	for _, line := range h.Lines() {
		vw.logger.Debug("writing header line", zap.String("line", line))
		if _, err := vw.w.WriteString(line); err != nil {
			return err
		}
		if err := vw.w.WriteByte('\n'); err != nil {
			return err
		}
	}
	return nil
}

// Write writes a single record as one newline-terminated line.
func (vw *Writer) Write(r *Record) error {
	vw.lb.Reset()
	r.writeTo(&vw.lb)
	vw.lb.WriteByte('\n')
	_, err := vw.w.WriteString(vw.lb.String())
	return err
}

// Flush flushes buffered output to the underlying writer.
func (vw *Writer) Flush() error {
	return vw.w.Flush()
}
