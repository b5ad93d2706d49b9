package convert

import (
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/biogo/hts/bgzf"
	"go.uber.org/zap"

	"github.com/inodb/clinvar2vcf/internal/clinvar"
	"github.com/inodb/clinvar2vcf/internal/vcf"
)

// Options configures a file-to-file conversion.
type Options struct {
	InputPath  string      // ClinVar flat file, "-" for stdin
	OutputPath string      // VCF output, BGZF-compressed when it ends in .gz
	Logger     *zap.Logger // nil disables logging
}

// Run converts the flat file at opts.InputPath into a VCF at opts.OutputPath
// and returns the number of records written. The input is opened before the
// output is created.
func Run(opts Options) (int, error) {
	logger := opts.Logger
	if logger == nil {
		logger = zap.NewNop()
	}

	logger.Debug("using clinvar", zap.String("path", opts.InputPath))
	logger.Debug("writing to vcf", zap.String("path", opts.OutputPath))

	parser, err := clinvar.NewParser(opts.InputPath)
	if err != nil {
		return 0, err
	}
	defer parser.Close()

	out, err := createOutput(opts.OutputPath)
	if err != nil {
		return 0, err
	}

	conv := NewConverter()
	conv.SetLogger(logger)

	w := vcf.NewWriter(out)
	n, convErr := conv.Convert(parser, w)
	if convErr == nil {
		convErr = w.Flush()
	}
	if err := out.Close(); err != nil && convErr == nil {
		convErr = fmt.Errorf("close vcf file: %w", err)
	}
	if convErr != nil {
		return n, convErr
	}

	logger.Info(fmt.Sprintf("Written %d variants to %s.", n, opts.OutputPath),
		zap.Int("variants", n), zap.Int("skipped_lines", parser.Skipped()))
	return n, nil
}

// output closes the compression layer, if any, before the file.
type output struct {
	io.Writer
	bgz  *bgzf.Writer
	file *os.File
}

func createOutput(path string) (*output, error) {
	f, err := os.Create(path)
	if err != nil {
		return nil, fmt.Errorf("create vcf file: %w", err)
	}
	if strings.HasSuffix(strings.ToLower(path), ".gz") {
		bgz := bgzf.NewWriter(f, 1)
		return &output{Writer: bgz, bgz: bgz, file: f}, nil
	}
	return &output{Writer: f, file: f}, nil
}

func (o *output) Close() error {
	if o.bgz != nil {
		if err := o.bgz.Close(); err != nil {
			o.file.Close()
			return err
		}
	}
	return o.file.Close()
}
