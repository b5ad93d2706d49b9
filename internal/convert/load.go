package convert

import (
	"fmt"

	"go.uber.org/zap"

	"github.com/inodb/clinvar2vcf/internal/clinvar"
	"github.com/inodb/clinvar2vcf/internal/duckdb"
)

// DefaultBatchSize is the number of rows appended to DuckDB per batch.
const DefaultBatchSize = 10000

// RowWriter accepts batches of rows.
type RowWriter interface {
	WriteRows(rows []*clinvar.Row) error
}

// LoadOptions configures loading a flat file into DuckDB.
type LoadOptions struct {
	InputPath string      // ClinVar flat file, "-" for stdin
	DBPath    string      // DuckDB database file
	BatchSize int         // rows per append batch, DefaultBatchSize if <= 0
	Logger    *zap.Logger // nil disables logging
}

// Load streams the flat file at opts.InputPath into the DuckDB database at
// opts.DBPath and returns the number of rows stored.
func Load(opts LoadOptions) (int, error) {
	logger := opts.Logger
	if logger == nil {
		logger = zap.NewNop()
	}

	parser, err := clinvar.NewParser(opts.InputPath)
	if err != nil {
		return 0, err
	}
	defer parser.Close()

	store, err := duckdb.Open(opts.DBPath)
	if err != nil {
		return 0, err
	}
	defer store.Close()

	n, err := LoadRows(parser, store, opts.BatchSize, logger)
	if err != nil {
		return n, err
	}

	if opts.InputPath != "-" {
		fp, err := duckdb.StatFile(opts.InputPath)
		if err != nil {
			return n, fmt.Errorf("stat clinvar file: %w", err)
		}
		if err := store.RecordLoad(fp, n); err != nil {
			return n, err
		}
	}

	logger.Info(fmt.Sprintf("Loaded %d variants into %s.", n, opts.DBPath), zap.Int("variants", n))
	return n, nil
}

// LoadRows copies every row of src into dst in batches of batchSize.
// Rows from a batch are only written once the batch is full or src is
// exhausted, so a parse error leaves at most the preceding full batches
// stored.
func LoadRows(src RowSource, dst RowWriter, batchSize int, logger *zap.Logger) (int, error) {
	if batchSize <= 0 {
		batchSize = DefaultBatchSize
	}

	batch := make([]*clinvar.Row, 0, batchSize)
	loaded := 0
	flush := func() error {
		if err := dst.WriteRows(batch); err != nil {
			return err
		}
		loaded += len(batch)
		logger.Debug("appended batch", zap.Int("rows", len(batch)), zap.Int("total", loaded))
		batch = batch[:0]
		return nil
	}

	for {
		row, err := src.Next()
		if err != nil {
			return loaded, err
		}
		if row == nil {
			break
		}
		batch = append(batch, row)
		if len(batch) == batchSize {
			if err := flush(); err != nil {
				return loaded, err
			}
		}
	}

	if len(batch) > 0 {
		if err := flush(); err != nil {
			return loaded, err
		}
	}
	return loaded, nil
}
