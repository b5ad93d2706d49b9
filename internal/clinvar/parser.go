package clinvar

import (
	"bufio"
	"compress/gzip"
	"fmt"
	"io"
	"os"
	"strings"
)

// HeaderPrefix marks the column header line of the flat file.
const HeaderPrefix = "chrom"

// Parser reads rows from a ClinVar flat file.
type Parser struct {
	reader     *bufio.Reader
	file       *os.File
	gzipReader *gzip.Reader
	lineNumber int
	skipped    int
}

// NewParser creates a new parser for the given file.
// Supports both plain and gzipped (including BGZF) files; "-" reads stdin.
func NewParser(path string) (*Parser, error) {
	if path == "-" {
		return NewParserFromReader(os.Stdin), nil
	}

	file, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("open clinvar file: %w", err)
	}

	p := &Parser{file: file}

	// Check for gzip magic bytes
	buf := make([]byte, 2)
	n, err := io.ReadFull(file, buf)
	if err != nil && err != io.EOF && err != io.ErrUnexpectedEOF {
		file.Close()
		return nil, fmt.Errorf("read clinvar file: %w", err)
	}

	if _, err := file.Seek(0, io.SeekStart); err != nil {
		file.Close()
		return nil, fmt.Errorf("seek clinvar file: %w", err)
	}

	if n == 2 && buf[0] == 0x1f && buf[1] == 0x8b {
		p.gzipReader, err = gzip.NewReader(file)
		if err != nil {
			file.Close()
			return nil, fmt.Errorf("create gzip reader: %w", err)
		}
		p.reader = bufio.NewReader(p.gzipReader)
	} else {
		p.reader = bufio.NewReader(file)
	}

	return p, nil
}

// NewParserFromReader creates a parser from an io.Reader (e.g., stdin).
func NewParserFromReader(r io.Reader) *Parser {
	return &Parser{
		reader: bufio.NewReader(r),
	}
}

// Next reads the next data row, skipping blank lines and header lines.
// Returns nil, nil when there are no more rows.
func (p *Parser) Next() (*Row, error) {
	for {
		line, err := p.reader.ReadString('\n')
		if err != nil && err != io.EOF {
			return nil, fmt.Errorf("read clinvar line: %w", err)
		}
		if line == "" && err == io.EOF {
			return nil, nil
		}
		p.lineNumber++

		line = strings.TrimRight(line, "\r\n")
		if strings.HasPrefix(line, HeaderPrefix) || strings.TrimSpace(line) == "" {
			p.skipped++
			continue
		}

		return p.parseLine(line)
	}
}

// parseLine splits a data line into a Row.
func (p *Parser) parseLine(line string) (*Row, error) {
	fields := strings.Split(line, "\t")
	if len(fields) < NumColumns {
		return nil, &ParseError{
			Line:    p.lineNumber,
			Content: line,
			Message: fmt.Sprintf("expected at least %d columns, found %d", NumColumns, len(fields)),
		}
	}
	return NewRow(fields), nil
}

// LineNumber returns the number of the last line read.
func (p *Parser) LineNumber() int {
	return p.lineNumber
}

// Skipped returns the number of header and blank lines skipped so far.
func (p *Parser) Skipped() int {
	return p.skipped
}

// Close closes the parser and underlying file.
func (p *Parser) Close() error {
	if p.gzipReader != nil {
		p.gzipReader.Close()
	}
	if p.file != nil {
		return p.file.Close()
	}
	return nil
}

// ParseError represents a malformed data row.
type ParseError struct {
	Line    int
	Content string
	Message string
}

func (e *ParseError) Error() string {
	return fmt.Sprintf("clinvar parse error at line %d: %s: %q", e.Line, e.Message, e.Content)
}
