// Package duckdb stores ClinVar flat-file rows in a DuckDB database for
// ad hoc querying.
package duckdb

import (
	"database/sql"
	"fmt"
	"os"
	"path/filepath"

	_ "github.com/marcboeker/go-duckdb"
)

// Store manages a DuckDB connection holding loaded ClinVar variants.
type Store struct {
	db   *sql.DB
	path string
}

// Open opens or creates a DuckDB database at the given path.
// Use an empty string for an in-memory database.
func Open(path string) (*Store, error) {
	if path != "" {
		dir := filepath.Dir(path)
		if err := os.MkdirAll(dir, 0755); err != nil {
			return nil, fmt.Errorf("create database directory: %w", err)
		}
	}

	db, err := sql.Open("duckdb", path)
	if err != nil {
		return nil, fmt.Errorf("open duckdb: %w", err)
	}

	s := &Store{db: db, path: path}
	if err := s.ensureSchema(); err != nil {
		db.Close()
		return nil, fmt.Errorf("ensure schema: %w", err)
	}

	return s, nil
}

// Close closes the database connection.
func (s *Store) Close() error {
	return s.db.Close()
}

// DB returns the underlying *sql.DB for direct access.
func (s *Store) DB() *sql.DB {
	return s.db
}

// Path returns the database path, empty for in-memory stores.
func (s *Store) Path() string {
	return s.path
}

// ensureSchema creates tables if they don't exist.
func (s *Store) ensureSchema() error {
	if _, err := s.db.Exec(`CREATE TABLE IF NOT EXISTS clinvar_variants (
		chrom VARCHAR,
		pos VARCHAR,
		ref VARCHAR,
		alt VARCHAR,
		mutation_type VARCHAR,
		measureset VARCHAR,
		symbol VARCHAR,
		clinical_significance VARCHAR,
		review_status VARCHAR,
		hgvsc VARCHAR,
		hgvsp VARCHAR,
		submitters VARCHAR,
		traits VARCHAR,
		pmids VARCHAR,
		pathogenic BOOLEAN,
		conflicted BOOLEAN,
		info VARCHAR
	)`); err != nil {
		return err
	}
	_, err := s.db.Exec(`CREATE TABLE IF NOT EXISTS load_sources (
		path VARCHAR,
		size BIGINT,
		mod_time TIMESTAMP,
		variants BIGINT,
		loaded_at TIMESTAMP
	)`)
	return err
}
