package duckdb

import (
	"fmt"
	"os"
	"time"
)

// FileFingerprint holds stat-based identity for a file.
type FileFingerprint struct {
	Path    string
	Size    int64
	ModTime time.Time
}

// StatFile creates a FileFingerprint from an on-disk file.
func StatFile(path string) (FileFingerprint, error) {
	info, err := os.Stat(path)
	if err != nil {
		return FileFingerprint{}, err
	}
	return FileFingerprint{
		Path:    path,
		Size:    info.Size(),
		ModTime: info.ModTime(),
	}, nil
}

// LoadRecord describes one completed load of a flat file.
type LoadRecord struct {
	Source   FileFingerprint
	Variants int64
	LoadedAt time.Time
}

// RecordLoad stores the fingerprint of a loaded flat file and its row count.
func (s *Store) RecordLoad(fp FileFingerprint, variants int) error {
	_, err := s.db.Exec(`INSERT INTO load_sources VALUES (?, ?, ?, ?, ?)`,
		fp.Path, fp.Size, fp.ModTime.UTC(), int64(variants), time.Now().UTC())
	if err != nil {
		return fmt.Errorf("record load: %w", err)
	}
	return nil
}

// Loads returns every recorded load, oldest first.
func (s *Store) Loads() ([]LoadRecord, error) {
	rows, err := s.db.Query(`SELECT path, size, mod_time, variants, loaded_at
		FROM load_sources ORDER BY loaded_at`)
	if err != nil {
		return nil, fmt.Errorf("query loads: %w", err)
	}
	defer rows.Close()

	var loads []LoadRecord
	for rows.Next() {
		var l LoadRecord
		if err := rows.Scan(&l.Source.Path, &l.Source.Size, &l.Source.ModTime, &l.Variants, &l.LoadedAt); err != nil {
			return nil, fmt.Errorf("scan load: %w", err)
		}
		loads = append(loads, l)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterate loads: %w", err)
	}
	return loads, nil
}
