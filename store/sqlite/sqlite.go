// Package sqlite provides a slotcache store backed by an embedded SQLite
// database (modernc.org/sqlite, no cgo). One row per key; per-key writes are
// atomic upserts.
package sqlite

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"regexp"

	_ "modernc.org/sqlite"

	st "github.com/unkn0wn-root/slotcache/store"
)

const defaultTable = "slotcache"

// table names are interpolated into DDL/DML, so keep them boring
var tableNameRe = regexp.MustCompile(`^[A-Za-z_][A-Za-z0-9_]*$`)

type SQLite struct {
	db      *sql.DB
	table   string
	closeDB bool
}

var _ st.Store = (*SQLite)(nil)

type Config struct {
	// Path is the database file path. Used only when DB is nil.
	Path string
	// DB lets the caller share an existing handle. When set, Path is ignored
	// and Close leaves the handle open unless CloseDB is true.
	DB      *sql.DB
	Table   string // defaults to "slotcache"
	CloseDB bool
}

// Open creates (or reuses) a database handle and ensures the slot table
// exists.
func Open(cfg Config) (*SQLite, error) {
	table := cfg.Table
	if table == "" {
		table = defaultTable
	}
	if !tableNameRe.MatchString(table) {
		return nil, fmt.Errorf("sqlite store: invalid table name %q", table)
	}

	db := cfg.DB
	closeDB := cfg.CloseDB
	if db == nil {
		if cfg.Path == "" {
			return nil, errors.New("sqlite store: path or db handle is required")
		}
		var err error
		db, err = sql.Open("sqlite", cfg.Path)
		if err != nil {
			return nil, err
		}
		closeDB = true
	}

	s := &SQLite{db: db, table: table, closeDB: closeDB}
	if err := s.ensureTable(); err != nil {
		if closeDB {
			_ = db.Close()
		}
		return nil, err
	}
	return s, nil
}

func (s *SQLite) ensureTable() error {
	_, err := s.db.Exec(fmt.Sprintf(
		"CREATE TABLE IF NOT EXISTS %s (key TEXT PRIMARY KEY, value BLOB NOT NULL)", s.table,
	))
	return err
}

func (s *SQLite) Read(ctx context.Context, key string) ([]byte, bool, error) {
	var value []byte
	err := s.db.QueryRowContext(ctx,
		fmt.Sprintf("SELECT value FROM %s WHERE key = ?", s.table), key,
	).Scan(&value)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, false, nil
	}
	if err != nil {
		return nil, false, err
	}
	return value, true, nil
}

func (s *SQLite) Write(ctx context.Context, key string, value []byte) error {
	_, err := s.db.ExecContext(ctx, fmt.Sprintf(
		"INSERT INTO %s (key, value) VALUES (?, ?) ON CONFLICT(key) DO UPDATE SET value = excluded.value",
		s.table,
	), key, value)
	return err
}

func (s *SQLite) Delete(ctx context.Context, key string) error {
	_, err := s.db.ExecContext(ctx,
		fmt.Sprintf("DELETE FROM %s WHERE key = ?", s.table), key)
	return err
}

func (s *SQLite) Close(_ context.Context) error {
	if s.closeDB {
		return s.db.Close()
	}
	return nil
}
