package store

import (
	"context"
	"database/sql"
	"fmt"
	"os"
	"path/filepath"
	"sync"

	"github.com/doug-martin/goqu/v9"
	_ "github.com/doug-martin/goqu/v9/dialect/sqlite3"
	"go.uber.org/zap"
	_ "modernc.org/sqlite"
)

// Store owns the SQLite file that holds employees, balances and leave
// requests. All writes in the process go through WriteTx.
type Store struct {
	db     *sql.DB
	goquDb *goqu.Database
	logger *zap.Logger

	// SQLite permits one writer at a time; serializing write transactions
	// here avoids SQLITE_BUSY churn between interleaved tool calls.
	writeMu sync.Mutex
}

// New wraps an already-open database handle.
func New(db *sql.DB, logger ...*zap.Logger) *Store {
	l := zap.L().Named("store")
	if len(logger) > 0 && logger[0] != nil {
		l = logger[0].Named("store")
	}
	return &Store{
		db:     db,
		goquDb: goqu.New("sqlite3", db),
		logger: l,
	}
}

// Open opens the SQLite database at dbPath, creating the file and its
// parent directory when missing.
func Open(dbPath string, logger ...*zap.Logger) (*Store, error) {
	dbDir := filepath.Dir(dbPath)
	if _, err := os.Stat(dbDir); os.IsNotExist(err) {
		if errMkDir := os.MkdirAll(dbDir, 0o755); errMkDir != nil {
			return nil, fmt.Errorf("could not create directory %s for sqlite db: %w", dbDir, errMkDir)
		}
	}

	db, err := sql.Open("sqlite", dbPath)
	if err != nil {
		return nil, fmt.Errorf("opening sqlite db at %s: %w", dbPath, err)
	}

	for _, pragma := range []string{
		"PRAGMA journal_mode=WAL",
		"PRAGMA foreign_keys=ON",
		"PRAGMA busy_timeout=5000",
	} {
		if _, err := db.Exec(pragma); err != nil {
			db.Close()
			return nil, fmt.Errorf("applying %q: %w", pragma, err)
		}
	}

	return New(db, logger...), nil
}

// DB exposes the raw database handle.
func (s *Store) DB() *sql.DB {
	return s.db
}

// Goqu exposes the query-builder view of the database.
func (s *Store) Goqu() *goqu.Database {
	return s.goquDb
}

// WriteTx runs fn inside a write transaction, committing when fn returns
// nil and rolling back otherwise.
func (s *Store) WriteTx(ctx context.Context, fn func(tx *sql.Tx) error) error {
	s.writeMu.Lock()
	defer s.writeMu.Unlock()

	tx, err := s.db.BeginTx(ctx, nil)
	if err != nil {
		return err
	}
	defer tx.Rollback()

	if err := fn(tx); err != nil {
		return err
	}
	return tx.Commit()
}

func (s *Store) Close() error {
	if err := s.db.Close(); err != nil {
		s.logger.Warn("error closing database", zap.Error(err))
		return err
	}
	return nil
}
