// Package catalog persists named continued fractions in SQLite.
//
// Each row keeps the signed coefficients (as a JSON array), the index of the
// marked coefficient and, for convenience, the printed text and float64
// value. Storing the coefficients rather than the text keeps periodic
// fractions intact, since the text form of a periodic fraction is not
// parseable.
package catalog

import (
	"context"
	"database/sql"
	"encoding/json"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"sync"
	"time"

	"github.com/google/uuid"
	_ "github.com/mattn/go-sqlite3"

	"github.com/katalvlaran/contfrac/cf"
)

var (
	// ErrNotFound is returned when no entry has the requested name.
	ErrNotFound = errors.New("catalog: entry not found")

	// ErrEmptyName is returned when an entry name is blank.
	ErrEmptyName = errors.New("catalog: entry name is empty")

	// ErrNilFraction is returned by Put for a nil fraction.
	ErrNilFraction = errors.New("catalog: fraction is nil")
)

// Entry is one stored fraction.
type Entry struct {
	ID        string
	Name      string
	Fraction  *cf.ContinuedFraction
	Text      string
	Value     float64
	CreatedAt time.Time
	UpdatedAt time.Time
}

// Store is a SQLite-backed catalog. It is safe for concurrent use.
type Store struct {
	db *sql.DB
	mu sync.RWMutex
}

// MemoryPath opens a private in-memory database.
const MemoryPath = ":memory:"

// Open opens (and creates if needed) the catalog at path.
func Open(ctx context.Context, path string) (*Store, error) {
	dsn := path
	if path != MemoryPath {
		if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
			return nil, fmt.Errorf("catalog: create directory: %w", err)
		}
		dsn = path + "?_journal_mode=WAL&_synchronous=NORMAL"
	}

	db, err := sql.Open("sqlite3", dsn)
	if err != nil {
		return nil, fmt.Errorf("catalog: open database: %w", err)
	}
	// A single connection keeps ":memory:" databases shared across calls.
	db.SetMaxOpenConns(1)

	s := &Store{db: db}
	if err = s.initSchema(ctx); err != nil {
		db.Close()
		return nil, fmt.Errorf("catalog: initialize schema: %w", err)
	}

	return s, nil
}

// initSchema creates the fractions table.
func (s *Store) initSchema(ctx context.Context) error {
	schema := `
	CREATE TABLE IF NOT EXISTS fractions (
		id TEXT PRIMARY KEY,
		name TEXT NOT NULL UNIQUE,
		terms TEXT NOT NULL,
		period INTEGER NOT NULL DEFAULT 0,
		text TEXT NOT NULL,
		value REAL NOT NULL,
		created_at DATETIME DEFAULT CURRENT_TIMESTAMP,
		updated_at DATETIME DEFAULT CURRENT_TIMESTAMP
	);

	CREATE INDEX IF NOT EXISTS idx_fractions_value ON fractions(value);
	`

	_, err := s.db.ExecContext(ctx, schema)
	return err
}

// Close releases the database.
func (s *Store) Close() error {
	return s.db.Close()
}

// Put stores x under name, replacing any previous entry with that name.
// The entry keeps its ID and creation time across replacements.
func (s *Store) Put(ctx context.Context, name string, x *cf.ContinuedFraction) (*Entry, error) {
	name = strings.TrimSpace(name)
	if name == "" {
		return nil, ErrEmptyName
	}
	if x == nil {
		return nil, ErrNilFraction
	}

	termsJSON, err := json.Marshal(x.Coefficients())
	if err != nil {
		return nil, fmt.Errorf("catalog: encode terms: %w", err)
	}
	period := x.PeriodStart()
	if period < 0 {
		period = 0
	}
	now := time.Now().UTC()

	s.mu.Lock()
	defer s.mu.Unlock()

	_, err = s.db.ExecContext(ctx, `
		INSERT INTO fractions (id, name, terms, period, text, value, created_at, updated_at)
		VALUES (?, ?, ?, ?, ?, ?, ?, ?)
		ON CONFLICT(name) DO UPDATE SET
			terms = excluded.terms,
			period = excluded.period,
			text = excluded.text,
			value = excluded.value,
			updated_at = excluded.updated_at
	`, uuid.New().String(), name, string(termsJSON), period, x.String(), x.Float64(), now, now)
	if err != nil {
		return nil, fmt.Errorf("catalog: put %q: %w", name, err)
	}

	return s.get(ctx, name)
}

// Get returns the entry stored under name.
func (s *Store) Get(ctx context.Context, name string) (*Entry, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	return s.get(ctx, strings.TrimSpace(name))
}

func (s *Store) get(ctx context.Context, name string) (*Entry, error) {
	row := s.db.QueryRowContext(ctx, `
		SELECT id, name, terms, period, text, value, created_at, updated_at
		FROM fractions WHERE name = ?
	`, name)

	e, err := scanEntry(row)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, fmt.Errorf("%q: %w", name, ErrNotFound)
	}
	if err != nil {
		return nil, fmt.Errorf("catalog: get %q: %w", name, err)
	}

	return e, nil
}

// List returns every entry ordered by name.
func (s *Store) List(ctx context.Context) ([]*Entry, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	rows, err := s.db.QueryContext(ctx, `
		SELECT id, name, terms, period, text, value, created_at, updated_at
		FROM fractions ORDER BY name
	`)
	if err != nil {
		return nil, fmt.Errorf("catalog: list: %w", err)
	}
	defer rows.Close()

	var out []*Entry
	for rows.Next() {
		e, err := scanEntry(rows)
		if err != nil {
			return nil, fmt.Errorf("catalog: list: %w", err)
		}
		out = append(out, e)
	}

	return out, rows.Err()
}

// Delete removes the entry stored under name.
func (s *Store) Delete(ctx context.Context, name string) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	res, err := s.db.ExecContext(ctx, `DELETE FROM fractions WHERE name = ?`, strings.TrimSpace(name))
	if err != nil {
		return fmt.Errorf("catalog: delete %q: %w", name, err)
	}
	n, err := res.RowsAffected()
	if err != nil {
		return fmt.Errorf("catalog: delete %q: %w", name, err)
	}
	if n == 0 {
		return fmt.Errorf("%q: %w", name, ErrNotFound)
	}

	return nil
}

// scanner is satisfied by *sql.Row and *sql.Rows.
type scanner interface {
	Scan(dest ...any) error
}

// scanEntry decodes one row and rebuilds its fraction.
func scanEntry(sc scanner) (*Entry, error) {
	var (
		e         Entry
		termsJSON string
		period    int
	)
	if err := sc.Scan(&e.ID, &e.Name, &termsJSON, &period, &e.Text, &e.Value, &e.CreatedAt, &e.UpdatedAt); err != nil {
		return nil, err
	}

	var terms []int64
	if err := json.Unmarshal([]byte(termsJSON), &terms); err != nil {
		return nil, fmt.Errorf("decode terms of %q: %w", e.Name, err)
	}
	x, err := cf.FromParts(terms, period)
	if err != nil {
		return nil, fmt.Errorf("rebuild %q: %w", e.Name, err)
	}
	e.Fraction = x

	return &e, nil
}
