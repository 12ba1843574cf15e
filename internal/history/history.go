// Package history keeps the headlines generated during one session.
//
// Records live in a private in-memory SQLite database; nothing is written to
// disk and everything is gone once the Store is closed.
package history

import (
	"database/sql"
	"fmt"
	"log/slog"
	"time"

	"github.com/google/uuid"
	"github.com/matheuskafuri/newsforge/internal/headline"
	_ "modernc.org/sqlite"
)

// Record is one generated headline. Records are immutable once stored.
type Record struct {
	Seq       int64
	ID        string
	Text      string
	Category  headline.Category
	CreatedAt time.Time
}

type Store struct {
	db  *sql.DB
	now func() time.Time
	log *slog.Logger
}

// Open creates an empty session store.
func Open() (*Store, error) {
	db, err := sql.Open("sqlite", ":memory:")
	if err != nil {
		return nil, fmt.Errorf("opening history db: %w", err)
	}
	// Every connection to :memory: is a separate database.
	db.SetMaxOpenConns(1)
	db.SetMaxIdleConns(1)
	db.SetConnMaxLifetime(0)

	s := &Store{db: db, now: time.Now, log: slog.Default()}
	if err := s.init(); err != nil {
		s.Close()
		return nil, err
	}
	return s, nil
}

// WithLogger sets the logger for debug tracing and returns s.
func (s *Store) WithLogger(l *slog.Logger) *Store {
	s.log = l
	return s
}

func (s *Store) init() error {
	_, err := s.db.Exec(`
		CREATE TABLE IF NOT EXISTS headlines (
			seq        INTEGER PRIMARY KEY AUTOINCREMENT,
			id         TEXT NOT NULL UNIQUE,
			text       TEXT NOT NULL,
			category   TEXT NOT NULL,
			created_at DATETIME NOT NULL
		);
		CREATE INDEX IF NOT EXISTS idx_headlines_category ON headlines(category);
	`)
	if err != nil {
		return fmt.Errorf("initializing schema: %w", err)
	}
	return nil
}

func (s *Store) Close() error {
	if s.db == nil {
		return nil
	}
	return s.db.Close()
}

// Record appends h to the history.
func (s *Store) Record(h headline.Headline) (Record, error) {
	r := Record{
		ID:        uuid.NewString(),
		Text:      h.Text,
		Category:  h.Category,
		CreatedAt: s.now().UTC(),
	}
	res, err := s.db.Exec(
		`INSERT INTO headlines (id, text, category, created_at) VALUES (?, ?, ?, ?)`,
		r.ID, r.Text, string(r.Category), r.CreatedAt,
	)
	if err != nil {
		return Record{}, fmt.Errorf("recording headline: %w", err)
	}
	if r.Seq, err = res.LastInsertId(); err != nil {
		return Record{}, fmt.Errorf("reading record sequence: %w", err)
	}
	s.log.Debug("recorded headline", "seq", r.Seq, "category", r.Category)
	return r, nil
}

// List returns every record in insertion order.
func (s *Store) List() ([]Record, error) {
	return s.query(`SELECT seq, id, text, category, created_at FROM headlines ORDER BY seq`)
}

// ListByCategory returns the records for c in insertion order.
func (s *Store) ListByCategory(c headline.Category) ([]Record, error) {
	return s.query(`SELECT seq, id, text, category, created_at FROM headlines WHERE category = ? ORDER BY seq`, string(c))
}

func (s *Store) query(q string, args ...any) ([]Record, error) {
	rows, err := s.db.Query(q, args...)
	if err != nil {
		return nil, fmt.Errorf("querying history: %w", err)
	}
	defer rows.Close()

	var records []Record
	for rows.Next() {
		var (
			r   Record
			cat string
		)
		if err := rows.Scan(&r.Seq, &r.ID, &r.Text, &cat, &r.CreatedAt); err != nil {
			return nil, fmt.Errorf("scanning record: %w", err)
		}
		r.Category = headline.Category(cat)
		records = append(records, r)
	}
	return records, rows.Err()
}

// Count returns the number of records.
func (s *Store) Count() (int, error) {
	var n int
	if err := s.db.QueryRow(`SELECT COUNT(*) FROM headlines`).Scan(&n); err != nil {
		return 0, fmt.Errorf("counting history: %w", err)
	}
	return n, nil
}

// CountByCategory returns per-category totals. Categories with no records
// are present with a zero count.
func (s *Store) CountByCategory() (map[headline.Category]int, error) {
	counts := make(map[headline.Category]int, len(headline.AllCategories()))
	for _, c := range headline.AllCategories() {
		counts[c] = 0
	}

	rows, err := s.db.Query(`SELECT category, COUNT(*) FROM headlines GROUP BY category`)
	if err != nil {
		return nil, fmt.Errorf("counting by category: %w", err)
	}
	defer rows.Close()

	for rows.Next() {
		var (
			cat string
			n   int
		)
		if err := rows.Scan(&cat, &n); err != nil {
			return nil, fmt.Errorf("scanning count: %w", err)
		}
		counts[headline.Category(cat)] = n
	}
	return counts, rows.Err()
}
