package catalog

import (
	"database/sql"
	"fmt"

	"hexapath/internal/hexagram"

	_ "modernc.org/sqlite"
)

// #region schema
const schema = `
CREATE TABLE IF NOT EXISTS hexagrams (
	code       TEXT PRIMARY KEY,
	number     INTEGER NOT NULL UNIQUE,
	name       TEXT NOT NULL,
	glyph      TEXT NOT NULL,
	judgement  TEXT NOT NULL DEFAULT ''
);
CREATE INDEX IF NOT EXISTS idx_hexagrams_number ON hexagrams(number);
`

// #endregion schema

// #region store-struct

// Store is a SQLite-backed catalog for installs that ship the reference DB
// with judgement texts. It satisfies Catalog by loading eagerly: 64 rows do
// not justify per-lookup queries.
type Store struct {
	db  *sql.DB
	mem *Memory
}

// #endregion store-struct

// #region constructor

// NewStore opens the reference database, runs migrations, and loads entries.
func NewStore(dbPath string) (*Store, error) {
	db, err := sql.Open("sqlite", dbPath)
	if err != nil {
		return nil, fmt.Errorf("open db: %w", err)
	}
	if _, err := db.Exec("PRAGMA journal_mode=WAL"); err != nil {
		db.Close()
		return nil, fmt.Errorf("pragma: %w", err)
	}
	if _, err := db.Exec(schema); err != nil {
		db.Close()
		return nil, fmt.Errorf("migrate: %w", err)
	}
	s := &Store{db: db}
	if err := s.reload(); err != nil {
		db.Close()
		return nil, err
	}
	return s, nil
}

// #endregion constructor

// #region close

// Close closes the underlying database connection.
func (s *Store) Close() error {
	return s.db.Close()
}

// DB returns the underlying *sql.DB for tooling.
func (s *Store) DB() *sql.DB {
	return s.db
}

// #endregion close

// #region seed

// Seed upserts entries into the database and reloads the in-memory view.
// Existing judgement text is preserved when the incoming entry has none.
func (s *Store) Seed(entries []Entry) error {
	tx, err := s.db.Begin()
	if err != nil {
		return fmt.Errorf("begin seed: %w", err)
	}
	for _, e := range entries {
		_, err := tx.Exec(
			`INSERT INTO hexagrams (code, number, name, glyph, judgement)
			 VALUES (?, ?, ?, ?, ?)
			 ON CONFLICT(code) DO UPDATE SET
			   number = excluded.number,
			   name = excluded.name,
			   glyph = excluded.glyph,
			   judgement = CASE WHEN excluded.judgement = '' THEN hexagrams.judgement ELSE excluded.judgement END`,
			string(e.Code), e.Number, e.Name, string(e.Glyph), e.Judgement,
		)
		if err != nil {
			tx.Rollback()
			return fmt.Errorf("seed %s: %w", e.Code, err)
		}
	}
	if err := tx.Commit(); err != nil {
		return fmt.Errorf("commit seed: %w", err)
	}
	return s.reload()
}

// #endregion seed

// #region load

func (s *Store) reload() error {
	rows, err := s.db.Query(`SELECT code, number, name, glyph, judgement FROM hexagrams ORDER BY number`)
	if err != nil {
		return fmt.Errorf("load catalog: %w", err)
	}
	defer rows.Close()

	var entries []Entry
	for rows.Next() {
		var e Entry
		var code, glyph string
		if err := rows.Scan(&code, &e.Number, &e.Name, &glyph, &e.Judgement); err != nil {
			return fmt.Errorf("scan catalog row: %w", err)
		}
		e.Code = hexagram.Code(code)
		for _, r := range glyph {
			e.Glyph = r
			break
		}
		entries = append(entries, e)
	}
	if err := rows.Err(); err != nil {
		return err
	}
	s.mem = NewMemory(entries)
	return nil
}

// #endregion load

// #region catalog-interface

// Lookup returns the entry for code, if present.
func (s *Store) Lookup(code hexagram.Code) (Entry, bool) {
	return s.mem.Lookup(code)
}

// Contains reports presence of code.
func (s *Store) Contains(code hexagram.Code) bool {
	return s.mem.Contains(code)
}

// Codes returns every code in King Wen order.
func (s *Store) Codes() []hexagram.Code {
	return s.mem.Codes()
}

// #endregion catalog-interface
