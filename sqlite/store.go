package sqlite

import (
	"context"

	"github.com/fwojciec/ddir"
)

// Compile-time interface verification.
var _ ddir.DescriberStore = (*Store)(nil)

// Store implements ddir.DescriberStore using SQLite. Unlike the JSON file
// store, opening the database initializes empty state, so Load on a fresh
// database returns an empty Describer rather than ENOTFOUND.
type Store struct {
	db *DB
}

// NewStore creates a new Store on an open database.
func NewStore(db *DB) *Store {
	return &Store{db: db}
}

// Load reads the full describer state from the two tables.
func (s *Store) Load(ctx context.Context) (*ddir.Describer, error) {
	descriptions, err := s.loadMap(ctx, "SELECT path, description FROM descriptions")
	if err != nil {
		return nil, err
	}

	patterns, err := s.loadMap(ctx, "SELECT path, template FROM patterns")
	if err != nil {
		return nil, err
	}

	return ddir.NewDescriberWith(descriptions, patterns), nil
}

func (s *Store) loadMap(ctx context.Context, query string) (map[string]string, error) {
	rows, err := s.db.QueryContext(ctx, query)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	m := make(map[string]string)
	for rows.Next() {
		var path, value string
		if err := rows.Scan(&path, &value); err != nil {
			return nil, err
		}
		m[path] = value
	}

	return m, rows.Err()
}

// Save replaces the stored state wholesale. Both tables are rewritten in a
// single transaction, so a failed save leaves the previous state in place.
func (s *Store) Save(ctx context.Context, d *ddir.Describer) error {
	tx, err := s.db.BeginTx(ctx)
	if err != nil {
		return err
	}
	defer tx.Rollback()

	if _, err := tx.ExecContext(ctx, "DELETE FROM descriptions"); err != nil {
		return err
	}
	for path, description := range d.Descriptions() {
		if _, err := tx.ExecContext(ctx, `
			INSERT INTO descriptions (path, description) VALUES (?, ?)
		`, path, description); err != nil {
			return err
		}
	}

	if _, err := tx.ExecContext(ctx, "DELETE FROM patterns"); err != nil {
		return err
	}
	for path, template := range d.Patterns() {
		if _, err := tx.ExecContext(ctx, `
			INSERT INTO patterns (path, template) VALUES (?, ?)
		`, path, template); err != nil {
			return err
		}
	}

	return tx.Commit()
}
