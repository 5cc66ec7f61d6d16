// Package fs persists describer state to a JSON file and resolves
// user-supplied paths against the real filesystem.
package fs

import (
	"context"
	"fmt"
	"os"
	"path/filepath"

	"github.com/fwojciec/ddir"
)

// Ensure Store implements ddir.DescriberStore at compile time.
var _ ddir.DescriberStore = (*Store)(nil)

// Store implements ddir.DescriberStore on a single JSON file with atomic
// update semantics. Save writes to a temporary file next to the target,
// then moves it into place with a rename.
type Store struct {
	path string
}

// NewStore creates a new Store persisting to the given file path.
func NewStore(path string) *Store {
	return &Store{path: path}
}

// Path returns the file the store persists to.
func (s *Store) Path() string {
	return s.path
}

// Load reads and parses the persisted describer state. It returns an
// ENOTFOUND error when the file does not exist and an EINVALID error when
// the file cannot be parsed; a corrupt file is never read as empty state.
func (s *Store) Load(ctx context.Context) (*ddir.Describer, error) {
	data, err := os.ReadFile(s.path)
	if err != nil {
		if os.IsNotExist(err) {
			return nil, ddir.Errorf(ddir.ENOTFOUND, "config file %q does not exist", s.path)
		}
		return nil, fmt.Errorf("read config file %q: %w", s.path, err)
	}

	d, err := ddir.NewDescriberFromJSON(data)
	if err != nil {
		return nil, fmt.Errorf("parse config file %q: %w", s.path, err)
	}

	return d, nil
}

// Save atomically replaces the persisted state. The containing directory
// is created on first write. State is written indented so the file stays
// hand-editable.
func (s *Store) Save(ctx context.Context, d *ddir.Describer) error {
	data, err := d.ToJSON(true)
	if err != nil {
		return err
	}

	dir := filepath.Dir(s.path)
	if err := os.MkdirAll(dir, 0755); err != nil {
		return fmt.Errorf("create config directory %q: %w", dir, err)
	}

	// Write to a sibling file first so the rename below replaces the
	// previous state in a single step.
	tmpPath := s.path + ".tmp"
	if err := os.WriteFile(tmpPath, data, 0644); err != nil {
		return fmt.Errorf("write temporary config file: %w", err)
	}

	if err := os.Rename(tmpPath, s.path); err != nil {
		_ = os.Remove(tmpPath)
		return fmt.Errorf("replace config file %q: %w", s.path, err)
	}

	return nil
}
