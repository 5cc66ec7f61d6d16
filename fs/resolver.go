package fs

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/fwojciec/ddir"
)

// Ensure Resolver implements ddir.PathResolver at compile time.
var _ ddir.PathResolver = (*Resolver)(nil)

// Resolver implements ddir.PathResolver against the real filesystem.
type Resolver struct{}

// NewResolver creates a new Resolver.
func NewResolver() *Resolver {
	return &Resolver{}
}

// Resolve returns the absolute, symlink-free form of path. It fails with
// an EINVALID error when the path does not exist, so descriptions can only
// be attached to real paths.
func (r *Resolver) Resolve(path string) (string, error) {
	abs, err := filepath.Abs(path)
	if err != nil {
		return "", ddir.Errorf(ddir.EINVALID, "invalid path %q: %v", path, err)
	}

	resolved, err := filepath.EvalSymlinks(abs)
	if err != nil {
		if os.IsNotExist(err) {
			return "", ddir.Errorf(ddir.EINVALID, "path %q does not exist", path)
		}
		return "", fmt.Errorf("resolve path %q: %w", path, err)
	}

	return resolved, nil
}
