package mock

import "github.com/fwojciec/ddir"

var _ ddir.PathResolver = (*PathResolver)(nil)

// PathResolver is a mock implementation of ddir.PathResolver.
type PathResolver struct {
	ResolveFn func(path string) (string, error)
}

func (r *PathResolver) Resolve(path string) (string, error) {
	return r.ResolveFn(path)
}
