package mock

import (
	"context"

	"github.com/fwojciec/ddir"
)

var _ ddir.DescriberStore = (*DescriberStore)(nil)

// DescriberStore is a mock implementation of ddir.DescriberStore.
type DescriberStore struct {
	LoadFn func(ctx context.Context) (*ddir.Describer, error)
	SaveFn func(ctx context.Context, d *ddir.Describer) error
}

func (s *DescriberStore) Load(ctx context.Context) (*ddir.Describer, error) {
	return s.LoadFn(ctx)
}

func (s *DescriberStore) Save(ctx context.Context, d *ddir.Describer) error {
	return s.SaveFn(ctx, d)
}
