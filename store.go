package ddir

import "context"

// DescriberStore loads and saves a Describer.
//
// Load returns ENOTFOUND when no state has ever been persisted, and an
// EINVALID error when the persisted state is corrupt; it never returns a
// silently empty Describer. Save replaces the persisted state atomically,
// so a failed Save leaves the previous state untouched.
type DescriberStore interface {
	Load(ctx context.Context) (*Describer, error)
	Save(ctx context.Context, d *Describer) error
}
