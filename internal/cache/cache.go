package cache

import (
	"context"

	"github.com/onyxlab/onyx/internal/domain/model"
)

// MaterialCache stores public material projections keyed by public id.
// Get returns (nil, nil) on a miss.
type MaterialCache interface {
	Get(ctx context.Context, publicID string) (*model.Material, error)
	Set(ctx context.Context, material *model.Material) error
	Invalidate(ctx context.Context, publicID string) error
}

// Noop satisfies MaterialCache when no cache backend is configured.
type Noop struct{}

func (Noop) Get(context.Context, string) (*model.Material, error) { return nil, nil }
func (Noop) Set(context.Context, *model.Material) error           { return nil }
func (Noop) Invalidate(context.Context, string) error             { return nil }
