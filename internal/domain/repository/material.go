package repository

import (
	"context"

	"github.com/onyxlab/onyx/internal/domain/model"
)

// MaterialRepository describes persistence operations for materials. Every
// query that takes a userID filters by it, so a caller can never read or
// mutate another user's rows.
type MaterialRepository interface {
	Create(ctx context.Context, userID int64, publicID, title, content string, tags []string) (*model.Material, error)
	ListByUser(ctx context.Context, userID int64) ([]model.Material, error)
	Update(ctx context.Context, userID, id int64, title, content string, tags []string) (*model.Material, error)
	Delete(ctx context.Context, userID, id int64) (*model.Material, error)
	GetByPublicID(ctx context.Context, publicID string) (*model.Material, error)
}
