package usecase

import (
	"context"
	"log/slog"
	"strings"

	"github.com/google/uuid"

	"github.com/onyxlab/onyx/internal/cache"
	domainErrors "github.com/onyxlab/onyx/internal/domain/errors"
	"github.com/onyxlab/onyx/internal/domain/model"
	"github.com/onyxlab/onyx/internal/domain/repository"
)

// MaterialInput carries client-supplied material fields.
type MaterialInput struct {
	Title   string
	Content string
	Tags    []string
}

// MaterialUseCase implements owner-scoped CRUD over materials plus the public
// read path. Cache failures never fail a request; they are logged and the
// database remains the source of truth.
type MaterialUseCase struct {
	materials repository.MaterialRepository
	cache     cache.MaterialCache
	logger    *slog.Logger
}

// NewMaterialUseCase constructs MaterialUseCase.
func NewMaterialUseCase(materials repository.MaterialRepository, materialCache cache.MaterialCache, logger *slog.Logger) *MaterialUseCase {
	return &MaterialUseCase{materials: materials, cache: materialCache, logger: logger}
}

// Create stores a new material for the user and assigns its opaque public id.
func (u *MaterialUseCase) Create(ctx context.Context, userID int64, in MaterialInput) (*model.Material, error) {
	if strings.TrimSpace(in.Title) == "" {
		return nil, domainErrors.ErrValidation
	}
	publicID := uuid.NewString()
	return u.materials.Create(ctx, userID, publicID, in.Title, in.Content, normalizeTags(in.Tags))
}

// ListByUser returns the user's materials, newest first.
func (u *MaterialUseCase) ListByUser(ctx context.Context, userID int64) ([]model.Material, error) {
	return u.materials.ListByUser(ctx, userID)
}

// Update rewrites an owned material. Rows owned by other users are reported
// as not found.
func (u *MaterialUseCase) Update(ctx context.Context, userID, id int64, in MaterialInput) (*model.Material, error) {
	if strings.TrimSpace(in.Title) == "" {
		return nil, domainErrors.ErrValidation
	}

	material, err := u.materials.Update(ctx, userID, id, in.Title, in.Content, normalizeTags(in.Tags))
	if err != nil {
		return nil, err
	}
	u.invalidate(ctx, material.PublicID)
	return material, nil
}

// Delete removes an owned material and returns the deleted record.
func (u *MaterialUseCase) Delete(ctx context.Context, userID, id int64) (*model.Material, error) {
	material, err := u.materials.Delete(ctx, userID, id)
	if err != nil {
		return nil, err
	}
	u.invalidate(ctx, material.PublicID)
	return material, nil
}

// Public resolves a material by its public id, consulting the cache first.
func (u *MaterialUseCase) Public(ctx context.Context, publicID string) (*model.Material, error) {
	cached, err := u.cache.Get(ctx, publicID)
	if err != nil {
		u.logger.Warn("material cache read failed", slog.String("error", err.Error()))
	}
	if cached != nil {
		return cached, nil
	}

	material, err := u.materials.GetByPublicID(ctx, publicID)
	if err != nil {
		return nil, err
	}
	if err := u.cache.Set(ctx, material); err != nil {
		u.logger.Warn("material cache write failed", slog.String("error", err.Error()))
	}
	return material, nil
}

func (u *MaterialUseCase) invalidate(ctx context.Context, publicID string) {
	if err := u.cache.Invalidate(ctx, publicID); err != nil {
		u.logger.Warn("material cache invalidation failed", slog.String("error", err.Error()))
	}
}
