package test

import (
	"context"

	"github.com/onyxlab/onyx/internal/domain/model"
	"github.com/onyxlab/onyx/internal/usecase"
)

// MaterialFacadeStub provides controllable behaviour for material endpoints.
type MaterialFacadeStub struct {
	CreateFn func(context.Context, int64, usecase.MaterialInput) (*model.Material, error)
	ListFn   func(context.Context, int64) ([]model.Material, error)
	UpdateFn func(context.Context, int64, int64, usecase.MaterialInput) (*model.Material, error)
	DeleteFn func(context.Context, int64, int64) (*model.Material, error)
	PublicFn func(context.Context, string) (*model.Material, error)
}

// CreateMaterial delegates to override or returns the stored input.
func (s MaterialFacadeStub) CreateMaterial(ctx context.Context, userID int64, in usecase.MaterialInput) (*model.Material, error) {
	if s.CreateFn != nil {
		return s.CreateFn(ctx, userID, in)
	}
	return &model.Material{ID: 1, UserID: userID, PublicID: "pub-1", Title: in.Title, Content: in.Content, Tags: in.Tags}, nil
}

// Materials returns predefined materials for given user.
func (s MaterialFacadeStub) Materials(ctx context.Context, userID int64) ([]model.Material, error) {
	if s.ListFn != nil {
		return s.ListFn(ctx, userID)
	}
	return []model.Material{{ID: 1, UserID: userID, Title: "note"}}, nil
}

// UpdateMaterial delegates to override or echoes the new field values.
func (s MaterialFacadeStub) UpdateMaterial(ctx context.Context, userID, id int64, in usecase.MaterialInput) (*model.Material, error) {
	if s.UpdateFn != nil {
		return s.UpdateFn(ctx, userID, id, in)
	}
	return &model.Material{ID: id, UserID: userID, Title: in.Title, Content: in.Content, Tags: in.Tags}, nil
}

// DeleteMaterial delegates to override or reports success.
func (s MaterialFacadeStub) DeleteMaterial(ctx context.Context, userID, id int64) (*model.Material, error) {
	if s.DeleteFn != nil {
		return s.DeleteFn(ctx, userID, id)
	}
	return &model.Material{ID: id, UserID: userID, Title: "gone"}, nil
}

// PublicMaterial resolves a material by its public identifier.
func (s MaterialFacadeStub) PublicMaterial(ctx context.Context, publicID string) (*model.Material, error) {
	if s.PublicFn != nil {
		return s.PublicFn(ctx, publicID)
	}
	return &model.Material{ID: 1, PublicID: publicID, Title: "note"}, nil
}

// SystemFacadeStub simulates the health probe.
type SystemFacadeStub struct {
	HealthFn func(context.Context) error
}

// HealthCheck reports configured status.
func (s SystemFacadeStub) HealthCheck(ctx context.Context) error {
	if s.HealthFn != nil {
		return s.HealthFn(ctx)
	}
	return nil
}

// NotesFacadeStub aggregates facade dependencies for HTTP layer tests.
type NotesFacadeStub struct {
	AuthFacadeStub
	MaterialFacadeStub
	SystemFacadeStub
}
