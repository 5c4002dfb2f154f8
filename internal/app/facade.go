package app

import (
	"context"

	"github.com/onyxlab/onyx/internal/domain/model"
	pkgAuth "github.com/onyxlab/onyx/internal/pkg/auth"
	"github.com/onyxlab/onyx/internal/usecase"
)

// HealthChecker reports storage connectivity.
type HealthChecker interface {
	HealthCheck(ctx context.Context) error
}

// NotesFacade is the single entry point the HTTP layer talks to.
type NotesFacade struct {
	auth      *usecase.AuthUseCase
	materials *usecase.MaterialUseCase
	health    HealthChecker
}

func NewNotesFacade(auth *usecase.AuthUseCase, materials *usecase.MaterialUseCase, health HealthChecker) *NotesFacade {
	return &NotesFacade{auth: auth, materials: materials, health: health}
}

func (f *NotesFacade) Register(ctx context.Context, email, password string) (*model.User, error) {
	return f.auth.Register(ctx, email, password)
}

func (f *NotesFacade) Authenticate(ctx context.Context, email, password string) (string, error) {
	_, token, err := f.auth.Authenticate(ctx, email, password)
	return token, err
}

func (f *NotesFacade) ParseToken(token string) (*pkgAuth.Claims, error) {
	return f.auth.ParseToken(token)
}

func (f *NotesFacade) CreateMaterial(ctx context.Context, userID int64, in usecase.MaterialInput) (*model.Material, error) {
	return f.materials.Create(ctx, userID, in)
}

func (f *NotesFacade) Materials(ctx context.Context, userID int64) ([]model.Material, error) {
	return f.materials.ListByUser(ctx, userID)
}

func (f *NotesFacade) UpdateMaterial(ctx context.Context, userID, id int64, in usecase.MaterialInput) (*model.Material, error) {
	return f.materials.Update(ctx, userID, id, in)
}

func (f *NotesFacade) DeleteMaterial(ctx context.Context, userID, id int64) (*model.Material, error) {
	return f.materials.Delete(ctx, userID, id)
}

func (f *NotesFacade) PublicMaterial(ctx context.Context, publicID string) (*model.Material, error) {
	return f.materials.Public(ctx, publicID)
}

func (f *NotesFacade) HealthCheck(ctx context.Context) error {
	return f.health.HealthCheck(ctx)
}
