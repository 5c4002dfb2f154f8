package handlers

import (
	"context"

	"github.com/onyxlab/onyx/internal/domain/model"
	pkgAuth "github.com/onyxlab/onyx/internal/pkg/auth"
	"github.com/onyxlab/onyx/internal/usecase"
)

// AuthFacade describes authentication capabilities required by handlers.
type AuthFacade interface {
	Register(ctx context.Context, email, password string) (*model.User, error)
	Authenticate(ctx context.Context, email, password string) (string, error)
	ParseToken(token string) (*pkgAuth.Claims, error)
}

// MaterialFacade encapsulates material operations exposed via HTTP.
type MaterialFacade interface {
	CreateMaterial(ctx context.Context, userID int64, in usecase.MaterialInput) (*model.Material, error)
	Materials(ctx context.Context, userID int64) ([]model.Material, error)
	UpdateMaterial(ctx context.Context, userID, id int64, in usecase.MaterialInput) (*model.Material, error)
	DeleteMaterial(ctx context.Context, userID, id int64) (*model.Material, error)
	PublicMaterial(ctx context.Context, publicID string) (*model.Material, error)
}

// SystemFacade provides operational probes.
type SystemFacade interface {
	HealthCheck(ctx context.Context) error
}

// NotesFacade aggregates the full set of operations used across handlers.
type NotesFacade interface {
	AuthFacade
	MaterialFacade
	SystemFacade
}
