package test

import (
	"context"

	domainErrors "github.com/onyxlab/onyx/internal/domain/errors"
	"github.com/onyxlab/onyx/internal/domain/model"
)

// UserRepositoryStub stores users in-memory for tests.
type UserRepositoryStub struct {
	Users map[string]*model.User
	ByID  map[int64]*model.User
	Next  int64
	Err   error
}

// NewUserRepositoryStub constructs stub repository with initialized maps.
func NewUserRepositoryStub() *UserRepositoryStub {
	return &UserRepositoryStub{
		Users: make(map[string]*model.User),
		ByID:  make(map[int64]*model.User),
		Next:  1,
	}
}

// Create registers user unless already exists or stub has explicit error.
func (s *UserRepositoryStub) Create(ctx context.Context, email, passwordHash string) (*model.User, error) {
	if s.Err != nil {
		return nil, s.Err
	}
	if s.Users == nil {
		s.Users = make(map[string]*model.User)
	}
	if s.ByID == nil {
		s.ByID = make(map[int64]*model.User)
	}
	if _, exists := s.Users[email]; exists {
		return nil, domainErrors.ErrAlreadyExists
	}
	if s.Next == 0 {
		s.Next = 1
	}
	user := &model.User{ID: s.Next, Email: email, PasswordHash: passwordHash}
	s.Next++
	s.Users[email] = user
	s.ByID[user.ID] = user
	return user, nil
}

// GetByEmail fetches user by email or returns not found.
func (s *UserRepositoryStub) GetByEmail(ctx context.Context, email string) (*model.User, error) {
	if s.Err != nil {
		return nil, s.Err
	}
	if user, ok := s.Users[email]; ok {
		return user, nil
	}
	return nil, domainErrors.ErrNotFound
}

// GetByID fetches user by identifier or returns not found.
func (s *UserRepositoryStub) GetByID(ctx context.Context, id int64) (*model.User, error) {
	if s.Err != nil {
		return nil, s.Err
	}
	if user, ok := s.ByID[id]; ok {
		return user, nil
	}
	return nil, domainErrors.ErrNotFound
}

// MaterialRepositoryStub stores materials in-memory with owner filtering.
type MaterialRepositoryStub struct {
	CreateFn func(context.Context, int64, string, string, string, []string) (*model.Material, error)
	ListFn   func(context.Context, int64) ([]model.Material, error)
	UpdateFn func(context.Context, int64, int64, string, string, []string) (*model.Material, error)
	DeleteFn func(context.Context, int64, int64) (*model.Material, error)
	PublicFn func(context.Context, string) (*model.Material, error)

	Materials map[int64]*model.Material
	Next      int64
	Err       error
}

// NewMaterialRepositoryStub constructs stub repository with initialized state.
func NewMaterialRepositoryStub() *MaterialRepositoryStub {
	return &MaterialRepositoryStub{Materials: make(map[int64]*model.Material), Next: 1}
}

// Create stores a material owned by userID.
func (s *MaterialRepositoryStub) Create(ctx context.Context, userID int64, publicID, title, content string, tags []string) (*model.Material, error) {
	if s.CreateFn != nil {
		return s.CreateFn(ctx, userID, publicID, title, content, tags)
	}
	if s.Err != nil {
		return nil, s.Err
	}
	if s.Materials == nil {
		s.Materials = make(map[int64]*model.Material)
	}
	if s.Next == 0 {
		s.Next = 1
	}
	material := &model.Material{ID: s.Next, UserID: userID, PublicID: publicID, Title: title, Content: content, Tags: tags}
	s.Next++
	s.Materials[material.ID] = material
	return material, nil
}

// ListByUser returns materials owned by userID.
func (s *MaterialRepositoryStub) ListByUser(ctx context.Context, userID int64) ([]model.Material, error) {
	if s.ListFn != nil {
		return s.ListFn(ctx, userID)
	}
	if s.Err != nil {
		return nil, s.Err
	}
	var result []model.Material
	for _, m := range s.Materials {
		if m.UserID == userID {
			result = append(result, *m)
		}
	}
	return result, nil
}

// Update rewrites a material when it exists and is owned by userID.
func (s *MaterialRepositoryStub) Update(ctx context.Context, userID, id int64, title, content string, tags []string) (*model.Material, error) {
	if s.UpdateFn != nil {
		return s.UpdateFn(ctx, userID, id, title, content, tags)
	}
	if s.Err != nil {
		return nil, s.Err
	}
	material, ok := s.Materials[id]
	if !ok || material.UserID != userID {
		return nil, domainErrors.ErrNotFound
	}
	material.Title = title
	material.Content = content
	material.Tags = tags
	return material, nil
}

// Delete removes a material when it exists and is owned by userID.
func (s *MaterialRepositoryStub) Delete(ctx context.Context, userID, id int64) (*model.Material, error) {
	if s.DeleteFn != nil {
		return s.DeleteFn(ctx, userID, id)
	}
	if s.Err != nil {
		return nil, s.Err
	}
	material, ok := s.Materials[id]
	if !ok || material.UserID != userID {
		return nil, domainErrors.ErrNotFound
	}
	delete(s.Materials, id)
	return material, nil
}

// GetByPublicID resolves a material regardless of owner.
func (s *MaterialRepositoryStub) GetByPublicID(ctx context.Context, publicID string) (*model.Material, error) {
	if s.PublicFn != nil {
		return s.PublicFn(ctx, publicID)
	}
	if s.Err != nil {
		return nil, s.Err
	}
	for _, m := range s.Materials {
		if m.PublicID == publicID {
			return m, nil
		}
	}
	return nil, domainErrors.ErrNotFound
}
