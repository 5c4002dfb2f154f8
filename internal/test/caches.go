package test

import (
	"context"

	"github.com/onyxlab/onyx/internal/domain/model"
)

// CacheStub records material cache interactions for tests.
type CacheStub struct {
	GetFn        func(context.Context, string) (*model.Material, error)
	SetFn        func(context.Context, *model.Material) error
	InvalidateFn func(context.Context, string) error

	Stored      map[string]*model.Material
	Invalidated []string
}

// NewCacheStub constructs an empty in-memory cache stub.
func NewCacheStub() *CacheStub {
	return &CacheStub{Stored: make(map[string]*model.Material)}
}

// Get returns a stored projection or a miss.
func (s *CacheStub) Get(ctx context.Context, publicID string) (*model.Material, error) {
	if s.GetFn != nil {
		return s.GetFn(ctx, publicID)
	}
	if m, ok := s.Stored[publicID]; ok {
		return m, nil
	}
	return nil, nil
}

// Set records the projection under its public id.
func (s *CacheStub) Set(ctx context.Context, material *model.Material) error {
	if s.SetFn != nil {
		return s.SetFn(ctx, material)
	}
	if s.Stored == nil {
		s.Stored = make(map[string]*model.Material)
	}
	s.Stored[material.PublicID] = material
	return nil
}

// Invalidate drops the projection and records the call.
func (s *CacheStub) Invalidate(ctx context.Context, publicID string) error {
	if s.InvalidateFn != nil {
		return s.InvalidateFn(ctx, publicID)
	}
	delete(s.Stored, publicID)
	s.Invalidated = append(s.Invalidated, publicID)
	return nil
}
