package handlers

import (
	"context"
	"sync"

	"github.com/stretchr/testify/mock"

	"fitness-catalog/internal/models"
	"fitness-catalog/internal/service"
)

type mockCatalogService struct {
	mock.Mock
}

func (m *mockCatalogService) Create(ctx context.Context, in models.ProductCreate) (*models.Product, error) {
	args := m.Called(ctx, in)
	if p, ok := args.Get(0).(*models.Product); ok {
		return p, args.Error(1)
	}
	return nil, args.Error(1)
}

func (m *mockCatalogService) List(ctx context.Context, params service.ListParams) ([]models.Product, error) {
	args := m.Called(ctx, params)
	if p, ok := args.Get(0).([]models.Product); ok {
		return p, args.Error(1)
	}
	return nil, args.Error(1)
}

func (m *mockCatalogService) Featured(ctx context.Context, limit int64) ([]models.Product, error) {
	args := m.Called(ctx, limit)
	if p, ok := args.Get(0).([]models.Product); ok {
		return p, args.Error(1)
	}
	return nil, args.Error(1)
}

func (m *mockCatalogService) ByCategory(ctx context.Context, category models.Category) ([]models.Product, error) {
	args := m.Called(ctx, category)
	if p, ok := args.Get(0).([]models.Product); ok {
		return p, args.Error(1)
	}
	return nil, args.Error(1)
}

func (m *mockCatalogService) Get(ctx context.Context, id string) (*models.Product, error) {
	args := m.Called(ctx, id)
	if p, ok := args.Get(0).(*models.Product); ok {
		return p, args.Error(1)
	}
	return nil, args.Error(1)
}

func (m *mockCatalogService) Update(ctx context.Context, id string, in models.ProductUpdate) (*models.Product, error) {
	args := m.Called(ctx, id, in)
	if p, ok := args.Get(0).(*models.Product); ok {
		return p, args.Error(1)
	}
	return nil, args.Error(1)
}

func (m *mockCatalogService) Delete(ctx context.Context, id string) error {
	return m.Called(ctx, id).Error(0)
}

func (m *mockCatalogService) Seed(ctx context.Context) (*service.SeedResult, error) {
	args := m.Called(ctx)
	if r, ok := args.Get(0).(*service.SeedResult); ok {
		return r, args.Error(1)
	}
	return nil, args.Error(1)
}

// memStatusStore guarda los status checks en memoria
type memStatusStore struct {
	mu     sync.Mutex
	checks []models.StatusCheck
}

func (s *memStatusStore) Create(_ context.Context, check *models.StatusCheck) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.checks = append(s.checks, *check)
	return nil
}

func (s *memStatusStore) List(_ context.Context, limit int64) ([]models.StatusCheck, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	out := make([]models.StatusCheck, 0, len(s.checks))
	for i, c := range s.checks {
		if int64(i) >= limit {
			break
		}
		out = append(out, c)
	}
	return out, nil
}
