package service

import (
	"context"
	"fmt"
	"sync"

	"fitness-catalog/internal/cache"
	"fitness-catalog/internal/models"
)

const productKeyPrefix = "product:"

// cachedCatalogService cachea las lecturas por ID y las invalida en cada mutación.
// gen avanza con cada escritura; un Get solo guarda en caché si gen no cambió
// mientras leía del store, así una lectura previa a la escritura no se cachea.
type cachedCatalogService struct {
	next  CatalogService
	cache *cache.Cache

	mu  sync.Mutex
	gen uint64
}

func NewCachedCatalogService(next CatalogService, c *cache.Cache) CatalogService {
	return &cachedCatalogService{
		next:  next,
		cache: c,
	}
}

func productKey(id string) string {
	return fmt.Sprintf("%s%s", productKeyPrefix, id)
}

func (s *cachedCatalogService) Get(ctx context.Context, id string) (*models.Product, error) {
	if v, ok := s.cache.GetValue(productKey(id)); ok {
		if p, ok := v.(models.Product); ok {
			return &p, nil
		}
	}

	s.mu.Lock()
	gen := s.gen
	s.mu.Unlock()

	product, err := s.next.Get(ctx, id)
	if err != nil {
		return nil, err
	}

	s.mu.Lock()
	if s.gen == gen {
		s.cache.Set(productKey(id), *product)
	}
	s.mu.Unlock()
	return product, nil
}

func (s *cachedCatalogService) Update(ctx context.Context, id string, in models.ProductUpdate) (*models.Product, error) {
	product, err := s.next.Update(ctx, id, in)
	s.invalidate(id)
	if err != nil {
		return nil, err
	}
	return product, nil
}

func (s *cachedCatalogService) Delete(ctx context.Context, id string) error {
	err := s.next.Delete(ctx, id)
	s.invalidate(id)
	return err
}

func (s *cachedCatalogService) invalidate(id string) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.gen++
	s.cache.Delete(productKey(id))
}

// Seed solo inserta con la colección vacía, no hay entradas que invalidar
func (s *cachedCatalogService) Seed(ctx context.Context) (*SeedResult, error) {
	return s.next.Seed(ctx)
}

func (s *cachedCatalogService) Create(ctx context.Context, in models.ProductCreate) (*models.Product, error) {
	return s.next.Create(ctx, in)
}

func (s *cachedCatalogService) List(ctx context.Context, params ListParams) ([]models.Product, error) {
	return s.next.List(ctx, params)
}

func (s *cachedCatalogService) Featured(ctx context.Context, limit int64) ([]models.Product, error) {
	return s.next.Featured(ctx, limit)
}

func (s *cachedCatalogService) ByCategory(ctx context.Context, category models.Category) ([]models.Product, error) {
	return s.next.ByCategory(ctx, category)
}
