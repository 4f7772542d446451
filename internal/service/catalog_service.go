package service

import (
	"context"
	"fmt"
	"time"

	"github.com/google/uuid"
	"go.uber.org/zap"

	"fitness-catalog/internal/models"
	"fitness-catalog/internal/repository"
)

const (
	DefaultListLimit     = 100
	DefaultFeaturedLimit = 6
	FeaturedMinRating    = 4.0
)

// ProductStore es el adaptador del store documental que usa el catálogo
type ProductStore interface {
	Create(ctx context.Context, product *models.Product) error
	CreateMany(ctx context.Context, products []models.Product) error
	FindByID(ctx context.Context, id string) (*models.Product, error)
	Find(ctx context.Context, f repository.ProductFilter) ([]models.Product, error)
	Update(ctx context.Context, id string, fields map[string]any, now time.Time) (*models.Product, error)
	Delete(ctx context.Context, id string) error
	Count(ctx context.Context) (int64, error)
}

// ListParams son los parámetros opcionales del listado general
type ListParams struct {
	Category models.Category
	Status   models.Status
	Skip     int64
	Limit    int64
}

// SeedResult resume una llamada a Seed
type SeedResult struct {
	Seeded bool
	Count  int64
	Names  []string
}

type CatalogService interface {
	Create(ctx context.Context, in models.ProductCreate) (*models.Product, error)
	List(ctx context.Context, params ListParams) ([]models.Product, error)
	Featured(ctx context.Context, limit int64) ([]models.Product, error)
	ByCategory(ctx context.Context, category models.Category) ([]models.Product, error)
	Get(ctx context.Context, id string) (*models.Product, error)
	Update(ctx context.Context, id string, in models.ProductUpdate) (*models.Product, error)
	Delete(ctx context.Context, id string) error
	Seed(ctx context.Context) (*SeedResult, error)
}

type catalogService struct {
	store  ProductStore
	logger *zap.Logger
	now    func() time.Time
	newID  func() string
}

func NewCatalogService(store ProductStore, logger *zap.Logger) CatalogService {
	return &catalogService{
		store:  store,
		logger: logger,
		now:    now,
		newID:  uuid.NewString,
	}
}

// now recorta a milisegundos, la precisión con la que el store guarda fechas
func now() time.Time {
	return time.Now().UTC().Truncate(time.Millisecond)
}

func (s *catalogService) Create(ctx context.Context, in models.ProductCreate) (*models.Product, error) {
	product := in.ToProduct(s.newID(), s.now())

	if err := s.store.Create(ctx, &product); err != nil {
		return nil, err
	}

	s.logger.Info("product created",
		zap.String("product_id", product.ID),
		zap.String("category", product.Category.String()),
	)
	return &product, nil
}

func (s *catalogService) List(ctx context.Context, params ListParams) ([]models.Product, error) {
	limit := params.Limit
	if limit <= 0 {
		limit = DefaultListLimit
	}
	skip := params.Skip
	if skip < 0 {
		skip = 0
	}

	return s.store.Find(ctx, repository.ProductFilter{
		Category: params.Category,
		Status:   params.Status,
		Skip:     skip,
		Limit:    limit,
	})
}

func (s *catalogService) Featured(ctx context.Context, limit int64) ([]models.Product, error) {
	if limit <= 0 {
		limit = DefaultFeaturedLimit
	}
	minRating := FeaturedMinRating

	return s.store.Find(ctx, repository.ProductFilter{
		Status:    models.StatusActive,
		MinRating: &minRating,
		SortBy:    "rating",
		SortDesc:  true,
		Limit:     limit,
	})
}

func (s *catalogService) ByCategory(ctx context.Context, category models.Category) ([]models.Product, error) {
	if _, err := models.ParseCategory(category.String()); err != nil {
		return nil, err
	}

	return s.store.Find(ctx, repository.ProductFilter{
		Category: category,
		Status:   models.StatusActive,
	})
}

func (s *catalogService) Get(ctx context.Context, id string) (*models.Product, error) {
	return s.store.FindByID(ctx, id)
}

// Update aplica una actualización parcial en una sola operación condicional del store
func (s *catalogService) Update(ctx context.Context, id string, in models.ProductUpdate) (*models.Product, error) {
	fields := in.Fields()

	product, err := s.store.Update(ctx, id, fields, s.now())
	if err != nil {
		return nil, err
	}

	s.logger.Info("product updated",
		zap.String("product_id", id),
		zap.Int("fields", len(fields)),
	)
	return product, nil
}

func (s *catalogService) Delete(ctx context.Context, id string) error {
	if err := s.store.Delete(ctx, id); err != nil {
		return err
	}

	s.logger.Info("product deleted", zap.String("product_id", id))
	return nil
}

// Seed inserta el catálogo de ejemplo solo si la colección está vacía
func (s *catalogService) Seed(ctx context.Context) (*SeedResult, error) {
	count, err := s.store.Count(ctx)
	if err != nil {
		return nil, err
	}
	if count > 0 {
		return &SeedResult{Seeded: false, Count: count}, nil
	}

	products := SampleCatalog(s.newID, s.now())
	if err := s.store.CreateMany(ctx, products); err != nil {
		return nil, fmt.Errorf("seed catalog: %w", err)
	}

	names := make([]string, len(products))
	for i, p := range products {
		names[i] = p.Name
	}

	s.logger.Info("catalog seeded", zap.Int("products", len(products)))
	return &SeedResult{Seeded: true, Count: int64(len(products)), Names: names}, nil
}
