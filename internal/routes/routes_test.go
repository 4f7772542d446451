package routes

import (
	"context"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"

	"fitness-catalog/internal/handlers"
	"fitness-catalog/internal/models"
	"fitness-catalog/internal/repository"
	"fitness-catalog/internal/service"
)

// emptyStore es un store sin productos
type emptyStore struct{}

func (emptyStore) Create(context.Context, *models.Product) error {
	return nil
}

func (emptyStore) CreateMany(context.Context, []models.Product) error {
	return nil
}

func (emptyStore) Count(context.Context) (int64, error) {
	return 0, nil
}

func (emptyStore) Delete(context.Context, string) error {
	return repository.ErrProductNotFound
}

func (emptyStore) FindByID(context.Context, string) (*models.Product, error) {
	return nil, repository.ErrProductNotFound
}

func (emptyStore) Find(context.Context, repository.ProductFilter) ([]models.Product, error) {
	return []models.Product{}, nil
}

func (emptyStore) Update(context.Context, string, map[string]any, time.Time) (*models.Product, error) {
	return nil, repository.ErrProductNotFound
}

type emptyStatusStore struct{}

func (emptyStatusStore) Create(context.Context, *models.StatusCheck) error {
	return nil
}

func (emptyStatusStore) List(context.Context, int64) ([]models.StatusCheck, error) {
	return []models.StatusCheck{}, nil
}

func TestRegisterRoutes(t *testing.T) {
	gin.SetMode(gin.TestMode)
	router := gin.New()
	RegisterRoutes(router,
		handlers.NewProductHandler(service.NewCatalogService(emptyStore{}, zap.NewNop()), zap.NewNop()),
		handlers.NewStatusHandler(service.NewStatusService(emptyStatusStore{}), zap.NewNop()),
	)

	tests := []struct {
		method string
		path   string
		want   int
	}{
		{http.MethodGet, "/api/", http.StatusOK},
		{http.MethodGet, "/api/status", http.StatusOK},
		{http.MethodGet, "/api/products", http.StatusOK},
		{http.MethodGet, "/api/products/featured", http.StatusOK},
		{http.MethodGet, "/api/products/category/apparel", http.StatusOK},
		{http.MethodGet, "/api/products/category/not-a-real-category", http.StatusUnprocessableEntity},
		{http.MethodGet, "/api/products/nonexistent-id-12345", http.StatusNotFound},
		{http.MethodPut, "/api/products/nonexistent-id-12345", http.StatusNotFound},
		{http.MethodDelete, "/api/products/nonexistent-id-12345", http.StatusNotFound},
		{http.MethodGet, "/metrics", http.StatusOK},
	}

	for _, tt := range tests {
		t.Run(tt.method+" "+tt.path, func(t *testing.T) {
			var body *strings.Reader
			if tt.method == http.MethodPut {
				body = strings.NewReader(`{"price":10}`)
			} else {
				body = strings.NewReader("")
			}
			req := httptest.NewRequest(tt.method, tt.path, body)
			req.Header.Set("Content-Type", "application/json")
			rec := httptest.NewRecorder()
			router.ServeHTTP(rec, req)
			assert.Equal(t, tt.want, rec.Code)
		})
	}
}

func TestSeedRouteLoadsCatalogOnce(t *testing.T) {
	gin.SetMode(gin.TestMode)
	router := gin.New()
	RegisterRoutes(router,
		handlers.NewProductHandler(service.NewCatalogService(emptyStore{}, zap.NewNop()), zap.NewNop()),
		handlers.NewStatusHandler(service.NewStatusService(emptyStatusStore{}), zap.NewNop()),
	)

	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, httptest.NewRequest(http.MethodPost, "/api/products/seed", nil))

	require.Equal(t, http.StatusOK, rec.Code)
	assert.Contains(t, rec.Body.String(), "Seeded")
}
