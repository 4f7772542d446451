package service

import (
	"context"
	"sort"
	"sync"
	"time"

	"fitness-catalog/internal/models"
	"fitness-catalog/internal/repository"
)

// fakeStore reproduce en memoria la semántica del repositorio Mongo
type fakeStore struct {
	mu       sync.Mutex
	order    []string
	products map[string]models.Product
	finds    int
	err      error

	// findStarted/findGate detienen FindByID tras leer el documento
	findStarted chan struct{}
	findGate    chan struct{}
}

func newFakeStore() *fakeStore {
	return &fakeStore{products: map[string]models.Product{}}
}

func (f *fakeStore) Create(_ context.Context, p *models.Product) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	if f.err != nil {
		return f.err
	}
	f.products[p.ID] = *p
	f.order = append(f.order, p.ID)
	return nil
}

func (f *fakeStore) CreateMany(ctx context.Context, products []models.Product) error {
	for i := range products {
		if err := f.Create(ctx, &products[i]); err != nil {
			return err
		}
	}
	return nil
}

func (f *fakeStore) FindByID(_ context.Context, id string) (*models.Product, error) {
	f.mu.Lock()
	f.finds++
	err := f.err
	p, ok := f.products[id]
	started, gate := f.findStarted, f.findGate
	f.mu.Unlock()

	if gate != nil {
		started <- struct{}{}
		<-gate
	}

	if err != nil {
		return nil, err
	}
	if !ok {
		return nil, repository.ErrProductNotFound
	}
	return &p, nil
}

// gateFinds hace que la próxima lectura por ID espere a release
func (f *fakeStore) gateFinds() (started <-chan struct{}, release func()) {
	f.mu.Lock()
	defer f.mu.Unlock()
	s := make(chan struct{}, 1)
	g := make(chan struct{})
	f.findStarted, f.findGate = s, g
	return s, func() {
		f.mu.Lock()
		f.findStarted, f.findGate = nil, nil
		f.mu.Unlock()
		close(g)
	}
}

func (f *fakeStore) Find(_ context.Context, filter repository.ProductFilter) ([]models.Product, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	if f.err != nil {
		return nil, f.err
	}

	out := make([]models.Product, 0)
	for _, id := range f.order {
		p, ok := f.products[id]
		if !ok {
			continue
		}
		if filter.Category != "" && p.Category != filter.Category {
			continue
		}
		if filter.Status != "" && p.Status != filter.Status {
			continue
		}
		if filter.MinRating != nil && p.Rating < *filter.MinRating {
			continue
		}
		out = append(out, p)
	}

	if filter.SortBy == "rating" {
		sort.SliceStable(out, func(i, j int) bool {
			if filter.SortDesc {
				return out[i].Rating > out[j].Rating
			}
			return out[i].Rating < out[j].Rating
		})
	}
	if filter.Skip > 0 {
		if filter.Skip >= int64(len(out)) {
			return []models.Product{}, nil
		}
		out = out[filter.Skip:]
	}
	if filter.Limit > 0 && filter.Limit < int64(len(out)) {
		out = out[:filter.Limit]
	}
	return out, nil
}

func (f *fakeStore) Update(_ context.Context, id string, fields map[string]any, now time.Time) (*models.Product, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	if f.err != nil {
		return nil, f.err
	}
	p, ok := f.products[id]
	if !ok {
		return nil, repository.ErrProductNotFound
	}

	for k, v := range fields {
		switch k {
		case "name":
			p.Name = v.(string)
		case "description":
			p.Description = v.(string)
		case "price":
			p.Price = v.(float64)
		case "category":
			p.Category = v.(models.Category)
		case "status":
			p.Status = v.(models.Status)
		case "stock_quantity":
			p.StockQuantity = v.(int)
		case "tags":
			p.Tags = v.([]string)
		}
	}
	p.UpdatedAt = now
	f.products[id] = p
	return &p, nil
}

func (f *fakeStore) Delete(_ context.Context, id string) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	if f.err != nil {
		return f.err
	}
	if _, ok := f.products[id]; !ok {
		return repository.ErrProductNotFound
	}
	delete(f.products, id)
	return nil
}

func (f *fakeStore) Count(_ context.Context) (int64, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	if f.err != nil {
		return 0, f.err
	}
	return int64(len(f.products)), nil
}
