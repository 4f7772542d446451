package repository

import (
	"context"
	"errors"
	"fmt"
	"time"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"

	"fitness-catalog/internal/models"
)

var ErrProductNotFound = errors.New("product not found")

const (
	writeTimeout = 5 * time.Second
	readTimeout  = 10 * time.Second
)

// ProductFilter describe un listado; los campos vacíos no filtran
type ProductFilter struct {
	Category  models.Category
	Status    models.Status
	MinRating *float64
	SortBy    string
	SortDesc  bool
	Skip      int64
	Limit     int64
}

type ProductRepository struct {
	collection *mongo.Collection
}

func NewProductRepository(collection *mongo.Collection) *ProductRepository {
	return &ProductRepository{
		collection: collection,
	}
}

// Create inserta un producto ya construido por el servicio
func (r *ProductRepository) Create(ctx context.Context, product *models.Product) error {
	ctx, cancel := context.WithTimeout(ctx, writeTimeout)
	defer cancel()

	if _, err := r.collection.InsertOne(ctx, product); err != nil {
		return fmt.Errorf("insert product: %w", err)
	}
	return nil
}

// CreateMany inserta un lote de productos
func (r *ProductRepository) CreateMany(ctx context.Context, products []models.Product) error {
	if len(products) == 0 {
		return nil
	}

	ctx, cancel := context.WithTimeout(ctx, readTimeout)
	defer cancel()

	docs := make([]any, len(products))
	for i := range products {
		docs[i] = products[i]
	}

	if _, err := r.collection.InsertMany(ctx, docs); err != nil {
		return fmt.Errorf("insert products: %w", err)
	}
	return nil
}

// FindByID obtiene un producto por ID
func (r *ProductRepository) FindByID(ctx context.Context, id string) (*models.Product, error) {
	ctx, cancel := context.WithTimeout(ctx, readTimeout)
	defer cancel()

	var product models.Product
	err := r.collection.FindOne(ctx, bson.M{"_id": id}).Decode(&product)
	if err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return nil, ErrProductNotFound
		}
		return nil, fmt.Errorf("find product %s: %w", id, err)
	}

	product.Normalize()
	return &product, nil
}

// Find lista productos según el filtro, en el orden que devuelve el store salvo que se pida orden
func (r *ProductRepository) Find(ctx context.Context, f ProductFilter) ([]models.Product, error) {
	ctx, cancel := context.WithTimeout(ctx, readTimeout)
	defer cancel()

	cursor, err := r.collection.Find(ctx, BuildFilter(f), buildFindOptions(f))
	if err != nil {
		return nil, fmt.Errorf("find products: %w", err)
	}
	defer cursor.Close(ctx)

	products := make([]models.Product, 0)
	if err := cursor.All(ctx, &products); err != nil {
		return nil, fmt.Errorf("decode products: %w", err)
	}

	for i := range products {
		products[i].Normalize()
	}
	return products, nil
}

// Update aplica un $set parcial y devuelve el documento resultante.
// updated_at siempre se refresca, aunque fields venga vacío.
func (r *ProductRepository) Update(ctx context.Context, id string, fields map[string]any, now time.Time) (*models.Product, error) {
	ctx, cancel := context.WithTimeout(ctx, writeTimeout)
	defer cancel()

	set := bson.M{}
	for k, v := range fields {
		set[k] = v
	}
	// Campos del sistema
	delete(set, "_id")
	delete(set, "id")
	delete(set, "created_at")
	set["updated_at"] = now

	opts := options.FindOneAndUpdate().SetReturnDocument(options.After)

	var product models.Product
	err := r.collection.FindOneAndUpdate(ctx, bson.M{"_id": id}, bson.M{"$set": set}, opts).Decode(&product)
	if err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return nil, ErrProductNotFound
		}
		return nil, fmt.Errorf("update product %s: %w", id, err)
	}

	product.Normalize()
	return &product, nil
}

// Delete borra el documento de forma definitiva
func (r *ProductRepository) Delete(ctx context.Context, id string) error {
	ctx, cancel := context.WithTimeout(ctx, writeTimeout)
	defer cancel()

	result, err := r.collection.DeleteOne(ctx, bson.M{"_id": id})
	if err != nil {
		return fmt.Errorf("delete product %s: %w", id, err)
	}

	if result.DeletedCount == 0 {
		return ErrProductNotFound
	}
	return nil
}

func (r *ProductRepository) Count(ctx context.Context) (int64, error) {
	ctx, cancel := context.WithTimeout(ctx, readTimeout)
	defer cancel()

	n, err := r.collection.CountDocuments(ctx, bson.M{})
	if err != nil {
		return 0, fmt.Errorf("count products: %w", err)
	}
	return n, nil
}

// BuildFilter construye el filtro conjuntivo con solo los campos informados
func BuildFilter(f ProductFilter) bson.M {
	filter := bson.M{}

	if f.Category != "" {
		filter["category"] = f.Category
	}
	if f.Status != "" {
		filter["status"] = f.Status
	}
	if f.MinRating != nil {
		filter["rating"] = bson.M{"$gte": *f.MinRating}
	}

	return filter
}

func buildFindOptions(f ProductFilter) *options.FindOptions {
	opts := options.Find()

	if f.Skip > 0 {
		opts.SetSkip(f.Skip)
	}
	if f.Limit > 0 {
		opts.SetLimit(f.Limit)
	}
	if f.SortBy != "" {
		order := 1
		if f.SortDesc {
			order = -1
		}
		opts.SetSort(bson.D{{Key: f.SortBy, Value: order}})
	}

	return opts
}
