package repository

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"go.mongodb.org/mongo-driver/bson"

	"fitness-catalog/internal/models"
)

func TestBuildFilter(t *testing.T) {
	minRating := 4.0

	tests := []struct {
		name   string
		filter ProductFilter
		want   bson.M
	}{
		{name: "no fields", filter: ProductFilter{}, want: bson.M{}},
		{name: "category only", filter: ProductFilter{Category: models.CategoryApparel}, want: bson.M{"category": models.CategoryApparel}},
		{name: "status only", filter: ProductFilter{Status: models.StatusInactive}, want: bson.M{"status": models.StatusInactive}},
		{
			name:   "featured",
			filter: ProductFilter{Status: models.StatusActive, MinRating: &minRating},
			want:   bson.M{"status": models.StatusActive, "rating": bson.M{"$gte": 4.0}},
		},
		{
			name:   "pagination does not filter",
			filter: ProductFilter{Category: models.CategoryEquipment, Skip: 10, Limit: 5},
			want:   bson.M{"category": models.CategoryEquipment},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, BuildFilter(tt.filter))
		})
	}
}

func TestBuildFindOptions(t *testing.T) {
	opts := buildFindOptions(ProductFilter{Skip: 20, Limit: 10, SortBy: "rating", SortDesc: true})

	assert.Equal(t, int64(20), *opts.Skip)
	assert.Equal(t, int64(10), *opts.Limit)
	assert.Equal(t, bson.D{{Key: "rating", Value: -1}}, opts.Sort)

	plain := buildFindOptions(ProductFilter{})
	assert.Nil(t, plain.Skip)
	assert.Nil(t, plain.Limit)
	assert.Nil(t, plain.Sort)
}
