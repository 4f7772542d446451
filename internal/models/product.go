package models

import (
	"time"
)

// DefaultCurrency se aplica cuando el payload no indica moneda
const DefaultCurrency = "USD"

// Assets3D agrupa el modelo 3D de un producto y sus recursos
type Assets3D struct {
	ModelURL     string   `json:"model_url" bson:"model_url" binding:"required"`
	TextureURLs  []string `json:"texture_urls" bson:"texture_urls"`
	PreviewImage string   `json:"preview_image" bson:"preview_image" binding:"required"`
}

// Specifications es la ficha técnica de un producto
type Specifications struct {
	Dimensions      *string        `json:"dimensions" bson:"dimensions,omitempty"`
	Weight          *string        `json:"weight" bson:"weight,omitempty"`
	Material        *string        `json:"material" bson:"material,omitempty"`
	ColorOptions    []string       `json:"color_options" bson:"color_options"`
	AdditionalSpecs map[string]any `json:"additional_specs" bson:"additional_specs"`
}

// Product representa un producto en el catálogo
type Product struct {
	ID                string         `json:"id" bson:"_id"`
	Name              string         `json:"name" bson:"name"`
	Description       string         `json:"description" bson:"description"`
	LongDescription   string         `json:"long_description" bson:"long_description"`
	Category          Category       `json:"category" bson:"category"`
	Subcategory       string         `json:"subcategory,omitempty" bson:"subcategory,omitempty"`
	Price             float64        `json:"price" bson:"price"`
	DiscountPrice     *float64       `json:"discount_price" bson:"discount_price"`
	Currency          string         `json:"currency" bson:"currency"`
	Images            []string       `json:"images" bson:"images"`
	Assets3D          Assets3D       `json:"assets_3d" bson:"assets_3d"`
	Specifications    Specifications `json:"specifications" bson:"specifications"`
	Features          []string       `json:"features" bson:"features"`
	Tags              []string       `json:"tags" bson:"tags"`
	SkillLevels       []string       `json:"skill_levels" bson:"skill_levels"`
	Prerequisites     []string       `json:"prerequisites" bson:"prerequisites"`
	Benefits          []string       `json:"benefits" bson:"benefits"`
	BundleSuggestions []string       `json:"bundle_suggestions" bson:"bundle_suggestions"`
	StockQuantity     int            `json:"stock_quantity" bson:"stock_quantity"`
	Status            Status         `json:"status" bson:"status"`
	Rating            float64        `json:"rating" bson:"rating"`
	ReviewCount       int            `json:"review_count" bson:"review_count"`
	CreatedAt         time.Time      `json:"created_at" bson:"created_at"`
	UpdatedAt         time.Time      `json:"updated_at" bson:"updated_at"`
}

// Normalize reemplaza colecciones nulas por vacías para que el JSON nunca tenga null
func (p *Product) Normalize() {
	p.Images = nonNil(p.Images)
	p.Features = nonNil(p.Features)
	p.Tags = nonNil(p.Tags)
	p.SkillLevels = nonNil(p.SkillLevels)
	p.Prerequisites = nonNil(p.Prerequisites)
	p.Benefits = nonNil(p.Benefits)
	p.BundleSuggestions = nonNil(p.BundleSuggestions)
	p.Assets3D.TextureURLs = nonNil(p.Assets3D.TextureURLs)
	p.Specifications.ColorOptions = nonNil(p.Specifications.ColorOptions)
	if p.Specifications.AdditionalSpecs == nil {
		p.Specifications.AdditionalSpecs = map[string]any{}
	}
}

// ProductCreate es el payload de alta; el identificador lo asigna el servicio
type ProductCreate struct {
	Name              string          `json:"name" binding:"required"`
	Description       string          `json:"description"`
	LongDescription   string          `json:"long_description"`
	Category          Category        `json:"category" binding:"required,enum"`
	Subcategory       string          `json:"subcategory"`
	Price             float64         `json:"price" binding:"gt=0"`
	DiscountPrice     *float64        `json:"discount_price" binding:"omitempty,gt=0"`
	Currency          string          `json:"currency"`
	Images            []string        `json:"images" binding:"required,min=1,dive,required"`
	Assets3D          *Assets3D       `json:"assets_3d" binding:"required"`
	Specifications    *Specifications `json:"specifications" binding:"required"`
	Features          []string        `json:"features"`
	Tags              []string        `json:"tags"`
	SkillLevels       []string        `json:"skill_levels"`
	Prerequisites     []string        `json:"prerequisites"`
	Benefits          []string        `json:"benefits"`
	BundleSuggestions []string        `json:"bundle_suggestions"`
	StockQuantity     int             `json:"stock_quantity" binding:"gte=0"`
	Status            Status          `json:"status" binding:"omitempty,enum"`
	Rating            float64         `json:"rating" binding:"gte=0,lte=5"`
	ReviewCount       int             `json:"review_count" binding:"gte=0"`
}

// ToProduct construye el documento a persistir aplicando los valores por defecto
func (in ProductCreate) ToProduct(id string, now time.Time) Product {
	p := Product{
		ID:                id,
		Name:              in.Name,
		Description:       in.Description,
		LongDescription:   in.LongDescription,
		Category:          in.Category,
		Subcategory:       in.Subcategory,
		Price:             in.Price,
		DiscountPrice:     in.DiscountPrice,
		Currency:          in.Currency,
		Images:            in.Images,
		Features:          in.Features,
		Tags:              in.Tags,
		SkillLevels:       in.SkillLevels,
		Prerequisites:     in.Prerequisites,
		Benefits:          in.Benefits,
		BundleSuggestions: in.BundleSuggestions,
		StockQuantity:     in.StockQuantity,
		Status:            in.Status,
		Rating:            in.Rating,
		ReviewCount:       in.ReviewCount,
		CreatedAt:         now,
		UpdatedAt:         now,
	}
	if in.Assets3D != nil {
		p.Assets3D = *in.Assets3D
	}
	if in.Specifications != nil {
		p.Specifications = *in.Specifications
	}
	if p.Currency == "" {
		p.Currency = DefaultCurrency
	}
	if p.Status == "" {
		p.Status = StatusActive
	}
	p.Normalize()
	return p
}

// ProductUpdate representa los campos actualizables de un producto.
// Un campo nil no se modifica.
type ProductUpdate struct {
	Name              *string         `json:"name" binding:"omitempty,min=1"`
	Description       *string         `json:"description"`
	LongDescription   *string         `json:"long_description"`
	Category          *Category       `json:"category" binding:"omitempty,enum"`
	Subcategory       *string         `json:"subcategory"`
	Price             *float64        `json:"price" binding:"omitempty,gt=0"`
	DiscountPrice     *float64        `json:"discount_price" binding:"omitempty,gt=0"`
	Currency          *string         `json:"currency" binding:"omitempty,min=1"`
	Images            []string        `json:"images" binding:"omitempty,min=1,dive,required"`
	Assets3D          *Assets3D       `json:"assets_3d"`
	Specifications    *Specifications `json:"specifications"`
	Features          []string        `json:"features"`
	Tags              []string        `json:"tags"`
	SkillLevels       []string        `json:"skill_levels"`
	Prerequisites     []string        `json:"prerequisites"`
	Benefits          []string        `json:"benefits"`
	BundleSuggestions []string        `json:"bundle_suggestions"`
	StockQuantity     *int            `json:"stock_quantity" binding:"omitempty,gte=0"`
	Status            *Status         `json:"status" binding:"omitempty,enum"`
}

// Fields devuelve solo los campos presentes, con su nombre en el documento
func (u ProductUpdate) Fields() map[string]any {
	fields := map[string]any{}
	setIf(fields, "name", u.Name)
	setIf(fields, "description", u.Description)
	setIf(fields, "long_description", u.LongDescription)
	setIf(fields, "category", u.Category)
	setIf(fields, "subcategory", u.Subcategory)
	setIf(fields, "price", u.Price)
	setIf(fields, "discount_price", u.DiscountPrice)
	setIf(fields, "currency", u.Currency)
	if u.Assets3D != nil {
		a := *u.Assets3D
		a.TextureURLs = nonNil(a.TextureURLs)
		fields["assets_3d"] = a
	}
	if u.Specifications != nil {
		s := *u.Specifications
		s.ColorOptions = nonNil(s.ColorOptions)
		if s.AdditionalSpecs == nil {
			s.AdditionalSpecs = map[string]any{}
		}
		fields["specifications"] = s
	}
	setSlice(fields, "images", u.Images)
	setSlice(fields, "features", u.Features)
	setSlice(fields, "tags", u.Tags)
	setSlice(fields, "skill_levels", u.SkillLevels)
	setSlice(fields, "prerequisites", u.Prerequisites)
	setSlice(fields, "benefits", u.Benefits)
	setSlice(fields, "bundle_suggestions", u.BundleSuggestions)
	setIf(fields, "stock_quantity", u.StockQuantity)
	setIf(fields, "status", u.Status)
	return fields
}

func setIf[T any](fields map[string]any, key string, v *T) {
	if v != nil {
		fields[key] = *v
	}
}

func setSlice(fields map[string]any, key string, v []string) {
	if v != nil {
		fields[key] = v
	}
}

func nonNil(s []string) []string {
	if s == nil {
		return []string{}
	}
	return s
}
