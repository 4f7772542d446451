package service

import (
	"strings"
	"time"
	"unicode"

	"fitness-catalog/internal/models"
)

const assetsBase = "https://assets.calisthenics.shop"

type sampleProduct struct {
	name          string
	description   string
	category      models.Category
	subcategory   string
	price         float64
	discount      float64
	stock         int
	status        models.Status
	rating        float64
	reviews       int
	material      string
	weight        string
	dimensions    string
	colors        []string
	extra         map[string]any
	features      []string
	tags          []string
	skillLevels   []string
	prerequisites []string
	benefits      []string
	bundle        []int
}

var sampleProducts = []sampleProduct{
	{
		name:        "Premium Resistance Bands Set",
		description: "Five latex bands from 5 to 75 kg for assisted pull-ups and mobility work",
		category:    models.CategoryEquipment, subcategory: "resistance-systems",
		price: 49.99, discount: 39.99, stock: 120, rating: 4.8, reviews: 342,
		material: "Natural latex", weight: "1.2 kg", dimensions: "208 cm loop",
		colors:      []string{"multicolor"},
		extra:       map[string]any{"resistance_levels": "5-75 kg", "bands": 5},
		features:    []string{"Five progressive resistance levels", "Snap-resistant layered latex", "Carry bag included"},
		tags:        []string{"resistance", "pull-up", "mobility"},
		skillLevels: []string{"beginner", "intermediate", "advanced"},
		benefits:    []string{"Assisted pull-up progressions", "Joint-friendly loading"},
		bundle:      []int{2, 5},
	},
	{
		name:        "Premium Parallettes Set",
		description: "Low-profile steel parallettes for L-sits, planche and handstand work",
		category:    models.CategoryEquipment, subcategory: "parallettes",
		price: 89.99, stock: 45, rating: 4.7, reviews: 198,
		material: "Powder-coated steel, oak grips", weight: "4.5 kg", dimensions: "60 x 30 x 25 cm",
		colors:        []string{"black", "natural oak"},
		extra:         map[string]any{"max_load_kg": 150},
		features:      []string{"Non-slip rubber feet", "Wooden grips", "Tool-free setup"},
		tags:          []string{"parallettes", "planche", "handstand"},
		skillLevels:   []string{"intermediate", "advanced"},
		prerequisites: []string{"10 strict push-ups"},
		benefits:      []string{"Wrist-neutral pressing", "Deeper range of motion"},
		bundle:        []int{5, 7},
	},
	{
		name:        "Professional Workout Rings",
		description: "Competition-diameter wooden rings with numbered straps",
		category:    models.CategoryEquipment, subcategory: "suspension-training",
		price: 59.99, discount: 54.99, stock: 80, rating: 4.9, reviews: 512,
		material: "Birch wood, nylon straps", weight: "1.8 kg", dimensions: "28 mm grip diameter",
		colors:        []string{"natural"},
		extra:         map[string]any{"strap_length_m": 4.5},
		features:      []string{"Numbered straps for quick height setup", "Quick-release cam buckles"},
		tags:          []string{"rings", "muscle-up", "gymnastics"},
		skillLevels:   []string{"beginner", "intermediate", "advanced"},
		prerequisites: []string{"Secure overhead anchor point"},
		benefits:      []string{"Stabilizer strength", "Scalable from rows to muscle-ups"},
		bundle:        []int{0, 5},
	},
	{
		name:        "Elite Weight Vest (10kg)",
		description: "Adjustable plate-carrier vest for weighted pull-ups and dips",
		category:    models.CategoryEquipment, subcategory: "weighted-training",
		price: 129.99, stock: 30, rating: 4.6, reviews: 87,
		material: "Cordura nylon, steel plates", weight: "10 kg", dimensions: "One size, adjustable",
		colors:        []string{"black", "olive"},
		extra:         map[string]any{"removable_plates": true},
		features:      []string{"Removable 1 kg plates", "Breathable mesh lining"},
		tags:          []string{"weighted", "vest", "strength"},
		skillLevels:   []string{"intermediate", "advanced"},
		prerequisites: []string{"10 strict pull-ups", "15 dips"},
		benefits:      []string{"Progressive overload for bodyweight moves"},
		bundle:        []int{4, 8},
	},
	{
		name:        "Elite Weight Vest (20kg)",
		description: "Heavy configuration of the elite vest for advanced strength blocks",
		category:    models.CategoryEquipment, subcategory: "weighted-training",
		price: 169.99, stock: 12, rating: 4.7, reviews: 54,
		material: "Cordura nylon, steel plates", weight: "20 kg", dimensions: "One size, adjustable",
		colors:        []string{"black"},
		extra:         map[string]any{"removable_plates": true},
		features:      []string{"Removable 1 kg plates", "Reinforced shoulder padding"},
		tags:          []string{"weighted", "vest", "strength"},
		skillLevels:   []string{"advanced"},
		prerequisites: []string{"15 strict pull-ups", "Weighted vest experience"},
		benefits:      []string{"Heavy progressive overload"},
		bundle:        []int{3, 8},
	},
	{
		name:        "Premium Liquid Chalk",
		description: "Fast-drying liquid chalk for secure grip on bars and rings",
		category:    models.CategoryAccessories, subcategory: "grip-enhancement",
		price: 14.99, stock: 300, rating: 4.5, reviews: 760,
		weight:      "250 ml",
		colors:      []string{"white"},
		extra:       map[string]any{"alcohol_based": true},
		features:    []string{"Dries in 30 seconds", "No chalk dust"},
		tags:        []string{"chalk", "grip"},
		skillLevels: []string{"beginner", "intermediate", "advanced"},
		benefits:    []string{"Longer sets on bars and rings"},
		bundle:      []int{2, 6},
	},
	{
		name:        "Grip Training Gloves",
		description: "Thin palm-guard gloves that protect skin without losing bar feel",
		category:    models.CategoryAccessories, subcategory: "grip-enhancement",
		price: 24.99, stock: 150, rating: 4.2, reviews: 133,
		material: "Microfiber leather",
		colors:   []string{"black", "grey"},
		extra:    map[string]any{"sizes": []string{"S", "M", "L", "XL"}},
		features: []string{"Open-finger design", "Velcro wrist closure"},
		tags:     []string{"gloves", "grip"},
		benefits: []string{"Callus protection"},
		bundle:   []int{5},
	},
	{
		name:        "Wrist Support Wraps",
		description: "Elastic wraps that stabilize the wrist during handstands and presses",
		category:    models.CategoryAccessories, subcategory: "support-systems",
		price: 19.99, stock: 200, rating: 4.4, reviews: 281,
		material: "Cotton-elastane blend", dimensions: "45 cm",
		colors:   []string{"black", "red"},
		features: []string{"Thumb loop", "Adjustable tension"},
		tags:     []string{"wrist", "support", "handstand"},
		benefits: []string{"Wrist stability under load"},
		bundle:   []int{1},
	},
	{
		name:        "Knee Sleeves Pro",
		description: "7 mm neoprene sleeves for pistol squats and deep knee flexion",
		category:    models.CategoryAccessories, subcategory: "support-systems",
		price: 39.99, discount: 34.99, stock: 90, rating: 4.3, reviews: 164,
		material: "7 mm neoprene",
		colors:   []string{"black"},
		extra:    map[string]any{"thickness_mm": 7},
		features: []string{"Compression fit", "Reinforced stitching"},
		tags:     []string{"knee", "support", "legs"},
		benefits: []string{"Warm joints during leg sessions"},
		bundle:   []int{3},
	},
	{
		name:        "Performance Training T-Shirt",
		description: "Lightweight moisture-wicking tee cut for overhead movement",
		category:    models.CategoryApparel, subcategory: "performance-wear",
		price: 34.99, stock: 240, rating: 4.4, reviews: 98,
		material: "Recycled polyester",
		colors:   []string{"black", "white", "navy"},
		extra:    map[string]any{"fit": "athletic"},
		features: []string{"Four-way stretch", "Flatlock seams"},
		tags:     []string{"shirt", "training"},
		bundle:   []int{12, 10},
	},
	{
		name:        "Competition Tank Top",
		description: "Sleeveless top for full shoulder range in competition",
		category:    models.CategoryApparel, subcategory: "competition-wear",
		price: 29.99, stock: 110, rating: 4.1, reviews: 45,
		material: "Polyester mesh",
		colors:   []string{"black", "red"},
		features: []string{"Dropped armholes", "Quick-dry mesh"},
		tags:     []string{"tank", "competition"},
		bundle:   []int{12},
	},
	{
		name:        "Premium Training Hoodie",
		description: "Heavyweight hoodie for warm-ups and everyday wear",
		category:    models.CategoryApparel, subcategory: "lifestyle-wear",
		price: 69.99, discount: 59.99, stock: 75, rating: 4.6, reviews: 120,
		material: "Organic cotton fleece",
		colors:   []string{"black", "sand", "forest"},
		extra:    map[string]any{"weight_gsm": 420},
		features: []string{"Kangaroo pocket", "Brushed interior"},
		tags:     []string{"hoodie", "lifestyle"},
		bundle:   []int{9},
	},
	{
		name:        "Training Shorts",
		description: "Split-hem shorts that do not restrict leg raises",
		category:    models.CategoryApparel, subcategory: "performance-wear",
		price: 39.99, stock: 160, rating: 3.9, reviews: 61,
		material: "Nylon-spandex",
		colors:   []string{"black", "grey"},
		features: []string{"Zip pocket", "Built-in liner"},
		tags:     []string{"shorts", "training"},
		bundle:   []int{9},
	},
	{
		name:        "Plant Protein Blend",
		description: "Pea and rice protein for recovery after bodyweight sessions",
		category:    models.CategorySupplements, subcategory: "recovery",
		price: 44.99, stock: 60, rating: 4.3, reviews: 210,
		weight:   "1 kg",
		extra:    map[string]any{"servings": 33, "protein_per_serving_g": 24},
		features: []string{"24 g protein per serving", "No added sugar"},
		tags:     []string{"protein", "vegan", "recovery"},
		benefits: []string{"Muscle recovery"},
		bundle:   []int{14},
	},
	{
		name:        "Electrolyte Hydration Mix",
		description: "Sugar-free electrolyte powder for long training sessions",
		category:    models.CategorySupplements, subcategory: "hydration",
		price: 24.99, stock: 0, status: models.StatusOutOfStock, rating: 3.8, reviews: 39,
		weight:   "300 g",
		extra:    map[string]any{"servings": 30},
		features: []string{"Sodium, potassium and magnesium", "Citrus flavor"},
		tags:     []string{"hydration", "electrolytes"},
		benefits: []string{"Hydration during long sessions"},
		bundle:   []int{13},
	},
	{
		name:        "Doorway Pull-Up Bar",
		description: "No-drill pull-up bar for home training",
		category:    models.CategoryEquipment, subcategory: "bar-training",
		price: 44.99, stock: 0, status: models.StatusInactive, rating: 4.0, reviews: 18,
		material: "Steel", weight: "2.1 kg", dimensions: "Fits 66-91 cm doorways",
		colors:      []string{"black"},
		features:    []string{"Leverage mount", "Foam grips"},
		tags:        []string{"pull-up", "home"},
		skillLevels: []string{"beginner"},
		benefits:    []string{"Pull-up practice at home"},
		bundle:      []int{0},
	},
}

// SampleCatalog construye el catálogo de ejemplo con identificadores nuevos.
// Las sugerencias de bundle apuntan a otros productos del mismo lote.
func SampleCatalog(newID func() string, now time.Time) []models.Product {
	ids := make([]string, len(sampleProducts))
	for i := range ids {
		ids[i] = newID()
	}

	products := make([]models.Product, len(sampleProducts))
	for i, sp := range sampleProducts {
		slug := slugify(sp.name)
		p := models.Product{
			ID:              ids[i],
			Name:            sp.name,
			Description:     sp.description,
			LongDescription: sp.description + ". Designed for calisthenics athletes who train with their own bodyweight.",
			Category:        sp.category,
			Subcategory:     sp.subcategory,
			Price:           sp.price,
			Currency:        models.DefaultCurrency,
			Images: []string{
				assetsBase + "/img/" + slug + "-1.jpg",
				assetsBase + "/img/" + slug + "-2.jpg",
			},
			Assets3D: models.Assets3D{
				ModelURL:     assetsBase + "/3d/" + slug + ".glb",
				TextureURLs:  []string{assetsBase + "/3d/" + slug + "-diffuse.jpg"},
				PreviewImage: assetsBase + "/3d/" + slug + "-preview.jpg",
			},
			Specifications: models.Specifications{
				Dimensions:      optional(sp.dimensions),
				Weight:          optional(sp.weight),
				Material:        optional(sp.material),
				ColorOptions:    sp.colors,
				AdditionalSpecs: sp.extra,
			},
			Features:      sp.features,
			Tags:          sp.tags,
			SkillLevels:   sp.skillLevels,
			Prerequisites: sp.prerequisites,
			Benefits:      sp.benefits,
			StockQuantity: sp.stock,
			Status:        sp.status,
			Rating:        sp.rating,
			ReviewCount:   sp.reviews,
			CreatedAt:     now,
			UpdatedAt:     now,
		}
		if sp.discount > 0 {
			d := sp.discount
			p.DiscountPrice = &d
		}
		if p.Status == "" {
			p.Status = models.StatusActive
		}
		for _, j := range sp.bundle {
			p.BundleSuggestions = append(p.BundleSuggestions, ids[j])
		}
		p.Normalize()
		products[i] = p
	}

	return products
}

func optional(s string) *string {
	if s == "" {
		return nil
	}
	return &s
}

// slugify convierte un nombre en un segmento de URL: "Elite Weight Vest (10kg)" → "elite-weight-vest-10kg"
func slugify(name string) string {
	var b strings.Builder
	dash := false
	for _, r := range strings.ToLower(name) {
		if unicode.IsLetter(r) || unicode.IsDigit(r) {
			b.WriteRune(r)
			dash = false
			continue
		}
		if b.Len() > 0 && !dash {
			b.WriteByte('-')
			dash = true
		}
	}
	return strings.TrimSuffix(b.String(), "-")
}
