package models

import "fmt"

// Category es la categoría principal de un producto del catálogo
type Category string

const (
	CategoryEquipment   Category = "equipment"
	CategorySupplements Category = "supplements"
	CategoryAccessories Category = "accessories"
	CategoryApparel     Category = "apparel"
)

// Categories devuelve todas las categorías válidas en orden estable
func Categories() []Category {
	return []Category{CategoryEquipment, CategorySupplements, CategoryAccessories, CategoryApparel}
}

func (c Category) Valid() bool {
	switch c {
	case CategoryEquipment, CategorySupplements, CategoryAccessories, CategoryApparel:
		return true
	}
	return false
}

func (c Category) String() string {
	return string(c)
}

// ParseCategory convierte la forma de texto a Category
func ParseCategory(s string) (Category, error) {
	c := Category(s)
	if !c.Valid() {
		return "", &EnumError{Field: "category", Value: s, Allowed: enumValues(Categories())}
	}
	return c, nil
}

// UnmarshalText rechaza valores fuera de la enumeración al decodificar JSON
func (c *Category) UnmarshalText(text []byte) error {
	parsed, err := ParseCategory(string(text))
	if err != nil {
		return err
	}
	*c = parsed
	return nil
}

// Status es el estado de publicación de un producto
type Status string

const (
	StatusActive     Status = "active"
	StatusInactive   Status = "inactive"
	StatusOutOfStock Status = "out_of_stock"
)

func Statuses() []Status {
	return []Status{StatusActive, StatusInactive, StatusOutOfStock}
}

func (s Status) Valid() bool {
	switch s {
	case StatusActive, StatusInactive, StatusOutOfStock:
		return true
	}
	return false
}

func (s Status) String() string {
	return string(s)
}

func ParseStatus(s string) (Status, error) {
	st := Status(s)
	if !st.Valid() {
		return "", &EnumError{Field: "status", Value: s, Allowed: enumValues(Statuses())}
	}
	return st, nil
}

func (s *Status) UnmarshalText(text []byte) error {
	parsed, err := ParseStatus(string(text))
	if err != nil {
		return err
	}
	*s = parsed
	return nil
}

// EnumError indica un valor que no pertenece a una enumeración cerrada
type EnumError struct {
	Field   string
	Value   string
	Allowed []string
}

func (e *EnumError) Error() string {
	return fmt.Sprintf("%s: value %q is not one of %v", e.Field, e.Value, e.Allowed)
}

func enumValues[T ~string](values []T) []string {
	out := make([]string, len(values))
	for i, v := range values {
		out[i] = string(v)
	}
	return out
}
