package domain

import "time"

// Unit is the unit a product's price is quoted against.
type Unit string

const (
	UnitKilogram Unit = "kg"
	UnitGram     Unit = "gm"
	UnitLiter    Unit = "liter"
	UnitPack     Unit = "pack"
	UnitPiece    Unit = "pc"
)

// Valid reports whether u is one of the known units.
func (u Unit) Valid() bool {
	switch u {
	case UnitKilogram, UnitGram, UnitLiter, UnitPack, UnitPiece:
		return true
	}
	return false
}

type Category string

const (
	CategoryVegetables Category = "Vegetables"
	CategoryFruits     Category = "Fruits"
	CategoryDairy      Category = "Dairy"
	CategoryGrains     Category = "Grains"
	CategorySpices     Category = "Spices"
	CategoryBeverages  Category = "Beverages"
)

func (c Category) Valid() bool {
	switch c {
	case CategoryVegetables, CategoryFruits, CategoryDairy, CategoryGrains, CategorySpices, CategoryBeverages:
		return true
	}
	return false
}

// Product is a catalog entry. Price is quoted per base Unit.
type Product struct {
	ID          string    `json:"id"`
	Name        string    `json:"name"`
	Description string    `json:"description,omitempty"`
	Price       float64   `json:"price"`
	Unit        Unit      `json:"unit"`
	Category    Category  `json:"category"`
	ImageURL    string    `json:"imageUrl,omitempty"`
	CreatedAt   time.Time `json:"createdAt"`
}
