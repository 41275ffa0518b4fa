package models

import (
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

// ProductCategory enumerates the catalog categories.
type ProductCategory string

const (
	ProductCategoryBooks       ProductCategory = "books"
	ProductCategoryPrayerItems ProductCategory = "prayer-items"
	ProductCategoryClothing    ProductCategory = "clothing"
	ProductCategoryAccessories ProductCategory = "accessories"
)

// Valid reports whether the category is supported.
func (c ProductCategory) Valid() bool {
	switch c {
	case ProductCategoryBooks, ProductCategoryPrayerItems,
		ProductCategoryClothing, ProductCategoryAccessories:
		return true
	default:
		return false
	}
}

// Product represents one catalog item. SKU is unique across the store.
type Product struct {
	ID            primitive.ObjectID `bson:"_id,omitempty" json:"id"`
	Name          string             `bson:"name" json:"name"`
	Description   string             `bson:"description" json:"description"`
	Price         float64            `bson:"price" json:"price"`
	OriginalPrice float64            `bson:"original_price" json:"original_price"`
	Images        []string           `bson:"images" json:"images"`
	Category      ProductCategory    `bson:"category" json:"category"`
	Stock         int                `bson:"stock" json:"stock"`
	SKU           string             `bson:"sku" json:"sku"`
	Featured      bool               `bson:"featured" json:"featured"`
	Active        bool               `bson:"active" json:"active"`
	CreatedAt     time.Time          `bson:"created_at" json:"created_at"`
	UpdatedAt     time.Time          `bson:"updated_at" json:"updated_at"`
}

// ProductFilter narrows catalog listings.
type ProductFilter struct {
	Category string
	Featured *bool
	Active   *bool
	Search   string
	Page     int
	Limit    int
}
