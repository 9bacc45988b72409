package entity

import (
	"encoding/json"
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// Product represents a sellable product belonging to a point of sale
type Product struct {
	ID            uuid.UUID      `gorm:"type:uuid;primary_key" json:"id"`
	Name          string         `gorm:"size:255;not null" json:"name"`
	SKU           string         `gorm:"size:100;unique;not null" json:"sku"`
	Price         int64          `gorm:"not null;default:0" json:"-"` // Stored in cents, excluded from JSON
	Quantity      int            `gorm:"not null;default:0" json:"quantity"`
	Image         *string        `gorm:"size:255" json:"image,omitempty"`
	PointOfSaleID uuid.UUID      `gorm:"type:uuid;not null;index" json:"point_of_sale_id"`
	CreatedAt     time.Time      `json:"created_at"`
	UpdatedAt     time.Time      `json:"updated_at"`
	DeletedAt     gorm.DeletedAt `gorm:"index" json:"-"`

	// Relationships
	PointOfSale PointOfSale        `gorm:"foreignKey:PointOfSaleID" json:"-"`
	Variations  []ProductVariation `gorm:"foreignKey:ProductID" json:"variations,omitempty"`
}

// MarshalJSON custom marshaler to convert cents to decimal for API responses
func (p Product) MarshalJSON() ([]byte, error) {
	type Alias Product
	return json.Marshal(&struct {
		Alias
		Price float64 `json:"price"`
	}{
		Alias: Alias(p),
		Price: float64(p.Price) / 100,
	})
}

// BeforeCreate generates a UUID before creating a new product
func (p *Product) BeforeCreate(tx *gorm.DB) error {
	if p.ID == uuid.Nil {
		p.ID = uuid.New()
	}
	return nil
}

// TableName returns the table name for the Product model
func (Product) TableName() string {
	return "products"
}

// ProductVariation represents a concrete variant of a product (color, roast, size)
type ProductVariation struct {
	ID        uuid.UUID      `gorm:"type:uuid;primary_key" json:"id"`
	ProductID uuid.UUID      `gorm:"type:uuid;not null;index" json:"product_id"`
	Name      string         `gorm:"size:255;not null" json:"name"`
	SKU       string         `gorm:"size:100;unique;not null" json:"sku"`
	Quantity  int            `gorm:"not null;default:0" json:"quantity"`
	CreatedAt time.Time      `json:"created_at"`
	UpdatedAt time.Time      `json:"updated_at"`
	DeletedAt gorm.DeletedAt `gorm:"index" json:"-"`

	// Relationships
	Product Product `gorm:"foreignKey:ProductID" json:"-"`
}

// BeforeCreate generates a UUID before creating a new product variation
func (v *ProductVariation) BeforeCreate(tx *gorm.DB) error {
	if v.ID == uuid.Nil {
		v.ID = uuid.New()
	}
	return nil
}

// TableName returns the table name for the ProductVariation model
func (ProductVariation) TableName() string {
	return "product_variations"
}
