package entity

import (
	"encoding/json"
	"time"

	"github.com/google/uuid"
	"github.com/storekeep/backoffice-api/internal/domain/enum"
	"gorm.io/gorm"
)

// Order represents a sales order. Totals are a snapshot computed from the line
// items and discount at creation time; they are never recomputed afterwards.
type Order struct {
	ID             uuid.UUID         `gorm:"type:uuid;primary_key" json:"id"`
	OrderNo        string            `gorm:"size:100;unique;not null" json:"order_no"`
	UserID         uuid.UUID         `gorm:"type:uuid;not null;index" json:"user_id"`
	CustomerID     *uuid.UUID        `gorm:"type:uuid;index" json:"customer_id,omitempty"`
	PointOfSaleID  uuid.UUID         `gorm:"type:uuid;not null;index" json:"point_of_sale_id"`
	OrderDate      time.Time         `gorm:"type:date;not null" json:"order_date"`
	DiscountType   enum.DiscountType `gorm:"size:50;default:'fixed'" json:"discount_type"`
	DiscountValue  int64             `gorm:"default:0" json:"-"` // Stored in cents (fixed) or basis value x100 (percentage)
	SubTotal       int64             `gorm:"default:0" json:"-"` // Stored in cents, excluded from JSON
	DiscountAmount int64             `gorm:"default:0" json:"-"` // Stored in cents, excluded from JSON
	Tax            int64             `gorm:"default:0" json:"-"` // Stored in cents, excluded from JSON
	Total          int64             `gorm:"default:0" json:"-"` // Stored in cents, excluded from JSON
	DeliveryNotes  *string           `gorm:"type:text" json:"delivery_notes,omitempty"`
	CreatedAt      time.Time         `json:"created_at"`
	UpdatedAt      time.Time         `json:"updated_at"`
	DeletedAt      gorm.DeletedAt    `gorm:"index" json:"-"`

	// Relationships
	User        User        `gorm:"foreignKey:UserID" json:"-"`
	Customer    *Customer   `gorm:"foreignKey:CustomerID" json:"customer,omitempty"`
	PointOfSale PointOfSale `gorm:"foreignKey:PointOfSaleID" json:"-"`
	Items       []OrderItem `gorm:"foreignKey:OrderID" json:"items,omitempty"`
}

// MarshalJSON custom marshaler to convert cents to decimal for API responses
func (o Order) MarshalJSON() ([]byte, error) {
	type Alias Order
	return json.Marshal(&struct {
		Alias
		DiscountValue  float64 `json:"discount_value"`
		SubTotal       float64 `json:"sub_total"`
		DiscountAmount float64 `json:"discount_amount"`
		Tax            float64 `json:"tax"`
		Total          float64 `json:"total"`
	}{
		Alias:          Alias(o),
		DiscountValue:  float64(o.DiscountValue) / 100,
		SubTotal:       float64(o.SubTotal) / 100,
		DiscountAmount: float64(o.DiscountAmount) / 100,
		Tax:            float64(o.Tax) / 100,
		Total:          float64(o.Total) / 100,
	})
}

// BeforeCreate generates a UUID before creating a new order
func (o *Order) BeforeCreate(tx *gorm.DB) error {
	if o.ID == uuid.Nil {
		o.ID = uuid.New()
	}
	return nil
}

// TableName returns the table name for the Order model
func (Order) TableName() string {
	return "orders"
}

// OrderItem represents a line item in an order
type OrderItem struct {
	ID          uuid.UUID      `gorm:"type:uuid;primary_key" json:"id"`
	OrderID     uuid.UUID      `gorm:"type:uuid;not null;index" json:"order_id"`
	ProductID   uuid.UUID      `gorm:"type:uuid;not null;index" json:"product_id"`
	VariationID *uuid.UUID     `gorm:"type:uuid;index" json:"variation_id,omitempty"`
	Quantity    int            `gorm:"not null" json:"quantity"`
	UnitPrice   int64          `gorm:"not null" json:"-"` // Stored in cents, excluded from JSON
	Total       int64          `gorm:"not null" json:"-"` // Stored in cents, excluded from JSON
	CreatedAt   time.Time      `json:"created_at"`
	UpdatedAt   time.Time      `json:"updated_at"`
	DeletedAt   gorm.DeletedAt `gorm:"index" json:"-"`

	// Relationships
	Order     Order             `gorm:"foreignKey:OrderID" json:"-"`
	Product   Product           `gorm:"foreignKey:ProductID" json:"product,omitempty"`
	Variation *ProductVariation `gorm:"foreignKey:VariationID" json:"variation,omitempty"`
}

// MarshalJSON custom marshaler to convert cents to decimal for API responses
func (oi OrderItem) MarshalJSON() ([]byte, error) {
	type Alias OrderItem
	return json.Marshal(&struct {
		Alias
		UnitPrice float64 `json:"unit_price"`
		Total     float64 `json:"total"`
	}{
		Alias:     Alias(oi),
		UnitPrice: float64(oi.UnitPrice) / 100,
		Total:     float64(oi.Total) / 100,
	})
}

// BeforeCreate generates a UUID before creating a new order item
func (oi *OrderItem) BeforeCreate(tx *gorm.DB) error {
	if oi.ID == uuid.Nil {
		oi.ID = uuid.New()
	}
	return nil
}

// TableName returns the table name for the OrderItem model
func (OrderItem) TableName() string {
	return "order_items"
}
