package entity

import (
	"time"

	"github.com/google/uuid"
	"github.com/storekeep/backoffice-api/internal/domain/enum"
	"gorm.io/gorm"
)

// PointOfSale represents a store location that scopes users, products and orders
type PointOfSale struct {
	ID        uuid.UUID      `gorm:"type:uuid;primary_key" json:"id"`
	Name      string         `gorm:"size:255;not null" json:"name"`
	Address   *string        `gorm:"type:text" json:"address,omitempty"`
	Phone     *string        `gorm:"size:50" json:"phone,omitempty"`
	Logo      *string        `gorm:"size:255" json:"logo,omitempty"`
	Status    enum.Status    `gorm:"size:50;not null;default:'active'" json:"status"`
	ManagerID *uuid.UUID     `gorm:"type:uuid;index" json:"manager_id,omitempty"`
	CreatedAt time.Time      `json:"created_at"`
	UpdatedAt time.Time      `json:"updated_at"`
	DeletedAt gorm.DeletedAt `gorm:"index" json:"-"`

	// Relationships
	Manager *User `gorm:"foreignKey:ManagerID" json:"manager,omitempty"`
}

// BeforeCreate generates a UUID before creating a new point of sale
func (p *PointOfSale) BeforeCreate(tx *gorm.DB) error {
	if p.ID == uuid.Nil {
		p.ID = uuid.New()
	}
	return nil
}

// TableName returns the table name for the PointOfSale model
func (PointOfSale) TableName() string {
	return "points_of_sale"
}
