package entity

import (
	"time"

	"github.com/google/uuid"
	"github.com/storekeep/backoffice-api/internal/domain/enum"
	"gorm.io/gorm"
)

// User represents a back-office user
type User struct {
	ID            uuid.UUID      `gorm:"type:uuid;primary_key" json:"id"`
	Name          string         `gorm:"size:255;not null" json:"name"`
	Email         string         `gorm:"size:255;unique;not null" json:"email"`
	Password      string         `gorm:"size:255" json:"-"`
	Role          enum.Role      `gorm:"size:50;not null;default:'staff'" json:"role"`
	Status        enum.Status    `gorm:"size:50;not null;default:'active'" json:"status"`
	PointOfSaleID *uuid.UUID     `gorm:"type:uuid;index" json:"point_of_sale_id,omitempty"`
	CreatedAt     time.Time      `json:"created_at"`
	UpdatedAt     time.Time      `json:"updated_at"`
	DeletedAt     gorm.DeletedAt `gorm:"index" json:"-"`

	// Relationships
	PointOfSale *PointOfSale `gorm:"foreignKey:PointOfSaleID" json:"point_of_sale,omitempty"`
	Orders      []Order      `gorm:"foreignKey:UserID" json:"-"`
}

// BeforeCreate generates a UUID before creating a new user
func (u *User) BeforeCreate(tx *gorm.DB) error {
	if u.ID == uuid.Nil {
		u.ID = uuid.New()
	}
	return nil
}

// TableName returns the table name for the User model
func (User) TableName() string {
	return "users"
}

// IsAdmin reports whether the user holds the admin role
func (u *User) IsAdmin() bool {
	return u.Role == enum.RoleAdmin
}
