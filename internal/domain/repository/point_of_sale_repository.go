package repository

import (
	"context"

	"github.com/google/uuid"
	"github.com/storekeep/backoffice-api/internal/domain/entity"
)

// PointOfSaleRepository defines the interface for point-of-sale data access
type PointOfSaleRepository interface {
	Create(ctx context.Context, pos *entity.PointOfSale) error
	GetByID(ctx context.Context, id uuid.UUID) (*entity.PointOfSale, error)
	Update(ctx context.Context, pos *entity.PointOfSale) error
	Delete(ctx context.Context, id uuid.UUID) error
	List(ctx context.Context) ([]entity.PointOfSale, error)
	Count(ctx context.Context) (int64, error)
}
