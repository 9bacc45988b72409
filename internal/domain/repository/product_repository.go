package repository

import (
	"context"

	"github.com/google/uuid"
	"github.com/storekeep/backoffice-api/internal/domain/entity"
	"github.com/storekeep/backoffice-api/pkg/pagination"
)

// ProductFilterParams holds filters for listing products
type ProductFilterParams struct {
	Pagination    pagination.PaginationParams
	Search        string
	PointOfSaleID *uuid.UUID
}

// ProductRepository defines the interface for product data access
type ProductRepository interface {
	Create(ctx context.Context, product *entity.Product) error
	GetByID(ctx context.Context, id uuid.UUID) (*entity.Product, error)
	GetByIDs(ctx context.Context, ids []uuid.UUID) ([]entity.Product, error)
	Update(ctx context.Context, product *entity.Product) error
	Delete(ctx context.Context, id uuid.UUID) error
	List(ctx context.Context, params *ProductFilterParams) ([]entity.Product, int64, error)
	ReplaceVariations(ctx context.Context, productID uuid.UUID, variations []entity.ProductVariation) error
}
