package repository

import (
	"context"

	"github.com/google/uuid"
	"github.com/storekeep/backoffice-api/internal/domain/entity"
	"github.com/storekeep/backoffice-api/pkg/pagination"
)

// UserFilterParams holds filters for listing users
type UserFilterParams struct {
	Pagination    pagination.PaginationParams
	Search        string
	PointOfSaleID *uuid.UUID
}

// UserRepository defines the interface for user data access
type UserRepository interface {
	Create(ctx context.Context, user *entity.User) error
	GetByID(ctx context.Context, id uuid.UUID) (*entity.User, error)
	GetByEmail(ctx context.Context, email string) (*entity.User, error)
	Update(ctx context.Context, user *entity.User) error
	Delete(ctx context.Context, id uuid.UUID) error
	List(ctx context.Context, params *UserFilterParams) ([]entity.User, int64, error)
	UpdatePointOfSale(ctx context.Context, userID uuid.UUID, pointOfSaleID *uuid.UUID) error
}
