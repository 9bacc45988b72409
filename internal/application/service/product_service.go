package service

import (
	"context"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"github.com/storekeep/backoffice-api/internal/domain/access"
	"github.com/storekeep/backoffice-api/internal/domain/entity"
	"github.com/storekeep/backoffice-api/internal/domain/enum"
	"github.com/storekeep/backoffice-api/internal/domain/pricing"
	"github.com/storekeep/backoffice-api/internal/domain/repository"
	"github.com/storekeep/backoffice-api/pkg/apperror"
	"github.com/storekeep/backoffice-api/pkg/pagination"
)

// ProductService handles product management operations
type ProductService struct {
	productRepo repository.ProductRepository
	posRepo     repository.PointOfSaleRepository
}

// NewProductService creates a new product service
func NewProductService(productRepo repository.ProductRepository, posRepo repository.PointOfSaleRepository) *ProductService {
	return &ProductService{productRepo: productRepo, posRepo: posRepo}
}

// ListProducts lists products visible to the actor
func (s *ProductService) ListProducts(ctx context.Context, actor access.Actor, params *pagination.PaginationParams, search string, pointOfSaleID *uuid.UUID) (*pagination.PaginatedResult[entity.Product], error) {
	filter := &repository.ProductFilterParams{
		Pagination: *params,
		Search:     search,
	}
	if actor.Role == enum.RoleAdmin {
		filter.PointOfSaleID = pointOfSaleID
	} else {
		if actor.PointOfSaleID == nil {
			return nil, apperror.ErrForbidden
		}
		filter.PointOfSaleID = actor.PointOfSaleID
	}

	products, total, err := s.productRepo.List(ctx, filter)
	if err != nil {
		return nil, err
	}

	pag := pagination.NewPagination(params.Page, params.PerPage, total)
	return pagination.NewPaginatedResult(products, pag), nil
}

// GetProduct retrieves a product the actor is allowed to read
func (s *ProductService) GetProduct(ctx context.Context, actor access.Actor, id uuid.UUID) (*entity.Product, error) {
	product, err := s.productRepo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if product == nil {
		return nil, apperror.NewNotFoundError("Product")
	}

	decision := access.Decide(access.Request{
		Actor:    actor,
		Action:   access.ActionRead,
		Resource: productResource(product),
	})
	if err := decision.Err(); err != nil {
		return nil, err
	}

	return product, nil
}

// VariationInput represents a product variation payload
type VariationInput struct {
	Name     string
	SKU      string
	Quantity int
}

// ProductInput represents the create/update product input
type ProductInput struct {
	Name          string
	SKU           string
	Price         decimal.Decimal
	Quantity      int
	Image         *string
	PointOfSaleID *uuid.UUID
	Variations    []VariationInput
}

// CreateProduct creates a new product with its variations
func (s *ProductService) CreateProduct(ctx context.Context, actor access.Actor, input *ProductInput) (*entity.Product, error) {
	if input.Price.IsNegative() {
		return nil, apperror.NewInvalidInputError("Price must not be negative")
	}
	if input.Quantity < 0 {
		return nil, apperror.NewInvalidInputError("Quantity must not be negative")
	}

	// Non-admins create products in their own point of sale only
	pointOfSaleID := input.PointOfSaleID
	if actor.Role != enum.RoleAdmin {
		pointOfSaleID = actor.PointOfSaleID
	}
	if pointOfSaleID == nil {
		return nil, apperror.NewBadRequestError("Point of sale is required")
	}

	decision := access.Decide(access.Request{
		Actor:  actor,
		Action: access.ActionCreate,
		Resource: access.Resource{
			Kind:          access.KindProduct,
			PointOfSaleID: pointOfSaleID,
		},
	})
	if err := decision.Err(); err != nil {
		return nil, err
	}

	pos, err := s.posRepo.GetByID(ctx, *pointOfSaleID)
	if err != nil {
		return nil, err
	}
	if pos == nil {
		return nil, apperror.NewNotFoundError("Point of sale")
	}

	product := &entity.Product{
		Name:          input.Name,
		SKU:           input.SKU,
		Price:         pricing.Cents(input.Price.Round(2)),
		Quantity:      input.Quantity,
		Image:         input.Image,
		PointOfSaleID: *pointOfSaleID,
		Variations:    variationsFromInput(input.Variations),
	}

	if err := s.productRepo.Create(ctx, product); err != nil {
		return nil, err
	}

	return product, nil
}

// UpdateProduct updates a product the actor is allowed to modify. When a
// variation list is supplied it replaces the existing set.
func (s *ProductService) UpdateProduct(ctx context.Context, actor access.Actor, id uuid.UUID, input *ProductInput) (*entity.Product, error) {
	product, err := s.productRepo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if product == nil {
		return nil, apperror.NewNotFoundError("Product")
	}

	decision := access.Decide(access.Request{
		Actor:    actor,
		Action:   access.ActionUpdate,
		Resource: productResource(product),
	})
	if err := decision.Err(); err != nil {
		return nil, err
	}

	if input.Price.IsNegative() {
		return nil, apperror.NewInvalidInputError("Price must not be negative")
	}
	if input.Quantity < 0 {
		return nil, apperror.NewInvalidInputError("Quantity must not be negative")
	}

	product.Name = input.Name
	product.SKU = input.SKU
	product.Price = pricing.Cents(input.Price.Round(2))
	product.Quantity = input.Quantity
	product.Image = input.Image
	// Only admins move products between points of sale
	if actor.Role == enum.RoleAdmin && input.PointOfSaleID != nil {
		product.PointOfSaleID = *input.PointOfSaleID
	}

	product.Variations = nil
	if err := s.productRepo.Update(ctx, product); err != nil {
		return nil, err
	}

	if input.Variations != nil {
		if err := s.productRepo.ReplaceVariations(ctx, product.ID, variationsFromInput(input.Variations)); err != nil {
			return nil, err
		}
	}

	return s.productRepo.GetByID(ctx, product.ID)
}

// DeleteProduct deletes a product the actor is allowed to remove
func (s *ProductService) DeleteProduct(ctx context.Context, actor access.Actor, id uuid.UUID) error {
	product, err := s.productRepo.GetByID(ctx, id)
	if err != nil {
		return err
	}
	if product == nil {
		return apperror.NewNotFoundError("Product")
	}

	decision := access.Decide(access.Request{
		Actor:    actor,
		Action:   access.ActionDelete,
		Resource: productResource(product),
	})
	if err := decision.Err(); err != nil {
		return err
	}

	return s.productRepo.Delete(ctx, id)
}

func productResource(product *entity.Product) access.Resource {
	posID := product.PointOfSaleID
	return access.Resource{
		Kind:          access.KindProduct,
		ID:            product.ID,
		PointOfSaleID: &posID,
	}
}

func variationsFromInput(inputs []VariationInput) []entity.ProductVariation {
	if len(inputs) == 0 {
		return nil
	}
	variations := make([]entity.ProductVariation, 0, len(inputs))
	for _, v := range inputs {
		variations = append(variations, entity.ProductVariation{
			Name:     v.Name,
			SKU:      v.SKU,
			Quantity: v.Quantity,
		})
	}
	return variations
}
