package service

import (
	"context"

	"github.com/google/uuid"
	"github.com/storekeep/backoffice-api/internal/domain/access"
	"github.com/storekeep/backoffice-api/internal/domain/entity"
	"github.com/storekeep/backoffice-api/internal/domain/enum"
	"github.com/storekeep/backoffice-api/internal/domain/repository"
	"github.com/storekeep/backoffice-api/pkg/apperror"
)

// PointOfSaleService handles point-of-sale operations
type PointOfSaleService struct {
	posRepo  repository.PointOfSaleRepository
	userRepo repository.UserRepository
}

// NewPointOfSaleService creates a new point-of-sale service
func NewPointOfSaleService(posRepo repository.PointOfSaleRepository, userRepo repository.UserRepository) *PointOfSaleService {
	return &PointOfSaleService{posRepo: posRepo, userRepo: userRepo}
}

// ListPointsOfSale returns all points of sale. Every authenticated user may
// read the list; it backs the current-store selection dialog.
func (s *PointOfSaleService) ListPointsOfSale(ctx context.Context) ([]entity.PointOfSale, error) {
	return s.posRepo.List(ctx)
}

// GetPointOfSale retrieves a point of sale by ID
func (s *PointOfSaleService) GetPointOfSale(ctx context.Context, id uuid.UUID) (*entity.PointOfSale, error) {
	pos, err := s.posRepo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if pos == nil {
		return nil, apperror.NewNotFoundError("Point of sale")
	}
	return pos, nil
}

// PointOfSaleInput represents the create/update point-of-sale input
type PointOfSaleInput struct {
	Name      string
	Address   *string
	Phone     *string
	Logo      *string
	Status    enum.Status
	ManagerID *uuid.UUID
}

// CreatePointOfSale creates a new point of sale. Only admins pass the access
// check; scope matching never applies to store records themselves.
func (s *PointOfSaleService) CreatePointOfSale(ctx context.Context, actor access.Actor, input *PointOfSaleInput) (*entity.PointOfSale, error) {
	decision := access.Decide(access.Request{
		Actor:    actor,
		Action:   access.ActionCreate,
		Resource: access.Resource{Kind: access.KindPointOfSale},
	})
	if err := decision.Err(); err != nil {
		return nil, err
	}

	if input.Status == "" {
		input.Status = enum.StatusActive
	}
	if err := s.validateManager(ctx, input.ManagerID); err != nil {
		return nil, err
	}

	pos := &entity.PointOfSale{
		Name:      input.Name,
		Address:   input.Address,
		Phone:     input.Phone,
		Logo:      input.Logo,
		Status:    input.Status,
		ManagerID: input.ManagerID,
	}

	if err := s.posRepo.Create(ctx, pos); err != nil {
		return nil, err
	}

	return pos, nil
}

// UpdatePointOfSale updates a point of sale (admin only)
func (s *PointOfSaleService) UpdatePointOfSale(ctx context.Context, actor access.Actor, id uuid.UUID, input *PointOfSaleInput) (*entity.PointOfSale, error) {
	pos, err := s.posRepo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if pos == nil {
		return nil, apperror.NewNotFoundError("Point of sale")
	}

	decision := access.Decide(access.Request{
		Actor:    actor,
		Action:   access.ActionUpdate,
		Resource: access.Resource{Kind: access.KindPointOfSale, ID: pos.ID},
	})
	if err := decision.Err(); err != nil {
		return nil, err
	}

	if err := s.validateManager(ctx, input.ManagerID); err != nil {
		return nil, err
	}

	pos.Name = input.Name
	pos.Address = input.Address
	pos.Phone = input.Phone
	pos.Logo = input.Logo
	if input.Status != "" {
		pos.Status = input.Status
	}
	pos.ManagerID = input.ManagerID

	if err := s.posRepo.Update(ctx, pos); err != nil {
		return nil, err
	}

	return pos, nil
}

// DeletePointOfSale deletes a point of sale. The last remaining point of sale
// can never be deleted, not even by an admin.
func (s *PointOfSaleService) DeletePointOfSale(ctx context.Context, actor access.Actor, id uuid.UUID) error {
	pos, err := s.posRepo.GetByID(ctx, id)
	if err != nil {
		return err
	}
	if pos == nil {
		return apperror.NewNotFoundError("Point of sale")
	}

	count, err := s.posRepo.Count(ctx)
	if err != nil {
		return err
	}

	decision := access.Decide(access.Request{
		Actor:            actor,
		Action:           access.ActionDelete,
		Resource:         access.Resource{Kind: access.KindPointOfSale, ID: pos.ID},
		PointOfSaleCount: count,
	})
	if err := decision.Err(); err != nil {
		return err
	}

	return s.posRepo.Delete(ctx, id)
}

func (s *PointOfSaleService) validateManager(ctx context.Context, managerID *uuid.UUID) error {
	if managerID == nil {
		return nil
	}
	manager, err := s.userRepo.GetByID(ctx, *managerID)
	if err != nil {
		return err
	}
	if manager == nil {
		return apperror.NewNotFoundError("Manager")
	}
	return nil
}
