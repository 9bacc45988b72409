package service

import (
	"context"

	"github.com/google/uuid"
	"github.com/storekeep/backoffice-api/internal/domain/access"
	"github.com/storekeep/backoffice-api/internal/domain/entity"
	"github.com/storekeep/backoffice-api/internal/domain/enum"
	"github.com/storekeep/backoffice-api/internal/domain/repository"
	"github.com/storekeep/backoffice-api/pkg/apperror"
	"github.com/storekeep/backoffice-api/pkg/pagination"
	"golang.org/x/crypto/bcrypt"
)

// UserService handles user management operations
type UserService struct {
	userRepo repository.UserRepository
	posRepo  repository.PointOfSaleRepository
}

// NewUserService creates a new user service
func NewUserService(userRepo repository.UserRepository, posRepo repository.PointOfSaleRepository) *UserService {
	return &UserService{userRepo: userRepo, posRepo: posRepo}
}

// ListUsers lists users visible to the actor. Admins see every user and may
// filter by point of sale; managers and staff only see their own point of sale.
func (s *UserService) ListUsers(ctx context.Context, actor access.Actor, params *pagination.PaginationParams, search string, pointOfSaleID *uuid.UUID) (*pagination.PaginatedResult[entity.User], error) {
	filter := &repository.UserFilterParams{
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

	users, total, err := s.userRepo.List(ctx, filter)
	if err != nil {
		return nil, err
	}

	pag := pagination.NewPagination(params.Page, params.PerPage, total)
	return pagination.NewPaginatedResult(users, pag), nil
}

// GetUser retrieves a user the actor is allowed to read
func (s *UserService) GetUser(ctx context.Context, actor access.Actor, id uuid.UUID) (*entity.User, error) {
	user, err := s.userRepo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if user == nil {
		return nil, apperror.NewNotFoundError("User")
	}

	decision := access.Decide(access.Request{
		Actor:    actor,
		Action:   access.ActionRead,
		Resource: userResource(user),
	})
	if err := decision.Err(); err != nil {
		return nil, err
	}

	return user, nil
}

// CreateUserInput represents the create user input
type CreateUserInput struct {
	Name          string
	Email         string
	Password      string
	Role          enum.Role
	Status        enum.Status
	PointOfSaleID *uuid.UUID
}

// CreateUser creates a new user. Non-admin actors can only create users inside
// their own point of sale and may never grant the admin role.
func (s *UserService) CreateUser(ctx context.Context, actor access.Actor, input *CreateUserInput) (*entity.User, error) {
	if !input.Role.Valid() {
		return nil, apperror.NewInvalidInputError("Unknown role")
	}
	if input.Status == "" {
		input.Status = enum.StatusActive
	}

	// Non-admins create users in their own point of sale only
	pointOfSaleID := input.PointOfSaleID
	if actor.Role != enum.RoleAdmin {
		pointOfSaleID = actor.PointOfSaleID
	}

	decision := access.Decide(access.Request{
		Actor:  actor,
		Action: access.ActionCreate,
		Resource: access.Resource{
			Kind:          access.KindUser,
			PointOfSaleID: pointOfSaleID,
		},
		PayloadRole: input.Role,
	})
	if err := decision.Err(); err != nil {
		return nil, err
	}

	existing, err := s.userRepo.GetByEmail(ctx, input.Email)
	if err != nil {
		return nil, err
	}
	if existing != nil {
		return nil, apperror.NewConflictError("Email already in use")
	}

	hashed, err := bcrypt.GenerateFromPassword([]byte(input.Password), bcrypt.DefaultCost)
	if err != nil {
		return nil, err
	}

	user := &entity.User{
		Name:          input.Name,
		Email:         input.Email,
		Password:      string(hashed),
		Role:          input.Role,
		Status:        input.Status,
		PointOfSaleID: pointOfSaleID,
	}

	if err := s.userRepo.Create(ctx, user); err != nil {
		return nil, err
	}

	return user, nil
}

// UpdateUserInput represents the update user input
type UpdateUserInput struct {
	ID            uuid.UUID
	Name          *string
	Email         *string
	Password      *string
	Role          *enum.Role
	Status        *enum.Status
	PointOfSaleID *uuid.UUID
}

// UpdateUser updates a user the actor is allowed to modify
func (s *UserService) UpdateUser(ctx context.Context, actor access.Actor, input *UpdateUserInput) (*entity.User, error) {
	user, err := s.userRepo.GetByID(ctx, input.ID)
	if err != nil {
		return nil, err
	}
	if user == nil {
		return nil, apperror.NewNotFoundError("User")
	}

	payloadRole := user.Role
	if input.Role != nil {
		if !input.Role.Valid() {
			return nil, apperror.NewInvalidInputError("Unknown role")
		}
		payloadRole = *input.Role
	}

	decision := access.Decide(access.Request{
		Actor:       actor,
		Action:      access.ActionUpdate,
		Resource:    userResource(user),
		PayloadRole: payloadRole,
	})
	if err := decision.Err(); err != nil {
		return nil, err
	}

	if input.Name != nil {
		user.Name = *input.Name
	}
	if input.Email != nil && *input.Email != user.Email {
		existing, err := s.userRepo.GetByEmail(ctx, *input.Email)
		if err != nil {
			return nil, err
		}
		if existing != nil {
			return nil, apperror.NewConflictError("Email already in use")
		}
		user.Email = *input.Email
	}
	if input.Password != nil && *input.Password != "" {
		hashed, err := bcrypt.GenerateFromPassword([]byte(*input.Password), bcrypt.DefaultCost)
		if err != nil {
			return nil, err
		}
		user.Password = string(hashed)
	}
	if input.Role != nil {
		user.Role = *input.Role
	}
	if input.Status != nil {
		user.Status = *input.Status
	}
	// Only admins move users between points of sale
	if actor.Role == enum.RoleAdmin && input.PointOfSaleID != nil {
		user.PointOfSaleID = input.PointOfSaleID
	}

	if err := s.userRepo.Update(ctx, user); err != nil {
		return nil, err
	}

	return user, nil
}

// DeleteUser deletes a user the actor is allowed to remove. Self-deletion is
// always rejected.
func (s *UserService) DeleteUser(ctx context.Context, actor access.Actor, id uuid.UUID) error {
	user, err := s.userRepo.GetByID(ctx, id)
	if err != nil {
		return err
	}
	if user == nil {
		return apperror.NewNotFoundError("User")
	}

	decision := access.Decide(access.Request{
		Actor:    actor,
		Action:   access.ActionDelete,
		Resource: userResource(user),
	})
	if err := decision.Err(); err != nil {
		return err
	}

	return s.userRepo.Delete(ctx, id)
}

// SelectPointOfSale sets the actor's own current point of sale. Any
// authenticated user may switch their own selection.
func (s *UserService) SelectPointOfSale(ctx context.Context, actorID, pointOfSaleID uuid.UUID) error {
	pos, err := s.posRepo.GetByID(ctx, pointOfSaleID)
	if err != nil {
		return err
	}
	if pos == nil {
		return apperror.NewNotFoundError("Point of sale")
	}

	return s.userRepo.UpdatePointOfSale(ctx, actorID, &pointOfSaleID)
}

func userResource(user *entity.User) access.Resource {
	return access.Resource{
		Kind:          access.KindUser,
		ID:            user.ID,
		PointOfSaleID: user.PointOfSaleID,
		Role:          user.Role,
	}
}
