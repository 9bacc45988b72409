package service

import (
	"context"

	"github.com/google/uuid"
	"github.com/storekeep/backoffice-api/internal/domain/access"
	"github.com/storekeep/backoffice-api/internal/domain/entity"
	"github.com/storekeep/backoffice-api/internal/domain/repository"
	"github.com/storekeep/backoffice-api/pkg/apperror"
	"github.com/storekeep/backoffice-api/pkg/pagination"
)

// CustomerService handles customer management operations
type CustomerService struct {
	customerRepo repository.CustomerRepository
}

// NewCustomerService creates a new customer service
func NewCustomerService(customerRepo repository.CustomerRepository) *CustomerService {
	return &CustomerService{customerRepo: customerRepo}
}

// CustomerInput represents the create/update customer input
type CustomerInput struct {
	Name    string
	Email   *string
	Phone   *string
	Address *string
}

// ListCustomers lists customers. Customers are shared across points of sale,
// so any authenticated user may browse them.
func (s *CustomerService) ListCustomers(ctx context.Context, actor access.Actor, params *pagination.PaginationParams, search string) (*pagination.PaginatedResult[entity.Customer], error) {
	customers, total, err := s.customerRepo.List(ctx, params, search)
	if err != nil {
		return nil, err
	}

	pag := pagination.NewPagination(params.Page, params.PerPage, total)
	return pagination.NewPaginatedResult(customers, pag), nil
}

// GetCustomer retrieves a customer by ID
func (s *CustomerService) GetCustomer(ctx context.Context, actor access.Actor, id uuid.UUID) (*entity.Customer, error) {
	customer, err := s.customerRepo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if customer == nil {
		return nil, apperror.NewNotFoundError("Customer")
	}
	return customer, nil
}

// CreateCustomer creates a new customer
func (s *CustomerService) CreateCustomer(ctx context.Context, actor access.Actor, input *CustomerInput) (*entity.Customer, error) {
	decision := access.Decide(access.Request{
		Actor:    actor,
		Action:   access.ActionCreate,
		Resource: customerResource(actor, uuid.Nil),
	})
	if err := decision.Err(); err != nil {
		return nil, err
	}

	if input.Email != nil && *input.Email != "" {
		existing, err := s.customerRepo.GetByEmail(ctx, *input.Email)
		if err != nil {
			return nil, err
		}
		if existing != nil {
			return nil, apperror.NewConflictError("A customer with this email already exists")
		}
	}

	customer := &entity.Customer{
		Name:    input.Name,
		Email:   input.Email,
		Phone:   input.Phone,
		Address: input.Address,
	}

	if err := s.customerRepo.Create(ctx, customer); err != nil {
		return nil, err
	}

	return customer, nil
}

// UpdateCustomer updates an existing customer
func (s *CustomerService) UpdateCustomer(ctx context.Context, actor access.Actor, id uuid.UUID, input *CustomerInput) (*entity.Customer, error) {
	customer, err := s.customerRepo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if customer == nil {
		return nil, apperror.NewNotFoundError("Customer")
	}

	decision := access.Decide(access.Request{
		Actor:    actor,
		Action:   access.ActionUpdate,
		Resource: customerResource(actor, customer.ID),
	})
	if err := decision.Err(); err != nil {
		return nil, err
	}

	if input.Email != nil && *input.Email != "" {
		existing, err := s.customerRepo.GetByEmail(ctx, *input.Email)
		if err != nil {
			return nil, err
		}
		if existing != nil && existing.ID != customer.ID {
			return nil, apperror.NewConflictError("A customer with this email already exists")
		}
	}

	customer.Name = input.Name
	customer.Email = input.Email
	customer.Phone = input.Phone
	customer.Address = input.Address

	if err := s.customerRepo.Update(ctx, customer); err != nil {
		return nil, err
	}

	return customer, nil
}

// DeleteCustomer deletes a customer
func (s *CustomerService) DeleteCustomer(ctx context.Context, actor access.Actor, id uuid.UUID) error {
	customer, err := s.customerRepo.GetByID(ctx, id)
	if err != nil {
		return err
	}
	if customer == nil {
		return apperror.NewNotFoundError("Customer")
	}

	decision := access.Decide(access.Request{
		Actor:    actor,
		Action:   access.ActionDelete,
		Resource: customerResource(actor, customer.ID),
	})
	if err := decision.Err(); err != nil {
		return err
	}

	return s.customerRepo.Delete(ctx, id)
}

// customerResource builds the access snapshot for a customer. Customers carry
// no point of sale of their own, so mutations are scoped to the actor's.
func customerResource(actor access.Actor, id uuid.UUID) access.Resource {
	return access.Resource{
		Kind:          access.KindCustomer,
		ID:            id,
		PointOfSaleID: actor.PointOfSaleID,
	}
}
