package services

import (
	"context"
	"fmt"

	"github.com/ghuser/ordersvc/pkg/domainerr"
	"github.com/ghuser/ordersvc/pkg/logger"
	customerdomain "github.com/ghuser/ordersvc/services/customer/domain"
	"github.com/ghuser/ordersvc/services/customer/domain/models"
	"github.com/ghuser/ordersvc/services/customer/domain/repositories"
)

// OrderCacheInvalidator drops cached orders that embed a customer's data.
// *cache.OrderCache implements it.
type OrderCacheInvalidator interface {
	DeleteByCustomer(ctx context.Context, customerID int64) error
}

// CustomerService orchestrates customer CRUD.
type CustomerService struct {
	repo   repositories.CustomerRepository
	orders OrderCacheInvalidator
	log    logger.Logger
}

// Option configures a CustomerService.
type Option func(*CustomerService)

// WithOrderCache makes Update evict the customer's cached orders.
func WithOrderCache(c OrderCacheInvalidator) Option {
	return func(s *CustomerService) { s.orders = c }
}

func WithLogger(l logger.Logger) Option {
	return func(s *CustomerService) { s.log = l }
}

func NewCustomerService(repo repositories.CustomerRepository, opts ...Option) *CustomerService {
	s := &CustomerService{repo: repo, log: logger.Discard()}
	for _, opt := range opts {
		opt(s)
	}
	return s
}

// List returns ErrNoCustomersFound when there are no customers.
func (s *CustomerService) List(ctx context.Context) ([]*models.Customer, error) {
	customers, err := s.repo.FindAll(ctx)
	if err != nil {
		return nil, fmt.Errorf("list customers: %w", err)
	}
	if len(customers) == 0 {
		return nil, customerdomain.ErrNoCustomersFound
	}
	return customers, nil
}

func (s *CustomerService) Get(ctx context.Context, id int64) (*models.Customer, error) {
	c, err := s.repo.GetByID(ctx, id)
	if err != nil {
		return nil, fmt.Errorf("get customer: %w", err)
	}
	return c, nil
}

// Create persists c as a new customer, ignoring any ID it carries.
func (s *CustomerService) Create(ctx context.Context, c *models.Customer) (*models.Customer, error) {
	if c == nil {
		return nil, customerdomain.ErrNilCustomer
	}
	c.ID = 0
	if err := s.repo.Save(ctx, c); err != nil {
		return nil, fmt.Errorf("create customer: %w", err)
	}
	return c, nil
}

// Update overwrites name, email and VIP flag of customer id.
func (s *CustomerService) Update(ctx context.Context, id int64, input *models.Customer) (*models.Customer, error) {
	if input == nil {
		return nil, customerdomain.ErrNilCustomer
	}
	existing, err := s.repo.GetByID(ctx, id)
	if err != nil {
		return nil, fmt.Errorf("get customer: %w", err)
	}
	existing.Update(input)
	if err := s.repo.Save(ctx, existing); err != nil {
		return nil, fmt.Errorf("update customer: %w", err)
	}
	if s.orders != nil {
		// The update is committed; a stale entry only lives until its TTL.
		if err := s.orders.DeleteByCustomer(ctx, id); err != nil {
			s.log.WarnContext(ctx, "order cache evict failed", "customer_id", id, "error", err)
		}
	}
	return existing, nil
}

// Delete fails with a not-found error for unknown ids and with a database
// error while orders still reference the customer.
func (s *CustomerService) Delete(ctx context.Context, id int64) error {
	exists, err := s.repo.Exists(ctx, id)
	if err != nil {
		return fmt.Errorf("check customer: %w", err)
	}
	if !exists {
		return domainerr.NotFound(id)
	}
	if err := s.repo.Delete(ctx, id); err != nil {
		return fmt.Errorf("delete customer: %w", err)
	}
	return nil
}
