package repositories

import (
	"context"

	"github.com/ghuser/ordersvc/services/customer/domain/models"
)

// CustomerRepository is the persistence interface for the Customer aggregate.
// The domain layer owns this interface; infrastructure implements it.
type CustomerRepository interface {
	// GetByID returns a domainerr.ErrResourceNotFound error when id does not exist.
	GetByID(ctx context.Context, id int64) (*models.Customer, error)
	FindAll(ctx context.Context) ([]*models.Customer, error)

	// Save inserts when customer.ID is 0 and updates otherwise. The assigned
	// ID is written back to customer.
	Save(ctx context.Context, customer *models.Customer) error

	Exists(ctx context.Context, id int64) (bool, error)

	// Delete returns a domainerr.ErrDatabase error when orders still reference the customer.
	Delete(ctx context.Context, id int64) error
}
