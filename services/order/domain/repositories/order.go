package repositories

import (
	"context"

	"github.com/ghuser/ordersvc/services/order/domain/models"
)

// OrderRepository is the persistence interface for the Order aggregate.
// Not-found lookups return an error of kind domainerr.ErrResourceNotFound.
type OrderRepository interface {
	GetByID(ctx context.Context, id int64) (*models.Order, error)
	FindAll(ctx context.Context) ([]*models.Order, error)

	// Save inserts or updates the order row, replaces its item rows wholesale,
	// writes the assigned IDs back and publishes an OrderPlacedEvent in the
	// same transaction.
	Save(ctx context.Context, order *models.Order) error

	Exists(ctx context.Context, id int64) (bool, error)

	// Delete removes the order; its items go with it.
	Delete(ctx context.Context, id int64) error
}

// ItemRepository exposes items for reads and renames. Items are created and
// removed only through their order.
type ItemRepository interface {
	GetByID(ctx context.Context, id int64) (*models.Item, error)
	FindAll(ctx context.Context) ([]*models.Item, error)
	UpdateName(ctx context.Context, id int64, name string) error
}
