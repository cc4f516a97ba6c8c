package services

import (
	"context"
	"fmt"

	"github.com/ghuser/ordersvc/pkg/domainerr"
	orderdomain "github.com/ghuser/ordersvc/services/order/domain"
	"github.com/ghuser/ordersvc/services/order/domain/models"
	"github.com/ghuser/ordersvc/services/order/domain/repositories"
)

// ItemService exposes order items. Items are created only as part of an
// order; removing one re-places the order that owned it.
type ItemService struct {
	items  repositories.ItemRepository
	orders repositories.OrderRepository
	placer *OrderService
}

func NewItemService(items repositories.ItemRepository, orders repositories.OrderRepository, placer *OrderService) *ItemService {
	return &ItemService{items: items, orders: orders, placer: placer}
}

// List returns ErrNoItemsFound when there are no items.
func (s *ItemService) List(ctx context.Context) ([]*models.Item, error) {
	items, err := s.items.FindAll(ctx)
	if err != nil {
		return nil, fmt.Errorf("list items: %w", err)
	}
	if len(items) == 0 {
		return nil, orderdomain.ErrNoItemsFound
	}
	return items, nil
}

func (s *ItemService) Get(ctx context.Context, id int64) (*models.Item, error) {
	it, err := s.items.GetByID(ctx, id)
	if err != nil {
		return nil, fmt.Errorf("get item: %w", err)
	}
	return it, nil
}

// Rename changes only the item's name. A blank name leaves the item unchanged.
func (s *ItemService) Rename(ctx context.Context, id int64, name string) (*models.Item, error) {
	it, err := s.items.GetByID(ctx, id)
	if err != nil {
		return nil, fmt.Errorf("get item: %w", err)
	}
	if name == "" {
		return it, nil
	}

	it.Rename(name)
	if err := s.items.UpdateName(ctx, id, it.Name); err != nil {
		return nil, fmt.Errorf("rename item: %w", err)
	}
	s.placer.Evict(ctx, it.OrderID)
	return it, nil
}

// Delete detaches the item from its order and saves the order again through
// the placement pipeline. Removing the last item of an order therefore fails
// with ErrNoItems and nothing is deleted.
func (s *ItemService) Delete(ctx context.Context, id int64) error {
	it, err := s.items.GetByID(ctx, id)
	if err != nil {
		return fmt.Errorf("get item: %w", err)
	}

	order, err := s.orders.GetByID(ctx, it.OrderID)
	if err != nil {
		return fmt.Errorf("get order of item %d: %w", id, err)
	}
	if _, ok := order.DetachItem(id); !ok {
		return domainerr.NotFound(id)
	}

	if err := s.placer.Reprocess(ctx, order); err != nil {
		return fmt.Errorf("delete item: %w", err)
	}
	return nil
}
