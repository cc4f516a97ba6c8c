package services

import (
	"bytes"
	"context"
	"encoding/json"

	"github.com/ghuser/ordersvc/pkg/cache"
	"github.com/ghuser/ordersvc/services/order/domain/models"
)

// ReadModel is the order read model kept in Redis. *cache.OrderCache implements it.
type ReadModel interface {
	Get(ctx context.Context, id int64) (*cache.CachedOrder, error)
	Set(ctx context.Context, o *cache.CachedOrder) error
	Delete(ctx context.Context, id int64) error
	DeleteByCustomer(ctx context.Context, customerID int64) error
}

// sameSnapshot reports whether a and b would be served identically.
func sameSnapshot(a, b *cache.CachedOrder) bool {
	ra, errA := json.Marshal(a)
	rb, errB := json.Marshal(b)
	return errA == nil && errB == nil && bytes.Equal(ra, rb)
}

func toCached(o *models.Order) *cache.CachedOrder {
	c := &cache.CachedOrder{
		ID:                o.ID,
		Total:             o.Total,
		TotalWithDiscount: o.TotalWithDiscount,
		InStock:           o.InStock,
		DeliveryDate:      o.DeliveryDate,
		Items:             make([]cache.CachedItem, 0, len(o.Items)),
	}
	if o.Customer != nil {
		c.Customer = cache.CachedCustomer{ID: o.Customer.ID, Name: o.Customer.Name, Email: o.Customer.Email, VIP: o.Customer.VIP}
	}
	for _, it := range o.Items {
		if it == nil {
			continue
		}
		c.Items = append(c.Items, cache.CachedItem{ID: it.ID, Name: it.Name, Price: it.Price, Quantity: it.Quantity, Stock: it.Stock})
	}
	return c
}

func fromCached(c *cache.CachedOrder) *models.Order {
	o := &models.Order{
		ID:                c.ID,
		Total:             c.Total,
		TotalWithDiscount: c.TotalWithDiscount,
		InStock:           c.InStock,
		DeliveryDate:      c.DeliveryDate,
		Customer: &models.Customer{
			ID:    c.Customer.ID,
			Name:  c.Customer.Name,
			Email: c.Customer.Email,
			VIP:   c.Customer.VIP,
		},
		Items: make([]*models.Item, 0, len(c.Items)),
	}
	for _, it := range c.Items {
		o.Items = append(o.Items, &models.Item{
			ID:       it.ID,
			Name:     it.Name,
			Price:    it.Price,
			Quantity: it.Quantity,
			Stock:    it.Stock,
			OrderID:  c.ID,
		})
	}
	return o
}
