package models

import (
	"time"

	"github.com/shopspring/decimal"

	customermodels "github.com/ghuser/ordersvc/services/customer/domain/models"
)

// Customer is the customer context's aggregate, referenced by orders.
type Customer = customermodels.Customer

// Order is the aggregate root of the order context. It exclusively owns its Items.
type Order struct {
	ID                int64
	Total             decimal.Decimal // pre-discount, 2 decimal places
	TotalWithDiscount decimal.Decimal // 2 decimal places, never above Total
	InStock           bool
	DeliveryDate      *time.Time // date only; set only when InStock
	Customer          *Customer
	Items             []*Item
}

// NewOrder constructs an unsaved order with zero totals and no delivery date.
// Every item is relinked to the new order.
func NewOrder(customer *Customer, items []*Item) *Order {
	o := &Order{
		Total:             decimal.Zero,
		TotalWithDiscount: decimal.Zero,
		Customer:          customer,
	}
	o.AttachItems(items)
	return o
}

// AttachItems replaces the item collection and points each item back at o.
func (o *Order) AttachItems(items []*Item) {
	o.Items = make([]*Item, 0, len(items))
	for _, it := range items {
		if it == nil {
			o.Items = append(o.Items, nil)
			continue
		}
		it.OrderID = o.ID
		o.Items = append(o.Items, it)
	}
}

// ReplaceWith performs a wholesale update: scalar fields and the customer are
// copied from other and the item collection is replaced and relinked.
// The identity of o is kept.
func (o *Order) ReplaceWith(other *Order) {
	o.Total = other.Total
	o.TotalWithDiscount = other.TotalWithDiscount
	o.InStock = other.InStock
	o.DeliveryDate = other.DeliveryDate
	o.Customer = other.Customer
	o.AttachItems(other.Items)
}

// DetachItem removes the item with the given id and clears its back-reference.
// It reports false when the order does not own such an item.
func (o *Order) DetachItem(itemID int64) (*Item, bool) {
	for i, it := range o.Items {
		if it == nil || it.ID != itemID {
			continue
		}
		o.Items = append(o.Items[:i:i], o.Items[i+1:]...)
		it.OrderID = 0
		return it, true
	}
	return nil, false
}

// AssignID sets the persistent identity and relinks every owned item.
func (o *Order) AssignID(id int64) {
	o.ID = id
	for _, it := range o.Items {
		if it != nil {
			it.OrderID = id
		}
	}
}

// Date returns the calendar date of t (as seen in t's location) at midnight UTC,
// so dates from the clock and from the database compare directly.
func Date(t time.Time) time.Time {
	y, m, d := t.Date()
	return time.Date(y, m, d, 0, 0, 0, 0, time.UTC)
}
