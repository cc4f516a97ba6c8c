package models

import "github.com/shopspring/decimal"

// Item is an order line. It cannot exist outside an Order; OrderID is a
// non-owning back-reference used to detach the item when it is removed.
type Item struct {
	ID       int64
	Name     string
	Price    decimal.Decimal // unit price
	Quantity int             // units requested
	Stock    int             // units on hand, decremented when the order is placed
	OrderID  int64           // 0 when detached
}

// NewItem constructs a detached, unsaved Item.
func NewItem(name string, price decimal.Decimal, quantity, stock int) *Item {
	return &Item{Name: name, Price: price, Quantity: quantity, Stock: stock}
}

// Subtotal is price × quantity, unrounded.
func (i *Item) Subtotal() decimal.Decimal {
	return i.Price.Mul(decimal.NewFromInt(int64(i.Quantity)))
}

// Rename changes the item's name. Blank names leave it unchanged.
func (i *Item) Rename(name string) {
	if name == "" {
		return
	}
	i.Name = name
}
