// Package services contains the order processing pipeline and the stateless
// rules it is composed of. Nothing here touches infrastructure; the
// notification transport arrives through the NotificationGateway interface.
package services

import "github.com/ghuser/ordersvc/services/order/domain/models"

// StockChecker reports whether an order's items are covered by stock.
type StockChecker func(order *models.Order) bool

// VerifyStock reports whether every item's requested quantity fits its stock.
// An order without items passes. Nil items are left to the validator.
func VerifyStock(order *models.Order) bool {
	for _, it := range order.Items {
		if it != nil && it.Quantity > it.Stock {
			return false
		}
	}
	return true
}
