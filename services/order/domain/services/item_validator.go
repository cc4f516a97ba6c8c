package services

import (
	orderdomain "github.com/ghuser/ordersvc/services/order/domain"
	"github.com/ghuser/ordersvc/services/order/domain/models"
)

// ItemValidator checks a single order line.
type ItemValidator func(item *models.Item) error

// ValidateItem rejects a non-positive quantity, then a non-positive price.
// A nil item fails the quantity check.
func ValidateItem(item *models.Item) error {
	if item == nil || item.Quantity <= 0 {
		return orderdomain.ErrInvalidQuantity
	}
	if !item.Price.IsPositive() {
		return orderdomain.ErrInvalidPrice
	}
	return nil
}
