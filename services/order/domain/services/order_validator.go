package services

import (
	"time"

	orderdomain "github.com/ghuser/ordersvc/services/order/domain"
	"github.com/ghuser/ordersvc/services/order/domain/models"
)

// OrderValidator enforces the order invariants. Checks run in a fixed
// sequence and the first failure is returned.
type OrderValidator struct {
	validateItem ItemValidator
	now          func() time.Time
}

// ValidatorOption configures an OrderValidator.
type ValidatorOption func(*OrderValidator)

// WithItemValidator replaces ValidateItem.
func WithItemValidator(fn ItemValidator) ValidatorOption {
	return func(v *OrderValidator) { v.validateItem = fn }
}

// WithValidatorClock sets the source of "today" for the delivery date check.
func WithValidatorClock(now func() time.Time) ValidatorOption {
	return func(v *OrderValidator) { v.now = now }
}

func NewOrderValidator(opts ...ValidatorOption) *OrderValidator {
	v := &OrderValidator{validateItem: ValidateItem, now: time.Now}
	for _, opt := range opts {
		opt(v)
	}
	return v
}

// Validate does not mutate the order.
func (v *OrderValidator) Validate(order *models.Order) error {
	if order == nil {
		return orderdomain.ErrNilOrder
	}
	if order.Customer == nil {
		return orderdomain.ErrNoCustomer
	}
	if !order.Customer.HasID() {
		return orderdomain.ErrInvalidCustomerID
	}
	if len(order.Items) == 0 {
		return orderdomain.ErrNoItems
	}
	for _, it := range order.Items {
		if err := v.validateItem(it); err != nil {
			return err
		}
	}
	if !order.Total.IsPositive() {
		return orderdomain.ErrNonPositiveTotal
	}
	if order.TotalWithDiscount.IsNegative() {
		return orderdomain.ErrNegativeDiscountedTotal
	}
	if order.DeliveryDate != nil && models.Date(*order.DeliveryDate).Before(models.Date(v.now())) {
		return orderdomain.ErrPastDeliveryDate
	}
	return nil
}
