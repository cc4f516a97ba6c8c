package services

import (
	"github.com/shopspring/decimal"

	"github.com/ghuser/ordersvc/services/order/domain/models"
)

const moneyPlaces = 2

// vipDiscount is the fraction taken off a VIP customer's total.
var vipDiscount = decimal.RequireFromString("0.1")

// PriceCalculator sets order.Total and order.TotalWithDiscount.
type PriceCalculator func(order *models.Order)

// CalculatePrices is the default PriceCalculator: ComputeTotal followed by
// ComputeDiscountedTotal.
func CalculatePrices(order *models.Order) {
	ComputeTotal(order)
	ComputeDiscountedTotal(order)
}

// ComputeTotal sets order.Total to the sum of price × quantity over its items,
// rounded half-up to cents, and returns it.
func ComputeTotal(order *models.Order) decimal.Decimal {
	total := decimal.Zero
	for _, it := range order.Items {
		if it != nil {
			total = total.Add(it.Subtotal())
		}
	}
	order.Total = total.Round(moneyPlaces)
	return order.Total
}

// ComputeDiscountedTotal sets order.TotalWithDiscount from order.Total and
// returns it. ComputeTotal must run first.
func ComputeDiscountedTotal(order *models.Order) decimal.Decimal {
	total := order.Total
	if order.Customer != nil && order.Customer.VIP {
		total = total.Sub(total.Mul(vipDiscount))
	}
	order.TotalWithDiscount = total.Round(moneyPlaces)
	return order.TotalWithDiscount
}
