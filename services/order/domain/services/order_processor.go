package services

import (
	"context"
	"fmt"
	"time"

	"github.com/ghuser/ordersvc/pkg/domainerr"
	"github.com/ghuser/ordersvc/services/order/domain/models"
)

const (
	// DefaultDeliveryDays is the delay between placement and delivery.
	DefaultDeliveryDays = 3

	NotificationSubject = "Pedido enviado"
	NotificationBody    = "Pedido enviado! Seu pedido será entregue em breve."
)

// NotificationGateway delivers a message to a customer.
type NotificationGateway interface {
	Send(ctx context.Context, recipient, subject, body string) error
}

// OrderProcessor runs the placement pipeline on an order:
//
//  1. compute the total
//  2. compute the discounted total
//  3. verify stock, failing with an insufficient stock error
//  4. assign the delivery date
//  5. validate the order
//  6. decrement stock in memory
//  7. notify the customer, failing with a notification error
//
// There are no retries and nothing is rolled back: on failure the order keeps
// whatever mutations the completed steps made. Persisting them is the caller's
// decision.
type OrderProcessor struct {
	prices       PriceCalculator
	stock        StockChecker
	validator    *OrderValidator
	gateway      NotificationGateway
	now          func() time.Time
	deliveryDays int
}

// ProcessorOption configures an OrderProcessor.
type ProcessorOption func(*OrderProcessor)

// WithClock sets the source of "today" for both delivery date assignment and validation.
func WithClock(now func() time.Time) ProcessorOption {
	return func(p *OrderProcessor) { p.now = now }
}

// WithDeliveryDays overrides DefaultDeliveryDays.
func WithDeliveryDays(days int) ProcessorOption {
	return func(p *OrderProcessor) { p.deliveryDays = days }
}

// WithPriceCalculator replaces CalculatePrices.
func WithPriceCalculator(c PriceCalculator) ProcessorOption {
	return func(p *OrderProcessor) { p.prices = c }
}

// WithStockChecker replaces VerifyStock.
func WithStockChecker(c StockChecker) ProcessorOption {
	return func(p *OrderProcessor) { p.stock = c }
}

// WithValidator replaces the default OrderValidator.
func WithValidator(v *OrderValidator) ProcessorOption {
	return func(p *OrderProcessor) { p.validator = v }
}

func NewOrderProcessor(gateway NotificationGateway, opts ...ProcessorOption) *OrderProcessor {
	p := &OrderProcessor{
		prices:       CalculatePrices,
		stock:        VerifyStock,
		gateway:      gateway,
		now:          time.Now,
		deliveryDays: DefaultDeliveryDays,
	}
	for _, opt := range opts {
		opt(p)
	}
	if p.validator == nil {
		p.validator = NewOrderValidator(WithValidatorClock(p.now))
	}
	return p
}

// Process mutates order in place. Errors are domainerr kinds:
// ErrInsufficientStock, ErrBusinessRule or ErrNotification.
func (p *OrderProcessor) Process(ctx context.Context, order *models.Order) error {
	if order == nil {
		return p.validator.Validate(nil)
	}

	p.prices(order)

	if !p.stock(order) {
		return domainerr.InsufficientStock()
	}
	order.InStock = true

	p.assignDeliveryDate(order)

	if err := p.validator.Validate(order); err != nil {
		return err
	}

	for _, it := range order.Items {
		it.Stock -= it.Quantity
	}

	return p.notify(ctx, order)
}

func (p *OrderProcessor) assignDeliveryDate(order *models.Order) {
	if !order.InStock {
		order.DeliveryDate = nil
		return
	}
	d := models.Date(p.now()).AddDate(0, 0, p.deliveryDays)
	order.DeliveryDate = &d
}

// notify converts any gateway failure, panics included, into a notification error.
func (p *OrderProcessor) notify(ctx context.Context, order *models.Order) (err error) {
	defer func() {
		if r := recover(); r != nil {
			err = domainerr.Notification(fmt.Errorf("gateway panic: %v", r))
		}
	}()

	if err := p.gateway.Send(ctx, order.Customer.Email, NotificationSubject, NotificationBody); err != nil {
		return domainerr.Notification(err)
	}
	return nil
}
