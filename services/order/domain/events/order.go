package events

import (
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"github.com/ghuser/ordersvc/services/order/domain/models"
)

// TopicOrderPlaced is published after an order passes the pipeline and is saved.
const TopicOrderPlaced = "order.placed"

const orderPlacedVersion = 1

// OrderPlacedEvent carries a full snapshot of the saved order so consumers
// can build read models without querying the database.
// Consumers subscribe via EventBus.Subscribe(ctx, events.TopicOrderPlaced).
type OrderPlacedEvent struct {
	EventID           uuid.UUID       `json:"event_id"` // Unique publish-time identifier for deduplication
	Version           int             `json:"version"`  // Schema version; increment on breaking changes
	OrderID           int64           `json:"order_id"`
	CustomerID        int64           `json:"customer_id"`
	CustomerName      string          `json:"customer_name"`
	CustomerEmail     string          `json:"customer_email"`
	CustomerVIP       bool            `json:"customer_vip"`
	Total             decimal.Decimal `json:"total"`
	TotalWithDiscount decimal.Decimal `json:"total_with_discount"`
	InStock           bool            `json:"in_stock"`
	DeliveryDate      *time.Time      `json:"delivery_date,omitempty"`
	Items             []PlacedItem    `json:"items"`
	OccurredAt        time.Time       `json:"occurred_at"`
}

type PlacedItem struct {
	ItemID   int64           `json:"item_id"`
	Name     string          `json:"name"`
	Price    decimal.Decimal `json:"price"`
	Quantity int             `json:"quantity"`
	Stock    int             `json:"stock"`
}

// NewOrderPlacedEvent snapshots a saved order. The order must have a customer.
func NewOrderPlacedEvent(o *models.Order, at time.Time) OrderPlacedEvent {
	items := make([]PlacedItem, 0, len(o.Items))
	for _, it := range o.Items {
		items = append(items, PlacedItem{
			ItemID:   it.ID,
			Name:     it.Name,
			Price:    it.Price,
			Quantity: it.Quantity,
			Stock:    it.Stock,
		})
	}
	return OrderPlacedEvent{
		EventID:           uuid.New(),
		Version:           orderPlacedVersion,
		OrderID:           o.ID,
		CustomerID:        o.Customer.ID,
		CustomerName:      o.Customer.Name,
		CustomerEmail:     o.Customer.Email,
		CustomerVIP:       o.Customer.VIP,
		Total:             o.Total,
		TotalWithDiscount: o.TotalWithDiscount,
		InStock:           o.InStock,
		DeliveryDate:      o.DeliveryDate,
		Items:             items,
		OccurredAt:        at.UTC(),
	}
}
