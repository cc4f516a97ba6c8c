package handlers

import (
	"encoding/json"

	"github.com/shopspring/decimal"

	"github.com/ghuser/ordersvc/services/order/domain/models"
)

const dateLayout = "2006-01-02"

// OrderRequest is the request body for POST and PUT /pedidos. Totals, stock
// status and delivery date are computed by the placement pipeline.
type OrderRequest struct {
	Customer *CustomerRef  `json:"cliente"`
	Items    []ItemRequest `json:"itens" validate:"dive"`
} // @name OrderRequest

// CustomerRef points an order at an existing customer.
type CustomerRef struct {
	ID int64 `json:"id" example:"1"`
} // @name CustomerRef

// ItemRequest is one order line. Quantity and price rules are enforced by
// the pipeline so its messages reach the client; the upper bounds are the
// INTEGER columns the line is stored in.
type ItemRequest struct {
	Name     string          `json:"nome"       validate:"required,max=100" example:"Caneta azul"`
	Price    decimal.Decimal `json:"preco"      swaggertype:"number" example:"2.50"`
	Quantity int             `json:"quantidade" validate:"max=2147483647" example:"4"`
	Stock    int             `json:"estoque"    validate:"min=0,max=2147483647" example:"10"`
} // @name ItemRequest

func (r *OrderRequest) customerID() int64 {
	if r.Customer == nil {
		return 0
	}
	return r.Customer.ID
}

func (r *OrderRequest) items() []*models.Item {
	items := make([]*models.Item, 0, len(r.Items))
	for _, it := range r.Items {
		items = append(items, models.NewItem(it.Name, it.Price, it.Quantity, it.Stock))
	}
	return items
}

// ItemNameRequest is the request body for PUT /itens/{id}. Only the name can
// change; an absent or empty name keeps the current one.
type ItemNameRequest struct {
	Name string `json:"nome" validate:"omitempty,max=100" example:"Caneta preta"`
} // @name ItemNameRequest

// OrderResponse is the JSON representation of an order.
type OrderResponse struct {
	ID                int64            `json:"id"               example:"1"`
	Total             json.Number      `json:"total"            swaggertype:"number" example:"10.00"`
	TotalWithDiscount json.Number      `json:"totalComDesconto" swaggertype:"number" example:"9.00"`
	InStock           bool             `json:"emEstoque"        example:"true"`
	DeliveryDate      *string          `json:"dataEntrega"      example:"2026-10-22"`
	Customer          *CustomerSummary `json:"cliente"`
	Items             []ItemResponse   `json:"itens"`
} // @name OrderResponse

// CustomerSummary is the customer as embedded in an order.
type CustomerSummary struct {
	ID    int64  `json:"id"    example:"1"`
	Name  string `json:"nome"  example:"Ana Souza"`
	Email string `json:"email" example:"ana@example.com"`
	VIP   bool   `json:"vip"   example:"true"`
} // @name CustomerSummary

// ItemResponse is the JSON representation of an order line.
type ItemResponse struct {
	ID       int64       `json:"id"         example:"1"`
	Name     string      `json:"nome"       example:"Caneta azul"`
	Price    json.Number `json:"preco"      swaggertype:"number" example:"2.50"`
	Quantity int         `json:"quantidade" example:"4"`
	Stock    int         `json:"estoque"    example:"6"`
} // @name ItemResponse

func toOrderResponse(o *models.Order) OrderResponse {
	resp := OrderResponse{
		ID:                o.ID,
		Total:             money(o.Total),
		TotalWithDiscount: money(o.TotalWithDiscount),
		InStock:           o.InStock,
		Items:             make([]ItemResponse, 0, len(o.Items)),
	}
	if o.DeliveryDate != nil {
		d := o.DeliveryDate.Format(dateLayout)
		resp.DeliveryDate = &d
	}
	if c := o.Customer; c != nil {
		resp.Customer = &CustomerSummary{ID: c.ID, Name: c.Name, Email: c.Email, VIP: c.VIP}
	}
	for _, it := range o.Items {
		resp.Items = append(resp.Items, toItemResponse(it))
	}
	return resp
}

func toOrderResponses(orders []*models.Order) []OrderResponse {
	out := make([]OrderResponse, 0, len(orders))
	for _, o := range orders {
		out = append(out, toOrderResponse(o))
	}
	return out
}

func toItemResponse(it *models.Item) ItemResponse {
	return ItemResponse{
		ID:       it.ID,
		Name:     it.Name,
		Price:    json.Number(it.Price.String()),
		Quantity: it.Quantity,
		Stock:    it.Stock,
	}
}

func money(d decimal.Decimal) json.Number {
	return json.Number(d.StringFixed(2))
}
