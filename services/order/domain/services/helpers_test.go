package services

import (
	"context"
	"time"

	"github.com/shopspring/decimal"

	"github.com/ghuser/ordersvc/services/order/domain/models"
)

var fixedNow = func() time.Time { return time.Date(2026, 10, 19, 15, 30, 0, 0, time.UTC) }

type sentMessage struct {
	recipient, subject, body string
}

type fakeGateway struct {
	sent      []sentMessage
	err       error
	panicWith any
}

func (g *fakeGateway) Send(_ context.Context, recipient, subject, body string) error {
	if g.panicWith != nil {
		panic(g.panicWith)
	}
	if g.err != nil {
		return g.err
	}
	g.sent = append(g.sent, sentMessage{recipient, subject, body})
	return nil
}

func item(price string, qty, stock int) *models.Item {
	return models.NewItem("item", decimal.RequireFromString(price), qty, stock)
}

func customer(vip bool) *models.Customer {
	return &models.Customer{ID: 1, Name: "Ana", Email: "ana@example.com", VIP: vip}
}

func dec(s string) decimal.Decimal {
	return decimal.RequireFromString(s)
}
