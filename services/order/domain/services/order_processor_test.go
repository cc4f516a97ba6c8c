package services

import (
	"context"
	"errors"
	"testing"

	"github.com/ghuser/ordersvc/pkg/domainerr"
	orderdomain "github.com/ghuser/ordersvc/services/order/domain"
	"github.com/ghuser/ordersvc/services/order/domain/models"
)

func newProcessor(gw NotificationGateway, opts ...ProcessorOption) *OrderProcessor {
	return NewOrderProcessor(gw, append([]ProcessorOption{WithClock(fixedNow)}, opts...)...)
}

func TestProcess_Success(t *testing.T) {
	gw := &fakeGateway{}
	a, b := item("50", 2, 10), item("30", 1, 1)
	o := models.NewOrder(customer(true), []*models.Item{a, b})

	if err := newProcessor(gw).Process(context.Background(), o); err != nil {
		t.Fatalf("Process: %v", err)
	}

	if o.Total.StringFixed(2) != "130.00" {
		t.Errorf("Total = %s", o.Total.StringFixed(2))
	}
	if o.TotalWithDiscount.StringFixed(2) != "117.00" {
		t.Errorf("TotalWithDiscount = %s", o.TotalWithDiscount.StringFixed(2))
	}
	if !o.InStock {
		t.Error("expected InStock")
	}
	want := models.Date(fixedNow()).AddDate(0, 0, 3)
	if o.DeliveryDate == nil || !o.DeliveryDate.Equal(want) {
		t.Errorf("DeliveryDate = %v, want %v", o.DeliveryDate, want)
	}
	if a.Stock != 8 || b.Stock != 0 {
		t.Errorf("stock not decremented by quantity: a=%d b=%d", a.Stock, b.Stock)
	}
	if len(gw.sent) != 1 {
		t.Fatalf("expected exactly one notification, got %d", len(gw.sent))
	}
	msg := gw.sent[0]
	if msg.recipient != "ana@example.com" || msg.subject != "Pedido enviado" ||
		msg.body != "Pedido enviado! Seu pedido será entregue em breve." {
		t.Errorf("unexpected notification: %+v", msg)
	}
}

func TestProcess_InsufficientStock(t *testing.T) {
	gw := &fakeGateway{}
	a, b := item("10", 1, 5), item("10", 6, 5)
	o := models.NewOrder(customer(false), []*models.Item{a, b})

	err := newProcessor(gw).Process(context.Background(), o)
	if !errors.Is(err, domainerr.ErrInsufficientStock) {
		t.Fatalf("expected insufficient stock, got %v", err)
	}
	if err.Error() != "Estoque insuficiente para os itens do pedido!" {
		t.Errorf("message: %q", err.Error())
	}
	if o.DeliveryDate != nil {
		t.Error("delivery date must stay unset")
	}
	if o.InStock {
		t.Error("InStock must stay false")
	}
	if a.Stock != 5 || b.Stock != 5 {
		t.Errorf("stock changed: a=%d b=%d", a.Stock, b.Stock)
	}
	if len(gw.sent) != 0 {
		t.Errorf("expected no notification, got %d", len(gw.sent))
	}
	if o.Total.StringFixed(2) != "70.00" {
		t.Errorf("totals from earlier steps must be kept, Total = %s", o.Total)
	}
}

func TestProcess_ValidationFailureStopsBeforeStock(t *testing.T) {
	gw := &fakeGateway{}
	it := item("0", 1, 5)
	o := models.NewOrder(customer(false), []*models.Item{it})

	err := newProcessor(gw).Process(context.Background(), o)
	if !errors.Is(err, orderdomain.ErrInvalidPrice) {
		t.Fatalf("expected invalid price, got %v", err)
	}
	if it.Stock != 5 {
		t.Errorf("stock decremented despite validation failure: %d", it.Stock)
	}
	if len(gw.sent) != 0 {
		t.Error("notification sent despite validation failure")
	}
	if !o.InStock || o.DeliveryDate == nil {
		t.Error("steps before validation must stay applied")
	}
}

func TestProcess_EmptyOrderFailsValidation(t *testing.T) {
	o := models.NewOrder(customer(false), nil)
	err := newProcessor(&fakeGateway{}).Process(context.Background(), o)
	if !errors.Is(err, orderdomain.ErrNoItems) {
		t.Fatalf("expected ErrNoItems, got %v", err)
	}
}

func TestProcess_NilOrder(t *testing.T) {
	err := newProcessor(&fakeGateway{}).Process(context.Background(), nil)
	if !errors.Is(err, orderdomain.ErrNilOrder) {
		t.Fatalf("expected ErrNilOrder, got %v", err)
	}
}

func TestProcess_NotificationFailure(t *testing.T) {
	tests := []struct {
		name string
		gw   *fakeGateway
	}{
		{"gateway error", &fakeGateway{err: errors.New("smtp: 421 service not available")}},
		{"gateway panic", &fakeGateway{panicWith: "nil map write"}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			it := item("25", 2, 4)
			o := models.NewOrder(customer(false), []*models.Item{it})

			err := newProcessor(tt.gw).Process(context.Background(), o)
			if !errors.Is(err, domainerr.ErrNotification) {
				t.Fatalf("expected notification error, got %v", err)
			}
			var de *domainerr.Error
			if !errors.As(err, &de) {
				t.Fatalf("expected *domainerr.Error, got %T", err)
			}
			if tt.gw.err != nil && !errors.Is(err, tt.gw.err) {
				t.Error("gateway error must stay reachable as the cause")
			}
			if o.Total.StringFixed(2) != "50.00" || it.Stock != 2 || !o.InStock {
				t.Errorf("earlier mutations were undone: total=%s stock=%d inStock=%v", o.Total, it.Stock, o.InStock)
			}
		})
	}
}

func TestProcess_DeliveryDaysOption(t *testing.T) {
	o := models.NewOrder(customer(false), []*models.Item{item("1", 1, 1)})
	if err := newProcessor(&fakeGateway{}, WithDeliveryDays(7)).Process(context.Background(), o); err != nil {
		t.Fatalf("Process: %v", err)
	}
	want := models.Date(fixedNow()).AddDate(0, 0, 7)
	if !o.DeliveryDate.Equal(want) {
		t.Errorf("DeliveryDate = %v, want %v", o.DeliveryDate, want)
	}
}

func TestProcess_OverwritesStaleUpdateFields(t *testing.T) {
	stale := dayOffset(-10)
	o := models.NewOrder(customer(false), []*models.Item{item("5", 1, 1)})
	o.Total = dec("999")
	o.DeliveryDate = stale

	if err := newProcessor(&fakeGateway{}).Process(context.Background(), o); err != nil {
		t.Fatalf("Process: %v", err)
	}
	if o.Total.StringFixed(2) != "5.00" {
		t.Errorf("Total = %s, want recomputed 5.00", o.Total)
	}
	if o.DeliveryDate.Equal(*stale) {
		t.Error("stale delivery date was kept")
	}
}

func TestProcess_CustomPriceCalculatorAndStockChecker(t *testing.T) {
	t.Run("price calculator", func(t *testing.T) {
		flat := func(o *models.Order) {
			o.Total = dec("99.00")
			o.TotalWithDiscount = dec("90.00")
		}
		o := models.NewOrder(customer(false), []*models.Item{item("10", 1, 5)})

		if err := newProcessor(&fakeGateway{}, WithPriceCalculator(flat)).Process(context.Background(), o); err != nil {
			t.Fatalf("Process: %v", err)
		}
		if o.Total.StringFixed(2) != "99.00" || o.TotalWithDiscount.StringFixed(2) != "90.00" {
			t.Errorf("totals = %s / %s", o.Total.StringFixed(2), o.TotalWithDiscount.StringFixed(2))
		}
	})

	t.Run("stock checker", func(t *testing.T) {
		gw := &fakeGateway{}
		o := models.NewOrder(customer(false), []*models.Item{item("10", 1, 5)})
		reserved := func(*models.Order) bool { return false }

		err := newProcessor(gw, WithStockChecker(reserved)).Process(context.Background(), o)
		if !errors.Is(err, domainerr.ErrInsufficientStock) {
			t.Fatalf("expected insufficient stock, got %v", err)
		}
		if len(gw.sent) != 0 || o.Items[0].Stock != 5 {
			t.Error("pipeline continued past the stock check")
		}
	})
}
