package services

import (
	"github.com/ghuser/ordersvc/pkg/app"
	"github.com/ghuser/ordersvc/pkg/cache"
	"github.com/ghuser/ordersvc/pkg/mailer"
	customerpg "github.com/ghuser/ordersvc/services/customer/infrastructure/persistence/postgres"
	domainsvcs "github.com/ghuser/ordersvc/services/order/domain/services"
	"github.com/ghuser/ordersvc/services/order/infrastructure/persistence/postgres"
)

// Services is the application-layer service container for this bounded context.
// It wires domain services with their infrastructure implementations.
type Services struct {
	Order *OrderService
	Item  *ItemService
}

// New wires the order and item services with infrastructure from the Application container.
// The Redis read model is only used when a.Redis is set.
func New(a *app.Application) *Services {
	orders := postgres.NewOrderRepository(a.Db, a.EventBus)
	items := postgres.NewItemRepository(a.Db)
	customers := customerpg.NewCustomerRepository(a.Db)

	var gateway domainsvcs.NotificationGateway = a.Mailer
	if gateway == nil {
		gateway = mailer.NewLogSender(a.Logger)
	}
	processor := domainsvcs.NewOrderProcessor(gateway, domainsvcs.WithDeliveryDays(a.Config.DeliveryDays))

	opts := []Option{WithLogger(a.Logger)}
	if a.Redis != nil {
		opts = append(opts, WithReadModel(cache.NewOrderCache(a.Redis, a.Config.OrderCacheTTL)))
	}

	orderSvc := NewOrderService(orders, customers, processor, opts...)
	return &Services{
		Order: orderSvc,
		Item:  NewItemService(items, orders, orderSvc),
	}
}
