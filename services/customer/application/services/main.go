package services

import (
	"github.com/ghuser/ordersvc/pkg/app"
	"github.com/ghuser/ordersvc/pkg/cache"
	"github.com/ghuser/ordersvc/services/customer/infrastructure/persistence/postgres"
)

// Services is the application-layer service container for this bounded context.
type Services struct {
	Customer *CustomerService
}

// New wires the customer services with infrastructure from the Application container.
func New(a *app.Application) *Services {
	opts := []Option{WithLogger(a.Logger)}
	if a.Redis != nil {
		opts = append(opts, WithOrderCache(cache.NewOrderCache(a.Redis, a.Config.OrderCacheTTL)))
	}
	return &Services{
		Customer: NewCustomerService(postgres.NewCustomerRepository(a.Db), opts...),
	}
}
