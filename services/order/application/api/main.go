package api

import (
	"github.com/go-chi/chi/v5"

	"github.com/ghuser/ordersvc/pkg/app"
	"github.com/ghuser/ordersvc/services/order/application/handlers"
	appsvcs "github.com/ghuser/ordersvc/services/order/application/services"
)

// OrderRoutes registers order and item endpoints on the provided chi router.
func OrderRoutes(r chi.Router, a *app.Application) {
	Mount(r, appsvcs.New(a))
}

// Mount registers the /pedidos and /itens routes backed by svcs.
func Mount(r chi.Router, svcs *appsvcs.Services) {
	r.Route("/pedidos", func(r chi.Router) {
		r.Get("/", handlers.NewListOrdersHandler(svcs).Execute)
		r.Post("/", handlers.NewPostOrderHandler(svcs).Execute)
		r.Get("/{id}", handlers.NewGetOrderHandler(svcs).Execute)
		r.Put("/{id}", handlers.NewPutOrderHandler(svcs).Execute)
		r.Delete("/{id}", handlers.NewDeleteOrderHandler(svcs).Execute)
	})
	r.Route("/itens", func(r chi.Router) {
		r.Get("/", handlers.NewListItemsHandler(svcs).Execute)
		r.Get("/{id}", handlers.NewGetItemHandler(svcs).Execute)
		r.Put("/{id}", handlers.NewPutItemHandler(svcs).Execute)
		r.Delete("/{id}", handlers.NewDeleteItemHandler(svcs).Execute)
	})
}
