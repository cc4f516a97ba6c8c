package api

import (
	"github.com/go-chi/chi/v5"

	"github.com/ghuser/ordersvc/pkg/app"
	"github.com/ghuser/ordersvc/services/customer/application/handlers"
	appsvcs "github.com/ghuser/ordersvc/services/customer/application/services"
)

// CustomerRoutes registers customer endpoints on the provided chi router.
func CustomerRoutes(r chi.Router, a *app.Application) {
	Mount(r, appsvcs.New(a))
}

// Mount registers the /clientes routes backed by svcs.
func Mount(r chi.Router, svcs *appsvcs.Services) {
	r.Route("/clientes", func(r chi.Router) {
		r.Get("/", handlers.NewListCustomersHandler(svcs).Execute)
		r.Post("/", handlers.NewPostCustomerHandler(svcs).Execute)
		r.Get("/{id}", handlers.NewGetCustomerHandler(svcs).Execute)
		r.Put("/{id}", handlers.NewPutCustomerHandler(svcs).Execute)
		r.Delete("/{id}", handlers.NewDeleteCustomerHandler(svcs).Execute)
	})
}
