package handlers

import (
	"net/http"

	"github.com/ghuser/ordersvc/pkg/errhttp"
	"github.com/ghuser/ordersvc/pkg/httpx"
	appsvcs "github.com/ghuser/ordersvc/services/customer/application/services"
)

// ListCustomersHandler handles GET /clientes.
type ListCustomersHandler struct {
	svc *appsvcs.Services
}

func NewListCustomersHandler(svc *appsvcs.Services) *ListCustomersHandler {
	return &ListCustomersHandler{svc: svc}
}

// Execute lists every customer.
//
//	@Summary		List customers
//	@Description	Returns every registered customer
//	@Tags			clientes
//	@Produce		json
//	@Success		200	{array}		CustomerResponse
//	@Failure		400	{object}	httpx.StandardError	"Nenhum cliente encontrado."
//	@Router			/clientes [get]
func (h *ListCustomersHandler) Execute(w http.ResponseWriter, r *http.Request) {
	customers, err := h.svc.Customer.List(r.Context())
	if err != nil {
		errhttp.WriteError(w, r, err)
		return
	}
	resp := make([]CustomerResponse, len(customers))
	for i, c := range customers {
		resp[i] = toResponse(c)
	}
	httpx.JSON(w, http.StatusOK, resp)
}
