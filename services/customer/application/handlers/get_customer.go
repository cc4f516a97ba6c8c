package handlers

import (
	"net/http"

	"github.com/ghuser/ordersvc/pkg/errhttp"
	"github.com/ghuser/ordersvc/pkg/httpx"
	appsvcs "github.com/ghuser/ordersvc/services/customer/application/services"
)

// GetCustomerHandler handles GET /clientes/{id}.
type GetCustomerHandler struct {
	svc *appsvcs.Services
}

func NewGetCustomerHandler(svc *appsvcs.Services) *GetCustomerHandler {
	return &GetCustomerHandler{svc: svc}
}

// Execute returns one customer.
//
//	@Summary	Get customer
//	@Tags		clientes
//	@Produce	json
//	@Param		id	path		int	true	"Customer ID"
//	@Success	200	{object}	CustomerResponse
//	@Failure	400	{object}	httpx.StandardError
//	@Failure	404	{object}	httpx.StandardError
//	@Router		/clientes/{id} [get]
func (h *GetCustomerHandler) Execute(w http.ResponseWriter, r *http.Request) {
	id, ok := httpx.RequirePathID(w, r, "id")
	if !ok {
		return
	}
	c, err := h.svc.Customer.Get(r.Context(), id)
	if err != nil {
		errhttp.WriteError(w, r, err)
		return
	}
	httpx.JSON(w, http.StatusOK, toResponse(c))
}
