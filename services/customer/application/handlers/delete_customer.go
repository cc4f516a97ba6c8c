package handlers

import (
	"net/http"

	"github.com/ghuser/ordersvc/pkg/errhttp"
	"github.com/ghuser/ordersvc/pkg/httpx"
	appsvcs "github.com/ghuser/ordersvc/services/customer/application/services"
)

// DeleteCustomerHandler handles DELETE /clientes/{id}.
type DeleteCustomerHandler struct {
	svc *appsvcs.Services
}

func NewDeleteCustomerHandler(svc *appsvcs.Services) *DeleteCustomerHandler {
	return &DeleteCustomerHandler{svc: svc}
}

// Execute deletes a customer that no order references.
//
//	@Summary	Delete customer
//	@Tags		clientes
//	@Param		id	path	int	true	"Customer ID"
//	@Success	204
//	@Failure	400	{object}	httpx.StandardError	"Referenced by orders"
//	@Failure	404	{object}	httpx.StandardError
//	@Router		/clientes/{id} [delete]
func (h *DeleteCustomerHandler) Execute(w http.ResponseWriter, r *http.Request) {
	id, ok := httpx.RequirePathID(w, r, "id")
	if !ok {
		return
	}
	if err := h.svc.Customer.Delete(r.Context(), id); err != nil {
		errhttp.WriteError(w, r, err)
		return
	}
	httpx.NoContent(w)
}
