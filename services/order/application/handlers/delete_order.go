package handlers

import (
	"net/http"

	"github.com/ghuser/ordersvc/pkg/errhttp"
	"github.com/ghuser/ordersvc/pkg/httpx"
	appsvcs "github.com/ghuser/ordersvc/services/order/application/services"
)

// DeleteOrderHandler handles DELETE /pedidos/{id}.
type DeleteOrderHandler struct {
	svc *appsvcs.Services
}

func NewDeleteOrderHandler(svc *appsvcs.Services) *DeleteOrderHandler {
	return &DeleteOrderHandler{svc: svc}
}

// Execute deletes an order together with its items.
//
//	@Summary	Delete order
//	@Tags		pedidos
//	@Param		id	path	int	true	"Order ID"
//	@Success	204
//	@Failure	400	{object}	httpx.StandardError
//	@Failure	404	{object}	httpx.StandardError
//	@Router		/pedidos/{id} [delete]
func (h *DeleteOrderHandler) Execute(w http.ResponseWriter, r *http.Request) {
	id, ok := httpx.RequirePathID(w, r, "id")
	if !ok {
		return
	}
	if err := h.svc.Order.Delete(r.Context(), id); err != nil {
		errhttp.WriteError(w, r, err)
		return
	}
	httpx.NoContent(w)
}
