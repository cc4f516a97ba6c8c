package handlers

import (
	"net/http"

	"github.com/ghuser/ordersvc/pkg/errhttp"
	"github.com/ghuser/ordersvc/pkg/httpx"
	appsvcs "github.com/ghuser/ordersvc/services/order/application/services"
)

// GetOrderHandler handles GET /pedidos/{id}.
type GetOrderHandler struct {
	svc *appsvcs.Services
}

func NewGetOrderHandler(svc *appsvcs.Services) *GetOrderHandler {
	return &GetOrderHandler{svc: svc}
}

// Execute returns one order, from the read model when it is cached.
//
//	@Summary	Get order
//	@Tags		pedidos
//	@Produce	json
//	@Param		id	path		int	true	"Order ID"
//	@Success	200	{object}	OrderResponse
//	@Failure	400	{object}	httpx.StandardError
//	@Failure	404	{object}	httpx.StandardError
//	@Router		/pedidos/{id} [get]
func (h *GetOrderHandler) Execute(w http.ResponseWriter, r *http.Request) {
	id, ok := httpx.RequirePathID(w, r, "id")
	if !ok {
		return
	}
	o, err := h.svc.Order.GetByID(r.Context(), id)
	if err != nil {
		errhttp.WriteError(w, r, err)
		return
	}
	httpx.JSON(w, http.StatusOK, toOrderResponse(o))
}
