package handlers

import (
	"net/http"

	"github.com/ghuser/ordersvc/pkg/errhttp"
	"github.com/ghuser/ordersvc/pkg/httpx"
	appsvcs "github.com/ghuser/ordersvc/services/order/application/services"
)

// ListOrdersHandler handles GET /pedidos.
type ListOrdersHandler struct {
	svc *appsvcs.Services
}

func NewListOrdersHandler(svc *appsvcs.Services) *ListOrdersHandler {
	return &ListOrdersHandler{svc: svc}
}

// Execute lists every order with its customer and items.
//
//	@Summary	List orders
//	@Tags		pedidos
//	@Produce	json
//	@Success	200	{array}		OrderResponse
//	@Failure	400	{object}	httpx.StandardError	"Nenhum pedido encontrado."
//	@Router		/pedidos [get]
func (h *ListOrdersHandler) Execute(w http.ResponseWriter, r *http.Request) {
	orders, err := h.svc.Order.List(r.Context())
	if err != nil {
		errhttp.WriteError(w, r, err)
		return
	}
	httpx.JSON(w, http.StatusOK, toOrderResponses(orders))
}
