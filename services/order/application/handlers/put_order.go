package handlers

import (
	"net/http"

	"github.com/ghuser/ordersvc/pkg/errhttp"
	"github.com/ghuser/ordersvc/pkg/httpx"
	pkgvalidator "github.com/ghuser/ordersvc/pkg/validator"
	appsvcs "github.com/ghuser/ordersvc/services/order/application/services"
)

// PutOrderHandler handles PUT /pedidos/{id}.
type PutOrderHandler struct {
	svc *appsvcs.Services
}

func NewPutOrderHandler(svc *appsvcs.Services) *PutOrderHandler {
	return &PutOrderHandler{svc: svc}
}

// Execute replaces an order wholesale and places it again.
//
//	@Summary	Update order
//	@Tags		pedidos
//	@Accept		json
//	@Produce	json
//	@Param		id		path		int				true	"Order ID"
//	@Param		request	body		OrderRequest	true	"Order"
//	@Success	200		{object}	OrderResponse
//	@Failure	400		{object}	httpx.StandardError
//	@Failure	404		{object}	httpx.StandardError
//	@Failure	422		{object}	httpx.ValidationError
//	@Failure	500		{object}	httpx.StandardError
//	@Router		/pedidos/{id} [put]
func (h *PutOrderHandler) Execute(w http.ResponseWriter, r *http.Request) {
	id, ok := httpx.RequirePathID(w, r, "id")
	if !ok {
		return
	}
	req, ok := pkgvalidator.ValidateRequest[OrderRequest](w, r)
	if !ok {
		return
	}
	o, err := h.svc.Order.Update(r.Context(), id, req.customerID(), req.items())
	if err != nil {
		errhttp.WriteError(w, r, err)
		return
	}
	httpx.JSON(w, http.StatusOK, toOrderResponse(o))
}
