package handlers

import (
	"net/http"
	"strconv"
	"strings"

	"github.com/ghuser/ordersvc/pkg/errhttp"
	"github.com/ghuser/ordersvc/pkg/httpx"
	pkgvalidator "github.com/ghuser/ordersvc/pkg/validator"
	appsvcs "github.com/ghuser/ordersvc/services/order/application/services"
)

// PostOrderHandler handles POST /pedidos.
type PostOrderHandler struct {
	svc *appsvcs.Services
}

func NewPostOrderHandler(svc *appsvcs.Services) *PostOrderHandler {
	return &PostOrderHandler{svc: svc}
}

// Execute places a new order.
//
//	@Summary		Place order
//	@Description	Computes totals and the VIP discount, checks stock, assigns the delivery date,
//	@Description	decrements stock and notifies the customer before saving the order.
//	@Tags			pedidos
//	@Accept			json
//	@Produce		json
//	@Param			request	body		OrderRequest	true	"Order"
//	@Success		201		{object}	OrderResponse
//	@Header			201		{string}	Location	"/api/pedidos/{id}"
//	@Failure		400		{object}	httpx.StandardError
//	@Failure		404		{object}	httpx.StandardError	"Unknown customer"
//	@Failure		422		{object}	httpx.ValidationError
//	@Failure		500		{object}	httpx.StandardError	"Notification failed"
//	@Router			/pedidos [post]
func (h *PostOrderHandler) Execute(w http.ResponseWriter, r *http.Request) {
	req, ok := pkgvalidator.ValidateRequest[OrderRequest](w, r)
	if !ok {
		return
	}
	o, err := h.svc.Order.Create(r.Context(), req.customerID(), req.items())
	if err != nil {
		errhttp.WriteError(w, r, err)
		return
	}
	httpx.Created(w, strings.TrimSuffix(r.URL.Path, "/")+"/"+strconv.FormatInt(o.ID, 10), toOrderResponse(o))
}
