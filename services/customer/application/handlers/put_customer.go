package handlers

import (
	"net/http"

	"github.com/ghuser/ordersvc/pkg/errhttp"
	"github.com/ghuser/ordersvc/pkg/httpx"
	pkgvalidator "github.com/ghuser/ordersvc/pkg/validator"
	appsvcs "github.com/ghuser/ordersvc/services/customer/application/services"
)

// PutCustomerHandler handles PUT /clientes/{id}.
type PutCustomerHandler struct {
	svc *appsvcs.Services
}

func NewPutCustomerHandler(svc *appsvcs.Services) *PutCustomerHandler {
	return &PutCustomerHandler{svc: svc}
}

// Execute overwrites name, e-mail and VIP flag.
//
//	@Summary	Update customer
//	@Tags		clientes
//	@Accept		json
//	@Produce	json
//	@Param		id		path		int				true	"Customer ID"
//	@Param		request	body		CustomerRequest	true	"Customer"
//	@Success	200		{object}	CustomerResponse
//	@Failure	400		{object}	httpx.StandardError
//	@Failure	404		{object}	httpx.StandardError
//	@Failure	422		{object}	httpx.ValidationError
//	@Router		/clientes/{id} [put]
func (h *PutCustomerHandler) Execute(w http.ResponseWriter, r *http.Request) {
	id, ok := httpx.RequirePathID(w, r, "id")
	if !ok {
		return
	}
	req, ok := pkgvalidator.ValidateRequest[CustomerRequest](w, r)
	if !ok {
		return
	}
	c, err := h.svc.Customer.Update(r.Context(), id, req.toModel())
	if err != nil {
		errhttp.WriteError(w, r, err)
		return
	}
	httpx.JSON(w, http.StatusOK, toResponse(c))
}
