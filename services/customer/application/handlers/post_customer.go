package handlers

import (
	"net/http"
	"strconv"
	"strings"

	"github.com/ghuser/ordersvc/pkg/errhttp"
	"github.com/ghuser/ordersvc/pkg/httpx"
	pkgvalidator "github.com/ghuser/ordersvc/pkg/validator"
	appsvcs "github.com/ghuser/ordersvc/services/customer/application/services"
)

// PostCustomerHandler handles POST /clientes.
type PostCustomerHandler struct {
	svc *appsvcs.Services
}

func NewPostCustomerHandler(svc *appsvcs.Services) *PostCustomerHandler {
	return &PostCustomerHandler{svc: svc}
}

// Execute registers a customer.
//
//	@Summary		Create customer
//	@Description	Registers a customer. E-mail addresses are unique.
//	@Tags			clientes
//	@Accept			json
//	@Produce		json
//	@Param			request	body		CustomerRequest	true	"Customer"
//	@Success		201		{object}	CustomerResponse
//	@Header			201		{string}	Location	"/api/clientes/{id}"
//	@Failure		400		{object}	httpx.StandardError
//	@Failure		422		{object}	httpx.ValidationError
//	@Router			/clientes [post]
func (h *PostCustomerHandler) Execute(w http.ResponseWriter, r *http.Request) {
	req, ok := pkgvalidator.ValidateRequest[CustomerRequest](w, r)
	if !ok {
		return
	}
	c, err := h.svc.Customer.Create(r.Context(), req.toModel())
	if err != nil {
		errhttp.WriteError(w, r, err)
		return
	}
	httpx.Created(w, strings.TrimSuffix(r.URL.Path, "/")+"/"+strconv.FormatInt(c.ID, 10), toResponse(c))
}
