package handlers

import (
	"net/http"

	"github.com/ghuser/ordersvc/pkg/errhttp"
	"github.com/ghuser/ordersvc/pkg/httpx"
	pkgvalidator "github.com/ghuser/ordersvc/pkg/validator"
	appsvcs "github.com/ghuser/ordersvc/services/order/application/services"
)

// PutItemHandler handles PUT /itens/{id}.
type PutItemHandler struct {
	svc *appsvcs.Services
}

func NewPutItemHandler(svc *appsvcs.Services) *PutItemHandler {
	return &PutItemHandler{svc: svc}
}

// Execute renames an item. Price, quantity and stock are not editable here.
//
//	@Summary	Rename item
//	@Tags		itens
//	@Accept		json
//	@Produce	json
//	@Param		id		path		int				true	"Item ID"
//	@Param		request	body		ItemNameRequest	true	"New name"
//	@Success	200		{object}	ItemResponse
//	@Failure	400		{object}	httpx.StandardError
//	@Failure	404		{object}	httpx.StandardError
//	@Failure	422		{object}	httpx.ValidationError
//	@Router		/itens/{id} [put]
func (h *PutItemHandler) Execute(w http.ResponseWriter, r *http.Request) {
	id, ok := httpx.RequirePathID(w, r, "id")
	if !ok {
		return
	}
	req, ok := pkgvalidator.ValidateRequest[ItemNameRequest](w, r)
	if !ok {
		return
	}
	it, err := h.svc.Item.Rename(r.Context(), id, req.Name)
	if err != nil {
		errhttp.WriteError(w, r, err)
		return
	}
	httpx.JSON(w, http.StatusOK, toItemResponse(it))
}
