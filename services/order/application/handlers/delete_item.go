package handlers

import (
	"net/http"

	"github.com/ghuser/ordersvc/pkg/errhttp"
	"github.com/ghuser/ordersvc/pkg/httpx"
	appsvcs "github.com/ghuser/ordersvc/services/order/application/services"
)

// DeleteItemHandler handles DELETE /itens/{id}.
type DeleteItemHandler struct {
	svc *appsvcs.Services
}

func NewDeleteItemHandler(svc *appsvcs.Services) *DeleteItemHandler {
	return &DeleteItemHandler{svc: svc}
}

// Execute removes an item from its order and places the order again.
//
//	@Summary		Delete item
//	@Description	The owning order is re-run through the placement pipeline; removing its last item fails.
//	@Tags			itens
//	@Param			id	path	int	true	"Item ID"
//	@Success		204
//	@Failure		400	{object}	httpx.StandardError
//	@Failure		404	{object}	httpx.StandardError
//	@Failure		500	{object}	httpx.StandardError
//	@Router			/itens/{id} [delete]
func (h *DeleteItemHandler) Execute(w http.ResponseWriter, r *http.Request) {
	id, ok := httpx.RequirePathID(w, r, "id")
	if !ok {
		return
	}
	if err := h.svc.Item.Delete(r.Context(), id); err != nil {
		errhttp.WriteError(w, r, err)
		return
	}
	httpx.NoContent(w)
}
