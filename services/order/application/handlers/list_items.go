package handlers

import (
	"net/http"

	"github.com/ghuser/ordersvc/pkg/errhttp"
	"github.com/ghuser/ordersvc/pkg/httpx"
	appsvcs "github.com/ghuser/ordersvc/services/order/application/services"
)

// ListItemsHandler handles GET /itens.
type ListItemsHandler struct {
	svc *appsvcs.Services
}

func NewListItemsHandler(svc *appsvcs.Services) *ListItemsHandler {
	return &ListItemsHandler{svc: svc}
}

// Execute lists every order line.
//
//	@Summary	List items
//	@Tags		itens
//	@Produce	json
//	@Success	200	{array}		ItemResponse
//	@Failure	400	{object}	httpx.StandardError	"Nenhum item encontrado."
//	@Router		/itens [get]
func (h *ListItemsHandler) Execute(w http.ResponseWriter, r *http.Request) {
	items, err := h.svc.Item.List(r.Context())
	if err != nil {
		errhttp.WriteError(w, r, err)
		return
	}
	resp := make([]ItemResponse, len(items))
	for i, it := range items {
		resp[i] = toItemResponse(it)
	}
	httpx.JSON(w, http.StatusOK, resp)
}
