package handlers

import (
	"net/http"

	"github.com/ghuser/menuboard/pkg/errhttp"
	"github.com/ghuser/menuboard/pkg/httpx"
	appsvcs "github.com/ghuser/menuboard/services/menu/application/services"
)

// ListMenuHandler handles GET /api/menu requests.
type ListMenuHandler struct {
	svc *appsvcs.Services
}

// NewListMenuHandler returns a ListMenuHandler backed by the given services.
func NewListMenuHandler(svc *appsvcs.Services) *ListMenuHandler {
	return &ListMenuHandler{svc: svc}
}

// Execute returns the whole menu.
//
//	@Summary		List menu
//	@Description	Returns every menu item in stored order
//	@Tags			menu
//	@Produce		json
//	@Success		200	{array}		MenuItemResponse
//	@Failure		500	{object}	ErrorResponse
//	@Router			/menu [get]
func (h *ListMenuHandler) Execute(w http.ResponseWriter, r *http.Request) {
	items, err := h.svc.Menu.List(r.Context())
	if err != nil {
		errhttp.WriteError(w, r, err)
		return
	}

	httpx.JSON(w, http.StatusOK, items)
}
