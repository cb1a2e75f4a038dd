package handlers

import (
	"net/http"

	"github.com/ghuser/menuboard/pkg/errhttp"
	"github.com/ghuser/menuboard/pkg/httpx"
	appsvcs "github.com/ghuser/menuboard/services/menu/application/services"
)

// DeletedMessage is the body text of every successful delete.
const DeletedMessage = "Item deleted"

// DeleteMenuItemHandler handles DELETE /api/menu/{id} requests.
type DeleteMenuItemHandler struct {
	svc *appsvcs.Services
}

// NewDeleteMenuItemHandler returns a DeleteMenuItemHandler backed by the given services.
func NewDeleteMenuItemHandler(svc *appsvcs.Services) *DeleteMenuItemHandler {
	return &DeleteMenuItemHandler{svc: svc}
}

// Execute removes a menu item. Deleting an unknown id still succeeds.
//
//	@Summary		Delete menu item
//	@Description	Removes the item if present; the response is the same either way
//	@Tags			menu
//	@Produce		json
//	@Param			id	path		int	true	"Item ID"
//	@Success		200	{object}	MessageResponse
//	@Failure		500	{object}	ErrorResponse
//	@Router			/menu/{id} [delete]
func (h *DeleteMenuItemHandler) Execute(w http.ResponseWriter, r *http.Request) {
	if id, ok := itemID(r); ok {
		if err := h.svc.Menu.Delete(r.Context(), id); err != nil {
			errhttp.WriteError(w, r, err)
			return
		}
	}

	httpx.JSONMessage(w, http.StatusOK, DeletedMessage)
}
