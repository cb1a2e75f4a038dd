package handlers

import (
	"encoding/json"
	"net/http"

	"github.com/ghuser/menuboard/pkg/errhttp"
	"github.com/ghuser/menuboard/pkg/httpx"
	pkgvalidator "github.com/ghuser/menuboard/pkg/validator"
	appsvcs "github.com/ghuser/menuboard/services/menu/application/services"
	"github.com/ghuser/menuboard/services/menu/domain/models"
)

// CreateMenuItemRequest is the request body for POST /api/menu.
// Every field is optional and accepts any JSON value, stored as sent.
// Missing name and price stay absent; a falsy category becomes "other".
type CreateMenuItemRequest struct {
	Name     json.RawMessage `json:"name"     swaggertype:"string" example:"Mocha"`
	Price    json.RawMessage `json:"price"    swaggertype:"number" example:"99"`
	Category json.RawMessage `json:"category" swaggertype:"string" example:"coffee"`
} // @name CreateMenuItemRequest

// PostMenuItemHandler handles POST /api/menu requests.
type PostMenuItemHandler struct {
	svc *appsvcs.Services
}

// NewPostMenuItemHandler returns a PostMenuItemHandler backed by the given services.
func NewPostMenuItemHandler(svc *appsvcs.Services) *PostMenuItemHandler {
	return &PostMenuItemHandler{svc: svc}
}

// Execute creates a new menu item.
//
//	@Summary		Create menu item
//	@Description	Appends an item; category defaults to "other" and the item starts available
//	@Tags			menu
//	@Accept			json
//	@Produce		json
//	@Param			request	body		CreateMenuItemRequest	false	"Item to create"
//	@Success		201		{object}	MenuItemResponse
//	@Failure		400		{object}	ErrorResponse
//	@Failure		500		{object}	ErrorResponse
//	@Router			/menu [post]
func (h *PostMenuItemHandler) Execute(w http.ResponseWriter, r *http.Request) {
	req, ok := pkgvalidator.ValidateRequest[CreateMenuItemRequest](w, r)
	if !ok {
		return
	}

	item, err := h.svc.Menu.Create(r.Context(), models.Draft{
		Name:     req.Name,
		Price:    req.Price,
		Category: req.Category,
	})
	if err != nil {
		errhttp.WriteError(w, r, err)
		return
	}

	httpx.JSON(w, http.StatusCreated, item)
}
