package handlers

import (
	"encoding/json"
	"net/http"

	"github.com/ghuser/menuboard/pkg/errhttp"
	"github.com/ghuser/menuboard/pkg/httpx"
	pkgvalidator "github.com/ghuser/menuboard/pkg/validator"
	appsvcs "github.com/ghuser/menuboard/services/menu/application/services"
	menudomain "github.com/ghuser/menuboard/services/menu/domain"
	"github.com/ghuser/menuboard/services/menu/domain/models"
)

// UpdateMenuItemRequest is the request body for PUT /api/menu/{id}.
// Absent fields are left unchanged; any supplied value, null included,
// replaces the stored one. Category is not updatable.
type UpdateMenuItemRequest struct {
	Price     json.RawMessage `json:"price"     swaggertype:"number"  example:"105"`
	Name      json.RawMessage `json:"name"      swaggertype:"string"  example:"Mocha"`
	Available json.RawMessage `json:"available" swaggertype:"boolean" example:"false"`
} // @name UpdateMenuItemRequest

// PutMenuItemHandler handles PUT /api/menu/{id} requests.
type PutMenuItemHandler struct {
	svc *appsvcs.Services
}

// NewPutMenuItemHandler returns a PutMenuItemHandler backed by the given services.
func NewPutMenuItemHandler(svc *appsvcs.Services) *PutMenuItemHandler {
	return &PutMenuItemHandler{svc: svc}
}

// Execute partially updates a menu item.
//
//	@Summary		Update menu item
//	@Description	Overwrites the supplied fields and stamps updatedAt
//	@Tags			menu
//	@Accept			json
//	@Produce		json
//	@Param			id		path		int						true	"Item ID"
//	@Param			request	body		UpdateMenuItemRequest	false	"Fields to change"
//	@Success		200		{object}	MenuItemResponse
//	@Failure		400		{object}	ErrorResponse
//	@Failure		404		{object}	ErrorResponse
//	@Failure		500		{object}	ErrorResponse
//	@Router			/menu/{id} [put]
func (h *PutMenuItemHandler) Execute(w http.ResponseWriter, r *http.Request) {
	id, ok := itemID(r)
	if !ok {
		errhttp.WriteError(w, r, menudomain.ErrMenuItemNotFound)
		return
	}

	req, ok := pkgvalidator.ValidateRequest[UpdateMenuItemRequest](w, r)
	if !ok {
		return
	}

	item, err := h.svc.Menu.Update(r.Context(), id, models.Patch{
		Name:      req.Name,
		Price:     req.Price,
		Available: req.Available,
	})
	if err != nil {
		errhttp.WriteError(w, r, err)
		return
	}

	httpx.JSON(w, http.StatusOK, item)
}
