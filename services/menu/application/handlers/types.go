package handlers

import (
	"math"
	"net/http"
	"strconv"
	"strings"

	"github.com/go-chi/chi/v5"
)

// MenuItemResponse documents one menu entry as returned by the API.
// Handlers write models.MenuItem directly: name, price, category and available
// hold whatever JSON the client stored, absent keys are omitted and any other
// stored keys are returned as well.
type MenuItemResponse struct {
	ID        int64  `json:"id"                  example:"1736942400000"`
	Name      any    `json:"name,omitempty"      swaggertype:"string"  example:"Mocha"`
	Price     any    `json:"price,omitempty"     swaggertype:"number"  example:"99"`
	Category  any    `json:"category"            swaggertype:"string"  example:"coffee"`
	Available any    `json:"available"           swaggertype:"boolean" example:"true"`
	CreatedAt string `json:"createdAt,omitempty" example:"2025-01-15T12:00:00.000Z"`
	UpdatedAt string `json:"updatedAt,omitempty" example:"2025-01-15T12:30:00.000Z"`
} // @name MenuItemResponse

// MessageResponse is returned by DELETE.
type MessageResponse struct {
	Message string `json:"message" example:"Item deleted"`
} // @name MessageResponse

// ErrorResponse is returned on all error responses.
type ErrorResponse struct {
	Error string `json:"error" example:"Item not found"`
} // @name ErrorResponse

// itemID parses the {id} path parameter as a number. Integral spellings such
// as "1.0" match id 1; anything else can never match a stored item.
func itemID(r *http.Request) (int64, bool) {
	raw := strings.TrimSpace(chi.URLParam(r, "id"))
	if id, err := strconv.ParseInt(raw, 10, 64); err == nil {
		return id, true
	}
	f, err := strconv.ParseFloat(raw, 64)
	if err != nil || math.IsInf(f, 0) || math.IsNaN(f) || f != math.Trunc(f) ||
		f < math.MinInt64 || f >= math.MaxInt64 {
		return 0, false
	}
	return int64(f), true
}
