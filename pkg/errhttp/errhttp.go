// Package errhttp maps domain sentinel errors to HTTP responses.
// Add a case to WriteError for each new domain sentinel error.
package errhttp

import (
	"errors"
	"net/http"

	"github.com/ghuser/menuboard/pkg/httpx"
	"github.com/ghuser/menuboard/pkg/telemetry"
	menudomain "github.com/ghuser/menuboard/services/menu/domain"
)

// NotFoundMessage is the body text clients see for a missing menu item.
const NotFoundMessage = "Item not found"

// Values of the error_kind tag on reported server errors.
const (
	KindStorageIO = "storage_io"
	KindCorrupt   = "corrupt"
	KindInternal  = "internal"
)

// WriteError maps err to an HTTP status code and writes a JSON error response.
// Uses errors.Is() so wrapped sentinel errors are matched correctly.
// Unrecognized errors become 500 with the error's message. Every 5xx is
// reported to Sentry on the request's hub.
func WriteError(w http.ResponseWriter, r *http.Request, err error) {
	status := mapErrorToStatus(err)
	msg := err.Error()
	switch {
	case status == http.StatusNotFound:
		msg = NotFoundMessage
	case status >= http.StatusInternalServerError:
		telemetry.CaptureError(r.Context(), err, errorKind(err))
	}
	httpx.JSONError(w, status, msg)
}

func mapErrorToStatus(err error) int {
	switch {
	case errors.Is(err, menudomain.ErrMenuItemNotFound):
		return http.StatusNotFound // 404
	default:
		return http.StatusInternalServerError // 500
	}
}

func errorKind(err error) string {
	switch {
	case errors.Is(err, menudomain.ErrStorageIO):
		return KindStorageIO
	case errors.Is(err, menudomain.ErrMenuCorrupt):
		return KindCorrupt
	default:
		return KindInternal
	}
}
