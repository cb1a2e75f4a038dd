package handlers

import (
	"net/http"

	"github.com/ghuser/menuboard/pkg/config"
	"github.com/ghuser/menuboard/pkg/httpx"
	"github.com/ghuser/menuboard/services/menu/application/web"
)

// AdminPageHandler serves the admin UI at "/", either from the embedded page
// or from a file on disk.
type AdminPageHandler struct {
	mode string
	path string
}

// NewAdminPageHandler returns a handler for the given ADMIN_PAGE_MODE and ADMIN_PAGE_PATH.
func NewAdminPageHandler(mode, path string) *AdminPageHandler {
	return &AdminPageHandler{mode: mode, path: path}
}

// Execute writes the admin page.
func (h *AdminPageHandler) Execute(w http.ResponseWriter, r *http.Request) {
	if h.mode == config.PageStatic {
		http.ServeFile(w, r, h.path)
		return
	}
	httpx.HTML(w, web.AdminPage)
}
