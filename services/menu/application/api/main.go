package api

import (
	"github.com/go-chi/chi/v5"

	"github.com/ghuser/menuboard/pkg/app"
	"github.com/ghuser/menuboard/services/menu/application/handlers"
	appsvcs "github.com/ghuser/menuboard/services/menu/application/services"
)

// MenuRoutes registers the menu endpoints on a router mounted at /api.
func MenuRoutes(r chi.Router, svcs *appsvcs.Services) {
	r.Route("/menu", func(r chi.Router) {
		r.Get("/", handlers.NewListMenuHandler(svcs).Execute)
		r.Post("/", handlers.NewPostMenuItemHandler(svcs).Execute)
		r.Put("/{id}", handlers.NewPutMenuItemHandler(svcs).Execute)
		r.Delete("/{id}", handlers.NewDeleteMenuItemHandler(svcs).Execute)
	})
}

// AdminRoutes registers the admin page at the root of r.
func AdminRoutes(r chi.Router, a *app.Application) {
	r.Get("/", handlers.NewAdminPageHandler(a.Config.AdminPageMode, a.Config.AdminPagePath).Execute)
}
