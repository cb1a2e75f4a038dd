package services

import (
	"github.com/ghuser/menuboard/pkg/app"
	"github.com/ghuser/menuboard/services/menu/domain/repositories"
)

// Services is the application-layer service container for this bounded context.
// It wires domain services with their infrastructure implementations.
type Services struct {
	Menu *MenuService
}

// New wires the menu application services around repo and the shared event bus.
func New(a *app.Application, repo repositories.MenuRepository) *Services {
	var bus EventPublisher
	if a.EventBus != nil {
		bus = a.EventBus
	}
	return &Services{
		Menu: NewMenuService(repo, bus, a.Logger),
	}
}
