// Package persistence selects and initializes the menu storage backend.
package persistence

import (
	"context"
	"fmt"

	"github.com/ghuser/menuboard/pkg/app"
	"github.com/ghuser/menuboard/pkg/config"
	"github.com/ghuser/menuboard/services/menu/domain/repositories"
	"github.com/ghuser/menuboard/services/menu/infrastructure/persistence/document"
	"github.com/ghuser/menuboard/services/menu/infrastructure/persistence/jsonfile"
	"github.com/ghuser/menuboard/services/menu/infrastructure/persistence/memory"
	"github.com/ghuser/menuboard/services/menu/infrastructure/persistence/postgres"
	menuredis "github.com/ghuser/menuboard/services/menu/infrastructure/persistence/redis"
)

// Open builds the repository named by a.Config.MenuBackend and seeds it when
// no menu is stored yet. The postgres backend is seeded by migrations/menu.
func Open(ctx context.Context, a *app.Application) (repositories.MenuRepository, error) {
	cfg := a.Config

	var blob document.Blob
	switch cfg.MenuBackend {
	case config.BackendFile:
		blob = jsonfile.New(cfg.MenuFile)
	case config.BackendMemory:
		blob = memory.New()
	case config.BackendRedis:
		if a.Redis == nil {
			return nil, fmt.Errorf("menu backend %q needs a redis client", cfg.MenuBackend)
		}
		blob = menuredis.New(a.Redis, cfg.MenuRedisKey)
	case config.BackendPostgres:
		if a.Db == nil {
			return nil, fmt.Errorf("menu backend %q needs a database", cfg.MenuBackend)
		}
		return postgres.NewMenuRepository(a.Db, nil), nil
	default:
		return nil, fmt.Errorf("unknown menu backend %q", cfg.MenuBackend)
	}

	repo := document.New(blob, document.WithSerializedWrites(cfg.MenuSerializeWrites))
	seeded, err := repo.Init(ctx)
	if err != nil {
		return nil, fmt.Errorf("init menu storage: %w", err)
	}
	if seeded {
		a.Logger.Info("menu storage seeded", "backend", cfg.MenuBackend)
	}
	return repo, nil
}
