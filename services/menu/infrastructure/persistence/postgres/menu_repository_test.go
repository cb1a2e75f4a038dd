package postgres

import (
	"context"
	"database/sql"
	"encoding/json"
	"errors"
	"os"
	"testing"
	"time"

	"github.com/ghuser/menuboard/pkg/database"
	"github.com/ghuser/menuboard/pkg/logger"
	"github.com/ghuser/menuboard/pkg/migrator"
	menudomain "github.com/ghuser/menuboard/services/menu/domain"
	"github.com/ghuser/menuboard/services/menu/domain/models"
	"github.com/ghuser/menuboard/services/menu/infrastructure/persistence/postgres/db"
)

func TestRowToMenuItem(t *testing.T) {
	created := time.Date(2025, 1, 15, 12, 0, 0, 123456789, time.FixedZone("MSK", 3*3600))

	t.Run("null columns stay absent", func(t *testing.T) {
		item, err := rowToMenuItem(db.MenuItem{ID: 9, Category: []byte(`"other"`), Available: []byte(`true`)})
		if err != nil {
			t.Fatalf("rowToMenuItem: %v", err)
		}
		if item.Name != nil || item.Price != nil || item.CreatedAt != nil || item.UpdatedAt != nil || item.Extra != nil {
			t.Fatalf("expected nil optional fields, got %+v", item)
		}
	})

	t.Run("values are mapped as stored", func(t *testing.T) {
		item, err := rowToMenuItem(db.MenuItem{
			ID:        9,
			Name:      []byte(`null`),
			Price:     []byte(`"99"`),
			Category:  []byte(`"coffee"`),
			Available: []byte(`false`),
			CreatedAt: sql.NullTime{Time: created, Valid: true},
			Extra:     []byte(`{"image": "mocha.png"}`),
		})
		if err != nil {
			t.Fatalf("rowToMenuItem: %v", err)
		}
		if string(item.Name) != "null" || string(item.Price) != `"99"` || string(item.Category) != `"coffee"` || string(item.Available) != "false" {
			t.Fatalf("unexpected item %+v", item)
		}
		if string(item.Extra["image"]) != `"mocha.png"` {
			t.Fatalf("extra not mapped: %v", item.Extra)
		}
		if item.CreatedAt.Location() != time.UTC || item.CreatedAt.Nanosecond() != 123000000 {
			t.Fatalf("createdAt not normalized: %v", item.CreatedAt)
		}
	})

	t.Run("corrupt extra", func(t *testing.T) {
		_, err := rowToMenuItem(db.MenuItem{ID: 9, Extra: []byte(`[1]`)})
		if !errors.Is(err, menudomain.ErrMenuCorrupt) {
			t.Fatalf("expected ErrMenuCorrupt, got %v", err)
		}
	})
}

func TestNullHelpers(t *testing.T) {
	if nullJSON(nil).Valid || nullTime(nil).Valid {
		t.Fatal("nil values must map to NULL")
	}
	if v := nullJSON(models.Null()); !v.Valid || v.String != "null" {
		t.Fatalf("JSON null must be stored as a value, got %+v", v)
	}
	if v, err := extraJSON(nil); err != nil || v.Valid {
		t.Fatalf("empty extra must map to NULL, got %+v %v", v, err)
	}
	v, err := extraJSON(map[string]json.RawMessage{"image": models.String("tea.png")})
	if err != nil || v.String != `{"image":"tea.png"}` {
		t.Fatalf("unexpected extra %+v %v", v, err)
	}
}

// Integration tests, skipped unless DATABASE_URL is set.
func TestMenuRepositoryIntegration(t *testing.T) {
	url := os.Getenv("DATABASE_URL")
	if url == "" {
		t.Skip("DATABASE_URL not set; skipping integration tests")
	}
	ctx := context.Background()

	if err := migrator.RunMigrations(url, os.DirFS("../../../../../migrations/menu")); err != nil {
		t.Fatalf("RunMigrations: %v", err)
	}
	pool, err := database.NewPool(ctx, url, logger.Nop())
	if err != nil {
		t.Fatalf("NewPool: %v", err)
	}
	defer pool.Close() //nolint:errcheck

	repo := NewMenuRepository(pool, nil)

	t.Run("List_ContainsSeed", func(t *testing.T) {
		items, err := repo.List(ctx)
		if err != nil {
			t.Fatalf("List: %v", err)
		}
		if models.IndexOf(items, 1) == -1 {
			t.Fatalf("expected seed row 1, got %+v", items)
		}
	})

	t.Run("CreateUpdateDelete", func(t *testing.T) {
		item, err := repo.Create(ctx, models.Draft{Name: models.String("Mocha"), Price: models.String("99")})
		if err != nil {
			t.Fatalf("Create: %v", err)
		}
		t.Cleanup(func() { _ = repo.Delete(context.Background(), item.ID) })
		if string(item.Category) != `"other"` || string(item.Available) != "true" || string(item.Price) != `"99"` {
			t.Fatalf("unexpected defaults: %+v", item)
		}

		updated, err := repo.Update(ctx, item.ID, models.Patch{Name: models.Null(), Available: models.Bool(false)})
		if err != nil {
			t.Fatalf("Update: %v", err)
		}
		if string(updated.Available) != "false" || string(updated.Name) != "null" || updated.UpdatedAt == nil {
			t.Fatalf("unexpected update result: %+v", updated)
		}

		items, _ := repo.List(ctx)
		if items[len(items)-1].ID != item.ID {
			t.Fatal("new item must be listed last")
		}

		if err := repo.Delete(ctx, item.ID); err != nil {
			t.Fatalf("Delete: %v", err)
		}
		if err := repo.Delete(ctx, item.ID); err != nil {
			t.Fatalf("second Delete: %v", err)
		}
	})

	t.Run("Update_NotFound", func(t *testing.T) {
		_, err := repo.Update(ctx, -42, models.Patch{})
		if !errors.Is(err, menudomain.ErrMenuItemNotFound) {
			t.Fatalf("expected ErrMenuItemNotFound, got %v", err)
		}
	})
}
