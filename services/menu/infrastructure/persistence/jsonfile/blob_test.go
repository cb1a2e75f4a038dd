package jsonfile_test

import (
	"context"
	"errors"
	"os"
	"path/filepath"
	"strings"
	"testing"
	"time"

	menudomain "github.com/ghuser/menuboard/services/menu/domain"
	"github.com/ghuser/menuboard/services/menu/domain/models"
	"github.com/ghuser/menuboard/services/menu/infrastructure/persistence/document"
	"github.com/ghuser/menuboard/services/menu/infrastructure/persistence/jsonfile"
)

func newFileRepo(t *testing.T) (*document.Repository, string) {
	t.Helper()
	path := filepath.Join(t.TempDir(), "data", "menu.json")
	repo := document.New(jsonfile.New(path), document.WithClock(func() time.Time {
		return time.Date(2025, 1, 15, 12, 0, 0, 0, time.UTC)
	}))
	if _, err := repo.Init(context.Background()); err != nil {
		t.Fatalf("Init: %v", err)
	}
	return repo, path
}

func readFile(t *testing.T, path string) string {
	t.Helper()
	data, err := os.ReadFile(path)
	if err != nil {
		t.Fatalf("read %s: %v", path, err)
	}
	return string(data)
}

func TestInit_WritesPrettySeedFile(t *testing.T) {
	_, path := newFileRepo(t)
	content := readFile(t, path)

	if !strings.HasPrefix(content, "[\n  {\n    \"id\": 1,") {
		t.Fatalf("expected 2-space indented array, got:\n%s", content)
	}
	for _, name := range []string{"Cappuccino", "Latte", "Espresso", "Tea", "Dessert"} {
		if !strings.Contains(content, `"name": "`+name+`"`) {
			t.Errorf("seed file missing %s", name)
		}
	}
}

func TestInit_KeepsExistingFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "menu.json")
	existing := `[{"id":7,"name":"Kvass","category":"other","available":true}]`
	if err := os.WriteFile(path, []byte(existing), 0o644); err != nil {
		t.Fatal(err)
	}
	repo := document.New(jsonfile.New(path))
	seeded, err := repo.Init(context.Background())
	if err != nil || seeded {
		t.Fatalf("expected existing file kept: seeded=%v err=%v", seeded, err)
	}
	items, err := repo.List(context.Background())
	if err != nil || len(items) != 1 || string(items[0].Name) != `"Kvass"` {
		t.Fatalf("unexpected items %+v (err %v)", items, err)
	}
}

func TestUpdate_MissingIDLeavesFileBytes(t *testing.T) {
	repo, path := newFileRepo(t)
	before := readFile(t, path)

	_, err := repo.Update(context.Background(), 424242, models.Patch{Price: models.Number(1)})
	if !errors.Is(err, menudomain.ErrMenuItemNotFound) {
		t.Fatalf("expected ErrMenuItemNotFound, got %v", err)
	}
	if after := readFile(t, path); after != before {
		t.Fatal("file bytes changed on failed update")
	}
}

func TestDelete_IdempotentFile(t *testing.T) {
	repo, path := newFileRepo(t)
	ctx := context.Background()

	if err := repo.Delete(ctx, 5); err != nil {
		t.Fatalf("Delete: %v", err)
	}
	first := readFile(t, path)
	if err := repo.Delete(ctx, 5); err != nil {
		t.Fatalf("Delete again: %v", err)
	}
	if second := readFile(t, path); second != first {
		t.Fatal("second delete changed the file")
	}
}

func TestCreate_OmitsAbsentFields(t *testing.T) {
	repo, path := newFileRepo(t)
	if _, err := repo.Create(context.Background(), models.Draft{}); err != nil {
		t.Fatalf("Create: %v", err)
	}
	content := readFile(t, path)
	last := content[strings.LastIndex(content, "{"):]
	if strings.Contains(last, `"name"`) || strings.Contains(last, `"price"`) {
		t.Fatalf("expected absent name/price in new entry, got:\n%s", last)
	}
	if !strings.Contains(last, `"category": "other"`) {
		t.Fatalf("expected default category, got:\n%s", last)
	}
}

func TestUnknownKeysSurviveRewrites(t *testing.T) {
	path := filepath.Join(t.TempDir(), "menu.json")
	existing := `[{"id":1,"name":"Tea","price":40,"category":"tea","available":true,"image":"tea.png"}]`
	if err := os.WriteFile(path, []byte(existing), 0o644); err != nil {
		t.Fatal(err)
	}
	repo := document.New(jsonfile.New(path))
	ctx := context.Background()

	items, err := repo.List(ctx)
	if err != nil || string(items[0].Extra["image"]) != `"tea.png"` {
		t.Fatalf("image not listed: %+v (err %v)", items, err)
	}

	created, err := repo.Create(ctx, models.Draft{Name: models.String("Mocha")})
	if err != nil {
		t.Fatalf("Create: %v", err)
	}
	if _, err := repo.Update(ctx, 1, models.Patch{Price: models.String("45")}); err != nil {
		t.Fatalf("Update: %v", err)
	}
	if err := repo.Delete(ctx, created.ID); err != nil {
		t.Fatalf("Delete: %v", err)
	}
	if err := repo.Delete(ctx, 99); err != nil {
		t.Fatalf("Delete unknown: %v", err)
	}

	content := readFile(t, path)
	if !strings.Contains(content, `"image": "tea.png"`) {
		t.Fatalf("unknown key dropped from file:\n%s", content)
	}
	if !strings.Contains(content, `"price": "45"`) {
		t.Fatalf("price not stored as given:\n%s", content)
	}
}

func TestTimestampsKeepThreeFractionDigits(t *testing.T) {
	path := filepath.Join(t.TempDir(), "menu.json")
	repo := document.New(jsonfile.New(path), document.WithClock(func() time.Time {
		return time.Date(2025, 1, 15, 7, 49, 15, 580000000, time.UTC)
	}))
	ctx := context.Background()
	if _, err := repo.Init(ctx); err != nil {
		t.Fatalf("Init: %v", err)
	}
	if _, err := repo.Update(ctx, 1, models.Patch{}); err != nil {
		t.Fatalf("Update: %v", err)
	}
	if content := readFile(t, path); !strings.Contains(content, `"updatedAt": "2025-01-15T07:49:15.580Z"`) {
		t.Fatalf("unexpected timestamp format:\n%s", content)
	}
}

func TestStorageErrors(t *testing.T) {
	ctx := context.Background()

	t.Run("file removed after start", func(t *testing.T) {
		repo, path := newFileRepo(t)
		if err := os.Remove(path); err != nil {
			t.Fatal(err)
		}
		if _, err := repo.List(ctx); !errors.Is(err, menudomain.ErrStorageIO) {
			t.Fatalf("expected ErrStorageIO, got %v", err)
		}
		if err := repo.Ping(ctx); err == nil {
			t.Fatal("expected Ping to fail for missing file")
		}
	})

	t.Run("corrupt file", func(t *testing.T) {
		repo, path := newFileRepo(t)
		if err := os.WriteFile(path, []byte("[{"), 0o644); err != nil {
			t.Fatal(err)
		}
		if _, err := repo.List(ctx); !errors.Is(err, menudomain.ErrMenuCorrupt) {
			t.Fatalf("expected ErrMenuCorrupt, got %v", err)
		}
	})
}
