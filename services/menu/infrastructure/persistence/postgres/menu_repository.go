package postgres

import (
	"context"
	"database/sql"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"github.com/jackc/pgx/v5/pgconn"

	"github.com/ghuser/menuboard/pkg/database"
	menudomain "github.com/ghuser/menuboard/services/menu/domain"
	"github.com/ghuser/menuboard/services/menu/domain/models"
	"github.com/ghuser/menuboard/services/menu/domain/repositories"
	domainsvcs "github.com/ghuser/menuboard/services/menu/domain/services"
	"github.com/ghuser/menuboard/services/menu/infrastructure/persistence/postgres/db"
)

// insertAttempts bounds retries when another process claimed the same id.
const insertAttempts = 3

// MenuRepository implements repositories.MenuRepository against PostgreSQL.
// Rows are kept in the menu_items table created by migrations/menu.
type MenuRepository struct {
	db  *database.Database
	ids repositories.IDGenerator
	now func() time.Time
}

var _ repositories.MenuRepository = (*MenuRepository)(nil)

// NewMenuRepository returns a MenuRepository backed by the given connection pool.
func NewMenuRepository(database *database.Database, now func() time.Time) *MenuRepository {
	if now == nil {
		now = time.Now
	}
	return &MenuRepository{db: database, ids: domainsvcs.NewTimestampIDGenerator(now), now: now}
}

// List returns every item in insertion order.
func (r *MenuRepository) List(ctx context.Context) ([]models.MenuItem, error) {
	rows, err := db.New(r.db.DB()).ListMenuItems(ctx)
	if err != nil {
		return nil, fmt.Errorf("%w: list menu items: %w", menudomain.ErrStorageIO, err)
	}
	items := make([]models.MenuItem, len(rows))
	for i, row := range rows {
		if items[i], err = rowToMenuItem(row); err != nil {
			return nil, err
		}
	}
	return items, nil
}

// Create inserts a new item under a fresh id. A unique violation on id means a
// concurrent writer took it; the insert is retried with the next id.
func (r *MenuRepository) Create(ctx context.Context, draft models.Draft) (models.MenuItem, error) {
	var (
		created models.MenuItem
		err     error
	)
	for attempt := 1; attempt <= insertAttempts; attempt++ {
		err = r.db.WithTx(ctx, func(tx *sql.Tx) error {
			q := db.New(tx)
			highest, err := q.MaxMenuItemID(ctx)
			if err != nil {
				return fmt.Errorf("max menu item id: %w", err)
			}
			item := models.NewMenuItem(r.ids.Next(highest), draft, r.now())
			row, err := q.InsertMenuItem(ctx, db.InsertMenuItemParams{
				ID:        item.ID,
				Name:      nullJSON(item.Name),
				Price:     nullJSON(item.Price),
				Category:  nullJSON(item.Category),
				Available: nullJSON(item.Available),
				CreatedAt: nullTime(item.CreatedAt),
			})
			if err != nil {
				return fmt.Errorf("insert menu item: %w", err)
			}
			created, err = rowToMenuItem(row)
			return err
		})
		if !isUniqueViolation(err) {
			break
		}
	}
	if err != nil {
		return models.MenuItem{}, fmt.Errorf("%w: %w", menudomain.ErrStorageIO, err)
	}
	return created, nil
}

// Update applies patch to the row with id, locking it for the duration.
func (r *MenuRepository) Update(ctx context.Context, id int64, patch models.Patch) (models.MenuItem, error) {
	var updated models.MenuItem
	err := r.db.WithTx(ctx, func(tx *sql.Tx) error {
		q := db.New(tx)
		row, err := q.GetMenuItemForUpdate(ctx, id)
		if err != nil {
			if errors.Is(err, sql.ErrNoRows) {
				return menudomain.ErrMenuItemNotFound
			}
			return fmt.Errorf("%w: query menu item: %w", menudomain.ErrStorageIO, err)
		}

		item, err := rowToMenuItem(row)
		if err != nil {
			return err
		}
		item.Apply(patch, r.now())
		extra, err := extraJSON(item.Extra)
		if err != nil {
			return err
		}
		if err := q.UpdateMenuItem(ctx, db.UpdateMenuItemParams{
			ID:        item.ID,
			Name:      nullJSON(item.Name),
			Price:     nullJSON(item.Price),
			Available: nullJSON(item.Available),
			UpdatedAt: nullTime(item.UpdatedAt),
			Extra:     extra,
		}); err != nil {
			return fmt.Errorf("%w: update menu item: %w", menudomain.ErrStorageIO, err)
		}
		updated = item
		return nil
	})
	if err != nil {
		if errors.Is(err, menudomain.ErrMenuItemNotFound) || errors.Is(err, menudomain.ErrStorageIO) ||
			errors.Is(err, menudomain.ErrMenuCorrupt) {
			return models.MenuItem{}, err
		}
		return models.MenuItem{}, fmt.Errorf("%w: %w", menudomain.ErrStorageIO, err)
	}
	return updated, nil
}

// Delete removes the row with id. Deleting an unknown id is not an error.
func (r *MenuRepository) Delete(ctx context.Context, id int64) error {
	if err := db.New(r.db.DB()).DeleteMenuItem(ctx, id); err != nil {
		return fmt.Errorf("%w: delete menu item: %w", menudomain.ErrStorageIO, err)
	}
	return nil
}

// Ping checks the database connection.
func (r *MenuRepository) Ping(ctx context.Context) error {
	return r.db.Ping(ctx)
}

func isUniqueViolation(err error) bool {
	var pgErr *pgconn.PgError
	return errors.As(err, &pgErr) && pgErr.Code == "23505"
}

// rowToMenuItem maps a db.MenuItem to a domain models.MenuItem.
func rowToMenuItem(row db.MenuItem) (models.MenuItem, error) {
	item := models.MenuItem{
		ID:        row.ID,
		Name:      rawJSON(row.Name),
		Price:     rawJSON(row.Price),
		Category:  rawJSON(row.Category),
		Available: rawJSON(row.Available),
	}
	if row.CreatedAt.Valid {
		item.CreatedAt = timestamp(row.CreatedAt.Time)
	}
	if row.UpdatedAt.Valid {
		item.UpdatedAt = timestamp(row.UpdatedAt.Time)
	}
	if row.Extra != nil {
		if err := json.Unmarshal(row.Extra, &item.Extra); err != nil {
			return models.MenuItem{}, fmt.Errorf("%w: extra fields of item %d: %w", menudomain.ErrMenuCorrupt, row.ID, err)
		}
	}
	return item, nil
}

func rawJSON(b []byte) json.RawMessage {
	if b == nil {
		return nil
	}
	return append(json.RawMessage(nil), b...)
}

func timestamp(t time.Time) *time.Time {
	ts := models.Timestamp(t)
	return &ts
}

func nullJSON(v json.RawMessage) sql.NullString {
	if v == nil {
		return sql.NullString{}
	}
	return sql.NullString{String: string(v), Valid: true}
}

func extraJSON(extra map[string]json.RawMessage) (sql.NullString, error) {
	if len(extra) == 0 {
		return sql.NullString{}, nil
	}
	data, err := json.Marshal(extra)
	if err != nil {
		return sql.NullString{}, fmt.Errorf("encode extra fields: %w", err)
	}
	return sql.NullString{String: string(data), Valid: true}, nil
}

func nullTime(p *time.Time) sql.NullTime {
	if p == nil {
		return sql.NullTime{}
	}
	return sql.NullTime{Time: *p, Valid: true}
}
