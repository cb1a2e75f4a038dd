// Package document implements repositories.MenuRepository over a single
// stored JSON document holding the whole menu. Every operation reads the full
// document, and every mutation rewrites it in full.
package document

import (
	"context"
	"encoding/json"
	"fmt"
	"sync"
	"time"

	menudomain "github.com/ghuser/menuboard/services/menu/domain"
	"github.com/ghuser/menuboard/services/menu/domain/models"
	"github.com/ghuser/menuboard/services/menu/domain/repositories"
	domainsvcs "github.com/ghuser/menuboard/services/menu/domain/services"
)

// Blob is the raw storage a Repository reads and overwrites.
type Blob interface {
	// Load returns the stored document. A missing document is an error.
	Load(ctx context.Context) ([]byte, error)
	// Store replaces the stored document with data.
	Store(ctx context.Context, data []byte) error
	// CreateIfAbsent stores data only when no document exists yet and
	// reports whether it did.
	CreateIfAbsent(ctx context.Context, data []byte) (bool, error)
	// Ping reports whether the storage is reachable.
	Ping(ctx context.Context) error
}

// Repository implements repositories.MenuRepository on top of a Blob.
type Repository struct {
	blob Blob
	ids  repositories.IDGenerator
	now  func() time.Time
	mu   *sync.Mutex // nil unless WithSerializedWrites
}

var _ repositories.MenuRepository = (*Repository)(nil)

// Option configures a Repository.
type Option func(*Repository)

// WithClock sets the time source for createdAt/updatedAt stamps.
func WithClock(now func() time.Time) Option {
	return func(r *Repository) { r.now = now }
}

// WithIDGenerator replaces the default timestamp id generator.
func WithIDGenerator(g repositories.IDGenerator) Option {
	return func(r *Repository) { r.ids = g }
}

// WithSerializedWrites makes each read-modify-write cycle hold a
// process-local mutex. Without it concurrent mutations may lose updates.
func WithSerializedWrites(on bool) Option {
	return func(r *Repository) {
		if on {
			r.mu = &sync.Mutex{}
		} else {
			r.mu = nil
		}
	}
}

// New returns a Repository over blob. Call Init before serving requests.
func New(blob Blob, opts ...Option) *Repository {
	r := &Repository{blob: blob, now: time.Now}
	for _, opt := range opts {
		opt(r)
	}
	if r.ids == nil {
		r.ids = domainsvcs.NewTimestampIDGenerator(r.now)
	}
	return r
}

// Init writes the seed menu when no document exists and reports whether it did.
func (r *Repository) Init(ctx context.Context) (bool, error) {
	data, err := encode(models.Seed())
	if err != nil {
		return false, err
	}
	created, err := r.blob.CreateIfAbsent(ctx, data)
	if err != nil {
		return false, fmt.Errorf("%w: seed: %w", menudomain.ErrStorageIO, err)
	}
	return created, nil
}

// List returns every item in document order.
func (r *Repository) List(ctx context.Context) ([]models.MenuItem, error) {
	return r.load(ctx)
}

// Create appends a new item built from draft under a fresh id.
func (r *Repository) Create(ctx context.Context, draft models.Draft) (models.MenuItem, error) {
	defer r.lock()()

	items, err := r.load(ctx)
	if err != nil {
		return models.MenuItem{}, err
	}
	item := models.NewMenuItem(r.ids.Next(models.MaxID(items)), draft, r.now())
	if err := r.store(ctx, append(items, item)); err != nil {
		return models.MenuItem{}, err
	}
	return item, nil
}

// Update applies patch to the item with id. The document is left untouched
// when no item matches.
func (r *Repository) Update(ctx context.Context, id int64, patch models.Patch) (models.MenuItem, error) {
	defer r.lock()()

	items, err := r.load(ctx)
	if err != nil {
		return models.MenuItem{}, err
	}
	idx := models.IndexOf(items, id)
	if idx < 0 {
		return models.MenuItem{}, menudomain.ErrMenuItemNotFound
	}
	items[idx].Apply(patch, r.now())
	if err := r.store(ctx, items); err != nil {
		return models.MenuItem{}, err
	}
	return items[idx], nil
}

// Delete removes every item with id and rewrites the document, even when
// nothing matched.
func (r *Repository) Delete(ctx context.Context, id int64) error {
	defer r.lock()()

	items, err := r.load(ctx)
	if err != nil {
		return err
	}
	return r.store(ctx, models.Without(items, id))
}

// Ping reports whether the underlying blob storage is reachable.
func (r *Repository) Ping(ctx context.Context) error {
	return r.blob.Ping(ctx)
}

func (r *Repository) lock() func() {
	if r.mu == nil {
		return func() {}
	}
	r.mu.Lock()
	return r.mu.Unlock
}

func (r *Repository) load(ctx context.Context) ([]models.MenuItem, error) {
	data, err := r.blob.Load(ctx)
	if err != nil {
		return nil, fmt.Errorf("%w: %w", menudomain.ErrStorageIO, err)
	}
	var items []models.MenuItem
	if err := json.Unmarshal(data, &items); err != nil {
		return nil, fmt.Errorf("%w: %w", menudomain.ErrMenuCorrupt, err)
	}
	if items == nil {
		items = []models.MenuItem{}
	}
	return items, nil
}

func (r *Repository) store(ctx context.Context, items []models.MenuItem) error {
	data, err := encode(items)
	if err != nil {
		return err
	}
	if err := r.blob.Store(ctx, data); err != nil {
		return fmt.Errorf("%w: %w", menudomain.ErrStorageIO, err)
	}
	return nil
}

// encode renders items as a 2-space indented JSON array.
func encode(items []models.MenuItem) ([]byte, error) {
	if items == nil {
		items = []models.MenuItem{}
	}
	data, err := json.MarshalIndent(items, "", "  ")
	if err != nil {
		return nil, fmt.Errorf("encode menu: %w", err)
	}
	return data, nil
}
