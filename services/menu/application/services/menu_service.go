package services

import (
	"context"
	"fmt"
	"time"

	"github.com/ThreeDotsLabs/watermill/message"
	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/metric"

	"github.com/ghuser/menuboard/pkg/events"
	"github.com/ghuser/menuboard/pkg/logger"
	domainevents "github.com/ghuser/menuboard/services/menu/domain/events"
	"github.com/ghuser/menuboard/services/menu/domain/models"
	"github.com/ghuser/menuboard/services/menu/domain/repositories"
)

const meterName = "github.com/ghuser/menuboard/services/menu"

// EventPublisher is the slice of events.EventBus the menu service needs.
type EventPublisher interface {
	Publish(ctx context.Context, topic string, msgs ...*message.Message) error
}

// MenuService orchestrates menu reads and mutations on top of a repository.
// After each successful mutation it publishes a change event; publishing is
// best-effort and never fails the request.
type MenuService struct {
	repo      repositories.MenuRepository
	bus       EventPublisher // nil disables events
	log       logger.Logger
	now       func() time.Time
	mutations metric.Int64Counter
}

// NewMenuService returns a MenuService. bus may be nil.
func NewMenuService(repo repositories.MenuRepository, bus EventPublisher, log logger.Logger) *MenuService {
	counter, err := otel.Meter(meterName).Int64Counter("menu.mutations",
		metric.WithDescription("Successful menu mutations by operation"),
	)
	if err != nil {
		log.Warn("menu mutation counter unavailable", "error", err)
	}
	return &MenuService{repo: repo, bus: bus, log: log, now: time.Now, mutations: counter}
}

// List returns the whole menu in stored order.
func (s *MenuService) List(ctx context.Context) ([]models.MenuItem, error) {
	items, err := s.repo.List(ctx)
	if err != nil {
		return nil, fmt.Errorf("list menu: %w", err)
	}
	return items, nil
}

// Create stores a new item built from draft.
func (s *MenuService) Create(ctx context.Context, draft models.Draft) (models.MenuItem, error) {
	item, err := s.repo.Create(ctx, draft)
	if err != nil {
		return models.MenuItem{}, fmt.Errorf("create menu item: %w", err)
	}
	s.record(ctx, "create")
	s.publish(ctx, domainevents.TopicMenuItemCreated, item.ID, &item)
	return item, nil
}

// Update overwrites the supplied fields of the item with id.
// Returns ErrMenuItemNotFound if no item matches.
func (s *MenuService) Update(ctx context.Context, id int64, patch models.Patch) (models.MenuItem, error) {
	item, err := s.repo.Update(ctx, id, patch)
	if err != nil {
		return models.MenuItem{}, fmt.Errorf("update menu item %d: %w", id, err)
	}
	s.record(ctx, "update")
	s.publish(ctx, domainevents.TopicMenuItemUpdated, item.ID, &item)
	return item, nil
}

// Delete removes the item with id. Unknown ids succeed.
func (s *MenuService) Delete(ctx context.Context, id int64) error {
	if err := s.repo.Delete(ctx, id); err != nil {
		return fmt.Errorf("delete menu item %d: %w", id, err)
	}
	s.record(ctx, "delete")
	s.publish(ctx, domainevents.TopicMenuItemDeleted, id, nil)
	return nil
}

func (s *MenuService) record(ctx context.Context, op string) {
	if s.mutations == nil {
		return
	}
	s.mutations.Add(ctx, 1, metric.WithAttributes(attribute.String("operation", op)))
}

func (s *MenuService) publish(ctx context.Context, topic string, id int64, item *models.MenuItem) {
	if s.bus == nil {
		return
	}
	evt := domainevents.NewMenuItemChanged(id, item, s.now())
	msg, err := events.NewMessage(evt.EventID.String(), evt.Version, evt)
	if err == nil {
		err = s.bus.Publish(ctx, topic, msg)
	}
	if err != nil {
		s.log.WarnContext(ctx, "menu event not published", "topic", topic, "item_id", id, "error", err)
	}
}
