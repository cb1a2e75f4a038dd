// Package subscribers holds event handlers for menu change events.
package subscribers

import (
	"context"
	"encoding/json"
	"fmt"

	"github.com/ThreeDotsLabs/watermill/message"

	"github.com/ghuser/menuboard/pkg/app"
	domainevents "github.com/ghuser/menuboard/services/menu/domain/events"
)

// Register subscribes the audit handler to every menu topic and drains the
// subscriber error channels into the log. It returns once all subscriptions
// are in place; handlers keep running until ctx is cancelled or the bus closes.
func Register(ctx context.Context, a *app.Application) error {
	if a.EventBus == nil {
		return fmt.Errorf("subscribers: no event bus configured")
	}
	for _, topic := range domainevents.Topics {
		errCh, err := a.EventBus.Subscribe(ctx, topic, AuditHandler(a, topic))
		if err != nil {
			return err
		}

		go func(topic string) {
			for err := range errCh {
				a.Logger.ErrorContext(ctx, "subscriber error", "topic", topic, "error", err)
			}
		}(topic)
	}

	a.Logger.Info("event subscribers registered", "topics", domainevents.Topics)
	return nil
}

// AuditHandler returns a handler that logs one line per menu change.
// Handlers must be idempotent; the EventBus retries up to 3× on failure.
func AuditHandler(a *app.Application, topic string) func(context.Context, *message.Message) error {
	return func(ctx context.Context, msg *message.Message) error {
		var evt domainevents.MenuItemChangedEvent
		if err := json.Unmarshal(msg.Payload, &evt); err != nil {
			return fmt.Errorf("decode %s event: %w", topic, err)
		}

		args := []any{
			"topic", topic,
			"event_id", evt.EventID,
			"item_id", evt.ItemID,
			"occurred_at", evt.OccurredAt,
		}
		if evt.Item != nil {
			args = append(args,
				"name", evt.Item.Name,
				"price", evt.Item.Price,
				"category", evt.Item.Category,
				"available", evt.Item.Available,
			)
		}
		a.Logger.InfoContext(ctx, "menu changed", args...)
		return nil
	}
}
