// Package notify publishes the transient confirmations shown after a
// mutation.
package notify

import (
	"context"
	"log/slog"

	"github.com/productivity-hub/backend/internal/application/adapter"
	"github.com/productivity-hub/backend/internal/domain/entity"
)

// Notifier wraps an EventPublisher. Delivery failures are logged and never
// reach the caller: a mutation that succeeded stays successful.
type Notifier struct {
	publisher adapter.EventPublisher
}

// New creates a Notifier. A nil publisher discards every notification.
func New(publisher adapter.EventPublisher) *Notifier {
	return &Notifier{publisher: publisher}
}

// Success publishes a default notification.
func (n *Notifier) Success(ctx context.Context, title, description string) {
	n.send(ctx, entity.NewNotificationMessage(title, description, entity.NotificationDefault))
}

// Destructive publishes a notification for a removal.
func (n *Notifier) Destructive(ctx context.Context, title, description string) {
	n.send(ctx, entity.NewNotificationMessage(title, description, entity.NotificationDestructive))
}

func (n *Notifier) send(ctx context.Context, msg entity.Message) {
	if n == nil || n.publisher == nil {
		return
	}
	if err := n.publisher.Publish(ctx, msg); err != nil {
		slog.Warn("Failed to publish notification",
			"title", msg.Notification.Title,
			"error", err,
		)
	}
}
