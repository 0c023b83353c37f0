package adapters

import (
	"context"
	"log/slog"

	"github.com/productivity-hub/backend/internal/application/adapter"
	"github.com/productivity-hub/backend/internal/domain/entity"
)

// multiPublisher delivers each message to every publisher it wraps.
type multiPublisher struct {
	publishers []adapter.EventPublisher
}

// NewMultiPublisher fans messages out to publishers. Nil entries are
// skipped. A failing publisher is logged and does not stop the others.
func NewMultiPublisher(publishers ...adapter.EventPublisher) adapter.EventPublisher {
	m := &multiPublisher{}
	for _, p := range publishers {
		if p != nil {
			m.publishers = append(m.publishers, p)
		}
	}
	return m
}

// Publish implements adapter.EventPublisher. It never returns an error.
func (m *multiPublisher) Publish(ctx context.Context, msg entity.Message) error {
	for _, p := range m.publishers {
		if err := p.Publish(ctx, msg); err != nil {
			slog.Warn("Failed to publish message", "kind", msg.Kind, "error", err)
		}
	}
	return nil
}
