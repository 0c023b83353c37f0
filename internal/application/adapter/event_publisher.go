// Package adapter defines interfaces that will be implemented in the integration layer.
package adapter

import (
	"context"

	"github.com/productivity-hub/backend/internal/domain/entity"
)

// EventPublisher delivers workspace messages to interested parties.
type EventPublisher interface {
	// Publish sends a message. Implementations must not block on slow consumers.
	Publish(ctx context.Context, msg entity.Message) error
}
