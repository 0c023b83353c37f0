package adapters

import (
	"context"
	"errors"
	"testing"

	"github.com/productivity-hub/backend/internal/domain/entity"
)

type countingPublisher struct {
	count int
	err   error
}

func (p *countingPublisher) Publish(context.Context, entity.Message) error {
	p.count++
	return p.err
}

func TestMultiPublisher_Publish(t *testing.T) {
	failing := &countingPublisher{err: errors.New("broker down")}
	ok := &countingPublisher{}

	pub := NewMultiPublisher(failing, nil, ok)
	msg := entity.NewNotificationMessage("Task added", "", entity.NotificationDefault)

	if err := pub.Publish(context.Background(), msg); err != nil {
		t.Fatalf("expected failures to be swallowed, got %v", err)
	}
	if failing.count != 1 || ok.count != 1 {
		t.Errorf("expected each publisher called once, got %d and %d", failing.count, ok.count)
	}
}
