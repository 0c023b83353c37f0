package messaging

import (
	"context"
	"encoding/json"
	"errors"
	"testing"

	"github.com/rabbitmq/amqp091-go"

	"github.com/productivity-hub/backend/internal/domain/entity"
)

type fakeChannel struct {
	exchange string
	key      string
	msg      amqp091.Publishing
	err      error
	closed   bool
}

func (c *fakeChannel) PublishWithContext(_ context.Context, exchange, key string, _, _ bool, msg amqp091.Publishing) error {
	c.exchange, c.key, c.msg = exchange, key, msg
	return c.err
}

func (c *fakeChannel) Close() error {
	c.closed = true
	return nil
}

func TestPublisher_Publish(t *testing.T) {
	ch := &fakeChannel{}
	p := &Publisher{channel: ch, exchange: "workspace"}

	msg := entity.NewNotificationMessage("Task added", "Your task was added successfully", entity.NotificationDefault)
	if err := p.Publish(context.Background(), msg); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if ch.exchange != "workspace" || ch.key != "notification" {
		t.Errorf("unexpected routing %s/%s", ch.exchange, ch.key)
	}
	if ch.msg.ContentType != "application/json" || ch.msg.DeliveryMode != amqp091.Persistent {
		t.Errorf("unexpected publishing %+v", ch.msg)
	}

	var got entity.Message
	if err := json.Unmarshal(ch.msg.Body, &got); err != nil {
		t.Fatalf("invalid body: %v", err)
	}
	if got.Notification == nil || got.Notification.Title != "Task added" {
		t.Errorf("unexpected body %s", ch.msg.Body)
	}
}

func TestPublisher_PublishError(t *testing.T) {
	ch := &fakeChannel{err: errors.New("channel closed")}
	p := &Publisher{channel: ch, exchange: "workspace"}

	err := p.Publish(context.Background(), entity.NewNotificationMessage("x", "", entity.NotificationDefault))
	if err == nil {
		t.Fatal("expected error")
	}

	if err := p.Close(); err != nil {
		t.Errorf("unexpected close error: %v", err)
	}
	if !ch.closed {
		t.Error("expected channel to be closed")
	}
}
