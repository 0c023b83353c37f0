package realtime

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/gorilla/websocket"

	"github.com/productivity-hub/backend/internal/domain/entity"
)

func waitFor(t *testing.T, cond func() bool) {
	t.Helper()
	deadline := time.Now().Add(2 * time.Second)
	for !cond() {
		if time.Now().After(deadline) {
			t.Fatal("condition not met in time")
		}
		time.Sleep(10 * time.Millisecond)
	}
}

func TestHub_BroadcastsToClients(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	hub := NewHub()
	go func() { _ = hub.Run(ctx) }()

	srv := httptest.NewServer(http.HandlerFunc(hub.ServeWS))
	defer srv.Close()

	url := "ws" + strings.TrimPrefix(srv.URL, "http")
	conn, _, err := websocket.DefaultDialer.Dial(url, nil)
	if err != nil {
		t.Fatalf("dial failed: %v", err)
	}
	defer conn.Close()

	waitFor(t, func() bool { return hub.Clients() == 1 })

	msg := entity.NewRelocatedMessage(entity.RecordRelocated{ID: "1", FromBucket: "todo", ToBucket: "completed"})
	if err := hub.Publish(ctx, msg); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	_ = conn.SetReadDeadline(time.Now().Add(2 * time.Second))
	_, payload, err := conn.ReadMessage()
	if err != nil {
		t.Fatalf("read failed: %v", err)
	}

	var got entity.Message
	if err := json.Unmarshal(payload, &got); err != nil {
		t.Fatalf("invalid payload: %v", err)
	}
	if got.Kind != entity.MessageKindRelocated || got.Relocated == nil || got.Relocated.ToBucket != "completed" {
		t.Errorf("unexpected message %+v", got)
	}
}

func TestHub_UnregistersClosedClients(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	hub := NewHub()
	go func() { _ = hub.Run(ctx) }()

	srv := httptest.NewServer(http.HandlerFunc(hub.ServeWS))
	defer srv.Close()

	conn, _, err := websocket.DefaultDialer.Dial("ws"+strings.TrimPrefix(srv.URL, "http"), nil)
	if err != nil {
		t.Fatalf("dial failed: %v", err)
	}
	waitFor(t, func() bool { return hub.Clients() == 1 })

	conn.Close()
	waitFor(t, func() bool { return hub.Clients() == 0 })
}

func TestHub_PublishWithoutClients(t *testing.T) {
	hub := NewHub()
	msg := entity.NewNotificationMessage("Task added", "", entity.NotificationDefault)

	for i := 0; i < broadcastQueue; i++ {
		if err := hub.Publish(context.Background(), msg); err != nil {
			t.Fatalf("publish %d failed: %v", i, err)
		}
	}
	if err := hub.Publish(context.Background(), msg); err == nil {
		t.Error("expected a full queue to reject the message")
	}
}
