// Package entity defines the core business entities for the domain layer.
package entity

import "time"

// MessageKind identifies the payload of a Message.
type MessageKind string

const (
	MessageKindRelocated    MessageKind = "record.relocated"
	MessageKindNotification MessageKind = "notification"
)

// NotificationVariant mirrors the toast styles shown after a mutation.
type NotificationVariant string

const (
	NotificationDefault     NotificationVariant = "default"
	NotificationDestructive NotificationVariant = "destructive"
)

// RecordRelocated is emitted when a record is dropped onto another bucket.
type RecordRelocated struct {
	ID         string `json:"id"`
	FromBucket string `json:"from_bucket"`
	ToBucket   string `json:"to_bucket"`
}

// Notification is a transient confirmation for a create, update or delete.
type Notification struct {
	Title       string              `json:"title"`
	Description string              `json:"description"`
	Variant     NotificationVariant `json:"variant"`
}

// Message is the envelope fanned out to realtime clients and the broker.
type Message struct {
	Kind         MessageKind      `json:"kind"`
	Relocated    *RecordRelocated `json:"relocated,omitempty"`
	Notification *Notification    `json:"notification,omitempty"`
	Timestamp    time.Time        `json:"timestamp"`
}

// NewRelocatedMessage wraps a relocation in a Message.
func NewRelocatedMessage(r RecordRelocated) Message {
	return Message{
		Kind:      MessageKindRelocated,
		Relocated: &r,
		Timestamp: time.Now().UTC(),
	}
}

// NewNotificationMessage wraps a notification in a Message.
func NewNotificationMessage(title, description string, variant NotificationVariant) Message {
	return Message{
		Kind: MessageKindNotification,
		Notification: &Notification{
			Title:       title,
			Description: description,
			Variant:     variant,
		},
		Timestamp: time.Now().UTC(),
	}
}
