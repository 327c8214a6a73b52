// Package events publishes realtime notifications about chat messages so
// connected clients can refresh without polling.
package events

import (
	"context"
	"time"
)

// Kind names what happened to a message.
type Kind string

const (
	MessageCreated Kind = "message.created"
	MessageUpdated Kind = "message.updated"
	MessageDeleted Kind = "message.deleted"
)

// MessageEvent is the payload delivered to the receiver's subject. It never
// carries message content.
type MessageEvent struct {
	Type       Kind      `json:"type"`
	MessageID  string    `json:"message_id"`
	SenderID   string    `json:"sender_id"`
	ReceiverID string    `json:"receiver_id"`
	At         time.Time `json:"at"`
}

// Publisher delivers message events.
type Publisher interface {
	PublishMessage(ctx context.Context, ev MessageEvent) error
}

// NopPublisher drops every event. It is used when no broker is configured.
type NopPublisher struct{}

func (NopPublisher) PublishMessage(context.Context, MessageEvent) error { return nil }
