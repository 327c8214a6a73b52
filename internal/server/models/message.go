// Package models defines server-side data models persisted in the database.
package models

import "time"

// Message is a chat message row. Content always holds an encrypted
// envelope, never plaintext.
type Message struct {
	ID         string
	SenderID   string
	ReceiverID string
	ListingID  *string
	Content    string
	CreatedAt  time.Time
	Read       bool
	Edited     bool
	EditedAt   *time.Time
	Deleted    bool
}

// Counterpart returns the other participant from userID's point of view.
func (m *Message) Counterpart(userID string) string {
	if m.SenderID == userID {
		return m.ReceiverID
	}
	return m.SenderID
}

// ConversationSummary is the latest message exchanged with one
// counterpart plus the number of messages from them still unread.
type ConversationSummary struct {
	CounterpartID string
	Last          Message
	Unread        int
}
