package services

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"strings"
	"time"
	"unicode/utf8"

	"github.com/google/uuid"

	"github.com/dmitrijs2005/citylifes/internal/common"
	"github.com/dmitrijs2005/citylifes/internal/convcrypto"
	"github.com/dmitrijs2005/citylifes/internal/dbx"
	"github.com/dmitrijs2005/citylifes/internal/logging"
	"github.com/dmitrijs2005/citylifes/internal/server/events"
	"github.com/dmitrijs2005/citylifes/internal/server/models"
	"github.com/dmitrijs2005/citylifes/internal/server/repositories/repomanager"
)

const (
	DefaultConversationLimit = 200
	MaxConversationLimit     = 1000
)

// ConversationMessage is a stored message with its body decrypted.
// Unavailable is set when the envelope could not be opened, in which case
// Text holds convcrypto.UnavailablePlaceholder.
type ConversationMessage struct {
	models.Message
	Text        string
	Unavailable bool
}

type ConversationSummary struct {
	CounterpartID string
	Last          ConversationMessage
	Unread        int
}

type MessageService struct {
	db          *sql.DB
	repomanager repomanager.RepositoryManager
	cipher      *convcrypto.Cipher
	publisher   events.Publisher
	log         logging.Logger
	now         func() time.Time
}

func NewMessageService(db *sql.DB, m repomanager.RepositoryManager, cipher *convcrypto.Cipher,
	publisher events.Publisher, log logging.Logger) *MessageService {
	return &MessageService{
		db:          db,
		repomanager: m,
		cipher:      cipher,
		publisher:   publisher,
		log:         log.With("module", "messages"),
		now:         time.Now,
	}
}

// validateContent trims content and checks it against the length contract.
func validateContent(content string) (string, error) {
	text := strings.TrimSpace(content)
	n := utf8.RuneCountInString(text)
	if n == 0 {
		return "", fmt.Errorf("%w: message cannot be empty", common.ErrorValidation)
	}
	if n > common.MaxMessageLength {
		return "", fmt.Errorf("%w: message exceeds %d characters", common.ErrorValidation, common.MaxMessageLength)
	}
	return text, nil
}

func (s *MessageService) Send(ctx context.Context, senderID, receiverID, content string, listingID *string) (*ConversationMessage, error) {
	if receiverID == "" {
		return nil, fmt.Errorf("%w: receiver is required", common.ErrorValidation)
	}
	if senderID == receiverID {
		return nil, fmt.Errorf("%w: cannot message yourself", common.ErrorValidation)
	}
	text, err := validateContent(content)
	if err != nil {
		return nil, err
	}
	if listingID != nil && *listingID == "" {
		listingID = nil
	}

	envelope, err := s.cipher.Encrypt(text, senderID, receiverID)
	if err != nil {
		return nil, fmt.Errorf("error sending message: %w", err)
	}

	m := &models.Message{
		ID:         uuid.NewString(),
		SenderID:   senderID,
		ReceiverID: receiverID,
		ListingID:  listingID,
		Content:    envelope,
		CreatedAt:  s.now().UTC(),
	}
	if err := s.repomanager.Messages(s.db).Create(ctx, m); err != nil {
		return nil, fmt.Errorf("error sending message: %w", err)
	}

	s.publish(ctx, events.MessageCreated, m)
	return &ConversationMessage{Message: *m, Text: text}, nil
}

// Conversation returns the latest messages between userID and otherID,
// oldest first. The conversation key is derived once per call.
func (s *MessageService) Conversation(ctx context.Context, userID, otherID string, limit int) ([]ConversationMessage, error) {
	if otherID == "" || otherID == userID {
		return nil, fmt.Errorf("%w: invalid counterpart", common.ErrorValidation)
	}
	switch {
	case limit <= 0:
		limit = DefaultConversationLimit
	case limit > MaxConversationLimit:
		limit = MaxConversationLimit
	}

	keys, err := s.cipher.Keyring(userID, otherID)
	if err != nil {
		return nil, fmt.Errorf("error loading conversation: %w", err)
	}

	rows, err := s.repomanager.Messages(s.db).SelectConversation(ctx, userID, otherID, limit)
	if err != nil {
		return nil, fmt.Errorf("error loading conversation: %w", err)
	}

	out := make([]ConversationMessage, 0, len(rows))
	for _, m := range rows {
		out = append(out, s.open(ctx, keys, m))
	}
	return out, nil
}

// Conversations lists one summary per counterpart, most recent first.
func (s *MessageService) Conversations(ctx context.Context, userID string) ([]ConversationSummary, error) {
	rows, err := s.repomanager.Messages(s.db).SelectSummaries(ctx, userID)
	if err != nil {
		return nil, fmt.Errorf("error loading conversations: %w", err)
	}

	out := make([]ConversationSummary, 0, len(rows))
	for _, r := range rows {
		sum := ConversationSummary{CounterpartID: r.CounterpartID, Unread: r.Unread}
		keys, err := s.cipher.Keyring(userID, r.CounterpartID)
		if err != nil {
			sum.Last = ConversationMessage{Message: r.Last, Text: convcrypto.UnavailablePlaceholder, Unavailable: true}
		} else {
			sum.Last = s.open(ctx, keys, &r.Last)
		}
		out = append(out, sum)
	}
	return out, nil
}

func (s *MessageService) open(ctx context.Context, keys *convcrypto.Keyring, m *models.Message) ConversationMessage {
	text, ok := keys.OpenOrPlaceholder(m.Content)
	if !ok {
		s.log.Warn(ctx, "message could not be decrypted", "message_id", m.ID)
	}
	return ConversationMessage{Message: *m, Text: text, Unavailable: !ok}
}

// MarkRead marks messages from otherID to userID as read.
func (s *MessageService) MarkRead(ctx context.Context, userID, otherID string) (int64, error) {
	if otherID == "" {
		return 0, fmt.Errorf("%w: counterpart is required", common.ErrorValidation)
	}
	n, err := s.repomanager.Messages(s.db).MarkRead(ctx, userID, otherID)
	if err != nil {
		return 0, fmt.Errorf("error marking messages read: %w", err)
	}
	return n, nil
}

// Edit replaces the body of a message. Only its sender may edit it.
func (s *MessageService) Edit(ctx context.Context, userID, messageID, content string) (*ConversationMessage, error) {
	text, err := validateContent(content)
	if err != nil {
		return nil, err
	}

	var edited *models.Message
	err = dbx.WithTx(ctx, s.db, nil, func(ctx context.Context, tx dbx.DBTX) error {
		repo := s.repomanager.Messages(tx)

		m, err := s.ownMessage(ctx, repo.GetByID, userID, messageID)
		if err != nil {
			return err
		}

		envelope, err := s.cipher.Encrypt(text, m.SenderID, m.ReceiverID)
		if err != nil {
			return err
		}

		at := s.now().UTC()
		if err := repo.UpdateContent(ctx, m.ID, userID, envelope, at); err != nil {
			return err
		}

		m.Content, m.Edited, m.EditedAt = envelope, true, &at
		edited = m
		return nil
	})
	if err != nil {
		return nil, fmt.Errorf("error editing message: %w", err)
	}

	s.publish(ctx, events.MessageUpdated, edited)
	return &ConversationMessage{Message: *edited, Text: text}, nil
}

// Delete soft-deletes a message. Only its sender may delete it.
func (s *MessageService) Delete(ctx context.Context, userID, messageID string) error {
	var deleted *models.Message
	err := dbx.WithTx(ctx, s.db, nil, func(ctx context.Context, tx dbx.DBTX) error {
		repo := s.repomanager.Messages(tx)

		m, err := s.ownMessage(ctx, repo.GetByID, userID, messageID)
		if err != nil {
			return err
		}
		if err := repo.SoftDelete(ctx, m.ID, userID); err != nil {
			return err
		}
		deleted = m
		return nil
	})
	if err != nil {
		return fmt.Errorf("error deleting message: %w", err)
	}

	s.publish(ctx, events.MessageDeleted, deleted)
	return nil
}

func (s *MessageService) ownMessage(ctx context.Context, get func(context.Context, string) (*models.Message, error),
	userID, messageID string) (*models.Message, error) {
	m, err := get(ctx, messageID)
	if err != nil {
		return nil, err
	}
	if m.Deleted {
		return nil, common.ErrorNotFound
	}
	if m.SenderID != userID {
		return nil, common.ErrorForbidden
	}
	return m, nil
}

// publish notifies the receiver. Failures are logged and never undo the write.
func (s *MessageService) publish(ctx context.Context, kind events.Kind, m *models.Message) {
	err := s.publisher.PublishMessage(ctx, events.MessageEvent{
		Type:       kind,
		MessageID:  m.ID,
		SenderID:   m.SenderID,
		ReceiverID: m.ReceiverID,
		At:         s.now().UTC(),
	})
	if err != nil && !errors.Is(err, context.Canceled) {
		s.log.Error(ctx, "failed to publish message event", "type", kind, "message_id", m.ID, "error", err)
	}
}
