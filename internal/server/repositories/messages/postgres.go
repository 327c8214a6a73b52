// Package messages provides PostgreSQL-backed storage for chat messages.
// Message bodies are stored as opaque encrypted envelopes.
package messages

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"time"

	"github.com/dmitrijs2005/citylifes/internal/common"
	"github.com/dmitrijs2005/citylifes/internal/dbx"
	"github.com/dmitrijs2005/citylifes/internal/server/models"
)

// PostgresRepository implements message storage over a dbx.DBTX (*sql.DB or *sql.Tx).
type PostgresRepository struct {
	db dbx.DBTX
}

// NewPostgresRepository constructs a repository bound to the given DBTX.
func NewPostgresRepository(db dbx.DBTX) *PostgresRepository {
	return &PostgresRepository{db: db}
}

const messageColumns = `id, sender_id, receiver_id, listing_id, content, created_at, read, edited, edited_at, deleted`

type scanner interface {
	Scan(dest ...any) error
}

func scanMessage(s scanner, extra ...any) (*models.Message, error) {
	var (
		m         models.Message
		listingID sql.NullString
		editedAt  sql.NullTime
	)
	dest := []any{
		&m.ID, &m.SenderID, &m.ReceiverID, &listingID, &m.Content,
		&m.CreatedAt, &m.Read, &m.Edited, &editedAt, &m.Deleted,
	}
	if err := s.Scan(append(dest, extra...)...); err != nil {
		return nil, err
	}
	if listingID.Valid {
		m.ListingID = &listingID.String
	}
	if editedAt.Valid {
		t := editedAt.Time
		m.EditedAt = &t
	}
	return &m, nil
}

// Create inserts a new message. ID and CreatedAt must be set by the caller.
func (r *PostgresRepository) Create(ctx context.Context, m *models.Message) error {
	query := `
		INSERT INTO messages (id, sender_id, receiver_id, listing_id, content, created_at)
		VALUES ($1, $2, $3, $4, $5, $6)
	`
	_, err := r.db.ExecContext(ctx, query, m.ID, m.SenderID, m.ReceiverID, m.ListingID, m.Content, m.CreatedAt)
	if err != nil {
		return fmt.Errorf("db error: %w", err)
	}
	return nil
}

// GetByID returns a message, or common.ErrorNotFound.
func (r *PostgresRepository) GetByID(ctx context.Context, id string) (*models.Message, error) {
	query := `SELECT ` + messageColumns + ` FROM messages WHERE id = $1`

	m, err := scanMessage(r.db.QueryRowContext(ctx, query, id))
	if errors.Is(err, sql.ErrNoRows) {
		return nil, common.ErrorNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("db error: %w", err)
	}
	return m, nil
}

// SelectConversation returns the most recent limit non-deleted messages
// exchanged between userA and userB, oldest first.
func (r *PostgresRepository) SelectConversation(ctx context.Context, userA, userB string, limit int) ([]*models.Message, error) {
	query := `
		SELECT * FROM (
			SELECT ` + messageColumns + ` FROM messages
			WHERE ((sender_id = $1 AND receiver_id = $2) OR (sender_id = $2 AND receiver_id = $1))
			  AND NOT deleted
			ORDER BY created_at DESC, id DESC
			LIMIT $3
		) recent
		ORDER BY created_at, id
	`
	rows, err := r.db.QueryContext(ctx, query, userA, userB, limit)
	if err != nil {
		return nil, fmt.Errorf("failed to select messages: %w", err)
	}
	defer rows.Close()

	var result []*models.Message
	for rows.Next() {
		m, err := scanMessage(rows)
		if err != nil {
			return nil, err
		}
		result = append(result, m)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}
	return result, nil
}

// SelectSummaries returns, per counterpart of userID, the latest
// non-deleted message and the count of unread messages received from them.
// Summaries are ordered by the latest message, newest first.
func (r *PostgresRepository) SelectSummaries(ctx context.Context, userID string) ([]*models.ConversationSummary, error) {
	query := `
		WITH scoped AS (
			SELECT m.*, CASE WHEN m.sender_id = $1 THEN m.receiver_id ELSE m.sender_id END AS counterpart
			FROM messages m
			WHERE (m.sender_id = $1 OR m.receiver_id = $1) AND NOT m.deleted
		), latest AS (
			SELECT DISTINCT ON (counterpart) *
			FROM scoped
			ORDER BY counterpart, created_at DESC, id DESC
		)
		SELECT ` + messageColumns + `, counterpart,
			(SELECT count(*) FROM scoped u
			 WHERE u.counterpart = latest.counterpart AND u.receiver_id = $1 AND NOT u.read) AS unread
		FROM latest
		ORDER BY created_at DESC, id DESC
	`
	rows, err := r.db.QueryContext(ctx, query, userID)
	if err != nil {
		return nil, fmt.Errorf("failed to select conversations: %w", err)
	}
	defer rows.Close()

	var result []*models.ConversationSummary
	for rows.Next() {
		var s models.ConversationSummary
		m, err := scanMessage(rows, &s.CounterpartID, &s.Unread)
		if err != nil {
			return nil, err
		}
		s.Last = *m
		result = append(result, &s)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}
	return result, nil
}

// MarkRead marks every unread message from senderID to receiverID as read
// and returns how many rows changed.
func (r *PostgresRepository) MarkRead(ctx context.Context, receiverID, senderID string) (int64, error) {
	query := `UPDATE messages SET read = true WHERE receiver_id = $1 AND sender_id = $2 AND NOT read`

	res, err := r.db.ExecContext(ctx, query, receiverID, senderID)
	if err != nil {
		return 0, fmt.Errorf("db error: %w", err)
	}
	n, err := res.RowsAffected()
	if err != nil {
		return 0, fmt.Errorf("rows affected error: %w", err)
	}
	return n, nil
}

// UpdateContent replaces the envelope of a message sent by senderID and
// flags it edited. It returns common.ErrorNotFound when no such live
// message exists.
func (r *PostgresRepository) UpdateContent(ctx context.Context, id, senderID, content string, editedAt time.Time) error {
	query := `
		UPDATE messages SET content = $3, edited = true, edited_at = $4
		WHERE id = $1 AND sender_id = $2 AND NOT deleted
	`
	res, err := r.db.ExecContext(ctx, query, id, senderID, content, editedAt)
	if err != nil {
		return fmt.Errorf("db error: %w", err)
	}
	return expectOne(res)
}

// SoftDelete flags a message sent by senderID as deleted.
func (r *PostgresRepository) SoftDelete(ctx context.Context, id, senderID string) error {
	query := `UPDATE messages SET deleted = true WHERE id = $1 AND sender_id = $2 AND NOT deleted`

	res, err := r.db.ExecContext(ctx, query, id, senderID)
	if err != nil {
		return fmt.Errorf("db error: %w", err)
	}
	return expectOne(res)
}

func expectOne(res sql.Result) error {
	n, err := res.RowsAffected()
	if err != nil {
		return fmt.Errorf("rows affected error: %w", err)
	}
	switch n {
	case 1:
		return nil
	case 0:
		return common.ErrorNotFound
	default:
		return fmt.Errorf("unexpected rows affected: %d", n)
	}
}
