package messages

import (
	"context"
	"time"

	"github.com/dmitrijs2005/citylifes/internal/server/models"
)

type Repository interface {
	Create(ctx context.Context, m *models.Message) error
	GetByID(ctx context.Context, id string) (*models.Message, error)
	SelectConversation(ctx context.Context, userA, userB string, limit int) ([]*models.Message, error)
	SelectSummaries(ctx context.Context, userID string) ([]*models.ConversationSummary, error)
	MarkRead(ctx context.Context, receiverID, senderID string) (int64, error)
	UpdateContent(ctx context.Context, id, senderID, content string, editedAt time.Time) error
	SoftDelete(ctx context.Context, id, senderID string) error
}
