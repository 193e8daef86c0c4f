package repository

import (
	"context"
	"time"

	"bt2horizon/internal/domain"

	"gorm.io/gorm"
)

type ChatRepository struct {
	db *gorm.DB
}

func NewChatRepository(db *gorm.DB) *ChatRepository {
	return &ChatRepository{db: db}
}

func (r *ChatRepository) Create(ctx context.Context, m *domain.ChatMessage) error {
	return r.db.WithContext(ctx).Create(m).Error
}

// ListBySession returns every message of a session oldest first. The
// per-caller visibility policy is applied by the service, not here:
// the rule mixes caller identity with row data and does not reduce to
// a single WHERE clause worth maintaining.
func (r *ChatRepository) ListBySession(ctx context.Context, sessionID string) ([]domain.ChatMessage, error) {
	var msgs []domain.ChatMessage
	err := r.db.WithContext(ctx).
		Where("session_id = ?", sessionID).
		Order("created_at").
		Find(&msgs).Error
	return msgs, err
}

func (r *ChatRepository) ListAll(ctx context.Context) ([]domain.ChatMessage, error) {
	var msgs []domain.ChatMessage
	err := r.db.WithContext(ctx).Order("created_at").Find(&msgs).Error
	return msgs, err
}

// MarkAdminRead stamps read_at on unread admin messages of a session.
func (r *ChatRepository) MarkAdminRead(ctx context.Context, sessionID string, at time.Time) error {
	return r.db.WithContext(ctx).Model(&domain.ChatMessage{}).
		Where("session_id = ? AND is_admin = ? AND read_at IS NULL", sessionID, true).
		Update("read_at", at).Error
}
