package chat

import (
	"context"
	"time"

	"bt2horizon/internal/domain"
)

type ChatRepositoryInterface interface {
	Create(ctx context.Context, m *domain.ChatMessage) error
	ListBySession(ctx context.Context, sessionID string) ([]domain.ChatMessage, error)
	ListAll(ctx context.Context) ([]domain.ChatMessage, error)
	MarkAdminRead(ctx context.Context, sessionID string, at time.Time) error
}

// Broadcaster decouples the service from the live hub so tests can
// observe broadcasts.
type Broadcaster interface {
	Broadcast(message interface{})
}
