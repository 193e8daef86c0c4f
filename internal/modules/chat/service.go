package chat

import (
	"context"
	"strings"
	"time"

	"bt2horizon/internal/domain"
)

const adminSenderName = "BT2 Support"

// Service owns message creation and the per-caller visibility policy.
type Service struct {
	repo ChatRepositoryInterface
	hub  Broadcaster
}

func NewService(repo ChatRepositoryInterface, hub Broadcaster) *Service {
	return &Service{repo: repo, hub: hub}
}

// SendMessage stores a visitor message and pushes it to the hub.
func (s *Service) SendMessage(ctx context.Context, caller Caller, req SendMessageRequest) (*domain.ChatMessage, error) {
	name := strings.TrimSpace(req.SenderName)
	if name == "" {
		name = "Anonymous"
	}

	msg := &domain.ChatMessage{
		SessionID:   req.SessionID,
		SenderName:  name,
		SenderEmail: req.SenderEmail,
		Message:     req.Message,
	}
	if caller.Authenticated {
		id := caller.ID
		msg.UserID = &id
	}

	if err := s.repo.Create(ctx, msg); err != nil {
		return nil, err
	}

	s.hub.Broadcast(wsEvent{Type: "new_message", Payload: msg})
	return msg, nil
}

// AdminReply stores a support answer in the session and pushes it.
func (s *Service) AdminReply(ctx context.Context, adminID int64, req AdminReplyRequest) (*domain.ChatMessage, error) {
	msg := &domain.ChatMessage{
		SessionID:  req.SessionID,
		SenderName: adminSenderName,
		IsAdmin:    true,
		Message:    req.Message,
	}
	if adminID != 0 {
		id := adminID
		msg.UserID = &id
	}

	if err := s.repo.Create(ctx, msg); err != nil {
		return nil, err
	}

	s.hub.Broadcast(wsEvent{Type: "new_message", Payload: msg})
	return msg, nil
}

// visibleTo decides whether the caller may see one message of the
// session they are reading. Admin replies are private to the session
// owner: only a caller whose own user_<id> prefix matches the session
// sees them. Visitor messages within a session are mutually visible,
// the session id itself acts as the shared secret.
func visibleTo(caller Caller, m domain.ChatMessage) bool {
	if caller.Admin {
		return true
	}

	if caller.Authenticated {
		if m.UserID != nil && *m.UserID == caller.ID {
			return true
		}
		if m.IsAdmin {
			return strings.HasPrefix(m.SessionID, domain.UserSessionPrefix(caller.ID))
		}
		return true
	}

	return !m.IsAdmin
}

// History returns the session transcript the caller is allowed to see,
// oldest first. Without a session id only admins get anything: the
// full transcript across sessions.
func (s *Service) History(ctx context.Context, caller Caller, sessionID string) ([]domain.ChatMessage, error) {
	if sessionID == "" {
		if caller.Admin {
			return s.repo.ListAll(ctx)
		}
		return []domain.ChatMessage{}, nil
	}

	msgs, err := s.repo.ListBySession(ctx, sessionID)
	if err != nil {
		return nil, err
	}

	visible := make([]domain.ChatMessage, 0, len(msgs))
	for _, m := range msgs {
		if visibleTo(caller, m) {
			visible = append(visible, m)
		}
	}
	return visible, nil
}

// MarkRead stamps the unread admin replies of a session.
func (s *Service) MarkRead(ctx context.Context, sessionID string) error {
	return s.repo.MarkAdminRead(ctx, sessionID, time.Now().UTC())
}
