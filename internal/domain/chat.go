package domain

import (
	"strconv"
	"time"
)

// ChatMessage is one line of a support conversation. The client-held
// session id is the only key that groups a conversation: logged-in
// users get "user_<id>" sessions, guests a persisted "guest_<random>".
type ChatMessage struct {
	ID          int64      `json:"id" gorm:"primaryKey"`
	SessionID   string     `json:"session_id" gorm:"column:session_id;index"`
	UserID      *int64     `json:"user_id" gorm:"column:user_id"`
	SenderName  string     `json:"sender_name" gorm:"column:sender_name"`
	SenderEmail *string    `json:"sender_email,omitempty" gorm:"column:sender_email"`
	IsAdmin     bool       `json:"is_admin" gorm:"column:is_admin"`
	Message     string     `json:"message" gorm:"column:message;type:text"`
	ReadAt      *time.Time `json:"read_at,omitempty" gorm:"column:read_at"`
	CreatedAt   time.Time  `json:"created_at" gorm:"column:created_at;autoCreateTime"`
}

func (ChatMessage) TableName() string { return "chat_messages" }

// UserSessionPrefix is the session prefix that marks a session as
// owned by the given user. Admin replies in a session are only visible
// to the session owner.
func UserSessionPrefix(userID int64) string {
	return "user_" + strconv.FormatInt(userID, 10)
}
