package chat

type SendMessageRequest struct {
	SessionID   string  `json:"sessionId" binding:"required"`
	Message     string  `json:"message" binding:"required"`
	SenderName  string  `json:"senderName"`
	SenderEmail *string `json:"senderEmail"`
}

type AdminReplyRequest struct {
	SessionID string `json:"sessionId" binding:"required"`
	Message   string `json:"message" binding:"required"`
}

type MarkReadRequest struct {
	SessionID string `json:"sessionId" binding:"required"`
}

// Caller mirrors what the auth middlewares established for this
// request.
type Caller struct {
	ID            int64
	Admin         bool
	Authenticated bool
}

// wsEvent is the single event shape pushed over the websocket.
type wsEvent struct {
	Type    string `json:"type"`
	Payload any    `json:"payload"`
}
