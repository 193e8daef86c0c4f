package chat

import (
	"log"
	"net/http"

	"bt2horizon/internal/middleware"
	"bt2horizon/internal/pkg/response"

	"github.com/gin-gonic/gin"
	"github.com/gorilla/websocket"
)

var upgrader = websocket.Upgrader{
	ReadBufferSize:  1024,
	WriteBufferSize: 1024,
	// Cross-origin is already policed by the CORS middleware; the
	// upgrade itself accepts any origin.
	CheckOrigin: func(r *http.Request) bool { return true },
}

type Handler struct {
	service *Service
	hub     *Hub
}

func NewHandler(service *Service, hub *Hub) *Handler {
	return &Handler{service: service, hub: hub}
}

// RegisterRoutes mounts under OptionalAuth: history visibility depends
// on who is asking, sending works for guests too.
func (h *Handler) RegisterRoutes(api *gin.RouterGroup) {
	chatGroup := api.Group("/chat")
	{
		chatGroup.POST("/messages", h.SendMessage)
		chatGroup.GET("/messages", h.History)
		chatGroup.POST("/mark-read", h.MarkRead)
		chatGroup.GET("/ws", h.WebSocket)
	}
}

func (h *Handler) RegisterAdminRoutes(admin *gin.RouterGroup) {
	admin.POST("/chat/admin-reply", h.AdminReply)
}

func callerFrom(c *gin.Context) Caller {
	id := middleware.CallerID(c)
	return Caller{
		ID:            id,
		Admin:         middleware.IsAdmin(c),
		Authenticated: id != 0,
	}
}

func (h *Handler) SendMessage(c *gin.Context) {
	var req SendMessageRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.Error(c, http.StatusBadRequest, "Session id and message are required")
		return
	}

	msg, err := h.service.SendMessage(c.Request.Context(), callerFrom(c), req)
	if err != nil {
		response.Error(c, http.StatusInternalServerError, "Failed to send message")
		return
	}
	response.JSON(c, http.StatusCreated, msg)
}

func (h *Handler) History(c *gin.Context) {
	msgs, err := h.service.History(c.Request.Context(), callerFrom(c), c.Query("sessionId"))
	if err != nil {
		response.Error(c, http.StatusInternalServerError, "Failed to fetch messages")
		return
	}
	response.JSON(c, http.StatusOK, msgs)
}

func (h *Handler) AdminReply(c *gin.Context) {
	var req AdminReplyRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.Error(c, http.StatusBadRequest, "Session id and message are required")
		return
	}

	msg, err := h.service.AdminReply(c.Request.Context(), middleware.CallerID(c), req)
	if err != nil {
		response.Error(c, http.StatusInternalServerError, "Failed to send reply")
		return
	}
	response.JSON(c, http.StatusCreated, msg)
}

func (h *Handler) MarkRead(c *gin.Context) {
	var req MarkReadRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.Error(c, http.StatusBadRequest, "Session id is required")
		return
	}

	if err := h.service.MarkRead(c.Request.Context(), req.SessionID); err != nil {
		response.Error(c, http.StatusInternalServerError, "Failed to mark messages read")
		return
	}
	response.OK(c)
}

// WebSocket upgrades the connection and parks it in the hub. The
// client sends nothing meaningful; the read loop only notices
// disconnects.
func (h *Handler) WebSocket(c *gin.Context) {
	conn, err := upgrader.Upgrade(c.Writer, c.Request, nil)
	if err != nil {
		log.Printf("chat: websocket upgrade failed: %v", err)
		return
	}

	h.hub.Register(conn)
	go func() {
		defer h.hub.Unregister(conn)
		for {
			if _, _, err := conn.ReadMessage(); err != nil {
				return
			}
		}
	}()
}
