package auth

import (
	"errors"
	"net/http"

	"bt2horizon/internal/middleware"
	"bt2horizon/internal/pkg/response"

	"github.com/gin-gonic/gin"
)

// Handler manages the HTTP surface for authentication and accounts.
type Handler struct {
	service *Service
}

func NewHandler(service *Service) *Handler {
	return &Handler{service: service}
}

func (h *Handler) RegisterPublicRoutes(api *gin.RouterGroup) {
	authGroup := api.Group("/auth")
	{
		authGroup.POST("/register", h.Register)
		authGroup.POST("/login", h.Login)
	}
}

func (h *Handler) RegisterProtectedRoutes(protected *gin.RouterGroup) {
	protected.GET("/auth/me", h.Me)
}

func (h *Handler) RegisterAdminRoutes(admin *gin.RouterGroup) {
	admin.GET("/users", h.ListUsers)
}

func (h *Handler) Register(c *gin.Context) {
	var req RegisterRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.Error(c, http.StatusBadRequest, "Email and password are required")
		return
	}

	user, token, err := h.service.Register(c.Request.Context(), req)
	if err != nil {
		switch {
		case errors.Is(err, ErrEmailAlreadyExists):
			response.Error(c, http.StatusBadRequest, "User already exists")
		case errors.Is(err, ErrInvalidGender):
			response.Error(c, http.StatusBadRequest, "Invalid gender value")
		case errors.Is(err, ErrInvalidAgeRange):
			response.Error(c, http.StatusBadRequest, "Invalid age range value")
		default:
			response.Error(c, http.StatusInternalServerError, "Registration failed")
		}
		return
	}

	response.JSON(c, http.StatusCreated, AuthResponse{Token: token, User: toUserView(user)})
}

func (h *Handler) Login(c *gin.Context) {
	var req LoginRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.Error(c, http.StatusBadRequest, "Email and password are required")
		return
	}

	user, token, err := h.service.Login(c.Request.Context(), req)
	if err != nil {
		if errors.Is(err, ErrInvalidCredentials) {
			response.Error(c, http.StatusUnauthorized, "Invalid credentials")
			return
		}
		response.Error(c, http.StatusInternalServerError, "Login failed")
		return
	}

	response.JSON(c, http.StatusOK, AuthResponse{Token: token, User: toUserView(user)})
}

func (h *Handler) Me(c *gin.Context) {
	user, err := h.service.GetProfile(c.Request.Context(), middleware.CallerID(c))
	if err != nil {
		response.Error(c, http.StatusNotFound, "User not found")
		return
	}
	response.JSON(c, http.StatusOK, toUserView(user))
}

func (h *Handler) ListUsers(c *gin.Context) {
	users, err := h.service.ListUsers(c.Request.Context())
	if err != nil {
		response.Error(c, http.StatusInternalServerError, "Failed to fetch users")
		return
	}

	views := make([]UserView, 0, len(users))
	for i := range users {
		views = append(views, toUserView(&users[i]))
	}
	response.JSON(c, http.StatusOK, views)
}
