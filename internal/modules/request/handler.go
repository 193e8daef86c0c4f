package request

import (
	"errors"
	"net/http"
	"strconv"

	"bt2horizon/internal/middleware"
	"bt2horizon/internal/pkg/response"
	"bt2horizon/internal/repository"

	"github.com/gin-gonic/gin"
)

type Handler struct {
	service *Service
}

func NewHandler(service *Service) *Handler {
	return &Handler{service: service}
}

// RegisterRoutes mounts under OptionalAuth so guests reach the list
// endpoint and get the empty set instead of a 401.
func (h *Handler) RegisterRoutes(api *gin.RouterGroup) {
	api.GET("/requests", h.List)
	api.GET("/requests/:id", h.Get)
	api.POST("/requests", h.Create)
}

func (h *Handler) RegisterProtectedRoutes(protected *gin.RouterGroup) {
	protected.POST("/requests/:id/payment-received", h.PaymentReceived)
}

func (h *Handler) RegisterAdminRoutes(admin *gin.RouterGroup) {
	admin.PUT("/requests/:id", h.AdminUpdate)
}

func callerFrom(c *gin.Context) Caller {
	return Caller{
		ID:            middleware.CallerID(c),
		Admin:         middleware.IsAdmin(c),
		Authenticated: middleware.CallerID(c) != 0,
	}
}

func (h *Handler) List(c *gin.Context) {
	var filter repository.RequestFilter
	if v := c.Query("userId"); v != "" {
		if id, err := strconv.ParseInt(v, 10, 64); err == nil {
			filter.UserID = &id
		}
	}
	filter.RequestType = c.Query("requestType")
	filter.Status = c.Query("status")

	rows, err := h.service.List(c.Request.Context(), callerFrom(c), filter)
	if err != nil {
		response.Error(c, http.StatusInternalServerError, "Failed to fetch requests")
		return
	}
	response.JSON(c, http.StatusOK, rows)
}

func (h *Handler) Get(c *gin.Context) {
	id, err := strconv.ParseInt(c.Param("id"), 10, 64)
	if err != nil {
		response.Error(c, http.StatusBadRequest, "Invalid id")
		return
	}

	req, err := h.service.Get(c.Request.Context(), callerFrom(c), id)
	if err != nil {
		switch {
		case errors.Is(err, ErrNotFound):
			response.Error(c, http.StatusNotFound, "Request not found")
		case errors.Is(err, ErrForbidden):
			response.Error(c, http.StatusForbidden, "Access denied")
		default:
			response.Error(c, http.StatusInternalServerError, "Failed to fetch request")
		}
		return
	}
	response.JSON(c, http.StatusOK, req)
}

func (h *Handler) Create(c *gin.Context) {
	var in CreateRequest
	if err := c.ShouldBindJSON(&in); err != nil {
		response.Error(c, http.StatusBadRequest, "Request type and title are required")
		return
	}

	req, err := h.service.Create(c.Request.Context(), callerFrom(c), in)
	if err != nil {
		if errors.Is(err, ErrNoUser) {
			response.Error(c, http.StatusUnauthorized, "Authentication required")
			return
		}
		response.Error(c, http.StatusInternalServerError, "Failed to create request")
		return
	}
	response.JSON(c, http.StatusCreated, req)
}

func (h *Handler) AdminUpdate(c *gin.Context) {
	id, err := strconv.ParseInt(c.Param("id"), 10, 64)
	if err != nil {
		response.Error(c, http.StatusBadRequest, "Invalid id")
		return
	}

	var in AdminUpdateRequest
	if err := c.ShouldBindJSON(&in); err != nil {
		response.Error(c, http.StatusBadRequest, "Invalid request body")
		return
	}

	req, err := h.service.AdminUpdate(c.Request.Context(), middleware.CallerID(c), id, in)
	if err != nil {
		switch {
		case errors.Is(err, ErrNotFound):
			response.Error(c, http.StatusNotFound, "Request not found")
		case errors.Is(err, ErrInvalidStatus):
			response.Error(c, http.StatusBadRequest, "Invalid status")
		case errors.Is(err, ErrInvalidPaymentStatus):
			response.Error(c, http.StatusBadRequest, "Invalid payment status")
		default:
			response.Error(c, http.StatusInternalServerError, "Failed to update request")
		}
		return
	}
	response.JSON(c, http.StatusOK, req)
}

func (h *Handler) PaymentReceived(c *gin.Context) {
	id, err := strconv.ParseInt(c.Param("id"), 10, 64)
	if err != nil {
		response.Error(c, http.StatusBadRequest, "Invalid id")
		return
	}

	req, err := h.service.MarkPaymentReceived(c.Request.Context(), callerFrom(c), id)
	if err != nil {
		switch {
		case errors.Is(err, ErrNotFound):
			response.Error(c, http.StatusNotFound, "Request not found")
		case errors.Is(err, ErrNotOwner):
			response.Error(c, http.StatusForbidden, "Access denied")
		default:
			response.Error(c, http.StatusInternalServerError, "Failed to update payment status")
		}
		return
	}
	response.JSON(c, http.StatusOK, req)
}
