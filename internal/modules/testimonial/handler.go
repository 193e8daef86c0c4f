package testimonial

import (
	"errors"
	"net/http"
	"strconv"

	"bt2horizon/internal/middleware"
	"bt2horizon/internal/pkg/response"

	"github.com/gin-gonic/gin"
)

type Handler struct {
	service *Service
}

func NewHandler(service *Service) *Handler {
	return &Handler{service: service}
}

func (h *Handler) RegisterRoutes(api *gin.RouterGroup) {
	api.GET("/testimonials", h.ListApproved)
	api.POST("/testimonials", h.Submit)
}

func (h *Handler) RegisterAdminRoutes(admin *gin.RouterGroup) {
	admin.GET("/testimonials/all", h.ListAll)
	admin.PUT("/testimonials/:id", h.Moderate)
	admin.DELETE("/testimonials/:id", h.Delete)
}

func (h *Handler) ListApproved(c *gin.Context) {
	rows, err := h.service.ListApproved(c.Request.Context())
	if err != nil {
		response.Error(c, http.StatusInternalServerError, "Failed to fetch testimonials")
		return
	}
	response.JSON(c, http.StatusOK, rows)
}

func (h *Handler) ListAll(c *gin.Context) {
	rows, err := h.service.ListAll(c.Request.Context())
	if err != nil {
		response.Error(c, http.StatusInternalServerError, "Failed to fetch testimonials")
		return
	}
	response.JSON(c, http.StatusOK, rows)
}

func (h *Handler) Submit(c *gin.Context) {
	var req CreateTestimonialRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.Error(c, http.StatusBadRequest, "Name and text are required")
		return
	}

	var userID *int64
	if id := middleware.CallerID(c); id != 0 {
		userID = &id
	}

	t, err := h.service.Submit(c.Request.Context(), userID, req)
	if err != nil {
		switch {
		case errors.Is(err, ErrTextTooShort):
			response.Error(c, http.StatusBadRequest, "Testimonial text must be at least 20 characters")
		case errors.Is(err, ErrInvalidRating):
			response.Error(c, http.StatusBadRequest, "Rating must be between 1 and 5")
		default:
			response.Error(c, http.StatusInternalServerError, "Failed to submit testimonial")
		}
		return
	}
	response.JSON(c, http.StatusCreated, t)
}

func (h *Handler) Moderate(c *gin.Context) {
	id, err := strconv.ParseInt(c.Param("id"), 10, 64)
	if err != nil {
		response.Error(c, http.StatusBadRequest, "Invalid id")
		return
	}

	var req ModerateRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.Error(c, http.StatusBadRequest, "Status is required")
		return
	}

	t, err := h.service.Moderate(c.Request.Context(), id, req)
	if err != nil {
		switch {
		case errors.Is(err, ErrNotFound):
			response.Error(c, http.StatusNotFound, "Testimonial not found")
		case errors.Is(err, ErrInvalidStatus):
			response.Error(c, http.StatusBadRequest, "Invalid status")
		default:
			response.Error(c, http.StatusInternalServerError, "Failed to update testimonial")
		}
		return
	}
	response.JSON(c, http.StatusOK, t)
}

func (h *Handler) Delete(c *gin.Context) {
	id, err := strconv.ParseInt(c.Param("id"), 10, 64)
	if err != nil {
		response.Error(c, http.StatusBadRequest, "Invalid id")
		return
	}
	if err := h.service.Delete(c.Request.Context(), id); err != nil {
		response.Error(c, http.StatusInternalServerError, "Failed to delete testimonial")
		return
	}
	response.OK(c)
}
