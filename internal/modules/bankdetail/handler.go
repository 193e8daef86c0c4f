package bankdetail

import (
	"errors"
	"net/http"
	"strconv"

	"bt2horizon/internal/pkg/response"

	"github.com/gin-gonic/gin"
)

type Handler struct {
	service *Service
}

func NewHandler(service *Service) *Handler {
	return &Handler{service: service}
}

func (h *Handler) RegisterPublicRoutes(api *gin.RouterGroup) {
	api.GET("/bank-details", h.ListActive)
}

func (h *Handler) RegisterAdminRoutes(admin *gin.RouterGroup) {
	admin.POST("/bank-details", h.Create)
	admin.PUT("/bank-details/:id", h.Update)
}

func (h *Handler) ListActive(c *gin.Context) {
	rows, err := h.service.ListActive(c.Request.Context())
	if err != nil {
		response.Error(c, http.StatusInternalServerError, "Failed to fetch bank details")
		return
	}
	response.JSON(c, http.StatusOK, rows)
}

func (h *Handler) Create(c *gin.Context) {
	var req CreateBankDetailRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.Error(c, http.StatusBadRequest, "Bank name, account name and account number are required")
		return
	}

	b, err := h.service.Create(c.Request.Context(), req)
	if err != nil {
		response.Error(c, http.StatusInternalServerError, "Failed to create bank detail")
		return
	}
	response.JSON(c, http.StatusCreated, b)
}

func (h *Handler) Update(c *gin.Context) {
	id, err := strconv.ParseInt(c.Param("id"), 10, 64)
	if err != nil {
		response.Error(c, http.StatusBadRequest, "Invalid id")
		return
	}

	var req UpdateBankDetailRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.Error(c, http.StatusBadRequest, "Invalid request body")
		return
	}

	b, err := h.service.Update(c.Request.Context(), id, req)
	if err != nil {
		if errors.Is(err, ErrNotFound) {
			response.Error(c, http.StatusNotFound, "Bank detail not found")
			return
		}
		response.Error(c, http.StatusInternalServerError, "Failed to update bank detail")
		return
	}
	response.JSON(c, http.StatusOK, b)
}
