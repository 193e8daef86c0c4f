package upload

import (
	"errors"
	"net/http"

	"bt2horizon/internal/pkg/response"

	"github.com/gin-gonic/gin"
)

type Handler struct {
	service *Service
}

func NewHandler(service *Service) *Handler {
	return &Handler{service: service}
}

func (h *Handler) RegisterAdminRoutes(admin *gin.RouterGroup) {
	admin.POST("/upload", h.Upload)
	admin.GET("/images", h.List)
	admin.DELETE("/images", h.Delete)
}

func (h *Handler) Upload(c *gin.Context) {
	file, err := c.FormFile("image")
	if err != nil {
		response.Error(c, http.StatusBadRequest, "No image file provided")
		return
	}

	stored, err := h.service.Store(
		c.Request.Context(),
		file,
		c.PostForm("bucket"),
		c.PostForm("folder"),
	)
	if err != nil {
		switch {
		case errors.Is(err, ErrFileTooLarge):
			response.Error(c, http.StatusRequestEntityTooLarge, "Image exceeds the 10MB limit")
		case errors.Is(err, ErrUnsupportedType):
			response.Error(c, http.StatusBadRequest, "Unsupported image type")
		case errors.Is(err, ErrBadPath):
			response.Error(c, http.StatusBadRequest, "Invalid bucket or folder")
		default:
			response.Error(c, http.StatusInternalServerError, "Failed to store image")
		}
		return
	}
	response.JSON(c, http.StatusCreated, stored)
}

func (h *Handler) List(c *gin.Context) {
	files, err := h.service.List(c.Request.Context(), c.Query("bucket"), c.Query("folder"))
	if err != nil {
		if errors.Is(err, ErrBadPath) {
			response.Error(c, http.StatusBadRequest, "Invalid bucket or folder")
			return
		}
		response.Error(c, http.StatusInternalServerError, "Failed to list images")
		return
	}
	response.JSON(c, http.StatusOK, files)
}

type deleteRequest struct {
	Bucket string `json:"bucket"`
	Path   string `json:"path" binding:"required"`
}

func (h *Handler) Delete(c *gin.Context) {
	var req deleteRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.Error(c, http.StatusBadRequest, "Path is required")
		return
	}

	if err := h.service.Delete(c.Request.Context(), req.Bucket, req.Path); err != nil {
		if errors.Is(err, ErrBadPath) {
			response.Error(c, http.StatusBadRequest, "Invalid path")
			return
		}
		response.Error(c, http.StatusInternalServerError, "Failed to delete image")
		return
	}
	response.OK(c)
}
