package formdraft

import (
	"errors"
	"net/http"
	"strconv"

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

func (h *Handler) RegisterRoutes(api *gin.RouterGroup) {
	drafts := api.Group("/form-drafts")
	{
		drafts.GET("", h.List)
		drafts.GET("/:id", h.Get)
		drafts.POST("", h.Create)
		drafts.PUT("/:id", h.Update)
		drafts.DELETE("/:id", h.Delete)
	}
}

func draftID(c *gin.Context) (int64, bool) {
	id, err := strconv.ParseInt(c.Param("id"), 10, 64)
	if err != nil || id <= 0 {
		response.Error(c, http.StatusBadRequest, "Invalid id")
		return 0, false
	}
	return id, true
}

func (h *Handler) List(c *gin.Context) {
	var filter repository.FormDraftFilter
	if v := c.Query("userId"); v != "" {
		if id, err := strconv.ParseInt(v, 10, 64); err == nil {
			filter.UserID = &id
		}
	}
	filter.FormType = c.Query("formType")
	filter.Status = c.Query("status")

	drafts, err := h.service.List(c.Request.Context(), filter)
	if err != nil {
		response.Error(c, http.StatusInternalServerError, "Failed to fetch drafts")
		return
	}
	response.JSON(c, http.StatusOK, drafts)
}

func (h *Handler) Get(c *gin.Context) {
	id, ok := draftID(c)
	if !ok {
		return
	}

	draft, err := h.service.Get(c.Request.Context(), id)
	if err != nil {
		if errors.Is(err, ErrNotFound) {
			response.Error(c, http.StatusNotFound, "Draft not found")
			return
		}
		response.Error(c, http.StatusInternalServerError, "Failed to fetch draft")
		return
	}
	response.JSON(c, http.StatusOK, draft)
}

func (h *Handler) Create(c *gin.Context) {
	var req CreateDraftRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.Error(c, http.StatusBadRequest, "Form type and form data are required")
		return
	}

	draft, err := h.service.Create(c.Request.Context(), req)
	if err != nil {
		if errors.Is(err, ErrInvalidStatus) {
			response.Error(c, http.StatusBadRequest, "Invalid status")
			return
		}
		response.Error(c, http.StatusInternalServerError, "Failed to save draft")
		return
	}
	response.JSON(c, http.StatusCreated, draft)
}

func (h *Handler) Update(c *gin.Context) {
	id, ok := draftID(c)
	if !ok {
		return
	}
	var req UpdateDraftRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.Error(c, http.StatusBadRequest, "Invalid request body")
		return
	}

	draft, err := h.service.Update(c.Request.Context(), id, req)
	if err != nil {
		switch {
		case errors.Is(err, ErrNotFound):
			response.Error(c, http.StatusNotFound, "Draft not found")
		case errors.Is(err, ErrInvalidStatus):
			response.Error(c, http.StatusBadRequest, "Invalid status")
		default:
			response.Error(c, http.StatusInternalServerError, "Failed to save draft")
		}
		return
	}
	response.JSON(c, http.StatusOK, draft)
}

func (h *Handler) Delete(c *gin.Context) {
	id, ok := draftID(c)
	if !ok {
		return
	}
	if err := h.service.Delete(c.Request.Context(), id); err != nil {
		if errors.Is(err, ErrNotFound) {
			response.Error(c, http.StatusNotFound, "Draft not found")
			return
		}
		response.Error(c, http.StatusInternalServerError, "Failed to delete draft")
		return
	}
	response.OK(c)
}
