package catalog

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
	api.GET("/posts", h.ListPosts)
	api.GET("/packages", h.ListPackages)
	api.GET("/crazy-deals", h.ListActiveDeals)
	api.GET("/affordable-destinations", h.ListActiveDestinations)
	api.GET("/calendar-deals", h.ListCalendarDeals)
}

func (h *Handler) RegisterAdminRoutes(admin *gin.RouterGroup) {
	admin.POST("/posts", h.CreatePost)
	admin.PUT("/posts/:id", h.UpdatePost)
	admin.DELETE("/posts/:id", h.DeletePost)

	admin.POST("/packages", h.CreatePackage)
	admin.PUT("/packages/:id", h.UpdatePackage)
	admin.DELETE("/packages/:id", h.DeletePackage)

	admin.GET("/crazy-deals/all", h.ListAllDeals)
	admin.POST("/crazy-deals", h.CreateDeal)
	admin.PUT("/crazy-deals/:id", h.UpdateDeal)
	admin.DELETE("/crazy-deals/:id", h.DeleteDeal)

	admin.GET("/affordable-destinations/all", h.ListAllDestinations)
	admin.POST("/affordable-destinations", h.CreateDestination)
	admin.PUT("/affordable-destinations/:id", h.UpdateDestination)
	admin.DELETE("/affordable-destinations/:id", h.DeleteDestination)

	admin.GET("/calendar-deals/all", h.ListAllCalendarDeals)
	admin.POST("/calendar-deals", h.UpsertCalendarDeal)
	admin.DELETE("/calendar-deals/:id", h.DeleteCalendarDeal)
}

func pathID(c *gin.Context) (int64, bool) {
	id, err := strconv.ParseInt(c.Param("id"), 10, 64)
	if err != nil || id <= 0 {
		response.Error(c, http.StatusBadRequest, "Invalid id")
		return 0, false
	}
	return id, true
}

// Posts

func (h *Handler) ListPosts(c *gin.Context) {
	posts, err := h.service.ListPosts(c.Request.Context())
	if err != nil {
		response.Error(c, http.StatusInternalServerError, "Failed to fetch posts")
		return
	}
	response.JSON(c, http.StatusOK, posts)
}

func (h *Handler) CreatePost(c *gin.Context) {
	var req PostRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.Error(c, http.StatusBadRequest, "Title is required")
		return
	}

	post, err := h.service.CreatePost(c.Request.Context(), req)
	if err != nil {
		response.Error(c, http.StatusInternalServerError, "Failed to create post")
		return
	}
	response.JSON(c, http.StatusCreated, post)
}

func (h *Handler) UpdatePost(c *gin.Context) {
	id, ok := pathID(c)
	if !ok {
		return
	}
	var req PostRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.Error(c, http.StatusBadRequest, "Title is required")
		return
	}

	post, err := h.service.UpdatePost(c.Request.Context(), id, req)
	if err != nil {
		response.Error(c, http.StatusInternalServerError, "Failed to update post")
		return
	}
	response.JSON(c, http.StatusOK, post)
}

func (h *Handler) DeletePost(c *gin.Context) {
	id, ok := pathID(c)
	if !ok {
		return
	}
	if err := h.service.DeletePost(c.Request.Context(), id); err != nil {
		response.Error(c, http.StatusInternalServerError, "Failed to delete post")
		return
	}
	response.OK(c)
}

// Packages

func (h *Handler) ListPackages(c *gin.Context) {
	pkgs, err := h.service.ListPackages(c.Request.Context())
	if err != nil {
		response.Error(c, http.StatusInternalServerError, "Failed to fetch packages")
		return
	}
	response.JSON(c, http.StatusOK, pkgs)
}

func (h *Handler) CreatePackage(c *gin.Context) {
	var req PackageRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.Error(c, http.StatusBadRequest, "Code and title are required")
		return
	}

	pkg, err := h.service.CreatePackage(c.Request.Context(), req)
	if err != nil {
		if errors.Is(err, ErrImageRequired) {
			response.Error(c, http.StatusBadRequest, "At least 1 image is required")
			return
		}
		response.Error(c, http.StatusInternalServerError, "Failed to create package")
		return
	}
	response.JSON(c, http.StatusCreated, pkg)
}

func (h *Handler) UpdatePackage(c *gin.Context) {
	id, ok := pathID(c)
	if !ok {
		return
	}
	var req PackageRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.Error(c, http.StatusBadRequest, "Code and title are required")
		return
	}

	pkg, err := h.service.UpdatePackage(c.Request.Context(), id, req)
	if err != nil {
		switch {
		case errors.Is(err, ErrNotFound):
			response.Error(c, http.StatusNotFound, "Package not found")
		case errors.Is(err, ErrImageRequired):
			response.Error(c, http.StatusBadRequest, "At least 1 image is required")
		default:
			response.Error(c, http.StatusInternalServerError, "Failed to update package")
		}
		return
	}
	response.JSON(c, http.StatusOK, pkg)
}

func (h *Handler) DeletePackage(c *gin.Context) {
	id, ok := pathID(c)
	if !ok {
		return
	}
	if err := h.service.DeletePackage(c.Request.Context(), id); err != nil {
		response.Error(c, http.StatusInternalServerError, "Failed to delete package")
		return
	}
	response.OK(c)
}

// Crazy deals

func (h *Handler) ListActiveDeals(c *gin.Context) {
	deals, err := h.service.ListActiveDeals(c.Request.Context())
	if err != nil {
		response.Error(c, http.StatusInternalServerError, "Failed to fetch deals")
		return
	}
	response.JSON(c, http.StatusOK, deals)
}

func (h *Handler) ListAllDeals(c *gin.Context) {
	deals, err := h.service.ListAllDeals(c.Request.Context())
	if err != nil {
		response.Error(c, http.StatusInternalServerError, "Failed to fetch deals")
		return
	}
	response.JSON(c, http.StatusOK, deals)
}

func (h *Handler) CreateDeal(c *gin.Context) {
	var req DealRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.Error(c, http.StatusBadRequest, "Title and end date are required")
		return
	}

	deal, err := h.service.CreateDeal(c.Request.Context(), req)
	if err != nil {
		response.Error(c, http.StatusInternalServerError, "Failed to create deal")
		return
	}
	response.JSON(c, http.StatusCreated, deal)
}

func (h *Handler) UpdateDeal(c *gin.Context) {
	id, ok := pathID(c)
	if !ok {
		return
	}
	var req DealRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.Error(c, http.StatusBadRequest, "Title and end date are required")
		return
	}

	deal, err := h.service.UpdateDeal(c.Request.Context(), id, req)
	if err != nil {
		response.Error(c, http.StatusInternalServerError, "Failed to update deal")
		return
	}
	response.JSON(c, http.StatusOK, deal)
}

func (h *Handler) DeleteDeal(c *gin.Context) {
	id, ok := pathID(c)
	if !ok {
		return
	}
	if err := h.service.DeleteDeal(c.Request.Context(), id); err != nil {
		response.Error(c, http.StatusInternalServerError, "Failed to delete deal")
		return
	}
	response.OK(c)
}

// Affordable destinations

func (h *Handler) ListActiveDestinations(c *gin.Context) {
	rows, err := h.service.ListActiveDestinations(c.Request.Context())
	if err != nil {
		response.Error(c, http.StatusInternalServerError, "Failed to fetch destinations")
		return
	}
	response.JSON(c, http.StatusOK, rows)
}

func (h *Handler) ListAllDestinations(c *gin.Context) {
	rows, err := h.service.ListAllDestinations(c.Request.Context())
	if err != nil {
		response.Error(c, http.StatusInternalServerError, "Failed to fetch destinations")
		return
	}
	response.JSON(c, http.StatusOK, rows)
}

func (h *Handler) CreateDestination(c *gin.Context) {
	var req DestinationRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.Error(c, http.StatusBadRequest, "Country and city are required")
		return
	}

	dest, err := h.service.CreateDestination(c.Request.Context(), req)
	if err != nil {
		response.Error(c, http.StatusInternalServerError, "Failed to create destination")
		return
	}
	response.JSON(c, http.StatusCreated, dest)
}

func (h *Handler) UpdateDestination(c *gin.Context) {
	id, ok := pathID(c)
	if !ok {
		return
	}
	var req DestinationRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.Error(c, http.StatusBadRequest, "Country and city are required")
		return
	}

	dest, err := h.service.UpdateDestination(c.Request.Context(), id, req)
	if err != nil {
		response.Error(c, http.StatusInternalServerError, "Failed to update destination")
		return
	}
	response.JSON(c, http.StatusOK, dest)
}

func (h *Handler) DeleteDestination(c *gin.Context) {
	id, ok := pathID(c)
	if !ok {
		return
	}
	if err := h.service.DeleteDestination(c.Request.Context(), id); err != nil {
		response.Error(c, http.StatusInternalServerError, "Failed to delete destination")
		return
	}
	response.OK(c)
}

// Calendar deals

func (h *Handler) ListCalendarDeals(c *gin.Context) {
	deals, err := h.service.ListCalendarDeals(
		c.Request.Context(),
		c.Query("startDate"),
		c.Query("endDate"),
		true,
	)
	if err != nil {
		response.Error(c, http.StatusInternalServerError, "Failed to fetch calendar deals")
		return
	}
	response.JSON(c, http.StatusOK, deals)
}

func (h *Handler) ListAllCalendarDeals(c *gin.Context) {
	deals, err := h.service.ListCalendarDeals(
		c.Request.Context(),
		c.Query("startDate"),
		c.Query("endDate"),
		false,
	)
	if err != nil {
		response.Error(c, http.StatusInternalServerError, "Failed to fetch calendar deals")
		return
	}
	response.JSON(c, http.StatusOK, deals)
}

func (h *Handler) UpsertCalendarDeal(c *gin.Context) {
	var req CalendarDealRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.Error(c, http.StatusBadRequest, "Deal date and type are required")
		return
	}

	deal, err := h.service.UpsertCalendarDeal(c.Request.Context(), req)
	if err != nil {
		switch {
		case errors.Is(err, ErrInvalidDate):
			response.Error(c, http.StatusBadRequest, "Invalid deal date, expected YYYY-MM-DD")
		case errors.Is(err, ErrInvalidDealType):
			response.Error(c, http.StatusBadRequest, "Deal type must be flight, hotel, package or visa")
		default:
			response.Error(c, http.StatusInternalServerError, "Failed to save calendar deal")
		}
		return
	}
	response.JSON(c, http.StatusOK, deal)
}

func (h *Handler) DeleteCalendarDeal(c *gin.Context) {
	id, ok := pathID(c)
	if !ok {
		return
	}
	if err := h.service.DeleteCalendarDeal(c.Request.Context(), id); err != nil {
		response.Error(c, http.StatusInternalServerError, "Failed to delete calendar deal")
		return
	}
	response.OK(c)
}
