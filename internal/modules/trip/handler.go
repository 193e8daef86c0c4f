package trip

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

// RegisterRoutes mounts under OptionalAuth: browsing is public,
// join/leave accept guests with an email.
func (h *Handler) RegisterRoutes(api *gin.RouterGroup) {
	trips := api.Group("/travel-trips")
	{
		trips.GET("", h.List)
		trips.GET("/:id", h.Get)
		trips.POST("/:id/join", h.Join)
		trips.POST("/:id/leave", h.Leave)
		trips.GET("/user/:userId", h.TripsForUser)
	}
}

func (h *Handler) RegisterAdminRoutes(admin *gin.RouterGroup) {
	admin.POST("/travel-trips", h.Create)
	admin.PUT("/travel-trips/:id", h.Update)
	admin.DELETE("/travel-trips/:id", h.Delete)
}

func callerFrom(c *gin.Context) Caller {
	id := middleware.CallerID(c)
	return Caller{ID: id, Authenticated: id != 0}
}

func tripID(c *gin.Context) (int64, bool) {
	id, err := strconv.ParseInt(c.Param("id"), 10, 64)
	if err != nil || id <= 0 {
		response.Error(c, http.StatusBadRequest, "Invalid trip id")
		return 0, false
	}
	return id, true
}

func (h *Handler) List(c *gin.Context) {
	trips, err := h.service.List(c.Request.Context(), repository.TripFilter{
		Status:      c.Query("status"),
		Destination: c.Query("destination"),
		Country:     c.Query("country"),
	})
	if err != nil {
		response.Error(c, http.StatusInternalServerError, "Failed to fetch trips")
		return
	}
	response.JSON(c, http.StatusOK, trips)
}

func (h *Handler) Get(c *gin.Context) {
	id, ok := tripID(c)
	if !ok {
		return
	}

	detail, err := h.service.Get(c.Request.Context(), id)
	if err != nil {
		if errors.Is(err, ErrNotFound) {
			response.Error(c, http.StatusNotFound, "Trip not found")
			return
		}
		response.Error(c, http.StatusInternalServerError, "Failed to fetch trip")
		return
	}
	response.JSON(c, http.StatusOK, detail)
}

func (h *Handler) Create(c *gin.Context) {
	var req TripRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.Error(c, http.StatusBadRequest, "Title, destination, country and dates are required")
		return
	}

	trip, err := h.service.Create(c.Request.Context(), req)
	if err != nil {
		switch {
		case errors.Is(err, ErrImageRequired):
			response.Error(c, http.StatusBadRequest, "At least 1 image is required")
		case errors.Is(err, ErrMissingFields):
			response.Error(c, http.StatusBadRequest, "Title, destination, country and dates are required")
		default:
			response.Error(c, http.StatusInternalServerError, "Failed to create trip")
		}
		return
	}
	response.JSON(c, http.StatusCreated, trip)
}

func (h *Handler) Update(c *gin.Context) {
	id, ok := tripID(c)
	if !ok {
		return
	}
	var req TripRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.Error(c, http.StatusBadRequest, "Title, destination, country and dates are required")
		return
	}

	trip, err := h.service.Update(c.Request.Context(), id, req)
	if err != nil {
		switch {
		case errors.Is(err, ErrNotFound):
			response.Error(c, http.StatusNotFound, "Trip not found")
		case errors.Is(err, ErrImageRequired):
			response.Error(c, http.StatusBadRequest, "At least 1 image is required")
		case errors.Is(err, ErrInvalidStatus):
			response.Error(c, http.StatusBadRequest, "Invalid trip status")
		default:
			response.Error(c, http.StatusInternalServerError, "Failed to update trip")
		}
		return
	}
	response.JSON(c, http.StatusOK, trip)
}

func (h *Handler) Delete(c *gin.Context) {
	id, ok := tripID(c)
	if !ok {
		return
	}
	if err := h.service.Delete(c.Request.Context(), id); err != nil {
		response.Error(c, http.StatusInternalServerError, "Failed to delete trip")
		return
	}
	response.OK(c)
}

func (h *Handler) Join(c *gin.Context) {
	id, ok := tripID(c)
	if !ok {
		return
	}

	// Authenticated joins may come with an empty body.
	var req JoinRequest
	_ = c.ShouldBindJSON(&req)

	trip, err := h.service.Join(c.Request.Context(), callerFrom(c), id, req)
	if err != nil {
		switch {
		case errors.Is(err, ErrNotFound):
			response.Error(c, http.StatusNotFound, "Trip not found")
		case errors.Is(err, ErrIdentityRequired):
			response.Error(c, http.StatusBadRequest, "Guest email is required")
		case errors.Is(err, ErrTripNotOpen):
			response.Error(c, http.StatusBadRequest, "Trip is not open for registration")
		case errors.Is(err, ErrTripFull):
			response.Error(c, http.StatusConflict, "Trip is full")
		case errors.Is(err, ErrAlreadyJoined):
			response.Error(c, http.StatusConflict, "Already registered for this trip")
		default:
			response.Error(c, http.StatusInternalServerError, "Failed to join trip")
		}
		return
	}
	response.JSON(c, http.StatusOK, trip)
}

func (h *Handler) Leave(c *gin.Context) {
	id, ok := tripID(c)
	if !ok {
		return
	}

	var req LeaveRequest
	_ = c.ShouldBindJSON(&req)

	trip, err := h.service.Leave(c.Request.Context(), callerFrom(c), id, req)
	if err != nil {
		switch {
		case errors.Is(err, ErrNotFound):
			response.Error(c, http.StatusNotFound, "Trip not found")
		case errors.Is(err, ErrIdentityRequired):
			response.Error(c, http.StatusBadRequest, "Guest email is required")
		case errors.Is(err, ErrNotParticipating):
			response.Error(c, http.StatusNotFound, "No registration found for this trip")
		default:
			response.Error(c, http.StatusInternalServerError, "Failed to leave trip")
		}
		return
	}
	response.JSON(c, http.StatusOK, trip)
}

func (h *Handler) TripsForUser(c *gin.Context) {
	userID, err := strconv.ParseInt(c.Param("userId"), 10, 64)
	if err != nil || userID <= 0 {
		response.Error(c, http.StatusBadRequest, "Invalid user id")
		return
	}

	trips, err := h.service.TripsForUser(c.Request.Context(), userID)
	if err != nil {
		response.Error(c, http.StatusInternalServerError, "Failed to fetch trips")
		return
	}
	response.JSON(c, http.StatusOK, trips)
}
