package lead

import (
	"net/http"

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

// RegisterPublicRoutes mounts the submission endpoints. Both accept
// guests; OptionalAuth upstream attaches the user id when a token is
// present.
func (h *Handler) RegisterPublicRoutes(api *gin.RouterGroup) {
	api.POST("/leads", h.SubmitLead)
	api.POST("/travel-periods", h.SubmitTravelPeriod)
}

func (h *Handler) SubmitLead(c *gin.Context) {
	var req LeadRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.Error(c, http.StatusBadRequest, "Name and phone are required")
		return
	}

	result := h.service.SubmitLead(c.Request.Context(), optionalCaller(c), req)
	response.JSON(c, http.StatusOK, submitResponse{
		Success:   true,
		Message:   "Thank you! We will contact you shortly.",
		EmailSent: result.EmailSent,
		RequestID: result.RequestID,
	})
}

func (h *Handler) SubmitTravelPeriod(c *gin.Context) {
	var req TravelPeriodRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.Error(c, http.StatusBadRequest, "Start date and airports are required")
		return
	}
	if req.TripType == "return" && req.EndDate == "" {
		response.Error(c, http.StatusBadRequest, "End date is required for return trips")
		return
	}

	result := h.service.SubmitTravelPeriod(c.Request.Context(), optionalCaller(c), req)
	response.JSON(c, http.StatusOK, submitResponse{
		Success:   true,
		Message:   "Travel plan received.",
		EmailSent: result.EmailSent,
		RequestID: result.RequestID,
	})
}

func optionalCaller(c *gin.Context) *int64 {
	if id := middleware.CallerID(c); id != 0 {
		return &id
	}
	return nil
}
