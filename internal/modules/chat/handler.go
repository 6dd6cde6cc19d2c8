package chat

import (
	"net/http"
	"strconv"

	"hireme/internal/pkg/response"
	"hireme/internal/pkg/validator"

	"github.com/gin-gonic/gin"
)

type Handler struct {
	service *Service
}

func NewHandler(service *Service) *Handler {
	return &Handler{service: service}
}

func (h *Handler) RegisterRoutes(rg *gin.RouterGroup) {
	rg.GET("/bookings/:id/messages", h.GetMessages)
	rg.POST("/bookings/:id/messages", h.SendMessage)
}

// GetMessages handles GET /api/v1/bookings/:id/messages
func (h *Handler) GetMessages(c *gin.Context) {
	bookingID, ok := bookingIDParam(c)
	if !ok {
		return
	}

	list, err := h.service.GetMessages(c.Request.Context(), c.GetInt64("user_id"), bookingID)
	if err != nil {
		response.FromError(c, err)
		return
	}
	response.Success(c, http.StatusOK, list)
}

// SendMessage handles POST /api/v1/bookings/:id/messages
func (h *Handler) SendMessage(c *gin.Context) {
	bookingID, ok := bookingIDParam(c)
	if !ok {
		return
	}

	var req SendMessageRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.Error(c, http.StatusBadRequest, "INVALID_JSON", "Invalid request body")
		return
	}
	if errs := validator.Validate(&req); errs != nil {
		response.ErrorWithDetails(c, http.StatusBadRequest, "VALIDATION_ERROR", "Invalid message", errs)
		return
	}

	msg, err := h.service.SendMessage(c.Request.Context(), c.GetInt64("user_id"), bookingID, req.Content)
	if err != nil {
		response.FromError(c, err)
		return
	}
	response.Success(c, http.StatusCreated, msg)
}

func bookingIDParam(c *gin.Context) (int64, bool) {
	id, err := strconv.ParseInt(c.Param("id"), 10, 64)
	if err != nil || id <= 0 {
		response.Error(c, http.StatusBadRequest, "VALIDATION_ERROR", "Invalid booking id")
		return 0, false
	}
	return id, true
}
