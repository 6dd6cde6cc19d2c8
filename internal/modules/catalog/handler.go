package catalog

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

func (h *Handler) RegisterRoutes(public, protected *gin.RouterGroup) {
	public.GET("/categories", h.GetCategories)
	public.GET("/services", h.ListServices)
	public.GET("/services/:id", h.GetService)

	protected.GET("/services/mine", h.GetMyServices)
	protected.POST("/services", h.CreateService)
	protected.PUT("/services/:id", h.UpdateService)
	protected.DELETE("/services/:id", h.DeleteService)
}

/* ---------- PUBLIC ---------- */

func (h *Handler) GetCategories(c *gin.Context) {
	response.Success(c, http.StatusOK, h.service.Categories())
}

// ListServices handles GET /api/v1/services?category=&location=
func (h *Handler) ListServices(c *gin.Context) {
	var q ListServicesQuery
	if err := c.ShouldBindQuery(&q); err != nil {
		response.Error(c, http.StatusBadRequest, "VALIDATION_ERROR", "Invalid query")
		return
	}

	list, err := h.service.ListServices(c.Request.Context(), q)
	if err != nil {
		response.FromError(c, err)
		return
	}
	response.Success(c, http.StatusOK, list)
}

// GetService returns data: null for an unknown id, matching the read-side
// contract where absence is not an error.
func (h *Handler) GetService(c *gin.Context) {
	id, ok := parseID(c)
	if !ok {
		return
	}

	svc, err := h.service.GetService(c.Request.Context(), id)
	if err != nil {
		response.FromError(c, err)
		return
	}
	response.Success(c, http.StatusOK, svc)
}

/* ---------- PROVIDER ---------- */

func (h *Handler) GetMyServices(c *gin.Context) {
	list, err := h.service.GetMyServices(c.Request.Context(), c.GetInt64("user_id"))
	if err != nil {
		response.FromError(c, err)
		return
	}
	response.Success(c, http.StatusOK, list)
}

func (h *Handler) CreateService(c *gin.Context) {
	req, ok := bindServiceRequest(c)
	if !ok {
		return
	}

	svc, err := h.service.CreateService(c.Request.Context(), c.GetInt64("user_id"), req)
	if err != nil {
		response.FromError(c, err)
		return
	}
	response.Success(c, http.StatusCreated, svc)
}

func (h *Handler) UpdateService(c *gin.Context) {
	id, ok := parseID(c)
	if !ok {
		return
	}
	req, ok := bindServiceRequest(c)
	if !ok {
		return
	}

	svc, err := h.service.UpdateService(c.Request.Context(), c.GetInt64("user_id"), id, req)
	if err != nil {
		response.FromError(c, err)
		return
	}
	response.Success(c, http.StatusOK, svc)
}

func (h *Handler) DeleteService(c *gin.Context) {
	id, ok := parseID(c)
	if !ok {
		return
	}

	if err := h.service.DeleteService(c.Request.Context(), c.GetInt64("user_id"), id); err != nil {
		response.FromError(c, err)
		return
	}
	response.Success(c, http.StatusOK, gin.H{"id": id, "is_active": false})
}

func bindServiceRequest(c *gin.Context) (ServiceRequest, bool) {
	var req ServiceRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.Error(c, http.StatusBadRequest, "INVALID_JSON", "Invalid JSON body")
		return req, false
	}
	if errs := validator.Validate(&req); errs != nil {
		response.ErrorWithDetails(c, http.StatusBadRequest, "VALIDATION_ERROR", "Invalid service", errs)
		return req, false
	}
	return req, true
}

func parseID(c *gin.Context) (int64, bool) {
	id, err := strconv.ParseInt(c.Param("id"), 10, 64)
	if err != nil || id <= 0 {
		response.Error(c, http.StatusBadRequest, "VALIDATION_ERROR", "Invalid service id")
		return 0, false
	}
	return id, true
}
