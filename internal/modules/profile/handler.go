package profile

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

// RegisterRoutes mounts profile routes. optional resolves the caller when a
// token is present; protected requires one.
func (h *Handler) RegisterRoutes(public, optional, protected *gin.RouterGroup) {
	optional.GET("/profiles/me", h.GetCurrentProfile)
	protected.POST("/profiles", h.CreateProfile)
	protected.PUT("/profiles/me", h.UpdateProfile)
	public.GET("/profiles/:userId", h.GetProfileByUserID)
}

// GetCurrentProfile handles GET /api/v1/profiles/me
// @Summary Get my profile
// @Description Returns null data when unauthenticated or when no profile exists
// @Tags Profiles
// @Produce json
// @Success 200 {object} response.Response{data=domain.Profile}
// @Router /profiles/me [get]
func (h *Handler) GetCurrentProfile(c *gin.Context) {
	p, err := h.service.GetCurrentProfile(c.Request.Context(), c.GetInt64("user_id"))
	if err != nil {
		response.FromError(c, err)
		return
	}
	response.Success(c, http.StatusOK, p)
}

// CreateProfile handles POST /api/v1/profiles
// @Summary Create my profile
// @Tags Profiles
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param request body CreateProfileRequest true "Profile"
// @Success 201 {object} response.Response{data=domain.Profile}
// @Failure 400 {object} response.Response
// @Failure 409 {object} response.Response
// @Router /profiles [post]
func (h *Handler) CreateProfile(c *gin.Context) {
	var req CreateProfileRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.Error(c, http.StatusBadRequest, "INVALID_JSON", "Invalid JSON body")
		return
	}
	if errs := validator.Validate(&req); errs != nil {
		response.ErrorWithDetails(c, http.StatusBadRequest, "VALIDATION_ERROR", "Invalid profile", errs)
		return
	}

	p, err := h.service.CreateProfile(c.Request.Context(), c.GetInt64("user_id"), req)
	if err != nil {
		response.FromError(c, err)
		return
	}
	response.Success(c, http.StatusCreated, p)
}

// UpdateProfile handles PUT /api/v1/profiles/me
// @Summary Replace my profile
// @Tags Profiles
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param request body UpdateProfileRequest true "Profile"
// @Success 200 {object} response.Response{data=domain.Profile}
// @Failure 404 {object} response.Response
// @Router /profiles/me [put]
func (h *Handler) UpdateProfile(c *gin.Context) {
	var req UpdateProfileRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.Error(c, http.StatusBadRequest, "INVALID_JSON", "Invalid JSON body")
		return
	}
	if errs := validator.Validate(&req); errs != nil {
		response.ErrorWithDetails(c, http.StatusBadRequest, "VALIDATION_ERROR", "Invalid profile", errs)
		return
	}

	p, err := h.service.UpdateProfile(c.Request.Context(), c.GetInt64("user_id"), req)
	if err != nil {
		response.FromError(c, err)
		return
	}
	response.Success(c, http.StatusOK, p)
}

func (h *Handler) GetProfileByUserID(c *gin.Context) {
	userID, err := strconv.ParseInt(c.Param("userId"), 10, 64)
	if err != nil || userID <= 0 {
		response.Error(c, http.StatusBadRequest, "VALIDATION_ERROR", "Invalid user id")
		return
	}

	p, err := h.service.GetProfileByUserID(c.Request.Context(), userID)
	if err != nil {
		response.FromError(c, err)
		return
	}
	response.Success(c, http.StatusOK, p)
}
