package auth

import (
	"net/http"

	"hireme/internal/pkg/response"
	"hireme/internal/pkg/validator"

	"github.com/gin-gonic/gin"
)

// Handler manages all HTTP interactions for authentication
type Handler struct {
	service *Service
}

func NewHandler(service *Service) *Handler {
	return &Handler{service: service}
}

// RegisterPublicRoutes mounts sign-in routes; extra middleware (rate limiting)
// applies to the /auth group only.
func (h *Handler) RegisterPublicRoutes(v1 *gin.RouterGroup, mw ...gin.HandlerFunc) {
	authGroup := v1.Group("/auth", mw...)
	{
		authGroup.POST("/register", h.Register)
		authGroup.POST("/login", h.Login)
		authGroup.POST("/anonymous", h.SignInAnonymous)
	}
}

func (h *Handler) RegisterProtectedRoutes(protected *gin.RouterGroup) {
	protected.GET("/auth/me", h.GetMe)
}

// Register creates a password account.
// @Summary		Register
// @Tags		Auth
// @Param		request	body	RegisterRequest	true	"email and password (min 8 chars)"
// @Success		201	{object}	response.Response{data=AuthResult}
// @Failure		400	{object}	response.Response
// @Failure		409	{object}	response.Response
// @Router		/auth/register [POST]
func (h *Handler) Register(c *gin.Context) {
	var req RegisterRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.Error(c, http.StatusBadRequest, "VALIDATION_ERROR", "Invalid request body")
		return
	}
	if errs := validator.Validate(&req); errs != nil {
		response.ErrorWithDetails(c, http.StatusBadRequest, "VALIDATION_ERROR", "Invalid email or password", errs)
		return
	}

	res, err := h.service.Register(c.Request.Context(), req)
	if err != nil {
		response.FromError(c, err)
		return
	}
	response.Success(c, http.StatusCreated, res)
}

// Login exchanges email and password for an access token.
// @Summary		Login
// @Tags		Auth
// @Param		request	body	LoginRequest	true	"credentials"
// @Success		200	{object}	response.Response{data=AuthResult}
// @Failure		401	{object}	response.Response
// @Router		/auth/login [POST]
func (h *Handler) Login(c *gin.Context) {
	var req LoginRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.Error(c, http.StatusBadRequest, "VALIDATION_ERROR", "Invalid request body")
		return
	}
	if errs := validator.Validate(&req); errs != nil {
		response.ErrorWithDetails(c, http.StatusBadRequest, "VALIDATION_ERROR", "Invalid credentials format", errs)
		return
	}

	res, err := h.service.Login(c.Request.Context(), req)
	if err != nil {
		response.FromError(c, err)
		return
	}
	response.Success(c, http.StatusOK, res)
}

func (h *Handler) SignInAnonymous(c *gin.Context) {
	res, err := h.service.SignInAnonymous(c.Request.Context())
	if err != nil {
		response.FromError(c, err)
		return
	}
	response.Success(c, http.StatusCreated, res)
}

func (h *Handler) GetMe(c *gin.Context) {
	user, err := h.service.GetMe(c.Request.Context(), c.GetInt64("user_id"))
	if err != nil {
		response.FromError(c, err)
		return
	}
	response.Success(c, http.StatusOK, user)
}
