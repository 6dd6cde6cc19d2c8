package upload

import (
	"net/http"

	"hireme/internal/pkg/response"
	"hireme/internal/pkg/validator"

	"github.com/gin-gonic/gin"
)

// Handler handles HTTP requests for photo uploads.
// Any authenticated user can upload. Ownership is tracked by user_id.
type Handler struct {
	service *Service
}

func NewHandler(service *Service) *Handler {
	return &Handler{service: service}
}

func (h *Handler) RegisterRoutes(rg *gin.RouterGroup) {
	rg.POST("/uploads/url", h.CreateUploadTarget)
	rg.PUT("/uploads/:ref", h.PutContent)
	rg.POST("/uploads", h.Upload)
}

// CreateUploadTarget godoc
// @Summary Reserve a photo reference
// @Description Returns the URL and method the client uploads the bytes to. The returned ref is what profiles and services store.
// @Tags Uploads
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param request body CreateTargetRequest true "content type and size"
// @Success 201 {object} response.Response{data=Target}
// @Failure 400,401 {object} response.Response
// @Router /uploads/url [post]
func (h *Handler) CreateUploadTarget(c *gin.Context) {
	var req CreateTargetRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.Error(c, http.StatusBadRequest, "INVALID_JSON", "Invalid request body")
		return
	}
	if errs := validator.Validate(&req); errs != nil {
		response.ErrorWithDetails(c, http.StatusBadRequest, "VALIDATION_ERROR", "Invalid upload request", errs)
		return
	}

	target, err := h.service.CreateUploadTarget(c.Request.Context(), c.GetInt64("user_id"), req.ContentType, req.Size)
	if err != nil {
		response.FromError(c, err)
		return
	}
	response.Success(c, http.StatusCreated, target)
}

// PutContent receives the raw bytes for a reserved reference.
func (h *Handler) PutContent(c *gin.Context) {
	c.Request.Body = http.MaxBytesReader(c.Writer, c.Request.Body, MaxFileSize+1)

	res, err := h.service.PutContent(
		c.Request.Context(),
		c.GetInt64("user_id"),
		c.Param("ref"),
		c.ContentType(),
		c.Request.Body,
	)
	if err != nil {
		response.FromError(c, err)
		return
	}
	response.Success(c, http.StatusOK, res)
}

// Upload godoc
// @Summary Upload a photo
// @Tags Uploads
// @Accept multipart/form-data
// @Produce json
// @Security BearerAuth
// @Param file formData file true "Image to upload"
// @Success 201 {object} response.Response{data=Result}
// @Failure 400,401 {object} response.Response
// @Router /uploads [post]
func (h *Handler) Upload(c *gin.Context) {
	fileHeader, err := c.FormFile("file")
	if err != nil {
		response.Error(c, http.StatusBadRequest, "VALIDATION_ERROR", "No file provided")
		return
	}

	res, err := h.service.Upload(c.Request.Context(), c.GetInt64("user_id"), fileHeader)
	if err != nil {
		response.FromError(c, err)
		return
	}
	response.Success(c, http.StatusCreated, res)
}
