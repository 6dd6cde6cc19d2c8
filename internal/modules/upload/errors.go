package upload

import "hireme/internal/pkg/apperr"

var (
	ErrNotAuthenticated = apperr.New(apperr.ErrUnauthenticated, "Not authenticated")
	ErrUploadNotFound   = apperr.New(apperr.ErrNotFound, "Upload not found")
	ErrNotOwner         = apperr.New(apperr.ErrForbidden, "You do not own this upload")
	ErrAlreadyUploaded  = apperr.New(apperr.ErrAlreadyExists, "Upload already completed")
	ErrFileTooLarge     = apperr.Validation("File exceeds maximum allowed size")
	ErrInvalidMimeType  = apperr.Validation("File type is not allowed")
	ErrEmptyFile        = apperr.Validation("File is empty")
	ErrContentMismatch  = apperr.Validation("Content type does not match the upload target")
)
