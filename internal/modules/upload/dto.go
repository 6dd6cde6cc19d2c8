package upload

type CreateTargetRequest struct {
	ContentType string `json:"content_type" validate:"required"`
	Size        int64  `json:"size" validate:"required,gt=0"`
}

// Target tells the client where to send the bytes. Ref is what it later
// stores on a profile or service.
type Target struct {
	Ref       string            `json:"ref"`
	UploadURL string            `json:"upload_url"`
	Method    string            `json:"method"`
	Headers   map[string]string `json:"headers,omitempty"`
}

type Result struct {
	Ref         string `json:"ref"`
	URL         string `json:"url"`
	ContentType string `json:"content_type"`
	Size        int64  `json:"size"`
}
