package upload

import (
	"context"
	"io"
	"time"

	"hireme/internal/domain"
)

type Repository interface {
	Create(ctx context.Context, u *domain.Upload) error
	GetByID(ctx context.Context, id string) (*domain.Upload, error)
	MarkReady(ctx context.Context, id string, size int64) error
	ListPendingBefore(ctx context.Context, before time.Time, limit int) ([]*domain.Upload, error)
	Delete(ctx context.Context, id string) error
}

// ObjectStore holds the bytes behind a photo reference.
type ObjectStore interface {
	Put(ctx context.Context, key, contentType string, body io.Reader, size int64) error
	// Stat reports the stored size, or found=false when the object is missing.
	Stat(ctx context.Context, key string) (size int64, found bool, err error)
	URL(ctx context.Context, key string) (string, error)
	Delete(ctx context.Context, key string) error
}

// Presigner is implemented by stores that accept uploads directly from clients.
type Presigner interface {
	PresignPut(ctx context.Context, key, contentType string, size int64) (url string, headers map[string]string, err error)
}
