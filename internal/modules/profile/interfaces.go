package profile

import (
	"context"

	"hireme/internal/domain"
)

type ProfileRepository interface {
	Create(ctx context.Context, p *domain.Profile) error
	GetByUserID(ctx context.Context, userID int64) (*domain.Profile, error)
	Update(ctx context.Context, p *domain.Profile) error
}

// PhotoResolver turns a stored photo reference into a fetchable URL.
type PhotoResolver interface {
	ResolveURL(ctx context.Context, ref string) (string, bool)
}
