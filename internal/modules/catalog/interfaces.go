package catalog

import (
	"context"

	"hireme/internal/domain"
)

type ServiceRepository interface {
	Create(ctx context.Context, s *domain.Service) error
	GetByID(ctx context.Context, id int64) (*domain.Service, error)
	Update(ctx context.Context, s *domain.Service) error
	SetActive(ctx context.Context, id int64, active bool) error
	ListActive(ctx context.Context) ([]*domain.Service, error)
	ListActiveByCategory(ctx context.Context, category string) ([]*domain.Service, error)
	ListActiveByLocation(ctx context.Context, location string) ([]*domain.Service, error)
	ListByProvider(ctx context.Context, providerID int64) ([]*domain.Service, error)
}

type ProfileReader interface {
	GetByUserID(ctx context.Context, userID int64) (*domain.Profile, error)
}

type PhotoResolver interface {
	ResolveURL(ctx context.Context, ref string) (string, bool)
}
