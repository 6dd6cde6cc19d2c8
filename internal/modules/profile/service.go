package profile

import (
	"context"
	"strings"

	"hireme/internal/domain"
	"hireme/internal/pkg/utils"
	"hireme/internal/repository"
)

type Service struct {
	profiles ProfileRepository
	photos   PhotoResolver
}

func NewService(profiles ProfileRepository, photos PhotoResolver) *Service {
	return &Service{profiles: profiles, photos: photos}
}

// CreateProfile registers the caller's profile. The existence check and the
// insert are not atomic; the unique index on user_id turns a lost race into
// ErrProfileExists.
func (s *Service) CreateProfile(ctx context.Context, callerID int64, req CreateProfileRequest) (*domain.Profile, error) {
	if callerID == 0 {
		return nil, ErrNotAuthenticated
	}
	name := strings.TrimSpace(req.Name)
	if name == "" {
		return nil, ErrNameRequired
	}

	existing, err := s.profiles.GetByUserID(ctx, callerID)
	if err != nil {
		return nil, err
	}
	if existing != nil {
		return nil, ErrProfileExists
	}

	p := &domain.Profile{
		UserID:      callerID,
		Name:        name,
		Bio:         optional(req.Bio),
		Location:    optional(req.Location),
		ContactInfo: optional(req.ContactInfo),
		IsProvider:  req.IsProvider,
	}
	if err := s.profiles.Create(ctx, p); err != nil {
		if repository.IsUniqueViolation(err) {
			return nil, ErrProfileExists
		}
		return nil, err
	}
	return p, nil
}

// UpdateProfile overwrites name, bio, location, contact info and photo.
// is_provider is fixed at creation.
func (s *Service) UpdateProfile(ctx context.Context, callerID int64, req UpdateProfileRequest) (*domain.Profile, error) {
	if callerID == 0 {
		return nil, ErrNotAuthenticated
	}
	name := strings.TrimSpace(req.Name)
	if name == "" {
		return nil, ErrNameRequired
	}

	p, err := s.profiles.GetByUserID(ctx, callerID)
	if err != nil {
		return nil, err
	}
	if p == nil {
		return nil, ErrProfileNotFound
	}

	p.Name = name
	p.Bio = optional(req.Bio)
	p.Location = optional(req.Location)
	p.ContactInfo = optional(req.ContactInfo)
	p.PhotoRef = optional(req.PhotoRef)

	if err := s.profiles.Update(ctx, p); err != nil {
		return nil, err
	}
	return s.withPhoto(ctx, p), nil
}

// GetCurrentProfile returns nil without an error when there is no caller or
// the caller has not created a profile yet.
func (s *Service) GetCurrentProfile(ctx context.Context, callerID int64) (*domain.Profile, error) {
	if callerID == 0 {
		return nil, nil
	}
	return s.GetProfileByUserID(ctx, callerID)
}

func (s *Service) GetProfileByUserID(ctx context.Context, userID int64) (*domain.Profile, error) {
	p, err := s.profiles.GetByUserID(ctx, userID)
	if err != nil || p == nil {
		return nil, err
	}
	return s.withPhoto(ctx, p), nil
}

func (s *Service) withPhoto(ctx context.Context, p *domain.Profile) *domain.Profile {
	p.PhotoURL = nil
	if p.PhotoRef == nil || s.photos == nil {
		return p
	}
	if url, ok := s.photos.ResolveURL(ctx, *p.PhotoRef); ok {
		p.PhotoURL = &url
	}
	return p
}

func optional(v *string) *string {
	if v == nil {
		return nil
	}
	return utils.StringPtr(strings.TrimSpace(*v))
}
