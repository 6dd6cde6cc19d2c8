package catalog

import (
	"context"
	"strings"
	"sync"

	"hireme/internal/domain"
	"hireme/internal/pkg/utils"

	"golang.org/x/sync/errgroup"
)

const joinConcurrency = 8

type Service struct {
	services ServiceRepository
	profiles ProfileReader
	photos   PhotoResolver
}

func NewService(services ServiceRepository, profiles ProfileReader, photos PhotoResolver) *Service {
	return &Service{services: services, profiles: profiles, photos: photos}
}

func (s *Service) Categories() []string {
	out := make([]string, len(domain.Categories))
	copy(out, domain.Categories)
	return out
}

func (s *Service) CreateService(ctx context.Context, callerID int64, req ServiceRequest) (*domain.Service, error) {
	if callerID == 0 {
		return nil, ErrNotAuthenticated
	}
	if err := validateRequest(&req); err != nil {
		return nil, err
	}

	provider, err := s.profiles.GetByUserID(ctx, callerID)
	if err != nil {
		return nil, err
	}
	if provider == nil || !provider.IsProvider {
		return nil, ErrNotProvider
	}

	svc := &domain.Service{
		ProviderID: callerID,
		IsActive:   true,
	}
	applyRequest(svc, req)

	if err := s.services.Create(ctx, svc); err != nil {
		return nil, err
	}
	svc.PhotoURLs = s.resolvePhotos(ctx, svc.Photos)
	return svc, nil
}

// UpdateService overwrites the editable fields. The active flag is untouched,
// so editing a deleted service does not bring it back.
func (s *Service) UpdateService(ctx context.Context, callerID, id int64, req ServiceRequest) (*domain.Service, error) {
	svc, err := s.owned(ctx, callerID, id)
	if err != nil {
		return nil, err
	}
	if err := validateRequest(&req); err != nil {
		return nil, err
	}

	applyRequest(svc, req)
	if err := s.services.Update(ctx, svc); err != nil {
		return nil, err
	}
	svc.PhotoURLs = s.resolvePhotos(ctx, svc.Photos)
	return svc, nil
}

// DeleteService hides the service from listings. Bookings keep referencing it.
func (s *Service) DeleteService(ctx context.Context, callerID, id int64) error {
	if _, err := s.owned(ctx, callerID, id); err != nil {
		return err
	}
	return s.services.SetActive(ctx, id, false)
}

// ListServices returns active services. A non-empty category takes
// precedence over location; location is ignored in that case.
func (s *Service) ListServices(ctx context.Context, q ListServicesQuery) ([]*domain.Service, error) {
	category := strings.TrimSpace(q.Category)
	location := strings.TrimSpace(q.Location)

	var (
		list []*domain.Service
		err  error
	)
	switch {
	case category != "":
		list, err = s.services.ListActiveByCategory(ctx, category)
	case location != "":
		list, err = s.services.ListActiveByLocation(ctx, location)
	default:
		list, err = s.services.ListActive(ctx)
	}
	if err != nil {
		return nil, err
	}

	names, err := s.providerNames(ctx, list)
	if err != nil {
		return nil, err
	}
	for _, svc := range list {
		svc.ProviderName = names[svc.ProviderID]
		if svc.ProviderName == "" {
			svc.ProviderName = domain.UnknownProviderName
		}
	}
	s.attachPhotos(ctx, list)
	return list, nil
}

// GetService returns the service with its provider profile, or nil.
// Inactive services are still returned.
func (s *Service) GetService(ctx context.Context, id int64) (*domain.Service, error) {
	svc, err := s.services.GetByID(ctx, id)
	if err != nil || svc == nil {
		return nil, err
	}

	provider, err := s.profiles.GetByUserID(ctx, svc.ProviderID)
	if err != nil {
		return nil, err
	}
	if provider != nil {
		provider.PhotoURL = nil
		if provider.PhotoRef != nil {
			if url, ok := s.resolve(ctx, *provider.PhotoRef); ok {
				provider.PhotoURL = &url
			}
		}
		svc.Provider = provider
		svc.ProviderName = provider.Name
	}
	svc.PhotoURLs = s.resolvePhotos(ctx, svc.Photos)
	return svc, nil
}

// GetMyServices lists every service of the caller, inactive ones included.
func (s *Service) GetMyServices(ctx context.Context, callerID int64) ([]*domain.Service, error) {
	if callerID == 0 {
		return nil, ErrNotAuthenticated
	}
	list, err := s.services.ListByProvider(ctx, callerID)
	if err != nil {
		return nil, err
	}
	s.attachPhotos(ctx, list)
	return list, nil
}

func (s *Service) owned(ctx context.Context, callerID, id int64) (*domain.Service, error) {
	if callerID == 0 {
		return nil, ErrNotAuthenticated
	}
	svc, err := s.services.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if svc == nil {
		return nil, ErrServiceNotFound
	}
	if svc.ProviderID != callerID {
		return nil, ErrNotOwner
	}
	return svc, nil
}

// providerNames looks up each distinct provider once.
func (s *Service) providerNames(ctx context.Context, list []*domain.Service) (map[int64]string, error) {
	names := make(map[int64]string)
	var mu sync.Mutex

	g, gctx := errgroup.WithContext(ctx)
	g.SetLimit(joinConcurrency)

	seen := make(map[int64]bool)
	for _, svc := range list {
		providerID := svc.ProviderID
		if seen[providerID] {
			continue
		}
		seen[providerID] = true

		g.Go(func() error {
			p, err := s.profiles.GetByUserID(gctx, providerID)
			if err != nil {
				return err
			}
			if p != nil {
				mu.Lock()
				names[providerID] = p.Name
				mu.Unlock()
			}
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return nil, err
	}
	return names, nil
}

func (s *Service) attachPhotos(ctx context.Context, list []*domain.Service) {
	var g errgroup.Group
	g.SetLimit(joinConcurrency)
	for _, svc := range list {
		g.Go(func() error {
			svc.PhotoURLs = s.resolvePhotos(ctx, svc.Photos)
			return nil
		})
	}
	_ = g.Wait()
}

// resolvePhotos keeps order and drops references that do not resolve.
func (s *Service) resolvePhotos(ctx context.Context, refs []string) []string {
	urls := make([]string, 0, len(refs))
	for _, ref := range refs {
		if url, ok := s.resolve(ctx, ref); ok {
			urls = append(urls, url)
		}
	}
	return urls
}

func (s *Service) resolve(ctx context.Context, ref string) (string, bool) {
	if s.photos == nil || ref == "" {
		return "", false
	}
	return s.photos.ResolveURL(ctx, ref)
}

func validateRequest(req *ServiceRequest) error {
	req.Title = strings.TrimSpace(req.Title)
	req.Description = strings.TrimSpace(req.Description)
	req.Category = strings.TrimSpace(req.Category)
	req.Location = strings.TrimSpace(req.Location)

	switch {
	case req.Title == "":
		return ErrTitleRequired
	case req.Description == "":
		return ErrDescriptionRequired
	case req.Category == "":
		return ErrCategoryRequired
	case req.Location == "":
		return ErrLocationRequired
	case !(req.Price > 0):
		return ErrInvalidPrice
	case len(req.Photos) > domain.MaxServicePhotos:
		return ErrTooManyPhotos
	}
	return nil
}

func applyRequest(svc *domain.Service, req ServiceRequest) {
	svc.Title = req.Title
	svc.Description = req.Description
	svc.Category = req.Category
	svc.Price = req.Price
	svc.Location = req.Location
	svc.Availability = nil
	if req.Availability != nil {
		svc.Availability = utils.StringPtr(strings.TrimSpace(*req.Availability))
	}
	svc.Photos = make([]string, 0, len(req.Photos))
	for _, ref := range req.Photos {
		if ref = strings.TrimSpace(ref); ref != "" {
			svc.Photos = append(svc.Photos, ref)
		}
	}
}
