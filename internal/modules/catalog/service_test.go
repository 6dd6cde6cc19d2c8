package catalog

import (
	"context"
	"errors"
	"testing"

	"hireme/internal/domain"
	"hireme/internal/pkg/apperr"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

/* ==================== MOCKS ==================== */

type MockServiceRepository struct {
	mock.Mock
}

func (m *MockServiceRepository) Create(ctx context.Context, s *domain.Service) error {
	args := m.Called(ctx, s)
	if args.Error(0) == nil {
		s.ID = 100
	}
	return args.Error(0)
}

func (m *MockServiceRepository) GetByID(ctx context.Context, id int64) (*domain.Service, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Service), args.Error(1)
}

func (m *MockServiceRepository) Update(ctx context.Context, s *domain.Service) error {
	return m.Called(ctx, s).Error(0)
}

func (m *MockServiceRepository) SetActive(ctx context.Context, id int64, active bool) error {
	return m.Called(ctx, id, active).Error(0)
}

func (m *MockServiceRepository) ListActive(ctx context.Context) ([]*domain.Service, error) {
	args := m.Called(ctx)
	return args.Get(0).([]*domain.Service), args.Error(1)
}

func (m *MockServiceRepository) ListActiveByCategory(ctx context.Context, category string) ([]*domain.Service, error) {
	args := m.Called(ctx, category)
	return args.Get(0).([]*domain.Service), args.Error(1)
}

func (m *MockServiceRepository) ListActiveByLocation(ctx context.Context, location string) ([]*domain.Service, error) {
	args := m.Called(ctx, location)
	return args.Get(0).([]*domain.Service), args.Error(1)
}

func (m *MockServiceRepository) ListByProvider(ctx context.Context, providerID int64) ([]*domain.Service, error) {
	args := m.Called(ctx, providerID)
	return args.Get(0).([]*domain.Service), args.Error(1)
}

// profileMap is safe for the concurrent lookups done by ListServices.
type profileMap map[int64]*domain.Profile

func (p profileMap) GetByUserID(_ context.Context, userID int64) (*domain.Profile, error) {
	if prof, ok := p[userID]; ok {
		cp := *prof
		return &cp, nil
	}
	return nil, nil
}

type failingProfiles struct{}

func (failingProfiles) GetByUserID(context.Context, int64) (*domain.Profile, error) {
	return nil, errors.New("profiles unavailable")
}

type stubResolver map[string]string

func (s stubResolver) ResolveURL(_ context.Context, ref string) (string, bool) {
	url, ok := s[ref]
	return url, ok
}

func validRequest() ServiceRequest {
	return ServiceRequest{
		Title:       "Guitar lessons",
		Description: "Beginner friendly",
		Category:    "Tutoring",
		Price:       40,
		Location:    "Austin",
		Photos:      []string{"p1", "p2"},
	}
}

/* ==================== CREATE ==================== */

func TestCreateService_Success(t *testing.T) {
	repo := new(MockServiceRepository)
	profiles := profileMap{1: {UserID: 1, Name: "Ann", IsProvider: true}}
	svc := NewService(repo, profiles, stubResolver{"p1": "https://cdn/p1"})
	ctx := context.Background()

	repo.On("Create", ctx, mock.MatchedBy(func(s *domain.Service) bool {
		return s.ProviderID == 1 && s.IsActive && len(s.Photos) == 2
	})).Return(nil)

	got, err := svc.CreateService(ctx, 1, validRequest())
	require.NoError(t, err)
	assert.Equal(t, int64(100), got.ID)
	assert.Equal(t, []string{"https://cdn/p1"}, got.PhotoURLs)
	repo.AssertExpectations(t)
}

func TestCreateService_Rejections(t *testing.T) {
	profiles := profileMap{
		1: {UserID: 1, Name: "Ann", IsProvider: true},
		2: {UserID: 2, Name: "Bob", IsProvider: false},
	}

	tests := []struct {
		name   string
		caller int64
		mutate func(r *ServiceRequest)
		kind   error
	}{
		{"unauthenticated", 0, func(*ServiceRequest) {}, apperr.ErrUnauthenticated},
		{"no profile", 3, func(*ServiceRequest) {}, apperr.ErrForbidden},
		{"not a provider", 2, func(*ServiceRequest) {}, apperr.ErrForbidden},
		{"zero price", 1, func(r *ServiceRequest) { r.Price = 0 }, apperr.ErrValidation},
		{"negative price", 1, func(r *ServiceRequest) { r.Price = -5 }, apperr.ErrValidation},
		{"blank title", 1, func(r *ServiceRequest) { r.Title = "  " }, apperr.ErrValidation},
		{"four photos", 1, func(r *ServiceRequest) { r.Photos = []string{"a", "b", "c", "d"} }, apperr.ErrValidation},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			repo := new(MockServiceRepository)
			svc := NewService(repo, profiles, nil)

			req := validRequest()
			tt.mutate(&req)

			_, err := svc.CreateService(context.Background(), tt.caller, req)
			assert.ErrorIs(t, err, tt.kind)
			repo.AssertNotCalled(t, "Create", mock.Anything, mock.Anything)
		})
	}
}

/* ==================== UPDATE / DELETE ==================== */

func TestUpdateService_OwnerOnly(t *testing.T) {
	repo := new(MockServiceRepository)
	svc := NewService(repo, profileMap{}, nil)
	ctx := context.Background()

	repo.On("GetByID", ctx, int64(7)).Return(&domain.Service{ID: 7, ProviderID: 1, IsActive: true}, nil)

	_, err := svc.UpdateService(ctx, 2, 7, validRequest())
	assert.ErrorIs(t, err, ErrNotOwner)
	repo.AssertNotCalled(t, "Update", mock.Anything, mock.Anything)
}

func TestUpdateService_NotFound(t *testing.T) {
	repo := new(MockServiceRepository)
	svc := NewService(repo, profileMap{}, nil)
	ctx := context.Background()

	repo.On("GetByID", ctx, int64(7)).Return(nil, nil)

	_, err := svc.UpdateService(ctx, 1, 7, validRequest())
	assert.ErrorIs(t, err, apperr.ErrNotFound)
}

func TestUpdateService_KeepsActiveFlagAndClearsAvailability(t *testing.T) {
	repo := new(MockServiceRepository)
	svc := NewService(repo, profileMap{}, nil)
	ctx := context.Background()

	avail := "weekends"
	stored := &domain.Service{ID: 7, ProviderID: 1, IsActive: false, Availability: &avail}
	repo.On("GetByID", ctx, int64(7)).Return(stored, nil)
	repo.On("Update", ctx, stored).Return(nil)

	got, err := svc.UpdateService(ctx, 1, 7, validRequest())
	require.NoError(t, err)
	assert.False(t, got.IsActive)
	assert.Nil(t, got.Availability)
	assert.Equal(t, "Guitar lessons", got.Title)
}

func TestDeleteService(t *testing.T) {
	repo := new(MockServiceRepository)
	svc := NewService(repo, profileMap{}, nil)
	ctx := context.Background()

	repo.On("GetByID", ctx, int64(7)).Return(&domain.Service{ID: 7, ProviderID: 1, IsActive: true}, nil)
	repo.On("SetActive", ctx, int64(7), false).Return(nil)

	require.NoError(t, svc.DeleteService(ctx, 1, 7))
	assert.ErrorIs(t, svc.DeleteService(ctx, 2, 7), apperr.ErrForbidden)
	repo.AssertNumberOfCalls(t, "SetActive", 1)
}

/* ==================== READS ==================== */

func TestListServices_FilterPrecedence(t *testing.T) {
	repo := new(MockServiceRepository)
	svc := NewService(repo, profileMap{}, nil)
	ctx := context.Background()

	repo.On("ListActiveByCategory", ctx, "Tutoring").Return([]*domain.Service{}, nil).Once()
	_, err := svc.ListServices(ctx, ListServicesQuery{Category: "Tutoring", Location: "Austin"})
	require.NoError(t, err)

	repo.On("ListActiveByLocation", ctx, "Austin").Return([]*domain.Service{}, nil).Once()
	_, err = svc.ListServices(ctx, ListServicesQuery{Category: " ", Location: "Austin"})
	require.NoError(t, err)

	repo.On("ListActive", ctx).Return([]*domain.Service{}, nil).Once()
	_, err = svc.ListServices(ctx, ListServicesQuery{})
	require.NoError(t, err)

	repo.AssertExpectations(t)
}

func TestListServices_ProviderNamesAndPhotos(t *testing.T) {
	repo := new(MockServiceRepository)
	profiles := profileMap{1: {UserID: 1, Name: "Ann"}}
	svc := NewService(repo, profiles, stubResolver{"a": "https://cdn/a", "c": "https://cdn/c"})
	ctx := context.Background()

	repo.On("ListActive", ctx).Return([]*domain.Service{
		{ID: 1, ProviderID: 1, Photos: []string{"a", "b", "c"}},
		{ID: 2, ProviderID: 9},
		{ID: 3, ProviderID: 1},
	}, nil)

	list, err := svc.ListServices(ctx, ListServicesQuery{})
	require.NoError(t, err)
	require.Len(t, list, 3)
	assert.Equal(t, "Ann", list[0].ProviderName)
	assert.Equal(t, []string{"https://cdn/a", "https://cdn/c"}, list[0].PhotoURLs)
	assert.Equal(t, domain.UnknownProviderName, list[1].ProviderName)
	assert.NotNil(t, list[1].PhotoURLs)
	assert.Empty(t, list[1].PhotoURLs)
}

func TestListServices_ProfileStoreErrorFails(t *testing.T) {
	repo := new(MockServiceRepository)
	svc := NewService(repo, failingProfiles{}, nil)
	ctx := context.Background()

	repo.On("ListActive", ctx).Return([]*domain.Service{{ID: 1, ProviderID: 1}}, nil)

	_, err := svc.ListServices(ctx, ListServicesQuery{})
	assert.EqualError(t, err, "profiles unavailable")
}

func TestGetService(t *testing.T) {
	repo := new(MockServiceRepository)
	ref := "avatar"
	profiles := profileMap{1: {UserID: 1, Name: "Ann", PhotoRef: &ref}}
	svc := NewService(repo, profiles, stubResolver{"avatar": "https://cdn/avatar"})
	ctx := context.Background()

	repo.On("GetByID", ctx, int64(5)).Return(&domain.Service{ID: 5, ProviderID: 1, IsActive: false}, nil)
	repo.On("GetByID", ctx, int64(6)).Return(nil, nil)

	got, err := svc.GetService(ctx, 5)
	require.NoError(t, err)
	require.NotNil(t, got.Provider)
	assert.Equal(t, "Ann", got.Provider.Name)
	assert.Equal(t, "https://cdn/avatar", *got.Provider.PhotoURL)

	missing, err := svc.GetService(ctx, 6)
	require.NoError(t, err)
	assert.Nil(t, missing)
}

func TestGetMyServices(t *testing.T) {
	repo := new(MockServiceRepository)
	svc := NewService(repo, profileMap{}, nil)
	ctx := context.Background()

	_, err := svc.GetMyServices(ctx, 0)
	assert.ErrorIs(t, err, apperr.ErrUnauthenticated)

	repo.On("ListByProvider", ctx, int64(1)).Return([]*domain.Service{{ID: 1, IsActive: false}}, nil)
	list, err := svc.GetMyServices(ctx, 1)
	require.NoError(t, err)
	assert.Len(t, list, 1)
}

func TestCategories(t *testing.T) {
	svc := NewService(nil, nil, nil)
	cats := svc.Categories()
	assert.Contains(t, cats, "Pet Services")
	cats[0] = "mutated"
	assert.Equal(t, "Home Services", svc.Categories()[0])
}
