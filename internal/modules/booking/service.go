package booking

import (
	"context"
	"strings"
	"sync"

	"hireme/internal/domain"
	"hireme/internal/events"
	"hireme/internal/pkg/logger"
	"hireme/internal/pkg/utils"

	"go.uber.org/zap"
	"golang.org/x/sync/errgroup"
)

const joinConcurrency = 8

type Service struct {
	bookings BookingRepository
	services ServiceReader
	profiles ProfileReader
	events   events.Publisher
}

func NewService(
	bookings BookingRepository,
	services ServiceReader,
	profiles ProfileReader,
	publisher events.Publisher,
) *Service {
	if publisher == nil {
		publisher = events.Nop{}
	}
	return &Service{
		bookings: bookings,
		services: services,
		profiles: profiles,
		events:   publisher,
	}
}

// CreateBooking files a pending request for a service. The provider is
// copied from the service so later lookups do not need the join.
func (s *Service) CreateBooking(ctx context.Context, callerID int64, req CreateBookingRequest) (*domain.Booking, error) {
	if callerID == 0 {
		return nil, ErrNotAuthenticated
	}
	date := strings.TrimSpace(req.RequestedDate)
	if date == "" {
		return nil, ErrDateRequired
	}
	tm := strings.TrimSpace(req.RequestedTime)
	if tm == "" {
		return nil, ErrTimeRequired
	}

	svc, err := s.services.GetByID(ctx, req.ServiceID)
	if err != nil {
		return nil, err
	}
	if svc == nil {
		return nil, ErrServiceNotFound
	}
	if svc.ProviderID == callerID {
		return nil, ErrOwnService
	}

	var msg *string
	if req.Message != nil {
		msg = utils.StringPtr(strings.TrimSpace(*req.Message))
	}

	b := &domain.Booking{
		ServiceID:     svc.ID,
		CustomerID:    callerID,
		ProviderID:    svc.ProviderID,
		RequestedDate: date,
		RequestedTime: tm,
		Message:       msg,
		Status:        domain.BookingPending,
	}
	if err := s.bookings.Create(ctx, b); err != nil {
		return nil, err
	}

	s.publish(ctx, events.Event{
		Type:       events.BookingCreated,
		Recipients: []int64{b.ProviderID},
		Payload:    b,
	})
	return b, nil
}

// GetMyBookings returns the caller's bookings as customer followed by those
// as provider, each with service and both profile snapshots attached.
func (s *Service) GetMyBookings(ctx context.Context, callerID int64) ([]*domain.Booking, error) {
	if callerID == 0 {
		return nil, ErrNotAuthenticated
	}

	var asCustomer, asProvider []*domain.Booking
	g, gctx := errgroup.WithContext(ctx)
	g.Go(func() (err error) {
		asCustomer, err = s.bookings.ListByCustomer(gctx, callerID)
		return err
	})
	g.Go(func() (err error) {
		asProvider, err = s.bookings.ListByProvider(gctx, callerID)
		return err
	})
	if err := g.Wait(); err != nil {
		return nil, err
	}

	seen := make(map[int64]bool, len(asCustomer)+len(asProvider))
	all := make([]*domain.Booking, 0, len(asCustomer)+len(asProvider))
	for _, b := range append(asCustomer, asProvider...) {
		if seen[b.ID] {
			continue
		}
		seen[b.ID] = true
		all = append(all, b)
	}

	if err := s.attachSnapshots(ctx, all); err != nil {
		return nil, err
	}
	for _, b := range all {
		b.IsCustomer = b.CustomerID == callerID
		b.IsProvider = b.ProviderID == callerID
	}
	return all, nil
}

// UpdateBookingStatus lets the provider accept or decline. A decided booking
// may be decided again.
func (s *Service) UpdateBookingStatus(ctx context.Context, callerID, id int64, status domain.BookingStatus) (*domain.Booking, error) {
	if callerID == 0 {
		return nil, ErrNotAuthenticated
	}
	if !status.IsDecision() {
		return nil, ErrInvalidStatus
	}

	b, err := s.bookings.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if b == nil {
		return nil, ErrBookingNotFound
	}
	if b.ProviderID != callerID {
		return nil, ErrNotProvider
	}

	if err := s.bookings.UpdateStatus(ctx, id, status); err != nil {
		return nil, err
	}
	b.Status = status

	s.publish(ctx, events.Event{
		Type:       events.BookingStatusChanged,
		Recipients: []int64{b.CustomerID},
		Payload:    StatusChangedPayload{BookingID: b.ID, ServiceID: b.ServiceID, Status: status},
	})
	return b, nil
}

// attachSnapshots loads each distinct service and profile once. Missing
// records stay nil; a store error fails the call.
func (s *Service) attachSnapshots(ctx context.Context, list []*domain.Booking) error {
	serviceIDs := make(map[int64]bool)
	userIDs := make(map[int64]bool)
	for _, b := range list {
		serviceIDs[b.ServiceID] = true
		userIDs[b.CustomerID] = true
		userIDs[b.ProviderID] = true
	}

	var mu sync.Mutex
	services := make(map[int64]*domain.Service, len(serviceIDs))
	profiles := make(map[int64]*domain.Profile, len(userIDs))

	g, gctx := errgroup.WithContext(ctx)
	g.SetLimit(joinConcurrency)
	for id := range serviceIDs {
		g.Go(func() error {
			svc, err := s.services.GetByID(gctx, id)
			if err != nil {
				return err
			}
			mu.Lock()
			services[id] = svc
			mu.Unlock()
			return nil
		})
	}
	for id := range userIDs {
		g.Go(func() error {
			p, err := s.profiles.GetByUserID(gctx, id)
			if err != nil {
				return err
			}
			mu.Lock()
			profiles[id] = p
			mu.Unlock()
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return err
	}

	for _, b := range list {
		b.Service = services[b.ServiceID]
		b.Customer = profiles[b.CustomerID]
		b.Provider = profiles[b.ProviderID]
	}
	return nil
}

func (s *Service) publish(ctx context.Context, e events.Event) {
	if err := s.events.Publish(ctx, e); err != nil {
		logger.FromContext(ctx).Warn("publish event failed",
			zap.String("type", string(e.Type)),
			zap.Error(err),
		)
	}
}
