package chat

import (
	"context"
	"strings"

	"hireme/internal/domain"
	"hireme/internal/events"
	"hireme/internal/pkg/logger"

	"go.uber.org/zap"
)

type Service struct {
	messages MessageRepository
	bookings BookingReader
	profiles ProfileReader
	events   events.Publisher
}

func NewService(messages MessageRepository, bookings BookingReader, profiles ProfileReader, publisher events.Publisher) *Service {
	if publisher == nil {
		publisher = events.Nop{}
	}
	return &Service{
		messages: messages,
		bookings: bookings,
		profiles: profiles,
		events:   publisher,
	}
}

// GetMessages returns the booking's conversation in the order it was written.
func (s *Service) GetMessages(ctx context.Context, callerID, bookingID int64) ([]*domain.Message, error) {
	if _, err := s.participantBooking(ctx, callerID, bookingID); err != nil {
		return nil, err
	}

	list, err := s.messages.ListByBooking(ctx, bookingID)
	if err != nil {
		return nil, err
	}

	names := make(map[int64]string)
	for _, m := range list {
		name, ok := names[m.SenderID]
		if !ok {
			name, err = s.senderName(ctx, m.SenderID)
			if err != nil {
				return nil, err
			}
			names[m.SenderID] = name
		}
		m.SenderName = name
		m.IsOwnMessage = m.SenderID == callerID
	}
	return list, nil
}

// SendMessage appends a message from the caller. Only the booking's customer
// and provider may write.
func (s *Service) SendMessage(ctx context.Context, callerID, bookingID int64, content string) (*domain.Message, error) {
	b, err := s.participantBooking(ctx, callerID, bookingID)
	if err != nil {
		return nil, err
	}
	content = strings.TrimSpace(content)
	if content == "" {
		return nil, ErrEmptyContent
	}

	msg := &domain.Message{
		BookingID: bookingID,
		SenderID:  callerID,
		Content:   content,
	}
	if err := s.messages.Create(ctx, msg); err != nil {
		return nil, err
	}

	msg.SenderName, err = s.senderName(ctx, callerID)
	if err != nil {
		return nil, err
	}
	msg.IsOwnMessage = true

	// recipients compare sender_id themselves
	payload := *msg
	payload.IsOwnMessage = false

	recipients := []int64{b.CustomerID}
	if b.ProviderID != b.CustomerID {
		recipients = append(recipients, b.ProviderID)
	}
	if err := s.events.Publish(ctx, events.Event{
		Type:       events.MessageCreated,
		Recipients: recipients,
		Payload:    payload,
	}); err != nil {
		logger.FromContext(ctx).Warn("publish message event failed",
			zap.Int64("booking_id", bookingID),
			zap.Error(err),
		)
	}
	return msg, nil
}

func (s *Service) participantBooking(ctx context.Context, callerID, bookingID int64) (*domain.Booking, error) {
	if callerID == 0 {
		return nil, ErrNotAuthenticated
	}
	b, err := s.bookings.GetByID(ctx, bookingID)
	if err != nil {
		return nil, err
	}
	if b == nil {
		return nil, ErrBookingNotFound
	}
	if b.CustomerID != callerID && b.ProviderID != callerID {
		return nil, ErrNotParticipant
	}
	return b, nil
}

func (s *Service) senderName(ctx context.Context, userID int64) (string, error) {
	p, err := s.profiles.GetByUserID(ctx, userID)
	if err != nil {
		return "", err
	}
	if p == nil {
		return domain.UnknownSenderName, nil
	}
	return p.Name, nil
}
