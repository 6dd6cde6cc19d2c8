package events

import (
	"context"
	"encoding/json"
	"fmt"
)

type Type string

const (
	BookingCreated       Type = "booking.created"
	BookingStatusChanged Type = "booking.status_changed"
	MessageCreated       Type = "message.created"
)

// Event is a change notification addressed to specific users.
type Event struct {
	Type       Type    `json:"type"`
	Recipients []int64 `json:"recipients"`
	Payload    any     `json:"payload"`
}

type Publisher interface {
	Publish(ctx context.Context, e Event) error
}

// Deliverer pushes an encoded frame to the live connections of the given users.
type Deliverer interface {
	Deliver(userIDs []int64, frame []byte)
}

// frame is what connected clients receive.
type frame struct {
	Type    Type            `json:"type"`
	Payload json.RawMessage `json:"payload"`
}

// wireEvent is an Event after its payload has been encoded once.
type wireEvent struct {
	Type       Type            `json:"type"`
	Recipients []int64         `json:"recipients"`
	Payload    json.RawMessage `json:"payload"`
}

func encode(e Event) (wireEvent, error) {
	payload, err := json.Marshal(e.Payload)
	if err != nil {
		return wireEvent{}, fmt.Errorf("marshal %s payload: %w", e.Type, err)
	}
	return wireEvent{Type: e.Type, Recipients: e.Recipients, Payload: payload}, nil
}

func (w wireEvent) frame() ([]byte, error) {
	return json.Marshal(frame{Type: w.Type, Payload: w.Payload})
}

// Nop drops every event.
type Nop struct{}

func (Nop) Publish(context.Context, Event) error { return nil }
