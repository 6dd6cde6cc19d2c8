package events

import "context"

// LocalBus delivers events to the hub of this process.
type LocalBus struct {
	target Deliverer
}

func NewLocalBus(target Deliverer) *LocalBus {
	return &LocalBus{target: target}
}

func (b *LocalBus) Publish(_ context.Context, e Event) error {
	if len(e.Recipients) == 0 {
		return nil
	}
	w, err := encode(e)
	if err != nil {
		return err
	}
	data, err := w.frame()
	if err != nil {
		return err
	}
	b.target.Deliver(w.Recipients, data)
	return nil
}
