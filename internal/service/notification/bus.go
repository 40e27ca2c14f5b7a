package notification

import (
	"log/slog"

	"github.com/staffhq/attendance-backend-go/internal/domain/leave"
)

// Bus is a buffered channel publisher for leave events. Publish never
// blocks: if the buffer is full the event is dropped with a warning, since
// notifications are best-effort and must not stall ledger writes.
type Bus struct {
	ch chan leave.Event
}

func NewBus(buffer int) *Bus {
	return &Bus{ch: make(chan leave.Event, buffer)}
}

// Publish implements leave.Publisher.
func (b *Bus) Publish(event leave.Event) {
	select {
	case b.ch <- event:
	default:
		slog.Warn("event bus full, dropping event", "event_id", event.ID, "action", string(event.Action))
	}
}

// Events returns the consumer side of the bus.
func (b *Bus) Events() <-chan leave.Event {
	return b.ch
}

// Close closes the bus. Only the producer side may call it.
func (b *Bus) Close() {
	close(b.ch)
}
