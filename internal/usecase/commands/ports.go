package commands

import "expertbook/internal/realtime"

// SlotEventPublisher is the broadcast side of the reservation flow. Publish
// is fire-and-forget; implementations must never block or fail the caller.
type SlotEventPublisher interface {
	Publish(ev realtime.Event)
}
