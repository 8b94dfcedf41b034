package realtime

import "encoding/json"

const (
	EventSlotBooked = "slot_booked"
	EventSlotFreed  = "slot_freed"
)

// Event is the slot-state change broadcast to every watcher of an expert.
// Delivery is at-most-once with no replay; late subscribers re-fetch slots
// instead of recovering history.
type Event struct {
	Type     string `json:"type"`
	ExpertID string `json:"expert_id"`
	Date     string `json:"date"`
	TimeSlot string `json:"time_slot"`
}

func SlotBooked(expertID, date, timeSlot string) Event {
	return Event{Type: EventSlotBooked, ExpertID: expertID, Date: date, TimeSlot: timeSlot}
}

func SlotFreed(expertID, date, timeSlot string) Event {
	return Event{Type: EventSlotFreed, ExpertID: expertID, Date: date, TimeSlot: timeSlot}
}

func (e Event) Marshal() []byte {
	raw, _ := json.Marshal(e)
	return raw
}

func UnmarshalEvent(raw []byte) (Event, error) {
	var e Event
	err := json.Unmarshal(raw, &e)
	return e, err
}
