package response

import (
	"time"

	"github.com/google/uuid"
	"github.com/jinzhu/copier"

	"expertbook/internal/usecase/queries"
)

type EventTypeResponse struct {
	ID              uuid.UUID `json:"id"`
	ExpertID        uuid.UUID `json:"expert_id"`
	Name            string    `json:"name"`
	URLSlug         string    `json:"url_slug"`
	Description     string    `json:"description,omitempty"`
	DurationMinutes int       `json:"duration_minutes"`
	Location        string    `json:"location"`
	IsActive        bool      `json:"is_active"`
	CreatedAt       time.Time `json:"created_at"`
}

func FromEventTypeView(view *queries.EventTypeView) *EventTypeResponse {
	var resp EventTypeResponse
	_ = copier.Copy(&resp, view)
	return &resp
}

func FromEventTypeViews(views []*queries.EventTypeView) []*EventTypeResponse {
	out := make([]*EventTypeResponse, len(views))
	for i, view := range views {
		out[i] = FromEventTypeView(view)
	}
	return out
}
