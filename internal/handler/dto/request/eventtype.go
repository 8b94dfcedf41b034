package request

import (
	"expertbook/internal/usecase/commands"
)

type EventTypeRequest struct {
	Name            string `json:"name" binding:"required"`
	URLSlug         string `json:"url_slug" binding:"required"`
	Description     string `json:"description,omitempty"`
	DurationMinutes int    `json:"duration_minutes" binding:"required"`
	Location        string `json:"location" binding:"required"`
	IsActive        bool   `json:"is_active"`
}

func (r *EventTypeRequest) ToCommand() commands.EventTypeRequest {
	return commands.EventTypeRequest{
		Name:            r.Name,
		URLSlug:         r.URLSlug,
		Description:     r.Description,
		DurationMinutes: r.DurationMinutes,
		Location:        r.Location,
		IsActive:        r.IsActive,
	}
}
