package response

import (
	"time"

	"github.com/google/uuid"
	"github.com/jinzhu/copier"

	"expertbook/internal/usecase/queries"
)

type ExpertResponse struct {
	ID            uuid.UUID `json:"id"`
	Username      string    `json:"username"`
	Name          string    `json:"name"`
	Category      string    `json:"category,omitempty"`
	Bio           string    `json:"bio,omitempty"`
	Timezone      string    `json:"timezone"`
	BufferMinutes int       `json:"buffer_minutes"`
	CreatedAt     time.Time `json:"created_at"`
}

type ExpertListItemResponse struct {
	ID        uuid.UUID `json:"id"`
	Username  string    `json:"username"`
	Name      string    `json:"name"`
	Category  string    `json:"category,omitempty"`
	Bio       string    `json:"bio,omitempty"`
	CreatedAt time.Time `json:"created_at"`
}

type ExpertListResponse struct {
	Experts    []*ExpertListItemResponse `json:"experts"`
	NextCursor string                    `json:"next_cursor,omitempty"`
}

type AvailabilityRuleResponse struct {
	Weekday int    `json:"weekday"`
	IsOpen  bool   `json:"is_open"`
	Start   string `json:"start,omitempty"`
	End     string `json:"end,omitempty"`
}

type AvailabilityResponse struct {
	ExpertID uuid.UUID                  `json:"expert_id"`
	Rules    []AvailabilityRuleResponse `json:"rules"`
}

type SlotsResponse struct {
	ExpertID        uuid.UUID           `json:"expert_id"`
	Timezone        string              `json:"timezone"`
	DurationMinutes int                 `json:"duration_minutes"`
	Days            map[string][]string `json:"days"`
}

func FromExpertView(view *queries.ExpertView) *ExpertResponse {
	var resp ExpertResponse
	_ = copier.Copy(&resp, view)
	return &resp
}

func FromExpertList(items []*queries.ExpertListItem, next *queries.Cursor) *ExpertListResponse {
	resp := &ExpertListResponse{Experts: make([]*ExpertListItemResponse, len(items))}
	for i, item := range items {
		var out ExpertListItemResponse
		_ = copier.Copy(&out, item)
		resp.Experts[i] = &out
	}
	if next != nil {
		resp.NextCursor = next.After
	}
	return resp
}

func FromAvailabilityRules(expertID uuid.UUID, rules []queries.AvailabilityRuleView) *AvailabilityResponse {
	resp := &AvailabilityResponse{ExpertID: expertID, Rules: make([]AvailabilityRuleResponse, len(rules))}
	_ = copier.Copy(&resp.Rules, rules)
	return resp
}

func FromSlotsResult(result *queries.SlotsResult) *SlotsResponse {
	var resp SlotsResponse
	_ = copier.Copy(&resp, result)
	return &resp
}
