//go:build unit || e2e

package builder

import (
	"time"

	reqdto "expertbook/internal/handler/dto/request"
	"expertbook/internal/usecase/queries"
	"expertbook/internal/usecase/shared"

	"github.com/google/uuid"
)

type ExpertBuilder struct {
	ID            uuid.UUID
	UserID        uuid.UUID
	Username      string
	Name          string
	Category      string
	Bio           string
	Timezone      string
	BufferMinutes int
	CreatedAt     time.Time
}

func NewExpertBuilder() *ExpertBuilder {
	return &ExpertBuilder{
		ID:            uuid.New(),
		UserID:        uuid.New(),
		Username:      "jane-doe",
		Name:          "Jane Doe",
		Category:      "Career Coaching",
		Bio:           "Ten years of engineering leadership.",
		Timezone:      "America/New_York",
		BufferMinutes: 0,
		CreatedAt:     time.Now(),
	}
}

// Build methods
func (e *ExpertBuilder) BuildViewQuery() *queries.ExpertView {
	return &queries.ExpertView{
		ID:            e.ID,
		UserID:        e.UserID,
		Username:      e.Username,
		Name:          e.Name,
		Category:      e.Category,
		Bio:           e.Bio,
		Timezone:      e.Timezone,
		BufferMinutes: e.BufferMinutes,
		CreatedAt:     e.CreatedAt,
	}
}

func (e *ExpertBuilder) BuildListItem() *queries.ExpertListItem {
	return &queries.ExpertListItem{
		ID:        e.ID,
		Username:  e.Username,
		Name:      e.Name,
		Category:  e.Category,
		Bio:       e.Bio,
		CreatedAt: e.CreatedAt,
	}
}

func (e *ExpertBuilder) BuildSnapshot() *shared.ExpertSnapshot {
	return &shared.ExpertSnapshot{
		ID:            e.ID,
		UserID:        e.UserID,
		Username:      e.Username,
		Category:      e.Category,
		Timezone:      e.Timezone,
		BufferMinutes: e.BufferMinutes,
	}
}

func (e *ExpertBuilder) BuildBecomeExpertRequestDTO() reqdto.BecomeExpertRequest {
	return reqdto.BecomeExpertRequest{
		Username:      e.Username,
		Category:      e.Category,
		Timezone:      e.Timezone,
		BufferMinutes: e.BufferMinutes,
	}
}

// BuildWeekdayRules returns a Monday-to-Friday 09:00-17:00 template with the
// weekend closed, mirroring the default schedule new experts get.
func (e *ExpertBuilder) BuildWeekdayRules() []reqdto.WeekdayRule {
	rules := make([]reqdto.WeekdayRule, 7)
	for wd := 0; wd < 7; wd++ {
		open := wd >= 1 && wd <= 5
		rule := reqdto.WeekdayRule{Weekday: wd, IsOpen: open}
		if open {
			rule.Start = "09:00"
			rule.End = "17:00"
		}
		rules[wd] = rule
	}
	return rules
}

func (e *ExpertBuilder) BuildUpdateAvailabilityRequestDTO() reqdto.UpdateAvailabilityRequest {
	return reqdto.UpdateAvailabilityRequest{
		Timezone:      e.Timezone,
		BufferMinutes: e.BufferMinutes,
		Rules:         e.BuildWeekdayRules(),
	}
}

func (e *ExpertBuilder) BuildAvailabilityRuleViews() []queries.AvailabilityRuleView {
	views := make([]queries.AvailabilityRuleView, 7)
	for wd := 0; wd < 7; wd++ {
		open := wd >= 1 && wd <= 5
		view := queries.AvailabilityRuleView{Weekday: wd, IsOpen: open}
		if open {
			view.Start = "09:00"
			view.End = "17:00"
		}
		views[wd] = view
	}
	return views
}

// Fluent builder methods
func (e *ExpertBuilder) WithID(id uuid.UUID) *ExpertBuilder {
	e.ID = id
	return e
}

func (e *ExpertBuilder) WithUserID(userID uuid.UUID) *ExpertBuilder {
	e.UserID = userID
	return e
}

func (e *ExpertBuilder) WithUsername(username string) *ExpertBuilder {
	e.Username = username
	return e
}

func (e *ExpertBuilder) WithName(name string) *ExpertBuilder {
	e.Name = name
	return e
}

func (e *ExpertBuilder) WithCategory(category string) *ExpertBuilder {
	e.Category = category
	return e
}

func (e *ExpertBuilder) WithTimezone(timezone string) *ExpertBuilder {
	e.Timezone = timezone
	return e
}

func (e *ExpertBuilder) WithBufferMinutes(minutes int) *ExpertBuilder {
	e.BufferMinutes = minutes
	return e
}

func (e *ExpertBuilder) WithCreatedAt(createdAt time.Time) *ExpertBuilder {
	e.CreatedAt = createdAt
	return e
}
