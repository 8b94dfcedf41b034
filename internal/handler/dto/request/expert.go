package request

import (
	"expertbook/internal/usecase/commands"
)

type BecomeExpertRequest struct {
	Username      string `json:"username" binding:"required"`
	Category      string `json:"category,omitempty"`
	Timezone      string `json:"timezone" binding:"required"`
	BufferMinutes int    `json:"buffer_minutes"`
}

func (r *BecomeExpertRequest) ToCommand() commands.BecomeExpertRequest {
	return commands.BecomeExpertRequest{
		Username:      r.Username,
		Category:      r.Category,
		Timezone:      r.Timezone,
		BufferMinutes: r.BufferMinutes,
	}
}

type WeekdayRule struct {
	Weekday int    `json:"weekday" binding:"min=0,max=6"`
	IsOpen  bool   `json:"is_open"`
	Start   string `json:"start,omitempty"`
	End     string `json:"end,omitempty"`
}

type UpdateAvailabilityRequest struct {
	Timezone      string        `json:"timezone" binding:"required"`
	BufferMinutes int           `json:"buffer_minutes"`
	Rules         []WeekdayRule `json:"rules" binding:"required"`
}

func (r *UpdateAvailabilityRequest) ToCommand() commands.UpdateAvailabilityRequest {
	rules := make([]commands.WeekdayRuleInput, len(r.Rules))
	for i, rule := range r.Rules {
		rules[i] = commands.WeekdayRuleInput{
			Weekday: rule.Weekday,
			IsOpen:  rule.IsOpen,
			Start:   rule.Start,
			End:     rule.End,
		}
	}
	return commands.UpdateAvailabilityRequest{
		Timezone:      r.Timezone,
		BufferMinutes: r.BufferMinutes,
		Rules:         rules,
	}
}
