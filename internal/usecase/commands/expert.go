package commands

import (
	"context"
	"time"

	"github.com/google/uuid"

	"expertbook/internal/domain/availability"
	"expertbook/internal/domain/expert"
	"expertbook/internal/infra"
	"expertbook/internal/pkg/errs"
	"expertbook/internal/usecase/shared"
)

var (
	ErrAlreadyExpert   = errs.New("user already has an expert profile")
	ErrNotExpert       = errs.New("user has no expert profile")
	ErrUsernameTaken   = errs.New("username already taken")
	ErrInvalidSchedule = errs.New("invalid availability schedule")
)

type BecomeExpertRequest struct {
	Username      string
	Category      string
	Timezone      string
	BufferMinutes int
}

type WeekdayRuleInput struct {
	Weekday int
	IsOpen  bool
	Start   string
	End     string
}

type UpdateAvailabilityRequest struct {
	Timezone      string
	BufferMinutes int
	Rules         []WeekdayRuleInput
}

type ExpertCommands interface {
	// BecomeExpert upgrades the account and provisions the default weekday
	// template so the profile is bookable immediately.
	BecomeExpert(ctx context.Context, userID uuid.UUID, req BecomeExpertRequest) (uuid.UUID, error)
	UpdateAvailability(ctx context.Context, userID uuid.UUID, req UpdateAvailabilityRequest) error
}

type expertCommandsImpl struct {
	uow shared.UnitOfWork
}

func NewExpertCommands(uow shared.UnitOfWork) ExpertCommands {
	return &expertCommandsImpl{uow: uow}
}

func (uc *expertCommandsImpl) BecomeExpert(ctx context.Context, userID uuid.UUID, req BecomeExpertRequest) (uuid.UUID, error) {
	entity, err := expert.NewExpert(userID, req.Username, req.Category, req.Timezone, req.BufferMinutes)
	if err != nil {
		return uuid.Nil, err
	}

	err = uc.uow.Within(ctx, func(ctx context.Context, tx shared.Tx) error {
		if _, rerr := tx.Reads().ExpertByUserID(ctx, userID); rerr == nil {
			return ErrAlreadyExpert
		} else if !infra.IsKind(rerr, infra.KindNotFound) {
			return rerr
		}

		if cerr := tx.Experts().Create(ctx, tx.DB(), entity); cerr != nil {
			if infra.IsKind(cerr, infra.KindDuplicateKey) {
				return ErrUsernameTaken
			}
			return cerr
		}
		if perr := tx.Users().PromoteToExpert(ctx, tx.DB(), userID); perr != nil {
			return perr
		}
		return tx.Availability().ReplaceWeek(ctx, tx.DB(), entity.ID(), availability.DefaultWeek())
	})
	if err != nil {
		return uuid.Nil, err
	}
	return entity.ID(), nil
}

func (uc *expertCommandsImpl) UpdateAvailability(ctx context.Context, userID uuid.UUID, req UpdateAvailabilityRequest) error {
	week, err := buildWeek(req.Rules)
	if err != nil {
		return err
	}
	if err = expert.ValidateTimezone(req.Timezone); err != nil {
		return err
	}
	if req.BufferMinutes < 0 || req.BufferMinutes > expert.MaxBufferMinutes {
		return expert.ErrInvalidBufferMinutes
	}

	return uc.uow.Within(ctx, func(ctx context.Context, tx shared.Tx) error {
		snap, rerr := tx.Reads().ExpertByUserID(ctx, userID)
		if rerr != nil {
			if infra.IsKind(rerr, infra.KindNotFound) {
				return ErrNotExpert
			}
			return rerr
		}

		if uerr := tx.Experts().UpdateScheduleMeta(ctx, tx.DB(), snap.ID, req.Timezone, req.BufferMinutes); uerr != nil {
			return uerr
		}
		return tx.Availability().ReplaceWeek(ctx, tx.DB(), snap.ID, week)
	})
}

func buildWeek(inputs []WeekdayRuleInput) (availability.WeekSchedule, error) {
	rules := make([]availability.Rule, 0, len(inputs))
	for _, in := range inputs {
		if !in.IsOpen {
			rules = append(rules, availability.ClosedRule(time.Weekday(in.Weekday)))
			continue
		}
		start, err := availability.NewClockTime(in.Start)
		if err != nil {
			return availability.WeekSchedule{}, errs.Mark(err, ErrInvalidSchedule)
		}
		end, err := availability.NewClockTime(in.End)
		if err != nil {
			return availability.WeekSchedule{}, errs.Mark(err, ErrInvalidSchedule)
		}
		rule, err := availability.NewRule(time.Weekday(in.Weekday), true, start, end)
		if err != nil {
			return availability.WeekSchedule{}, errs.Mark(err, ErrInvalidSchedule)
		}
		rules = append(rules, rule)
	}
	week, err := availability.NewWeekSchedule(rules)
	if err != nil {
		return availability.WeekSchedule{}, errs.Mark(err, ErrInvalidSchedule)
	}
	return week, nil
}
