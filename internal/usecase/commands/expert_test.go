//go:build unit

package commands_test

import (
	"context"
	"testing"
	"time"

	"expertbook/internal/domain/availability"
	"expertbook/internal/domain/expert"
	"expertbook/internal/domain/user"
	"expertbook/internal/infra"
	"expertbook/internal/usecase/commands"
	"expertbook/internal/usecase/shared"
	"expertbook/tests/common/builder"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type fakeExpertRepo struct {
	created   []*expert.Expert
	createErr error
	metaCalls []struct {
		ExpertID      uuid.UUID
		Timezone      string
		BufferMinutes int
	}
}

func (f *fakeExpertRepo) Create(_ context.Context, _ infra.DBTX, e *expert.Expert) error {
	if f.createErr != nil {
		return f.createErr
	}
	f.created = append(f.created, e)
	return nil
}

func (f *fakeExpertRepo) UpdateScheduleMeta(_ context.Context, _ infra.DBTX, expertID uuid.UUID, timezone string, bufferMinutes int) error {
	f.metaCalls = append(f.metaCalls, struct {
		ExpertID      uuid.UUID
		Timezone      string
		BufferMinutes int
	}{expertID, timezone, bufferMinutes})
	return nil
}

type fakeUserRepo struct {
	promoted []uuid.UUID
}

func (f *fakeUserRepo) Create(context.Context, infra.DBTX, *user.User) error { return nil }

func (f *fakeUserRepo) UpdateProfile(context.Context, infra.DBTX, uuid.UUID, string, string) error {
	return nil
}

func (f *fakeUserRepo) UpdatePassword(context.Context, infra.DBTX, uuid.UUID, string) error {
	return nil
}

func (f *fakeUserRepo) UpdateLastLogin(context.Context, infra.DBTX, uuid.UUID) error { return nil }

func (f *fakeUserRepo) PromoteToExpert(_ context.Context, _ infra.DBTX, userID uuid.UUID) error {
	f.promoted = append(f.promoted, userID)
	return nil
}

type fakeWeekRepo struct {
	replacedFor  []uuid.UUID
	replacedWith []availability.WeekSchedule
}

func (f *fakeWeekRepo) ReplaceWeek(_ context.Context, _ infra.DBTX, expertID uuid.UUID, week availability.WeekSchedule) error {
	f.replacedFor = append(f.replacedFor, expertID)
	f.replacedWith = append(f.replacedWith, week)
	return nil
}

type expertTx struct {
	reads   *fakeReads
	experts *fakeExpertRepo
	users   *fakeUserRepo
	weeks   *fakeWeekRepo
}

func (f *expertTx) Users() shared.UserRepository                { return f.users }
func (f *expertTx) Experts() shared.ExpertRepository            { return f.experts }
func (f *expertTx) EventTypes() shared.EventTypeRepository      { return nil }
func (f *expertTx) Availability() shared.AvailabilityRepository { return f.weeks }
func (f *expertTx) Bookings() shared.BookingRepository          { return nil }
func (f *expertTx) Reads() shared.CommandReads                  { return f.reads }
func (f *expertTx) DB() infra.DBTX                              { return nil }

type expertUoW struct {
	tx *expertTx
}

func (f *expertUoW) Within(ctx context.Context, fn func(ctx context.Context, tx shared.Tx) error) error {
	return fn(ctx, f.tx)
}

type expertFixture struct {
	reads   *fakeReads
	experts *fakeExpertRepo
	users   *fakeUserRepo
	weeks   *fakeWeekRepo
	uc      commands.ExpertCommands
}

func newExpertFixture() *expertFixture {
	reads := &fakeReads{}
	experts := &fakeExpertRepo{}
	users := &fakeUserRepo{}
	weeks := &fakeWeekRepo{}
	uow := &expertUoW{tx: &expertTx{reads: reads, experts: experts, users: users, weeks: weeks}}
	return &expertFixture{
		reads:   reads,
		experts: experts,
		users:   users,
		weeks:   weeks,
		uc:      commands.NewExpertCommands(uow),
	}
}

func noExpertProfile(context.Context, uuid.UUID) (*shared.ExpertSnapshot, error) {
	return nil, infra.WrapRepoErr("expert not found", nil, infra.KindNotFound)
}

// ===== TestBecomeExpert =====

func TestBecomeExpert(t *testing.T) {
	ctx := context.Background()
	userID := uuid.New()

	t.Run("success: provisions the default weekday template", func(t *testing.T) {
		f := newExpertFixture()
		f.reads.expertByUserID = noExpertProfile

		expertID, err := f.uc.BecomeExpert(ctx, userID, commands.BecomeExpertRequest{
			Username: "jane-doe",
			Category: "Career Coaching",
			Timezone: "America/New_York",
		})
		require.NoError(t, err)

		require.Len(t, f.experts.created, 1)
		assert.Equal(t, expertID, f.experts.created[0].ID())
		assert.Equal(t, []uuid.UUID{userID}, f.users.promoted)

		require.Len(t, f.weeks.replacedWith, 1)
		assert.Equal(t, []uuid.UUID{expertID}, f.weeks.replacedFor)
		week := f.weeks.replacedWith[0]
		assert.False(t, week.Rule(time.Sunday).IsOpen())
		assert.False(t, week.Rule(time.Saturday).IsOpen())
		for d := time.Monday; d <= time.Friday; d++ {
			rule := week.Rule(d)
			assert.True(t, rule.IsOpen())
			assert.Equal(t, "09:00", rule.Start().String())
			assert.Equal(t, "17:00", rule.End().String())
		}
	})

	t.Run("success: username is lowercased", func(t *testing.T) {
		f := newExpertFixture()
		f.reads.expertByUserID = noExpertProfile

		_, err := f.uc.BecomeExpert(ctx, userID, commands.BecomeExpertRequest{
			Username: "  jane-doe  ",
			Timezone: "UTC",
		})
		require.NoError(t, err)
		assert.Equal(t, "jane-doe", f.experts.created[0].Username())
	})

	t.Run("error: account already has a profile", func(t *testing.T) {
		f := newExpertFixture()
		f.reads.expertByUserID = func(context.Context, uuid.UUID) (*shared.ExpertSnapshot, error) {
			return builder.NewExpertBuilder().WithUserID(userID).BuildSnapshot(), nil
		}

		_, err := f.uc.BecomeExpert(ctx, userID, commands.BecomeExpertRequest{
			Username: "jane-doe",
			Timezone: "UTC",
		})
		assert.ErrorIs(t, err, commands.ErrAlreadyExpert)
		assert.Empty(t, f.experts.created)
		assert.Empty(t, f.users.promoted)
	})

	t.Run("error: username collision surfaces as taken", func(t *testing.T) {
		f := newExpertFixture()
		f.reads.expertByUserID = noExpertProfile
		f.experts.createErr = infra.WrapRepoErr("duplicate username", nil, infra.KindDuplicateKey)

		_, err := f.uc.BecomeExpert(ctx, userID, commands.BecomeExpertRequest{
			Username: "jane-doe",
			Timezone: "UTC",
		})
		assert.ErrorIs(t, err, commands.ErrUsernameTaken)
		assert.Empty(t, f.users.promoted)
	})

	t.Run("error: invalid username characters", func(t *testing.T) {
		f := newExpertFixture()

		_, err := f.uc.BecomeExpert(ctx, userID, commands.BecomeExpertRequest{
			Username: "Jane Doe!",
			Timezone: "UTC",
		})
		assert.ErrorIs(t, err, expert.ErrInvalidUsername)
	})

	t.Run("error: unknown timezone", func(t *testing.T) {
		f := newExpertFixture()

		_, err := f.uc.BecomeExpert(ctx, userID, commands.BecomeExpertRequest{
			Username: "jane-doe",
			Timezone: "Mars/Olympus_Mons",
		})
		assert.ErrorIs(t, err, expert.ErrInvalidTimezone)
	})
}

// ===== TestUpdateAvailability =====

func TestUpdateAvailability(t *testing.T) {
	ctx := context.Background()
	userID := uuid.New()

	openWeekdays := func() []commands.WeekdayRuleInput {
		rules := make([]commands.WeekdayRuleInput, 7)
		for wd := 0; wd < 7; wd++ {
			open := wd >= 1 && wd <= 5
			rules[wd] = commands.WeekdayRuleInput{Weekday: wd, IsOpen: open}
			if open {
				rules[wd].Start = "10:00"
				rules[wd].End = "18:00"
			}
		}
		return rules
	}

	t.Run("success: replaces the week and schedule meta", func(t *testing.T) {
		f := newExpertFixture()
		snap := builder.NewExpertBuilder().WithUserID(userID).BuildSnapshot()
		f.reads.expertByUserID = func(context.Context, uuid.UUID) (*shared.ExpertSnapshot, error) {
			return snap, nil
		}

		err := f.uc.UpdateAvailability(ctx, userID, commands.UpdateAvailabilityRequest{
			Timezone:      "Europe/Berlin",
			BufferMinutes: 30,
			Rules:         openWeekdays(),
		})
		require.NoError(t, err)

		require.Len(t, f.experts.metaCalls, 1)
		assert.Equal(t, snap.ID, f.experts.metaCalls[0].ExpertID)
		assert.Equal(t, "Europe/Berlin", f.experts.metaCalls[0].Timezone)
		assert.Equal(t, 30, f.experts.metaCalls[0].BufferMinutes)

		require.Len(t, f.weeks.replacedWith, 1)
		assert.Equal(t, "10:00", f.weeks.replacedWith[0].Rule(time.Monday).Start().String())
		assert.False(t, f.weeks.replacedWith[0].Rule(time.Sunday).IsOpen())
	})

	t.Run("error: no expert profile", func(t *testing.T) {
		f := newExpertFixture()
		f.reads.expertByUserID = noExpertProfile

		err := f.uc.UpdateAvailability(ctx, userID, commands.UpdateAvailabilityRequest{
			Timezone: "UTC",
			Rules:    openWeekdays(),
		})
		assert.ErrorIs(t, err, commands.ErrNotExpert)
	})

	t.Run("error: start not before end", func(t *testing.T) {
		f := newExpertFixture()
		rules := openWeekdays()
		rules[1].Start = "18:00"
		rules[1].End = "10:00"

		err := f.uc.UpdateAvailability(ctx, userID, commands.UpdateAvailabilityRequest{
			Timezone: "UTC",
			Rules:    rules,
		})
		assert.ErrorIs(t, err, commands.ErrInvalidSchedule)
		assert.Empty(t, f.weeks.replacedWith)
	})

	t.Run("error: malformed clock time", func(t *testing.T) {
		f := newExpertFixture()
		rules := openWeekdays()
		rules[2].Start = "ten"

		err := f.uc.UpdateAvailability(ctx, userID, commands.UpdateAvailabilityRequest{
			Timezone: "UTC",
			Rules:    rules,
		})
		assert.ErrorIs(t, err, commands.ErrInvalidSchedule)
	})

	t.Run("error: buffer over the maximum", func(t *testing.T) {
		f := newExpertFixture()

		err := f.uc.UpdateAvailability(ctx, userID, commands.UpdateAvailabilityRequest{
			Timezone:      "UTC",
			BufferMinutes: 999,
			Rules:         openWeekdays(),
		})
		assert.ErrorIs(t, err, expert.ErrInvalidBufferMinutes)
	})
}
