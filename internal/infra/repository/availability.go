package repository

import (
	"context"

	"expertbook/internal/domain/availability"
	"expertbook/internal/infra"

	"github.com/google/uuid"
)

type AvailabilityRepository struct{}

func NewAvailabilityRepository() *AvailabilityRepository {
	return &AvailabilityRepository{}
}

// ReplaceWeek upserts all seven weekday rows so a template edit is a single
// atomic swap within the surrounding transaction.
func (r *AvailabilityRepository) ReplaceWeek(ctx context.Context, db infra.DBTX, expertID uuid.UUID, week availability.WeekSchedule) error {
	const query = `
		INSERT INTO availability_rules (expert_id, weekday, is_open, start_local, end_local)
		VALUES ($1, $2, $3, $4, $5)
		ON CONFLICT (expert_id, weekday)
		DO UPDATE SET is_open = EXCLUDED.is_open,
		              start_local = EXCLUDED.start_local,
		              end_local = EXCLUDED.end_local`

	for _, rule := range week.Rules() {
		start, end := "", ""
		if rule.IsOpen() {
			start, end = rule.Start().String(), rule.End().String()
		}
		if _, err := db.Exec(ctx, query, expertID, int(rule.Weekday()), rule.IsOpen(), start, end); err != nil {
			return infra.WrapRepoErr("failed to replace availability rule", err, classify(err))
		}
	}
	return nil
}
