package repository

import (
	"context"

	"expertbook/internal/domain/expert"
	"expertbook/internal/infra"

	"github.com/google/uuid"
)

type ExpertRepository struct{}

func NewExpertRepository() *ExpertRepository {
	return &ExpertRepository{}
}

func (r *ExpertRepository) Create(ctx context.Context, db infra.DBTX, e *expert.Expert) error {
	const query = `
		INSERT INTO experts (id, user_id, username, category, bio, timezone, buffer_minutes)
		VALUES ($1, $2, $3, $4, $5, $6, $7)`

	_, err := db.Exec(ctx, query,
		e.ID(), e.UserID(), e.Username(), e.Category(), e.Bio(), e.Timezone(), e.BufferMinutes(),
	)
	if err != nil {
		return infra.WrapRepoErr("failed to create expert", err, classify(err))
	}
	return nil
}

func (r *ExpertRepository) UpdateScheduleMeta(ctx context.Context, db infra.DBTX, expertID uuid.UUID, timezone string, bufferMinutes int) error {
	const query = `UPDATE experts SET timezone = $2, buffer_minutes = $3, updated_at = now() WHERE id = $1`

	if _, err := db.Exec(ctx, query, expertID, timezone, bufferMinutes); err != nil {
		return infra.WrapRepoErr("failed to update expert schedule settings", err)
	}
	return nil
}
