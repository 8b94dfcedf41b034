package readstore

import (
	"context"
	"errors"
	"time"

	"expertbook/internal/infra"
	"expertbook/internal/usecase/queries"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
)

type ExpertReadStore struct {
	db infra.DBTX
}

func NewExpertReadStore(db infra.DBTX) *ExpertReadStore {
	return &ExpertReadStore{db: db}
}

const expertViewColumns = `
	e.id, e.user_id, e.username, u.name, e.category, e.bio,
	e.timezone, e.buffer_minutes, e.created_at`

func (s *ExpertReadStore) FindByID(ctx context.Context, id uuid.UUID) (*queries.ExpertView, error) {
	query := `
		SELECT ` + expertViewColumns + `
		FROM experts e
		JOIN users u ON u.id = e.user_id
		WHERE e.id = $1`

	return s.scanExpert(s.db.QueryRow(ctx, query, id))
}

func (s *ExpertReadStore) FindByUserID(ctx context.Context, userID uuid.UUID) (*queries.ExpertView, error) {
	query := `
		SELECT ` + expertViewColumns + `
		FROM experts e
		JOIN users u ON u.id = e.user_id
		WHERE e.user_id = $1`

	return s.scanExpert(s.db.QueryRow(ctx, query, userID))
}

func (s *ExpertReadStore) FindByUsername(ctx context.Context, username string) (*queries.ExpertView, error) {
	query := `
		SELECT ` + expertViewColumns + `
		FROM experts e
		JOIN users u ON u.id = e.user_id
		WHERE e.username = $1`

	return s.scanExpert(s.db.QueryRow(ctx, query, username))
}

func (s *ExpertReadStore) scanExpert(row pgx.Row) (*queries.ExpertView, error) {
	var view queries.ExpertView
	err := row.Scan(
		&view.ID, &view.UserID, &view.Username, &view.Name, &view.Category, &view.Bio,
		&view.Timezone, &view.BufferMinutes, &view.CreatedAt,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, infra.WrapRepoErr("expert not found", err, infra.KindNotFound)
		}
		return nil, infra.WrapRepoErr("failed to find expert", err)
	}
	return &view, nil
}

// List pages the public directory with keyset pagination on (created_at, id),
// newest first. Search matches the display name or username; category is an
// exact filter.
func (s *ExpertReadStore) List(ctx context.Context, filter queries.ExpertListFilter, limit int32, afterTime *time.Time, afterID *uuid.UUID) ([]*queries.ExpertListItem, error) {
	const query = `
		SELECT e.id, e.username, u.name, e.category, e.bio, e.created_at
		FROM experts e
		JOIN users u ON u.id = e.user_id
		WHERE u.is_active
		  AND ($1 = '' OR u.name ILIKE '%' || $1 || '%' OR e.username ILIKE '%' || $1 || '%')
		  AND ($2 = '' OR e.category = $2)
		  AND ($3::timestamptz IS NULL OR (e.created_at, e.id) < ($3, $4))
		ORDER BY e.created_at DESC, e.id DESC
		LIMIT $5`

	rows, err := s.db.Query(ctx, query, filter.Search, filter.Category, afterTime, afterID, limit)
	if err != nil {
		return nil, infra.WrapRepoErr("failed to list experts", err)
	}
	defer rows.Close()

	var items []*queries.ExpertListItem
	for rows.Next() {
		var item queries.ExpertListItem
		if err := rows.Scan(&item.ID, &item.Username, &item.Name, &item.Category, &item.Bio, &item.CreatedAt); err != nil {
			return nil, infra.WrapRepoErr("failed to scan expert row", err)
		}
		items = append(items, &item)
	}
	if err := rows.Err(); err != nil {
		return nil, infra.WrapRepoErr("failed to iterate expert rows", err)
	}
	return items, nil
}

func (s *ExpertReadStore) FindRules(ctx context.Context, expertID uuid.UUID) ([]queries.AvailabilityRuleView, error) {
	const query = `
		SELECT weekday, is_open, start_local, end_local
		FROM availability_rules
		WHERE expert_id = $1
		ORDER BY weekday`

	rows, err := s.db.Query(ctx, query, expertID)
	if err != nil {
		return nil, infra.WrapRepoErr("failed to find availability rules", err)
	}
	defer rows.Close()

	var views []queries.AvailabilityRuleView
	for rows.Next() {
		var v queries.AvailabilityRuleView
		if err := rows.Scan(&v.Weekday, &v.IsOpen, &v.Start, &v.End); err != nil {
			return nil, infra.WrapRepoErr("failed to scan availability rule", err)
		}
		views = append(views, v)
	}
	if err := rows.Err(); err != nil {
		return nil, infra.WrapRepoErr("failed to iterate availability rules", err)
	}

	if len(views) == 0 {
		// Distinguish "expert unknown" from "no template yet".
		var exists bool
		if err := s.db.QueryRow(ctx, `SELECT EXISTS (SELECT 1 FROM experts WHERE id = $1)`, expertID).Scan(&exists); err != nil {
			return nil, infra.WrapRepoErr("failed to check expert existence", err)
		}
		if !exists {
			return nil, infra.WrapRepoErr("expert not found", nil, infra.KindNotFound)
		}
	}
	return views, nil
}
