package readstore

import (
	"context"
	"errors"

	"expertbook/internal/infra"
	"expertbook/internal/usecase/queries"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
)

type UserReadStore struct {
	db infra.DBTX
}

func NewUserReadStore(db infra.DBTX) *UserReadStore {
	return &UserReadStore{db: db}
}

func (s *UserReadStore) FindByID(ctx context.Context, id uuid.UUID) (*queries.AuthorizedUserView, error) {
	const query = `
		SELECT id, name, email, role, phone, is_active
		FROM users
		WHERE id = $1`

	var view queries.AuthorizedUserView
	err := s.db.QueryRow(ctx, query, id).Scan(
		&view.ID, &view.Name, &view.Email, &view.Role, &view.Phone, &view.IsActive,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, infra.WrapRepoErr("user not found", err, infra.KindNotFound)
		}
		return nil, infra.WrapRepoErr("failed to find user by ID", err)
	}
	return &view, nil
}

// FindCredentialsByID also returns the password hash; the write side needs
// it for current-password verification.
func (s *UserReadStore) FindCredentialsByID(ctx context.Context, id uuid.UUID) (*queries.AuthorizedUserView, string, error) {
	const query = `
		SELECT id, name, email, role, phone, is_active, password_hash
		FROM users
		WHERE id = $1`

	var (
		view queries.AuthorizedUserView
		hash string
	)
	err := s.db.QueryRow(ctx, query, id).Scan(
		&view.ID, &view.Name, &view.Email, &view.Role, &view.Phone, &view.IsActive, &hash,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, "", infra.WrapRepoErr("user not found", err, infra.KindNotFound)
		}
		return nil, "", infra.WrapRepoErr("failed to find user by ID", err)
	}
	return &view, hash, nil
}

func (s *UserReadStore) FindByEmail(ctx context.Context, email string) (*queries.AuthorizedUserView, string, error) {
	const query = `
		SELECT id, name, email, role, phone, is_active, password_hash
		FROM users
		WHERE email = $1`

	var (
		view queries.AuthorizedUserView
		hash string
	)
	err := s.db.QueryRow(ctx, query, email).Scan(
		&view.ID, &view.Name, &view.Email, &view.Role, &view.Phone, &view.IsActive, &hash,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, "", infra.WrapRepoErr("user not found", err, infra.KindNotFound)
		}
		return nil, "", infra.WrapRepoErr("failed to find user by email", err)
	}
	return &view, hash, nil
}
