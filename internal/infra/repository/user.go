package repository

import (
	"context"

	"expertbook/internal/domain/user"
	"expertbook/internal/infra"

	"github.com/google/uuid"
)

type UserRepository struct{}

func NewUserRepository() *UserRepository {
	return &UserRepository{}
}

func (r *UserRepository) Create(ctx context.Context, db infra.DBTX, u *user.User) error {
	const query = `
		INSERT INTO users (id, name, email, password_hash, role, phone, is_active)
		VALUES ($1, $2, $3, $4, $5, $6, $7)`

	_, err := db.Exec(ctx, query,
		u.ID(), u.Name().Value(), u.Email().Value(), u.PasswordHash(),
		u.Role().String(), u.Phone(), u.IsActive(),
	)
	if err != nil {
		return infra.WrapRepoErr("failed to create user", err, classify(err))
	}
	return nil
}

func (r *UserRepository) UpdateProfile(ctx context.Context, db infra.DBTX, userID uuid.UUID, name, phone string) error {
	const query = `UPDATE users SET name = $2, phone = $3, updated_at = now() WHERE id = $1`

	if _, err := db.Exec(ctx, query, userID, name, phone); err != nil {
		return infra.WrapRepoErr("failed to update user profile", err)
	}
	return nil
}

func (r *UserRepository) UpdatePassword(ctx context.Context, db infra.DBTX, userID uuid.UUID, passwordHash string) error {
	const query = `UPDATE users SET password_hash = $2, updated_at = now() WHERE id = $1`

	if _, err := db.Exec(ctx, query, userID, passwordHash); err != nil {
		return infra.WrapRepoErr("failed to update user password", err)
	}
	return nil
}

func (r *UserRepository) PromoteToExpert(ctx context.Context, db infra.DBTX, userID uuid.UUID) error {
	const query = `UPDATE users SET role = 'expert', updated_at = now() WHERE id = $1`

	if _, err := db.Exec(ctx, query, userID); err != nil {
		return infra.WrapRepoErr("failed to promote user to expert", err)
	}
	return nil
}

func (r *UserRepository) UpdateLastLogin(ctx context.Context, db infra.DBTX, userID uuid.UUID) error {
	const query = `UPDATE users SET last_login_at = now() WHERE id = $1`

	if _, err := db.Exec(ctx, query, userID); err != nil {
		return infra.WrapRepoErr("failed to update user last login", err)
	}
	return nil
}
