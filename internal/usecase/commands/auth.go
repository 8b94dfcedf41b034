package commands

import (
	"context"
	"log/slog"

	"github.com/google/uuid"

	"expertbook/internal/domain/user"
	"expertbook/internal/infra"
	"expertbook/internal/pkg/errs"
	"expertbook/internal/pkg/jwt"
	"expertbook/internal/pkg/password"
	"expertbook/internal/usecase/queries"
	"expertbook/internal/usecase/shared"
)

var (
	ErrUserNotFound         = errs.New("user not found")
	ErrEmailTaken           = errs.New("email already registered")
	ErrInvalidCredentials   = errs.New("invalid credentials")
	ErrUserInactive         = errs.New("user inactive")
	ErrAuthenticationFailed = errs.New("authentication failed")
	ErrTokenGeneration      = errs.New("token generation failed")
	ErrTokenValidation      = errs.New("token validation failed")
)

type RegisterRequest struct {
	Name     string
	Email    string
	Password string
	Phone    string
}

type LoginRequest struct {
	Email    string
	Password string
}

type UpdateProfileRequest struct {
	Name  string
	Phone string
}

type ChangePasswordRequest struct {
	CurrentPassword string
	NewPassword     string
}

type TokenPair struct {
	AccessToken  string
	RefreshToken string
}

type AuthResult struct {
	UserID    uuid.UUID
	TokenPair *TokenPair
}

type AuthCommands interface {
	Register(ctx context.Context, req RegisterRequest) (*AuthResult, error)
	Login(ctx context.Context, req LoginRequest) (*AuthResult, error)
	RefreshToken(ctx context.Context, refreshToken string) (*TokenPair, error)
	UpdateProfile(ctx context.Context, userID uuid.UUID, req UpdateProfileRequest) error
	ChangePassword(ctx context.Context, userID uuid.UUID, req ChangePasswordRequest) error
}

type authCommandsImpl struct {
	uow        shared.UnitOfWork
	readStore  queries.UserReadStore
	jwtService *jwt.Service
}

func NewAuthCommands(uow shared.UnitOfWork, readStore queries.UserReadStore, jwtService *jwt.Service) AuthCommands {
	return &authCommandsImpl{
		uow:        uow,
		readStore:  readStore,
		jwtService: jwtService,
	}
}

func (a *authCommandsImpl) Register(ctx context.Context, req RegisterRequest) (*AuthResult, error) {
	name, err := user.NewName(req.Name)
	if err != nil {
		return nil, err
	}
	email, err := user.NewEmail(req.Email)
	if err != nil {
		return nil, err
	}
	pass, err := user.NewPassword(req.Password)
	if err != nil {
		return nil, err
	}

	hash, err := password.HashPassword(pass.Value())
	if err != nil {
		return nil, errs.Mark(err, ErrAuthenticationFailed)
	}

	entity := user.NewUser(name, email, hash)

	err = a.uow.Within(ctx, func(ctx context.Context, tx shared.Tx) error {
		if _, rerr := tx.Reads().UserByEmail(ctx, email.Value()); rerr == nil {
			return ErrEmailTaken
		} else if !infra.IsKind(rerr, infra.KindNotFound) {
			return rerr
		}
		if cerr := tx.Users().Create(ctx, tx.DB(), entity); cerr != nil {
			if infra.IsKind(cerr, infra.KindDuplicateKey) {
				return ErrEmailTaken
			}
			return cerr
		}
		return nil
	})
	if err != nil {
		return nil, err
	}

	pair, err := a.issueTokens(entity.ID(), entity.Role())
	if err != nil {
		return nil, err
	}
	return &AuthResult{UserID: entity.ID(), TokenPair: pair}, nil
}

func (a *authCommandsImpl) Login(ctx context.Context, req LoginRequest) (*AuthResult, error) {
	email, err := user.NewEmail(req.Email)
	if err != nil {
		return nil, errs.Mark(err, ErrAuthenticationFailed)
	}
	pass, err := user.NewPassword(req.Password)
	if err != nil {
		return nil, errs.Mark(err, ErrAuthenticationFailed)
	}

	userView, err := a.validateUser(ctx, user.NewCredentials(email, pass))
	if err != nil {
		return nil, err
	}

	role, err := user.NewRole(userView.Role)
	if err != nil {
		return nil, errs.Mark(err, ErrAuthenticationFailed)
	}

	pair, err := a.issueTokens(userView.ID, role)
	if err != nil {
		return nil, err
	}

	err = a.uow.Within(ctx, func(ctx context.Context, tx shared.Tx) error {
		if updateErr := tx.Users().UpdateLastLogin(ctx, tx.DB(), userView.ID); updateErr != nil {
			slog.Warn("failed to update last login", "user_id", userView.ID, "error", updateErr.Error())
			// Continue without failing - this is not critical
		}
		return nil
	})
	if err != nil {
		slog.Warn("transaction failed during login", "user_id", userView.ID, "error", err.Error())
	}

	return &AuthResult{UserID: userView.ID, TokenPair: pair}, nil
}

func (a *authCommandsImpl) RefreshToken(ctx context.Context, refreshToken string) (*TokenPair, error) {
	claims, err := a.jwtService.ValidateToken(refreshToken)
	if err != nil {
		return nil, errs.Mark(err, ErrTokenValidation)
	}

	if claims.TokenType != jwt.TokenTypeRefresh {
		return nil, ErrTokenValidation
	}

	role, err := user.NewRole(claims.Role)
	if err != nil {
		return nil, errs.Mark(err, ErrTokenValidation)
	}

	// Validate user still exists and is active
	userView, err := a.readStore.FindByID(ctx, claims.UserID)
	if err != nil || userView == nil {
		return nil, ErrUserNotFound
	}
	if !userView.IsActive {
		return nil, ErrUserInactive
	}

	return a.issueTokens(claims.UserID, role)
}

func (a *authCommandsImpl) UpdateProfile(ctx context.Context, userID uuid.UUID, req UpdateProfileRequest) error {
	name, err := user.NewName(req.Name)
	if err != nil {
		return err
	}

	return a.uow.Within(ctx, func(ctx context.Context, tx shared.Tx) error {
		if _, rerr := tx.Reads().UserByID(ctx, userID); rerr != nil {
			if infra.IsKind(rerr, infra.KindNotFound) {
				return ErrUserNotFound
			}
			return rerr
		}
		return tx.Users().UpdateProfile(ctx, tx.DB(), userID, name.Value(), req.Phone)
	})
}

func (a *authCommandsImpl) ChangePassword(ctx context.Context, userID uuid.UUID, req ChangePasswordRequest) error {
	newPass, err := user.NewPassword(req.NewPassword)
	if err != nil {
		return err
	}
	hash, err := password.HashPassword(newPass.Value())
	if err != nil {
		return errs.Mark(err, ErrAuthenticationFailed)
	}

	return a.uow.Within(ctx, func(ctx context.Context, tx shared.Tx) error {
		snap, rerr := tx.Reads().UserByID(ctx, userID)
		if rerr != nil {
			if infra.IsKind(rerr, infra.KindNotFound) {
				return ErrUserNotFound
			}
			return rerr
		}
		if cerr := password.ComparePassword(snap.PasswordHash, req.CurrentPassword); cerr != nil {
			return ErrInvalidCredentials
		}
		return tx.Users().UpdatePassword(ctx, tx.DB(), userID, hash)
	})
}

func (a *authCommandsImpl) issueTokens(userID uuid.UUID, role user.Role) (*TokenPair, error) {
	accessToken, err := a.jwtService.GenerateAccessToken(userID, role)
	if err != nil {
		return nil, errs.Mark(err, ErrTokenGeneration)
	}
	refreshToken, err := a.jwtService.GenerateRefreshToken(userID, role)
	if err != nil {
		return nil, errs.Mark(err, ErrTokenGeneration)
	}
	return &TokenPair{AccessToken: accessToken, RefreshToken: refreshToken}, nil
}

func (a *authCommandsImpl) validateUser(ctx context.Context, credentials user.Credentials) (*queries.AuthorizedUserView, error) {
	userView, hashedPassword, err := a.readStore.FindByEmail(ctx, credentials.Email().Value())
	if err != nil {
		// Return same error as password mismatch to prevent user enumeration attacks
		return nil, ErrInvalidCredentials
	}

	if userView == nil {
		return nil, ErrUserNotFound
	}

	if !userView.IsActive {
		return nil, ErrUserInactive
	}

	if err = password.ComparePassword(hashedPassword, credentials.Password().Value()); err != nil {
		return nil, ErrInvalidCredentials
	}

	return userView, nil
}
