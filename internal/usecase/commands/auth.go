package commands

import (
	"context"
	"log/slog"
	"time"

	"flexin/internal/domain/user"
	"flexin/internal/infra"
	"flexin/internal/infra/db"
	"flexin/internal/infra/mailer"
	"flexin/internal/pkg/clock"
	"flexin/internal/pkg/errs"
	"flexin/internal/pkg/jwt"
	"flexin/internal/pkg/password"
	"flexin/internal/usecase/shared"

	"github.com/google/uuid"
)

var (
	ErrUserNotFound       = errs.New("user not found")
	ErrInvalidCredentials = errs.New("invalid credentials")
	ErrEmailNotVerified   = errs.New("email address is not verified")
	ErrEmailTaken         = errs.New("email address is already registered")
	ErrTokenGeneration    = errs.New("token generation failed")
	ErrTokenValidation    = errs.New("token validation failed")
)

const (
	purposeVerifyEmail   = "verify_email"
	purposePasswordReset = "password_reset"

	verifyTokenTTL = 24 * time.Hour
	resetTokenTTL  = time.Hour
)

type TokenPair struct {
	AccessToken  string
	RefreshToken string
}

type LoginResult struct {
	UserID    uuid.UUID
	Role      user.Role
	TokenPair *TokenPair
}

type AuthCommands interface {
	Register(ctx context.Context, name, email, rawPassword string) (uuid.UUID, error)
	VerifyEmail(ctx context.Context, token string) error
	Login(ctx context.Context, email, rawPassword string) (*LoginResult, error)
	RefreshToken(ctx context.Context, refreshToken string) (*TokenPair, error)
	RequestPasswordReset(ctx context.Context, email string) error
	ResetPassword(ctx context.Context, token, newPassword string) error
}

type authCommandsImpl struct {
	uow        shared.UnitOfWork
	users      shared.UserRepository
	jwtService *jwt.Service
	mail       mailer.Mailer
	clock      clock.Clock
}

func NewAuthCommands(uow shared.UnitOfWork, users shared.UserRepository, jwtService *jwt.Service, mail mailer.Mailer, clock clock.Clock) AuthCommands {
	return &authCommandsImpl{
		uow:        uow,
		users:      users,
		jwtService: jwtService,
		mail:       mail,
		clock:      clock,
	}
}

// Register creates a member account and fires the verification mail. Mail
// delivery is best effort; the account exists either way.
func (a *authCommandsImpl) Register(ctx context.Context, name, email, rawPassword string) (uuid.UUID, error) {
	nameVO, err := user.NewName(name)
	if err != nil {
		return uuid.Nil, err
	}
	emailVO, err := user.NewEmail(email)
	if err != nil {
		return uuid.Nil, err
	}
	if _, err := user.NewPassword(rawPassword); err != nil {
		return uuid.Nil, err
	}

	hash, err := password.HashPassword(rawPassword)
	if err != nil {
		return uuid.Nil, errs.Wrap(err, "failed to hash password")
	}

	u := user.NewUser(nameVO, emailVO, hash)

	var userID uuid.UUID
	err = a.uow.Within(ctx, func(ctx context.Context, tx shared.Tx) error {
		userID, err = tx.Users().Create(ctx, tx.DB(), u)
		if infra.IsKind(err, infra.KindDuplicateKey) {
			return ErrEmailTaken
		}
		return err
	})
	if err != nil {
		return uuid.Nil, err
	}

	token, err := a.jwtService.GeneratePurposeToken(userID, purposeVerifyEmail, verifyTokenTTL)
	if err != nil {
		slog.Warn("確認トークンの発行に失敗しました", "user_id", userID, "error", err.Error())
		return userID, nil
	}
	if err := a.mail.SendVerificationEmail(emailVO.Value(), token); err != nil {
		slog.Warn("確認メールの送信に失敗しました", "user_id", userID, "error", err.Error())
	}
	return userID, nil
}

func (a *authCommandsImpl) VerifyEmail(ctx context.Context, token string) error {
	userID, err := a.jwtService.ValidatePurposeToken(token, purposeVerifyEmail)
	if err != nil {
		return errs.Mark(err, ErrTokenValidation)
	}

	return a.uow.Within(ctx, func(ctx context.Context, tx shared.Tx) error {
		err := tx.Users().SetEmailVerified(ctx, tx.DB(), userID, a.clock.Now())
		if infra.IsKind(err, infra.KindNotFound) {
			return ErrUserNotFound
		}
		return err
	})
}

func (a *authCommandsImpl) Login(ctx context.Context, email, rawPassword string) (*LoginResult, error) {
	var u *user.User
	err := a.uow.WithDB(ctx, func(ctx context.Context, dbtx db.DBTX) error {
		var err error
		u, err = a.userByEmail(ctx, dbtx, email)
		return err
	})
	if err != nil {
		return nil, err
	}

	if err := password.ComparePassword(u.PasswordHash(), rawPassword); err != nil {
		return nil, ErrInvalidCredentials
	}

	if !u.IsVerified() {
		return nil, ErrEmailNotVerified
	}

	pair, err := a.issueTokenPair(u.ID(), u.Role())
	if err != nil {
		return nil, err
	}
	return &LoginResult{UserID: u.ID(), Role: u.Role(), TokenPair: pair}, nil
}

// userByEmail hides whether the address exists; every failure looks like a
// bad credential to the caller.
func (a *authCommandsImpl) userByEmail(ctx context.Context, dbtx db.DBTX, email string) (*user.User, error) {
	u, err := a.users.FindByEmail(ctx, dbtx, email)
	if err != nil {
		return nil, ErrInvalidCredentials
	}
	return u, nil
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

	// The account may have been removed since the token was issued.
	err = a.uow.WithDB(ctx, func(ctx context.Context, dbtx db.DBTX) error {
		_, err := a.users.FindByID(ctx, dbtx, claims.UserID)
		return err
	})
	if err != nil {
		return nil, ErrUserNotFound
	}

	return a.issueTokenPair(claims.UserID, role)
}

func (a *authCommandsImpl) RequestPasswordReset(ctx context.Context, email string) error {
	var u *user.User
	err := a.uow.WithDB(ctx, func(ctx context.Context, dbtx db.DBTX) error {
		var err error
		u, err = a.userByEmail(ctx, dbtx, email)
		return err
	})
	if err != nil {
		// Do not reveal whether the address exists.
		slog.Info("パスワード再設定の対象ユーザーが見つかりません", "email", email)
		return nil
	}

	token, err := a.jwtService.GeneratePurposeToken(u.ID(), purposePasswordReset, resetTokenTTL)
	if err != nil {
		return errs.Mark(err, ErrTokenGeneration)
	}
	if err := a.mail.SendPasswordResetEmail(u.Email().Value(), token); err != nil {
		slog.Warn("パスワード再設定メールの送信に失敗しました", "user_id", u.ID(), "error", err.Error())
	}
	return nil
}

func (a *authCommandsImpl) ResetPassword(ctx context.Context, token, newPassword string) error {
	userID, err := a.jwtService.ValidatePurposeToken(token, purposePasswordReset)
	if err != nil {
		return errs.Mark(err, ErrTokenValidation)
	}
	if _, err := user.NewPassword(newPassword); err != nil {
		return err
	}

	hash, err := password.HashPassword(newPassword)
	if err != nil {
		return errs.Wrap(err, "failed to hash password")
	}

	return a.uow.Within(ctx, func(ctx context.Context, tx shared.Tx) error {
		err := tx.Users().UpdatePassword(ctx, tx.DB(), userID, hash)
		if infra.IsKind(err, infra.KindNotFound) {
			return ErrUserNotFound
		}
		return err
	})
}

func (a *authCommandsImpl) issueTokenPair(userID uuid.UUID, role user.Role) (*TokenPair, error) {
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
