package commands

import (
	"context"

	"flexin/internal/domain/user"
	"flexin/internal/infra"
	"flexin/internal/usecase/shared"

	"github.com/google/uuid"
)

type UserCommands interface {
	UpdateProfile(ctx context.Context, actor shared.Actor, name string, departmentID *uuid.UUID, avatarURL *string) error
	DeleteUser(ctx context.Context, actor shared.Actor, userID uuid.UUID) error
}

type userUseCaseImpl struct {
	uow shared.UnitOfWork
}

func NewUserUseCase(uow shared.UnitOfWork) UserCommands {
	return &userUseCaseImpl{uow: uow}
}

func (u *userUseCaseImpl) UpdateProfile(ctx context.Context, actor shared.Actor, name string, departmentID *uuid.UUID, avatarURL *string) error {
	nameVO, err := user.NewName(name)
	if err != nil {
		return err
	}

	return u.uow.Within(ctx, func(ctx context.Context, tx shared.Tx) error {
		err := tx.Users().UpdateProfile(ctx, tx.DB(), actor.ID, nameVO.Value(), departmentID, avatarURL)
		if infra.IsKind(err, infra.KindNotFound) {
			return ErrUserNotFound
		}
		return err
	})
}

// DeleteUser removes the account and, through cascading deletes, its bookings
// and swap requests.
func (u *userUseCaseImpl) DeleteUser(ctx context.Context, actor shared.Actor, userID uuid.UUID) error {
	if !actor.IsAdmin() {
		return ErrAdminRequired
	}

	return u.uow.Within(ctx, func(ctx context.Context, tx shared.Tx) error {
		err := tx.Users().Delete(ctx, tx.DB(), userID)
		if infra.IsKind(err, infra.KindNotFound) {
			return ErrUserNotFound
		}
		return err
	})
}
