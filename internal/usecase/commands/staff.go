package commands

import (
	"context"
	"log/slog"

	"pta-storefront/internal/domain/user"
	"pta-storefront/internal/infra"
	sqlc "pta-storefront/internal/infra/sqlc/generated"
	"pta-storefront/internal/pkg/errs"
	"pta-storefront/internal/pkg/password"
	"pta-storefront/internal/usecase/queries"
	"pta-storefront/internal/usecase/shared"
)

type StaffCommands interface {
	// EnsureStaff creates the account unless one already exists for the
	// email. Existing accounts are left untouched.
	EnsureStaff(ctx context.Context, email, plainPassword string, role user.Role) (created bool, err error)
}

type staffCommandsImpl struct {
	uow       shared.UnitOfWork
	readStore queries.UserReadStore
}

func NewStaffCommands(uow shared.UnitOfWork, readStore queries.UserReadStore) StaffCommands {
	return &staffCommandsImpl{
		uow:       uow,
		readStore: readStore,
	}
}

func (s *staffCommandsImpl) EnsureStaff(ctx context.Context, email, plainPassword string, role user.Role) (bool, error) {
	credentials, err := user.NewCredentials(email, plainPassword)
	if err != nil {
		return false, err
	}
	if !role.IsValid() {
		return false, user.ErrInvalidRole
	}

	_, _, err = s.readStore.FindByEmail(ctx, credentials.Email().Value())
	switch {
	case err == nil:
		return false, nil
	case !infra.IsKind(err, infra.KindNotFound):
		return false, errs.Wrap(err, "look up staff account")
	}

	hash, err := password.HashPassword(credentials.Password().Value())
	if err != nil {
		return false, errs.Wrap(err, "hash password")
	}

	err = s.uow.Within(ctx, func(ctx context.Context, tx shared.Tx) error {
		_, err := tx.Users().Create(ctx, tx.DB(), sqlc.CreateUserParams{
			Email:        credentials.Email().Value(),
			PasswordHash: hash,
			Role:         role.String(),
		})
		return err
	})
	if err != nil {
		return false, errs.Wrap(err, "create staff account")
	}

	slog.Info("staff account created", "email", credentials.Email().Value(), "role", role.String())
	return true, nil
}
