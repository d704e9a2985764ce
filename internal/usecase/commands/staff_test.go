//go:build unit

package commands_test

import (
	"context"
	"errors"
	"testing"

	"pta-storefront/internal/domain/user"
	"pta-storefront/internal/infra"
	sqlc "pta-storefront/internal/infra/sqlc/generated"
	"pta-storefront/internal/pkg/password"
	"pta-storefront/internal/usecase/commands"
	"pta-storefront/tests/common/builder"
	queriesmock "pta-storefront/tests/mock/queries"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"
)

func TestStaffCommands_EnsureStaff(t *testing.T) {
	ctx := context.Background()
	const email = "treasurer@example.org"
	notFound := infra.WrapRepoErr("user not found", errors.New("no rows"), infra.KindNotFound)

	t.Run("success: creates a missing account with a bcrypt hash", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		f := newUOWFixture(ctrl)
		readStore := queriesmock.NewMockUserReadStore(ctrl)

		readStore.EXPECT().FindByEmail(ctx, email).Return(nil, "", notFound)
		f.users.EXPECT().Create(ctx, gomock.Any(), gomock.Any()).
			DoAndReturn(func(_ context.Context, _ any, params sqlc.CreateUserParams) (uuid.UUID, error) {
				assert.Equal(t, email, params.Email)
				assert.Equal(t, "admin", params.Role)
				assert.NoError(t, password.ComparePassword(params.PasswordHash, "correct-horse"))
				return uuid.New(), nil
			})

		created, err := commands.NewStaffCommands(f.uow, readStore).EnsureStaff(ctx, email, "correct-horse", user.RoleAdmin)
		require.NoError(t, err)
		assert.True(t, created)
	})

	t.Run("success: existing account is left alone", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		f := newUOWFixture(ctrl)
		readStore := queriesmock.NewMockUserReadStore(ctrl)
		readStore.EXPECT().FindByEmail(ctx, email).Return(builder.NewUserBuilder().WithEmail(email).BuildReadModel(), "hash", nil)

		created, err := commands.NewStaffCommands(f.uow, readStore).EnsureStaff(ctx, email, "correct-horse", user.RoleAdmin)
		require.NoError(t, err)
		assert.False(t, created)
	})

	testCases := []struct {
		name      string
		email     string
		password  string
		role      user.Role
		expectErr error
	}{
		{name: "error: malformed email", email: "nope", password: "correct-horse", role: user.RoleAdmin, expectErr: user.ErrInvalidEmail},
		{name: "error: short password", email: email, password: "short", role: user.RoleAdmin, expectErr: user.ErrPasswordTooWeak},
		{name: "error: unknown role", email: email, password: "correct-horse", role: user.Role("treasurer"), expectErr: user.ErrInvalidRole},
	}
	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			ctrl := gomock.NewController(t)
			created, err := commands.NewStaffCommands(newUOWFixture(ctrl).uow, queriesmock.NewMockUserReadStore(ctrl)).
				EnsureStaff(ctx, tc.email, tc.password, tc.role)
			assert.False(t, created)
			assert.ErrorIs(t, err, tc.expectErr)
		})
	}

	t.Run("error: lookup failure is not treated as missing", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		readStore := queriesmock.NewMockUserReadStore(ctrl)
		readStore.EXPECT().FindByEmail(ctx, email).Return(nil, "", infra.WrapRepoErr("failed to find user by email", errors.New("conn refused")))

		created, err := commands.NewStaffCommands(newUOWFixture(ctrl).uow, readStore).EnsureStaff(ctx, email, "correct-horse", user.RoleAdmin)
		assert.False(t, created)
		assert.Error(t, err)
	})
}
