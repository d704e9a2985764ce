//go:build unit

package commands_test

import (
	"context"

	"pta-storefront/internal/usecase/shared"
	sharedmock "pta-storefront/tests/mock/shared"

	"go.uber.org/mock/gomock"
)

// uowFixture runs Within callbacks against mocked repositories.
type uowFixture struct {
	uow           *sharedmock.MockUnitOfWork
	tx            *sharedmock.MockTx
	transactions  *sharedmock.MockTransactionRepository
	notifications *sharedmock.MockNotificationRepository
	users         *sharedmock.MockUserRepository
}

func newUOWFixture(ctrl *gomock.Controller) *uowFixture {
	f := &uowFixture{
		uow:           sharedmock.NewMockUnitOfWork(ctrl),
		tx:            sharedmock.NewMockTx(ctrl),
		transactions:  sharedmock.NewMockTransactionRepository(ctrl),
		notifications: sharedmock.NewMockNotificationRepository(ctrl),
		users:         sharedmock.NewMockUserRepository(ctrl),
	}
	f.tx.EXPECT().Transactions().Return(f.transactions).AnyTimes()
	f.tx.EXPECT().Notifications().Return(f.notifications).AnyTimes()
	f.tx.EXPECT().Users().Return(f.users).AnyTimes()
	f.tx.EXPECT().DB().Return(nil).AnyTimes()
	f.uow.EXPECT().Within(gomock.Any(), gomock.Any()).
		DoAndReturn(func(ctx context.Context, fn func(context.Context, shared.Tx) error) error {
			return fn(ctx, f.tx)
		}).AnyTimes()
	return f
}
