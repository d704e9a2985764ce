//go:build unit

package repository_test

import (
	"context"
	"encoding/json"
	"errors"
	"testing"
	"time"

	"pta-storefront/internal/domain/transaction"
	"pta-storefront/internal/infra"
	"pta-storefront/internal/infra/repository"
	sqlc "pta-storefront/internal/infra/sqlc/generated"
	"pta-storefront/internal/pkg/pgconv"
	repositorymock "pta-storefront/tests/mock/repository"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"
)

var fixedNow = time.Date(2025, 10, 1, 12, 0, 0, 0, time.UTC)

func newRecord() *transaction.Record {
	return &transaction.Record{
		Reference:         "pi_123",
		CheckoutSessionID: "cs_test_123",
		CustomerEmail:     "parent@example.com",
		CustomerName:      "Pat Parent",
		Billing:           transaction.BillingAddress{Line1: "1 School Rd", City: "Springfield", Country: "US"},
		Total:             decimal.RequireFromString("20.00"),
		Subtotal:          decimal.RequireFromString("20.00"),
		Currency:          "usd",
		Status:            transaction.StatusSucceeded,
		LineItems: []transaction.LineItem{
			{Name: "Spring Gala", Quantity: 2, Amount: decimal.RequireFromString("20.00")},
		},
	}
}

// =============================================================================
// Upsert Tests
// =============================================================================

func TestTransactionRepository_Upsert(t *testing.T) {
	ctx := context.Background()
	rowID := uuid.New()

	testCases := []struct {
		name          string
		setupMock     func(*repositorymock.MockTransactionWriteQueries, sqlc.DBTX)
		expectApplied bool
		expectInsert  bool
		expectedError bool
		expectKind    infra.RepositoryErrorKind
	}{
		{
			name: "success: first delivery inserts",
			setupMock: func(mock *repositorymock.MockTransactionWriteQueries, tx sqlc.DBTX) {
				mock.EXPECT().UpsertTransaction(ctx, tx, gomock.Any()).Return(sqlc.UpsertTransactionRow{ID: rowID, Inserted: true}, nil)
			},
			expectApplied: true,
			expectInsert:  true,
		},
		{
			name: "success: status change updates existing row",
			setupMock: func(mock *repositorymock.MockTransactionWriteQueries, tx sqlc.DBTX) {
				mock.EXPECT().UpsertTransaction(ctx, tx, gomock.Any()).Return(sqlc.UpsertTransactionRow{ID: rowID, Inserted: false}, nil)
			},
			expectApplied: true,
		},
		{
			name: "success: redelivery with same status is a no-op",
			setupMock: func(mock *repositorymock.MockTransactionWriteQueries, tx sqlc.DBTX) {
				mock.EXPECT().UpsertTransaction(ctx, tx, gomock.Any()).Return(sqlc.UpsertTransactionRow{}, pgx.ErrNoRows)
			},
			expectApplied: false,
		},
		{
			name: "error: unique violation from a concurrent insert",
			setupMock: func(mock *repositorymock.MockTransactionWriteQueries, tx sqlc.DBTX) {
				dup := &pgconn.PgError{Code: "23505", Message: "duplicate key value violates unique constraint"}
				mock.EXPECT().UpsertTransaction(ctx, tx, gomock.Any()).Return(sqlc.UpsertTransactionRow{}, dup)
			},
			expectedError: true,
			expectKind:    infra.KindDuplicateKey,
		},
		{
			name: "error: database error occurs",
			setupMock: func(mock *repositorymock.MockTransactionWriteQueries, tx sqlc.DBTX) {
				mock.EXPECT().UpsertTransaction(ctx, tx, gomock.Any()).Return(sqlc.UpsertTransactionRow{}, errors.New("connection reset"))
			},
			expectedError: true,
			expectKind:    infra.KindDBFailure,
		},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			ctrl := gomock.NewController(t)
			defer ctrl.Finish()

			mockQueries := repositorymock.NewMockTransactionWriteQueries(ctrl)
			mockDB := &mockDBTX{}
			repo := repository.NewTransactionRepository(mockQueries)

			tc.setupMock(mockQueries, mockDB)

			res, actualError := repo.Upsert(ctx, mockDB, newRecord())

			if tc.expectedError {
				require.Error(t, actualError)
				assert.True(t, infra.IsKind(actualError, tc.expectKind), "expected kind [%v] but got [%T] (%v)", tc.expectKind, actualError, actualError)
				assert.False(t, res.Applied)
				return
			}
			require.NoError(t, actualError)
			assert.Equal(t, tc.expectApplied, res.Applied)
			assert.Equal(t, tc.expectInsert, res.Inserted)
			if tc.expectApplied {
				assert.Equal(t, rowID, res.ID)
			}
		})
	}
}

func TestTransactionRepository_UpsertParams(t *testing.T) {
	ctx := context.Background()
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockQueries := repositorymock.NewMockTransactionWriteQueries(ctrl)
	mockDB := &mockDBTX{}
	repo := repository.NewTransactionRepository(mockQueries)

	var captured sqlc.UpsertTransactionParams
	mockQueries.EXPECT().UpsertTransaction(ctx, mockDB, gomock.Any()).
		DoAndReturn(func(_ context.Context, _ sqlc.DBTX, arg sqlc.UpsertTransactionParams) (sqlc.UpsertTransactionRow, error) {
			captured = arg
			return sqlc.UpsertTransactionRow{ID: uuid.New(), Inserted: true}, nil
		})

	rec := newRecord()
	_, err := repo.Upsert(ctx, mockDB, rec)
	require.NoError(t, err)

	assert.Equal(t, "pi_123", captured.TransactionReference)
	assert.Equal(t, "cs_test_123", captured.CheckoutSessionID)
	assert.Equal(t, "succeeded", captured.PaymentStatus)
	assert.Equal(t, "US", captured.Country)

	total, err := pgconv.DecimalFromNumeric(captured.TotalAmount)
	require.NoError(t, err)
	assert.True(t, total.Equal(decimal.RequireFromString("20")), "got %s", total)

	var lines []map[string]any
	require.NoError(t, json.Unmarshal(captured.LineItems, &lines))
	require.Len(t, lines, 1)
	assert.Equal(t, "Spring Gala", lines[0]["name"])
	assert.EqualValues(t, 2, lines[0]["quantity"])
	assert.Equal(t, "20", lines[0]["amount"])
}

func TestTransactionRepository_UpsertWithoutLines(t *testing.T) {
	ctx := context.Background()
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockQueries := repositorymock.NewMockTransactionWriteQueries(ctrl)
	mockDB := &mockDBTX{}
	repo := repository.NewTransactionRepository(mockQueries)

	mockQueries.EXPECT().UpsertTransaction(ctx, mockDB, gomock.Any()).
		DoAndReturn(func(_ context.Context, _ sqlc.DBTX, arg sqlc.UpsertTransactionParams) (sqlc.UpsertTransactionRow, error) {
			assert.JSONEq(t, `[]`, string(arg.LineItems))
			assert.Equal(t, "failed", arg.PaymentStatus)
			return sqlc.UpsertTransactionRow{ID: uuid.New(), Inserted: true}, nil
		})

	rec := newRecord()
	rec.Status = transaction.StatusFailed
	rec.LineItems = nil
	_, err := repo.Upsert(ctx, mockDB, rec)
	require.NoError(t, err)
}

// =============================================================================
// Notification Job Tests
// =============================================================================

func TestNotificationRepository_CreateJob(t *testing.T) {
	ctx := context.Background()
	jobID := uuid.New()

	testCases := []struct {
		name          string
		setupMock     func(*repositorymock.MockNotificationWriteQueries, sqlc.DBTX)
		expectedError bool
	}{
		{
			name: "success: job queued",
			setupMock: func(mock *repositorymock.MockNotificationWriteQueries, tx sqlc.DBTX) {
				mock.EXPECT().CreateNotificationJob(ctx, tx, gomock.Any()).
					DoAndReturn(func(_ context.Context, _ sqlc.DBTX, arg sqlc.CreateNotificationJobParams) (uuid.UUID, error) {
						assert.Equal(t, "queued", arg.Status)
						assert.Equal(t, "order_confirmation", arg.Topic)
						return jobID, nil
					})
			},
		},
		{
			name: "error: database error occurs",
			setupMock: func(mock *repositorymock.MockNotificationWriteQueries, tx sqlc.DBTX) {
				mock.EXPECT().CreateNotificationJob(ctx, tx, gomock.Any()).Return(uuid.Nil, errors.New("database connection error"))
			},
			expectedError: true,
		},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			ctrl := gomock.NewController(t)
			defer ctrl.Finish()

			mockQueries := repositorymock.NewMockNotificationWriteQueries(ctrl)
			mockDB := &mockDBTX{}
			repo := repository.NewNotificationRepository(mockQueries)

			tc.setupMock(mockQueries, mockDB)

			id, err := repo.CreateJob(ctx, mockDB, "email", "order_confirmation", []byte(`{}`), fixedNow)
			if tc.expectedError {
				require.Error(t, err)
				assert.True(t, infra.IsKind(err, infra.KindDBFailure))
				return
			}
			require.NoError(t, err)
			assert.Equal(t, jobID, id)
		})
	}
}

func TestNotificationRepository_UpdateJobStatus(t *testing.T) {
	ctx := context.Background()
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockQueries := repositorymock.NewMockNotificationWriteQueries(ctrl)
	mockDB := &mockDBTX{}
	repo := repository.NewNotificationRepository(mockQueries)
	jobID := uuid.New()
	reason := "smtp: 550 mailbox unavailable"

	mockQueries.EXPECT().UpdateNotificationJobStatus(ctx, mockDB, sqlc.UpdateNotificationJobStatusParams{
		ID:        jobID,
		Status:    "failed",
		LastError: pgconv.StringPtrToPgtype(&reason),
	}).Return(nil)

	require.NoError(t, repo.UpdateJobStatus(ctx, mockDB, jobID, "failed", &reason))
}

type mockDBTX struct{}

func (m *mockDBTX) Exec(ctx context.Context, sql string, arguments ...any) (pgconn.CommandTag, error) {
	return pgconn.CommandTag{}, nil
}

func (m *mockDBTX) Query(ctx context.Context, sql string, args ...any) (pgx.Rows, error) {
	return nil, nil
}

func (m *mockDBTX) QueryRow(ctx context.Context, sql string, args ...any) pgx.Row {
	panic("mockDBTX.QueryRow was called unexpectedly. Use sqlc mock instead.")
}
