//go:build unit

package readstore_test

import (
	"context"
	"errors"
	"testing"

	"pta-storefront/internal/domain/event"
	"pta-storefront/internal/infra"
	"pta-storefront/internal/infra/readstore"
	sqlc "pta-storefront/internal/infra/sqlc/generated"
	"pta-storefront/tests/common/builder"
	readstoremock "pta-storefront/tests/mock/readstore"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/jackc/pgx/v5/pgtype"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"
)

var errDBConnectionLost = errors.New("database connection lost")

// =============================================================================
// PurchasableByID Tests
// =============================================================================

func TestEventReadStore_PurchasableByID(t *testing.T) {
	ctx := context.Background()

	testCases := []struct {
		name        string
		row         sqlc.Events
		mutateRow   func(*sqlc.Events)
		rowErr      error
		expectErrIs error
		expectKind  infra.RepositoryErrorKind
	}{
		{
			name: "success: public event resolves with exact price",
			row:  builder.NewEventBuilder().WithPrice("12.50").BuildInfra(),
		},
		{
			name:        "error: private event is hidden",
			row:         builder.NewEventBuilder().AsPrivate().BuildInfra(),
			expectErrIs: event.ErrEventNotFound,
		},
		{
			name:        "error: unknown event",
			rowErr:      pgx.ErrNoRows,
			expectErrIs: event.ErrEventNotFound,
		},
		{
			name:       "error: database error",
			rowErr:     errDBConnectionLost,
			expectKind: infra.KindDBFailure,
		},
		{
			name:       "error: NaN price",
			row:        builder.NewEventBuilder().BuildInfra(),
			mutateRow:  func(r *sqlc.Events) { r.Price = pgtype.Numeric{NaN: true, Valid: true} },
			expectKind: infra.KindDBFailure,
		},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			ctrl := gomock.NewController(t)
			defer ctrl.Finish()

			mockQueries := readstoremock.NewMockEventReadQueries(ctrl)
			store := readstore.NewEventReadStore(mockQueries, &mockDBTX{})

			id := uuid.New()
			row := tc.row
			row.ID = id
			if tc.mutateRow != nil {
				tc.mutateRow(&row)
			}
			mockQueries.EXPECT().GetEventByID(ctx, gomock.Any(), id).Return(row, tc.rowErr)

			ev, err := store.PurchasableByID(ctx, id)

			switch {
			case tc.expectErrIs != nil:
				require.Error(t, err)
				assert.ErrorIs(t, err, tc.expectErrIs)
				assert.Nil(t, ev)
			case tc.expectKind != "":
				require.Error(t, err)
				assert.True(t, infra.IsKind(err, tc.expectKind), "expected kind [%v] but got [%T] (%v)", tc.expectKind, err, err)
				assert.Nil(t, ev)
			default:
				require.NoError(t, err)
				require.NotNil(t, ev)
				assert.Equal(t, id, ev.ID)
				assert.True(t, ev.Price.Equal(decimal.RequireFromString("12.50")), "got %s", ev.Price)
				require.NotNil(t, ev.Date)
			}
		})
	}
}

// =============================================================================
// FindByID / ListPublic Tests
// =============================================================================

func TestEventReadStore_FindByID(t *testing.T) {
	ctx := context.Background()
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockQueries := readstoremock.NewMockEventReadQueries(ctrl)
	store := readstore.NewEventReadStore(mockQueries, &mockDBTX{})

	row := builder.NewEventBuilder().AsPrivate().BuildInfra()
	mockQueries.EXPECT().GetEventByID(ctx, gomock.Any(), row.ID).Return(row, nil)

	// visibility is decided by the query layer
	view, err := store.FindByID(ctx, row.ID)
	require.NoError(t, err)
	assert.False(t, view.IsPublic)
	assert.Equal(t, "Spring Gala", view.Title)
}

func TestEventReadStore_ListPublic(t *testing.T) {
	ctx := context.Background()

	testCases := []struct {
		name          string
		setupMock     func(*readstoremock.MockEventReadQueries)
		expectedCount int
		expectedError bool
	}{
		{
			name: "success: rows mapped in order",
			setupMock: func(mock *readstoremock.MockEventReadQueries) {
				rows := []sqlc.Events{
					builder.NewEventBuilder().WithTitle("Book Fair").BuildInfra(),
					builder.NewEventBuilder().WithTitle("Fun Run").BuildInfra(),
				}
				mock.EXPECT().ListPublicEvents(ctx, gomock.Any(), int32(20)).Return(rows, nil)
			},
			expectedCount: 2,
		},
		{
			name: "success: empty calendar",
			setupMock: func(mock *readstoremock.MockEventReadQueries) {
				mock.EXPECT().ListPublicEvents(ctx, gomock.Any(), int32(20)).Return(nil, nil)
			},
			expectedCount: 0,
		},
		{
			name: "error: database error",
			setupMock: func(mock *readstoremock.MockEventReadQueries) {
				mock.EXPECT().ListPublicEvents(ctx, gomock.Any(), int32(20)).Return(nil, errDBConnectionLost)
			},
			expectedError: true,
		},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			ctrl := gomock.NewController(t)
			defer ctrl.Finish()

			mockQueries := readstoremock.NewMockEventReadQueries(ctrl)
			store := readstore.NewEventReadStore(mockQueries, &mockDBTX{})
			tc.setupMock(mockQueries)

			views, err := store.ListPublic(ctx, 20)
			if tc.expectedError {
				require.Error(t, err)
				assert.True(t, infra.IsKind(err, infra.KindDBFailure))
				return
			}
			require.NoError(t, err)
			assert.Len(t, views, tc.expectedCount)
			if tc.expectedCount == 2 {
				assert.Equal(t, "Book Fair", views[0].Title)
				assert.Equal(t, "Fun Run", views[1].Title)
			}
		})
	}
}

type mockDBTX struct{}

func (m *mockDBTX) Exec(ctx context.Context, sql string, arguments ...any) (pgconn.CommandTag, error) {
	return pgconn.CommandTag{}, nil
}

func (m *mockDBTX) Query(ctx context.Context, sql string, args ...any) (pgx.Rows, error) {
	return nil, nil
}

func (m *mockDBTX) QueryRow(ctx context.Context, sql string, args ...any) pgx.Row {
	return nil
}
