//go:build unit

package queries_test

import (
	"context"
	"errors"
	"testing"

	"pta-storefront/internal/usecase/queries"
	"pta-storefront/internal/usecase/shared"
	sharedmock "pta-storefront/tests/mock/shared"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"
)

func TestCartQueries_Get(t *testing.T) {
	ctx := context.Background()
	const sid = "visitor-1"

	t.Run("success: stored lines are keyed by position", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		store := sharedmock.NewMockSessionStore(ctrl)
		raw := []byte(`[
			{"event_id":"6f1c2b9e-8d4a-4c1e-9b7a-1a2b3c4d5e6f","name":"Spring Gala","quantity":2,"unit_price":"10.00"},
			{"event_id":"6f1c2b9e-8d4a-4c1e-9b7a-1a2b3c4d5e6f","name":"Spring Gala","quantity":1,"unit_price":"10.00"}
		]`)
		store.EXPECT().Get(ctx, sid, shared.CartSlot).Return(raw, nil)

		view, err := queries.NewCartQueries(store).Get(ctx, sid)
		require.NoError(t, err)
		require.Len(t, view.Items, 2)
		assert.Equal(t, 1, view.Items[1].Key)
		assert.Equal(t, "20.00", view.Items[0].LineTotal.StringFixed(2))
		assert.Equal(t, "30.00", view.Total.StringFixed(2))
		assert.False(t, view.IsEmpty)
	})

	t.Run("success: missing slot is an empty cart", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		store := sharedmock.NewMockSessionStore(ctrl)
		store.EXPECT().Get(ctx, sid, shared.CartSlot).Return(nil, shared.ErrSessionSlotEmpty)

		view, err := queries.NewCartQueries(store).Get(ctx, sid)
		require.NoError(t, err)
		assert.True(t, view.IsEmpty)
		assert.True(t, view.Total.IsZero())
	})

	t.Run("success: corrupt slot reads as empty", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		store := sharedmock.NewMockSessionStore(ctrl)
		store.EXPECT().Get(ctx, sid, shared.CartSlot).Return([]byte(`{not json`), nil)

		view, err := queries.NewCartQueries(store).Get(ctx, sid)
		require.NoError(t, err)
		assert.True(t, view.IsEmpty)
	})

	t.Run("error: store unavailable", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		store := sharedmock.NewMockSessionStore(ctrl)
		store.EXPECT().Get(ctx, sid, shared.CartSlot).Return(nil, errors.New("redis down"))

		view, err := queries.NewCartQueries(store).Get(ctx, sid)
		assert.Nil(t, view)
		assert.Error(t, err)
	})
}
