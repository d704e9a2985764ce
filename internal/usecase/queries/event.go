package queries

import (
	"context"

	"pta-storefront/internal/domain/event"
	"pta-storefront/internal/infra"

	"github.com/google/uuid"
)

type EventQueries interface {
	ListPublic(ctx context.Context, limit int) ([]EventView, error)
	GetPublic(ctx context.Context, id uuid.UUID) (*EventView, error)
}

type EventReadStore interface {
	FindByID(ctx context.Context, id uuid.UUID) (*EventView, error)
	ListPublic(ctx context.Context, limit int32) ([]EventView, error)
}

type eventQueriesImpl struct {
	readStore EventReadStore
}

func NewEventQueries(readStore EventReadStore) EventQueries {
	return &eventQueriesImpl{readStore: readStore}
}

func (q *eventQueriesImpl) ListPublic(ctx context.Context, limit int) ([]EventView, error) {
	limit = ValidateLimit(limit)
	return q.readStore.ListPublic(ctx, int32(limit)) // #nosec G115 -- bounded by ValidateLimit
}

// GetPublic hides non-public events behind the same not-found error.
func (q *eventQueriesImpl) GetPublic(ctx context.Context, id uuid.UUID) (*EventView, error) {
	ev, err := q.readStore.FindByID(ctx, id)
	if err != nil {
		if infra.IsKind(err, infra.KindNotFound) {
			return nil, event.ErrEventNotFound
		}
		return nil, err
	}
	if !ev.IsPublic {
		return nil, event.ErrEventNotFound
	}
	return ev, nil
}
