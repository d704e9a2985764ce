package readstore

import (
	"context"

	"pta-storefront/internal/domain/event"
	"pta-storefront/internal/infra"
	sqlc "pta-storefront/internal/infra/sqlc/generated"
	"pta-storefront/internal/pkg/pgconv"
	"pta-storefront/internal/usecase/queries"

	"github.com/google/uuid"
)

type EventReadQueries interface {
	GetEventByID(ctx context.Context, db sqlc.DBTX, id uuid.UUID) (sqlc.Events, error)
	ListPublicEvents(ctx context.Context, db sqlc.DBTX, limit int32) ([]sqlc.Events, error)
}

// EventReadStore serves the public calendar and resolves cart prices.
type EventReadStore struct {
	queries EventReadQueries
	db      sqlc.DBTX
}

func NewEventReadStore(queries EventReadQueries, db sqlc.DBTX) *EventReadStore {
	return &EventReadStore{
		queries: queries,
		db:      db,
	}
}

func (r *EventReadStore) FindByID(ctx context.Context, id uuid.UUID) (*queries.EventView, error) {
	ev, err := r.load(ctx, id)
	if err != nil {
		return nil, err
	}
	return toEventView(ev), nil
}

func (r *EventReadStore) ListPublic(ctx context.Context, limit int32) ([]queries.EventView, error) {
	rows, err := r.queries.ListPublicEvents(ctx, r.db, limit)
	if err != nil {
		return nil, infra.WrapRepoErr("failed to list public events", err)
	}

	views := make([]queries.EventView, 0, len(rows))
	for _, row := range rows {
		ev, err := toDomainEvent(row)
		if err != nil {
			return nil, err
		}
		views = append(views, *toEventView(ev))
	}
	return views, nil
}

// PurchasableByID hides events that are not public behind ErrEventNotFound.
func (r *EventReadStore) PurchasableByID(ctx context.Context, id uuid.UUID) (*event.Event, error) {
	ev, err := r.load(ctx, id)
	if err != nil {
		if infra.IsKind(err, infra.KindNotFound) {
			return nil, event.ErrEventNotFound
		}
		return nil, err
	}
	if !ev.IsPurchasable() {
		return nil, event.ErrEventNotFound
	}
	return ev, nil
}

func (r *EventReadStore) load(ctx context.Context, id uuid.UUID) (*event.Event, error) {
	row, err := r.queries.GetEventByID(ctx, r.db, id)
	if err != nil {
		if pgconv.IsNoRows(err) {
			return nil, infra.WrapRepoErr("event not found", err, infra.KindNotFound)
		}
		return nil, infra.WrapRepoErr("failed to get event by id", err)
	}
	return toDomainEvent(row)
}

func toDomainEvent(row sqlc.Events) (*event.Event, error) {
	price, err := pgconv.DecimalFromNumeric(row.Price)
	if err != nil {
		return nil, infra.WrapRepoErr("invalid event price", err, infra.KindDBFailure)
	}
	return &event.Event{
		ID:        row.ID,
		Title:     row.Title,
		Excerpt:   pgconv.StringFromPgtype(row.Excerpt),
		Price:     price,
		Date:      pgconv.DatePtrFromPgtype(row.EventDate),
		IsPublic:  row.IsPublic,
		CreatedAt: pgconv.TimeFromPgtype(row.CreatedAt),
		UpdatedAt: pgconv.TimeFromPgtype(row.UpdatedAt),
	}, nil
}

func toEventView(ev *event.Event) *queries.EventView {
	return &queries.EventView{
		ID:       ev.ID,
		Title:    ev.Title,
		Excerpt:  ev.Excerpt,
		Price:    ev.Price,
		Date:     ev.Date,
		IsPublic: ev.IsPublic,
	}
}
