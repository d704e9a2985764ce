//go:build unit || e2e

package builder

import (
	"time"

	"pta-storefront/internal/domain/event"
	sqlc "pta-storefront/internal/infra/sqlc/generated"
	"pta-storefront/internal/pkg/pgconv"
	"pta-storefront/internal/usecase/queries"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5/pgtype"
	"github.com/shopspring/decimal"
)

type EventBuilder struct {
	ID       uuid.UUID
	Title    string
	Excerpt  string
	Price    decimal.Decimal
	Date     time.Time
	IsPublic bool
}

func NewEventBuilder() *EventBuilder {
	return &EventBuilder{
		ID:       uuid.New(),
		Title:    "Spring Gala",
		Excerpt:  "An evening for the whole school community",
		Price:    decimal.RequireFromString("10.00"),
		Date:     time.Date(2026, 4, 18, 0, 0, 0, 0, time.UTC),
		IsPublic: true,
	}
}

func (e *EventBuilder) With(mutate func(*EventBuilder)) *EventBuilder {
	mutate(e)
	return e
}

func (e *EventBuilder) WithPrice(price string) *EventBuilder {
	e.Price = decimal.RequireFromString(price)
	return e
}

func (e *EventBuilder) WithTitle(title string) *EventBuilder {
	e.Title = title
	return e
}

func (e *EventBuilder) AsPrivate() *EventBuilder {
	e.IsPublic = false
	return e
}

// Build methods
func (e *EventBuilder) BuildDomain() *event.Event {
	date := e.Date
	return &event.Event{
		ID:       e.ID,
		Title:    e.Title,
		Excerpt:  e.Excerpt,
		Price:    e.Price,
		Date:     &date,
		IsPublic: e.IsPublic,
	}
}

func (e *EventBuilder) BuildInfra() sqlc.Events {
	now := time.Now()
	return sqlc.Events{
		ID:        e.ID,
		Title:     e.Title,
		Excerpt:   pgconv.TextFromString(e.Excerpt),
		Price:     pgconv.NumericFromDecimal(e.Price),
		EventDate: pgtype.Date{Time: e.Date, Valid: true},
		IsPublic:  e.IsPublic,
		CreatedAt: pgtype.Timestamptz{Time: now, Valid: true},
		UpdatedAt: pgtype.Timestamptz{Time: now, Valid: true},
	}
}

func (e *EventBuilder) BuildView() *queries.EventView {
	date := e.Date
	return &queries.EventView{
		ID:       e.ID,
		Title:    e.Title,
		Excerpt:  e.Excerpt,
		Price:    e.Price,
		Date:     &date,
		IsPublic: e.IsPublic,
	}
}
