package queries

import (
	"context"

	"pta-storefront/internal/domain/cart"
	"pta-storefront/internal/usecase/shared"
)

type CartQueries interface {
	Get(ctx context.Context, sessionID string) (*CartView, error)
}

type cartQueriesImpl struct {
	sessions shared.SessionStore
}

func NewCartQueries(sessions shared.SessionStore) CartQueries {
	return &cartQueriesImpl{sessions: sessions}
}

func (q *cartQueriesImpl) Get(ctx context.Context, sessionID string) (*CartView, error) {
	c, err := shared.LoadCart(ctx, q.sessions, sessionID)
	if err != nil {
		return nil, err
	}
	return NewCartView(c), nil
}

// NewCartView keys lines by their position in the cart.
func NewCartView(c *cart.Cart) *CartView {
	items := c.Items()
	view := &CartView{
		Items:   make([]CartLineView, 0, len(items)),
		Total:   c.Total(),
		IsEmpty: len(items) == 0,
	}
	for i, it := range items {
		view.Items = append(view.Items, CartLineView{
			Key:       i,
			EventID:   it.EventID,
			Name:      it.Name,
			Quantity:  it.Quantity,
			UnitPrice: it.UnitPrice,
			LineTotal: it.Subtotal(),
		})
	}
	return view
}
