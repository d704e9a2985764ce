package commands

import (
	"context"

	"pta-storefront/internal/domain/cart"
	"pta-storefront/internal/domain/event"
	"pta-storefront/internal/pkg/errs"
	"pta-storefront/internal/usecase/queries"
	"pta-storefront/internal/usecase/shared"

	"github.com/google/uuid"
)

type CartCommands interface {
	Add(ctx context.Context, sessionID string, eventID uuid.UUID, quantity int) (*queries.CartView, error)
	UpdateQuantities(ctx context.Context, sessionID string, quantities map[int]int) (*queries.CartView, error)
	Remove(ctx context.Context, sessionID string, keys []int) (*queries.CartView, error)
	Clear(ctx context.Context, sessionID string) (*queries.CartView, error)
}

type cartCommandsImpl struct {
	sessions shared.SessionStore
	catalog  shared.EventCatalog
}

func NewCartCommands(sessions shared.SessionStore, catalog shared.EventCatalog) CartCommands {
	return &cartCommandsImpl{
		sessions: sessions,
		catalog:  catalog,
	}
}

// Add captures the event's title and price at add time. Adding the same
// event twice produces two lines.
func (uc *cartCommandsImpl) Add(ctx context.Context, sessionID string, eventID uuid.UUID, quantity int) (*queries.CartView, error) {
	if quantity < cart.MinQuantity {
		return nil, cart.ErrInvalidQuantity
	}

	ev, err := uc.catalog.PurchasableByID(ctx, eventID)
	if err != nil {
		if errs.Is(err, event.ErrEventNotFound) {
			return nil, cart.ErrEventNotPurchasable
		}
		return nil, errs.Wrap(err, "resolve event")
	}
	if !ev.IsPurchasable() {
		return nil, cart.ErrEventNotPurchasable
	}

	item, err := cart.NewLineItem(ev.ID, ev.Title, quantity, ev.Price)
	if err != nil {
		return nil, err
	}

	return uc.mutate(ctx, sessionID, func(c *cart.Cart) {
		c.Add(item)
	})
}

func (uc *cartCommandsImpl) UpdateQuantities(ctx context.Context, sessionID string, quantities map[int]int) (*queries.CartView, error) {
	return uc.mutate(ctx, sessionID, func(c *cart.Cart) {
		c.UpdateQuantities(quantities)
	})
}

func (uc *cartCommandsImpl) Remove(ctx context.Context, sessionID string, keys []int) (*queries.CartView, error) {
	return uc.mutate(ctx, sessionID, func(c *cart.Cart) {
		c.Remove(keys...)
	})
}

func (uc *cartCommandsImpl) Clear(ctx context.Context, sessionID string) (*queries.CartView, error) {
	if err := shared.ClearCart(ctx, uc.sessions, sessionID); err != nil {
		return nil, err
	}
	return queries.NewCartView(cart.New()), nil
}

func (uc *cartCommandsImpl) mutate(ctx context.Context, sessionID string, fn func(c *cart.Cart)) (*queries.CartView, error) {
	c, err := shared.LoadCart(ctx, uc.sessions, sessionID)
	if err != nil {
		return nil, err
	}

	fn(c)

	if err := shared.SaveCart(ctx, uc.sessions, sessionID, c); err != nil {
		return nil, err
	}
	return queries.NewCartView(c), nil
}
