package shared

import (
	"context"
	"encoding/json"

	"pta-storefront/internal/domain/cart"
	"pta-storefront/internal/pkg/errs"
)

const CartSlot = "cart"

// LoadCart returns an empty cart when the visitor has none yet.
func LoadCart(ctx context.Context, store SessionStore, sessionID string) (*cart.Cart, error) {
	raw, err := store.Get(ctx, sessionID, CartSlot)
	if err != nil {
		if errs.Is(err, ErrSessionSlotEmpty) {
			return cart.New(), nil
		}
		return nil, errs.Wrap(err, "load cart")
	}

	c := cart.New()
	if err := json.Unmarshal(raw, c); err != nil {
		// corrupt slot reads as empty
		return cart.New(), nil
	}
	return c, nil
}

func SaveCart(ctx context.Context, store SessionStore, sessionID string, c *cart.Cart) error {
	if c.IsEmpty() {
		return ClearCart(ctx, store, sessionID)
	}
	raw, err := json.Marshal(c)
	if err != nil {
		return errs.Wrap(err, "encode cart")
	}
	if err := store.Set(ctx, sessionID, CartSlot, raw); err != nil {
		return errs.Wrap(err, "save cart")
	}
	return nil
}

func ClearCart(ctx context.Context, store SessionStore, sessionID string) error {
	if err := store.Clear(ctx, sessionID, CartSlot); err != nil {
		return errs.Wrap(err, "clear cart")
	}
	return nil
}
