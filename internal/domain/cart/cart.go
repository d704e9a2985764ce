package cart

import (
	"encoding/json"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// Cart is the ordered list of line items held in a visitor session.
// A line key is the item's position; keys are always dense and zero-based.
type Cart struct {
	items []LineItem
}

func New(items ...LineItem) *Cart {
	c := &Cart{items: make([]LineItem, 0, len(items))}
	c.items = append(c.items, items...)
	return c
}

// Add appends the item as a new line and returns its key. Lines for the
// same event are never merged.
func (c *Cart) Add(item LineItem) int {
	c.items = append(c.items, item)
	return len(c.items) - 1
}

// UpdateQuantities overwrites quantities for keys that exist, clamping to
// MinQuantity. Unknown keys are ignored.
func (c *Cart) UpdateQuantities(quantities map[int]int) {
	for key, qty := range quantities {
		if key < 0 || key >= len(c.items) {
			continue
		}
		c.items[key].Quantity = max(qty, MinQuantity)
	}
}

// Remove deletes the given keys and reindexes the remaining lines.
func (c *Cart) Remove(keys ...int) {
	if len(keys) == 0 {
		return
	}
	drop := make(map[int]struct{}, len(keys))
	for _, k := range keys {
		drop[k] = struct{}{}
	}

	kept := make([]LineItem, 0, len(c.items))
	for i, item := range c.items {
		if _, ok := drop[i]; ok {
			continue
		}
		kept = append(kept, item)
	}
	c.items = kept
}

func (c *Cart) Clear() {
	c.items = nil
}

func (c *Cart) Items() []LineItem {
	out := make([]LineItem, len(c.items))
	copy(out, c.items)
	return out
}

func (c *Cart) Len() int      { return len(c.items) }
func (c *Cart) IsEmpty() bool { return len(c.items) == 0 }

// Total is exact. Round only when presenting the value.
func (c *Cart) Total() decimal.Decimal {
	total := decimal.Zero
	for _, item := range c.items {
		total = total.Add(item.Subtotal())
	}
	return total
}

type storedLine struct {
	EventID   uuid.UUID       `json:"event_id"`
	Name      string          `json:"name"`
	Quantity  int             `json:"quantity"`
	UnitPrice decimal.Decimal `json:"unit_price"`
}

func (c *Cart) MarshalJSON() ([]byte, error) {
	lines := make([]storedLine, len(c.items))
	for i, item := range c.items {
		lines[i] = storedLine(item)
	}
	return json.Marshal(lines)
}

// UnmarshalJSON drops lines that could not have been produced by Add, so a
// tampered or stale session never yields an invalid cart.
func (c *Cart) UnmarshalJSON(data []byte) error {
	var lines []storedLine
	if err := json.Unmarshal(data, &lines); err != nil {
		return err
	}
	c.items = make([]LineItem, 0, len(lines))
	for _, l := range lines {
		item, err := NewLineItem(l.EventID, l.Name, l.Quantity, l.UnitPrice)
		if err != nil {
			continue
		}
		c.items = append(c.items, item)
	}
	return nil
}
