package request

import (
	"strconv"

	"pta-storefront/internal/pkg/errs"

	"github.com/google/uuid"
)

var ErrInvalidLineKey = errs.Mark(errs.New("line key must be a non-negative integer"), errs.ErrValidation)

type AddCartItemRequest struct {
	EventID  uuid.UUID `json:"event_id" binding:"required"`
	Quantity int       `json:"quantity" binding:"required,min=1,max=100"`
}

// UpdateCartItemsRequest maps line keys to new quantities. JSON object keys
// are strings, so they are parsed here.
type UpdateCartItemsRequest struct {
	Quantities map[string]int `json:"quantities" binding:"required"`
}

func (r *UpdateCartItemsRequest) ToKeyed() (map[int]int, error) {
	out := make(map[int]int, len(r.Quantities))
	for k, qty := range r.Quantities {
		key, err := strconv.Atoi(k)
		if err != nil || key < 0 {
			return nil, ErrInvalidLineKey
		}
		out[key] = qty
	}
	return out, nil
}

type RemoveCartItemsRequest struct {
	Keys []int `json:"keys" binding:"required,min=1,dive,min=0"`
}
