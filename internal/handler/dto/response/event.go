package response

import (
	"pta-storefront/internal/usecase/queries"
)

type EventResponse struct {
	ID      string `json:"id"`
	Title   string `json:"title"`
	Excerpt string `json:"excerpt,omitempty"`
	Price   string `json:"price"`
	Date    *int64 `json:"date,omitempty"`
}

func FromEventView(v *queries.EventView) *EventResponse {
	res := &EventResponse{
		ID:      v.ID.String(),
		Title:   v.Title,
		Excerpt: v.Excerpt,
		Price:   v.Price.StringFixed(2),
	}
	if v.Date != nil {
		ts := v.Date.Unix()
		res.Date = &ts
	}
	return res
}

func FromEventList(items []queries.EventView) []*EventResponse {
	res := make([]*EventResponse, len(items))
	for i := range items {
		res[i] = FromEventView(&items[i])
	}
	return res
}
