package response

import "pta-storefront/internal/usecase/queries"

type CartLineResponse struct {
	Key       int    `json:"key"`
	EventID   string `json:"event_id"`
	Name      string `json:"name"`
	Quantity  int    `json:"quantity"`
	UnitPrice string `json:"unit_price"`
	LineTotal string `json:"line_total"`
}

type CartResponse struct {
	Items   []CartLineResponse `json:"items"`
	Total   string             `json:"total"`
	IsEmpty bool               `json:"is_empty"`
}

func FromCartView(v *queries.CartView) *CartResponse {
	res := &CartResponse{
		Items:   make([]CartLineResponse, 0, len(v.Items)),
		Total:   v.Total.StringFixed(2),
		IsEmpty: v.IsEmpty,
	}
	for _, it := range v.Items {
		res.Items = append(res.Items, CartLineResponse{
			Key:       it.Key,
			EventID:   it.EventID.String(),
			Name:      it.Name,
			Quantity:  it.Quantity,
			UnitPrice: it.UnitPrice.StringFixed(2),
			LineTotal: it.LineTotal.StringFixed(2),
		})
	}
	return res
}
