package response

import (
	"time"

	"pta-storefront/internal/usecase/queries"

	"github.com/google/uuid"
	"github.com/jinzhu/copier"
	"github.com/shopspring/decimal"
)

type TransactionLineResponse struct {
	Name     string `json:"name"`
	Quantity int64  `json:"quantity"`
	Amount   string `json:"amount"`
}

type TransactionResponse struct {
	ID                   string                    `json:"id"`
	TransactionReference string                    `json:"transaction_reference"`
	CheckoutSessionID    string                    `json:"checkout_session_id,omitempty"`
	UserEmail            string                    `json:"user_email"`
	CustomerName         string                    `json:"customer_name"`
	CustomerPhone        string                    `json:"customer_phone"`
	AddressLine1         string                    `json:"address_line1"`
	AddressLine2         string                    `json:"address_line2"`
	City                 string                    `json:"city"`
	State                string                    `json:"state"`
	PostalCode           string                    `json:"postal_code"`
	Country              string                    `json:"country"`
	TotalAmount          string                    `json:"total_amount"`
	Subtotal             string                    `json:"subtotal"`
	Currency             string                    `json:"currency"`
	PaymentStatus        string                    `json:"payment_status"`
	LineItems            []TransactionLineResponse `json:"line_items"`
	CreatedAt            int64                     `json:"created_at"`
	UpdatedAt            int64                     `json:"updated_at"`
}

type TransactionListItemResponse struct {
	ID                   string `json:"id"`
	TransactionReference string `json:"transaction_reference"`
	UserEmail            string `json:"user_email"`
	CustomerName         string `json:"customer_name"`
	TotalAmount          string `json:"total_amount"`
	Currency             string `json:"currency"`
	PaymentStatus        string `json:"payment_status"`
	CreatedAt            int64  `json:"created_at"`
}

type TransactionListResponse struct {
	Transactions []TransactionListItemResponse `json:"transactions"`
	NextCursor   *string                       `json:"next_cursor,omitempty"`
}

var copyOpts = copier.Option{
	Converters: []copier.TypeConverter{
		{
			SrcType: decimal.Decimal{},
			DstType: copier.String,
			Fn: func(src any) (any, error) {
				return src.(decimal.Decimal).StringFixed(2), nil
			},
		},
		{
			SrcType: uuid.UUID{},
			DstType: copier.String,
			Fn: func(src any) (any, error) {
				return src.(uuid.UUID).String(), nil
			},
		},
		{
			SrcType: time.Time{},
			DstType: int64(0),
			Fn: func(src any) (any, error) {
				return src.(time.Time).Unix(), nil
			},
		},
	},
}

func FromTransactionView(v *queries.TransactionView) (*TransactionResponse, error) {
	res := &TransactionResponse{}
	if err := copier.CopyWithOption(res, v, copyOpts); err != nil {
		return nil, err
	}
	if res.LineItems == nil {
		res.LineItems = []TransactionLineResponse{}
	}
	return res, nil
}

func FromTransactionPage(p *queries.TransactionPage) (*TransactionListResponse, error) {
	res := &TransactionListResponse{
		Transactions: make([]TransactionListItemResponse, 0, len(p.Items)),
		NextCursor:   p.NextCursor,
	}
	if len(p.Items) == 0 {
		return res, nil
	}
	if err := copier.CopyWithOption(&res.Transactions, p.Items, copyOpts); err != nil {
		return nil, err
	}
	return res, nil
}
