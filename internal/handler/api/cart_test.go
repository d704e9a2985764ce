//go:build unit

package api_test

import (
	"errors"
	"net/http"
	"testing"

	"pta-storefront/internal/domain/cart"
	"pta-storefront/internal/handler/api"
	resdto "pta-storefront/internal/handler/dto/response"
	"pta-storefront/internal/usecase/queries"
	"pta-storefront/tests/common/httptest"
	commandsmock "pta-storefront/tests/mock/commands"
	queriesmock "pta-storefront/tests/mock/queries"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/suite"
	"go.uber.org/mock/gomock"
)

const testVisitor = "5d1f3c2a-7b8e-4f60-9a1b-2c3d4e5f6a7b"

// withVisitor stands in for the session middleware.
func withVisitor(c *gin.Context) {
	c.Set("visitor_session_id", testVisitor)
	c.Next()
}

func sampleCartView() *queries.CartView {
	price := decimal.RequireFromString("10.00")
	return &queries.CartView{
		Items: []queries.CartLineView{{
			Key:       0,
			EventID:   uuid.New(),
			Name:      "Spring Gala",
			Quantity:  2,
			UnitPrice: price,
			LineTotal: price.Mul(decimal.NewFromInt(2)),
		}},
		Total: decimal.RequireFromString("20.00"),
	}
}

type CartHandlerTestSuite struct {
	suite.Suite
	router       *gin.Engine
	mockCtrl     *gomock.Controller
	mockCommands *commandsmock.MockCartCommands
	mockQueries  *queriesmock.MockCartQueries
}

func (s *CartHandlerTestSuite) SetupTest() {
	gin.SetMode(gin.TestMode)
	s.router = gin.New()

	s.mockCtrl = gomock.NewController(s.T())
	s.mockCommands = commandsmock.NewMockCartCommands(s.mockCtrl)
	s.mockQueries = queriesmock.NewMockCartQueries(s.mockCtrl)
	h := api.NewCartHandler(s.mockCommands, s.mockQueries)

	g := s.router.Group("/cart", withVisitor)
	g.GET("", h.Get)
	g.DELETE("", h.Clear)
	g.POST("/items", h.AddItem)
	g.PATCH("/items", h.UpdateItems)
	g.DELETE("/items", h.RemoveItems)

	// no session middleware
	s.router.GET("/bare/cart", h.Get)
}

func (s *CartHandlerTestSuite) TearDownTest() {
	s.mockCtrl.Finish()
}

func TestCartHandlerSuite(t *testing.T) {
	suite.Run(t, new(CartHandlerTestSuite))
}

func (s *CartHandlerTestSuite) TestGet() {
	s.Run("success: returns the visitor's cart", func() {
		s.mockQueries.EXPECT().Get(gomock.Any(), testVisitor).Return(sampleCartView(), nil)

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodGet, "/cart", nil, "")

		var res resdto.CartResponse
		httptest.AssertSuccessResponse(s.T(), rec, http.StatusOK, &res)
		s.Require().Len(res.Items, 1)
		s.Equal("20.00", res.Total)
		s.Equal("10.00", res.Items[0].UnitPrice)
		s.Equal("20.00", res.Items[0].LineTotal)
	})

	s.Run("error: 500 without a visitor session", func() {
		rec := httptest.PerformRequest(s.T(), s.router, http.MethodGet, "/bare/cart", nil, "")
		httptest.AssertErrorResponse(s.T(), rec, http.StatusInternalServerError, "Internal server error")
	})

	s.Run("error: 500 when the store fails", func() {
		s.mockQueries.EXPECT().Get(gomock.Any(), testVisitor).Return(nil, errors.New("redis down"))

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodGet, "/cart", nil, "")
		httptest.AssertErrorResponse(s.T(), rec, http.StatusInternalServerError, "Internal server error")
	})
}

func (s *CartHandlerTestSuite) TestAddItem() {
	eventID := uuid.New()

	s.Run("success: 201 with the updated cart", func() {
		s.mockCommands.EXPECT().Add(gomock.Any(), testVisitor, eventID, 2).Return(sampleCartView(), nil)

		body := map[string]any{"event_id": eventID.String(), "quantity": 2}
		rec := httptest.PerformRequest(s.T(), s.router, http.MethodPost, "/cart/items", body, "")

		var res resdto.CartResponse
		httptest.AssertSuccessResponse(s.T(), rec, http.StatusCreated, &res)
		s.False(res.IsEmpty)
	})

	s.Run("error: 400 on invalid bodies", func() {
		testCases := []struct {
			name string
			body map[string]any
		}{
			{name: "missing event", body: map[string]any{"quantity": 1}},
			{name: "malformed event id", body: map[string]any{"event_id": "abc", "quantity": 1}},
			{name: "zero quantity", body: map[string]any{"event_id": eventID.String(), "quantity": 0}},
			{name: "too many", body: map[string]any{"event_id": eventID.String(), "quantity": 101}},
		}
		for _, tc := range testCases {
			s.Run(tc.name, func() {
				rec := httptest.PerformRequest(s.T(), s.router, http.MethodPost, "/cart/items", tc.body, "")
				httptest.AssertErrorResponse(s.T(), rec, http.StatusBadRequest, "Invalid request")
			})
		}
	})

	s.Run("error: maps usecase errors to proper statuses", func() {
		testCases := []struct {
			name           string
			commandsError  error
			expectedStatus int
			expectedMsg    string
		}{
			{
				name:           "event not purchasable",
				commandsError:  cart.ErrEventNotPurchasable,
				expectedStatus: http.StatusBadRequest,
				expectedMsg:    "Event is not available for purchase",
			},
			{
				name:           "invalid quantity",
				commandsError:  cart.ErrInvalidQuantity,
				expectedStatus: http.StatusBadRequest,
				expectedMsg:    "Quantity must be at least 1",
			},
			{
				name:           "internal server error",
				commandsError:  errors.New("redis down"),
				expectedStatus: http.StatusInternalServerError,
				expectedMsg:    "Internal server error",
			},
		}

		for _, tc := range testCases {
			s.Run(tc.name, func() {
				s.mockCommands.EXPECT().Add(gomock.Any(), testVisitor, eventID, 1).Return(nil, tc.commandsError)

				body := map[string]any{"event_id": eventID.String(), "quantity": 1}
				rec := httptest.PerformRequest(s.T(), s.router, http.MethodPost, "/cart/items", body, "")
				httptest.AssertErrorResponse(s.T(), rec, tc.expectedStatus, tc.expectedMsg)
			})
		}
	})
}

func (s *CartHandlerTestSuite) TestUpdateItems() {
	s.Run("success: keys are parsed from the object", func() {
		s.mockCommands.EXPECT().UpdateQuantities(gomock.Any(), testVisitor, map[int]int{0: 3, 2: 1}).
			Return(sampleCartView(), nil)

		body := map[string]any{"quantities": map[string]int{"0": 3, "2": 1}}
		rec := httptest.PerformRequest(s.T(), s.router, http.MethodPatch, "/cart/items", body, "")
		httptest.AssertSuccessResponse(s.T(), rec, http.StatusOK, nil)
	})

	s.Run("error: 400 on a non-numeric key", func() {
		body := map[string]any{"quantities": map[string]int{"first": 3}}
		rec := httptest.PerformRequest(s.T(), s.router, http.MethodPatch, "/cart/items", body, "")
		httptest.AssertErrorResponse(s.T(), rec, http.StatusBadRequest, "Invalid line key")
	})

	s.Run("error: 400 on a negative key", func() {
		body := map[string]any{"quantities": map[string]int{"-1": 3}}
		rec := httptest.PerformRequest(s.T(), s.router, http.MethodPatch, "/cart/items", body, "")
		httptest.AssertErrorResponse(s.T(), rec, http.StatusBadRequest, "Invalid line key")
	})
}

func (s *CartHandlerTestSuite) TestRemoveItems() {
	s.Run("success: removes the given keys", func() {
		s.mockCommands.EXPECT().Remove(gomock.Any(), testVisitor, []int{0, 2}).
			Return(&queries.CartView{IsEmpty: true, Total: decimal.Zero}, nil)

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodDelete, "/cart/items", map[string]any{"keys": []int{0, 2}}, "")

		var res resdto.CartResponse
		httptest.AssertSuccessResponse(s.T(), rec, http.StatusOK, &res)
		s.True(res.IsEmpty)
		s.Equal("0.00", res.Total)
		s.NotNil(res.Items)
	})

	s.Run("error: 400 without keys", func() {
		rec := httptest.PerformRequest(s.T(), s.router, http.MethodDelete, "/cart/items", map[string]any{"keys": []int{}}, "")
		httptest.AssertErrorResponse(s.T(), rec, http.StatusBadRequest, "Invalid request")
	})
}

func (s *CartHandlerTestSuite) TestClear() {
	s.Run("success: returns an empty cart", func() {
		s.mockCommands.EXPECT().Clear(gomock.Any(), testVisitor).
			Return(&queries.CartView{IsEmpty: true, Total: decimal.Zero}, nil)

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodDelete, "/cart", nil, "")

		var res resdto.CartResponse
		httptest.AssertSuccessResponse(s.T(), rec, http.StatusOK, &res)
		s.True(res.IsEmpty)
	})
}
