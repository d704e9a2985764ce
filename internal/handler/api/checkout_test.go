//go:build unit

package api_test

import (
	"errors"
	"net/http"
	"net/url"
	"testing"

	"pta-storefront/internal/handler/api"
	resdto "pta-storefront/internal/handler/dto/response"
	"pta-storefront/internal/pkg/errs"
	"pta-storefront/internal/usecase/commands"
	"pta-storefront/tests/common/httptest"
	commandsmock "pta-storefront/tests/mock/commands"

	"github.com/gin-gonic/gin"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/suite"
	"go.uber.org/mock/gomock"
)

type CheckoutHandlerTestSuite struct {
	suite.Suite
	router       *gin.Engine
	mockCtrl     *gomock.Controller
	mockCommands *commandsmock.MockCheckoutCommands
}

func (s *CheckoutHandlerTestSuite) SetupTest() {
	gin.SetMode(gin.TestMode)
	s.router = gin.New()

	s.mockCtrl = gomock.NewController(s.T())
	s.mockCommands = commandsmock.NewMockCheckoutCommands(s.mockCtrl)
	h := api.NewCheckoutHandler(s.mockCommands)

	g := s.router.Group("/checkout", withVisitor)
	g.POST("", h.Start)
	g.GET("/sessions/:id", h.Confirm)
}

func (s *CheckoutHandlerTestSuite) TearDownTest() {
	s.mockCtrl.Finish()
}

func TestCheckoutHandlerSuite(t *testing.T) {
	suite.Run(t, new(CheckoutHandlerTestSuite))
}

func (s *CheckoutHandlerTestSuite) TestStart() {
	s.Run("success: 303 to the hosted payment page", func() {
		s.mockCommands.EXPECT().Start(gomock.Any(), testVisitor).
			Return(&commands.CheckoutResult{SessionID: "cs_test_1", RedirectURL: "https://checkout.stripe.com/c/pay/cs_test_1"}, nil)

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodPost, "/checkout", nil, "")
		s.Equal(http.StatusSeeOther, rec.Code)
		s.Equal("https://checkout.stripe.com/c/pay/cs_test_1", rec.Header().Get("Location"))
	})

	s.Run("success: empty cart goes back to the cart", func() {
		s.mockCommands.EXPECT().Start(gomock.Any(), testVisitor).Return(nil, commands.ErrCartEmpty)

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodPost, "/checkout", nil, "")
		s.Equal(http.StatusSeeOther, rec.Code)
		s.Equal("/cart", rec.Header().Get("Location"))
	})

	s.Run("error: gateway failure goes back to the cart with a message", func() {
		s.mockCommands.EXPECT().Start(gomock.Any(), testVisitor).
			Return(nil, errs.Mark(errors.New("card_declined"), commands.ErrGatewayUnavailable))

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodPost, "/checkout", nil, "")
		s.Equal(http.StatusSeeOther, rec.Code)

		loc, err := url.Parse(rec.Header().Get("Location"))
		s.Require().NoError(err)
		s.Equal("/cart", loc.Path)
		s.Equal("1", loc.Query().Get("payment_error"))
		s.Equal("error", loc.Query().Get("status"))
		s.Contains(loc.Query().Get("message"), "Payment failed")
	})
}

func (s *CheckoutHandlerTestSuite) TestConfirm() {
	s.Run("success: returns the session summary", func() {
		s.mockCommands.EXPECT().Confirm(gomock.Any(), testVisitor, "cs_test_1").
			Return(&commands.CheckoutConfirmation{
				SessionID:     "cs_test_1",
				Status:        "complete",
				PaymentStatus: "paid",
				CustomerEmail: "parent@example.com",
				AmountTotal:   decimal.RequireFromString("20"),
				Currency:      "usd",
				Paid:          true,
			}, nil)

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodGet, "/checkout/sessions/cs_test_1", nil, "")

		var res resdto.CheckoutConfirmationResponse
		httptest.AssertSuccessResponse(s.T(), rec, http.StatusOK, &res)
		s.True(res.Paid)
		s.Equal("20.00", res.AmountTotal)
	})

	s.Run("error: maps usecase errors to proper statuses", func() {
		testCases := []struct {
			name           string
			commandsError  error
			expectedStatus int
			expectedMsg    string
		}{
			{
				name:           "placeholder id",
				commandsError:  commands.ErrSessionIDRequired,
				expectedStatus: http.StatusBadRequest,
				expectedMsg:    "Checkout session id is required",
			},
			{
				name:           "gateway unavailable",
				commandsError:  errs.Mark(errors.New("timeout"), commands.ErrGatewayUnavailable),
				expectedStatus: http.StatusBadGateway,
				expectedMsg:    "Payment provider unavailable",
			},
			{
				name:           "internal server error",
				commandsError:  errors.New("boom"),
				expectedStatus: http.StatusInternalServerError,
				expectedMsg:    "Internal server error",
			},
		}

		for _, tc := range testCases {
			s.Run(tc.name, func() {
				s.mockCommands.EXPECT().Confirm(gomock.Any(), testVisitor, "cs_x").Return(nil, tc.commandsError)

				rec := httptest.PerformRequest(s.T(), s.router, http.MethodGet, "/checkout/sessions/cs_x", nil, "")
				httptest.AssertErrorResponse(s.T(), rec, tc.expectedStatus, tc.expectedMsg)
			})
		}
	})
}
