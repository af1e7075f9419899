//go:build unit

package api_test

import (
	"errors"
	"net/http"
	"testing"

	"flexin/internal/domain/user"
	"flexin/internal/handler/api"
	resdto "flexin/internal/handler/dto/response"
	"flexin/internal/usecase/commands"
	"flexin/internal/usecase/queries"
	"flexin/tests/common/builder"
	"flexin/tests/common/httptest"
	"flexin/tests/common/testutil"
	commandsmock "flexin/tests/mock/commands"
	queriesmock "flexin/tests/mock/queries"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/stretchr/testify/suite"
	"go.uber.org/mock/gomock"
)

type SwapHandlerTestSuite struct {
	suite.Suite
	router       *gin.Engine
	mockCtrl     *gomock.Controller
	mockCommands *commandsmock.MockSwapCommands
	mockQueries  *queriesmock.MockSwapQueries
	handler      *api.SwapHandler
}

func (s *SwapHandlerTestSuite) SetupTest() {
	gin.SetMode(gin.TestMode)
	s.router = gin.New()

	s.mockCtrl = gomock.NewController(s.T())
	s.mockCommands = commandsmock.NewMockSwapCommands(s.mockCtrl)
	s.mockQueries = queriesmock.NewMockSwapQueries(s.mockCtrl)
	s.handler = api.NewSwapHandler(s.mockCommands, s.mockQueries)

	// Mock authentication middleware for testing
	authMiddleware := func(c *gin.Context) {
		if c.GetHeader("Authorization") == "" {
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"error": "Access token required"})
			return
		}
		c.Set("user_id", uuid.New())
		c.Set("user_role", user.RoleMember)
		c.Next()
	}

	// Setup routes
	s.router.POST("/swap-requests", authMiddleware, s.handler.CreateSwapRequest)
	s.router.GET("/swap-requests", authMiddleware, s.handler.ListMySwapRequests)
	s.router.GET("/swap-requests/incoming", authMiddleware, s.handler.ListIncomingSwapRequests)
	s.router.DELETE("/swap-requests/:id", authMiddleware, s.handler.WithdrawSwapRequest)
	s.router.POST("/swap-requests/:id/approve", authMiddleware, s.handler.ApproveSwapRequest)
	s.router.POST("/swap-requests/:id/reject", authMiddleware, s.handler.RejectSwapRequest)
}

func (s *SwapHandlerTestSuite) TearDownTest() {
	s.mockCtrl.Finish()
}

func TestSwapHandlerSuite(t *testing.T) {
	suite.Run(t, new(SwapHandlerTestSuite))
}

// ================================================================================
// TestCreateSwapRequest
// ================================================================================

func (s *SwapHandlerTestSuite) TestCreateSwapRequest() {
	url := "/swap-requests"

	reqBody := builder.NewSwapRequestBuilder().BuildCreateRequestDTO()
	requestID := uuid.New()

	s.Run("success: returns 201 Created with the request id", func() {
		s.mockCommands.EXPECT().CreateSwapRequest(gomock.Any(), gomock.Any(), gomock.Any(), gomock.Any(), gomock.Any()).
			Return(requestID, nil).Times(1)

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodPost, url, reqBody, "bearer-token")

		var body map[string]string
		httptest.AssertSuccessResponse(s.T(), rec, http.StatusCreated, &body)
		s.Equal(requestID.String(), body["id"])
	})

	s.Run("error: 400 Bad Request on validation errors", func() {
		testCases := []struct {
			name   string
			mutate func(m map[string]any)
		}{
			{name: "missing field: target_user_id (required)", mutate: testutil.Field("target_user_id", nil)},
			{name: "missing field: date (required)", mutate: testutil.Field("date", nil)},
			{name: "malformed target date", mutate: testutil.Field("date", "next friday")},
			{name: "malformed target user id", mutate: testutil.Field("target_user_id", "not-a-uuid")},
		}

		for _, tc := range testCases {
			s.Run(tc.name, func() {
				requestMap := testutil.DtoMap(s.T(), reqBody, tc.mutate)
				rec := httptest.PerformRequest(s.T(), s.router, http.MethodPost, url, requestMap, "bearer-token")
				httptest.AssertErrorResponse(s.T(), rec, http.StatusBadRequest, "")
			})
		}
	})

	s.Run("error: 400 Bad Request when targeting yourself", func() {
		s.mockCommands.EXPECT().CreateSwapRequest(gomock.Any(), gomock.Any(), gomock.Any(), gomock.Any(), gomock.Any()).
			Return(uuid.Nil, commands.ErrSwapSelfTarget).Times(1)

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodPost, url, reqBody, "bearer-token")
		httptest.AssertErrorResponse(s.T(), rec, http.StatusBadRequest, "Cannot request a swap with yourself")
	})

	s.Run("error: 409 Conflict when the target has no booking", func() {
		s.mockCommands.EXPECT().CreateSwapRequest(gomock.Any(), gomock.Any(), gomock.Any(), gomock.Any(), gomock.Any()).
			Return(uuid.Nil, commands.ErrSwapTargetNotBooked).Times(1)

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodPost, url, reqBody, "bearer-token")
		httptest.AssertErrorResponse(s.T(), rec, http.StatusConflict, "no active booking")
	})

	s.Run("error: 409 Conflict when the weekly limit is reached", func() {
		s.mockCommands.EXPECT().CreateSwapRequest(gomock.Any(), gomock.Any(), gomock.Any(), gomock.Any(), gomock.Any()).
			Return(uuid.Nil, commands.ErrWeeklyLimitReached).Times(1)

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodPost, url, reqBody, "bearer-token")
		httptest.AssertErrorResponse(s.T(), rec, http.StatusConflict, "Weekly booking limit")
	})

	s.Run("error: 409 Conflict when the requester already booked the day", func() {
		s.mockCommands.EXPECT().CreateSwapRequest(gomock.Any(), gomock.Any(), gomock.Any(), gomock.Any(), gomock.Any()).
			Return(uuid.Nil, commands.ErrDuplicateBooking).Times(1)

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodPost, url, reqBody, "bearer-token")
		httptest.AssertErrorResponse(s.T(), rec, http.StatusConflict, "already have a booking")
	})

	s.Run("error: 401 Unauthorized when unauthenticated", func() {
		rec := httptest.PerformRequest(s.T(), s.router, http.MethodPost, url, reqBody, "")
		httptest.AssertErrorResponse(s.T(), rec, http.StatusUnauthorized, "Access token required")
	})
}

// ================================================================================
// TestListSwapRequests
// ================================================================================

func (s *SwapHandlerTestSuite) TestListSwapRequests() {
	s.Run("success: lists requests the caller sent or received", func() {
		view := builder.NewSwapRequestBuilder().BuildView()
		s.mockQueries.EXPECT().ListForUser(gomock.Any(), gomock.Any()).
			Return([]*queries.SwapRequestView{view}, nil).Times(1)

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodGet, "/swap-requests", nil, "bearer-token")

		var response []*resdto.SwapRequestResponse
		httptest.AssertSuccessResponse(s.T(), rec, http.StatusOK, &response)
		s.Len(response, 1)
		s.Equal(view.ID, response[0].ID)
		s.Equal(view.TargetDate, response[0].TargetDate)
	})

	s.Run("success: lists pending incoming requests", func() {
		view := builder.NewSwapRequestBuilder().BuildView()
		s.mockQueries.EXPECT().ListPendingForTarget(gomock.Any(), gomock.Any()).
			Return([]*queries.SwapRequestView{view}, nil).Times(1)

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodGet, "/swap-requests/incoming", nil, "bearer-token")

		var response []*resdto.SwapRequestResponse
		httptest.AssertSuccessResponse(s.T(), rec, http.StatusOK, &response)
		s.Len(response, 1)
		s.Equal("pending", response[0].Status)
	})

	s.Run("error: 500 Internal Server Error on query failure", func() {
		s.mockQueries.EXPECT().ListForUser(gomock.Any(), gomock.Any()).
			Return(nil, errors.New("database error")).Times(1)

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodGet, "/swap-requests", nil, "bearer-token")
		httptest.AssertErrorResponse(s.T(), rec, http.StatusInternalServerError, "Internal server error")
	})
}

// ================================================================================
// TestSwapRequestDecisions
// ================================================================================

func (s *SwapHandlerTestSuite) TestSwapRequestDecisions() {
	requestID := uuid.New()

	s.Run("success: approve returns 200 OK", func() {
		s.mockCommands.EXPECT().ApproveSwapRequest(gomock.Any(), gomock.Any(), requestID).
			Return(nil).Times(1)

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodPost, "/swap-requests/"+requestID.String()+"/approve", nil, "bearer-token")
		httptest.AssertSuccessResponse(s.T(), rec, http.StatusOK, nil)
	})

	s.Run("success: reject returns 200 OK", func() {
		s.mockCommands.EXPECT().RejectSwapRequest(gomock.Any(), gomock.Any(), requestID).
			Return(nil).Times(1)

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodPost, "/swap-requests/"+requestID.String()+"/reject", nil, "bearer-token")
		httptest.AssertSuccessResponse(s.T(), rec, http.StatusOK, nil)
	})

	s.Run("success: withdraw returns 200 OK", func() {
		s.mockCommands.EXPECT().WithdrawSwapRequest(gomock.Any(), gomock.Any(), requestID).
			Return(nil).Times(1)

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodDelete, "/swap-requests/"+requestID.String(), nil, "bearer-token")
		httptest.AssertSuccessResponse(s.T(), rec, http.StatusOK, nil)
	})

	s.Run("error: 400 Bad Request for invalid UUID", func() {
		rec := httptest.PerformRequest(s.T(), s.router, http.MethodPost, "/swap-requests/not-a-uuid/approve", nil, "bearer-token")
		httptest.AssertErrorResponse(s.T(), rec, http.StatusBadRequest, "Invalid swap request ID")
	})

	s.Run("error: maps usecase errors to proper statuses", func() {
		testCases := []struct {
			name           string
			commandsError  error
			expectedStatus int
			expectedMsg    string
		}{
			{name: "request not found", commandsError: commands.ErrSwapNotFound, expectedStatus: http.StatusNotFound, expectedMsg: "Swap request not found"},
			{name: "not the requester", commandsError: commands.ErrNotSwapRequester, expectedStatus: http.StatusForbidden, expectedMsg: "belongs to another user"},
			{name: "not the target", commandsError: commands.ErrNotSwapTarget, expectedStatus: http.StatusForbidden, expectedMsg: "belongs to another user"},
			{name: "already resolved", commandsError: commands.ErrSwapAlreadyResolved, expectedStatus: http.StatusConflict, expectedMsg: "already resolved"},
			{name: "booked day is gone", commandsError: commands.ErrSwapTargetNotBooked, expectedStatus: http.StatusConflict, expectedMsg: "no longer exists"},
			{name: "requester booked the day since", commandsError: commands.ErrDuplicateBooking, expectedStatus: http.StatusConflict, expectedMsg: "already have a booking"},
			{name: "internal server error", commandsError: errors.New("database error"), expectedStatus: http.StatusInternalServerError, expectedMsg: "Internal server error"},
		}

		for _, tc := range testCases {
			s.Run(tc.name, func() {
				s.mockCommands.EXPECT().ApproveSwapRequest(gomock.Any(), gomock.Any(), requestID).
					Return(tc.commandsError).Times(1)

				rec := httptest.PerformRequest(s.T(), s.router, http.MethodPost, "/swap-requests/"+requestID.String()+"/approve", nil, "bearer-token")
				httptest.AssertErrorResponse(s.T(), rec, tc.expectedStatus, tc.expectedMsg)
			})
		}
	})
}
