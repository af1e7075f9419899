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

type BookingHandlerTestSuite struct {
	suite.Suite
	router       *gin.Engine
	adminRouter  *gin.Engine
	mockCtrl     *gomock.Controller
	mockCommands *commandsmock.MockBookingCommands
	mockQueries  *queriesmock.MockBookingQueries
	mockCapacity *queriesmock.MockCapacityQueries
	handler      *api.BookingHandler
}

func (s *BookingHandlerTestSuite) SetupTest() {
	gin.SetMode(gin.TestMode)
	s.router = gin.New()
	s.adminRouter = gin.New()

	s.mockCtrl = gomock.NewController(s.T())
	s.mockCommands = commandsmock.NewMockBookingCommands(s.mockCtrl)
	s.mockQueries = queriesmock.NewMockBookingQueries(s.mockCtrl)
	s.mockCapacity = queriesmock.NewMockCapacityQueries(s.mockCtrl)
	s.handler = api.NewBookingHandler(s.mockCommands, s.mockQueries, s.mockCapacity)

	// Mock authentication middleware for testing
	authMiddleware := func(role user.Role) gin.HandlerFunc {
		return func(c *gin.Context) {
			if c.GetHeader("Authorization") == "" {
				c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"error": "Access token required"})
				return
			}
			c.Set("user_id", uuid.New())
			c.Set("user_role", role)
			c.Next()
		}
	}

	// Setup routes
	s.router.POST("/bookings", authMiddleware(user.RoleMember), s.handler.CreateBooking)
	s.router.GET("/bookings", authMiddleware(user.RoleMember), s.handler.ListMyBookings)
	s.router.DELETE("/bookings/:id", authMiddleware(user.RoleMember), s.handler.CancelBooking)
	s.router.GET("/capacity/:date", authMiddleware(user.RoleMember), s.handler.GetDayCapacity)

	s.adminRouter.GET("/admin/bookings/pending", authMiddleware(user.RoleAdmin), s.handler.ListPendingBookings)
	s.adminRouter.POST("/admin/bookings/:id/approve", authMiddleware(user.RoleAdmin), s.handler.ApproveBooking)
	s.adminRouter.POST("/admin/bookings/:id/reject", authMiddleware(user.RoleAdmin), s.handler.RejectBooking)
}

func (s *BookingHandlerTestSuite) TearDownTest() {
	s.mockCtrl.Finish()
}

func TestBookingHandlerSuite(t *testing.T) {
	suite.Run(t, new(BookingHandlerTestSuite))
}

// ================================================================================
// TestCreateBooking
// ================================================================================

func (s *BookingHandlerTestSuite) TestCreateBooking() {
	url := "/bookings"

	reqBody := builder.NewBookingBuilder().BuildCreateRequestDTO()
	bookingID := uuid.New()

	s.Run("success: returns 201 Created with the booking id", func() {
		s.mockCommands.EXPECT().CreateBooking(gomock.Any(), gomock.Any(), gomock.Any()).
			Return(bookingID, nil).Times(1)

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodPost, url, reqBody, "bearer-token")

		var body map[string]string
		httptest.AssertSuccessResponse(s.T(), rec, http.StatusCreated, &body)
		s.Equal(bookingID.String(), body["id"])
	})

	s.Run("error: 400 Bad Request on validation errors", func() {
		testCases := []struct {
			name   string
			mutate func(m map[string]any)
		}{
			{name: "missing field: date (required)", mutate: testutil.Field("date", nil)},
			{name: "empty date", mutate: testutil.Field("date", "")},
			{name: "malformed date", mutate: testutil.Field("date", "02-09-2026")},
			{name: "date with time component", mutate: testutil.Field("date", "2026-09-02T10:00:00Z")},
		}

		for _, tc := range testCases {
			s.Run(tc.name, func() {
				requestMap := testutil.DtoMap(s.T(), reqBody, tc.mutate)
				rec := httptest.PerformRequest(s.T(), s.router, http.MethodPost, url, requestMap, "bearer-token")
				httptest.AssertErrorResponse(s.T(), rec, http.StatusBadRequest, "")
			})
		}
	})

	s.Run("error: 401 Unauthorized when unauthenticated", func() {
		rec := httptest.PerformRequest(s.T(), s.router, http.MethodPost, url, reqBody, "")
		httptest.AssertErrorResponse(s.T(), rec, http.StatusUnauthorized, "Access token required")
	})

	s.Run("error: maps admission conflicts to 409 with a reason", func() {
		testCases := []struct {
			name          string
			commandsError error
			reason        string
		}{
			{name: "blocked date", commandsError: commands.ErrDateBlocked, reason: "blocked"},
			{name: "closed weekday", commandsError: commands.ErrDayNotAllowed, reason: "day_not_allowed"},
			{name: "day full", commandsError: commands.ErrDayFull, reason: "full"},
			{name: "duplicate booking", commandsError: commands.ErrDuplicateBooking, reason: "duplicate"},
			{name: "weekly limit", commandsError: commands.ErrWeeklyLimitReached, reason: "weekly_limit"},
		}

		for _, tc := range testCases {
			s.Run(tc.name, func() {
				s.mockCommands.EXPECT().CreateBooking(gomock.Any(), gomock.Any(), gomock.Any()).
					Return(uuid.Nil, tc.commandsError).Times(1)

				rec := httptest.PerformRequest(s.T(), s.router, http.MethodPost, url, reqBody, "bearer-token")
				httptest.AssertErrorResponse(s.T(), rec, http.StatusConflict, "")
				httptest.AssertConflictReason(s.T(), rec, tc.reason)
			})
		}
	})

	s.Run("error: 500 Internal Server Error on unknown failures", func() {
		s.mockCommands.EXPECT().CreateBooking(gomock.Any(), gomock.Any(), gomock.Any()).
			Return(uuid.Nil, errors.New("database error")).Times(1)

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodPost, url, reqBody, "bearer-token")
		httptest.AssertErrorResponse(s.T(), rec, http.StatusInternalServerError, "Internal server error")
	})
}

// ================================================================================
// TestListMyBookings
// ================================================================================

func (s *BookingHandlerTestSuite) TestListMyBookings() {
	url := "/bookings"

	s.Run("success: returns the caller's bookings", func() {
		view := builder.NewBookingBuilder().BuildView()
		s.mockQueries.EXPECT().ListByUser(gomock.Any(), gomock.Any()).
			Return([]*queries.BookingView{view}, nil).Times(1)

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodGet, url, nil, "bearer-token")

		var response []*resdto.BookingResponse
		httptest.AssertSuccessResponse(s.T(), rec, http.StatusOK, &response)
		s.Len(response, 1)
		s.Equal(view.ID, response[0].ID)
		s.Equal(view.Date, response[0].Date)
	})

	s.Run("error: 401 Unauthorized when unauthenticated", func() {
		rec := httptest.PerformRequest(s.T(), s.router, http.MethodGet, url, nil, "")
		httptest.AssertErrorResponse(s.T(), rec, http.StatusUnauthorized, "Access token required")
	})

	s.Run("error: 500 Internal Server Error on query failure", func() {
		s.mockQueries.EXPECT().ListByUser(gomock.Any(), gomock.Any()).
			Return(nil, errors.New("database error")).Times(1)

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodGet, url, nil, "bearer-token")
		httptest.AssertErrorResponse(s.T(), rec, http.StatusInternalServerError, "Internal server error")
	})
}

// ================================================================================
// TestCancelBooking
// ================================================================================

func (s *BookingHandlerTestSuite) TestCancelBooking() {
	bookingID := uuid.New()
	url := "/bookings/" + bookingID.String()

	s.Run("success: returns 200 OK", func() {
		s.mockCommands.EXPECT().CancelBooking(gomock.Any(), gomock.Any(), bookingID).
			Return(nil).Times(1)

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodDelete, url, nil, "bearer-token")
		httptest.AssertSuccessResponse(s.T(), rec, http.StatusOK, nil)
	})

	s.Run("error: 400 Bad Request for invalid UUID", func() {
		rec := httptest.PerformRequest(s.T(), s.router, http.MethodDelete, "/bookings/not-a-uuid", nil, "bearer-token")
		httptest.AssertErrorResponse(s.T(), rec, http.StatusBadRequest, "Invalid booking ID")
	})

	s.Run("error: maps usecase errors to proper statuses", func() {
		testCases := []struct {
			name           string
			commandsError  error
			expectedStatus int
		}{
			{name: "booking not found", commandsError: commands.ErrBookingNotFound, expectedStatus: http.StatusNotFound},
			{name: "not the owner", commandsError: commands.ErrNotBookingOwner, expectedStatus: http.StatusForbidden},
			{name: "already cancelled", commandsError: commands.ErrBookingCancelled, expectedStatus: http.StatusConflict},
			{name: "internal server error", commandsError: errors.New("database error"), expectedStatus: http.StatusInternalServerError},
		}

		for _, tc := range testCases {
			s.Run(tc.name, func() {
				s.mockCommands.EXPECT().CancelBooking(gomock.Any(), gomock.Any(), bookingID).
					Return(tc.commandsError).Times(1)

				rec := httptest.PerformRequest(s.T(), s.router, http.MethodDelete, url, nil, "bearer-token")
				httptest.AssertErrorResponse(s.T(), rec, tc.expectedStatus, "")
			})
		}
	})
}

// ================================================================================
// TestGetDayCapacity
// ================================================================================

func (s *BookingHandlerTestSuite) TestGetDayCapacity() {
	url := "/capacity/2026-09-02"

	s.Run("success: returns occupancy and availability", func() {
		b := builder.NewBookingBuilder()
		view := b.BuildDayCapacityView(3, b.BuildView())

		s.mockCapacity.EXPECT().GetDayCapacity(gomock.Any(), gomock.Any()).
			Return(view, nil).Times(1)

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodGet, url, nil, "bearer-token")

		var response resdto.DayCapacityResponse
		httptest.AssertSuccessResponse(s.T(), rec, http.StatusOK, &response)
		s.Equal("2026-09-02", response.Date)
		s.Equal(3, response.Capacity)
		s.Equal(2, response.Available)
		s.Len(response.Bookings, 1)
	})

	s.Run("error: 400 Bad Request for malformed date", func() {
		rec := httptest.PerformRequest(s.T(), s.router, http.MethodGet, "/capacity/tomorrow", nil, "bearer-token")
		httptest.AssertErrorResponse(s.T(), rec, http.StatusBadRequest, "Invalid date format")
	})

	s.Run("error: 500 Internal Server Error on query failure", func() {
		s.mockCapacity.EXPECT().GetDayCapacity(gomock.Any(), gomock.Any()).
			Return(nil, errors.New("database error")).Times(1)

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodGet, url, nil, "bearer-token")
		httptest.AssertErrorResponse(s.T(), rec, http.StatusInternalServerError, "Internal server error")
	})
}

// ================================================================================
// TestPendingBookingDecisions
// ================================================================================

func (s *BookingHandlerTestSuite) TestPendingBookingDecisions() {
	bookingID := uuid.New()

	s.Run("success: lists bookings awaiting approval", func() {
		view := builder.NewBookingBuilder().WithRequireApproval().BuildView()
		s.mockQueries.EXPECT().ListPendingApproval(gomock.Any()).
			Return([]*queries.BookingView{view}, nil).Times(1)

		rec := httptest.PerformRequest(s.T(), s.adminRouter, http.MethodGet, "/admin/bookings/pending", nil, "bearer-token")

		var response []*resdto.BookingResponse
		httptest.AssertSuccessResponse(s.T(), rec, http.StatusOK, &response)
		s.Len(response, 1)
		s.True(response[0].NeedsApproval)
	})

	s.Run("success: approve returns 200 OK", func() {
		s.mockCommands.EXPECT().ApproveBooking(gomock.Any(), gomock.Any(), bookingID).
			Return(nil).Times(1)

		rec := httptest.PerformRequest(s.T(), s.adminRouter, http.MethodPost, "/admin/bookings/"+bookingID.String()+"/approve", nil, "bearer-token")
		httptest.AssertSuccessResponse(s.T(), rec, http.StatusOK, nil)
	})

	s.Run("success: reject returns 200 OK", func() {
		s.mockCommands.EXPECT().RejectBooking(gomock.Any(), gomock.Any(), bookingID).
			Return(nil).Times(1)

		rec := httptest.PerformRequest(s.T(), s.adminRouter, http.MethodPost, "/admin/bookings/"+bookingID.String()+"/reject", nil, "bearer-token")
		httptest.AssertSuccessResponse(s.T(), rec, http.StatusOK, nil)
	})

	s.Run("error: maps decision errors to proper statuses", func() {
		testCases := []struct {
			name           string
			commandsError  error
			expectedStatus int
		}{
			{name: "booking not found", commandsError: commands.ErrBookingNotFound, expectedStatus: http.StatusNotFound},
			{name: "not pending", commandsError: commands.ErrBookingNotPending, expectedStatus: http.StatusConflict},
			{name: "admin required", commandsError: commands.ErrAdminRequired, expectedStatus: http.StatusForbidden},
		}

		for _, tc := range testCases {
			s.Run(tc.name, func() {
				s.mockCommands.EXPECT().ApproveBooking(gomock.Any(), gomock.Any(), bookingID).
					Return(tc.commandsError).Times(1)

				rec := httptest.PerformRequest(s.T(), s.adminRouter, http.MethodPost, "/admin/bookings/"+bookingID.String()+"/approve", nil, "bearer-token")
				httptest.AssertErrorResponse(s.T(), rec, tc.expectedStatus, "")
			})
		}
	})
}
