//go:build unit

package api_test

import (
	"net/http"
	"testing"

	"expertbook/internal/domain/booking"
	"expertbook/internal/domain/user"
	"expertbook/internal/handler/api"
	"expertbook/internal/usecase/commands"
	"expertbook/internal/usecase/queries"
	"expertbook/tests/common/builder"
	"expertbook/tests/common/httptest"
	"expertbook/tests/common/testutil"
	commandsmock "expertbook/tests/mock/commands"
	queriesmock "expertbook/tests/mock/queries"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/stretchr/testify/suite"
	"go.uber.org/mock/gomock"
)

type BookingHandlerTestSuite struct {
	suite.Suite
	router       *gin.Engine
	mockCtrl     *gomock.Controller
	mockCommands *commandsmock.MockBookingCommands
	mockQueries  *queriesmock.MockBookingQueries
	mockCalendar *queriesmock.MockCalendarQueries
	handler      *api.BookingHandler

	userID uuid.UUID
}

func (s *BookingHandlerTestSuite) SetupTest() {
	gin.SetMode(gin.TestMode)
	s.router = gin.New()
	s.userID = uuid.New()

	s.mockCtrl = gomock.NewController(s.T())
	s.mockCommands = commandsmock.NewMockBookingCommands(s.mockCtrl)
	s.mockQueries = queriesmock.NewMockBookingQueries(s.mockCtrl)
	s.mockCalendar = queriesmock.NewMockCalendarQueries(s.mockCtrl)
	s.handler = api.NewBookingHandler(s.mockCommands, s.mockQueries, s.mockCalendar)

	// Mock authentication middleware for testing
	authMiddleware := func(c *gin.Context) {
		if c.GetHeader("Authorization") == "" {
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"error": "Access token required"})
			return
		}
		c.Set("user_id", s.userID)
		c.Set("user_role", user.RoleClient)
		c.Next()
	}

	s.router.POST("/bookings", authMiddleware, s.handler.CreateBooking)
	s.router.GET("/bookings", authMiddleware, s.handler.ListBookings)
	s.router.GET("/bookings/:id", authMiddleware, s.handler.GetBooking)
	s.router.PATCH("/bookings/:id/status", authMiddleware, s.handler.UpdateStatus)
	s.router.POST("/bookings/:id/reschedule", authMiddleware, s.handler.Reschedule)
	s.router.GET("/bookings/:id/calendar", authMiddleware, s.handler.DownloadCalendar)
}

func (s *BookingHandlerTestSuite) TearDownTest() {
	s.mockCtrl.Finish()
}

func TestBookingHandlerSuite(t *testing.T) {
	suite.Run(t, new(BookingHandlerTestSuite))
}

type testCaseBooking struct {
	name       string
	mutate     func(m map[string]any)
	expectCode int
}

// ================================================================================
// TestCreateBooking
// ================================================================================

func (s *BookingHandlerTestSuite) TestCreateBooking() {
	url := "/bookings"

	b := builder.NewBookingBuilder()
	reqBody := b.BuildCreateRequestDTO()
	returnView := b.BuildViewQuery()
	expectedResult := &commands.CreateBookingResult{
		BookingID:   returnView.ID,
		MeetingLink: returnView.MeetingLink,
	}

	s.Run("success: returns 201 Created with the stored record", func() {
		s.mockCommands.EXPECT().CreateBooking(gomock.Any(), gomock.Any(), s.userID).
			Return(expectedResult, nil).Times(1)
		s.mockQueries.EXPECT().GetByIDSystem(gomock.Any(), returnView.ID).
			Return(returnView, nil).Times(1)

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodPost, url, reqBody, "bearer-token")

		var body map[string]any
		httptest.AssertSuccessResponse(s.T(), rec, http.StatusCreated, &body)
		s.Equal(returnView.ID.String(), body["id"])
		s.Equal(returnView.Date, body["date"])
		s.Equal(returnView.TimeSlot, body["time_slot"])
		s.Equal("Pending", body["status"])
	})

	s.Run("success: falls back to the essentials when the read-back fails", func() {
		s.mockCommands.EXPECT().CreateBooking(gomock.Any(), gomock.Any(), s.userID).
			Return(expectedResult, nil).Times(1)
		s.mockQueries.EXPECT().GetByIDSystem(gomock.Any(), returnView.ID).
			Return(nil, queries.ErrBookingNotFound).Times(1)

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodPost, url, reqBody, "bearer-token")

		var body map[string]any
		httptest.AssertSuccessResponse(s.T(), rec, http.StatusCreated, &body)
		s.Equal(returnView.ID.String(), body["id"])
		s.Equal(returnView.MeetingLink, body["meeting_link"])
	})

	s.Run("error: 400 Bad Request on validation errors", func() {
		cases := []testCaseBooking{
			{name: "missing field: expert_id", mutate: testutil.Field("expert_id", nil), expectCode: http.StatusBadRequest},
			{name: "missing field: date", mutate: testutil.Field("date", nil), expectCode: http.StatusBadRequest},
			{name: "missing field: time_slot", mutate: testutil.Field("time_slot", nil), expectCode: http.StatusBadRequest},
			{name: "missing field: guest_name", mutate: testutil.Field("guest_name", nil), expectCode: http.StatusBadRequest},
			{name: "missing field: guest_email", mutate: testutil.Field("guest_email", nil), expectCode: http.StatusBadRequest},
			{name: "malformed guest_email", mutate: testutil.Field("guest_email", "not-an-email"), expectCode: http.StatusBadRequest},
		}
		for _, tc := range cases {
			s.Run(tc.name, func() {
				body := testutil.DtoMap(s.T(), reqBody, tc.mutate)
				rec := httptest.PerformRequest(s.T(), s.router, http.MethodPost, url, body, "bearer-token")
				s.Equal(tc.expectCode, rec.Code)
			})
		}
	})

	s.Run("error: 409 Conflict when the slot is taken", func() {
		s.mockCommands.EXPECT().CreateBooking(gomock.Any(), gomock.Any(), s.userID).
			Return(nil, commands.ErrSlotAlreadyBooked).Times(1)

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodPost, url, reqBody, "bearer-token")
		httptest.AssertErrorResponse(s.T(), rec, http.StatusConflict, "Slot already booked")
	})

	s.Run("error: 404 Not Found for an unknown expert", func() {
		s.mockCommands.EXPECT().CreateBooking(gomock.Any(), gomock.Any(), s.userID).
			Return(nil, commands.ErrExpertNotFound).Times(1)

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodPost, url, reqBody, "bearer-token")
		httptest.AssertErrorResponse(s.T(), rec, http.StatusNotFound, "Expert not found")
	})

	s.Run("error: 422 for an event type of another expert", func() {
		s.mockCommands.EXPECT().CreateBooking(gomock.Any(), gomock.Any(), s.userID).
			Return(nil, commands.ErrEventTypeNotOwned).Times(1)

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodPost, url, reqBody, "bearer-token")
		httptest.AssertErrorResponse(s.T(), rec, http.StatusUnprocessableEntity, "Event type belongs to another expert")
	})

	s.Run("error: 401 without authentication", func() {
		rec := httptest.PerformRequest(s.T(), s.router, http.MethodPost, url, reqBody, "")
		s.Equal(http.StatusUnauthorized, rec.Code)
	})
}

// ================================================================================
// TestListBookings
// ================================================================================

func (s *BookingHandlerTestSuite) TestListBookings() {
	url := "/bookings"

	s.Run("success: returns the page and the next cursor", func() {
		items := []*queries.BookingListItem{
			builder.NewBookingBuilder().BuildListItem(),
			builder.NewBookingBuilder().AsConfirmed().BuildListItem(),
		}
		next := &queries.Cursor{After: "opaque-cursor"}
		s.mockQueries.EXPECT().ListByClient(gomock.Any(), s.userID, nil, 0).
			Return(items, next, nil).Times(1)

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodGet, url, nil, "bearer-token")

		var body map[string]any
		httptest.AssertSuccessResponse(s.T(), rec, http.StatusOK, &body)
		s.Len(body["bookings"], 2)
		s.Equal("opaque-cursor", body["next_cursor"])
	})

	s.Run("success: passes limit and cursor through", func() {
		s.mockQueries.EXPECT().ListByClient(gomock.Any(), s.userID, &queries.Cursor{After: "abc"}, 5).
			Return(nil, nil, nil).Times(1)

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodGet, url+"?limit=5&after=abc", nil, "bearer-token")
		s.Equal(http.StatusOK, rec.Code)
	})

	s.Run("error: 400 for a non-numeric limit", func() {
		rec := httptest.PerformRequest(s.T(), s.router, http.MethodGet, url+"?limit=abc", nil, "bearer-token")
		httptest.AssertErrorResponse(s.T(), rec, http.StatusBadRequest, "Invalid limit parameter")
	})

	s.Run("error: 400 for a corrupt cursor", func() {
		s.mockQueries.EXPECT().ListByClient(gomock.Any(), s.userID, gomock.Any(), 0).
			Return(nil, nil, queries.ErrBookingNotFound).Times(1)

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodGet, url+"?after=garbage", nil, "bearer-token")
		httptest.AssertErrorResponse(s.T(), rec, http.StatusBadRequest, "Invalid pagination cursor")
	})
}

// ================================================================================
// TestGetBooking
// ================================================================================

func (s *BookingHandlerTestSuite) TestGetBooking() {
	view := builder.NewBookingBuilder().BuildViewQuery()
	url := "/bookings/" + view.ID.String()

	s.Run("success: returns 200 OK", func() {
		s.mockQueries.EXPECT().GetByID(gomock.Any(), s.userID, view.ID).
			Return(view, nil).Times(1)

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodGet, url, nil, "bearer-token")

		var body map[string]any
		httptest.AssertSuccessResponse(s.T(), rec, http.StatusOK, &body)
		s.Equal(view.ID.String(), body["id"])
		s.Equal(view.ExpertName, body["expert_name"])
	})

	s.Run("error: 403 for someone else's booking", func() {
		s.mockQueries.EXPECT().GetByID(gomock.Any(), s.userID, view.ID).
			Return(nil, queries.ErrBookingAccess).Times(1)

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodGet, url, nil, "bearer-token")
		httptest.AssertErrorResponse(s.T(), rec, http.StatusForbidden, "Booking belongs to another user")
	})

	s.Run("error: 404 for an unknown booking", func() {
		s.mockQueries.EXPECT().GetByID(gomock.Any(), s.userID, view.ID).
			Return(nil, queries.ErrBookingNotFound).Times(1)

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodGet, url, nil, "bearer-token")
		httptest.AssertErrorResponse(s.T(), rec, http.StatusNotFound, "Booking not found")
	})

	s.Run("error: 400 for a malformed id", func() {
		rec := httptest.PerformRequest(s.T(), s.router, http.MethodGet, "/bookings/not-a-uuid", nil, "bearer-token")
		httptest.AssertErrorResponse(s.T(), rec, http.StatusBadRequest, "Invalid booking ID format")
	})
}

// ================================================================================
// TestUpdateStatus
// ================================================================================

func (s *BookingHandlerTestSuite) TestUpdateStatus() {
	bookingID := uuid.New()
	url := "/bookings/" + bookingID.String() + "/status"
	reqBody := map[string]string{"status": "Confirmed"}

	s.Run("success: returns 204 No Content", func() {
		s.mockCommands.EXPECT().UpdateStatus(gomock.Any(), bookingID, s.userID, "Confirmed").
			Return(nil).Times(1)

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodPatch, url, reqBody, "bearer-token")
		s.Equal(http.StatusNoContent, rec.Code)
	})

	s.Run("error: 422 for a forbidden transition", func() {
		s.mockCommands.EXPECT().UpdateStatus(gomock.Any(), bookingID, s.userID, "Confirmed").
			Return(commands.ErrInvalidTransition).Times(1)

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodPatch, url, reqBody, "bearer-token")
		httptest.AssertErrorResponse(s.T(), rec, http.StatusUnprocessableEntity, "Invalid status transition")
	})

	s.Run("error: 400 for an unknown status value", func() {
		s.mockCommands.EXPECT().UpdateStatus(gomock.Any(), bookingID, s.userID, "Confirmed").
			Return(booking.ErrInvalidStatus).Times(1)

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodPatch, url, reqBody, "bearer-token")
		httptest.AssertErrorResponse(s.T(), rec, http.StatusBadRequest, "Invalid booking status")
	})

	s.Run("error: 403 for someone else's booking", func() {
		s.mockCommands.EXPECT().UpdateStatus(gomock.Any(), bookingID, s.userID, "Confirmed").
			Return(commands.ErrBookingNotOwned).Times(1)

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodPatch, url, reqBody, "bearer-token")
		httptest.AssertErrorResponse(s.T(), rec, http.StatusForbidden, "Booking belongs to another user")
	})

	s.Run("error: 400 for a missing status field", func() {
		rec := httptest.PerformRequest(s.T(), s.router, http.MethodPatch, url, map[string]string{}, "bearer-token")
		httptest.AssertErrorResponse(s.T(), rec, http.StatusBadRequest, "Invalid request format")
	})
}

// ================================================================================
// TestReschedule
// ================================================================================

func (s *BookingHandlerTestSuite) TestReschedule() {
	bookingID := uuid.New()
	url := "/bookings/" + bookingID.String() + "/reschedule"
	reqBody := builder.NewBookingBuilder().BuildRescheduleRequestDTO("2026-09-08", "11:00")

	s.Run("success: returns 201 with the replacement id", func() {
		newID := uuid.New()
		s.mockCommands.EXPECT().Reschedule(gomock.Any(), bookingID, s.userID, gomock.Any()).
			Return(&commands.RescheduleResult{NewBookingID: newID}, nil).Times(1)

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodPost, url, reqBody, "bearer-token")

		var body map[string]string
		httptest.AssertSuccessResponse(s.T(), rec, http.StatusCreated, &body)
		s.Equal(newID.String(), body["new_booking_id"])
	})

	s.Run("error: 409 when the target slot is taken", func() {
		s.mockCommands.EXPECT().Reschedule(gomock.Any(), bookingID, s.userID, gomock.Any()).
			Return(nil, commands.ErrSlotAlreadyBooked).Times(1)

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodPost, url, reqBody, "bearer-token")
		httptest.AssertErrorResponse(s.T(), rec, http.StatusConflict, "Slot already booked")
	})

	s.Run("error: 422 when the booking is no longer movable", func() {
		s.mockCommands.EXPECT().Reschedule(gomock.Any(), bookingID, s.userID, gomock.Any()).
			Return(nil, commands.ErrInvalidTransition).Times(1)

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodPost, url, reqBody, "bearer-token")
		httptest.AssertErrorResponse(s.T(), rec, http.StatusUnprocessableEntity, "Booking can no longer be rescheduled")
	})

	s.Run("error: 400 for a missing date", func() {
		body := testutil.DtoMap(s.T(), reqBody, testutil.Field("date", nil))
		rec := httptest.PerformRequest(s.T(), s.router, http.MethodPost, url, body, "bearer-token")
		s.Equal(http.StatusBadRequest, rec.Code)
	})
}

// ================================================================================
// TestDownloadCalendar
// ================================================================================

func (s *BookingHandlerTestSuite) TestDownloadCalendar() {
	bookingID := uuid.New()
	url := "/bookings/" + bookingID.String() + "/calendar"

	s.Run("success: returns the iCalendar payload", func() {
		s.mockCalendar.EXPECT().BookingCalendar(gomock.Any(), s.userID, bookingID, "Asia/Kolkata").
			Return("BEGIN:VCALENDAR\r\nEND:VCALENDAR\r\n", nil).Times(1)

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodGet, url+"?tz=Asia/Kolkata", nil, "bearer-token")

		s.Equal(http.StatusOK, rec.Code)
		s.Contains(rec.Header().Get("Content-Type"), "text/calendar")
		s.Contains(rec.Header().Get("Content-Disposition"), bookingID.String())
		s.Contains(rec.Body.String(), "BEGIN:VCALENDAR")
	})

	s.Run("error: 400 for an invalid timezone", func() {
		s.mockCalendar.EXPECT().BookingCalendar(gomock.Any(), s.userID, bookingID, "bad/zone").
			Return("", queries.ErrInvalidViewerZone).Times(1)

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodGet, url+"?tz=bad/zone", nil, "bearer-token")
		httptest.AssertErrorResponse(s.T(), rec, http.StatusBadRequest, "Invalid viewer timezone")
	})

	s.Run("error: 403 for someone else's booking", func() {
		s.mockCalendar.EXPECT().BookingCalendar(gomock.Any(), s.userID, bookingID, "").
			Return("", queries.ErrBookingAccess).Times(1)

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodGet, url, nil, "bearer-token")
		httptest.AssertErrorResponse(s.T(), rec, http.StatusForbidden, "Booking belongs to another user")
	})
}
