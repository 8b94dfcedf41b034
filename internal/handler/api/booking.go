package api

import (
	"errors"
	"net/http"
	"strconv"

	"expertbook/internal/domain/booking"
	reqdto "expertbook/internal/handler/dto/request"
	resdto "expertbook/internal/handler/dto/response"
	"expertbook/internal/handler/middleware"
	"expertbook/internal/usecase/commands"
	"expertbook/internal/usecase/queries"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
)

type BookingHandler struct {
	bookingCommands commands.BookingCommands
	bookingQueries  queries.BookingQueries
	calendarQueries queries.CalendarQueries
}

func NewBookingHandler(
	bookingCommands commands.BookingCommands,
	bookingQueries queries.BookingQueries,
	calendarQueries queries.CalendarQueries,
) *BookingHandler {
	return &BookingHandler{
		bookingCommands: bookingCommands,
		bookingQueries:  bookingQueries,
		calendarQueries: calendarQueries,
	}
}

// @Summary Create booking
// @Description Reserve a slot with an expert; at most one active booking per slot
// @Tags bookings
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param request body reqdto.CreateBookingRequest true "Booking request"
// @Success 201 {object} resdto.BookingResponse
// @Failure 400 {object} map[string]string
// @Failure 404 {object} map[string]string
// @Failure 409 {object} map[string]string
// @Failure 422 {object} map[string]string
// @Router /bookings [post]
func (h *BookingHandler) CreateBooking(c *gin.Context) {
	userID, ok := middleware.GetUserID(c)
	if !ok {
		c.JSON(http.StatusInternalServerError, gin.H{
			"error": "Internal server error",
		})
		return
	}

	var req reqdto.CreateBookingRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{
			"error": "Invalid request format",
		})
		return
	}

	result, err := h.bookingCommands.CreateBooking(c.Request.Context(), req.ToCommand(), userID)
	if err != nil {
		switch {
		case errors.Is(err, commands.ErrSlotAlreadyBooked):
			c.JSON(http.StatusConflict, gin.H{
				"error": "Slot already booked",
			})
		case errors.Is(err, commands.ErrExpertNotFound):
			c.JSON(http.StatusNotFound, gin.H{
				"error": "Expert not found",
			})
		case errors.Is(err, commands.ErrEventTypeNotFound):
			c.JSON(http.StatusNotFound, gin.H{
				"error": "Event type not found",
			})
		case errors.Is(err, commands.ErrEventTypeNotOwned):
			c.JSON(http.StatusUnprocessableEntity, gin.H{
				"error": "Event type belongs to another expert",
			})
		case isBookingValidationError(err):
			c.JSON(http.StatusUnprocessableEntity, gin.H{
				"error": err.Error(),
			})
		default:
			c.JSON(http.StatusInternalServerError, gin.H{
				"error": "Internal server error",
			})
		}
		return
	}

	view, err := h.bookingQueries.GetByIDSystem(c.Request.Context(), result.BookingID)
	if err != nil {
		// Reserved but unreadable; return the essentials instead of failing.
		c.JSON(http.StatusCreated, gin.H{
			"id":           result.BookingID.String(),
			"meeting_link": result.MeetingLink,
		})
		return
	}
	c.JSON(http.StatusCreated, resdto.FromBookingView(view))
}

// @Summary List own bookings
// @Description List the authenticated client's bookings, newest first
// @Tags bookings
// @Produce json
// @Security BearerAuth
// @Param limit query int false "Page size (default 20, max 200)"
// @Param after query string false "Pagination cursor from a previous page"
// @Success 200 {object} resdto.BookingListResponse
// @Failure 400 {object} map[string]string
// @Router /bookings [get]
func (h *BookingHandler) ListBookings(c *gin.Context) {
	userID, ok := middleware.GetUserID(c)
	if !ok {
		c.JSON(http.StatusInternalServerError, gin.H{
			"error": "Internal server error",
		})
		return
	}

	limit := 0
	if raw := c.Query("limit"); raw != "" {
		parsed, err := strconv.Atoi(raw)
		if err != nil {
			c.JSON(http.StatusBadRequest, gin.H{
				"error": "Invalid limit parameter",
			})
			return
		}
		limit = parsed
	}

	var after *queries.Cursor
	if raw := c.Query("after"); raw != "" {
		after = &queries.Cursor{After: raw}
	}

	items, next, err := h.bookingQueries.ListByClient(c.Request.Context(), userID, after, limit)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{
			"error": "Invalid pagination cursor",
		})
		return
	}
	c.JSON(http.StatusOK, resdto.FromBookingList(items, next))
}

// @Summary Get booking
// @Description Get one of the authenticated client's bookings
// @Tags bookings
// @Produce json
// @Security BearerAuth
// @Param id path string true "Booking ID"
// @Success 200 {object} resdto.BookingResponse
// @Failure 403 {object} map[string]string
// @Failure 404 {object} map[string]string
// @Router /bookings/{id} [get]
func (h *BookingHandler) GetBooking(c *gin.Context) {
	userID, ok := middleware.GetUserID(c)
	if !ok {
		c.JSON(http.StatusInternalServerError, gin.H{
			"error": "Internal server error",
		})
		return
	}

	bookingID, err := uuid.Parse(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{
			"error": "Invalid booking ID format",
		})
		return
	}

	view, err := h.bookingQueries.GetByID(c.Request.Context(), userID, bookingID)
	if err != nil {
		h.writeQueryError(c, err)
		return
	}
	c.JSON(http.StatusOK, resdto.FromBookingView(view))
}

// @Summary Update booking status
// @Description Transition an owned booking through its lifecycle
// @Tags bookings
// @Accept json
// @Security BearerAuth
// @Param id path string true "Booking ID"
// @Param request body reqdto.UpdateBookingStatusRequest true "Status request"
// @Success 204 "No Content"
// @Failure 400 {object} map[string]string
// @Failure 403 {object} map[string]string
// @Failure 404 {object} map[string]string
// @Failure 422 {object} map[string]string
// @Router /bookings/{id}/status [patch]
func (h *BookingHandler) UpdateStatus(c *gin.Context) {
	userID, ok := middleware.GetUserID(c)
	if !ok {
		c.JSON(http.StatusInternalServerError, gin.H{
			"error": "Internal server error",
		})
		return
	}

	bookingID, err := uuid.Parse(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{
			"error": "Invalid booking ID format",
		})
		return
	}

	var req reqdto.UpdateBookingStatusRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{
			"error": "Invalid request format",
		})
		return
	}

	if err := h.bookingCommands.UpdateStatus(c.Request.Context(), bookingID, userID, req.Status); err != nil {
		switch {
		case errors.Is(err, commands.ErrBookingNotFound):
			c.JSON(http.StatusNotFound, gin.H{
				"error": "Booking not found",
			})
		case errors.Is(err, commands.ErrBookingNotOwned):
			c.JSON(http.StatusForbidden, gin.H{
				"error": "Booking belongs to another user",
			})
		case errors.Is(err, booking.ErrInvalidStatus):
			c.JSON(http.StatusBadRequest, gin.H{
				"error": "Invalid booking status",
			})
		case errors.Is(err, commands.ErrInvalidTransition):
			c.JSON(http.StatusUnprocessableEntity, gin.H{
				"error": "Invalid status transition",
			})
		default:
			c.JSON(http.StatusInternalServerError, gin.H{
				"error": "Internal server error",
			})
		}
		return
	}
	c.Status(http.StatusNoContent)
}

// @Summary Reschedule booking
// @Description Move an owned booking to a new slot; the old slot is freed
// @Tags bookings
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param id path string true "Booking ID"
// @Param request body reqdto.RescheduleBookingRequest true "Reschedule request"
// @Success 201 {object} map[string]string
// @Failure 400 {object} map[string]string
// @Failure 403 {object} map[string]string
// @Failure 404 {object} map[string]string
// @Failure 409 {object} map[string]string
// @Failure 422 {object} map[string]string
// @Router /bookings/{id}/reschedule [post]
func (h *BookingHandler) Reschedule(c *gin.Context) {
	userID, ok := middleware.GetUserID(c)
	if !ok {
		c.JSON(http.StatusInternalServerError, gin.H{
			"error": "Internal server error",
		})
		return
	}

	bookingID, err := uuid.Parse(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{
			"error": "Invalid booking ID format",
		})
		return
	}

	var req reqdto.RescheduleBookingRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{
			"error": "Invalid request format",
		})
		return
	}

	result, err := h.bookingCommands.Reschedule(c.Request.Context(), bookingID, userID, req.ToCommand())
	if err != nil {
		switch {
		case errors.Is(err, commands.ErrBookingNotFound):
			c.JSON(http.StatusNotFound, gin.H{
				"error": "Booking not found",
			})
		case errors.Is(err, commands.ErrBookingNotOwned):
			c.JSON(http.StatusForbidden, gin.H{
				"error": "Booking belongs to another user",
			})
		case errors.Is(err, commands.ErrSlotAlreadyBooked):
			c.JSON(http.StatusConflict, gin.H{
				"error": "Slot already booked",
			})
		case errors.Is(err, commands.ErrInvalidTransition):
			c.JSON(http.StatusUnprocessableEntity, gin.H{
				"error": "Booking can no longer be rescheduled",
			})
		case isBookingValidationError(err):
			c.JSON(http.StatusUnprocessableEntity, gin.H{
				"error": err.Error(),
			})
		default:
			c.JSON(http.StatusInternalServerError, gin.H{
				"error": "Internal server error",
			})
		}
		return
	}
	c.JSON(http.StatusCreated, gin.H{
		"new_booking_id": result.NewBookingID.String(),
	})
}

// @Summary Download booking calendar
// @Description iCalendar file for an owned booking
// @Tags bookings
// @Produce text/calendar
// @Security BearerAuth
// @Param id path string true "Booking ID"
// @Param tz query string false "Viewer IANA timezone anchoring the stored local times (default UTC)"
// @Success 200 {string} string "iCalendar payload"
// @Failure 403 {object} map[string]string
// @Failure 404 {object} map[string]string
// @Router /bookings/{id}/calendar [get]
func (h *BookingHandler) DownloadCalendar(c *gin.Context) {
	userID, ok := middleware.GetUserID(c)
	if !ok {
		c.JSON(http.StatusInternalServerError, gin.H{
			"error": "Internal server error",
		})
		return
	}

	bookingID, err := uuid.Parse(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{
			"error": "Invalid booking ID format",
		})
		return
	}

	payload, err := h.calendarQueries.BookingCalendar(c.Request.Context(), userID, bookingID, c.Query("tz"))
	if err != nil {
		switch {
		case errors.Is(err, queries.ErrInvalidViewerZone):
			c.JSON(http.StatusBadRequest, gin.H{
				"error": "Invalid viewer timezone",
			})
		default:
			h.writeQueryError(c, err)
		}
		return
	}

	c.Header("Content-Disposition", `attachment; filename="booking-`+bookingID.String()+`.ics"`)
	c.Data(http.StatusOK, "text/calendar; charset=utf-8", []byte(payload))
}

func (h *BookingHandler) writeQueryError(c *gin.Context, err error) {
	switch {
	case errors.Is(err, queries.ErrBookingNotFound):
		c.JSON(http.StatusNotFound, gin.H{
			"error": "Booking not found",
		})
	case errors.Is(err, queries.ErrBookingAccess):
		c.JSON(http.StatusForbidden, gin.H{
			"error": "Booking belongs to another user",
		})
	default:
		c.JSON(http.StatusInternalServerError, gin.H{
			"error": "Internal server error",
		})
	}
}

func isBookingValidationError(err error) bool {
	return errors.Is(err, booking.ErrInvalidDate) ||
		errors.Is(err, booking.ErrInvalidTimeSlot) ||
		errors.Is(err, booking.ErrEmptyGuestName) ||
		errors.Is(err, booking.ErrInvalidGuestEmail) ||
		errors.Is(err, booking.ErrSameSlot)
}
