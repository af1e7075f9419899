package api

import (
	"context"
	"errors"
	"net/http"

	"flexin/internal/domain/booking"
	reqdto "flexin/internal/handler/dto/request"
	resdto "flexin/internal/handler/dto/response"
	"flexin/internal/handler/middleware"
	"flexin/internal/usecase/commands"
	"flexin/internal/usecase/queries"
	"flexin/internal/usecase/shared"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
)

type BookingHandler struct {
	bookingCommands commands.BookingCommands
	bookingQueries  queries.BookingQueries
	capacityQueries queries.CapacityQueries
}

func NewBookingHandler(bookingCommands commands.BookingCommands, bookingQueries queries.BookingQueries, capacityQueries queries.CapacityQueries) *BookingHandler {
	return &BookingHandler{
		bookingCommands: bookingCommands,
		bookingQueries:  bookingQueries,
		capacityQueries: capacityQueries,
	}
}

// @Summary Create booking
// @Description Book a day, subject to capacity and limit rules
// @Tags bookings
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param request body reqdto.CreateBookingRequest true "Booking request"
// @Success 201 {object} map[string]string
// @Failure 400 {object} map[string]string
// @Failure 401 {object} map[string]string
// @Failure 409 {object} map[string]string
// @Router /bookings [post]
func (h *BookingHandler) CreateBooking(c *gin.Context) {
	actor, ok := currentActor(c)
	if !ok {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Internal server error"})
		return
	}

	var req reqdto.CreateBookingRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request format"})
		return
	}

	day, err := req.ToDay()
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid date format, expected YYYY-MM-DD"})
		return
	}

	bookingID, err := h.bookingCommands.CreateBooking(c.Request.Context(), actor, day)
	if err != nil {
		switch {
		case errors.Is(err, commands.ErrDateBlocked):
			c.JSON(http.StatusConflict, gin.H{"error": "This date is blocked for bookings", "reason": "blocked"})
		case errors.Is(err, commands.ErrDayNotAllowed):
			c.JSON(http.StatusConflict, gin.H{"error": "This weekday is not open for bookings", "reason": "day_not_allowed"})
		case errors.Is(err, commands.ErrDayFull):
			c.JSON(http.StatusConflict, gin.H{"error": "This day is fully booked", "reason": "full"})
		case errors.Is(err, commands.ErrDuplicateBooking):
			c.JSON(http.StatusConflict, gin.H{"error": "You already have a booking on this day", "reason": "duplicate"})
		case errors.Is(err, commands.ErrWeeklyLimitReached):
			c.JSON(http.StatusConflict, gin.H{"error": "Weekly booking limit reached", "reason": "weekly_limit"})
		default:
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Internal server error"})
		}
		return
	}

	c.JSON(http.StatusCreated, gin.H{"id": bookingID.String()})
}

// @Summary List own bookings
// @Tags bookings
// @Produce json
// @Security BearerAuth
// @Success 200 {array} resdto.BookingResponse
// @Failure 401 {object} map[string]string
// @Router /bookings [get]
func (h *BookingHandler) ListMyBookings(c *gin.Context) {
	userID, ok := middleware.GetUserID(c)
	if !ok {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Internal server error"})
		return
	}

	views, err := h.bookingQueries.ListByUser(c.Request.Context(), userID)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Internal server error"})
		return
	}

	c.JSON(http.StatusOK, resdto.FromBookingViews(views))
}

// @Summary Cancel booking
// @Tags bookings
// @Produce json
// @Security BearerAuth
// @Param id path string true "Booking ID"
// @Success 200 {object} map[string]string
// @Failure 400 {object} map[string]string
// @Failure 403 {object} map[string]string
// @Failure 404 {object} map[string]string
// @Failure 409 {object} map[string]string
// @Router /bookings/{id} [delete]
func (h *BookingHandler) CancelBooking(c *gin.Context) {
	actor, ok := currentActor(c)
	if !ok {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Internal server error"})
		return
	}

	bookingID, err := uuid.Parse(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid booking ID format"})
		return
	}

	if err := h.bookingCommands.CancelBooking(c.Request.Context(), actor, bookingID); err != nil {
		switch {
		case errors.Is(err, commands.ErrBookingNotFound):
			c.JSON(http.StatusNotFound, gin.H{"error": "Booking not found"})
		case errors.Is(err, commands.ErrNotBookingOwner):
			c.JSON(http.StatusForbidden, gin.H{"error": "Booking belongs to another user"})
		case errors.Is(err, commands.ErrBookingCancelled):
			c.JSON(http.StatusConflict, gin.H{"error": "Booking is already cancelled"})
		default:
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Internal server error"})
		}
		return
	}

	c.JSON(http.StatusOK, gin.H{"message": "Booking cancelled"})
}

// @Summary Day capacity
// @Description Occupancy and availability for a day
// @Tags capacity
// @Produce json
// @Security BearerAuth
// @Param date path string true "Date (YYYY-MM-DD)"
// @Success 200 {object} resdto.DayCapacityResponse
// @Failure 400 {object} map[string]string
// @Router /capacity/{date} [get]
func (h *BookingHandler) GetDayCapacity(c *gin.Context) {
	day, err := booking.ParseDay(c.Param("date"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid date format, expected YYYY-MM-DD"})
		return
	}

	view, err := h.capacityQueries.GetDayCapacity(c.Request.Context(), day)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Internal server error"})
		return
	}

	c.JSON(http.StatusOK, resdto.FromDayCapacityView(view))
}

// @Summary List pending bookings
// @Description Bookings awaiting admin approval
// @Tags admin
// @Produce json
// @Security BearerAuth
// @Success 200 {array} resdto.BookingResponse
// @Failure 403 {object} map[string]string
// @Router /admin/bookings/pending [get]
func (h *BookingHandler) ListPendingBookings(c *gin.Context) {
	views, err := h.bookingQueries.ListPendingApproval(c.Request.Context())
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Internal server error"})
		return
	}

	c.JSON(http.StatusOK, resdto.FromBookingViews(views))
}

// @Summary Approve booking
// @Tags admin
// @Produce json
// @Security BearerAuth
// @Param id path string true "Booking ID"
// @Success 200 {object} map[string]string
// @Failure 404 {object} map[string]string
// @Failure 409 {object} map[string]string
// @Router /admin/bookings/{id}/approve [post]
func (h *BookingHandler) ApproveBooking(c *gin.Context) {
	h.decidePendingBooking(c, h.bookingCommands.ApproveBooking, "Booking approved")
}

// @Summary Reject booking
// @Description Rejecting removes the pending booking and frees the slot
// @Tags admin
// @Produce json
// @Security BearerAuth
// @Param id path string true "Booking ID"
// @Success 200 {object} map[string]string
// @Failure 404 {object} map[string]string
// @Failure 409 {object} map[string]string
// @Router /admin/bookings/{id}/reject [post]
func (h *BookingHandler) RejectBooking(c *gin.Context) {
	h.decidePendingBooking(c, h.bookingCommands.RejectBooking, "Booking rejected")
}

func (h *BookingHandler) decidePendingBooking(c *gin.Context, decide func(ctx context.Context, actor shared.Actor, id uuid.UUID) error, okMessage string) {
	actor, ok := currentActor(c)
	if !ok {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Internal server error"})
		return
	}

	bookingID, err := uuid.Parse(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid booking ID format"})
		return
	}

	if err := decide(c.Request.Context(), actor, bookingID); err != nil {
		switch {
		case errors.Is(err, commands.ErrBookingNotFound):
			c.JSON(http.StatusNotFound, gin.H{"error": "Booking not found"})
		case errors.Is(err, commands.ErrBookingNotPending):
			c.JSON(http.StatusConflict, gin.H{"error": "Booking is not pending approval"})
		case errors.Is(err, commands.ErrAdminRequired):
			c.JSON(http.StatusForbidden, gin.H{"error": "Insufficient permissions"})
		default:
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Internal server error"})
		}
		return
	}

	c.JSON(http.StatusOK, gin.H{"message": okMessage})
}

func currentActor(c *gin.Context) (shared.Actor, bool) {
	userID, ok := middleware.GetUserID(c)
	if !ok {
		return shared.Actor{}, false
	}
	role, ok := middleware.GetUserRole(c)
	if !ok {
		return shared.Actor{}, false
	}
	return shared.Actor{ID: userID, Role: role}, true
}
