package api

import (
	"errors"
	"net/http"

	reqdto "miyzapis/internal/handler/dto/request"
	resdto "miyzapis/internal/handler/dto/response"
	"miyzapis/internal/handler/httperr"
	"miyzapis/internal/handler/middleware"
	"miyzapis/internal/usecase/commands"
	"miyzapis/internal/usecase/queries"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
)

type BookingHandler struct {
	bookingCommands commands.BookingCommands
	bookingQueries  queries.BookingQueries
}

func NewBookingHandler(bookingCommands commands.BookingCommands, bookingQueries queries.BookingQueries) *BookingHandler {
	return &BookingHandler{
		bookingCommands: bookingCommands,
		bookingQueries:  bookingQueries,
	}
}

// @Summary Create booking
// @Description Admit a booking for a specialist's service, rejecting overlaps and full group sessions
// @Tags bookings
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param request body reqdto.CreateBookingRequest true "Booking request"
// @Success 201 {object} resdto.BookingResponse
// @Failure 400 {object} map[string]string
// @Failure 401 {object} map[string]string
// @Failure 404 {object} map[string]string
// @Failure 409 {object} map[string]any
// @Failure 422 {object} map[string]string
// @Failure 503 {object} map[string]string
// @Router /bookings [post]
func (h *BookingHandler) CreateBooking(c *gin.Context) {
	customerID, ok := middleware.GetCustomerID(c)
	if !ok {
		c.JSON(http.StatusInternalServerError, gin.H{
			"error": "Internal server error",
		})
		return
	}

	var req reqdto.CreateBookingRequest
	if bindErr := c.ShouldBindJSON(&req); bindErr != nil {
		c.JSON(http.StatusBadRequest, gin.H{
			"error": "Invalid request format",
		})
		return
	}

	params := commands.AdmitBookingParams{
		CustomerID:       customerID,
		SpecialistID:     req.SpecialistID,
		ServiceID:        req.ServiceID,
		ScheduledAt:      req.ScheduledAt,
		DurationMin:      req.DurationMin,
		ParticipantCount: req.ParticipantCount,
	}

	view, err := h.bookingCommands.AdmitBooking(c.Request.Context(), params)
	if err != nil {
		h.respondAdmitError(c, err)
		return
	}

	c.JSON(http.StatusCreated, resdto.FromBookingView(view))
}

func (h *BookingHandler) respondAdmitError(c *gin.Context, err error) {
	switch {
	case errors.Is(err, commands.ErrSpecialistNotFound):
		httperr.AbortWithError(c, http.StatusNotFound, err, "SPECIALIST_NOT_FOUND", "Specialist not found", nil)
	case errors.Is(err, commands.ErrServiceNotFound):
		httperr.AbortWithError(c, http.StatusNotFound, err, "SERVICE_NOT_FOUND", "Service not found", nil)
	case errors.Is(err, commands.ErrServiceMismatch):
		httperr.AbortWithError(c, http.StatusBadRequest, err, "SERVICE_MISMATCH", "Service does not belong to specialist", nil)
	case errors.Is(err, commands.ErrDomainValidation):
		httperr.AbortWithError(c, http.StatusUnprocessableEntity, err, "VALIDATION_FAILED", "Domain validation failed", nil)
	case errors.Is(err, commands.ErrTimeConflict):
		var detail gin.H
		var conflict *commands.TimeConflictError
		if errors.As(err, &conflict) {
			detail = gin.H{
				"conflict_start": conflict.ConflictStart,
				"conflict_end":   conflict.ConflictEnd,
			}
		}
		httperr.AbortWithError(c, http.StatusConflict, err, "TIME_CONFLICT", "Requested time is no longer available", detail)
	case errors.Is(err, commands.ErrCapacityExceeded):
		var detail gin.H
		var capacity *commands.CapacityError
		if errors.As(err, &capacity) {
			detail = gin.H{
				"spots_left":    capacity.SpotsLeft,
				"current_count": capacity.CurrentCount,
			}
		}
		httperr.AbortWithError(c, http.StatusConflict, err, "CAPACITY_EXCEEDED", "Group session is full", detail)
	case errors.Is(err, commands.ErrAdmissionTransient):
		httperr.AbortWithError(c, http.StatusServiceUnavailable, err, "ADMISSION_TRANSIENT", "Booking could not be processed, please retry", nil)
	default:
		httperr.AbortWithError(c, http.StatusInternalServerError, err, "INTERNAL", "Internal server error", nil)
	}
}

// @Summary Get booking
// @Description Get booking by ID
// @Tags bookings
// @Produce json
// @Security BearerAuth
// @Param id path string true "Booking ID"
// @Success 200 {object} resdto.BookingResponse
// @Failure 400 {object} map[string]string
// @Failure 401 {object} map[string]string
// @Failure 404 {object} map[string]string
// @Router /bookings/{id} [get]
func (h *BookingHandler) GetBooking(c *gin.Context) {
	idStr := c.Param("id")
	id, err := uuid.Parse(idStr)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{
			"error": "Invalid booking ID format",
		})
		return
	}

	view, err := h.bookingQueries.GetByID(c.Request.Context(), id)
	if err != nil {
		switch {
		case errors.Is(err, queries.ErrBookingNotFound):
			c.JSON(http.StatusNotFound, gin.H{
				"error": "Booking not found",
			})
		default:
			c.JSON(http.StatusInternalServerError, gin.H{
				"error": "Internal server error",
			})
		}
		return
	}

	c.JSON(http.StatusOK, resdto.FromBookingView(view))
}

// @Summary List specialist bookings
// @Description List a specialist's bookings for one date
// @Tags bookings
// @Produce json
// @Security BearerAuth
// @Param id path string true "Specialist ID"
// @Param date query string true "Date (YYYY-MM-DD)"
// @Success 200 {array} resdto.BookingListResponse
// @Failure 400 {object} map[string]string
// @Failure 401 {object} map[string]string
// @Router /specialists/{id}/bookings [get]
func (h *BookingHandler) ListSpecialistBookings(c *gin.Context) {
	specialistID, err := uuid.Parse(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{
			"error": "Invalid specialist ID format",
		})
		return
	}

	date := c.Query("date")
	if date == "" {
		c.JSON(http.StatusBadRequest, gin.H{
			"error": "date query parameter is required",
		})
		return
	}

	items, err := h.bookingQueries.ListBySpecialistDate(c.Request.Context(), specialistID, date, nil)
	if err != nil {
		if errors.Is(err, queries.ErrInvalidDate) {
			c.JSON(http.StatusBadRequest, gin.H{
				"error": "Invalid date format, expected YYYY-MM-DD",
			})
			return
		}
		c.JSON(http.StatusInternalServerError, gin.H{
			"error": "Internal server error",
		})
		return
	}

	out := make([]*resdto.BookingListResponse, 0, len(items))
	for _, item := range items {
		out = append(out, resdto.FromBookingListItem(item))
	}
	c.JSON(http.StatusOK, out)
}
