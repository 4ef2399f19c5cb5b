package api

import (
	"errors"
	"net/http"
	"time"

	resdto "miyzapis/internal/handler/dto/response"
	"miyzapis/internal/usecase/queries"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
)

type AvailabilityHandler struct {
	availabilityQueries queries.AvailabilityQueries
}

func NewAvailabilityHandler(availabilityQueries queries.AvailabilityQueries) *AvailabilityHandler {
	return &AvailabilityHandler{
		availabilityQueries: availabilityQueries,
	}
}

// @Summary Get specialist availability
// @Description Resolve a specialist's bookable intervals and slot grid for one date
// @Tags availability
// @Produce json
// @Param id path string true "Specialist ID"
// @Param date query string true "Date (YYYY-MM-DD, specialist's timezone)"
// @Success 200 {object} resdto.DayAvailabilityResponse
// @Failure 400 {object} map[string]string
// @Failure 404 {object} map[string]string
// @Router /specialists/{id}/availability [get]
func (h *AvailabilityHandler) GetDayAvailability(c *gin.Context) {
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
			"error": "date query parameter required",
		})
		return
	}

	view, err := h.availabilityQueries.DayAvailability(c.Request.Context(), specialistID, date)
	if err != nil {
		switch {
		case errors.Is(err, queries.ErrSpecialistNotFound):
			c.JSON(http.StatusNotFound, gin.H{
				"error": "Specialist not found",
			})
		case errors.Is(err, queries.ErrInvalidDate):
			c.JSON(http.StatusBadRequest, gin.H{
				"error": "Invalid date format, expected YYYY-MM-DD",
			})
		default:
			c.JSON(http.StatusInternalServerError, gin.H{
				"error": "Internal server error",
			})
		}
		return
	}

	c.JSON(http.StatusOK, resdto.FromDayAvailabilityView(view))
}

// @Summary Get group session spots
// @Description Report remaining capacity for a group session occurrence
// @Tags availability
// @Produce json
// @Param id path string true "Service ID"
// @Param scheduled_at query string true "Session start time (RFC3339)"
// @Success 200 {object} resdto.GroupSpotsResponse
// @Failure 400 {object} map[string]string
// @Failure 404 {object} map[string]string
// @Router /services/{id}/spots [get]
func (h *AvailabilityHandler) GetGroupSpots(c *gin.Context) {
	serviceID, err := uuid.Parse(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{
			"error": "Invalid service ID format",
		})
		return
	}

	scheduledAt, err := time.Parse(time.RFC3339, c.Query("scheduled_at"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{
			"error": "Invalid scheduled_at, expected RFC3339 timestamp",
		})
		return
	}

	view, err := h.availabilityQueries.GroupSpots(c.Request.Context(), serviceID, scheduledAt)
	if err != nil {
		switch {
		case errors.Is(err, queries.ErrServiceNotFound):
			c.JSON(http.StatusNotFound, gin.H{
				"error": "Service not found",
			})
		default:
			c.JSON(http.StatusInternalServerError, gin.H{
				"error": "Internal server error",
			})
		}
		return
	}

	c.JSON(http.StatusOK, resdto.FromGroupSpotsView(view))
}
