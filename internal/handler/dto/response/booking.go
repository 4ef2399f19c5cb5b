package response

import (
	"time"

	"miyzapis/internal/usecase/queries"

	"github.com/google/uuid"
)

type BookingResponse struct {
	ID               uuid.UUID `json:"id"`
	CustomerID       uuid.UUID `json:"customerId"`
	SpecialistID     uuid.UUID `json:"specialistId"`
	SpecialistName   string    `json:"specialistName"`
	ServiceID        uuid.UUID `json:"serviceId"`
	ServiceName      string    `json:"serviceName"`
	ScheduledAt      time.Time `json:"scheduledAt"`
	DurationMin      int       `json:"durationMin"`
	Status           string    `json:"status"`
	ParticipantCount int       `json:"participantCount"`
	GroupSessionID   *string   `json:"groupSessionId,omitempty"`
	CreatedAt        time.Time `json:"createdAt"`
	UpdatedAt        time.Time `json:"updatedAt"`
}

type BookingListResponse struct {
	ID          uuid.UUID `json:"id"`
	ServiceID   uuid.UUID `json:"serviceId"`
	ServiceName string    `json:"serviceName"`
	ScheduledAt time.Time `json:"scheduledAt"`
	DurationMin int       `json:"durationMin"`
	Status      string    `json:"status"`
}

func FromBookingView(rm *queries.BookingView) *BookingResponse {
	return &BookingResponse{
		ID:               rm.ID,
		CustomerID:       rm.CustomerID,
		SpecialistID:     rm.SpecialistID,
		SpecialistName:   rm.SpecialistName,
		ServiceID:        rm.ServiceID,
		ServiceName:      rm.ServiceName,
		ScheduledAt:      rm.ScheduledAt,
		DurationMin:      rm.DurationMin,
		Status:           rm.Status,
		ParticipantCount: rm.ParticipantCount,
		GroupSessionID:   rm.GroupSessionID,
		CreatedAt:        rm.CreatedAt,
		UpdatedAt:        rm.UpdatedAt,
	}
}

func FromBookingListItem(rm *queries.BookingListItem) *BookingListResponse {
	return &BookingListResponse{
		ID:          rm.ID,
		ServiceID:   rm.ServiceID,
		ServiceName: rm.ServiceName,
		ScheduledAt: rm.ScheduledAt,
		DurationMin: rm.DurationMin,
		Status:      rm.Status,
	}
}
