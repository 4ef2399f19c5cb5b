package response

import (
	"time"

	"miyzapis/internal/usecase/queries"

	"github.com/google/uuid"
)

type IntervalResponse struct {
	Start time.Time `json:"start"`
	End   time.Time `json:"end"`
}

type DayAvailabilityResponse struct {
	SpecialistID  uuid.UUID          `json:"specialistId"`
	Date          string             `json:"date"`
	Timezone      string             `json:"timezone"`
	OpenIntervals []IntervalResponse `json:"openIntervals"`
	Slots         []IntervalResponse `json:"slots"`
}

type GroupSpotsResponse struct {
	ServiceID    uuid.UUID `json:"serviceId"`
	ScheduledAt  time.Time `json:"scheduledAt"`
	Available    bool      `json:"available"`
	SpotsLeft    *int      `json:"spotsLeft,omitempty"`
	CurrentCount int       `json:"currentCount"`
}

func FromDayAvailabilityView(rm *queries.DayAvailabilityView) *DayAvailabilityResponse {
	return &DayAvailabilityResponse{
		SpecialistID:  rm.SpecialistID,
		Date:          rm.Date,
		Timezone:      rm.Timezone,
		OpenIntervals: toIntervalResponses(rm.OpenIntervals),
		Slots:         toIntervalResponses(rm.Slots),
	}
}

func FromGroupSpotsView(rm *queries.GroupSpotsView) *GroupSpotsResponse {
	return &GroupSpotsResponse{
		ServiceID:    rm.ServiceID,
		ScheduledAt:  rm.ScheduledAt,
		Available:    rm.Available,
		SpotsLeft:    rm.SpotsLeft,
		CurrentCount: rm.CurrentCount,
	}
}

func toIntervalResponses(ivs []queries.IntervalView) []IntervalResponse {
	out := make([]IntervalResponse, len(ivs))
	for i, iv := range ivs {
		out[i] = IntervalResponse{Start: iv.Start, End: iv.End}
	}
	return out
}
