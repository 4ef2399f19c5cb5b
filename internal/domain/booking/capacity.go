package booking

import (
	"fmt"
	"time"

	"github.com/google/uuid"
)

// GroupSessionKey identifies one scheduled occurrence of a group
// service. Every caller computing the key for the same (serviceID,
// scheduledAt) pair must produce an identical string, so the timestamp
// is reduced to epoch milliseconds before formatting.
func GroupSessionKey(serviceID uuid.UUID, scheduledAt time.Time) string {
	return fmt.Sprintf("%s_%d", serviceID, scheduledAt.UnixMilli())
}

// SpotsResult is the capacity snapshot for one group session.
// SpotsLeft is nil when the service has no participant limit.
type SpotsResult struct {
	Available    bool
	SpotsLeft    *int
	CurrentCount int
}

// AvailableSpots compares the summed participant count of a group
// session against the service's limit. A nil maxParticipants means
// unlimited capacity and always admits.
func AvailableSpots(currentCount int, maxParticipants *int) SpotsResult {
	if maxParticipants == nil {
		return SpotsResult{Available: true, CurrentCount: currentCount}
	}

	left := *maxParticipants - currentCount
	if left < 0 {
		left = 0
	}
	return SpotsResult{
		Available:    left > 0,
		SpotsLeft:    &left,
		CurrentCount: currentCount,
	}
}

// CanAccommodate reports whether the session can take on requested more
// participants. Non-positive requested counts are a caller precondition
// violation rejected before this layer.
func CanAccommodate(requested int, spots SpotsResult) bool {
	if !spots.Available {
		return false
	}
	if spots.SpotsLeft == nil {
		return true
	}
	return *spots.SpotsLeft >= requested
}
