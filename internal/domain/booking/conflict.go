package booking

import "miyzapis/internal/domain/schedule"

// FindConflict returns the first active booking whose occupied interval
// overlaps the candidate, or nil. Any true overlap rejects the
// candidate; there is no priority between bookings. The result is only
// as fresh as the snapshot passed in, which is why admission re-runs
// this inside its transaction.
func FindConflict(candidate schedule.Interval, existing []*Booking) *Booking {
	for _, b := range existing {
		if !b.IsActive() {
			continue
		}
		iv, err := b.Interval()
		if err != nil {
			// A persisted non-positive duration cannot occupy time.
			continue
		}
		if candidate.Overlaps(iv) {
			return b
		}
	}
	return nil
}

// HasConflict is the boolean form of FindConflict.
func HasConflict(candidate schedule.Interval, existing []*Booking) bool {
	return FindConflict(candidate, existing) != nil
}
