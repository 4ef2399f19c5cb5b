package booking

type Status string

const (
	StatusPending        Status = "PENDING"
	StatusPendingPayment Status = "PENDING_PAYMENT"
	StatusConfirmed      Status = "CONFIRMED"
	StatusInProgress     Status = "IN_PROGRESS"
	StatusCompleted      Status = "COMPLETED"
	StatusCancelled      Status = "CANCELLED"
)

func (s Status) String() string {
	return string(s)
}

func (s Status) IsValid() bool {
	switch s {
	case StatusPending, StatusPendingPayment, StatusConfirmed,
		StatusInProgress, StatusCompleted, StatusCancelled:
		return true
	default:
		return false
	}
}

// IsActive reports whether the booking currently occupies calendar time.
// COMPLETED and CANCELLED bookings never block a new time slot.
func (s Status) IsActive() bool {
	switch s {
	case StatusPending, StatusPendingPayment, StatusConfirmed, StatusInProgress:
		return true
	default:
		return false
	}
}

// OccupiesSeat reports whether the booking counts toward group-session
// capacity. Unlike time conflicts, a COMPLETED group booking keeps its
// seat: the session happened and the spot was consumed.
func (s Status) OccupiesSeat() bool {
	return s.IsActive() || s == StatusCompleted
}

// ActiveStatuses is the status set used by conflict queries.
var ActiveStatuses = []Status{StatusPending, StatusPendingPayment, StatusConfirmed, StatusInProgress}

// SeatStatuses is the status set used by group-capacity queries.
var SeatStatuses = []Status{StatusPending, StatusPendingPayment, StatusConfirmed, StatusInProgress, StatusCompleted}
