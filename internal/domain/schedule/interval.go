package schedule

import (
	"errors"
	"fmt"
	"time"
)

var ErrInvalidInterval = errors.New("interval start must be before end")

// Interval is a half-open time range [start, end).
type Interval struct {
	start time.Time
	end   time.Time
}

func NewInterval(start, end time.Time) (Interval, error) {
	if !start.Before(end) {
		return Interval{}, ErrInvalidInterval
	}
	return Interval{start: start, end: end}, nil
}

func (iv Interval) Start() time.Time {
	return iv.start
}

func (iv Interval) End() time.Time {
	return iv.end
}

func (iv Interval) Duration() time.Duration {
	return iv.end.Sub(iv.start)
}

// Overlaps reports whether the two intervals share any instant.
// Touching endpoints do not overlap: [9:00,10:00) and [10:00,11:00)
// are compatible.
func (iv Interval) Overlaps(other Interval) bool {
	return iv.start.Before(other.end) && other.start.Before(iv.end)
}

// Contains reports whether inner lies entirely within iv.
func (iv Interval) Contains(inner Interval) bool {
	return !iv.start.After(inner.start) && !inner.end.After(iv.end)
}

func (iv Interval) String() string {
	return fmt.Sprintf("[%s,%s)", iv.start.Format(time.RFC3339), iv.end.Format(time.RFC3339))
}

// Subtract removes block from iv, returning the zero, one or two
// remaining sub-intervals.
func (iv Interval) Subtract(block Interval) []Interval {
	if !iv.Overlaps(block) {
		return []Interval{iv}
	}

	var out []Interval
	if iv.start.Before(block.start) {
		out = append(out, Interval{start: iv.start, end: block.start})
	}
	if block.end.Before(iv.end) {
		out = append(out, Interval{start: block.end, end: iv.end})
	}
	return out
}
