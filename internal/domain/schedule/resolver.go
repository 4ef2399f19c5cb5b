package schedule

import (
	"sort"
	"time"
)

// AvailabilityBlock is a one-off override to the recurring schedule:
// extra open time (IsAvailable) or blocked-out time.
type AvailabilityBlock struct {
	Start       time.Time
	End         time.Time
	IsAvailable bool
}

// ResolveOpenIntervals expands the recurring schedule plus same-day
// overrides into the concrete open intervals for one calendar date.
//
// The recurring window seeds the set, then available overrides are
// unioned in (an extra evening slot may fall entirely outside normal
// hours) and unavailable overrides are subtracted, splitting or
// truncating open intervals as needed. The result is sorted and merged:
// no two returned intervals overlap or touch.
func ResolveOpenIntervals(ws WeeklySchedule, overrides []AvailabilityBlock, date time.Time, loc *time.Location) []Interval {
	if loc == nil {
		loc = time.UTC
	}
	midnight := time.Date(date.Year(), date.Month(), date.Day(), 0, 0, 0, 0, loc)
	dayEnd := midnight.AddDate(0, 0, 1)

	var open []Interval
	if hours, ok := ws.HoursFor(midnight.Weekday()); ok {
		open = append(open, Interval{
			start: midnight.Add(time.Duration(hours.Start) * time.Minute),
			end:   midnight.Add(time.Duration(hours.End) * time.Minute),
		})
	}

	for _, ov := range overrides {
		iv, ok := clampToDay(ov.Start, ov.End, midnight, dayEnd)
		if !ok {
			continue
		}
		if ov.IsAvailable {
			open = append(open, iv)
		} else {
			open = subtractAll(open, iv)
		}
	}

	return mergeIntervals(open)
}

// clampToDay trims a block to [midnight, midnight+24h) and drops blocks
// that miss the day entirely or are degenerate.
func clampToDay(start, end, midnight, dayEnd time.Time) (Interval, bool) {
	if start.Before(midnight) {
		start = midnight
	}
	if end.After(dayEnd) {
		end = dayEnd
	}
	if !start.Before(end) {
		return Interval{}, false
	}
	return Interval{start: start, end: end}, true
}

// SubtractBusy removes already-occupied ranges (existing bookings) from
// the open set, for rendering what is actually bookable.
func SubtractBusy(open []Interval, busy []Interval) []Interval {
	for _, b := range busy {
		open = subtractAll(open, b)
	}
	return mergeIntervals(open)
}

func subtractAll(open []Interval, block Interval) []Interval {
	out := make([]Interval, 0, len(open))
	for _, iv := range open {
		out = append(out, iv.Subtract(block)...)
	}
	return out
}

// mergeIntervals sorts by start and coalesces overlapping or touching
// intervals into one.
func mergeIntervals(ivs []Interval) []Interval {
	if len(ivs) == 0 {
		return nil
	}
	sort.Slice(ivs, func(i, j int) bool {
		return ivs[i].start.Before(ivs[j].start)
	})

	merged := []Interval{ivs[0]}
	for _, iv := range ivs[1:] {
		last := &merged[len(merged)-1]
		if !iv.start.After(last.end) {
			if iv.end.After(last.end) {
				last.end = iv.end
			}
			continue
		}
		merged = append(merged, iv)
	}
	return merged
}
