package schedule

import (
	"encoding/json"
	"errors"
	"fmt"
	"strings"
	"time"
)

var ErrScheduleParse = errors.New("unparseable working-hours schedule")

// DayHours is the recurring open window for one weekday, minutes from
// midnight in the specialist's local day.
type DayHours struct {
	Start int
	End   int
}

// WeeklySchedule maps a weekday to its recurring open window. A missing
// entry means the day is closed; the historic 09:00-17:00 fallback for
// half-configured days was a data-entry artifact and is intentionally
// not reproduced.
type WeeklySchedule struct {
	days map[time.Weekday]DayHours
}

func (ws WeeklySchedule) HoursFor(day time.Weekday) (DayHours, bool) {
	h, ok := ws.days[day]
	return h, ok
}

func (ws WeeklySchedule) IsOpen(day time.Weekday) bool {
	_, ok := ws.days[day]
	return ok
}

var weekdayNames = map[string]time.Weekday{
	"sunday":    time.Sunday,
	"monday":    time.Monday,
	"tuesday":   time.Tuesday,
	"wednesday": time.Wednesday,
	"thursday":  time.Thursday,
	"friday":    time.Friday,
	"saturday":  time.Saturday,
}

// rawDayEntry tolerates the historic on-disk shape variations: the open
// flag has appeared as both isWorking and isOpen, and the bounds as
// startTime/endTime and start/end. Normalization happens here, once.
type rawDayEntry struct {
	IsWorking *bool   `json:"isWorking"`
	IsOpen    *bool   `json:"isOpen"`
	StartTime *string `json:"startTime"`
	Start     *string `json:"start"`
	EndTime   *string `json:"endTime"`
	End       *string `json:"end"`
	Closed    *bool   `json:"closed"`
}

func (e rawDayEntry) open() bool {
	if e.Closed != nil && *e.Closed {
		return false
	}
	if e.IsWorking != nil {
		return *e.IsWorking
	}
	if e.IsOpen != nil {
		return *e.IsOpen
	}
	// No flag at all: presence of an entry with hours means open.
	return e.startRaw() != "" || e.endRaw() != ""
}

func (e rawDayEntry) startRaw() string {
	if e.StartTime != nil {
		return *e.StartTime
	}
	if e.Start != nil {
		return *e.Start
	}
	return ""
}

func (e rawDayEntry) endRaw() string {
	if e.EndTime != nil {
		return *e.EndTime
	}
	if e.End != nil {
		return *e.End
	}
	return ""
}

// ParseWeeklySchedule decodes the schedule JSON stored on the specialist
// row into the canonical form. An empty or unparseable document yields a
// schedule with every day closed rather than an error: a broken schedule
// must fail toward no availability, never toward admitting bookings.
// Individual malformed day entries are likewise dropped as closed.
func ParseWeeklySchedule(raw []byte) WeeklySchedule {
	ws := WeeklySchedule{days: map[time.Weekday]DayHours{}}
	if len(raw) == 0 {
		return ws
	}

	var doc map[string]rawDayEntry
	if err := json.Unmarshal(raw, &doc); err != nil {
		return ws
	}

	for name, entry := range doc {
		day, ok := weekdayNames[strings.ToLower(name)]
		if !ok || !entry.open() {
			continue
		}

		start, err := parseClock(entry.startRaw())
		if err != nil {
			continue
		}
		end, err := parseClock(entry.endRaw())
		if err != nil || end <= start {
			continue
		}

		ws.days[day] = DayHours{Start: start, End: end}
	}
	return ws
}

// parseClock converts an "HH:MM" string to minutes from midnight.
func parseClock(s string) (int, error) {
	var hh, mm int
	if _, err := fmt.Sscanf(s, "%d:%d", &hh, &mm); err != nil {
		return 0, fmt.Errorf("%w: %q", ErrScheduleParse, s)
	}
	if hh < 0 || hh > 24 || mm < 0 || mm > 59 || (hh == 24 && mm != 0) {
		return 0, fmt.Errorf("%w: %q", ErrScheduleParse, s)
	}
	return hh*60 + mm, nil
}
