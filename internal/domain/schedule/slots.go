package schedule

import "time"

// GenerateSlots discretizes open intervals into consecutive candidate
// slots of exactly slotMinutes each, anchored at each interval's start.
// A trailing remainder shorter than slotMinutes is dropped. Slots are a
// display convenience only and carry no persisted identity.
func GenerateSlots(open []Interval, slotMinutes int) []Interval {
	if slotMinutes <= 0 {
		return nil
	}
	step := time.Duration(slotMinutes) * time.Minute

	var slots []Interval
	for _, iv := range open {
		for cur := iv.start; !cur.Add(step).After(iv.end); cur = cur.Add(step) {
			slots = append(slots, Interval{start: cur, end: cur.Add(step)})
		}
	}
	return slots
}
