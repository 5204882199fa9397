package scheduling

import "time"

// StartSlots returns the hourly appointment start slots for the given day,
// expressed in the caller's zone. Slots begin at the opening time on the
// business-zone wall clock and continue for windowHours hours; the window is
// configured separately from the enforcement span, so the offered slots may
// cover a shorter stretch than Contains accepts.
func (h BusinessHours) StartSlots(day time.Time, windowHours int, userLoc *time.Location) []time.Time {
	year, month, dayOfMonth := day.Date()
	slot := time.Date(year, month, dayOfMonth, h.openMinutes/60, h.openMinutes%60, 0, 0, h.loc)

	slots := make([]time.Time, 0, windowHours)
	for i := 0; i < windowHours; i++ {
		slots = append(slots, slot.In(userLoc))
		slot = slot.Add(time.Hour)
	}
	return slots
}
