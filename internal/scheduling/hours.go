package scheduling

import (
	"fmt"
	"time"
)

// BusinessHours defines the operating window inside which appointments may be
// scheduled. The window is anchored to a fixed business time zone and is
// independent of the caller's system zone. The closing time is always derived
// as opening + span, never configured on its own, so changing the span moves
// the close boundary consistently.
type BusinessHours struct {
	loc         *time.Location
	openMinutes int // минуты от полуночи по часам бизнес-зоны
	spanHours   int
}

// NewBusinessHours builds the operating window from an IANA zone name, an
// opening wall-clock time in HH:MM form and the number of operating hours.
func NewBusinessHours(zone, opening string, spanHours int) (BusinessHours, error) {
	loc, err := time.LoadLocation(zone)
	if err != nil {
		return BusinessHours{}, fmt.Errorf("scheduling: unknown business time zone %q: %w", zone, err)
	}

	open, err := time.Parse("15:04", opening)
	if err != nil {
		return BusinessHours{}, fmt.Errorf("scheduling: invalid opening time %q: %w", opening, err)
	}

	if spanHours <= 0 || spanHours > 24 {
		return BusinessHours{}, fmt.Errorf("scheduling: operating hours must be in (0, 24], got %d", spanHours)
	}

	openMinutes := open.Hour()*60 + open.Minute()
	if openMinutes+spanHours*60 > 24*60 {
		return BusinessHours{}, fmt.Errorf("scheduling: operating window %s+%dh crosses midnight", opening, spanHours)
	}

	return BusinessHours{loc: loc, openMinutes: openMinutes, spanHours: spanHours}, nil
}

// ToBusinessZone converts an instant to the business-zone wall clock using the
// platform's zone database. When the caller's zone equals the business zone
// this is a pass-through by construction, not by special-casing.
func (h BusinessHours) ToBusinessZone(t time.Time) time.Time {
	return t.In(h.loc)
}

// Contains reports whether t falls inside the operating window. The window is
// half-open: the opening minute itself is allowed, the closing minute is not.
func (h BusinessHours) Contains(t time.Time) bool {
	local := h.ToBusinessZone(t)
	minutes := local.Hour()*60 + local.Minute()
	return minutes >= h.openMinutes && minutes < h.openMinutes+h.spanHours*60
}

// Location returns the business time zone
func (h BusinessHours) Location() *time.Location {
	return h.loc
}
