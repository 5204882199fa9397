package scheduling

import "time"

// WholeHours returns the number of whole hours between start and end,
// truncating any partial hour. A 8h59m appointment counts as 8 hours.
// Only meaningful when start precedes end; callers check ordering first.
func WholeHours(start, end time.Time) int {
	return int(end.Sub(start) / time.Hour)
}
