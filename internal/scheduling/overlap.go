package scheduling

import "time"

// Interval is a customer-scoped appointment interval used for conflict checks.
// AppointmentID is zero for a candidate that has not been persisted yet.
type Interval struct {
	AppointmentID int64
	CustomerID    int64
	Start         time.Time
	End           time.Time
}

// Overlaps reports whether two half-open intervals [Start, End) share at least
// one instant. Strict inequalities on both sides mean intervals that merely
// touch at a boundary do not overlap.
func Overlaps(a, b Interval) bool {
	return a.Start.Before(b.End) && b.Start.Before(a.End)
}

// HasConflict reports whether the candidate interval conflicts with any of the
// customer's existing appointments. When the candidate carries its own
// appointment ID (the update case) the stored record with that ID is excluded,
// so an unchanged appointment re-saved at its original time never conflicts
// with itself. A start-times-only comparison gets exactly that case wrong,
// which is why the check is a true interval intersection.
//
// The scan is O(n) over the customer's appointments; the contract holds for
// arbitrarily many intervals and the internals could move to a sorted or
// interval-tree structure without changing the signature.
func HasConflict(candidate Interval, existing []Interval) bool {
	for _, other := range existing {
		if other.CustomerID != candidate.CustomerID {
			continue
		}
		if candidate.AppointmentID != 0 && other.AppointmentID == candidate.AppointmentID {
			continue
		}
		if Overlaps(candidate, other) {
			return true
		}
	}
	return false
}
