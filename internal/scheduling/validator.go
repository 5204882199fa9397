package scheduling

import (
	"fmt"
	"strings"
	"time"
)

// Kind identifies a class of validation violation
type Kind string

const (
	KindEmptyField           Kind = "empty_field"
	KindInvertedInterval     Kind = "inverted_interval"
	KindDurationExceeded     Kind = "duration_exceeded"
	KindOutsideBusinessHours Kind = "outside_business_hours"
	KindOverlap              Kind = "overlapping_appointment"
)

// Violation messages are shown to the user verbatim, concatenated by the caller
const (
	msgEmptyField           = "%s field is empty."
	msgInvertedInterval     = "Appointment start must be before appointment end."
	msgDurationExceeded     = "Appointment duration cannot exceed %d hours."
	msgOutsideBusinessHours = "Appointments cannot be scheduled outside of regular business hours."
	msgOverlap              = "Customer cannot have appointments that overlap. Please select a different time to schedule."
)

// Violation is a single validation failure with a human-readable message
type Violation struct {
	Kind    Kind
	Field   string // заполняется только для KindEmptyField
	Message string
}

// Result is the outcome of validating one candidate appointment
type Result struct {
	Valid      bool
	Violations []Violation
}

// Messages returns the violation messages in check order
func (r Result) Messages() []string {
	messages := make([]string, len(r.Violations))
	for i, v := range r.Violations {
		messages[i] = v.Message
	}
	return messages
}

// Candidate is an appointment about to be created or updated. Start and End
// are wall-clock instants carrying the caller's zone; ID is zero for a
// not-yet-created appointment and set to the appointment's own ID on update.
type Candidate struct {
	ID          int64
	CustomerID  int64
	UserID      int64
	ContactID   int64
	Title       string
	Description string
	Location    string
	Type        string
	Start       time.Time
	End         time.Time
}

// Interval derives the conflict-check interval for the candidate
func (c Candidate) Interval() Interval {
	return Interval{
		AppointmentID: c.ID,
		CustomerID:    c.CustomerID,
		Start:         c.Start,
		End:           c.End,
	}
}

// Validator checks candidate appointments against the scheduling rules.
// It is a pure in-memory component: the customer's existing appointments are
// passed in as plain data and no persistence state is touched.
type Validator struct {
	hours    BusinessHours
	maxHours int
}

// NewValidator creates a validator enforcing the given operating window and
// maximum appointment duration in whole hours
func NewValidator(hours BusinessHours, maxDurationHours int) *Validator {
	return &Validator{hours: hours, maxHours: maxDurationHours}
}

// Validate runs the full rule set in a single pass and returns every violation
// found, in check order:
//
//  1. title, description, location and type must be non-blank after trimming
//     (all four are reported independently);
//  2. start must be strictly before end — when it is not, the remaining
//     time-based checks are skipped, since duration, business hours and
//     overlap are meaningless on an inverted interval;
//  3. whole-hour duration must not exceed the maximum;
//  4. both start and end must fall inside business hours, compared on the
//     business-zone wall clock;
//  5. the interval must not overlap any other appointment of the same
//     customer (self excluded on update).
func (v *Validator) Validate(c Candidate, existing []Interval) Result {
	violations := make([]Violation, 0)

	requiredFields := []struct {
		label string
		value string
	}{
		{"Title", c.Title},
		{"Description", c.Description},
		{"Location", c.Location},
		{"Type", c.Type},
	}
	for _, field := range requiredFields {
		if strings.TrimSpace(field.value) == "" {
			violations = append(violations, Violation{
				Kind:    KindEmptyField,
				Field:   field.label,
				Message: fmt.Sprintf(msgEmptyField, field.label),
			})
		}
	}

	if !c.Start.Before(c.End) {
		violations = append(violations, Violation{
			Kind:    KindInvertedInterval,
			Message: msgInvertedInterval,
		})
		return Result{Valid: false, Violations: violations}
	}

	if WholeHours(c.Start, c.End) > v.maxHours {
		violations = append(violations, Violation{
			Kind:    KindDurationExceeded,
			Message: fmt.Sprintf(msgDurationExceeded, v.maxHours),
		})
	}

	if !v.hours.Contains(c.Start) || !v.hours.Contains(c.End) {
		violations = append(violations, Violation{
			Kind:    KindOutsideBusinessHours,
			Message: msgOutsideBusinessHours,
		})
	}

	if HasConflict(c.Interval(), existing) {
		violations = append(violations, Violation{
			Kind:    KindOverlap,
			Message: msgOverlap,
		})
	}

	return Result{Valid: len(violations) == 0, Violations: violations}
}
