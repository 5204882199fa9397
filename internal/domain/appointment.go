package domain

import "time"

// Appointment represents a scheduled appointment between a customer and a staff member
type Appointment struct {
	ID          int64
	CustomerID  int64
	UserID      int64 // ID сотрудника, ведущего встречу
	ContactID   int64
	Title       string
	Description string
	Location    string
	Type        string
	Start       time.Time
	End         time.Time

	CreatedAt time.Time
	UpdatedAt time.Time
}

// StartsWithin returns true if the appointment starts strictly after now
// and strictly before now+window
func (a *Appointment) StartsWithin(now time.Time, window time.Duration) bool {
	return a.Start.After(now) && a.Start.Before(now.Add(window))
}

// AppointmentView selects how the appointment list is filtered for display
type AppointmentView string

const (
	ViewAll   AppointmentView = "all"
	ViewWeek  AppointmentView = "week"
	ViewMonth AppointmentView = "month"
)

// Valid returns true for a known view filter value
func (v AppointmentView) Valid() bool {
	return v == ViewAll || v == ViewWeek || v == ViewMonth
}
