package domain

// Default scheduling rules.
// OperatingHours bounds the enforcement window (close = opening + span);
// SlotWindowHours bounds the hour slots offered by the client UI. The two
// windows are configured separately because they historically differ.
const (
	DefaultBusinessTimeZone      = "America/New_York"
	DefaultOpeningTime           = "08:00"
	DefaultOperatingHours        = 14
	DefaultSlotWindowHours       = 13
	DefaultMaxAppointmentHours   = 8
	DefaultImminentWindowMinutes = 15
)

// Time format constants
const (
	TimeFormat     = "15:04"            // HH:MM
	DateFormat     = "2006-01-02"       // YYYY-MM-DD
	DateTimeFormat = "2006-01-02T15:04" // naive local timestamp on the wire
)
