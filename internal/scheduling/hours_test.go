package scheduling

import (
	"testing"
	"time"

	"github.com/stretchr/testify/require"
)

func newTestHours(t *testing.T) BusinessHours {
	t.Helper()
	hours, err := NewBusinessHours("America/New_York", "08:00", 14)
	require.NoError(t, err)
	return hours
}

func TestNewBusinessHours(t *testing.T) {
	tests := []struct {
		name    string
		zone    string
		opening string
		span    int
		wantErr bool
	}{
		{name: "default window", zone: "America/New_York", opening: "08:00", span: 14},
		{name: "unknown zone", zone: "Mars/Olympus", opening: "08:00", span: 14, wantErr: true},
		{name: "bad opening time", zone: "America/New_York", opening: "8am", span: 14, wantErr: true},
		{name: "zero span", zone: "America/New_York", opening: "08:00", span: 0, wantErr: true},
		{name: "window crosses midnight", zone: "America/New_York", opening: "18:00", span: 10, wantErr: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := NewBusinessHours(tt.zone, tt.opening, tt.span)
			if tt.wantErr {
				require.Error(t, err)
			} else {
				require.NoError(t, err)
			}
		})
	}
}

func TestBusinessHoursContains(t *testing.T) {
	hours := newTestHours(t)
	ny, err := time.LoadLocation("America/New_York")
	require.NoError(t, err)

	tests := []struct {
		name string
		at   time.Time
		want bool
	}{
		{name: "opening boundary is inside", at: time.Date(2024, 6, 3, 8, 0, 0, 0, ny), want: true},
		{name: "one minute before opening", at: time.Date(2024, 6, 3, 7, 59, 0, 0, ny), want: false},
		{name: "middle of the day", at: time.Date(2024, 6, 3, 14, 30, 0, 0, ny), want: true},
		{name: "last minute before closing", at: time.Date(2024, 6, 3, 21, 59, 0, 0, ny), want: true},
		{name: "closing boundary is outside", at: time.Date(2024, 6, 3, 22, 0, 0, 0, ny), want: false},
		{name: "late evening", at: time.Date(2024, 6, 3, 23, 0, 0, 0, ny), want: false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			require.Equal(t, tt.want, hours.Contains(tt.at))
		})
	}
}

func TestBusinessHoursContainsConvertsZones(t *testing.T) {
	hours := newTestHours(t)

	phoenix, err := time.LoadLocation("America/Phoenix")
	require.NoError(t, err)

	// Phoenix does not observe DST, so the offset to the business zone shifts
	// between summer and winter; the zone database has to resolve both.
	summerOpen := time.Date(2024, 6, 3, 5, 0, 0, 0, phoenix) // 08:00 EDT
	require.True(t, hours.Contains(summerOpen))
	require.False(t, hours.Contains(summerOpen.Add(-time.Minute)))

	winterOpen := time.Date(2024, 1, 8, 6, 0, 0, 0, phoenix) // 08:00 EST
	require.True(t, hours.Contains(winterOpen))
	require.False(t, hours.Contains(winterOpen.Add(-time.Minute)))
}

func TestToBusinessZone(t *testing.T) {
	hours := newTestHours(t)

	chicago, err := time.LoadLocation("America/Chicago")
	require.NoError(t, err)

	at := time.Date(2024, 6, 3, 7, 0, 0, 0, chicago)
	converted := hours.ToBusinessZone(at)
	require.Equal(t, 8, converted.Hour())
	require.True(t, at.Equal(converted), "conversion must preserve the instant")

	// Same-zone input passes through unchanged.
	ny := hours.Location()
	local := time.Date(2024, 6, 3, 9, 15, 0, 0, ny)
	require.Equal(t, local, hours.ToBusinessZone(local))
}
