package scheduling

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestValidator(t *testing.T) *Validator {
	t.Helper()
	return NewValidator(newTestHours(t), 8)
}

func candidate(t *testing.T, id int64, start, end string) Candidate {
	t.Helper()
	ny, err := time.LoadLocation("America/New_York")
	require.NoError(t, err)
	startAt, err := time.ParseInLocation("2006-01-02T15:04", start, ny)
	require.NoError(t, err)
	endAt, err := time.ParseInLocation("2006-01-02T15:04", end, ny)
	require.NoError(t, err)
	return Candidate{
		ID:          id,
		CustomerID:  1,
		UserID:      1,
		ContactID:   1,
		Title:       "Planning",
		Description: "Quarterly planning session",
		Location:    "Main office",
		Type:        "Planning Session",
		Start:       startAt,
		End:         endAt,
	}
}

func TestValidateScenarios(t *testing.T) {
	validator := newTestValidator(t)

	tests := []struct {
		name      string
		candidate Candidate
		existing  []Interval
		wantKinds []Kind
	}{
		{
			name:      "clean candidate with no existing appointments",
			candidate: candidate(t, 0, "2024-06-03T09:00", "2024-06-03T10:00"),
			wantKinds: nil,
		},
		{
			name:      "overlap with an existing appointment",
			candidate: candidate(t, 0, "2024-06-03T09:30", "2024-06-03T10:30"),
			existing: []Interval{
				interval(t, 7, 1, "2024-06-03T09:00", "2024-06-03T10:00"),
			},
			wantKinds: []Kind{KindOverlap},
		},
		{
			name:      "start before opening time",
			candidate: candidate(t, 0, "2024-06-03T07:00", "2024-06-03T09:00"),
			wantKinds: []Kind{KindOutsideBusinessHours},
		},
		{
			name:      "nine hour appointment exceeds the maximum",
			candidate: candidate(t, 0, "2024-06-03T09:00", "2024-06-03T18:00"),
			wantKinds: []Kind{KindDurationExceeded},
		},
		{
			name:      "inverted interval reports nothing else",
			candidate: candidate(t, 0, "2024-06-03T10:00", "2024-06-03T09:00"),
			wantKinds: []Kind{KindInvertedInterval},
		},
		{
			name:      "start equal to end is inverted",
			candidate: candidate(t, 0, "2024-06-03T10:00", "2024-06-03T10:00"),
			wantKinds: []Kind{KindInvertedInterval},
		},
		{
			name:      "start at opening time is allowed",
			candidate: candidate(t, 0, "2024-06-03T08:00", "2024-06-03T09:00"),
			wantKinds: nil,
		},
		{
			name:      "start at closing time is rejected",
			candidate: candidate(t, 0, "2024-06-03T22:00", "2024-06-03T23:00"),
			wantKinds: []Kind{KindOutsideBusinessHours},
		},
		{
			name:      "end exactly at closing time is rejected",
			candidate: candidate(t, 0, "2024-06-03T21:00", "2024-06-03T22:00"),
			wantKinds: []Kind{KindOutsideBusinessHours},
		},
		{
			name:      "end on the last minute before closing is allowed",
			candidate: candidate(t, 0, "2024-06-03T21:00", "2024-06-03T21:59"),
			wantKinds: nil,
		},
		{
			name:      "unchanged appointment resaved against its own record",
			candidate: candidate(t, 42, "2024-06-03T09:00", "2024-06-03T10:00"),
			existing: []Interval{
				interval(t, 42, 1, "2024-06-03T09:00", "2024-06-03T10:00"),
			},
			wantKinds: nil,
		},
		{
			name:      "boundary-touching appointments do not conflict",
			candidate: candidate(t, 0, "2024-06-03T10:00", "2024-06-03T11:00"),
			existing: []Interval{
				interval(t, 7, 1, "2024-06-03T09:00", "2024-06-03T10:00"),
			},
			wantKinds: nil,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			result := validator.Validate(tt.candidate, tt.existing)

			kinds := make([]Kind, 0)
			for _, v := range result.Violations {
				kinds = append(kinds, v.Kind)
			}

			if len(tt.wantKinds) == 0 {
				assert.True(t, result.Valid)
				assert.Empty(t, result.Violations)
			} else {
				assert.False(t, result.Valid)
				assert.Equal(t, tt.wantKinds, kinds)
			}
		})
	}
}

func TestValidateAccumulatesEmptyFields(t *testing.T) {
	validator := newTestValidator(t)

	c := candidate(t, 0, "2024-06-03T09:00", "2024-06-03T10:00")
	c.Title = "   "
	c.Description = ""
	c.Location = "\t"
	c.Type = ""

	result := validator.Validate(c, nil)
	require.False(t, result.Valid)
	require.Len(t, result.Violations, 4)

	fields := make([]string, 0)
	for _, v := range result.Violations {
		require.Equal(t, KindEmptyField, v.Kind)
		fields = append(fields, v.Field)
	}
	assert.Equal(t, []string{"Title", "Description", "Location", "Type"}, fields)
	assert.Equal(t, "Title field is empty.", result.Violations[0].Message)
}

func TestValidateEmptyFieldsReportedAlongsideInvertedInterval(t *testing.T) {
	validator := newTestValidator(t)

	c := candidate(t, 0, "2024-06-03T10:00", "2024-06-03T09:00")
	c.Title = ""

	result := validator.Validate(c, []Interval{
		interval(t, 7, 1, "2024-06-03T09:00", "2024-06-03T10:00"),
	})

	require.False(t, result.Valid)
	require.Len(t, result.Violations, 2)
	assert.Equal(t, KindEmptyField, result.Violations[0].Kind)
	assert.Equal(t, KindInvertedInterval, result.Violations[1].Kind)
}

func TestValidateConvertsCallerZoneToBusinessZone(t *testing.T) {
	validator := newTestValidator(t)

	chicago, err := time.LoadLocation("America/Chicago")
	require.NoError(t, err)

	c := candidate(t, 0, "2024-06-03T09:00", "2024-06-03T10:00")

	// 07:00 in Chicago is 08:00 on the business clock: allowed.
	c.Start = time.Date(2024, 6, 3, 7, 0, 0, 0, chicago)
	c.End = time.Date(2024, 6, 3, 8, 0, 0, 0, chicago)
	result := validator.Validate(c, nil)
	assert.True(t, result.Valid, "messages: %v", result.Messages())

	// 06:30 in Chicago is 07:30 on the business clock: rejected.
	c.Start = time.Date(2024, 6, 3, 6, 30, 0, 0, chicago)
	c.End = time.Date(2024, 6, 3, 7, 30, 0, 0, chicago)
	result = validator.Validate(c, nil)
	require.False(t, result.Valid)
	assert.Equal(t, KindOutsideBusinessHours, result.Violations[0].Kind)
}

func TestResultMessagesOrder(t *testing.T) {
	validator := newTestValidator(t)

	// Nine-hour appointment that also starts before opening and overlaps.
	c := candidate(t, 0, "2024-06-03T07:00", "2024-06-03T16:00")
	result := validator.Validate(c, []Interval{
		interval(t, 7, 1, "2024-06-03T09:00", "2024-06-03T10:00"),
	})

	require.False(t, result.Valid)
	require.Equal(t, []string{
		"Appointment duration cannot exceed 8 hours.",
		"Appointments cannot be scheduled outside of regular business hours.",
		"Customer cannot have appointments that overlap. Please select a different time to schedule.",
	}, result.Messages())
}
