package scheduling

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestStartSlots(t *testing.T) {
	hours := newTestHours(t)
	ny := hours.Location()

	day := time.Date(2024, 6, 3, 0, 0, 0, 0, time.UTC)
	slots := hours.StartSlots(day, 13, ny)

	require.Len(t, slots, 13)
	assert.Equal(t, time.Date(2024, 6, 3, 8, 0, 0, 0, ny), slots[0])
	assert.Equal(t, time.Date(2024, 6, 3, 20, 0, 0, 0, ny), slots[12])
	for i := 1; i < len(slots); i++ {
		assert.Equal(t, time.Hour, slots[i].Sub(slots[i-1]))
	}
}

func TestStartSlotsConvertedToCallerZone(t *testing.T) {
	hours := newTestHours(t)

	chicago, err := time.LoadLocation("America/Chicago")
	require.NoError(t, err)

	day := time.Date(2024, 6, 3, 0, 0, 0, 0, time.UTC)
	slots := hours.StartSlots(day, 13, chicago)

	require.Len(t, slots, 13)
	// 08:00 on the business clock is 07:00 in Chicago during DST.
	assert.Equal(t, time.Date(2024, 6, 3, 7, 0, 0, 0, chicago), slots[0])
	assert.Equal(t, "America/Chicago", slots[0].Location().String())
}
