package scheduling

import (
	"testing"
	"time"

	"github.com/stretchr/testify/require"
)

func TestWholeHours(t *testing.T) {
	base := time.Date(2024, 6, 3, 9, 0, 0, 0, time.UTC)

	tests := []struct {
		name string
		span time.Duration
		want int
	}{
		{name: "half hour truncates to zero", span: 30 * time.Minute, want: 0},
		{name: "exactly one hour", span: time.Hour, want: 1},
		{name: "eight hours", span: 8 * time.Hour, want: 8},
		{name: "partial hour truncates down", span: 8*time.Hour + 59*time.Minute, want: 8},
		{name: "nine hours", span: 9 * time.Hour, want: 9},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			require.Equal(t, tt.want, WholeHours(base, base.Add(tt.span)))
		})
	}
}
