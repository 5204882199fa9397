package identity

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestFileActivityRecorderAppends(t *testing.T) {
	path := filepath.Join(t.TempDir(), "login_activity.txt")

	recorder := NewFileActivityRecorder(path)
	recorder.now = func() time.Time {
		return time.Date(2024, 6, 3, 13, 0, 0, 0, time.UTC)
	}

	require.NoError(t, recorder.Record("test", true))
	require.NoError(t, recorder.Record("admin", false))

	content, err := os.ReadFile(path)
	require.NoError(t, err)

	assert.Equal(t,
		"user test successfully logged in at 2024-06-03 13:00:00 UTC\n"+
			"user admin gave invalid log-in at 2024-06-03 13:00:00 UTC\n",
		string(content))
}
