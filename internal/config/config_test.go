package config

import (
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const validConfig = `
[server]
http_port = 8080
read_timeout = 15
write_timeout = 15
idle_timeout = 60
shutdown_timeout = 10

[database]
host = "localhost"
port = 5432
user = "scheduler"
password = "scheduler"
dbname = "scheduling"
sslmode = "disable"
max_open_conns = 25
max_idle_conns = 5
conn_max_lifetime = 300

[logs]
file = "app.log"
level = "info"
activity_file = "login_activity.txt"

[metrics]
enabled = true
path = "/metrics"
service_name = "scheduling-service"

[scheduling]
business_time_zone = "America/New_York"
opening_time = "08:00"
operating_hours = 14
slot_window_hours = 13
max_appointment_hours = 8
imminent_window_minutes = 15
`

func writeConfig(t *testing.T, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "config.toml")
	require.NoError(t, os.WriteFile(path, []byte(content), 0o644))
	return path
}

func TestLoad(t *testing.T) {
	cfg, err := Load(writeConfig(t, validConfig))
	require.NoError(t, err)

	assert.Equal(t, 8080, cfg.Server.HTTPPort)
	assert.Equal(t, "America/New_York", cfg.Scheduling.BusinessTimeZone)
	assert.Equal(t, 14, cfg.Scheduling.OperatingHours)
	assert.Equal(t, 13, cfg.Scheduling.SlotWindowHours)
	assert.Equal(t, "login_activity.txt", cfg.Logs.ActivityFile)
	assert.Equal(t,
		"host=localhost port=5432 user=scheduler password=scheduler dbname=scheduling sslmode=disable",
		cfg.Database.DSN())
}

func TestLoadRejectsSlotWindowWiderThanOperatingHours(t *testing.T) {
	broken := strings.Replace(validConfig, "slot_window_hours = 13", "slot_window_hours = 20", 1)

	cfg, err := Load(writeConfig(t, broken))
	assert.Error(t, err)
	assert.Nil(t, cfg)
}

func TestLoadMissingFile(t *testing.T) {
	_, err := Load(filepath.Join(t.TempDir(), "missing.toml"))
	assert.Error(t, err)
}
