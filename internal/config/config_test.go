package config

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const sampleConfig = `
[server]
http_port = 8090
read_timeout = 5

[database]
host = "db"
port = 5433
user = "appointments"
password = "secret"
dbname = "appointments"
sslmode = "disable"

[logs]
level = "debug"

[metrics]
enabled = true
path = "/metrics"
service_name = "appointment-service"

[scheduling]
timezone = "Europe/Moscow"
week_start = "sunday"
`

func writeConfig(t *testing.T, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "config.toml")
	require.NoError(t, os.WriteFile(path, []byte(content), 0o600))
	return path
}

func TestLoad(t *testing.T) {
	cfg, err := Load(writeConfig(t, sampleConfig))
	require.NoError(t, err)

	assert.Equal(t, 8090, cfg.Server.HTTPPort)
	assert.Equal(t, 5, cfg.Server.ReadTimeout)
	assert.Equal(t, 15, cfg.Server.WriteTimeout) // значение по умолчанию
	assert.Equal(t, "db", cfg.Database.Host)
	assert.Equal(t, 5433, cfg.Database.Port)
	assert.Equal(t, "debug", cfg.Logs.Level)
	assert.True(t, cfg.Metrics.Enabled)
	assert.Equal(t, "Europe/Moscow", cfg.Scheduling.Location().String())
	assert.Equal(t, time.Sunday, cfg.Scheduling.Weekday())
}

func TestLoad_EnvOverrides(t *testing.T) {
	t.Setenv("APPOINTMENT_DATABASE_PASSWORD", "from-env")
	t.Setenv("APPOINTMENT_SERVER_HTTP_PORT", "9000")
	t.Setenv("APPOINTMENT_SCHEDULING_WEEK_START", "mon")

	cfg, err := Load(writeConfig(t, sampleConfig))
	require.NoError(t, err)

	assert.Equal(t, "from-env", cfg.Database.Password)
	assert.Equal(t, 9000, cfg.Server.HTTPPort)
	assert.Equal(t, time.Monday, cfg.Scheduling.Weekday())
}

func TestLoad_Defaults(t *testing.T) {
	cfg, err := Load("")
	require.NoError(t, err)

	assert.Equal(t, 8080, cfg.Server.HTTPPort)
	assert.Equal(t, "Australia/Melbourne", cfg.Scheduling.Location().String())
	assert.Equal(t, time.Monday, cfg.Scheduling.Weekday())
	assert.Equal(t, "host=localhost port=5432 user=postgres password= dbname=appointments sslmode=disable",
		cfg.Database.DSN())
}

func TestLoad_Errors(t *testing.T) {
	tests := []struct {
		name    string
		path    func(t *testing.T) string
		env     map[string]string
		wantErr error
	}{
		{
			name:    "missing file",
			path:    func(t *testing.T) string { return filepath.Join(t.TempDir(), "nope.toml") },
			wantErr: ErrReadConfig,
		},
		{
			name:    "broken toml",
			path:    func(t *testing.T) string { return writeConfig(t, "[server\nhttp_port = ") },
			wantErr: ErrReadConfig,
		},
		{
			name:    "unknown timezone",
			path:    func(t *testing.T) string { return writeConfig(t, "[scheduling]\ntimezone = \"Mars/Olympus\"") },
			wantErr: ErrInvalidConfig,
		},
		{
			name:    "unknown week start",
			path:    func(t *testing.T) string { return writeConfig(t, "[scheduling]\nweek_start = \"someday\"") },
			wantErr: ErrInvalidConfig,
		},
		{
			name:    "bad port from env",
			path:    func(t *testing.T) string { return "" },
			env:     map[string]string{"APPOINTMENT_SERVER_HTTP_PORT": "http"},
			wantErr: ErrEnvOverride,
		},
		{
			name:    "port out of range",
			path:    func(t *testing.T) string { return "" },
			env:     map[string]string{"APPOINTMENT_SERVER_HTTP_PORT": "70000"},
			wantErr: ErrInvalidConfig,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			for k, v := range tt.env {
				t.Setenv(k, v)
			}

			_, err := Load(tt.path(t))
			assert.ErrorIs(t, err, tt.wantErr)
		})
	}
}
