package config_test

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"taskList/internal/config"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// TestLoad тестирует загрузку конфигурации из yaml
func TestLoad(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "config.yml")

	content := `
server:
  host: "0.0.0.0"
  port: "9090"
logging:
  development: true
ratelimit:
  rpm: 5
worker:
  enabled: true
  interval: 30s
cors:
  allowed_origins:
    - "http://localhost:5173"
`
	require.NoError(t, os.WriteFile(path, []byte(content), 0o644))

	cfg, err := config.Load(path)
	require.NoError(t, err)

	assert.Equal(t, "0.0.0.0:9090", cfg.GetServerAddr())
	assert.True(t, cfg.Logging.Development)
	assert.Equal(t, 5, cfg.RateLimit.RPM)
	assert.True(t, cfg.Worker.Enabled)
	assert.Equal(t, config.Duration(30*time.Second), cfg.Worker.Interval)
	assert.Equal(t, []string{"http://localhost:5173"}, cfg.Cors.AllowedOrigins)
}

// TestLoad_Defaults тестирует значения по умолчанию
func TestLoad_Defaults(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "config.yml")
	require.NoError(t, os.WriteFile(path, []byte("logging:\n  development: false\n"), 0o644))

	cfg, err := config.Load(path)
	require.NoError(t, err)

	assert.Equal(t, "localhost:8080", cfg.GetServerAddr())
	assert.Equal(t, 100, cfg.RateLimit.RPM)
	assert.Equal(t, config.Duration(time.Minute), cfg.Worker.Interval)
	assert.Equal(t, []string{"*"}, cfg.Cors.AllowedOrigins)
}

// TestLoad_MissingFile тестирует ошибку при отсутствующем файле
func TestLoad_MissingFile(t *testing.T) {
	_, err := config.Load("/nonexistent/config.yml")
	assert.Error(t, err)
}
