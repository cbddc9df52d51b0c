package config

import (
	"os"
	"path/filepath"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/mmynk/splitledger/internal/digest"
)

const testSecret = "0123456789abcdef0123456789abcdef"

func clearEnv(t *testing.T) {
	t.Helper()
	for _, key := range []string{
		"PORT", "CORS_ORIGINS", "DB_PATH", "JWT_SECRET", "TOKEN_TTL",
		"LOG_LEVEL", "LOG_FORMAT", "AMQP_URL", "AMQP_EXCHANGE", "DIGEST_CRON",
	} {
		t.Setenv(key, "")
	}
}

func TestLoadFile_Defaults(t *testing.T) {
	clearEnv(t)

	cfg, err := LoadFile(filepath.Join(t.TempDir(), "missing.yaml"))
	require.NoError(t, err)

	assert.Equal(t, 8080, cfg.Server.Port)
	assert.Equal(t, []string{"*"}, cfg.Server.CORSOrigins)
	assert.Equal(t, "./data/splitledger.db", cfg.Database.Path)
	assert.Equal(t, 24*time.Hour, cfg.Auth.TokenTTL)
	assert.Equal(t, "info", cfg.Log.Level)
	assert.Equal(t, "text", cfg.Log.Format)
	assert.Equal(t, "splitledger.events", cfg.AMQP.Exchange)
	assert.Equal(t, "0 9 * * 1", cfg.Digest.Cron)
	assert.Empty(t, cfg.AMQP.URL)
	assert.Equal(t, ":8080", cfg.Addr())
}

func TestLoadFile_YAMLThenEnv(t *testing.T) {
	clearEnv(t)

	path := filepath.Join(t.TempDir(), "config.yaml")
	yamlData := `
server:
  port: 9000
  cors_origins: ["https://app.example.com"]
database:
  path: /var/lib/splitledger.db
auth:
  jwt_secret: from-file
  token_ttl: 2h
log:
  level: debug
`
	require.NoError(t, os.WriteFile(path, []byte(yamlData), 0o600))

	t.Setenv("JWT_SECRET", testSecret)
	t.Setenv("CORS_ORIGINS", "https://a.example.com, https://b.example.com")

	cfg, err := LoadFile(path)
	require.NoError(t, err)

	assert.Equal(t, 9000, cfg.Server.Port)
	assert.Equal(t, "/var/lib/splitledger.db", cfg.Database.Path)
	assert.Equal(t, 2*time.Hour, cfg.Auth.TokenTTL)
	assert.Equal(t, "debug", cfg.Log.Level)
	assert.Equal(t, testSecret, cfg.Auth.JWTSecret)
	assert.Equal(t, []string{"https://a.example.com", "https://b.example.com"}, cfg.Server.CORSOrigins)
	assert.NoError(t, cfg.Validate())
}

func TestLoadFile_BadEnv(t *testing.T) {
	clearEnv(t)
	dir := t.TempDir()

	t.Setenv("PORT", "eighty")
	_, err := LoadFile(filepath.Join(dir, "missing.yaml"))
	assert.ErrorContains(t, err, "PORT")

	t.Setenv("PORT", "")
	t.Setenv("TOKEN_TTL", "forever")
	_, err = LoadFile(filepath.Join(dir, "missing.yaml"))
	assert.ErrorContains(t, err, "TOKEN_TTL")
}

func TestLoadFile_BadYAML(t *testing.T) {
	clearEnv(t)
	path := filepath.Join(t.TempDir(), "config.yaml")
	require.NoError(t, os.WriteFile(path, []byte("server: [unclosed"), 0o600))

	_, err := LoadFile(path)
	assert.ErrorContains(t, err, "parse config")
}

func TestValidate_DigestCron(t *testing.T) {
	clearEnv(t)
	t.Setenv("JWT_SECRET", testSecret)
	t.Setenv("DIGEST_CRON", "61 * * * *")

	cfg, err := LoadFile(filepath.Join(t.TempDir(), "missing.yaml"))
	require.NoError(t, err)
	assert.ErrorContains(t, cfg.Validate(), `digest.cron "61 * * * *"`)

	t.Setenv("DIGEST_CRON", "")
	cfg, err = LoadFile(filepath.Join(t.TempDir(), "missing.yaml"))
	require.NoError(t, err)
	assert.Equal(t, digest.DefaultSchedule, cfg.Digest.Cron)
	assert.NoError(t, cfg.Validate())
}

func TestValidate_CollectsAllErrors(t *testing.T) {
	clearEnv(t)
	cfg, err := LoadFile(filepath.Join(t.TempDir(), "missing.yaml"))
	require.NoError(t, err)

	cfg.Server.Port = 70000
	cfg.Log.Level = "loud"
	cfg.Log.Format = "xml"
	cfg.Digest.Cron = "every monday"

	err = cfg.Validate()
	require.Error(t, err)
	msg := err.Error()
	for _, want := range []string{"server.port", "jwt_secret", "log.level", "log.format", "digest.cron"} {
		assert.True(t, strings.Contains(msg, want), "missing %q in %q", want, msg)
	}
}
