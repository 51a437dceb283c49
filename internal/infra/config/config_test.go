package config

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func writeConfig(t *testing.T, body string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "values.yaml")
	require.NoError(t, os.WriteFile(path, []byte(body), 0o644))
	return path
}

func chdirTemp(t *testing.T) {
	t.Helper()
	wd, err := os.Getwd()
	require.NoError(t, err)
	require.NoError(t, os.Chdir(t.TempDir()))
	t.Cleanup(func() { _ = os.Chdir(wd) })
}

func TestLoadConfig_FileAndDefaults(t *testing.T) {
	chdirTemp(t)
	path := writeConfig(t, `
server:
  port: "9090"
  request_timeout: 5s
telegram_bot:
  token: file-token
  poll_timeout: 3s
storage:
  type: sqlite
  dsn: file:test.db
auth:
  hmac_secret: secret
`)

	cfg, err := LoadConfig(path)
	require.NoError(t, err)

	assert.Equal(t, "0.0.0.0:9090", cfg.HTTPAddr())
	assert.Equal(t, 5*time.Second, cfg.Server.RequestTimeout)
	assert.Equal(t, 3*time.Second, cfg.TelegramBot.PollTimeout)
	assert.Equal(t, ModePolling, cfg.TelegramBot.Mode)
	assert.Equal(t, StorageSQLite, cfg.Storage.Type)
	assert.Equal(t, 24*time.Hour, cfg.Redis.TTL)
	assert.Equal(t, []string{"*"}, cfg.Server.CORSOrigins)
	assert.True(t, cfg.TelegramEnabled())
	assert.False(t, cfg.DatabaseEnabled())
}

func TestLoadConfig_EnvOverrides(t *testing.T) {
	chdirTemp(t)
	path := writeConfig(t, `
telegram_bot:
  token: file-token
auth:
  hmac_secret: secret
`)
	t.Setenv("TELEGRAM_BOT_TOKEN", "env-token")
	t.Setenv("STORAGE_TYPE", "redis")
	t.Setenv("REDIS_ADDR", "redis:6379")
	t.Setenv("CORS_ORIGINS", "https://a.example, https://b.example")
	t.Setenv("DEBUG", "1")

	cfg, err := LoadConfig(path)
	require.NoError(t, err)

	assert.Equal(t, "env-token", cfg.TelegramBot.Token)
	assert.Equal(t, StorageRedis, cfg.Storage.Type)
	assert.Equal(t, "redis:6379", cfg.Redis.Addr)
	assert.Equal(t, []string{"https://a.example", "https://b.example"}, cfg.Server.CORSOrigins)
	assert.True(t, cfg.TelegramBot.Debug)
}

func TestLoadConfig_Invalid(t *testing.T) {
	chdirTemp(t)
	tests := []struct {
		name string
		body string
		want string
	}{
		{
			name: "неизвестное хранилище",
			body: "auth:\n  hmac_secret: s\nstorage:\n  type: json\n",
			want: "unknown storage.type",
		},
		{
			name: "вебхук без адреса",
			body: "auth:\n  hmac_secret: s\ntelegram_bot:\n  token: t\n  mode: webhook\n",
			want: "webhook_url",
		},
		{
			name: "неизвестный режим",
			body: "auth:\n  hmac_secret: s\ntelegram_bot:\n  mode: push\n",
			want: "unknown telegram_bot.mode",
		},
		{
			name: "нечего запускать",
			body: "server:\n  enabled: false\n",
			want: "neither",
		},
		{
			name: "нет секрета",
			body: "server:\n  enabled: true\n",
			want: "hmac_secret",
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := LoadConfig(writeConfig(t, tt.body))
			assert.ErrorContains(t, err, tt.want)
		})
	}
}

func TestLoadConfig_MissingFile(t *testing.T) {
	_, err := LoadConfig(filepath.Join(t.TempDir(), "absent.yaml"))
	assert.Error(t, err)
}
