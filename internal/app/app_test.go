package app

import (
	"context"
	"testing"
	"time"

	"github.com/IT-Nick/quantum-quiz/internal/infra/config"
	"github.com/stretchr/testify/require"
)

func testConfig() *config.Config {
	cfg := &config.Config{}
	cfg.Server.Enabled = true
	cfg.Server.Host = "127.0.0.1"
	cfg.Server.Port = "0"
	cfg.Server.PublicURL = "https://quiz.example"
	cfg.Server.RequestTimeout = 5 * time.Second
	cfg.Server.CORSOrigins = []string{"*"}
	cfg.TelegramBot.Username = "quantum_quiz_bot"
	cfg.TelegramBot.Mode = config.ModePolling
	cfg.Storage.Type = config.StorageMemory
	cfg.Auth.HMACSecret = "test-secret"
	cfg.Auth.Issuer = "quantum-quiz"
	cfg.Auth.TokenTTL = time.Hour
	return cfg
}

func newTestApp(t *testing.T) *App {
	t.Helper()
	a, err := NewAppWithConfig(context.Background(), testConfig())
	require.NoError(t, err)
	t.Cleanup(a.Close)
	return a
}
