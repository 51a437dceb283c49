package poller

import (
	"testing"
	"time"

	"github.com/IT-Nick/quantum-quiz/internal/infra/config"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gopkg.in/telebot.v4"
)

func TestNewPoller(t *testing.T) {
	cfg := &config.Config{}
	cfg.TelegramBot.Mode = config.ModePolling
	cfg.TelegramBot.PollTimeout = 3 * time.Second

	lp, ok := NewPoller(cfg).(*telebot.LongPoller)
	require.True(t, ok)
	assert.Equal(t, 3*time.Second, lp.Timeout)

	cfg.TelegramBot.Mode = config.ModeWebhook
	cfg.TelegramBot.WebhookURL = "https://bot.example/hook"
	cfg.TelegramBot.ListenAddr = ":8443"

	wh, ok := NewPoller(cfg).(*telebot.Webhook)
	require.True(t, ok)
	assert.Equal(t, ":8443", wh.Listen)
	assert.Equal(t, "https://bot.example/hook", wh.Endpoint.PublicURL)
}
