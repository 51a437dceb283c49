/*
MIT License

Copyright (c) 2025 Первый Бит

Данная лицензия разрешает использование, копирование, изменение, слияние, публикацию, распространение,
лицензирование и/или продажу копий программного обеспечения при соблюдении следующих условий:

В вышеуказанном уведомлении об авторских правах и данном уведомлении о разрешении должны быть включены все копии
или значимые части программного обеспечения.

ПРОГРАММНОЕ ОБЕСПЕЧЕНИЕ ПРЕДОСТАВЛЯЕТСЯ "КАК ЕСТЬ", БЕЗ ГАРАНТИЙ ЛЮБОГО РОДА, ЯВНЫХ ИЛИ ПОДРАЗУМЕВАЕМЫХ,
ВКЛЮЧАЯ, НО НЕ ОГРАНИЧИВАЯСЬ, ГАРАНТИЯМИ КОММЕРЧЕСКОЙ ПРИГОДНОСТИ, СООТВЕТСТВИЯ ДЛЯ ОПРЕДЕЛЕННОЙ ЦЕЛИ И
НЕНАРУШЕНИЯ ПРАВ. НИ В КОЕМ СЛУЧАЕ АВТОРЫ ИЛИ ПРАВООБЛАДАТЕЛИ НЕ НЕСУТ ОТВЕТСТВЕННОСТИ ПО ИСКАМ,
УСЛОВИЯМ, ДАМГЕ или другим обязательствам, возникающим из, или в связи с использованием, или иным образом
связанным с данным программным обеспечением.
*/

package config

import (
	"errors"
	"fmt"
	"os"
	"strconv"
	"strings"
	"time"

	"github.com/joho/godotenv"
	"gopkg.in/yaml.v3"
)

// Режимы получения обновлений Telegram
const (
	ModePolling = "polling"
	ModeWebhook = "webhook"
)

// Типы хранилища сессий
const (
	StorageMemory   = "memory"
	StorageRedis    = "redis"
	StorageSQLite   = "sqlite"
	StoragePostgres = "postgres"
)

type Config struct {
	Server struct {
		Enabled        bool          `yaml:"enabled"`
		Host           string        `yaml:"host"`
		Port           string        `yaml:"port"`
		PublicURL      string        `yaml:"public_url"`
		CORSOrigins    []string      `yaml:"cors_origins"`
		RequestTimeout time.Duration `yaml:"request_timeout"`
	} `yaml:"server"`
	TelegramBot struct {
		Token       string        `yaml:"token"`
		Username    string        `yaml:"username"`
		Mode        string        `yaml:"mode"`
		WebhookURL  string        `yaml:"webhook_url"`
		ListenAddr  string        `yaml:"listen_addr"`
		PollTimeout time.Duration `yaml:"poll_timeout"`
		Debug       bool          `yaml:"debug"`
	} `yaml:"telegram_bot"`
	Database struct {
		Host     string `yaml:"host"`
		Port     string `yaml:"port"`
		User     string `yaml:"user"`
		Password string `yaml:"password"`
		Name     string `yaml:"dbname"`
	} `yaml:"database"`
	Storage struct {
		Type string `yaml:"type"`
		DSN  string `yaml:"dsn"`
	} `yaml:"storage"`
	Redis struct {
		Addr     string        `yaml:"addr"`
		Password string        `yaml:"password"`
		DB       int           `yaml:"db"`
		TTL      time.Duration `yaml:"ttl"`
	} `yaml:"redis"`
	Auth struct {
		HMACSecret string        `yaml:"hmac_secret"`
		Issuer     string        `yaml:"issuer"`
		TokenTTL   time.Duration `yaml:"token_ttl"`
	} `yaml:"auth"`
}

// LoadConfig читает YAML-файл, затем .env и переменные окружения, которые имеют приоритет.
// Пустое имя файла означает конфигурацию только из окружения.
func LoadConfig(filename string) (*Config, error) {
	config := &Config{}
	config.Server.Enabled = true

	if filename != "" {
		f, err := os.Open(filename)
		if err != nil {
			return nil, err
		}

		defer func(f *os.File) {
			err := f.Close()
			if err != nil {
				fmt.Println("f.Close() failed ", err)
			}
		}(f)

		if err := yaml.NewDecoder(f).Decode(config); err != nil {
			return nil, fmt.Errorf("decode %s: %w", filename, err)
		}
	}

	// Файл .env необязателен
	_ = godotenv.Load()

	config.applyEnv()
	config.applyDefaults()

	if err := config.Validate(); err != nil {
		return nil, err
	}
	return config, nil
}

func (c *Config) applyEnv() {
	c.TelegramBot.Token = envOr("TELEGRAM_BOT_TOKEN", c.TelegramBot.Token)
	c.TelegramBot.Username = envOr("TELEGRAM_BOT_USERNAME", c.TelegramBot.Username)
	c.TelegramBot.Mode = envOr("BOT_MODE", c.TelegramBot.Mode)
	c.TelegramBot.WebhookURL = envOr("WEBHOOK_URL", c.TelegramBot.WebhookURL)
	c.TelegramBot.ListenAddr = envOr("LISTEN_ADDR", c.TelegramBot.ListenAddr)
	c.TelegramBot.Debug = envBool("DEBUG", c.TelegramBot.Debug)
	if v := os.Getenv("POLL_INTERVAL"); v != "" {
		if n, err := strconv.Atoi(v); err == nil {
			c.TelegramBot.PollTimeout = time.Duration(n) * time.Second
		}
	}

	c.Server.Enabled = envBool("HTTP_ENABLED", c.Server.Enabled)
	c.Server.Port = envOr("HTTP_PORT", c.Server.Port)
	c.Server.PublicURL = envOr("PUBLIC_URL", c.Server.PublicURL)
	if v := os.Getenv("CORS_ORIGINS"); v != "" {
		c.Server.CORSOrigins = splitCSV(v)
	}

	c.Database.Password = envOr("DB_PASSWORD", c.Database.Password)
	c.Storage.Type = envOr("STORAGE_TYPE", c.Storage.Type)
	c.Storage.DSN = envOr("STORAGE_DSN", c.Storage.DSN)
	c.Redis.Addr = envOr("REDIS_ADDR", c.Redis.Addr)
	c.Redis.Password = envOr("REDIS_PASSWORD", c.Redis.Password)
	c.Auth.HMACSecret = envOr("AUTH_HMAC_SECRET", c.Auth.HMACSecret)
}

func (c *Config) applyDefaults() {
	if c.Server.Host == "" {
		c.Server.Host = "0.0.0.0"
	}
	if c.Server.Port == "" {
		c.Server.Port = "8080"
	}
	if c.Server.RequestTimeout == 0 {
		c.Server.RequestTimeout = 15 * time.Second
	}
	if len(c.Server.CORSOrigins) == 0 {
		c.Server.CORSOrigins = []string{"*"}
	}
	if c.TelegramBot.Mode == "" {
		c.TelegramBot.Mode = ModePolling
	}
	if c.TelegramBot.ListenAddr == "" {
		c.TelegramBot.ListenAddr = ":8443"
	}
	if c.TelegramBot.PollTimeout == 0 {
		c.TelegramBot.PollTimeout = 10 * time.Second
	}
	if c.Storage.Type == "" {
		c.Storage.Type = StorageMemory
	}
	if c.Redis.Addr == "" {
		c.Redis.Addr = "localhost:6379"
	}
	if c.Redis.TTL == 0 {
		c.Redis.TTL = 24 * time.Hour
	}
	if c.Auth.Issuer == "" {
		c.Auth.Issuer = "quantum-quiz"
	}
	if c.Auth.TokenTTL == 0 {
		c.Auth.TokenTTL = 30 * 24 * time.Hour
	}
}

// Validate проверяет согласованность настроек
func (c *Config) Validate() error {
	var errs []error

	if !c.TelegramEnabled() && !c.Server.Enabled {
		errs = append(errs, errors.New("neither telegram_bot.token nor server.enabled is set"))
	}
	switch c.TelegramBot.Mode {
	case ModePolling:
	case ModeWebhook:
		if c.TelegramEnabled() && c.TelegramBot.WebhookURL == "" {
			errs = append(errs, errors.New("telegram_bot.webhook_url is required in webhook mode"))
		}
	default:
		errs = append(errs, fmt.Errorf("unknown telegram_bot.mode %q", c.TelegramBot.Mode))
	}
	switch c.Storage.Type {
	case StorageMemory, StorageRedis, StorageSQLite, StoragePostgres:
	default:
		errs = append(errs, fmt.Errorf("unknown storage.type %q", c.Storage.Type))
	}
	if c.Server.Enabled && c.Auth.HMACSecret == "" {
		errs = append(errs, errors.New("auth.hmac_secret is required when the HTTP server is enabled"))
	}

	return errors.Join(errs...)
}

// TelegramEnabled бот запускается только при заданном токене
func (c *Config) TelegramEnabled() bool { return c.TelegramBot.Token != "" }

// DatabaseEnabled реестр пользователей в PostgreSQL включается при заданном хосте
func (c *Config) DatabaseEnabled() bool { return c.Database.Host != "" }

// DatabaseURL строка подключения pgxpool
func (c *Config) DatabaseURL() string {
	return fmt.Sprintf("postgres://%s:%s@%s:%s/%s",
		c.Database.User, c.Database.Password, c.Database.Host, c.Database.Port, c.Database.Name)
}

// HTTPAddr адрес HTTP-сервера
func (c *Config) HTTPAddr() string {
	return fmt.Sprintf("%s:%s", c.Server.Host, c.Server.Port)
}

func envOr(k, def string) string {
	v := os.Getenv(k)
	if v == "" {
		return def
	}
	return v
}

func envBool(k string, def bool) bool {
	switch os.Getenv(k) {
	case "1", "true", "TRUE", "yes", "YES":
		return true
	case "0", "false", "FALSE", "no", "NO":
		return false
	default:
		return def
	}
}

func splitCSV(v string) []string {
	parts := strings.Split(v, ",")
	out := make([]string, 0, len(parts))
	for _, p := range parts {
		if s := strings.TrimSpace(p); s != "" {
			out = append(out, s)
		}
	}
	return out
}
