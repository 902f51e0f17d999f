// Package config собирает настройки клиента из флагов, переменных окружения
// SHOP_*, файла .env, необязательного YAML файла и значений по умолчанию.
package config

import (
	"errors"
	"fmt"
	"io/fs"
	"net/url"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/joho/godotenv"
	"github.com/rs/zerolog"
	"github.com/spf13/pflag"
	"github.com/spf13/viper"
)

// EnvPrefix - префикс переменных окружения
const EnvPrefix = "SHOP"

// Ключи конфигурации; совпадают с именами флагов
const (
	KeyConfig        = "config"
	KeyEnvFile       = "env-file"
	KeyServer        = "server"
	KeyDataDir       = "data-dir"
	KeySessionDB     = "session-db"
	KeyFavoritesDB   = "favorites-db"
	KeyKeyFile       = "key-file"
	KeyEncryptTokens = "encrypt-tokens"
	KeyTimeout       = "timeout"
	KeyLogLevel      = "log-level"
	KeyLogFormat     = "log-format"
	KeyMetricsAddr   = "metrics-addr"
	KeyMetricsPush   = "metrics-push-url"
	KeyOtelEndpoint  = "otel-endpoint"
	KeyFavoritesPoll = "favorites-poll"
)

// Значения по умолчанию
const (
	DefaultServer    = "http://localhost:8080"
	DefaultTimeout   = 30 * time.Second
	DefaultLogLevel  = "info"
	DefaultLogFormat = "console"
	DefaultPoll      = time.Second
)

// Config - итоговые настройки клиента. Пути к файлам уже абсолютные
// или разрешены относительно DataDir.
type Config struct {
	Server        string
	DataDir       string
	SessionDB     string
	FavoritesDB   string
	KeyFile       string
	LogLevel      string
	LogFormat     string
	MetricsAddr   string
	MetricsPush   string
	OtelEndpoint  string
	Timeout       time.Duration
	FavoritesPoll time.Duration
	EncryptTokens bool
}

// BindFlags регистрирует флаги конфигурации
func BindFlags(flags *pflag.FlagSet) {
	flags.String(KeyConfig, "", "Path to YAML config file")
	flags.String(KeyEnvFile, ".env", "Path to .env file (ignored if missing)")
	flags.String(KeyServer, DefaultServer, "Shop API base URL")
	flags.String(KeyDataDir, defaultDataDir(), "Directory for local state")
	flags.String(KeySessionDB, "session.db", "Session database file (relative to data-dir)")
	flags.String(KeyFavoritesDB, "favorites.db", "Favorites database file (relative to data-dir)")
	flags.String(KeyKeyFile, "session.key", "Token sealing key file (relative to data-dir)")
	flags.Bool(KeyEncryptTokens, true, "Encrypt tokens at rest")
	flags.Duration(KeyTimeout, DefaultTimeout, "HTTP request timeout")
	flags.String(KeyLogLevel, DefaultLogLevel, "Log level (trace, debug, info, warn, error)")
	flags.String(KeyLogFormat, DefaultLogFormat, "Log format (console, json)")
	flags.String(KeyMetricsAddr, "", "Address to serve Prometheus metrics on (empty = disabled)")
	flags.String(KeyMetricsPush, "", "Prometheus Pushgateway URL to push client metrics to on exit (empty = disabled)")
	flags.String(KeyOtelEndpoint, "", "OTLP gRPC endpoint for traces, host:port (empty = disabled)")
	flags.Duration(KeyFavoritesPoll, DefaultPoll, "How often live favorites feeds check for writes by other processes (0 = never)")
}

// Load reads the configuration. Priority: flags set on the command line,
// SHOP_* environment (including the .env file), config file, flag defaults.
func Load(flags *pflag.FlagSet) (Config, error) {
	v := viper.New()

	if err := v.BindPFlags(flags); err != nil {
		return Config{}, fmt.Errorf("failed to bind flags: %w", err)
	}

	v.SetEnvPrefix(EnvPrefix)
	v.SetEnvKeyReplacer(strings.NewReplacer("-", "_"))
	v.AutomaticEnv()

	// Путь к .env сам может прийти из SHOP_ENV_FILE.
	// .env не перезаписывает уже заданные переменные окружения.
	if envFile := v.GetString(KeyEnvFile); envFile != "" {
		if err := godotenv.Load(envFile); err != nil && !errors.Is(err, fs.ErrNotExist) {
			return Config{}, fmt.Errorf("failed to load env file: %w", err)
		}
	}

	if file := v.GetString(KeyConfig); file != "" {
		v.SetConfigFile(file)
		if err := v.ReadInConfig(); err != nil {
			return Config{}, fmt.Errorf("failed to read config file: %w", err)
		}
	}

	cfg := Config{
		Server:        strings.TrimRight(v.GetString(KeyServer), "/"),
		DataDir:       v.GetString(KeyDataDir),
		EncryptTokens: v.GetBool(KeyEncryptTokens),
		Timeout:       v.GetDuration(KeyTimeout),
		LogLevel:      strings.ToLower(v.GetString(KeyLogLevel)),
		LogFormat:     strings.ToLower(v.GetString(KeyLogFormat)),
		MetricsAddr:   v.GetString(KeyMetricsAddr),
		MetricsPush:   v.GetString(KeyMetricsPush),
		OtelEndpoint:  v.GetString(KeyOtelEndpoint),
		FavoritesPoll: v.GetDuration(KeyFavoritesPoll),
	}
	cfg.SessionDB = resolve(cfg.DataDir, v.GetString(KeySessionDB))
	cfg.FavoritesDB = resolve(cfg.DataDir, v.GetString(KeyFavoritesDB))
	cfg.KeyFile = resolve(cfg.DataDir, v.GetString(KeyKeyFile))

	if err := cfg.Validate(); err != nil {
		return Config{}, err
	}

	return cfg, nil
}

// Validate проверяет согласованность настроек
func (c Config) Validate() error {
	u, err := url.Parse(c.Server)
	if err != nil || (u.Scheme != "http" && u.Scheme != "https") || u.Host == "" {
		return fmt.Errorf("invalid server URL %q: must be http(s)://host", c.Server)
	}

	if c.Timeout <= 0 {
		return fmt.Errorf("timeout must be positive, got %s", c.Timeout)
	}

	if c.FavoritesPoll < 0 {
		return fmt.Errorf("favorites-poll cannot be negative, got %s", c.FavoritesPoll)
	}

	if c.MetricsPush != "" {
		if u, err := url.Parse(c.MetricsPush); err != nil || (u.Scheme != "http" && u.Scheme != "https") || u.Host == "" {
			return fmt.Errorf("invalid metrics push URL %q: must be http(s)://host", c.MetricsPush)
		}
	}

	if _, err := zerolog.ParseLevel(c.LogLevel); err != nil || c.LogLevel == "" {
		return fmt.Errorf("unknown log level %q", c.LogLevel)
	}

	if c.LogFormat != "console" && c.LogFormat != "json" {
		return fmt.Errorf("unknown log format %q", c.LogFormat)
	}

	if c.DataDir == "" {
		return fmt.Errorf("data-dir cannot be empty")
	}

	return nil
}

// EnsureDataDir создает каталог локального состояния
func (c Config) EnsureDataDir() error {
	if err := os.MkdirAll(c.DataDir, 0o700); err != nil {
		return fmt.Errorf("failed to create data dir: %w", err)
	}
	return nil
}

func resolve(dir, path string) string {
	if path == "" || filepath.IsAbs(path) {
		return path
	}
	return filepath.Join(dir, path)
}

func defaultDataDir() string {
	home, err := os.UserHomeDir()
	if err != nil {
		return ".gophershop"
	}
	return filepath.Join(home, ".gophershop")
}
