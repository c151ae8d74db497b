package config

import (
	"errors"
	"fmt"
	"os"
	"strings"

	"github.com/BurntSushi/toml"

	"github.com/m04kA/SMC-VideoLinkBookingService/internal/domain"
	"github.com/m04kA/SMC-VideoLinkBookingService/pkg/types"
)

var (
	// ErrReadConfig возвращается, если файл конфигурации не удалось прочитать или разобрать
	ErrReadConfig = errors.New("config: failed to read config file")

	// ErrInvalidConfig возвращается, если значения конфигурации некорректны
	ErrInvalidConfig = errors.New("config: invalid config")
)

// Config конфигурация сервиса
type Config struct {
	Server            ServerConfig            `toml:"server"`
	Database          DatabaseConfig          `toml:"database"`
	Logs              LogsConfig              `toml:"logs"`
	Metrics           MetricsConfig           `toml:"metrics"`
	SchedulingService SchedulingServiceConfig `toml:"scheduling_service"`
	Cache             CacheConfig             `toml:"cache"`
	RateLimit         RateLimitConfig         `toml:"rate_limit"`
	Search            SearchConfig            `toml:"search"`
}

// ServerConfig настройки HTTP сервера (таймауты в секундах)
type ServerConfig struct {
	HTTPPort        int `toml:"http_port"`
	ReadTimeout     int `toml:"read_timeout"`
	WriteTimeout    int `toml:"write_timeout"`
	IdleTimeout     int `toml:"idle_timeout"`
	ShutdownTimeout int `toml:"shutdown_timeout"`
}

// DatabaseConfig настройки подключения к PostgreSQL
type DatabaseConfig struct {
	Host            string `toml:"host"`
	Port            int    `toml:"port"`
	User            string `toml:"user"`
	Password        string `toml:"password"`
	DBName          string `toml:"dbname"`
	SSLMode         string `toml:"sslmode"`
	MaxOpenConns    int    `toml:"max_open_conns"`
	MaxIdleConns    int    `toml:"max_idle_conns"`
	ConnMaxLifetime int    `toml:"conn_max_lifetime"`
}

// DSN строка подключения для lib/pq
func (c DatabaseConfig) DSN() string {
	return fmt.Sprintf("host=%s port=%d user=%s password=%s dbname=%s sslmode=%s",
		c.Host, c.Port, c.User, c.Password, c.DBName, c.SSLMode)
}

// LogsConfig настройки логирования
type LogsConfig struct {
	Level string `toml:"level"`
	File  string `toml:"file"`
}

// MetricsConfig настройки Prometheus метрик
type MetricsConfig struct {
	Enabled     bool   `toml:"enabled"`
	Path        string `toml:"path"`
	ServiceName string `toml:"service_name"`
}

// SchedulingServiceConfig настройки клиента системы расписаний тюрем
type SchedulingServiceConfig struct {
	URL            string `toml:"url"`
	Timeout        int    `toml:"timeout"`
	MaxConcurrency int    `toml:"max_concurrency"`
}

// CacheConfig настройки Redis кэша списков комнат
type CacheConfig struct {
	Enabled  bool   `toml:"enabled"`
	Addr     string `toml:"addr"`
	Password string `toml:"password"`
	DB       int    `toml:"db"`
	TTL      int    `toml:"ttl"`
}

// RateLimitConfig ограничение частоты запросов на клиента
type RateLimitConfig struct {
	Enabled           bool    `toml:"enabled"`
	RequestsPerSecond float64 `toml:"requests_per_second"`
	Burst             int     `toml:"burst"`
}

// SearchConfig настройки поиска по умолчанию (если у учреждения нет своих)
type SearchConfig struct {
	DayStart        string `toml:"day_start"`
	DayEnd          string `toml:"day_end"`
	StepMinutes     int    `toml:"step_minutes"`
	MaxAlternatives int    `toml:"max_alternatives"`
}

// ToDomain преобразует настройки поиска по умолчанию в доменную модель
func (c SearchConfig) ToDomain() (*domain.SearchSettings, error) {
	dayStart, err := types.ParseTimeOfDay(c.DayStart)
	if err != nil {
		return nil, fmt.Errorf("%w: search.day_start: %v", ErrInvalidConfig, err)
	}
	dayEnd, err := types.ParseTimeOfDay(c.DayEnd)
	if err != nil {
		return nil, fmt.Errorf("%w: search.day_end: %v", ErrInvalidConfig, err)
	}

	return &domain.SearchSettings{
		DayStart:        dayStart,
		DayEnd:          dayEnd,
		StepMinutes:     c.StepMinutes,
		MaxAlternatives: c.MaxAlternatives,
	}, nil
}

// Load читает конфигурацию из TOML файла, применяет значения по умолчанию,
// переопределения из переменных окружения и проверяет результат
func Load(path string) (*Config, error) {
	cfg := defaults()

	if _, err := toml.DecodeFile(path, cfg); err != nil {
		return nil, fmt.Errorf("%w: %s: %v", ErrReadConfig, path, err)
	}

	cfg.applyEnv()

	if err := cfg.Validate(); err != nil {
		return nil, err
	}

	return cfg, nil
}

func defaults() *Config {
	return &Config{
		Server: ServerConfig{
			HTTPPort:        8080,
			ReadTimeout:     10,
			WriteTimeout:    10,
			IdleTimeout:     60,
			ShutdownTimeout: 15,
		},
		Database: DatabaseConfig{
			Host:            "localhost",
			Port:            5432,
			SSLMode:         "disable",
			MaxOpenConns:    25,
			MaxIdleConns:    5,
			ConnMaxLifetime: 300,
		},
		Logs: LogsConfig{
			Level: "info",
			File:  "logs/service.log",
		},
		Metrics: MetricsConfig{
			Path:        "/metrics",
			ServiceName: "videolinkbookingservice",
		},
		SchedulingService: SchedulingServiceConfig{
			Timeout:        5,
			MaxConcurrency: 4,
		},
		Cache: CacheConfig{
			Addr: "localhost:6379",
			TTL:  300,
		},
		RateLimit: RateLimitConfig{
			RequestsPerSecond: 10,
			Burst:             20,
		},
		Search: SearchConfig{
			DayStart:        domain.DefaultDayStart,
			DayEnd:          domain.DefaultDayEnd,
			StepMinutes:     domain.DefaultStepMinutes,
			MaxAlternatives: domain.DefaultMaxAlternatives,
		},
	}
}

func (c *Config) applyEnv() {
	if v := os.Getenv("DB_PASSWORD"); v != "" {
		c.Database.Password = v
	}
	if v := os.Getenv("DB_HOST"); v != "" {
		c.Database.Host = v
	}
	if v := os.Getenv("SCHEDULING_SERVICE_URL"); v != "" {
		c.SchedulingService.URL = v
	}
	if v := os.Getenv("REDIS_ADDR"); v != "" {
		c.Cache.Addr = v
	}
}

// Validate проверяет обязательные поля и границы значений
func (c *Config) Validate() error {
	if c.Server.HTTPPort <= 0 || c.Server.HTTPPort > 65535 {
		return fmt.Errorf("%w: server.http_port=%d", ErrInvalidConfig, c.Server.HTTPPort)
	}
	if c.Database.DBName == "" {
		return fmt.Errorf("%w: database.dbname is required", ErrInvalidConfig)
	}
	if strings.TrimSpace(c.SchedulingService.URL) == "" {
		return fmt.Errorf("%w: scheduling_service.url is required", ErrInvalidConfig)
	}
	if c.SchedulingService.Timeout <= 0 {
		return fmt.Errorf("%w: scheduling_service.timeout must be positive", ErrInvalidConfig)
	}
	if c.SchedulingService.MaxConcurrency <= 0 {
		return fmt.Errorf("%w: scheduling_service.max_concurrency must be positive", ErrInvalidConfig)
	}
	if c.Cache.Enabled && c.Cache.TTL <= 0 {
		return fmt.Errorf("%w: cache.ttl must be positive", ErrInvalidConfig)
	}
	if c.RateLimit.Enabled && (c.RateLimit.RequestsPerSecond <= 0 || c.RateLimit.Burst <= 0) {
		return fmt.Errorf("%w: rate_limit requires positive requests_per_second and burst", ErrInvalidConfig)
	}

	search, err := c.Search.ToDomain()
	if err != nil {
		return err
	}
	if _, err := search.DayWindow(); err != nil {
		return fmt.Errorf("%w: search window: %v", ErrInvalidConfig, err)
	}
	if search.StepMinutes < domain.MinStepMinutes || search.StepMinutes > domain.MaxStepMinutes {
		return fmt.Errorf("%w: search.step_minutes=%d", ErrInvalidConfig, search.StepMinutes)
	}
	if search.MaxAlternatives < domain.MinMaxAlternatives || search.MaxAlternatives > domain.MaxMaxAlternatives {
		return fmt.Errorf("%w: search.max_alternatives=%d", ErrInvalidConfig, search.MaxAlternatives)
	}

	return nil
}
