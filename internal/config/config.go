package config

import (
	"errors"
	"fmt"
	"os"
	"strings"

	"github.com/BurntSushi/toml"
)

// Config конфигурация сервиса
type Config struct {
	Server    ServerConfig    `toml:"server"`
	Database  DatabaseConfig  `toml:"database"`
	Logs      LogsConfig      `toml:"logs"`
	Metrics   MetricsConfig   `toml:"metrics"`
	Auth      AuthConfig      `toml:"auth"`
	RateLimit RateLimitConfig `toml:"rate_limit"`
	Redis     RedisConfig     `toml:"redis"`
	Kafka     KafkaConfig     `toml:"kafka"`
	Booking   BookingConfig   `toml:"booking"`
}

// ServerConfig настройки HTTP сервера (таймауты в секундах)
type ServerConfig struct {
	HTTPPort        int `toml:"http_port"`
	ReadTimeout     int `toml:"read_timeout"`
	WriteTimeout    int `toml:"write_timeout"`
	IdleTimeout     int `toml:"idle_timeout"`
	ShutdownTimeout int `toml:"shutdown_timeout"`
}

// DatabaseConfig настройки подключения к Postgres
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

// LogsConfig настройки логирования
type LogsConfig struct {
	Level string `toml:"level"`
	File  string `toml:"file"`
}

// MetricsConfig настройки prometheus
type MetricsConfig struct {
	Enabled     bool   `toml:"enabled"`
	Path        string `toml:"path"`
	ServiceName string `toml:"service_name"`
}

// AuthConfig настройки сессионных токенов
type AuthConfig struct {
	JWTSecret     string `toml:"jwt_secret"`
	Issuer        string `toml:"issuer"`
	TokenTTLHours int    `toml:"token_ttl_hours"`
}

// RateLimitConfig лимит запросов на публичное создание бронирований
type RateLimitConfig struct {
	Enabled       bool `toml:"enabled"`
	Limit         int  `toml:"limit"`
	WindowSeconds int  `toml:"window_seconds"`
	FailOpen      bool `toml:"fail_open"`
}

// RedisConfig подключение к Redis (пустой Addr - лимитер в памяти)
type RedisConfig struct {
	Addr     string `toml:"addr"`
	Password string `toml:"password"`
	DB       int    `toml:"db"`
}

// KafkaConfig публикация событий бронирований
type KafkaConfig struct {
	Enabled bool     `toml:"enabled"`
	Brokers []string `toml:"brokers"`
	Topic   string   `toml:"topic"`
}

// BookingConfig параметры генерации слотов
type BookingConfig struct {
	SlotStepMinutes int  `toml:"slot_step_minutes"`
	StaticSlots     bool `toml:"static_slots"`
}

// DSN строка подключения для lib/pq
func (d DatabaseConfig) DSN() string {
	return fmt.Sprintf("host=%s port=%d user=%s password=%s dbname=%s sslmode=%s",
		d.Host, d.Port, d.User, d.Password, d.DBName, d.SSLMode)
}

// Load читает конфигурацию из TOML файла, применяет значения по умолчанию
// и переопределения из окружения
func Load(path string) (*Config, error) {
	cfg := Default()

	if _, err := toml.DecodeFile(path, cfg); err != nil {
		return nil, fmt.Errorf("config: decode %s: %w", path, err)
	}

	applyEnv(cfg)
	cfg.applyDefaults()

	if err := cfg.Validate(); err != nil {
		return nil, err
	}

	return cfg, nil
}

// Default конфигурация по умолчанию
func Default() *Config {
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
		},
		Metrics: MetricsConfig{
			Path:        "/metrics",
			ServiceName: "lummoo-core",
		},
		Auth: AuthConfig{
			Issuer:        "lummoo-core",
			TokenTTLHours: 24,
		},
		RateLimit: RateLimitConfig{
			Limit:         30,
			WindowSeconds: 60,
			FailOpen:      true,
		},
		Kafka: KafkaConfig{
			Topic: "bookings.created",
		},
		Booking: BookingConfig{
			SlotStepMinutes: 30,
		},
	}
}

func (c *Config) applyDefaults() {
	if c.Booking.SlotStepMinutes <= 0 {
		c.Booking.SlotStepMinutes = 30
	}
	if c.Metrics.Path == "" {
		c.Metrics.Path = "/metrics"
	}
	if c.Auth.TokenTTLHours <= 0 {
		c.Auth.TokenTTLHours = 24
	}
}

// Validate проверяет обязательные параметры
func (c *Config) Validate() error {
	var errs []error

	if c.Server.HTTPPort <= 0 {
		errs = append(errs, errors.New("server.http_port must be positive"))
	}
	if c.Database.Host == "" || c.Database.DBName == "" {
		errs = append(errs, errors.New("database.host and database.dbname are required"))
	}
	if strings.TrimSpace(c.Auth.JWTSecret) == "" {
		errs = append(errs, errors.New("auth.jwt_secret is required (or AUTH_JWT_SECRET)"))
	}
	if c.Kafka.Enabled && len(c.Kafka.Brokers) == 0 {
		errs = append(errs, errors.New("kafka.brokers are required when kafka is enabled"))
	}

	if len(errs) > 0 {
		return fmt.Errorf("config: invalid: %w", errors.Join(errs...))
	}
	return nil
}

func applyEnv(c *Config) {
	if v := os.Getenv("DATABASE_PASSWORD"); v != "" {
		c.Database.Password = v
	}
	if v := os.Getenv("AUTH_JWT_SECRET"); v != "" {
		c.Auth.JWTSecret = v
	}
	if v := os.Getenv("REDIS_PASSWORD"); v != "" {
		c.Redis.Password = v
	}
}
