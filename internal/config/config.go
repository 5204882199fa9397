package config

import (
	"fmt"

	"github.com/BurntSushi/toml"
)

// Config конфигурация сервиса, загружается из TOML файла
type Config struct {
	Server     ServerConfig     `toml:"server"`
	Database   DatabaseConfig   `toml:"database"`
	Logs       LogsConfig       `toml:"logs"`
	Metrics    MetricsConfig    `toml:"metrics"`
	Scheduling SchedulingConfig `toml:"scheduling"`
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

// LogsConfig настройки логирования
type LogsConfig struct {
	File         string `toml:"file"`
	Level        string `toml:"level"`
	ActivityFile string `toml:"activity_file"`
}

// MetricsConfig настройки prometheus-метрик
type MetricsConfig struct {
	Enabled     bool   `toml:"enabled"`
	Path        string `toml:"path"`
	ServiceName string `toml:"service_name"`
}

// SchedulingConfig правила планирования встреч.
//
// operating_hours задает окно, в котором встречи ПРОВЕРЯЮТСЯ
// (закрытие = opening_time + operating_hours). slot_window_hours задает окно,
// из которого клиентский UI предлагает слоты начала. Исторически эти окна
// различаются (14 против 13 часов); оба вынесены в конфигурацию отдельными
// полями, чтобы расхождение было видно и управляемо.
type SchedulingConfig struct {
	BusinessTimeZone      string `toml:"business_time_zone"`
	OpeningTime           string `toml:"opening_time"`
	OperatingHours        int    `toml:"operating_hours"`
	SlotWindowHours       int    `toml:"slot_window_hours"`
	MaxAppointmentHours   int    `toml:"max_appointment_hours"`
	ImminentWindowMinutes int    `toml:"imminent_window_minutes"`
}

// Load читает конфигурацию из TOML файла
func Load(path string) (*Config, error) {
	var cfg Config
	if _, err := toml.DecodeFile(path, &cfg); err != nil {
		return nil, fmt.Errorf("config: failed to decode %s: %w", path, err)
	}

	if err := cfg.validate(); err != nil {
		return nil, fmt.Errorf("config: %w", err)
	}
	return &cfg, nil
}

// DSN собирает строку подключения к postgres
func (d DatabaseConfig) DSN() string {
	return fmt.Sprintf("host=%s port=%d user=%s password=%s dbname=%s sslmode=%s",
		d.Host, d.Port, d.User, d.Password, d.DBName, d.SSLMode)
}

func (c *Config) validate() error {
	if c.Server.HTTPPort <= 0 {
		return fmt.Errorf("server.http_port must be positive")
	}
	if c.Database.Host == "" || c.Database.DBName == "" {
		return fmt.Errorf("database.host and database.dbname are required")
	}
	if c.Logs.File == "" {
		return fmt.Errorf("logs.file is required")
	}
	if c.Scheduling.BusinessTimeZone == "" {
		return fmt.Errorf("scheduling.business_time_zone is required")
	}
	if c.Scheduling.OperatingHours <= 0 || c.Scheduling.OperatingHours > 24 {
		return fmt.Errorf("scheduling.operating_hours must be in (0, 24]")
	}
	if c.Scheduling.SlotWindowHours <= 0 || c.Scheduling.SlotWindowHours > c.Scheduling.OperatingHours {
		return fmt.Errorf("scheduling.slot_window_hours must be in (0, operating_hours]")
	}
	if c.Scheduling.MaxAppointmentHours <= 0 {
		return fmt.Errorf("scheduling.max_appointment_hours must be positive")
	}
	return nil
}
