package config

import (
	"fmt"

	"github.com/BurntSushi/toml"
)

// Config конфигурация сервиса, загружается из config.toml
type Config struct {
	Server             ServerConfig       `toml:"server"`
	Logs               LogsConfig         `toml:"logs"`
	Metrics            MetricsConfig      `toml:"metrics"`
	Cache              CacheConfig        `toml:"cache"`
	Generator          GeneratorConfig    `toml:"generator"`
	DoctorService      CollaboratorConfig `toml:"doctor_service"`
	AppointmentService CollaboratorConfig `toml:"appointment_service"`
}

// ServerConfig настройки HTTP сервера
type ServerConfig struct {
	HTTPPort        int `toml:"http_port"`
	ReadTimeout     int `toml:"read_timeout"`     // секунды
	WriteTimeout    int `toml:"write_timeout"`    // секунды
	IdleTimeout     int `toml:"idle_timeout"`     // секунды
	ShutdownTimeout int `toml:"shutdown_timeout"` // секунды
}

// LogsConfig настройки логирования
type LogsConfig struct {
	File  string `toml:"file"`
	Level string `toml:"level"`
}

// MetricsConfig настройки prometheus метрик
type MetricsConfig struct {
	Enabled     bool   `toml:"enabled"`
	Path        string `toml:"path"`
	ServiceName string `toml:"service_name"`
}

// CacheConfig настройки кэша расписаний и занятых окон
type CacheConfig struct {
	Enabled bool `toml:"enabled"`
	Size    int  `toml:"size"` // количество докторов в LRU
}

// GeneratorConfig настройки генератора слотов
type GeneratorConfig struct {
	// StrictOverlapCheck включает проверку занятости по пересечению интервалов
	// вместо точного совпадения меток. По умолчанию выключена - поведение
	// совпадает с проверкой по меткам, под которой создавались существующие записи
	StrictOverlapCheck bool `toml:"strict_overlap_check"`
}

// CollaboratorConfig настройки клиента внешнего сервиса
type CollaboratorConfig struct {
	URL     string `toml:"url"`
	Timeout int    `toml:"timeout"` // секунды
}

// Load загружает конфигурацию из toml файла
func Load(path string) (*Config, error) {
	cfg := &Config{
		Server: ServerConfig{
			HTTPPort:        8080,
			ReadTimeout:     15,
			WriteTimeout:    15,
			IdleTimeout:     60,
			ShutdownTimeout: 10,
		},
		Logs: LogsConfig{
			Level: "info",
		},
		Cache: CacheConfig{
			Enabled: true,
			Size:    128,
		},
	}

	if _, err := toml.DecodeFile(path, cfg); err != nil {
		return nil, fmt.Errorf("config: failed to decode %s: %w", path, err)
	}

	if cfg.DoctorService.URL == "" {
		return nil, fmt.Errorf("config: doctor_service.url is required")
	}
	if cfg.AppointmentService.URL == "" {
		return nil, fmt.Errorf("config: appointment_service.url is required")
	}

	return cfg, nil
}
