package config

import (
	"fmt"
	"os"

	"github.com/BurntSushi/toml"

	"github.com/Johnsonbros/JohnsonBros.com-sub004/internal/domain"
)

// Config is the full service configuration, loaded from config.toml.
type Config struct {
	Server      ServerConfig      `toml:"server"`
	Logs        LogsConfig        `toml:"logs"`
	Metrics     MetricsConfig     `toml:"metrics"`
	Housecall   HousecallConfig   `toml:"housecall"`
	Booking     BookingConfig     `toml:"booking"`
	Capacity    CapacityConfig    `toml:"capacity"`
	ServiceArea ServiceAreaConfig `toml:"service_area"`
	Database    DatabaseConfig    `toml:"database"`
}

type ServerConfig struct {
	HTTPPort        int `toml:"http_port"`
	ReadTimeout     int `toml:"read_timeout"`     // seconds
	WriteTimeout    int `toml:"write_timeout"`    // seconds
	IdleTimeout     int `toml:"idle_timeout"`     // seconds
	ShutdownTimeout int `toml:"shutdown_timeout"` // seconds
}

type LogsConfig struct {
	File  string `toml:"file"`
	Level string `toml:"level"`
}

type MetricsConfig struct {
	Enabled     bool   `toml:"enabled"`
	ServiceName string `toml:"service_name"`
	Path        string `toml:"path"`
}

// HousecallConfig points at the field-service CRM. The API key can come
// from the environment (HOUSECALL_API_KEY) instead of the file.
type HousecallConfig struct {
	URL      string `toml:"url"`
	APIKey   string `toml:"api_key"`
	Timeout  int    `toml:"timeout"` // seconds, per upstream call
	PageSize int    `toml:"page_size"`
}

type BookingConfig struct {
	Timezone          string `toml:"timezone"`
	NotifyOnBooked    bool   `toml:"notify_on_booked"`
	DefaultLeadSource string `toml:"default_lead_source"`
}

// CapacityConfig carries the capacity policy: snapshot TTL, the score
// boundaries between the four states, and how far ahead a window may
// start and still count as "express".
type CapacityConfig struct {
	SnapshotTTLMinutes int `toml:"snapshot_ttl_minutes"`
	FeeWaivedMax       int `toml:"fee_waived_max"`
	LimitedSameDayMax  int `toml:"limited_same_day_max"`
	NextDayMax         int `toml:"next_day_max"`
	ExpressLeadHours   int `toml:"express_lead_hours"`
}

// Thresholds returns the configured score boundaries.
func (c CapacityConfig) Thresholds() domain.CapacityThresholds {
	return domain.CapacityThresholds{
		FeeWaivedMax:      c.FeeWaivedMax,
		LimitedSameDayMax: c.LimitedSameDayMax,
		NextDayMax:        c.NextDayMax,
	}
}

type ServiceAreaConfig struct {
	ExtraZips []string `toml:"extra_zips"`
}

// DatabaseConfig enables the optional booking-log store. When disabled
// the engine runs fully stateless.
type DatabaseConfig struct {
	Enabled         bool   `toml:"enabled"`
	Host            string `toml:"host"`
	Port            int    `toml:"port"`
	User            string `toml:"user"`
	Password        string `toml:"password"`
	DBName          string `toml:"dbname"`
	SSLMode         string `toml:"sslmode"`
	MaxOpenConns    int    `toml:"max_open_conns"`
	MaxIdleConns    int    `toml:"max_idle_conns"`
	ConnMaxLifetime int    `toml:"conn_max_lifetime"` // seconds
}

// DSN builds the lib/pq connection string.
func (d DatabaseConfig) DSN() string {
	return fmt.Sprintf("host=%s port=%d user=%s password=%s dbname=%s sslmode=%s",
		d.Host, d.Port, d.User, d.Password, d.DBName, d.SSLMode)
}

// Load reads and validates the configuration file.
func Load(path string) (*Config, error) {
	cfg := defaults()

	if _, err := toml.DecodeFile(path, cfg); err != nil {
		return nil, fmt.Errorf("config: decode %s: %w", path, err)
	}

	if cfg.Housecall.APIKey == "" {
		cfg.Housecall.APIKey = os.Getenv("HOUSECALL_API_KEY")
	}

	if err := cfg.validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}

func defaults() *Config {
	return &Config{
		Server: ServerConfig{
			HTTPPort:        8080,
			ReadTimeout:     15,
			WriteTimeout:    15,
			IdleTimeout:     60,
			ShutdownTimeout: 10,
		},
		Logs:    LogsConfig{Level: "info"},
		Metrics: MetricsConfig{ServiceName: "bros-booking-engine", Path: "/metrics"},
		Housecall: HousecallConfig{
			Timeout:  10,
			PageSize: 25,
		},
		Booking: BookingConfig{
			Timezone:          domain.DefaultTimezone,
			NotifyOnBooked:    true,
			DefaultLeadSource: "website_chat",
		},
		Capacity: CapacityConfig{
			SnapshotTTLMinutes: 5,
			FeeWaivedMax:       domain.DefaultCapacityThresholds.FeeWaivedMax,
			LimitedSameDayMax:  domain.DefaultCapacityThresholds.LimitedSameDayMax,
			NextDayMax:         domain.DefaultCapacityThresholds.NextDayMax,
			ExpressLeadHours:   3,
		},
		Database: DatabaseConfig{
			Port:            5432,
			SSLMode:         "disable",
			MaxOpenConns:    10,
			MaxIdleConns:    5,
			ConnMaxLifetime: 300,
		},
	}
}

func (c *Config) validate() error {
	if c.Housecall.URL == "" {
		return fmt.Errorf("config: housecall.url is required")
	}
	if c.Housecall.APIKey == "" {
		return fmt.Errorf("config: housecall.api_key is required (or HOUSECALL_API_KEY)")
	}
	if !c.Capacity.Thresholds().Valid() {
		return fmt.Errorf("config: capacity thresholds must satisfy 0 < fee_waived_max < limited_same_day_max < next_day_max <= 100")
	}
	if c.Capacity.SnapshotTTLMinutes <= 0 {
		return fmt.Errorf("config: capacity.snapshot_ttl_minutes must be positive")
	}
	if c.Database.Enabled && c.Database.Host == "" {
		return fmt.Errorf("config: database.host is required when database.enabled")
	}
	return nil
}
