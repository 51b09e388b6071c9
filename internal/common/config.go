package common

import (
	"fmt"
	"os"
	"strconv"
	"time"

	"github.com/pelletier/go-toml/v2"
)

// Config represents the application configuration
type Config struct {
	Environment string          `toml:"environment"` // "development" or "production"
	Server      ServerConfig    `toml:"server"`
	Logging     LoggingConfig   `toml:"logging"`
	Storage     StorageConfig   `toml:"storage"`
	Catalog     CatalogConfig   `toml:"catalog"`
	Overpass    OverpassConfig  `toml:"overpass"`
	Map         MapConfig       `toml:"map"`
	Selection   SelectionConfig `toml:"selection"`
	Scheduler   SchedulerConfig `toml:"scheduler"`
	WebSocket   WebSocketConfig `toml:"websocket"`
}

type ServerConfig struct {
	Port int    `toml:"port"`
	Host string `toml:"host"`
}

type LoggingConfig struct {
	Level  string   `toml:"level"`  // "debug", "info", "warn", "error"
	Format string   `toml:"format"` // "json" or "text"
	Output []string `toml:"output"` // "stdout", "file"
}

type StorageConfig struct {
	Badger BadgerConfig `toml:"badger"`
}

// BadgerConfig represents BadgerDB-specific configuration
type BadgerConfig struct {
	Path           string `toml:"path"`             // Database directory path
	ResetOnStartup bool   `toml:"reset_on_startup"` // Delete database on startup for clean test runs
}

// CatalogConfig contains the primary gym catalog backend configuration
type CatalogConfig struct {
	BaseURL        string        `toml:"base_url"`        // Catalog API base URL, e.g. "http://localhost:5001"
	RequestTimeout time.Duration `toml:"request_timeout"` // HTTP request timeout
}

// OverpassConfig contains the Overpass POI discovery configuration
type OverpassConfig struct {
	Endpoint       string        `toml:"endpoint"`        // Overpass interpreter URL
	RadiusMeters   int           `toml:"radius_meters"`   // Discovery radius around the map center
	MaxResults     int           `toml:"max_results"`     // Element limit passed to "out center"
	RateLimit      time.Duration `toml:"rate_limit"`      // Minimum time between interpreter requests
	RequestTimeout time.Duration `toml:"request_timeout"` // HTTP request timeout
}

// MapConfig contains the initial map viewport used for the startup discovery query
type MapConfig struct {
	CenterLongitude float64 `toml:"center_longitude"`
	CenterLatitude  float64 `toml:"center_latitude"`
}

// SelectionConfig contains the selection machine tuning: camera movement and
// the sheet drag-release thresholds (threshold-gated, not proportional)
type SelectionConfig struct {
	FlyToZoom           float64 `toml:"fly_to_zoom"`           // Camera zoom level on verified-gym activation
	FlyToDurationMs     int     `toml:"fly_to_duration_ms"`    // Camera animation duration
	SheetCloseThreshold float64 `toml:"sheet_close_threshold"` // Downward drag offset that forces the sheet closed
	SheetOpenThreshold  float64 `toml:"sheet_open_threshold"`  // Upward drag offset that forces the sheet open
}

// SchedulerConfig contains the periodic rediscovery configuration
type SchedulerConfig struct {
	Enabled         bool   `toml:"enabled"`
	RefreshSchedule string `toml:"refresh_schedule"` // Cron schedule for re-running discovery
}

// WebSocketConfig contains configuration for WebSocket event streaming
type WebSocketConfig struct {
	// Throttle interval for high-frequency gyms_updated events. Zero disables throttling.
	GymsUpdatedThrottle time.Duration `toml:"gyms_updated_throttle"`
}

// NewDefaultConfig creates a configuration with default values.
// Only user-facing settings should be exposed in gymscout.toml.
func NewDefaultConfig() *Config {
	return &Config{
		Environment: "development",
		Server: ServerConfig{
			Port: 8080,
			Host: "localhost",
		},
		Logging: LoggingConfig{
			Level:  "info",
			Format: "text",
			Output: []string{"stdout", "file"},
		},
		Storage: StorageConfig{
			Badger: BadgerConfig{
				Path: "./data",
			},
		},
		Catalog: CatalogConfig{
			BaseURL:        "http://localhost:5001",
			RequestTimeout: 30 * time.Second,
		},
		Overpass: OverpassConfig{
			Endpoint:       "https://overpass-api.de/api/interpreter",
			RadiusMeters:   5000, // 5km, approx 3 miles
			MaxResults:     20,
			RateLimit:      1 * time.Second, // Overpass public instances throttle aggressively
			RequestTimeout: 30 * time.Second,
		},
		Map: MapConfig{
			CenterLongitude: -117.1611,
			CenterLatitude:  32.7157,
		},
		Selection: SelectionConfig{
			FlyToZoom:           14,
			FlyToDurationMs:     1500,
			SheetCloseThreshold: 100,
			SheetOpenThreshold:  100,
		},
		Scheduler: SchedulerConfig{
			Enabled:         false, // Disabled by default - user must explicitly opt-in
			RefreshSchedule: "*/15 * * * *",
		},
		WebSocket: WebSocketConfig{
			GymsUpdatedThrottle: 1 * time.Second,
		},
	}
}

// LoadFromFile loads configuration with priority: default -> file -> env -> CLI
func LoadFromFile(path string) (*Config, error) {
	if path == "" {
		return LoadFromFiles()
	}
	return LoadFromFiles(path)
}

// LoadFromFiles loads configuration from multiple files with priority:
// default -> file1 -> file2 -> ... -> env -> CLI. Later files override
// earlier files.
func LoadFromFiles(paths ...string) (*Config, error) {
	config := NewDefaultConfig()

	for i, path := range paths {
		if path == "" {
			continue
		}

		data, err := os.ReadFile(path)
		if err != nil {
			return nil, fmt.Errorf("failed to read config file %s: %w", path, err)
		}

		if err := toml.Unmarshal(data, config); err != nil {
			return nil, fmt.Errorf("failed to parse config file %s (file %d of %d): %w", path, i+1, len(paths), err)
		}
	}

	applyEnvOverrides(config)

	return config, nil
}

// applyEnvOverrides applies environment variable overrides to config
func applyEnvOverrides(config *Config) {
	if env := os.Getenv("GYMSCOUT_ENV"); env != "" {
		config.Environment = env
	} else if env := os.Getenv("GO_ENV"); env != "" {
		config.Environment = env
	}

	if port := os.Getenv("GYMSCOUT_SERVER_PORT"); port != "" {
		if p, err := strconv.Atoi(port); err == nil {
			config.Server.Port = p
		}
	}
	if host := os.Getenv("GYMSCOUT_SERVER_HOST"); host != "" {
		config.Server.Host = host
	}
	if level := os.Getenv("GYMSCOUT_LOG_LEVEL"); level != "" {
		config.Logging.Level = level
	}
	if url := os.Getenv("GYMSCOUT_CATALOG_URL"); url != "" {
		config.Catalog.BaseURL = url
	}
	if endpoint := os.Getenv("GYMSCOUT_OVERPASS_ENDPOINT"); endpoint != "" {
		config.Overpass.Endpoint = endpoint
	}
	if path := os.Getenv("GYMSCOUT_BADGER_PATH"); path != "" {
		config.Storage.Badger.Path = path
	}
}

// ApplyFlagOverrides applies command-line flag overrides (highest priority)
func ApplyFlagOverrides(config *Config, port int, host string) {
	if port != 0 {
		config.Server.Port = port
	}
	if host != "" {
		config.Server.Host = host
	}
}
