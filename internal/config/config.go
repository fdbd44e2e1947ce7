package config

import (
	"fmt"
	"time"

	"github.com/spf13/viper"

	"github.com/parking-microservice/internal/domain"
)

type Config struct {
	Server   ServerConfig
	Database DatabaseConfig
	Redis    RedisConfig
	Cache    CacheConfig
	Geocode  GeocodeConfig
	Search   SearchConfig
	Log      LogConfig
}

type ServerConfig struct {
	Host string
	Port int
	Env  string
}

type DatabaseConfig struct {
	Host            string
	Port            int
	User            string
	Password        string
	DBName          string
	SSLMode         string
	MaxConns        int
	MaxIdleConns    int
	ConnMaxLifetime time.Duration
	ConnMaxIdleTime time.Duration
}

type RedisConfig struct {
	Host     string
	Port     int
	Password string
	DB       int
}

type CacheConfig struct {
	GeocodeCacheTTL time.Duration
	SuggestCacheTTL time.Duration
}

// GeocodeConfig - settings for the external address-lookup provider
// (a Nominatim-compatible search API)
type GeocodeConfig struct {
	BaseURL         string
	UserAgent       string
	RegionQualifier string
	RequestTimeout  time.Duration
}

// SearchConfig - service area and search tuning. The bounding box is an
// explicit configuration value so tests can exercise alternate regions.
type SearchConfig struct {
	Bounds           domain.BoundingBox
	RadiusKm         float64
	KeywordLimit     int
	SuggestLimit     int
	SuggestGeocoding bool
}

type LogConfig struct {
	Level string
}

func Load() (*Config, error) {
	viper.SetConfigFile(".env")
	viper.AutomaticEnv()

	if err := viper.ReadInConfig(); err != nil {
		return nil, fmt.Errorf("failed to read config: %w", err)
	}

	cfg := &Config{
		Server: ServerConfig{
			Host: viper.GetString("API_HOST"),
			Port: viper.GetInt("API_PORT"),
			Env:  viper.GetString("API_ENV"),
		},
		Database: DatabaseConfig{
			Host:            viper.GetString("DB_HOST"),
			Port:            viper.GetInt("DB_PORT"),
			User:            viper.GetString("DB_USER"),
			Password:        viper.GetString("DB_PASSWORD"),
			DBName:          viper.GetString("DB_NAME"),
			SSLMode:         viper.GetString("DB_SSLMODE"),
			MaxConns:        viper.GetInt("DB_MAX_CONNS"),
			MaxIdleConns:    viper.GetInt("DB_MAX_IDLE_CONNS"),
			ConnMaxLifetime: time.Duration(viper.GetInt("DB_CONN_MAX_LIFETIME")) * time.Second,
			ConnMaxIdleTime: time.Duration(viper.GetInt("DB_CONN_MAX_IDLE_TIME")) * time.Second,
		},
		Redis: RedisConfig{
			Host:     viper.GetString("REDIS_HOST"),
			Port:     viper.GetInt("REDIS_PORT"),
			Password: viper.GetString("REDIS_PASSWORD"),
			DB:       viper.GetInt("REDIS_DB"),
		},
		Cache: CacheConfig{
			GeocodeCacheTTL: time.Duration(viper.GetInt("GEOCODE_CACHE_TTL")) * time.Second,
			SuggestCacheTTL: time.Duration(viper.GetInt("SUGGEST_CACHE_TTL")) * time.Second,
		},
		Geocode: GeocodeConfig{
			BaseURL:         viper.GetString("GEOCODE_BASE_URL"),
			UserAgent:       viper.GetString("GEOCODE_USER_AGENT"),
			RegionQualifier: viper.GetString("GEOCODE_REGION_QUALIFIER"),
			RequestTimeout:  time.Duration(viper.GetInt("GEOCODE_REQUEST_TIMEOUT")) * time.Second,
		},
		Search: SearchConfig{
			Bounds: domain.BoundingBox{
				LatMin: viper.GetFloat64("SEARCH_LAT_MIN"),
				LatMax: viper.GetFloat64("SEARCH_LAT_MAX"),
				LngMin: viper.GetFloat64("SEARCH_LNG_MIN"),
				LngMax: viper.GetFloat64("SEARCH_LNG_MAX"),
			},
			RadiusKm:         viper.GetFloat64("SEARCH_RADIUS_KM"),
			KeywordLimit:     viper.GetInt("SEARCH_KEYWORD_LIMIT"),
			SuggestLimit:     viper.GetInt("SUGGEST_LIMIT"),
			SuggestGeocoding: viper.GetBool("SUGGEST_GEOCODING_ENABLED"),
		},
		Log: LogConfig{
			Level: viper.GetString("LOG_LEVEL"),
		},
	}

	// Set default values if not provided
	if cfg.Geocode.BaseURL == "" {
		cfg.Geocode.BaseURL = "https://nominatim.openstreetmap.org"
	}
	if cfg.Geocode.UserAgent == "" {
		cfg.Geocode.UserAgent = "parking-microservice/1.0"
	}
	if cfg.Geocode.RegionQualifier == "" {
		cfg.Geocode.RegionQualifier = "Melbourne, Australia"
	}
	if cfg.Geocode.RequestTimeout == 0 {
		cfg.Geocode.RequestTimeout = 8 * time.Second
	}
	if cfg.Search.Bounds.IsZero() {
		cfg.Search.Bounds = domain.DefaultCBDBounds
	}
	if cfg.Search.RadiusKm == 0 {
		cfg.Search.RadiusKm = 2.0
	}
	if cfg.Search.KeywordLimit == 0 {
		cfg.Search.KeywordLimit = 50
	}
	if cfg.Search.SuggestLimit == 0 {
		cfg.Search.SuggestLimit = 10
	}
	if cfg.Cache.GeocodeCacheTTL == 0 {
		cfg.Cache.GeocodeCacheTTL = 24 * time.Hour
	}
	if cfg.Cache.SuggestCacheTTL == 0 {
		cfg.Cache.SuggestCacheTTL = 10 * time.Minute
	}

	return cfg, nil
}

func (c *Config) GetServerAddr() string {
	return fmt.Sprintf("%s:%d", c.Server.Host, c.Server.Port)
}

func (c *Config) GetDatabaseDSN() string {
	return c.Database.DSN()
}

// DSN собирает строку подключения к PostgreSQL
func (d *DatabaseConfig) DSN() string {
	return fmt.Sprintf(
		"host=%s port=%d user=%s password=%s dbname=%s sslmode=%s",
		d.Host,
		d.Port,
		d.User,
		d.Password,
		d.DBName,
		d.SSLMode,
	)
}

func (c *Config) GetRedisAddr() string {
	return fmt.Sprintf("%s:%d", c.Redis.Host, c.Redis.Port)
}
