package config

import (
	"errors"
	"strings"
	"time"

	"github.com/joho/godotenv"
	"github.com/spf13/viper"
)

const (
	EnvDevelopment = "development"
	EnvProduction  = "production"
)

type Config struct {
	Env       string
	Port      int
	APIPrefix string

	Mongo MongoConfig
	Redis RedisConfig
	JWT   JWTConfig
	CORS  CORSConfig
	Log   LogConfig
	Cache CacheConfig
	Demo  DemoConfig
	Views ViewsConfig
	Media MediaConfig
}

// MongoConfig holds document store connection settings.
type MongoConfig struct {
	URI            string
	Database       string
	MaxPoolSize    uint64
	ConnectTimeout time.Duration
	QueryTimeout   time.Duration
}

type RedisConfig struct {
	Host     string
	Port     int
	Password string
	DB       int
}

type JWTConfig struct {
	Secret       string
	Expiration   time.Duration
	CookieName   string
	CookieDomain string
	CookieSecure bool
}

type CORSConfig struct {
	AllowedOrigins []string
}

type LogConfig struct {
	Level  string
	Format string
}

// CacheConfig tunes the Redis read-through cache for hot list endpoints.
type CacheConfig struct {
	Enabled bool
	TTL     time.Duration
}

// DemoConfig controls degraded-mode write behaviour: when enabled, a failed
// store write is answered with a synthetic non-durable record instead of a 500.
type DemoConfig struct {
	Enabled bool
}

// ViewsConfig tunes the async view-count worker queue.
type ViewsConfig struct {
	Workers    int
	BufferSize int
}

// MediaConfig holds upload storage settings. Download URLs are signed
// with the JWT secret and expire after URLTTL.
type MediaConfig struct {
	Dir    string
	URLTTL time.Duration
}

func Load() (*Config, error) {
	_ = godotenv.Load()

	v := viper.New()
	v.SetConfigFile(".env")
	v.SetConfigType("env")
	v.AutomaticEnv()
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))

	setDefaults(v)

	if err := v.ReadInConfig(); err != nil {
		var notFound viper.ConfigFileNotFoundError
		if !errors.As(err, &notFound) {
			return nil, err
		}
	}

	cfg := &Config{}

	cfg.Env = v.GetString("ENV")
	cfg.Port = v.GetInt("PORT")
	cfg.APIPrefix = v.GetString("API_PREFIX")

	cfg.Mongo = MongoConfig{
		URI:            v.GetString("MONGO_URI"),
		Database:       v.GetString("MONGO_DB"),
		MaxPoolSize:    v.GetUint64("MONGO_MAX_POOL_SIZE"),
		ConnectTimeout: parseDuration(v.GetString("MONGO_CONNECT_TIMEOUT"), 10*time.Second),
		QueryTimeout:   parseDuration(v.GetString("MONGO_QUERY_TIMEOUT"), 5*time.Second),
	}

	cfg.Redis = RedisConfig{
		Host:     v.GetString("REDIS_HOST"),
		Port:     v.GetInt("REDIS_PORT"),
		Password: v.GetString("REDIS_PASSWORD"),
		DB:       v.GetInt("REDIS_DB"),
	}

	cfg.JWT = JWTConfig{
		Secret:       v.GetString("JWT_SECRET"),
		Expiration:   parseDuration(v.GetString("JWT_EXPIRATION"), 7*24*time.Hour),
		CookieName:   v.GetString("JWT_COOKIE_NAME"),
		CookieDomain: v.GetString("JWT_COOKIE_DOMAIN"),
		CookieSecure: v.GetBool("JWT_COOKIE_SECURE"),
	}

	cfg.CORS = CORSConfig{AllowedOrigins: splitAndTrim(v.GetString("ALLOWED_ORIGINS"))}

	cfg.Log = LogConfig{
		Level:  v.GetString("LOG_LEVEL"),
		Format: v.GetString("LOG_FORMAT"),
	}

	cfg.Cache = CacheConfig{
		Enabled: v.GetBool("ENABLE_CACHE"),
		TTL:     parseDuration(v.GetString("CACHE_TTL"), 5*time.Minute),
	}

	cfg.Demo = DemoConfig{
		Enabled: v.GetBool("DEMO_MODE"),
	}

	cfg.Views = ViewsConfig{
		Workers:    v.GetInt("VIEWS_WORKERS"),
		BufferSize: v.GetInt("VIEWS_BUFFER_SIZE"),
	}

	cfg.Media = MediaConfig{
		Dir:    v.GetString("MEDIA_DIR"),
		URLTTL: parseDuration(v.GetString("MEDIA_URL_TTL"), 24*time.Hour),
	}

	return cfg, nil
}

func setDefaults(v *viper.Viper) {
	v.SetDefault("ENV", EnvDevelopment)
	v.SetDefault("PORT", 8080)
	v.SetDefault("API_PREFIX", "/api")

	v.SetDefault("MONGO_URI", "mongodb://localhost:27017")
	v.SetDefault("MONGO_DB", "islamic_hub")
	v.SetDefault("MONGO_MAX_POOL_SIZE", 100)
	v.SetDefault("MONGO_CONNECT_TIMEOUT", "10s")
	v.SetDefault("MONGO_QUERY_TIMEOUT", "5s")

	v.SetDefault("REDIS_HOST", "localhost")
	v.SetDefault("REDIS_PORT", 6379)
	v.SetDefault("REDIS_PASSWORD", "")
	v.SetDefault("REDIS_DB", 0)

	v.SetDefault("JWT_SECRET", "dev_secret")
	v.SetDefault("JWT_EXPIRATION", "168h")
	v.SetDefault("JWT_COOKIE_NAME", "islamichub_token")
	v.SetDefault("JWT_COOKIE_DOMAIN", "")
	v.SetDefault("JWT_COOKIE_SECURE", false)

	v.SetDefault("ALLOWED_ORIGINS", "")
	v.SetDefault("LOG_LEVEL", "info")
	v.SetDefault("LOG_FORMAT", "json")

	v.SetDefault("ENABLE_CACHE", false)
	v.SetDefault("CACHE_TTL", "5m")

	v.SetDefault("DEMO_MODE", false)

	v.SetDefault("VIEWS_WORKERS", 1)
	v.SetDefault("VIEWS_BUFFER_SIZE", 64)

	v.SetDefault("MEDIA_DIR", "./media")
	v.SetDefault("MEDIA_URL_TTL", "24h")
}

func parseDuration(raw string, fallback time.Duration) time.Duration {
	if raw == "" {
		return fallback
	}

	d, err := time.ParseDuration(raw)
	if err != nil {
		return fallback
	}

	return d
}

func splitAndTrim(raw string) []string {
	if raw == "" {
		return nil
	}

	parts := strings.Split(raw, ",")
	result := make([]string, 0, len(parts))
	for _, part := range parts {
		trimmed := strings.TrimSpace(part)
		if trimmed != "" {
			result = append(result, trimmed)
		}
	}

	return result
}
