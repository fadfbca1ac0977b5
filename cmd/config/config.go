package config

import (
	"os"
	"strconv"
	"time"

	"github.com/joho/godotenv"
)

type Config struct {
	Environment string
	LogLevel    string
	Server      ServerConfig
	API         APIConfig
	Redis       RedisConfig
	RabbitMQ    RabbitMQConfig
	Auth        AuthConfig
}

type ServerConfig struct {
	Port         string
	ReadTimeout  time.Duration
	WriteTimeout time.Duration
	IdleTimeout  time.Duration
	// InternalAPIKey guards /internal/* routes; empty leaves them open.
	InternalAPIKey string
	// AttemptsPerMinute throttles login, register and inquiry posts per client IP; 0 disables.
	AttemptsPerMinute int
}

// APIConfig points at the external marketplace REST API.
type APIConfig struct {
	BaseURL string
	Timeout time.Duration
}

type RedisConfig struct {
	Host        string
	Port        int
	Password    string
	DB          int
	PoolSize    int
	DialTimeout time.Duration
}

type RabbitMQConfig struct {
	Enabled  bool
	Host     string
	Port     int
	User     string
	Password string
}

type AuthConfig struct {
	// JWTSecret verifies upstream tokens when set; otherwise claims are read unverified
	// and the API stays the authority.
	JWTSecret      string
	SessionExpTime time.Duration
	CookieDomain   string
	CookieSecure   bool
}

// Load reads configuration from the environment, loading .env first when present.
func Load() *Config {
	_ = godotenv.Load()

	return &Config{
		Environment: getEnv("APP_ENV", "development"),
		LogLevel:    getEnv("LOG_LEVEL", ""),
		Server: ServerConfig{
			Port:              getEnv("SERVER_PORT", "8080"),
			ReadTimeout:       getDuration("SERVER_READ_TIMEOUT", 10*time.Second),
			WriteTimeout:      getDuration("SERVER_WRITE_TIMEOUT", 30*time.Second),
			IdleTimeout:       getDuration("SERVER_IDLE_TIMEOUT", 60*time.Second),
			InternalAPIKey:    getEnv("INTERNAL_API_KEY", ""),
			AttemptsPerMinute: getInt("ATTEMPTS_PER_MINUTE", 10),
		},
		API: APIConfig{
			BaseURL: getEnv("API_BASE_URL", "http://localhost:4000"),
			Timeout: getDuration("API_TIMEOUT", 15*time.Second),
		},
		Redis: RedisConfig{
			Host:        getEnv("REDIS_HOST", "localhost"),
			Port:        getInt("REDIS_PORT", 6379),
			Password:    getEnv("REDIS_PASSWORD", ""),
			DB:          getInt("REDIS_DB", 0),
			PoolSize:    getInt("REDIS_POOL_SIZE", 10),
			DialTimeout: getDuration("REDIS_DIAL_TIMEOUT", 5*time.Second),
		},
		RabbitMQ: RabbitMQConfig{
			Enabled:  getBool("RABBITMQ_ENABLED", false),
			Host:     getEnv("RABBITMQ_HOST", "localhost"),
			Port:     getInt("RABBITMQ_PORT", 5672),
			User:     getEnv("RABBITMQ_USER", "guest"),
			Password: getEnv("RABBITMQ_PASSWORD", "guest"),
		},
		Auth: AuthConfig{
			JWTSecret:      getEnv("JWT_SECRET", ""),
			SessionExpTime: getDuration("SESSION_EXP_TIME", 7*24*time.Hour),
			CookieDomain:   getEnv("COOKIE_DOMAIN", ""),
			CookieSecure:   getBool("COOKIE_SECURE", false),
		},
	}
}

func getEnv(key, fallback string) string {
	if v, ok := os.LookupEnv(key); ok && v != "" {
		return v
	}
	return fallback
}

func getInt(key string, fallback int) int {
	v, err := strconv.Atoi(os.Getenv(key))
	if err != nil {
		return fallback
	}
	return v
}

func getBool(key string, fallback bool) bool {
	v, err := strconv.ParseBool(os.Getenv(key))
	if err != nil {
		return fallback
	}
	return v
}

func getDuration(key string, fallback time.Duration) time.Duration {
	v, err := time.ParseDuration(os.Getenv(key))
	if err != nil {
		return fallback
	}
	return v
}
