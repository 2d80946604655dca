package config

import (
	"os"
	"strconv"
	"strings"
	"time"

	"github.com/go-playground/validator/v10"
)

type Config struct {
	Env  string `validate:"required,oneof=development stage production"`
	Http Http

	Cors CORS `validate:"required"`

	Catalog Catalog `validate:"required"`
	Postal  Postal  `validate:"required"`
	Submit  Submit  `validate:"required"`

	Pricing Pricing
	Search  Search
	Handoff Handoff
	Session Session
}

type Http struct {
	Host string `validate:"required,hostname|ip"`
	Port string `validate:"required,gt=0,lte=65535"`
}

type CORS struct {
	AllowedOrigins []string `validate:"required,min=1,dive,url"`
}

type Catalog struct {
	BaseURL     string        `validate:"required,url"`
	Collections []string      `validate:"required,min=1,dive,required"`
	Timeout     time.Duration `validate:"gt=0"`

	RetryAttempts int `validate:"gte=1"`

	SearchCacheCapacity int           `validate:"gte=1"`
	SearchCacheTTL      time.Duration `validate:"gte=0"`
}

type Postal struct {
	BaseURL string        `validate:"required,url"`
	Timeout time.Duration `validate:"gt=0"`
}

type Submit struct {
	Sink    string        `validate:"required,oneof=http kafka"`
	URL     string        `validate:"required,url"`
	Timeout time.Duration `validate:"gt=0"`

	Kafka Kafka
}

type Kafka struct {
	Brokers      []string      `validate:"required,min=1,dive,hostname_port"`
	Topic        string        `validate:"required"`
	BatchTimeout time.Duration `validate:"gte=0"`
}

type Pricing struct {
	// Markup and FallbackMin are decimal strings, e.g. "1.15" and "0".
	Markup      string `validate:"required,numeric"`
	FallbackMin string `validate:"required,numeric"`
}

type Search struct {
	Debounce    time.Duration `validate:"gte=0"`
	MinQueryLen int           `validate:"gte=0"`
}

type Handoff struct {
	Phone string `validate:"required,numeric"`
}

type Session struct {
	Capacity int           `validate:"gte=1"`
	TTL      time.Duration `validate:"gt=0"`
}

func New() Config {
	return Config{
		Env: env("ENV", "development"),

		Http: Http{
			Host: env("HOST", "localhost"),
			Port: env("PORT", "8080"),
		},

		Cors: CORS{
			AllowedOrigins: strings.Split(env("ALLOWED_CORS_ORIGINS", "http://localhost:3000"), ","),
		},

		Catalog: Catalog{
			BaseURL:     env("CATALOG_BASE_URL", "http://localhost:3001"),
			Collections: strings.Split(env("CATALOG_COLLECTIONS", "produtos,produtos2"), ","),
			Timeout:     envDuration("CATALOG_TIMEOUT", 10*time.Second),

			RetryAttempts: envInt("CATALOG_RETRY_ATTEMPTS", 3),

			SearchCacheCapacity: envInt("CATALOG_SEARCH_CACHE_CAPACITY", 256),
			SearchCacheTTL:      envDuration("CATALOG_SEARCH_CACHE_TTL", 30*time.Second),
		},

		Postal: Postal{
			BaseURL: env("POSTAL_BASE_URL", "https://viacep.com.br/ws"),
			Timeout: envDuration("POSTAL_TIMEOUT", 5*time.Second),
		},

		Submit: Submit{
			Sink:    env("SUBMIT_SINK", "http"),
			URL:     env("SUBMIT_URL", "http://localhost:3001/pedido"),
			Timeout: envDuration("SUBMIT_TIMEOUT", 10*time.Second),

			Kafka: Kafka{
				Brokers:      strings.Split(env("KAFKA_BROKERS", "localhost:9092"), ","),
				Topic:        env("KAFKA_TOPIC", "pedidos"),
				BatchTimeout: envDuration("KAFKA_BATCH_TIMEOUT", 10*time.Millisecond),
			},
		},

		Pricing: Pricing{
			Markup:      env("PRICING_MARKUP", "1.15"),
			FallbackMin: env("PRICING_FALLBACK_MIN", "0"),
		},

		Search: Search{
			Debounce:    envDuration("SEARCH_DEBOUNCE", 300*time.Millisecond),
			MinQueryLen: envInt("SEARCH_MIN_QUERY_LEN", 2),
		},

		Handoff: Handoff{
			Phone: env("HANDOFF_PHONE", "5500000000000"),
		},

		Session: Session{
			Capacity: envInt("SESSION_CAPACITY", 1000),
			TTL:      envDuration("SESSION_TTL", 2*time.Hour),
		},
	}
}

func (c Config) Validate() error {
	validate := validator.New()
	return validate.Struct(c)
}

func env(key string, fallback string) string {
	if value, ok := os.LookupEnv(key); ok {
		return value
	}
	return fallback
}

func envInt(key string, fallback int) int {
	if value, ok := os.LookupEnv(key); ok {
		i, err := strconv.Atoi(value)
		if err == nil {
			return i
		}
	}
	return fallback
}

func envDuration(key string, fallback time.Duration) time.Duration {
	if value, ok := os.LookupEnv(key); ok {
		d, err := time.ParseDuration(value)
		if err == nil {
			return d
		}
	}
	return fallback
}
