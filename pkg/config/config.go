package config

import (
	"errors"
	"os"

	"github.com/caarlos0/env/v11"
	"github.com/joho/godotenv"
)

type Config struct {
	HTTP               HTTP
	Logger             Logger
	Postgres           Postgres
	Kafka              Kafka
	Gateway            Gateway
	AuthServiceURL     string `env:"AUTH_SERVICE_URL"`
	PatientsServiceURL string `env:"PATIENTS_SERVICE_URL"`
	CatalogServiceURL  string `env:"CATALOG_SERVICE_URL"`
	ExpensesServiceURL string `env:"EXPENSES_SERVICE_URL"`
}

type HTTP struct {
	Port          int    `env:"HTTP_PORT" envDefault:"8080"`
	APIKeyEnabled bool   `env:"HTTP_API_KEY_ENABLED" envDefault:"false"`
	APIKey        string `env:"HTTP_API_KEY" envDefault:"dev"`
}

type Logger struct {
	Level  string `env:"LOG_LEVEL" envDefault:"info"`
	Format string `env:"LOG_FORMAT" envDefault:"json"`
}

type Postgres struct {
	DSN     string `env:"POSTGRES_DSN"`
	MaxConn int32  `env:"POSTGRES_MAX_CONNS" envDefault:"10"`
}

type Kafka struct {
	Brokers            []string `env:"KAFKA_BROKERS"`
	AuditTopic         string   `env:"KAFKA_AUDIT_TOPIC" envDefault:"billing.audit"`
	NotificationsTopic string   `env:"KAFKA_NOTIFICATIONS_TOPIC" envDefault:"billing.notifications"`
}

type Gateway struct {
	BaseURL string `env:"GATEWAY_BASE_URL"`
	// AccessToken is the server-held credential used to re-fetch payment
	// records; notification payloads are never trusted on their own.
	AccessToken         string   `env:"GATEWAY_ACCESS_TOKEN"`
	WebhookSecret       string   `env:"GATEWAY_WEBHOOK_SECRET"`
	WebhookCheckEnabled bool     `env:"GATEWAY_WEBHOOK_CHECK_ENABLED" envDefault:"false"`
	CallbackIPWL        []string `env:"GATEWAY_CALLBACK_IP_WL"`
}

func New(envPath string) (Config, error) {
	err := godotenv.Load(envPath)
	if err != nil && !errors.Is(err, os.ErrNotExist) {
		return Config{}, err
	}

	c, err := env.ParseAsWithOptions[Config](env.Options{
		RequiredIfNoDef: true,
	})
	if err != nil {
		return Config{}, err
	}

	return c, nil
}
