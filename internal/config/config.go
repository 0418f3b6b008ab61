package config

import (
	"fmt"
	"time"

	"github.com/caarlos0/env/v6"
)

type Config struct {
	IsTestMode bool   `env:"TEST_MODE" envDefault:"false"`
	Port       uint16 `env:"PORT" envDefault:"9090"`

	Secret        string `env:"SECRET,required"`
	PostgresqlURL string `env:"POSTGRESQL_URL,required"`
	RedisURL      string `env:"REDIS_URL,required"`
	RabbitmqURL   string `env:"RABBITMQ_URL,required"`

	BcryptHasherCost        int           `env:"BCRYPT_HASHER_COST" envDefault:"10"`
	ResetTokenValidDuration time.Duration `env:"RESET_TOKEN_VALID_DURATION" envDefault:"60m"`

	AllowedOrigins []string `env:"ALLOWED_ORIGINS" envSeparator:","`

	RabbitmqResetEmailExchange   string `env:"RABBITMQ_RESET_EMAIL_EXCHANGE" envDefault:""`
	RabbitmqResetEmailQueue      string `env:"RABBITMQ_RESET_EMAIL_QUEUE" envDefault:"password-reset-email"`
	RabbitmqResetEmailRoutingKey string `env:"RABBITMQ_RESET_EMAIL_ROUTING_KEY" envDefault:"password-reset-email"`

	AwsRegion          string `env:"AWS_REGION" envDefault:"ap-southeast-1"`
	AwsAccessKeyID     string `env:"AWS_ACCESS_KEY_ID"`
	AwsSecretAccessKey string `env:"AWS_SECRET_ACCESS_KEY"`

	AwsEmailSender                string `env:"AWS_EMAIL_SENDER" envDefault:"no-reply@swapcloset.ph"`
	AwsEmailPasswordResetTemplate string `env:"AWS_EMAIL_PASSWORD_RESET_TEMPLATE" envDefault:"swapcloset-password-reset"`
	PasswordResetBaseURL          string `env:"PASSWORD_RESET_BASE_URL" envDefault:"https://swapcloset.ph/reset-password"`

	SentryDSN string `env:"SENTRY_DSN"`
}

func Load() (*Config, error) {
	config := &Config{}
	if err := env.Parse(config); err != nil {
		return nil, fmt.Errorf("could not load configuration: %w", err)
	}
	return config, nil
}
