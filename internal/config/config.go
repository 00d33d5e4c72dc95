package config

import "github.com/caarlos0/env/v6"

const (
	StageTest        = "test"
	StageDevelopment = "development"
	StagePreview     = "preview"
	StageProduction  = "production"
)

type Config struct {
	Stage      string `env:"STAGE" envDefault:"production"`
	CI         bool   `env:"CI"`
	IsTestMode bool   `env:"TEST_MODE"`

	Port           uint16   `env:"PORT" envDefault:"8080"`
	WebServerHost  string   `env:"WEBSERVER_HOST" envDefault:"localhost"`
	WebServerPort  uint16   `env:"WEBSERVER_PORT" envDefault:"3000"`
	PreviewURL     string   `env:"PREVIEW_URL"`
	AllowedOrigins []string `env:"ALLOWED_ORIGINS" envDefault:"*"`

	PostgresqlURL string `env:"POSTGRESQL_URL,required"`
	RedisURL      string `env:"REDIS_URL,required"`

	AWSRegion          string `env:"AWS_REGION" envDefault:"us-east-1"`
	EmailSenderName    string `env:"EMAIL_SENDER_NAME" envDefault:"TabNews"`
	EmailSenderAddress string `env:"EMAIL_SENDER_ADDRESS" envDefault:"contato@tabnews.com.br"`
}

func Load() (*Config, error) {
	cfg := &Config{}
	if err := env.Parse(cfg); err != nil {
		return nil, err
	}
	return cfg, nil
}
