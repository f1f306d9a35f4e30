package config

import (
	"os"
	"time"

	errorsUtils "github.com/altiguard/altiguard/pkg/errors"

	"github.com/ilyakaznacheev/cleanenv"
	log "github.com/sirupsen/logrus"

	"github.com/joho/godotenv"
)

type (
	Config struct {
		App        `yaml:"app"`
		Log        `yaml:"log"`
		PG         `yaml:"postgres"`
		HTTP       `yaml:"http"`
		Worker     `yaml:"worker"`
		Alert      `yaml:"alert"`
		Broker     `yaml:"broker"`
		Prometheus `yaml:"prometheus"`
	}

	App struct {
		Name    string `yaml:"name" env-required:"true"`
		Version string `yaml:"version" env-required:"true"`
	}

	Log struct {
		Level string `yaml:"level" env:"LOG_LEVEL" env-default:"info"`
	}

	PG struct {
		MaxPoolSize int    `env-required:"true" env:"MAX_POOL_SIZE" yaml:"max_pool_size"`
		URL         string `env-required:"true" env:"PG_URL"`
	}

	HTTP struct {
		Port string `env-required:"true" yaml:"port" env:"HTTP_PORT"`
	}

	Worker struct {
		Interval   time.Duration `yaml:"interval" env:"WORKER_INTERVAL" env-default:"10s"`
		WindowSize int           `yaml:"window_size" env:"WORKER_WINDOW_SIZE" env-default:"200"`
	}

	Alert struct {
		// Empty disables webhook alerting.
		WebhookURL string `yaml:"webhook_url" env:"ALERT_WEBHOOK_URL" env-default:""`
	}

	Broker struct {
		// Empty disables the observation event stream.
		Brokers string `yaml:"brokers" env:"KAFKA_BROKERS" env-default:""`
		Topic   string `yaml:"topic" env:"KAFKA_TOPIC" env-default:"health-observations"`
	}

	Prometheus struct {
		Port string `env-required:"true" yaml:"port" env:"PROMETHEUS_PORT"`
	}
)

const ENV_PATH = "infra/.env.dev"

func init() {
	if err := godotenv.Load(ENV_PATH); err != nil {
		log.Debugf("No .env file loaded: %v", err)
	}
}

func New() (*Config, error) {
	cfg := &Config{}

	pathToConfig, ok := os.LookupEnv("APP_CONFIG_PATH")
	if !ok || pathToConfig == "" {
		log.WithField("env_var", "APP_CONFIG_PATH").
			Info("Config path is not set, using default")
		pathToConfig = "infra/config.yaml"
	}

	if err := cleanenv.ReadConfig(pathToConfig, cfg); err != nil {
		return nil, errorsUtils.WrapPathErr(err)
	}

	if err := cleanenv.UpdateEnv(cfg); err != nil {
		return nil, errorsUtils.WrapPathErr(err)
	}

	return cfg, nil
}
