package config

import (
	"fmt"
	"time"

	"github.com/ghallymuhammad/eventhub-project-sub000/pkg/mailer"
	"github.com/ghallymuhammad/eventhub-project-sub000/pkg/mq"
	"github.com/ghallymuhammad/eventhub-project-sub000/pkg/mysql"
	"github.com/ghallymuhammad/eventhub-project-sub000/pkg/ticketart"
	"github.com/spf13/viper"
)

type Config struct {
	API       API              `mapstructure:"api"`
	Database  mysql.Config     `mapstructure:"database"`
	RabbitMQ  mq.Config        `mapstructure:"rabbitmq"`
	Mail      mailer.Config    `mapstructure:"mail"`
	Artifact  ticketart.Config `mapstructure:"artifact"`
	Publisher Worker           `mapstructure:"publisher"`
	Expiry    Worker           `mapstructure:"expiry"`
}

type API struct {
	Port string `mapstructure:"port"`
}

type Worker struct {
	Interval  time.Duration `mapstructure:"interval"`
	BatchSize int           `mapstructure:"batch_size"`
}

func Load() (cfg *Config, err error) {
	viper.SetConfigName("config")
	viper.SetConfigType("yml")
	viper.AddConfigPath("./config")

	err = viper.ReadInConfig()
	if err != nil {
		return cfg, fmt.Errorf("failed to load config: %w", err)
	}

	err = viper.Unmarshal(&cfg)
	if err != nil {
		return nil, err
	}

	return cfg, nil
}
