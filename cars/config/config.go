package config

import (
	"encoding/json"
	"fmt"
	"log"
	"sync"
	"time"

	"github.com/Astemirdum/car-rating-service/cars/internal/vpic"
	"github.com/Astemirdum/car-rating-service/pkg/cache"
	"github.com/Astemirdum/car-rating-service/pkg/kafka"
	"github.com/Astemirdum/car-rating-service/pkg/logger"
	"github.com/Astemirdum/car-rating-service/pkg/postgres"
	"github.com/kelseyhightower/envconfig"
)

type HTTPServer struct {
	Host         string        `yaml:"host" envconfig:"CARS_HTTP_HOST"`
	Port         string        `yaml:"port" envconfig:"CARS_HTTP_PORT" default:"8000"`
	ReadTimeout  time.Duration `yaml:"readTimeout" envconfig:"HTTP_READ" default:"10s"`
	WriteTimeout time.Duration
}

type Config struct {
	Server   HTTPServer  `yaml:"server"`
	Database postgres.DB `yaml:"db"`
	Log      logger.Log  `yaml:"log"`
	Kafka    kafka.Config
	Vpic     vpic.Config
	Cache    cache.Config
}

var (
	once sync.Once
	cfg  Config
)

// NewConfig reads config from environment. Options set values that the
// environment may override.
func NewConfig(ops ...Option) *Config {
	once.Do(func() {
		var config Config
		for _, op := range ops {
			op(&config)
		}
		err := envconfig.Process("", &config)
		if err != nil {
			log.Fatal("NewConfig ", err)
		}
		cfg = config
		printConfig(cfg)
	})

	return &cfg
}

func printConfig(cfg Config) {
	cfg.Database.Password = "***"
	jscfg, _ := json.MarshalIndent(cfg, "", "	") //nolint:errcheck
	fmt.Println(string(jscfg))
}
