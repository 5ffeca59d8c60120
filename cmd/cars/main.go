package main

import (
	stdLog "log"
	"os"
	"time"

	"github.com/Astemirdum/car-rating-service/cars/app"
	"github.com/Astemirdum/car-rating-service/cars/config"
	"github.com/joho/godotenv"
	"github.com/pkg/errors"
	"go.uber.org/zap/zapcore"
)

// @title Car rating service
// @version 1.0
// @description Cars verified against NHTSA vPIC, ratings and popularity.
// @BasePath /
func main() {
	if err := godotenv.Load(); err != nil && !errors.Is(err, os.ErrNotExist) {
		stdLog.Fatal("load envs from .env ", err)
	}
	cfg := config.NewConfig(
		config.WithLogLevel(zapcore.DebugLevel),
		config.WithWriteTimeout(time.Minute),
	)

	app.Run(cfg)
}
