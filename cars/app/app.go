package app

import (
	"context"
	"net"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/Astemirdum/car-rating-service/cars/config"
	"github.com/Astemirdum/car-rating-service/cars/internal/handler"
	"github.com/Astemirdum/car-rating-service/cars/internal/repository"
	"github.com/Astemirdum/car-rating-service/cars/internal/server"
	"github.com/Astemirdum/car-rating-service/cars/internal/service"
	"github.com/Astemirdum/car-rating-service/cars/internal/vpic"
	"github.com/Astemirdum/car-rating-service/cars/migrations"
	"github.com/Astemirdum/car-rating-service/pkg/cache"
	"github.com/Astemirdum/car-rating-service/pkg/kafka"
	"github.com/Astemirdum/car-rating-service/pkg/logger"
	"github.com/Astemirdum/car-rating-service/pkg/postgres"
	"github.com/IBM/sarama"
	"github.com/pkg/errors"
	"go.uber.org/zap"
	"golang.org/x/sync/errgroup"
)

func Run(cfg *config.Config) {
	log := logger.NewLogger(cfg.Log, "cars")
	defer log.Sync() //nolint:errcheck

	db, err := postgres.NewPostgresDB(context.Background(), &cfg.Database, migrations.MigrationFiles)
	if err != nil {
		log.Fatal("db init", zap.Error(err))
	}
	defer db.Close()
	repo, err := repository.NewRepository(db, log)
	if err != nil {
		log.Fatal("repo", zap.Error(err))
	}

	respCache, err := cache.New(context.Background(), cfg.Cache)
	if err != nil {
		log.Fatal("cache.New", zap.Error(err), zap.String("backend", cfg.Cache.Backend))
	}
	defer respCache.Close()

	svc := service.NewService(repo, vpic.NewClient(cfg.Vpic, respCache, log), log)

	var producer sarama.AsyncProducer
	if cfg.Kafka.Enabled() {
		if producer, err = kafka.NewAsyncProducer(cfg.Kafka); err != nil {
			log.Fatal("kafka.NewAsyncProducer", zap.Error(err))
		}
	} else {
		log.Info("kafka brokers are not set, stats events disabled")
	}

	h := handler.New(svc, handler.NewStatsLog(producer, cfg.Kafka.Topic), log)
	srv := server.NewServer(cfg.Server, h.NewRouter())
	log.Info("http server start ON: ",
		zap.String("addr",
			net.JoinHostPort(cfg.Server.Host, cfg.Server.Port)))

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM, syscall.SIGINT)
	defer stop()
	gg, ctx := errgroup.WithContext(ctx)

	gg.Go(func() error {
		return errors.Wrap(srv.Run(), "server run")
	})
	if producer != nil {
		gg.Go(func() error {
			for perr := range producer.Errors() {
				log.Warn("stats event dropped", zap.Error(perr.Err), zap.String("topic", perr.Msg.Topic))
			}
			return nil
		})
	}
	gg.Go(func() error {
		<-ctx.Done()
		log.Debug("Graceful shutdown", zap.Error(context.Cause(ctx)))

		closeCtx, cancel := context.WithTimeout(context.Background(), time.Second*5)
		defer cancel()
		if producer != nil {
			producer.AsyncClose()
		}
		return errors.Wrap(srv.Stop(closeCtx), "srv.Stop")
	})

	if err = gg.Wait(); err != nil {
		log.Error("shutdown", zap.Error(err))
		return
	}
	log.Info("Graceful shutdown finished")
}
