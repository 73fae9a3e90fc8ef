package app

import (
	"os"
	"os/signal"
	"syscall"

	kafkabroker "github.com/steptrek/steptrek/internal/broker/kafka"
	"github.com/steptrek/steptrek/internal/config"
	v1 "github.com/steptrek/steptrek/internal/controller/http/v1"
	"github.com/steptrek/steptrek/internal/metrics"
	"github.com/steptrek/steptrek/internal/repo"
	"github.com/steptrek/steptrek/internal/service"
	errorsUtils "github.com/steptrek/steptrek/pkg/errors"
	"github.com/steptrek/steptrek/pkg/httpserver"
	"github.com/steptrek/steptrek/pkg/logger"
	"github.com/steptrek/steptrek/pkg/postgres"
	"github.com/labstack/echo/v4"

	log "github.com/sirupsen/logrus"
)

func Run() {
	// Config
	cfg, err := config.New()
	if err != nil {
		log.Fatal(errorsUtils.WrapPathErr(err))
	}

	// Logger
	logger.SetupLogger(cfg.Log.Level)
	log.Info("Logger has been set up")

	// Migrations
	Migrate(cfg.PG.URL)

	// DB connecting
	log.Info("Connecting to DB")
	pg, err := postgres.New(cfg.PG.URL, postgres.MaxPoolSize(cfg.PG.MaxPoolSize))
	if err != nil {
		log.Fatal(errorsUtils.WrapPathErr(err))
	}
	defer pg.Close()
	log.Info("Connected to DB")

	// Kafka producer
	producer := kafkabroker.NewProducer(kafkabroker.ProducerConfig{
		Brokers: cfg.Kafka.Brokers,
		Topic:   cfg.Kafka.Topic,
	})
	defer producer.Close()

	// Metrics
	counters := metrics.New()

	// Repos
	repositories := repo.NewRepositories(pg)

	// Services
	deps := service.ServicesDependencies{
		Repos:          repositories,
		Counters:       counters,
		BrokerProducer: producer,
	}
	services := service.NewServices(deps)

	// Bot webhook server
	log.Infof("Starting bot server...")
	log.Debugf("Server port: %s", cfg.HTTP.Port)
	botHandler := echo.New()
	v1.ConfigureRouter(botHandler, services, counters, cfg.Bot.LeaderboardLimit)
	botServer := httpserver.New(botHandler, httpserver.Port(cfg.HTTP.Port))

	// Prometheus server
	log.Infof("Starting metrics server...")
	log.Debugf("Server port: %s", cfg.Prometheus.Port)
	metricsHandler := echo.New()
	metrics.ConfigureRouter(metricsHandler)
	metricsServer := httpserver.New(metricsHandler, httpserver.Port(cfg.Prometheus.Port))

	// Waiting signal
	log.Info("Configuring graceful shutdown")
	interrupt := make(chan os.Signal, 1)
	signal.Notify(interrupt, os.Interrupt, syscall.SIGTERM)

	select {
	case s := <-interrupt:
		log.Info("app - Run - signal: " + s.String())
	case err := <-botServer.Notify():
		log.Info(errorsUtils.WrapPathErr(err))
	case err := <-metricsServer.Notify():
		log.Info(errorsUtils.WrapPathErr(err))
	}

	// Graceful shutdown
	log.Info("Shutting down...")
	if err := botServer.Shutdown(); err != nil {
		log.Error(errorsUtils.WrapPathErr(err))
	}
	if err := metricsServer.Shutdown(); err != nil {
		log.Error(errorsUtils.WrapPathErr(err))
	}
}
