package app

import (
	"context"
	"os"
	"os/signal"
	"strings"
	"syscall"

	"github.com/altiguard/altiguard/internal/broker"
	kafkabroker "github.com/altiguard/altiguard/internal/broker/kafka"
	"github.com/altiguard/altiguard/internal/config"
	httpv1 "github.com/altiguard/altiguard/internal/controller/http/v1"
	"github.com/altiguard/altiguard/internal/metrics"
	"github.com/altiguard/altiguard/internal/notifier"
	"github.com/altiguard/altiguard/internal/repo"
	"github.com/altiguard/altiguard/internal/service"
	"github.com/altiguard/altiguard/internal/worker"
	errorsUtils "github.com/altiguard/altiguard/pkg/errors"
	"github.com/altiguard/altiguard/pkg/httpserver"
	"github.com/altiguard/altiguard/pkg/logger"
	"github.com/altiguard/altiguard/pkg/postgres"
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

	// Repos
	repositories := repo.NewRepositories(pg)

	// Counters
	counters := metrics.New()

	// Alert channel
	var alertNotifier notifier.Notifier = notifier.Nop{}
	if cfg.Alert.WebhookURL != "" {
		alertNotifier = notifier.NewWebhook(cfg.Alert.WebhookURL)
		log.Info("Webhook alerting enabled")
	} else {
		log.Info("No webhook URL configured, alerting disabled")
	}

	// Observation event stream
	var producer broker.Producer = broker.Nop{}
	if cfg.Broker.Brokers != "" {
		kafkaProducer := kafkabroker.NewProducer(kafkabroker.ProducerConfig{
			Brokers: strings.Split(cfg.Broker.Brokers, ","),
			Topic:   cfg.Broker.Topic,
		})
		defer kafkaProducer.Close()
		producer = kafkaProducer
		log.Info("Observation event stream enabled")
	}

	// Services
	deps := service.ServicesDependencies{
		Repos:      repositories,
		Counters:   counters,
		Notifier:   alertNotifier,
		Producer:   producer,
		WindowSize: cfg.Worker.WindowSize,
	}
	services := service.NewServices(deps)

	// Drift worker
	log.Info("Starting drift worker...")
	workerCtx, stopWorker := context.WithCancel(context.Background())
	defer stopWorker()
	driftWorker := worker.New(services.Drift, counters, cfg.Worker.Interval)
	go driftWorker.Run(workerCtx)

	// API server
	log.Infof("Starting API server...")
	log.Debugf("Server port: %s", cfg.HTTP.Port)
	apiHandler := echo.New()
	httpv1.RegisterRoutes(apiHandler, services)
	apiServer := httpserver.New(apiHandler, httpserver.Port(cfg.HTTP.Port))

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
	case err := <-apiServer.Notify():
		log.Info(errorsUtils.WrapPathErr(err))
	case err := <-metricsServer.Notify():
		log.Info(errorsUtils.WrapPathErr(err))
	}

	// Graceful shutdown
	log.Info("Shutting down...")
	stopWorker()
	if err := apiServer.Shutdown(); err != nil {
		log.Error(errorsUtils.WrapPathErr(err))
	}
	if err := metricsServer.Shutdown(); err != nil {
		log.Error(errorsUtils.WrapPathErr(err))
	}
}
