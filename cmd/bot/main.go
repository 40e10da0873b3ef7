package main

import (
	"context"
	"os"
	"path"
	"runtime"
	"time"

	"github.com/sirupsen/logrus"

	"github.com/brislydeals/deals-pipeline/infrastructure/integrator/aliexpress"
	"github.com/brislydeals/deals-pipeline/infrastructure/integrator/aliexpress/aliexpressclient"
	"github.com/brislydeals/deals-pipeline/infrastructure/integrator/amazon"
	"github.com/brislydeals/deals-pipeline/infrastructure/integrator/amazon/amazonclient"
	"github.com/brislydeals/deals-pipeline/infrastructure/integrator/keepa"
	"github.com/brislydeals/deals-pipeline/infrastructure/integrator/keepa/keepaclient"
	"github.com/brislydeals/deals-pipeline/infrastructure/notifier/telegram"
	"github.com/brislydeals/deals-pipeline/infrastructure/repository"
	"github.com/brislydeals/deals-pipeline/infrastructure/store"
	"github.com/brislydeals/deals-pipeline/internal/api"
	"github.com/brislydeals/deals-pipeline/internal/config"
	"github.com/brislydeals/deals-pipeline/internal/scheduler"
	"github.com/brislydeals/deals-pipeline/internal/usecases/collecting"
	"github.com/brislydeals/deals-pipeline/internal/usecases/enriching"
	"github.com/brislydeals/deals-pipeline/internal/usecases/publishing"
	"github.com/brislydeals/deals-pipeline/internal/usecases/ranking"
	"github.com/brislydeals/deals-pipeline/internal/usecases/reporting"
)

func main() {
	// Inicializa configuração de logs
	configureLogger()

	cfg, err := config.NewConfig()
	if err != nil {
		logrus.Fatal(err)
	}

	// Define o nível de log com base na configuração
	logLevel, err := logrus.ParseLevel(cfg.App.LogLevel)
	if err != nil {
		logrus.Warnf("Nível de log inválido: %s, usando 'info'", cfg.App.LogLevel)
		logLevel = logrus.InfoLevel
	}
	logrus.SetLevel(logLevel)
	logrus.Infof("Nível de log configurado para: %s", logLevel)

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	kv := store.New(ctx, cfg.Redis)

	dedupRepo := repository.NewDedupRepository(kv, cfg.Selection.DedupWindow())
	cacheRepo := repository.NewCacheRepository(kv)
	metricsRepo := repository.NewMetricsRepository(kv)

	amazonClient := amazonclient.NewClient(cfg)
	amazonIntegrator := amazon.New(cfg, amazonClient)

	aliexpressClient := aliexpressclient.NewClient(cfg)
	aliexpressIntegrator := aliexpress.New(cfg, aliexpressClient)

	keepaClient := keepaclient.NewClient(cfg)
	keepaIntegrator := keepa.New(cfg, keepaClient)

	notifier := telegram.NewNotifier(cfg)

	collectorService := collecting.NewService(cfg, amazonIntegrator, aliexpressIntegrator)
	enrichmentService := enriching.NewService(cfg, keepaIntegrator, cacheRepo)
	rankingService := ranking.NewService(cfg)

	publishService := publishing.NewService(
		cfg,
		collectorService,
		enrichmentService,
		rankingService,
		dedupRepo,
		metricsRepo,
		notifier,
	)

	reportService := reporting.NewService(cfg, metricsRepo, notifier)

	// Inicializa os agendadores de publicação e relatório
	publishSyncService := scheduler.NewPublishSyncService(publishService, cfg)
	weeklyReportSyncService := scheduler.NewWeeklyReportSyncService(reportService, cfg)

	// Inicia os agendadores em background
	if err := publishSyncService.Start(ctx); err != nil {
		logrus.WithError(err).Error("Erro ao iniciar o agendador dos slots de publicação")
	} else {
		logrus.Info("Agendador dos slots de publicação iniciado com sucesso")
	}

	if err := weeklyReportSyncService.Start(ctx); err != nil {
		logrus.WithError(err).Error("Erro ao iniciar o agendador do relatório semanal")
	} else {
		logrus.Info("Agendador do relatório semanal iniciado com sucesso")
	}

	server, err := api.New(
		cfg,
		reportService,
		publishSyncService,
		weeklyReportSyncService,
	)
	if err != nil {
		logrus.Fatal(err)
	}

	if err := server.Run(ctx); err != nil {
		logrus.Error(err)
	}
}

// configureLogger configura o formato e comportamento dos logs
func configureLogger() {
	_, file, _, _ := runtime.Caller(0)
	dir := path.Dir(file)
	os.Chdir(dir)

	logrus.SetFormatter(&logrus.TextFormatter{
		FullTimestamp:   true,
		TimestampFormat: time.RFC3339,
	})
}
