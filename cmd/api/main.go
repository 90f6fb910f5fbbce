package main

import (
	"context"
	"os"
	"path"
	"runtime"

	"github.com/sirupsen/logrus"
	"github.com/vfg2006/retail-sales-insights-api/infrastructure/database/postgres"
	"github.com/vfg2006/retail-sales-insights-api/infrastructure/repository"
	"github.com/vfg2006/retail-sales-insights-api/internal/api"
	"github.com/vfg2006/retail-sales-insights-api/internal/config"
	"github.com/vfg2006/retail-sales-insights-api/internal/scheduler"
	"github.com/vfg2006/retail-sales-insights-api/internal/usecases/analytics"
	"github.com/vfg2006/retail-sales-insights-api/internal/usecases/authenticating"
	"github.com/vfg2006/retail-sales-insights-api/internal/usecases/forecasting"
	"github.com/vfg2006/retail-sales-insights-api/pkg/log"
	"github.com/vfg2006/retail-sales-insights-api/pkg/metrics"
)

func main() {
	chdirToSource()

	cfg, err := config.NewConfig()
	if err != nil {
		logrus.Fatal(err)
	}

	if err := log.Configure(cfg.App.LogLevel); err != nil {
		logrus.Warnf("Nível de log inválido: %s, usando 'info'", cfg.App.LogLevel)
	}
	logrus.Infof("Nível de log configurado para: %s", logrus.GetLevel())

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	pgConn := pgconn(ctx, cfg.Database)
	defer pgConn.Close()

	monthlySalesRepo := repository.NewMonthlySalesRepository(pgConn)
	salesAnalyticsRepo := repository.NewSalesAnalyticsRepository(pgConn)
	forecastSnapshotRepo := repository.NewForecastSnapshotRepository(pgConn)

	collector, err := metrics.NewCollector()
	if err != nil {
		logrus.WithError(err).Fatal("Erro ao registrar métricas")
	}

	authenticator := authenticating.NewService(cfg)
	analyticsService := analytics.NewService(salesAnalyticsRepo)
	forecastService := forecasting.NewService(monthlySalesRepo, cfg).WithObserver(collector)

	snapshotSyncService := scheduler.NewForecastSnapshotSyncService(
		forecastService,
		forecastSnapshotRepo,
		cfg,
	).WithObserver(collector)

	if err := snapshotSyncService.Start(ctx); err != nil {
		logrus.WithError(err).Error("Erro ao iniciar o agendador de snapshots de previsão")
	} else {
		logrus.Info("Agendador de snapshots de previsão iniciado com sucesso")
	}

	server, err := api.New(
		cfg,
		forecastService,
		analyticsService,
		authenticator,
		snapshotSyncService,
		collector,
		pgConn,
	)
	if err != nil {
		logrus.Fatal(err)
	}

	if err := server.Run(ctx); err != nil {
		logrus.Error(err)
	}
}

// chdirToSource posiciona o processo no diretório do main para achar o .env local
func chdirToSource() {
	_, file, _, _ := runtime.Caller(0)
	if err := os.Chdir(path.Dir(file)); err != nil {
		logrus.WithError(err).Debug("Não foi possível mudar para o diretório do binário")
	}
}

// pgconn cria uma conexão com o banco de dados
func pgconn(ctx context.Context, dbConfig config.Database) *postgres.Connection {
	conn, err := postgres.NewConnection(ctx, dbConfig)
	if err != nil {
		logrus.WithError(err).Fatal("Erro ao conectar ao PostgreSQL")
	}

	err = conn.Ping(ctx)
	if err != nil {
		logrus.WithError(err).Fatal("Erro ao testar conexão com PostgreSQL")
	}

	logrus.Info("Conexão com PostgreSQL estabelecida com sucesso")
	return conn
}
