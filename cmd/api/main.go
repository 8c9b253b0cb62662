package main

import (
	"context"
	"time"

	"github.com/sirupsen/logrus"
	"github.com/vfg2006/cv-report-api/infrastructure/cache"
	"github.com/vfg2006/cv-report-api/infrastructure/database/postgres"
	"github.com/vfg2006/cv-report-api/infrastructure/integrator/ga4"
	"github.com/vfg2006/cv-report-api/infrastructure/integrator/ga4/ga4client"
	"github.com/vfg2006/cv-report-api/infrastructure/repository"
	"github.com/vfg2006/cv-report-api/internal/api"
	"github.com/vfg2006/cv-report-api/internal/config"
	"github.com/vfg2006/cv-report-api/internal/scheduler"
	"github.com/vfg2006/cv-report-api/internal/usecases/analyzing"
	"github.com/vfg2006/cv-report-api/internal/usecases/cvroutes"
	"github.com/vfg2006/cv-report-api/internal/usecases/manualcv"
	"github.com/vfg2006/cv-report-api/internal/usecases/reconciling"
	"github.com/vfg2006/cv-report-api/internal/usecases/reviewing"
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

	pgConn := pgconn(ctx, cfg.Database)
	defer pgConn.Close()

	tenantRepo := repository.NewTenantRepository(pgConn)
	routeRepo := repository.NewCVRouteRepository(pgConn)
	manualRepo := repository.NewManualCVRepository(pgConn)
	reviewRepo := repository.NewCVReviewRepository(pgConn)
	eventCountRepo := repository.NewEventCountRepository(pgConn)
	snapshotRepo := repository.NewMonthlyCVSnapshotRepository(pgConn)
	lockRepo := repository.NewJobLockRepository(pgConn)

	if err := reviewRepo.EnsureSchema(ctx); err != nil {
		logrus.WithError(err).Warn("Não foi possível provisionar a tabela de revisão, nova tentativa na primeira gravação")
	}

	resultCache := cache.NewResultCache(cfg.ResultCache)

	ga4Client, err := ga4client.NewClient(ctx, cfg)
	if err != nil {
		logrus.WithError(err).Fatal("Erro ao criar cliente do Google Analytics Data API")
	}
	ga4Integrator := ga4.New(cfg, ga4Client)

	resolver := reconciling.NewService(cfg, tenantRepo, routeRepo, manualRepo, reviewRepo, eventCountRepo, ga4Integrator, resultCache)

	routeService := cvroutes.NewService(cfg, tenantRepo, routeRepo, eventCountRepo, resultCache)
	manualService := manualcv.NewService(tenantRepo, routeRepo, manualRepo, resultCache)
	reviewService := reviewing.NewService(cfg, tenantRepo, routeRepo, reviewRepo, ga4Integrator, resultCache)
	analyzer := analyzing.NewService(cfg, tenantRepo, routeRepo, snapshotRepo, resolver, ga4Integrator, resultCache)

	// Inicializa a cadeia de recálculo dos resultados de CV
	cvRefreshChainService := scheduler.NewCVRefreshChainService(
		tenantRepo,
		lockRepo,
		snapshotRepo,
		eventCountRepo,
		resolver,
		cfg,
	)

	if err := cvRefreshChainService.Start(ctx); err != nil {
		logrus.WithError(err).Error("Erro ao iniciar a cadeia de recálculo de CV")
	} else {
		logrus.Info("Cadeia de recálculo de CV iniciada com sucesso")
	}

	server, err := api.New(
		cfg,
		pgConn,
		routeService,
		manualService,
		reviewService,
		analyzer,
		cvRefreshChainService,
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
	logrus.SetFormatter(&logrus.TextFormatter{
		FullTimestamp:   true,
		TimestampFormat: time.RFC3339,
	})
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
