package main

import (
	"context"
	"os"
	"path"
	"runtime"
	"time"

	"github.com/sirupsen/logrus"
	"github.com/vfg2006/ads-optimizer-api/infrastructure/database/postgres"
	"github.com/vfg2006/ads-optimizer-api/infrastructure/integrator/googleads"
	"github.com/vfg2006/ads-optimizer-api/infrastructure/integrator/googleads/gadsclient"
	"github.com/vfg2006/ads-optimizer-api/infrastructure/integrator/openai"
	"github.com/vfg2006/ads-optimizer-api/infrastructure/integrator/play"
	"github.com/vfg2006/ads-optimizer-api/infrastructure/integrator/play/playclient"
	"github.com/vfg2006/ads-optimizer-api/infrastructure/repository"
	"github.com/vfg2006/ads-optimizer-api/internal/api"
	"github.com/vfg2006/ads-optimizer-api/internal/config"
	"github.com/vfg2006/ads-optimizer-api/internal/scheduler"
	"github.com/vfg2006/ads-optimizer-api/internal/usecases/optimizing"
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

	runRepo := repository.NewOptimizationRunRepository(pgConn)

	tokenManager := gadsclient.NewTokenManager(cfg)

	googleAdsClient := gadsclient.NewClient(cfg, tokenManager)
	googleAdsIntegrator := googleads.New(cfg, googleAdsClient)

	playIntegrator := play.New(cfg, playclient.NewClient(cfg))

	openAIIntegrator := openai.New(cfg)

	optimizerService := optimizing.NewService(
		cfg,
		googleAdsIntegrator, // Implementa MetricSource
		googleAdsIntegrator, // Implementa ActiveAssetSource
		googleAdsIntegrator, // Implementa AccountMetadataSource
		openAIIntegrator,
		playIntegrator,
	)

	// Inicializa o agendador da sincronização diária de otimização
	optimizationSyncService := scheduler.NewOptimizationSyncService(
		optimizerService,
		runRepo,
		cfg,
	)

	// Inicia o agendador em background
	if err := optimizationSyncService.Start(ctx); err != nil {
		logrus.WithError(err).Error("Erro ao iniciar o agendador de sincronização de otimização")
	} else {
		logrus.Info("Agendador de sincronização de otimização iniciado com sucesso")
	}

	server, err := api.New(
		cfg,
		runRepo,
		optimizationSyncService,
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
