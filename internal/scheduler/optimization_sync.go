package scheduler

import (
	"context"
	"errors"
	"fmt"
	"sync"
	"time"

	"github.com/go-co-op/gocron"
	"github.com/sirupsen/logrus"
	"github.com/vfg2006/ads-optimizer-api/infrastructure/repository"
	"github.com/vfg2006/ads-optimizer-api/internal/config"
	"github.com/vfg2006/ads-optimizer-api/internal/usecases/optimizing"
)

// OptimizationSyncConfig representa a configuração do agendador de otimização
type OptimizationSyncConfig struct {
	CronSchedule      string
	MaxConcurrentJobs int
	RetentionDays     int
	SyncEnabled       bool
}

// OptimizationSyncService gerencia o agendamento e execução diária do
// pipeline de otimização para todas as contas configuradas
type OptimizationSyncService struct {
	scheduler           *gocron.Scheduler
	config              OptimizationSyncConfig
	appConfig           *config.Config
	optimizer           optimizing.Optimizer
	runRepo             repository.OptimizationRunRepository
	syncRunning         bool
	syncMutex           sync.Mutex
	lastSyncStartedAt   time.Time
	lastSyncCompletedAt time.Time
}

// NewOptimizationSyncService cria uma nova instância do serviço de
// sincronização de otimização
func NewOptimizationSyncService(
	optimizer optimizing.Optimizer,
	runRepo repository.OptimizationRunRepository,
	appConfig *config.Config,
) *OptimizationSyncService {
	// Criar a configuração com base na config global
	syncConfig := OptimizationSyncConfig{
		CronSchedule:      appConfig.OptimizationSync.CronSchedule,
		MaxConcurrentJobs: appConfig.OptimizationSync.MaxConcurrentJobs,
		RetentionDays:     appConfig.OptimizationSync.RetentionDays,
		SyncEnabled:       appConfig.OptimizationSync.Enabled,
	}

	// Criar o agendador
	scheduler := gocron.NewScheduler(time.Local)

	logrus.WithFields(logrus.Fields{
		"cron_schedule":       syncConfig.CronSchedule,
		"max_concurrent_jobs": syncConfig.MaxConcurrentJobs,
		"retention_days":      syncConfig.RetentionDays,
		"sync_enabled":        syncConfig.SyncEnabled,
	}).Info("Configuração do agendador de otimização carregada")

	return &OptimizationSyncService{
		scheduler:   scheduler,
		config:      syncConfig,
		appConfig:   appConfig,
		optimizer:   optimizer,
		runRepo:     runRepo,
		syncRunning: false,
	}
}

// Start inicia o agendador
func (s *OptimizationSyncService) Start(ctx context.Context) error {
	if !s.config.SyncEnabled {
		logrus.Info("Sincronização de otimização desabilitada por configuração")
		return nil
	}

	logrus.WithField("cron", s.config.CronSchedule).Info("Iniciando agendador de sincronização de otimização")

	// Agendar a execução diária do pipeline
	_, err := s.scheduler.Cron(s.config.CronSchedule).Do(func() {
		s.syncAllAccounts()
	})
	if err != nil {
		return fmt.Errorf("erro ao agendar sincronização de otimização: %w", err)
	}

	// Executar o agendador em uma goroutine separada
	s.scheduler.StartAsync()

	// Configurar o cancelamento do agendador quando o contexto for cancelado
	go func() {
		<-ctx.Done()
		logrus.Info("Parando agendador de sincronização de otimização")
		s.scheduler.Stop()
	}()

	return nil
}

// syncAllAccounts executa o pipeline de otimização para todas as contas
// configuradas, com concorrência limitada
func (s *OptimizationSyncService) syncAllAccounts() {
	s.syncMutex.Lock()
	if s.syncRunning {
		s.syncMutex.Unlock()
		logrus.Info("Sincronização de otimização já em andamento, ignorando")
		return
	}
	s.syncRunning = true
	s.syncMutex.Unlock()

	startTime := time.Now()
	s.lastSyncStartedAt = startTime

	defer func() {
		s.syncMutex.Lock()
		s.syncRunning = false
		s.syncMutex.Unlock()
	}()

	accountIDs := s.appConfig.GoogleAds.CustomerIDs
	if len(accountIDs) == 0 {
		logrus.Info("Nenhuma conta configurada para sincronização de otimização")
		return
	}

	logrus.WithField("accounts", len(accountIDs)).Info("Iniciando sincronização de otimização para todas as contas configuradas")

	// Criar um canal para controlar o número de workers concorrentes
	semaphore := make(chan struct{}, s.config.MaxConcurrentJobs)
	var wg sync.WaitGroup

	for _, accountID := range accountIDs {
		if accountID == "" {
			continue
		}

		wg.Add(1)
		semaphore <- struct{}{} // Adquirir semáforo

		go func(id string) {
			defer func() {
				<-semaphore // Liberar semáforo
				wg.Done()
			}()

			s.processAccount(id)
		}(accountID)
	}

	// Aguardar todos os workers terminarem
	wg.Wait()

	s.cleanupOldRuns()

	duration := time.Since(startTime)
	logrus.WithFields(logrus.Fields{
		"duration": duration.String(),
		"accounts": len(accountIDs),
	}).Info("Sincronização de otimização concluída")

	s.lastSyncCompletedAt = time.Now()
}

// processAccount executa o pipeline para uma conta e persiste o resultado
func (s *OptimizationSyncService) processAccount(accountID string) {
	logrus.WithField("account_id", accountID).Info("Processando otimização para conta")

	run, err := s.optimizer.RunForAccount(accountID)
	if err != nil {
		// Conta sem entidades ativas termina limpa, não é falha
		if errors.Is(err, optimizing.ErrNothingToDo) {
			logrus.WithField("account_id", accountID).Info("Conta sem entidades ativas, nada a otimizar")
			return
		}

		logrus.WithFields(logrus.Fields{
			"account_id": accountID,
			"error":      err.Error(),
		}).Error("Erro ao executar otimização para conta")
		return
	}

	if err := s.runRepo.SaveOrUpdate(run); err != nil {
		logrus.WithFields(logrus.Fields{
			"account_id": accountID,
			"run_id":     run.ID,
			"error":      err.Error(),
		}).Error("Erro ao salvar execução de otimização no banco de dados")
		return
	}

	logrus.WithFields(logrus.Fields{
		"account_id":      accountID,
		"run_id":          run.ID,
		"recommendations": len(run.Recommendations),
		"dropped_lines":   run.DroppedLines,
	}).Info("Execução de otimização salva com sucesso")
}

// cleanupOldRuns remove execuções fora da janela de retenção
func (s *OptimizationSyncService) cleanupOldRuns() {
	if s.config.RetentionDays <= 0 {
		return
	}

	deleted, err := s.runRepo.DeleteOlderThan(s.config.RetentionDays)
	if err != nil {
		logrus.WithError(err).Error("Erro ao limpar execuções antigas")
		return
	}

	if deleted > 0 {
		logrus.WithField("deleted", deleted).Info("Execuções antigas removidas")
	}
}

// TriggerManualSync inicia manualmente uma sincronização de otimização
func (s *OptimizationSyncService) TriggerManualSync() {
	s.syncMutex.Lock()
	if s.syncRunning {
		s.syncMutex.Unlock()
		logrus.Info("Sincronização de otimização já em andamento, ignorando solicitação manual")
		return
	}
	s.syncMutex.Unlock()

	logrus.Info("Iniciando sincronização manual de otimização")
	go s.syncAllAccounts()
}

// GetStatus retorna o status atual do agendador
func (s *OptimizationSyncService) GetStatus() map[string]any {
	return map[string]any{
		"sync_enabled":           s.config.SyncEnabled,
		"sync_cron":              s.config.CronSchedule,
		"sync_max_concurrent":    s.config.MaxConcurrentJobs,
		"retention_days":         s.config.RetentionDays,
		"configured_accounts":    len(s.appConfig.GoogleAds.CustomerIDs),
		"last_sync_started_at":   s.lastSyncStartedAt,
		"last_sync_completed_at": s.lastSyncCompletedAt,
	}
}
