package scheduler

import (
	"errors"
	"testing"
	"time"

	repomocks "github.com/vfg2006/ads-optimizer-api/infrastructure/repository/mocks"
	"github.com/vfg2006/ads-optimizer-api/internal/config"
	"github.com/vfg2006/ads-optimizer-api/internal/domain"
	"github.com/vfg2006/ads-optimizer-api/internal/usecases/optimizing"
	optimizingmocks "github.com/vfg2006/ads-optimizer-api/internal/usecases/optimizing/mocks"
	"go.uber.org/mock/gomock"
)

func TestOptimizationSyncService_processAccount(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	// Mocks
	mockOptimizer := optimizingmocks.NewMockOptimizer(ctrl)
	mockRunRepo := repomocks.NewMockOptimizationRunRepository(ctrl)

	service := &OptimizationSyncService{
		optimizer: mockOptimizer,
		runRepo:   mockRunRepo,
	}

	sampleRun := &domain.OptimizationRun{
		ID:          "aB3xY9",
		AccountID:   "ACC001",
		GeneratedAt: time.Date(2024, 3, 20, 5, 0, 0, 0, time.UTC),
	}

	tests := []struct {
		name      string
		accountID string
		setup     func()
	}{
		{
			name:      "Execução bem sucedida - resultado é persistido",
			accountID: "ACC001",
			setup: func() {
				mockOptimizer.EXPECT().
					RunForAccount("ACC001").
					Return(sampleRun, nil)

				mockRunRepo.EXPECT().
					SaveOrUpdate(sampleRun).
					Return(nil)
			},
		},
		{
			name:      "Conta sem entidades ativas - termina limpa sem persistir nada",
			accountID: "ACC002",
			setup: func() {
				mockOptimizer.EXPECT().
					RunForAccount("ACC002").
					Return(nil, optimizing.ErrNothingToDo)

				// Nenhuma expectativa de SaveOrUpdate: qualquer chamada falha
				// o teste
			},
		},
		{
			name:      "Erro na execução - nada é persistido e o processamento não propaga pânico",
			accountID: "ACC003",
			setup: func() {
				mockOptimizer.EXPECT().
					RunForAccount("ACC003").
					Return(nil, errors.New("quota excedida"))
			},
		},
		{
			name:      "Erro ao persistir - é registrado sem derrubar o worker",
			accountID: "ACC004",
			setup: func() {
				mockOptimizer.EXPECT().
					RunForAccount("ACC004").
					Return(sampleRun, nil)

				mockRunRepo.EXPECT().
					SaveOrUpdate(sampleRun).
					Return(errors.New("conexão recusada"))
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			tt.setup()
			service.processAccount(tt.accountID)
		})
	}
}

func TestOptimizationSyncService_syncAllAccounts(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockOptimizer := optimizingmocks.NewMockOptimizer(ctrl)
	mockRunRepo := repomocks.NewMockOptimizationRunRepository(ctrl)

	appConfig := &config.Config{
		GoogleAds: config.GoogleAds{
			// Id vazio no meio da lista deve ser ignorado
			CustomerIDs: []string{"ACC001", "", "ACC002"},
		},
	}

	service := &OptimizationSyncService{
		config: OptimizationSyncConfig{
			MaxConcurrentJobs: 2,
			RetentionDays:     90,
		},
		appConfig: appConfig,
		optimizer: mockOptimizer,
		runRepo:   mockRunRepo,
	}

	runFor := func(accountID string) *domain.OptimizationRun {
		return &domain.OptimizationRun{ID: "run-" + accountID, AccountID: accountID}
	}

	mockOptimizer.EXPECT().
		RunForAccount("ACC001").
		Return(runFor("ACC001"), nil)
	mockOptimizer.EXPECT().
		RunForAccount("ACC002").
		Return(runFor("ACC002"), nil)

	mockRunRepo.EXPECT().
		SaveOrUpdate(gomock.Any()).
		Return(nil).
		Times(2)

	// Limpeza de retenção roda ao final da sincronização
	mockRunRepo.EXPECT().
		DeleteOlderThan(90).
		Return(int64(3), nil)

	service.syncAllAccounts()
}

func TestOptimizationSyncService_cleanupOldRuns(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockRunRepo := repomocks.NewMockOptimizationRunRepository(ctrl)

	t.Run("Retenção desabilitada - nada é removido", func(t *testing.T) {
		service := &OptimizationSyncService{
			config:  OptimizationSyncConfig{RetentionDays: 0},
			runRepo: mockRunRepo,
		}

		// Nenhuma expectativa de DeleteOlderThan
		service.cleanupOldRuns()
	})

	t.Run("Erro na remoção - é registrado sem propagar", func(t *testing.T) {
		service := &OptimizationSyncService{
			config:  OptimizationSyncConfig{RetentionDays: 30},
			runRepo: mockRunRepo,
		}

		mockRunRepo.EXPECT().
			DeleteOlderThan(30).
			Return(int64(0), errors.New("tabela bloqueada"))

		service.cleanupOldRuns()
	})
}
