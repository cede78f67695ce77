package optimizing

import (
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/vfg2006/ads-optimizer-api/internal/config"
	"github.com/vfg2006/ads-optimizer-api/internal/domain"
	"github.com/vfg2006/ads-optimizer-api/internal/usecases/optimizing/mocks"
	"go.uber.org/mock/gomock"
)

func optimizationTestConfig() *config.Config {
	return &config.Config{
		GooglePlay: config.GooglePlay{
			PackageName: "app.exemplo.android",
		},
		OptimizationSync: config.OptimizationSync{
			BlockLengthDays: 7,
			TotalDays:       14,
		},
	}
}

func TestService_RunForAccount(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	// Mocks
	mockMetricSource := mocks.NewMockMetricSource(ctrl)
	mockActiveAssetSource := mocks.NewMockActiveAssetSource(ctrl)
	mockAccountMetaSource := mocks.NewMockAccountMetadataSource(ctrl)
	mockGenerator := mocks.NewMockRecommendationGenerator(ctrl)
	mockReviewSource := mocks.NewMockReviewSource(ctrl)

	service := &Service{
		cfg:               optimizationTestConfig(),
		metricSource:      mockMetricSource,
		activeAssetSource: mockActiveAssetSource,
		accountMetaSource: mockAccountMetaSource,
		generator:         mockGenerator,
		reviewSource:      mockReviewSource,
	}

	// Data de referência fixa: 20 de março de 2024. Com blocos de 7 dias em
	// uma janela de 14, o pipeline cobre 06/03 a 19/03.
	referenceDate := time.Date(2024, 3, 20, 12, 0, 0, 0, time.UTC)

	accountMeta := &domain.AccountMeta{
		ID:       "1234567890",
		Name:     "Conta de Teste",
		TimeZone: "UTC",
		Currency: "BRL",
	}

	activeAssetIDs := map[int64]struct{}{7001: {}}

	campaignRow := domain.MetricRow{
		CampaignID:   100,
		CampaignName: "Campanha A",
		Impressions:  1000,
		Clicks:       50,
		CostMicros:   5_000_000,
	}

	assetRow := domain.MetricRow{
		CampaignID:        100,
		CampaignName:      "Campanha A",
		AdGroupID:         11,
		AdGroupName:       "Grupo",
		AssetID:           7001,
		AssetType:         "IMAGE",
		FieldType:         "MARKETING_IMAGE",
		AssetResource:     "customers/1234567890/assets/7001",
		AdGroupAdResource: "customers/1234567890/adGroupAds/1~1",
		Impressions:       800,
		Clicks:            20,
		CostMicros:        3_000_000,
		Installs:          5,
	}

	tests := []struct {
		name     string
		setup    func()
		validate func(t *testing.T, run *domain.OptimizationRun, err error)
	}{
		{
			name: "Execução completa - linhas válidas viram recomendações e inválidas são contadas como descartadas",
			setup: func() {
				mockAccountMetaSource.EXPECT().
					GetAccountMeta("1234567890").
					Return(accountMeta, nil)

				mockActiveAssetSource.EXPECT().
					GetActiveAssetIDs("1234567890").
					Return(activeAssetIDs, nil)

				// Um par de chamadas por bloco
				mockMetricSource.EXPECT().
					GetCampaignMetrics("1234567890", gomock.Any(), gomock.Any()).
					Return([]domain.MetricRow{campaignRow}, nil).
					Times(2)
				mockMetricSource.EXPECT().
					GetAssetMetrics("1234567890", gomock.Any(), gomock.Any(), activeAssetIDs).
					Return([]domain.MetricRow{assetRow}, nil).
					Times(2)

				mockReviewSource.EXPECT().
					GetRecentReviews("app.exemplo.android").
					Return([]domain.PlayReview{{ReviewID: "rev-1"}}, nil)

				mockGenerator.EXPECT().
					GenerateRecommendations(gomock.Any()).
					DoAndReturn(func(payload *domain.Payload) (*domain.GeneratorResponse, error) {
						// O payload entregue ao gerador reflete a execução
						assert.Equal(t, "1234567890", payload.Meta.Account.ID)
						assert.Len(t, payload.Meta.Blocks, 2)
						assert.Equal(t, "2024-03-06", payload.Meta.Blocks[0].Start.String())
						assert.Equal(t, "2024-03-19", payload.Meta.Blocks[1].End.String())
						assert.Len(t, payload.AssetSeries, 1)
						assert.Len(t, payload.PlayReviews, 1)

						return &domain.GeneratorResponse{
							GoogleAds: []string{
								"7001|Campanha A|ACTION=pause|WHY=CTR abaixo do benchmark|SUGGEST=Pausar o criativo",
								"9999|Campanha X|ACTION=pause|WHY=id inventado|SUGGEST=descartar",
								"linha sem estrutura",
							},
							GooglePlay: []string{"  Melhorar onboarding  ", "", "Revisar preço", "Responder avaliações", "Quarta sugestão"},
						}, nil
					})
			},
			validate: func(t *testing.T, run *domain.OptimizationRun, err error) {
				require.NoError(t, err)
				require.NotNil(t, run)

				assert.NotEmpty(t, run.ID)
				assert.Equal(t, "1234567890", run.AccountID)
				assert.Equal(t, referenceDate.UTC(), run.GeneratedAt)
				assert.Equal(t, 7, run.BlockLengthDays)
				assert.Len(t, run.Blocks, 2)

				require.Len(t, run.Recommendations, 1)
				rec := run.Recommendations[0]
				assert.Equal(t, "rec-7001-b1", rec.ID)
				assert.Equal(t, domain.RecommendationLevelAsset, rec.Level)
				assert.Equal(t, domain.ActionPause, rec.Action.Type)

				assert.Equal(t, 2, run.DroppedLines)

				// Sugestões vazias caem e o total é limitado a três
				assert.Equal(t, []string{"Melhorar onboarding", "Revisar preço", "Responder avaliações"}, run.PlaySuggestions)
			},
		},
		{
			name: "Conta sem entidades ativas - termina limpa antes de qualquer chamada ao gerador",
			setup: func() {
				mockAccountMetaSource.EXPECT().
					GetAccountMeta("1234567890").
					Return(accountMeta, nil)

				mockActiveAssetSource.EXPECT().
					GetActiveAssetIDs("1234567890").
					Return(map[int64]struct{}{}, nil)

				// Nenhuma expectativa de métricas nem de gerador: qualquer
				// chamada extra falha o teste
			},
			validate: func(t *testing.T, run *domain.OptimizationRun, err error) {
				assert.Nil(t, run)
				assert.ErrorIs(t, err, ErrNothingToDo)
			},
		},
		{
			name: "Falha do gerador - degrada para execução sem recomendações, nunca para erro",
			setup: func() {
				mockAccountMetaSource.EXPECT().
					GetAccountMeta("1234567890").
					Return(accountMeta, nil)

				mockActiveAssetSource.EXPECT().
					GetActiveAssetIDs("1234567890").
					Return(activeAssetIDs, nil)

				mockMetricSource.EXPECT().
					GetCampaignMetrics("1234567890", gomock.Any(), gomock.Any()).
					Return([]domain.MetricRow{campaignRow}, nil).
					Times(2)
				mockMetricSource.EXPECT().
					GetAssetMetrics("1234567890", gomock.Any(), gomock.Any(), activeAssetIDs).
					Return([]domain.MetricRow{assetRow}, nil).
					Times(2)

				mockReviewSource.EXPECT().
					GetRecentReviews("app.exemplo.android").
					Return(nil, nil)

				mockGenerator.EXPECT().
					GenerateRecommendations(gomock.Any()).
					Return(nil, errors.New("timeout na API"))
			},
			validate: func(t *testing.T, run *domain.OptimizationRun, err error) {
				require.NoError(t, err)
				require.NotNil(t, run)

				assert.Empty(t, run.Recommendations)
				assert.Empty(t, run.PlaySuggestions)
				assert.Zero(t, run.DroppedLines)
			},
		},
		{
			name: "Falha nas avaliações do Google Play - execução segue sem avaliações",
			setup: func() {
				mockAccountMetaSource.EXPECT().
					GetAccountMeta("1234567890").
					Return(accountMeta, nil)

				mockActiveAssetSource.EXPECT().
					GetActiveAssetIDs("1234567890").
					Return(activeAssetIDs, nil)

				mockMetricSource.EXPECT().
					GetCampaignMetrics("1234567890", gomock.Any(), gomock.Any()).
					Return([]domain.MetricRow{campaignRow}, nil).
					Times(2)
				mockMetricSource.EXPECT().
					GetAssetMetrics("1234567890", gomock.Any(), gomock.Any(), activeAssetIDs).
					Return([]domain.MetricRow{assetRow}, nil).
					Times(2)

				mockReviewSource.EXPECT().
					GetRecentReviews("app.exemplo.android").
					Return(nil, errors.New("acesso negado"))

				mockGenerator.EXPECT().
					GenerateRecommendations(gomock.Any()).
					DoAndReturn(func(payload *domain.Payload) (*domain.GeneratorResponse, error) {
						assert.Empty(t, payload.PlayReviews)
						return &domain.GeneratorResponse{GoogleAds: []string{}, GooglePlay: []string{}}, nil
					})
			},
			validate: func(t *testing.T, run *domain.OptimizationRun, err error) {
				require.NoError(t, err)
				require.NotNil(t, run)
			},
		},
		{
			name: "Erro ao buscar metadados da conta - execução aborta",
			setup: func() {
				mockAccountMetaSource.EXPECT().
					GetAccountMeta("1234567890").
					Return(nil, errors.New("conta inacessível"))
			},
			validate: func(t *testing.T, run *domain.OptimizationRun, err error) {
				assert.Nil(t, run)
				require.Error(t, err)
				assert.Contains(t, err.Error(), ErrFetchAccountMeta.Error())
			},
		},
		{
			name: "Erro ao buscar métricas - execução aborta com o erro encadeado",
			setup: func() {
				mockAccountMetaSource.EXPECT().
					GetAccountMeta("1234567890").
					Return(accountMeta, nil)

				mockActiveAssetSource.EXPECT().
					GetActiveAssetIDs("1234567890").
					Return(activeAssetIDs, nil)

				mockMetricSource.EXPECT().
					GetCampaignMetrics("1234567890", gomock.Any(), gomock.Any()).
					Return(nil, errors.New("quota excedida"))
			},
			validate: func(t *testing.T, run *domain.OptimizationRun, err error) {
				assert.Nil(t, run)
				require.Error(t, err)
				assert.Contains(t, err.Error(), ErrFetchMetrics.Error())
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			tt.setup()

			run, err := service.runForAccountWithDate("1234567890", referenceDate)
			tt.validate(t, run, err)
		})
	}
}

func TestService_RunForAccount_InvalidBlockConfig(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockAccountMetaSource := mocks.NewMockAccountMetadataSource(ctrl)
	mockAccountMetaSource.EXPECT().
		GetAccountMeta("1234567890").
		Return(&domain.AccountMeta{ID: "1234567890", TimeZone: "UTC"}, nil)

	cfg := optimizationTestConfig()
	cfg.OptimizationSync.BlockLengthDays = 0

	service := &Service{
		cfg:               cfg,
		accountMetaSource: mockAccountMetaSource,
	}

	run, err := service.runForAccountWithDate("1234567890", time.Now())

	assert.Nil(t, run)

	var cfgErr *ConfigError
	require.ErrorAs(t, err, &cfgErr)
	assert.Equal(t, "block_length_days", cfgErr.Field)
}
