package optimizing

import (
	"strings"
	"time"

	"github.com/pkg/errors"
	"github.com/vfg2006/ads-optimizer-api/internal/config"
	"github.com/vfg2006/ads-optimizer-api/internal/domain"
	"github.com/vfg2006/ads-optimizer-api/pkg/log"
	"github.com/vfg2006/ads-optimizer-api/pkg/utils"
)

const maxPlaySuggestions = 3

// Service implementa a interface Optimizer orquestrando o pipeline completo:
// planejamento de blocos, agregação, benchmarks, payload, geração e
// reconciliação das recomendações
type Service struct {
	cfg               *config.Config
	metricSource      MetricSource
	activeAssetSource ActiveAssetSource
	accountMetaSource AccountMetadataSource
	generator         RecommendationGenerator
	reviewSource      ReviewSource
}

// NewService cria uma nova instância do serviço de otimização
func NewService(
	cfg *config.Config,
	metricSource MetricSource,
	activeAssetSource ActiveAssetSource,
	accountMetaSource AccountMetadataSource,
	generator RecommendationGenerator,
	reviewSource ReviewSource,
) Optimizer {
	return &Service{
		cfg:               cfg,
		metricSource:      metricSource,
		activeAssetSource: activeAssetSource,
		accountMetaSource: accountMetaSource,
		generator:         generator,
		reviewSource:      reviewSource,
	}
}

// RunForAccount executa o pipeline completo para uma conta
func (s *Service) RunForAccount(accountID string) (*domain.OptimizationRun, error) {
	return s.runForAccountWithDate(accountID, time.Now())
}

// runForAccountWithDate é a versão interna que aceita uma data de referência,
// o que facilita os testes
func (s *Service) runForAccountWithDate(accountID string, referenceDate time.Time) (*domain.OptimizationRun, error) {
	logger := log.ForAccount(accountID)

	accountMeta, err := s.accountMetaSource.GetAccountMeta(accountID)
	if err != nil {
		return nil, errors.Wrap(err, ErrFetchAccountMeta.Error())
	}

	syncCfg := s.cfg.OptimizationSync

	blocks, err := PlanBlocks(syncCfg.BlockLengthDays, syncCfg.TotalDays, accountMeta.TimeZone, referenceDate)
	if err != nil {
		return nil, err
	}

	activeAssetIDs, err := s.activeAssetSource.GetActiveAssetIDs(accountID)
	if err != nil {
		return nil, errors.Wrap(err, ErrFetchActiveIDs.Error())
	}

	// Sem entidades ativas a execução termina limpa, antes de qualquer
	// chamada ao gerador
	if len(activeAssetIDs) == 0 {
		return nil, ErrNothingToDo
	}

	campaignRows, assetRows, err := s.fetchMetricRows(accountID, blocks, activeAssetIDs)
	if err != nil {
		return nil, errors.Wrap(err, ErrFetchMetrics.Error())
	}

	campaignRecords := AggregateCampaigns(campaignRows)
	assetSeries := AggregateAssets(assetRows)
	benchmarks := CalculateBenchmarks(campaignRecords, assetSeries)

	payload := BuildPayload(
		referenceDate,
		*accountMeta,
		syncCfg.BlockLengthDays,
		blocks,
		campaignRecords,
		assetSeries,
		benchmarks,
		s.fetchPlayReviews(logger),
	)

	response := s.generate(logger, payload)

	recommendations, droppedLines := s.reconcileLines(logger, payload, response.GoogleAds)

	runID, err := utils.GenerateID()
	if err != nil {
		return nil, errors.Wrap(err, "error generating run ID")
	}

	run := &domain.OptimizationRun{
		ID:              runID,
		AccountID:       accountID,
		GeneratedAt:     referenceDate.UTC(),
		BlockLengthDays: syncCfg.BlockLengthDays,
		Blocks:          blocks,
		Recommendations: recommendations,
		PlaySuggestions: trimPlaySuggestions(response.GooglePlay),
		DroppedLines:    droppedLines,
	}

	logger.WithFields(log.Fields{
		"recommendations": len(run.Recommendations),
		"dropped_lines":   run.DroppedLines,
	}).Info("Execução de otimização concluída")

	return run, nil
}

// fetchMetricRows busca as linhas brutas bloco a bloco e etiqueta cada linha
// com o índice e o intervalo do bloco de origem
func (s *Service) fetchMetricRows(
	accountID string,
	blocks []domain.Block,
	activeAssetIDs map[int64]struct{},
) ([]domain.MetricRow, []domain.MetricRow, error) {
	campaignRows := make([]domain.MetricRow, 0)
	assetRows := make([]domain.MetricRow, 0)

	for _, block := range blocks {
		blockCampaignRows, err := s.metricSource.GetCampaignMetrics(accountID, block.Start, block.End)
		if err != nil {
			return nil, nil, err
		}

		blockAssetRows, err := s.metricSource.GetAssetMetrics(accountID, block.Start, block.End, activeAssetIDs)
		if err != nil {
			return nil, nil, err
		}

		for i := range blockCampaignRows {
			tagRowWithBlock(&blockCampaignRows[i], block)
		}
		for i := range blockAssetRows {
			tagRowWithBlock(&blockAssetRows[i], block)
		}

		campaignRows = append(campaignRows, blockCampaignRows...)
		assetRows = append(assetRows, blockAssetRows...)
	}

	return campaignRows, assetRows, nil
}

func tagRowWithBlock(row *domain.MetricRow, block domain.Block) {
	row.BlockIndex = block.Index
	row.BlockStart = block.Start
	row.BlockEnd = block.End
}

// fetchPlayReviews busca as avaliações recentes do app; falha aqui não
// derruba a execução, o payload segue sem avaliações
func (s *Service) fetchPlayReviews(logger log.Logger) []domain.PlayReview {
	if s.reviewSource == nil || s.cfg.GooglePlay.PackageName == "" {
		return nil
	}

	reviews, err := s.reviewSource.GetRecentReviews(s.cfg.GooglePlay.PackageName)
	if err != nil {
		logger.WithError(err).Warn("Erro ao buscar avaliações do Google Play")
		return nil
	}

	return reviews
}

// generate chama o gerador de recomendações; qualquer falha degrada para
// listas vazias, reportada como warning, nunca como falha da execução
func (s *Service) generate(logger log.Logger, payload *domain.Payload) *domain.GeneratorResponse {
	response, err := s.generator.GenerateRecommendations(payload)
	if err != nil {
		logger.WithError(err).Warn("Erro no gerador de recomendações, seguindo com resultado vazio")
		return &domain.GeneratorResponse{GoogleAds: []string{}, GooglePlay: []string{}}
	}

	return response
}

// reconcileLines passa as linhas do gerador por sanitização, parse,
// validação e resolução, devolvendo o conjunto final reconciliado e a
// contagem de linhas descartadas
func (s *Service) reconcileLines(
	logger log.Logger,
	payload *domain.Payload,
	lines []string,
) ([]domain.StructuredRecommendation, int) {
	validIDs := payload.ValidIDs()
	resolver := NewResolver(payload)

	resolved := make([]ResolvedCandidate, 0, len(lines))
	dropped := 0

	for _, line := range lines {
		candidate := ParseLine(SanitizeLine(line))

		valid, reason := ValidateCandidate(candidate, validIDs)
		if !valid {
			dropped++
			logger.WithField("reason", reason).Debug("Linha de recomendação descartada")
			continue
		}

		resolved = append(resolved, resolver.Resolve(candidate))
	}

	return ReconcileAll(payload, resolved), dropped
}

// trimPlaySuggestions remove sugestões vazias e limita ao máximo permitido
func trimPlaySuggestions(suggestions []string) []string {
	trimmed := make([]string, 0, maxPlaySuggestions)
	for _, suggestion := range suggestions {
		suggestion = strings.TrimSpace(suggestion)
		if suggestion == "" {
			continue
		}

		trimmed = append(trimmed, suggestion)
		if len(trimmed) == maxPlaySuggestions {
			break
		}
	}

	return trimmed
}
