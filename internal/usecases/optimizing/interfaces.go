package optimizing

import (
	"github.com/vfg2006/ads-optimizer-api/internal/domain"
)

// MetricSource define a interface para buscar linhas brutas de métricas da
// plataforma de anúncios
type MetricSource interface {
	// GetCampaignMetrics obtém as métricas de campanha para um intervalo de datas
	GetCampaignMetrics(accountID string, start, end domain.Date) ([]domain.MetricRow, error)

	// GetAssetMetrics obtém as métricas por ocorrência de asset para um intervalo
	// de datas, restritas ao conjunto de assets ativos informado
	GetAssetMetrics(accountID string, start, end domain.Date, activeAssetIDs map[int64]struct{}) ([]domain.MetricRow, error)
}

// ActiveAssetSource define a interface para listar os assets elegíveis
// (status habilitado) de uma conta
type ActiveAssetSource interface {
	// GetActiveAssetIDs retorna o conjunto de ids de assets ativos da conta
	GetActiveAssetIDs(accountID string) (map[int64]struct{}, error)
}

// AccountMetadataSource define a interface para obter os metadados da conta
type AccountMetadataSource interface {
	// GetAccountMeta retorna id, nome, fuso horário e moeda da conta
	GetAccountMeta(accountID string) (*domain.AccountMeta, error)
}

// RecommendationGenerator define a interface do gerador de recomendações
type RecommendationGenerator interface {
	// GenerateRecommendations envia o payload e retorna as linhas candidatas
	GenerateRecommendations(payload *domain.Payload) (*domain.GeneratorResponse, error)
}

// ReviewSource define a interface para buscar avaliações recentes do app
type ReviewSource interface {
	// GetRecentReviews retorna as avaliações mais recentes do aplicativo
	GetRecentReviews(packageName string) ([]domain.PlayReview, error)
}

// Optimizer é a interface completa do pipeline de otimização
type Optimizer interface {
	// RunForAccount executa o pipeline completo para uma conta
	RunForAccount(accountID string) (*domain.OptimizationRun, error)
}
