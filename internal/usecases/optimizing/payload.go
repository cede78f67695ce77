package optimizing

import (
	"time"

	"github.com/vfg2006/ads-optimizer-api/internal/domain"
)

// BuildPayload monta o retrato final da execução a partir das saídas dos
// estágios anteriores. Montagem pura: nenhum cálculo novo acontece aqui, só
// a garantia de que tudo é serializável (razões indefinidas já são nil e
// viram null no JSON, nunca campos omitidos).
func BuildPayload(
	generatedAt time.Time,
	account domain.AccountMeta,
	blockLengthDays int,
	blocks []domain.Block,
	campaignRecords []domain.CampaignRecord,
	assetSeries []domain.AssetSeries,
	benchmarks map[int64]domain.CampaignBenchmark,
	playReviews []domain.PlayReview,
) *domain.Payload {
	if campaignRecords == nil {
		campaignRecords = []domain.CampaignRecord{}
	}
	if assetSeries == nil {
		assetSeries = []domain.AssetSeries{}
	}
	if benchmarks == nil {
		benchmarks = map[int64]domain.CampaignBenchmark{}
	}
	if playReviews == nil {
		playReviews = []domain.PlayReview{}
	}

	return &domain.Payload{
		Meta: domain.PayloadMeta{
			GeneratedAt:     generatedAt.UTC().Format(time.RFC3339),
			Account:         account,
			BlockLengthDays: blockLengthDays,
			Blocks:          blocks,
			Benchmarks:      domain.Benchmarks{Campaign: benchmarks},
		},
		CampaignRecords: campaignRecords,
		AssetSeries:     assetSeries,
		PlayReviews:     playReviews,
	}
}
