package optimizing

import (
	"fmt"
	"sort"

	"github.com/vfg2006/ads-optimizer-api/internal/domain"
)

// MaxRecommendations limita o tamanho da saída final; menos de 5 entradas é
// aceito como está (o gerador deveria produzir 5–15, mas não é imposto)
const MaxRecommendations = 15

// dedupeAndLimit deduplica por id de entidade (vence a ação de menor rank,
// empate fica com a primeira encontrada), ordena pelo mesmo rank e trunca.
// Função pura: reaplicá-la sobre a própria saída devolve a saída inalterada.
func dedupeAndLimit(resolved []ResolvedCandidate) []ResolvedCandidate {
	order := make([]int64, 0, len(resolved))
	best := make(map[int64]ResolvedCandidate)

	for _, current := range resolved {
		id := *current.Candidate.ID

		kept, ok := best[id]
		if !ok {
			best[id] = current
			order = append(order, id)
			continue
		}

		if domain.ActionDedupeRank(current.Candidate.Action) < domain.ActionDedupeRank(kept.Candidate.Action) {
			best[id] = current
		}
	}

	deduped := make([]ResolvedCandidate, 0, len(order))
	for _, id := range order {
		deduped = append(deduped, best[id])
	}

	sort.SliceStable(deduped, func(i, j int) bool {
		return domain.ActionDedupeRank(deduped[i].Candidate.Action) < domain.ActionDedupeRank(deduped[j].Candidate.Action)
	})

	if len(deduped) > MaxRecommendations {
		deduped = deduped[:MaxRecommendations]
	}

	return deduped
}

// Reconcile transforma os candidatos resolvidos no conjunto final de
// recomendações estruturadas: deduplica, ranqueia, trunca e anexa a cada
// sobrevivente o snapshot do bloco mais recente e o benchmark da campanha
func Reconcile(payload *domain.Payload, resolved []ResolvedCandidate) []domain.StructuredRecommendation {
	latest := payload.LatestBlockIndex()

	recommendations := make([]domain.StructuredRecommendation, 0, MaxRecommendations)
	for _, candidate := range resolved {
		recommendations = append(recommendations, buildRecommendation(payload, candidate, latest))
	}

	return recommendations
}

// ReconcileAll é o atalho dedupeAndLimit + Reconcile usado pelo pipeline
func ReconcileAll(payload *domain.Payload, resolved []ResolvedCandidate) []domain.StructuredRecommendation {
	return Reconcile(payload, dedupeAndLimit(resolved))
}

func buildRecommendation(payload *domain.Payload, resolved ResolvedCandidate, latestBlockIndex int) domain.StructuredRecommendation {
	candidate := resolved.Candidate
	entityID := *candidate.ID

	entity := domain.RecommendationEntity{
		CampaignID:   resolved.CampaignID,
		CampaignName: resolved.CampaignName,
	}

	var snapshot *domain.MetricSnapshot
	if resolved.Series != nil {
		series := resolved.Series
		entity.AdGroupID = &series.AdGroupID
		entity.AdGroupName = &series.AdGroupName
		entity.AssetID = &series.AssetID
		entity.AssetType = &series.AssetType
		entity.FieldType = &series.FieldType
		entity.AssetResource = &series.AssetResource
		entity.AdGroupAdResource = &series.AdGroupAdResource

		snapshot = latestSnapshot(series.Series, latestBlockIndex)
	} else {
		snapshot = latestCampaignSnapshot(payload.CampaignRecords, resolved.CampaignID, latestBlockIndex)
	}

	var metrics *domain.RecommendationMetrics
	blockIndex := latestBlockIndex
	if snapshot != nil {
		blockIndex = snapshot.BlockIndex

		var benchmark *domain.CampaignBenchmark
		if b, ok := payload.Meta.Benchmarks.Campaign[resolved.CampaignID]; ok {
			benchmark = &b
		}

		metrics = &domain.RecommendationMetrics{
			BlockIndex:  snapshot.BlockIndex,
			Impressions: snapshot.Impressions,
			Clicks:      snapshot.Clicks,
			Installs:    snapshot.Installs,
			Cost:        snapshot.Cost,
			CTR:         snapshot.CTR,
			CPI:         snapshot.CPI,
			Benchmark:   benchmark,
		}
	}

	return domain.StructuredRecommendation{
		ID:      fmt.Sprintf("rec-%d-b%d", entityID, blockIndex),
		Level:   resolved.Level,
		Entity:  entity,
		Metrics: metrics,
		Action: domain.RecommendationAction{
			Type:     candidate.Action,
			Priority: domain.ActionPriority(candidate.Action),
		},
		RationaleShort: candidate.Why,
		Suggestion:     candidate.Suggest,
		Raw:            candidate.Raw,
	}
}

// latestSnapshot devolve o snapshot do bloco mais recente do payload, caindo
// para o último snapshot disponível da série quando aquele bloco não tem
// dados para a entidade
func latestSnapshot(snapshots []domain.MetricSnapshot, latestBlockIndex int) *domain.MetricSnapshot {
	if len(snapshots) == 0 {
		return nil
	}

	for i := range snapshots {
		if snapshots[i].BlockIndex == latestBlockIndex {
			return &snapshots[i]
		}
	}

	// Series é ordenada por bloco crescente, o último é o mais recente
	return &snapshots[len(snapshots)-1]
}

func latestCampaignSnapshot(records []domain.CampaignRecord, campaignID int64, latestBlockIndex int) *domain.MetricSnapshot {
	snapshots := make([]domain.MetricSnapshot, 0)
	for _, record := range records {
		if record.CampaignID == campaignID {
			snapshots = append(snapshots, record.MetricSnapshot)
		}
	}

	return latestSnapshot(snapshots, latestBlockIndex)
}
