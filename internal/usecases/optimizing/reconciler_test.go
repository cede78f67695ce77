package optimizing

import (
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/vfg2006/ads-optimizer-api/internal/domain"
)

func resolvedCampaignCandidate(id int64, action string) ResolvedCandidate {
	return ResolvedCandidate{
		Candidate: domain.RecommendationCandidate{
			ID:     int64Ptr(id),
			Action: action,
		},
		Level:        domain.RecommendationLevelCampaign,
		CampaignID:   id,
		CampaignName: fmt.Sprintf("Campanha %d", id),
	}
}

func TestDedupeAndLimit(t *testing.T) {
	tests := []struct {
		name     string
		resolved []ResolvedCandidate
		validate func(t *testing.T, result []ResolvedCandidate)
	}{
		{
			name: "Mesma entidade com pause e create_variation - vence a ação mais decisiva",
			resolved: []ResolvedCandidate{
				resolvedCampaignCandidate(100, domain.ActionCreateVariation),
				resolvedCampaignCandidate(100, domain.ActionPause),
			},
			validate: func(t *testing.T, result []ResolvedCandidate) {
				require.Len(t, result, 1)
				assert.Equal(t, domain.ActionPause, result[0].Candidate.Action)
			},
		},
		{
			name: "Empate de rank para a mesma entidade - fica a primeira encontrada",
			resolved: []ResolvedCandidate{
				{
					Candidate: domain.RecommendationCandidate{
						ID:     int64Ptr(100),
						Action: domain.ActionPause,
						Why:    "primeira",
					},
					CampaignID: 100,
				},
				{
					Candidate: domain.RecommendationCandidate{
						ID:     int64Ptr(100),
						Action: domain.ActionPause,
						Why:    "segunda",
					},
					CampaignID: 100,
				},
			},
			validate: func(t *testing.T, result []ResolvedCandidate) {
				require.Len(t, result, 1)
				assert.Equal(t, "primeira", result[0].Candidate.Why)
			},
		},
		{
			name: "Entidades distintas são ordenadas por rank de ação, scale antes de pause antes de replace",
			resolved: []ResolvedCandidate{
				resolvedCampaignCandidate(300, domain.ActionReplace),
				resolvedCampaignCandidate(100, domain.ActionScale),
				resolvedCampaignCandidate(200, domain.ActionPause),
			},
			validate: func(t *testing.T, result []ResolvedCandidate) {
				require.Len(t, result, 3)
				assert.Equal(t, domain.ActionScale, result[0].Candidate.Action)
				assert.Equal(t, domain.ActionPause, result[1].Candidate.Action)
				assert.Equal(t, domain.ActionReplace, result[2].Candidate.Action)
			},
		},
		{
			name: "Mesmo rank entre entidades distintas - ordem de chegada é preservada (ordenação estável)",
			resolved: []ResolvedCandidate{
				resolvedCampaignCandidate(100, domain.ActionPause),
				resolvedCampaignCandidate(200, domain.ActionPause),
				resolvedCampaignCandidate(300, domain.ActionPause),
			},
			validate: func(t *testing.T, result []ResolvedCandidate) {
				require.Len(t, result, 3)
				assert.Equal(t, int64(100), result[0].CampaignID)
				assert.Equal(t, int64(200), result[1].CampaignID)
				assert.Equal(t, int64(300), result[2].CampaignID)
			},
		},
		{
			name: "Dezesseis entidades - resultado é truncado em quinze",
			resolved: func() []ResolvedCandidate {
				resolved := make([]ResolvedCandidate, 0, 16)
				for i := int64(1); i <= 16; i++ {
					resolved = append(resolved, resolvedCampaignCandidate(i, domain.ActionPause))
				}
				return resolved
			}(),
			validate: func(t *testing.T, result []ResolvedCandidate) {
				assert.Len(t, result, MaxRecommendations)
				// Com rank igual, o truncamento corta as últimas entidades
				assert.Equal(t, int64(1), result[0].CampaignID)
				assert.Equal(t, int64(15), result[14].CampaignID)
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			tt.validate(t, dedupeAndLimit(tt.resolved))
		})
	}
}

func TestDedupeAndLimit_Idempotence(t *testing.T) {
	resolved := []ResolvedCandidate{
		resolvedCampaignCandidate(300, domain.ActionReplace),
		resolvedCampaignCandidate(100, domain.ActionScale),
		resolvedCampaignCandidate(100, domain.ActionPause),
		resolvedCampaignCandidate(200, domain.ActionCreateVariation),
	}

	once := dedupeAndLimit(resolved)
	twice := dedupeAndLimit(once)

	assert.Equal(t, once, twice)
}

func TestReconcileAll(t *testing.T) {
	ctr := 0.05
	benchmarkCTR := 0.04

	payload := &domain.Payload{
		Meta: domain.PayloadMeta{
			Blocks: []domain.Block{
				{Index: 0},
				{Index: 1},
			},
			Benchmarks: domain.Benchmarks{
				Campaign: map[int64]domain.CampaignBenchmark{
					100: {CTR: &benchmarkCTR},
				},
			},
		},
		CampaignRecords: []domain.CampaignRecord{
			{
				CampaignID:   100,
				CampaignName: "Campanha A",
				MetricSnapshot: domain.MetricSnapshot{
					BlockIndex:  1,
					Impressions: 1000,
					Clicks:      50,
					CTR:         &ctr,
				},
			},
		},
		AssetSeries: []domain.AssetSeries{
			{
				CampaignID:   100,
				CampaignName: "Campanha A",
				AdGroupID:    11,
				AdGroupName:  "Grupo",
				AssetID:      7001,
				AssetType:    "IMAGE",
				FieldType:    "MARKETING_IMAGE",
				Series: []domain.MetricSnapshot{
					{BlockIndex: 0, Impressions: 900},
					{BlockIndex: 1, Impressions: 1200, Clicks: 30},
				},
			},
			{
				// Série sem dados no bloco mais recente
				CampaignID:   100,
				CampaignName: "Campanha A",
				AdGroupID:    22,
				AssetID:      7002,
				AssetType:    "IMAGE",
				Series: []domain.MetricSnapshot{
					{BlockIndex: 0, Impressions: 300},
				},
			},
		},
	}

	resolver := NewResolver(payload)

	t.Run("Recomendação de asset carrega identidade completa, métricas do bloco mais recente e benchmark", func(t *testing.T) {
		resolved := []ResolvedCandidate{
			resolver.Resolve(domain.RecommendationCandidate{
				ID:      int64Ptr(7001),
				Action:  domain.ActionPause,
				Why:     "CTR abaixo do benchmark",
				Suggest: "Pausar o criativo",
			}),
		}

		recommendations := ReconcileAll(payload, resolved)

		require.Len(t, recommendations, 1)
		rec := recommendations[0]

		assert.Equal(t, "rec-7001-b1", rec.ID)
		assert.Equal(t, domain.RecommendationLevelAsset, rec.Level)
		assert.Equal(t, int64(100), rec.Entity.CampaignID)
		require.NotNil(t, rec.Entity.AssetID)
		assert.Equal(t, int64(7001), *rec.Entity.AssetID)
		require.NotNil(t, rec.Entity.AdGroupID)
		assert.Equal(t, int64(11), *rec.Entity.AdGroupID)

		require.NotNil(t, rec.Metrics)
		assert.Equal(t, 1, rec.Metrics.BlockIndex)
		assert.Equal(t, int64(1200), rec.Metrics.Impressions)
		require.NotNil(t, rec.Metrics.Benchmark)
		assert.Equal(t, &benchmarkCTR, rec.Metrics.Benchmark.CTR)

		assert.Equal(t, domain.ActionPause, rec.Action.Type)
		assert.Equal(t, 4, rec.Action.Priority)
		assert.Equal(t, "CTR abaixo do benchmark", rec.RationaleShort)
		assert.Equal(t, "Pausar o criativo", rec.Suggestion)
	})

	t.Run("Entidade sem dados no bloco mais recente - cai para o último snapshot disponível", func(t *testing.T) {
		resolved := []ResolvedCandidate{
			resolver.Resolve(domain.RecommendationCandidate{
				ID:     int64Ptr(7002),
				Action: domain.ActionReplace,
			}),
		}

		recommendations := ReconcileAll(payload, resolved)

		require.Len(t, recommendations, 1)
		rec := recommendations[0]

		// O id da recomendação reflete o bloco do snapshot usado, não o mais
		// recente do payload
		assert.Equal(t, "rec-7002-b0", rec.ID)
		require.NotNil(t, rec.Metrics)
		assert.Equal(t, 0, rec.Metrics.BlockIndex)
		assert.Equal(t, int64(300), rec.Metrics.Impressions)
	})

	t.Run("Recomendação de campanha - campos de asset ficam nil e métricas vêm do registro de campanha", func(t *testing.T) {
		resolved := []ResolvedCandidate{
			resolver.Resolve(domain.RecommendationCandidate{
				ID:     int64Ptr(100),
				Action: domain.ActionScale,
			}),
		}

		recommendations := ReconcileAll(payload, resolved)

		require.Len(t, recommendations, 1)
		rec := recommendations[0]

		assert.Equal(t, "rec-100-b1", rec.ID)
		assert.Equal(t, domain.RecommendationLevelCampaign, rec.Level)
		assert.Nil(t, rec.Entity.AssetID)
		assert.Nil(t, rec.Entity.AdGroupID)

		require.NotNil(t, rec.Metrics)
		assert.Equal(t, int64(1000), rec.Metrics.Impressions)
		assert.Equal(t, 5, rec.Action.Priority)
	})

	t.Run("Pause e create_variation para a mesma entidade - sobrevive só a pause", func(t *testing.T) {
		resolved := []ResolvedCandidate{
			resolver.Resolve(domain.RecommendationCandidate{
				ID:     int64Ptr(7001),
				Action: domain.ActionCreateVariation,
			}),
			resolver.Resolve(domain.RecommendationCandidate{
				ID:     int64Ptr(7001),
				Action: domain.ActionPause,
			}),
		}

		recommendations := ReconcileAll(payload, resolved)

		require.Len(t, recommendations, 1)
		assert.Equal(t, domain.ActionPause, recommendations[0].Action.Type)
	})
}
