package optimizing

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/vfg2006/ads-optimizer-api/internal/domain"
)

func TestCalculateBenchmarks(t *testing.T) {
	campaignSnapshot := func(blockIndex int, impressions, clicks int64) domain.MetricSnapshot {
		return domain.MetricSnapshot{
			BlockIndex:  blockIndex,
			Impressions: impressions,
			Clicks:      clicks,
		}
	}

	tests := []struct {
		name            string
		campaignRecords []domain.CampaignRecord
		assetSeries     []domain.AssetSeries
		validate        func(t *testing.T, benchmarks map[int64]domain.CampaignBenchmark)
	}{
		{
			name: "CTR e CPI calculados apenas sobre o bloco mais recente",
			campaignRecords: []domain.CampaignRecord{
				// Bloco antigo com CTR altíssimo não pode contaminar o benchmark
				{CampaignID: 100, CampaignName: "Campanha A", MetricSnapshot: campaignSnapshot(0, 100, 90)},
				{CampaignID: 100, CampaignName: "Campanha A", MetricSnapshot: campaignSnapshot(1, 1000, 50)},
			},
			assetSeries: []domain.AssetSeries{
				{
					CampaignID: 100,
					Series: []domain.MetricSnapshot{
						{BlockIndex: 0, Cost: 99.0, Installs: 1},
						{BlockIndex: 1, Cost: 10.0, Installs: 4},
					},
				},
			},
			validate: func(t *testing.T, benchmarks map[int64]domain.CampaignBenchmark) {
				require.Len(t, benchmarks, 1)

				benchmark := benchmarks[100]
				require.NotNil(t, benchmark.CTR)
				assert.InDelta(t, 0.05, *benchmark.CTR, 1e-9)
				require.NotNil(t, benchmark.CPI)
				assert.InDelta(t, 2.5, *benchmark.CPI, 1e-9)
			},
		},
		{
			name: "Campanha sem linhas de asset no bloco mais recente - CPI fica nil (left join)",
			campaignRecords: []domain.CampaignRecord{
				{CampaignID: 100, CampaignName: "Campanha A", MetricSnapshot: campaignSnapshot(1, 1000, 50)},
				{CampaignID: 200, CampaignName: "Campanha B", MetricSnapshot: campaignSnapshot(1, 2000, 40)},
			},
			assetSeries: []domain.AssetSeries{
				{
					CampaignID: 100,
					Series: []domain.MetricSnapshot{
						{BlockIndex: 1, Cost: 20.0, Installs: 10},
					},
				},
			},
			validate: func(t *testing.T, benchmarks map[int64]domain.CampaignBenchmark) {
				require.Len(t, benchmarks, 2)

				require.NotNil(t, benchmarks[100].CPI)
				assert.InDelta(t, 2.0, *benchmarks[100].CPI, 1e-9)

				require.NotNil(t, benchmarks[200].CTR)
				assert.Nil(t, benchmarks[200].CPI)
			},
		},
		{
			name: "Totais zerados no bloco mais recente - razões indefinidas ficam nil",
			campaignRecords: []domain.CampaignRecord{
				{CampaignID: 100, CampaignName: "Campanha A", MetricSnapshot: campaignSnapshot(0, 0, 0)},
			},
			assetSeries: []domain.AssetSeries{
				{
					CampaignID: 100,
					Series: []domain.MetricSnapshot{
						{BlockIndex: 0, Cost: 5.0, Installs: 0},
					},
				},
			},
			validate: func(t *testing.T, benchmarks map[int64]domain.CampaignBenchmark) {
				require.Len(t, benchmarks, 1)
				assert.Nil(t, benchmarks[100].CTR)
				assert.Nil(t, benchmarks[100].CPI)
			},
		},
		{
			name:            "Sem registros de campanha - deve devolver mapa vazio",
			campaignRecords: []domain.CampaignRecord{},
			assetSeries:     []domain.AssetSeries{},
			validate: func(t *testing.T, benchmarks map[int64]domain.CampaignBenchmark) {
				assert.NotNil(t, benchmarks)
				assert.Empty(t, benchmarks)
			},
		},
		{
			name: "Múltiplas ocorrências de asset da mesma campanha - custos e installs são somados",
			campaignRecords: []domain.CampaignRecord{
				{CampaignID: 100, CampaignName: "Campanha A", MetricSnapshot: campaignSnapshot(0, 1000, 100)},
			},
			assetSeries: []domain.AssetSeries{
				{
					CampaignID: 100,
					Series:     []domain.MetricSnapshot{{BlockIndex: 0, Cost: 6.0, Installs: 2}},
				},
				{
					CampaignID: 100,
					Series:     []domain.MetricSnapshot{{BlockIndex: 0, Cost: 4.0, Installs: 3}},
				},
			},
			validate: func(t *testing.T, benchmarks map[int64]domain.CampaignBenchmark) {
				require.Len(t, benchmarks, 1)
				require.NotNil(t, benchmarks[100].CPI)
				assert.InDelta(t, 2.0, *benchmarks[100].CPI, 1e-9)
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			tt.validate(t, CalculateBenchmarks(tt.campaignRecords, tt.assetSeries))
		})
	}
}
