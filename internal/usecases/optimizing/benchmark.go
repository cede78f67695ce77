package optimizing

import (
	"github.com/vfg2006/ads-optimizer-api/internal/domain"
	"github.com/vfg2006/ads-optimizer-api/pkg/utils"
)

// CalculateBenchmarks calcula as razões de referência por campanha usando
// apenas o bloco mais recente presente no agregado de campanha: CTR vem do
// nível de campanha e CPI do nível de asset do mesmo bloco, juntados por id
// de campanha (left join: campanha sem linhas de asset fica com CPI nil).
func CalculateBenchmarks(campaignRecords []domain.CampaignRecord, assetSeries []domain.AssetSeries) map[int64]domain.CampaignBenchmark {
	benchmarks := make(map[int64]domain.CampaignBenchmark)

	latest := -1
	for _, record := range campaignRecords {
		if record.BlockIndex > latest {
			latest = record.BlockIndex
		}
	}
	if latest < 0 {
		return benchmarks
	}

	type totals struct {
		impressions int64
		clicks      int64
		cost        float64
		installs    int64
	}

	campaignTotals := make(map[int64]*totals)
	for _, record := range campaignRecords {
		if record.BlockIndex != latest {
			continue
		}

		t, ok := campaignTotals[record.CampaignID]
		if !ok {
			t = &totals{}
			campaignTotals[record.CampaignID] = t
		}
		t.impressions += record.Impressions
		t.clicks += record.Clicks
	}

	assetTotals := make(map[int64]*totals)
	for _, series := range assetSeries {
		for _, snapshot := range series.Series {
			if snapshot.BlockIndex != latest {
				continue
			}

			t, ok := assetTotals[series.CampaignID]
			if !ok {
				t = &totals{}
				assetTotals[series.CampaignID] = t
			}
			t.cost += snapshot.Cost
			t.installs += snapshot.Installs
		}
	}

	for campaignID, t := range campaignTotals {
		benchmark := domain.CampaignBenchmark{
			CTR: utils.SafeDivide(float64(t.clicks), float64(t.impressions)),
		}

		if at, ok := assetTotals[campaignID]; ok {
			benchmark.CPI = utils.SafeDivide(at.cost, float64(at.installs))
		}

		benchmarks[campaignID] = benchmark
	}

	return benchmarks
}
