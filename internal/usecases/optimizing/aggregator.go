package optimizing

import (
	"sort"

	"github.com/vfg2006/ads-optimizer-api/internal/domain"
	"github.com/vfg2006/ads-optimizer-api/pkg/utils"
)

// buildSnapshot deriva as razões de uma linha bruta aplicando a política de
// divisão por zero (razão indefinida vira nil, nunca 0 ou Inf)
func buildSnapshot(row domain.MetricRow) domain.MetricSnapshot {
	cost := utils.MicrosToUnit(row.CostMicros)

	return domain.MetricSnapshot{
		BlockIndex:      row.BlockIndex,
		BlockStart:      row.BlockStart,
		BlockEnd:        row.BlockEnd,
		Impressions:     row.Impressions,
		Clicks:          row.Clicks,
		Cost:            cost,
		Conversions:     row.Conversions,
		ConversionValue: row.ConversionValue,
		Installs:        row.Installs,
		CTR:             utils.SafeDivide(float64(row.Clicks), float64(row.Impressions)),
		CPA:             utils.SafeDivide(cost, row.Conversions),
		ROAS:            utils.SafeDivide(row.ConversionValue, cost),
		CPI:             utils.SafeDivide(cost, float64(row.Installs)),
	}
}

// AggregateCampaigns agrupa as linhas de campanha por id preservando a ordem
// de primeira aparição e ordena os registros de cada campanha por bloco.
// O resultado é a lista plana que entra no payload em campaign_records.
func AggregateCampaigns(rows []domain.MetricRow) []domain.CampaignRecord {
	order := make([]int64, 0)
	grouped := make(map[int64][]domain.CampaignRecord)

	for _, row := range rows {
		if _, ok := grouped[row.CampaignID]; !ok {
			order = append(order, row.CampaignID)
		}

		grouped[row.CampaignID] = append(grouped[row.CampaignID], domain.CampaignRecord{
			CampaignID:     row.CampaignID,
			CampaignName:   row.CampaignName,
			MetricSnapshot: buildSnapshot(row),
		})
	}

	records := make([]domain.CampaignRecord, 0, len(rows))
	for _, campaignID := range order {
		campaignRecords := grouped[campaignID]
		sort.SliceStable(campaignRecords, func(i, j int) bool {
			return campaignRecords[i].BlockIndex < campaignRecords[j].BlockIndex
		})
		records = append(records, campaignRecords...)
	}

	return records
}

// assetGroup acumula as linhas de uma mesma ocorrência durante o agrupamento
type assetGroup struct {
	first     domain.MetricRow
	snapshots []domain.MetricSnapshot
	rows      []domain.MetricRow
}

// AggregateAssets agrupa as linhas de asset pela tupla completa de identidade
// (a mesma peça criativa reaparece em outros ad groups como ocorrência
// distinta e não pode ser fundida), preservando a ordem de primeira aparição.
// Dentro de cada série os snapshots ficam ordenados por bloco e o preview é
// montado com o último valor não nulo de cada campo.
func AggregateAssets(rows []domain.MetricRow) []domain.AssetSeries {
	order := make([]domain.AssetKey, 0)
	grouped := make(map[domain.AssetKey]*assetGroup)

	for _, row := range rows {
		key := domain.AssetKey{
			CampaignID:        row.CampaignID,
			AdGroupID:         row.AdGroupID,
			AssetID:           row.AssetID,
			AssetType:         row.AssetType,
			FieldType:         row.FieldType,
			AssetResource:     row.AssetResource,
			AdGroupAdResource: row.AdGroupAdResource,
		}

		group, ok := grouped[key]
		if !ok {
			group = &assetGroup{first: row}
			grouped[key] = group
			order = append(order, key)
		}

		group.snapshots = append(group.snapshots, buildSnapshot(row))
		group.rows = append(group.rows, row)
	}

	series := make([]domain.AssetSeries, 0, len(order))
	for _, key := range order {
		group := grouped[key]

		sort.SliceStable(group.snapshots, func(i, j int) bool {
			return group.snapshots[i].BlockIndex < group.snapshots[j].BlockIndex
		})
		sort.SliceStable(group.rows, func(i, j int) bool {
			return group.rows[i].BlockIndex < group.rows[j].BlockIndex
		})

		kind := domain.KindFromAssetType(key.AssetType)

		series = append(series, domain.AssetSeries{
			CampaignID:        key.CampaignID,
			CampaignName:      group.first.CampaignName,
			AdGroupID:         key.AdGroupID,
			AdGroupName:       group.first.AdGroupName,
			AssetID:           key.AssetID,
			AssetType:         key.AssetType,
			FieldType:         key.FieldType,
			AssetResource:     key.AssetResource,
			AdGroupAdResource: key.AdGroupAdResource,
			Kind:              kind,
			Preview:           buildPreview(kind, group.rows),
			Series:            group.snapshots,
		})
	}

	return series
}

// buildPreview dobra a sequência ordenada de linhas guardando o valor não
// nulo mais recente de cada campo relevante ao kind (blocos antigos podem
// carregar metadados de criativo defasados ou ausentes)
func buildPreview(kind string, rows []domain.MetricRow) any {
	switch kind {
	case domain.AssetKindText:
		preview := domain.TextPreview{}
		for _, row := range rows {
			if row.AssetText != nil {
				preview.Text = row.AssetText
			}
		}
		return preview
	case domain.AssetKindImage:
		preview := domain.ImagePreview{}
		for _, row := range rows {
			if row.ImageURL != nil {
				preview.URL = row.ImageURL
			}
			if row.ImageWidth != nil {
				preview.Width = row.ImageWidth
			}
			if row.ImageHeight != nil {
				preview.Height = row.ImageHeight
			}
		}
		return preview
	case domain.AssetKindVideo:
		preview := domain.VideoPreview{}
		for _, row := range rows {
			if row.VideoID != nil {
				preview.VideoID = row.VideoID
			}
		}
		return preview
	default:
		return nil
	}
}
