package optimizing

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/vfg2006/ads-optimizer-api/internal/domain"
)

func stringPtr(s string) *string {
	return &s
}

func int64Ptr(n int64) *int64 {
	return &n
}

func campaignRow(campaignID int64, name string, blockIndex int, impressions, clicks, costMicros int64) domain.MetricRow {
	return domain.MetricRow{
		CampaignID:   campaignID,
		CampaignName: name,
		Impressions:  impressions,
		Clicks:       clicks,
		CostMicros:   costMicros,
		BlockIndex:   blockIndex,
	}
}

func TestAggregateCampaigns(t *testing.T) {
	tests := []struct {
		name     string
		rows     []domain.MetricRow
		validate func(t *testing.T, records []domain.CampaignRecord)
	}{
		{
			name: "Campanhas intercaladas e blocos fora de ordem - deve agrupar por primeira aparição e ordenar por bloco",
			rows: []domain.MetricRow{
				campaignRow(200, "Campanha B", 1, 500, 25, 2_000_000),
				campaignRow(100, "Campanha A", 1, 1000, 50, 5_000_000),
				campaignRow(200, "Campanha B", 0, 400, 20, 1_500_000),
				campaignRow(100, "Campanha A", 0, 900, 45, 4_000_000),
			},
			validate: func(t *testing.T, records []domain.CampaignRecord) {
				require.Len(t, records, 4)

				// Campanha 200 apareceu primeiro, seus registros vêm antes,
				// ordenados por bloco
				assert.Equal(t, int64(200), records[0].CampaignID)
				assert.Equal(t, 0, records[0].BlockIndex)
				assert.Equal(t, int64(200), records[1].CampaignID)
				assert.Equal(t, 1, records[1].BlockIndex)
				assert.Equal(t, int64(100), records[2].CampaignID)
				assert.Equal(t, 0, records[2].BlockIndex)
				assert.Equal(t, int64(100), records[3].CampaignID)
				assert.Equal(t, 1, records[3].BlockIndex)
			},
		},
		{
			name: "Custos em micros - deve converter para unidade monetária e derivar razões",
			rows: []domain.MetricRow{
				{
					CampaignID:      100,
					CampaignName:    "Campanha A",
					Impressions:     1000,
					Clicks:          50,
					CostMicros:      5_000_000,
					Conversions:     10,
					ConversionValue: 25.0,
					Installs:        4,
					BlockIndex:      0,
				},
			},
			validate: func(t *testing.T, records []domain.CampaignRecord) {
				require.Len(t, records, 1)

				snapshot := records[0].MetricSnapshot
				assert.Equal(t, 5.0, snapshot.Cost)

				require.NotNil(t, snapshot.CTR)
				assert.InDelta(t, 0.05, *snapshot.CTR, 1e-9)
				require.NotNil(t, snapshot.CPA)
				assert.InDelta(t, 0.5, *snapshot.CPA, 1e-9)
				require.NotNil(t, snapshot.ROAS)
				assert.InDelta(t, 5.0, *snapshot.ROAS, 1e-9)
				require.NotNil(t, snapshot.CPI)
				assert.InDelta(t, 1.25, *snapshot.CPI, 1e-9)
			},
		},
		{
			name: "Denominadores zerados - razões indefinidas ficam nil, nunca zero ou infinito",
			rows: []domain.MetricRow{
				{
					CampaignID:   100,
					CampaignName: "Campanha A",
					Impressions:  0,
					Clicks:       0,
					CostMicros:   0,
					Installs:     0,
					BlockIndex:   0,
				},
			},
			validate: func(t *testing.T, records []domain.CampaignRecord) {
				require.Len(t, records, 1)

				snapshot := records[0].MetricSnapshot
				assert.Nil(t, snapshot.CTR)
				assert.Nil(t, snapshot.CPA)
				assert.Nil(t, snapshot.ROAS)
				assert.Nil(t, snapshot.CPI)
			},
		},
		{
			name: "Sem linhas - deve devolver lista vazia, não nil",
			rows: []domain.MetricRow{},
			validate: func(t *testing.T, records []domain.CampaignRecord) {
				assert.NotNil(t, records)
				assert.Empty(t, records)
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			tt.validate(t, AggregateCampaigns(tt.rows))
		})
	}
}

func TestAggregateAssets(t *testing.T) {
	baseRow := func(adGroupID int64, blockIndex int) domain.MetricRow {
		return domain.MetricRow{
			CampaignID:        100,
			CampaignName:      "Campanha A",
			AdGroupID:         adGroupID,
			AdGroupName:       "Grupo",
			AssetID:           7001,
			AssetType:         "IMAGE",
			FieldType:         "MARKETING_IMAGE",
			AssetResource:     "customers/1/assets/7001",
			AdGroupAdResource: "customers/1/adGroupAds/1~1",
			Impressions:       100,
			Clicks:            10,
			BlockIndex:        blockIndex,
		}
	}

	t.Run("Mesmo asset em dois ad groups - ocorrências distintas não podem ser fundidas", func(t *testing.T) {
		rows := []domain.MetricRow{
			baseRow(11, 0),
			baseRow(22, 0),
			baseRow(11, 1),
		}

		series := AggregateAssets(rows)

		require.Len(t, series, 2)
		assert.Equal(t, int64(11), series[0].AdGroupID)
		assert.Len(t, series[0].Series, 2)
		assert.Equal(t, int64(22), series[1].AdGroupID)
		assert.Len(t, series[1].Series, 1)
	})

	t.Run("Blocos fora de ordem - série fica ordenada do bloco mais antigo para o mais recente", func(t *testing.T) {
		rows := []domain.MetricRow{
			baseRow(11, 2),
			baseRow(11, 0),
			baseRow(11, 1),
		}

		series := AggregateAssets(rows)

		require.Len(t, series, 1)
		require.Len(t, series[0].Series, 3)
		for i, snapshot := range series[0].Series {
			assert.Equal(t, i, snapshot.BlockIndex)
		}
	})

	t.Run("Preview de imagem - vence o último valor não nulo de cada campo", func(t *testing.T) {
		oldRow := baseRow(11, 0)
		oldRow.ImageURL = stringPtr("https://img/old.png")
		oldRow.ImageWidth = int64Ptr(800)
		oldRow.ImageHeight = int64Ptr(600)

		// Bloco mais recente sem dimensões: URL é atualizada, dimensões
		// permanecem do bloco anterior
		newRow := baseRow(11, 1)
		newRow.ImageURL = stringPtr("https://img/new.png")

		series := AggregateAssets([]domain.MetricRow{newRow, oldRow})

		require.Len(t, series, 1)
		assert.Equal(t, domain.AssetKindImage, series[0].Kind)

		preview, ok := series[0].Preview.(domain.ImagePreview)
		require.True(t, ok)
		assert.Equal(t, "https://img/new.png", *preview.URL)
		assert.Equal(t, int64(800), *preview.Width)
		assert.Equal(t, int64(600), *preview.Height)
	})

	t.Run("Asset de vídeo do YouTube - kind é video e preview carrega o id do vídeo", func(t *testing.T) {
		row := baseRow(11, 0)
		row.AssetType = "YOUTUBE_VIDEO"
		row.VideoID = stringPtr("dQw4w9WgXcQ")

		series := AggregateAssets([]domain.MetricRow{row})

		require.Len(t, series, 1)
		assert.Equal(t, domain.AssetKindVideo, series[0].Kind)

		preview, ok := series[0].Preview.(domain.VideoPreview)
		require.True(t, ok)
		assert.Equal(t, "dQw4w9WgXcQ", *preview.VideoID)
	})

	t.Run("Asset de texto - preview carrega o texto mais recente", func(t *testing.T) {
		row := baseRow(11, 0)
		row.AssetType = "TEXT"
		row.AssetText = stringPtr("Compre agora")

		series := AggregateAssets([]domain.MetricRow{row})

		require.Len(t, series, 1)
		assert.Equal(t, domain.AssetKindText, series[0].Kind)

		preview, ok := series[0].Preview.(domain.TextPreview)
		require.True(t, ok)
		assert.Equal(t, "Compre agora", *preview.Text)
	})
}
