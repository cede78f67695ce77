package gadsclient

import (
	"fmt"
	"strconv"
	"strings"

	gadsdomain "github.com/vfg2006/ads-optimizer-api/infrastructure/integrator/googleads/domain"
)

// GetAssetMetrics busca as métricas por ocorrência de asset (asset ↔ anúncio)
// no intervalo de datas, restritas ao conjunto de assets informado
func (c *GoogleAdsClient) GetAssetMetrics(customerID, startDate, endDate string, assetIDs []int64) ([]gadsdomain.SearchRow, error) {
	if len(assetIDs) == 0 {
		return []gadsdomain.SearchRow{}, nil
	}

	ids := make([]string, 0, len(assetIDs))
	for _, id := range assetIDs {
		ids = append(ids, strconv.FormatInt(id, 10))
	}

	query := fmt.Sprintf(`
		SELECT
			campaign.id,
			campaign.name,
			ad_group.id,
			ad_group.name,
			asset.id,
			asset.type,
			asset.resource_name,
			asset.text_asset.text,
			asset.image_asset.full_size.url,
			asset.image_asset.full_size.width_pixels,
			asset.image_asset.full_size.height_pixels,
			asset.youtube_video_asset.youtube_video_id,
			ad_group_ad_asset_view.field_type,
			ad_group_ad_asset_view.ad_group_ad,
			metrics.impressions,
			metrics.clicks,
			metrics.cost_micros,
			metrics.conversions,
			metrics.conversions_value,
			metrics.all_conversions
		FROM ad_group_ad_asset_view
		WHERE asset.id IN (%s)
			AND segments.date BETWEEN '%s' AND '%s'`,
		strings.Join(ids, ", "), startDate, endDate,
	)

	return c.search(customerID, query)
}
