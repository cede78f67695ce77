package gadsclient

import (
	"fmt"

	gadsdomain "github.com/vfg2006/ads-optimizer-api/infrastructure/integrator/googleads/domain"
)

// GetCampaignMetrics busca as métricas agregadas por campanha para o
// intervalo de datas informado
func (c *GoogleAdsClient) GetCampaignMetrics(customerID, startDate, endDate string) ([]gadsdomain.SearchRow, error) {
	query := fmt.Sprintf(`
		SELECT
			campaign.id,
			campaign.name,
			metrics.impressions,
			metrics.clicks,
			metrics.cost_micros,
			metrics.conversions,
			metrics.conversions_value,
			metrics.all_conversions
		FROM campaign
		WHERE campaign.status != 'REMOVED'
			AND segments.date BETWEEN '%s' AND '%s'`,
		startDate, endDate,
	)

	return c.search(customerID, query)
}
