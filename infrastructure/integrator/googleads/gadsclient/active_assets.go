package gadsclient

import (
	gadsdomain "github.com/vfg2006/ads-optimizer-api/infrastructure/integrator/googleads/domain"
)

// GetActiveAssets busca os vínculos de asset habilitados em anúncios ativos
// da conta (só eles entram na agregação)
func (c *GoogleAdsClient) GetActiveAssets(customerID string) ([]gadsdomain.SearchRow, error) {
	query := `
		SELECT
			asset.id,
			ad_group_ad_asset_view.enabled
		FROM ad_group_ad_asset_view
		WHERE ad_group_ad_asset_view.enabled = TRUE
			AND ad_group_ad.status = 'ENABLED'`

	return c.search(customerID, query)
}
