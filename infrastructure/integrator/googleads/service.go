package googleads

import (
	"math"
	"strconv"

	"github.com/sirupsen/logrus"
	gadsdomain "github.com/vfg2006/ads-optimizer-api/infrastructure/integrator/googleads/domain"
	"github.com/vfg2006/ads-optimizer-api/infrastructure/integrator/googleads/gadsclient"
	"github.com/vfg2006/ads-optimizer-api/internal/config"
	"github.com/vfg2006/ads-optimizer-api/internal/domain"
)

// GoogleAdsIntegrator implementa as fontes de métricas, de assets ativos e
// de metadados de conta consumidas pelo pipeline de otimização
type GoogleAdsIntegrator struct {
	cfg    *config.Config
	Client gadsclient.Client
}

func New(cfg *config.Config, client gadsclient.Client) *GoogleAdsIntegrator {
	return &GoogleAdsIntegrator{
		cfg:    cfg,
		Client: client,
	}
}

// GetCampaignMetrics obtém as métricas de campanha para um intervalo de datas
func (s *GoogleAdsIntegrator) GetCampaignMetrics(accountID string, start, end domain.Date) ([]domain.MetricRow, error) {
	rows, err := s.Client.GetCampaignMetrics(accountID, start.String(), end.String())
	if err != nil {
		logrus.WithFields(logrus.Fields{
			"account_id": accountID,
			"error":      err.Error(),
		}).Error("googleads: failed to get campaign metrics from API")
		return nil, err
	}

	metricRows := make([]domain.MetricRow, 0, len(rows))
	for _, row := range rows {
		if row.Campaign == nil || row.Metrics == nil {
			continue
		}

		metricRow := domain.MetricRow{
			CampaignID:   parseInt64(row.Campaign.ID),
			CampaignName: row.Campaign.Name,
		}
		fillMetrics(&metricRow, row.Metrics)

		metricRows = append(metricRows, metricRow)
	}

	return metricRows, nil
}

// GetAssetMetrics obtém as métricas por ocorrência de asset para um intervalo
// de datas, restritas ao conjunto de assets ativos informado
func (s *GoogleAdsIntegrator) GetAssetMetrics(accountID string, start, end domain.Date, activeAssetIDs map[int64]struct{}) ([]domain.MetricRow, error) {
	ids := make([]int64, 0, len(activeAssetIDs))
	for id := range activeAssetIDs {
		ids = append(ids, id)
	}

	rows, err := s.Client.GetAssetMetrics(accountID, start.String(), end.String(), ids)
	if err != nil {
		logrus.WithFields(logrus.Fields{
			"account_id": accountID,
			"error":      err.Error(),
		}).Error("googleads: failed to get asset metrics from API")
		return nil, err
	}

	metricRows := make([]domain.MetricRow, 0, len(rows))
	for _, row := range rows {
		if row.Campaign == nil || row.Asset == nil || row.AdGroupAdAssetView == nil || row.Metrics == nil {
			continue
		}

		metricRow := domain.MetricRow{
			CampaignID:        parseInt64(row.Campaign.ID),
			CampaignName:      row.Campaign.Name,
			AssetID:           parseInt64(row.Asset.ID),
			AssetType:         row.Asset.Type,
			FieldType:         row.AdGroupAdAssetView.FieldType,
			AssetResource:     row.Asset.ResourceName,
			AdGroupAdResource: row.AdGroupAdAssetView.AdGroupAd,
		}

		if row.AdGroup != nil {
			metricRow.AdGroupID = parseInt64(row.AdGroup.ID)
			metricRow.AdGroupName = row.AdGroup.Name
		}

		fillAssetPreviewFields(&metricRow, row.Asset)
		fillMetrics(&metricRow, row.Metrics)

		metricRows = append(metricRows, metricRow)
	}

	return metricRows, nil
}

// GetActiveAssetIDs retorna o conjunto de ids de assets ativos da conta
func (s *GoogleAdsIntegrator) GetActiveAssetIDs(accountID string) (map[int64]struct{}, error) {
	rows, err := s.Client.GetActiveAssets(accountID)
	if err != nil {
		logrus.WithFields(logrus.Fields{
			"account_id": accountID,
			"error":      err.Error(),
		}).Error("googleads: failed to get active assets from API")
		return nil, err
	}

	ids := make(map[int64]struct{})
	for _, row := range rows {
		if row.Asset == nil {
			continue
		}
		ids[parseInt64(row.Asset.ID)] = struct{}{}
	}

	return ids, nil
}

// GetAccountMeta retorna id, nome, fuso horário e moeda da conta
func (s *GoogleAdsIntegrator) GetAccountMeta(accountID string) (*domain.AccountMeta, error) {
	customer, err := s.Client.GetCustomerMetadata(accountID)
	if err != nil {
		logrus.WithFields(logrus.Fields{
			"account_id": accountID,
			"error":      err.Error(),
		}).Error("googleads: failed to get customer metadata from API")
		return nil, err
	}

	return &domain.AccountMeta{
		ID:       customer.ID,
		Name:     customer.DescriptiveName,
		TimeZone: customer.TimeZone,
		Currency: customer.CurrencyCode,
	}, nil
}

// fillMetrics copia os contadores da resposta para a linha de métrica.
// Instalações vêm da ação de conversão primária (metrics.conversions);
// all_conversions agrega as demais ações
func fillMetrics(row *domain.MetricRow, metrics *gadsdomain.Metrics) {
	row.Impressions = parseInt64(metrics.Impressions)
	row.Clicks = parseInt64(metrics.Clicks)
	row.CostMicros = parseInt64(metrics.CostMicros)
	row.Conversions = metrics.AllConversions
	row.ConversionValue = metrics.ConversionsValue
	row.Installs = int64(math.Round(metrics.Conversions))
}

func fillAssetPreviewFields(row *domain.MetricRow, asset *gadsdomain.Asset) {
	if asset.TextAsset != nil && asset.TextAsset.Text != "" {
		text := asset.TextAsset.Text
		row.AssetText = &text
	}

	if asset.ImageAsset != nil && asset.ImageAsset.FullSize != nil {
		fullSize := asset.ImageAsset.FullSize
		if fullSize.URL != "" {
			url := fullSize.URL
			row.ImageURL = &url
		}
		if fullSize.WidthPixels != "" {
			width := parseInt64(fullSize.WidthPixels)
			row.ImageWidth = &width
		}
		if fullSize.HeightPixels != "" {
			height := parseInt64(fullSize.HeightPixels)
			row.ImageHeight = &height
		}
	}

	if asset.YoutubeVideoAsset != nil && asset.YoutubeVideoAsset.YoutubeVideoID != "" {
		videoID := asset.YoutubeVideoAsset.YoutubeVideoID
		row.VideoID = &videoID
	}
}

func parseInt64(value string) int64 {
	parsed, err := strconv.ParseInt(value, 10, 64)
	if err != nil {
		return 0
	}
	return parsed
}
