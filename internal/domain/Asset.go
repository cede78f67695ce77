package domain

import "strings"

// Tipos de asset conhecidos e o kind de preview correspondente
const (
	AssetKindText  = "text"
	AssetKindImage = "image"
	AssetKindVideo = "video"
)

// AssetKey é a tupla completa de identidade de uma ocorrência de asset.
// O mesmo criativo pode reaparecer em outros ad groups/campanhas como
// ocorrências distintas, por isso a chave carrega todos os campos.
type AssetKey struct {
	CampaignID        int64
	AdGroupID         int64
	AssetID           int64
	AssetType         string
	FieldType         string
	AssetResource     string
	AdGroupAdResource string
}

// TextPreview é o preview de assets textuais
type TextPreview struct {
	Text *string `json:"text"`
}

// ImagePreview é o preview de assets de imagem
type ImagePreview struct {
	URL    *string `json:"url"`
	Width  *int64  `json:"width"`
	Height *int64  `json:"height"`
}

// VideoPreview é o preview de assets de vídeo
type VideoPreview struct {
	VideoID *string `json:"video_id"`
}

// AssetSeries é a série temporal agregada de uma ocorrência de asset.
// Series é ordenada por block_index crescente; blocos sem dados para a
// ocorrência simplesmente não aparecem.
type AssetSeries struct {
	CampaignID        int64  `json:"campaign_id"`
	CampaignName      string `json:"campaign_name"`
	AdGroupID         int64  `json:"ad_group_id"`
	AdGroupName       string `json:"ad_group_name"`
	AssetID           int64  `json:"asset_id"`
	AssetType         string `json:"asset_type"`
	FieldType         string `json:"field_type"`
	AssetResource     string `json:"asset_resource"`
	AdGroupAdResource string `json:"ad_group_ad_resource"`

	Kind    string           `json:"kind"`
	Preview any              `json:"preview"`
	Series  []MetricSnapshot `json:"series"`
}

// Key retorna a tupla de identidade da ocorrência
func (s AssetSeries) Key() AssetKey {
	return AssetKey{
		CampaignID:        s.CampaignID,
		AdGroupID:         s.AdGroupID,
		AssetID:           s.AssetID,
		AssetType:         s.AssetType,
		FieldType:         s.FieldType,
		AssetResource:     s.AssetResource,
		AdGroupAdResource: s.AdGroupAdResource,
	}
}

// KindFromAssetType classifica o tipo de asset em text, image ou video,
// caindo para o tipo bruto em minúsculas quando desconhecido
func KindFromAssetType(assetType string) string {
	switch strings.ToUpper(assetType) {
	case "TEXT":
		return AssetKindText
	case "IMAGE":
		return AssetKindImage
	case "YOUTUBE_VIDEO", "VIDEO":
		return AssetKindVideo
	default:
		return strings.ToLower(assetType)
	}
}
