package gadsdomain

// SearchResponse é a resposta paginada do endpoint googleAds:search
type SearchResponse struct {
	Results       []SearchRow `json:"results"`
	NextPageToken string      `json:"nextPageToken"`
}

// SearchRow é uma linha de resultado GAQL; só os recursos selecionados na
// consulta vêm preenchidos
type SearchRow struct {
	Customer           *Customer           `json:"customer,omitempty"`
	Campaign           *Campaign           `json:"campaign,omitempty"`
	AdGroup            *AdGroup            `json:"adGroup,omitempty"`
	Asset              *Asset              `json:"asset,omitempty"`
	AdGroupAdAssetView *AdGroupAdAssetView `json:"adGroupAdAssetView,omitempty"`
	Metrics            *Metrics            `json:"metrics,omitempty"`
}

// Customer são os metadados da conta anunciante
type Customer struct {
	ResourceName    string `json:"resourceName"`
	ID              string `json:"id"`
	DescriptiveName string `json:"descriptiveName"`
	CurrencyCode    string `json:"currencyCode"`
	TimeZone        string `json:"timeZone"`
}

type Campaign struct {
	ResourceName string `json:"resourceName"`
	ID           string `json:"id"`
	Name         string `json:"name"`
	Status       string `json:"status"`
}

type AdGroup struct {
	ResourceName string `json:"resourceName"`
	ID           string `json:"id"`
	Name         string `json:"name"`
}

// Asset carrega o criativo com o sub-objeto específico do tipo
type Asset struct {
	ResourceName      string             `json:"resourceName"`
	ID                string             `json:"id"`
	Type              string             `json:"type"`
	TextAsset         *TextAsset         `json:"textAsset,omitempty"`
	ImageAsset        *ImageAsset        `json:"imageAsset,omitempty"`
	YoutubeVideoAsset *YoutubeVideoAsset `json:"youtubeVideoAsset,omitempty"`
}

type TextAsset struct {
	Text string `json:"text"`
}

type ImageAsset struct {
	FullSize *ImageDimension `json:"fullSize,omitempty"`
}

type ImageDimension struct {
	URL          string `json:"url"`
	WidthPixels  string `json:"widthPixels"`
	HeightPixels string `json:"heightPixels"`
}

type YoutubeVideoAsset struct {
	YoutubeVideoID string `json:"youtubeVideoId"`
}

// AdGroupAdAssetView é o vínculo asset ↔ anúncio com o papel do asset
type AdGroupAdAssetView struct {
	ResourceName string `json:"resourceName"`
	FieldType    string `json:"fieldType"`
	AdGroupAd    string `json:"adGroupAd"`
	Asset        string `json:"asset"`
	Enabled      bool   `json:"enabled"`
}

// Metrics são os contadores da linha; a API REST serializa int64 como string
type Metrics struct {
	Impressions      string  `json:"impressions"`
	Clicks           string  `json:"clicks"`
	CostMicros       string  `json:"costMicros"`
	Conversions      float64 `json:"conversions"`
	ConversionsValue float64 `json:"conversionsValue"`
	AllConversions   float64 `json:"allConversions"`
}
