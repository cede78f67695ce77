package domain

// MetricRow é uma linha bruta de métricas de uma entidade (campanha ou
// ocorrência de asset) em um único bloco, já etiquetada com o índice do bloco
// de origem. Custos chegam em micros (unidade monetária * 1e6).
type MetricRow struct {
	CampaignID   int64
	CampaignName string

	// Campos preenchidos apenas em linhas de nível de asset
	AdGroupID         int64
	AdGroupName       string
	AssetID           int64
	AssetType         string
	FieldType         string
	AssetResource     string
	AdGroupAdResource string

	// Metadados de criativo (podem faltar em blocos antigos)
	AssetText   *string
	ImageURL    *string
	ImageWidth  *int64
	ImageHeight *int64
	VideoID     *string

	Impressions     int64
	Clicks          int64
	CostMicros      int64
	Conversions     float64
	ConversionValue float64
	Installs        int64

	BlockIndex int
	BlockStart Date
	BlockEnd   Date
}

// MetricSnapshot é a visão derivada de uma MetricRow dentro de uma série:
// contadores brutos mais as razões calculadas. Razões indefinidas (divisão
// por zero) ficam nil e são serializadas como null, nunca como 0 ou Inf.
type MetricSnapshot struct {
	BlockIndex      int      `json:"block_index"`
	BlockStart      Date     `json:"block_start"`
	BlockEnd        Date     `json:"block_end"`
	Impressions     int64    `json:"impressions"`
	Clicks          int64    `json:"clicks"`
	Cost            float64  `json:"cost"`
	Conversions     float64  `json:"conversions"`
	ConversionValue float64  `json:"conversion_value"`
	Installs        int64    `json:"installs"`
	CTR             *float64 `json:"ctr"`
	CPA             *float64 `json:"cpa"`
	ROAS            *float64 `json:"roas"`
	CPI             *float64 `json:"cpi"`
}

// CampaignRecord é um registro plano de métricas de campanha por bloco,
// exatamente como entra no payload em campaign_records.
type CampaignRecord struct {
	CampaignID   int64  `json:"campaign_id"`
	CampaignName string `json:"campaign_name"`
	MetricSnapshot
}
