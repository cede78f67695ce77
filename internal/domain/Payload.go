package domain

// AccountMeta são os metadados da conta anunciante retornados pela plataforma
type AccountMeta struct {
	ID       string `json:"id"`
	Name     string `json:"name"`
	TimeZone string `json:"time_zone"`
	Currency string `json:"currency"`
}

// CampaignBenchmark guarda as razões de referência de uma campanha,
// calculadas apenas sobre o bloco mais recente
type CampaignBenchmark struct {
	CTR *float64 `json:"ctr"`
	CPI *float64 `json:"cpi"`
}

// Benchmarks agrupa os benchmarks por nível de entidade
type Benchmarks struct {
	Campaign map[int64]CampaignBenchmark `json:"campaign"`
}

// PlayReview é uma avaliação da loja de aplicativos incluída no payload
type PlayReview struct {
	ReviewID string `json:"review_id"`
	Rating   *int   `json:"rating"`
}

// PayloadMeta é o cabeçalho do payload enviado ao gerador
type PayloadMeta struct {
	GeneratedAt     string      `json:"generated_at"`
	Account         AccountMeta `json:"account"`
	BlockLengthDays int         `json:"block_length_days"`
	Blocks          []Block     `json:"blocks"`
	Benchmarks      Benchmarks  `json:"benchmarks"`
}

// Payload é o retrato serializável de uma execução, consumido pelo gerador
// de recomendações. Depois de montado não é mais alterado; é também a única
// fonte de verdade sobre quais identificadores são válidos na execução.
type Payload struct {
	Meta            PayloadMeta      `json:"meta"`
	CampaignRecords []CampaignRecord `json:"campaign_records"`
	AssetSeries     []AssetSeries    `json:"asset_series"`
	PlayReviews     []PlayReview     `json:"play_reviews"`
}

// ValidIDs retorna o conjunto de identificadores presentes no payload
// (ids de campanha ∪ ids de asset)
func (p *Payload) ValidIDs() map[int64]struct{} {
	ids := make(map[int64]struct{})
	for _, record := range p.CampaignRecords {
		ids[record.CampaignID] = struct{}{}
	}
	for _, series := range p.AssetSeries {
		ids[series.AssetID] = struct{}{}
	}
	return ids
}

// LatestBlockIndex retorna o maior block_index entre os blocos planejados,
// ou -1 quando não há blocos
func (p *Payload) LatestBlockIndex() int {
	latest := -1
	for _, block := range p.Meta.Blocks {
		if block.Index > latest {
			latest = block.Index
		}
	}
	return latest
}
