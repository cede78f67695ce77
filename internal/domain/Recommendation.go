package domain

// Níveis de resolução de uma recomendação
const (
	RecommendationLevelAsset    = "asset"
	RecommendationLevelCampaign = "campaign"
)

// Ações reconhecidas nas linhas do gerador
const (
	ActionScale           = "scale"
	ActionPause           = "pause"
	ActionReplace         = "replace"
	ActionCreateVariation = "create_variation"
)

// RecommendationCandidate é o resultado do parse de uma linha do gerador.
// O parse é total: linhas malformadas produzem um candidato parcialmente
// preenchido e a rejeição acontece só na etapa de validação.
type RecommendationCandidate struct {
	Raw              string
	ID               *int64
	CampaignNameHint string
	Action           string
	Why              string
	Suggest          string

	FieldCount int
	HasWhy     bool
	HasSuggest bool
}

// RecommendationEntity é a identidade resolvida da recomendação. Os campos
// de asset ficam nil quando a resolução cai para o nível de campanha.
type RecommendationEntity struct {
	CampaignID        int64   `json:"campaign_id"`
	CampaignName      string  `json:"campaign_name"`
	AdGroupID         *int64  `json:"ad_group_id"`
	AdGroupName       *string `json:"ad_group_name"`
	AssetID           *int64  `json:"asset_id"`
	AssetType         *string `json:"asset_type"`
	FieldType         *string `json:"field_type"`
	AssetResource     *string `json:"asset_resource"`
	AdGroupAdResource *string `json:"ad_group_ad_resource"`
}

// RecommendationMetrics é o retrato do bloco mais recente da entidade,
// acompanhado do benchmark da campanha correspondente
type RecommendationMetrics struct {
	BlockIndex  int                `json:"block_index"`
	Impressions int64              `json:"impressions"`
	Clicks      int64              `json:"clicks"`
	Installs    int64              `json:"installs"`
	Cost        float64            `json:"cost"`
	CTR         *float64           `json:"ctr"`
	CPI         *float64           `json:"cpi"`
	Benchmark   *CampaignBenchmark `json:"benchmark"`
}

// RecommendationAction é a ação final com sua prioridade de ranqueamento
type RecommendationAction struct {
	Type     string `json:"type"`
	Priority int    `json:"priority"`
}

// StructuredRecommendation é a unidade final e imutável de saída da
// reconciliação
type StructuredRecommendation struct {
	ID             string                 `json:"id"`
	Level          string                 `json:"level"`
	Entity         RecommendationEntity   `json:"entity"`
	Metrics        *RecommendationMetrics `json:"metrics"`
	Action         RecommendationAction   `json:"action"`
	RationaleShort string                 `json:"rationale_short"`
	Suggestion     string                 `json:"suggestion"`
	Raw            string                 `json:"raw"`
}

// ActionPriority retorna a prioridade de ranqueamento final da ação
// (maior vence)
func ActionPriority(action string) int {
	switch action {
	case ActionScale:
		return 5
	case ActionPause:
		return 4
	case ActionCreateVariation, ActionReplace:
		return 3
	default:
		return 2
	}
}

// ActionDedupeRank retorna a ordem usada na deduplicação por entidade
// (menor vence, a ação mais decisiva prevalece)
func ActionDedupeRank(action string) int {
	switch action {
	case ActionScale:
		return 0
	case ActionPause:
		return 1
	case ActionCreateVariation:
		return 2
	case ActionReplace:
		return 3
	default:
		return 4
	}
}

// IsKnownAction informa se a ação é uma das reconhecidas pelo pipeline
func IsKnownAction(action string) bool {
	switch action {
	case ActionScale, ActionPause, ActionReplace, ActionCreateVariation:
		return true
	}
	return false
}
