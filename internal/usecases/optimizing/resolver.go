package optimizing

import (
	"github.com/vfg2006/ads-optimizer-api/internal/domain"
)

// ResolvedCandidate é um candidato válido já amarrado a uma entidade do
// payload. Series fica nil quando a resolução cai para o nível de campanha.
type ResolvedCandidate struct {
	Candidate    domain.RecommendationCandidate
	Level        string
	Series       *domain.AssetSeries
	CampaignID   int64
	CampaignName string
}

// Resolver mantém o índice id → ocorrências de asset do payload. Um mesmo id
// pode aparecer em várias ocorrências (criativo reutilizado entre ad groups),
// por isso o índice é explicitamente um-para-muitos.
type Resolver struct {
	assetIndex    map[int64][]*domain.AssetSeries
	campaignNames map[int64]string
}

// NewResolver constrói o resolver a partir do payload da execução
func NewResolver(payload *domain.Payload) *Resolver {
	assetIndex := make(map[int64][]*domain.AssetSeries)
	for i := range payload.AssetSeries {
		series := &payload.AssetSeries[i]
		assetIndex[series.AssetID] = append(assetIndex[series.AssetID], series)
	}

	campaignNames := make(map[int64]string)
	for _, record := range payload.CampaignRecords {
		if _, ok := campaignNames[record.CampaignID]; !ok {
			campaignNames[record.CampaignID] = record.CampaignName
		}
	}

	return &Resolver{
		assetIndex:    assetIndex,
		campaignNames: campaignNames,
	}
}

// pickOccurrence desempata ocorrências de um mesmo id: vence a ocorrência
// cuja campanha bate com o hint de nome; sem hint que case, vence a primeira
// na ordem de aparição (ambiguidade aceita, nunca falha)
func pickOccurrence(occurrences []*domain.AssetSeries, campaignNameHint string) *domain.AssetSeries {
	if len(occurrences) == 0 {
		return nil
	}

	if campaignNameHint != "" {
		for _, occurrence := range occurrences {
			if occurrence.CampaignName == campaignNameHint {
				return occurrence
			}
		}
	}

	return occurrences[0]
}

// Resolve amarra um candidato validado a uma entidade do payload. Sempre
// resolve (a validação já garantiu que o id pertence ao payload); o único
// desvio é em qual nível a resolução acontece.
func (r *Resolver) Resolve(candidate domain.RecommendationCandidate) ResolvedCandidate {
	id := *candidate.ID

	if series := pickOccurrence(r.assetIndex[id], candidate.CampaignNameHint); series != nil {
		return ResolvedCandidate{
			Candidate:    candidate,
			Level:        domain.RecommendationLevelAsset,
			Series:       series,
			CampaignID:   series.CampaignID,
			CampaignName: series.CampaignName,
		}
	}

	// Sem ocorrência de asset o id é tratado como id de campanha; campanha
	// desconhecida cai para o hint de nome do próprio candidato
	name, ok := r.campaignNames[id]
	if !ok {
		name = candidate.CampaignNameHint
	}

	return ResolvedCandidate{
		Candidate:    candidate,
		Level:        domain.RecommendationLevelCampaign,
		CampaignID:   id,
		CampaignName: name,
	}
}
