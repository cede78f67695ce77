package optimizing

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/vfg2006/ads-optimizer-api/internal/domain"
)

const (
	markerAction  = "ACTION="
	markerWhy     = "WHY="
	markerSuggest = "SUGGEST="
)

// SanitizeLine normaliza espaços em branco de uma linha do gerador antes do
// parse: colapsa sequências de espaços e remove espaços ao redor dos pipes
func SanitizeLine(line string) string {
	line = strings.Join(strings.Fields(line), " ")

	fields := strings.Split(line, "|")
	for i := range fields {
		fields[i] = strings.TrimSpace(fields[i])
	}

	return strings.Join(fields, "|")
}

// ParseLine converte uma linha do gerador em um candidato. O parse é total:
// nunca falha, linhas malformadas produzem um candidato parcial e a rejeição
// fica a cargo do validador.
func ParseLine(line string) domain.RecommendationCandidate {
	candidate := domain.RecommendationCandidate{
		Raw:        line,
		HasWhy:     strings.Contains(line, markerWhy),
		HasSuggest: strings.Contains(line, markerSuggest),
	}

	if !strings.Contains(line, "|") {
		return candidate
	}

	fields := strings.Split(line, "|")
	candidate.FieldCount = len(fields)

	if id, err := strconv.ParseInt(strings.TrimSpace(fields[0]), 10, 64); err == nil {
		candidate.ID = &id
	}

	if len(fields) > 1 {
		candidate.CampaignNameHint = strings.TrimSpace(fields[1])
	}

	for _, field := range fields[2:] {
		field = strings.TrimSpace(field)
		switch {
		case strings.HasPrefix(field, markerAction):
			candidate.Action = strings.ToLower(strings.TrimSpace(strings.TrimPrefix(field, markerAction)))
		case strings.HasPrefix(field, markerWhy):
			candidate.Why = strings.TrimSpace(strings.TrimPrefix(field, markerWhy))
		case strings.HasPrefix(field, markerSuggest):
			candidate.Suggest = strings.TrimSpace(strings.TrimPrefix(field, markerSuggest))
		}
		// Chaves desconhecidas são ignoradas, não são erro
	}

	return candidate
}

// FormatLine é o inverso de ParseLine para candidatos completos cujo texto
// livre não contém pipe literal
func FormatLine(candidate domain.RecommendationCandidate) string {
	id := ""
	if candidate.ID != nil {
		id = strconv.FormatInt(*candidate.ID, 10)
	}

	return fmt.Sprintf("%s|%s|%s%s|%s%s|%s%s",
		id,
		candidate.CampaignNameHint,
		markerAction, candidate.Action,
		markerWhy, candidate.Why,
		markerSuggest, candidate.Suggest,
	)
}
