package optimizing

import (
	"regexp"
	"strings"

	"github.com/vfg2006/ads-optimizer-api/internal/domain"
)

const minLineFields = 5

// O contrato com o gerador exige substituir pipes literais do texto livre por
// um placeholder não ASCII; um pipe residual dentro de WHY ou SUGGEST indica
// linha malformada. Um pipe depois de WHY seguido de letra maiúscula é o
// separador legítimo do próximo campo KEY=.
var (
	whyPipeGuard     = regexp.MustCompile(`WHY=[^|]*\|[^A-Z]`)
	suggestPipeGuard = regexp.MustCompile(`SUGGEST=[^|]*\|`)
)

// ValidateCandidate aplica as regras de rejeição a um candidato já parseado.
// Retorna false com o motivo quando a linha deve ser descartada; linhas
// descartadas nunca abortam a reconciliação.
func ValidateCandidate(candidate domain.RecommendationCandidate, validIDs map[int64]struct{}) (bool, string) {
	if !strings.Contains(candidate.Raw, "|") {
		return false, "line has no field separator"
	}

	if candidate.FieldCount < minLineFields {
		return false, "line has fewer than 5 fields"
	}

	if candidate.ID == nil {
		return false, "entity id is missing or not numeric"
	}

	// A checagem de pertencimento só é pulada quando o payload não tem
	// nenhum id válido (payload vazio, invalidável)
	if len(validIDs) > 0 {
		if _, ok := validIDs[*candidate.ID]; !ok {
			return false, "entity id not present in payload"
		}
	}

	if !domain.IsKnownAction(candidate.Action) {
		return false, "unknown action value"
	}

	if !candidate.HasWhy || !candidate.HasSuggest {
		return false, "missing WHY or SUGGEST marker"
	}

	if whyPipeGuard.MatchString(candidate.Raw) || suggestPipeGuard.MatchString(candidate.Raw) {
		return false, "free text contains unescaped pipe"
	}

	return true, ""
}
