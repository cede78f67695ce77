package openai

import "encoding/json"

const recommendFunctionName = "recommend_actions"

// Contrato com o modelo: só ids presentes no payload, entre 5 e 15 linhas no
// formato pipe e o placeholder ∥ no lugar de pipes literais do texto livre
const systemPrompt = `Você é um analista de tráfego pago especializado em campanhas de aplicativos no Google Ads.

Analise as séries temporais por bloco do payload e produza recomendações de otimização.

Regras obrigatórias:
- Use SOMENTE ids de campanha ou de asset presentes no payload.
- Produza entre 5 e 15 linhas em google_ads, uma recomendação por linha, no formato:
  <id>|<nome_da_campanha>|ACTION=<scale|pause|replace|create_variation>|WHY=<motivo curto>|SUGGEST=<sugestão curta>
- Nunca use o caractere | dentro de WHY ou SUGGEST; substitua por ∥ se precisar.
- Compare cada asset com o benchmark (ctr, cpi) da campanha no bloco mais recente.
- Em google_play, sugira até 3 melhorias para a ficha do app com base nas avaliações.`

var recommendFunctionSchema = json.RawMessage(`{
	"type": "object",
	"properties": {
		"google_ads": {
			"type": "array",
			"items": {"type": "string"},
			"description": "Linhas de recomendação no formato id|campanha|ACTION=...|WHY=...|SUGGEST=..."
		},
		"google_play": {
			"type": "array",
			"items": {"type": "string"},
			"description": "Sugestões livres de melhoria para a ficha do app"
		}
	},
	"required": ["google_ads", "google_play"]
}`)
