package domain

import "time"

// GeneratorResponse é a resposta do gerador de recomendações: linhas
// candidatas para Google Ads e sugestões livres para Google Play
type GeneratorResponse struct {
	GoogleAds  []string `json:"google_ads"`
	GooglePlay []string `json:"google_play"`
}

// OptimizationRun é o resultado estruturado e persistível de uma execução
// completa do pipeline para uma conta
type OptimizationRun struct {
	ID              string                     `json:"id"`
	AccountID       string                     `json:"account_id"`
	GeneratedAt     time.Time                  `json:"generated_at"`
	BlockLengthDays int                        `json:"block_length_days"`
	Blocks          []Block                    `json:"blocks"`
	Recommendations []StructuredRecommendation `json:"recommendations"`
	PlaySuggestions []string                   `json:"play_suggestions"`
	DroppedLines    int                        `json:"dropped_lines"`
}
