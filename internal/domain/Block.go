package domain

// Block é uma janela histórica de tamanho fixo usada como eixo temporal da
// agregação. Os blocos de uma execução são contíguos, sem sobreposição e
// ordenados do mais antigo (index 0) para o mais recente.
type Block struct {
	Index int  `json:"index"`
	Start Date `json:"start"`
	End   Date `json:"end"`
}

// Days retorna a quantidade de dias cobertos pelo bloco (inclusive)
func (b Block) Days() int {
	return int(b.End.Sub(b.Start.Time).Hours()/24) + 1
}
