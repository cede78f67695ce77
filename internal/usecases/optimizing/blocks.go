package optimizing

import (
	"fmt"
	"time"

	"github.com/sirupsen/logrus"
	"github.com/vfg2006/ads-optimizer-api/internal/domain"
)

// PlanBlocks particiona a janela de lookback em blocos contíguos de tamanho
// fixo, ancorados em ontem no fuso horário da conta (o dia corrente é parcial
// e fica de fora). Caminha de trás para frente e inverte no final, então o
// index 0 é sempre o bloco mais antigo.
func PlanBlocks(blockLengthDays, totalDays int, timeZone string, now time.Time) ([]domain.Block, error) {
	if blockLengthDays <= 0 {
		return nil, NewConfigError("block_length_days", fmt.Sprintf("must be positive, got %d", blockLengthDays))
	}

	blockCount := totalDays / blockLengthDays
	if blockCount <= 0 {
		return nil, NewConfigError("total_days", fmt.Sprintf("window of %d days yields zero blocks of %d days", totalDays, blockLengthDays))
	}

	location, err := time.LoadLocation(timeZone)
	if err != nil {
		// Falha de fuso não aborta a execução, cai para UTC
		logrus.WithField("time_zone", timeZone).Warn("Fuso horário inválido, usando UTC")
		location = time.UTC
	}

	anchor := domain.NewDate(now.In(location)).AddDays(-1)

	blocks := make([]domain.Block, 0, blockCount)

	end := anchor
	for i := 0; i < blockCount; i++ {
		start := end.AddDays(-(blockLengthDays - 1))
		blocks = append(blocks, domain.Block{Start: start, End: end})
		end = start.AddDays(-1)
	}

	// Inverte para o mais antigo primeiro e atribui os índices definitivos
	for i, j := 0, len(blocks)-1; i < j; i, j = i+1, j-1 {
		blocks[i], blocks[j] = blocks[j], blocks[i]
	}
	for i := range blocks {
		blocks[i].Index = i
	}

	return blocks, nil
}
