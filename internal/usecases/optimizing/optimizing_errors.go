package optimizing

import (
	"errors"
	"fmt"
)

// Erros específicos para o contexto de otimização
var (
	// ErrNothingToDo sinaliza uma execução sem entidades ativas: não é uma
	// falha, a execução termina limpa e sem payload
	ErrNothingToDo = errors.New("no active entities to optimize")

	// Erros de serviços externos
	ErrFetchAccountMeta = errors.New("error fetching account metadata")
	ErrFetchMetrics     = errors.New("error fetching metric rows")
	ErrFetchActiveIDs   = errors.New("error fetching active asset ids")
)

// ConfigError é um erro fatal de configuração do planejamento de blocos,
// detectado antes de qualquer busca externa
type ConfigError struct {
	Field   string
	Details string
}

// Error implementa a interface error
func (e *ConfigError) Error() string {
	return fmt.Sprintf("invalid optimization config: %s: %s", e.Field, e.Details)
}

// NewConfigError cria um novo ConfigError
func NewConfigError(field, details string) *ConfigError {
	return &ConfigError{Field: field, Details: details}
}
