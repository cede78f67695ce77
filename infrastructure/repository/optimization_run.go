package repository

import (
	"database/sql"
	"encoding/json"
	"fmt"
	"time"

	"github.com/Masterminds/squirrel"
	"github.com/lib/pq"
	"github.com/vfg2006/ads-optimizer-api/infrastructure/database/postgres"
	"github.com/vfg2006/ads-optimizer-api/internal/domain"
)

const (
	optimizationRunsTable = "optimization_runs opr"
)

type OptimizationRunRepository interface {
	SaveOrUpdate(run *domain.OptimizationRun) error
	GetLatestByAccountID(accountID string) (*domain.OptimizationRun, error)
	ListByAccountID(accountID string, limit int) ([]*domain.OptimizationRun, error)
	DeleteOlderThan(days int) (int64, error)
}

type optimizationRunRepository struct {
	conn *postgres.Connection
}

func NewOptimizationRunRepository(conn *postgres.Connection) OptimizationRunRepository {
	return &optimizationRunRepository{
		conn: conn,
	}
}

// SaveOrUpdate grava o resultado completo da execução como JSONB; uma nova
// execução da mesma conta no mesmo dia substitui a anterior
func (r *optimizationRunRepository) SaveOrUpdate(run *domain.OptimizationRun) error {
	resultJSON, err := json.Marshal(run)
	if err != nil {
		return fmt.Errorf("erro ao serializar execução para JSON: %w", err)
	}

	query := squirrel.StatementBuilder.
		Insert("optimization_runs").
		Columns("run_id", "account_id", "run_date", "result").
		Values(
			run.ID,
			run.AccountID,
			run.GeneratedAt.Format("2006-01-02"),
			resultJSON,
		).
		Suffix(`
			ON CONFLICT (account_id, run_date) DO UPDATE SET
				run_id = EXCLUDED.run_id,
				result = EXCLUDED.result,
				updated_at = NOW()
		`).
		PlaceholderFormat(squirrel.Dollar)

	sqlQuery, args, err := query.ToSql()
	if err != nil {
		return fmt.Errorf("erro ao construir a query: %w", err)
	}

	_, err = r.conn.Exec(sqlQuery, args...)
	if err != nil {
		if pqErr, ok := err.(*pq.Error); ok {
			return fmt.Errorf("erro no banco de dados: %w (código: %s)", pqErr, pqErr.Code)
		}
		return fmt.Errorf("erro ao executar a query: %w", err)
	}

	return nil
}

func (r *optimizationRunRepository) GetLatestByAccountID(accountID string) (*domain.OptimizationRun, error) {
	query, args, err := squirrel.
		Select("opr.result").
		From(optimizationRunsTable).
		Where(squirrel.Eq{"opr.account_id": accountID}).
		OrderBy("opr.run_date DESC").
		Limit(1).
		PlaceholderFormat(squirrel.Dollar).
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("erro ao construir a query: %w", err)
	}

	row := r.conn.QueryRow(query, args...)

	run, err := scanRun(row)
	if err != nil {
		if err == sql.ErrNoRows {
			return nil, nil
		}
		return nil, fmt.Errorf("erro ao escanear execução: %w", err)
	}

	return run, nil
}

func (r *optimizationRunRepository) ListByAccountID(accountID string, limit int) ([]*domain.OptimizationRun, error) {
	query, args, err := squirrel.
		Select("opr.result").
		From(optimizationRunsTable).
		Where(squirrel.Eq{"opr.account_id": accountID}).
		OrderBy("opr.run_date DESC").
		Limit(uint64(limit)).
		PlaceholderFormat(squirrel.Dollar).
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("erro ao construir a query: %w", err)
	}

	rows, err := r.conn.Query(query, args...)
	if err != nil {
		if err == sql.ErrNoRows {
			return nil, nil
		}
		return nil, fmt.Errorf("erro ao executar a query: %w", err)
	}
	defer rows.Close()

	runs := make([]*domain.OptimizationRun, 0)
	for rows.Next() {
		var resultJSON []byte
		if err := rows.Scan(&resultJSON); err != nil {
			return nil, fmt.Errorf("erro ao escanear execuções: %w", err)
		}

		run := &domain.OptimizationRun{}
		if err := json.Unmarshal(resultJSON, run); err != nil {
			return nil, fmt.Errorf("erro ao deserializar JSON de result: %w", err)
		}
		runs = append(runs, run)
	}

	if err = rows.Err(); err != nil {
		return nil, fmt.Errorf("erro durante a iteração de linhas: %w", err)
	}

	return runs, nil
}

func (r *optimizationRunRepository) DeleteOlderThan(days int) (int64, error) {
	cutoffDate := time.Now().AddDate(0, 0, -days).Format("2006-01-02")

	query, args, err := squirrel.
		Delete("optimization_runs").
		Where(squirrel.Lt{"run_date": cutoffDate}).
		PlaceholderFormat(squirrel.Dollar).
		ToSql()
	if err != nil {
		return 0, fmt.Errorf("erro ao construir a query: %w", err)
	}

	result, err := r.conn.Exec(query, args...)
	if err != nil {
		return 0, fmt.Errorf("erro ao executar a query: %w", err)
	}

	rowsAffected, err := result.RowsAffected()
	if err != nil {
		return 0, fmt.Errorf("erro ao obter número de linhas afetadas: %w", err)
	}

	return rowsAffected, nil
}

func scanRun(row *sql.Row) (*domain.OptimizationRun, error) {
	var resultJSON []byte

	if err := row.Scan(&resultJSON); err != nil {
		return nil, err
	}

	run := &domain.OptimizationRun{}
	if err := json.Unmarshal(resultJSON, run); err != nil {
		return nil, fmt.Errorf("erro ao deserializar JSON de result: %w", err)
	}

	return run, nil
}
