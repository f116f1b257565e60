package repository

import (
	"context"
	"database/sql"
	"fmt"
	"time"

	"github.com/vfg2006/dataops-local/infrastructure/database/postgres"
	"github.com/vfg2006/dataops-local/internal/domain"
)

// CommissionRepository mantém o histórico detalhado dos cálculos de comissão
type CommissionRepository interface {
	Append(ctx context.Context, commissions []*domain.ComputedCommission) (int, error)
	ListByPeriod(ctx context.Context, start, end time.Time) ([]*domain.ComputedCommission, error)
}

type commissionRepository struct {
	conn *postgres.Connection
}

func NewCommissionRepository(conn *postgres.Connection) CommissionRepository {
	return &commissionRepository{
		conn: conn,
	}
}

func (r *commissionRepository) Append(ctx context.Context, commissions []*domain.ComputedCommission) (int, error) {
	if len(commissions) == 0 {
		return 0, nil
	}

	err := r.conn.RunInTransaction(ctx, func(tx *sql.Tx) error {
		query := psql.
			Insert(postgres.TableComputedCommission).
			Columns(
				"profissional",
				"periodo_inicio",
				"periodo_fim",
				"total_vendas",
				"percentual_comissao",
				"valor_comissao",
				"salario_fixo",
				"total_pagar",
			)

		for _, c := range commissions {
			query = query.Values(
				c.Professional,
				c.PeriodStart,
				c.PeriodEnd,
				c.TotalSales,
				c.CommissionPercent,
				c.CommissionAmount,
				c.FixedSalary,
				c.TotalPayable,
			)
		}

		sqlQuery, args, err := query.ToSql()
		if err != nil {
			return fmt.Errorf("erro ao construir a query: %w", err)
		}

		if _, err := tx.ExecContext(ctx, sqlQuery, args...); err != nil {
			return describeWriteError(postgres.TableComputedCommission, err)
		}
		return nil
	})
	if err != nil {
		return 0, err
	}

	return len(commissions), nil
}

// ListByPeriod retorna os cálculos cujo período termina dentro do intervalo
func (r *commissionRepository) ListByPeriod(ctx context.Context, start, end time.Time) ([]*domain.ComputedCommission, error) {
	query, args, err := psql.
		Select(
			"id",
			"profissional",
			"periodo_inicio",
			"periodo_fim",
			"total_vendas",
			"COALESCE(percentual_comissao, 0)",
			"COALESCE(valor_comissao, 0)",
			"COALESCE(salario_fixo, 0)",
			"total_pagar",
			"data_calculo",
		).
		From(postgres.TableComputedCommission).
		Where("periodo_fim BETWEEN ? AND ?", start, end).
		OrderBy("data_calculo DESC", "profissional").
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("erro ao construir a query: %w", err)
	}

	rows, err := r.conn.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("erro ao executar a query: %w", err)
	}
	defer rows.Close()

	result := make([]*domain.ComputedCommission, 0)
	for rows.Next() {
		var c domain.ComputedCommission
		err := rows.Scan(
			&c.ID,
			&c.Professional,
			&c.PeriodStart,
			&c.PeriodEnd,
			&c.TotalSales,
			&c.CommissionPercent,
			&c.CommissionAmount,
			&c.FixedSalary,
			&c.TotalPayable,
			&c.ComputedAt,
		)
		if err != nil {
			return nil, fmt.Errorf("erro ao escanear comissão: %w", err)
		}
		result = append(result, &c)
	}

	if err = rows.Err(); err != nil {
		return nil, fmt.Errorf("erro durante a iteração de linhas: %w", err)
	}

	return result, nil
}
