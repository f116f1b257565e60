package repository

import (
	"context"
	"database/sql"
	"fmt"
	"time"

	"github.com/Masterminds/squirrel"
	"github.com/vfg2006/dataops-local/infrastructure/database/postgres"
	"github.com/vfg2006/dataops-local/internal/domain"
)

type RevenueRepository interface {
	Append(ctx context.Context, revenues []*domain.Revenue) (int, error)
	SalesByProfessional(ctx context.Context, start, end time.Time) ([]*domain.ProfessionalSales, error)
}

type revenueRepository struct {
	conn *postgres.Connection
}

func NewRevenueRepository(conn *postgres.Connection) RevenueRepository {
	return &revenueRepository{
		conn: conn,
	}
}

// Append grava todas as receitas em uma única transação
func (r *revenueRepository) Append(ctx context.Context, revenues []*domain.Revenue) (int, error) {
	if len(revenues) == 0 {
		return 0, nil
	}

	err := r.conn.RunInTransaction(ctx, func(tx *sql.Tx) error {
		for _, batch := range chunk(revenues, insertBatchSize) {
			query := psql.
				Insert(postgres.TableRevenues).
				Columns(
					"data",
					"tipo_servico",
					"profissional",
					"cliente",
					"valor_servico",
					"forma_pagamento",
					"observacoes",
				)

			for _, rev := range batch {
				query = query.Values(
					rev.OccurredOn,
					rev.ServiceType,
					rev.Professional,
					nullString(rev.Client),
					rev.Amount,
					nullString(rev.PaymentMethod),
					nullString(rev.Notes),
				)
			}

			sqlQuery, args, err := query.ToSql()
			if err != nil {
				return fmt.Errorf("erro ao construir a query: %w", err)
			}

			if _, err := tx.ExecContext(ctx, sqlQuery, args...); err != nil {
				return describeWriteError(postgres.TableRevenues, err)
			}
		}
		return nil
	})
	if err != nil {
		return 0, err
	}

	return len(revenues), nil
}

// SalesByProfessional soma as receitas do período por profissional ativo,
// trazendo junto as regras de contrato do cadastro
func (r *revenueRepository) SalesByProfessional(ctx context.Context, start, end time.Time) ([]*domain.ProfessionalSales, error) {
	query, args, err := psql.
		Select(
			"r.profissional",
			"SUM(r.valor_servico) AS total_vendas",
			"p.tipo_contrato",
			"COALESCE(p.percentual_comissao, 0)",
			"COALESCE(p.salario_fixo, 0)",
		).
		From("receitas r").
		LeftJoin("profissionais p ON r.profissional = p.nome_profissional").
		Where("r.data BETWEEN ? AND ?", start, end).
		Where(squirrel.Eq{"p.status": string(domain.StatusActive)}).
		GroupBy("r.profissional", "p.tipo_contrato", "p.percentual_comissao", "p.salario_fixo").
		OrderBy("r.profissional").
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("erro ao construir a query: %w", err)
	}

	rows, err := r.conn.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("erro ao executar a query: %w", err)
	}
	defer rows.Close()

	result := make([]*domain.ProfessionalSales, 0)
	for rows.Next() {
		var (
			item     domain.ProfessionalSales
			contract sql.NullString
		)

		if err := rows.Scan(&item.Professional, &item.TotalSales, &contract, &item.CommissionPercent, &item.FixedSalary); err != nil {
			return nil, fmt.Errorf("erro ao escanear vendas por profissional: %w", err)
		}
		item.ContractType = domain.ContractType(contract.String)

		result = append(result, &item)
	}

	if err = rows.Err(); err != nil {
		return nil, fmt.Errorf("erro durante a iteração de linhas: %w", err)
	}

	return result, nil
}
