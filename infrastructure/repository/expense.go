package repository

import (
	"context"
	"database/sql"
	"fmt"

	"github.com/vfg2006/dataops-local/infrastructure/database/postgres"
	"github.com/vfg2006/dataops-local/internal/domain"
)

type ExpenseRepository interface {
	Append(ctx context.Context, expenses []*domain.Expense) (int, error)
}

type expenseRepository struct {
	conn *postgres.Connection
}

func NewExpenseRepository(conn *postgres.Connection) ExpenseRepository {
	return &expenseRepository{
		conn: conn,
	}
}

// Append grava as despesas em uma única transação. Despesas sem tipo são gravadas como Manual.
func (r *expenseRepository) Append(ctx context.Context, expenses []*domain.Expense) (int, error) {
	if len(expenses) == 0 {
		return 0, nil
	}

	err := r.conn.RunInTransaction(ctx, func(tx *sql.Tx) error {
		for _, batch := range chunk(expenses, insertBatchSize) {
			query := psql.
				Insert(postgres.TableExpenses).
				Columns(
					"data",
					"categoria",
					"descricao",
					"valor",
					"forma_pagamento",
					"fornecedor",
					"observacoes",
					"tipo_despesa",
				)

			for _, exp := range batch {
				kind := exp.Kind
				if kind == "" {
					kind = domain.ExpenseManual
				}

				query = query.Values(
					exp.OccurredOn,
					exp.Category,
					exp.Description,
					exp.Amount,
					nullString(exp.PaymentMethod),
					nullString(exp.Supplier),
					nullString(exp.Notes),
					string(kind),
				)
			}

			sqlQuery, args, err := query.ToSql()
			if err != nil {
				return fmt.Errorf("erro ao construir a query: %w", err)
			}

			if _, err := tx.ExecContext(ctx, sqlQuery, args...); err != nil {
				return describeWriteError(postgres.TableExpenses, err)
			}
		}
		return nil
	})
	if err != nil {
		return 0, err
	}

	return len(expenses), nil
}
