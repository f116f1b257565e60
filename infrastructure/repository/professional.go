package repository

import (
	"context"
	"database/sql"
	"fmt"

	"github.com/Masterminds/squirrel"
	"github.com/vfg2006/dataops-local/infrastructure/database/postgres"
	"github.com/vfg2006/dataops-local/internal/domain"
)

type ProfessionalRepository interface {
	Replace(ctx context.Context, professionals []*domain.Professional) (int, error)
	ListActive(ctx context.Context) ([]*domain.Professional, error)
}

type professionalRepository struct {
	conn *postgres.Connection
}

func NewProfessionalRepository(conn *postgres.Connection) ProfessionalRepository {
	return &professionalRepository{
		conn: conn,
	}
}

// Replace apaga o cadastro atual e grava o novo na mesma transação
func (r *professionalRepository) Replace(ctx context.Context, professionals []*domain.Professional) (int, error) {
	err := r.conn.RunInTransaction(ctx, func(tx *sql.Tx) error {
		deleteQuery, deleteArgs, err := psql.Delete(postgres.TableProfessionals).ToSql()
		if err != nil {
			return fmt.Errorf("erro ao construir a query: %w", err)
		}

		if _, err := tx.ExecContext(ctx, deleteQuery, deleteArgs...); err != nil {
			return fmt.Errorf("erro ao limpar %s: %w", postgres.TableProfessionals, err)
		}

		for _, batch := range chunk(professionals, insertBatchSize) {
			query := psql.
				Insert(postgres.TableProfessionals).
				Columns(
					"nome_profissional",
					"funcao",
					"tipo_contrato",
					"percentual_comissao",
					"salario_fixo",
					"status",
					"data_admissao",
				)

			for _, p := range batch {
				query = query.Values(
					p.Name,
					nullString(p.Role),
					string(p.ContractType),
					p.CommissionPercent,
					p.FixedSalary,
					string(p.Status),
					nullTime(p.HiredOn),
				)
			}

			sqlQuery, args, err := query.ToSql()
			if err != nil {
				return fmt.Errorf("erro ao construir a query: %w", err)
			}

			if _, err := tx.ExecContext(ctx, sqlQuery, args...); err != nil {
				return describeWriteError(postgres.TableProfessionals, err)
			}
		}
		return nil
	})
	if err != nil {
		return 0, err
	}

	return len(professionals), nil
}

func (r *professionalRepository) ListActive(ctx context.Context) ([]*domain.Professional, error) {
	query, args, err := psql.
		Select(
			"id",
			"nome_profissional",
			"COALESCE(funcao, '')",
			"tipo_contrato",
			"COALESCE(percentual_comissao, 0)",
			"COALESCE(salario_fixo, 0)",
			"status",
			"data_admissao",
		).
		From(postgres.TableProfessionals).
		Where(squirrel.Eq{"status": string(domain.StatusActive)}).
		OrderBy("nome_profissional").
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("erro ao construir a query: %w", err)
	}

	rows, err := r.conn.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("erro ao executar a query: %w", err)
	}
	defer rows.Close()

	professionals := make([]*domain.Professional, 0)
	for rows.Next() {
		var (
			p       domain.Professional
			hiredOn sql.NullTime
		)

		err := rows.Scan(&p.ID, &p.Name, &p.Role, &p.ContractType, &p.CommissionPercent, &p.FixedSalary, &p.Status, &hiredOn)
		if err != nil {
			return nil, fmt.Errorf("erro ao escanear profissional: %w", err)
		}

		if hiredOn.Valid {
			p.HiredOn = &hiredOn.Time
		}
		professionals = append(professionals, &p)
	}

	if err = rows.Err(); err != nil {
		return nil, fmt.Errorf("erro durante a iteração de linhas: %w", err)
	}

	return professionals, nil
}
