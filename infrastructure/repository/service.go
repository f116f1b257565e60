package repository

import (
	"context"
	"database/sql"
	"fmt"

	"github.com/Masterminds/squirrel"
	"github.com/vfg2006/dataops-local/infrastructure/database/postgres"
	"github.com/vfg2006/dataops-local/internal/domain"
)

type ServiceRepository interface {
	Replace(ctx context.Context, services []*domain.Service) (int, error)
	ListActive(ctx context.Context) ([]*domain.Service, error)
}

type serviceRepository struct {
	conn *postgres.Connection
}

func NewServiceRepository(conn *postgres.Connection) ServiceRepository {
	return &serviceRepository{
		conn: conn,
	}
}

// Replace substitui todo o catálogo de serviços
func (r *serviceRepository) Replace(ctx context.Context, services []*domain.Service) (int, error) {
	err := r.conn.RunInTransaction(ctx, func(tx *sql.Tx) error {
		deleteQuery, deleteArgs, err := psql.Delete(postgres.TableServices).ToSql()
		if err != nil {
			return fmt.Errorf("erro ao construir a query: %w", err)
		}

		if _, err := tx.ExecContext(ctx, deleteQuery, deleteArgs...); err != nil {
			return fmt.Errorf("erro ao limpar %s: %w", postgres.TableServices, err)
		}

		for _, batch := range chunk(services, insertBatchSize) {
			query := psql.
				Insert(postgres.TableServices).
				Columns(
					"nome_servico",
					"preco_base",
					"tempo_medio_minutos",
					"categoria",
					"status",
				)

			for _, s := range batch {
				query = query.Values(
					s.Name,
					s.BasePrice,
					nullInt(s.AverageMinutes),
					nullString(s.Category),
					string(s.Status),
				)
			}

			sqlQuery, args, err := query.ToSql()
			if err != nil {
				return fmt.Errorf("erro ao construir a query: %w", err)
			}

			if _, err := tx.ExecContext(ctx, sqlQuery, args...); err != nil {
				return describeWriteError(postgres.TableServices, err)
			}
		}
		return nil
	})
	if err != nil {
		return 0, err
	}

	return len(services), nil
}

func (r *serviceRepository) ListActive(ctx context.Context) ([]*domain.Service, error) {
	query, args, err := psql.
		Select("id", "nome_servico", "preco_base", "tempo_medio_minutos", "COALESCE(categoria, '')", "status").
		From(postgres.TableServices).
		Where(squirrel.Eq{"status": string(domain.StatusActive)}).
		OrderBy("nome_servico").
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("erro ao construir a query: %w", err)
	}

	rows, err := r.conn.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("erro ao executar a query: %w", err)
	}
	defer rows.Close()

	services := make([]*domain.Service, 0)
	for rows.Next() {
		var (
			s       domain.Service
			minutes sql.NullInt64
		)

		if err := rows.Scan(&s.ID, &s.Name, &s.BasePrice, &minutes, &s.Category, &s.Status); err != nil {
			return nil, fmt.Errorf("erro ao escanear serviço: %w", err)
		}

		if minutes.Valid {
			m := int(minutes.Int64)
			s.AverageMinutes = &m
		}
		services = append(services, &s)
	}

	if err = rows.Err(); err != nil {
		return nil, fmt.Errorf("erro durante a iteração de linhas: %w", err)
	}

	return services, nil
}
