package repository

import (
	"context"
	"fmt"
	"time"

	"github.com/Masterminds/squirrel"
	"github.com/shopspring/decimal"
	"github.com/vfg2006/dataops-local/infrastructure/database/postgres"
	"github.com/vfg2006/dataops-local/internal/domain"
)

// ReportRepository concentra as consultas somente leitura usadas no resumo,
// nos relatórios por período e no diagnóstico do banco
type ReportRepository interface {
	Summary(ctx context.Context) (*domain.RunSummary, error)
	RevenueMetrics(ctx context.Context, start, end time.Time) (*domain.RevenueMetrics, error)
	ExpenseMetrics(ctx context.Context, start, end time.Time) (*domain.ExpenseMetrics, error)
	TopProfessionals(ctx context.Context, start, end time.Time, limit uint64) ([]domain.ProfessionalPerformance, error)
	TopServices(ctx context.Context, start, end time.Time, limit uint64) ([]domain.ServicePopularity, error)
	ExpensesByCategory(ctx context.Context, start, end time.Time) ([]domain.CategoryTotal, error)

	TableCounts(ctx context.Context) (map[string]int, error)
	ExpensesByPaymentMethod(ctx context.Context) ([]domain.PaymentMethodTotal, error)
	CountExpensesWithoutPaymentMethod(ctx context.Context) (int, error)
	CountFutureExpenses(ctx context.Context, today time.Time) (int, error)
	ComputedCommissionExpenses(ctx context.Context) (int, decimal.Decimal, error)
	CountPercentageProfessionalsWithoutRate(ctx context.Context) (int, error)
	CountNonPositiveValues(ctx context.Context) (revenues int, expenses int, err error)
}

type reportRepository struct {
	conn *postgres.Connection
}

func NewReportRepository(conn *postgres.Connection) ReportRepository {
	return &reportRepository{
		conn: conn,
	}
}

// countAndSum executa um SELECT COUNT/SUM. Tabela inexistente conta como vazia.
func (r *reportRepository) countAndSum(ctx context.Context, builder squirrel.SelectBuilder) (int, decimal.Decimal, error) {
	query, args, err := builder.ToSql()
	if err != nil {
		return 0, decimal.Zero, fmt.Errorf("erro ao construir a query: %w", err)
	}

	var (
		count int
		total decimal.Decimal
	)
	if err := r.conn.QueryRowContext(ctx, query, args...).Scan(&count, &total); err != nil {
		if isUndefinedTable(err) {
			return 0, decimal.Zero, nil
		}
		return 0, decimal.Zero, fmt.Errorf("erro ao executar a query: %w", err)
	}

	return count, total, nil
}

func (r *reportRepository) count(ctx context.Context, builder squirrel.SelectBuilder) (int, error) {
	query, args, err := builder.ToSql()
	if err != nil {
		return 0, fmt.Errorf("erro ao construir a query: %w", err)
	}

	var count int
	if err := r.conn.QueryRowContext(ctx, query, args...).Scan(&count); err != nil {
		if isUndefinedTable(err) {
			return 0, nil
		}
		return 0, fmt.Errorf("erro ao executar a query: %w", err)
	}

	return count, nil
}

func (r *reportRepository) Summary(ctx context.Context) (*domain.RunSummary, error) {
	summary := &domain.RunSummary{}
	var err error

	summary.RevenueCount, summary.RevenueTotal, err = r.countAndSum(ctx,
		psql.Select("COUNT(*)", "COALESCE(SUM(valor_servico), 0)").From(postgres.TableRevenues))
	if err != nil {
		return nil, err
	}

	summary.ExpenseCount, summary.ExpenseTotal, err = r.countAndSum(ctx,
		psql.Select("COUNT(*)", "COALESCE(SUM(valor), 0)").From(postgres.TableExpenses))
	if err != nil {
		return nil, err
	}

	summary.ActiveProfessionals, err = r.count(ctx,
		psql.Select("COUNT(*)").From(postgres.TableProfessionals).Where(squirrel.Eq{"status": string(domain.StatusActive)}))
	if err != nil {
		return nil, err
	}

	summary.ActiveServices, err = r.count(ctx,
		psql.Select("COUNT(*)").From(postgres.TableServices).Where(squirrel.Eq{"status": string(domain.StatusActive)}))
	if err != nil {
		return nil, err
	}

	summary.Balance = summary.RevenueTotal.Sub(summary.ExpenseTotal)
	return summary, nil
}

func (r *reportRepository) RevenueMetrics(ctx context.Context, start, end time.Time) (*domain.RevenueMetrics, error) {
	count, total, err := r.countAndSum(ctx,
		psql.Select("COUNT(*)", "COALESCE(SUM(valor_servico), 0)").
			From(postgres.TableRevenues).
			Where("data BETWEEN ? AND ?", start, end))
	if err != nil {
		return nil, err
	}

	metrics := &domain.RevenueMetrics{Count: count, Total: total, Average: decimal.Zero}
	if count > 0 {
		metrics.Average = total.Div(decimal.NewFromInt(int64(count))).Round(2)
	}
	return metrics, nil
}

func (r *reportRepository) ExpenseMetrics(ctx context.Context, start, end time.Time) (*domain.ExpenseMetrics, error) {
	count, total, err := r.countAndSum(ctx,
		psql.Select("COUNT(*)", "COALESCE(SUM(valor), 0)").
			From(postgres.TableExpenses).
			Where("data BETWEEN ? AND ?", start, end))
	if err != nil {
		return nil, err
	}

	return &domain.ExpenseMetrics{Count: count, Total: total}, nil
}

func (r *reportRepository) TopProfessionals(ctx context.Context, start, end time.Time, limit uint64) ([]domain.ProfessionalPerformance, error) {
	query, args, err := psql.
		Select(
			"profissional",
			"COUNT(*) AS qtd_servicos",
			"SUM(valor_servico) AS total_receita",
			"ROUND(AVG(valor_servico), 2) AS ticket_medio",
		).
		From(postgres.TableRevenues).
		Where("data BETWEEN ? AND ?", start, end).
		GroupBy("profissional").
		OrderBy("total_receita DESC").
		Limit(limit).
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("erro ao construir a query: %w", err)
	}

	rows, err := r.conn.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("erro ao executar a query: %w", err)
	}
	defer rows.Close()

	result := make([]domain.ProfessionalPerformance, 0)
	for rows.Next() {
		var p domain.ProfessionalPerformance
		if err := rows.Scan(&p.Professional, &p.ServiceCount, &p.Revenue, &p.AverageTicket); err != nil {
			return nil, fmt.Errorf("erro ao escanear desempenho do profissional: %w", err)
		}
		result = append(result, p)
	}

	return result, rows.Err()
}

func (r *reportRepository) TopServices(ctx context.Context, start, end time.Time, limit uint64) ([]domain.ServicePopularity, error) {
	query, args, err := psql.
		Select("tipo_servico", "COUNT(*) AS quantidade", "SUM(valor_servico) AS total").
		From(postgres.TableRevenues).
		Where("data BETWEEN ? AND ?", start, end).
		GroupBy("tipo_servico").
		OrderBy("quantidade DESC", "total DESC").
		Limit(limit).
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("erro ao construir a query: %w", err)
	}

	rows, err := r.conn.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("erro ao executar a query: %w", err)
	}
	defer rows.Close()

	result := make([]domain.ServicePopularity, 0)
	for rows.Next() {
		var s domain.ServicePopularity
		if err := rows.Scan(&s.ServiceType, &s.Count, &s.Revenue); err != nil {
			return nil, fmt.Errorf("erro ao escanear serviço: %w", err)
		}
		result = append(result, s)
	}

	return result, rows.Err()
}

func (r *reportRepository) ExpensesByCategory(ctx context.Context, start, end time.Time) ([]domain.CategoryTotal, error) {
	query, args, err := psql.
		Select("categoria", "COUNT(*) AS quantidade", "SUM(valor) AS total").
		From(postgres.TableExpenses).
		Where("data BETWEEN ? AND ?", start, end).
		GroupBy("categoria").
		OrderBy("total DESC").
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("erro ao construir a query: %w", err)
	}

	rows, err := r.conn.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("erro ao executar a query: %w", err)
	}
	defer rows.Close()

	result := make([]domain.CategoryTotal, 0)
	for rows.Next() {
		var c domain.CategoryTotal
		if err := rows.Scan(&c.Category, &c.Count, &c.Total); err != nil {
			return nil, fmt.Errorf("erro ao escanear categoria: %w", err)
		}
		result = append(result, c)
	}

	return result, rows.Err()
}

// TableCounts conta as linhas de cada tabela. Tabelas ausentes ficam fora do mapa.
func (r *reportRepository) TableCounts(ctx context.Context) (map[string]int, error) {
	counts := make(map[string]int)

	for _, table := range postgres.Tables() {
		query, args, err := psql.Select("COUNT(*)").From(table).ToSql()
		if err != nil {
			return nil, fmt.Errorf("erro ao construir a query: %w", err)
		}

		var n int
		if err := r.conn.QueryRowContext(ctx, query, args...).Scan(&n); err != nil {
			if isUndefinedTable(err) {
				continue
			}
			return nil, fmt.Errorf("erro ao contar %s: %w", table, err)
		}
		counts[table] = n
	}

	return counts, nil
}

func (r *reportRepository) ExpensesByPaymentMethod(ctx context.Context) ([]domain.PaymentMethodTotal, error) {
	query, args, err := psql.
		Select("COALESCE(NULLIF(forma_pagamento, ''), 'NULL/Vazio') AS forma", "COUNT(*)", "COALESCE(SUM(valor), 0)").
		From(postgres.TableExpenses).
		GroupBy("forma").
		OrderBy("COUNT(*) DESC").
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("erro ao construir a query: %w", err)
	}

	rows, err := r.conn.QueryContext(ctx, query, args...)
	if err != nil {
		if isUndefinedTable(err) {
			return []domain.PaymentMethodTotal{}, nil
		}
		return nil, fmt.Errorf("erro ao executar a query: %w", err)
	}
	defer rows.Close()

	result := make([]domain.PaymentMethodTotal, 0)
	for rows.Next() {
		var p domain.PaymentMethodTotal
		if err := rows.Scan(&p.PaymentMethod, &p.Count, &p.Total); err != nil {
			return nil, fmt.Errorf("erro ao escanear forma de pagamento: %w", err)
		}
		result = append(result, p)
	}

	return result, rows.Err()
}

func (r *reportRepository) CountExpensesWithoutPaymentMethod(ctx context.Context) (int, error) {
	return r.count(ctx, psql.Select("COUNT(*)").
		From(postgres.TableExpenses).
		Where("forma_pagamento IS NULL OR forma_pagamento = ''"))
}

func (r *reportRepository) CountFutureExpenses(ctx context.Context, today time.Time) (int, error) {
	return r.count(ctx, psql.Select("COUNT(*)").
		From(postgres.TableExpenses).
		Where(squirrel.Gt{"data": today}))
}

// ComputedCommissionExpenses retorna quantidade e total das despesas geradas pelo cálculo de comissões
func (r *reportRepository) ComputedCommissionExpenses(ctx context.Context) (int, decimal.Decimal, error) {
	return r.countAndSum(ctx, psql.Select("COUNT(*)", "COALESCE(SUM(valor), 0)").
		From(postgres.TableExpenses).
		Where(squirrel.Eq{"tipo_despesa": string(domain.ExpenseComputedCommission)}))
}

func (r *reportRepository) CountPercentageProfessionalsWithoutRate(ctx context.Context) (int, error) {
	return r.count(ctx, psql.Select("COUNT(*)").
		From(postgres.TableProfessionals).
		Where(squirrel.Eq{"tipo_contrato": string(domain.ContractPercentage), "status": string(domain.StatusActive)}).
		Where("COALESCE(percentual_comissao, 0) = 0"))
}

func (r *reportRepository) CountNonPositiveValues(ctx context.Context) (int, int, error) {
	revenues, err := r.count(ctx, psql.Select("COUNT(*)").
		From(postgres.TableRevenues).
		Where(squirrel.LtOrEq{"valor_servico": 0}))
	if err != nil {
		return 0, 0, err
	}

	expenses, err := r.count(ctx, psql.Select("COUNT(*)").
		From(postgres.TableExpenses).
		Where(squirrel.LtOrEq{"valor": 0}))
	if err != nil {
		return 0, 0, err
	}

	return revenues, expenses, nil
}
