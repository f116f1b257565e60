package commissioning

import (
	"context"
	"fmt"
	"time"

	"github.com/shopspring/decimal"
	"github.com/vfg2006/dataops-local/infrastructure/repository"
	"github.com/vfg2006/dataops-local/internal/domain"
	"github.com/vfg2006/dataops-local/internal/runlog"
	"github.com/vfg2006/dataops-local/pkg/metrics"
	"github.com/vfg2006/dataops-local/pkg/utils"
)

// PayrollCategory é a categoria das despesas geradas pelo cálculo
const PayrollCategory = "Payroll"

type Calculator interface {
	ComputeCommissions(ctx context.Context, rl *runlog.Log, start, end *time.Time) (int, error)
}

type Service struct {
	revenueRepo    repository.RevenueRepository
	expenseRepo    repository.ExpenseRepository
	commissionRepo repository.CommissionRepository
	now            func() time.Time
}

func NewService(
	revenueRepo repository.RevenueRepository,
	expenseRepo repository.ExpenseRepository,
	commissionRepo repository.CommissionRepository,
) *Service {
	return &Service{
		revenueRepo:    revenueRepo,
		expenseRepo:    expenseRepo,
		commissionRepo: commissionRepo,
		now:            time.Now,
	}
}

// Period resolve o período do cálculo. Sem datas, vale o mês corrente inteiro.
func (s *Service) Period(start, end *time.Time) (time.Time, time.Time) {
	today := s.now()

	periodStart := utils.FirstDayOfMonth(today)
	if start != nil {
		periodStart = time.Date(start.Year(), start.Month(), start.Day(), 0, 0, 0, 0, time.UTC)
	}

	periodEnd := utils.LastDayOfMonth(today)
	if end != nil {
		periodEnd = time.Date(end.Year(), end.Month(), end.Day(), 0, 0, 0, 0, time.UTC)
	}

	return periodStart, periodEnd
}

// ComputeCommissions gera uma despesa de folha por profissional ativo com vendas no
// período. Rodar duas vezes para o mesmo período duplica as despesas.
func (s *Service) ComputeCommissions(ctx context.Context, rl *runlog.Log, start, end *time.Time) (int, error) {
	periodStart, periodEnd := s.Period(start, end)
	rl.Info("Calculando comissões de %s a %s", periodStart.Format("02/01/2006"), periodEnd.Format("02/01/2006"))

	sales, err := s.revenueRepo.SalesByProfessional(ctx, periodStart, periodEnd)
	if err != nil {
		rl.Error("Erro ao consultar vendas do período: %v", err)
		return 0, fmt.Errorf("erro ao consultar vendas por profissional: %w", err)
	}

	if len(sales) == 0 {
		rl.Warning("Nenhuma receita encontrada no período, nenhuma comissão calculada")
		return 0, nil
	}

	computedAt := s.now()
	expenses := make([]*domain.Expense, 0, len(sales))
	snapshots := make([]*domain.ComputedCommission, 0, len(sales))
	total := decimal.Zero

	for _, sale := range sales {
		c := Compute(sale)
		if !c.CommissionAmount.IsPositive() && !c.FixedSalary.IsPositive() {
			rl.Info("%s: sem comissão nem salário fixo, nada a pagar", sale.Professional)
			continue
		}

		c.PeriodStart = periodStart
		c.PeriodEnd = periodEnd
		c.ComputedAt = computedAt

		expenses = append(expenses, payrollExpense(c))
		snapshots = append(snapshots, c)
		total = total.Add(c.TotalPayable)

		rl.Info("%s: vendas %s | comissão %s | fixo %s | total %s",
			c.Professional,
			utils.FormatBRL(c.TotalSales),
			utils.FormatBRL(c.CommissionAmount),
			utils.FormatBRL(c.FixedSalary),
			utils.FormatBRL(c.TotalPayable),
		)
	}

	if len(expenses) == 0 {
		rl.Warning("Nenhum profissional com valor a pagar no período")
		return 0, nil
	}

	n, err := s.expenseRepo.Append(ctx, expenses)
	if err != nil {
		rl.Error("Erro ao gravar despesas de comissão: %v", err)
		return 0, fmt.Errorf("erro ao gravar despesas de comissão: %w", err)
	}

	if _, err := s.commissionRepo.Append(ctx, snapshots); err != nil {
		rl.Warning("Despesas gravadas, mas o detalhamento em comissoes_calculadas falhou: %v", err)
	}

	metrics.CommissionsEmitted.Add(float64(n))
	rl.Success("%d comissão(ões) registrada(s), total da folha %s", n, utils.FormatBRL(total))

	return n, nil
}

// Compute aplica as regras de contrato sobre o total vendido. Percentual e
// salário fixo ausentes no cadastro já chegam como zero.
func Compute(sale *domain.ProfessionalSales) *domain.ComputedCommission {
	commission := decimal.Zero
	if sale.ContractType == domain.ContractPercentage && sale.CommissionPercent.IsPositive() {
		commission = utils.Percent(sale.TotalSales, sale.CommissionPercent)
	}

	return &domain.ComputedCommission{
		Professional:      sale.Professional,
		TotalSales:        sale.TotalSales,
		CommissionPercent: sale.CommissionPercent,
		CommissionAmount:  commission,
		FixedSalary:       sale.FixedSalary,
		TotalPayable:      sale.FixedSalary.Add(commission),
	}
}

func payrollExpense(c *domain.ComputedCommission) *domain.Expense {
	return &domain.Expense{
		OccurredOn:  c.PeriodEnd,
		Category:    PayrollCategory,
		Description: fmt.Sprintf("Comissão/Salário - %s", c.Professional),
		Amount:      c.TotalPayable,
		Supplier:    c.Professional,
		Notes: fmt.Sprintf("Vendas: %s | Comissão (%s%%): %s | Fixo: %s",
			utils.FormatBRL(c.TotalSales),
			c.CommissionPercent.String(),
			utils.FormatBRL(c.CommissionAmount),
			utils.FormatBRL(c.FixedSalary),
		),
		Kind: domain.ExpenseComputedCommission,
	}
}
