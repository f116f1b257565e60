package commissioning

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/vfg2006/dataops-local/infrastructure/repository/mocks"
	"github.com/vfg2006/dataops-local/internal/domain"
	"github.com/vfg2006/dataops-local/internal/runlog"
	"go.uber.org/mock/gomock"
)

func dec(s string) decimal.Decimal {
	return decimal.RequireFromString(s)
}

func day(year int, month time.Month, d int) time.Time {
	return time.Date(year, month, d, 0, 0, 0, 0, time.UTC)
}

type calculatorMocks struct {
	revenue    *mocks.MockRevenueRepository
	expense    *mocks.MockExpenseRepository
	commission *mocks.MockCommissionRepository
}

func newTestService(t *testing.T, now time.Time) (*Service, calculatorMocks) {
	ctrl := gomock.NewController(t)
	m := calculatorMocks{
		revenue:    mocks.NewMockRevenueRepository(ctrl),
		expense:    mocks.NewMockExpenseRepository(ctrl),
		commission: mocks.NewMockCommissionRepository(ctrl),
	}
	svc := NewService(m.revenue, m.expense, m.commission)
	svc.now = func() time.Time { return now }
	return svc, m
}

func TestCompute(t *testing.T) {
	tests := []struct {
		name           string
		sale           *domain.ProfessionalSales
		wantCommission string
		wantPayable    string
	}{
		{
			name: "Percentual de 50% sobre 1000",
			sale: &domain.ProfessionalSales{
				Professional:      "P",
				TotalSales:        dec("1000.00"),
				ContractType:      domain.ContractPercentage,
				CommissionPercent: dec("50"),
				FixedSalary:       decimal.Zero,
			},
			wantCommission: "500",
			wantPayable:    "500",
		},
		{
			name: "Fixo recebe o salário independente das vendas",
			sale: &domain.ProfessionalSales{
				Professional:      "Q",
				TotalSales:        dec("800.00"),
				ContractType:      domain.ContractFixed,
				CommissionPercent: decimal.Zero,
				FixedSalary:       dec("2500"),
			},
			wantCommission: "0",
			wantPayable:    "2500",
		},
		{
			name: "Fixo com percentual cadastrado não recebe comissão",
			sale: &domain.ProfessionalSales{
				Professional:      "R",
				TotalSales:        dec("800.00"),
				ContractType:      domain.ContractFixed,
				CommissionPercent: dec("30"),
				FixedSalary:       dec("1500"),
			},
			wantCommission: "0",
			wantPayable:    "1500",
		},
		{
			name: "Percentual com salário fixo soma os dois",
			sale: &domain.ProfessionalSales{
				Professional:      "S",
				TotalSales:        dec("333.33"),
				ContractType:      domain.ContractPercentage,
				CommissionPercent: dec("33.3"),
				FixedSalary:       dec("1000"),
			},
			wantCommission: "111",
			wantPayable:    "1111",
		},
		{
			name: "Profissional sem cadastro de contrato",
			sale: &domain.ProfessionalSales{
				Professional: "T",
				TotalSales:   dec("100"),
			},
			wantCommission: "0",
			wantPayable:    "0",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := Compute(tt.sale)

			assert.True(t, dec(tt.wantCommission).Equal(got.CommissionAmount), "comissão: %s", got.CommissionAmount)
			assert.True(t, dec(tt.wantPayable).Equal(got.TotalPayable), "total: %s", got.TotalPayable)
			assert.Equal(t, tt.sale.Professional, got.Professional)
		})
	}
}

func TestService_ComputeCommissions(t *testing.T) {
	start := day(2025, 2, 1)
	end := day(2025, 2, 28)

	sales := []*domain.ProfessionalSales{
		{Professional: "P", TotalSales: dec("1000.00"), ContractType: domain.ContractPercentage, CommissionPercent: dec("50"), FixedSalary: decimal.Zero},
		{Professional: "Q", TotalSales: dec("800.00"), ContractType: domain.ContractFixed, CommissionPercent: decimal.Zero, FixedSalary: dec("2500")},
		{Professional: "Z", TotalSales: dec("120.00"), ContractType: domain.ContractPercentage, CommissionPercent: decimal.Zero, FixedSalary: decimal.Zero},
	}

	tests := []struct {
		name      string
		setup     func(m calculatorMocks)
		wantCount int
		wantErr   bool
		validate  func(t *testing.T, rl *runlog.Log)
	}{
		{
			name: "Gera despesas de folha para P e Q e ignora quem não tem valor a pagar",
			setup: func(m calculatorMocks) {
				m.revenue.EXPECT().SalesByProfessional(gomock.Any(), start, end).Return(sales, nil)

				m.expense.EXPECT().
					Append(gomock.Any(), gomock.Any()).
					DoAndReturn(func(_ context.Context, expenses []*domain.Expense) (int, error) {
						require.Len(t, expenses, 2)

						p := expenses[0]
						assert.Equal(t, end, p.OccurredOn)
						assert.Equal(t, PayrollCategory, p.Category)
						assert.Contains(t, p.Description, "P")
						assert.True(t, dec("500").Equal(p.Amount))
						assert.Equal(t, domain.ExpenseComputedCommission, p.Kind)
						assert.Equal(t, "Vendas: R$ 1000.00 | Comissão (50%): R$ 500.00 | Fixo: R$ 0.00", p.Notes)

						q := expenses[1]
						assert.True(t, dec("2500").Equal(q.Amount))
						assert.Equal(t, "Vendas: R$ 800.00 | Comissão (0%): R$ 0.00 | Fixo: R$ 2500.00", q.Notes)
						return len(expenses), nil
					})

				m.commission.EXPECT().
					Append(gomock.Any(), gomock.Len(2)).
					DoAndReturn(func(_ context.Context, rows []*domain.ComputedCommission) (int, error) {
						assert.Equal(t, start, rows[0].PeriodStart)
						assert.Equal(t, end, rows[0].PeriodEnd)
						assert.True(t, dec("500").Equal(rows[0].CommissionAmount))
						assert.True(t, decimal.Zero.Equal(rows[1].CommissionAmount))
						assert.True(t, dec("2500").Equal(rows[1].TotalPayable))
						return len(rows), nil
					})
			},
			wantCount: 2,
			validate: func(t *testing.T, rl *runlog.Log) {
				assert.Equal(t, 1, rl.Count(runlog.LevelSuccess))
				entries := rl.Entries()
				assert.Contains(t, entries[len(entries)-1].Message, "R$ 3000.00")
			},
		},
		{
			name: "Sem receitas no período não grava nada",
			setup: func(m calculatorMocks) {
				m.revenue.EXPECT().SalesByProfessional(gomock.Any(), start, end).Return(nil, nil)
			},
			wantCount: 0,
			validate: func(t *testing.T, rl *runlog.Log) {
				assert.Equal(t, 1, rl.Count(runlog.LevelWarning))
			},
		},
		{
			name: "Falha no detalhamento não altera o total",
			setup: func(m calculatorMocks) {
				m.revenue.EXPECT().SalesByProfessional(gomock.Any(), start, end).Return(sales[:1], nil)
				m.expense.EXPECT().Append(gomock.Any(), gomock.Len(1)).Return(1, nil)
				m.commission.EXPECT().Append(gomock.Any(), gomock.Any()).Return(0, errors.New("tabela ausente"))
			},
			wantCount: 1,
			validate: func(t *testing.T, rl *runlog.Log) {
				assert.Equal(t, 1, rl.Count(runlog.LevelWarning))
				assert.Equal(t, 1, rl.Count(runlog.LevelSuccess))
			},
		},
		{
			name: "Falha ao gravar despesas",
			setup: func(m calculatorMocks) {
				m.revenue.EXPECT().SalesByProfessional(gomock.Any(), start, end).Return(sales[:1], nil)
				m.expense.EXPECT().Append(gomock.Any(), gomock.Any()).Return(0, errors.New("conexão perdida"))
			},
			wantCount: 0,
			wantErr:   true,
			validate: func(t *testing.T, rl *runlog.Log) {
				assert.Equal(t, 1, rl.Count(runlog.LevelError))
			},
		},
		{
			name: "Falha ao consultar vendas",
			setup: func(m calculatorMocks) {
				m.revenue.EXPECT().SalesByProfessional(gomock.Any(), start, end).Return(nil, errors.New("timeout"))
			},
			wantCount: 0,
			wantErr:   true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			svc, m := newTestService(t, day(2025, 3, 10))
			tt.setup(m)
			rl := runlog.New("")

			n, err := svc.ComputeCommissions(context.Background(), rl, &start, &end)

			assert.Equal(t, tt.wantCount, n)
			if tt.wantErr {
				assert.Error(t, err)
			} else {
				assert.NoError(t, err)
			}
			if tt.validate != nil {
				tt.validate(t, rl)
			}
		})
	}
}

func TestService_ComputeCommissions_ReexecucaoDuplica(t *testing.T) {
	svc, m := newTestService(t, day(2025, 2, 15))
	sales := []*domain.ProfessionalSales{
		{Professional: "P", TotalSales: dec("1000.00"), ContractType: domain.ContractPercentage, CommissionPercent: dec("50")},
	}

	// despesas acumuladas como numa tabela append-only
	var stored []*domain.Expense
	m.revenue.EXPECT().SalesByProfessional(gomock.Any(), gomock.Any(), gomock.Any()).Return(sales, nil).Times(2)
	m.expense.EXPECT().
		Append(gomock.Any(), gomock.Any()).
		DoAndReturn(func(_ context.Context, expenses []*domain.Expense) (int, error) {
			stored = append(stored, expenses...)
			return len(expenses), nil
		}).
		Times(2)
	m.commission.EXPECT().Append(gomock.Any(), gomock.Any()).Return(1, nil).Times(2)

	for i := 0; i < 2; i++ {
		n, err := svc.ComputeCommissions(context.Background(), runlog.New(""), nil, nil)
		require.NoError(t, err)
		require.Equal(t, 1, n)
	}

	require.Len(t, stored, 2)
	assert.Equal(t, stored[0].Description, stored[1].Description)
	assert.True(t, stored[0].Amount.Equal(stored[1].Amount))
	assert.Equal(t, stored[0].OccurredOn, stored[1].OccurredOn)
}

func TestService_Period(t *testing.T) {
	tests := []struct {
		name      string
		now       time.Time
		start     *time.Time
		end       *time.Time
		wantStart time.Time
		wantEnd   time.Time
	}{
		{
			name:      "Mês corrente em ano bissexto",
			now:       time.Date(2024, 2, 15, 14, 30, 0, 0, time.UTC),
			wantStart: day(2024, 2, 1),
			wantEnd:   day(2024, 2, 29),
		},
		{
			name:      "Mês corrente com 31 dias",
			now:       time.Date(2025, 12, 31, 23, 59, 0, 0, time.UTC),
			wantStart: day(2025, 12, 1),
			wantEnd:   day(2025, 12, 31),
		},
		{
			name:      "Período informado prevalece",
			now:       day(2025, 6, 1),
			start:     ptr(time.Date(2025, 1, 10, 8, 0, 0, 0, time.UTC)),
			end:       ptr(day(2025, 1, 20)),
			wantStart: day(2025, 1, 10),
			wantEnd:   day(2025, 1, 20),
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			svc := &Service{now: func() time.Time { return tt.now }}

			gotStart, gotEnd := svc.Period(tt.start, tt.end)

			assert.Equal(t, tt.wantStart, gotStart)
			assert.Equal(t, tt.wantEnd, gotEnd)
		})
	}
}

func ptr(t time.Time) *time.Time {
	return &t
}
