package importing

import (
	"fmt"
	"time"

	"github.com/shopspring/decimal"
	"github.com/vfg2006/dataops-local/internal/domain"
	"github.com/vfg2006/dataops-local/pkg/utils"
)

func parseISODate(raw string) (time.Time, error) {
	return time.Parse(time.DateOnly, raw)
}

func optionalAmount(raw string) (decimal.Decimal, error) {
	if raw == "" {
		return decimal.Zero, nil
	}
	return utils.ParseAmount(raw)
}

func toRevenues(batch *Batch) ([]*domain.Revenue, error) {
	revenues := make([]*domain.Revenue, 0, len(batch.Rows))
	for i, row := range batch.Rows {
		day, err := parseISODate(row["data"])
		if err != nil {
			return nil, fmt.Errorf("registro %d: %w", i+1, err)
		}

		amount, err := utils.ParseAmount(row["valor_servico"])
		if err != nil {
			return nil, fmt.Errorf("registro %d: %w", i+1, err)
		}

		revenues = append(revenues, &domain.Revenue{
			OccurredOn:    day,
			ServiceType:   row["tipo_servico"],
			Professional:  row["profissional"],
			Client:        row["cliente"],
			Amount:        amount,
			PaymentMethod: row["forma_pagamento"],
			Notes:         row["observacoes"],
		})
	}
	return revenues, nil
}

// toExpenses marca todas as despesas importadas como Manual, independente do que vier na planilha
func toExpenses(batch *Batch) ([]*domain.Expense, error) {
	expenses := make([]*domain.Expense, 0, len(batch.Rows))
	for i, row := range batch.Rows {
		day, err := parseISODate(row["data"])
		if err != nil {
			return nil, fmt.Errorf("registro %d: %w", i+1, err)
		}

		amount, err := utils.ParseAmount(row["valor"])
		if err != nil {
			return nil, fmt.Errorf("registro %d: %w", i+1, err)
		}

		expenses = append(expenses, &domain.Expense{
			OccurredOn:    day,
			Category:      row["categoria"],
			Description:   row["descricao"],
			Amount:        amount,
			PaymentMethod: row["forma_pagamento"],
			Supplier:      row["fornecedor"],
			Notes:         row["observacoes"],
			Kind:          domain.ExpenseManual,
		})
	}
	return expenses, nil
}

func toProfessionals(batch *Batch) ([]*domain.Professional, error) {
	professionals := make([]*domain.Professional, 0, len(batch.Rows))
	for i, row := range batch.Rows {
		contract, ok := parseContractType(row["tipo_contrato"])
		if !ok {
			return nil, fmt.Errorf("registro %d: tipo de contrato inválido %q", i+1, row["tipo_contrato"])
		}

		status, ok := parseStatus(row["status"])
		if !ok {
			return nil, fmt.Errorf("registro %d: status inválido %q", i+1, row["status"])
		}

		pct, err := optionalAmount(row["percentual_comissao"])
		if err != nil {
			return nil, fmt.Errorf("registro %d: %w", i+1, err)
		}

		salary, err := optionalAmount(row["salario_fixo"])
		if err != nil {
			return nil, fmt.Errorf("registro %d: %w", i+1, err)
		}

		p := &domain.Professional{
			Name:              row["nome_profissional"],
			Role:              row["funcao"],
			ContractType:      contract,
			CommissionPercent: pct,
			FixedSalary:       salary,
			Status:            status,
		}

		if raw := row["data_admissao"]; raw != "" {
			hired, err := parseISODate(raw)
			if err != nil {
				return nil, fmt.Errorf("registro %d: %w", i+1, err)
			}
			p.HiredOn = &hired
		}

		professionals = append(professionals, p)
	}
	return professionals, nil
}

func toServices(batch *Batch) ([]*domain.Service, error) {
	services := make([]*domain.Service, 0, len(batch.Rows))
	for i, row := range batch.Rows {
		price, err := utils.ParseAmount(row["preco_base"])
		if err != nil {
			return nil, fmt.Errorf("registro %d: %w", i+1, err)
		}

		status, ok := parseStatus(row["status"])
		if !ok {
			return nil, fmt.Errorf("registro %d: status inválido %q", i+1, row["status"])
		}

		s := &domain.Service{
			Name:      row["nome_servico"],
			BasePrice: price,
			Category:  row["categoria"],
			Status:    status,
		}

		if raw := row["tempo_medio_minutos"]; raw != "" {
			minutes, err := parseMinutes(raw)
			if err != nil {
				return nil, fmt.Errorf("registro %d: %w", i+1, err)
			}
			s.AverageMinutes = &minutes
		}

		services = append(services, s)
	}
	return services, nil
}
