package domain

import (
	"time"

	"github.com/shopspring/decimal"
)

// ProfessionalSales é o total vendido por um profissional ativo no período,
// já acompanhado das regras de contrato dele
type ProfessionalSales struct {
	Professional      string
	TotalSales        decimal.Decimal
	ContractType      ContractType
	CommissionPercent decimal.Decimal
	FixedSalary       decimal.Decimal
}

// ComputedCommission guarda o detalhamento de cada pagamento gerado pelo cálculo de comissões
type ComputedCommission struct {
	ID                int64           `json:"id,omitempty"`
	Professional      string          `json:"profissional"`
	PeriodStart       time.Time       `json:"periodo_inicio"`
	PeriodEnd         time.Time       `json:"periodo_fim"`
	TotalSales        decimal.Decimal `json:"total_vendas"`
	CommissionPercent decimal.Decimal `json:"percentual_comissao"`
	CommissionAmount  decimal.Decimal `json:"valor_comissao"`
	FixedSalary       decimal.Decimal `json:"salario_fixo"`
	TotalPayable      decimal.Decimal `json:"total_pagar"`
	ComputedAt        time.Time       `json:"data_calculo"`
}
