package domain

import (
	"time"

	"github.com/shopspring/decimal"
)

// RunSummary é o resumo impresso ao final de cada execução do pipeline
type RunSummary struct {
	RevenueCount        int             `json:"receitas_quantidade"`
	RevenueTotal        decimal.Decimal `json:"receitas_total"`
	ExpenseCount        int             `json:"despesas_quantidade"`
	ExpenseTotal        decimal.Decimal `json:"despesas_total"`
	ActiveProfessionals int             `json:"profissionais_ativos"`
	ActiveServices      int             `json:"servicos_ativos"`
	Balance             decimal.Decimal `json:"saldo"`
}

type RevenueMetrics struct {
	Count   int             `json:"quantidade"`
	Total   decimal.Decimal `json:"total"`
	Average decimal.Decimal `json:"ticket_medio"`
}

type ExpenseMetrics struct {
	Count int             `json:"quantidade"`
	Total decimal.Decimal `json:"total"`
}

type ProfessionalPerformance struct {
	Professional  string          `json:"profissional"`
	ServiceCount  int             `json:"qtd_servicos"`
	Revenue       decimal.Decimal `json:"total_receita"`
	AverageTicket decimal.Decimal `json:"ticket_medio"`
}

type ServicePopularity struct {
	ServiceType string          `json:"tipo_servico"`
	Count       int             `json:"quantidade"`
	Revenue     decimal.Decimal `json:"total"`
}

type CategoryTotal struct {
	Category string          `json:"categoria"`
	Count    int             `json:"quantidade"`
	Total    decimal.Decimal `json:"total"`
}

// PeriodReport reúne os indicadores de um intervalo de datas
type PeriodReport struct {
	Start              time.Time                 `json:"inicio"`
	End                time.Time                 `json:"fim"`
	Revenue            RevenueMetrics            `json:"receitas"`
	Expense            ExpenseMetrics            `json:"despesas"`
	Balance            decimal.Decimal           `json:"saldo"`
	TopProfessionals   []ProfessionalPerformance `json:"top_profissionais"`
	TopServices        []ServicePopularity       `json:"top_servicos"`
	ExpensesByCategory []CategoryTotal           `json:"despesas_por_categoria"`
}

type Severity string

const (
	SeverityCritical Severity = "CRITICO"
	SeverityMedium   Severity = "MEDIO"
	SeverityAlert    Severity = "ALERTA"
	SeverityInfo     Severity = "INFO"
)

type Problem struct {
	Severity    Severity `json:"severidade"`
	Description string   `json:"descricao"`
	Solution    string   `json:"solucao"`
}

type PaymentMethodTotal struct {
	PaymentMethod string          `json:"forma_pagamento"`
	Count         int             `json:"quantidade"`
	Total         decimal.Decimal `json:"total"`
}

// DiagnosticReport é o resultado da verificação de consistência do banco
type DiagnosticReport struct {
	GeneratedAt      time.Time            `json:"gerado_em"`
	TableCounts      map[string]int       `json:"tabelas"`
	ExpensesByMethod []PaymentMethodTotal `json:"despesas_por_forma_pagamento"`
	Problems         []Problem            `json:"problemas"`
}

// HasCritical indica se algum problema crítico foi encontrado
func (d *DiagnosticReport) HasCritical() bool {
	for _, p := range d.Problems {
		if p.Severity == SeverityCritical {
			return true
		}
	}
	return false
}
