// Package domain contém as estruturas de dados do domínio da aplicação
package domain

import (
	"strings"
	"time"

	"github.com/shopspring/decimal"
)

// RecordKind identifica os quatro tipos de planilha aceitos pela importação
type RecordKind string

const (
	KindRevenue      RecordKind = "receitas"
	KindExpense      RecordKind = "despesas"
	KindProfessional RecordKind = "profissionais"
	KindService      RecordKind = "servicos"
)

// Kinds retorna os tipos na ordem em que o pipeline os importa
func Kinds() []RecordKind {
	return []RecordKind{KindProfessional, KindService, KindRevenue, KindExpense}
}

// ParseKind aceita o nome do tipo como aparece nas rotas e na linha de comando
func ParseKind(value string) (RecordKind, bool) {
	for _, kind := range Kinds() {
		if strings.EqualFold(value, string(kind)) {
			return kind, true
		}
	}
	return "", false
}

type ContractType string

const (
	ContractPercentage ContractType = "Percentual"
	ContractFixed      ContractType = "Fixo"
)

type Status string

const (
	StatusActive   Status = "Ativo"
	StatusInactive Status = "Inativo"
)

type ExpenseKind string

const (
	ExpenseManual             ExpenseKind = "Manual"
	ExpenseComputedCommission ExpenseKind = "Comissão Calculada"
)

// Revenue é uma linha de receitas: um serviço prestado e cobrado
type Revenue struct {
	ID            int64           `json:"id,omitempty"`
	OccurredOn    time.Time       `json:"data"`
	ServiceType   string          `json:"tipo_servico"`
	Professional  string          `json:"profissional"`
	Client        string          `json:"cliente,omitempty"`
	Amount        decimal.Decimal `json:"valor_servico"`
	PaymentMethod string          `json:"forma_pagamento,omitempty"`
	Notes         string          `json:"observacoes,omitempty"`
	ImportedAt    *time.Time      `json:"data_importacao,omitempty"`
}

type Expense struct {
	ID            int64           `json:"id,omitempty"`
	OccurredOn    time.Time       `json:"data"`
	Category      string          `json:"categoria"`
	Description   string          `json:"descricao"`
	Amount        decimal.Decimal `json:"valor"`
	PaymentMethod string          `json:"forma_pagamento,omitempty"`
	Supplier      string          `json:"fornecedor,omitempty"`
	Notes         string          `json:"observacoes,omitempty"`
	Kind          ExpenseKind     `json:"tipo_despesa"`
	ImportedAt    *time.Time      `json:"data_importacao,omitempty"`
}

type Professional struct {
	ID                int64           `json:"id,omitempty"`
	Name              string          `json:"nome_profissional"`
	Role              string          `json:"funcao,omitempty"`
	ContractType      ContractType    `json:"tipo_contrato"`
	CommissionPercent decimal.Decimal `json:"percentual_comissao"`
	FixedSalary       decimal.Decimal `json:"salario_fixo"`
	Status            Status          `json:"status"`
	HiredOn           *time.Time      `json:"data_admissao,omitempty"`
	ImportedAt        *time.Time      `json:"data_importacao,omitempty"`
}

// Service é um item do catálogo de serviços
type Service struct {
	ID             int64           `json:"id,omitempty"`
	Name           string          `json:"nome_servico"`
	BasePrice      decimal.Decimal `json:"preco_base"`
	AverageMinutes *int            `json:"tempo_medio_minutos,omitempty"`
	Category       string          `json:"categoria,omitempty"`
	Status         Status          `json:"status"`
	ImportedAt     *time.Time      `json:"data_importacao,omitempty"`
}
