package importing

import (
	"github.com/vfg2006/dataops-local/internal/domain"
)

// Schema descreve a planilha de um tipo de registro
type Schema struct {
	Kind        domain.RecordKind
	Label       string
	Sheet       string
	DateColumn  string
	Columns     []string
	Required    []string
	MoneyColumn string
	Aliases     map[string]string
}

var schemas = map[domain.RecordKind]Schema{
	domain.KindRevenue: {
		Kind:        domain.KindRevenue,
		Label:       "receitas",
		Sheet:       "Receitas",
		DateColumn:  "data",
		Columns:     []string{"data", "tipo_servico", "profissional", "cliente", "valor_servico", "forma_pagamento", "observacoes"},
		Required:    []string{"data", "tipo_servico", "profissional", "valor_servico"},
		MoneyColumn: "valor_servico",
		Aliases: map[string]string{
			"date":           "data",
			"occurred_on":    "data",
			"service_type":   "tipo_servico",
			"servico":        "tipo_servico",
			"professional":   "profissional",
			"client":         "cliente",
			"customer":       "cliente",
			"amount":         "valor_servico",
			"valor":          "valor_servico",
			"payment_method": "forma_pagamento",
			"notes":          "observacoes",
		},
	},
	domain.KindExpense: {
		Kind:        domain.KindExpense,
		Label:       "despesas",
		Sheet:       "Despesas",
		DateColumn:  "data",
		Columns:     []string{"data", "categoria", "descricao", "valor", "forma_pagamento", "fornecedor", "observacoes"},
		Required:    []string{"data", "categoria", "descricao", "valor"},
		MoneyColumn: "valor",
		Aliases: map[string]string{
			"date":           "data",
			"occurred_on":    "data",
			"category":       "categoria",
			"description":    "descricao",
			"amount":         "valor",
			"payment_method": "forma_pagamento",
			"supplier":       "fornecedor",
			"vendor":         "fornecedor",
			"notes":          "observacoes",
		},
	},
	domain.KindProfessional: {
		Kind:       domain.KindProfessional,
		Label:      "profissionais",
		Sheet:      "Profissionais",
		DateColumn: "data_admissao",
		Columns:    []string{"nome_profissional", "funcao", "tipo_contrato", "percentual_comissao", "salario_fixo", "status", "data_admissao"},
		Required:   []string{"nome_profissional", "tipo_contrato", "status", "data_admissao"},
		Aliases: map[string]string{
			"name":               "nome_profissional",
			"nome":               "nome_profissional",
			"profissional":       "nome_profissional",
			"role":               "funcao",
			"contract_type":      "tipo_contrato",
			"commission_percent": "percentual_comissao",
			"comissao":           "percentual_comissao",
			"fixed_salary":       "salario_fixo",
			"hired_on":           "data_admissao",
		},
	},
	domain.KindService: {
		Kind:        domain.KindService,
		Label:       "serviços",
		Sheet:       "Servicos",
		Columns:     []string{"nome_servico", "preco_base", "tempo_medio_minutos", "categoria", "status"},
		Required:    []string{"nome_servico", "preco_base", "status"},
		MoneyColumn: "preco_base",
		Aliases: map[string]string{
			"name":                 "nome_servico",
			"nome":                 "nome_servico",
			"servico":              "nome_servico",
			"base_price":           "preco_base",
			"preco":                "preco_base",
			"average_minutes":      "tempo_medio_minutos",
			"avg_duration_minutes": "tempo_medio_minutos",
			"tempo_medio":          "tempo_medio_minutos",
			"category":             "categoria",
		},
	},
}

// SchemaFor retorna o esquema do tipo de registro
func SchemaFor(kind domain.RecordKind) Schema {
	return schemas[kind]
}

// Canonical traduz um nome de coluna já normalizado para o nome usado no banco
func (s Schema) Canonical(column string) string {
	if canonical, ok := s.Aliases[column]; ok {
		return canonical
	}
	return column
}
