package postgres

import (
	"context"

	"github.com/pkg/errors"
	"github.com/sirupsen/logrus"
)

// Tabelas gerenciadas pela aplicação
const (
	TableRevenues           = "receitas"
	TableExpenses           = "despesas"
	TableProfessionals      = "profissionais"
	TableServices           = "servicos"
	TableComputedCommission = "comissoes_calculadas"
)

func Tables() []string {
	return []string{TableRevenues, TableExpenses, TableProfessionals, TableServices, TableComputedCommission}
}

var schemaStatements = []struct {
	name string
	stmt string
}{
	{
		name: TableRevenues,
		stmt: `CREATE TABLE IF NOT EXISTS receitas (
			id SERIAL PRIMARY KEY,
			data DATE NOT NULL,
			tipo_servico TEXT NOT NULL,
			profissional TEXT NOT NULL,
			cliente TEXT,
			valor_servico NUMERIC(12,2) NOT NULL,
			forma_pagamento TEXT,
			observacoes TEXT,
			data_importacao TIMESTAMP DEFAULT CURRENT_TIMESTAMP
		)`,
	},
	{
		name: TableExpenses,
		stmt: `CREATE TABLE IF NOT EXISTS despesas (
			id SERIAL PRIMARY KEY,
			data DATE NOT NULL,
			categoria TEXT NOT NULL,
			descricao TEXT NOT NULL,
			valor NUMERIC(12,2) NOT NULL,
			forma_pagamento TEXT,
			fornecedor TEXT,
			observacoes TEXT,
			data_importacao TIMESTAMP DEFAULT CURRENT_TIMESTAMP
		)`,
	},
	{
		// Bancos criados antes da classificação de despesas não têm a coluna
		name: "despesas.tipo_despesa",
		stmt: `ALTER TABLE despesas ADD COLUMN IF NOT EXISTS tipo_despesa TEXT DEFAULT 'Manual'`,
	},
	{
		name: "despesas.tipo_despesa_backfill",
		stmt: `UPDATE despesas SET tipo_despesa = 'Manual' WHERE tipo_despesa IS NULL`,
	},
	{
		name: TableProfessionals,
		stmt: `CREATE TABLE IF NOT EXISTS profissionais (
			id SERIAL PRIMARY KEY,
			nome_profissional TEXT NOT NULL UNIQUE,
			funcao TEXT,
			tipo_contrato TEXT NOT NULL,
			percentual_comissao NUMERIC(5,2) DEFAULT 0,
			salario_fixo NUMERIC(12,2) DEFAULT 0,
			status TEXT NOT NULL,
			data_admissao DATE,
			data_importacao TIMESTAMP DEFAULT CURRENT_TIMESTAMP
		)`,
	},
	{
		name: TableServices,
		stmt: `CREATE TABLE IF NOT EXISTS servicos (
			id SERIAL PRIMARY KEY,
			nome_servico TEXT NOT NULL UNIQUE,
			preco_base NUMERIC(12,2) NOT NULL,
			tempo_medio_minutos INTEGER,
			categoria TEXT,
			status TEXT NOT NULL,
			data_importacao TIMESTAMP DEFAULT CURRENT_TIMESTAMP
		)`,
	},
	{
		name: TableComputedCommission,
		stmt: `CREATE TABLE IF NOT EXISTS comissoes_calculadas (
			id SERIAL PRIMARY KEY,
			profissional TEXT NOT NULL,
			periodo_inicio DATE NOT NULL,
			periodo_fim DATE NOT NULL,
			total_vendas NUMERIC(12,2) NOT NULL,
			percentual_comissao NUMERIC(5,2),
			valor_comissao NUMERIC(12,2),
			salario_fixo NUMERIC(12,2),
			total_pagar NUMERIC(12,2) NOT NULL,
			data_calculo TIMESTAMP DEFAULT CURRENT_TIMESTAMP
		)`,
	},
}

// EnsureSchema cria as tabelas que ainda não existem e aplica as colunas novas.
// Pode ser executado a cada inicialização.
func EnsureSchema(ctx context.Context, q Queryer) error {
	for _, s := range schemaStatements {
		if _, err := q.ExecContext(ctx, s.stmt); err != nil {
			return errors.Wrapf(err, "erro ao preparar tabela %s", s.name)
		}
		logrus.WithField("step", s.name).Debug("Estrutura do banco verificada")
	}

	return nil
}
