package importing

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/vfg2006/dataops-local/infrastructure/spreadsheet"
	"github.com/vfg2006/dataops-local/internal/domain"
)

func TestValidate(t *testing.T) {
	tests := []struct {
		name    string
		kind    domain.RecordKind
		headers []string
		rows    [][]string
		want    []string
	}{
		{
			name:    "Receitas válidas",
			kind:    domain.KindRevenue,
			headers: []string{"data", "tipo_servico", "profissional", "valor_servico"},
			rows:    [][]string{{"2025-02-01", "Corte", "Ana", "50"}, {"2025-02-02", "Barba", "Bruno", "R$ 30,00"}},
			want:    nil,
		},
		{
			name:    "Receitas sem coluna de valor",
			kind:    domain.KindRevenue,
			headers: []string{"data", "tipo_servico", "profissional"},
			rows:    [][]string{{"2025-02-01", "Corte", "Ana"}},
			want:    []string{"Coluna obrigatória ausente: valor_servico"},
		},
		{
			name:    "Receitas com valor zero e valor vazio",
			kind:    domain.KindRevenue,
			headers: []string{"data", "tipo_servico", "profissional", "valor_servico"},
			rows:    [][]string{{"2025-02-01", "Corte", "Ana", "0"}, {"2025-02-02", "Barba", "", ""}},
			want: []string{
				"Coluna profissional possui 1 valor(es) vazio(s)",
				"Coluna valor_servico possui 1 valor(es) vazio(s)",
				"Coluna valor_servico possui 1 valor(es) menor(es) ou igual(is) a zero",
			},
		},
		{
			name:    "Despesas com valor não numérico e negativo",
			kind:    domain.KindExpense,
			headers: []string{"data", "categoria", "descricao", "valor"},
			rows:    [][]string{{"2025-02-01", "Aluguel", "Fevereiro", "dois mil"}, {"2025-02-01", "Luz", "Conta", "-10"}},
			want: []string{
				"Coluna valor possui 1 valor(es) não numérico(s)",
				"Coluna valor possui 1 valor(es) menor(es) ou igual(is) a zero",
			},
		},
		{
			name:    "Profissionais com salário negativo e status desconhecido",
			kind:    domain.KindProfessional,
			headers: []string{"nome_profissional", "tipo_contrato", "salario_fixo", "status", "data_admissao"},
			rows:    [][]string{{"Bruno", "fixo", "-100", "Férias", "2023-01-01"}},
			want: []string{
				`Registro 1: status inválido "Férias" (use Ativo ou Inativo)`,
				"Registro 1: salário fixo deve ser um número maior ou igual a zero",
			},
		},
		{
			name:    "Serviços duplicados e tempo fracionado",
			kind:    domain.KindService,
			headers: []string{"nome_servico", "preco_base", "tempo_medio_minutos", "status"},
			rows:    [][]string{{"Corte", "50", "30.5", "Ativo"}, {"CORTE", "55", "30", "Ativo"}},
			want: []string{
				"Serviço duplicado: CORTE",
				"Registro 1: tempo médio deve ser um número inteiro de minutos maior que zero",
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			batch := NewBatch(SchemaFor(tt.kind), &spreadsheet.Sheet{Headers: tt.headers, Rows: tt.rows})
			before := len(batch.Rows)

			got := Validate(batch)

			assert.Equal(t, tt.want, got)
			assert.Equal(t, before, len(batch.Rows))
		})
	}
}
