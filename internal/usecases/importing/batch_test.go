package importing

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/vfg2006/dataops-local/infrastructure/spreadsheet"
	"github.com/vfg2006/dataops-local/internal/domain"
)

func TestNewBatch(t *testing.T) {
	tests := []struct {
		name        string
		headers     []string
		rows        [][]string
		wantColumns []string
		wantRows    []Row
	}{
		{
			name:        "Cabeçalhos em inglês viram nomes do banco",
			headers:     []string{" Date ", "Service Type", "PROFESSIONAL", "Amount"},
			rows:        [][]string{{"01/02/2025", "Corte", "Ana", "50"}},
			wantColumns: []string{"data", "tipo_servico", "profissional", "valor_servico"},
			wantRows:    []Row{{"data": "01/02/2025", "tipo_servico": "Corte", "profissional": "Ana", "valor_servico": "50"}},
		},
		{
			name:        "Nome canônico vence o apelido",
			headers:     []string{"Valor", "Valor Servico", "Data"},
			rows:        [][]string{{"10", "20", "01/02/2025"}},
			wantColumns: []string{"valor_servico", "data"},
			wantRows:    []Row{{"valor_servico": "20", "data": "01/02/2025"}},
		},
		{
			name:        "Linha curta é completada com vazio",
			headers:     []string{"Data", "Cliente"},
			rows:        [][]string{{" 01/02/2025 "}},
			wantColumns: []string{"data", "cliente"},
			wantRows:    []Row{{"data": "01/02/2025", "cliente": ""}},
		},
		{
			name:        "Cabeçalho vazio é ignorado",
			headers:     []string{"Data", "", "Cliente"},
			rows:        [][]string{{"01/02/2025", "lixo", "Maria"}},
			wantColumns: []string{"data", "cliente"},
			wantRows:    []Row{{"data": "01/02/2025", "cliente": "Maria"}},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			batch := NewBatch(SchemaFor(domain.KindRevenue), &spreadsheet.Sheet{
				Name:    "Receitas",
				Headers: tt.headers,
				Rows:    tt.rows,
			})

			assert.Equal(t, tt.wantColumns, batch.Columns)
			assert.Equal(t, tt.wantRows, batch.Rows)
		})
	}
}

func TestBatch_NormalizeDates(t *testing.T) {
	batch := NewBatch(SchemaFor(domain.KindExpense), &spreadsheet.Sheet{
		Headers: []string{"Data", "Valor"},
		Rows: [][]string{
			{"01/02/2025", "10"},
			{"", "20"},
			{"2025-02-03", "30"},
			{"not-a-date", "40"},
			{"45678", "50"},
		},
	})

	dropped := batch.NormalizeDates()

	assert.Equal(t, 2, dropped)
	require.Len(t, batch.Rows, 3)
	assert.Equal(t, "2025-02-01", batch.Rows[0]["data"])
	assert.Equal(t, "2025-02-03", batch.Rows[1]["data"])
	assert.Equal(t, "2025-01-21", batch.Rows[2]["data"])
}

func TestBatch_NormalizeDates_SemColunaDeData(t *testing.T) {
	batch := NewBatch(SchemaFor(domain.KindService), &spreadsheet.Sheet{
		Headers: []string{"Nome Servico"},
		Rows:    [][]string{{"Corte"}},
	})

	assert.Equal(t, 0, batch.NormalizeDates())
	assert.Len(t, batch.Rows, 1)
}
