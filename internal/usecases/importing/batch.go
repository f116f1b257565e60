package importing

import (
	"strings"
	"time"

	"github.com/vfg2006/dataops-local/infrastructure/spreadsheet"
	"github.com/vfg2006/dataops-local/pkg/utils"
)

// Row é uma linha da planilha indexada pelo nome canônico da coluna
type Row map[string]string

// Batch é o conteúdo de uma planilha já com os cabeçalhos normalizados
type Batch struct {
	Schema  Schema
	Columns []string
	Rows    []Row
}

// NewBatch normaliza os cabeçalhos da aba e monta as linhas. Quando a planilha
// traz o nome canônico e um apelido para a mesma coluna, vale o canônico.
func NewBatch(schema Schema, sheet *spreadsheet.Sheet) *Batch {
	exact := make(map[string]bool, len(sheet.Headers))
	for _, h := range sheet.Headers {
		exact[utils.NormalizeColumn(h)] = true
	}

	index := make(map[int]string, len(sheet.Headers))
	assigned := make(map[string]bool, len(sheet.Headers))
	batch := &Batch{Schema: schema}

	for i, h := range sheet.Headers {
		name := utils.NormalizeColumn(h)
		if name == "" {
			continue
		}

		canonical := schema.Canonical(name)
		if canonical != name && exact[canonical] {
			continue
		}
		if assigned[canonical] {
			continue
		}

		assigned[canonical] = true
		index[i] = canonical
		batch.Columns = append(batch.Columns, canonical)
	}

	for _, cells := range sheet.Rows {
		row := make(Row, len(index))
		for i, column := range index {
			if i < len(cells) {
				row[column] = strings.TrimSpace(cells[i])
			} else {
				row[column] = ""
			}
		}
		batch.Rows = append(batch.Rows, row)
	}

	return batch
}

func (b *Batch) HasColumn(column string) bool {
	for _, c := range b.Columns {
		if c == column {
			return true
		}
	}
	return false
}

// NormalizeDates reescreve a coluna de data no formato AAAA-MM-DD e remove as
// linhas cuja data está vazia ou não foi reconhecida. Retorna quantas saíram.
func (b *Batch) NormalizeDates() int {
	column := b.Schema.DateColumn
	if column == "" || !b.HasColumn(column) {
		return 0
	}

	kept := b.Rows[:0]
	dropped := 0
	for _, row := range b.Rows {
		date, err := utils.NormalizeDate(row[column])
		if err != nil || date == nil {
			dropped++
			continue
		}

		row[column] = date.Format(time.DateOnly)
		kept = append(kept, row)
	}

	b.Rows = kept
	return dropped
}
