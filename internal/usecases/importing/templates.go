package importing

import (
	"path/filepath"
	"strings"

	"github.com/vfg2006/dataops-local/infrastructure/spreadsheet"
	"github.com/vfg2006/dataops-local/internal/domain"
)

// linhas de exemplo de cada modelo de planilha
var templateRows = map[domain.RecordKind][][]any{
	domain.KindRevenue: {
		{"01/02/2025", "Corte de Cabelo", "João Silva", "Cliente A", 50.00, "Dinheiro", ""},
		{"02/02/2025", "Manicure", "Maria Santos", "Cliente B", 35.00, "PIX", "Cliente frequente"},
		{"03/02/2025", "Corte de Cabelo", "João Silva", "Cliente C", 50.00, "Cartão Débito", ""},
	},
	domain.KindExpense: {
		{"01/02/2025", "Produtos", "Shampoo profissional", 120.00, "Cartão Crédito", "Distribuidora XYZ", ""},
		{"05/02/2025", "Aluguel", "Aluguel do salão", 1500.00, "Transferência", "Imobiliária ABC", ""},
		{"10/02/2025", "Energia", "Conta de luz", 250.00, "Boleto", "Companhia Energia", ""},
	},
	domain.KindProfessional: {
		{"João Silva", "Cabeleireiro", "Percentual", 60, 0, "Ativo", "01/01/2024"},
		{"Maria Santos", "Manicure", "Percentual", 50, 0, "Ativo", "01/03/2024"},
		{"Pedro Oliveira", "Barbeiro", "Fixo", 0, 2500, "Ativo", "01/06/2024"},
	},
	domain.KindService: {
		{"Corte de Cabelo Masculino", 50.00, 30, "Cabelo", "Ativo"},
		{"Corte de Cabelo Feminino", 80.00, 60, "Cabelo", "Ativo"},
		{"Manicure", 35.00, 45, "Unhas", "Ativo"},
		{"Pedicure", 40.00, 60, "Unhas", "Ativo"},
		{"Barba", 30.00, 20, "Barba", "Ativo"},
	},
}

// WriteTemplates grava em dir um modelo preenchido de cada planilha, com os
// nomes de arquivo informados. Devolve os caminhos criados.
func WriteTemplates(dir string, files map[domain.RecordKind]string) ([]string, error) {
	paths := make([]string, 0, len(files))

	for _, kind := range domain.Kinds() {
		name, ok := files[kind]
		if !ok || name == "" {
			continue
		}

		schema := SchemaFor(kind)
		path := filepath.Join(dir, filepath.Base(name))
		if err := spreadsheet.WriteSheet(path, schema.Sheet, templateHeaders(schema), templateRows[kind]); err != nil {
			return paths, err
		}
		paths = append(paths, path)
	}

	return paths, nil
}

// templateHeaders escreve o cabeçalho como "Tipo_Servico"
func templateHeaders(schema Schema) []string {
	headers := make([]string, len(schema.Columns))
	for i, column := range schema.Columns {
		parts := strings.Split(column, "_")
		for j, p := range parts {
			if p != "" {
				parts[j] = strings.ToUpper(p[:1]) + p[1:]
			}
		}
		headers[i] = strings.Join(parts, "_")
	}
	return headers
}
