package importing

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/shopspring/decimal"
	"github.com/vfg2006/dataops-local/internal/domain"
	"github.com/vfg2006/dataops-local/pkg/utils"
)

var hundred = decimal.NewFromInt(100)

// Validate confere a planilha inteira e devolve as mensagens de problema em ordem.
// Lista vazia significa planilha válida. A planilha não é alterada.
func Validate(batch *Batch) []string {
	var issues []string
	schema := batch.Schema

	for _, column := range schema.Required {
		if !batch.HasColumn(column) {
			issues = append(issues, fmt.Sprintf("Coluna obrigatória ausente: %s", column))
		}
	}

	for _, column := range schema.Required {
		if !batch.HasColumn(column) {
			continue
		}
		if blanks := countRows(batch, func(r Row) bool { return r[column] == "" }); blanks > 0 {
			issues = append(issues, fmt.Sprintf("Coluna %s possui %d valor(es) vazio(s)", column, blanks))
		}
	}

	if column := schema.MoneyColumn; column != "" && batch.HasColumn(column) {
		invalid, nonPositive := 0, 0
		for _, row := range batch.Rows {
			if row[column] == "" {
				continue
			}
			amount, err := utils.ParseAmount(row[column])
			if err != nil {
				invalid++
				continue
			}
			if !amount.IsPositive() {
				nonPositive++
			}
		}

		if invalid > 0 {
			issues = append(issues, fmt.Sprintf("Coluna %s possui %d valor(es) não numérico(s)", column, invalid))
		}
		if nonPositive > 0 {
			issues = append(issues, fmt.Sprintf("Coluna %s possui %d valor(es) menor(es) ou igual(is) a zero", column, nonPositive))
		}
	}

	switch schema.Kind {
	case domain.KindProfessional:
		issues = append(issues, validateProfessionals(batch)...)
	case domain.KindService:
		issues = append(issues, validateServices(batch)...)
	}

	return issues
}

func validateProfessionals(batch *Batch) []string {
	var issues []string

	issues = append(issues, duplicates(batch, "nome_profissional", "Profissional")...)

	if batch.HasColumn("tipo_contrato") {
		for i, row := range batch.Rows {
			if row["tipo_contrato"] == "" {
				continue
			}
			if _, ok := parseContractType(row["tipo_contrato"]); !ok {
				issues = append(issues, fmt.Sprintf("Registro %d: tipo de contrato inválido %q (use Percentual ou Fixo)", i+1, row["tipo_contrato"]))
			}
		}
	}

	issues = append(issues, invalidStatus(batch)...)

	if batch.HasColumn("percentual_comissao") {
		for i, row := range batch.Rows {
			if row["percentual_comissao"] == "" {
				continue
			}
			pct, err := utils.ParseAmount(row["percentual_comissao"])
			if err != nil || pct.IsNegative() || pct.GreaterThan(hundred) {
				issues = append(issues, fmt.Sprintf("Registro %d: percentual de comissão deve estar entre 0 e 100", i+1))
			}
		}
	}

	if batch.HasColumn("salario_fixo") {
		for i, row := range batch.Rows {
			if row["salario_fixo"] == "" {
				continue
			}
			salary, err := utils.ParseAmount(row["salario_fixo"])
			if err != nil || salary.IsNegative() {
				issues = append(issues, fmt.Sprintf("Registro %d: salário fixo deve ser um número maior ou igual a zero", i+1))
			}
		}
	}

	return issues
}

func validateServices(batch *Batch) []string {
	var issues []string

	issues = append(issues, duplicates(batch, "nome_servico", "Serviço")...)
	issues = append(issues, invalidStatus(batch)...)

	if batch.HasColumn("tempo_medio_minutos") {
		for i, row := range batch.Rows {
			if row["tempo_medio_minutos"] == "" {
				continue
			}
			if _, err := parseMinutes(row["tempo_medio_minutos"]); err != nil {
				issues = append(issues, fmt.Sprintf("Registro %d: tempo médio deve ser um número inteiro de minutos maior que zero", i+1))
			}
		}
	}

	return issues
}

func duplicates(batch *Batch, column, label string) []string {
	if !batch.HasColumn(column) {
		return nil
	}

	var issues []string
	seen := make(map[string]bool)
	reported := make(map[string]bool)
	for _, row := range batch.Rows {
		key := strings.ToLower(row[column])
		if key == "" {
			continue
		}
		if seen[key] && !reported[key] {
			issues = append(issues, fmt.Sprintf("%s duplicado: %s", label, row[column]))
			reported[key] = true
		}
		seen[key] = true
	}
	return issues
}

func invalidStatus(batch *Batch) []string {
	if !batch.HasColumn("status") {
		return nil
	}

	var issues []string
	for i, row := range batch.Rows {
		if row["status"] == "" {
			continue
		}
		if _, ok := parseStatus(row["status"]); !ok {
			issues = append(issues, fmt.Sprintf("Registro %d: status inválido %q (use Ativo ou Inativo)", i+1, row["status"]))
		}
	}
	return issues
}

func countRows(batch *Batch, match func(Row) bool) int {
	n := 0
	for _, row := range batch.Rows {
		if match(row) {
			n++
		}
	}
	return n
}

// valores aceitos nas planilhas, em minúsculas, incluindo os equivalentes em inglês
var contractTypes = map[string]domain.ContractType{
	"percentual": domain.ContractPercentage,
	"percentage": domain.ContractPercentage,
	"fixo":       domain.ContractFixed,
	"fixed":      domain.ContractFixed,
}

var statuses = map[string]domain.Status{
	"ativo":    domain.StatusActive,
	"active":   domain.StatusActive,
	"inativo":  domain.StatusInactive,
	"inactive": domain.StatusInactive,
}

func parseContractType(raw string) (domain.ContractType, bool) {
	c, ok := contractTypes[strings.ToLower(strings.TrimSpace(raw))]
	return c, ok
}

func parseStatus(raw string) (domain.Status, bool) {
	st, ok := statuses[strings.ToLower(strings.TrimSpace(raw))]
	return st, ok
}

// parseMinutes aceita "45" e também "45.0", que é como o Excel grava números inteiros às vezes
func parseMinutes(raw string) (int, error) {
	f, err := strconv.ParseFloat(strings.TrimSpace(raw), 64)
	if err != nil || f <= 0 || f != float64(int(f)) {
		return 0, fmt.Errorf("minutos inválidos: %q", raw)
	}
	return int(f), nil
}
