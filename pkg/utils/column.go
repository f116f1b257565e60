package utils

import "strings"

// NormalizeColumn padroniza o nome de uma coluna: minúsculas, sem espaços nas
// pontas e com espaços internos trocados por "_"
func NormalizeColumn(raw string) string {
	name := strings.ToLower(strings.TrimSpace(raw))
	return strings.ReplaceAll(name, " ", "_")
}
