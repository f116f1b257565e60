package utils

import (
	"regexp"
	"strings"

	"github.com/pkg/errors"
	"github.com/shopspring/decimal"
)

var hundred = decimal.NewFromInt(100)

// milhar no padrão brasileiro sem parte decimal: 1.250, 12.500.000
var thousandsOnly = regexp.MustCompile(`^-?[1-9]\d{0,2}(\.\d{3})+$`)

// ParseAmount interpreta um valor monetário vindo da planilha.
// Aceita "150", "150.5", "1.250", "1.250,90" e prefixo "R$".
// Ponto seguido de exatamente três dígitos, sem vírgula, é separador de milhar.
func ParseAmount(raw string) (decimal.Decimal, error) {
	s := strings.TrimSpace(raw)
	s = strings.TrimPrefix(s, "R$")
	s = strings.TrimSpace(s)
	if s == "" {
		return decimal.Zero, errors.New("valor vazio")
	}

	switch {
	case strings.Contains(s, ","):
		s = strings.ReplaceAll(s, ".", "")
		s = strings.ReplaceAll(s, ",", ".")
	case thousandsOnly.MatchString(s):
		s = strings.ReplaceAll(s, ".", "")
	}

	d, err := decimal.NewFromString(s)
	if err != nil {
		return decimal.Zero, errors.Wrapf(err, "valor numérico inválido %q", raw)
	}

	return d, nil
}

func RoundWithTwoDecimalPlace(d decimal.Decimal) decimal.Decimal {
	if d.IsZero() {
		return decimal.Zero
	}

	return d.Round(2)
}

// Percent aplica um percentual (0 a 100) sobre o valor
func Percent(value, percent decimal.Decimal) decimal.Decimal {
	return RoundWithTwoDecimalPlace(value.Mul(percent).Div(hundred))
}

// FormatBRL formata o valor no padrão usado nos logs e observações: R$ 1234.50
func FormatBRL(d decimal.Decimal) string {
	return "R$ " + d.StringFixed(2)
}
