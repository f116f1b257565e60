package utils

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNormalizeDate(t *testing.T) {
	tests := []struct {
		name     string
		input    any
		expected *time.Time
		err      error
	}{
		{
			name:     "Dia primeiro no formato brasileiro",
			input:    "01/02/2025",
			expected: date(2025, time.February, 1),
		},
		{
			name:     "Formato ISO",
			input:    "2025-02-01",
			expected: date(2025, time.February, 1),
		},
		{
			name:     "Dia e mês com um dígito",
			input:    "5/3/2025",
			expected: date(2025, time.March, 5),
		},
		{
			name:     "Dia primeiro com hífen",
			input:    "15-08-2024",
			expected: date(2024, time.August, 15),
		},
		{
			name:     "Ano primeiro com barra",
			input:    "2024/08/15",
			expected: date(2024, time.August, 15),
		},
		{
			name:     "Dia primeiro com ponto",
			input:    "15.08.2024",
			expected: date(2024, time.August, 15),
		},
		{
			name:     "Data e hora",
			input:    "2024-08-15 14:30:00",
			expected: date(2024, time.August, 15),
		},
		{
			name:     "Número serial do Excel como texto",
			input:    "45658",
			expected: date(2025, time.January, 1),
		},
		{
			name:     "Número serial do Excel como float",
			input:    45658.0,
			expected: date(2025, time.January, 1),
		},
		{
			name:     "Valor time.Time descarta o horário",
			input:    time.Date(2025, time.February, 1, 18, 45, 0, 0, time.UTC),
			expected: date(2025, time.February, 1),
		},
		{
			name:  "Texto inválido",
			input: "not-a-date",
			err:   ErrDateParse,
		},
		{
			name:  "Dia inexistente",
			input: "31/02/2025",
			err:   ErrDateParse,
		},
		{
			name:  "Número fora do intervalo de datas do Excel",
			input: -3.0,
			err:   ErrDateParse,
		},
		{
			name:  "Texto vazio não é data",
			input: "   ",
		},
		{
			name:  "Valor nulo",
			input: nil,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			result, err := NormalizeDate(tt.input)

			if tt.err != nil {
				assert.ErrorIs(t, err, tt.err)
				assert.Nil(t, result)
				return
			}

			require.NoError(t, err)
			if tt.expected == nil {
				assert.Nil(t, result)
				return
			}

			require.NotNil(t, result)
			assert.True(t, tt.expected.Equal(*result), "esperado %s, obtido %s", tt.expected, result)
		})
	}
}

func TestMonthBoundaries(t *testing.T) {
	tests := []struct {
		name  string
		ref   time.Time
		first time.Time
		last  time.Time
	}{
		{
			name:  "Fevereiro em ano bissexto",
			ref:   time.Date(2024, time.February, 10, 12, 0, 0, 0, time.UTC),
			first: *date(2024, time.February, 1),
			last:  *date(2024, time.February, 29),
		},
		{
			name:  "Fevereiro em ano comum",
			ref:   time.Date(2025, time.February, 28, 0, 0, 0, 0, time.UTC),
			first: *date(2025, time.February, 1),
			last:  *date(2025, time.February, 28),
		},
		{
			name:  "Dezembro vira o ano",
			ref:   time.Date(2025, time.December, 31, 23, 0, 0, 0, time.UTC),
			first: *date(2025, time.December, 1),
			last:  *date(2025, time.December, 31),
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.first, FirstDayOfMonth(tt.ref))
			assert.Equal(t, tt.last, LastDayOfMonth(tt.ref))
		})
	}
}

func date(year int, month time.Month, day int) *time.Time {
	d := time.Date(year, month, day, 0, 0, 0, 0, time.UTC)
	return &d
}
