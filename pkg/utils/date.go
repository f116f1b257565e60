package utils

import (
	"errors"
	"strconv"
	"strings"
	"time"

	"github.com/xuri/excelize/v2"
)

var ErrDateParse = errors.New("data em formato não reconhecido")

// Formatos tentados em ordem. Dia e mês aceitam um ou dois dígitos.
var dateLayouts = []string{
	"2/1/2006",
	"2006-1-2",
	"2-1-2006",
	"2006/1/2",
	"2.1.2006",
}

var fallbackLayouts = []string{
	time.RFC3339,
	"2006-01-02 15:04:05",
	"2006-01-02T15:04:05",
	"2006-01-02 15:04:05.000",
	"2/1/2006 15:04:05",
	"2/1/2006 15:04",
	"2/1/06",
	"2 Jan 2006",
	"Jan 2, 2006",
	"20060102",
}

// Limites do número serial de datas do Excel (1900-01-01 a 9999-12-31)
const (
	minExcelSerial = 1
	maxExcelSerial = 2958465
)

func ParseDate(dateStr string) (*time.Time, error) {
	var date time.Time

	if dateStr != "" {
		incomingDate, err := time.Parse(time.DateOnly, dateStr)
		if err != nil {
			return nil, err
		}

		date = incomingDate
	}

	return &date, nil
}

// NormalizeDate converte um valor de célula em uma data de calendário.
// Valores vazios retornam (nil, nil); valores não reconhecidos retornam ErrDateParse.
func NormalizeDate(value any) (*time.Time, error) {
	switch v := value.(type) {
	case nil:
		return nil, nil
	case time.Time:
		if v.IsZero() {
			return nil, nil
		}
		return dateOnly(v), nil
	case *time.Time:
		if v == nil || v.IsZero() {
			return nil, nil
		}
		return dateOnly(*v), nil
	case float64:
		return fromExcelSerial(v)
	case int:
		return fromExcelSerial(float64(v))
	case int64:
		return fromExcelSerial(float64(v))
	case string:
		return normalizeDateString(v)
	default:
		return nil, ErrDateParse
	}
}

func normalizeDateString(raw string) (*time.Time, error) {
	s := strings.TrimSpace(raw)
	if s == "" {
		return nil, nil
	}

	for _, layout := range dateLayouts {
		if t, err := time.Parse(layout, s); err == nil {
			return dateOnly(t), nil
		}
	}

	for _, layout := range fallbackLayouts {
		if t, err := time.Parse(layout, s); err == nil {
			return dateOnly(t), nil
		}
	}

	// Planilhas lidas com valor bruto trazem datas como número serial
	if f, err := strconv.ParseFloat(s, 64); err == nil {
		return fromExcelSerial(f)
	}

	return nil, ErrDateParse
}

func fromExcelSerial(serial float64) (*time.Time, error) {
	if serial < minExcelSerial || serial > maxExcelSerial {
		return nil, ErrDateParse
	}

	t, err := excelize.ExcelDateToTime(serial, false)
	if err != nil {
		return nil, ErrDateParse
	}

	return dateOnly(t), nil
}

func dateOnly(t time.Time) *time.Time {
	d := time.Date(t.Year(), t.Month(), t.Day(), 0, 0, 0, 0, time.UTC)
	return &d
}

// FirstDayOfMonth e LastDayOfMonth delimitam o mês de referência
func FirstDayOfMonth(t time.Time) time.Time {
	return time.Date(t.Year(), t.Month(), 1, 0, 0, 0, 0, time.UTC)
}

func LastDayOfMonth(t time.Time) time.Time {
	return time.Date(t.Year(), t.Month()+1, 1, 0, 0, 0, 0, time.UTC).AddDate(0, 0, -1)
}
