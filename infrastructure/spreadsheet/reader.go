// Package spreadsheet lê e gera as planilhas .xlsx usadas na coleta de dados
package spreadsheet

import (
	"strings"

	"github.com/pkg/errors"
	"github.com/xuri/excelize/v2"
)

var ErrSheetNotFound = errors.New("aba não encontrada na planilha")

// Sheet é o conteúdo bruto de uma aba: cabeçalho e linhas como texto
type Sheet struct {
	Name    string
	Headers []string
	Rows    [][]string
}

type Reader interface {
	ReadSheet(path, sheet string) (*Sheet, error)
}

type ExcelReader struct{}

func NewExcelReader() *ExcelReader {
	return &ExcelReader{}
}

// ReadSheet lê a aba indicada. Células de data chegam como número serial do Excel,
// já que a leitura usa o valor bruto da célula.
func (r *ExcelReader) ReadSheet(path, sheet string) (*Sheet, error) {
	f, err := excelize.OpenFile(path, excelize.Options{RawCellValue: true})
	if err != nil {
		return nil, errors.Wrapf(err, "erro ao abrir planilha %s", path)
	}
	defer f.Close()

	name, ok := findSheet(f, sheet)
	if !ok {
		return nil, errors.Wrapf(ErrSheetNotFound, "aba %q em %s", sheet, path)
	}

	rows, err := f.GetRows(name)
	if err != nil {
		return nil, errors.Wrapf(err, "erro ao ler aba %s", name)
	}

	result := &Sheet{Name: name}
	if len(rows) == 0 {
		return result, nil
	}

	result.Headers = rows[0]
	for _, row := range rows[1:] {
		if isBlank(row) {
			continue
		}

		// GetRows corta as células vazias do fim da linha
		padded := make([]string, len(result.Headers))
		copy(padded, row)
		result.Rows = append(result.Rows, padded)
	}

	return result, nil
}

func findSheet(f *excelize.File, sheet string) (string, bool) {
	if idx, err := f.GetSheetIndex(sheet); err == nil && idx >= 0 {
		return sheet, true
	}

	for _, name := range f.GetSheetList() {
		if strings.EqualFold(strings.TrimSpace(name), sheet) {
			return name, true
		}
	}

	return "", false
}

func isBlank(row []string) bool {
	for _, cell := range row {
		if strings.TrimSpace(cell) != "" {
			return false
		}
	}
	return true
}
