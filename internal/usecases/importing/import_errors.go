package importing

import (
	"errors"
	"fmt"

	"github.com/vfg2006/dataops-local/internal/domain"
	"github.com/vfg2006/dataops-local/pkg/utils"
)

// Erros da importação de planilhas
var (
	ErrFileNotFound         = errors.New("arquivo não encontrado")
	ErrSheetOrColumnMissing = errors.New("aba ou coluna obrigatória ausente")
	ErrValidation           = errors.New("planilha reprovada na validação")
	ErrStoreWrite           = errors.New("erro ao gravar no banco de dados")
	ErrDateParse            = utils.ErrDateParse
)

// ImportError é um erro com o contexto do tipo de planilha importada
type ImportError struct {
	Err     error             // Erro base
	Kind    domain.RecordKind // Tipo de planilha
	Details string            // Detalhes adicionais
	Issues  []string          // Mensagens da validação, quando houver
}

// Error implementa a interface error
func (e *ImportError) Error() string {
	if e.Details != "" {
		return fmt.Sprintf("%s (%s): %s", e.Err.Error(), e.Kind, e.Details)
	}
	return fmt.Sprintf("%s (%s)", e.Err.Error(), e.Kind)
}

// Unwrap retorna o erro subjacente
func (e *ImportError) Unwrap() error {
	return e.Err
}

func newImportError(err error, kind domain.RecordKind, details string) *ImportError {
	return &ImportError{
		Err:     err,
		Kind:    kind,
		Details: details,
	}
}
