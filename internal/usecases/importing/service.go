package importing

import (
	"context"
	"errors"
	"os"

	"github.com/vfg2006/dataops-local/infrastructure/repository"
	"github.com/vfg2006/dataops-local/infrastructure/spreadsheet"
	"github.com/vfg2006/dataops-local/internal/domain"
	"github.com/vfg2006/dataops-local/internal/runlog"
	"github.com/vfg2006/dataops-local/pkg/metrics"
)

// Importer importa uma planilha de cada tipo. Todo erro retornado já foi
// registrado no log da execução.
type Importer interface {
	Import(ctx context.Context, rl *runlog.Log, kind domain.RecordKind, path string) (int, error)
	ImportRevenues(ctx context.Context, rl *runlog.Log, path string) (int, error)
	ImportExpenses(ctx context.Context, rl *runlog.Log, path string) (int, error)
	ImportProfessionals(ctx context.Context, rl *runlog.Log, path string) (int, error)
	ImportServices(ctx context.Context, rl *runlog.Log, path string) (int, error)
}

type Service struct {
	reader           spreadsheet.Reader
	revenueRepo      repository.RevenueRepository
	expenseRepo      repository.ExpenseRepository
	professionalRepo repository.ProfessionalRepository
	serviceRepo      repository.ServiceRepository
}

func NewService(
	reader spreadsheet.Reader,
	revenueRepo repository.RevenueRepository,
	expenseRepo repository.ExpenseRepository,
	professionalRepo repository.ProfessionalRepository,
	serviceRepo repository.ServiceRepository,
) *Service {
	return &Service{
		reader:           reader,
		revenueRepo:      revenueRepo,
		expenseRepo:      expenseRepo,
		professionalRepo: professionalRepo,
		serviceRepo:      serviceRepo,
	}
}

// ImportRevenues acrescenta as receitas da planilha às já gravadas
func (s *Service) ImportRevenues(ctx context.Context, rl *runlog.Log, path string) (int, error) {
	return s.Import(ctx, rl, domain.KindRevenue, path)
}

// ImportExpenses acrescenta as despesas da planilha, todas como Manual
func (s *Service) ImportExpenses(ctx context.Context, rl *runlog.Log, path string) (int, error) {
	return s.Import(ctx, rl, domain.KindExpense, path)
}

// ImportProfessionals substitui o cadastro de profissionais
func (s *Service) ImportProfessionals(ctx context.Context, rl *runlog.Log, path string) (int, error) {
	return s.Import(ctx, rl, domain.KindProfessional, path)
}

// ImportServices substitui o catálogo de serviços
func (s *Service) ImportServices(ctx context.Context, rl *runlog.Log, path string) (int, error) {
	return s.Import(ctx, rl, domain.KindService, path)
}

func (s *Service) Import(ctx context.Context, rl *runlog.Log, kind domain.RecordKind, path string) (int, error) {
	schema := SchemaFor(kind)
	rl.Info("Processando %s: %s", schema.Label, path)

	if _, err := os.Stat(path); err != nil {
		rl.Error("Arquivo não encontrado: %s", path)
		return 0, s.fail(kind, "file_not_found", newImportError(ErrFileNotFound, kind, path))
	}

	sheet, err := s.reader.ReadSheet(path, schema.Sheet)
	if err != nil {
		if errors.Is(err, spreadsheet.ErrSheetNotFound) {
			rl.Error("Aba '%s' não encontrada em %s", schema.Sheet, path)
			return 0, s.fail(kind, "sheet_missing", newImportError(ErrSheetOrColumnMissing, kind, err.Error()))
		}
		rl.Error("Erro ao ler %s: %v", path, err)
		return 0, s.fail(kind, "unreadable", newImportError(ErrValidation, kind, err.Error()))
	}

	batch := NewBatch(schema, sheet)

	if dropped := batch.NormalizeDates(); dropped > 0 {
		rl.Warning("%d linha(s) de %s removida(s) por data vazia ou em formato não reconhecido", dropped, schema.Label)
		metrics.DroppedRows.WithLabelValues(string(kind)).Add(float64(dropped))
	}

	if issues := Validate(batch); len(issues) > 0 {
		rl.Error("Validação de %s falhou, nada foi gravado:", schema.Label)
		for _, issue := range issues {
			rl.Error("  - %s", issue)
		}

		base := ErrValidation
		for _, column := range schema.Required {
			if !batch.HasColumn(column) {
				base = ErrSheetOrColumnMissing
				break
			}
		}

		importErr := newImportError(base, kind, "")
		importErr.Issues = issues
		return 0, s.fail(kind, "validation", importErr)
	}

	if len(batch.Rows) == 0 {
		rl.Warning("Planilha de %s sem linhas", schema.Label)
	}

	n, err := s.persist(ctx, batch)
	if err != nil {
		if errors.Is(err, ErrValidation) {
			rl.Error("Erro ao converter %s: %v", schema.Label, err)
			return 0, s.fail(kind, "validation", err)
		}
		rl.Error("Erro ao gravar %s: %v", schema.Label, err)
		return 0, s.fail(kind, "store_write", newImportError(ErrStoreWrite, kind, err.Error()))
	}

	rl.Success("%d registro(s) de %s importado(s)", n, schema.Label)
	metrics.ImportedRows.WithLabelValues(string(kind)).Add(float64(n))

	return n, nil
}

// persist converte as linhas em registros tipados e grava: receitas e despesas
// são acrescentadas, profissionais e serviços substituem o conteúdo da tabela
func (s *Service) persist(ctx context.Context, batch *Batch) (int, error) {
	kind := batch.Schema.Kind

	switch kind {
	case domain.KindRevenue:
		records, err := toRevenues(batch)
		if err != nil {
			return 0, newImportError(ErrValidation, kind, err.Error())
		}
		return s.revenueRepo.Append(ctx, records)

	case domain.KindExpense:
		records, err := toExpenses(batch)
		if err != nil {
			return 0, newImportError(ErrValidation, kind, err.Error())
		}
		return s.expenseRepo.Append(ctx, records)

	case domain.KindProfessional:
		records, err := toProfessionals(batch)
		if err != nil {
			return 0, newImportError(ErrValidation, kind, err.Error())
		}
		return s.professionalRepo.Replace(ctx, records)

	case domain.KindService:
		records, err := toServices(batch)
		if err != nil {
			return 0, newImportError(ErrValidation, kind, err.Error())
		}
		return s.serviceRepo.Replace(ctx, records)
	}

	return 0, newImportError(ErrValidation, kind, "tipo de registro desconhecido")
}

func (s *Service) fail(kind domain.RecordKind, reason string, err error) error {
	metrics.ImportFailures.WithLabelValues(string(kind), reason).Inc()
	return err
}
