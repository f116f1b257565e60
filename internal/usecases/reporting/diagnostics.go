package reporting

import (
	"context"
	"fmt"
	"sort"
	"strings"

	"github.com/pkg/errors"
	"github.com/vfg2006/dataops-local/infrastructure/database/postgres"
	"github.com/vfg2006/dataops-local/internal/domain"
	"github.com/vfg2006/dataops-local/pkg/utils"
)

// tabelas que precisam existir para o pipeline funcionar
var requiredTables = []string{
	postgres.TableRevenues,
	postgres.TableExpenses,
	postgres.TableProfessionals,
	postgres.TableServices,
}

type check func(ctx context.Context, report *domain.DiagnosticReport) error

// Diagnose verifica a consistência do banco e lista os problemas encontrados,
// dos mais graves aos informativos
func (s *Service) Diagnose(ctx context.Context) (*domain.DiagnosticReport, error) {
	report := &domain.DiagnosticReport{
		GeneratedAt: s.now(),
		Problems:    make([]domain.Problem, 0),
	}

	checks := []check{
		s.checkTables,
		s.checkPaymentMethods,
		s.checkFutureExpenses,
		s.checkCommissions,
		s.checkProfessionals,
		s.checkNonPositiveValues,
	}

	for _, c := range checks {
		if err := c(ctx, report); err != nil {
			return nil, err
		}
	}

	sortProblems(report.Problems)
	return report, nil
}

func (s *Service) checkTables(ctx context.Context, report *domain.DiagnosticReport) error {
	counts, err := s.reportRepo.TableCounts(ctx)
	if err != nil {
		return errors.Wrap(err, "erro ao contar tabelas")
	}
	report.TableCounts = counts

	for _, table := range requiredTables {
		if _, ok := counts[table]; !ok {
			addProblem(report, domain.SeverityCritical,
				fmt.Sprintf("Tabela '%s' não existe", table),
				"Execute a importação para criar as tabelas")
		}
	}
	return nil
}

func (s *Service) checkPaymentMethods(ctx context.Context, report *domain.DiagnosticReport) error {
	missing, err := s.reportRepo.CountExpensesWithoutPaymentMethod(ctx)
	if err != nil {
		return errors.Wrap(err, "erro ao contar despesas sem forma de pagamento")
	}
	if missing > 0 {
		addProblem(report, domain.SeverityMedium,
			fmt.Sprintf("%d despesas sem forma de pagamento", missing),
			"Atualize a planilha de despesas com a forma de pagamento e reimporte")
	}

	byMethod, err := s.reportRepo.ExpensesByPaymentMethod(ctx)
	if err != nil {
		return errors.Wrap(err, "erro ao agrupar despesas por forma de pagamento")
	}
	report.ExpensesByMethod = byMethod

	if len(byMethod) == 0 {
		addProblem(report, domain.SeverityCritical,
			"Banco de dados vazio",
			"Execute a importação das planilhas")
		return nil
	}

	for _, m := range byMethod {
		if strings.EqualFold(m.PaymentMethod, "boleto") {
			return nil
		}
	}
	addProblem(report, domain.SeverityInfo,
		"Nenhuma despesa de boleto encontrada",
		"Verifique se as despesas de boleto foram importadas e se a forma de pagamento está correta")
	return nil
}

func (s *Service) checkFutureExpenses(ctx context.Context, report *domain.DiagnosticReport) error {
	future, err := s.reportRepo.CountFutureExpenses(ctx, report.GeneratedAt)
	if err != nil {
		return errors.Wrap(err, "erro ao contar despesas futuras")
	}
	if future > 0 {
		addProblem(report, domain.SeverityAlert,
			fmt.Sprintf("%d despesas com data futura", future),
			"Verifique se as datas estão corretas")
	}
	return nil
}

func (s *Service) checkCommissions(ctx context.Context, report *domain.DiagnosticReport) error {
	count, total, err := s.reportRepo.ComputedCommissionExpenses(ctx)
	if err != nil {
		return errors.Wrap(err, "erro ao consultar comissões calculadas")
	}
	if count == 0 {
		addProblem(report, domain.SeverityInfo,
			"Nenhuma comissão calculada",
			"Execute o cálculo de comissões do período")
		return nil
	}

	addProblem(report, domain.SeverityInfo,
		fmt.Sprintf("%d comissões calculadas somando %s", count, utils.FormatBRL(total)),
		"Nenhuma ação necessária")
	return nil
}

func (s *Service) checkProfessionals(ctx context.Context, report *domain.DiagnosticReport) error {
	if report.TableCounts[postgres.TableProfessionals] == 0 {
		addProblem(report, domain.SeverityCritical,
			"Nenhum profissional cadastrado",
			"Importe a planilha de profissionais")
		return nil
	}

	withoutRate, err := s.reportRepo.CountPercentageProfessionalsWithoutRate(ctx)
	if err != nil {
		return errors.Wrap(err, "erro ao verificar percentuais de comissão")
	}
	if withoutRate > 0 {
		addProblem(report, domain.SeverityAlert,
			fmt.Sprintf("%d profissional(is) com contrato 'Percentual' mas percentual zero", withoutRate),
			"Atualize o percentual de comissão na planilha de profissionais")
	}
	return nil
}

func (s *Service) checkNonPositiveValues(ctx context.Context, report *domain.DiagnosticReport) error {
	revenues, expenses, err := s.reportRepo.CountNonPositiveValues(ctx)
	if err != nil {
		return errors.Wrap(err, "erro ao verificar valores zerados")
	}
	if revenues > 0 {
		addProblem(report, domain.SeverityAlert,
			fmt.Sprintf("%d receitas com valor inválido", revenues),
			"Verifique os valores na planilha de receitas")
	}
	if expenses > 0 {
		addProblem(report, domain.SeverityAlert,
			fmt.Sprintf("%d despesas com valor inválido", expenses),
			"Verifique os valores na planilha de despesas")
	}
	return nil
}

func addProblem(report *domain.DiagnosticReport, severity domain.Severity, description, solution string) {
	report.Problems = append(report.Problems, domain.Problem{
		Severity:    severity,
		Description: description,
		Solution:    solution,
	})
}

var severityOrder = map[domain.Severity]int{
	domain.SeverityCritical: 0,
	domain.SeverityMedium:   1,
	domain.SeverityAlert:    2,
	domain.SeverityInfo:     3,
}

// sortProblems ordena por gravidade mantendo a ordem de detecção dentro de cada nível
func sortProblems(problems []domain.Problem) {
	sort.SliceStable(problems, func(i, j int) bool {
		return severityOrder[problems[i].Severity] < severityOrder[problems[j].Severity]
	})
}
