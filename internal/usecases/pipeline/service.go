// Package pipeline coordena uma execução completa: importa as quatro planilhas
// em ordem, calcula as comissões do mês e registra o resumo final.
package pipeline

import (
	"context"
	"sync"
	"time"

	"github.com/pkg/errors"
	"github.com/vfg2006/dataops-local/infrastructure/repository"
	"github.com/vfg2006/dataops-local/internal/domain"
	"github.com/vfg2006/dataops-local/internal/runlog"
	"github.com/vfg2006/dataops-local/internal/usecases/commissioning"
	"github.com/vfg2006/dataops-local/internal/usecases/importing"
	"github.com/vfg2006/dataops-local/pkg/metrics"
	"github.com/vfg2006/dataops-local/pkg/utils"
)

// Origem da execução, usada nos logs e nas métricas
const (
	TriggerCLI       = "cli"
	TriggerAPI       = "api"
	TriggerScheduler = "agendador"
)

type Runner interface {
	Run(ctx context.Context, trigger string) (*Result, error)
	ImportFile(ctx context.Context, kind domain.RecordKind, path string) (int, error)
	ComputeCommissions(ctx context.Context, start, end *time.Time) (int, error)
}

type Options struct {
	Files              map[domain.RecordKind]string
	LogFile            string
	ComputeCommissions bool
}

// Result é o que uma execução produziu. Failures guarda a mensagem do erro de
// cada tipo que não foi importado.
type Result struct {
	RunID           string                       `json:"run_id"`
	Trigger         string                       `json:"origem"`
	StartedAt       time.Time                    `json:"inicio"`
	FinishedAt      time.Time                    `json:"fim"`
	Imported        map[domain.RecordKind]int    `json:"importados"`
	Failures        map[domain.RecordKind]string `json:"falhas,omitempty"`
	Commissions     int                          `json:"comissoes"`
	CommissionError string                       `json:"erro_comissoes,omitempty"`
	Summary         *domain.RunSummary           `json:"resumo"`
}

// Service serializa as escritas do processo: uma execução, importação avulsa ou
// cálculo de comissões por vez
type Service struct {
	mu         sync.Mutex
	importer   importing.Importer
	calculator commissioning.Calculator
	reportRepo repository.ReportRepository
	opts       Options
	newLog     func(path string) *runlog.Log
}

func NewService(
	importer importing.Importer,
	calculator commissioning.Calculator,
	reportRepo repository.ReportRepository,
	opts Options,
) *Service {
	return &Service{
		importer:   importer,
		calculator: calculator,
		reportRepo: reportRepo,
		opts:       opts,
		newLog:     runlog.New,
	}
}

func (s *Service) Run(ctx context.Context, trigger string) (*Result, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	rl := s.newLog(s.opts.LogFile)
	defer s.flush(rl)

	result := &Result{
		RunID:     rl.RunID(),
		Trigger:   trigger,
		StartedAt: time.Now(),
		Imported:  make(map[domain.RecordKind]int),
		Failures:  make(map[domain.RecordKind]string),
	}

	metrics.PipelineRuns.WithLabelValues(trigger).Inc()
	defer func() {
		metrics.PipelineDuration.Observe(time.Since(result.StartedAt).Seconds())
	}()

	rl.Info("Iniciando importação (%s)", trigger)

	for _, kind := range domain.Kinds() {
		if err := ctx.Err(); err != nil {
			rl.Error("Execução cancelada antes de importar %s", kind)
			return result, errors.Wrap(err, "execução cancelada")
		}

		path, ok := s.opts.Files[kind]
		if !ok || path == "" {
			rl.Warning("Nenhuma planilha configurada para %s", kind)
			result.Imported[kind] = 0
			continue
		}

		n, err := s.importer.Import(ctx, rl, kind, path)
		result.Imported[kind] = n
		if err != nil {
			result.Failures[kind] = err.Error()
		}
	}

	switch {
	case !s.opts.ComputeCommissions:
	case trigger == TriggerScheduler:
		// o agendador de comissões fecha os meses; recalcular a cada execução agendada duplicaria a folha
		rl.Info("Execução agendada: cálculo de comissões fica com o agendador de comissões")
	default:
		n, err := s.calculator.ComputeCommissions(ctx, rl, nil, nil)
		if err != nil {
			result.CommissionError = err.Error()
		}
		result.Commissions = n
	}

	summary, err := s.reportRepo.Summary(ctx)
	if err != nil {
		rl.Error("Erro ao gerar o resumo da importação: %v", err)
		result.FinishedAt = time.Now()
		return result, errors.Wrap(err, "erro ao gerar resumo")
	}

	result.Summary = summary
	LogSummary(rl, summary)

	result.FinishedAt = time.Now()
	rl.Success("Importação concluída em %s", result.FinishedAt.Sub(result.StartedAt).Round(time.Millisecond))

	return result, nil
}

// ImportFile importa uma única planilha em uma execução própria
func (s *Service) ImportFile(ctx context.Context, kind domain.RecordKind, path string) (int, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	rl := s.newLog(s.opts.LogFile)
	defer s.flush(rl)

	return s.importer.Import(ctx, rl, kind, path)
}

// ComputeCommissions calcula as comissões do período em uma execução própria
func (s *Service) ComputeCommissions(ctx context.Context, start, end *time.Time) (int, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	rl := s.newLog(s.opts.LogFile)
	defer s.flush(rl)

	return s.calculator.ComputeCommissions(ctx, rl, start, end)
}

func (s *Service) flush(rl *runlog.Log) {
	if err := rl.Flush(); err != nil {
		rl.Warning("Não foi possível gravar o arquivo de log: %v", err)
	}
}

// LogSummary escreve o resumo no log da execução
func LogSummary(rl *runlog.Log, summary *domain.RunSummary) {
	rl.Info("RESUMO DA IMPORTAÇÃO")
	rl.Info("Receitas: %d registro(s) | Total: %s", summary.RevenueCount, utils.FormatBRL(summary.RevenueTotal))
	rl.Info("Despesas: %d registro(s) | Total: %s", summary.ExpenseCount, utils.FormatBRL(summary.ExpenseTotal))
	rl.Info("Profissionais ativos: %d", summary.ActiveProfessionals)
	rl.Info("Serviços ativos: %d", summary.ActiveServices)
	rl.Info("Saldo: %s", utils.FormatBRL(summary.Balance))
}
