package scheduler

import (
	"context"
	"fmt"
	"time"

	"github.com/go-co-op/gocron"
	"github.com/sirupsen/logrus"
	"github.com/vfg2006/dataops-local/internal/config"
	"github.com/vfg2006/dataops-local/internal/usecases/pipeline"
)

// PipelineSyncConfig representa a configuração da importação agendada
type PipelineSyncConfig struct {
	CronSchedule string
	SyncEnabled  bool
}

// PipelineSyncService executa o pipeline completo no horário configurado
type PipelineSyncService struct {
	syncState
	scheduler  *gocron.Scheduler
	config     PipelineSyncConfig
	runner     pipeline.Runner
	lastResult *pipeline.Result
}

func NewPipelineSyncService(runner pipeline.Runner, appConfig *config.Config) *PipelineSyncService {
	syncConfig := PipelineSyncConfig{
		CronSchedule: appConfig.PipelineSync.CronSchedule,
		SyncEnabled:  appConfig.PipelineSync.Enabled,
	}

	logrus.WithFields(logrus.Fields{
		"cron_schedule": syncConfig.CronSchedule,
		"sync_enabled":  syncConfig.SyncEnabled,
	}).Info("Configuração do agendador de importação carregada")

	return &PipelineSyncService{
		scheduler: gocron.NewScheduler(time.Local),
		config:    syncConfig,
		runner:    runner,
	}
}

// Start inicia o agendador
func (s *PipelineSyncService) Start(ctx context.Context) error {
	if !s.config.SyncEnabled {
		logrus.Info("Importação agendada desabilitada por configuração")
		return nil
	}

	logrus.WithField("cron", s.config.CronSchedule).Info("Iniciando agendador de importação")
	s.setContext(ctx)

	_, err := s.scheduler.Cron(s.config.CronSchedule).Do(s.sync)
	if err != nil {
		return fmt.Errorf("erro ao agendar importação: %w", err)
	}

	s.scheduler.StartAsync()

	go func() {
		<-ctx.Done()
		logrus.Info("Parando agendador de importação")
		s.scheduler.Stop()
	}()

	return nil
}

func (s *PipelineSyncService) sync() {
	if !s.begin() {
		logrus.Info("Importação agendada já em andamento, ignorando")
		return
	}

	logrus.Info("Iniciando importação agendada")
	result, err := s.runner.Run(s.context(), pipeline.TriggerScheduler)

	s.mu.Lock()
	s.lastResult = result
	s.mu.Unlock()
	s.end(err)

	if err != nil {
		logrus.WithError(err).Error("Erro na importação agendada")
		return
	}

	logrus.WithFields(logrus.Fields{
		"run_id":   result.RunID,
		"duration": result.FinishedAt.Sub(result.StartedAt).String(),
		"failures": len(result.Failures),
	}).Info("Importação agendada concluída")
}

// TriggerManualSync dispara a importação em segundo plano. Retorna false se já
// houver uma em andamento.
func (s *PipelineSyncService) TriggerManualSync() bool {
	if s.isRunning() {
		logrus.Info("Importação já em andamento, ignorando solicitação manual")
		return false
	}

	logrus.Info("Iniciando importação manual")
	go s.sync()
	return true
}

// GetStatus retorna o status atual da importação agendada
func (s *PipelineSyncService) GetStatus() map[string]any {
	status := s.status(s.config.CronSchedule, s.config.SyncEnabled)

	s.mu.Lock()
	if s.lastResult != nil {
		status["last_run_id"] = s.lastResult.RunID
		status["last_imported"] = s.lastResult.Imported
		status["last_failures"] = s.lastResult.Failures
	}
	s.mu.Unlock()

	return status
}
