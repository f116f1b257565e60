package scheduler

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/go-co-op/gocron"
	"github.com/sirupsen/logrus"
	"github.com/vfg2006/dataops-local/internal/config"
	"github.com/vfg2006/dataops-local/internal/usecases/pipeline"
	"github.com/vfg2006/dataops-local/pkg/utils"
)

// CommissionSyncConfig representa a configuração do fechamento mensal de comissões
type CommissionSyncConfig struct {
	CronSchedule  string
	SyncEnabled   bool
	MonthLookBack int
}

// CommissionSyncService calcula as comissões dos meses anteriores no horário configurado
type CommissionSyncService struct {
	syncState
	scheduler *gocron.Scheduler
	config    CommissionSyncConfig
	runner    pipeline.Runner
	now       func() time.Time
}

func NewCommissionSyncService(runner pipeline.Runner, appConfig *config.Config) *CommissionSyncService {
	syncConfig := CommissionSyncConfig{
		CronSchedule:  appConfig.CommissionSync.CronSchedule,
		SyncEnabled:   appConfig.CommissionSync.Enabled,
		MonthLookBack: appConfig.CommissionSync.MonthLookBack,
	}
	if syncConfig.MonthLookBack <= 0 {
		syncConfig.MonthLookBack = 1
	}

	logrus.WithFields(logrus.Fields{
		"cron_schedule":   syncConfig.CronSchedule,
		"sync_enabled":    syncConfig.SyncEnabled,
		"month_look_back": syncConfig.MonthLookBack,
	}).Info("Configuração do agendador de comissões carregada")

	return &CommissionSyncService{
		scheduler: gocron.NewScheduler(time.Local),
		config:    syncConfig,
		runner:    runner,
		now:       time.Now,
	}
}

// Start inicia o agendador
func (s *CommissionSyncService) Start(ctx context.Context) error {
	if !s.config.SyncEnabled {
		logrus.Info("Fechamento de comissões desabilitado por configuração")
		return nil
	}

	logrus.WithField("cron", s.config.CronSchedule).Info("Iniciando agendador de comissões")
	s.setContext(ctx)

	_, err := s.scheduler.Cron(s.config.CronSchedule).Do(s.sync)
	if err != nil {
		return fmt.Errorf("erro ao agendar fechamento de comissões: %w", err)
	}

	s.scheduler.StartAsync()

	go func() {
		<-ctx.Done()
		logrus.Info("Parando agendador de comissões")
		s.scheduler.Stop()
	}()

	return nil
}

// sync calcula cada mês do período de retroação, do mais antigo ao mais recente.
// A falha de um mês não impede os demais.
func (s *CommissionSyncService) sync() {
	if !s.begin() {
		logrus.Info("Fechamento de comissões já em andamento, ignorando")
		return
	}

	startTime := time.Now()
	logrus.Info("Iniciando fechamento de comissões")

	var errs []error
	total := 0
	for _, period := range lookBackPeriods(s.now(), s.config.MonthLookBack) {
		start, end := period[0], period[1]

		fields := logrus.Fields{
			"start_date": start.Format(time.DateOnly),
			"end_date":   end.Format(time.DateOnly),
		}

		n, err := s.runner.ComputeCommissions(s.context(), &start, &end)
		if err != nil {
			logrus.WithError(err).WithFields(fields).Error("Erro ao calcular comissões do mês")
			errs = append(errs, fmt.Errorf("%s: %w", start.Format("01-2006"), err))
			continue
		}

		total += n
		logrus.WithFields(fields).WithField("commissions", n).Info("Comissões do mês registradas")
	}

	s.end(errors.Join(errs...))

	logrus.WithFields(logrus.Fields{
		"duration":    time.Since(startTime).String(),
		"commissions": total,
	}).Info("Fechamento de comissões concluído")
}

// lookBackPeriods devolve os meses fechados anteriores a now, do mais antigo ao mais recente
func lookBackPeriods(now time.Time, months int) [][2]time.Time {
	periods := make([][2]time.Time, 0, months)
	current := utils.FirstDayOfMonth(now)

	for i := months; i >= 1; i-- {
		month := current.AddDate(0, -i, 0)
		periods = append(periods, [2]time.Time{utils.FirstDayOfMonth(month), utils.LastDayOfMonth(month)})
	}
	return periods
}

// TriggerManualSync dispara o fechamento em segundo plano. Retorna false se já
// houver um em andamento.
func (s *CommissionSyncService) TriggerManualSync() bool {
	if s.isRunning() {
		logrus.Info("Fechamento de comissões já em andamento, ignorando solicitação manual")
		return false
	}

	logrus.Info("Iniciando fechamento manual de comissões")
	go s.sync()
	return true
}

// GetStatus retorna o status atual do fechamento de comissões
func (s *CommissionSyncService) GetStatus() map[string]any {
	status := s.status(s.config.CronSchedule, s.config.SyncEnabled)
	status["month_look_back"] = s.config.MonthLookBack
	return status
}
