package reporting

import (
	"context"
	"fmt"
	"time"

	"github.com/pkg/errors"
	"github.com/sirupsen/logrus"
	"github.com/vfg2006/dataops-local/infrastructure/cache"
	"github.com/vfg2006/dataops-local/infrastructure/repository"
	"github.com/vfg2006/dataops-local/internal/domain"
)

const cachePrefix = "dataops:relatorios:"

var ErrInvalidPeriod = errors.New("data inicial posterior à data final")

type Reporter interface {
	Summary(ctx context.Context) (*domain.RunSummary, error)
	Period(ctx context.Context, start, end *time.Time, limit int) (*domain.PeriodReport, error)
	Diagnose(ctx context.Context) (*domain.DiagnosticReport, error)
	ActiveProfessionals(ctx context.Context) ([]*domain.Professional, error)
	ActiveServices(ctx context.Context) ([]*domain.Service, error)
	InvalidateCache(ctx context.Context)
}

type Options struct {
	CacheTTL    time.Duration
	TopLimit    int
	DefaultDays int
}

type Service struct {
	reportRepo       repository.ReportRepository
	professionalRepo repository.ProfessionalRepository
	serviceRepo      repository.ServiceRepository
	cache            cache.ReportCache
	opts             Options
	now              func() time.Time
}

func NewService(
	reportRepo repository.ReportRepository,
	professionalRepo repository.ProfessionalRepository,
	serviceRepo repository.ServiceRepository,
	reportCache cache.ReportCache,
	opts Options,
) *Service {
	if reportCache == nil {
		reportCache = cache.NoopReportCache{}
	}
	if opts.TopLimit <= 0 {
		opts.TopLimit = 5
	}
	if opts.DefaultDays <= 0 {
		opts.DefaultDays = 30
	}

	return &Service{
		reportRepo:       reportRepo,
		professionalRepo: professionalRepo,
		serviceRepo:      serviceRepo,
		cache:            reportCache,
		opts:             opts,
		now:              time.Now,
	}
}

// Summary devolve os totais gerais do banco, passando pelo cache
func (s *Service) Summary(ctx context.Context) (*domain.RunSummary, error) {
	key := cachePrefix + "resumo"

	var cached domain.RunSummary
	if s.fromCache(ctx, key, &cached) {
		return &cached, nil
	}

	summary, err := s.reportRepo.Summary(ctx)
	if err != nil {
		return nil, errors.Wrap(err, "erro ao consultar resumo")
	}

	s.toCache(ctx, key, summary)
	return summary, nil
}

// Period monta o relatório do intervalo. Sem datas, usa os últimos DefaultDays dias.
func (s *Service) Period(ctx context.Context, start, end *time.Time, limit int) (*domain.PeriodReport, error) {
	periodStart, periodEnd := s.resolvePeriod(start, end)
	if periodStart.After(periodEnd) {
		return nil, ErrInvalidPeriod
	}
	if limit <= 0 {
		limit = s.opts.TopLimit
	}

	key := fmt.Sprintf("%speriodo:%s:%s:%d", cachePrefix, periodStart.Format(time.DateOnly), periodEnd.Format(time.DateOnly), limit)

	var cached domain.PeriodReport
	if s.fromCache(ctx, key, &cached) {
		return &cached, nil
	}

	revenue, err := s.reportRepo.RevenueMetrics(ctx, periodStart, periodEnd)
	if err != nil {
		return nil, errors.Wrap(err, "erro ao consultar receitas do período")
	}

	expense, err := s.reportRepo.ExpenseMetrics(ctx, periodStart, periodEnd)
	if err != nil {
		return nil, errors.Wrap(err, "erro ao consultar despesas do período")
	}

	topProfessionals, err := s.reportRepo.TopProfessionals(ctx, periodStart, periodEnd, uint64(limit))
	if err != nil {
		return nil, errors.Wrap(err, "erro ao consultar ranking de profissionais")
	}

	topServices, err := s.reportRepo.TopServices(ctx, periodStart, periodEnd, uint64(limit))
	if err != nil {
		return nil, errors.Wrap(err, "erro ao consultar serviços mais vendidos")
	}

	byCategory, err := s.reportRepo.ExpensesByCategory(ctx, periodStart, periodEnd)
	if err != nil {
		return nil, errors.Wrap(err, "erro ao consultar despesas por categoria")
	}

	report := &domain.PeriodReport{
		Start:              periodStart,
		End:                periodEnd,
		Revenue:            *revenue,
		Expense:            *expense,
		Balance:            revenue.Total.Sub(expense.Total),
		TopProfessionals:   topProfessionals,
		TopServices:        topServices,
		ExpensesByCategory: byCategory,
	}

	s.toCache(ctx, key, report)
	return report, nil
}

func (s *Service) resolvePeriod(start, end *time.Time) (time.Time, time.Time) {
	today := s.now()
	periodEnd := time.Date(today.Year(), today.Month(), today.Day(), 0, 0, 0, 0, time.UTC)
	if end != nil {
		periodEnd = time.Date(end.Year(), end.Month(), end.Day(), 0, 0, 0, 0, time.UTC)
	}

	periodStart := periodEnd.AddDate(0, 0, -s.opts.DefaultDays)
	if start != nil {
		periodStart = time.Date(start.Year(), start.Month(), start.Day(), 0, 0, 0, 0, time.UTC)
	}

	return periodStart, periodEnd
}

func (s *Service) ActiveProfessionals(ctx context.Context) ([]*domain.Professional, error) {
	professionals, err := s.professionalRepo.ListActive(ctx)
	if err != nil {
		return nil, errors.Wrap(err, "erro ao listar profissionais ativos")
	}
	return professionals, nil
}

func (s *Service) ActiveServices(ctx context.Context) ([]*domain.Service, error) {
	services, err := s.serviceRepo.ListActive(ctx)
	if err != nil {
		return nil, errors.Wrap(err, "erro ao listar serviços ativos")
	}
	return services, nil
}

// InvalidateCache descarta os relatórios em cache depois de uma escrita
func (s *Service) InvalidateCache(ctx context.Context) {
	if err := s.cache.Invalidate(ctx, cachePrefix); err != nil {
		logrus.WithError(err).Warn("Erro ao invalidar cache de relatórios")
	}
}

func (s *Service) fromCache(ctx context.Context, key string, dest any) bool {
	found, err := s.cache.Get(ctx, key, dest)
	if err != nil {
		logrus.WithError(err).WithField("key", key).Warn("Erro ao ler cache de relatórios")
		return false
	}
	return found
}

func (s *Service) toCache(ctx context.Context, key string, value any) {
	if err := s.cache.Set(ctx, key, value, s.opts.CacheTTL); err != nil {
		logrus.WithError(err).WithField("key", key).Warn("Erro ao gravar cache de relatórios")
	}
}
