package main

import (
	"context"

	"github.com/sirupsen/logrus"
	"github.com/vfg2006/dataops-local/infrastructure/cache"
	"github.com/vfg2006/dataops-local/infrastructure/database/postgres"
	"github.com/vfg2006/dataops-local/infrastructure/repository"
	"github.com/vfg2006/dataops-local/infrastructure/spreadsheet"
	"github.com/vfg2006/dataops-local/internal/api"
	"github.com/vfg2006/dataops-local/internal/api/handler"
	"github.com/vfg2006/dataops-local/internal/config"
	"github.com/vfg2006/dataops-local/internal/domain"
	"github.com/vfg2006/dataops-local/internal/scheduler"
	"github.com/vfg2006/dataops-local/internal/usecases/authenticating"
	"github.com/vfg2006/dataops-local/internal/usecases/commissioning"
	"github.com/vfg2006/dataops-local/internal/usecases/importing"
	"github.com/vfg2006/dataops-local/internal/usecases/pipeline"
	"github.com/vfg2006/dataops-local/internal/usecases/reporting"
	"github.com/vfg2006/dataops-local/pkg/log"
)

func main() {
	cfg, err := config.NewConfig()
	if err != nil {
		logrus.Fatal(err)
	}

	log.Setup(cfg.App.LogLevel)
	logrus.Infof("Nível de log configurado para: %s", logrus.GetLevel())

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	pgConn := pgconn(ctx, cfg.Database)
	defer pgConn.Close()

	revenueRepo := repository.NewRevenueRepository(pgConn)
	expenseRepo := repository.NewExpenseRepository(pgConn)
	professionalRepo := repository.NewProfessionalRepository(pgConn)
	serviceRepo := repository.NewServiceRepository(pgConn)
	commissionRepo := repository.NewCommissionRepository(pgConn)
	reportRepo := repository.NewReportRepository(pgConn)

	reportCache := redisCache(ctx, cfg.Redis)
	defer reportCache.Close()

	importer := importing.NewService(spreadsheet.NewExcelReader(), revenueRepo, expenseRepo, professionalRepo, serviceRepo)
	calculator := commissioning.NewService(revenueRepo, expenseRepo, commissionRepo)

	runner := pipeline.NewService(importer, calculator, reportRepo, pipeline.Options{
		Files:              importFiles(cfg.Import),
		LogFile:            cfg.Import.LogFile,
		ComputeCommissions: cfg.Import.ComputeCommissions,
	})

	reporter := reporting.NewService(reportRepo, professionalRepo, serviceRepo, reportCache, reporting.Options{
		CacheTTL:    cfg.Report.CacheTTL(),
		TopLimit:    cfg.Report.TopLimit,
		DefaultDays: cfg.Report.DefaultDays,
	})

	authenticator := authenticating.NewService(cfg)
	if cfg.Auth.AdminPasswordHash == "" {
		logrus.Warn("AUTH_ADMIN_PASSWORD_HASH não definido, login pela API desativado")
	}

	pipelineSyncService := scheduler.NewPipelineSyncService(runner, cfg)
	commissionSyncService := scheduler.NewCommissionSyncService(runner, cfg)

	if err := pipelineSyncService.Start(ctx); err != nil {
		logrus.WithError(err).Error("Erro ao iniciar o agendador de importação")
	} else {
		logrus.Info("Agendador de importação iniciado com sucesso")
	}

	if err := commissionSyncService.Start(ctx); err != nil {
		logrus.WithError(err).Error("Erro ao iniciar o agendador de comissões")
	} else {
		logrus.Info("Agendador de comissões iniciado com sucesso")
	}

	server, err := api.New(cfg, api.Services{
		Runner:        runner,
		Reporter:      reporter,
		Authenticator: authenticator,
		CronJobs: handler.CronJobServices{
			handler.CronJobTypePipeline:    pipelineSyncService,
			handler.CronJobTypeCommissions: commissionSyncService,
		},
	})
	if err != nil {
		logrus.Fatal(err)
	}

	if err := server.Run(ctx); err != nil {
		logrus.Error(err)
	}
}

// pgconn cria a conexão com o banco e garante as tabelas
func pgconn(ctx context.Context, dbConfig config.Database) *postgres.Connection {
	conn, err := postgres.NewConnection(ctx, dbConfig)
	if err != nil {
		logrus.WithError(err).Fatal("Erro ao conectar ao PostgreSQL")
	}

	if err := postgres.EnsureSchema(ctx, conn); err != nil {
		logrus.WithError(err).Fatal("Erro ao criar as tabelas no PostgreSQL")
	}

	logrus.Info("Conexão com PostgreSQL estabelecida com sucesso")
	return conn
}

// redisCache conecta ao Redis quando configurado. Sem endereço ou sem conexão, segue sem cache.
func redisCache(ctx context.Context, cfg config.Redis) cache.ReportCache {
	if cfg.Addr == "" {
		logrus.Info("REDIS_ADDR não definido, relatórios sem cache")
		return cache.NoopReportCache{}
	}

	rc := cache.NewRedisReportCache(cfg.Addr, cfg.Password, cfg.DB)
	if err := rc.Ping(ctx); err != nil {
		logrus.WithError(err).Warn("Redis indisponível, relatórios sem cache")
		_ = rc.Close()
		return cache.NoopReportCache{}
	}

	logrus.WithField("addr", cfg.Addr).Info("Cache de relatórios no Redis habilitado")
	return rc
}

func importFiles(cfg config.Import) map[domain.RecordKind]string {
	files := make(map[domain.RecordKind]string, len(domain.Kinds()))
	for _, kind := range domain.Kinds() {
		files[kind] = cfg.Path(kind)
	}
	return files
}
