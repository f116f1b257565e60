package main

import (
	"context"

	"github.com/pkg/errors"
	"github.com/vfg2006/dataops-local/infrastructure/cache"
	"github.com/vfg2006/dataops-local/infrastructure/database/postgres"
	"github.com/vfg2006/dataops-local/infrastructure/repository"
	"github.com/vfg2006/dataops-local/infrastructure/spreadsheet"
	"github.com/vfg2006/dataops-local/internal/config"
	"github.com/vfg2006/dataops-local/internal/domain"
	"github.com/vfg2006/dataops-local/internal/usecases/commissioning"
	"github.com/vfg2006/dataops-local/internal/usecases/importing"
	"github.com/vfg2006/dataops-local/internal/usecases/pipeline"
	"github.com/vfg2006/dataops-local/internal/usecases/reporting"
)

// app reúne os serviços que dependem do banco
type app struct {
	conn     *postgres.Connection
	runner   *pipeline.Service
	reporter *reporting.Service
}

// openApp abre o banco e garante as tabelas. É a única falha que encerra o comando com erro.
func openApp(ctx context.Context, cfg *config.Config) (*app, error) {
	conn, err := postgres.NewConnection(ctx, cfg.Database)
	if err != nil {
		return nil, errors.Wrap(err, "erro ao conectar ao PostgreSQL")
	}

	if err := postgres.EnsureSchema(ctx, conn); err != nil {
		_ = conn.Close()
		return nil, errors.Wrap(err, "erro ao criar as tabelas")
	}

	revenueRepo := repository.NewRevenueRepository(conn)
	expenseRepo := repository.NewExpenseRepository(conn)
	professionalRepo := repository.NewProfessionalRepository(conn)
	serviceRepo := repository.NewServiceRepository(conn)
	commissionRepo := repository.NewCommissionRepository(conn)
	reportRepo := repository.NewReportRepository(conn)

	importer := importing.NewService(spreadsheet.NewExcelReader(), revenueRepo, expenseRepo, professionalRepo, serviceRepo)
	calculator := commissioning.NewService(revenueRepo, expenseRepo, commissionRepo)

	files := make(map[domain.RecordKind]string, len(domain.Kinds()))
	for _, kind := range domain.Kinds() {
		files[kind] = cfg.Import.Path(kind)
	}

	return &app{
		conn: conn,
		runner: pipeline.NewService(importer, calculator, reportRepo, pipeline.Options{
			Files:              files,
			LogFile:            cfg.Import.LogFile,
			ComputeCommissions: cfg.Import.ComputeCommissions,
		}),
		// a linha de comando sempre lê direto do banco
		reporter: reporting.NewService(reportRepo, professionalRepo, serviceRepo, cache.NoopReportCache{}, reporting.Options{
			TopLimit:    cfg.Report.TopLimit,
			DefaultDays: cfg.Report.DefaultDays,
		}),
	}, nil
}

func (a *app) Close() error {
	return a.conn.Close()
}
