package pipeline

import (
	"context"
	"os"
	"path/filepath"
	"strings"
	"testing"
	"time"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	repomocks "github.com/vfg2006/dataops-local/infrastructure/repository/mocks"
	"github.com/vfg2006/dataops-local/internal/domain"
	"github.com/vfg2006/dataops-local/internal/runlog"
	commissionmocks "github.com/vfg2006/dataops-local/internal/usecases/commissioning/mocks"
	"github.com/vfg2006/dataops-local/internal/usecases/importing"
	importmocks "github.com/vfg2006/dataops-local/internal/usecases/importing/mocks"
	"go.uber.org/mock/gomock"
)

var allFiles = map[domain.RecordKind]string{
	domain.KindProfessional: "profissionais.xlsx",
	domain.KindService:      "servicos.xlsx",
	domain.KindRevenue:      "receitas.xlsx",
	domain.KindExpense:      "despesas.xlsx",
}

func TestService_Run(t *testing.T) {
	summary := &domain.RunSummary{
		RevenueCount:        3,
		RevenueTotal:        decimal.NewFromInt(300),
		ExpenseCount:        1,
		ExpenseTotal:        decimal.NewFromInt(100),
		ActiveProfessionals: 2,
		ActiveServices:      4,
		Balance:             decimal.NewFromInt(200),
	}

	tests := []struct {
		name     string
		opts     Options
		setup    func(imp *importmocks.MockImporter, calc *commissionmocks.MockCalculator, rep *repomocks.MockReportRepository)
		wantErr  bool
		validate func(t *testing.T, result *Result)
	}{
		{
			name: "Importa na ordem profissionais, serviços, receitas, despesas e calcula comissões",
			opts: Options{Files: allFiles, ComputeCommissions: true},
			setup: func(imp *importmocks.MockImporter, calc *commissionmocks.MockCalculator, rep *repomocks.MockReportRepository) {
				gomock.InOrder(
					imp.EXPECT().Import(gomock.Any(), gomock.Any(), domain.KindProfessional, "profissionais.xlsx").Return(2, nil),
					imp.EXPECT().Import(gomock.Any(), gomock.Any(), domain.KindService, "servicos.xlsx").Return(4, nil),
					imp.EXPECT().Import(gomock.Any(), gomock.Any(), domain.KindRevenue, "receitas.xlsx").Return(3, nil),
					imp.EXPECT().Import(gomock.Any(), gomock.Any(), domain.KindExpense, "despesas.xlsx").Return(1, nil),
					calc.EXPECT().ComputeCommissions(gomock.Any(), gomock.Any(), gomock.Nil(), gomock.Nil()).Return(2, nil),
					rep.EXPECT().Summary(gomock.Any()).Return(summary, nil),
				)
			},
			validate: func(t *testing.T, result *Result) {
				assert.Equal(t, 2, result.Imported[domain.KindProfessional])
				assert.Equal(t, 3, result.Imported[domain.KindRevenue])
				assert.Equal(t, 2, result.Commissions)
				assert.Empty(t, result.Failures)
				assert.Equal(t, summary, result.Summary)
				assert.Equal(t, TriggerCLI, result.Trigger)
			},
		},
		{
			name: "Falha em um tipo não interrompe os demais",
			opts: Options{Files: allFiles},
			setup: func(imp *importmocks.MockImporter, calc *commissionmocks.MockCalculator, rep *repomocks.MockReportRepository) {
				imp.EXPECT().Import(gomock.Any(), gomock.Any(), domain.KindProfessional, gomock.Any()).Return(2, nil)
				imp.EXPECT().Import(gomock.Any(), gomock.Any(), domain.KindService, gomock.Any()).Return(0, importing.ErrFileNotFound)
				imp.EXPECT().Import(gomock.Any(), gomock.Any(), domain.KindRevenue, gomock.Any()).Return(0, importing.ErrValidation)
				imp.EXPECT().Import(gomock.Any(), gomock.Any(), domain.KindExpense, gomock.Any()).Return(5, nil)
				rep.EXPECT().Summary(gomock.Any()).Return(&domain.RunSummary{}, nil)
			},
			validate: func(t *testing.T, result *Result) {
				assert.Len(t, result.Failures, 2)
				assert.Contains(t, result.Failures, domain.KindService)
				assert.Contains(t, result.Failures, domain.KindRevenue)
				assert.Equal(t, 5, result.Imported[domain.KindExpense])
				assert.Equal(t, 0, result.Commissions)
			},
		},
		{
			name: "Tipo sem planilha configurada conta como zero",
			opts: Options{Files: map[domain.RecordKind]string{domain.KindRevenue: "receitas.xlsx"}},
			setup: func(imp *importmocks.MockImporter, calc *commissionmocks.MockCalculator, rep *repomocks.MockReportRepository) {
				imp.EXPECT().Import(gomock.Any(), gomock.Any(), domain.KindRevenue, "receitas.xlsx").Return(3, nil)
				rep.EXPECT().Summary(gomock.Any()).Return(&domain.RunSummary{}, nil)
			},
			validate: func(t *testing.T, result *Result) {
				assert.Equal(t, 0, result.Imported[domain.KindExpense])
				assert.Equal(t, 3, result.Imported[domain.KindRevenue])
			},
		},
		{
			name: "Erro no resumo é devolvido",
			opts: Options{},
			setup: func(imp *importmocks.MockImporter, calc *commissionmocks.MockCalculator, rep *repomocks.MockReportRepository) {
				rep.EXPECT().Summary(gomock.Any()).Return(nil, assert.AnError)
			},
			wantErr: true,
			validate: func(t *testing.T, result *Result) {
				assert.Nil(t, result.Summary)
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			ctrl := gomock.NewController(t)
			imp := importmocks.NewMockImporter(ctrl)
			calc := commissionmocks.NewMockCalculator(ctrl)
			rep := repomocks.NewMockReportRepository(ctrl)
			tt.setup(imp, calc, rep)

			svc := NewService(imp, calc, rep, tt.opts)
			result, err := svc.Run(context.Background(), TriggerCLI)

			if tt.wantErr {
				assert.Error(t, err)
			} else {
				assert.NoError(t, err)
			}
			require.NotNil(t, result)
			tt.validate(t, result)
		})
	}
}

func TestService_Run_AgendadoNaoCalculaComissoes(t *testing.T) {
	ctrl := gomock.NewController(t)
	imp := importmocks.NewMockImporter(ctrl)
	calc := commissionmocks.NewMockCalculator(ctrl)
	rep := repomocks.NewMockReportRepository(ctrl)

	imp.EXPECT().Import(gomock.Any(), gomock.Any(), gomock.Any(), gomock.Any()).Return(1, nil).Times(4)
	calc.EXPECT().ComputeCommissions(gomock.Any(), gomock.Any(), gomock.Any(), gomock.Any()).Times(0)
	rep.EXPECT().Summary(gomock.Any()).Return(&domain.RunSummary{}, nil)

	svc := NewService(imp, calc, rep, Options{Files: allFiles, ComputeCommissions: true})
	result, err := svc.Run(context.Background(), TriggerScheduler)

	require.NoError(t, err)
	assert.Equal(t, 0, result.Commissions)
	assert.Empty(t, result.CommissionError)
	assert.Equal(t, TriggerScheduler, result.Trigger)
}

func TestService_Run_Cancelado(t *testing.T) {
	ctrl := gomock.NewController(t)
	svc := NewService(
		importmocks.NewMockImporter(ctrl),
		commissionmocks.NewMockCalculator(ctrl),
		repomocks.NewMockReportRepository(ctrl),
		Options{Files: allFiles},
	)

	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	_, err := svc.Run(ctx, TriggerScheduler)
	assert.ErrorIs(t, err, context.Canceled)
}

func TestService_Run_GravaArquivoDeLog(t *testing.T) {
	ctrl := gomock.NewController(t)
	rep := repomocks.NewMockReportRepository(ctrl)
	rep.EXPECT().Summary(gomock.Any()).Return(&domain.RunSummary{RevenueCount: 7}, nil)

	logFile := filepath.Join(t.TempDir(), "logs", "log_importacao.txt")
	svc := NewService(importmocks.NewMockImporter(ctrl), commissionmocks.NewMockCalculator(ctrl), rep, Options{LogFile: logFile})

	result, err := svc.Run(context.Background(), TriggerAPI)
	require.NoError(t, err)

	content, err := os.ReadFile(logFile)
	require.NoError(t, err)

	text := string(content)
	assert.Contains(t, text, "NOVA IMPORTAÇÃO "+result.RunID)
	assert.Contains(t, text, "INFO: Receitas: 7 registro(s) | Total: R$ 0.00")
	assert.True(t, strings.Contains(text, "SUCCESS: Importação concluída"))
}

func TestService_ComputeCommissions_UsaLogProprio(t *testing.T) {
	ctrl := gomock.NewController(t)
	calc := commissionmocks.NewMockCalculator(ctrl)

	var used *runlog.Log
	calc.EXPECT().
		ComputeCommissions(gomock.Any(), gomock.Any(), gomock.Nil(), gomock.Nil()).
		DoAndReturn(func(_ context.Context, rl *runlog.Log, _, _ *time.Time) (int, error) {
			used = rl
			return 3, nil
		})

	svc := NewService(importmocks.NewMockImporter(ctrl), calc, repomocks.NewMockReportRepository(ctrl), Options{})
	n, err := svc.ComputeCommissions(context.Background(), nil, nil)

	require.NoError(t, err)
	assert.Equal(t, 3, n)
	require.NotNil(t, used)
	assert.NotEmpty(t, used.RunID())
}
