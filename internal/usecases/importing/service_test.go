package importing

import (
	"context"
	"errors"
	"path/filepath"
	"strings"
	"testing"
	"time"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/vfg2006/dataops-local/infrastructure/repository/mocks"
	"github.com/vfg2006/dataops-local/infrastructure/spreadsheet"
	spreadsheetmocks "github.com/vfg2006/dataops-local/infrastructure/spreadsheet/mocks"
	"github.com/vfg2006/dataops-local/internal/domain"
	"github.com/vfg2006/dataops-local/internal/runlog"
	"go.uber.org/mock/gomock"
)

type serviceMocks struct {
	revenue      *mocks.MockRevenueRepository
	expense      *mocks.MockExpenseRepository
	professional *mocks.MockProfessionalRepository
	service      *mocks.MockServiceRepository
}

func newTestService(t *testing.T) (*Service, serviceMocks) {
	ctrl := gomock.NewController(t)
	m := serviceMocks{
		revenue:      mocks.NewMockRevenueRepository(ctrl),
		expense:      mocks.NewMockExpenseRepository(ctrl),
		professional: mocks.NewMockProfessionalRepository(ctrl),
		service:      mocks.NewMockServiceRepository(ctrl),
	}
	return NewService(spreadsheet.NewExcelReader(), m.revenue, m.expense, m.professional, m.service), m
}

func writeFixture(t *testing.T, name, sheet string, headers []string, rows [][]any) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), name)
	require.NoError(t, spreadsheet.WriteSheet(path, sheet, headers, rows))
	return path
}

func messages(rl *runlog.Log, level runlog.Level) []string {
	var out []string
	for _, e := range rl.Entries() {
		if e.Level == level {
			out = append(out, e.Message)
		}
	}
	return out
}

func TestService_ImportRevenues(t *testing.T) {
	revenueHeaders := []string{"Date", "Service Type", "Professional", "Client", "Amount", "Payment Method"}

	tests := []struct {
		name      string
		path      func(t *testing.T) string
		setup     func(m serviceMocks)
		wantCount int
		wantErr   error
		validate  func(t *testing.T, err error, rl *runlog.Log)
	}{
		{
			name: "Arquivo inexistente - retorna zero sem gravar",
			path: func(t *testing.T) string {
				return filepath.Join(t.TempDir(), "nao_existe.xlsx")
			},
			setup:   func(m serviceMocks) {},
			wantErr: ErrFileNotFound,
			validate: func(t *testing.T, err error, rl *runlog.Log) {
				assert.Equal(t, 1, rl.Count(runlog.LevelError))
			},
		},
		{
			name: "Aba de receitas ausente",
			path: func(t *testing.T) string {
				return writeFixture(t, "receitas.xlsx", "Planilha1", revenueHeaders, [][]any{
					{"01/02/2025", "Corte", "Ana", "Maria", 50.0, "Pix"},
				})
			},
			setup:   func(m serviceMocks) {},
			wantErr: ErrSheetOrColumnMissing,
		},
		{
			name: "Coluna de valor ausente - lote rejeitado",
			path: func(t *testing.T) string {
				return writeFixture(t, "receitas.xlsx", "Receitas",
					[]string{"Date", "Service Type", "Professional"},
					[][]any{{"01/02/2025", "Corte", "Ana"}})
			},
			setup:   func(m serviceMocks) {},
			wantErr: ErrSheetOrColumnMissing,
			validate: func(t *testing.T, err error, rl *runlog.Log) {
				var importErr *ImportError
				require.True(t, errors.As(err, &importErr))
				assert.Contains(t, importErr.Issues, "Coluna obrigatória ausente: valor_servico")
				assert.Equal(t, domain.KindRevenue, importErr.Kind)
			},
		},
		{
			name: "Um único valor zero rejeita o lote inteiro",
			path: func(t *testing.T) string {
				return writeFixture(t, "receitas.xlsx", "Receitas", revenueHeaders, [][]any{
					{"01/02/2025", "Corte", "Ana", "Maria", 50.0, "Pix"},
					{"02/02/2025", "Barba", "Bruno", "João", 0.0, "Dinheiro"},
					{"03/02/2025", "Escova", "Ana", "Carla", 80.0, "Cartão"},
				})
			},
			setup:   func(m serviceMocks) {},
			wantErr: ErrValidation,
			validate: func(t *testing.T, err error, rl *runlog.Log) {
				var importErr *ImportError
				require.True(t, errors.As(err, &importErr))
				assert.Equal(t, []string{"Coluna valor_servico possui 1 valor(es) menor(es) ou igual(is) a zero"}, importErr.Issues)

				errs := messages(rl, runlog.LevelError)
				assert.Contains(t, errs, "  - Coluna valor_servico possui 1 valor(es) menor(es) ou igual(is) a zero")
			},
		},
		{
			name: "Linha com data inválida é descartada com aviso",
			path: func(t *testing.T) string {
				return writeFixture(t, "receitas.xlsx", "Receitas", revenueHeaders, [][]any{
					{"01/02/2025", "Corte", "Ana", "Maria", 50.0, "Pix"},
					{"not-a-date", "Barba", "Bruno", "João", 30.0, "Dinheiro"},
					{"2025-02-03", "Escova", "Ana", "Carla", "R$ 80,50", "Cartão"},
				})
			},
			setup: func(m serviceMocks) {
				m.revenue.EXPECT().
					Append(gomock.Any(), gomock.Len(2)).
					DoAndReturn(func(_ context.Context, revenues []*domain.Revenue) (int, error) {
						return len(revenues), nil
					})
			},
			wantCount: 2,
			validate: func(t *testing.T, err error, rl *runlog.Log) {
				warnings := messages(rl, runlog.LevelWarning)
				require.Len(t, warnings, 1)
				assert.True(t, strings.HasPrefix(warnings[0], "1 linha(s) de receitas removida(s)"))
				assert.Equal(t, 1, rl.Count(runlog.LevelSuccess))
			},
		},
		{
			name: "Falha no banco vira erro de gravação",
			path: func(t *testing.T) string {
				return writeFixture(t, "receitas.xlsx", "Receitas", revenueHeaders, [][]any{
					{"01/02/2025", "Corte", "Ana", "Maria", 50.0, "Pix"},
				})
			},
			setup: func(m serviceMocks) {
				m.revenue.EXPECT().
					Append(gomock.Any(), gomock.Any()).
					Return(0, errors.New("conexão recusada"))
			},
			wantErr: ErrStoreWrite,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			svc, m := newTestService(t)
			tt.setup(m)
			rl := runlog.New("")

			n, err := svc.ImportRevenues(context.Background(), rl, tt.path(t))

			assert.Equal(t, tt.wantCount, n)
			if tt.wantErr != nil {
				assert.ErrorIs(t, err, tt.wantErr)
			} else {
				assert.NoError(t, err)
			}
			if tt.validate != nil {
				tt.validate(t, err, rl)
			}
		})
	}
}

func TestService_ImportRevenues_MapeiaCampos(t *testing.T) {
	svc, m := newTestService(t)
	path := writeFixture(t, "receitas.xlsx", "Receitas",
		[]string{"data", "tipo servico", "PROFISSIONAL", "cliente", "valor servico", "forma pagamento", "observacoes"},
		[][]any{{"01/02/2025", "Corte", "Ana", "Maria", "1.234,56", "Pix", "retorno"}})

	var saved []*domain.Revenue
	m.revenue.EXPECT().
		Append(gomock.Any(), gomock.Any()).
		DoAndReturn(func(_ context.Context, revenues []*domain.Revenue) (int, error) {
			saved = revenues
			return len(revenues), nil
		})

	n, err := svc.ImportRevenues(context.Background(), runlog.New(""), path)
	require.NoError(t, err)
	require.Equal(t, 1, n)
	require.Len(t, saved, 1)

	got := saved[0]
	assert.Equal(t, time.Date(2025, 2, 1, 0, 0, 0, 0, time.UTC), got.OccurredOn)
	assert.Equal(t, "Corte", got.ServiceType)
	assert.Equal(t, "Ana", got.Professional)
	assert.Equal(t, "Maria", got.Client)
	assert.True(t, decimal.RequireFromString("1234.56").Equal(got.Amount))
	assert.Equal(t, "Pix", got.PaymentMethod)
	assert.Equal(t, "retorno", got.Notes)
}

func TestService_ImportExpenses_SempreManual(t *testing.T) {
	svc, m := newTestService(t)
	path := writeFixture(t, "despesas.xlsx", "Despesas",
		[]string{"Data", "Categoria", "Descricao", "Valor", "Tipo Despesa"},
		[][]any{
			{"05/02/2025", "Aluguel", "Aluguel fevereiro", 2000.0, "Comissão Calculada"},
			{"06/02/2025", "Produtos", "Shampoo", 150.0, ""},
		})

	m.expense.EXPECT().
		Append(gomock.Any(), gomock.Any()).
		DoAndReturn(func(_ context.Context, expenses []*domain.Expense) (int, error) {
			for _, e := range expenses {
				assert.Equal(t, domain.ExpenseManual, e.Kind)
			}
			return len(expenses), nil
		})

	n, err := svc.ImportExpenses(context.Background(), runlog.New(""), path)
	require.NoError(t, err)
	assert.Equal(t, 2, n)
}

func TestService_ImportProfessionals_SubstituiCadastro(t *testing.T) {
	svc, m := newTestService(t)
	headers := []string{"Name", "Role", "Contract Type", "Commission Percent", "Fixed Salary", "Status", "Hired On"}

	first := writeFixture(t, "profissionais_1.xlsx", "Profissionais", headers, [][]any{
		{"Ana", "Cabeleireira", "Percentual", 50.0, 0.0, "Ativo", "10/01/2023"},
		{"Bruno", "Barbeiro", "Fixo", 0.0, 2500.0, "Ativo", "2023-03-01"},
		{"Carla", "Manicure", "Percentual", 40.0, "", "Inativo", "01.06.2024"},
	})
	second := writeFixture(t, "profissionais_2.xlsx", "Profissionais", headers, [][]any{
		{"Ana", "Cabeleireira", "Percentual", 55.0, 0.0, "Ativo", "10/01/2023"},
		{"Bruno", "Barbeiro", "Fixo", 0.0, 2600.0, "Ativo", "2023-03-01"},
	})

	// tabela em memória com semântica de substituição
	var stored []*domain.Professional
	m.professional.EXPECT().
		Replace(gomock.Any(), gomock.Any()).
		DoAndReturn(func(_ context.Context, professionals []*domain.Professional) (int, error) {
			stored = professionals
			return len(professionals), nil
		}).
		Times(2)

	n, err := svc.ImportProfessionals(context.Background(), runlog.New(""), first)
	require.NoError(t, err)
	assert.Equal(t, 3, n)

	n, err = svc.ImportProfessionals(context.Background(), runlog.New(""), second)
	require.NoError(t, err)
	assert.Equal(t, 2, n)

	require.Len(t, stored, 2)
	assert.Equal(t, "Ana", stored[0].Name)
	assert.True(t, decimal.NewFromInt(55).Equal(stored[0].CommissionPercent))
	assert.Equal(t, domain.ContractFixed, stored[1].ContractType)
	assert.True(t, decimal.NewFromInt(2600).Equal(stored[1].FixedSalary))
	require.NotNil(t, stored[1].HiredOn)
	assert.Equal(t, time.Date(2023, 3, 1, 0, 0, 0, 0, time.UTC), *stored[1].HiredOn)
}

func TestService_ImportProfessionals_Invalidos(t *testing.T) {
	svc, _ := newTestService(t)
	path := writeFixture(t, "profissionais.xlsx", "Profissionais",
		[]string{"Nome Profissional", "Tipo Contrato", "Percentual Comissao", "Status", "Data Admissao"},
		[][]any{
			{"Ana", "Comissionado", 50.0, "Ativo", "10/01/2023"},
			{"ana", "Percentual", 150.0, "Ativo", "10/01/2023"},
		})

	n, err := svc.ImportProfessionals(context.Background(), runlog.New(""), path)
	assert.Equal(t, 0, n)
	require.ErrorIs(t, err, ErrValidation)

	var importErr *ImportError
	require.True(t, errors.As(err, &importErr))
	assert.Equal(t, []string{
		"Profissional duplicado: ana",
		`Registro 1: tipo de contrato inválido "Comissionado" (use Percentual ou Fixo)`,
		"Registro 2: percentual de comissão deve estar entre 0 e 100",
	}, importErr.Issues)
}

func TestService_ImportServices(t *testing.T) {
	svc, m := newTestService(t)
	path := writeFixture(t, "servicos.xlsx", "Servicos",
		[]string{"Nome Servico", "Preco Base", "Tempo Medio Minutos", "Categoria", "Status"},
		[][]any{
			{"Corte", 50.0, 45.0, "Cabelo", "Ativo"},
			{"Hidratação", 90.0, "", "Tratamento", "Inativo"},
		})

	m.service.EXPECT().
		Replace(gomock.Any(), gomock.Any()).
		DoAndReturn(func(_ context.Context, services []*domain.Service) (int, error) {
			require.Len(t, services, 2)
			require.NotNil(t, services[0].AverageMinutes)
			assert.Equal(t, 45, *services[0].AverageMinutes)
			assert.Nil(t, services[1].AverageMinutes)
			assert.Equal(t, domain.StatusInactive, services[1].Status)
			return len(services), nil
		})

	n, err := svc.ImportServices(context.Background(), runlog.New(""), path)
	require.NoError(t, err)
	assert.Equal(t, 2, n)
}

func TestService_ImportServices_CabecalhosEmIngles(t *testing.T) {
	svc, m := newTestService(t)
	path := writeFixture(t, "servicos.xlsx", "Servicos",
		[]string{"Name", "Base Price", "Average Minutes", "Category", "Status"},
		[][]any{
			{"Corte", 50.0, 45.0, "Cabelo", "Ativo"},
			{"Coloração", "R$ 1.250", 120.0, "Cabelo", "Inactive"},
		})

	m.service.EXPECT().
		Replace(gomock.Any(), gomock.Any()).
		DoAndReturn(func(_ context.Context, services []*domain.Service) (int, error) {
			require.Len(t, services, 2)
			assert.Equal(t, "Corte", services[0].Name)
			require.NotNil(t, services[0].AverageMinutes)
			assert.Equal(t, 45, *services[0].AverageMinutes)
			assert.Equal(t, "Cabelo", services[0].Category)

			assert.True(t, decimal.NewFromInt(1250).Equal(services[1].BasePrice), "preço %s", services[1].BasePrice)
			require.NotNil(t, services[1].AverageMinutes)
			assert.Equal(t, 120, *services[1].AverageMinutes)
			assert.Equal(t, domain.StatusInactive, services[1].Status)
			return len(services), nil
		})

	n, err := svc.ImportServices(context.Background(), runlog.New(""), path)
	require.NoError(t, err)
	assert.Equal(t, 2, n)
}

func TestService_ImportProfessionals_ValoresEmIngles(t *testing.T) {
	svc, m := newTestService(t)
	path := writeFixture(t, "profissionais.xlsx", "Profissionais",
		[]string{"Name", "Contract Type", "Commission Percent", "Fixed Salary", "Status", "Hired On"},
		[][]any{
			{"Ana", "Percentage", 50.0, 0.0, "Active", "2023-01-10"},
			{"Bruno", " fixed ", 0.0, "2.500", "INACTIVE", "2023-03-01"},
		})

	m.professional.EXPECT().
		Replace(gomock.Any(), gomock.Any()).
		DoAndReturn(func(_ context.Context, professionals []*domain.Professional) (int, error) {
			require.Len(t, professionals, 2)
			assert.Equal(t, domain.ContractPercentage, professionals[0].ContractType)
			assert.Equal(t, domain.StatusActive, professionals[0].Status)
			assert.Equal(t, domain.ContractFixed, professionals[1].ContractType)
			assert.Equal(t, domain.StatusInactive, professionals[1].Status)
			assert.True(t, decimal.NewFromInt(2500).Equal(professionals[1].FixedSalary), "salário %s", professionals[1].FixedSalary)
			return len(professionals), nil
		})

	n, err := svc.ImportProfessionals(context.Background(), runlog.New(""), path)
	require.NoError(t, err)
	assert.Equal(t, 2, n)
}

func TestService_Import_ErroDeLeitura(t *testing.T) {
	ctrl := gomock.NewController(t)
	reader := spreadsheetmocks.NewMockReader(ctrl)
	svc := NewService(reader, nil, nil, nil, nil)

	path := writeFixture(t, "servicos.xlsx", "Servicos", []string{"Nome"}, nil)
	reader.EXPECT().
		ReadSheet(path, "Servicos").
		Return(nil, errors.New("arquivo corrompido"))

	rl := runlog.New("")
	n, err := svc.Import(context.Background(), rl, domain.KindService, path)
	assert.Equal(t, 0, n)
	assert.ErrorIs(t, err, ErrValidation)
	assert.Equal(t, 1, rl.Count(runlog.LevelError))
}
