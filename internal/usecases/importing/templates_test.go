package importing

import (
	"context"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/vfg2006/dataops-local/internal/domain"
	"github.com/vfg2006/dataops-local/internal/runlog"
	"go.uber.org/mock/gomock"
)

func TestTemplateHeaders(t *testing.T) {
	assert.Equal(t,
		[]string{"Data", "Tipo_Servico", "Profissional", "Cliente", "Valor_Servico", "Forma_Pagamento", "Observacoes"},
		templateHeaders(SchemaFor(domain.KindRevenue)))
}

// Os modelos gerados precisam passar pela própria importação
func TestWriteTemplates_ImportaSemErros(t *testing.T) {
	dir := t.TempDir()
	files := map[domain.RecordKind]string{
		domain.KindRevenue:      "Template_Receitas.xlsx",
		domain.KindExpense:      "Template_Despesas.xlsx",
		domain.KindProfessional: "Template_Profissionais.xlsx",
		domain.KindService:      "Template_Servicos.xlsx",
	}

	paths, err := WriteTemplates(dir, files)
	require.NoError(t, err)
	assert.Equal(t, []string{
		filepath.Join(dir, "Template_Profissionais.xlsx"),
		filepath.Join(dir, "Template_Servicos.xlsx"),
		filepath.Join(dir, "Template_Receitas.xlsx"),
		filepath.Join(dir, "Template_Despesas.xlsx"),
	}, paths)

	svc, m := newTestService(t)
	m.professional.EXPECT().Replace(gomock.Any(), gomock.Len(3)).Return(3, nil)
	m.service.EXPECT().Replace(gomock.Any(), gomock.Len(5)).Return(5, nil)
	m.revenue.EXPECT().Append(gomock.Any(), gomock.Len(3)).Return(3, nil)
	m.expense.EXPECT().Append(gomock.Any(), gomock.Len(3)).Return(3, nil)

	rl := runlog.New("")
	for _, kind := range domain.Kinds() {
		_, err := svc.Import(context.Background(), rl, kind, filepath.Join(dir, files[kind]))
		require.NoError(t, err, "modelo de %s", kind)
	}

	assert.Empty(t, messages(rl, runlog.LevelError))
	assert.Empty(t, messages(rl, runlog.LevelWarning))
}

func TestWriteTemplates_IgnoraTipoSemArquivo(t *testing.T) {
	paths, err := WriteTemplates(t.TempDir(), map[domain.RecordKind]string{domain.KindService: "servicos.xlsx"})
	require.NoError(t, err)
	assert.Len(t, paths, 1)
}
