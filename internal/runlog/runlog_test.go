package runlog

import (
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLog_Flush(t *testing.T) {
	path := filepath.Join(t.TempDir(), "logs", "log_importacao.txt")

	first := New(path)
	first.Info("Importando receitas de %s", "Template_Receitas.xlsx")
	first.Warning("%d linhas removidas por data inválida", 2)
	first.Success("%d receitas importadas", 10)
	require.NoError(t, first.Flush())

	second := New(path)
	second.Error("Arquivo não encontrado: %s", "x.xlsx")
	require.NoError(t, second.Flush())

	content, err := os.ReadFile(path)
	require.NoError(t, err)
	text := string(content)

	assert.Equal(t, 2, strings.Count(text, "NOVA IMPORTAÇÃO"), "cada execução acrescenta seu próprio cabeçalho")
	assert.Contains(t, text, "INFO: Importando receitas de Template_Receitas.xlsx")
	assert.Contains(t, text, "WARNING: 2 linhas removidas por data inválida")
	assert.Contains(t, text, "SUCCESS: 10 receitas importadas")
	assert.Contains(t, text, "ERROR: Arquivo não encontrado: x.xlsx")
	assert.Less(t, strings.Index(text, "SUCCESS"), strings.Index(text, "ERROR"), "execuções ficam na ordem em que foram gravadas")
}

func TestLog_FlushOnlyOnce(t *testing.T) {
	path := filepath.Join(t.TempDir(), "log.txt")

	l := New(path)
	l.Info("primeira")
	require.NoError(t, l.Flush())
	require.NoError(t, l.Flush())

	content, err := os.ReadFile(path)
	require.NoError(t, err)
	assert.Equal(t, 1, strings.Count(string(content), "primeira"))
}

func TestLog_WithoutFile(t *testing.T) {
	l := New("")
	l.Warning("aviso")
	l.Warning("outro aviso")
	l.Success("ok")

	assert.NoError(t, l.Flush())
	assert.Equal(t, 2, l.Count(LevelWarning))
	assert.Equal(t, 1, l.Count(LevelSuccess))
	assert.Len(t, l.Entries(), 3)
	assert.Len(t, l.RunID(), 6)
}
