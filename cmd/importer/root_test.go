package main

import (
	"bytes"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/vfg2006/dataops-local/internal/config"
	"github.com/vfg2006/dataops-local/internal/usecases/authenticating"
	"golang.org/x/crypto/bcrypt"
)

func execute(t *testing.T, args ...string) (string, error) {
	t.Helper()

	cmd := newRootCmd()
	out := &bytes.Buffer{}
	cmd.SetOut(out)
	cmd.SetErr(&bytes.Buffer{})
	cmd.SetArgs(args)

	err := cmd.Execute()
	return out.String(), err
}

func TestHashPasswordCmd(t *testing.T) {
	out, err := execute(t, "hash-password", "senha-do-salao")
	require.NoError(t, err)

	hash := strings.TrimSpace(out)
	assert.NoError(t, bcrypt.CompareHashAndPassword([]byte(hash), []byte("senha-do-salao")))

	_, err = execute(t, "hash-password", "curta")
	assert.ErrorIs(t, err, authenticating.ErrWeakPassword)
}

func TestTokenCmd(t *testing.T) {
	t.Setenv("SECRET_KEY", "segredo-do-teste")

	out, err := execute(t, "token", "--user", "painel", "--role", "admin")
	require.NoError(t, err)

	cfg, err := config.NewConfig()
	require.NoError(t, err)

	claims, err := authenticating.NewService(cfg).ValidateToken(strings.TrimSpace(out))
	require.NoError(t, err)
	assert.Equal(t, "painel", claims.Username)
	assert.Equal(t, authenticating.RoleAdmin, claims.UserRoleID)

	_, err = execute(t, "token", "--role", "dono")
	assert.Error(t, err)
}

func TestTemplatesCmd(t *testing.T) {
	dir := t.TempDir()

	out, err := execute(t, "templates", dir)
	require.NoError(t, err)

	assert.Contains(t, out, filepath.Join(dir, "Template_Receitas.xlsx"))
	assert.Contains(t, out, filepath.Join(dir, "Template_Servicos.xlsx"))

	matches, err := filepath.Glob(filepath.Join(dir, "*.xlsx"))
	require.NoError(t, err)
	assert.Len(t, matches, 4)
}

func TestParseDateFlag(t *testing.T) {
	date, err := parseDateFlag("start", "")
	require.NoError(t, err)
	assert.Nil(t, date)

	date, err = parseDateFlag("start", "2024-02-29")
	require.NoError(t, err)
	assert.Equal(t, "2024-02-29", date.Format("2006-01-02"))

	_, err = parseDateFlag("end", "29/02/2024")
	assert.ErrorContains(t, err, "--end")
}

func TestImportCmd_TipoDesconhecido(t *testing.T) {
	_, err := execute(t, "import", "clientes")
	assert.ErrorContains(t, err, "tipo desconhecido")
}
