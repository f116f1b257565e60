package log

import (
	"bytes"
	"context"
	"testing"

	jsoniter "github.com/json-iterator/go"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCorrelationID(t *testing.T) {
	ctx, id := WithCorrelationID(context.Background())

	assert.NotEmpty(t, id)
	assert.Equal(t, id, GetCorrelationID(ctx))
	assert.Empty(t, GetCorrelationID(context.Background()))
}

func TestSetupOutput(t *testing.T) {
	tests := []struct {
		name     string
		env      string
		validate func(t *testing.T, out string)
	}{
		{
			name: "Produção grava JSON com todos os campos",
			env:  "production",
			validate: func(t *testing.T, out string) {
				var line map[string]any
				require.NoError(t, jsoniter.Unmarshal([]byte(out), &line))
				assert.Equal(t, "importação concluída", line["msg"])
				assert.Equal(t, "abc123", line[FieldRunID])
				assert.Equal(t, "x", line["extra"])
			},
		},
		{
			name: "Desenvolvimento descarta campos desconhecidos",
			env:  "development",
			validate: func(t *testing.T, out string) {
				assert.Contains(t, out, "run_id=abc123")
				assert.NotContains(t, out, "extra")
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Setenv("APP_ENV", tt.env)

			var buf bytes.Buffer
			SetupOutput("debug", &buf)

			L.WithFields(Fields{FieldRunID: "abc123", "extra": "x"}).Info("importação concluída")
			tt.validate(t, buf.String())
		})
	}
}

func TestSetupOutput_NivelInvalido(t *testing.T) {
	t.Setenv("APP_ENV", "production")

	var buf bytes.Buffer
	SetupOutput("barulhento", &buf)

	L.Debugf("não aparece")
	L.Info("aparece")

	out := buf.String()
	assert.Contains(t, out, "Nível de log inválido")
	assert.NotContains(t, out, "não aparece")
	assert.Contains(t, out, "aparece")
}
