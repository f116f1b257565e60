package handler

import (
	"errors"
	"io"
	"net/http"
	"os"
	"path/filepath"
	"strings"

	"github.com/julienschmidt/httprouter"
	"github.com/sirupsen/logrus"
	"github.com/vfg2006/dataops-local/internal/domain"
	"github.com/vfg2006/dataops-local/internal/usecases/importing"
	"github.com/vfg2006/dataops-local/internal/usecases/pipeline"
	"github.com/vfg2006/dataops-local/internal/usecases/reporting"
	"github.com/vfg2006/dataops-local/pkg/apiErrors"
)

const maxUploadSize = 32 << 20

// PathResolver devolve o caminho configurado da planilha de um tipo
type PathResolver func(kind domain.RecordKind) string

// RunImport executa o pipeline completo com as planilhas configuradas
func RunImport(runner pipeline.Runner, reporter reporting.Reporter) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		logrus.Info("INIT - RunImport")

		result, err := runner.Run(r.Context(), pipeline.TriggerAPI)
		reporter.InvalidateCache(r.Context())
		if err != nil {
			logrus.WithError(err).Error("Erro ao executar importação")
			apiErrors.WriteError(w, apiErrors.ErrInternalServer, "Erro ao executar importação", result)
			return
		}

		writeJSON(w, http.StatusOK, result)
	}
}

// ImportFile importa um único tipo. Aceita a planilha enviada no campo
// multipart "arquivo"; sem arquivo, usa o caminho configurado.
func ImportFile(runner pipeline.Runner, reporter reporting.Reporter, paths PathResolver) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		kindParam := httprouter.ParamsFromContext(r.Context()).ByName("kind")
		kind, ok := domain.ParseKind(kindParam)
		if !ok {
			apiErrors.WriteError(w, apiErrors.ErrUnknownRecordKind, "Tipo de planilha desconhecido: "+kindParam, domain.Kinds())
			return
		}

		path, cleanup, err := uploadedFile(r)
		if err != nil {
			apiErrors.WriteError(w, apiErrors.ErrInvalidRequest, err.Error(), nil)
			return
		}
		defer cleanup()
		if path == "" {
			path = paths(kind)
		}

		n, err := runner.ImportFile(r.Context(), kind, path)
		if err != nil {
			writeImportError(w, err)
			return
		}
		reporter.InvalidateCache(r.Context())

		writeJSON(w, http.StatusOK, map[string]any{
			"tipo":       kind,
			"importados": n,
		})
	}
}

var errInvalidExtension = errors.New("envie uma planilha .xlsx")

// uploadedFile grava o arquivo enviado em um temporário. Sem arquivo devolve caminho vazio.
func uploadedFile(r *http.Request) (string, func(), error) {
	noop := func() {}
	if !strings.HasPrefix(r.Header.Get("Content-Type"), "multipart/form-data") {
		return "", noop, nil
	}

	if err := r.ParseMultipartForm(maxUploadSize); err != nil {
		return "", noop, err
	}

	file, header, err := r.FormFile("arquivo")
	if errors.Is(err, http.ErrMissingFile) {
		return "", noop, nil
	}
	if err != nil {
		return "", noop, err
	}
	defer file.Close()

	ext := strings.ToLower(filepath.Ext(header.Filename))
	if ext != ".xlsx" && ext != ".xlsm" {
		return "", noop, errInvalidExtension
	}

	tmp, err := os.CreateTemp("", "dataops-upload-*"+ext)
	if err != nil {
		return "", noop, err
	}
	cleanup := func() { os.Remove(tmp.Name()) }

	if _, err := io.Copy(tmp, file); err != nil {
		tmp.Close()
		cleanup()
		return "", noop, err
	}
	if err := tmp.Close(); err != nil {
		cleanup()
		return "", noop, err
	}

	return tmp.Name(), cleanup, nil
}

func writeImportError(w http.ResponseWriter, err error) {
	var details any
	var importErr *importing.ImportError
	if errors.As(err, &importErr) && len(importErr.Issues) > 0 {
		details = importErr.Issues
	}

	switch {
	case errors.Is(err, importing.ErrFileNotFound):
		apiErrors.WriteError(w, apiErrors.ErrFileNotFound, err.Error(), details)
	case errors.Is(err, importing.ErrSheetOrColumnMissing):
		apiErrors.WriteError(w, apiErrors.ErrSheetOrColumn, err.Error(), details)
	case errors.Is(err, importing.ErrValidation):
		apiErrors.WriteError(w, apiErrors.ErrValidationFailed, err.Error(), details)
	case errors.Is(err, importing.ErrStoreWrite):
		apiErrors.WriteError(w, apiErrors.ErrDatabaseOperation, err.Error(), nil)
	default:
		logrus.WithError(err).Error("Erro inesperado na importação")
		apiErrors.WriteError(w, apiErrors.ErrInternalServer, "Erro ao importar planilha", nil)
	}
}
