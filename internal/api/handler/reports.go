package handler

import (
	"errors"
	"net/http"
	"strconv"

	"github.com/sirupsen/logrus"
	"github.com/vfg2006/dataops-local/internal/usecases/reporting"
	"github.com/vfg2006/dataops-local/pkg/apiErrors"
	"github.com/vfg2006/dataops-local/pkg/log"
)

func GetSummary(service reporting.Reporter) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		summary, err := service.Summary(r.Context())
		if err != nil {
			log.ForContext(r.Context()).WithError(err).Error("Erro ao consultar resumo")
			apiErrors.WriteError(w, apiErrors.ErrDatabaseOperation, "Erro ao consultar resumo", nil)
			return
		}

		writeJSON(w, http.StatusOK, summary)
	}
}

// GetPeriodReport aceita start, end (AAAA-MM-DD) e limit na query
func GetPeriodReport(service reporting.Reporter) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		start, ok := dateParam(w, r, "start")
		if !ok {
			return
		}
		end, ok := dateParam(w, r, "end")
		if !ok {
			return
		}

		limit := 0
		if raw := r.URL.Query().Get("limit"); raw != "" {
			parsed, err := strconv.Atoi(raw)
			if err != nil || parsed < 0 {
				apiErrors.WriteError(w, apiErrors.ErrInvalidFormat, "Parâmetro 'limit' inválido", nil)
				return
			}
			limit = parsed
		}

		report, err := service.Period(r.Context(), start, end, limit)
		if err != nil {
			if errors.Is(err, reporting.ErrInvalidPeriod) {
				apiErrors.WriteError(w, apiErrors.ErrInvalidRequest, err.Error(), nil)
				return
			}
			log.ForContext(r.Context()).WithError(err).Error("Erro ao gerar relatório do período")
			apiErrors.WriteError(w, apiErrors.ErrDatabaseOperation, "Erro ao gerar relatório do período", nil)
			return
		}

		writeJSON(w, http.StatusOK, report)
	}
}

func GetDiagnostics(service reporting.Reporter) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		report, err := service.Diagnose(r.Context())
		if err != nil {
			logrus.WithError(err).Error("Erro ao executar diagnóstico")
			apiErrors.WriteError(w, apiErrors.ErrDatabaseOperation, "Erro ao executar diagnóstico", nil)
			return
		}

		writeJSON(w, http.StatusOK, report)
	}
}

func ListActiveProfessionals(service reporting.Reporter) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		professionals, err := service.ActiveProfessionals(r.Context())
		if err != nil {
			logrus.WithError(err).Error("Erro ao listar profissionais ativos")
			apiErrors.WriteError(w, apiErrors.ErrDatabaseOperation, "Erro ao listar profissionais ativos", nil)
			return
		}

		writeJSON(w, http.StatusOK, professionals)
	}
}

func ListActiveServices(service reporting.Reporter) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		services, err := service.ActiveServices(r.Context())
		if err != nil {
			logrus.WithError(err).Error("Erro ao listar serviços ativos")
			apiErrors.WriteError(w, apiErrors.ErrDatabaseOperation, "Erro ao listar serviços ativos", nil)
			return
		}

		writeJSON(w, http.StatusOK, services)
	}
}
