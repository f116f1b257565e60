package handler

import (
	"net/http"

	"github.com/sirupsen/logrus"
	"github.com/vfg2006/dataops-local/internal/usecases/pipeline"
	"github.com/vfg2006/dataops-local/internal/usecases/reporting"
	"github.com/vfg2006/dataops-local/pkg/apiErrors"
)

// RunCommissions calcula as comissões do período informado em start e end.
// Sem datas, vale o mês corrente.
func RunCommissions(runner pipeline.Runner, reporter reporting.Reporter) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		logrus.Info("INIT - RunCommissions")

		start, ok := dateParam(w, r, "start")
		if !ok {
			return
		}
		end, ok := dateParam(w, r, "end")
		if !ok {
			return
		}
		if start != nil && end != nil && start.After(*end) {
			apiErrors.WriteError(w, apiErrors.ErrInvalidRequest, "Data inicial posterior à data final", nil)
			return
		}

		n, err := runner.ComputeCommissions(r.Context(), start, end)
		if err != nil {
			logrus.WithError(err).Error("Erro ao calcular comissões")
			apiErrors.WriteError(w, apiErrors.ErrCommissionFailed, err.Error(), nil)
			return
		}
		reporter.InvalidateCache(r.Context())

		writeJSON(w, http.StatusOK, map[string]int{
			"comissoes": n,
		})
	}
}
