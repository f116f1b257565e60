package handler

import (
	"net/http"
	"sort"

	"github.com/julienschmidt/httprouter"
	"github.com/sirupsen/logrus"
	"github.com/vfg2006/dataops-local/pkg/apiErrors"
)

// Tipos de tarefa agendada que podem ser disparados manualmente
const (
	CronJobTypePipeline    = "importacao"
	CronJobTypeCommissions = "comissoes"
	CronJobTypeAll         = "all"
)

// CronJob é uma tarefa agendada que também pode ser disparada pela API
type CronJob interface {
	TriggerManualSync() bool
	GetStatus() map[string]any
}

// CronJobServices associa cada tipo à sua tarefa
type CronJobServices map[string]CronJob

// RunCronJob dispara uma tarefa agendada em segundo plano
func RunCronJob(services CronJobServices) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		logrus.Info("INIT - RunCronJob")

		cronType := httprouter.ParamsFromContext(r.Context()).ByName("type")
		if cronType == "" {
			apiErrors.WriteError(w, apiErrors.ErrMissingRequiredData, "Tipo de tarefa não especificado", nil)
			return
		}

		var jobs []string
		if cronType == CronJobTypeAll {
			jobs = services.types()
		} else {
			if _, ok := services[cronType]; !ok {
				apiErrors.WriteError(w, apiErrors.ErrUnknownScheduledJob, "Tipo de tarefa inválido", services.types())
				return
			}
			jobs = []string{cronType}
		}

		started := make(map[string]bool, len(jobs))
		anyStarted := false
		for _, job := range jobs {
			started[job] = services[job].TriggerManualSync()
			anyStarted = anyStarted || started[job]
		}

		if !anyStarted {
			apiErrors.WriteError(w, apiErrors.ErrImportInProgress, "Tarefa já em andamento", started)
			return
		}

		writeJSON(w, http.StatusAccepted, map[string]any{
			"message": "Tarefa iniciada com sucesso",
			"type":    cronType,
			"started": started,
		})
	}
}

// GetCronStatus retorna o status das tarefas agendadas
func GetCronStatus(services CronJobServices) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		status := make(map[string]any, len(services))
		for name, job := range services {
			status[name] = job.GetStatus()
		}

		writeJSON(w, http.StatusOK, status)
	}
}

func (c CronJobServices) types() []string {
	types := make([]string, 0, len(c))
	for name := range c {
		types = append(types, name)
	}
	sort.Strings(types)
	return types
}
