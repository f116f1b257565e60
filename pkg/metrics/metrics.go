// Package metrics expõe os contadores Prometheus da importação e do cálculo de comissões
package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

var (
	ImportedRows = promauto.NewCounterVec(prometheus.CounterOpts{
		Namespace: "dataops",
		Name:      "imported_rows_total",
		Help:      "Linhas gravadas pela importação de planilhas, por tipo de registro.",
	}, []string{"kind"})

	DroppedRows = promauto.NewCounterVec(prometheus.CounterOpts{
		Namespace: "dataops",
		Name:      "dropped_rows_total",
		Help:      "Linhas descartadas por data vazia ou inválida, por tipo de registro.",
	}, []string{"kind"})

	ImportFailures = promauto.NewCounterVec(prometheus.CounterOpts{
		Namespace: "dataops",
		Name:      "import_failures_total",
		Help:      "Planilhas não importadas, por tipo de registro e motivo.",
	}, []string{"kind", "reason"})

	CommissionsEmitted = promauto.NewCounter(prometheus.CounterOpts{
		Namespace: "dataops",
		Name:      "commission_expenses_total",
		Help:      "Despesas de folha geradas pelo cálculo de comissões.",
	})

	PipelineRuns = promauto.NewCounterVec(prometheus.CounterOpts{
		Namespace: "dataops",
		Name:      "pipeline_runs_total",
		Help:      "Execuções do pipeline por origem (cli, api, agendador).",
	}, []string{"trigger"})

	PipelineDuration = promauto.NewHistogram(prometheus.HistogramOpts{
		Namespace: "dataops",
		Name:      "pipeline_duration_seconds",
		Help:      "Duração das execuções do pipeline.",
		Buckets:   prometheus.DefBuckets,
	})

	HTTPRequests = promauto.NewCounterVec(prometheus.CounterOpts{
		Namespace: "dataops",
		Name:      "http_requests_total",
		Help:      "Requisições atendidas pela API, por método e status.",
	}, []string{"method", "status"})

	HTTPDuration = promauto.NewHistogramVec(prometheus.HistogramOpts{
		Namespace: "dataops",
		Name:      "http_request_duration_seconds",
		Help:      "Duração das requisições da API, por método.",
		Buckets:   prometheus.DefBuckets,
	}, []string{"method"})
)
