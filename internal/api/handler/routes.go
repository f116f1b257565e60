package handler

import (
	"net/http"

	"github.com/prometheus/client_golang/prometheus/promhttp"
	"github.com/vfg2006/dataops-local/internal/api/handler/router"
	"github.com/vfg2006/dataops-local/internal/usecases/authenticating"
	"github.com/vfg2006/dataops-local/internal/usecases/pipeline"
	"github.com/vfg2006/dataops-local/internal/usecases/reporting"
	"github.com/vfg2006/dataops-local/pkg/middleware"
)

func Healthcheck() []router.Route {
	return []router.Route{
		{
			Path:    "/healthcheck",
			Method:  http.MethodGet,
			Handler: HealthcheckHandler(),
		},
		{
			Path:    "/metrics",
			Method:  http.MethodGet,
			Handler: promhttp.Handler(),
		},
	}
}

func Authentication(service authenticating.Authenticator) []router.Route {
	return []router.Route{
		{
			Path:    "/v1/login",
			Method:  http.MethodPost,
			Handler: Login(service),
		},
		{
			Path:        "/v1/me",
			Method:      http.MethodGet,
			Handler:     GetMe(),
			Middlewares: []router.Middleware{middleware.AllRoles()},
		},
	}
}

func Reports(service reporting.Reporter) []router.Route {
	return []router.Route{
		{
			Path:        "/v1/reports/summary",
			Method:      http.MethodGet,
			Handler:     GetSummary(service),
			Middlewares: []router.Middleware{middleware.AllRoles()},
		},
		{
			Path:        "/v1/reports/period",
			Method:      http.MethodGet,
			Handler:     GetPeriodReport(service),
			Middlewares: []router.Middleware{middleware.AllRoles()},
		},
		{
			Path:        "/v1/diagnostics",
			Method:      http.MethodGet,
			Handler:     GetDiagnostics(service),
			Middlewares: []router.Middleware{middleware.AllRoles()},
		},
		{
			Path:        "/v1/professionals/active",
			Method:      http.MethodGet,
			Handler:     ListActiveProfessionals(service),
			Middlewares: []router.Middleware{middleware.AllRoles()},
		},
		{
			Path:        "/v1/services/active",
			Method:      http.MethodGet,
			Handler:     ListActiveServices(service),
			Middlewares: []router.Middleware{middleware.AllRoles()},
		},
	}
}

func Imports(runner pipeline.Runner, reporter reporting.Reporter, paths PathResolver) []router.Route {
	return []router.Route{
		{
			Path:        "/v1/imports/run",
			Method:      http.MethodPost,
			Handler:     RunImport(runner, reporter),
			Middlewares: []router.Middleware{middleware.AdminOnly()},
		},
		{
			Path:        "/v1/imports/file/:kind",
			Method:      http.MethodPost,
			Handler:     ImportFile(runner, reporter, paths),
			Middlewares: []router.Middleware{middleware.AdminOnly()},
		},
		{
			Path:        "/v1/commissions/run",
			Method:      http.MethodPost,
			Handler:     RunCommissions(runner, reporter),
			Middlewares: []router.Middleware{middleware.AdminOnly()},
		},
	}
}

func CronJobs(services CronJobServices) []router.Route {
	return []router.Route{
		{
			Path:        "/v1/cron/:type/run",
			Method:      http.MethodPost,
			Handler:     RunCronJob(services),
			Middlewares: []router.Middleware{middleware.AdminOnly()},
		},
		{
			Path:        "/v1/cron/status",
			Method:      http.MethodGet,
			Handler:     GetCronStatus(services),
			Middlewares: []router.Middleware{middleware.AllRoles()},
		},
	}
}
