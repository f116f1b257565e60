package api

import (
	"context"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/justinas/alice"
	"github.com/pkg/errors"
	"github.com/sirupsen/logrus"
	"github.com/vfg2006/dataops-local/internal/api/handler"
	"github.com/vfg2006/dataops-local/internal/api/handler/router"
	"github.com/vfg2006/dataops-local/internal/config"
	"github.com/vfg2006/dataops-local/internal/usecases/authenticating"
	"github.com/vfg2006/dataops-local/internal/usecases/pipeline"
	"github.com/vfg2006/dataops-local/internal/usecases/reporting"
	"github.com/vfg2006/dataops-local/pkg/middleware"
)

const (
	shutdownTimeout = 15 * time.Second

	// importações síncronas com planilha enviada podem levar alguns minutos
	uploadTimeout = 5 * time.Minute
)

type Server struct {
	httpServer *http.Server
}

// Services reúne as dependências expostas pela API
type Services struct {
	Runner        pipeline.Runner
	Reporter      reporting.Reporter
	Authenticator authenticating.Authenticator
	CronJobs      handler.CronJobServices
}

func New(cfg *config.Config, services Services) (*Server, error) {
	return &Server{
		httpServer: &http.Server{
			Addr:              fmt.Sprintf("%s:%s", cfg.Server.Host, cfg.Server.Port),
			Handler:           NewHandler(cfg, services),
			ReadHeaderTimeout: 2 * time.Second,
			ReadTimeout:       uploadTimeout,
			WriteTimeout:      uploadTimeout,
		},
	}, nil
}

// NewHandler monta o roteador com a cadeia de middlewares
func NewHandler(cfg *config.Config, services Services) http.Handler {
	rt := router.New(
		router.WithRoutes(handler.Healthcheck()...),
		router.WithRoutes(handler.Authentication(services.Authenticator)...),
		router.WithRoutes(handler.Reports(services.Reporter)...),
		router.WithRoutes(handler.Imports(services.Runner, services.Reporter, cfg.Import.Path)...),
		router.WithRoutes(handler.CronJobs(services.CronJobs)...),
	)
	logrus.WithField("rotas", rt.Routes()).Debug("Rotas registradas")

	middlewares := []alice.Constructor{
		middleware.LogPanicMiddleware(),
		middleware.LoggingMiddleware(),
		middleware.Cors(),
		middleware.AuthMiddleware(services.Authenticator),
	}

	return alice.New(middlewares...).Then(rt)
}

// Run atende até receber SIGINT/SIGTERM ou ter o contexto cancelado e então
// desliga aguardando as requisições em andamento. Falha ao abrir a porta é devolvida.
func (s Server) Run(ctx context.Context) error {
	ctx, stop := signal.NotifyContext(ctx, os.Interrupt, syscall.SIGTERM)
	defer stop()

	listenErr := make(chan error, 1)
	go func() {
		logrus.WithField("address", s.httpServer.Addr).Info("Servidor iniciando")
		if err := s.httpServer.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			listenErr <- err
		}
		close(listenErr)
	}()

	select {
	case err, ok := <-listenErr:
		if ok {
			return errors.Wrap(err, "erro ao iniciar servidor HTTP")
		}
		return nil
	case <-ctx.Done():
		logrus.Info("Sinal de parada recebido")
	}

	shutdownCtx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
	defer cancel()

	logrus.WithField("timeout", shutdownTimeout.String()).Info("Iniciando desligamento do servidor")
	return s.Shutdown(shutdownCtx)
}

func (s Server) Shutdown(ctx context.Context) error {
	if err := s.httpServer.Shutdown(ctx); err != nil {
		return errors.Wrap(err, "erro ao desligar servidor HTTP")
	}

	logrus.Info("Servidor HTTP desligado")
	return nil
}
