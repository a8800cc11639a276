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
	"github.com/sirupsen/logrus"
	"github.com/esteban-lambda/crm-api/internal/api/handler"
	"github.com/esteban-lambda/crm-api/internal/api/handler/router"
	"github.com/esteban-lambda/crm-api/internal/config"
	"github.com/esteban-lambda/crm-api/internal/scheduler"
	"github.com/esteban-lambda/crm-api/internal/usecases/account"
	"github.com/esteban-lambda/crm-api/internal/usecases/authenticating"
	"github.com/esteban-lambda/crm-api/internal/usecases/authorizing"
	"github.com/esteban-lambda/crm-api/internal/usecases/catalog"
	"github.com/esteban-lambda/crm-api/internal/usecases/contacting"
	"github.com/esteban-lambda/crm-api/internal/usecases/dealing"
	"github.com/esteban-lambda/crm-api/internal/usecases/documenting"
	"github.com/esteban-lambda/crm-api/internal/usecases/interacting"
	"github.com/esteban-lambda/crm-api/internal/usecases/notifying"
	"github.com/esteban-lambda/crm-api/internal/usecases/reporting"
	"github.com/esteban-lambda/crm-api/internal/usecases/scoring"
	"github.com/esteban-lambda/crm-api/internal/usecases/tasking"
	"github.com/esteban-lambda/crm-api/internal/usecases/templating"
	"github.com/esteban-lambda/crm-api/internal/usecases/timeline"
	"github.com/esteban-lambda/crm-api/pkg/middleware"
)

type Server struct {
	httpServer *http.Server
}

// Services agrupa os serviços de domínio injetados no servidor HTTP
type Services struct {
	Authenticator       authenticating.Authenticator
	Authorization       authorizing.AuthorizationService
	Accounts            account.AccountService
	Contacts            contacting.ContactService
	Catalog             catalog.CatalogService
	Deals               dealing.DealService
	Interactions        interacting.InteractionService
	Tasks               tasking.TaskService
	Documents           documenting.DocumentService
	Templates           templating.TemplateService
	Notifications       notifying.NotificationService
	Timeline            timeline.TimelineService
	Reports             reporting.ReportService
	Scoring             scoring.ScoringService
	ScoreRefreshService *scheduler.ScoreRefreshService
}

func New(config *config.Config, services Services) (*Server, error) {
	cronServices := handler.CronJobServices{
		ScoreRefreshService: services.ScoreRefreshService,
	}

	rt := router.New(
		router.WithRoutes(handler.Healthcheck()...),
		router.WithRoutes(handler.Authentication(services.Authenticator)...),
		router.WithRoutes(handler.User(services.Authenticator)...),
		router.WithRoutes(handler.Accounts(services.Accounts, services.Authorization)...),
		router.WithRoutes(handler.Contacts(services.Contacts, services.Authorization)...),
		router.WithRoutes(handler.Products(services.Catalog, services.Authorization)...),
		router.WithRoutes(handler.Deals(services.Deals, services.Scoring, services.Authorization)...),
		router.WithRoutes(handler.Interactions(services.Interactions, services.Authorization)...),
		router.WithRoutes(handler.Tasks(services.Tasks, services.Authorization)...),
		router.WithRoutes(handler.Documents(services.Documents, services.Authorization)...),
		router.WithRoutes(handler.EmailTemplates(services.Templates, services.Authorization)...),
		router.WithRoutes(handler.Notifications(services.Notifications)...),
		router.WithRoutes(handler.Timeline(services.Timeline, services.Authorization)...),
		router.WithRoutes(handler.Reports(services.Reports, services.Authorization)...),
		router.WithRoutes(handler.Exports(services.Accounts, services.Contacts, services.Deals, services.Authorization)...),
		router.WithRoutes(handler.CronJobs(cronServices)...),
	)

	middlewares := []alice.Constructor{
		middleware.LogPanicMiddleware(),
		middleware.LoggingMiddleware(),
		middleware.Cors(),
		middleware.AuthMiddleware(services.Authenticator),
	}

	chain := alice.New(middlewares...).Then(rt)

	srv := &Server{
		httpServer: &http.Server{
			Addr:              fmt.Sprintf("%s:%s", config.Server.Host, config.Server.Port),
			Handler:           chain,
			ReadHeaderTimeout: 2 * time.Second,
		},
	}

	return srv, nil
}

func (s Server) Run(ctx context.Context) error {
	go func() {
		logrus.WithFields(logrus.Fields{
			"address": s.httpServer.Addr,
		}).Info("Servidor iniciando")

		if err := s.httpServer.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			logrus.WithError(err).Error("Erro durante a execução do servidor")
		}
	}()

	// Canal para aguardar sinais de término
	done := make(chan os.Signal, 1)
	signal.Notify(done, os.Interrupt, syscall.SIGTERM)

	// Aguardar pelo sinal ou pelo cancelamento do contexto
	select {
	case <-done:
		logrus.Info("Sinal de interrupção recebido")
	case <-ctx.Done():
		logrus.Info("Contexto de aplicação cancelado")
	}

	// Define timeout para desligamento
	shutdownCtx, cancel := context.WithTimeout(context.Background(), 15*time.Second)
	defer cancel()

	logrus.WithFields(logrus.Fields{
		"timeout": "15s",
	}).Info("Iniciando desligamento gracioso do servidor")

	if err := s.Shutdown(shutdownCtx); err != nil {
		logrus.WithError(err).Error("Erro durante o desligamento do servidor")
		return err
	}

	logrus.Info("Servidor desligado com sucesso")
	return nil
}

func (s Server) Shutdown(ctx context.Context) error {
	logrus.Info("Executando operações de limpeza antes do desligamento")

	err := s.httpServer.Shutdown(ctx)
	if err != nil {
		return err
	}

	logrus.Info("Servidor HTTP desligado com sucesso")
	return nil
}
