package main

import (
	"context"
	"os"
	"path"
	"runtime"
	"time"

	"github.com/sirupsen/logrus"
	"github.com/esteban-lambda/crm-api/infrastructure/database/postgres"
	"github.com/esteban-lambda/crm-api/infrastructure/repository"
	"github.com/esteban-lambda/crm-api/internal/api"
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
)

func main() {
	// Inicializa configuração de logs
	configureLogger()

	cfg, err := config.NewConfig()
	if err != nil {
		logrus.Fatal(err)
	}

	// Define o nível de log com base na configuração
	logLevel, err := logrus.ParseLevel(cfg.App.LogLevel)
	if err != nil {
		logrus.Warnf("Nível de log inválido: %s, usando 'info'", cfg.App.LogLevel)
		logLevel = logrus.InfoLevel
	}
	logrus.SetLevel(logLevel)
	logrus.Infof("Nível de log configurado para: %s", logLevel)

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	pgConn := pgconn(ctx, cfg.Database)
	defer pgConn.Close()

	userRepo := repository.NewUserRepository(pgConn)
	accountRepo := repository.NewAccountRepository(pgConn)
	contactRepo := repository.NewContactRepository(pgConn)
	productRepo := repository.NewProductRepository(pgConn)
	dealRepo := repository.NewDealRepository(pgConn)
	interactionRepo := repository.NewInteractionRepository(pgConn)
	taskRepo := repository.NewTaskRepository(pgConn)
	documentRepo := repository.NewDocumentRepository(pgConn)
	templateRepo := repository.NewEmailTemplateRepository(pgConn)
	notificationRepo := repository.NewNotificationRepository(pgConn)
	timelineRepo := repository.NewTimelineRepository(pgConn)
	reportRepo := repository.NewReportRepository(pgConn)

	authenticator := authenticating.NewService(userRepo, cfg)
	authorizationService := authorizing.NewService(userRepo, dealRepo)

	scoringService := scoring.NewService(dealRepo, accountRepo, contactRepo, interactionRepo)

	accountService := account.NewService(accountRepo, timelineRepo, authorizationService)
	contactService := contacting.NewService(contactRepo, accountRepo, authorizationService)
	catalogService := catalog.NewService(productRepo, authorizationService)
	dealService := dealing.NewService(dealRepo, productRepo, timelineRepo, notificationRepo, authorizationService, scoringService)
	interactionService := interacting.NewService(interactionRepo, dealRepo, timelineRepo, authorizationService, scoringService)
	taskService := tasking.NewService(taskRepo, notificationRepo, authorizationService)
	documentService := documenting.NewService(documentRepo, authorizationService)
	templateService := templating.NewService(templateRepo, contactRepo, accountRepo)
	notificationService := notifying.NewService(notificationRepo)
	timelineService := timeline.NewService(timelineRepo, dealRepo, accountRepo, authorizationService)
	reportService := reporting.NewService(reportRepo, dealRepo, accountRepo, contactRepo, taskRepo, timelineRepo, authorizationService)

	// Agendador do recálculo noturno de scores
	scoreRefreshService := scheduler.NewScoreRefreshService(scoringService, cfg)

	if err := scoreRefreshService.Start(ctx); err != nil {
		logrus.WithError(err).Error("Erro ao iniciar o agendador de recálculo de scores")
	} else {
		logrus.Info("Agendador de recálculo de scores iniciado com sucesso")
	}

	server, err := api.New(cfg, api.Services{
		Authenticator:       authenticator,
		Authorization:       authorizationService,
		Accounts:            accountService,
		Contacts:            contactService,
		Catalog:             catalogService,
		Deals:               dealService,
		Interactions:        interactionService,
		Tasks:               taskService,
		Documents:           documentService,
		Templates:           templateService,
		Notifications:       notificationService,
		Timeline:            timelineService,
		Reports:             reportService,
		Scoring:             scoringService,
		ScoreRefreshService: scoreRefreshService,
	})
	if err != nil {
		logrus.Fatal(err)
	}

	if err := server.Run(ctx); err != nil {
		logrus.Error(err)
	}
}

// configureLogger configura o formato e comportamento dos logs
func configureLogger() {
	_, file, _, _ := runtime.Caller(0)
	dir := path.Dir(file)
	os.Chdir(dir)

	logrus.SetFormatter(&logrus.TextFormatter{
		FullTimestamp:   true,
		TimestampFormat: time.RFC3339,
	})
}

// pgconn cria uma conexão com o banco de dados
func pgconn(ctx context.Context, dbConfig config.Database) *postgres.Connection {
	conn, err := postgres.NewConnection(ctx, dbConfig)
	if err != nil {
		logrus.WithError(err).Fatal("Erro ao conectar ao PostgreSQL")
	}

	err = conn.Ping(ctx)
	if err != nil {
		logrus.WithError(err).Fatal("Erro ao testar conexão com PostgreSQL")
	}

	logrus.Info("Conexão com PostgreSQL estabelecida com sucesso")
	return conn
}
