package main

import (
	"context"
	"flag"
	"fmt"
	"os"
	"time"

	"github.com/sirupsen/logrus"
	"github.com/esteban-lambda/crm-api/infrastructure/database/postgres"
	"github.com/esteban-lambda/crm-api/infrastructure/repository"
	"github.com/esteban-lambda/crm-api/internal/config"
	"github.com/esteban-lambda/crm-api/internal/usecases/scoring"
)

// Recalcula o score de todos os deals uma única vez e imprime o resumo.
// Útil para rodar fora do agendador, em deploys ou backfills.
func main() {
	verbose := flag.Bool("verbose", false, "loga o score de cada deal recalculado")
	flag.Parse()

	logrus.SetFormatter(&logrus.TextFormatter{
		FullTimestamp:   true,
		TimestampFormat: time.RFC3339,
	})

	if *verbose {
		logrus.SetLevel(logrus.DebugLevel)
	}

	cfg, err := config.NewConfig()
	if err != nil {
		logrus.Fatal(err)
	}

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	conn, err := postgres.NewConnection(ctx, cfg.Database)
	if err != nil {
		logrus.WithError(err).Fatal("Erro ao conectar ao PostgreSQL")
	}
	defer conn.Close()

	if err := conn.Ping(ctx); err != nil {
		logrus.WithError(err).Fatal("Erro ao testar conexão com PostgreSQL")
	}

	dealRepo := repository.NewDealRepository(conn)
	accountRepo := repository.NewAccountRepository(conn)
	contactRepo := repository.NewContactRepository(conn)
	interactionRepo := repository.NewInteractionRepository(conn)

	scoringService := scoring.NewService(dealRepo, accountRepo, contactRepo, interactionRepo)

	report, err := scoringService.RecomputeAll()
	if err != nil {
		logrus.WithError(err).Error("Erro ao recalcular scores")
		os.Exit(1)
	}

	fmt.Printf("Recalculados %d deals (%d atualizados) em %s\n",
		report.TotalDeals,
		report.Updated,
		report.FinishedAt.Sub(report.StartedAt).Round(time.Millisecond),
	)
	fmt.Printf("Distribuição: hot=%d warm=%d cold=%d frozen=%d\n",
		report.After.Hot,
		report.After.Warm,
		report.After.Cold,
		report.After.Frozen,
	)

	for _, lead := range report.TopLeads {
		fmt.Printf("  top: %s (%s) score=%d\n", lead.Name, lead.AccountName, lead.Score)
	}
}
