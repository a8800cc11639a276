// Package scheduler contém os serviços de agendamento de rotinas de manutenção
package scheduler

import (
	"context"
	"fmt"
	"sync"
	"time"

	"github.com/go-co-op/gocron"
	"github.com/sirupsen/logrus"

	"github.com/esteban-lambda/crm-api/internal/config"
	"github.com/esteban-lambda/crm-api/internal/domain"
	"github.com/esteban-lambda/crm-api/internal/usecases/scoring"
)

type ScoreRefreshConfig struct {
	CronSchedule string
	Enabled      bool
}

// ScoreRefreshService agenda a varredura noturna de recálculo de lead
// scores. A varredura é idempotente, então rodar de novo nunca faz mal.
type ScoreRefreshService struct {
	scheduler           *gocron.Scheduler
	scoringService      scoring.ScoringService
	config              ScoreRefreshConfig
	syncRunning         bool
	syncMutex           sync.Mutex
	lastSyncStartedAt   time.Time
	lastSyncCompletedAt time.Time
	lastReport          *domain.RecomputeReport
}

func NewScoreRefreshService(
	scoringService scoring.ScoringService,
	cfg *config.Config,
) *ScoreRefreshService {
	refreshConfig := ScoreRefreshConfig{
		CronSchedule: cfg.ScoreRefresh.CronSchedule, // Default: 2h da manhã todos os dias
		Enabled:      cfg.ScoreRefresh.Enabled,      // Default: desabilitado
	}

	scheduler := gocron.NewScheduler(time.Local)

	logrus.WithFields(logrus.Fields{
		"cron_schedule": refreshConfig.CronSchedule,
	}).Info("Configuração do agendador de recálculo de scores carregada")

	return &ScoreRefreshService{
		scheduler:      scheduler,
		scoringService: scoringService,
		config:         refreshConfig,
	}
}

func (s *ScoreRefreshService) Start(ctx context.Context) error {
	if !s.config.Enabled {
		logrus.Info("Cron de recálculo de scores desabilitada por configuração")
		return nil
	}

	logrus.WithField("cron", s.config.CronSchedule).Info("Iniciando cron de recálculo de scores")

	_, err := s.scheduler.Cron(s.config.CronSchedule).Do(func() {
		if err := s.RefreshScores(); err != nil {
			logrus.WithError(err).Error("Erro no recálculo agendado de scores")
		}
	})
	if err != nil {
		return fmt.Errorf("erro ao agendar recálculo de scores: %w", err)
	}

	// Executar o cron em uma goroutine separada
	s.scheduler.StartAsync()

	// Configurar o cancelamento do cron quando o contexto for cancelado
	go func() {
		<-ctx.Done()
		logrus.Info("Parando cron de recálculo de scores")
		s.scheduler.Stop()
	}()

	return nil
}

func (s *ScoreRefreshService) RefreshScores() error {
	// O lock protege só a troca da flag; a varredura em si roda sem ele
	// para não bloquear o disparo manual nem a consulta de status
	s.syncMutex.Lock()
	if s.syncRunning {
		s.syncMutex.Unlock()
		logrus.Warn("Recálculo de scores já está em execução")
		return nil
	}
	s.syncRunning = true
	s.lastSyncStartedAt = time.Now()
	s.syncMutex.Unlock()

	defer func() {
		s.syncMutex.Lock()
		s.syncRunning = false
		s.lastSyncCompletedAt = time.Now()
		s.syncMutex.Unlock()
	}()

	logrus.Info("Iniciando recálculo completo de scores")

	report, err := s.scoringService.RecomputeAll()
	if err != nil {
		logrus.WithError(err).Error("Erro ao executar recálculo completo de scores")
		return err
	}

	s.syncMutex.Lock()
	s.lastReport = report
	s.syncMutex.Unlock()

	logrus.WithFields(logrus.Fields{
		"total":   report.TotalDeals,
		"updated": report.Updated,
		"hot":     report.After.Hot,
		"warm":    report.After.Warm,
		"cold":    report.After.Cold,
		"frozen":  report.After.Frozen,
	}).Info("Recálculo completo de scores concluído")

	return nil
}

// TriggerManualSync inicia manualmente um recálculo completo
func (s *ScoreRefreshService) TriggerManualSync() {
	s.syncMutex.Lock()
	if s.syncRunning {
		s.syncMutex.Unlock()
		logrus.Info("Recálculo de scores já em andamento, ignorando solicitação manual")
		return
	}
	s.syncMutex.Unlock()

	logrus.Info("Iniciando recálculo manual de scores")
	go s.RefreshScores()
}

// GetStatus retorna o status atual do agendador
func (s *ScoreRefreshService) GetStatus() map[string]any {
	s.syncMutex.Lock()
	defer s.syncMutex.Unlock()

	status := map[string]any{
		"enabled":                s.config.Enabled,
		"cron":                   s.config.CronSchedule,
		"last_sync_started_at":   s.lastSyncStartedAt,
		"last_sync_completed_at": s.lastSyncCompletedAt,
	}

	if s.lastReport != nil {
		status["last_report"] = s.lastReport
	}

	return status
}
