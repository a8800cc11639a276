package scheduler

import (
	"context"
	"testing"
	"time"

	"github.com/go-co-op/gocron"
	"github.com/pkg/errors"
	"github.com/stretchr/testify/assert"
	"go.uber.org/mock/gomock"

	"github.com/esteban-lambda/crm-api/internal/domain"
	scoringmocks "github.com/esteban-lambda/crm-api/internal/usecases/scoring/mocks"
)

func newTestService(scoringService *scoringmocks.MockScoringService, enabled bool) *ScoreRefreshService {
	return &ScoreRefreshService{
		scheduler:      gocron.NewScheduler(time.Local),
		scoringService: scoringService,
		config: ScoreRefreshConfig{
			CronSchedule: "0 2 * * *",
			Enabled:      enabled,
		},
	}
}

func TestScoreRefreshService_RefreshScores(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	report := &domain.RecomputeReport{
		TotalDeals: 12,
		Updated:    5,
		After: domain.CategoryHistogram{
			Hot:    2,
			Warm:   4,
			Cold:   5,
			Frozen: 1,
		},
		StartedAt:  time.Date(2024, 3, 10, 2, 0, 0, 0, time.UTC),
		FinishedAt: time.Date(2024, 3, 10, 2, 0, 3, 0, time.UTC),
	}

	tests := []struct {
		name     string
		setup    func(mockScoring *scoringmocks.MockScoringService, service *ScoreRefreshService)
		validate func(t *testing.T, service *ScoreRefreshService, err error)
	}{
		{
			name: "Recálculo bem sucedido - deve guardar o relatório e liberar o lock",
			setup: func(mockScoring *scoringmocks.MockScoringService, service *ScoreRefreshService) {
				mockScoring.EXPECT().
					RecomputeAll().
					Return(report, nil)
			},
			validate: func(t *testing.T, service *ScoreRefreshService, err error) {
				assert.NoError(t, err)
				assert.Equal(t, report, service.lastReport)
				assert.False(t, service.syncRunning)
				assert.False(t, service.lastSyncStartedAt.IsZero())
				assert.False(t, service.lastSyncCompletedAt.IsZero())
			},
		},
		{
			name: "Erro no recálculo - deve propagar o erro e não guardar relatório",
			setup: func(mockScoring *scoringmocks.MockScoringService, service *ScoreRefreshService) {
				mockScoring.EXPECT().
					RecomputeAll().
					Return(nil, errors.New("erro de banco"))
			},
			validate: func(t *testing.T, service *ScoreRefreshService, err error) {
				assert.Error(t, err)
				assert.Nil(t, service.lastReport)
				assert.False(t, service.syncRunning)
			},
		},
		{
			name: "Recálculo já em execução - deve ignorar sem chamar o serviço",
			setup: func(mockScoring *scoringmocks.MockScoringService, service *ScoreRefreshService) {
				service.syncRunning = true
			},
			validate: func(t *testing.T, service *ScoreRefreshService, err error) {
				assert.NoError(t, err)
				assert.Nil(t, service.lastReport)
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			mockScoring := scoringmocks.NewMockScoringService(ctrl)
			service := newTestService(mockScoring, true)

			tt.setup(mockScoring, service)

			err := service.RefreshScores()

			tt.validate(t, service, err)
		})
	}
}

func TestScoreRefreshService_RefreshScores_DisparoDuranteVarredura(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockScoring := scoringmocks.NewMockScoringService(ctrl)
	service := newTestService(mockScoring, true)

	started := make(chan struct{})
	release := make(chan struct{})

	mockScoring.EXPECT().
		RecomputeAll().
		DoAndReturn(func() (*domain.RecomputeReport, error) {
			close(started)
			<-release
			return &domain.RecomputeReport{TotalDeals: 1, Updated: 1}, nil
		})

	done := make(chan error, 1)
	go func() {
		done <- service.RefreshScores()
	}()

	<-started

	// Com a varredura em andamento, a segunda chamada retorna na hora
	// sem chamar o serviço de scoring de novo
	err := service.RefreshScores()
	assert.NoError(t, err)

	close(release)
	assert.NoError(t, <-done)
	assert.NotNil(t, service.lastReport)
	assert.False(t, service.syncRunning)
}

func TestScoreRefreshService_Start_Desabilitado(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockScoring := scoringmocks.NewMockScoringService(ctrl)
	service := newTestService(mockScoring, false)

	// Desabilitado por configuração: não agenda nada nem toca no serviço de scoring
	err := service.Start(context.Background())

	assert.NoError(t, err)
	assert.Equal(t, 0, len(service.scheduler.Jobs()))
}

func TestScoreRefreshService_GetStatus(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockScoring := scoringmocks.NewMockScoringService(ctrl)
	service := newTestService(mockScoring, true)

	status := service.GetStatus()

	assert.Equal(t, true, status["enabled"])
	assert.Equal(t, "0 2 * * *", status["cron"])
	assert.NotContains(t, status, "last_report")

	report := &domain.RecomputeReport{TotalDeals: 3, Updated: 1}
	service.lastReport = report

	status = service.GetStatus()
	assert.Equal(t, report, status["last_report"])
}
