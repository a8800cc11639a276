package interacting

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"go.uber.org/mock/gomock"

	"github.com/esteban-lambda/crm-api/infrastructure/repository/mocks"
	"github.com/esteban-lambda/crm-api/internal/domain"
	authzmocks "github.com/esteban-lambda/crm-api/internal/usecases/authorizing/mocks"
	scoringmocks "github.com/esteban-lambda/crm-api/internal/usecases/scoring/mocks"
)

func TestService_SuggestNextContact(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	now := time.Date(2024, 5, 20, 12, 0, 0, 0, time.UTC)
	grant := &domain.Grant{UserID: 31, Role: domain.RoleRep}
	deal := &domain.Deal{ID: "DEAL01", AccountID: "ACC001", AssignedTo: intPtr(31)}

	daysAgo := func(d int) time.Time {
		return now.AddDate(0, 0, -d)
	}

	tests := []struct {
		name     string
		setup    func(mockInteraction *mocks.MockInteractionRepository, mockDeal *mocks.MockDealRepository, mockAuthz *authzmocks.MockAuthorizationService)
		validate func(t *testing.T, suggestion *NextContactSuggestion, err error)
	}{
		{
			name: "Cadência regular de 5 dias - projeta 5 dias após a última interação",
			setup: func(mockInteraction *mocks.MockInteractionRepository, mockDeal *mocks.MockDealRepository, mockAuthz *authzmocks.MockAuthorizationService) {
				mockAuthz.EXPECT().
					ScopeFor(grant, domain.KindDeal).
					Return(domain.Scope{UserIDs: []int{31}}, nil)
				mockDeal.EXPECT().
					GetDealByID("DEAL01", domain.Scope{UserIDs: []int{31}}).
					Return(deal, nil)
				mockInteraction.EXPECT().
					ListCompletedDatesByDeal("DEAL01", now, 5).
					Return([]time.Time{daysAgo(2), daysAgo(7), daysAgo(12)}, nil)
			},
			validate: func(t *testing.T, suggestion *NextContactSuggestion, err error) {
				assert.NoError(t, err)
				assert.Equal(t, 5, suggestion.GapDays)
				assert.Equal(t, 3, suggestion.BasedOn)
				assert.Equal(t, daysAgo(2).AddDate(0, 0, 5), suggestion.SuggestedAt)
			},
		},
		{
			name: "Histórico insuficiente - usa 7 dias a partir de agora",
			setup: func(mockInteraction *mocks.MockInteractionRepository, mockDeal *mocks.MockDealRepository, mockAuthz *authzmocks.MockAuthorizationService) {
				mockAuthz.EXPECT().
					ScopeFor(grant, domain.KindDeal).
					Return(domain.Scope{UserIDs: []int{31}}, nil)
				mockDeal.EXPECT().
					GetDealByID("DEAL01", domain.Scope{UserIDs: []int{31}}).
					Return(deal, nil)
				mockInteraction.EXPECT().
					ListCompletedDatesByDeal("DEAL01", now, 5).
					Return([]time.Time{daysAgo(3)}, nil)
			},
			validate: func(t *testing.T, suggestion *NextContactSuggestion, err error) {
				assert.NoError(t, err)
				assert.Equal(t, 7, suggestion.GapDays)
				assert.Equal(t, 1, suggestion.BasedOn)
				assert.Equal(t, now.AddDate(0, 0, 7), suggestion.SuggestedAt)
			},
		},
		{
			name: "Cadência frenética - intervalo tem piso de 3 dias",
			setup: func(mockInteraction *mocks.MockInteractionRepository, mockDeal *mocks.MockDealRepository, mockAuthz *authzmocks.MockAuthorizationService) {
				mockAuthz.EXPECT().
					ScopeFor(grant, domain.KindDeal).
					Return(domain.Scope{UserIDs: []int{31}}, nil)
				mockDeal.EXPECT().
					GetDealByID("DEAL01", domain.Scope{UserIDs: []int{31}}).
					Return(deal, nil)
				mockInteraction.EXPECT().
					ListCompletedDatesByDeal("DEAL01", now, 5).
					Return([]time.Time{daysAgo(0), daysAgo(1), daysAgo(2)}, nil)
			},
			validate: func(t *testing.T, suggestion *NextContactSuggestion, err error) {
				assert.NoError(t, err)
				assert.Equal(t, 3, suggestion.GapDays)
			},
		},
		{
			name: "Cadência arrastada - intervalo tem teto de 30 dias",
			setup: func(mockInteraction *mocks.MockInteractionRepository, mockDeal *mocks.MockDealRepository, mockAuthz *authzmocks.MockAuthorizationService) {
				mockAuthz.EXPECT().
					ScopeFor(grant, domain.KindDeal).
					Return(domain.Scope{UserIDs: []int{31}}, nil)
				mockDeal.EXPECT().
					GetDealByID("DEAL01", domain.Scope{UserIDs: []int{31}}).
					Return(deal, nil)
				mockInteraction.EXPECT().
					ListCompletedDatesByDeal("DEAL01", now, 5).
					Return([]time.Time{daysAgo(10), daysAgo(100)}, nil)
			},
			validate: func(t *testing.T, suggestion *NextContactSuggestion, err error) {
				assert.NoError(t, err)
				assert.Equal(t, 30, suggestion.GapDays)
				assert.Equal(t, daysAgo(10).AddDate(0, 0, 30), suggestion.SuggestedAt)
			},
		},
		{
			name: "Conclusões com data futura não alimentam a cadência - consulta limitada ao instante atual",
			setup: func(mockInteraction *mocks.MockInteractionRepository, mockDeal *mocks.MockDealRepository, mockAuthz *authzmocks.MockAuthorizationService) {
				mockAuthz.EXPECT().
					ScopeFor(grant, domain.KindDeal).
					Return(domain.Scope{UserIDs: []int{31}}, nil)
				mockDeal.EXPECT().
					GetDealByID("DEAL01", domain.Scope{UserIDs: []int{31}}).
					Return(deal, nil)
				// A interação concluída marcada para daqui a 3 dias não aparece
				// no retorno porque a consulta corta em scheduled_at <= now
				mockInteraction.EXPECT().
					ListCompletedDatesByDeal("DEAL01", now, 5).
					Return([]time.Time{daysAgo(4), daysAgo(8)}, nil)
			},
			validate: func(t *testing.T, suggestion *NextContactSuggestion, err error) {
				assert.NoError(t, err)
				assert.Equal(t, 4, suggestion.GapDays)
				assert.Equal(t, 2, suggestion.BasedOn)
				assert.Equal(t, daysAgo(4).AddDate(0, 0, 4), suggestion.SuggestedAt)
			},
		},
		{
			name: "Deal fora do escopo do vendedor - deve retornar não encontrado",
			setup: func(mockInteraction *mocks.MockInteractionRepository, mockDeal *mocks.MockDealRepository, mockAuthz *authzmocks.MockAuthorizationService) {
				mockAuthz.EXPECT().
					ScopeFor(grant, domain.KindDeal).
					Return(domain.Scope{UserIDs: []int{31}}, nil)
				mockDeal.EXPECT().
					GetDealByID("DEAL01", domain.Scope{UserIDs: []int{31}}).
					Return(nil, nil)
			},
			validate: func(t *testing.T, suggestion *NextContactSuggestion, err error) {
				assert.ErrorIs(t, err, ErrDealNotFound)
				assert.Nil(t, suggestion)
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			mockInteraction := mocks.NewMockInteractionRepository(ctrl)
			mockDeal := mocks.NewMockDealRepository(ctrl)
			mockTimeline := mocks.NewMockTimelineRepository(ctrl)
			mockAuthz := authzmocks.NewMockAuthorizationService(ctrl)
			mockScoring := scoringmocks.NewMockScoringService(ctrl)

			service := &Service{
				interactionRepository: mockInteraction,
				dealRepository:        mockDeal,
				timelineRepository:    mockTimeline,
				authorizationService:  mockAuthz,
				scoringService:        mockScoring,
				now:                   func() time.Time { return now },
			}

			tt.setup(mockInteraction, mockDeal, mockAuthz)

			suggestion, err := service.SuggestNextContact(grant, "DEAL01")

			tt.validate(t, suggestion, err)
		})
	}
}

func TestService_CreateInteraction(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	now := time.Date(2024, 5, 20, 12, 0, 0, 0, time.UTC)
	grant := &domain.Grant{UserID: 31, Role: domain.RoleRep}

	mockInteraction := mocks.NewMockInteractionRepository(ctrl)
	mockDeal := mocks.NewMockDealRepository(ctrl)
	mockTimeline := mocks.NewMockTimelineRepository(ctrl)
	mockAuthz := authzmocks.NewMockAuthorizationService(ctrl)
	mockScoring := scoringmocks.NewMockScoringService(ctrl)

	service := &Service{
		interactionRepository: mockInteraction,
		dealRepository:        mockDeal,
		timelineRepository:    mockTimeline,
		authorizationService:  mockAuthz,
		scoringService:        mockScoring,
		now:                   func() time.Time { return now },
	}

	dealID := "DEAL01"
	input := &domain.Interaction{
		Subject:   "Ligação de descoberta",
		AccountID: "ACC001",
		DealID:    &dealID,
	}

	mockAuthz.EXPECT().
		CanChange(grant, domain.KindInteraction, nil).
		Return(true)
	mockInteraction.EXPECT().
		CreateInteraction(gomock.Any()).
		DoAndReturn(func(interaction *domain.Interaction) (*domain.Interaction, error) {
			// Quem registra vira criador, e a data padrão é agora
			assert.Equal(t, 31, *interaction.CreatedBy)
			assert.Equal(t, now, interaction.ScheduledAt)
			interaction.ID = "INT001"
			return interaction, nil
		})
	mockTimeline.EXPECT().
		CreateEvent(gomock.Any()).
		Return(&domain.TimelineEvent{}, nil)
	// Interação nova mexe na recência, então o score é refeito
	mockScoring.EXPECT().
		Recompute("DEAL01").
		Return(&domain.ScoreBreakdown{DealID: "DEAL01"}, nil)

	created, err := service.CreateInteraction(grant, input)

	assert.NoError(t, err)
	assert.Equal(t, "INT001", created.ID)
}

func intPtr(i int) *int {
	return &i
}
