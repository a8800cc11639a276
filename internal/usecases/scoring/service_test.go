package scoring

import (
	"testing"
	"time"

	"github.com/pkg/errors"
	"github.com/stretchr/testify/assert"
	"go.uber.org/mock/gomock"

	"github.com/esteban-lambda/crm-api/infrastructure/repository/mocks"
	"github.com/esteban-lambda/crm-api/internal/domain"
)

func TestService_Recompute(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	now := time.Date(2024, 5, 20, 12, 0, 0, 0, time.UTC)

	deal := &domain.Deal{
		ID:        "DEAL01",
		AccountID: "ACC001",
		Value:     60000,
		Stage:     domain.DealStageNegotiation,
		CreatedAt: now.AddDate(0, 0, -10),
	}

	tests := []struct {
		name     string
		setup    func(mockDeal *mocks.MockDealRepository, mockAccount *mocks.MockAccountRepository, mockInteraction *mocks.MockInteractionRepository)
		validate func(t *testing.T, breakdown *domain.ScoreBreakdown, err error)
	}{
		{
			name: "Recalcula e grava pelo caminho dedicado de campos calculados",
			setup: func(mockDeal *mocks.MockDealRepository, mockAccount *mocks.MockAccountRepository, mockInteraction *mocks.MockInteractionRepository) {
				mockDeal.EXPECT().
					GetDealByID("DEAL01", domain.UnrestrictedScope).
					Return(deal, nil)
				mockAccount.EXPECT().
					GetAccountByID("ACC001", domain.UnrestrictedScope).
					Return(&domain.Account{ID: "ACC001", Industry: strPtr("Software")}, nil)
				mockInteraction.EXPECT().
					GetLatestByDeal("DEAL01").
					Return(&domain.Interaction{ID: "INT001", ScheduledAt: now.AddDate(0, 0, -2)}, nil)
				mockInteraction.EXPECT().
					CountByDealSince("DEAL01", now.AddDate(0, 0, -30)).
					Return(4, nil)
				// Fit 35 (sem contato) + engajamento 47 - degradação 0
				mockDeal.EXPECT().
					ApplyScore("DEAL01", 82, now).
					Return(nil)
			},
			validate: func(t *testing.T, breakdown *domain.ScoreBreakdown, err error) {
				assert.NoError(t, err)
				assert.Equal(t, 82, breakdown.Total)
				assert.Equal(t, domain.LeadCategoryHot, breakdown.Category)
			},
		},
		{
			name: "Deal inexistente - deve retornar erro de não encontrado",
			setup: func(mockDeal *mocks.MockDealRepository, mockAccount *mocks.MockAccountRepository, mockInteraction *mocks.MockInteractionRepository) {
				mockDeal.EXPECT().
					GetDealByID("DEAL01", domain.UnrestrictedScope).
					Return(nil, nil)
			},
			validate: func(t *testing.T, breakdown *domain.ScoreBreakdown, err error) {
				assert.ErrorIs(t, err, ErrDealNotFound)
				assert.Nil(t, breakdown)
			},
		},
		{
			name: "Falha na busca da conta não derruba o cálculo",
			setup: func(mockDeal *mocks.MockDealRepository, mockAccount *mocks.MockAccountRepository, mockInteraction *mocks.MockInteractionRepository) {
				mockDeal.EXPECT().
					GetDealByID("DEAL01", domain.UnrestrictedScope).
					Return(deal, nil)
				mockAccount.EXPECT().
					GetAccountByID("ACC001", domain.UnrestrictedScope).
					Return(nil, errors.New("erro de banco"))
				mockInteraction.EXPECT().
					GetLatestByDeal("DEAL01").
					Return(nil, nil)
				mockInteraction.EXPECT().
					CountByDealSince("DEAL01", now.AddDate(0, 0, -30)).
					Return(0, nil)
				// Só a faixa de valor pontua: 15, sem carência vencida
				mockDeal.EXPECT().
					ApplyScore("DEAL01", 30, now).
					Return(nil)
			},
			validate: func(t *testing.T, breakdown *domain.ScoreBreakdown, err error) {
				assert.NoError(t, err)
				// Faixa de valor 15 + velocidade 15
				assert.Equal(t, 15, breakdown.Fit)
				assert.Equal(t, 15, breakdown.Engagement)
				assert.Equal(t, 30, breakdown.Total)
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			mockDeal := mocks.NewMockDealRepository(ctrl)
			mockAccount := mocks.NewMockAccountRepository(ctrl)
			mockContact := mocks.NewMockContactRepository(ctrl)
			mockInteraction := mocks.NewMockInteractionRepository(ctrl)

			service := &Service{
				dealRepository:        mockDeal,
				accountRepository:     mockAccount,
				contactRepository:     mockContact,
				interactionRepository: mockInteraction,
				now:                   func() time.Time { return now },
			}

			tt.setup(mockDeal, mockAccount, mockInteraction)

			breakdown, err := service.Recompute("DEAL01")

			tt.validate(t, breakdown, err)
		})
	}
}

func TestService_RecomputeWithValue(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	now := time.Date(2024, 5, 20, 12, 0, 0, 0, time.UTC)

	mockDeal := mocks.NewMockDealRepository(ctrl)
	mockAccount := mocks.NewMockAccountRepository(ctrl)
	mockContact := mocks.NewMockContactRepository(ctrl)
	mockInteraction := mocks.NewMockInteractionRepository(ctrl)

	service := &Service{
		dealRepository:        mockDeal,
		accountRepository:     mockAccount,
		contactRepository:     mockContact,
		interactionRepository: mockInteraction,
		now:                   func() time.Time { return now },
	}

	deal := &domain.Deal{
		ID:        "DEAL01",
		AccountID: "ACC001",
		Value:     1000,
		Stage:     domain.DealStageProspecting,
		CreatedAt: now.AddDate(0, 0, -5),
	}

	mockDeal.EXPECT().
		GetDealByID("DEAL01", domain.UnrestrictedScope).
		Return(deal, nil)
	// O rollup dos itens de linha substitui o valor antigo do deal
	mockDeal.EXPECT().
		SumLineItemValue("DEAL01").
		Return(22000.0, nil)
	mockAccount.EXPECT().
		GetAccountByID("ACC001", domain.UnrestrictedScope).
		Return(nil, nil)
	mockInteraction.EXPECT().
		GetLatestByDeal("DEAL01").
		Return(nil, nil)
	mockInteraction.EXPECT().
		CountByDealSince("DEAL01", now.AddDate(0, 0, -30)).
		Return(0, nil)
	// Faixa de valor 10 + velocidade 15, gravados junto com o valor novo
	mockDeal.EXPECT().
		ApplyScoreAndValue("DEAL01", 25, 22000.0, now).
		Return(nil)

	breakdown, err := service.RecomputeWithValue("DEAL01")

	assert.NoError(t, err)
	assert.Equal(t, 10, breakdown.Fit)
	assert.Equal(t, 15, breakdown.Engagement)
	assert.Equal(t, 25, breakdown.Total)
}

func TestService_RecomputeAll(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	now := time.Date(2024, 5, 20, 2, 0, 0, 0, time.UTC)

	mockDeal := mocks.NewMockDealRepository(ctrl)
	mockAccount := mocks.NewMockAccountRepository(ctrl)
	mockContact := mocks.NewMockContactRepository(ctrl)
	mockInteraction := mocks.NewMockInteractionRepository(ctrl)

	service := &Service{
		dealRepository:        mockDeal,
		accountRepository:     mockAccount,
		contactRepository:     mockContact,
		interactionRepository: mockInteraction,
		now:                   func() time.Time { return now },
	}

	dealQuente := &domain.Deal{
		ID:        "DEAL01",
		AccountID: "ACC001",
		Name:      "Expansão Norte",
		Value:     60000,
		Stage:     domain.DealStageNegotiation,
		LeadScore: 40,
		CreatedAt: now.AddDate(0, 0, -10),
	}
	dealFrio := &domain.Deal{
		ID:        "DEAL02",
		AccountID: "ACC002",
		Name:      "Renovação Sul",
		Value:     1000,
		Stage:     domain.DealStageProspecting,
		LeadScore: 70,
		CreatedAt: now.AddDate(0, 0, -100),
	}

	mockDeal.EXPECT().
		ListAllDeals().
		Return([]*domain.Deal{dealQuente, dealFrio}, nil)

	// DEAL01: conta de software, interação recente
	mockAccount.EXPECT().
		GetAccountByID("ACC001", domain.UnrestrictedScope).
		Return(&domain.Account{ID: "ACC001", Name: "Norte Ltda", Industry: strPtr("Software")}, nil)
	mockInteraction.EXPECT().
		GetLatestByDeal("DEAL01").
		Return(&domain.Interaction{ID: "INT001", ScheduledAt: now.AddDate(0, 0, -2)}, nil)
	mockInteraction.EXPECT().
		CountByDealSince("DEAL01", now.AddDate(0, 0, -30)).
		Return(4, nil)
	mockDeal.EXPECT().
		ApplyScore("DEAL01", 82, now).
		Return(nil)

	// DEAL02: abandonado, sem interações
	mockAccount.EXPECT().
		GetAccountByID("ACC002", domain.UnrestrictedScope).
		Return(&domain.Account{ID: "ACC002", Name: "Sul S.A."}, nil)
	mockInteraction.EXPECT().
		GetLatestByDeal("DEAL02").
		Return(nil, nil)
	mockInteraction.EXPECT().
		CountByDealSince("DEAL02", now.AddDate(0, 0, -30)).
		Return(0, nil)
	mockDeal.EXPECT().
		ApplyScore("DEAL02", 0, now).
		Return(nil)

	// Top leads consultam o nome da conta de novo
	mockAccount.EXPECT().
		GetAccountByID("ACC001", domain.UnrestrictedScope).
		Return(&domain.Account{ID: "ACC001", Name: "Norte Ltda"}, nil)
	mockAccount.EXPECT().
		GetAccountByID("ACC002", domain.UnrestrictedScope).
		Return(&domain.Account{ID: "ACC002", Name: "Sul S.A."}, nil)

	report, err := service.RecomputeAll()

	assert.NoError(t, err)
	assert.Equal(t, 2, report.TotalDeals)
	assert.Equal(t, 2, report.Updated)

	// Histograma de antes usa o score gravado, o de depois usa o novo
	assert.Equal(t, domain.CategoryHistogram{Cold: 1, Warm: 1}, report.Before)
	assert.Equal(t, domain.CategoryHistogram{Hot: 1, Frozen: 1}, report.After)

	// Top leads ordenados por score decrescente
	assert.Len(t, report.TopLeads, 2)
	assert.Equal(t, "DEAL01", report.TopLeads[0].DealID)
	assert.Equal(t, "Expansão Norte", report.TopLeads[0].Name)
	assert.Equal(t, "Norte Ltda", report.TopLeads[0].AccountName)
	assert.Equal(t, 82, report.TopLeads[0].Score)
	assert.Equal(t, "DEAL02", report.TopLeads[1].DealID)
}
