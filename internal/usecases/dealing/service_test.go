package dealing

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

type serviceMocks struct {
	deal         *mocks.MockDealRepository
	product      *mocks.MockProductRepository
	timeline     *mocks.MockTimelineRepository
	notification *mocks.MockNotificationRepository
	authz        *authzmocks.MockAuthorizationService
	scoring      *scoringmocks.MockScoringService
}

func newServiceWithMocks(ctrl *gomock.Controller) (DealService, *serviceMocks) {
	m := &serviceMocks{
		deal:         mocks.NewMockDealRepository(ctrl),
		product:      mocks.NewMockProductRepository(ctrl),
		timeline:     mocks.NewMockTimelineRepository(ctrl),
		notification: mocks.NewMockNotificationRepository(ctrl),
		authz:        authzmocks.NewMockAuthorizationService(ctrl),
		scoring:      scoringmocks.NewMockScoringService(ctrl),
	}

	service := NewService(m.deal, m.product, m.timeline, m.notification, m.authz, m.scoring)

	return service, m
}

func intPtr(i int) *int {
	return &i
}

func TestService_CreateDeal(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	grant := &domain.Grant{UserID: 20, Role: domain.RoleManager, TeamIDs: []int{20, 31}}

	tests := []struct {
		name     string
		deal     *domain.Deal
		setup    func(m *serviceMocks)
		validate func(t *testing.T, created *domain.Deal, err error)
	}{
		{
			name:  "Deal sem nome - deve recusar antes de tocar o banco",
			deal:  &domain.Deal{AccountID: "ACC001"},
			setup: func(m *serviceMocks) {},
			validate: func(t *testing.T, created *domain.Deal, err error) {
				assert.ErrorIs(t, err, ErrInvalidDeal)
			},
		},
		{
			name: "Sem permissão de escrita - deve recusar",
			deal: &domain.Deal{Name: "Expansão Norte", AccountID: "ACC001"},
			setup: func(m *serviceMocks) {
				m.authz.EXPECT().
					CanChange(grant, domain.KindDeal, nil).
					Return(false)
			},
			validate: func(t *testing.T, created *domain.Deal, err error) {
				assert.ErrorIs(t, err, ErrPermissionDenied)
			},
		},
		{
			name: "Criação completa - grava, registra na timeline, notifica o responsável e recalcula o score",
			deal: &domain.Deal{Name: "Expansão Norte", AccountID: "ACC001", Value: 30000, AssignedTo: intPtr(31)},
			setup: func(m *serviceMocks) {
				created := &domain.Deal{
					ID:         "DEAL01",
					Name:       "Expansão Norte",
					AccountID:  "ACC001",
					Value:      30000,
					AssignedTo: intPtr(31),
				}

				m.authz.EXPECT().
					CanChange(grant, domain.KindDeal, nil).
					Return(true)
				m.deal.EXPECT().
					CreateDeal(gomock.Any()).
					Return(created, nil)
				m.timeline.EXPECT().
					CreateEvent(gomock.Any()).
					DoAndReturn(func(event *domain.TimelineEvent) (*domain.TimelineEvent, error) {
						assert.Equal(t, domain.TimelineActionCreated, event.Action)
						assert.Equal(t, "DEAL01", *event.DealID)
						return event, nil
					})
				// O responsável não é quem criou, então recebe notificação
				m.notification.EXPECT().
					CreateNotification(gomock.Any()).
					DoAndReturn(func(n *domain.Notification) (*domain.Notification, error) {
						assert.Equal(t, 31, n.Recipient)
						return n, nil
					})
				m.scoring.EXPECT().
					Recompute("DEAL01").
					Return(&domain.ScoreBreakdown{DealID: "DEAL01", Total: 45}, nil)
				m.deal.EXPECT().
					GetDealByID("DEAL01", domain.UnrestrictedScope).
					Return(&domain.Deal{ID: "DEAL01", Name: "Expansão Norte", LeadScore: 45}, nil)
			},
			validate: func(t *testing.T, created *domain.Deal, err error) {
				assert.NoError(t, err)
				assert.Equal(t, "DEAL01", created.ID)
				assert.Equal(t, 45, created.LeadScore)
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			service, m := newServiceWithMocks(ctrl)

			tt.setup(m)

			created, err := service.CreateDeal(grant, tt.deal)

			tt.validate(t, created, err)
		})
	}
}

func TestService_UpdateDeal_MudancaDeEstagio(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	service, m := newServiceWithMocks(ctrl)

	grant := &domain.Grant{UserID: 31, Role: domain.RoleRep}
	current := &domain.Deal{
		ID:         "DEAL01",
		Name:       "Expansão Norte",
		AccountID:  "ACC001",
		Stage:      domain.DealStageNegotiation,
		AssignedTo: intPtr(31),
	}
	updated := &domain.Deal{
		ID:         "DEAL01",
		Name:       "Expansão Norte",
		AccountID:  "ACC001",
		Stage:      domain.DealStageClosedWon,
		AssignedTo: intPtr(31),
	}

	m.deal.EXPECT().
		GetDealByID("DEAL01", domain.UnrestrictedScope).
		Return(current, nil)
	m.authz.EXPECT().
		CanChange(grant, domain.KindDeal, gomock.Any()).
		Return(true)
	m.deal.EXPECT().
		UpdateDeal(updated).
		Return(nil)
	// Fechamento ganho vira evento importante na timeline
	m.timeline.EXPECT().
		CreateEvent(gomock.Any()).
		DoAndReturn(func(event *domain.TimelineEvent) (*domain.TimelineEvent, error) {
			assert.Equal(t, domain.TimelineActionWon, event.Action)
			assert.True(t, event.Important)
			return event, nil
		})
	m.scoring.EXPECT().
		Recompute("DEAL01").
		Return(&domain.ScoreBreakdown{DealID: "DEAL01"}, nil)
	m.deal.EXPECT().
		GetDealByID("DEAL01", domain.UnrestrictedScope).
		Return(updated, nil)

	result, err := service.UpdateDeal(grant, updated)

	assert.NoError(t, err)
	assert.Equal(t, domain.DealStageClosedWon, result.Stage)
}

func TestService_AddLineItem(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	grant := &domain.Grant{UserID: 31, Role: domain.RoleRep}
	deal := &domain.Deal{ID: "DEAL01", AccountID: "ACC001", AssignedTo: intPtr(31)}

	tests := []struct {
		name     string
		item     *domain.DealProduct
		setup    func(m *serviceMocks)
		validate func(t *testing.T, created *domain.DealProduct, err error)
	}{
		{
			name: "Quantidade inválida - deve recusar",
			item: &domain.DealProduct{DealID: "DEAL01", ProductID: "PRD001", Quantity: 0},
			setup: func(m *serviceMocks) {
				m.deal.EXPECT().
					GetDealByID("DEAL01", domain.UnrestrictedScope).
					Return(deal, nil)
				m.authz.EXPECT().
					CanChange(grant, domain.KindDeal, gomock.Any()).
					Return(true)
			},
			validate: func(t *testing.T, created *domain.DealProduct, err error) {
				assert.ErrorIs(t, err, ErrInvalidLineItem)
			},
		},
		{
			name: "Sem preço informado - congela o preço de tabela e refaz o rollup",
			item: &domain.DealProduct{DealID: "DEAL01", ProductID: "PRD001", Quantity: 5},
			setup: func(m *serviceMocks) {
				m.deal.EXPECT().
					GetDealByID("DEAL01", domain.UnrestrictedScope).
					Return(deal, nil)
				m.authz.EXPECT().
					CanChange(grant, domain.KindDeal, gomock.Any()).
					Return(true)
				m.product.EXPECT().
					GetProductByID("PRD001").
					Return(&domain.Product{ID: "PRD001", UnitPrice: 50}, nil)
				m.deal.EXPECT().
					CreateDealProduct(gomock.Any()).
					DoAndReturn(func(item *domain.DealProduct) (*domain.DealProduct, error) {
						assert.Equal(t, 50.0, item.UnitPrice)
						item.ID = "ITEM01"
						return item, nil
					})
				// O rollup de valor entra pelo caminho que regrava valor e score
				m.scoring.EXPECT().
					RecomputeWithValue("DEAL01").
					Return(&domain.ScoreBreakdown{DealID: "DEAL01"}, nil)
			},
			validate: func(t *testing.T, created *domain.DealProduct, err error) {
				assert.NoError(t, err)
				assert.Equal(t, "ITEM01", created.ID)
				assert.Equal(t, 50.0, created.UnitPrice)
				// O subtotal ignora o desconto no rollup
				assert.Equal(t, 250.0, created.Subtotal())
			},
		},
		{
			name: "Produto inexistente - deve recusar",
			item: &domain.DealProduct{DealID: "DEAL01", ProductID: "PRD999", Quantity: 1},
			setup: func(m *serviceMocks) {
				m.deal.EXPECT().
					GetDealByID("DEAL01", domain.UnrestrictedScope).
					Return(deal, nil)
				m.authz.EXPECT().
					CanChange(grant, domain.KindDeal, gomock.Any()).
					Return(true)
				m.product.EXPECT().
					GetProductByID("PRD999").
					Return(nil, nil)
			},
			validate: func(t *testing.T, created *domain.DealProduct, err error) {
				assert.ErrorIs(t, err, ErrProductNotFound)
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			service, m := newServiceWithMocks(ctrl)

			tt.setup(m)

			created, err := service.AddLineItem(grant, tt.item)

			tt.validate(t, created, err)
		})
	}
}

func TestService_DeleteDeal_VendedorNuncaExclui(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	service, m := newServiceWithMocks(ctrl)

	grant := &domain.Grant{UserID: 31, Role: domain.RoleRep}
	deal := &domain.Deal{ID: "DEAL01", AssignedTo: intPtr(31)}

	m.deal.EXPECT().
		GetDealByID("DEAL01", domain.UnrestrictedScope).
		Return(deal, nil)
	m.authz.EXPECT().
		CanDelete(grant, gomock.Any()).
		Return(false)

	err := service.DeleteDeal(grant, "DEAL01")

	assert.ErrorIs(t, err, ErrDeleteForbidden)
}

func TestService_ExportDeals(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	grant := &domain.Grant{UserID: 1, Role: domain.RoleAdmin}

	t.Run("Sem permissão de exportação - deve recusar", func(t *testing.T) {
		service, m := newServiceWithMocks(ctrl)

		m.authz.EXPECT().
			CanExport(grant).
			Return(false)

		rows, err := service.ExportDeals(grant)

		assert.ErrorIs(t, err, ErrExportForbidden)
		assert.Nil(t, rows)
	})

	t.Run("Exportação completa ignora o escopo de leitura", func(t *testing.T) {
		service, m := newServiceWithMocks(ctrl)

		m.authz.EXPECT().
			CanExport(grant).
			Return(true)
		m.deal.EXPECT().
			ListDeals(domain.UnrestrictedScope).
			Return([]*domain.Deal{
				{
					ID:         "DEAL01",
					Name:       "Expansão Norte",
					AccountID:  "ACC001",
					Value:      30000,
					Stage:      domain.DealStageNegotiation,
					AssignedTo: intPtr(31),
					LeadScore:  85,
					CreatedAt:  time.Date(2024, 3, 10, 0, 0, 0, 0, time.UTC),
				},
			}, nil)

		rows, err := service.ExportDeals(grant)

		assert.NoError(t, err)
		assert.Len(t, rows, 1)
		assert.Equal(t, []string{"DEAL01", "Expansão Norte", "ACC001", "30000.00", "negotiation", "31", "85", "hot", "2024-03-10"}, rows[0])
	})
}
