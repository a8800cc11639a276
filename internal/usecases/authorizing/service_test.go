package authorizing

import (
	"testing"

	"github.com/pkg/errors"
	"github.com/stretchr/testify/assert"
	"go.uber.org/mock/gomock"

	"github.com/esteban-lambda/crm-api/infrastructure/repository/mocks"
	"github.com/esteban-lambda/crm-api/internal/domain"
)

func intPtr(i int) *int {
	return &i
}

func TestService_Resolve(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	tests := []struct {
		name     string
		facts    domain.RoleFacts
		userID   int
		setup    func(mockUser *mocks.MockUserRepository)
		validate func(t *testing.T, grant *domain.Grant, err error)
	}{
		{
			name:   "Superusuário vira administrador independente do grupo",
			facts:  domain.RoleFacts{IsSuperuser: true, GroupID: domain.GroupSalesRep},
			userID: 10,
			setup:  func(mockUser *mocks.MockUserRepository) {},
			validate: func(t *testing.T, grant *domain.Grant, err error) {
				assert.NoError(t, err)
				assert.Equal(t, domain.RoleAdmin, grant.Role)
			},
		},
		{
			name:   "Perfil comercial manager vale como administrador",
			facts:  domain.RoleFacts{GroupID: domain.GroupSalesManager, ProfileRole: domain.ProfileRoleManager},
			userID: 11,
			setup:  func(mockUser *mocks.MockUserRepository) {},
			validate: func(t *testing.T, grant *domain.Grant, err error) {
				assert.NoError(t, err)
				// O perfil manager ganha do grupo Sales Manager
				assert.Equal(t, domain.RoleAdmin, grant.Role)
				assert.Empty(t, grant.TeamIDs)
			},
		},
		{
			name:   "Grupo administrador vira administrador",
			facts:  domain.RoleFacts{GroupID: domain.GroupAdministrator, ProfileRole: domain.ProfileRoleSales},
			userID: 12,
			setup:  func(mockUser *mocks.MockUserRepository) {},
			validate: func(t *testing.T, grant *domain.Grant, err error) {
				assert.NoError(t, err)
				assert.Equal(t, domain.RoleAdmin, grant.Role)
			},
		},
		{
			name:   "Gerente de vendas carrega o time junto",
			facts:  domain.RoleFacts{GroupID: domain.GroupSalesManager, ProfileRole: domain.ProfileRoleSales},
			userID: 20,
			setup: func(mockUser *mocks.MockUserRepository) {
				mockUser.EXPECT().
					ListTeamIDs(20).
					Return([]int{20, 31, 32}, nil)
			},
			validate: func(t *testing.T, grant *domain.Grant, err error) {
				assert.NoError(t, err)
				assert.Equal(t, domain.RoleManager, grant.Role)
				assert.Equal(t, []int{20, 31, 32}, grant.TeamIDs)
			},
		},
		{
			name:   "Falha ao buscar o time - deve propagar o erro",
			facts:  domain.RoleFacts{GroupID: domain.GroupSalesManager},
			userID: 21,
			setup: func(mockUser *mocks.MockUserRepository) {
				mockUser.EXPECT().
					ListTeamIDs(21).
					Return(nil, errors.New("erro de banco"))
			},
			validate: func(t *testing.T, grant *domain.Grant, err error) {
				assert.Error(t, err)
				assert.Nil(t, grant)
			},
		},
		{
			name:   "Sem grupo e sem perfil cai no papel mais restrito",
			facts:  domain.RoleFacts{},
			userID: 30,
			setup:  func(mockUser *mocks.MockUserRepository) {},
			validate: func(t *testing.T, grant *domain.Grant, err error) {
				assert.NoError(t, err)
				assert.Equal(t, domain.RoleRep, grant.Role)
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			mockUser := mocks.NewMockUserRepository(ctrl)
			mockDeal := mocks.NewMockDealRepository(ctrl)
			service := NewService(mockUser, mockDeal)

			tt.setup(mockUser)

			grant, err := service.Resolve(tt.facts, tt.userID)

			tt.validate(t, grant, err)
		})
	}
}

func TestService_ScopeFor(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	admin := &domain.Grant{UserID: 1, Role: domain.RoleAdmin}
	manager := &domain.Grant{UserID: 20, Role: domain.RoleManager, TeamIDs: []int{20, 31, 32}}
	rep := &domain.Grant{UserID: 31, Role: domain.RoleRep}

	tests := []struct {
		name     string
		grant    *domain.Grant
		kind     domain.EntityKind
		setup    func(mockDeal *mocks.MockDealRepository)
		validate func(t *testing.T, scope domain.Scope, err error)
	}{
		{
			name:  "Administrador lê tudo",
			grant: admin,
			kind:  domain.KindDeal,
			setup: func(mockDeal *mocks.MockDealRepository) {},
			validate: func(t *testing.T, scope domain.Scope, err error) {
				assert.NoError(t, err)
				assert.True(t, scope.All)
			},
		},
		{
			name:  "Catálogo compartilhado não sofre recorte nem para vendedor",
			grant: rep,
			kind:  domain.KindProduct,
			setup: func(mockDeal *mocks.MockDealRepository) {},
			validate: func(t *testing.T, scope domain.Scope, err error) {
				assert.NoError(t, err)
				assert.True(t, scope.All)
			},
		},
		{
			name:  "Vendedor enxerga apenas os próprios deals",
			grant: rep,
			kind:  domain.KindDeal,
			setup: func(mockDeal *mocks.MockDealRepository) {},
			validate: func(t *testing.T, scope domain.Scope, err error) {
				assert.NoError(t, err)
				assert.False(t, scope.All)
				assert.Equal(t, []int{31}, scope.UserIDs)
			},
		},
		{
			name:  "Gerente enxerga os deals do time inteiro",
			grant: manager,
			kind:  domain.KindDeal,
			setup: func(mockDeal *mocks.MockDealRepository) {},
			validate: func(t *testing.T, scope domain.Scope, err error) {
				assert.NoError(t, err)
				assert.Equal(t, []int{20, 31, 32}, scope.UserIDs)
			},
		},
		{
			name:  "Interação considera também quem registrou",
			grant: rep,
			kind:  domain.KindInteraction,
			setup: func(mockDeal *mocks.MockDealRepository) {},
			validate: func(t *testing.T, scope domain.Scope, err error) {
				assert.NoError(t, err)
				assert.Equal(t, []int{31}, scope.UserIDs)
				assert.True(t, scope.OwnerOrCreator)
			},
		},
		{
			name:  "Conta usa escopo transitivo pelos deals visíveis",
			grant: manager,
			kind:  domain.KindAccount,
			setup: func(mockDeal *mocks.MockDealRepository) {
				mockDeal.EXPECT().
					ListAccountIDsByAssignees([]int{20, 31, 32}).
					Return([]string{"ACC001", "ACC002"}, nil)
			},
			validate: func(t *testing.T, scope domain.Scope, err error) {
				assert.NoError(t, err)
				assert.Equal(t, []string{"ACC001", "ACC002"}, scope.AccountIDs)
			},
		},
		{
			name:  "Falha no escopo transitivo - deve propagar o erro",
			grant: rep,
			kind:  domain.KindContact,
			setup: func(mockDeal *mocks.MockDealRepository) {
				mockDeal.EXPECT().
					ListAccountIDsByAssignees([]int{31}).
					Return(nil, errors.New("erro de banco"))
			},
			validate: func(t *testing.T, scope domain.Scope, err error) {
				assert.Error(t, err)
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			mockUser := mocks.NewMockUserRepository(ctrl)
			mockDeal := mocks.NewMockDealRepository(ctrl)
			service := NewService(mockUser, mockDeal)

			tt.setup(mockDeal)

			scope, err := service.ScopeFor(tt.grant, tt.kind)

			tt.validate(t, scope, err)
		})
	}
}

func TestService_CanChange(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	service := NewService(mocks.NewMockUserRepository(ctrl), mocks.NewMockDealRepository(ctrl))

	admin := &domain.Grant{UserID: 1, Role: domain.RoleAdmin}
	manager := &domain.Grant{UserID: 20, Role: domain.RoleManager, TeamIDs: []int{20, 31, 32}}
	rep := &domain.Grant{UserID: 31, Role: domain.RoleRep}

	// Administrador muda qualquer coisa
	assert.True(t, service.CanChange(admin, domain.KindDeal, &domain.RecordRef{AssignedTo: intPtr(99)}))

	// Vendedor muda o que é dele e nada além
	assert.True(t, service.CanChange(rep, domain.KindDeal, &domain.RecordRef{AssignedTo: intPtr(31)}))
	assert.False(t, service.CanChange(rep, domain.KindDeal, &domain.RecordRef{AssignedTo: intPtr(32)}))

	// Gerente muda registros de qualquer membro do time
	assert.True(t, service.CanChange(manager, domain.KindDeal, &domain.RecordRef{AssignedTo: intPtr(32)}))
	assert.False(t, service.CanChange(manager, domain.KindDeal, &domain.RecordRef{AssignedTo: intPtr(99)}))

	// Interação aceita posse por criação
	assert.True(t, service.CanChange(rep, domain.KindInteraction, &domain.RecordRef{CreatedBy: intPtr(31)}))

	// Registro sem dono não é de ninguém
	assert.False(t, service.CanChange(rep, domain.KindDeal, &domain.RecordRef{}))
}

func TestService_CanDelete(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	service := NewService(mocks.NewMockUserRepository(ctrl), mocks.NewMockDealRepository(ctrl))

	admin := &domain.Grant{UserID: 1, Role: domain.RoleAdmin}
	manager := &domain.Grant{UserID: 20, Role: domain.RoleManager, TeamIDs: []int{20, 31, 32}}
	rep := &domain.Grant{UserID: 31, Role: domain.RoleRep}

	assert.True(t, service.CanDelete(admin, nil))
	assert.True(t, service.CanDelete(manager, &domain.RecordRef{AssignedTo: intPtr(31)}))
	assert.False(t, service.CanDelete(manager, &domain.RecordRef{AssignedTo: intPtr(99)}))
	assert.False(t, service.CanDelete(manager, nil))

	// Vendedor nunca exclui, nem o que é dele
	assert.False(t, service.CanDelete(rep, &domain.RecordRef{AssignedTo: intPtr(31)}))
}

func TestService_CanExport(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	service := NewService(mocks.NewMockUserRepository(ctrl), mocks.NewMockDealRepository(ctrl))

	assert.True(t, service.CanExport(&domain.Grant{UserID: 1, Role: domain.RoleAdmin}))
	assert.False(t, service.CanExport(&domain.Grant{UserID: 20, Role: domain.RoleManager}))
	assert.False(t, service.CanExport(&domain.Grant{UserID: 31, Role: domain.RoleRep}))
}
