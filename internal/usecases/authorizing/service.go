package authorizing

import (
	"github.com/sirupsen/logrus"

	"github.com/esteban-lambda/crm-api/infrastructure/repository"
	"github.com/esteban-lambda/crm-api/internal/domain"
)

// AuthorizationService resolve o papel efetivo do usuário e traduz esse
// papel em escopos de leitura e decisões de escrita. Toda resposta de
// lista e todo detalhe passam por aqui antes de tocar o banco.
type AuthorizationService interface {
	Resolve(facts domain.RoleFacts, userID int) (*domain.Grant, error)
	ScopeFor(grant *domain.Grant, kind domain.EntityKind) (domain.Scope, error)
	CanChange(grant *domain.Grant, kind domain.EntityKind, record *domain.RecordRef) bool
	CanDelete(grant *domain.Grant, record *domain.RecordRef) bool
	CanExport(grant *domain.Grant) bool
}

type Service struct {
	userRepository repository.UserRepository
	dealRepository repository.DealRepository
}

func NewService(
	userRepository repository.UserRepository,
	dealRepository repository.DealRepository,
) AuthorizationService {
	return &Service{
		userRepository: userRepository,
		dealRepository: dealRepository,
	}
}

// Resolve aplica a ordem de precedência estrita: superusuário, depois
// administrador (grupo Administrator ou perfil comercial "manager"),
// depois gerente de vendas, e por fim vendedor. Usuário sem grupo e sem
// perfil cai no papel mais restrito, nunca em erro.
func (s *Service) Resolve(facts domain.RoleFacts, userID int) (*domain.Grant, error) {
	grant := &domain.Grant{UserID: userID, Role: domain.RoleRep}

	switch {
	case facts.IsSuperuser:
		grant.Role = domain.RoleAdmin
	case facts.ProfileRole == domain.ProfileRoleManager || facts.GroupID == domain.GroupAdministrator:
		// O perfil "manager" vale como administrador. A regra vem do
		// comportamento consolidado do filtro e ganha do grupo Sales
		// Manager quando os dois se aplicam ao mesmo usuário.
		grant.Role = domain.RoleAdmin
	case facts.GroupID == domain.GroupSalesManager:
		grant.Role = domain.RoleManager

		teamIDs, err := s.userRepository.ListTeamIDs(userID)
		if err != nil {
			return nil, NewAuthorizationError(ErrResolveTeam, err)
		}
		grant.TeamIDs = teamIDs
	}

	return grant, nil
}

// ScopeFor traduz o papel efetivo em um recorte de leitura para o tipo
// de entidade. Catálogo compartilhado não sofre recorte para ninguém.
func (s *Service) ScopeFor(grant *domain.Grant, kind domain.EntityKind) (domain.Scope, error) {
	if grant.Role == domain.RoleAdmin {
		return domain.UnrestrictedScope, nil
	}

	switch kind {
	case domain.KindProduct, domain.KindDealProduct, domain.KindEmailTemplate, domain.KindNotification:
		return domain.UnrestrictedScope, nil

	case domain.KindDeal, domain.KindTask, domain.KindDocument, domain.KindTimelineEvent:
		return domain.Scope{UserIDs: s.visibleUserIDs(grant)}, nil

	case domain.KindInteraction:
		return domain.Scope{UserIDs: s.visibleUserIDs(grant), OwnerOrCreator: true}, nil

	case domain.KindAccount, domain.KindContact:
		// Escopo transitivo: contas alcançadas pelos deals visíveis,
		// e contatos dessas contas
		accountIDs, err := s.dealRepository.ListAccountIDsByAssignees(s.visibleUserIDs(grant))
		if err != nil {
			return domain.Scope{}, NewAuthorizationError(ErrResolveAccounts, err)
		}
		return domain.Scope{AccountIDs: accountIDs}, nil
	}

	logrus.WithField("entity_kind", int(kind)).Warn("authorizing: unknown entity kind, denying all")
	return domain.Scope{}, nil
}

// CanChange decide mutação. Sem objeto alvo a resposta é permitir: a
// listagem em si já chega filtrada pelo escopo de leitura.
func (s *Service) CanChange(grant *domain.Grant, kind domain.EntityKind, record *domain.RecordRef) bool {
	if grant.Role == domain.RoleAdmin {
		return true
	}

	if record == nil {
		return true
	}

	switch kind {
	case domain.KindProduct, domain.KindDealProduct:
		return true
	case domain.KindInteraction:
		return s.owns(grant, record.AssignedTo) || s.owns(grant, record.CreatedBy)
	default:
		return s.owns(grant, record.AssignedTo)
	}
}

// CanDelete nega exclusão para vendedores em qualquer hipótese. Gerente
// exclui apenas registros do próprio time.
func (s *Service) CanDelete(grant *domain.Grant, record *domain.RecordRef) bool {
	switch grant.Role {
	case domain.RoleAdmin:
		return true
	case domain.RoleManager:
		if record == nil {
			return false
		}
		return s.owns(grant, record.AssignedTo) || s.owns(grant, record.CreatedBy)
	default:
		return false
	}
}

// CanExport é política independente do escopo de leitura
func (s *Service) CanExport(grant *domain.Grant) bool {
	return grant.Role == domain.RoleAdmin
}

func (s *Service) visibleUserIDs(grant *domain.Grant) []int {
	if grant.Role == domain.RoleManager && len(grant.TeamIDs) > 0 {
		return grant.TeamIDs
	}
	return []int{grant.UserID}
}

func (s *Service) owns(grant *domain.Grant, owner *int) bool {
	if owner == nil {
		return false
	}
	for _, id := range s.visibleUserIDs(grant) {
		if *owner == id {
			return true
		}
	}
	return false
}
