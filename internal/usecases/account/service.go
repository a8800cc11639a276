package account

import (
	"fmt"

	"github.com/sirupsen/logrus"

	"github.com/esteban-lambda/crm-api/infrastructure/repository"
	"github.com/esteban-lambda/crm-api/internal/domain"
	"github.com/esteban-lambda/crm-api/internal/usecases/authorizing"
)

// AccountService gerencia as contas (empresas) do CRM. A visibilidade de
// conta é transitiva: deriva dos deals que o usuário enxerga.
type AccountService interface {
	CreateAccount(grant *domain.Grant, account *domain.Account) (*domain.Account, error)
	UpdateAccount(grant *domain.Grant, account *domain.Account) (*domain.Account, error)
	GetAccount(grant *domain.Grant, accountID string) (*domain.Account, error)
	ListAccounts(grant *domain.Grant) ([]*domain.Account, error)
	DeleteAccount(grant *domain.Grant, accountID string) error
	ExportAccounts(grant *domain.Grant) ([][]string, error)
}

type Service struct {
	accountRepository    repository.AccountRepository
	timelineRepository   repository.TimelineRepository
	authorizationService authorizing.AuthorizationService
}

func NewService(
	accountRepository repository.AccountRepository,
	timelineRepository repository.TimelineRepository,
	authorizationService authorizing.AuthorizationService,
) AccountService {
	return &Service{
		accountRepository:    accountRepository,
		timelineRepository:   timelineRepository,
		authorizationService: authorizationService,
	}
}

func (s *Service) CreateAccount(grant *domain.Grant, account *domain.Account) (*domain.Account, error) {
	if account.Name == "" {
		return nil, ErrAccountNameRequired
	}

	if !s.authorizationService.CanChange(grant, domain.KindAccount, nil) {
		return nil, ErrPermissionDenied
	}

	created, err := s.accountRepository.CreateAccount(account)
	if err != nil {
		return nil, NewAccountError(ErrSaveAccount, err)
	}

	s.recordEvent(grant, created, domain.TimelineActionCreated, fmt.Sprintf("Conta %q criada", created.Name))

	return created, nil
}

func (s *Service) UpdateAccount(grant *domain.Grant, account *domain.Account) (*domain.Account, error) {
	scope, err := s.authorizationService.ScopeFor(grant, domain.KindAccount)
	if err != nil {
		return nil, err
	}

	current, err := s.accountRepository.GetAccountByID(account.ID, scope)
	if err != nil {
		return nil, NewAccountError(ErrFetchAccount, err)
	}
	if current == nil {
		return nil, ErrAccountNotFound
	}

	if err := s.accountRepository.UpdateAccount(account); err != nil {
		return nil, NewAccountError(ErrSaveAccount, err)
	}

	s.recordEvent(grant, account, domain.TimelineActionUpdated, fmt.Sprintf("Conta %q atualizada", account.Name))

	return account, nil
}

func (s *Service) GetAccount(grant *domain.Grant, accountID string) (*domain.Account, error) {
	scope, err := s.authorizationService.ScopeFor(grant, domain.KindAccount)
	if err != nil {
		return nil, err
	}

	account, err := s.accountRepository.GetAccountByID(accountID, scope)
	if err != nil {
		return nil, NewAccountError(ErrFetchAccount, err)
	}
	if account == nil {
		return nil, ErrAccountNotFound
	}

	return account, nil
}

func (s *Service) ListAccounts(grant *domain.Grant) ([]*domain.Account, error) {
	scope, err := s.authorizationService.ScopeFor(grant, domain.KindAccount)
	if err != nil {
		return nil, err
	}

	accounts, err := s.accountRepository.ListAccounts(scope)
	if err != nil {
		return nil, NewAccountError(ErrFetchAccount, err)
	}

	return accounts, nil
}

func (s *Service) DeleteAccount(grant *domain.Grant, accountID string) error {
	account, err := s.accountRepository.GetAccountByID(accountID, domain.UnrestrictedScope)
	if err != nil {
		return NewAccountError(ErrFetchAccount, err)
	}
	if account == nil {
		return ErrAccountNotFound
	}

	// Conta não tem responsável direto, então só administrador exclui
	if !s.authorizationService.CanDelete(grant, nil) {
		return ErrDeleteForbidden
	}

	if err := s.accountRepository.DeleteAccount(accountID); err != nil {
		return NewAccountError(ErrSaveAccount, err)
	}

	s.recordEvent(grant, account, domain.TimelineActionDeleted, fmt.Sprintf("Conta %q removida", account.Name))

	return nil
}

func (s *Service) ExportAccounts(grant *domain.Grant) ([][]string, error) {
	if !s.authorizationService.CanExport(grant) {
		return nil, ErrExportForbidden
	}

	accounts, err := s.accountRepository.ListAccounts(domain.UnrestrictedScope)
	if err != nil {
		return nil, NewAccountError(ErrFetchAccount, err)
	}

	rows := make([][]string, 0, len(accounts))
	for _, account := range accounts {
		rows = append(rows, []string{
			account.ID,
			account.Name,
			strOrEmpty(account.Website),
			strOrEmpty(account.Industry),
			account.CreatedAt.Format("2006-01-02"),
		})
	}

	return rows, nil
}

func (s *Service) recordEvent(grant *domain.Grant, account *domain.Account, action domain.TimelineAction, title string) {
	event := &domain.TimelineEvent{
		EventType: domain.TimelineEventTypeAccount,
		Action:    action,
		Title:     title,
		UserID:    &grant.UserID,
		AccountID: &account.ID,
	}

	if _, err := s.timelineRepository.CreateEvent(event); err != nil {
		logrus.WithField("error", err).Warn("account: failed to record timeline event")
	}
}

func strOrEmpty(s *string) string {
	if s == nil {
		return ""
	}
	return *s
}
