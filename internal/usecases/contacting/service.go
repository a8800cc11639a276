package contacting

import (
	"github.com/esteban-lambda/crm-api/infrastructure/repository"
	"github.com/esteban-lambda/crm-api/internal/domain"
	"github.com/esteban-lambda/crm-api/internal/usecases/authorizing"
)

// ContactService gerencia pessoas de contato. A visibilidade segue a da
// conta dona, que por sua vez deriva dos deals visíveis.
type ContactService interface {
	CreateContact(grant *domain.Grant, contact *domain.Contact) (*domain.Contact, error)
	UpdateContact(grant *domain.Grant, contact *domain.Contact) (*domain.Contact, error)
	GetContact(grant *domain.Grant, contactID string) (*domain.Contact, error)
	ListContacts(grant *domain.Grant) ([]*domain.Contact, error)
	ListByAccount(grant *domain.Grant, accountID string) ([]*domain.Contact, error)
	DeleteContact(grant *domain.Grant, contactID string) error
	ExportContacts(grant *domain.Grant) ([][]string, error)
}

type Service struct {
	contactRepository    repository.ContactRepository
	accountRepository    repository.AccountRepository
	authorizationService authorizing.AuthorizationService
}

func NewService(
	contactRepository repository.ContactRepository,
	accountRepository repository.AccountRepository,
	authorizationService authorizing.AuthorizationService,
) ContactService {
	return &Service{
		contactRepository:    contactRepository,
		accountRepository:    accountRepository,
		authorizationService: authorizationService,
	}
}

func (s *Service) CreateContact(grant *domain.Grant, contact *domain.Contact) (*domain.Contact, error) {
	if contact.FirstName == "" || contact.Email == "" || contact.AccountID == "" {
		return nil, ErrInvalidContact
	}

	if !s.authorizationService.CanChange(grant, domain.KindContact, nil) {
		return nil, ErrPermissionDenied
	}

	existing, err := s.contactRepository.GetContactByEmail(contact.Email)
	if err != nil {
		return nil, NewContactError(ErrFetchContact, err)
	}
	if existing != nil {
		return nil, ErrDuplicateEmail
	}

	account, err := s.accountRepository.GetAccountByID(contact.AccountID, domain.UnrestrictedScope)
	if err != nil {
		return nil, NewContactError(ErrFetchContact, err)
	}
	if account == nil {
		return nil, ErrAccountNotFound
	}

	created, err := s.contactRepository.CreateContact(contact)
	if err != nil {
		return nil, NewContactError(ErrSaveContact, err)
	}

	return created, nil
}

func (s *Service) UpdateContact(grant *domain.Grant, contact *domain.Contact) (*domain.Contact, error) {
	scope, err := s.authorizationService.ScopeFor(grant, domain.KindContact)
	if err != nil {
		return nil, err
	}

	current, err := s.contactRepository.GetContactByID(contact.ID, scope)
	if err != nil {
		return nil, NewContactError(ErrFetchContact, err)
	}
	if current == nil {
		return nil, ErrContactNotFound
	}

	contact.AccountID = current.AccountID

	if err := s.contactRepository.UpdateContact(contact); err != nil {
		return nil, NewContactError(ErrSaveContact, err)
	}

	return contact, nil
}

func (s *Service) GetContact(grant *domain.Grant, contactID string) (*domain.Contact, error) {
	scope, err := s.authorizationService.ScopeFor(grant, domain.KindContact)
	if err != nil {
		return nil, err
	}

	contact, err := s.contactRepository.GetContactByID(contactID, scope)
	if err != nil {
		return nil, NewContactError(ErrFetchContact, err)
	}
	if contact == nil {
		return nil, ErrContactNotFound
	}

	return contact, nil
}

func (s *Service) ListContacts(grant *domain.Grant) ([]*domain.Contact, error) {
	scope, err := s.authorizationService.ScopeFor(grant, domain.KindContact)
	if err != nil {
		return nil, err
	}

	contacts, err := s.contactRepository.ListContacts(scope)
	if err != nil {
		return nil, NewContactError(ErrFetchContact, err)
	}

	return contacts, nil
}

func (s *Service) ListByAccount(grant *domain.Grant, accountID string) ([]*domain.Contact, error) {
	scope, err := s.authorizationService.ScopeFor(grant, domain.KindAccount)
	if err != nil {
		return nil, err
	}

	account, err := s.accountRepository.GetAccountByID(accountID, scope)
	if err != nil {
		return nil, NewContactError(ErrFetchContact, err)
	}
	if account == nil {
		return nil, ErrAccountNotFound
	}

	contacts, err := s.contactRepository.ListContactsByAccount(accountID)
	if err != nil {
		return nil, NewContactError(ErrFetchContact, err)
	}

	return contacts, nil
}

func (s *Service) DeleteContact(grant *domain.Grant, contactID string) error {
	contact, err := s.contactRepository.GetContactByID(contactID, domain.UnrestrictedScope)
	if err != nil {
		return NewContactError(ErrFetchContact, err)
	}
	if contact == nil {
		return ErrContactNotFound
	}

	// Contato não tem responsável direto, então só administrador exclui
	if !s.authorizationService.CanDelete(grant, nil) {
		return ErrDeleteForbidden
	}

	if err := s.contactRepository.DeleteContact(contactID); err != nil {
		return NewContactError(ErrSaveContact, err)
	}

	return nil
}

func (s *Service) ExportContacts(grant *domain.Grant) ([][]string, error) {
	if !s.authorizationService.CanExport(grant) {
		return nil, ErrExportForbidden
	}

	contacts, err := s.contactRepository.ListContacts(domain.UnrestrictedScope)
	if err != nil {
		return nil, NewContactError(ErrFetchContact, err)
	}

	rows := make([][]string, 0, len(contacts))
	for _, contact := range contacts {
		jobTitle := ""
		if contact.JobTitle != nil {
			jobTitle = *contact.JobTitle
		}
		rows = append(rows, []string{
			contact.ID,
			contact.FullName(),
			contact.Email,
			jobTitle,
			contact.AccountID,
			contact.CreatedAt.Format("2006-01-02"),
		})
	}

	return rows, nil
}
