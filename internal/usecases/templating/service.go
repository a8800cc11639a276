package templating

import (
	"errors"
	"fmt"
	"strings"

	"github.com/esteban-lambda/crm-api/infrastructure/repository"
	"github.com/esteban-lambda/crm-api/internal/domain"
)

// Erros específicos do contexto de templates de e-mail
var (
	ErrInvalidTemplate  = errors.New("template name, subject and body are required")
	ErrTemplateNotFound = errors.New("template not found")
	ErrTemplateInactive = errors.New("template is inactive")
	ErrContactNotFound  = errors.New("contact not found")

	ErrFetchTemplate = errors.New("error fetching template")
	ErrSaveTemplate  = errors.New("error saving template")
)

// TemplateService gerencia templates de e-mail e a renderização de um
// template para um contato concreto, substituindo as variáveis
// suportadas pelos dados reais.
type TemplateService interface {
	CreateTemplate(grant *domain.Grant, template *domain.EmailTemplate) (*domain.EmailTemplate, error)
	UpdateTemplate(grant *domain.Grant, template *domain.EmailTemplate) (*domain.EmailTemplate, error)
	GetTemplate(templateID string) (*domain.EmailTemplate, error)
	ListTemplates(onlyActive bool) ([]*domain.EmailTemplate, error)
	DeleteTemplate(grant *domain.Grant, templateID string) error
	Render(templateID, contactID string, user *domain.User) (*domain.RenderedEmail, error)
}

type Service struct {
	templateRepository repository.EmailTemplateRepository
	contactRepository  repository.ContactRepository
	accountRepository  repository.AccountRepository
}

func NewService(
	templateRepository repository.EmailTemplateRepository,
	contactRepository repository.ContactRepository,
	accountRepository repository.AccountRepository,
) TemplateService {
	return &Service{
		templateRepository: templateRepository,
		contactRepository:  contactRepository,
		accountRepository:  accountRepository,
	}
}

func (s *Service) CreateTemplate(grant *domain.Grant, template *domain.EmailTemplate) (*domain.EmailTemplate, error) {
	if template.Name == "" || template.Subject == "" || template.BodyHTML == "" {
		return nil, ErrInvalidTemplate
	}

	if template.CreatedBy == nil {
		template.CreatedBy = &grant.UserID
	}

	created, err := s.templateRepository.CreateEmailTemplate(template)
	if err != nil {
		return nil, wrap(ErrSaveTemplate, err)
	}

	return created, nil
}

func (s *Service) UpdateTemplate(grant *domain.Grant, template *domain.EmailTemplate) (*domain.EmailTemplate, error) {
	current, err := s.templateRepository.GetEmailTemplateByID(template.ID)
	if err != nil {
		return nil, wrap(ErrFetchTemplate, err)
	}
	if current == nil {
		return nil, ErrTemplateNotFound
	}

	if err := s.templateRepository.UpdateEmailTemplate(template); err != nil {
		return nil, wrap(ErrSaveTemplate, err)
	}

	return template, nil
}

func (s *Service) GetTemplate(templateID string) (*domain.EmailTemplate, error) {
	template, err := s.templateRepository.GetEmailTemplateByID(templateID)
	if err != nil {
		return nil, wrap(ErrFetchTemplate, err)
	}
	if template == nil {
		return nil, ErrTemplateNotFound
	}

	return template, nil
}

func (s *Service) ListTemplates(onlyActive bool) ([]*domain.EmailTemplate, error) {
	templates, err := s.templateRepository.ListEmailTemplates(onlyActive)
	if err != nil {
		return nil, wrap(ErrFetchTemplate, err)
	}

	return templates, nil
}

func (s *Service) DeleteTemplate(grant *domain.Grant, templateID string) error {
	template, err := s.templateRepository.GetEmailTemplateByID(templateID)
	if err != nil {
		return wrap(ErrFetchTemplate, err)
	}
	if template == nil {
		return ErrTemplateNotFound
	}

	return s.templateRepository.DeleteEmailTemplate(templateID)
}

// Render substitui as variáveis do template pelos dados do contato, da
// conta dele e do usuário remetente. Variável sem dado vira vazio.
func (s *Service) Render(templateID, contactID string, user *domain.User) (*domain.RenderedEmail, error) {
	template, err := s.templateRepository.GetEmailTemplateByID(templateID)
	if err != nil {
		return nil, wrap(ErrFetchTemplate, err)
	}
	if template == nil {
		return nil, ErrTemplateNotFound
	}
	if !template.Active {
		return nil, ErrTemplateInactive
	}

	contact, err := s.contactRepository.GetContactByID(contactID, domain.UnrestrictedScope)
	if err != nil {
		return nil, wrap(ErrFetchTemplate, err)
	}
	if contact == nil {
		return nil, ErrContactNotFound
	}

	accountName := ""
	account, err := s.accountRepository.GetAccountByID(contact.AccountID, domain.UnrestrictedScope)
	if err == nil && account != nil {
		accountName = account.Name
	}

	userName := ""
	if user != nil {
		userName = strings.TrimSpace(user.Name + " " + user.Lastname)
	}

	replacer := strings.NewReplacer(
		"{{contact_name}}", contact.FullName(),
		"{{contact_email}}", contact.Email,
		"{{account_name}}", accountName,
		"{{user_name}}", userName,
	)

	bodyText := ""
	if template.BodyText != nil {
		bodyText = replacer.Replace(*template.BodyText)
	}

	return &domain.RenderedEmail{
		TemplateID: template.ID,
		Subject:    replacer.Replace(template.Subject),
		BodyHTML:   replacer.Replace(template.BodyHTML),
		BodyText:   bodyText,
	}, nil
}

func wrap(err error, cause error) error {
	return fmt.Errorf("%w: %v", err, cause)
}
