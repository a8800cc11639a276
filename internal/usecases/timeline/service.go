package timeline

import (
	"errors"
	"fmt"

	"github.com/esteban-lambda/crm-api/infrastructure/repository"
	"github.com/esteban-lambda/crm-api/internal/domain"
	"github.com/esteban-lambda/crm-api/internal/usecases/authorizing"
)

const defaultEventLimit = 50

// Erros específicos do contexto de timeline
var (
	ErrDealNotFound    = errors.New("deal not found")
	ErrAccountNotFound = errors.New("account not found")

	ErrFetchEvents = errors.New("error fetching timeline events")
)

// TimelineService expõe o histórico cronológico. A consulta por deal ou
// conta herda a visibilidade da entidade dona.
type TimelineService interface {
	RecentActivity(grant *domain.Grant, limit int) ([]*domain.TimelineEvent, error)
	DealHistory(grant *domain.Grant, dealID string, limit int) ([]*domain.TimelineEvent, error)
	AccountHistory(grant *domain.Grant, accountID string, limit int) ([]*domain.TimelineEvent, error)
}

type Service struct {
	timelineRepository   repository.TimelineRepository
	dealRepository       repository.DealRepository
	accountRepository    repository.AccountRepository
	authorizationService authorizing.AuthorizationService
}

func NewService(
	timelineRepository repository.TimelineRepository,
	dealRepository repository.DealRepository,
	accountRepository repository.AccountRepository,
	authorizationService authorizing.AuthorizationService,
) TimelineService {
	return &Service{
		timelineRepository:   timelineRepository,
		dealRepository:       dealRepository,
		accountRepository:    accountRepository,
		authorizationService: authorizationService,
	}
}

func (s *Service) RecentActivity(grant *domain.Grant, limit int) ([]*domain.TimelineEvent, error) {
	if limit <= 0 {
		limit = defaultEventLimit
	}

	events, err := s.timelineRepository.ListEvents(limit)
	if err != nil {
		return nil, wrap(ErrFetchEvents, err)
	}

	return events, nil
}

func (s *Service) DealHistory(grant *domain.Grant, dealID string, limit int) ([]*domain.TimelineEvent, error) {
	if limit <= 0 {
		limit = defaultEventLimit
	}

	scope, err := s.authorizationService.ScopeFor(grant, domain.KindDeal)
	if err != nil {
		return nil, err
	}

	deal, err := s.dealRepository.GetDealByID(dealID, scope)
	if err != nil {
		return nil, wrap(ErrFetchEvents, err)
	}
	if deal == nil {
		return nil, ErrDealNotFound
	}

	events, err := s.timelineRepository.ListEventsByDeal(dealID, limit)
	if err != nil {
		return nil, wrap(ErrFetchEvents, err)
	}

	return events, nil
}

func (s *Service) AccountHistory(grant *domain.Grant, accountID string, limit int) ([]*domain.TimelineEvent, error) {
	if limit <= 0 {
		limit = defaultEventLimit
	}

	scope, err := s.authorizationService.ScopeFor(grant, domain.KindAccount)
	if err != nil {
		return nil, err
	}

	account, err := s.accountRepository.GetAccountByID(accountID, scope)
	if err != nil {
		return nil, wrap(ErrFetchEvents, err)
	}
	if account == nil {
		return nil, ErrAccountNotFound
	}

	events, err := s.timelineRepository.ListEventsByAccount(accountID, limit)
	if err != nil {
		return nil, wrap(ErrFetchEvents, err)
	}

	return events, nil
}

func wrap(err error, cause error) error {
	return fmt.Errorf("%w: %v", err, cause)
}
