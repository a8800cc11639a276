package interacting

import (
	"time"

	"github.com/sirupsen/logrus"

	"github.com/esteban-lambda/crm-api/infrastructure/repository"
	"github.com/esteban-lambda/crm-api/internal/domain"
	"github.com/esteban-lambda/crm-api/internal/usecases/authorizing"
	"github.com/esteban-lambda/crm-api/internal/usecases/scoring"
)

const (
	suggestionHistorySize = 5
	minSuggestionGapDays  = 3
	maxSuggestionGapDays  = 30
	defaultGapDays        = 7
)

// NextContactSuggestion é a data sugerida para o próximo contato de um
// deal, derivada da cadência histórica de interações concluídas
type NextContactSuggestion struct {
	DealID      string    `json:"deal_id"`
	SuggestedAt time.Time `json:"suggested_at"`
	GapDays     int       `json:"gap_days"`
	BasedOn     int       `json:"based_on_interactions"`
}

type InteractionService interface {
	CreateInteraction(grant *domain.Grant, interaction *domain.Interaction) (*domain.Interaction, error)
	UpdateInteraction(grant *domain.Grant, interaction *domain.Interaction) (*domain.Interaction, error)
	GetInteraction(grant *domain.Grant, id string) (*domain.Interaction, error)
	ListInteractions(grant *domain.Grant) ([]*domain.Interaction, error)
	ListByDeal(grant *domain.Grant, dealID string) ([]*domain.Interaction, error)
	DeleteInteraction(grant *domain.Grant, id string) error
	SuggestNextContact(grant *domain.Grant, dealID string) (*NextContactSuggestion, error)
}

type Service struct {
	interactionRepository repository.InteractionRepository
	dealRepository        repository.DealRepository
	timelineRepository    repository.TimelineRepository
	authorizationService  authorizing.AuthorizationService
	scoringService        scoring.ScoringService
	now                   func() time.Time
}

func NewService(
	interactionRepository repository.InteractionRepository,
	dealRepository repository.DealRepository,
	timelineRepository repository.TimelineRepository,
	authorizationService authorizing.AuthorizationService,
	scoringService scoring.ScoringService,
) InteractionService {
	return &Service{
		interactionRepository: interactionRepository,
		dealRepository:        dealRepository,
		timelineRepository:    timelineRepository,
		authorizationService:  authorizationService,
		scoringService:        scoringService,
		now:                   time.Now,
	}
}

func (s *Service) CreateInteraction(grant *domain.Grant, interaction *domain.Interaction) (*domain.Interaction, error) {
	if interaction.Subject == "" || interaction.AccountID == "" {
		return nil, ErrInvalidInteraction
	}

	if !s.authorizationService.CanChange(grant, domain.KindInteraction, nil) {
		return nil, ErrPermissionDenied
	}

	if interaction.CreatedBy == nil {
		interaction.CreatedBy = &grant.UserID
	}
	if interaction.ScheduledAt.IsZero() {
		interaction.ScheduledAt = s.now()
	}

	created, err := s.interactionRepository.CreateInteraction(interaction)
	if err != nil {
		return nil, NewInteractionError(ErrSaveInteraction, err)
	}

	s.recordEvent(grant, created, domain.TimelineActionCreated)
	s.recompute(created)

	return created, nil
}

func (s *Service) UpdateInteraction(grant *domain.Grant, interaction *domain.Interaction) (*domain.Interaction, error) {
	current, err := s.interactionRepository.GetInteractionByID(interaction.ID, domain.UnrestrictedScope)
	if err != nil {
		return nil, NewInteractionError(ErrFetchInteraction, err)
	}
	if current == nil {
		return nil, ErrInteractionNotFound
	}

	record := &domain.RecordRef{AssignedTo: current.AssignedTo, CreatedBy: current.CreatedBy}
	if !s.authorizationService.CanChange(grant, domain.KindInteraction, record) {
		return nil, ErrPermissionDenied
	}

	interaction.AccountID = current.AccountID
	if interaction.CreatedBy == nil {
		interaction.CreatedBy = current.CreatedBy
	}

	if err := s.interactionRepository.UpdateInteraction(interaction); err != nil {
		return nil, NewInteractionError(ErrSaveInteraction, err)
	}

	action := domain.TimelineActionUpdated
	if current.Status != domain.InteractionStatusCompleted && interaction.Status == domain.InteractionStatusCompleted {
		action = domain.TimelineActionCompleted
	}
	s.recordEvent(grant, interaction, action)
	s.recompute(interaction)

	return interaction, nil
}

func (s *Service) GetInteraction(grant *domain.Grant, id string) (*domain.Interaction, error) {
	scope, err := s.authorizationService.ScopeFor(grant, domain.KindInteraction)
	if err != nil {
		return nil, err
	}

	interaction, err := s.interactionRepository.GetInteractionByID(id, scope)
	if err != nil {
		return nil, NewInteractionError(ErrFetchInteraction, err)
	}
	if interaction == nil {
		return nil, ErrInteractionNotFound
	}

	return interaction, nil
}

func (s *Service) ListInteractions(grant *domain.Grant) ([]*domain.Interaction, error) {
	scope, err := s.authorizationService.ScopeFor(grant, domain.KindInteraction)
	if err != nil {
		return nil, err
	}

	interactions, err := s.interactionRepository.ListInteractions(scope)
	if err != nil {
		return nil, NewInteractionError(ErrFetchInteraction, err)
	}

	return interactions, nil
}

func (s *Service) ListByDeal(grant *domain.Grant, dealID string) ([]*domain.Interaction, error) {
	// A visibilidade do deal comanda: quem enxerga o deal enxerga o
	// histórico completo dele
	dealScope, err := s.authorizationService.ScopeFor(grant, domain.KindDeal)
	if err != nil {
		return nil, err
	}

	deal, err := s.dealRepository.GetDealByID(dealID, dealScope)
	if err != nil {
		return nil, NewInteractionError(ErrFetchInteraction, err)
	}
	if deal == nil {
		return nil, ErrDealNotFound
	}

	interactions, err := s.interactionRepository.ListInteractionsByDeal(dealID)
	if err != nil {
		return nil, NewInteractionError(ErrFetchInteraction, err)
	}

	return interactions, nil
}

func (s *Service) DeleteInteraction(grant *domain.Grant, id string) error {
	current, err := s.interactionRepository.GetInteractionByID(id, domain.UnrestrictedScope)
	if err != nil {
		return NewInteractionError(ErrFetchInteraction, err)
	}
	if current == nil {
		return ErrInteractionNotFound
	}

	record := &domain.RecordRef{AssignedTo: current.AssignedTo, CreatedBy: current.CreatedBy}
	if !s.authorizationService.CanDelete(grant, record) {
		return ErrDeleteForbidden
	}

	if err := s.interactionRepository.DeleteInteraction(id); err != nil {
		return NewInteractionError(ErrSaveInteraction, err)
	}

	s.recordEvent(grant, current, domain.TimelineActionDeleted)
	s.recompute(current)

	return nil
}

// SuggestNextContact deriva a cadência média das últimas interações
// concluídas do deal e projeta a próxima data a partir da mais recente.
// O intervalo fica entre 3 e 30 dias; sem histórico suficiente a
// sugestão usa 7 dias a partir de agora.
func (s *Service) SuggestNextContact(grant *domain.Grant, dealID string) (*NextContactSuggestion, error) {
	dealScope, err := s.authorizationService.ScopeFor(grant, domain.KindDeal)
	if err != nil {
		return nil, err
	}

	deal, err := s.dealRepository.GetDealByID(dealID, dealScope)
	if err != nil {
		return nil, NewInteractionError(ErrFetchInteraction, err)
	}
	if deal == nil {
		return nil, ErrDealNotFound
	}

	// Interações concluídas com data futura não entram na cadência
	dates, err := s.interactionRepository.ListCompletedDatesByDeal(dealID, s.now(), suggestionHistorySize)
	if err != nil {
		return nil, NewInteractionError(ErrFetchInteraction, err)
	}

	suggestion := &NextContactSuggestion{
		DealID:  dealID,
		GapDays: defaultGapDays,
		BasedOn: len(dates),
	}

	if len(dates) < 2 {
		suggestion.SuggestedAt = s.now().AddDate(0, 0, defaultGapDays)
		return suggestion, nil
	}

	// As datas vêm da mais recente para a mais antiga
	totalDays := 0
	for i := 0; i < len(dates)-1; i++ {
		totalDays += int(dates[i].Sub(dates[i+1]).Hours() / 24)
	}
	gap := totalDays / (len(dates) - 1)

	if gap < minSuggestionGapDays {
		gap = minSuggestionGapDays
	}
	if gap > maxSuggestionGapDays {
		gap = maxSuggestionGapDays
	}

	suggestion.GapDays = gap
	suggestion.SuggestedAt = dates[0].AddDate(0, 0, gap)

	return suggestion, nil
}

// recompute dispara o recálculo do deal vinculado, se houver
func (s *Service) recompute(interaction *domain.Interaction) {
	if interaction.DealID == nil {
		return
	}

	if _, err := s.scoringService.Recompute(*interaction.DealID); err != nil {
		logrus.WithFields(logrus.Fields{
			"deal_id": *interaction.DealID,
			"error":   err,
		}).Warn("interacting: score recompute failed")
	}
}

func (s *Service) recordEvent(grant *domain.Grant, interaction *domain.Interaction, action domain.TimelineAction) {
	event := &domain.TimelineEvent{
		EventType: domain.TimelineEventTypeInteraction,
		Action:    action,
		Title:     interaction.Subject,
		UserID:    &grant.UserID,
		AccountID: &interaction.AccountID,
		ContactID: interaction.ContactID,
		DealID:    interaction.DealID,
	}

	if _, err := s.timelineRepository.CreateEvent(event); err != nil {
		logrus.WithField("error", err).Warn("interacting: failed to record timeline event")
	}
}
