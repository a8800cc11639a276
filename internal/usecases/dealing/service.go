package dealing

import (
	"fmt"

	"github.com/sirupsen/logrus"

	"github.com/esteban-lambda/crm-api/infrastructure/repository"
	"github.com/esteban-lambda/crm-api/internal/domain"
	"github.com/esteban-lambda/crm-api/internal/usecases/authorizing"
	"github.com/esteban-lambda/crm-api/internal/usecases/scoring"
)

// DealService cobre o ciclo de vida dos deals e seus itens de linha.
// Toda gravação real dispara recálculo de score e registra evento de
// timeline; a gravação do próprio score não passa por aqui.
type DealService interface {
	CreateDeal(grant *domain.Grant, deal *domain.Deal) (*domain.Deal, error)
	UpdateDeal(grant *domain.Grant, deal *domain.Deal) (*domain.Deal, error)
	GetDeal(grant *domain.Grant, dealID string) (*domain.Deal, error)
	ListDeals(grant *domain.Grant) ([]*domain.Deal, error)
	DeleteDeal(grant *domain.Grant, dealID string) error

	AddLineItem(grant *domain.Grant, item *domain.DealProduct) (*domain.DealProduct, error)
	UpdateLineItem(grant *domain.Grant, item *domain.DealProduct) (*domain.DealProduct, error)
	RemoveLineItem(grant *domain.Grant, itemID string) error
	ListLineItems(grant *domain.Grant, dealID string) ([]*domain.DealProduct, error)

	ExportDeals(grant *domain.Grant) ([][]string, error)
}

type Service struct {
	dealRepository         repository.DealRepository
	productRepository      repository.ProductRepository
	timelineRepository     repository.TimelineRepository
	notificationRepository repository.NotificationRepository
	authorizationService   authorizing.AuthorizationService
	scoringService         scoring.ScoringService
}

func NewService(
	dealRepository repository.DealRepository,
	productRepository repository.ProductRepository,
	timelineRepository repository.TimelineRepository,
	notificationRepository repository.NotificationRepository,
	authorizationService authorizing.AuthorizationService,
	scoringService scoring.ScoringService,
) DealService {
	return &Service{
		dealRepository:         dealRepository,
		productRepository:      productRepository,
		timelineRepository:     timelineRepository,
		notificationRepository: notificationRepository,
		authorizationService:   authorizationService,
		scoringService:         scoringService,
	}
}

func (s *Service) CreateDeal(grant *domain.Grant, deal *domain.Deal) (*domain.Deal, error) {
	if deal.Name == "" || deal.AccountID == "" {
		return nil, ErrInvalidDeal
	}

	if !s.authorizationService.CanChange(grant, domain.KindDeal, nil) {
		return nil, ErrPermissionDenied
	}

	created, err := s.dealRepository.CreateDeal(deal)
	if err != nil {
		return nil, NewDealError(ErrSaveDeal, err)
	}

	s.recordEvent(grant, created, domain.TimelineActionCreated, fmt.Sprintf("Deal %q criado", created.Name))
	s.notifyAssignment(grant, created)

	if _, err := s.scoringService.Recompute(created.ID); err != nil {
		logrus.WithFields(logrus.Fields{
			"deal_id": created.ID,
			"error":   err,
		}).Warn("dealing: score recompute failed after create")
	}

	return s.dealRepository.GetDealByID(created.ID, domain.UnrestrictedScope)
}

func (s *Service) UpdateDeal(grant *domain.Grant, deal *domain.Deal) (*domain.Deal, error) {
	current, err := s.dealRepository.GetDealByID(deal.ID, domain.UnrestrictedScope)
	if err != nil {
		return nil, NewDealError(ErrFetchDeal, err)
	}
	if current == nil {
		return nil, ErrDealNotFound
	}

	if !s.authorizationService.CanChange(grant, domain.KindDeal, &domain.RecordRef{AssignedTo: current.AssignedTo}) {
		return nil, ErrPermissionDenied
	}

	if err := s.dealRepository.UpdateDeal(deal); err != nil {
		return nil, NewDealError(ErrSaveDeal, err)
	}

	if current.Stage != deal.Stage {
		s.recordStageChange(grant, deal, current.Stage)
	} else {
		s.recordEvent(grant, deal, domain.TimelineActionUpdated, fmt.Sprintf("Deal %q atualizado", deal.Name))
	}

	if !intPtrEqual(current.AssignedTo, deal.AssignedTo) {
		s.notifyAssignment(grant, deal)
	}

	if _, err := s.scoringService.Recompute(deal.ID); err != nil {
		logrus.WithFields(logrus.Fields{
			"deal_id": deal.ID,
			"error":   err,
		}).Warn("dealing: score recompute failed after update")
	}

	return s.dealRepository.GetDealByID(deal.ID, domain.UnrestrictedScope)
}

func (s *Service) GetDeal(grant *domain.Grant, dealID string) (*domain.Deal, error) {
	scope, err := s.authorizationService.ScopeFor(grant, domain.KindDeal)
	if err != nil {
		return nil, err
	}

	deal, err := s.dealRepository.GetDealByID(dealID, scope)
	if err != nil {
		return nil, NewDealError(ErrFetchDeal, err)
	}
	if deal == nil {
		return nil, ErrDealNotFound
	}

	return deal, nil
}

func (s *Service) ListDeals(grant *domain.Grant) ([]*domain.Deal, error) {
	scope, err := s.authorizationService.ScopeFor(grant, domain.KindDeal)
	if err != nil {
		return nil, err
	}

	deals, err := s.dealRepository.ListDeals(scope)
	if err != nil {
		return nil, NewDealError(ErrFetchDeal, err)
	}

	return deals, nil
}

func (s *Service) DeleteDeal(grant *domain.Grant, dealID string) error {
	deal, err := s.dealRepository.GetDealByID(dealID, domain.UnrestrictedScope)
	if err != nil {
		return NewDealError(ErrFetchDeal, err)
	}
	if deal == nil {
		return ErrDealNotFound
	}

	if !s.authorizationService.CanDelete(grant, &domain.RecordRef{AssignedTo: deal.AssignedTo}) {
		return ErrDeleteForbidden
	}

	if err := s.dealRepository.DeleteDeal(dealID); err != nil {
		return NewDealError(ErrSaveDeal, err)
	}

	s.recordEvent(grant, deal, domain.TimelineActionDeleted, fmt.Sprintf("Deal %q removido", deal.Name))

	return nil
}

func (s *Service) AddLineItem(grant *domain.Grant, item *domain.DealProduct) (*domain.DealProduct, error) {
	deal, err := s.guardLineItemChange(grant, item.DealID)
	if err != nil {
		return nil, err
	}

	if item.Quantity <= 0 {
		return nil, ErrInvalidLineItem
	}

	// Congela o preço de tabela no momento do negócio quando o chamador
	// não informa preço próprio
	if item.UnitPrice == 0 {
		product, err := s.productRepository.GetProductByID(item.ProductID)
		if err != nil {
			return nil, NewDealError(ErrFetchProduct, err)
		}
		if product == nil {
			return nil, ErrProductNotFound
		}
		item.UnitPrice = product.UnitPrice
	}

	created, err := s.dealRepository.CreateDealProduct(item)
	if err != nil {
		return nil, NewDealError(ErrSaveLineItem, err)
	}

	s.rollup(deal)

	return created, nil
}

func (s *Service) UpdateLineItem(grant *domain.Grant, item *domain.DealProduct) (*domain.DealProduct, error) {
	current, err := s.dealRepository.GetDealProduct(item.ID)
	if err != nil {
		return nil, NewDealError(ErrFetchLineItem, err)
	}
	if current == nil {
		return nil, ErrLineItemNotFound
	}

	deal, err := s.guardLineItemChange(grant, current.DealID)
	if err != nil {
		return nil, err
	}

	if item.Quantity <= 0 {
		return nil, ErrInvalidLineItem
	}

	item.DealID = current.DealID
	item.ProductID = current.ProductID

	if err := s.dealRepository.UpdateDealProduct(item); err != nil {
		return nil, NewDealError(ErrSaveLineItem, err)
	}

	s.rollup(deal)

	return item, nil
}

func (s *Service) RemoveLineItem(grant *domain.Grant, itemID string) error {
	current, err := s.dealRepository.GetDealProduct(itemID)
	if err != nil {
		return NewDealError(ErrFetchLineItem, err)
	}
	if current == nil {
		return ErrLineItemNotFound
	}

	deal, err := s.guardLineItemChange(grant, current.DealID)
	if err != nil {
		return err
	}

	if err := s.dealRepository.DeleteDealProduct(itemID); err != nil {
		return NewDealError(ErrSaveLineItem, err)
	}

	s.rollup(deal)

	return nil
}

func (s *Service) ListLineItems(grant *domain.Grant, dealID string) ([]*domain.DealProduct, error) {
	// O item herda a visibilidade do deal
	if _, err := s.GetDeal(grant, dealID); err != nil {
		return nil, err
	}

	items, err := s.dealRepository.ListDealProducts(dealID)
	if err != nil {
		return nil, NewDealError(ErrFetchLineItem, err)
	}

	return items, nil
}

func (s *Service) ExportDeals(grant *domain.Grant) ([][]string, error) {
	if !s.authorizationService.CanExport(grant) {
		return nil, ErrExportForbidden
	}

	deals, err := s.dealRepository.ListDeals(domain.UnrestrictedScope)
	if err != nil {
		return nil, NewDealError(ErrFetchDeal, err)
	}

	rows := make([][]string, 0, len(deals))
	for _, deal := range deals {
		assignedTo := ""
		if deal.AssignedTo != nil {
			assignedTo = fmt.Sprintf("%d", *deal.AssignedTo)
		}
		rows = append(rows, []string{
			deal.ID,
			deal.Name,
			deal.AccountID,
			fmt.Sprintf("%.2f", deal.Value),
			string(deal.Stage),
			assignedTo,
			fmt.Sprintf("%d", deal.LeadScore),
			string(deal.ScoreCategory()),
			deal.CreatedAt.Format("2006-01-02"),
		})
	}

	return rows, nil
}

// guardLineItemChange valida a mutação de item contra o deal dono
func (s *Service) guardLineItemChange(grant *domain.Grant, dealID string) (*domain.Deal, error) {
	deal, err := s.dealRepository.GetDealByID(dealID, domain.UnrestrictedScope)
	if err != nil {
		return nil, NewDealError(ErrFetchDeal, err)
	}
	if deal == nil {
		return nil, ErrDealNotFound
	}

	if !s.authorizationService.CanChange(grant, domain.KindDeal, &domain.RecordRef{AssignedTo: deal.AssignedTo}) {
		return nil, ErrPermissionDenied
	}

	return deal, nil
}

func (s *Service) rollup(deal *domain.Deal) {
	if _, err := s.scoringService.RecomputeWithValue(deal.ID); err != nil {
		logrus.WithFields(logrus.Fields{
			"deal_id": deal.ID,
			"error":   err,
		}).Warn("dealing: value rollup failed after line item change")
	}
}

func (s *Service) recordStageChange(grant *domain.Grant, deal *domain.Deal, previous domain.DealStage) {
	action := domain.TimelineActionMoved
	title := fmt.Sprintf("Deal %q movido de %s para %s", deal.Name, previous, deal.Stage)

	switch deal.Stage {
	case domain.DealStageClosedWon:
		action = domain.TimelineActionWon
		title = fmt.Sprintf("Deal %q ganho", deal.Name)
	case domain.DealStageClosedLost:
		action = domain.TimelineActionLost
		title = fmt.Sprintf("Deal %q perdido", deal.Name)
	}

	event := &domain.TimelineEvent{
		EventType:   domain.TimelineEventTypeDeal,
		Action:      action,
		Title:       title,
		UserID:      &grant.UserID,
		AccountID:   &deal.AccountID,
		DealID:      &deal.ID,
		Important:   action == domain.TimelineActionWon || action == domain.TimelineActionLost,
	}

	if _, err := s.timelineRepository.CreateEvent(event); err != nil {
		logrus.WithField("error", err).Warn("dealing: failed to record timeline event")
	}
}

func (s *Service) recordEvent(grant *domain.Grant, deal *domain.Deal, action domain.TimelineAction, title string) {
	event := &domain.TimelineEvent{
		EventType: domain.TimelineEventTypeDeal,
		Action:    action,
		Title:     title,
		UserID:    &grant.UserID,
		AccountID: &deal.AccountID,
		DealID:    &deal.ID,
	}

	if _, err := s.timelineRepository.CreateEvent(event); err != nil {
		logrus.WithField("error", err).Warn("dealing: failed to record timeline event")
	}
}

func (s *Service) notifyAssignment(grant *domain.Grant, deal *domain.Deal) {
	if deal.AssignedTo == nil || *deal.AssignedTo == grant.UserID {
		return
	}

	url := fmt.Sprintf("/deals/%s", deal.ID)
	notification := &domain.Notification{
		Recipient: *deal.AssignedTo,
		Type:      domain.NotificationTypeDeal,
		Priority:  domain.NotificationPriorityNormal,
		Title:     "Novo deal atribuído a você",
		Message:   fmt.Sprintf("O deal %q foi atribuído a você", deal.Name),
		ActionURL: &url,
	}

	if _, err := s.notificationRepository.CreateNotification(notification); err != nil {
		logrus.WithField("error", err).Warn("dealing: failed to create assignment notification")
	}
}

func intPtrEqual(a, b *int) bool {
	if a == nil || b == nil {
		return a == b
	}
	return *a == *b
}
