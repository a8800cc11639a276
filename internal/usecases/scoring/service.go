package scoring

import (
	"sort"
	"time"

	"github.com/sirupsen/logrus"

	"github.com/esteban-lambda/crm-api/infrastructure/repository"
	"github.com/esteban-lambda/crm-api/internal/domain"
)

const topLeadsLimit = 5

// ScoringService mantém o lead score dos deals em dia. O recálculo é
// disparado por qualquer gravação de Deal, Interaction ou item de linha,
// e sempre parte do zero.
type ScoringService interface {
	Recompute(dealID string) (*domain.ScoreBreakdown, error)
	RecomputeWithValue(dealID string) (*domain.ScoreBreakdown, error)
	Breakdown(dealID string) (*domain.ScoreBreakdown, error)
	RecomputeAll() (*domain.RecomputeReport, error)
}

type Service struct {
	dealRepository        repository.DealRepository
	accountRepository     repository.AccountRepository
	contactRepository     repository.ContactRepository
	interactionRepository repository.InteractionRepository
	now                   func() time.Time
}

func NewService(
	dealRepository repository.DealRepository,
	accountRepository repository.AccountRepository,
	contactRepository repository.ContactRepository,
	interactionRepository repository.InteractionRepository,
) ScoringService {
	return &Service{
		dealRepository:        dealRepository,
		accountRepository:     accountRepository,
		contactRepository:     contactRepository,
		interactionRepository: interactionRepository,
		now:                   time.Now,
	}
}

// Recompute calcula e grava o score de um deal. A gravação passa pelo
// caminho dedicado de campos calculados, que não dispara novo recálculo
// nem gera evento de timeline.
func (s *Service) Recompute(dealID string) (*domain.ScoreBreakdown, error) {
	deal, err := s.dealRepository.GetDealByID(dealID, domain.UnrestrictedScope)
	if err != nil {
		return nil, NewScoringError(ErrFetchDeal, err)
	}
	if deal == nil {
		return nil, ErrDealNotFound
	}

	breakdown, err := s.compute(deal)
	if err != nil {
		return nil, err
	}

	if err := s.dealRepository.ApplyScore(deal.ID, breakdown.Total, breakdown.ComputedAt); err != nil {
		return nil, NewScoringError(ErrApplyScore, err)
	}

	return breakdown, nil
}

// RecomputeWithValue refaz também o rollup de valor a partir dos itens
// de linha. É o caminho chamado quando um DealProduct muda.
func (s *Service) RecomputeWithValue(dealID string) (*domain.ScoreBreakdown, error) {
	deal, err := s.dealRepository.GetDealByID(dealID, domain.UnrestrictedScope)
	if err != nil {
		return nil, NewScoringError(ErrFetchDeal, err)
	}
	if deal == nil {
		return nil, ErrDealNotFound
	}

	value, err := s.dealRepository.SumLineItemValue(dealID)
	if err != nil {
		return nil, NewScoringError(ErrSumValue, err)
	}

	// O valor entra no fator de faixa antes da gravação
	deal.Value = value

	breakdown, err := s.compute(deal)
	if err != nil {
		return nil, err
	}

	if err := s.dealRepository.ApplyScoreAndValue(deal.ID, breakdown.Total, value, breakdown.ComputedAt); err != nil {
		return nil, NewScoringError(ErrApplyScore, err)
	}

	return breakdown, nil
}

// Breakdown calcula sem gravar, para inspeção
func (s *Service) Breakdown(dealID string) (*domain.ScoreBreakdown, error) {
	deal, err := s.dealRepository.GetDealByID(dealID, domain.UnrestrictedScope)
	if err != nil {
		return nil, NewScoringError(ErrFetchDeal, err)
	}
	if deal == nil {
		return nil, ErrDealNotFound
	}

	return s.compute(deal)
}

// RecomputeAll é a varredura sequencial de reparo de consistência. Pode
// ser repetida à vontade: sem mudança nos dados, o resultado é idêntico.
func (s *Service) RecomputeAll() (*domain.RecomputeReport, error) {
	startedAt := s.now()

	deals, err := s.dealRepository.ListAllDeals()
	if err != nil {
		return nil, NewScoringError(ErrFetchDeal, err)
	}

	report := &domain.RecomputeReport{
		TotalDeals: len(deals),
		StartedAt:  startedAt,
	}

	type scored struct {
		deal  *domain.Deal
		score int
	}
	results := make([]scored, 0, len(deals))

	for _, deal := range deals {
		report.Before.Add(deal.ScoreCategory())

		breakdown, err := s.compute(deal)
		if err != nil {
			logrus.WithFields(logrus.Fields{
				"deal_id": deal.ID,
				"error":   err,
			}).Error("scoring: recompute failed, skipping deal")
			report.After.Add(deal.ScoreCategory())
			continue
		}

		if err := s.dealRepository.ApplyScore(deal.ID, breakdown.Total, breakdown.ComputedAt); err != nil {
			logrus.WithFields(logrus.Fields{
				"deal_id": deal.ID,
				"error":   err,
			}).Error("scoring: apply score failed, skipping deal")
			report.After.Add(deal.ScoreCategory())
			continue
		}

		report.Updated++
		report.After.Add(domain.CategoryForScore(breakdown.Total))
		results = append(results, scored{deal: deal, score: breakdown.Total})
	}

	sort.SliceStable(results, func(i, j int) bool {
		return results[i].score > results[j].score
	})

	for i, r := range results {
		if i >= topLeadsLimit {
			break
		}

		accountName := ""
		account, err := s.accountRepository.GetAccountByID(r.deal.AccountID, domain.UnrestrictedScope)
		if err == nil && account != nil {
			accountName = account.Name
		}

		report.TopLeads = append(report.TopLeads, domain.TopLead{
			DealID:      r.deal.ID,
			Name:        r.deal.Name,
			AccountName: accountName,
			Score:       r.score,
		})
	}

	report.FinishedAt = s.now()

	logrus.WithFields(logrus.Fields{
		"total":   report.TotalDeals,
		"updated": report.Updated,
	}).Info("scoring: full recompute finished")

	return report, nil
}

// compute monta as entradas e delega para a função pura. Dado
// relacionado ausente contribui zero, nunca derruba o cálculo.
func (s *Service) compute(deal *domain.Deal) (*domain.ScoreBreakdown, error) {
	now := s.now()

	account, err := s.accountRepository.GetAccountByID(deal.AccountID, domain.UnrestrictedScope)
	if err != nil {
		logrus.WithFields(logrus.Fields{
			"deal_id": deal.ID,
			"error":   err,
		}).Warn("scoring: account lookup failed, scoring without it")
		account = nil
	}

	var contact *domain.Contact
	if deal.ContactID != nil {
		contact, err = s.contactRepository.GetContactByID(*deal.ContactID, domain.UnrestrictedScope)
		if err != nil {
			logrus.WithFields(logrus.Fields{
				"deal_id": deal.ID,
				"error":   err,
			}).Warn("scoring: contact lookup failed, scoring without it")
			contact = nil
		}
	}

	var latest *time.Time
	latestInteraction, err := s.interactionRepository.GetLatestByDeal(deal.ID)
	if err != nil {
		return nil, NewScoringError(ErrFetchInteractions, err)
	}
	if latestInteraction != nil {
		at := latestInteraction.ScheduledAt
		latest = &at
	}

	countIn30d, err := s.interactionRepository.CountByDealSince(deal.ID, now.AddDate(0, 0, -30))
	if err != nil {
		return nil, NewScoringError(ErrFetchInteractions, err)
	}

	breakdown := ComputeScore(ScoreInputs{
		Deal:              deal,
		Account:           account,
		Contact:           contact,
		LatestInteraction: latest,
		InteractionsIn30d: countIn30d,
		Now:               now,
	})

	return &breakdown, nil
}
