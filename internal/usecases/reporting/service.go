package reporting

import (
	"errors"
	"fmt"
	"time"

	"github.com/sirupsen/logrus"

	"github.com/esteban-lambda/crm-api/infrastructure/repository"
	"github.com/esteban-lambda/crm-api/internal/domain"
	"github.com/esteban-lambda/crm-api/internal/usecases/authorizing"
)

const (
	topAccountsLimit  = 5
	recentEventsLimit = 10
	defaultPeriodDays = 30
)

var ErrFetchReport = errors.New("error building report")

// ReportService monta os relatórios gerenciais. Todo agregado sobre
// deals respeita o escopo de leitura do chamador.
type ReportService interface {
	Dashboard(grant *domain.Grant) (*domain.DashboardReport, error)
	Sales(grant *domain.Grant, periodDays int) (*domain.SalesReport, error)
	Pipeline(grant *domain.Grant) (*domain.PipelineReport, error)
}

type Service struct {
	reportRepository     repository.ReportRepository
	dealRepository       repository.DealRepository
	accountRepository    repository.AccountRepository
	contactRepository    repository.ContactRepository
	taskRepository       repository.TaskRepository
	timelineRepository   repository.TimelineRepository
	authorizationService authorizing.AuthorizationService
	now                  func() time.Time
}

func NewService(
	reportRepository repository.ReportRepository,
	dealRepository repository.DealRepository,
	accountRepository repository.AccountRepository,
	contactRepository repository.ContactRepository,
	taskRepository repository.TaskRepository,
	timelineRepository repository.TimelineRepository,
	authorizationService authorizing.AuthorizationService,
) ReportService {
	return &Service{
		reportRepository:     reportRepository,
		dealRepository:       dealRepository,
		accountRepository:    accountRepository,
		contactRepository:    contactRepository,
		taskRepository:       taskRepository,
		timelineRepository:   timelineRepository,
		authorizationService: authorizationService,
		now:                  time.Now,
	}
}

func (s *Service) Dashboard(grant *domain.Grant) (*domain.DashboardReport, error) {
	dealScope, err := s.authorizationService.ScopeFor(grant, domain.KindDeal)
	if err != nil {
		return nil, err
	}
	accountScope, err := s.authorizationService.ScopeFor(grant, domain.KindAccount)
	if err != nil {
		return nil, err
	}
	contactScope, err := s.authorizationService.ScopeFor(grant, domain.KindContact)
	if err != nil {
		return nil, err
	}
	interactionScope, err := s.authorizationService.ScopeFor(grant, domain.KindInteraction)
	if err != nil {
		return nil, err
	}
	taskScope, err := s.authorizationService.ScopeFor(grant, domain.KindTask)
	if err != nil {
		return nil, err
	}

	report := &domain.DashboardReport{GeneratedAt: s.now()}

	deals, err := s.dealRepository.ListDeals(dealScope)
	if err != nil {
		return nil, wrap(err)
	}
	report.TotalDeals = len(deals)
	for _, deal := range deals {
		report.LeadScores.Add(deal.ScoreCategory())
	}

	report.TotalAccounts, err = s.accountRepository.CountAccounts(accountScope)
	if err != nil {
		return nil, wrap(err)
	}

	report.TotalContacts, err = s.contactRepository.CountContacts(contactScope)
	if err != nil {
		return nil, wrap(err)
	}

	report.PipelineValue, err = s.reportRepository.SumOpenPipelineValue(dealScope)
	if err != nil {
		return nil, wrap(err)
	}

	report.WonDeals, err = s.reportRepository.StageSummarySince(dealScope, domain.DealStageClosedWon, nil)
	if err != nil {
		return nil, wrap(err)
	}

	report.LostDeals, err = s.reportRepository.StageSummarySince(dealScope, domain.DealStageClosedLost, nil)
	if err != nil {
		return nil, wrap(err)
	}

	report.WinRate = winRate(report.WonDeals.Count, report.LostDeals.Count)

	report.DealsByStage, err = s.reportRepository.DealStageMetrics(dealScope)
	if err != nil {
		return nil, wrap(err)
	}

	report.TopAccounts, err = s.reportRepository.TopAccountsByValue(dealScope, topAccountsLimit)
	if err != nil {
		return nil, wrap(err)
	}

	report.Interactions, err = s.reportRepository.CountInteractionsByType(interactionScope)
	if err != nil {
		return nil, wrap(err)
	}

	report.Tasks, err = s.taskStats(taskScope)
	if err != nil {
		return nil, wrap(err)
	}

	events, err := s.timelineRepository.ListEvents(recentEventsLimit)
	if err != nil {
		logrus.WithField("error", err).Warn("reporting: failed to fetch recent activity")
	} else {
		for _, event := range events {
			report.Recent = append(report.Recent, *event)
		}
	}

	return report, nil
}

func (s *Service) Sales(grant *domain.Grant, periodDays int) (*domain.SalesReport, error) {
	if periodDays <= 0 {
		periodDays = defaultPeriodDays
	}

	dealScope, err := s.authorizationService.ScopeFor(grant, domain.KindDeal)
	if err != nil {
		return nil, err
	}

	to := s.now()
	from := to.AddDate(0, 0, -periodDays)

	report := &domain.SalesReport{
		PeriodDays: periodDays,
		From:       from,
		To:         to,
	}

	won, err := s.reportRepository.StageSummarySince(dealScope, domain.DealStageClosedWon, &from)
	if err != nil {
		return nil, wrap(err)
	}
	report.WonCount = won.Count
	report.WonValue = won.Value

	lost, err := s.reportRepository.StageSummarySince(dealScope, domain.DealStageClosedLost, &from)
	if err != nil {
		return nil, wrap(err)
	}
	report.LostCount = lost.Count
	report.LostValue = lost.Value

	report.WinRate = winRate(report.WonCount, report.LostCount)
	if report.WonCount > 0 {
		report.AverageValue = report.WonValue / float64(report.WonCount)
	}

	report.BySalesRep, err = s.reportRepository.WonDealsByRep(dealScope, from, to)
	if err != nil {
		return nil, wrap(err)
	}

	return report, nil
}

// Pipeline é o forecast ponderado pela probabilidade de cada etapa
func (s *Service) Pipeline(grant *domain.Grant) (*domain.PipelineReport, error) {
	dealScope, err := s.authorizationService.ScopeFor(grant, domain.KindDeal)
	if err != nil {
		return nil, err
	}

	metrics, err := s.reportRepository.DealStageMetrics(dealScope)
	if err != nil {
		return nil, wrap(err)
	}

	report := &domain.PipelineReport{GeneratedAt: s.now()}

	for _, m := range metrics {
		if m.Stage == domain.DealStageClosedWon || m.Stage == domain.DealStageClosedLost {
			continue
		}

		probability := domain.StageProbabilities[m.Stage]
		weighted := m.TotalValue * probability

		report.OpenDeals += m.Count
		report.PipelineValue += m.TotalValue
		report.WeightedValue += weighted
		report.Stages = append(report.Stages, domain.ForecastStage{
			Stage:         m.Stage,
			Count:         m.Count,
			TotalValue:    m.TotalValue,
			Probability:   probability,
			WeightedValue: weighted,
		})
	}

	return report, nil
}

func (s *Service) taskStats(scope domain.Scope) (domain.TaskStats, error) {
	counts, err := s.taskRepository.CountTasksByStatus(scope)
	if err != nil {
		return domain.TaskStats{}, err
	}

	overdue, err := s.taskRepository.ListOverdueTasks(scope, s.now())
	if err != nil {
		return domain.TaskStats{}, err
	}

	return domain.TaskStats{
		Pending:   counts[domain.TaskStatusPending] + counts[domain.TaskStatusInProgress],
		Completed: counts[domain.TaskStatusCompleted],
		Overdue:   len(overdue),
	}, nil
}

func winRate(won, lost int) float64 {
	closed := won + lost
	if closed == 0 {
		return 0
	}
	return float64(won) / float64(closed) * 100
}

func wrap(cause error) error {
	return fmt.Errorf("%w: %v", ErrFetchReport, cause)
}
