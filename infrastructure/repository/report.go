package repository

import (
	"time"

	"github.com/Masterminds/squirrel"
	"github.com/esteban-lambda/crm-api/infrastructure/database/postgres"
	"github.com/esteban-lambda/crm-api/internal/domain"
	_ "github.com/lib/pq"
)

// ReportRepository concentra os agregados usados pelos relatórios.
// Todas as consultas sobre deals recebem escopo para que os números
// reflitam apenas o que o usuário pode ver.
type ReportRepository interface {
	DealStageMetrics(scope domain.Scope) ([]domain.StageMetrics, error)
	StageSummarySince(scope domain.Scope, stage domain.DealStage, since *time.Time) (domain.StageSummary, error)
	SumOpenPipelineValue(scope domain.Scope) (float64, error)
	TopAccountsByValue(scope domain.Scope, limit int) ([]domain.AccountValue, error)
	CountInteractionsByType(scope domain.Scope) ([]domain.TypeCount, error)
	WonDealsByRep(scope domain.Scope, from, to time.Time) ([]domain.SalesRepLine, error)
}

type reportRepository struct {
	conn *postgres.Connection
}

func NewReportRepository(conn *postgres.Connection) ReportRepository {
	return &reportRepository{
		conn: conn,
	}
}

var openStages = []domain.DealStage{
	domain.DealStageProspecting,
	domain.DealStageNegotiation,
}

func (r *reportRepository) DealStageMetrics(scope domain.Scope) ([]domain.StageMetrics, error) {
	queryBuilder := squirrel.
		Select("stage", "COUNT(*)", "COALESCE(SUM(value), 0)").
		From(dealsTable).
		GroupBy("stage").
		PlaceholderFormat(squirrel.Dollar)

	queryBuilder = scopeByAssignee(queryBuilder, scope, "assigned_to", "")

	metricsSQL, metricsArgs, err := queryBuilder.ToSql()
	if err != nil {
		return nil, err
	}

	rows, err := r.conn.Query(metricsSQL, metricsArgs...)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var metrics []domain.StageMetrics
	for rows.Next() {
		var m domain.StageMetrics
		if err := rows.Scan(&m.Stage, &m.Count, &m.TotalValue); err != nil {
			return nil, err
		}
		metrics = append(metrics, m)
	}

	if err := rows.Err(); err != nil {
		return nil, err
	}

	return metrics, nil
}

// StageSummarySince conta e soma deals de uma etapa, opcionalmente a
// partir de uma data. A data de atualização serve de data de fechamento
// para deals ganhos e perdidos.
func (r *reportRepository) StageSummarySince(scope domain.Scope, stage domain.DealStage, since *time.Time) (domain.StageSummary, error) {
	queryBuilder := squirrel.
		Select("COUNT(*)", "COALESCE(SUM(value), 0)").
		From(dealsTable).
		Where(squirrel.Eq{"stage": stage}).
		PlaceholderFormat(squirrel.Dollar)

	if since != nil {
		queryBuilder = queryBuilder.Where(squirrel.GtOrEq{"updated_at": *since})
	}

	queryBuilder = scopeByAssignee(queryBuilder, scope, "assigned_to", "")

	summarySQL, summaryArgs, err := queryBuilder.ToSql()
	if err != nil {
		return domain.StageSummary{}, err
	}

	var summary domain.StageSummary
	err = r.conn.QueryRow(summarySQL, summaryArgs...).Scan(&summary.Count, &summary.Value)
	if err != nil {
		return domain.StageSummary{}, err
	}

	return summary, nil
}

func (r *reportRepository) SumOpenPipelineValue(scope domain.Scope) (float64, error) {
	queryBuilder := squirrel.
		Select("COALESCE(SUM(value), 0)").
		From(dealsTable).
		Where(squirrel.Eq{"stage": openStages}).
		PlaceholderFormat(squirrel.Dollar)

	queryBuilder = scopeByAssignee(queryBuilder, scope, "assigned_to", "")

	pipelineSQL, pipelineArgs, err := queryBuilder.ToSql()
	if err != nil {
		return 0, err
	}

	var total float64
	if err := r.conn.QueryRow(pipelineSQL, pipelineArgs...).Scan(&total); err != nil {
		return 0, err
	}

	return total, nil
}

func (r *reportRepository) TopAccountsByValue(scope domain.Scope, limit int) ([]domain.AccountValue, error) {
	queryBuilder := squirrel.
		Select("d.account_id", "a.name", "COALESCE(SUM(d.value), 0) AS total_value").
		From(dealsTable + " d").
		Join(accountsTable + " a ON a.id = d.account_id").
		GroupBy("d.account_id", "a.name").
		OrderBy("total_value DESC").
		Limit(uint64(limit)).
		PlaceholderFormat(squirrel.Dollar)

	queryBuilder = scopeByAssignee(queryBuilder, scope, "d.assigned_to", "")

	topSQL, topArgs, err := queryBuilder.ToSql()
	if err != nil {
		return nil, err
	}

	rows, err := r.conn.Query(topSQL, topArgs...)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var accounts []domain.AccountValue
	for rows.Next() {
		var av domain.AccountValue
		if err := rows.Scan(&av.AccountID, &av.AccountName, &av.TotalValue); err != nil {
			return nil, err
		}
		accounts = append(accounts, av)
	}

	if err := rows.Err(); err != nil {
		return nil, err
	}

	return accounts, nil
}

func (r *reportRepository) CountInteractionsByType(scope domain.Scope) ([]domain.TypeCount, error) {
	queryBuilder := squirrel.
		Select("interaction_type", "COUNT(*)").
		From(interactionsTable).
		GroupBy("interaction_type").
		OrderBy("COUNT(*) DESC").
		PlaceholderFormat(squirrel.Dollar)

	queryBuilder = scopeByAssignee(queryBuilder, scope, "assigned_to", "created_by")

	countSQL, countArgs, err := queryBuilder.ToSql()
	if err != nil {
		return nil, err
	}

	rows, err := r.conn.Query(countSQL, countArgs...)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var counts []domain.TypeCount
	for rows.Next() {
		var tc domain.TypeCount
		if err := rows.Scan(&tc.Type, &tc.Count); err != nil {
			return nil, err
		}
		counts = append(counts, tc)
	}

	if err := rows.Err(); err != nil {
		return nil, err
	}

	return counts, nil
}

func (r *reportRepository) WonDealsByRep(scope domain.Scope, from, to time.Time) ([]domain.SalesRepLine, error) {
	queryBuilder := squirrel.
		Select("d.assigned_to", "u.name", "COUNT(*)", "COALESCE(SUM(d.value), 0) AS won_value").
		From(dealsTable + " d").
		Join("users u ON u.id = d.assigned_to").
		Where(squirrel.Eq{"d.stage": domain.DealStageClosedWon}).
		Where(squirrel.GtOrEq{"d.updated_at": from}).
		Where(squirrel.Lt{"d.updated_at": to}).
		GroupBy("d.assigned_to", "u.name").
		OrderBy("won_value DESC").
		PlaceholderFormat(squirrel.Dollar)

	queryBuilder = scopeByAssignee(queryBuilder, scope, "d.assigned_to", "")

	repSQL, repArgs, err := queryBuilder.ToSql()
	if err != nil {
		return nil, err
	}

	rows, err := r.conn.Query(repSQL, repArgs...)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var lines []domain.SalesRepLine
	for rows.Next() {
		var line domain.SalesRepLine
		if err := rows.Scan(&line.UserID, &line.UserName, &line.WonCount, &line.WonValue); err != nil {
			return nil, err
		}
		lines = append(lines, line)
	}

	if err := rows.Err(); err != nil {
		return nil, err
	}

	return lines, nil
}
