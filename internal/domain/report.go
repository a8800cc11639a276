package domain

import "time"

// DashboardReport reúne os KPIs principais do CRM, sempre calculados
// sobre o conjunto de deals visível para o usuário
type DashboardReport struct {
	GeneratedAt   time.Time           `json:"generated_at"`
	TotalDeals    int                 `json:"total_deals"`
	TotalAccounts int                 `json:"total_accounts"`
	TotalContacts int                 `json:"total_contacts"`
	PipelineValue float64             `json:"pipeline_value"`
	WinRate       float64             `json:"win_rate"`
	WonDeals      StageSummary        `json:"won_deals"`
	LostDeals     StageSummary        `json:"lost_deals"`
	Tasks         TaskStats           `json:"tasks"`
	Interactions  []TypeCount         `json:"interactions_by_type"`
	DealsByStage  []StageMetrics      `json:"deals_by_stage"`
	TopAccounts   []AccountValue      `json:"top_accounts"`
	LeadScores    CategoryHistogram   `json:"lead_scores"`
	Recent        []TimelineEvent     `json:"recent_activity"`
}

type StageSummary struct {
	Count int     `json:"count"`
	Value float64 `json:"value"`
}

type TaskStats struct {
	Pending   int `json:"pending"`
	Completed int `json:"completed"`
	Overdue   int `json:"overdue"`
}

type TypeCount struct {
	Type  string `json:"type"`
	Count int    `json:"count"`
}

type StageMetrics struct {
	Stage      DealStage `json:"stage"`
	Count      int       `json:"count"`
	TotalValue float64   `json:"total_value"`
}

type AccountValue struct {
	AccountID   string  `json:"account_id"`
	AccountName string  `json:"account_name"`
	TotalValue  float64 `json:"total_value"`
}

// SalesReport resume as vendas fechadas em um período
type SalesReport struct {
	PeriodDays   int            `json:"period_days"`
	From         time.Time      `json:"from"`
	To           time.Time      `json:"to"`
	WonCount     int            `json:"won_count"`
	WonValue     float64        `json:"won_value"`
	LostCount    int            `json:"lost_count"`
	LostValue    float64        `json:"lost_value"`
	WinRate      float64        `json:"win_rate"`
	AverageValue float64        `json:"average_value"`
	BySalesRep   []SalesRepLine `json:"by_sales_rep"`
}

type SalesRepLine struct {
	UserID   int     `json:"user_id"`
	UserName string  `json:"user_name"`
	WonCount int     `json:"won_count"`
	WonValue float64 `json:"won_value"`
}

// PipelineReport é o forecast ponderado por probabilidade de etapa
type PipelineReport struct {
	GeneratedAt   time.Time       `json:"generated_at"`
	OpenDeals     int             `json:"open_deals"`
	PipelineValue float64         `json:"pipeline_value"`
	WeightedValue float64         `json:"weighted_value"`
	Stages        []ForecastStage `json:"stages"`
}

type ForecastStage struct {
	Stage         DealStage `json:"stage"`
	Count         int       `json:"count"`
	TotalValue    float64   `json:"total_value"`
	Probability   float64   `json:"probability"`
	WeightedValue float64   `json:"weighted_value"`
}
