package domain

import "time"

// ScoreBreakdown detalha os componentes do lead score de um deal
type ScoreBreakdown struct {
	DealID      string       `json:"deal_id"`
	Fit         int          `json:"fit"`
	Engagement  int          `json:"engagement"`
	Degradation int          `json:"degradation"`
	Total       int          `json:"total"`
	Category    LeadCategory `json:"category"`
	ComputedAt  time.Time    `json:"computed_at"`
}

// CategoryHistogram conta deals por categoria de lead
type CategoryHistogram struct {
	Hot    int `json:"hot"`
	Warm   int `json:"warm"`
	Cold   int `json:"cold"`
	Frozen int `json:"frozen"`
}

func (h *CategoryHistogram) Add(c LeadCategory) {
	switch c {
	case LeadCategoryHot:
		h.Hot++
	case LeadCategoryWarm:
		h.Warm++
	case LeadCategoryCold:
		h.Cold++
	default:
		h.Frozen++
	}
}

// TopLead é uma entrada do resumo de melhores leads do recálculo em lote
type TopLead struct {
	DealID      string `json:"deal_id"`
	Name        string `json:"name"`
	AccountName string `json:"account_name"`
	Score       int    `json:"score"`
}

// RecomputeReport é o resultado de uma varredura completa de recálculo
type RecomputeReport struct {
	TotalDeals int               `json:"total_deals"`
	Updated    int               `json:"updated"`
	Before     CategoryHistogram `json:"before"`
	After      CategoryHistogram `json:"after"`
	TopLeads   []TopLead         `json:"top_leads"`
	StartedAt  time.Time         `json:"started_at"`
	FinishedAt time.Time         `json:"finished_at"`
}
