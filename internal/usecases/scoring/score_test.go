package scoring

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"

	"github.com/esteban-lambda/crm-api/internal/domain"
)

func strPtr(s string) *string {
	return &s
}

func TestComputeScore(t *testing.T) {
	// Data de referência fixa para os cálculos de recência
	now := time.Date(2024, 5, 20, 12, 0, 0, 0, time.UTC)

	daysAgo := func(d int) time.Time {
		return now.AddDate(0, 0, -d)
	}
	timePtr := func(t time.Time) *time.Time {
		return &t
	}

	tests := []struct {
		name     string
		inputs   ScoreInputs
		validate func(t *testing.T, b domain.ScoreBreakdown)
	}{
		{
			name: "Encaixe perfeito com engajamento recente - deve ficar quente",
			inputs: ScoreInputs{
				Deal: &domain.Deal{
					ID:        "DEAL01",
					Value:     60000,
					Stage:     domain.DealStageNegotiation,
					CreatedAt: daysAgo(10),
				},
				Account:           &domain.Account{ID: "ACC001", Industry: strPtr("Software")},
				Contact:           &domain.Contact{ID: "CON001", JobTitle: strPtr("VP of Sales")},
				LatestInteraction: timePtr(daysAgo(2)),
				InteractionsIn30d: 4,
				Now:               now,
			},
			validate: func(t *testing.T, b domain.ScoreBreakdown) {
				// Fit: indústria 20 + faixa de valor 15 + senioridade 15
				assert.Equal(t, 50, b.Fit)
				// Engajamento: recência 25 + frequência 7 + velocidade 15
				assert.Equal(t, 47, b.Engagement)
				assert.Equal(t, 0, b.Degradation)
				assert.Equal(t, 97, b.Total)
				assert.Equal(t, domain.LeadCategoryHot, b.Category)
			},
		},
		{
			name: "Três semanas sem contato - degradação anula o engajamento",
			inputs: ScoreInputs{
				Deal: &domain.Deal{
					ID:        "DEAL02",
					Value:     1000,
					Stage:     domain.DealStageProspecting,
					CreatedAt: daysAgo(40),
				},
				LatestInteraction: timePtr(daysAgo(21)),
				InteractionsIn30d: 0,
				Now:               now,
			},
			validate: func(t *testing.T, b domain.ScoreBreakdown) {
				assert.Equal(t, 0, b.Fit)
				// Recência 10 + velocidade 5
				assert.Equal(t, 15, b.Engagement)
				// 3 semanas paradas
				assert.Equal(t, 15, b.Degradation)
				assert.Equal(t, 0, b.Total)
				assert.Equal(t, domain.LeadCategoryFrozen, b.Category)
			},
		},
		{
			name: "Sem interação alguma - carência de duas semanas a partir da criação",
			inputs: ScoreInputs{
				Deal: &domain.Deal{
					ID:        "DEAL03",
					Value:     5000,
					Stage:     domain.DealStageProspecting,
					CreatedAt: daysAgo(35),
				},
				Account: &domain.Account{ID: "ACC002", Industry: strPtr("Retail")},
				Now:     now,
			},
			validate: func(t *testing.T, b domain.ScoreBreakdown) {
				// Indústria fora do perfil 10 + faixa de valor 5
				assert.Equal(t, 15, b.Fit)
				// Só velocidade: 35 dias em prospecting
				assert.Equal(t, 5, b.Engagement)
				// 5 semanas desde a criação menos 2 de carência
				assert.Equal(t, 15, b.Degradation)
				assert.Equal(t, 5, b.Total)
				assert.Equal(t, domain.LeadCategoryFrozen, b.Category)
			},
		},
		{
			name: "Deal abandonado - penalidade tem teto e total tem piso em zero",
			inputs: ScoreInputs{
				Deal: &domain.Deal{
					ID:        "DEAL04",
					Value:     0,
					Stage:     domain.DealStageProspecting,
					CreatedAt: daysAgo(100),
				},
				Now: now,
			},
			validate: func(t *testing.T, b domain.ScoreBreakdown) {
				assert.Equal(t, 0, b.Fit)
				assert.Equal(t, 0, b.Engagement)
				assert.Equal(t, 30, b.Degradation)
				assert.Equal(t, 0, b.Total)
				assert.Equal(t, domain.LeadCategoryFrozen, b.Category)
			},
		},
		{
			name: "Máximo dos dois componentes - total fecha em 100",
			inputs: ScoreInputs{
				Deal: &domain.Deal{
					ID:        "DEAL05",
					Value:     80000,
					Stage:     domain.DealStageNegotiation,
					CreatedAt: daysAgo(5),
				},
				Account:           &domain.Account{ID: "ACC003", Industry: strPtr("SaaS")},
				Contact:           &domain.Contact{ID: "CON002", JobTitle: strPtr("CEO")},
				LatestInteraction: timePtr(daysAgo(1)),
				InteractionsIn30d: 8,
				Now:               now,
			},
			validate: func(t *testing.T, b domain.ScoreBreakdown) {
				assert.Equal(t, 50, b.Fit)
				assert.Equal(t, 50, b.Engagement)
				assert.Equal(t, 0, b.Degradation)
				assert.Equal(t, 100, b.Total)
				assert.Equal(t, domain.LeadCategoryHot, b.Category)
			},
		},
		{
			name: "Cargo de gerência pontua menos que executivo",
			inputs: ScoreInputs{
				Deal: &domain.Deal{
					ID:        "DEAL06",
					Value:     25000,
					Stage:     domain.DealStageProspecting,
					CreatedAt: daysAgo(7),
				},
				Account:           &domain.Account{ID: "ACC004", Industry: strPtr("Consulting")},
				Contact:           &domain.Contact{ID: "CON003", JobTitle: strPtr("Sales Manager")},
				LatestInteraction: timePtr(daysAgo(6)),
				InteractionsIn30d: 2,
				Now:               now,
			},
			validate: func(t *testing.T, b domain.ScoreBreakdown) {
				// Indústria 20 + faixa de valor 10 + gerência 10
				assert.Equal(t, 40, b.Fit)
				// Recência 20 + frequência 4 + velocidade 15
				assert.Equal(t, 39, b.Engagement)
				assert.Equal(t, 0, b.Degradation)
				assert.Equal(t, 79, b.Total)
				assert.Equal(t, domain.LeadCategoryWarm, b.Category)
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			breakdown := ComputeScore(tt.inputs)
			tt.validate(t, breakdown)
		})
	}
}

func TestComputeScore_Idempotente(t *testing.T) {
	now := time.Date(2024, 5, 20, 12, 0, 0, 0, time.UTC)
	latest := now.AddDate(0, 0, -4)

	inputs := ScoreInputs{
		Deal: &domain.Deal{
			ID:        "DEAL01",
			Value:     30000,
			Stage:     domain.DealStageNegotiation,
			CreatedAt: now.AddDate(0, 0, -20),
		},
		Account:           &domain.Account{ID: "ACC001", Industry: strPtr("Technology")},
		Contact:           &domain.Contact{ID: "CON001", JobTitle: strPtr("CTO")},
		LatestInteraction: &latest,
		InteractionsIn30d: 3,
		Now:               now,
	}

	first := ComputeScore(inputs)
	second := ComputeScore(inputs)

	// Mesmas entradas, mesmo resultado: o cálculo parte sempre do zero
	assert.Equal(t, first, second)
}
