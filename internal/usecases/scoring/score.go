package scoring

import (
	"strings"
	"time"

	"github.com/esteban-lambda/crm-api/internal/domain"
)

// Indústrias de alto encaixe para o perfil de cliente ideal
var highFitIndustries = map[string]struct{}{
	"software":   {},
	"technology": {},
	"consulting": {},
	"saas":       {},
}

var executiveKeywords = []string{"ceo", "cto", "cfo", "director", "vp", "president", "founder"}

var managerKeywords = []string{"manager", "jefe", "head", "lead"}

const (
	fitCap         = 50
	engagementCap  = 50
	degradationCap = 30
)

// ScoreInputs reúne tudo que o cálculo precisa. Dados ausentes valem
// contribuição zero, nunca erro.
type ScoreInputs struct {
	Deal              *domain.Deal
	Account           *domain.Account
	Contact           *domain.Contact
	LatestInteraction *time.Time
	InteractionsIn30d int
	Now               time.Time
}

// ComputeScore é a função pura e total que produz o lead score. Cada
// recálculo parte do zero, sem atualização incremental.
func ComputeScore(in ScoreInputs) domain.ScoreBreakdown {
	fit := fitScore(in.Account, in.Deal, in.Contact)
	engagement := engagementScore(in.Deal, in.LatestInteraction, in.InteractionsIn30d, in.Now)
	degradation := degradationPenalty(in.Deal, in.LatestInteraction, in.Now)

	total := fit + engagement - degradation
	if total < 0 {
		total = 0
	}
	if total > 100 {
		total = 100
	}

	return domain.ScoreBreakdown{
		DealID:      in.Deal.ID,
		Fit:         fit,
		Engagement:  engagement,
		Degradation: degradation,
		Total:       total,
		Category:    domain.CategoryForScore(total),
		ComputedAt:  in.Now,
	}
}

// fitScore soma três fatores independentes: indústria, faixa de valor e
// senioridade do contato. O teto de 50 é invariante de segurança.
func fitScore(account *domain.Account, deal *domain.Deal, contact *domain.Contact) int {
	score := 0

	if account != nil && account.Industry != nil && *account.Industry != "" {
		if _, ok := highFitIndustries[strings.ToLower(*account.Industry)]; ok {
			score += 20
		} else {
			score += 10
		}
	}

	switch {
	case deal.Value >= 50000:
		score += 15
	case deal.Value >= 20000:
		score += 10
	case deal.Value >= 5000:
		score += 5
	}

	score += seniorityScore(contact)

	if score > fitCap {
		score = fitCap
	}

	return score
}

func seniorityScore(contact *domain.Contact) int {
	if contact == nil {
		return 0
	}

	if contact.JobTitle != nil {
		title := strings.ToLower(*contact.JobTitle)
		for _, kw := range executiveKeywords {
			if strings.Contains(title, kw) {
				return 15
			}
		}
		for _, kw := range managerKeywords {
			if strings.Contains(title, kw) {
				return 10
			}
		}
	}

	// Ter um contato já vale alguma coisa
	return 5
}

func engagementScore(deal *domain.Deal, latest *time.Time, countIn30d int, now time.Time) int {
	score := 0

	if latest != nil {
		days := daysBetween(*latest, now)
		switch {
		case days <= 3:
			score += 25
		case days <= 7:
			score += 20
		case days <= 14:
			score += 15
		case days <= 30:
			score += 10
		case days <= 60:
			score += 5
		}
	}

	switch {
	case countIn30d >= 5:
		score += 10
	case countIn30d >= 3:
		score += 7
	case countIn30d >= 1:
		score += 4
	}

	score += velocityScore(deal, now)

	if score > engagementCap {
		score = engagementCap
	}

	return score
}

// velocityScore só se aplica às etapas abertas. Deal parado tempo demais
// na mesma etapa deixa de pontuar.
func velocityScore(deal *domain.Deal, now time.Time) int {
	days := daysBetween(deal.CreatedAt, now)

	switch deal.Stage {
	case domain.DealStageProspecting:
		switch {
		case days <= 14:
			return 15
		case days <= 30:
			return 10
		case days <= 60:
			return 5
		}
	case domain.DealStageNegotiation:
		switch {
		case days <= 30:
			return 15
		case days <= 60:
			return 10
		case days <= 90:
			return 5
		}
	}

	return 0
}

// degradationPenalty penaliza semanas de inatividade, com teto de 30.
// Sem interação alguma, conta a partir da criação do deal com duas
// semanas de carência.
func degradationPenalty(deal *domain.Deal, latest *time.Time, now time.Time) int {
	var weeks int
	if latest != nil {
		weeks = daysBetween(*latest, now) / 7
	} else {
		weeks = daysBetween(deal.CreatedAt, now)/7 - 2
		if weeks < 0 {
			weeks = 0
		}
	}

	penalty := weeks * 5
	if penalty > degradationCap {
		penalty = degradationCap
	}

	return penalty
}

func daysBetween(from, to time.Time) int {
	if to.Before(from) {
		return 0
	}
	return int(to.Sub(from).Hours() / 24)
}
