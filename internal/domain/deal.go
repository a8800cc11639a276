package domain

import "time"

type DealStage string

const (
	DealStageProspecting DealStage = "prospecting"
	DealStageNegotiation DealStage = "negotiation"
	DealStageClosedWon   DealStage = "closed_won"
	DealStageClosedLost  DealStage = "closed_lost"
)

// Probabilidades de fechamento por etapa, usadas no forecasting
var StageProbabilities = map[DealStage]float64{
	DealStageProspecting: 0.10,
	DealStageNegotiation: 0.50,
	DealStageClosedWon:   1.00,
	DealStageClosedLost:  0.00,
}

type LeadCategory string

const (
	LeadCategoryHot    LeadCategory = "hot"
	LeadCategoryWarm   LeadCategory = "warm"
	LeadCategoryCold   LeadCategory = "cold"
	LeadCategoryFrozen LeadCategory = "frozen"
)

type Deal struct {
	ID                string     `json:"id"`
	Name              string     `json:"name"`
	AccountID         string     `json:"account_id"`
	ContactID         *string    `json:"contact_id"`
	Value             float64    `json:"value"`
	Stage             DealStage  `json:"stage"`
	ExpectedCloseDate *time.Time `json:"expected_close_date"`
	AssignedTo        *int       `json:"assigned_to"`

	// Campos calculados pelo motor de scoring. Nunca são gravados
	// diretamente por um usuário.
	LeadScore       int        `json:"lead_score"`
	LastScoreUpdate *time.Time `json:"last_score_update"`

	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

// ScoreCategory retorna a categoria do lead segundo a pontuação atual
func (d *Deal) ScoreCategory() LeadCategory {
	return CategoryForScore(d.LeadScore)
}

func CategoryForScore(score int) LeadCategory {
	switch {
	case score >= 80:
		return LeadCategoryHot
	case score >= 60:
		return LeadCategoryWarm
	case score >= 40:
		return LeadCategoryCold
	default:
		return LeadCategoryFrozen
	}
}

// Probability retorna a probabilidade de fechamento conforme a etapa atual
func (d *Deal) Probability() float64 {
	return StageProbabilities[d.Stage]
}

// WeightedValue é o valor ponderado pela probabilidade de fechamento
func (d *Deal) WeightedValue() float64 {
	return d.Value * d.Probability()
}

// DealProduct é o item de linha que relaciona um Deal com um Product,
// com quantidade, preço congelado no momento do negócio e desconto.
type DealProduct struct {
	ID              string  `json:"id"`
	DealID          string  `json:"deal_id"`
	ProductID       string  `json:"product_id"`
	Quantity        int     `json:"quantity"`
	UnitPrice       float64 `json:"unit_price"`
	DiscountPercent float64 `json:"discount_percent"`
}

func (dp *DealProduct) Subtotal() float64 {
	return float64(dp.Quantity) * dp.UnitPrice
}

func (dp *DealProduct) DiscountAmount() float64 {
	return dp.Subtotal() * (dp.DiscountPercent / 100)
}

// Total aplica o desconto sobre o subtotal. Atenção: o rollup do valor do
// Deal usa apenas o Subtotal. O desconto afeta só o total do item.
func (dp *DealProduct) Total() float64 {
	return dp.Subtotal() - dp.DiscountAmount()
}
