package handler

import (
	"errors"
	"net/http"

	"github.com/julienschmidt/httprouter"
	"github.com/sirupsen/logrus"
	"github.com/esteban-lambda/crm-api/internal/usecases/authorizing"
	"github.com/esteban-lambda/crm-api/internal/usecases/dealing"
	"github.com/esteban-lambda/crm-api/internal/usecases/scoring"
	"github.com/esteban-lambda/crm-api/pkg/apiErrors"
)

// DealScoreBreakdown devolve a decomposição do score de um deal. A
// visibilidade é validada buscando o deal no escopo do usuário antes de
// consultar o motor de score.
func DealScoreBreakdown(
	scoringService scoring.ScoringService,
	dealService dealing.DealService,
	authorizationService authorizing.AuthorizationService,
) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		grant, ok := resolveGrant(w, r, authorizationService)
		if !ok {
			return
		}

		dealID := httprouter.ParamsFromContext(r.Context()).ByName("id")

		if _, err := dealService.GetDeal(grant, dealID); err != nil {
			logrus.Error("Erro ao validar acesso ao deal:", err)
			writeDealError(w, err)
			return
		}

		breakdown, err := scoringService.Breakdown(dealID)
		if err != nil {
			logrus.Error("Erro ao decompor score do deal:", err)
			writeScoringError(w, err)
			return
		}

		writeJSON(w, breakdown)
	})
}

// DealScoreRecompute recalcula o score de um deal sob demanda
func DealScoreRecompute(
	scoringService scoring.ScoringService,
	dealService dealing.DealService,
	authorizationService authorizing.AuthorizationService,
) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		grant, ok := resolveGrant(w, r, authorizationService)
		if !ok {
			return
		}

		dealID := httprouter.ParamsFromContext(r.Context()).ByName("id")

		if _, err := dealService.GetDeal(grant, dealID); err != nil {
			logrus.Error("Erro ao validar acesso ao deal:", err)
			writeDealError(w, err)
			return
		}

		breakdown, err := scoringService.Recompute(dealID)
		if err != nil {
			logrus.Error("Erro ao recalcular score do deal:", err)
			writeScoringError(w, err)
			return
		}

		writeJSON(w, breakdown)
	})
}

func writeScoringError(w http.ResponseWriter, err error) {
	switch {
	case errors.Is(err, scoring.ErrDealNotFound):
		apiErrors.WriteError(w, apiErrors.ErrRecordNotFound, "Deal não encontrado", nil)
	case errors.Is(err, scoring.ErrFetchDeal), errors.Is(err, scoring.ErrFetchInteractions),
		errors.Is(err, scoring.ErrApplyScore):
		apiErrors.WriteError(w, apiErrors.ErrDatabaseOperation, "Erro ao acessar dados de score no banco", nil)
	default:
		apiErrors.WriteError(w, apiErrors.ErrInternalServer, "Erro ao calcular score", nil)
	}
}
