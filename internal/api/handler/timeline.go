package handler

import (
	"errors"
	"net/http"
	"strconv"

	"github.com/julienschmidt/httprouter"
	"github.com/sirupsen/logrus"
	"github.com/esteban-lambda/crm-api/internal/usecases/authorizing"
	"github.com/esteban-lambda/crm-api/internal/usecases/timeline"
	"github.com/esteban-lambda/crm-api/pkg/apiErrors"
)

func TimelineRecent(service timeline.TimelineService, authorizationService authorizing.AuthorizationService) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		grant, ok := resolveGrant(w, r, authorizationService)
		if !ok {
			return
		}

		events, err := service.RecentActivity(grant, timelineLimit(r))
		if err != nil {
			logrus.Error("Erro ao listar atividade recente:", err)
			writeTimelineError(w, err)
			return
		}

		writeJSON(w, events)
	})
}

func TimelineByDeal(service timeline.TimelineService, authorizationService authorizing.AuthorizationService) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		grant, ok := resolveGrant(w, r, authorizationService)
		if !ok {
			return
		}

		dealID := httprouter.ParamsFromContext(r.Context()).ByName("id")

		events, err := service.DealHistory(grant, dealID, timelineLimit(r))
		if err != nil {
			logrus.Error("Erro ao listar histórico do deal:", err)
			writeTimelineError(w, err)
			return
		}

		writeJSON(w, events)
	})
}

func TimelineByAccount(service timeline.TimelineService, authorizationService authorizing.AuthorizationService) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		grant, ok := resolveGrant(w, r, authorizationService)
		if !ok {
			return
		}

		accountID := httprouter.ParamsFromContext(r.Context()).ByName("id")

		events, err := service.AccountHistory(grant, accountID, timelineLimit(r))
		if err != nil {
			logrus.Error("Erro ao listar histórico da conta:", err)
			writeTimelineError(w, err)
			return
		}

		writeJSON(w, events)
	})
}

// timelineLimit lê o parâmetro ?limit, deixando o serviço aplicar o padrão
// quando ausente ou inválido
func timelineLimit(r *http.Request) int {
	raw := r.URL.Query().Get("limit")
	if raw == "" {
		return 0
	}

	limit, err := strconv.Atoi(raw)
	if err != nil || limit < 0 {
		return 0
	}

	return limit
}

func writeTimelineError(w http.ResponseWriter, err error) {
	switch {
	case errors.Is(err, timeline.ErrDealNotFound):
		apiErrors.WriteError(w, apiErrors.ErrRecordNotFound, "Deal não encontrado", nil)
	case errors.Is(err, timeline.ErrAccountNotFound):
		apiErrors.WriteError(w, apiErrors.ErrRecordNotFound, "Conta não encontrada", nil)
	case errors.Is(err, timeline.ErrFetchEvents):
		apiErrors.WriteError(w, apiErrors.ErrDatabaseOperation, "Erro ao acessar linha do tempo no banco de dados", nil)
	default:
		apiErrors.WriteError(w, apiErrors.ErrInternalServer, "Erro ao processar linha do tempo", nil)
	}
}
