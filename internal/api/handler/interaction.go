package handler

import (
	"encoding/json"
	"errors"
	"net/http"

	"github.com/julienschmidt/httprouter"
	"github.com/sirupsen/logrus"
	"github.com/esteban-lambda/crm-api/internal/domain"
	"github.com/esteban-lambda/crm-api/internal/usecases/authorizing"
	"github.com/esteban-lambda/crm-api/internal/usecases/interacting"
	"github.com/esteban-lambda/crm-api/pkg/apiErrors"
)

func InteractionList(service interacting.InteractionService, authorizationService authorizing.AuthorizationService) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		grant, ok := resolveGrant(w, r, authorizationService)
		if !ok {
			return
		}

		interactions, err := service.ListInteractions(grant)
		if err != nil {
			logrus.Error("Erro ao listar interações:", err)
			writeInteractionError(w, err)
			return
		}

		writeJSON(w, interactions)
	})
}

func InteractionCreate(service interacting.InteractionService, authorizationService authorizing.AuthorizationService) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		grant, ok := resolveGrant(w, r, authorizationService)
		if !ok {
			return
		}

		var payload domain.Interaction
		if err := json.NewDecoder(r.Body).Decode(&payload); err != nil {
			apiErrors.WriteError(w, apiErrors.ErrInvalidRequest, "Corpo da requisição inválido", nil)
			return
		}

		created, err := service.CreateInteraction(grant, &payload)
		if err != nil {
			logrus.Error("Erro ao registrar interação:", err)
			writeInteractionError(w, err)
			return
		}

		w.WriteHeader(http.StatusCreated)
		writeJSON(w, created)
	})
}

func InteractionGet(service interacting.InteractionService, authorizationService authorizing.AuthorizationService) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		grant, ok := resolveGrant(w, r, authorizationService)
		if !ok {
			return
		}

		interactionID := httprouter.ParamsFromContext(r.Context()).ByName("id")

		found, err := service.GetInteraction(grant, interactionID)
		if err != nil {
			logrus.Error("Erro ao buscar interação:", err)
			writeInteractionError(w, err)
			return
		}

		writeJSON(w, found)
	})
}

func InteractionUpdate(service interacting.InteractionService, authorizationService authorizing.AuthorizationService) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		grant, ok := resolveGrant(w, r, authorizationService)
		if !ok {
			return
		}

		var payload domain.Interaction
		if err := json.NewDecoder(r.Body).Decode(&payload); err != nil {
			apiErrors.WriteError(w, apiErrors.ErrInvalidRequest, "Corpo da requisição inválido", nil)
			return
		}

		payload.ID = httprouter.ParamsFromContext(r.Context()).ByName("id")

		updated, err := service.UpdateInteraction(grant, &payload)
		if err != nil {
			logrus.Error("Erro ao atualizar interação:", err)
			writeInteractionError(w, err)
			return
		}

		writeJSON(w, updated)
	})
}

func InteractionDelete(service interacting.InteractionService, authorizationService authorizing.AuthorizationService) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		grant, ok := resolveGrant(w, r, authorizationService)
		if !ok {
			return
		}

		interactionID := httprouter.ParamsFromContext(r.Context()).ByName("id")

		if err := service.DeleteInteraction(grant, interactionID); err != nil {
			logrus.Error("Erro ao remover interação:", err)
			writeInteractionError(w, err)
			return
		}

		w.WriteHeader(http.StatusNoContent)
	})
}

// InteractionListByDeal lista o histórico de interações de um deal visível
func InteractionListByDeal(service interacting.InteractionService, authorizationService authorizing.AuthorizationService) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		grant, ok := resolveGrant(w, r, authorizationService)
		if !ok {
			return
		}

		dealID := httprouter.ParamsFromContext(r.Context()).ByName("id")

		interactions, err := service.ListByDeal(grant, dealID)
		if err != nil {
			logrus.Error("Erro ao listar interações do deal:", err)
			writeInteractionError(w, err)
			return
		}

		writeJSON(w, interactions)
	})
}

// NextContactSuggestion sugere a data do próximo contato com base na
// cadência histórica de interações concluídas do deal
func NextContactSuggestion(service interacting.InteractionService, authorizationService authorizing.AuthorizationService) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		grant, ok := resolveGrant(w, r, authorizationService)
		if !ok {
			return
		}

		dealID := httprouter.ParamsFromContext(r.Context()).ByName("id")

		suggestion, err := service.SuggestNextContact(grant, dealID)
		if err != nil {
			logrus.Error("Erro ao sugerir próximo contato:", err)
			writeInteractionError(w, err)
			return
		}

		writeJSON(w, suggestion)
	})
}

func writeInteractionError(w http.ResponseWriter, err error) {
	switch {
	case errors.Is(err, interacting.ErrInteractionNotFound):
		apiErrors.WriteError(w, apiErrors.ErrRecordNotFound, "Interação não encontrada", nil)
	case errors.Is(err, interacting.ErrDealNotFound):
		apiErrors.WriteError(w, apiErrors.ErrRecordNotFound, "Deal não encontrado", nil)
	case errors.Is(err, interacting.ErrInvalidInteraction):
		apiErrors.WriteError(w, apiErrors.ErrMissingRequiredData, "Assunto e conta da interação são obrigatórios", nil)
	case errors.Is(err, interacting.ErrPermissionDenied):
		apiErrors.WriteError(w, apiErrors.ErrPermissionDenied, "Registro fora do seu escopo de acesso", nil)
	case errors.Is(err, interacting.ErrDeleteForbidden):
		apiErrors.WriteError(w, apiErrors.ErrDeleteForbidden, "Seu papel não permite excluir este registro", nil)
	case errors.Is(err, interacting.ErrFetchInteraction), errors.Is(err, interacting.ErrSaveInteraction):
		apiErrors.WriteError(w, apiErrors.ErrDatabaseOperation, "Erro ao acessar interações no banco de dados", nil)
	default:
		apiErrors.WriteError(w, apiErrors.ErrInternalServer, "Erro ao processar interação", nil)
	}
}
