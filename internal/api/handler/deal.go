package handler

import (
	"encoding/json"
	"errors"
	"net/http"

	"github.com/julienschmidt/httprouter"
	"github.com/sirupsen/logrus"
	"github.com/esteban-lambda/crm-api/internal/domain"
	"github.com/esteban-lambda/crm-api/internal/usecases/authorizing"
	"github.com/esteban-lambda/crm-api/internal/usecases/dealing"
	"github.com/esteban-lambda/crm-api/pkg/apiErrors"
	"github.com/esteban-lambda/crm-api/pkg/utils"
)

var dealExportHeader = []string{"id", "nome", "conta", "valor", "estagio", "responsavel", "score", "categoria", "criado_em"}

func DealList(service dealing.DealService, authorizationService authorizing.AuthorizationService) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		grant, ok := resolveGrant(w, r, authorizationService)
		if !ok {
			return
		}

		deals, err := service.ListDeals(grant)
		if err != nil {
			logrus.Error("Erro ao listar deals:", err)
			writeDealError(w, err)
			return
		}

		writeJSON(w, deals)
	})
}

func DealCreate(service dealing.DealService, authorizationService authorizing.AuthorizationService) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		grant, ok := resolveGrant(w, r, authorizationService)
		if !ok {
			return
		}

		var payload domain.Deal
		if err := json.NewDecoder(r.Body).Decode(&payload); err != nil {
			apiErrors.WriteError(w, apiErrors.ErrInvalidRequest, "Corpo da requisição inválido", nil)
			return
		}

		created, err := service.CreateDeal(grant, &payload)
		if err != nil {
			logrus.Error("Erro ao criar deal:", err)
			writeDealError(w, err)
			return
		}

		w.WriteHeader(http.StatusCreated)
		writeJSON(w, created)
	})
}

func DealGet(service dealing.DealService, authorizationService authorizing.AuthorizationService) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		grant, ok := resolveGrant(w, r, authorizationService)
		if !ok {
			return
		}

		dealID := httprouter.ParamsFromContext(r.Context()).ByName("id")

		deal, err := service.GetDeal(grant, dealID)
		if err != nil {
			logrus.Error("Erro ao buscar deal:", err)
			writeDealError(w, err)
			return
		}

		writeJSON(w, deal)
	})
}

func DealUpdate(service dealing.DealService, authorizationService authorizing.AuthorizationService) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		grant, ok := resolveGrant(w, r, authorizationService)
		if !ok {
			return
		}

		var payload domain.Deal
		if err := json.NewDecoder(r.Body).Decode(&payload); err != nil {
			apiErrors.WriteError(w, apiErrors.ErrInvalidRequest, "Corpo da requisição inválido", nil)
			return
		}

		payload.ID = httprouter.ParamsFromContext(r.Context()).ByName("id")

		updated, err := service.UpdateDeal(grant, &payload)
		if err != nil {
			logrus.Error("Erro ao atualizar deal:", err)
			writeDealError(w, err)
			return
		}

		writeJSON(w, updated)
	})
}

func DealDelete(service dealing.DealService, authorizationService authorizing.AuthorizationService) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		grant, ok := resolveGrant(w, r, authorizationService)
		if !ok {
			return
		}

		dealID := httprouter.ParamsFromContext(r.Context()).ByName("id")

		if err := service.DeleteDeal(grant, dealID); err != nil {
			logrus.Error("Erro ao remover deal:", err)
			writeDealError(w, err)
			return
		}

		w.WriteHeader(http.StatusNoContent)
	})
}

func DealExport(service dealing.DealService, authorizationService authorizing.AuthorizationService) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		grant, ok := resolveGrant(w, r, authorizationService)
		if !ok {
			return
		}

		rows, err := service.ExportDeals(grant)
		if err != nil {
			logrus.Error("Erro ao exportar deals:", err)
			writeDealError(w, err)
			return
		}

		if err := utils.WriteCSV(w, "deals.csv", dealExportHeader, rows); err != nil {
			logrus.Error("Erro ao escrever CSV de deals:", err)
		}
	})
}

func DealLineItemList(service dealing.DealService, authorizationService authorizing.AuthorizationService) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		grant, ok := resolveGrant(w, r, authorizationService)
		if !ok {
			return
		}

		dealID := httprouter.ParamsFromContext(r.Context()).ByName("id")

		items, err := service.ListLineItems(grant, dealID)
		if err != nil {
			logrus.Error("Erro ao listar itens do deal:", err)
			writeDealError(w, err)
			return
		}

		writeJSON(w, items)
	})
}

func DealLineItemAdd(service dealing.DealService, authorizationService authorizing.AuthorizationService) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		grant, ok := resolveGrant(w, r, authorizationService)
		if !ok {
			return
		}

		var payload domain.DealProduct
		if err := json.NewDecoder(r.Body).Decode(&payload); err != nil {
			apiErrors.WriteError(w, apiErrors.ErrInvalidRequest, "Corpo da requisição inválido", nil)
			return
		}

		payload.DealID = httprouter.ParamsFromContext(r.Context()).ByName("id")

		created, err := service.AddLineItem(grant, &payload)
		if err != nil {
			logrus.Error("Erro ao adicionar item ao deal:", err)
			writeDealError(w, err)
			return
		}

		w.WriteHeader(http.StatusCreated)
		writeJSON(w, created)
	})
}

func DealLineItemUpdate(service dealing.DealService, authorizationService authorizing.AuthorizationService) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		grant, ok := resolveGrant(w, r, authorizationService)
		if !ok {
			return
		}

		var payload domain.DealProduct
		if err := json.NewDecoder(r.Body).Decode(&payload); err != nil {
			apiErrors.WriteError(w, apiErrors.ErrInvalidRequest, "Corpo da requisição inválido", nil)
			return
		}

		params := httprouter.ParamsFromContext(r.Context())
		payload.DealID = params.ByName("id")
		payload.ID = params.ByName("item_id")

		updated, err := service.UpdateLineItem(grant, &payload)
		if err != nil {
			logrus.Error("Erro ao atualizar item do deal:", err)
			writeDealError(w, err)
			return
		}

		writeJSON(w, updated)
	})
}

func DealLineItemRemove(service dealing.DealService, authorizationService authorizing.AuthorizationService) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		grant, ok := resolveGrant(w, r, authorizationService)
		if !ok {
			return
		}

		itemID := httprouter.ParamsFromContext(r.Context()).ByName("item_id")

		if err := service.RemoveLineItem(grant, itemID); err != nil {
			logrus.Error("Erro ao remover item do deal:", err)
			writeDealError(w, err)
			return
		}

		w.WriteHeader(http.StatusNoContent)
	})
}

func writeDealError(w http.ResponseWriter, err error) {
	switch {
	case errors.Is(err, dealing.ErrDealNotFound):
		apiErrors.WriteError(w, apiErrors.ErrRecordNotFound, "Deal não encontrado", nil)
	case errors.Is(err, dealing.ErrLineItemNotFound):
		apiErrors.WriteError(w, apiErrors.ErrRecordNotFound, "Item do deal não encontrado", nil)
	case errors.Is(err, dealing.ErrProductNotFound):
		apiErrors.WriteError(w, apiErrors.ErrRecordNotFound, "Produto informado não existe", nil)
	case errors.Is(err, dealing.ErrInvalidDeal):
		apiErrors.WriteError(w, apiErrors.ErrMissingRequiredData, "Nome e conta do deal são obrigatórios", nil)
	case errors.Is(err, dealing.ErrInvalidLineItem):
		apiErrors.WriteError(w, apiErrors.ErrInvalidRequest, "Quantidade do item deve ser positiva", nil)
	case errors.Is(err, dealing.ErrPermissionDenied):
		apiErrors.WriteError(w, apiErrors.ErrPermissionDenied, "Registro fora do seu escopo de acesso", nil)
	case errors.Is(err, dealing.ErrDeleteForbidden):
		apiErrors.WriteError(w, apiErrors.ErrDeleteForbidden, "Seu papel não permite excluir este registro", nil)
	case errors.Is(err, dealing.ErrExportForbidden):
		apiErrors.WriteError(w, apiErrors.ErrExportForbidden, "Exportação disponível apenas para administradores", nil)
	case errors.Is(err, dealing.ErrFetchDeal), errors.Is(err, dealing.ErrSaveDeal),
		errors.Is(err, dealing.ErrFetchLineItem), errors.Is(err, dealing.ErrSaveLineItem):
		apiErrors.WriteError(w, apiErrors.ErrDatabaseOperation, "Erro ao acessar deals no banco de dados", nil)
	default:
		apiErrors.WriteError(w, apiErrors.ErrInternalServer, "Erro ao processar deal", nil)
	}
}
