package handler

import (
	"encoding/json"
	"errors"
	"net/http"

	"github.com/julienschmidt/httprouter"
	"github.com/sirupsen/logrus"
	"github.com/esteban-lambda/crm-api/internal/domain"
	"github.com/esteban-lambda/crm-api/internal/usecases/account"
	"github.com/esteban-lambda/crm-api/internal/usecases/authorizing"
	"github.com/esteban-lambda/crm-api/pkg/apiErrors"
	"github.com/esteban-lambda/crm-api/pkg/utils"
)

var accountExportHeader = []string{"id", "nome", "website", "setor", "criado_em"}

func AccountList(service account.AccountService, authorizationService authorizing.AuthorizationService) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		grant, ok := resolveGrant(w, r, authorizationService)
		if !ok {
			return
		}

		accounts, err := service.ListAccounts(grant)
		if err != nil {
			logrus.Error("Erro ao listar contas:", err)
			writeAccountError(w, err)
			return
		}

		writeJSON(w, accounts)
	})
}

func AccountCreate(service account.AccountService, authorizationService authorizing.AuthorizationService) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		grant, ok := resolveGrant(w, r, authorizationService)
		if !ok {
			return
		}

		var payload domain.Account
		if err := json.NewDecoder(r.Body).Decode(&payload); err != nil {
			apiErrors.WriteError(w, apiErrors.ErrInvalidRequest, "Corpo da requisição inválido", nil)
			return
		}

		created, err := service.CreateAccount(grant, &payload)
		if err != nil {
			logrus.Error("Erro ao criar conta:", err)
			writeAccountError(w, err)
			return
		}

		w.WriteHeader(http.StatusCreated)
		writeJSON(w, created)
	})
}

func AccountGet(service account.AccountService, authorizationService authorizing.AuthorizationService) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		grant, ok := resolveGrant(w, r, authorizationService)
		if !ok {
			return
		}

		accountID := httprouter.ParamsFromContext(r.Context()).ByName("id")

		found, err := service.GetAccount(grant, accountID)
		if err != nil {
			logrus.Error("Erro ao buscar conta:", err)
			writeAccountError(w, err)
			return
		}

		writeJSON(w, found)
	})
}

func AccountUpdate(service account.AccountService, authorizationService authorizing.AuthorizationService) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		grant, ok := resolveGrant(w, r, authorizationService)
		if !ok {
			return
		}

		var payload domain.Account
		if err := json.NewDecoder(r.Body).Decode(&payload); err != nil {
			apiErrors.WriteError(w, apiErrors.ErrInvalidRequest, "Corpo da requisição inválido", nil)
			return
		}

		payload.ID = httprouter.ParamsFromContext(r.Context()).ByName("id")

		updated, err := service.UpdateAccount(grant, &payload)
		if err != nil {
			logrus.Error("Erro ao atualizar conta:", err)
			writeAccountError(w, err)
			return
		}

		writeJSON(w, updated)
	})
}

func AccountDelete(service account.AccountService, authorizationService authorizing.AuthorizationService) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		grant, ok := resolveGrant(w, r, authorizationService)
		if !ok {
			return
		}

		accountID := httprouter.ParamsFromContext(r.Context()).ByName("id")

		if err := service.DeleteAccount(grant, accountID); err != nil {
			logrus.Error("Erro ao remover conta:", err)
			writeAccountError(w, err)
			return
		}

		w.WriteHeader(http.StatusNoContent)
	})
}

func AccountExport(service account.AccountService, authorizationService authorizing.AuthorizationService) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		grant, ok := resolveGrant(w, r, authorizationService)
		if !ok {
			return
		}

		rows, err := service.ExportAccounts(grant)
		if err != nil {
			logrus.Error("Erro ao exportar contas:", err)
			writeAccountError(w, err)
			return
		}

		if err := utils.WriteCSV(w, "contas.csv", accountExportHeader, rows); err != nil {
			logrus.Error("Erro ao escrever CSV de contas:", err)
		}
	})
}

func writeAccountError(w http.ResponseWriter, err error) {
	var accountErr *account.AccountError
	if errors.As(err, &accountErr) {
		switch {
		case errors.Is(err, account.ErrAccountNotFound):
			apiErrors.WriteError(w, apiErrors.ErrRecordNotFound, "Conta não encontrada", nil)
		case errors.Is(err, account.ErrAccountNameRequired):
			apiErrors.WriteError(w, apiErrors.ErrMissingRequiredData, "Nome da conta é obrigatório", nil)
		case errors.Is(err, account.ErrFetchAccount), errors.Is(err, account.ErrSaveAccount):
			apiErrors.WriteError(w, apiErrors.ErrDatabaseOperation, "Erro ao acessar contas no banco de dados", nil)
		default:
			apiErrors.WriteError(w, apiErrors.ErrInternalServer, accountErr.Error(), nil)
		}
		return
	}

	switch {
	case errors.Is(err, account.ErrPermissionDenied):
		apiErrors.WriteError(w, apiErrors.ErrPermissionDenied, "Registro fora do seu escopo de acesso", nil)
	case errors.Is(err, account.ErrDeleteForbidden):
		apiErrors.WriteError(w, apiErrors.ErrDeleteForbidden, "Seu papel não permite excluir este registro", nil)
	case errors.Is(err, account.ErrExportForbidden):
		apiErrors.WriteError(w, apiErrors.ErrExportForbidden, "Exportação disponível apenas para administradores", nil)
	default:
		apiErrors.WriteError(w, apiErrors.ErrInternalServer, "Erro ao processar conta", nil)
	}
}
