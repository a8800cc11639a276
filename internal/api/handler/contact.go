package handler

import (
	"encoding/json"
	"errors"
	"net/http"

	"github.com/julienschmidt/httprouter"
	"github.com/sirupsen/logrus"
	"github.com/esteban-lambda/crm-api/internal/domain"
	"github.com/esteban-lambda/crm-api/internal/usecases/authorizing"
	"github.com/esteban-lambda/crm-api/internal/usecases/contacting"
	"github.com/esteban-lambda/crm-api/pkg/apiErrors"
	"github.com/esteban-lambda/crm-api/pkg/utils"
)

var contactExportHeader = []string{"id", "nome", "email", "cargo", "conta", "criado_em"}

func ContactList(service contacting.ContactService, authorizationService authorizing.AuthorizationService) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		grant, ok := resolveGrant(w, r, authorizationService)
		if !ok {
			return
		}

		contacts, err := service.ListContacts(grant)
		if err != nil {
			logrus.Error("Erro ao listar contatos:", err)
			writeContactError(w, err)
			return
		}

		writeJSON(w, contacts)
	})
}

func ContactCreate(service contacting.ContactService, authorizationService authorizing.AuthorizationService) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		grant, ok := resolveGrant(w, r, authorizationService)
		if !ok {
			return
		}

		var payload domain.Contact
		if err := json.NewDecoder(r.Body).Decode(&payload); err != nil {
			apiErrors.WriteError(w, apiErrors.ErrInvalidRequest, "Corpo da requisição inválido", nil)
			return
		}

		created, err := service.CreateContact(grant, &payload)
		if err != nil {
			logrus.Error("Erro ao criar contato:", err)
			writeContactError(w, err)
			return
		}

		w.WriteHeader(http.StatusCreated)
		writeJSON(w, created)
	})
}

func ContactGet(service contacting.ContactService, authorizationService authorizing.AuthorizationService) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		grant, ok := resolveGrant(w, r, authorizationService)
		if !ok {
			return
		}

		contactID := httprouter.ParamsFromContext(r.Context()).ByName("id")

		found, err := service.GetContact(grant, contactID)
		if err != nil {
			logrus.Error("Erro ao buscar contato:", err)
			writeContactError(w, err)
			return
		}

		writeJSON(w, found)
	})
}

func ContactUpdate(service contacting.ContactService, authorizationService authorizing.AuthorizationService) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		grant, ok := resolveGrant(w, r, authorizationService)
		if !ok {
			return
		}

		var payload domain.Contact
		if err := json.NewDecoder(r.Body).Decode(&payload); err != nil {
			apiErrors.WriteError(w, apiErrors.ErrInvalidRequest, "Corpo da requisição inválido", nil)
			return
		}

		payload.ID = httprouter.ParamsFromContext(r.Context()).ByName("id")

		updated, err := service.UpdateContact(grant, &payload)
		if err != nil {
			logrus.Error("Erro ao atualizar contato:", err)
			writeContactError(w, err)
			return
		}

		writeJSON(w, updated)
	})
}

func ContactDelete(service contacting.ContactService, authorizationService authorizing.AuthorizationService) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		grant, ok := resolveGrant(w, r, authorizationService)
		if !ok {
			return
		}

		contactID := httprouter.ParamsFromContext(r.Context()).ByName("id")

		if err := service.DeleteContact(grant, contactID); err != nil {
			logrus.Error("Erro ao remover contato:", err)
			writeContactError(w, err)
			return
		}

		w.WriteHeader(http.StatusNoContent)
	})
}

// ContactListByAccount lista os contatos de uma conta visível ao usuário
func ContactListByAccount(service contacting.ContactService, authorizationService authorizing.AuthorizationService) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		grant, ok := resolveGrant(w, r, authorizationService)
		if !ok {
			return
		}

		accountID := httprouter.ParamsFromContext(r.Context()).ByName("id")

		contacts, err := service.ListByAccount(grant, accountID)
		if err != nil {
			logrus.Error("Erro ao listar contatos da conta:", err)
			writeContactError(w, err)
			return
		}

		writeJSON(w, contacts)
	})
}

func ContactExport(service contacting.ContactService, authorizationService authorizing.AuthorizationService) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		grant, ok := resolveGrant(w, r, authorizationService)
		if !ok {
			return
		}

		rows, err := service.ExportContacts(grant)
		if err != nil {
			logrus.Error("Erro ao exportar contatos:", err)
			writeContactError(w, err)
			return
		}

		if err := utils.WriteCSV(w, "contatos.csv", contactExportHeader, rows); err != nil {
			logrus.Error("Erro ao escrever CSV de contatos:", err)
		}
	})
}

func writeContactError(w http.ResponseWriter, err error) {
	switch {
	case errors.Is(err, contacting.ErrContactNotFound):
		apiErrors.WriteError(w, apiErrors.ErrRecordNotFound, "Contato não encontrado", nil)
	case errors.Is(err, contacting.ErrAccountNotFound):
		apiErrors.WriteError(w, apiErrors.ErrRecordNotFound, "Conta informada não existe", nil)
	case errors.Is(err, contacting.ErrInvalidContact):
		apiErrors.WriteError(w, apiErrors.ErrMissingRequiredData, "Nome, email e conta do contato são obrigatórios", nil)
	case errors.Is(err, contacting.ErrDuplicateEmail):
		apiErrors.WriteError(w, apiErrors.ErrDuplicateRecord, "Já existe um contato com este email", nil)
	case errors.Is(err, contacting.ErrPermissionDenied):
		apiErrors.WriteError(w, apiErrors.ErrPermissionDenied, "Registro fora do seu escopo de acesso", nil)
	case errors.Is(err, contacting.ErrDeleteForbidden):
		apiErrors.WriteError(w, apiErrors.ErrDeleteForbidden, "Seu papel não permite excluir este registro", nil)
	case errors.Is(err, contacting.ErrExportForbidden):
		apiErrors.WriteError(w, apiErrors.ErrExportForbidden, "Exportação disponível apenas para administradores", nil)
	case errors.Is(err, contacting.ErrFetchContact), errors.Is(err, contacting.ErrSaveContact):
		apiErrors.WriteError(w, apiErrors.ErrDatabaseOperation, "Erro ao acessar contatos no banco de dados", nil)
	default:
		apiErrors.WriteError(w, apiErrors.ErrInternalServer, "Erro ao processar contato", nil)
	}
}
