package handler

import (
	"encoding/json"
	"errors"
	"net/http"

	"github.com/julienschmidt/httprouter"
	"github.com/sirupsen/logrus"
	"github.com/esteban-lambda/crm-api/internal/domain"
	"github.com/esteban-lambda/crm-api/internal/usecases/authorizing"
	"github.com/esteban-lambda/crm-api/internal/usecases/documenting"
	"github.com/esteban-lambda/crm-api/pkg/apiErrors"
)

func DocumentList(service documenting.DocumentService, authorizationService authorizing.AuthorizationService) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		grant, ok := resolveGrant(w, r, authorizationService)
		if !ok {
			return
		}

		documents, err := service.ListDocuments(grant)
		if err != nil {
			logrus.Error("Erro ao listar documentos:", err)
			writeDocumentError(w, err)
			return
		}

		writeJSON(w, documents)
	})
}

// DocumentRegister registra os metadados de um documento. O arquivo em si
// fica em armazenamento externo, aqui só guardamos a referência.
func DocumentRegister(service documenting.DocumentService, authorizationService authorizing.AuthorizationService) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		grant, ok := resolveGrant(w, r, authorizationService)
		if !ok {
			return
		}

		var payload domain.Document
		if err := json.NewDecoder(r.Body).Decode(&payload); err != nil {
			apiErrors.WriteError(w, apiErrors.ErrInvalidRequest, "Corpo da requisição inválido", nil)
			return
		}

		created, err := service.RegisterDocument(grant, &payload)
		if err != nil {
			logrus.Error("Erro ao registrar documento:", err)
			writeDocumentError(w, err)
			return
		}

		w.WriteHeader(http.StatusCreated)
		writeJSON(w, created)
	})
}

func DocumentGet(service documenting.DocumentService, authorizationService authorizing.AuthorizationService) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		grant, ok := resolveGrant(w, r, authorizationService)
		if !ok {
			return
		}

		documentID := httprouter.ParamsFromContext(r.Context()).ByName("id")

		document, err := service.GetDocument(grant, documentID)
		if err != nil {
			logrus.Error("Erro ao buscar documento:", err)
			writeDocumentError(w, err)
			return
		}

		writeJSON(w, document)
	})
}

func DocumentListByDeal(service documenting.DocumentService, authorizationService authorizing.AuthorizationService) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		grant, ok := resolveGrant(w, r, authorizationService)
		if !ok {
			return
		}

		dealID := httprouter.ParamsFromContext(r.Context()).ByName("id")

		documents, err := service.ListByDeal(grant, dealID)
		if err != nil {
			logrus.Error("Erro ao listar documentos do deal:", err)
			writeDocumentError(w, err)
			return
		}

		writeJSON(w, documents)
	})
}

func DocumentDelete(service documenting.DocumentService, authorizationService authorizing.AuthorizationService) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		grant, ok := resolveGrant(w, r, authorizationService)
		if !ok {
			return
		}

		documentID := httprouter.ParamsFromContext(r.Context()).ByName("id")

		if err := service.DeleteDocument(grant, documentID); err != nil {
			logrus.Error("Erro ao remover documento:", err)
			writeDocumentError(w, err)
			return
		}

		w.WriteHeader(http.StatusNoContent)
	})
}

func writeDocumentError(w http.ResponseWriter, err error) {
	switch {
	case errors.Is(err, documenting.ErrDocumentNotFound):
		apiErrors.WriteError(w, apiErrors.ErrRecordNotFound, "Documento não encontrado", nil)
	case errors.Is(err, documenting.ErrInvalidDocument):
		apiErrors.WriteError(w, apiErrors.ErrMissingRequiredData, "Nome e arquivo do documento são obrigatórios", nil)
	case errors.Is(err, documenting.ErrPermissionDenied):
		apiErrors.WriteError(w, apiErrors.ErrPermissionDenied, "Registro fora do seu escopo de acesso", nil)
	case errors.Is(err, documenting.ErrDeleteForbidden):
		apiErrors.WriteError(w, apiErrors.ErrDeleteForbidden, "Seu papel não permite excluir este registro", nil)
	case errors.Is(err, documenting.ErrFetchDocument), errors.Is(err, documenting.ErrSaveDocument):
		apiErrors.WriteError(w, apiErrors.ErrDatabaseOperation, "Erro ao acessar documentos no banco de dados", nil)
	default:
		apiErrors.WriteError(w, apiErrors.ErrInternalServer, "Erro ao processar documento", nil)
	}
}
