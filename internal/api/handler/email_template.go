package handler

import (
	"encoding/json"
	"errors"
	"net/http"

	"github.com/julienschmidt/httprouter"
	"github.com/sirupsen/logrus"
	"github.com/esteban-lambda/crm-api/internal/domain"
	"github.com/esteban-lambda/crm-api/internal/usecases/authorizing"
	"github.com/esteban-lambda/crm-api/internal/usecases/templating"
	"github.com/esteban-lambda/crm-api/pkg/apiErrors"
	"github.com/esteban-lambda/crm-api/pkg/middleware"
)

func EmailTemplateList(service templating.TemplateService) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		onlyActive := r.URL.Query().Get("active") == "true"

		templates, err := service.ListTemplates(onlyActive)
		if err != nil {
			logrus.Error("Erro ao listar templates:", err)
			writeTemplateError(w, err)
			return
		}

		writeJSON(w, templates)
	})
}

func EmailTemplateCreate(service templating.TemplateService, authorizationService authorizing.AuthorizationService) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		grant, ok := resolveGrant(w, r, authorizationService)
		if !ok {
			return
		}

		var payload domain.EmailTemplate
		if err := json.NewDecoder(r.Body).Decode(&payload); err != nil {
			apiErrors.WriteError(w, apiErrors.ErrInvalidRequest, "Corpo da requisição inválido", nil)
			return
		}

		created, err := service.CreateTemplate(grant, &payload)
		if err != nil {
			logrus.Error("Erro ao criar template:", err)
			writeTemplateError(w, err)
			return
		}

		w.WriteHeader(http.StatusCreated)
		writeJSON(w, created)
	})
}

func EmailTemplateGet(service templating.TemplateService) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		templateID := httprouter.ParamsFromContext(r.Context()).ByName("id")

		template, err := service.GetTemplate(templateID)
		if err != nil {
			logrus.Error("Erro ao buscar template:", err)
			writeTemplateError(w, err)
			return
		}

		writeJSON(w, template)
	})
}

func EmailTemplateUpdate(service templating.TemplateService, authorizationService authorizing.AuthorizationService) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		grant, ok := resolveGrant(w, r, authorizationService)
		if !ok {
			return
		}

		var payload domain.EmailTemplate
		if err := json.NewDecoder(r.Body).Decode(&payload); err != nil {
			apiErrors.WriteError(w, apiErrors.ErrInvalidRequest, "Corpo da requisição inválido", nil)
			return
		}

		payload.ID = httprouter.ParamsFromContext(r.Context()).ByName("id")

		updated, err := service.UpdateTemplate(grant, &payload)
		if err != nil {
			logrus.Error("Erro ao atualizar template:", err)
			writeTemplateError(w, err)
			return
		}

		writeJSON(w, updated)
	})
}

func EmailTemplateDelete(service templating.TemplateService, authorizationService authorizing.AuthorizationService) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		grant, ok := resolveGrant(w, r, authorizationService)
		if !ok {
			return
		}

		templateID := httprouter.ParamsFromContext(r.Context()).ByName("id")

		if err := service.DeleteTemplate(grant, templateID); err != nil {
			logrus.Error("Erro ao remover template:", err)
			writeTemplateError(w, err)
			return
		}

		w.WriteHeader(http.StatusNoContent)
	})
}

// EmailTemplateRender preenche as variáveis do template com os dados do
// contato informado e do usuário autenticado
func EmailTemplateRender(service templating.TemplateService) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		claims, ok := r.Context().Value(middleware.ContextKeyUser).(*domain.Claims)
		if !ok {
			apiErrors.WriteError(w, apiErrors.ErrInvalidToken, "Usuário não autenticado", nil)
			return
		}

		templateID := httprouter.ParamsFromContext(r.Context()).ByName("id")

		contactID := r.URL.Query().Get("contact_id")
		if contactID == "" {
			apiErrors.WriteError(w, apiErrors.ErrMissingRequiredData, "Parâmetro contact_id é obrigatório", nil)
			return
		}

		user := &domain.User{
			ID:       claims.UserID,
			Name:     claims.UserName,
			Lastname: claims.UserLastname,
			Email:    claims.UserEmail,
		}

		rendered, err := service.Render(templateID, contactID, user)
		if err != nil {
			logrus.Error("Erro ao renderizar template:", err)
			writeTemplateError(w, err)
			return
		}

		writeJSON(w, rendered)
	})
}

func writeTemplateError(w http.ResponseWriter, err error) {
	switch {
	case errors.Is(err, templating.ErrTemplateNotFound):
		apiErrors.WriteError(w, apiErrors.ErrRecordNotFound, "Template não encontrado", nil)
	case errors.Is(err, templating.ErrContactNotFound):
		apiErrors.WriteError(w, apiErrors.ErrRecordNotFound, "Contato não encontrado", nil)
	case errors.Is(err, templating.ErrInvalidTemplate):
		apiErrors.WriteError(w, apiErrors.ErrMissingRequiredData, "Nome, assunto e corpo do template são obrigatórios", nil)
	case errors.Is(err, templating.ErrTemplateInactive):
		apiErrors.WriteError(w, apiErrors.ErrInvalidRequest, "Template está inativo", nil)
	case errors.Is(err, templating.ErrFetchTemplate), errors.Is(err, templating.ErrSaveTemplate):
		apiErrors.WriteError(w, apiErrors.ErrDatabaseOperation, "Erro ao acessar templates no banco de dados", nil)
	default:
		apiErrors.WriteError(w, apiErrors.ErrInternalServer, "Erro ao processar template", nil)
	}
}
