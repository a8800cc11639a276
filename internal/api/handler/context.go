package handler

import (
	"net/http"

	jsoniter "github.com/json-iterator/go"
	"github.com/sirupsen/logrus"
	"github.com/esteban-lambda/crm-api/internal/domain"
	"github.com/esteban-lambda/crm-api/internal/usecases/authorizing"
	"github.com/esteban-lambda/crm-api/pkg/apiErrors"
	"github.com/esteban-lambda/crm-api/pkg/middleware"
)

var jsonCodec = jsoniter.ConfigCompatibleWithStandardLibrary

// resolveGrant materializa o papel efetivo do usuário autenticado a partir
// das claims capturadas pelo middleware de autenticação. Em caso de falha a
// resposta de erro já é escrita e o chamador deve retornar.
func resolveGrant(w http.ResponseWriter, r *http.Request, authorizationService authorizing.AuthorizationService) (*domain.Grant, bool) {
	claims, ok := r.Context().Value(middleware.ContextKeyUser).(*domain.Claims)
	if !ok {
		apiErrors.WriteError(w, apiErrors.ErrInvalidToken, "Usuário não autenticado", nil)
		return nil, false
	}

	facts := domain.RoleFacts{
		IsSuperuser: claims.UserIsSuperuser,
		GroupID:     claims.UserRoleID,
		ProfileRole: claims.UserProfileRole,
	}

	grant, err := authorizationService.Resolve(facts, claims.UserID)
	if err != nil {
		logrus.WithError(err).Error("Erro ao resolver papel do usuário")
		apiErrors.WriteError(w, apiErrors.ErrInternalServer, "Erro ao resolver permissões do usuário", nil)
		return nil, false
	}

	return grant, true
}

func writeJSON(w http.ResponseWriter, payload any) {
	w.Header().Set("Content-Type", "application/json")

	if err := jsonCodec.NewEncoder(w).Encode(payload); err != nil {
		apiErrors.WriteError(w, apiErrors.ErrInternalServer, "Erro ao codificar resposta", nil)
	}
}
