package handler

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/pkg/errors"
	"github.com/stretchr/testify/assert"

	"github.com/esteban-lambda/crm-api/internal/usecases/authenticating"
	"github.com/esteban-lambda/crm-api/pkg/apiErrors"
)

func TestHandleLoginError(t *testing.T) {
	tests := []struct {
		name           string
		err            error
		expectedStatus int
		expectedCode   string
	}{
		{
			name:           "Credenciais inválidas respondem 401 com o código de autenticação",
			err:            authenticating.ErrInvalidCredentials,
			expectedStatus: http.StatusUnauthorized,
			expectedCode:   apiErrors.ErrInvalidCredentials,
		},
		{
			name:           "Usuário bloqueado por tentativas responde 403 com o código de bloqueio",
			err:            authenticating.ErrUserLocked,
			expectedStatus: http.StatusForbidden,
			expectedCode:   apiErrors.ErrUserLocked,
		},
		{
			name:           "Usuário desativado responde 403",
			err:            authenticating.ErrUserDisabled,
			expectedStatus: http.StatusForbidden,
			expectedCode:   apiErrors.ErrUserDisabled,
		},
		{
			name: "AuthError de bloqueio carrega o código e o usuário envolvido",
			err: authenticating.NewUserAuthError(
				authenticating.ErrUserLocked, apiErrors.ErrUserLocked, 31, "5 tentativas consecutivas"),
			expectedStatus: http.StatusForbidden,
			expectedCode:   apiErrors.ErrUserLocked,
		},
		{
			name:           "Erro não mapeado cai no 500 genérico",
			err:            errors.New("falha inesperada"),
			expectedStatus: http.StatusInternalServerError,
			expectedCode:   apiErrors.ErrInternalServer,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			recorder := httptest.NewRecorder()

			handleLoginError(recorder, tt.err)

			assert.Equal(t, tt.expectedStatus, recorder.Code)

			var apiErr apiErrors.APIError
			assert.NoError(t, json.NewDecoder(recorder.Body).Decode(&apiErr))
			assert.Equal(t, tt.expectedCode, apiErr.Code)
		})
	}
}
