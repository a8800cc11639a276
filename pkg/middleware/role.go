package middleware

import (
	"net/http"

	"github.com/esteban-lambda/crm-api/internal/domain"
	"github.com/esteban-lambda/crm-api/pkg/apiErrors"
	"github.com/sirupsen/logrus"
)

// RoleMiddleware cria um middleware que restringe o acesso com base nos grupos
// allowedGroups é a lista de IDs de grupo que podem acessar a rota.
// O recorte fino por registro (escopo de leitura/escrita) é feito pelo
// serviço de autorização; aqui só barramos rotas inteiras.
func RoleMiddleware(allowedGroups []int) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			userClaims, ok := r.Context().Value(ContextKeyUser).(*domain.Claims)

			if !ok {
				logrus.Warning("Tentativa de acesso sem autenticação")
				apiErrors.WriteError(w, apiErrors.ErrInvalidToken, "Usuário não autenticado", nil)
				return
			}

			// Superusuários passam por qualquer restrição de rota
			if userClaims.UserIsSuperuser {
				next.ServeHTTP(w, r)
				return
			}

			isAllowed := false
			for _, group := range allowedGroups {
				if userClaims.UserRoleID == group {
					isAllowed = true
					break
				}
			}

			if !isAllowed {
				logrus.Warningf("Acesso negado para usuário ID=%d, Grupo=%d", userClaims.UserID, userClaims.UserRoleID)
				apiErrors.WriteError(w, apiErrors.ErrInsufficientPrivilege, "Você não tem permissão para acessar este recurso", nil)
				return
			}

			next.ServeHTTP(w, r)
		})
	}
}

// AdminOnly permite acesso apenas para administradores
func AdminOnly() func(http.Handler) http.Handler {
	return RoleMiddleware([]int{domain.GroupAdministrator})
}

// AdminOrManager permite acesso para administradores e gerentes de vendas
func AdminOrManager() func(http.Handler) http.Handler {
	return RoleMiddleware([]int{domain.GroupAdministrator, domain.GroupSalesManager})
}

// AllRoles permite acesso para qualquer usuário autenticado com grupo válido
func AllRoles() func(http.Handler) http.Handler {
	return RoleMiddleware([]int{domain.GroupAdministrator, domain.GroupSalesManager, domain.GroupSalesRep})
}
