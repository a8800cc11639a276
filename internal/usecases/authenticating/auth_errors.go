package authenticating

import (
	"errors"
	"fmt"
)

var (
	// Erros de autenticação
	ErrInvalidCredentials    = errors.New("credenciais inválidas")
	ErrUserDisabled          = errors.New("usuário desativado")
	ErrUserNotFound          = errors.New("usuário não encontrado")
	ErrUserLocked            = errors.New("usuário bloqueado temporariamente")
	ErrPasswordExpired       = errors.New("senha expirada")
	ErrInvalidToken          = errors.New("token inválido")
	ErrExpiredToken          = errors.New("token expirado")
	ErrInsufficientPrivilege = errors.New("privilégios insuficientes")
	ErrUserAlreadyExists     = errors.New("usuário já existe")

	// Erros de validação de cadastro
	ErrInvalidRequest      = errors.New("requisição inválida")
	ErrMissingRequiredData = errors.New("dados obrigatórios ausentes")
	ErrInvalidFormat       = errors.New("formato de dados inválido")

	ErrNoAdminPrivileges = errors.New("apenas administradores podem realizar esta ação")

	ErrDatabaseOperation = errors.New("erro ao realizar operação no banco de dados")
)

// AuthError carrega o código de API e o contexto do usuário junto com o
// erro base, para o handler responder sem remontar a mensagem
type AuthError struct {
	Err     error
	Code    string
	UserID  int
	Details string
}

func (e *AuthError) Error() string {
	if e.Details != "" {
		return fmt.Sprintf("%s: %s", e.Err.Error(), e.Details)
	}
	return e.Err.Error()
}

func (e *AuthError) Unwrap() error {
	return e.Err
}

func NewAuthError(baseErr error, code string, details string) *AuthError {
	return &AuthError{
		Err:     baseErr,
		Code:    code,
		Details: details,
	}
}

// NewUserAuthError é a variante com o usuário envolvido, usada nos fluxos
// de troca e geração de senha
func NewUserAuthError(baseErr error, code string, userID int, details string) *AuthError {
	return &AuthError{
		Err:     baseErr,
		Code:    code,
		UserID:  userID,
		Details: details,
	}
}
