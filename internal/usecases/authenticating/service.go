package authenticating

import (
	"crypto/rand"
	"errors"
	"fmt"
	"math/big"
	"strings"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/sirupsen/logrus"
	"golang.org/x/crypto/bcrypt"

	"github.com/esteban-lambda/crm-api/infrastructure/repository"
	"github.com/esteban-lambda/crm-api/internal/config"
	"github.com/esteban-lambda/crm-api/internal/domain"
	"github.com/esteban-lambda/crm-api/pkg/apiErrors"
)

type Authenticator interface {
	CreateUser(creatorID int, user *domain.User) (*domain.User, error)
	UpdateUser(user *domain.UpdateUserRequest) error
	ListUser() ([]*domain.User, error)
	LoginUser(email, password string) (string, error)
	GetUserProfile(userID int) (*domain.User, error)
	ValidateToken(tokenString string) (*domain.Claims, error)
	GenerateStrongPassword(requestUserID, targetUserID int) (string, error)
	ChangePassword(userID int, currentPassword, newPassword string) error
	ValidatePasswordStrength(password string) error
}

type Service struct {
	userRepo repository.UserRepository
	cfg      *config.Config
}

func NewService(userRepo repository.UserRepository, cfg *config.Config) Authenticator {
	return &Service{
		userRepo: userRepo,
		cfg:      cfg,
	}
}

func (s *Service) UpdateUser(user *domain.UpdateUserRequest) error {
	if user.ID == 0 {
		return errors.New("ID is required")
	}

	userDatabase, err := s.userRepo.GetUserByID(user.ID)
	if userDatabase == nil || err != nil {
		if err == nil {
			return fmt.Errorf("user not found to ID: %d", user.ID)
		}
		return err
	}

	if user.Name != nil {
		userDatabase.Name = *user.Name
	}

	if user.Lastname != nil {
		userDatabase.Lastname = *user.Lastname
	}

	if user.Email != nil {
		userDatabase.Email = handleEmail(*user.Email)
	}

	if user.Active != nil {
		userDatabase.Active = *user.Active
	}

	if user.RoleID != nil {
		userDatabase.RoleID = *user.RoleID
	}

	if user.ProfileRole != nil {
		userDatabase.ProfileRole = *user.ProfileRole
	}

	if user.Phone != nil {
		userDatabase.Phone = user.Phone
	}

	if user.Department != nil {
		userDatabase.Department = user.Department
	}

	if user.AvatarURL != nil {
		userDatabase.AvatarURL = user.AvatarURL
	}

	if user.Deleted != nil {
		now := time.Now()
		userDatabase.Deleted = *user.Deleted
		userDatabase.DeletedAt = &now
	}

	err = s.userRepo.UpdateUser(userDatabase)
	if err != nil {
		return err
	}

	return nil
}

// CreateUser registra um novo usuário. O criador fica gravado em
// created_by, que é o vínculo usado para montar o time de um gerente.
func (s *Service) CreateUser(creatorID int, user *domain.User) (*domain.User, error) {
	if user.Email == "" || user.Name == "" || user.Lastname == "" || user.PasswordHash == "" {
		return nil, NewAuthError(ErrMissingRequiredData, apiErrors.ErrMissingRequiredData, "Email, nome, sobrenome e senha são obrigatórios")
	}

	user.Email = handleEmail(user.Email)

	userDatabase, err := s.userRepo.GetUserByEmail(user.Email)
	if err != nil {
		return nil, NewAuthError(err, apiErrors.ErrDatabaseOperation, "Erro ao consultar usuário no banco de dados")
	}
	if userDatabase != nil {
		return nil, NewAuthError(ErrUserAlreadyExists, apiErrors.ErrUserAlreadyExists, "Email já cadastrado")
	}

	hashedPassword, err := bcrypt.GenerateFromPassword([]byte(user.PasswordHash), s.bcryptCost())
	if err != nil {
		return nil, err
	}

	if user.RoleID == 0 {
		user.RoleID = domain.GroupSalesRep
	}

	if creatorID != 0 {
		user.CreatedBy = &creatorID
	}

	user.PasswordHash = string(hashedPassword)
	user.Active = false

	user, err = s.userRepo.CreateUser(user)
	if err != nil {
		return nil, NewAuthError(err, apiErrors.ErrDatabaseOperation, "Erro ao criar usuário")
	}

	return user, nil
}

func handleEmail(s string) string {
	email := strings.ToLower(s)
	email = strings.TrimSpace(email)
	email = strings.ReplaceAll(email, " ", "")
	return email
}

func (s *Service) ListUser() ([]*domain.User, error) {
	users, err := s.userRepo.ListUser()
	if err != nil {
		return nil, err
	}

	return users, nil
}

func (s *Service) LoginUser(email, password string) (string, error) {
	// Validação de entrada
	if email == "" || password == "" {
		return "", NewAuthError(ErrMissingRequiredData, apiErrors.ErrMissingRequiredData, "Email e senha são obrigatórios")
	}

	email = handleEmail(email)

	user, err := s.userRepo.GetUserByEmail(email)
	if err != nil {
		return "", NewAuthError(err, apiErrors.ErrDatabaseOperation, "Erro ao consultar usuário no banco de dados")
	}

	// Verificar se o usuário existe
	if user == nil {
		return "", NewAuthError(ErrUserNotFound, apiErrors.ErrUserNotFound, "Usuário não encontrado")
	}

	// Verificar se o usuário está ativo
	if !user.Active {
		return "", NewUserAuthError(ErrUserDisabled, apiErrors.ErrUserDisabled, user.ID, "Conta desativada")
	}

	// Verificar senha
	if err := bcrypt.CompareHashAndPassword([]byte(user.PasswordHash), []byte(password)); err != nil {
		return "", NewUserAuthError(ErrInvalidCredentials, apiErrors.ErrInvalidCredentials, user.ID, "Senha incorreta")
	}

	// Gerar token JWT
	token, err := s.generateJWT(user)
	if err != nil {
		return "", NewAuthError(err, apiErrors.ErrInternalServer, "Erro ao gerar token de autenticação")
	}

	return token, nil
}

func (s *Service) GetUserProfile(userID int) (*domain.User, error) {
	user, err := s.userRepo.GetUserByID(userID)
	if err != nil {
		logrus.Error(err)
		return nil, err
	}

	user.PasswordHash = ""
	return user, nil
}

// generateJWT grava no token os fatos de papel que o resolvedor de
// autorização consome em cada requisição
func (s *Service) generateJWT(user *domain.User) (string, error) {
	ttl := time.Duration(s.cfg.Auth.TokenTTLHours) * time.Hour
	if ttl <= 0 {
		ttl = 24 * time.Hour
	}

	claims := domain.Claims{
		UserID:          user.ID,
		UserName:        user.Name,
		UserLastname:    user.Lastname,
		UserEmail:       user.Email,
		UserActive:      user.Active,
		UserRoleID:      user.RoleID,
		UserProfileRole: user.ProfileRole,
		UserIsSuperuser: user.IsSuperuser,
		UserAvatarURL:   user.AvatarURL,
		RegisteredClaims: jwt.RegisteredClaims{
			ExpiresAt: jwt.NewNumericDate(time.Now().Add(ttl)),
		},
	}

	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	return token.SignedString([]byte(s.cfg.SecretKey))
}

func (s *Service) ValidateToken(tokenString string) (*domain.Claims, error) {
	token, err := jwt.ParseWithClaims(tokenString, &domain.Claims{}, func(token *jwt.Token) (interface{}, error) {
		if _, ok := token.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, fmt.Errorf("unexpected signing method: %v", token.Header["alg"])
		}
		return []byte(s.cfg.SecretKey), nil
	})
	if err != nil {
		return nil, err
	}

	if claims, ok := token.Claims.(*domain.Claims); ok && token.Valid {
		return claims, nil
	} else {
		return nil, errors.New("invalid token")
	}
}

// GenerateStrongPassword gera uma senha forte para o usuário alvo.
// Verifica se o usuário solicitante tem perfil de administrador antes de prosseguir.
func (s *Service) GenerateStrongPassword(requestUserID, targetUserID int) (string, error) {
	// Verificar se o usuário solicitante é um administrador
	requestUser, err := s.userRepo.GetUserByID(requestUserID)
	if err != nil {
		return "", err
	}
	if requestUser == nil {
		return "", errors.New("usuário solicitante não encontrado")
	}
	if requestUser.RoleID != domain.GroupAdministrator && !requestUser.IsSuperuser {
		return "", ErrNoAdminPrivileges
	}

	// Verificar se o usuário alvo existe
	targetUser, err := s.userRepo.GetUserByID(targetUserID)
	if err != nil {
		return "", err
	}
	if targetUser == nil {
		return "", errors.New("usuário alvo não encontrado")
	}

	// Gerar senha forte
	newPassword, err := generateStrongPassword(12)
	if err != nil {
		return "", err
	}

	// Hash da nova senha
	hashedPassword, err := bcrypt.GenerateFromPassword([]byte(newPassword), s.bcryptCost())
	if err != nil {
		return "", err
	}

	// Atualizar senha do usuário alvo
	targetUser.PasswordHash = string(hashedPassword)
	err = s.userRepo.UpdateUser(targetUser)
	if err != nil {
		return "", err
	}

	return newPassword, nil
}

func (s *Service) bcryptCost() int {
	if s.cfg.Auth.BCryptCost > 0 {
		return s.cfg.Auth.BCryptCost
	}
	return bcrypt.DefaultCost
}

// generateStrongPassword gera uma senha forte com o comprimento especificado
// incluindo letras maiúsculas, minúsculas, números e caracteres especiais
func generateStrongPassword(length int) (string, error) {
	if length < 8 {
		length = 8 // Comprimento mínimo para senhas fortes
	}

	const (
		lowerChars   = "abcdefghijklmnopqrstuvwxyz"
		upperChars   = "ABCDEFGHIJKLMNOPQRSTUVWXYZ"
		numberChars  = "0123456789"
		specialChars = "!@#$%^&*()-_=+[]{}|;:,.<>?"
		allChars     = lowerChars + upperChars + numberChars + specialChars
	)

	// Garantir que a senha tenha pelo menos um caractere de cada tipo
	password := make([]byte, length)

	// Adicionar um caractere minúsculo
	randomChar, err := getRandomChar(lowerChars)
	if err != nil {
		return "", err
	}
	password[0] = randomChar

	// Adicionar um caractere maiúsculo
	randomChar, err = getRandomChar(upperChars)
	if err != nil {
		return "", err
	}
	password[1] = randomChar

	// Adicionar um número
	randomChar, err = getRandomChar(numberChars)
	if err != nil {
		return "", err
	}
	password[2] = randomChar

	// Adicionar um caractere especial
	randomChar, err = getRandomChar(specialChars)
	if err != nil {
		return "", err
	}
	password[3] = randomChar

	// Preencher o resto com caracteres aleatórios
	for i := 4; i < length; i++ {
		randomChar, err = getRandomChar(allChars)
		if err != nil {
			return "", err
		}
		password[i] = randomChar
	}

	// Embaralhar a senha para que os caracteres não fiquem em ordem previsível
	for i := range password {
		j, err := randomInt(int64(len(password)))
		if err != nil {
			return "", err
		}
		password[i], password[j] = password[j], password[i]
	}

	return string(password), nil
}

// getRandomChar retorna um caractere aleatório do conjunto fornecido
func getRandomChar(charset string) (byte, error) {
	n, err := randomInt(int64(len(charset)))
	if err != nil {
		return 0, err
	}
	return charset[n], nil
}

// randomInt gera um número aleatório seguro entre 0 e max-1
func randomInt(max int64) (int, error) {
	n, err := rand.Int(rand.Reader, big.NewInt(max))
	if err != nil {
		return 0, err
	}
	return int(n.Int64()), nil
}

// ValidatePasswordStrength verifica se a senha atende aos requisitos de segurança
// Senha deve conter pelo menos 8 caracteres, incluindo maiúsculas, minúsculas, números e caracteres especiais
func (s *Service) ValidatePasswordStrength(password string) error {
	minSize := s.cfg.Auth.MinPasswordSize
	if minSize < 8 {
		minSize = 8
	}

	if len(password) < minSize {
		return fmt.Errorf("a senha deve conter pelo menos %d caracteres", minSize)
	}

	var (
		hasUpper   bool
		hasLower   bool
		hasNumber  bool
		hasSpecial bool
	)

	const (
		lowerChars   = "abcdefghijklmnopqrstuvwxyz"
		upperChars   = "ABCDEFGHIJKLMNOPQRSTUVWXYZ"
		numberChars  = "0123456789"
		specialChars = "!@#$%^&*()-_=+[]{}|;:,.<>?"
	)

	for _, char := range password {
		switch {
		case strings.ContainsRune(lowerChars, char):
			hasLower = true
		case strings.ContainsRune(upperChars, char):
			hasUpper = true
		case strings.ContainsRune(numberChars, char):
			hasNumber = true
		case strings.ContainsRune(specialChars, char):
			hasSpecial = true
		}
	}

	if !hasUpper {
		return errors.New("a senha deve conter pelo menos uma letra maiúscula")
	}
	if !hasLower {
		return errors.New("a senha deve conter pelo menos uma letra minúscula")
	}
	if !hasNumber {
		return errors.New("a senha deve conter pelo menos um número")
	}
	if !hasSpecial {
		return errors.New("a senha deve conter pelo menos um caractere especial")
	}

	return nil
}

// ChangePassword permite que um usuário altere sua própria senha
// Verifica se a senha atual está correta e se a nova senha atende aos requisitos de segurança
func (s *Service) ChangePassword(userID int, currentPassword, newPassword string) error {
	// Obter o usuário pelo ID
	user, err := s.userRepo.GetUserByID(userID)
	if err != nil {
		return err
	}

	if user == nil {
		return errors.New("usuário não encontrado")
	}

	// Verificar se a senha atual está correta
	if err := bcrypt.CompareHashAndPassword([]byte(user.PasswordHash), []byte(currentPassword)); err != nil {
		return errors.New("senha atual incorreta")
	}

	// Validar se a nova senha atende aos requisitos de segurança
	if err := s.ValidatePasswordStrength(newPassword); err != nil {
		return err
	}

	// Gerar hash da nova senha
	hashedPassword, err := bcrypt.GenerateFromPassword([]byte(newPassword), s.bcryptCost())
	if err != nil {
		return err
	}

	// Atualizar a senha do usuário
	user.PasswordHash = string(hashedPassword)
	err = s.userRepo.UpdateUser(user)
	if err != nil {
		return err
	}

	return nil
}
