package domain

import (
	"time"

	"github.com/golang-jwt/jwt/v5"
)

// Papéis de perfil comercial (campo role do perfil, independente do grupo)
const (
	ProfileRoleManager = "manager"
	ProfileRoleSales   = "sales"
)

type User struct {
	ID           int        `json:"id"`
	Name         string     `json:"name"`
	Lastname     string     `json:"lastname"`
	Email        string     `json:"email"`
	PasswordHash string     `json:"password"`
	Active       bool       `json:"active"`
	RoleID       int        `json:"role_id"`
	ProfileRole  string     `json:"profile_role"`
	IsSuperuser  bool       `json:"is_superuser"`
	Phone        *string    `json:"phone"`
	Department   *string    `json:"department"`
	CreatedBy    *int       `json:"created_by"`
	AvatarURL    *string    `json:"avatar_url"`
	Deleted      bool       `json:"deleted"`
	DeletedAt    *time.Time `json:"deleted_at"`
	CreatedAt    time.Time  `json:"created_at"`
	UpdatedAt    time.Time  `json:"updated_at"`
}

type UpdateUserRequest struct {
	ID          int     `json:"id"`
	Name        *string `json:"name"`
	Lastname    *string `json:"lastname"`
	Email       *string `json:"email"`
	Active      *bool   `json:"active"`
	RoleID      *int    `json:"role_id"`
	ProfileRole *string `json:"profile_role"`
	Phone       *string `json:"phone"`
	Department  *string `json:"department"`
	AvatarURL   *string `json:"avatar_url"`
	Deleted     *bool   `json:"deleted"`
}

type Claims struct {
	UserID          int
	UserName        string
	UserLastname    string
	UserEmail       string
	UserActive      bool
	UserRoleID      int
	UserProfileRole string
	UserIsSuperuser bool
	UserAvatarURL   *string
	jwt.RegisteredClaims
}
