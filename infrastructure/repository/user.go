package repository

import (
	"database/sql"

	"github.com/Masterminds/squirrel"
	"github.com/esteban-lambda/crm-api/infrastructure/database/postgres"
	"github.com/esteban-lambda/crm-api/internal/domain"
	_ "github.com/lib/pq"
)

const usersTable = "users"

type UserRepository interface {
	CreateUser(user *domain.User) (*domain.User, error)
	UpdateUser(user *domain.User) error
	GetUserByEmail(email string) (*domain.User, error)
	GetUserByID(userID int) (*domain.User, error)
	ListUser() ([]*domain.User, error)
	ListTeamIDs(managerID int) ([]int, error)
}

type userRepository struct {
	conn *postgres.Connection
}

func NewUserRepository(conn *postgres.Connection) UserRepository {
	return &userRepository{
		conn: conn,
	}
}

const userColumns = "id, name, lastname, email, password_hash, active, role_id, profile_role, is_superuser, phone, department, created_by, avatar_url, created_at, updated_at"

func (r *userRepository) CreateUser(user *domain.User) (*domain.User, error) {
	queryBuilder := squirrel.
		Insert(usersTable).
		Columns("name", "lastname", "email", "password_hash", "active", "role_id", "profile_role", "is_superuser", "phone", "department", "created_by").
		Values(user.Name, user.Lastname, user.Email, user.PasswordHash, user.Active, user.RoleID, user.ProfileRole, user.IsSuperuser, user.Phone, user.Department, user.CreatedBy).
		Suffix("RETURNING id").
		PlaceholderFormat(squirrel.Dollar)

	usersSQL, usersArgs, err := queryBuilder.ToSql()
	if err != nil {
		return nil, err
	}

	err = r.conn.QueryRow(usersSQL, usersArgs...).Scan(&user.ID)
	if err != nil {
		return nil, err
	}

	return user, nil
}

func (r *userRepository) UpdateUser(user *domain.User) error {
	queryBuilder := squirrel.
		Update(usersTable).
		Set("active", user.Active).
		Where(squirrel.Eq{"id": user.ID})

	if user.Name != "" {
		queryBuilder = queryBuilder.Set("name", user.Name)
	}

	if user.Lastname != "" {
		queryBuilder = queryBuilder.Set("lastname", user.Lastname)
	}

	if user.Email != "" {
		queryBuilder = queryBuilder.Set("email", user.Email)
	}

	if user.PasswordHash != "" {
		queryBuilder = queryBuilder.Set("password_hash", user.PasswordHash)
	}

	if user.RoleID != 0 {
		queryBuilder = queryBuilder.Set("role_id", user.RoleID)
	}

	if user.ProfileRole != "" {
		queryBuilder = queryBuilder.Set("profile_role", user.ProfileRole)
	}

	if user.Phone != nil && *user.Phone != "" {
		queryBuilder = queryBuilder.Set("phone", user.Phone)
	}

	if user.Department != nil && *user.Department != "" {
		queryBuilder = queryBuilder.Set("department", user.Department)
	}

	if user.AvatarURL != nil && *user.AvatarURL != "" {
		queryBuilder = queryBuilder.Set("avatar_url", user.AvatarURL)
	}

	if user.Deleted {
		queryBuilder = queryBuilder.Set("deleted", true)
		queryBuilder = queryBuilder.Set("deleted_at", user.DeletedAt)
	}

	usersSQL, usersArgs, err := queryBuilder.PlaceholderFormat(squirrel.Dollar).ToSql()
	if err != nil {
		return err
	}

	_, err = r.conn.Exec(usersSQL, usersArgs...)
	return err
}

func (r *userRepository) GetUserByEmail(email string) (*domain.User, error) {
	user, err := r.scanUserRow(
		r.conn.QueryRow("SELECT "+userColumns+" FROM users WHERE deleted = false AND email = $1", email),
	)
	if err == sql.ErrNoRows {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}

	return user, nil
}

func (r *userRepository) GetUserByID(userID int) (*domain.User, error) {
	return r.scanUserRow(
		r.conn.QueryRow("SELECT "+userColumns+" FROM users WHERE deleted = false AND id = $1", userID),
	)
}

func (r *userRepository) ListUser() ([]*domain.User, error) {
	queryBuilder := squirrel.
		Select("id", "name", "lastname", "email", "active", "role_id", "profile_role", "is_superuser", "phone", "department", "created_by", "avatar_url", "created_at", "updated_at").
		From(usersTable).
		Where(squirrel.Eq{"deleted": false}).
		OrderBy("name ASC").
		PlaceholderFormat(squirrel.Dollar)

	usersSQL, usersArgs, err := queryBuilder.ToSql()
	if err != nil {
		return nil, err
	}

	rows, err := r.conn.Query(usersSQL, usersArgs...)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var users []*domain.User
	for rows.Next() {
		var user domain.User
		if err := rows.Scan(
			&user.ID,
			&user.Name,
			&user.Lastname,
			&user.Email,
			&user.Active,
			&user.RoleID,
			&user.ProfileRole,
			&user.IsSuperuser,
			&user.Phone,
			&user.Department,
			&user.CreatedBy,
			&user.AvatarURL,
			&user.CreatedAt,
			&user.UpdatedAt,
		); err != nil {
			return nil, err
		}
		users = append(users, &user)
	}

	if err := rows.Err(); err != nil {
		return nil, err
	}

	return users, nil
}

// ListTeamIDs retorna os vendedores criados pelo gerente. O próprio
// gerente entra na lista, que é o time inteiro para fins de escopo.
func (r *userRepository) ListTeamIDs(managerID int) ([]int, error) {
	queryBuilder := squirrel.
		Select("id").
		From(usersTable).
		Where(squirrel.Eq{"created_by": managerID, "deleted": false}).
		PlaceholderFormat(squirrel.Dollar)

	usersSQL, usersArgs, err := queryBuilder.ToSql()
	if err != nil {
		return nil, err
	}

	rows, err := r.conn.Query(usersSQL, usersArgs...)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	teamIDs := []int{managerID}
	for rows.Next() {
		var id int
		if err := rows.Scan(&id); err != nil {
			return nil, err
		}
		if id != managerID {
			teamIDs = append(teamIDs, id)
		}
	}

	if err := rows.Err(); err != nil {
		return nil, err
	}

	return teamIDs, nil
}

func (r *userRepository) scanUserRow(row *sql.Row) (*domain.User, error) {
	var user domain.User
	err := row.Scan(
		&user.ID,
		&user.Name,
		&user.Lastname,
		&user.Email,
		&user.PasswordHash,
		&user.Active,
		&user.RoleID,
		&user.ProfileRole,
		&user.IsSuperuser,
		&user.Phone,
		&user.Department,
		&user.CreatedBy,
		&user.AvatarURL,
		&user.CreatedAt,
		&user.UpdatedAt,
	)
	if err != nil {
		return nil, err
	}
	return &user, nil
}
