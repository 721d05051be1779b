package repository

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/jmoiron/sqlx"

	"gameborrow/internal/models"
)

const userColumns = `id, email, password, role, verified, email_token, email_token_created_at, password_token, password_token_created_at`

const (
	insertUser                = `INSERT INTO users (` + userColumns + `) VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9)`
	selectUserByID            = `SELECT ` + userColumns + ` FROM users WHERE id = $1`
	selectUserByEmail         = `SELECT ` + userColumns + ` FROM users WHERE email = $1`
	selectUserByEmailToken    = `SELECT ` + userColumns + ` FROM users WHERE email_token = $1`
	selectUserByPasswordToken = `SELECT ` + userColumns + ` FROM users WHERE password_token = $1`
	updateUser                = `UPDATE users SET email = $2, password = $3, role = $4, verified = $5, email_token = $6, email_token_created_at = $7, password_token = $8, password_token_created_at = $9 WHERE id = $1`
)

type userRow struct {
	ID                     string         `db:"id"`
	Email                  string         `db:"email"`
	Password               string         `db:"password"`
	Role                   string         `db:"role"`
	Verified               bool           `db:"verified"`
	EmailToken             sql.NullString `db:"email_token"`
	EmailTokenCreatedAt    sql.NullTime   `db:"email_token_created_at"`
	PasswordToken          sql.NullString `db:"password_token"`
	PasswordTokenCreatedAt sql.NullTime   `db:"password_token_created_at"`
}

func (r userRow) toModel() *models.User {
	return &models.User{
		ID:                r.ID,
		Email:             r.Email,
		Password:          r.Password,
		Role:              models.Role(r.Role),
		Verified:          r.Verified,
		EmailVerification: tokenFromColumns(r.EmailToken, r.EmailTokenCreatedAt),
		PasswordToken:     tokenFromColumns(r.PasswordToken, r.PasswordTokenCreatedAt),
	}
}

func tokenFromColumns(value sql.NullString, created sql.NullTime) *models.Token {
	if !value.Valid {
		return nil
	}
	return &models.Token{Value: value.String, CreatedAt: created.Time}
}

func tokenColumns(t *models.Token) (sql.NullString, sql.NullTime) {
	if t == nil {
		return sql.NullString{}, sql.NullTime{}
	}
	return sql.NullString{String: t.Value, Valid: true}, sql.NullTime{Time: t.CreatedAt, Valid: true}
}

// userArgs returns the columns of userColumns in order.
func userArgs(user *models.User) []any {
	emailToken, emailTokenCreated := tokenColumns(user.EmailVerification)
	passwordToken, passwordTokenCreated := tokenColumns(user.PasswordToken)

	return []any{
		user.ID, user.Email, user.Password, string(user.Role), user.Verified,
		emailToken, emailTokenCreated, passwordToken, passwordTokenCreated,
	}
}

type userRepository struct {
	db sqlx.ExtContext
}

func NewUserRepository(db sqlx.ExtContext) UserRepository {
	return &userRepository{db: db}
}

func (r *userRepository) Create(ctx context.Context, user *models.User) error {
	if user.ID == "" {
		user.ID = models.NewID()
	}

	if _, err := r.db.ExecContext(ctx, insertUser, userArgs(user)...); err != nil {
		return wrapWriteError("insert user", err)
	}

	return nil
}

func (r *userRepository) GetByID(ctx context.Context, userID string) (*models.User, error) {
	return r.getOne(ctx, selectUserByID, userID, "user "+userID)
}

func (r *userRepository) GetByEmail(ctx context.Context, email string) (*models.User, error) {
	return r.getOne(ctx, selectUserByEmail, email, "user with email "+email)
}

func (r *userRepository) GetByEmailVerificationToken(ctx context.Context, token string) (*models.User, error) {
	return r.getOne(ctx, selectUserByEmailToken, token, "user with email verification token")
}

func (r *userRepository) GetByPasswordToken(ctx context.Context, token string) (*models.User, error) {
	return r.getOne(ctx, selectUserByPasswordToken, token, "user with password token")
}

func (r *userRepository) getOne(ctx context.Context, query, arg, what string) (*models.User, error) {
	var row userRow
	err := sqlx.GetContext(ctx, r.db, &row, query, arg)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, fmt.Errorf("%s: %w", what, models.ErrNotFound)
		}
		return nil, fmt.Errorf("select %s: %w", what, err)
	}

	return row.toModel(), nil
}

// Update replaces every stored column of the user.
func (r *userRepository) Update(ctx context.Context, user *models.User) error {
	res, err := r.db.ExecContext(ctx, updateUser, userArgs(user)...)
	if err != nil {
		return wrapWriteError("update user", err)
	}

	return expectAffected(res, fmt.Errorf("user %s: %w", user.ID, models.ErrNotFound))
}
