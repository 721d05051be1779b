package repository

import (
	"context"
	"errors"
	"fmt"

	"github.com/jmoiron/sqlx"
	"github.com/lib/pq"

	"gameborrow/internal/database"
	"gameborrow/internal/models"
)

type UserRepository interface {
	Create(ctx context.Context, user *models.User) error
	GetByID(ctx context.Context, userID string) (*models.User, error)
	GetByEmail(ctx context.Context, email string) (*models.User, error)
	GetByEmailVerificationToken(ctx context.Context, token string) (*models.User, error)
	GetByPasswordToken(ctx context.Context, token string) (*models.User, error)
	Update(ctx context.Context, user *models.User) error
}

type PublisherRepository interface {
	Create(ctx context.Context, publisher *models.Publisher) error
	GetAll(ctx context.Context) ([]models.Publisher, error)
	GetByID(ctx context.Context, publisherID string) (*models.Publisher, error)
	GetByGameID(ctx context.Context, gameID string) (*models.Publisher, error)
	Update(ctx context.Context, publisher *models.Publisher) error
	AddGame(ctx context.Context, publisherID, gameID string) error
	RemoveGame(ctx context.Context, publisherID, gameID string) error
	AddUser(ctx context.Context, publisherID, userID string) error
}

type GameRepository interface {
	Create(ctx context.Context, game *models.Game) error
	GetAll(ctx context.Context) ([]models.Game, error)
	GetByID(ctx context.Context, gameID string) (*models.Game, error)
	Update(ctx context.Context, game *models.Game) error
	Delete(ctx context.Context, gameID string) error
	AddImage(ctx context.Context, gameID, imageURI string) error
}

type HealthRepository interface {
	Ping(ctx context.Context) error
}

// Transactor runs fn with repositories bound to a single transaction.
type Transactor interface {
	WithinTx(ctx context.Context, fn func(tx *Repository) error) error
}

type Repository struct {
	User      UserRepository
	Publisher PublisherRepository
	Game      GameRepository
	Health    HealthRepository

	db *sqlx.DB
}

func NewRepository(db *sqlx.DB) *Repository {
	repo := newRepository(db)
	repo.Health = NewHealthRepository(db)
	repo.db = db
	return repo
}

func newRepository(e sqlx.ExtContext) *Repository {
	return &Repository{
		User:      NewUserRepository(e),
		Publisher: NewPublisherRepository(e),
		Game:      NewGameRepository(e),
	}
}

func (r *Repository) WithinTx(ctx context.Context, fn func(tx *Repository) error) error {
	if r.db == nil {
		// already inside a transaction
		return fn(r)
	}
	return database.WithTx(ctx, r.db, nil, func(tx *sqlx.Tx) error {
		return fn(newRepository(tx))
	})
}

const uniqueViolation = "23505"

// wrapWriteError turns unique-constraint violations into models.ErrConflict
// and wraps everything else as an internal failure.
func wrapWriteError(op string, err error) error {
	var pqErr *pq.Error
	if errors.As(err, &pqErr) && pqErr.Code == uniqueViolation {
		return fmt.Errorf("%s: %s: %w", op, conflictField(pqErr.Constraint), models.ErrConflict)
	}
	return fmt.Errorf("%s: %w", op, err)
}

func conflictField(constraint string) string {
	switch constraint {
	case "users_email_key", "publishers_email_key":
		return "email"
	case "publishers_name_key":
		return "name"
	default:
		return "value"
	}
}

func expectAffected(res interface{ RowsAffected() (int64, error) }, notFound error) error {
	rows, err := res.RowsAffected()
	if err != nil {
		return fmt.Errorf("check affected rows: %w", err)
	}
	if rows == 0 {
		return notFound
	}
	return nil
}
