package repository

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/jmoiron/sqlx"
	"github.com/lib/pq"

	"gameborrow/internal/models"
)

const (
	insertPublisher         = `INSERT INTO publishers (id, name, website, email, users, games) VALUES ($1, $2, $3, $4, $5, $6)`
	selectPublishers        = `SELECT id, name, website, email, users, games FROM publishers ORDER BY name`
	selectPublisherByID     = `SELECT id, name, website, email, users, games FROM publishers WHERE id = $1`
	selectPublisherByGameID = `SELECT id, name, website, email, users, games FROM publishers WHERE $1 = ANY(games)`
	updatePublisher         = `UPDATE publishers SET name = $2, website = $3, email = $4 WHERE id = $1`
	appendPublisherGame     = `UPDATE publishers SET games = array_append(games, $2) WHERE id = $1`
	removePublisherGame     = `UPDATE publishers SET games = array_remove(games, $2) WHERE id = $1`
	appendPublisherUser     = `UPDATE publishers SET users = array_append(users, $2) WHERE id = $1`
)

type publisherRow struct {
	ID      string         `db:"id"`
	Name    string         `db:"name"`
	Website string         `db:"website"`
	Email   string         `db:"email"`
	Users   pq.StringArray `db:"users"`
	Games   pq.StringArray `db:"games"`
}

func (r publisherRow) toModel() models.Publisher {
	return models.Publisher{
		ID:      r.ID,
		Name:    r.Name,
		Website: r.Website,
		Email:   r.Email,
		Users:   []string(r.Users),
		Games:   []string(r.Games),
	}
}

type publisherRepository struct {
	db sqlx.ExtContext
}

func NewPublisherRepository(db sqlx.ExtContext) PublisherRepository {
	return &publisherRepository{db: db}
}

func (r *publisherRepository) Create(ctx context.Context, publisher *models.Publisher) error {
	if publisher.ID == "" {
		publisher.ID = models.NewID()
	}
	if publisher.Users == nil {
		publisher.Users = []string{}
	}
	if publisher.Games == nil {
		publisher.Games = []string{}
	}

	_, err := r.db.ExecContext(ctx, insertPublisher,
		publisher.ID, publisher.Name, publisher.Website, publisher.Email,
		pq.Array(publisher.Users), pq.Array(publisher.Games))
	if err != nil {
		return wrapWriteError("insert publisher", err)
	}

	return nil
}

func (r *publisherRepository) GetAll(ctx context.Context) ([]models.Publisher, error) {
	var rows []publisherRow
	if err := sqlx.SelectContext(ctx, r.db, &rows, selectPublishers); err != nil {
		return nil, fmt.Errorf("select publishers: %w", err)
	}

	publishers := make([]models.Publisher, 0, len(rows))
	for _, row := range rows {
		publishers = append(publishers, row.toModel())
	}

	return publishers, nil
}

func (r *publisherRepository) GetByID(ctx context.Context, publisherID string) (*models.Publisher, error) {
	return r.getOne(ctx, selectPublisherByID, publisherID, "publisher "+publisherID)
}

func (r *publisherRepository) GetByGameID(ctx context.Context, gameID string) (*models.Publisher, error) {
	return r.getOne(ctx, selectPublisherByGameID, gameID, "publisher of game "+gameID)
}

func (r *publisherRepository) getOne(ctx context.Context, query, arg, what string) (*models.Publisher, error) {
	var row publisherRow
	err := sqlx.GetContext(ctx, r.db, &row, query, arg)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, fmt.Errorf("%s: %w", what, models.ErrNotFound)
		}
		return nil, fmt.Errorf("select %s: %w", what, err)
	}

	publisher := row.toModel()
	return &publisher, nil
}

func (r *publisherRepository) Update(ctx context.Context, publisher *models.Publisher) error {
	res, err := r.db.ExecContext(ctx, updatePublisher,
		publisher.ID, publisher.Name, publisher.Website, publisher.Email)
	if err != nil {
		return wrapWriteError("update publisher", err)
	}

	return expectAffected(res, fmt.Errorf("publisher %s: %w", publisher.ID, models.ErrNotFound))
}

func (r *publisherRepository) AddGame(ctx context.Context, publisherID, gameID string) error {
	return r.execOnPublisher(ctx, appendPublisherGame, "append publisher game", publisherID, gameID)
}

func (r *publisherRepository) RemoveGame(ctx context.Context, publisherID, gameID string) error {
	return r.execOnPublisher(ctx, removePublisherGame, "remove publisher game", publisherID, gameID)
}

func (r *publisherRepository) AddUser(ctx context.Context, publisherID, userID string) error {
	return r.execOnPublisher(ctx, appendPublisherUser, "append publisher user", publisherID, userID)
}

func (r *publisherRepository) execOnPublisher(ctx context.Context, query, op, publisherID, value string) error {
	res, err := r.db.ExecContext(ctx, query, publisherID, value)
	if err != nil {
		return fmt.Errorf("%s: %w", op, err)
	}

	return expectAffected(res, fmt.Errorf("publisher %s: %w", publisherID, models.ErrNotFound))
}
