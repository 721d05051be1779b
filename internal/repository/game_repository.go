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
	insertGame      = `INSERT INTO games (id, title, description, files_location, image_uris, publisher_id) VALUES ($1, $2, $3, $4, $5, $6)`
	selectGames     = `SELECT id, title, description, files_location, image_uris, publisher_id FROM games ORDER BY id`
	selectGameByID  = `SELECT id, title, description, files_location, image_uris, publisher_id FROM games WHERE id = $1`
	updateGame      = `UPDATE games SET title = $2, description = $3, files_location = $4, image_uris = $5 WHERE id = $1`
	deleteGame      = `DELETE FROM games WHERE id = $1`
	appendGameImage = `UPDATE games SET image_uris = array_append(image_uris, $2) WHERE id = $1`
)

type gameRow struct {
	ID            string         `db:"id"`
	Title         string         `db:"title"`
	Description   string         `db:"description"`
	FilesLocation string         `db:"files_location"`
	ImageURIs     pq.StringArray `db:"image_uris"`
	PublisherID   string         `db:"publisher_id"`
}

func (r gameRow) toModel() models.Game {
	return models.Game{
		ID:            r.ID,
		Title:         r.Title,
		Description:   r.Description,
		FilesLocation: r.FilesLocation,
		ImageURIs:     []string(r.ImageURIs),
		PublisherID:   r.PublisherID,
	}
}

type gameRepository struct {
	db sqlx.ExtContext
}

func NewGameRepository(db sqlx.ExtContext) GameRepository {
	return &gameRepository{db: db}
}

func (r *gameRepository) Create(ctx context.Context, game *models.Game) error {
	if game.ID == "" {
		game.ID = models.NewID()
	}

	_, err := r.db.ExecContext(ctx, insertGame,
		game.ID, game.Title, game.Description, game.FilesLocation, pq.Array(game.ImageURIs), game.PublisherID)
	if err != nil {
		return wrapWriteError("insert game", err)
	}

	return nil
}

func (r *gameRepository) GetAll(ctx context.Context) ([]models.Game, error) {
	var rows []gameRow
	if err := sqlx.SelectContext(ctx, r.db, &rows, selectGames); err != nil {
		return nil, fmt.Errorf("select games: %w", err)
	}

	games := make([]models.Game, 0, len(rows))
	for _, row := range rows {
		games = append(games, row.toModel())
	}

	return games, nil
}

func (r *gameRepository) GetByID(ctx context.Context, gameID string) (*models.Game, error) {
	var row gameRow
	err := sqlx.GetContext(ctx, r.db, &row, selectGameByID, gameID)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, fmt.Errorf("game %s: %w", gameID, models.ErrNotFound)
		}
		return nil, fmt.Errorf("select game: %w", err)
	}

	game := row.toModel()
	return &game, nil
}

func (r *gameRepository) Update(ctx context.Context, game *models.Game) error {
	res, err := r.db.ExecContext(ctx, updateGame,
		game.ID, game.Title, game.Description, game.FilesLocation, pq.Array(game.ImageURIs))
	if err != nil {
		return wrapWriteError("update game", err)
	}

	return expectAffected(res, fmt.Errorf("game %s: %w", game.ID, models.ErrNotFound))
}

func (r *gameRepository) Delete(ctx context.Context, gameID string) error {
	res, err := r.db.ExecContext(ctx, deleteGame, gameID)
	if err != nil {
		return fmt.Errorf("delete game: %w", err)
	}

	return expectAffected(res, fmt.Errorf("game %s: %w", gameID, models.ErrNotFound))
}

func (r *gameRepository) AddImage(ctx context.Context, gameID, imageURI string) error {
	res, err := r.db.ExecContext(ctx, appendGameImage, gameID, imageURI)
	if err != nil {
		return fmt.Errorf("append game image: %w", err)
	}

	return expectAffected(res, fmt.Errorf("game %s: %w", gameID, models.ErrNotFound))
}
