package service

import (
	"context"
	"fmt"
	"io"

	"gameborrow/internal/email"
	"gameborrow/internal/logging"
	"gameborrow/internal/models"
	"gameborrow/internal/repository"
	"gameborrow/internal/storage"
)

type GameService interface {
	GetAll(ctx context.Context) ([]models.Game, error)
	GetByID(ctx context.Context, gameID string) (*models.Game, error)
	Create(ctx context.Context, userID string, req models.CreateGameRequest) (*models.Game, error)
	Update(ctx context.Context, userID, gameID string, upd models.GameUpdate) error
	Delete(ctx context.Context, userID, gameID string) error
	AddImage(ctx context.Context, userID, gameID, fileName string, file io.Reader, size int64) (string, error)
}

type gameService struct {
	games   repository.GameRepository
	tx      repository.Transactor
	guard   PublisherGuard
	storage storage.Storage
	notifier
}

func NewGameService(
	games repository.GameRepository,
	tx repository.Transactor,
	guard PublisherGuard,
	storage storage.Storage,
	sender email.Sender,
	logger logging.Logger,
) GameService {
	return &gameService{
		games:    games,
		tx:       tx,
		guard:    guard,
		storage:  storage,
		notifier: newNotifier(sender, logger),
	}
}

func (s *gameService) GetAll(ctx context.Context) ([]models.Game, error) {
	games, err := s.games.GetAll(ctx)
	if err != nil {
		return nil, fmt.Errorf("fetch games: %w", err)
	}
	return games, nil
}

func (s *gameService) GetByID(ctx context.Context, gameID string) (*models.Game, error) {
	return s.games.GetByID(ctx, gameID)
}

// Create stores the game and links it to its publisher in one transaction.
func (s *gameService) Create(ctx context.Context, userID string, req models.CreateGameRequest) (*models.Game, error) {
	publisher, err := s.guard.Authorize(ctx, userID, Target{PublisherID: req.PublisherID})
	if err != nil {
		return nil, err
	}

	game := &models.Game{
		Title:         req.Title,
		Description:   req.Description,
		FilesLocation: req.FilesLocation,
		ImageURIs:     req.ImageURIs,
		PublisherID:   publisher.ID,
	}

	err = s.tx.WithinTx(ctx, func(tx *repository.Repository) error {
		if err := tx.Game.Create(ctx, game); err != nil {
			return err
		}
		return tx.Publisher.AddGame(ctx, publisher.ID, game.ID)
	})
	if err != nil {
		return nil, fmt.Errorf("create game: %w", err)
	}

	s.notify(ctx, publisher.Email, "New game was added", email.TemplateGameAdded, map[string]any{
		"publisher": publisher.Name,
		"gameId":    game.ID,
		"title":     game.Title,
	})

	return game, nil
}

// Update applies every requested field and persists only when none of them failed.
func (s *gameService) Update(ctx context.Context, userID, gameID string, upd models.GameUpdate) error {
	if upd.Empty() {
		return fmt.Errorf("no game field to update: %w", models.ErrValidation)
	}

	publisher, err := s.guard.Authorize(ctx, userID, Target{GameID: gameID})
	if err != nil {
		return err
	}

	game, err := s.games.GetByID(ctx, gameID)
	if err != nil {
		return err
	}

	updated, results := applyGameUpdate(*game, upd)
	if errs := fieldErrors(results); len(errs) > 0 {
		return errs
	}

	if err := s.games.Update(ctx, &updated); err != nil {
		return fmt.Errorf("update game: %w", err)
	}

	s.notify(ctx, publisher.Email, "Game was updated", email.TemplateGameUpdated, map[string]any{
		"publisher": publisher.Name,
		"gameId":    updated.ID,
		"title":     updated.Title,
	})

	return nil
}

// Delete removes the game and unlinks it from its publisher in one transaction.
func (s *gameService) Delete(ctx context.Context, userID, gameID string) error {
	publisher, err := s.guard.Authorize(ctx, userID, Target{GameID: gameID})
	if err != nil {
		return err
	}

	var game *models.Game
	err = s.tx.WithinTx(ctx, func(tx *repository.Repository) error {
		found, err := tx.Game.GetByID(ctx, gameID)
		if err != nil {
			return err
		}
		game = found

		if err := tx.Game.Delete(ctx, gameID); err != nil {
			return err
		}
		return tx.Publisher.RemoveGame(ctx, publisher.ID, gameID)
	})
	if err != nil {
		return fmt.Errorf("delete game: %w", err)
	}

	s.removeStoredImages(ctx, game.ImageURIs)

	s.notify(ctx, publisher.Email, "Game was deleted", email.TemplateGameDeleted, map[string]any{
		"publisher": publisher.Name,
		"gameId":    gameID,
		"title":     game.Title,
	})

	return nil
}

func (s *gameService) AddImage(ctx context.Context, userID, gameID, fileName string, file io.Reader, size int64) (string, error) {
	if _, err := s.guard.Authorize(ctx, userID, Target{GameID: gameID}); err != nil {
		return "", err
	}

	objectName, uri, err := s.storage.UploadGameImage(ctx, gameID, fileName, file, size)
	if err != nil {
		return "", err
	}

	if err := s.games.AddImage(ctx, gameID, uri); err != nil {
		if delErr := s.storage.DeleteObject(ctx, objectName); delErr != nil {
			s.logger.Warn(ctx, "orphaned game image", "object", objectName, "error", delErr)
		}
		return "", fmt.Errorf("save game image: %w", err)
	}

	return uri, nil
}

// removeStoredImages deletes the objects this service uploaded; external URIs are skipped.
func (s *gameService) removeStoredImages(ctx context.Context, uris []string) {
	if s.storage == nil {
		return
	}
	for _, uri := range uris {
		objectName, ok := s.storage.ObjectNameFromURL(uri)
		if !ok {
			continue
		}
		if err := s.storage.DeleteObject(ctx, objectName); err != nil {
			s.logger.Warn(ctx, "game image was not removed", "object", objectName, "error", err)
		}
	}
}
