package service

import (
	"context"
	"errors"
	"fmt"

	"gameborrow/internal/models"
	"gameborrow/internal/repository"
)

// Target names the publisher-scoped resource a request acts on. GameID takes
// precedence over PublisherID.
type Target struct {
	GameID      string
	PublisherID string
}

type PublisherGuard interface {
	// Authorize resolves the publisher behind target and checks that userID
	// is one of its members. It has no side effects.
	Authorize(ctx context.Context, userID string, target Target) (*models.Publisher, error)
}

type publisherGuard struct {
	publishers repository.PublisherRepository
}

func NewPublisherGuard(publishers repository.PublisherRepository) PublisherGuard {
	return &publisherGuard{publishers: publishers}
}

func (g *publisherGuard) Authorize(ctx context.Context, userID string, target Target) (*models.Publisher, error) {
	var (
		publisher *models.Publisher
		err       error
	)

	switch {
	case target.GameID != "":
		publisher, err = g.publishers.GetByGameID(ctx, target.GameID)
		if errors.Is(err, models.ErrNotFound) {
			return nil, fmt.Errorf("unknown game id %s: %w", target.GameID, models.ErrNotFound)
		}
	case target.PublisherID != "":
		publisher, err = g.publishers.GetByID(ctx, target.PublisherID)
		if errors.Is(err, models.ErrNotFound) {
			return nil, fmt.Errorf("unknown publisher id %s: %w", target.PublisherID, models.ErrNotFound)
		}
	default:
		return nil, fmt.Errorf("could not find publisher identification: %w", models.ErrNotFound)
	}
	if err != nil {
		return nil, fmt.Errorf("resolve publisher: %w", err)
	}

	if !publisher.HasMember(userID) {
		return nil, models.ErrForbidden
	}

	return publisher, nil
}
