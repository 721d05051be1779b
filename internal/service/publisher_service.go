package service

import (
	"context"
	"errors"
	"fmt"

	"gameborrow/internal/email"
	"gameborrow/internal/logging"
	"gameborrow/internal/models"
	"gameborrow/internal/repository"
)

type PublisherService interface {
	GetAll(ctx context.Context) ([]models.Publisher, error)
	GetByID(ctx context.Context, publisherID string) (*models.Publisher, error)
	Create(ctx context.Context, userID string, req models.CreatePublisherRequest) (*models.Publisher, error)
	Update(ctx context.Context, userID, publisherID string, upd models.PublisherUpdate) error
	AddUser(ctx context.Context, userID, publisherID, userEmail string) error
}

type publisherService struct {
	publishers repository.PublisherRepository
	users      repository.UserRepository
	guard      PublisherGuard
	notifier
}

func NewPublisherService(
	publishers repository.PublisherRepository,
	users repository.UserRepository,
	guard PublisherGuard,
	sender email.Sender,
	logger logging.Logger,
) PublisherService {
	return &publisherService{
		publishers: publishers,
		users:      users,
		guard:      guard,
		notifier:   newNotifier(sender, logger),
	}
}

func (s *publisherService) GetAll(ctx context.Context) ([]models.Publisher, error) {
	publishers, err := s.publishers.GetAll(ctx)
	if err != nil {
		return nil, fmt.Errorf("fetch publishers: %w", err)
	}
	return publishers, nil
}

func (s *publisherService) GetByID(ctx context.Context, publisherID string) (*models.Publisher, error) {
	return s.publishers.GetByID(ctx, publisherID)
}

// Create registers a publisher whose only member is the acting user.
func (s *publisherService) Create(ctx context.Context, userID string, req models.CreatePublisherRequest) (*models.Publisher, error) {
	publisher := &models.Publisher{
		Name:    req.Name,
		Website: req.Website,
		Email:   req.Email,
		Users:   []string{userID},
		Games:   []string{},
	}

	if err := s.publishers.Create(ctx, publisher); err != nil {
		return nil, fmt.Errorf("create publisher: %w", err)
	}

	return publisher, nil
}

func (s *publisherService) Update(ctx context.Context, userID, publisherID string, upd models.PublisherUpdate) error {
	if upd.Empty() {
		return fmt.Errorf("no publisher field to update: %w", models.ErrValidation)
	}

	publisher, err := s.guard.Authorize(ctx, userID, Target{PublisherID: publisherID})
	if err != nil {
		return err
	}

	updated, results := applyPublisherUpdate(*publisher, upd)
	if errs := fieldErrors(results); len(errs) > 0 {
		return errs
	}

	if err := s.publishers.Update(ctx, &updated); err != nil {
		return fmt.Errorf("update publisher: %w", err)
	}

	s.notify(ctx, updated.Email, "Publisher information was updated", email.TemplatePublisherUpdated, map[string]any{
		"publisher": updated.Name,
		"website":   updated.Website,
	})

	return nil
}

// AddUser makes the verified user with userEmail a member of the publisher.
func (s *publisherService) AddUser(ctx context.Context, userID, publisherID, userEmail string) error {
	publisher, err := s.guard.Authorize(ctx, userID, Target{PublisherID: publisherID})
	if err != nil {
		return err
	}

	member, err := s.users.GetByEmail(ctx, userEmail)
	if err != nil {
		if errors.Is(err, models.ErrNotFound) {
			return fmt.Errorf("no user with email %s: %w", userEmail, models.ErrNotFound)
		}
		return fmt.Errorf("fetch user: %w", err)
	}

	if !member.Verified {
		return fmt.Errorf("user %s: %w", userEmail, models.ErrEmailNotVerified)
	}

	if publisher.HasMember(member.ID) {
		return fmt.Errorf("user %s is already a member: %w", userEmail, models.ErrConflict)
	}

	if err := s.publishers.AddUser(ctx, publisher.ID, member.ID); err != nil {
		return fmt.Errorf("add publisher user: %w", err)
	}

	s.notify(ctx, member.Email, "You were added to a publisher team", email.TemplatePublisherUserAdd, map[string]any{
		"publisher": publisher.Name,
		"email":     member.Email,
	})

	return nil
}
