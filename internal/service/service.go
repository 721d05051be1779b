package service

import (
	"context"

	"gameborrow/internal/config"
	"gameborrow/internal/email"
	"gameborrow/internal/logging"
	"gameborrow/internal/repository"
	"gameborrow/internal/storage"
)

type Service struct {
	Auth      AuthService
	User      UserService
	Publisher PublisherService
	Game      GameService
	Health    HealthService
}

func NewService(rep *repository.Repository, cfg *config.Config, storage storage.Storage, sender email.Sender, logger logging.Logger) *Service {
	guard := NewPublisherGuard(rep.Publisher)
	auth := NewAuthService(cfg)

	return &Service{
		Auth:      auth,
		User:      NewUserService(rep.User, auth, cfg, sender, logger),
		Publisher: NewPublisherService(rep.Publisher, rep.User, guard, sender, logger),
		Game:      NewGameService(rep.Game, rep, guard, storage, sender, logger),
		Health:    NewHealthService(rep.Health, storage),
	}
}

// notifier sends best-effort emails. Failures are logged and never returned.
type notifier struct {
	sender email.Sender
	logger logging.Logger
}

func newNotifier(sender email.Sender, logger logging.Logger) notifier {
	if logger == nil {
		logger = logging.Discard()
	}
	return notifier{sender: sender, logger: logger}
}

func (n notifier) notify(ctx context.Context, recipient, subject, template string, data map[string]any) {
	if n.sender == nil || recipient == "" {
		return
	}
	if err := n.sender.SendHTMLTemplateEmail(ctx, []string{recipient}, subject, template, data); err != nil {
		n.logger.Warn(ctx, "notification failed", "template", template, "error", err)
	}
}
