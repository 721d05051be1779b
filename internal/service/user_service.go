package service

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"
	"golang.org/x/crypto/bcrypt"

	"gameborrow/internal/config"
	"gameborrow/internal/email"
	"gameborrow/internal/logging"
	"gameborrow/internal/models"
	"gameborrow/internal/repository"
)

type UserService interface {
	SignUp(ctx context.Context, req models.SignUpRequest) (*models.User, error)
	Login(ctx context.Context, email, password string) (string, error)
	VerifyEmail(ctx context.Context, token string) error
	RequestPasswordReset(ctx context.Context, email string) error
	ResetPassword(ctx context.Context, token, password string) error
}

type userService struct {
	users repository.UserRepository
	auth  AuthService
	cfg   *config.Config
	now   func() time.Time
	notifier
}

func NewUserService(
	users repository.UserRepository,
	auth AuthService,
	cfg *config.Config,
	sender email.Sender,
	logger logging.Logger,
) UserService {
	return &userService{
		users:    users,
		auth:     auth,
		cfg:      cfg,
		now:      time.Now,
		notifier: newNotifier(sender, logger),
	}
}

func (s *userService) newToken() *models.Token {
	return &models.Token{Value: uuid.NewString(), CreatedAt: s.now().UTC()}
}

// SignUp stores an unverified user and mails the verification token.
func (s *userService) SignUp(ctx context.Context, req models.SignUpRequest) (*models.User, error) {
	hash, err := bcrypt.GenerateFromPassword([]byte(req.Password), s.cfg.BcryptCost)
	if err != nil {
		return nil, fmt.Errorf("hash password: %w", err)
	}

	user := &models.User{
		Email:             req.Email,
		Password:          string(hash),
		Role:              req.Role,
		Verified:          false,
		EmailVerification: s.newToken(),
	}

	if err := s.users.Create(ctx, user); err != nil {
		return nil, fmt.Errorf("create user: %w", err)
	}

	s.notify(ctx, user.Email, "Email Verification", email.TemplateEmailVerification, map[string]any{
		"email": user.Email,
		"token": user.EmailVerification.Value,
	})

	return user, nil
}

func (s *userService) Login(ctx context.Context, userEmail, password string) (string, error) {
	user, err := s.users.GetByEmail(ctx, userEmail)
	if err != nil {
		if errors.Is(err, models.ErrNotFound) {
			return "", models.ErrInvalidCredentials
		}
		return "", fmt.Errorf("fetch user: %w", err)
	}

	if err := bcrypt.CompareHashAndPassword([]byte(user.Password), []byte(password)); err != nil {
		return "", models.ErrInvalidCredentials
	}

	if !user.Verified {
		return "", models.ErrEmailNotVerified
	}

	token, err := s.auth.GenerateToken(user.ID)
	if err != nil {
		return "", fmt.Errorf("issue token: %w", err)
	}

	return token, nil
}

func (s *userService) VerifyEmail(ctx context.Context, token string) error {
	user, err := s.users.GetByEmailVerificationToken(ctx, token)
	if err != nil {
		if errors.Is(err, models.ErrNotFound) {
			return models.ErrInvalidToken
		}
		return fmt.Errorf("fetch user: %w", err)
	}

	user.Verified = true
	user.EmailVerification = nil

	if err := s.users.Update(ctx, user); err != nil {
		return fmt.Errorf("verify user: %w", err)
	}

	return nil
}

// RequestPasswordReset issues a new reset token unless a live one exists.
// An expired token is discarded first.
func (s *userService) RequestPasswordReset(ctx context.Context, userEmail string) error {
	user, err := s.users.GetByEmail(ctx, userEmail)
	if err != nil {
		if errors.Is(err, models.ErrNotFound) {
			return fmt.Errorf("no user with such email was found: %w", models.ErrValidation)
		}
		return fmt.Errorf("fetch user: %w", err)
	}

	if !user.Verified {
		return models.ErrEmailNotVerified
	}

	if user.PasswordToken != nil && !user.PasswordToken.Expired(s.cfg.PasswordTokenLifespan, s.now()) {
		return models.ErrTokenNotYetExpired
	}

	user.PasswordToken = s.newToken()

	if err := s.users.Update(ctx, user); err != nil {
		return fmt.Errorf("store password token: %w", err)
	}

	s.notify(ctx, user.Email, "Resetting Password", email.TemplatePasswordReset, map[string]any{
		"email": user.Email,
		"token": user.PasswordToken.Value,
	})

	return nil
}

// ResetPassword replaces the password when token is live. An expired token is
// cleared and the password is left untouched.
func (s *userService) ResetPassword(ctx context.Context, token, password string) error {
	user, err := s.users.GetByPasswordToken(ctx, token)
	if err != nil {
		if errors.Is(err, models.ErrNotFound) {
			return models.ErrInvalidToken
		}
		return fmt.Errorf("fetch user: %w", err)
	}

	if user.PasswordToken == nil || user.PasswordToken.Expired(s.cfg.PasswordTokenLifespan, s.now()) {
		user.PasswordToken = nil
		if err := s.users.Update(ctx, user); err != nil {
			return fmt.Errorf("clear password token: %w", err)
		}
		return models.ErrTokenExpired
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(password), s.cfg.BcryptCost)
	if err != nil {
		return fmt.Errorf("hash password: %w", err)
	}

	user.Password = string(hash)
	user.PasswordToken = nil

	if err := s.users.Update(ctx, user); err != nil {
		return fmt.Errorf("update password: %w", err)
	}

	return nil
}
