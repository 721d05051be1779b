package handlers

import (
	"encoding/json"
	"fmt"
	"net/http"

	"github.com/go-playground/validator/v10"

	"gameborrow/internal/config"
	"gameborrow/internal/logging"
	"gameborrow/internal/models"
	"gameborrow/internal/service"
)

type Handlers struct {
	GameService      service.GameService
	PublisherService service.PublisherService
	UserService      service.UserService
	HealthService    service.HealthService
	Cfg              *config.Config
	Validate         *validator.Validate
	Logger           logging.Logger
}

func NewHandlers(service *service.Service, config *config.Config, logger logging.Logger) *Handlers {
	if logger == nil {
		logger = logging.Discard()
	}

	return &Handlers{
		GameService:      service.Game,
		PublisherService: service.Publisher,
		UserService:      service.User,
		HealthService:    service.Health,
		Cfg:              config,
		Validate:         NewValidator(),
		Logger:           logger,
	}
}

// decode reads a JSON body into dst and validates it.
func (h *Handlers) decode(r *http.Request, dst any) error {
	if err := json.NewDecoder(r.Body).Decode(dst); err != nil {
		return fmt.Errorf("malformed request body: %w", models.ErrValidation)
	}
	return h.Validate.Struct(dst)
}

// fail logs unexpected errors and writes the error envelope.
func (h *Handlers) fail(w http.ResponseWriter, r *http.Request, err error) {
	if StatusOf(err) == http.StatusInternalServerError {
		h.Logger.Error(r.Context(), "request failed", "method", r.Method, "path", r.URL.Path, "error", err)
	}
	WriteError(w, err)
}

func (h *Handlers) userID(r *http.Request) (string, error) {
	userID, ok := UserIDFromContext(r.Context())
	if !ok {
		return "", models.ErrUnauthenticated
	}
	return userID, nil
}
