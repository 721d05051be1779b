package main

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/gorilla/mux"

	"gameborrow/cmd/app"
	"gameborrow/internal/config"
	handlers "gameborrow/internal/handler"
	"gameborrow/internal/logging"
	"gameborrow/internal/middleware"
)

func main() {
	logger := logging.NewJSONLogger(os.Stdout)

	// setting up config
	cfg := config.LoadConfig()
	if cfg.JWTSecretKey == "" {
		logger.Error(context.Background(), "JWT_SECRET_KEY is not set")
		os.Exit(1)
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	components, err := app.App(ctx, cfg, logger)
	if err != nil {
		logger.Error(ctx, "startup failed", "error", err)
		os.Exit(1)
	}

	h := handlers.NewHandlers(components.Services, cfg, logger)
	router := newRouter(cfg, h, components)

	srv := &http.Server{
		Addr:              fmt.Sprintf(":%d", cfg.ServerPort),
		Handler:           router,
		ReadHeaderTimeout: 10 * time.Second,
		ReadTimeout:       30 * time.Second,
		WriteTimeout:      30 * time.Second,
		IdleTimeout:       time.Minute,
	}

	go func() {
		logger.Info(ctx, "server started", "addr", srv.Addr, "database", cfg.DB.DbNAME)
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			logger.Error(ctx, "server stopped", "error", err)
			stop()
		}
	}()

	<-ctx.Done()
	logger.Info(context.Background(), "shutting down")

	shutdownCtx, cancel := context.WithTimeout(context.Background(), cfg.ShutdownTimeout)
	defer cancel()

	if err := srv.Shutdown(shutdownCtx); err != nil {
		logger.Error(shutdownCtx, "http shutdown", "error", err)
	}
	if err := components.Mailer.Wait(shutdownCtx); err != nil {
		logger.Warn(shutdownCtx, "pending emails were dropped", "error", err)
	}
	if err := components.DB.CloseDB(); err != nil {
		logger.Error(shutdownCtx, "close database", "error", err)
	}
}

func newRouter(cfg *config.Config, h *handlers.Handlers, components *app.Components) http.Handler {
	root := mux.NewRouter()
	api := root.PathPrefix(cfg.APIPrefix).Subrouter()

	// public routes
	api.HandleFunc("/health", h.Health).Methods(http.MethodGet)
	api.HandleFunc("/games", h.GetGames).Methods(http.MethodGet)
	api.HandleFunc("/game/{gameId}", h.GetGame).Methods(http.MethodGet)
	api.HandleFunc("/publishers", h.GetPublishers).Methods(http.MethodGet)
	api.HandleFunc("/publisher/{publisherId}", h.GetPublisher).Methods(http.MethodGet)

	api.HandleFunc("/sign-up", h.SignUp).Methods(http.MethodPost, http.MethodPut)
	api.HandleFunc("/login", h.Login).Methods(http.MethodPost)
	api.HandleFunc("/user/verified/{token}", h.VerifyEmail).Methods(http.MethodPut)
	api.HandleFunc("/password-token", h.RequestPasswordToken).Methods(http.MethodPut)
	api.HandleFunc("/password/{token}", h.ResetPassword).Methods(http.MethodPut)

	// routes that need a bearer token
	protected := api.NewRoute().Subrouter()
	protected.Use(mux.MiddlewareFunc(middleware.AuthMiddleware(components.Services.Auth)))

	protected.HandleFunc("/game", h.CreateGame).Methods(http.MethodPost)
	protected.HandleFunc("/game/{gameId}", h.PatchGame).Methods(http.MethodPatch)
	protected.HandleFunc("/game/{gameId}", h.DeleteGame).Methods(http.MethodDelete)
	protected.HandleFunc("/game/{gameId}/images", h.UploadGameImage).Methods(http.MethodPost)
	protected.HandleFunc("/publisher", h.CreatePublisher).Methods(http.MethodPost)
	protected.HandleFunc("/publisher/{publisherId}", h.PatchPublisher).Methods(http.MethodPatch)
	protected.HandleFunc("/publisher/{publisherId}/users", h.AddPublisherUser).Methods(http.MethodPost)

	return middleware.Chain(
		root,
		middleware.RecoverMiddleware(h.Logger),
		middleware.LoggingMiddleware(h.Logger),
		middleware.CORSMiddleware,
	)
}
