package app

import (
	"context"
	"fmt"

	"gameborrow/internal/config"
	"gameborrow/internal/database"
	"gameborrow/internal/email"
	"gameborrow/internal/logging"
	"gameborrow/internal/repository"
	"gameborrow/internal/service"
	"gameborrow/internal/storage"
)

// Components are the long-lived dependencies built at startup.
type Components struct {
	DB       *database.DB
	Mailer   *email.AsyncSender
	Services *service.Service
}

func App(ctx context.Context, cfg *config.Config, logger logging.Logger) (*Components, error) {
	// connection DB
	db, err := database.ConnectDB(ctx, cfg)
	if err != nil {
		return nil, err
	}

	// connection MinIO
	minioClient, err := storage.NewMinIOClient(ctx, cfg.MinIO)
	if err != nil {
		db.CloseDB()
		return nil, fmt.Errorf("init minio: %w", err)
	}

	mailer := email.NewAsyncSender(email.NewClient(cfg.Email), logger)

	// enabling dependencies
	repo := repository.NewRepository(db.DB)
	services := service.NewService(repo, cfg, minioClient, mailer, logger)

	return &Components{DB: db, Mailer: mailer, Services: services}, nil
}
