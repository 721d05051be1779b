package service

import (
	"context"

	"gameborrow/internal/repository"
	"gameborrow/internal/storage"
)

type HealthService interface {
	Check(ctx context.Context) error
}

type healthService struct {
	db      repository.HealthRepository
	storage storage.Storage
}

func NewHealthService(db repository.HealthRepository, storage storage.Storage) HealthService {
	return &healthService{db: db, storage: storage}
}

// Check reports the first unavailable backing service.
func (h *healthService) Check(ctx context.Context) error {
	if err := h.db.Ping(ctx); err != nil {
		return err
	}

	if h.storage != nil {
		if err := h.storage.BucketExists(ctx); err != nil {
			return err
		}
	}

	return nil
}
