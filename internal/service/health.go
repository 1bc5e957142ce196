package service

import (
	"context"

	"go.uber.org/zap"
)

type HealthRepository interface {
	PingDB(ctx context.Context) error
}

type HealthService struct {
	log        *zap.Logger
	healthRepo HealthRepository
}

func NewHealthService(log *zap.Logger, healthRepo HealthRepository) *HealthService {
	return &HealthService{
		log:        log,
		healthRepo: healthRepo,
	}
}

func (s *HealthService) Check(ctx context.Context) error {
	if err := s.healthRepo.PingDB(ctx); err != nil {
		s.log.Warn("health check failed", zap.Error(err))
		return err
	}

	return nil
}
