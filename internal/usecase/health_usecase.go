package usecase

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	"rsvp-backend/config"
	"rsvp-backend/internal/domain"
)

type healthUsecase struct {
	cfg   *config.Config
	store domain.RecordStore
	log   *slog.Logger
	now   func() time.Time
}

func NewHealthUsecase(cfg *config.Config, store domain.RecordStore, log *slog.Logger) domain.HealthUsecase {
	return &healthUsecase{
		cfg:   cfg,
		store: store,
		log:   log,
		now:   time.Now,
	}
}

// Check verifies the Notion settings and reads the database once. It is also
// run at startup, where a failure is only logged.
func (u *healthUsecase) Check(ctx context.Context) *domain.HealthStatus {
	timestamp := u.now().UTC().Format(time.RFC3339Nano)

	if err := u.cfg.NotionConfigured(); err != nil {
		return unhealthy(err.Error(), timestamp)
	}

	if _, err := u.store.RetrieveDatabase(ctx, u.cfg.NotionDatabaseID); err != nil {
		msg := fmt.Sprintf("Failed to connect to Notion database: %v", err)
		u.log.ErrorContext(ctx, msg)
		return unhealthy(msg, timestamp)
	}

	u.log.DebugContext(ctx, "Successfully connected to Notion database")
	return &domain.HealthStatus{
		Status:           domain.HealthStatusHealthy,
		NotionConnection: "ok",
		Timestamp:        timestamp,
	}
}

func unhealthy(msg, timestamp string) *domain.HealthStatus {
	return &domain.HealthStatus{
		Status:    domain.HealthStatusUnhealthy,
		Error:     msg,
		Timestamp: timestamp,
	}
}
