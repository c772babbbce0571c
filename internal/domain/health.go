package domain

import "context"

const (
	HealthStatusHealthy   = "healthy"
	HealthStatusUnhealthy = "unhealthy"
)

// HealthStatus is the body served by GET /health.
type HealthStatus struct {
	Status           string `json:"status"`
	NotionConnection string `json:"notionConnection,omitempty"`
	Error            string `json:"error,omitempty"`
	Timestamp        string `json:"timestamp"`
}

// Healthy reports whether the record store is configured and reachable.
func (s *HealthStatus) Healthy() bool {
	return s.Status == HealthStatusHealthy
}

type HealthUsecase interface {
	Check(ctx context.Context) *HealthStatus
}
