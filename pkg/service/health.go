package service

import (
	"context"
)

const StatusHealthy = "healthy"

type HealthService interface {
	Root(ctx context.Context) *RootStatus
	Health(ctx context.Context) *HealthStatus
}

type RootStatus struct {
	Message   string `json:"message"`
	Status    string `json:"status"`
	Timestamp string `json:"timestamp"`
}

type HealthStatus struct {
	Status    string `json:"status"`
	Service   string `json:"service"`
	Version   string `json:"version"`
	Timestamp string `json:"timestamp"`
}
