package core

import (
	"context"
	"time"

	"github.com/navikt/dbinfo-backend/pkg/service"
)

var _ service.HealthService = &healthService{}

type healthService struct {
	name    string
	version string
	now     func() time.Time
}

func (s *healthService) Root(_ context.Context) *service.RootStatus {
	return &service.RootStatus{
		Message:   s.name + " is running",
		Status:    service.StatusHealthy,
		Timestamp: service.Timestamp(s.now()),
	}
}

// Health never touches the database, it only reports that the process is up
func (s *healthService) Health(_ context.Context) *service.HealthStatus {
	return &service.HealthStatus{
		Status:    service.StatusHealthy,
		Service:   s.name,
		Version:   s.version,
		Timestamp: service.Timestamp(s.now()),
	}
}

func NewHealthService(name, version string, now func() time.Time) *healthService {
	return &healthService{
		name:    name,
		version: version,
		now:     now,
	}
}
