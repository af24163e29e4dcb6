package update_availability

import (
	"context"

	"github.com/sarthakk1890/CureAi/internal/domain"
)

type AvailabilityService interface {
	Update(ctx context.Context, cfg *domain.AvailabilityConfig) (*domain.AvailabilityConfig, error)
}

type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
