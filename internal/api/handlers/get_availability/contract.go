package get_availability

import (
	"context"

	"github.com/sarthakk1890/CureAi/internal/domain"
)

type AvailabilityService interface {
	Load(ctx context.Context, doctorID string) (*domain.AvailabilityConfig, error)
}

type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
