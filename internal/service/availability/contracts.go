package availability

import (
	"context"

	"github.com/sarthakk1890/CureAi/internal/domain"
)

// DoctorServiceClient интерфейс клиента для DoctorService
type DoctorServiceClient interface {
	GetAvailability(ctx context.Context, doctorID string) (*domain.AvailabilityConfig, error)
	// UpdateAvailability отправляет конфигурацию целиком и возвращает
	// авторитетную версию, сохраненную сервисом
	UpdateAvailability(ctx context.Context, cfg *domain.AvailabilityConfig) (*domain.AvailabilityConfig, error)
}

// ScheduleCache интерфейс кэша расписаний
type ScheduleCache interface {
	GetConfig(doctorID string) (*domain.AvailabilityConfig, bool)
	StoreConfig(doctorID string, cfg *domain.AvailabilityConfig)
}

// Logger интерфейс для логирования
type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
