package generate_slots

import (
	"context"
	"time"

	"github.com/sarthakk1890/CureAi/internal/domain"
)

// DoctorServiceClient интерфейс клиента для DoctorService
type DoctorServiceClient interface {
	GetAvailability(ctx context.Context, doctorID string) (*domain.AvailabilityConfig, error)
}

// AppointmentServiceClient интерфейс клиента для AppointmentService
type AppointmentServiceClient interface {
	// GetBookedWindowsWithGracefulDegradation получает занятые окна доктора,
	// при недоступности сервиса возвращает ErrServiceDegraded
	GetBookedWindowsWithGracefulDegradation(ctx context.Context, doctorID string) ([]domain.BookedWindow, error)
}

// ScheduleCache интерфейс кэша расписаний
type ScheduleCache interface {
	GetConfig(doctorID string) (*domain.AvailabilityConfig, bool)
	StoreConfig(doctorID string, cfg *domain.AvailabilityConfig)
	GetBookedWindows(doctorID string) ([]domain.BookedWindow, bool)
	StoreBookedWindows(doctorID string, windows []domain.BookedWindow)
}

// TimeProvider интерфейс для получения текущего времени (для тестирования)
type TimeProvider interface {
	Now() time.Time
}

// Logger интерфейс для логирования
type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}

// RealTimeProvider реальный провайдер времени для production
type RealTimeProvider struct{}

// Now возвращает текущее время
func (p *RealTimeProvider) Now() time.Time {
	return time.Now()
}
