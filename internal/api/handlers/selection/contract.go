package selection

import (
	"context"

	"github.com/sarthakk1890/CureAi/internal/domain"
	calendarService "github.com/sarthakk1890/CureAi/internal/service/calendar"
	"github.com/sarthakk1890/CureAi/pkg/types"
)

type CalendarService interface {
	Open(patientID string) (*calendarService.SelectionState, error)
	Close(patientID string)
	State(patientID string) (*calendarService.SelectionState, error)
	AdvanceMonth(patientID string) (types.YearMonth, error)
	RetreatMonth(patientID string) (types.YearMonth, error)
	SelectDate(patientID string, date types.DateStamp, cfg *domain.AvailabilityConfig) error
	SelectSlot(patientID string, slot calendarService.SelectedSlot) error
	SetReason(patientID, reason string) error
	Reset(patientID string) error
	MonthGrid(patientID string, cfg *domain.AvailabilityConfig) ([]calendarService.DayCell, error)
}

// AvailabilityProvider отдает конфигурацию доктора для вычисления сетки
type AvailabilityProvider interface {
	Load(ctx context.Context, doctorID string) (*domain.AvailabilityConfig, error)
}

type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
