package create_appointment

import (
	"context"

	bookAppointment "github.com/sarthakk1890/CureAi/internal/usecase/book_appointment"
)

type BookAppointmentUseCase interface {
	Execute(ctx context.Context, req *bookAppointment.Request) (*bookAppointment.Response, error)
}

// CalendarService двигает фазу сессии выбора вместе с заявкой.
// Сессия может отсутствовать (запись через чистый API) - это не ошибка
type CalendarService interface {
	BeginSubmit(patientID string) error
	ConfirmSubmit(patientID string) error
	FailSubmit(patientID string) error
}

type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
