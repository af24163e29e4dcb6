package list_appointments

import (
	"context"

	"github.com/sarthakk1890/CureAi/internal/domain"
	"github.com/sarthakk1890/CureAi/internal/integrations/appointmentservice"
)

type AppointmentServiceClient interface {
	ListAppointments(ctx context.Context, page, limit int) ([]*domain.Appointment, *appointmentservice.Pagination, error)
}

type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
