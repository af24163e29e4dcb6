package book_appointment

import (
	"github.com/sarthakk1890/CureAi/internal/domain"
	"github.com/sarthakk1890/CureAi/pkg/types"
)

// Request модель запроса на создание записи.
// Identity пациента передается явно вместе с заявкой - workflow не держит
// собственного представления о текущем пользователе
type Request struct {
	Session  domain.PatientSession // Аутентифицированная сессия пациента
	DoctorID string                // ID доктора
	Date     types.DateStamp       // Дата приема
	Start    types.TimeString      // Время начала выбранного слота ("09:00")
	Reason   string                // Причина визита, обязательна
}

// Response модель ответа с подтвержденной записью
type Response struct {
	Appointment *domain.Appointment
	TimeSlot    string // Метка диапазона, под которой запись была создана
}
