package create_appointment

import (
	"github.com/sarthakk1890/CureAi/internal/domain"
	bookAppointment "github.com/sarthakk1890/CureAi/internal/usecase/book_appointment"
	"github.com/sarthakk1890/CureAi/pkg/types"
)

// CreateAppointmentRequest HTTP request model
type CreateAppointmentRequest struct {
	DoctorID string `json:"doctorId"`
	Date     string `json:"date"`      // YYYY-MM-DD
	Start    string `json:"startTime"` // принимается "HH:MM" или полный timestamp
	Reason   string `json:"reason"`

	PatientDetails PatientDetails `json:"patientDetails"`
}

// PatientDetails данные пациента в запросе
type PatientDetails struct {
	Age      int      `json:"age"`
	Gender   string   `json:"gender"`
	Symptoms []string `json:"symptoms"`
}

// AppointmentResponse HTTP response model
type AppointmentResponse struct {
	ID          string `json:"id"`
	DoctorID    string `json:"doctorId"`
	DoctorName  string `json:"doctorName,omitempty"`
	PatientID   string `json:"patientId"`
	PatientName string `json:"patientName,omitempty"`
	Date        string `json:"date"`
	TimeSlot    string `json:"time_slot"`
	MeetLink    string `json:"meetLink,omitempty"`
}

// ToUseCaseRequest создает запрос use case.
// Время начала нормализуется на входной границе: дальше по ядру ходит
// только каноничный "HH:MM"
func (r *CreateAppointmentRequest) ToUseCaseRequest(patientID string) (*bookAppointment.Request, error) {
	start, err := types.NormalizeClockString(r.Start)
	if err != nil {
		return nil, err
	}

	return &bookAppointment.Request{
		Session: domain.PatientSession{
			PatientID: patientID,
			Details: domain.PatientDetails{
				Age:      r.PatientDetails.Age,
				Gender:   r.PatientDetails.Gender,
				Symptoms: r.PatientDetails.Symptoms,
			},
		},
		DoctorID: r.DoctorID,
		Date:     types.DateStamp(r.Date),
		Start:    start,
		Reason:   r.Reason,
	}, nil
}

// FromUseCaseResponse конвертирует ответ use case в HTTP response
func FromUseCaseResponse(resp *bookAppointment.Response) *AppointmentResponse {
	appointment := resp.Appointment
	return &AppointmentResponse{
		ID:          appointment.ID,
		DoctorID:    appointment.DoctorID,
		DoctorName:  appointment.DoctorName,
		PatientID:   appointment.PatientID,
		PatientName: appointment.PatientName,
		Date:        appointment.Date.String(),
		TimeSlot:    appointment.TimeSlot,
		MeetLink:    appointment.MeetLink,
	}
}
