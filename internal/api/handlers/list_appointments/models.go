package list_appointments

import (
	"github.com/sarthakk1890/CureAi/internal/domain"
	"github.com/sarthakk1890/CureAi/internal/integrations/appointmentservice"
)

// AppointmentsResponse HTTP response model
type AppointmentsResponse struct {
	Appointments []Appointment `json:"appointments"`
	Pagination   *Pagination   `json:"pagination,omitempty"`
}

// Appointment запись в списке
type Appointment struct {
	ID          string `json:"id"`
	Date        string `json:"date"`
	TimeSlot    string `json:"time_slot"`
	DoctorID    string `json:"doctorId"`
	DoctorName  string `json:"doctorName,omitempty"`
	PatientID   string `json:"patientId"`
	PatientName string `json:"patientName,omitempty"`
	MeetLink    string `json:"meetLink,omitempty"`
}

// Pagination данные пагинации
type Pagination struct {
	Total      int `json:"total"`
	Page       int `json:"page"`
	Limit      int `json:"limit"`
	TotalPages int `json:"totalPages"`
}

// FromDomain конвертирует список записей в HTTP response
func FromDomain(appointments []*domain.Appointment, pagination *appointmentservice.Pagination) *AppointmentsResponse {
	resp := &AppointmentsResponse{
		Appointments: make([]Appointment, 0, len(appointments)),
	}

	for _, a := range appointments {
		resp.Appointments = append(resp.Appointments, Appointment{
			ID:          a.ID,
			Date:        a.Date.String(),
			TimeSlot:    a.TimeSlot,
			DoctorID:    a.DoctorID,
			DoctorName:  a.DoctorName,
			PatientID:   a.PatientID,
			PatientName: a.PatientName,
			MeetLink:    a.MeetLink,
		})
	}

	if pagination != nil {
		resp.Pagination = &Pagination{
			Total:      pagination.Total,
			Page:       pagination.Page,
			Limit:      pagination.Limit,
			TotalPages: pagination.TotalPages,
		}
	}

	return resp
}
