package appointmentservice

import (
	"github.com/sarthakk1890/CureAi/internal/domain"
	"github.com/sarthakk1890/CureAi/pkg/types"
)

// NewAppointmentRequest тело запроса на создание записи
type NewAppointmentRequest struct {
	DoctorID       string                `json:"doctorId"`
	PatientID      string                `json:"patientId"`
	Date           string                `json:"date"`      // YYYY-MM-DD
	TimeSlot       string                `json:"time_slot"` // "9:00 AM - 9:30 AM"
	Reference      string                `json:"reference"` // клиентский идемпотентный ключ
	PatientDetails PatientDetailsPayload `json:"patientDetails"`
}

// PatientDetailsPayload данные пациента в запросе
type PatientDetailsPayload struct {
	Age      int      `json:"age"`
	Gender   string   `json:"gender"`
	Symptoms []string `json:"symptoms"`
}

// appointmentPayload запись в ответах сервиса
type appointmentPayload struct {
	ID       string `json:"_id"`
	Date     string `json:"date"`
	TimeSlot string `json:"time_slot"`

	Doctor struct {
		ID   string `json:"_id"`
		Name string `json:"name"`
	} `json:"doctor"`

	Patient struct {
		ID   string `json:"_id"`
		Name string `json:"name"`
	} `json:"patient"`

	PatientDetails PatientDetailsPayload `json:"patient_details"`

	MeetLink string `json:"meet_link"`
}

// appointmentResponse обертка ответа на создание/чтение записи
type appointmentResponse struct {
	Success     bool                `json:"success"`
	Appointment *appointmentPayload `json:"appointment"`
	Message     string              `json:"message"`
}

// appointmentsListResponse обертка ответа со списком записей
type appointmentsListResponse struct {
	Success      bool                 `json:"success"`
	Appointments []appointmentPayload `json:"appointments"`
	Pagination   Pagination           `json:"pagination"`
	Message      string               `json:"message"`
}

// unavailableSlotsResponse обертка ответа с занятыми окнами доктора
type unavailableSlotsResponse struct {
	Success          bool `json:"success"`
	UnavailableSlots []struct {
		Date string `json:"date"`
		Time string `json:"time"`
	} `json:"unavailable_slots"`
	Message string `json:"message"`
}

// Pagination параметры страницы в списочных ответах
type Pagination struct {
	Total      int `json:"total"`
	Page       int `json:"page"`
	Limit      int `json:"limit"`
	TotalPages int `json:"totalPages"`
}

// toDomain конвертирует payload записи в доменную модель
func (p *appointmentPayload) toDomain() (*domain.Appointment, error) {
	date, err := types.NewDateStampFromString(p.Date)
	if err != nil {
		return nil, err
	}

	return &domain.Appointment{
		ID:          p.ID,
		Date:        date,
		TimeSlot:    p.TimeSlot,
		DoctorID:    p.Doctor.ID,
		DoctorName:  p.Doctor.Name,
		PatientID:   p.Patient.ID,
		PatientName: p.Patient.Name,
		Details: domain.PatientDetails{
			Age:      p.PatientDetails.Age,
			Gender:   p.PatientDetails.Gender,
			Symptoms: p.PatientDetails.Symptoms,
		},
		MeetLink: p.MeetLink,
	}, nil
}
