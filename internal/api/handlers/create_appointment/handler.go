package create_appointment

import (
	"errors"
	"net/http"

	"github.com/sarthakk1890/CureAi/internal/api/handlers"
	"github.com/sarthakk1890/CureAi/internal/api/middleware"
	appointmentClient "github.com/sarthakk1890/CureAi/internal/integrations/appointmentservice"
	calendarService "github.com/sarthakk1890/CureAi/internal/service/calendar"
	bookAppointment "github.com/sarthakk1890/CureAi/internal/usecase/book_appointment"
	"github.com/sarthakk1890/CureAi/pkg/metrics"
)

const (
	msgInvalidRequestBody = "некорректное тело запроса"
	msgInvalidTime        = "некорректный формат времени начала, ожидается HH:MM"
	msgReasonRequired     = "причина визита обязательна"
	msgInvalidDate        = "некорректная дата записи"
	msgSlotNotAvailable   = "выбранный слот недоступен"
	msgDoctorNotFound     = "доктор не найден"
	msgDuplicateSubmit    = "заявка уже отправляется"
	msgUnauthorized       = "требуется аутентификация"
)

type Handler struct {
	useCase  BookAppointmentUseCase
	calendar CalendarService
	metrics  *metrics.Metrics
	logger   Logger
}

func NewHandler(useCase BookAppointmentUseCase, calendar CalendarService, m *metrics.Metrics, logger Logger) *Handler {
	return &Handler{
		useCase:  useCase,
		calendar: calendar,
		metrics:  m,
		logger:   logger,
	}
}

// Handle POST /api/v1/appointments
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	patientID, ok := middleware.UserIDFromContext(r.Context())
	if !ok {
		handlers.RespondError(w, http.StatusUnauthorized, msgUnauthorized)
		return
	}

	var req CreateAppointmentRequest
	if err := handlers.DecodeJSON(r, &req); err != nil {
		h.logger.Warn("POST /appointments - Invalid request body: %v", err)
		handlers.RespondBadRequest(w, msgInvalidRequestBody)
		return
	}

	useCaseReq, err := req.ToUseCaseRequest(patientID)
	if err != nil {
		h.logger.Warn("POST /appointments - Invalid start time: patient_id=%s, start=%q, error=%v",
			patientID, req.Start, err)
		handlers.RespondBadRequest(w, msgInvalidTime)
		return
	}

	// Фаза сессии двигается вместе с заявкой; отсутствие сессии не мешает записи
	h.beginSubmit(patientID)

	result, err := h.useCase.Execute(r.Context(), useCaseReq)
	if err != nil {
		h.failSubmit(patientID)
		h.countBooking("rejected")

		var rejection *appointmentClient.RejectionError
		switch {
		case errors.As(err, &rejection):
			// Отказ сервиса записей показывается пациенту дословно
			h.logger.Warn("POST /appointments - Rejected: patient_id=%s, doctor_id=%s, message=%q",
				patientID, req.DoctorID, rejection.Message)
			handlers.RespondConflict(w, rejection.Message)

		case errors.Is(err, bookAppointment.ErrReasonRequired):
			h.logger.Warn("POST /appointments - Missing reason: patient_id=%s", patientID)
			handlers.RespondBadRequest(w, msgReasonRequired)

		case errors.Is(err, bookAppointment.ErrInvalidDate):
			h.logger.Warn("POST /appointments - Invalid date: patient_id=%s, date=%s", patientID, req.Date)
			handlers.RespondBadRequest(w, msgInvalidDate)

		case errors.Is(err, bookAppointment.ErrSlotNotAvailable):
			h.logger.Warn("POST /appointments - Slot not available: patient_id=%s, doctor_id=%s",
				patientID, req.DoctorID)
			handlers.RespondConflict(w, msgSlotNotAvailable)

		case errors.Is(err, bookAppointment.ErrSubmissionInFlight):
			h.logger.Warn("POST /appointments - Duplicate submission: patient_id=%s, doctor_id=%s",
				patientID, req.DoctorID)
			handlers.RespondConflict(w, msgDuplicateSubmit)

		case errors.Is(err, bookAppointment.ErrDoctorNotFound):
			h.logger.Warn("POST /appointments - Doctor not found: doctor_id=%s", req.DoctorID)
			handlers.RespondNotFound(w, msgDoctorNotFound)

		case errors.Is(err, bookAppointment.ErrInvalidInput):
			h.logger.Warn("POST /appointments - Invalid input: patient_id=%s, error=%v", patientID, err)
			handlers.RespondBadRequest(w, msgInvalidRequestBody)

		default:
			h.logger.Error("POST /appointments - Failed: patient_id=%s, doctor_id=%s, error=%v",
				patientID, req.DoctorID, err)
			handlers.RespondInternalError(w)
		}
		return
	}

	h.confirmSubmit(patientID)
	h.countBooking("confirmed")

	h.logger.Info("POST /appointments - Created: appointment_id=%s, patient_id=%s, doctor_id=%s, slot=%s",
		result.Appointment.ID, patientID, req.DoctorID, result.TimeSlot)
	handlers.RespondJSON(w, http.StatusCreated, FromUseCaseResponse(result))
}

func (h *Handler) beginSubmit(patientID string) {
	if h.calendar == nil {
		return
	}
	if err := h.calendar.BeginSubmit(patientID); err != nil && !errors.Is(err, calendarService.ErrNoSession) {
		h.logger.Warn("POST /appointments - Calendar session out of phase: patient_id=%s, error=%v", patientID, err)
	}
}

func (h *Handler) confirmSubmit(patientID string) {
	if h.calendar == nil {
		return
	}
	if err := h.calendar.ConfirmSubmit(patientID); err != nil && !errors.Is(err, calendarService.ErrNoSession) {
		h.logger.Warn("POST /appointments - Calendar confirm out of phase: patient_id=%s, error=%v", patientID, err)
	}
}

func (h *Handler) failSubmit(patientID string) {
	if h.calendar == nil {
		return
	}
	if err := h.calendar.FailSubmit(patientID); err != nil && !errors.Is(err, calendarService.ErrNoSession) {
		h.logger.Warn("POST /appointments - Calendar fail out of phase: patient_id=%s, error=%v", patientID, err)
	}
}

func (h *Handler) countBooking(outcome string) {
	if h.metrics != nil {
		h.metrics.BookingsTotal.WithLabelValues(outcome).Inc()
	}
}
