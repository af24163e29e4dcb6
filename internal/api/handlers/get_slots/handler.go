package get_slots

import (
	"errors"
	"net/http"

	"github.com/gorilla/mux"

	"github.com/sarthakk1890/CureAi/internal/api/handlers"
	generateSlots "github.com/sarthakk1890/CureAi/internal/usecase/generate_slots"
	"github.com/sarthakk1890/CureAi/pkg/metrics"
)

const (
	msgMissingDoctorID = "ID доктора обязателен"
	msgMissingDate     = "дата обязательна"
	msgInvalidDate     = "некорректный формат даты, ожидается YYYY-MM-DD"
	msgDoctorNotFound  = "доктор не найден"
	msgInvalidInput    = "некорректные параметры запроса"
)

type Handler struct {
	useCase GenerateSlotsUseCase
	metrics *metrics.Metrics
	logger  Logger
}

func NewHandler(useCase GenerateSlotsUseCase, m *metrics.Metrics, logger Logger) *Handler {
	return &Handler{
		useCase: useCase,
		metrics: m,
		logger:  logger,
	}
}

// Handle GET /api/v1/doctors/{doctorId}/slots
// Query params: date (required, YYYY-MM-DD)
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	vars := mux.Vars(r)

	doctorID := vars["doctorId"]
	if doctorID == "" {
		h.logger.Warn("GET /doctors/{id}/slots - Missing doctor ID")
		handlers.RespondBadRequest(w, msgMissingDoctorID)
		return
	}

	dateStr := r.URL.Query().Get("date")
	if dateStr == "" {
		h.logger.Warn("GET /doctors/{id}/slots - Missing date: doctor_id=%s", doctorID)
		handlers.RespondBadRequest(w, msgMissingDate)
		return
	}

	useCaseReq, err := ToUseCaseRequest(doctorID, dateStr)
	if err != nil {
		h.logger.Warn("GET /doctors/{id}/slots - Invalid date format: doctor_id=%s, date=%s, error=%v",
			doctorID, dateStr, err)
		handlers.RespondBadRequest(w, msgInvalidDate)
		return
	}

	result, err := h.useCase.Execute(r.Context(), useCaseReq)
	if err != nil {
		switch {
		case errors.Is(err, generateSlots.ErrDoctorNotFound):
			h.logger.Warn("GET /doctors/{id}/slots - Doctor not found: doctor_id=%s", doctorID)
			handlers.RespondNotFound(w, msgDoctorNotFound)

		case errors.Is(err, generateSlots.ErrInvalidInput):
			h.logger.Warn("GET /doctors/{id}/slots - Invalid input: doctor_id=%s, error=%v", doctorID, err)
			handlers.RespondBadRequest(w, msgInvalidInput)

		default:
			h.logger.Error("GET /doctors/{id}/slots - Failed to generate slots: doctor_id=%s, date=%s, error=%v",
				doctorID, dateStr, err)
			handlers.RespondInternalError(w)
		}
		return
	}

	if h.metrics != nil {
		h.metrics.SlotsGeneratedTotal.WithLabelValues("morning").Add(float64(len(result.Morning)))
		h.metrics.SlotsGeneratedTotal.WithLabelValues("afternoon").Add(float64(len(result.Afternoon)))
	}

	h.logger.Info("GET /doctors/{id}/slots - Slots generated: doctor_id=%s, date=%s, morning=%d, afternoon=%d",
		doctorID, dateStr, len(result.Morning), len(result.Afternoon))
	handlers.RespondJSON(w, http.StatusOK, FromUseCaseResponse(result))
}
