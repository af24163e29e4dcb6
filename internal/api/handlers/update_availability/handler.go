package update_availability

import (
	"errors"
	"net/http"

	"github.com/gorilla/mux"

	"github.com/sarthakk1890/CureAi/internal/api/handlers"
	availabilityService "github.com/sarthakk1890/CureAi/internal/service/availability"
)

const (
	msgMissingDoctorID    = "ID доктора обязателен"
	msgInvalidRequestBody = "некорректное тело запроса"
	msgDoctorNotFound     = "доктор не найден"
	msgUpdateRejected     = "обновление расписания отклонено"
)

type Handler struct {
	service AvailabilityService
	logger  Logger
}

func NewHandler(service AvailabilityService, logger Logger) *Handler {
	return &Handler{
		service: service,
		logger:  logger,
	}
}

// Handle PUT /api/v1/doctors/{doctorId}/availability
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	vars := mux.Vars(r)

	doctorID := vars["doctorId"]
	if doctorID == "" {
		h.logger.Warn("PUT /doctors/{id}/availability - Missing doctor ID")
		handlers.RespondBadRequest(w, msgMissingDoctorID)
		return
	}

	var req UpdateAvailabilityRequest
	if err := handlers.DecodeJSON(r, &req); err != nil {
		h.logger.Warn("PUT /doctors/{id}/availability - Invalid request body: doctor_id=%s, error=%v", doctorID, err)
		handlers.RespondBadRequest(w, msgInvalidRequestBody)
		return
	}

	cfg, err := req.ToDomain(doctorID)
	if err != nil {
		h.logger.Warn("PUT /doctors/{id}/availability - Invalid payload: doctor_id=%s, error=%v", doctorID, err)
		handlers.RespondBadRequest(w, msgInvalidRequestBody)
		return
	}

	saved, err := h.service.Update(r.Context(), cfg)
	if err != nil {
		switch {
		case errors.Is(err, availabilityService.ErrDoctorNotFound):
			h.logger.Warn("PUT /doctors/{id}/availability - Doctor not found: doctor_id=%s", doctorID)
			handlers.RespondNotFound(w, msgDoctorNotFound)

		case errors.Is(err, availabilityService.ErrInvalidInput):
			h.logger.Warn("PUT /doctors/{id}/availability - Invalid config: doctor_id=%s, error=%v", doctorID, err)
			handlers.RespondBadRequest(w, msgInvalidRequestBody)

		case errors.Is(err, availabilityService.ErrUpdateRejected):
			h.logger.Warn("PUT /doctors/{id}/availability - Rejected: doctor_id=%s, error=%v", doctorID, err)
			handlers.RespondConflict(w, msgUpdateRejected)

		default:
			h.logger.Error("PUT /doctors/{id}/availability - Failed: doctor_id=%s, error=%v", doctorID, err)
			handlers.RespondInternalError(w)
		}
		return
	}

	h.logger.Info("PUT /doctors/{id}/availability - Updated: doctor_id=%s, rules=%d",
		doctorID, len(saved.WorkingHours))
	handlers.RespondJSON(w, http.StatusOK, FromDomain(saved))
}
