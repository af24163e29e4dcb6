package get_availability

import (
	"errors"
	"net/http"

	"github.com/gorilla/mux"

	"github.com/sarthakk1890/CureAi/internal/api/handlers"
	availabilityService "github.com/sarthakk1890/CureAi/internal/service/availability"
)

const (
	msgMissingDoctorID = "ID доктора обязателен"
	msgDoctorNotFound  = "доктор не найден"
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

// Handle GET /api/v1/doctors/{doctorId}/availability
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	vars := mux.Vars(r)

	doctorID := vars["doctorId"]
	if doctorID == "" {
		h.logger.Warn("GET /doctors/{id}/availability - Missing doctor ID")
		handlers.RespondBadRequest(w, msgMissingDoctorID)
		return
	}

	cfg, err := h.service.Load(r.Context(), doctorID)
	if err != nil {
		switch {
		case errors.Is(err, availabilityService.ErrDoctorNotFound):
			h.logger.Warn("GET /doctors/{id}/availability - Doctor not found: doctor_id=%s", doctorID)
			handlers.RespondNotFound(w, msgDoctorNotFound)

		case errors.Is(err, availabilityService.ErrInvalidInput):
			h.logger.Warn("GET /doctors/{id}/availability - Invalid input: doctor_id=%s, error=%v", doctorID, err)
			handlers.RespondBadRequest(w, msgMissingDoctorID)

		default:
			h.logger.Error("GET /doctors/{id}/availability - Failed: doctor_id=%s, error=%v", doctorID, err)
			handlers.RespondInternalError(w)
		}
		return
	}

	h.logger.Info("GET /doctors/{id}/availability - Loaded: doctor_id=%s", doctorID)
	handlers.RespondJSON(w, http.StatusOK, FromDomain(cfg))
}
