package list_appointments

import (
	"net/http"
	"strconv"

	"github.com/sarthakk1890/CureAi/internal/api/handlers"
)

const (
	msgInvalidPage  = "некорректный номер страницы"
	msgInvalidLimit = "некорректный размер страницы"

	defaultPage  = 1
	defaultLimit = 20
	maxLimit     = 100
)

type Handler struct {
	client AppointmentServiceClient
	logger Logger
}

func NewHandler(client AppointmentServiceClient, logger Logger) *Handler {
	return &Handler{
		client: client,
		logger: logger,
	}
}

// Handle GET /api/v1/appointments
// Query params: page, limit (опциональные)
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	page := defaultPage
	if raw := r.URL.Query().Get("page"); raw != "" {
		parsed, err := strconv.Atoi(raw)
		if err != nil || parsed < 1 {
			h.logger.Warn("GET /appointments - Invalid page: %q", raw)
			handlers.RespondBadRequest(w, msgInvalidPage)
			return
		}
		page = parsed
	}

	limit := defaultLimit
	if raw := r.URL.Query().Get("limit"); raw != "" {
		parsed, err := strconv.Atoi(raw)
		if err != nil || parsed < 1 || parsed > maxLimit {
			h.logger.Warn("GET /appointments - Invalid limit: %q", raw)
			handlers.RespondBadRequest(w, msgInvalidLimit)
			return
		}
		limit = parsed
	}

	appointments, pagination, err := h.client.ListAppointments(r.Context(), page, limit)
	if err != nil {
		h.logger.Error("GET /appointments - Failed: page=%d, limit=%d, error=%v", page, limit, err)
		handlers.RespondInternalError(w)
		return
	}

	h.logger.Info("GET /appointments - Listed: page=%d, limit=%d, count=%d", page, limit, len(appointments))
	handlers.RespondJSON(w, http.StatusOK, FromDomain(appointments, pagination))
}
