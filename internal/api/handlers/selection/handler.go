package selection

import (
	"errors"
	"net/http"

	"github.com/sarthakk1890/CureAi/internal/api/handlers"
	"github.com/sarthakk1890/CureAi/internal/api/middleware"
	availabilityService "github.com/sarthakk1890/CureAi/internal/service/availability"
	calendarService "github.com/sarthakk1890/CureAi/internal/service/calendar"
	"github.com/sarthakk1890/CureAi/pkg/types"
)

const (
	msgInvalidRequestBody = "некорректное тело запроса"
	msgMissingDoctorID    = "ID доктора обязателен"
	msgNoSession          = "сессия выбора не открыта"
	msgInvalidTransition  = "операция недопустима в текущей фазе"
	msgReasonRequired     = "причина визита обязательна"
	msgDoctorNotFound     = "доктор не найден"
	msgUnauthorized       = "требуется аутентификация"
)

type Handler struct {
	calendar     CalendarService
	availability AvailabilityProvider
	logger       Logger
}

func NewHandler(calendar CalendarService, availability AvailabilityProvider, logger Logger) *Handler {
	return &Handler{
		calendar:     calendar,
		availability: availability,
		logger:       logger,
	}
}

// HandleOpen POST /api/v1/selection/open
func (h *Handler) HandleOpen(w http.ResponseWriter, r *http.Request) {
	patientID, ok := h.patientID(w, r)
	if !ok {
		return
	}

	state, err := h.calendar.Open(patientID)
	if err != nil {
		h.logger.Error("POST /selection/open - Failed: patient_id=%s, error=%v", patientID, err)
		handlers.RespondInternalError(w)
		return
	}

	h.logger.Info("POST /selection/open - Opened: patient_id=%s, month=%s", patientID, state.DisplayedMonth)
	handlers.RespondJSON(w, http.StatusOK, FromState(state))
}

// HandleClose POST /api/v1/selection/close
func (h *Handler) HandleClose(w http.ResponseWriter, r *http.Request) {
	patientID, ok := h.patientID(w, r)
	if !ok {
		return
	}

	h.calendar.Close(patientID)
	h.logger.Info("POST /selection/close - Closed: patient_id=%s", patientID)
	handlers.RespondJSON(w, http.StatusNoContent, nil)
}

// HandleState GET /api/v1/selection
func (h *Handler) HandleState(w http.ResponseWriter, r *http.Request) {
	patientID, ok := h.patientID(w, r)
	if !ok {
		return
	}

	state, err := h.calendar.State(patientID)
	if err != nil {
		h.respondSessionError(w, "GET /selection", patientID, err)
		return
	}

	handlers.RespondJSON(w, http.StatusOK, FromState(state))
}

// HandleAdvanceMonth POST /api/v1/selection/month/next
func (h *Handler) HandleAdvanceMonth(w http.ResponseWriter, r *http.Request) {
	h.navigateMonth(w, r, "POST /selection/month/next", h.calendar.AdvanceMonth)
}

// HandleRetreatMonth POST /api/v1/selection/month/prev
func (h *Handler) HandleRetreatMonth(w http.ResponseWriter, r *http.Request) {
	h.navigateMonth(w, r, "POST /selection/month/prev", h.calendar.RetreatMonth)
}

// HandleSelectDate POST /api/v1/selection/date
func (h *Handler) HandleSelectDate(w http.ResponseWriter, r *http.Request) {
	patientID, ok := h.patientID(w, r)
	if !ok {
		return
	}

	var req SelectDateRequest
	if err := handlers.DecodeJSON(r, &req); err != nil {
		h.logger.Warn("POST /selection/date - Invalid request body: %v", err)
		handlers.RespondBadRequest(w, msgInvalidRequestBody)
		return
	}
	if req.DoctorID == "" {
		handlers.RespondBadRequest(w, msgMissingDoctorID)
		return
	}

	cfg, err := h.availability.Load(r.Context(), req.DoctorID)
	if err != nil {
		if errors.Is(err, availabilityService.ErrDoctorNotFound) {
			handlers.RespondNotFound(w, msgDoctorNotFound)
			return
		}
		h.logger.Error("POST /selection/date - Failed to load availability: doctor_id=%s, error=%v", req.DoctorID, err)
		handlers.RespondInternalError(w)
		return
	}

	if err := h.calendar.SelectDate(patientID, types.DateStamp(req.Date), cfg); err != nil {
		h.respondSessionError(w, "POST /selection/date", patientID, err)
		return
	}

	// Клик по недоступной ячейке инертен: ответ всегда текущее состояние
	state, err := h.calendar.State(patientID)
	if err != nil {
		h.respondSessionError(w, "POST /selection/date", patientID, err)
		return
	}
	handlers.RespondJSON(w, http.StatusOK, FromState(state))
}

// HandleSelectSlot POST /api/v1/selection/slot
func (h *Handler) HandleSelectSlot(w http.ResponseWriter, r *http.Request) {
	patientID, ok := h.patientID(w, r)
	if !ok {
		return
	}

	var req SelectSlotRequest
	if err := handlers.DecodeJSON(r, &req); err != nil {
		h.logger.Warn("POST /selection/slot - Invalid request body: %v", err)
		handlers.RespondBadRequest(w, msgInvalidRequestBody)
		return
	}

	start, err := types.NormalizeClockString(req.StartTime)
	if err != nil {
		handlers.RespondBadRequest(w, msgInvalidRequestBody)
		return
	}

	err = h.calendar.SelectSlot(patientID, calendarService.SelectedSlot{
		Start:    start,
		TimeSlot: req.TimeSlot,
	})
	if err != nil {
		h.respondSessionError(w, "POST /selection/slot", patientID, err)
		return
	}

	state, err := h.calendar.State(patientID)
	if err != nil {
		h.respondSessionError(w, "POST /selection/slot", patientID, err)
		return
	}
	handlers.RespondJSON(w, http.StatusOK, FromState(state))
}

// HandleSetReason POST /api/v1/selection/reason
func (h *Handler) HandleSetReason(w http.ResponseWriter, r *http.Request) {
	patientID, ok := h.patientID(w, r)
	if !ok {
		return
	}

	var req SetReasonRequest
	if err := handlers.DecodeJSON(r, &req); err != nil {
		h.logger.Warn("POST /selection/reason - Invalid request body: %v", err)
		handlers.RespondBadRequest(w, msgInvalidRequestBody)
		return
	}

	if err := h.calendar.SetReason(patientID, req.Reason); err != nil {
		h.respondSessionError(w, "POST /selection/reason", patientID, err)
		return
	}

	handlers.RespondJSON(w, http.StatusNoContent, nil)
}

// HandleReset POST /api/v1/selection/reset
func (h *Handler) HandleReset(w http.ResponseWriter, r *http.Request) {
	patientID, ok := h.patientID(w, r)
	if !ok {
		return
	}

	if err := h.calendar.Reset(patientID); err != nil {
		h.respondSessionError(w, "POST /selection/reset", patientID, err)
		return
	}

	state, err := h.calendar.State(patientID)
	if err != nil {
		h.respondSessionError(w, "POST /selection/reset", patientID, err)
		return
	}
	handlers.RespondJSON(w, http.StatusOK, FromState(state))
}

// HandleGrid GET /api/v1/selection/grid
// Query params: doctorId (required)
func (h *Handler) HandleGrid(w http.ResponseWriter, r *http.Request) {
	patientID, ok := h.patientID(w, r)
	if !ok {
		return
	}

	doctorID := r.URL.Query().Get("doctorId")
	if doctorID == "" {
		handlers.RespondBadRequest(w, msgMissingDoctorID)
		return
	}

	cfg, err := h.availability.Load(r.Context(), doctorID)
	if err != nil {
		if errors.Is(err, availabilityService.ErrDoctorNotFound) {
			handlers.RespondNotFound(w, msgDoctorNotFound)
			return
		}
		h.logger.Error("GET /selection/grid - Failed to load availability: doctor_id=%s, error=%v", doctorID, err)
		handlers.RespondInternalError(w)
		return
	}

	cells, err := h.calendar.MonthGrid(patientID, cfg)
	if err != nil {
		h.respondSessionError(w, "GET /selection/grid", patientID, err)
		return
	}

	state, err := h.calendar.State(patientID)
	if err != nil {
		h.respondSessionError(w, "GET /selection/grid", patientID, err)
		return
	}

	handlers.RespondJSON(w, http.StatusOK, FromGrid(state.DisplayedMonth.String(), cells))
}

func (h *Handler) navigateMonth(w http.ResponseWriter, r *http.Request, route string, navigate func(string) (types.YearMonth, error)) {
	patientID, ok := h.patientID(w, r)
	if !ok {
		return
	}

	if _, err := navigate(patientID); err != nil {
		h.respondSessionError(w, route, patientID, err)
		return
	}

	state, err := h.calendar.State(patientID)
	if err != nil {
		h.respondSessionError(w, route, patientID, err)
		return
	}
	handlers.RespondJSON(w, http.StatusOK, FromState(state))
}

func (h *Handler) patientID(w http.ResponseWriter, r *http.Request) (string, bool) {
	patientID, ok := middleware.UserIDFromContext(r.Context())
	if !ok {
		handlers.RespondError(w, http.StatusUnauthorized, msgUnauthorized)
		return "", false
	}
	return patientID, true
}

func (h *Handler) respondSessionError(w http.ResponseWriter, route, patientID string, err error) {
	switch {
	case errors.Is(err, calendarService.ErrNoSession):
		h.logger.Warn("%s - No session: patient_id=%s", route, patientID)
		handlers.RespondNotFound(w, msgNoSession)

	case errors.Is(err, calendarService.ErrInvalidTransition):
		h.logger.Warn("%s - Invalid transition: patient_id=%s", route, patientID)
		handlers.RespondConflict(w, msgInvalidTransition)

	case errors.Is(err, calendarService.ErrReasonRequired):
		h.logger.Warn("%s - Reason required: patient_id=%s", route, patientID)
		handlers.RespondBadRequest(w, msgReasonRequired)

	case errors.Is(err, calendarService.ErrInvalidInput):
		h.logger.Warn("%s - Invalid input: patient_id=%s", route, patientID)
		handlers.RespondBadRequest(w, msgInvalidRequestBody)

	default:
		h.logger.Error("%s - Failed: patient_id=%s, error=%v", route, patientID, err)
		handlers.RespondInternalError(w)
	}
}
