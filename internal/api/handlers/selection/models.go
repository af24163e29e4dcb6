package selection

import (
	calendarService "github.com/sarthakk1890/CureAi/internal/service/calendar"
)

// SelectDateRequest HTTP request model выбора даты
type SelectDateRequest struct {
	DoctorID string `json:"doctorId"`
	Date     string `json:"date"` // YYYY-MM-DD
}

// SelectSlotRequest HTTP request model выбора слота
type SelectSlotRequest struct {
	StartTime string `json:"startTime"` // "HH:MM"
	TimeSlot  string `json:"time_slot"` // "9:00 AM - 9:30 AM"
}

// SetReasonRequest HTTP request model причины визита
type SetReasonRequest struct {
	Reason string `json:"reason"`
}

// StateResponse HTTP response model состояния сессии
type StateResponse struct {
	Phase          string        `json:"phase"`
	DisplayedMonth string        `json:"displayedMonth"` // YYYY-MM
	SelectedDate   string        `json:"selectedDate,omitempty"`
	SelectedSlot   *SelectedSlot `json:"selectedSlot,omitempty"`
	Reason         string        `json:"reason,omitempty"`
}

// SelectedSlot выбранный слот в HTTP ответе
type SelectedSlot struct {
	StartTime string `json:"startTime"`
	TimeSlot  string `json:"time_slot"`
}

// GridResponse HTTP response model календарной сетки
type GridResponse struct {
	Month string `json:"month"` // YYYY-MM
	Days  []Day  `json:"days"`
}

// Day ячейка сетки
type Day struct {
	Date  string `json:"date"`
	State string `json:"state"`
}

// FromState конвертирует состояние сессии в HTTP response
func FromState(state *calendarService.SelectionState) *StateResponse {
	resp := &StateResponse{
		Phase:          string(state.Phase),
		DisplayedMonth: state.DisplayedMonth.String(),
		SelectedDate:   state.SelectedDate.String(),
		Reason:         state.Reason,
	}
	if state.SelectedSlot != nil {
		resp.SelectedSlot = &SelectedSlot{
			StartTime: state.SelectedSlot.Start.String(),
			TimeSlot:  state.SelectedSlot.TimeSlot,
		}
	}
	return resp
}

// FromGrid конвертирует сетку месяца в HTTP response
func FromGrid(month string, cells []calendarService.DayCell) *GridResponse {
	resp := &GridResponse{
		Month: month,
		Days:  make([]Day, 0, len(cells)),
	}
	for _, cell := range cells {
		resp.Days = append(resp.Days, Day{
			Date:  cell.Date.String(),
			State: string(cell.State),
		})
	}
	return resp
}
