package get_slots

import (
	"github.com/sarthakk1890/CureAi/pkg/types"

	generateSlots "github.com/sarthakk1890/CureAi/internal/usecase/generate_slots"
)

// SlotsResponse HTTP response model
type SlotsResponse struct {
	DoctorID  string `json:"doctorId"`
	Date      string `json:"date"`
	Degraded  bool   `json:"degraded,omitempty"`
	Morning   []Slot `json:"morning"`
	Afternoon []Slot `json:"afternoon"`
}

// Slot модель слота в HTTP ответе
type Slot struct {
	StartTime string `json:"startTime"` // "09:00"
	EndTime   string `json:"endTime"`   // "09:30"
	Label     string `json:"label"`     // "9:00 AM"
	TimeSlot  string `json:"time_slot"` // "9:00 AM - 9:30 AM"
}

// FromUseCaseResponse конвертирует ответ use case в HTTP response
func FromUseCaseResponse(resp *generateSlots.Response) *SlotsResponse {
	return &SlotsResponse{
		DoctorID:  resp.DoctorID,
		Date:      resp.Date.String(),
		Degraded:  resp.Degraded,
		Morning:   convertSlots(resp.Morning),
		Afternoon: convertSlots(resp.Afternoon),
	}
}

func convertSlots(slots []generateSlots.Slot) []Slot {
	result := make([]Slot, len(slots))
	for i, slot := range slots {
		result[i] = Slot{
			StartTime: slot.StartTime.String(),
			EndTime:   slot.EndTime.String(),
			Label:     slot.Label,
			TimeSlot:  slot.TimeSlot,
		}
	}
	return result
}

// ToUseCaseRequest создает запрос use case из параметров запроса
func ToUseCaseRequest(doctorID, dateStr string) (*generateSlots.Request, error) {
	date, err := types.NewDateStampFromString(dateStr)
	if err != nil {
		return nil, err
	}

	return &generateSlots.Request{
		DoctorID: doctorID,
		Date:     date,
	}, nil
}
