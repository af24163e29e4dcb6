package get_availability

import (
	"github.com/sarthakk1890/CureAi/internal/domain"
)

// AvailabilityResponse HTTP response model
type AvailabilityResponse struct {
	DoctorID         string           `json:"doctorId"`
	UnavailableDays  []string         `json:"off_days"`
	UnavailableDates []string         `json:"unavailable_dates"`
	WorkingHours     []WorkingHour    `json:"working_hours"`
	RecurringBreaks  []RecurringBreak `json:"recurring_breaks"`
	BlockedSlots     []BlockedSlot    `json:"blocked_slots"`
	SlotDuration     int              `json:"slot_duration"`
	BufferTime       int              `json:"buffer_time"`
	MeetLenMins      int              `json:"meet_len_mins"`
}

// WorkingHour рабочее окно дня недели
type WorkingHour struct {
	Day       string `json:"day"`
	StartTime string `json:"start_time"`
	EndTime   string `json:"end_time"`
}

// RecurringBreak еженедельный перерыв
type RecurringBreak struct {
	BreakType string   `json:"break_type"`
	Days      []string `json:"days"`
	StartTime string   `json:"start_time"`
	EndTime   string   `json:"end_time"`
}

// BlockedSlot разовая блокировка
type BlockedSlot struct {
	StartDate string  `json:"start_date"`
	StartTime string  `json:"start_time"`
	EndDate   string  `json:"end_date"`
	EndTime   string  `json:"end_time"`
	Reason    *string `json:"reason,omitempty"`
}

// FromDomain конвертирует конфигурацию в HTTP response
func FromDomain(cfg *domain.AvailabilityConfig) *AvailabilityResponse {
	resp := &AvailabilityResponse{
		DoctorID:         cfg.DoctorID,
		UnavailableDays:  make([]string, 0, len(cfg.UnavailableDays)),
		UnavailableDates: make([]string, 0, len(cfg.UnavailableDates)),
		WorkingHours:     make([]WorkingHour, 0, len(cfg.WorkingHours)),
		RecurringBreaks:  make([]RecurringBreak, 0, len(cfg.RecurringBreaks)),
		BlockedSlots:     make([]BlockedSlot, 0, len(cfg.BlockedIntervals)),
		SlotDuration:     cfg.SlotDurationMinutes,
		BufferTime:       cfg.BufferTimeMinutes,
		MeetLenMins:      cfg.MeetingLengthMinutes,
	}

	for _, day := range cfg.UnavailableDays {
		resp.UnavailableDays = append(resp.UnavailableDays, day.Wire())
	}
	for _, date := range cfg.UnavailableDates {
		resp.UnavailableDates = append(resp.UnavailableDates, date.String())
	}
	for _, rule := range cfg.WorkingHours {
		resp.WorkingHours = append(resp.WorkingHours, WorkingHour{
			Day:       rule.Day.Wire(),
			StartTime: rule.Start.String(),
			EndTime:   rule.End.String(),
		})
	}
	for _, brk := range cfg.RecurringBreaks {
		days := make([]string, 0, len(brk.Days))
		for _, day := range brk.Days {
			days = append(days, day.Wire())
		}
		resp.RecurringBreaks = append(resp.RecurringBreaks, RecurringBreak{
			BreakType: string(brk.Type),
			Days:      days,
			StartTime: brk.Start.String(),
			EndTime:   brk.End.String(),
		})
	}
	for _, blocked := range cfg.BlockedIntervals {
		resp.BlockedSlots = append(resp.BlockedSlots, BlockedSlot{
			StartDate: blocked.Start.Date.String(),
			StartTime: blocked.Start.Time.String(),
			EndDate:   blocked.End.Date.String(),
			EndTime:   blocked.End.Time.String(),
			Reason:    blocked.Reason,
		})
	}

	return resp
}
