package update_availability

import (
	"fmt"

	"github.com/sarthakk1890/CureAi/internal/domain"
	"github.com/sarthakk1890/CureAi/pkg/types"
)

// UpdateAvailabilityRequest HTTP request model, конфигурация целиком
type UpdateAvailabilityRequest struct {
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

// AvailabilityResponse HTTP response model: авторитетная версия после сохранения
type AvailabilityResponse struct {
	DoctorID string `json:"doctorId"`
	UpdateAvailabilityRequest
}

// FromDomain конвертирует сохраненную конфигурацию в HTTP response
func FromDomain(cfg *domain.AvailabilityConfig) *AvailabilityResponse {
	resp := &AvailabilityResponse{
		DoctorID: cfg.DoctorID,
		UpdateAvailabilityRequest: UpdateAvailabilityRequest{
			UnavailableDays:  make([]string, 0, len(cfg.UnavailableDays)),
			UnavailableDates: make([]string, 0, len(cfg.UnavailableDates)),
			WorkingHours:     make([]WorkingHour, 0, len(cfg.WorkingHours)),
			RecurringBreaks:  make([]RecurringBreak, 0, len(cfg.RecurringBreaks)),
			BlockedSlots:     make([]BlockedSlot, 0, len(cfg.BlockedIntervals)),
			SlotDuration:     cfg.SlotDurationMinutes,
			BufferTime:       cfg.BufferTimeMinutes,
			MeetLenMins:      cfg.MeetingLengthMinutes,
		},
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

// ToDomain конвертирует запрос в доменную конфигурацию.
// Времена нормализуются на входной границе: принимается и "HH:MM",
// и полный timestamp
func (r *UpdateAvailabilityRequest) ToDomain(doctorID string) (*domain.AvailabilityConfig, error) {
	cfg := &domain.AvailabilityConfig{
		DoctorID:             doctorID,
		UnavailableDays:      make([]domain.Weekday, 0, len(r.UnavailableDays)),
		UnavailableDates:     make([]types.DateStamp, 0, len(r.UnavailableDates)),
		WorkingHours:         make([]domain.WorkingHourRule, 0, len(r.WorkingHours)),
		RecurringBreaks:      make([]domain.RecurringBreak, 0, len(r.RecurringBreaks)),
		BlockedIntervals:     make([]domain.BlockedInterval, 0, len(r.BlockedSlots)),
		SlotDurationMinutes:  r.SlotDuration,
		BufferTimeMinutes:    r.BufferTime,
		MeetingLengthMinutes: r.MeetLenMins,
	}

	for _, raw := range r.UnavailableDays {
		day, err := domain.ParseWeekday(raw)
		if err != nil {
			return nil, err
		}
		cfg.UnavailableDays = append(cfg.UnavailableDays, day)
	}

	for _, raw := range r.UnavailableDates {
		date, err := types.NewDateStampFromString(raw)
		if err != nil {
			return nil, err
		}
		cfg.UnavailableDates = append(cfg.UnavailableDates, date)
	}

	for _, rule := range r.WorkingHours {
		day, err := domain.ParseWeekday(rule.Day)
		if err != nil {
			return nil, err
		}
		start, err := types.NormalizeClockString(rule.StartTime)
		if err != nil {
			return nil, fmt.Errorf("working hours start: %w", err)
		}
		end, err := types.NormalizeClockString(rule.EndTime)
		if err != nil {
			return nil, fmt.Errorf("working hours end: %w", err)
		}
		cfg.WorkingHours = append(cfg.WorkingHours, domain.WorkingHourRule{Day: day, Start: start, End: end})
	}

	for _, brk := range r.RecurringBreaks {
		days := make([]domain.Weekday, 0, len(brk.Days))
		for _, raw := range brk.Days {
			day, err := domain.ParseWeekday(raw)
			if err != nil {
				return nil, err
			}
			days = append(days, day)
		}
		start, err := types.NormalizeClockString(brk.StartTime)
		if err != nil {
			return nil, fmt.Errorf("break start: %w", err)
		}
		end, err := types.NormalizeClockString(brk.EndTime)
		if err != nil {
			return nil, fmt.Errorf("break end: %w", err)
		}
		cfg.RecurringBreaks = append(cfg.RecurringBreaks, domain.RecurringBreak{
			Type:  domain.BreakType(brk.BreakType),
			Days:  days,
			Start: start,
			End:   end,
		})
	}

	for _, blocked := range r.BlockedSlots {
		startDate, err := types.NewDateStampFromString(blocked.StartDate)
		if err != nil {
			return nil, fmt.Errorf("blocked slot start date: %w", err)
		}
		endDate, err := types.NewDateStampFromString(blocked.EndDate)
		if err != nil {
			return nil, fmt.Errorf("blocked slot end date: %w", err)
		}
		startTime, err := types.NormalizeClockString(blocked.StartTime)
		if err != nil {
			return nil, fmt.Errorf("blocked slot start time: %w", err)
		}
		endTime, err := types.NormalizeClockString(blocked.EndTime)
		if err != nil {
			return nil, fmt.Errorf("blocked slot end time: %w", err)
		}
		cfg.BlockedIntervals = append(cfg.BlockedIntervals, domain.BlockedInterval{
			Start:  domain.Timestamp{Date: startDate, Time: startTime},
			End:    domain.Timestamp{Date: endDate, Time: endTime},
			Reason: blocked.Reason,
		})
	}

	return cfg, nil
}
