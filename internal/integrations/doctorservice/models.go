package doctorservice

import (
	"time"

	"github.com/sarthakk1890/CureAi/internal/domain"
	"github.com/sarthakk1890/CureAi/pkg/types"
)

// DoctorPayload модель доктора в том виде, в котором её отдает DoctorService
// Времена в полях start_time/end_time приходят либо как "HH:MM", либо как
// полный timestamp - нормализация выполняется здесь, на границе интеграции
type DoctorPayload struct {
	ID   string `json:"_id"`
	Name string `json:"name"`

	SlotDuration int `json:"slot_duration"`
	BufferTime   int `json:"buffer_time"`
	MeetLenMins  int `json:"meet_len_mins"`

	WorkingHours []WorkingHourPayload `json:"working_hours"`
	OffDays      []string             `json:"off_days"`

	RecurringBreaks []RecurringBreakPayload `json:"recurring_breaks"`
	BlockedSlots    []BlockedSlotPayload    `json:"blocked_slots"`

	UnavailableDates []string `json:"unavailable_dates"`
}

// WorkingHourPayload рабочий интервал одного дня недели
type WorkingHourPayload struct {
	Day       string `json:"day"`
	StartTime string `json:"start_time"`
	EndTime   string `json:"end_time"`
}

// RecurringBreakPayload регулярный перерыв
type RecurringBreakPayload struct {
	BreakType string   `json:"break_type"`
	Days      []string `json:"days"`
	StartTime string   `json:"start_time"`
	EndTime   string   `json:"end_time"`
}

// BlockedSlotPayload разовый заблокированный интервал (полные timestamps)
type BlockedSlotPayload struct {
	StartTime string  `json:"start_time"`
	EndTime   string  `json:"end_time"`
	Reason    *string `json:"reason,omitempty"`
}

// doctorResponse обертка ответа DoctorService
type doctorResponse struct {
	Success bool           `json:"success"`
	Data    *DoctorPayload `json:"data"`
	Message string         `json:"message"`
}

// timestampLayouts форматы абсолютных timestamp, которые присылает сервис
var timestampLayouts = []string{
	time.RFC3339,
	"2006-01-02T15:04:05",
	"2006-01-02 15:04:05",
	"2006-01-02T15:04",
}

// parseTimestamp разбирает абсолютный timestamp в пару (дата, время суток)
func parseTimestamp(s string) (domain.Timestamp, error) {
	for _, layout := range timestampLayouts {
		if t, err := time.Parse(layout, s); err == nil {
			return domain.Timestamp{
				Date: types.NewDateStamp(t),
				Time: types.NewTimeString(t),
			}, nil
		}
	}
	return domain.Timestamp{}, types.ErrInvalidDateStamp
}

// ToDomain конвертирует payload в доменную конфигурацию доступности
// Неразбираемые правила пропускаются: одна битая запись не должна
// останавливать генерацию слотов для всей даты
func (p *DoctorPayload) ToDomain(log Logger) *domain.AvailabilityConfig {
	cfg := domain.DefaultAvailabilityConfig(p.ID)

	if p.SlotDuration > 0 {
		cfg.SlotDurationMinutes = p.SlotDuration
	}
	if p.BufferTime >= 0 {
		cfg.BufferTimeMinutes = p.BufferTime
	}
	if p.MeetLenMins > 0 {
		cfg.MeetingLengthMinutes = p.MeetLenMins
	}

	for _, raw := range p.OffDays {
		day, err := domain.ParseWeekday(raw)
		if err != nil {
			log.Warn("doctorservice: skipping unknown off day %q for doctor=%s", raw, p.ID)
			continue
		}
		cfg.UnavailableDays = append(cfg.UnavailableDays, day)
	}

	for _, raw := range p.UnavailableDates {
		date, err := types.NewDateStampFromString(raw)
		if err != nil {
			log.Warn("doctorservice: skipping malformed unavailable date %q for doctor=%s", raw, p.ID)
			continue
		}
		cfg.UnavailableDates = append(cfg.UnavailableDates, date)
	}

	for _, wh := range p.WorkingHours {
		day, err := domain.ParseWeekday(wh.Day)
		if err != nil {
			log.Warn("doctorservice: skipping working hours with unknown day %q for doctor=%s", wh.Day, p.ID)
			continue
		}
		start, err := types.NormalizeClockString(wh.StartTime)
		if err != nil {
			log.Warn("doctorservice: skipping working hours with malformed start %q for doctor=%s", wh.StartTime, p.ID)
			continue
		}
		end, err := types.NormalizeClockString(wh.EndTime)
		if err != nil {
			log.Warn("doctorservice: skipping working hours with malformed end %q for doctor=%s", wh.EndTime, p.ID)
			continue
		}
		cfg.WorkingHours = append(cfg.WorkingHours, domain.WorkingHourRule{Day: day, Start: start, End: end})
	}

	for _, brk := range p.RecurringBreaks {
		start, err := types.NormalizeClockString(brk.StartTime)
		if err != nil {
			log.Warn("doctorservice: skipping break with malformed start %q for doctor=%s", brk.StartTime, p.ID)
			continue
		}
		end, err := types.NormalizeClockString(brk.EndTime)
		if err != nil {
			log.Warn("doctorservice: skipping break with malformed end %q for doctor=%s", brk.EndTime, p.ID)
			continue
		}

		days := make([]domain.Weekday, 0, len(brk.Days))
		for _, raw := range brk.Days {
			day, err := domain.ParseWeekday(raw)
			if err != nil {
				log.Warn("doctorservice: skipping unknown break day %q for doctor=%s", raw, p.ID)
				continue
			}
			days = append(days, day)
		}

		cfg.RecurringBreaks = append(cfg.RecurringBreaks, domain.RecurringBreak{
			Type:  domain.BreakType(brk.BreakType),
			Days:  days,
			Start: start,
			End:   end,
		})
	}

	for _, blocked := range p.BlockedSlots {
		start, err := parseTimestamp(blocked.StartTime)
		if err != nil {
			log.Warn("doctorservice: skipping blocked slot with malformed start %q for doctor=%s", blocked.StartTime, p.ID)
			continue
		}
		end, err := parseTimestamp(blocked.EndTime)
		if err != nil {
			log.Warn("doctorservice: skipping blocked slot with malformed end %q for doctor=%s", blocked.EndTime, p.ID)
			continue
		}
		cfg.BlockedIntervals = append(cfg.BlockedIntervals, domain.BlockedInterval{
			Start:  start,
			End:    end,
			Reason: blocked.Reason,
		})
	}

	return cfg
}

// FromDomain собирает payload обновления из доменной конфигурации
// Отправляется полная конфигурация, а не дифф
func FromDomain(cfg *domain.AvailabilityConfig) *DoctorPayload {
	payload := &DoctorPayload{
		ID:               cfg.DoctorID,
		SlotDuration:     cfg.SlotDurationMinutes,
		BufferTime:       cfg.BufferTimeMinutes,
		MeetLenMins:      cfg.MeetingLengthMinutes,
		WorkingHours:     make([]WorkingHourPayload, 0, len(cfg.WorkingHours)),
		OffDays:          make([]string, 0, len(cfg.UnavailableDays)),
		RecurringBreaks:  make([]RecurringBreakPayload, 0, len(cfg.RecurringBreaks)),
		BlockedSlots:     make([]BlockedSlotPayload, 0, len(cfg.BlockedIntervals)),
		UnavailableDates: make([]string, 0, len(cfg.UnavailableDates)),
	}

	for _, day := range cfg.UnavailableDays {
		payload.OffDays = append(payload.OffDays, day.Wire())
	}
	for _, date := range cfg.UnavailableDates {
		payload.UnavailableDates = append(payload.UnavailableDates, date.String())
	}
	for _, wh := range cfg.WorkingHours {
		payload.WorkingHours = append(payload.WorkingHours, WorkingHourPayload{
			Day:       wh.Day.Wire(),
			StartTime: wh.Start.String(),
			EndTime:   wh.End.String(),
		})
	}
	for _, brk := range cfg.RecurringBreaks {
		days := make([]string, 0, len(brk.Days))
		for _, day := range brk.Days {
			days = append(days, day.Wire())
		}
		payload.RecurringBreaks = append(payload.RecurringBreaks, RecurringBreakPayload{
			BreakType: string(brk.Type),
			Days:      days,
			StartTime: brk.Start.String(),
			EndTime:   brk.End.String(),
		})
	}
	for _, blocked := range cfg.BlockedIntervals {
		payload.BlockedSlots = append(payload.BlockedSlots, BlockedSlotPayload{
			StartTime: blocked.Start.Date.String() + "T" + blocked.Start.Time.String() + ":00",
			EndTime:   blocked.End.Date.String() + "T" + blocked.End.Time.String() + ":00",
			Reason:    blocked.Reason,
		})
	}

	return payload
}
