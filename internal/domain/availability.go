package domain

import (
	"github.com/sarthakk1890/CureAi/pkg/types"
)

// BreakType classifies a recurring break in a practitioner's week
type BreakType string

const (
	BreakLunch    BreakType = "lunch"
	BreakTea      BreakType = "tea"
	BreakMeeting  BreakType = "meeting"
	BreakPersonal BreakType = "personal"
)

// WorkingHourRule is a recurring weekly interval during which bookings are
// structurally possible for a given weekday. Several rules may exist for the
// same weekday (split shifts).
type WorkingHourRule struct {
	Day   Weekday
	Start types.TimeString
	End   types.TimeString
}

// RecurringBreak is a weekly-repeating unavailable window (e.g. lunch)
// scoped to a set of weekdays
type RecurringBreak struct {
	Type  BreakType
	Days  []Weekday
	Start types.TimeString
	End   types.TimeString
}

// AppliesOn returns true if the break is active on the given weekday
func (b *RecurringBreak) AppliesOn(day Weekday) bool {
	for _, d := range b.Days {
		if d == day {
			return true
		}
	}
	return false
}

// Timestamp is an absolute point in time: calendar date plus wall-clock time
type Timestamp struct {
	Date types.DateStamp
	Time types.TimeString
}

// BlockedInterval is a one-off, non-recurring unavailable absolute time window
type BlockedInterval struct {
	Start  Timestamp
	End    Timestamp
	Reason *string
}

// TimeWindow is a plain (start, end) pair of wall-clock times within one day
type TimeWindow struct {
	Start types.TimeString
	End   types.TimeString
}

// AvailabilityConfig describes one practitioner's recurring schedule:
// weekly working hours, exceptions, recurring breaks, one-off blocked
// intervals and the timing parameters of slot generation.
//
// The config is mutated exclusively through the availability editor and
// persisted through the doctor-service collaborator; the slot generator only
// ever reads a snapshot.
type AvailabilityConfig struct {
	DoctorID string

	UnavailableDays  []Weekday         // явное исключение дня недели, приоритетнее любых правил
	UnavailableDates []types.DateStamp // полностью исключенные даты (праздники и т.п.)
	WorkingHours     []WorkingHourRule
	RecurringBreaks  []RecurringBreak
	BlockedIntervals []BlockedInterval

	SlotDurationMinutes  int // шаг сетки стартовых времен
	BufferTimeMinutes    int // пауза после встречи, пациенту не показывается
	MeetingLengthMinutes int // фактическая длительность приема
}

// TotalSlotMinutes returns how much room one booking actually consumes:
// the meeting itself plus the buffer after it. The cursor of the generator
// still steps by SlotDurationMinutes - the two are deliberately decoupled.
func (c *AvailabilityConfig) TotalSlotMinutes() int {
	return c.MeetingLengthMinutes + c.BufferTimeMinutes
}

// IsWeekdayUnavailable returns true if the weekday is explicitly excluded
func (c *AvailabilityConfig) IsWeekdayUnavailable(day Weekday) bool {
	for _, d := range c.UnavailableDays {
		if d == day {
			return true
		}
	}
	return false
}

// IsDateUnavailable returns true if the date is fully excluded from booking.
// Ordered precedence: explicit date-level exclusion, then weekday-level
// exclusion, then absence of any working-hour rule for the weekday.
func (c *AvailabilityConfig) IsDateUnavailable(date types.DateStamp) bool {
	for _, d := range c.UnavailableDates {
		if d.Equal(date) {
			return true
		}
	}

	day := WeekdayOf(date.Weekday())
	if c.IsWeekdayUnavailable(day) {
		return true
	}

	return len(c.WorkingHoursFor(day)) == 0
}

// WorkingHoursFor returns the working-hour windows for a weekday, may be empty
func (c *AvailabilityConfig) WorkingHoursFor(day Weekday) []TimeWindow {
	windows := make([]TimeWindow, 0)
	for _, rule := range c.WorkingHours {
		if rule.Day == day {
			windows = append(windows, TimeWindow{Start: rule.Start, End: rule.End})
		}
	}
	return windows
}

// RecurringBreaksFor returns the break windows active on a weekday
func (c *AvailabilityConfig) RecurringBreaksFor(day Weekday) []TimeWindow {
	windows := make([]TimeWindow, 0)
	for _, brk := range c.RecurringBreaks {
		if brk.AppliesOn(day) {
			windows = append(windows, TimeWindow{Start: brk.Start, End: brk.End})
		}
	}
	return windows
}

// BlockedIntervalsOn returns the blocked windows attributed to a date.
// An interval belongs to the calendar date of its start; an end that crosses
// midnight into the next day is clamped to the end of the start date
// (no splitting across two days). An end at exactly 00:00 of the start's own
// calendar day is degenerate upstream data and is normalized to noon.
func (c *AvailabilityConfig) BlockedIntervalsOn(date types.DateStamp) []TimeWindow {
	windows := make([]TimeWindow, 0)

	for _, blocked := range c.BlockedIntervals {
		if !blocked.Start.Date.Equal(date) {
			continue
		}

		end := blocked.End.Time
		switch {
		case blocked.End.Date.Equal(blocked.Start.Date) && end.Minutes() == 0:
			// Известная аномалия данных календарного сервиса: конец в 00:00
			// того же дня означал бы нулевую блокировку - трактуем как полдень
			end = types.TimeString(NoonTime)
		case blocked.End.Date.After(blocked.Start.Date):
			end = types.TimeString(EndOfDayTime)
		}

		windows = append(windows, TimeWindow{Start: blocked.Start.Time, End: end})
	}

	return windows
}

// Clone returns a deep copy of the configuration. The slot generator and the
// availability editor each work on their own snapshot.
func (c *AvailabilityConfig) Clone() *AvailabilityConfig {
	clone := &AvailabilityConfig{
		DoctorID:             c.DoctorID,
		UnavailableDays:      append(make([]Weekday, 0, len(c.UnavailableDays)), c.UnavailableDays...),
		UnavailableDates:     append(make([]types.DateStamp, 0, len(c.UnavailableDates)), c.UnavailableDates...),
		WorkingHours:         append(make([]WorkingHourRule, 0, len(c.WorkingHours)), c.WorkingHours...),
		RecurringBreaks:      make([]RecurringBreak, 0, len(c.RecurringBreaks)),
		BlockedIntervals:     make([]BlockedInterval, 0, len(c.BlockedIntervals)),
		SlotDurationMinutes:  c.SlotDurationMinutes,
		BufferTimeMinutes:    c.BufferTimeMinutes,
		MeetingLengthMinutes: c.MeetingLengthMinutes,
	}

	for _, brk := range c.RecurringBreaks {
		brkCopy := brk
		brkCopy.Days = append(make([]Weekday, 0, len(brk.Days)), brk.Days...)
		clone.RecurringBreaks = append(clone.RecurringBreaks, brkCopy)
	}

	for _, blocked := range c.BlockedIntervals {
		blockedCopy := blocked
		if blocked.Reason != nil {
			reason := *blocked.Reason
			blockedCopy.Reason = &reason
		}
		clone.BlockedIntervals = append(clone.BlockedIntervals, blockedCopy)
	}

	return clone
}

// DefaultAvailabilityConfig returns a configuration with default timing
// parameters and no schedule rules
func DefaultAvailabilityConfig(doctorID string) *AvailabilityConfig {
	return &AvailabilityConfig{
		DoctorID:             doctorID,
		UnavailableDays:      []Weekday{},
		UnavailableDates:     []types.DateStamp{},
		WorkingHours:         []WorkingHourRule{},
		RecurringBreaks:      []RecurringBreak{},
		BlockedIntervals:     []BlockedInterval{},
		SlotDurationMinutes:  DefaultSlotDurationMinutes,
		BufferTimeMinutes:    DefaultBufferTimeMinutes,
		MeetingLengthMinutes: DefaultMeetingLengthMinutes,
	}
}
