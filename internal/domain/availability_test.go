package domain

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/sarthakk1890/CureAi/pkg/types"
)

func strPtr(s string) *string { return &s }

func workweekConfig() *AvailabilityConfig {
	cfg := DefaultAvailabilityConfig("doc-1")
	for _, day := range []Weekday{Monday, Tuesday, Wednesday, Thursday, Friday} {
		cfg.WorkingHours = append(cfg.WorkingHours, WorkingHourRule{Day: day, Start: "09:00", End: "17:00"})
	}
	return cfg
}

func TestIsDateUnavailable(t *testing.T) {
	cfg := workweekConfig()
	cfg.UnavailableDates = []types.DateStamp{"2026-09-10"}
	cfg.UnavailableDays = []Weekday{Friday}

	// Явно исключенная дата: четверг с рабочими правилами
	assert.True(t, cfg.IsDateUnavailable("2026-09-10"))

	// Исключенный день недели при живых рабочих правилах для него
	assert.True(t, cfg.IsDateUnavailable("2026-09-11"))

	// Суббота без правил недоступна сама по себе
	assert.True(t, cfg.IsDateUnavailable("2026-09-12"))

	// Обычный рабочий понедельник
	assert.False(t, cfg.IsDateUnavailable("2026-09-07"))
}

func TestWorkingHoursFor_SplitShift(t *testing.T) {
	cfg := DefaultAvailabilityConfig("doc-1")
	cfg.WorkingHours = []WorkingHourRule{
		{Day: Monday, Start: "09:00", End: "12:00"},
		{Day: Monday, Start: "14:00", End: "17:00"},
		{Day: Tuesday, Start: "10:00", End: "16:00"},
	}

	windows := cfg.WorkingHoursFor(Monday)
	require.Len(t, windows, 2)
	assert.Equal(t, TimeWindow{Start: "09:00", End: "12:00"}, windows[0])
	assert.Equal(t, TimeWindow{Start: "14:00", End: "17:00"}, windows[1])

	assert.Empty(t, cfg.WorkingHoursFor(Sunday))
}

func TestRecurringBreaksFor(t *testing.T) {
	cfg := workweekConfig()
	cfg.RecurringBreaks = []RecurringBreak{
		{Type: BreakLunch, Days: []Weekday{Monday, Wednesday}, Start: "13:00", End: "14:00"},
		{Type: BreakTea, Days: []Weekday{Monday}, Start: "16:00", End: "16:15"},
	}

	monday := cfg.RecurringBreaksFor(Monday)
	require.Len(t, monday, 2)

	wednesday := cfg.RecurringBreaksFor(Wednesday)
	require.Len(t, wednesday, 1)
	assert.Equal(t, TimeWindow{Start: "13:00", End: "14:00"}, wednesday[0])

	assert.Empty(t, cfg.RecurringBreaksFor(Tuesday))
}

func TestBlockedIntervalsOn(t *testing.T) {
	cfg := workweekConfig()
	cfg.BlockedIntervals = []BlockedInterval{
		{
			Start: Timestamp{Date: "2026-09-07", Time: "10:00"},
			End:   Timestamp{Date: "2026-09-07", Time: "11:30"},
		},
		{
			Start:  Timestamp{Date: "2026-09-08", Time: "15:00"},
			End:    Timestamp{Date: "2026-09-08", Time: "16:00"},
			Reason: strPtr("конференция"),
		},
	}

	monday := cfg.BlockedIntervalsOn("2026-09-07")
	require.Len(t, monday, 1)
	assert.Equal(t, TimeWindow{Start: "10:00", End: "11:30"}, monday[0])

	// Интервал принадлежит дате своего начала
	assert.Empty(t, cfg.BlockedIntervalsOn("2026-09-09"))
}

func TestBlockedIntervalsOn_MidnightEndMeansNoon(t *testing.T) {
	cfg := workweekConfig()
	cfg.BlockedIntervals = []BlockedInterval{
		{
			Start: Timestamp{Date: "2026-09-07", Time: "09:00"},
			End:   Timestamp{Date: "2026-09-07", Time: "00:00"},
		},
	}

	windows := cfg.BlockedIntervalsOn("2026-09-07")
	require.Len(t, windows, 1)
	assert.Equal(t, TimeWindow{Start: "09:00", End: types.TimeString(NoonTime)}, windows[0])
}

func TestBlockedIntervalsOn_CrossMidnightClampedToStartDate(t *testing.T) {
	cfg := workweekConfig()
	cfg.BlockedIntervals = []BlockedInterval{
		{
			Start: Timestamp{Date: "2026-09-07", Time: "14:00"},
			End:   Timestamp{Date: "2026-09-08", Time: "02:00"},
		},
	}

	monday := cfg.BlockedIntervalsOn("2026-09-07")
	require.Len(t, monday, 1)
	assert.Equal(t, TimeWindow{Start: "14:00", End: types.TimeString(EndOfDayTime)}, monday[0])

	// На дату конца интервал не переносится
	assert.Empty(t, cfg.BlockedIntervalsOn("2026-09-08"))
}

func TestClone_DeepCopy(t *testing.T) {
	cfg := workweekConfig()
	cfg.UnavailableDays = []Weekday{Saturday}
	cfg.UnavailableDates = []types.DateStamp{"2026-09-10"}
	cfg.RecurringBreaks = []RecurringBreak{
		{Type: BreakLunch, Days: []Weekday{Monday, Friday}, Start: "13:00", End: "14:00"},
	}
	cfg.BlockedIntervals = []BlockedInterval{
		{
			Start:  Timestamp{Date: "2026-09-07", Time: "10:00"},
			End:    Timestamp{Date: "2026-09-07", Time: "11:00"},
			Reason: strPtr("конференция"),
		},
	}

	clone := cfg.Clone()
	require.Equal(t, cfg, clone)

	clone.WorkingHours[0].Start = "08:00"
	clone.UnavailableDays[0] = Sunday
	clone.UnavailableDates[0] = "2026-09-11"
	clone.RecurringBreaks[0].Days[0] = Tuesday
	*clone.BlockedIntervals[0].Reason = "отпуск"
	clone.SlotDurationMinutes = 15

	assert.Equal(t, types.TimeString("09:00"), cfg.WorkingHours[0].Start)
	assert.Equal(t, Saturday, cfg.UnavailableDays[0])
	assert.Equal(t, types.DateStamp("2026-09-10"), cfg.UnavailableDates[0])
	assert.Equal(t, Monday, cfg.RecurringBreaks[0].Days[0])
	assert.Equal(t, "конференция", *cfg.BlockedIntervals[0].Reason)
	assert.Equal(t, DefaultSlotDurationMinutes, cfg.SlotDurationMinutes)
}

func TestClone_PreservesEmptySlices(t *testing.T) {
	// Клон пустой конфигурации неотличим от оригинала: пустые срезы
	// остаются пустыми срезами, не nil
	cfg := DefaultAvailabilityConfig("doc-1")
	require.Equal(t, cfg, cfg.Clone())
}

func TestTotalSlotMinutes(t *testing.T) {
	cfg := &AvailabilityConfig{MeetingLengthMinutes: 30, BufferTimeMinutes: 10}
	assert.Equal(t, 40, cfg.TotalSlotMinutes())
}

func TestSlotCandidate_IsMorning(t *testing.T) {
	morning := NewSlotCandidate("11:30", "12:00")
	assert.True(t, morning.IsMorning())

	noon := NewSlotCandidate("12:00", "12:30")
	assert.False(t, noon.IsMorning())
}

func TestNewSlotCandidate_Labels(t *testing.T) {
	candidate := NewSlotCandidate("09:00", "09:30")
	assert.Equal(t, "9:00 AM", candidate.Label)
	assert.Equal(t, "9:00 AM - 9:30 AM", candidate.TimeSlot)
}

func TestParseWeekday(t *testing.T) {
	// Коллаборатор хранит дни недели в нижнем регистре - разбор не должен
	// зависеть от регистра
	for _, raw := range []string{"MONDAY", "monday", "Monday"} {
		day, err := ParseWeekday(raw)
		require.NoError(t, err, raw)
		assert.Equal(t, Monday, day, raw)
	}

	_, err := ParseWeekday("FUNDAY")
	assert.Error(t, err)
}

func TestWeekday_Wire(t *testing.T) {
	assert.Equal(t, "monday", Monday.Wire())
	assert.Equal(t, "sunday", Sunday.Wire())
}

func TestWeekdayOf(t *testing.T) {
	assert.Equal(t, Monday, WeekdayOf(types.DateStamp("2026-09-07").Weekday()))
	assert.Equal(t, Sunday, WeekdayOf(types.DateStamp("2026-09-13").Weekday()))
}
