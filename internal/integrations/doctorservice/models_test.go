package doctorservice

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/sarthakk1890/CureAi/internal/domain"
)

type noopLogger struct{}

func (noopLogger) Info(format string, v ...interface{})  {}
func (noopLogger) Warn(format string, v ...interface{})  {}
func (noopLogger) Error(format string, v ...interface{}) {}

func TestToDomain_LowercaseWeekdaysAccepted(t *testing.T) {
	// DoctorService хранит дни недели в нижнем регистре - расписание
	// не должно теряться при конвертации
	payload := &DoctorPayload{
		ID: "doc-1",
		WorkingHours: []WorkingHourPayload{
			{Day: "monday", StartTime: "09:00", EndTime: "17:00"},
		},
		OffDays: []string{"sunday"},
		RecurringBreaks: []RecurringBreakPayload{
			{BreakType: "lunch", Days: []string{"monday", "friday"}, StartTime: "13:00", EndTime: "14:00"},
		},
	}

	cfg := payload.ToDomain(noopLogger{})

	require.Len(t, cfg.WorkingHoursFor(domain.Monday), 1)
	assert.Equal(t, domain.TimeWindow{Start: "09:00", End: "17:00"}, cfg.WorkingHoursFor(domain.Monday)[0])

	assert.True(t, cfg.IsWeekdayUnavailable(domain.Sunday))

	require.Len(t, cfg.RecurringBreaks, 1)
	assert.Equal(t, []domain.Weekday{domain.Monday, domain.Friday}, cfg.RecurringBreaks[0].Days)

	// Понедельник с рабочими часами должен быть доступен
	assert.False(t, cfg.IsDateUnavailable("2026-08-31"))
}

func TestToDomain_UnknownWeekdaySkippedWithRestKept(t *testing.T) {
	payload := &DoctorPayload{
		ID: "doc-1",
		WorkingHours: []WorkingHourPayload{
			{Day: "funday", StartTime: "09:00", EndTime: "17:00"},
			{Day: "tuesday", StartTime: "10:00", EndTime: "16:00"},
		},
	}

	cfg := payload.ToDomain(noopLogger{})

	require.Len(t, cfg.WorkingHours, 1)
	assert.Equal(t, domain.Tuesday, cfg.WorkingHours[0].Day)
}

func TestFromDomain_EmitsCollaboratorCasing(t *testing.T) {
	cfg := domain.DefaultAvailabilityConfig("doc-1")
	cfg.UnavailableDays = []domain.Weekday{domain.Sunday}
	cfg.WorkingHours = []domain.WorkingHourRule{
		{Day: domain.Monday, Start: "09:00", End: "17:00"},
	}
	cfg.RecurringBreaks = []domain.RecurringBreak{
		{Type: domain.BreakLunch, Days: []domain.Weekday{domain.Monday}, Start: "13:00", End: "14:00"},
	}

	payload := FromDomain(cfg)

	assert.Equal(t, []string{"sunday"}, payload.OffDays)
	require.Len(t, payload.WorkingHours, 1)
	assert.Equal(t, "monday", payload.WorkingHours[0].Day)
	require.Len(t, payload.RecurringBreaks, 1)
	assert.Equal(t, []string{"monday"}, payload.RecurringBreaks[0].Days)
}
