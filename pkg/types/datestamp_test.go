package types

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDateStamp_Validate(t *testing.T) {
	assert.NoError(t, DateStamp("2026-09-07").Validate())
	assert.NoError(t, DateStamp("2024-02-29").Validate())

	invalid := []string{"", "2026-9-7", "2026-13-01", "2026-02-30", "07.09.2026", "2026-09-07T00:00"}
	for _, s := range invalid {
		err := DateStamp(s).Validate()
		require.Error(t, err, s)
		assert.ErrorIs(t, err, ErrInvalidDateStamp, s)
	}
}

func TestDateStamp_Ordering(t *testing.T) {
	// Лексикографический порядок совпадает с хронологическим
	assert.True(t, DateStamp("2026-09-07").Before("2026-09-08"))
	assert.True(t, DateStamp("2026-09-30").Before("2026-10-01"))
	assert.True(t, DateStamp("2026-12-31").Before("2027-01-01"))
	assert.True(t, DateStamp("2026-10-01").After("2026-09-30"))
	assert.True(t, DateStamp("2026-09-07").Equal("2026-09-07"))
}

func TestDateStamp_Weekday(t *testing.T) {
	assert.Equal(t, time.Monday, DateStamp("2026-09-07").Weekday())
	assert.Equal(t, time.Saturday, DateStamp("2026-09-12").Weekday())
}

func TestDateStamp_AddDays(t *testing.T) {
	assert.Equal(t, DateStamp("2026-09-08"), DateStamp("2026-09-07").AddDays(1))
	assert.Equal(t, DateStamp("2026-10-01"), DateStamp("2026-09-30").AddDays(1))
	assert.Equal(t, DateStamp("2026-09-06"), DateStamp("2026-09-07").AddDays(-1))
}

func TestYearMonth_Navigation(t *testing.T) {
	september := YearMonth{Year: 2026, Month: time.September}

	assert.Equal(t, YearMonth{Year: 2026, Month: time.October}, september.Next())
	assert.Equal(t, YearMonth{Year: 2026, Month: time.August}, september.Prev())

	// Переход через границу года в обе стороны
	assert.Equal(t, YearMonth{Year: 2027, Month: time.January}, YearMonth{Year: 2026, Month: time.December}.Next())
	assert.Equal(t, YearMonth{Year: 2025, Month: time.December}, YearMonth{Year: 2026, Month: time.January}.Prev())
}

func TestYearMonth_Days(t *testing.T) {
	september := YearMonth{Year: 2026, Month: time.September}
	days := september.Days()

	require.Len(t, days, 30)
	assert.Equal(t, DateStamp("2026-09-01"), days[0])
	assert.Equal(t, DateStamp("2026-09-30"), days[29])

	// Високосный февраль
	feb := YearMonth{Year: 2024, Month: time.February}
	assert.Len(t, feb.Days(), 29)
}

func TestYearMonth_Contains(t *testing.T) {
	september := YearMonth{Year: 2026, Month: time.September}

	assert.True(t, september.Contains("2026-09-01"))
	assert.True(t, september.Contains("2026-09-30"))
	assert.False(t, september.Contains("2026-10-01"))
	assert.False(t, september.Contains("2025-09-15"))
}

func TestYearMonth_String(t *testing.T) {
	assert.Equal(t, "2026-09", YearMonth{Year: 2026, Month: time.September}.String())
	assert.Equal(t, "2027-01", YearMonth{Year: 2027, Month: time.January}.String())
}
