package types

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestTimeString_Validate(t *testing.T) {
	valid := []string{"00:00", "09:30", "12:00", "23:59"}
	for _, s := range valid {
		assert.NoError(t, TimeString(s).Validate(), s)
	}

	invalid := []string{"", "9:30", "09:60", "24:00", "09-30", "09:30:00", "morning"}
	for _, s := range invalid {
		err := TimeString(s).Validate()
		require.Error(t, err, s)
		assert.ErrorIs(t, err, ErrInvalidTimeString, s)
	}
}

func TestTimeString_Minutes(t *testing.T) {
	assert.Equal(t, 0, TimeString("00:00").Minutes())
	assert.Equal(t, 570, TimeString("09:30").Minutes())
	assert.Equal(t, 720, TimeString("12:00").Minutes())
	assert.Equal(t, 1439, TimeString("23:59").Minutes())
}

func TestNewTimeStringFromMinutes(t *testing.T) {
	ts, err := NewTimeStringFromMinutes(570)
	require.NoError(t, err)
	assert.Equal(t, TimeString("09:30"), ts)

	ts, err = NewTimeStringFromMinutes(0)
	require.NoError(t, err)
	assert.Equal(t, TimeString("00:00"), ts)

	ts, err = NewTimeStringFromMinutes(1439)
	require.NoError(t, err)
	assert.Equal(t, TimeString("23:59"), ts)

	_, err = NewTimeStringFromMinutes(1440)
	assert.ErrorIs(t, err, ErrInvalidTimeString)

	_, err = NewTimeStringFromMinutes(-1)
	assert.ErrorIs(t, err, ErrInvalidTimeString)
}

func TestTimeString_AddMinutes(t *testing.T) {
	ts, err := TimeString("09:30").AddMinutes(45)
	require.NoError(t, err)
	assert.Equal(t, TimeString("10:15"), ts)

	// Выход за пределы суток - ошибка, а не перенос на следующий день
	_, err = TimeString("23:30").AddMinutes(45)
	assert.ErrorIs(t, err, ErrInvalidTimeString)

	_, err = TimeString("bad").AddMinutes(10)
	assert.ErrorIs(t, err, ErrInvalidTimeString)
}

func TestTimeString_Label(t *testing.T) {
	// Час без ведущего нуля, минуты с ведущим нулем
	assert.Equal(t, "9:00 AM", TimeString("09:00").Label())
	assert.Equal(t, "9:05 AM", TimeString("09:05").Label())
	assert.Equal(t, "12:00 PM", TimeString("12:00").Label())
	assert.Equal(t, "12:30 AM", TimeString("00:30").Label())
	assert.Equal(t, "1:00 PM", TimeString("13:00").Label())
	assert.Equal(t, "11:59 PM", TimeString("23:59").Label())
}

func TestRangeLabel(t *testing.T) {
	assert.Equal(t, "9:00 AM - 9:30 AM", RangeLabel("09:00", "09:30"))
	assert.Equal(t, "11:30 AM - 12:00 PM", RangeLabel("11:30", "12:00"))
}

func TestNormalizeClockString(t *testing.T) {
	cases := map[string]TimeString{
		"09:30":                     "09:30",
		" 09:30 ":                   "09:30",
		"2026-09-07T14:45:00Z":      "14:45",
		"2026-09-07T14:45:00+03:00": "14:45",
		"2026-09-07T14:45:00":       "14:45",
		"2026-09-07 14:45:00":       "14:45",
		"2026-09-07T14:45":          "14:45",
	}
	for input, want := range cases {
		got, err := NormalizeClockString(input)
		require.NoError(t, err, input)
		assert.Equal(t, want, got, input)
	}

	for _, input := range []string{"", "9:30 AM", "yesterday", "2026-09-07"} {
		_, err := NormalizeClockString(input)
		assert.ErrorIs(t, err, ErrInvalidTimeString, input)
	}
}

func TestTimeString_Ordering(t *testing.T) {
	assert.True(t, TimeString("09:00").IsBefore("09:30"))
	assert.False(t, TimeString("09:30").IsBefore("09:30"))
	assert.True(t, TimeString("10:00").IsAfter("09:30"))
	assert.False(t, TimeString("09:30").IsAfter("09:30"))
}

func TestNewTimeString(t *testing.T) {
	moment := time.Date(2026, 9, 7, 14, 5, 33, 0, time.UTC)
	assert.Equal(t, TimeString("14:05"), NewTimeString(moment))
}
