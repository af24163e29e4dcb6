package types

import (
	"errors"
	"fmt"
	"strings"
	"time"
)

// ErrInvalidTimeString возвращается при некорректном формате времени
var ErrInvalidTimeString = errors.New("types: invalid time string format, expected HH:MM")

const (
	timeLayout    = "15:04"
	minutesPerDay = 24 * 60
)

// TimeString время в пределах суток в формате "HH:MM" (например, "09:30")
// Не содержит даты и таймзоны, используется для еженедельных правил расписания
type TimeString string

// NewTimeString создает TimeString из компонента времени time.Time
func NewTimeString(t time.Time) TimeString {
	return TimeString(t.Format(timeLayout))
}

// NewTimeStringFromString создает TimeString из строки "HH:MM" с валидацией
func NewTimeStringFromString(s string) (TimeString, error) {
	ts := TimeString(s)
	if err := ts.Validate(); err != nil {
		return "", err
	}
	return ts, nil
}

// NewTimeStringFromMinutes создает TimeString из количества минут с начала суток
func NewTimeStringFromMinutes(minutes int) (TimeString, error) {
	if minutes < 0 || minutes >= minutesPerDay {
		return "", fmt.Errorf("%w: %d minutes is out of day range", ErrInvalidTimeString, minutes)
	}
	return TimeString(fmt.Sprintf("%02d:%02d", minutes/60, minutes%60)), nil
}

// NormalizeClockString нормализует время, полученное от внешнего сервиса
// Принимает либо "HH:MM", либо полный timestamp (RFC3339 или "2006-01-02T15:04:05"),
// в последнем случае дата отбрасывается, остается только время суток.
// Единственная точка нормализации - глубже по конвейеру ветвления по форме строки нет
func NormalizeClockString(s string) (TimeString, error) {
	s = strings.TrimSpace(s)

	if ts, err := NewTimeStringFromString(s); err == nil {
		return ts, nil
	}

	for _, layout := range []string{time.RFC3339, "2006-01-02T15:04:05", "2006-01-02 15:04:05", "2006-01-02T15:04"} {
		if t, err := time.Parse(layout, s); err == nil {
			return NewTimeString(t), nil
		}
	}

	return "", fmt.Errorf("%w: %q", ErrInvalidTimeString, s)
}

// Validate проверяет, что строка имеет формат "HH:MM" и является корректным временем
func (t TimeString) Validate() error {
	if len(t) != 5 || t[2] != ':' {
		return fmt.Errorf("%w: %q", ErrInvalidTimeString, string(t))
	}
	if _, err := time.Parse(timeLayout, string(t)); err != nil {
		return fmt.Errorf("%w: %q", ErrInvalidTimeString, string(t))
	}
	return nil
}

// IsZero возвращает true для пустого значения
func (t TimeString) IsZero() bool {
	return t == ""
}

// Minutes возвращает количество минут с начала суток
// Для невалидного значения возвращает 0 - вызывающий обязан валидировать заранее
func (t TimeString) Minutes() int {
	parsed, err := time.Parse(timeLayout, string(t))
	if err != nil {
		return 0
	}
	return parsed.Hour()*60 + parsed.Minute()
}

// AddMinutes возвращает время, сдвинутое на указанное количество минут вперед
// Возвращает ошибку, если результат выходит за пределы суток
func (t TimeString) AddMinutes(minutes int) (TimeString, error) {
	if err := t.Validate(); err != nil {
		return "", err
	}
	return NewTimeStringFromMinutes(t.Minutes() + minutes)
}

// IsBefore возвращает true, если время строго раньше other
func (t TimeString) IsBefore(other TimeString) bool {
	return t.Minutes() < other.Minutes()
}

// IsAfter возвращает true, если время строго позже other
func (t TimeString) IsAfter(other TimeString) bool {
	return t.Minutes() > other.Minutes()
}

// String возвращает значение в 24-часовом формате "HH:MM"
func (t TimeString) String() string {
	return string(t)
}

// Label возвращает время в 12-часовом формате "h:mm AM"/"h:mm PM"
// Час без ведущего нуля, минуты с ведущим нулем - формат, в котором слоты показываются пациенту
func (t TimeString) Label() string {
	minutes := t.Minutes()
	hour := minutes / 60
	minute := minutes % 60

	period := "AM"
	if hour >= 12 {
		period = "PM"
	}

	hour12 := hour % 12
	if hour12 == 0 {
		hour12 = 12
	}

	return fmt.Sprintf("%d:%02d %s", hour12, minute, period)
}

// RangeLabel возвращает отформатированный диапазон "h:mm AM - h:mm PM"
// Именно эта строка хранится в занятых окнах и сравнивается при проверке коллизий
func RangeLabel(start, end TimeString) string {
	return start.Label() + " - " + end.Label()
}
