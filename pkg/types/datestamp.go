package types

import (
	"errors"
	"fmt"
	"time"
)

// ErrInvalidDateStamp возвращается при некорректном формате даты
var ErrInvalidDateStamp = errors.New("types: invalid date stamp format, expected YYYY-MM-DD")

const dateLayout = "2006-01-02"

// DateStamp календарная дата в формате "YYYY-MM-DD" без времени и таймзоны
// Сравнение дат лексикографическое, что совпадает с порядком (год, месяц, день)
type DateStamp string

// NewDateStamp создает DateStamp из компонента даты time.Time
func NewDateStamp(t time.Time) DateStamp {
	return DateStamp(t.Format(dateLayout))
}

// NewDateStampFromString создает DateStamp из строки "YYYY-MM-DD" с валидацией
func NewDateStampFromString(s string) (DateStamp, error) {
	ds := DateStamp(s)
	if err := ds.Validate(); err != nil {
		return "", err
	}
	return ds, nil
}

// Validate проверяет, что строка имеет формат "YYYY-MM-DD" и является корректной датой
func (d DateStamp) Validate() error {
	if len(d) != 10 {
		return fmt.Errorf("%w: %q", ErrInvalidDateStamp, string(d))
	}
	if _, err := time.Parse(dateLayout, string(d)); err != nil {
		return fmt.Errorf("%w: %q", ErrInvalidDateStamp, string(d))
	}
	return nil
}

// IsZero возвращает true для пустого значения
func (d DateStamp) IsZero() bool {
	return d == ""
}

// Time возвращает дату как time.Time (полночь UTC)
// Для невалидного значения возвращает нулевой time.Time
func (d DateStamp) Time() time.Time {
	t, err := time.Parse(dateLayout, string(d))
	if err != nil {
		return time.Time{}
	}
	return t
}

// Weekday возвращает день недели даты
func (d DateStamp) Weekday() time.Weekday {
	return d.Time().Weekday()
}

// Before возвращает true, если дата строго раньше other
func (d DateStamp) Before(other DateStamp) bool {
	return string(d) < string(other)
}

// After возвращает true, если дата строго позже other
func (d DateStamp) After(other DateStamp) bool {
	return string(d) > string(other)
}

// Equal возвращает true при совпадении дат
func (d DateStamp) Equal(other DateStamp) bool {
	return d == other
}

// AddDays возвращает дату, сдвинутую на указанное количество дней
func (d DateStamp) AddDays(days int) DateStamp {
	return NewDateStamp(d.Time().AddDate(0, 0, days))
}

// String возвращает значение в формате "YYYY-MM-DD"
func (d DateStamp) String() string {
	return string(d)
}

// YearMonth месяц календаря (год + месяц), используется для навигации по месяцам
type YearMonth struct {
	Year  int
	Month time.Month
}

// NewYearMonth создает YearMonth из time.Time
func NewYearMonth(t time.Time) YearMonth {
	return YearMonth{Year: t.Year(), Month: t.Month()}
}

// YearMonthOf возвращает месяц, которому принадлежит дата
func YearMonthOf(d DateStamp) YearMonth {
	t := d.Time()
	return YearMonth{Year: t.Year(), Month: t.Month()}
}

// Next возвращает следующий календарный месяц
func (m YearMonth) Next() YearMonth {
	t := time.Date(m.Year, m.Month, 1, 0, 0, 0, 0, time.UTC).AddDate(0, 1, 0)
	return YearMonth{Year: t.Year(), Month: t.Month()}
}

// Prev возвращает предыдущий календарный месяц
func (m YearMonth) Prev() YearMonth {
	t := time.Date(m.Year, m.Month, 1, 0, 0, 0, 0, time.UTC).AddDate(0, -1, 0)
	return YearMonth{Year: t.Year(), Month: t.Month()}
}

// Days возвращает все даты месяца по порядку
func (m YearMonth) Days() []DateStamp {
	first := time.Date(m.Year, m.Month, 1, 0, 0, 0, 0, time.UTC)
	daysInMonth := first.AddDate(0, 1, -1).Day()

	days := make([]DateStamp, 0, daysInMonth)
	for day := 1; day <= daysInMonth; day++ {
		days = append(days, NewDateStamp(time.Date(m.Year, m.Month, day, 0, 0, 0, 0, time.UTC)))
	}
	return days
}

// Contains возвращает true, если дата принадлежит месяцу
func (m YearMonth) Contains(d DateStamp) bool {
	return YearMonthOf(d) == m
}

// String возвращает месяц в формате "YYYY-MM"
func (m YearMonth) String() string {
	return fmt.Sprintf("%04d-%02d", m.Year, int(m.Month))
}
