package domain

import (
	"fmt"
	"strings"
	"time"
)

// Weekday represents a day of the week as stored in the availability configuration
type Weekday string

const (
	Monday    Weekday = "MONDAY"
	Tuesday   Weekday = "TUESDAY"
	Wednesday Weekday = "WEDNESDAY"
	Thursday  Weekday = "THURSDAY"
	Friday    Weekday = "FRIDAY"
	Saturday  Weekday = "SATURDAY"
	Sunday    Weekday = "SUNDAY"
)

// AllWeekdays список всех дней недели в порядке, в котором они показываются в редакторе
var AllWeekdays = []Weekday{
	Monday,
	Tuesday,
	Wednesday,
	Thursday,
	Friday,
	Saturday,
	Sunday,
}

// WeekdayOf converts a time.Weekday to the domain Weekday value
func WeekdayOf(w time.Weekday) Weekday {
	switch w {
	case time.Monday:
		return Monday
	case time.Tuesday:
		return Tuesday
	case time.Wednesday:
		return Wednesday
	case time.Thursday:
		return Thursday
	case time.Friday:
		return Friday
	case time.Saturday:
		return Saturday
	default:
		return Sunday
	}
}

// ParseWeekday parses a weekday value coming from the configuration
// collaborator. Matching is case-insensitive: the collaborator stores
// weekdays in lowercase ("monday"), the domain keeps them uppercase
func ParseWeekday(s string) (Weekday, error) {
	candidate := Weekday(strings.ToUpper(s))
	for _, day := range AllWeekdays {
		if day == candidate {
			return day, nil
		}
	}
	return "", fmt.Errorf("domain: unknown weekday %q", s)
}

// Wire returns the lowercase form the configuration collaborator expects
func (w Weekday) Wire() string {
	return strings.ToLower(string(w))
}

// IsValid returns true if the weekday is one of the seven known values
func (w Weekday) IsValid() bool {
	for _, day := range AllWeekdays {
		if day == w {
			return true
		}
	}
	return false
}
