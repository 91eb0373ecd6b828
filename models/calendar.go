package models

import (
	"fmt"
	"time"
)

// CalendarDate is a local calendar day with no time-of-day component.
type CalendarDate struct {
	Year  int        `json:"year"`
	Month time.Month `json:"month"` // 1-12
	Day   int        `json:"day"`
}

// DateOf truncates t to its calendar day in t's own location.
func DateOf(t time.Time) CalendarDate {
	y, m, d := t.Date()
	return CalendarDate{Year: y, Month: m, Day: d}
}

// Key formats the date as YYYY-MM-DD.
func (d CalendarDate) Key() string {
	return fmt.Sprintf("%04d-%02d-%02d", d.Year, int(d.Month), d.Day)
}

// Before reports whether d is strictly earlier than other.
func (d CalendarDate) Before(other CalendarDate) bool {
	if d.Year != other.Year {
		return d.Year < other.Year
	}
	if d.Month != other.Month {
		return d.Month < other.Month
	}
	return d.Day < other.Day
}

// Time returns midnight of d in loc.
func (d CalendarDate) Time(loc *time.Location) time.Time {
	return time.Date(d.Year, d.Month, d.Day, 0, 0, 0, 0, loc)
}

// ParseDateKey parses a YYYY-MM-DD key.
func ParseDateKey(key string) (CalendarDate, error) {
	t, err := time.Parse("2006-01-02", key)
	if err != nil {
		return CalendarDate{}, fmt.Errorf("invalid date key %q: %w", key, err)
	}
	return DateOf(t), nil
}

type DayState string

const (
	DayPast     DayState = "past"
	DayToday    DayState = "today"
	DaySelected DayState = "selected"
	DayNormal   DayState = "normal"
)

// DayCell is one rendered day of a month grid.
type DayCell struct {
	Day        int      `json:"day"`
	State      DayState `json:"state"`
	Selectable bool     `json:"selectable"`
}

// MonthGrid is a Monday-first month layout: LeadingBlanks empty cells then one cell per day.
type MonthGrid struct {
	Year          int        `json:"year"`
	Month         time.Month `json:"month"`
	MonthName     string     `json:"monthName"`
	LeadingBlanks int        `json:"leadingBlanks"`
	Days          []DayCell  `json:"days"`
}

// CalendarState is the persisted part of a date selector.
type CalendarState struct {
	Year     int           `json:"year"`
	Month    time.Month    `json:"month"`
	Selected *CalendarDate `json:"selected,omitempty"`
}
