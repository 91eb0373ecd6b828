// Package calendar computes the month grid used to pick a booking day.
package calendar

import (
	"errors"
	"strconv"
	"time"

	"servineo/models"
)

var ErrNoDateSelected = errors.New("no date selected")

var monthNames = [...]string{
	"Enero", "Febrero", "Marzo", "Abril", "Mayo", "Junio",
	"Julio", "Agosto", "Septiembre", "Octubre", "Noviembre", "Diciembre",
}

var weekdayNames = [...]string{
	"Domingo", "Lunes", "Martes", "Miércoles", "Jueves", "Viernes", "Sábado",
}

// MonthName returns the Spanish month name.
func MonthName(m time.Month) string {
	return monthNames[m-1]
}

// DaysInMonth returns the number of days in the given month.
func DaysInMonth(year int, month time.Month) int {
	// Day 0 of the following month normalises to the last day of this one.
	return time.Date(year, month+1, 0, 0, 0, 0, 0, time.UTC).Day()
}

// FirstWeekdayOffset is the column of day 1 in a Monday-first week:
// Monday→0 … Saturday→5, Sunday→6.
func FirstWeekdayOffset(year int, month time.Month) int {
	return MondayIndex(time.Date(year, month, 1, 0, 0, 0, 0, time.UTC).Weekday())
}

// MondayIndex remaps Go's Sunday-first weekday numbering to Monday-first columns.
func MondayIndex(wd time.Weekday) int {
	return (int(wd) + 6) % 7
}

// IsWeekend uses the same Monday-first columns as the grid.
func IsWeekend(wd time.Weekday) bool {
	return MondayIndex(wd) >= 5
}

// LongDate renders "Miércoles 5 de Marzo".
func LongDate(d models.CalendarDate) string {
	wd := time.Date(d.Year, d.Month, d.Day, 0, 0, 0, 0, time.UTC).Weekday()
	return weekdayNames[wd] + " " + strconv.Itoa(d.Day) + " de " + MonthName(d.Month)
}

// Selector is the view state of the date picker. The zero value is not usable; use New or FromState.
type Selector struct {
	now      func() time.Time
	year     int
	month    time.Month
	selected *models.CalendarDate
}

// New opens the selector on the month containing now().
func New(now func() time.Time) *Selector {
	today := models.DateOf(now())
	return &Selector{now: now, year: today.Year, month: today.Month}
}

// FromState restores a selector from persisted state.
func FromState(state models.CalendarState, now func() time.Time) *Selector {
	if state.Month < time.January || state.Month > time.December {
		return New(now)
	}
	s := &Selector{now: now, year: state.Year, month: state.Month}
	if state.Selected != nil {
		sel := *state.Selected
		s.selected = &sel
	}
	return s
}

// State snapshots the selector for persistence.
func (s *Selector) State() models.CalendarState {
	st := models.CalendarState{Year: s.year, Month: s.month}
	if s.selected != nil {
		sel := *s.selected
		st.Selected = &sel
	}
	return st
}

func (s *Selector) today() models.CalendarDate {
	return models.DateOf(s.now())
}

// Selected returns the chosen date, if any.
func (s *Selector) Selected() (models.CalendarDate, bool) {
	if s.selected == nil {
		return models.CalendarDate{}, false
	}
	return *s.selected, true
}

// PrevMonth moves back one month and clears the selection.
func (s *Selector) PrevMonth() {
	s.month--
	if s.month < time.January {
		s.month = time.December
		s.year--
	}
	s.selected = nil
}

// NextMonth moves forward one month and clears the selection.
func (s *Selector) NextMonth() {
	s.month++
	if s.month > time.December {
		s.month = time.January
		s.year++
	}
	s.selected = nil
}

// SelectDate picks a day of the displayed month. Past days and days outside
// the month are ignored; the return value reports whether the selection changed.
func (s *Selector) SelectDate(day int) bool {
	if day < 1 || day > DaysInMonth(s.year, s.month) {
		return false
	}
	d := models.CalendarDate{Year: s.year, Month: s.month, Day: day}
	if d.Before(s.today()) {
		return false
	}
	s.selected = &d
	return true
}

// CanProceed reports whether the continue action is enabled.
func (s *Selector) CanProceed() bool {
	return s.selected != nil
}

// Proceed hands the selected date to the availability step.
func (s *Selector) Proceed() (models.CalendarDate, error) {
	if s.selected == nil {
		return models.CalendarDate{}, ErrNoDateSelected
	}
	return *s.selected, nil
}

// ClearSelection drops the chosen date, as the "back" action does.
func (s *Selector) ClearSelection() {
	s.selected = nil
}

// Grid lays out the displayed month.
func (s *Selector) Grid() models.MonthGrid {
	today := s.today()
	n := DaysInMonth(s.year, s.month)
	grid := models.MonthGrid{
		Year:          s.year,
		Month:         s.month,
		MonthName:     MonthName(s.month),
		LeadingBlanks: FirstWeekdayOffset(s.year, s.month),
		Days:          make([]models.DayCell, 0, n),
	}
	for day := 1; day <= n; day++ {
		d := models.CalendarDate{Year: s.year, Month: s.month, Day: day}
		cell := models.DayCell{Day: day, State: models.DayNormal, Selectable: true}
		switch {
		case d.Before(today):
			cell.State = models.DayPast
			cell.Selectable = false
		case s.selected != nil && *s.selected == d:
			cell.State = models.DaySelected
		case d == today:
			cell.State = models.DayToday
		}
		grid.Days = append(grid.Days, cell)
	}
	return grid
}
