package calendar

import (
	"testing"
	"time"

	"servineo/models"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func fixedNow(y int, m time.Month, d int) func() time.Time {
	return func() time.Time { return time.Date(y, m, d, 15, 30, 0, 0, time.Local) }
}

func TestJanuary2024Layout(t *testing.T) {
	assert.Equal(t, 0, FirstWeekdayOffset(2024, time.January))
	assert.Equal(t, 31, DaysInMonth(2024, time.January))
}

func TestDaysInMonthLeapYears(t *testing.T) {
	assert.Equal(t, 29, DaysInMonth(2024, time.February))
	assert.Equal(t, 28, DaysInMonth(2025, time.February))
	assert.Equal(t, 28, DaysInMonth(1900, time.February))
	assert.Equal(t, 29, DaysInMonth(2000, time.February))
	assert.Equal(t, 30, DaysInMonth(2025, time.April))
}

func TestFirstWeekdayOffsetSundayMapsToSix(t *testing.T) {
	// 1 September 2024 is a Sunday, 1 June 2024 a Saturday.
	assert.Equal(t, 6, FirstWeekdayOffset(2024, time.September))
	assert.Equal(t, 5, FirstWeekdayOffset(2024, time.June))
	assert.True(t, IsWeekend(time.Sunday))
	assert.True(t, IsWeekend(time.Saturday))
	assert.False(t, IsWeekend(time.Monday))
}

func TestGridCellCountMatchesMonth(t *testing.T) {
	s := New(fixedNow(2023, time.December, 1))
	for i := 0; i < 36; i++ {
		g := s.Grid()
		require.Len(t, g.Days, DaysInMonth(g.Year, g.Month))
		require.Equal(t, FirstWeekdayOffset(g.Year, g.Month), g.LeadingBlanks)
		want := int(time.Date(g.Year, g.Month, 1, 0, 0, 0, 0, time.UTC).Weekday())
		require.Equal(t, (want+6)%7, g.LeadingBlanks)
		s.NextMonth()
	}
}

func TestSelectDateRejectsPast(t *testing.T) {
	s := New(fixedNow(2025, time.March, 5))

	assert.False(t, s.SelectDate(4))
	assert.False(t, s.CanProceed())

	assert.True(t, s.SelectDate(5), "same day is selectable")
	sel, ok := s.Selected()
	require.True(t, ok)
	assert.Equal(t, "2025-03-05", sel.Key())

	assert.False(t, s.SelectDate(32))
	assert.False(t, s.SelectDate(0))
}

func TestSelectDateInEarlierMonthIsNoop(t *testing.T) {
	s := New(fixedNow(2025, time.March, 5))
	s.PrevMonth()
	for day := 1; day <= DaysInMonth(2025, time.February); day++ {
		assert.False(t, s.SelectDate(day))
	}
	for _, c := range s.Grid().Days {
		assert.Equal(t, models.DayPast, c.State)
		assert.False(t, c.Selectable)
	}
}

func TestMonthChangeClearsSelection(t *testing.T) {
	s := New(fixedNow(2025, time.March, 5))
	require.True(t, s.SelectDate(20))
	s.NextMonth()
	assert.False(t, s.CanProceed())

	require.True(t, s.SelectDate(1))
	s.PrevMonth()
	assert.False(t, s.CanProceed())
}

func TestMonthRollsYear(t *testing.T) {
	s := New(fixedNow(2025, time.December, 10))
	s.NextMonth()
	st := s.State()
	assert.Equal(t, 2026, st.Year)
	assert.Equal(t, time.January, st.Month)

	s.PrevMonth()
	s.PrevMonth()
	st = s.State()
	assert.Equal(t, 2025, st.Year)
	assert.Equal(t, time.November, st.Month)
}

func TestGridStates(t *testing.T) {
	s := New(fixedNow(2025, time.March, 5))
	require.True(t, s.SelectDate(10))
	g := s.Grid()

	assert.Equal(t, "Marzo", g.MonthName)
	assert.Equal(t, models.DayPast, g.Days[3].State)
	assert.Equal(t, models.DayToday, g.Days[4].State)
	assert.Equal(t, models.DaySelected, g.Days[9].State)
	assert.Equal(t, models.DayNormal, g.Days[10].State)
}

func TestProceed(t *testing.T) {
	s := New(fixedNow(2025, time.March, 5))
	_, err := s.Proceed()
	assert.ErrorIs(t, err, ErrNoDateSelected)

	require.True(t, s.SelectDate(7))
	d, err := s.Proceed()
	require.NoError(t, err)
	assert.Equal(t, models.CalendarDate{Year: 2025, Month: time.March, Day: 7}, d)
}

func TestStateRoundTrip(t *testing.T) {
	now := fixedNow(2025, time.March, 5)
	s := New(now)
	s.NextMonth()
	require.True(t, s.SelectDate(2))

	restored := FromState(s.State(), now)
	sel, ok := restored.Selected()
	require.True(t, ok)
	assert.Equal(t, "2025-04-02", sel.Key())
	assert.Equal(t, s.Grid(), restored.Grid())
}

func TestLongDate(t *testing.T) {
	assert.Equal(t, "Miércoles 5 de Marzo", LongDate(models.CalendarDate{Year: 2025, Month: time.March, Day: 5}))
}
