package calendar_test

import (
	"testing"
	"time"

	"github.com/jjCode01/xer-pro/internal/calendar"
	"github.com/jjCode01/xer-pro/internal/testutil"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNew_ParsesWorkWeek(t *testing.T) {
	c, err := calendar.New("1", "Standard 5x8", "CA_Base", testutil.StandardCalendarData())
	require.NoError(t, err)

	assert.Equal(t, calendar.TypeGlobal, c.Type)
	assert.Equal(t, calendar.Key{Name: "Standard 5x8", Type: calendar.TypeGlobal}, c.Key())

	mon := c.WorkWeek[time.Monday]
	assert.Equal(t, 8.0, mon.Hours)
	assert.Equal(t, calendar.Clock(8*60), mon.Start)
	assert.Equal(t, calendar.Clock(17*60), mon.Finish)
	assert.Len(t, mon.Shifts, 2)

	assert.False(t, c.WorkWeek[time.Saturday].IsWorkday())
	assert.False(t, c.WorkWeek[time.Sunday].IsWorkday())
	assert.Equal(t, "Mon | 08.0 hrs | 08:00 to 17:00", mon.String())
}

func TestNew_UnknownTypePassesThrough(t *testing.T) {
	c, err := calendar.New("1", "Odd", "CA_Other", testutil.StandardCalendarData())
	require.NoError(t, err)
	assert.Equal(t, calendar.Type("CA_Other"), c.Type)
}

func TestNew_UnsortedShiftTimesArePaired(t *testing.T) {
	data := "(0||CalendarData()((0||DaysOfWeek()((0||2()((0||0(f|17:00|s|13:00)())(0||1(f|12:00|s|08:00)())))))))"
	c, err := calendar.New("1", "Reversed", "CA_Base", data)
	require.NoError(t, err)

	mon := c.WorkWeek[time.Monday]
	assert.Equal(t, []calendar.Shift{{Start: 480, Finish: 720}, {Start: 780, Finish: 1020}}, mon.Shifts)
}

func TestNew_ShiftEndingAtMidnight(t *testing.T) {
	data := "(0||CalendarData()((0||DaysOfWeek()((0||2()((0||0(s|16:00|f|00:00)())(0||1(s|06:00|f|14:00)())))))))"
	c, err := calendar.New("1", "Night", "CA_Base", data)
	require.NoError(t, err)

	mon := c.WorkWeek[time.Monday]
	assert.Equal(t, []calendar.Shift{{Start: 6 * 60, Finish: 14 * 60}, {Start: 16 * 60, Finish: calendar.EndOfDay}}, mon.Shifts)
	assert.Equal(t, 16.0, mon.Hours)
	assert.Equal(t, calendar.EndOfDay, mon.Finish)

	monday := testutil.Date(2024, time.January, 8)
	assert.InDelta(t, 6.0, c.WorkHours(monday, 18*60, calendar.EndOfDay), 1e-9)
}

func TestNew_UnpairedShiftTimesFail(t *testing.T) {
	data := "(0||CalendarData()((0||DaysOfWeek()((0||2()((0||0(s|08:00)())))))))"
	_, err := calendar.New("1", "Broken", "CA_Base", data)
	require.Error(t, err)
}

func TestNew_Exceptions(t *testing.T) {
	newYear := testutil.Date(2024, time.January, 1) // Monday
	saturday := testutil.Date(2024, time.January, 6)
	sunday := testutil.Date(2024, time.January, 7)
	tuesday := testutil.Date(2024, time.January, 9)

	data := testutil.CalendarData(testutil.CalendarDef{
		Week:     testutil.StandardWeek(),
		Holidays: []time.Time{newYear, sunday},
		Exceptions: map[time.Time][]string{
			saturday: {"08:00-12:00"},
			tuesday:  {"08:00-12:00", "13:00-17:00"},
		},
	})
	c, err := calendar.New("1", "Standard", "CA_Project", data)
	require.NoError(t, err)

	assert.Equal(t, []time.Time{newYear}, c.HolidayDates(), "holiday on a standard non-workday is dropped")
	assert.Equal(t, []time.Time{saturday}, c.ExceptionDates(), "exception equal to the standard weekday is dropped")

	assert.False(t, c.IsWorkday(newYear))
	assert.True(t, c.IsWorkday(saturday))
	assert.Equal(t, 4.0, c.Day(saturday).Hours)
	assert.True(t, c.IsWorkday(tuesday))
	assert.False(t, c.IsWorkday(sunday))
}

func TestSerialDates(t *testing.T) {
	assert.Equal(t, testutil.Date(2024, time.January, 1), calendar.FromSerial(45292))
	assert.Equal(t, testutil.Date(1900, time.January, 1), calendar.FromSerial(1))
	assert.Equal(t, testutil.Date(1900, time.March, 1), calendar.FromSerial(61))
	assert.Equal(t, 45292, calendar.ToSerial(testutil.Date(2024, time.January, 1)))
}

func TestWorkdaysAndNonworkExceptions(t *testing.T) {
	holiday := testutil.Date(2024, time.January, 3)
	data := testutil.CalendarData(testutil.CalendarDef{
		Week:     testutil.StandardWeek(),
		Holidays: []time.Time{holiday},
	})
	c, err := calendar.New("1", "Standard", "CA_Base", data)
	require.NoError(t, err)

	days := c.Workdays(testutil.Date(2024, time.January, 7), testutil.Date(2024, time.January, 1))
	assert.Equal(t, []time.Time{
		testutil.Date(2024, time.January, 1),
		testutil.Date(2024, time.January, 2),
		testutil.Date(2024, time.January, 4),
		testutil.Date(2024, time.January, 5),
	}, days)

	assert.Equal(t, []time.Time{holiday},
		c.NonworkExceptions(testutil.Date(2024, time.January, 1), testutil.Date(2024, time.January, 31)))
}
