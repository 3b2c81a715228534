package schedule

import (
	"testing"
	"time"

	"github.com/jjCode01/xer-pro/internal/testutil"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func month(y int, m time.Month) time.Time {
	return time.Date(y, m, 1, 0, 0, 0, 0, time.UTC)
}

func TestCashFlow_RemainingSpreadAcrossMonths(t *testing.T) {
	start := testutil.At(2024, time.January, 29, 8, 0)
	finish := testutil.At(2024, time.February, 2, 17, 0)
	s := build(t, testutil.NewSchedule("100").
		AddTask("1", "A1000", "Pour Slab", testutil.WithEarlyDates(start, finish)).
		AddResource("7", "Carpenter", "RT_Labor").
		AddAssignment("55", "1", "7", 1000, 400,
			testutil.Set("restart_date", start),
			testutil.Set("reend_date", finish),
			testutil.Set("rem_late_start_date", testutil.At(2024, time.February, 5, 8, 0)),
			testutil.Set("rem_late_end_date", testutil.At(2024, time.February, 9, 17, 0))))

	r, err := s.CashFlow()
	require.NoError(t, err)

	assert.InDelta(t, 240.0, r.EarlyRemaining[month(2024, time.January)], 1e-6)
	assert.InDelta(t, 160.0, r.EarlyRemaining[month(2024, time.February)], 1e-6)
	assert.InDelta(t, 400.0, r.LateRemaining[month(2024, time.February)], 1e-6)
	assert.NotContains(t, r.LateRemaining, month(2024, time.January))
	assert.InDelta(t, r.EarlyRemaining.Total(), r.LateRemaining.Total(), 1e-6)

	cum := r.CumulativeEarly()
	require.Len(t, cum, 2)
	assert.InDelta(t, 240.0, cum[0].Value, 1e-6)
	assert.InDelta(t, 400.0, cum[1].Value, 1e-6)
}

func TestCashFlow_ThisPeriodSinceLastClose(t *testing.T) {
	s := build(t, testutil.NewSchedule("100").
		AddFinancialPeriod("P1", "Dec 2023", testutil.Date(2023, time.December, 1), testutil.At(2023, time.December, 22, 17, 0)).
		AddFinancialPeriod("P2", "Jan 2024", testutil.Date(2024, time.January, 22), testutil.At(2024, time.January, 31, 17, 0)).
		AddTask("1", "A1000", "Erect Steel", testutil.WithStatus("TK_Active"),
			testutil.WithActualDates(testutil.At(2023, time.December, 4, 8, 0), nil)).
		AddResource("7", "Ironworker", "RT_Labor").
		AddAssignment("55", "1", "7", 500, 0,
			testutil.Set("act_start_date", testutil.At(2023, time.December, 4, 8, 0)),
			testutil.Set("act_reg_cost", 150.0),
			testutil.Set("act_this_per_cost", 100.0)).
		AddPeriodActual("P1", "55", "1", 50).
		AddPeriodActual("P1", "404", "1", 999))

	r, err := s.CashFlow()
	require.NoError(t, err)

	assert.Equal(t, MonthlySeries{month(2023, time.December): 50}, r.Actual, "actuals on unknown assignments are ignored")

	// Dec 22 17:00 to Jan 8 08:00 has 40 work hours in each month.
	assert.InDelta(t, 50.0, r.ThisPeriod[month(2023, time.December)], 1e-6)
	assert.InDelta(t, 50.0, r.ThisPeriod[month(2024, time.January)], 1e-6)
	assert.Empty(t, r.EarlyRemaining)
}

func TestCashFlow_ThisPeriodWithinOneMonth(t *testing.T) {
	s := build(t, testutil.NewSchedule("100").
		AddTask("1", "A1000", "Erect Steel", testutil.WithStatus("TK_Active"),
			testutil.WithActualDates(testutil.At(2024, time.January, 2, 8, 0), nil)).
		AddResource("7", "Ironworker", "RT_Labor").
		AddAssignment("55", "1", "7", 500, 0,
			testutil.Set("act_start_date", testutil.At(2024, time.January, 2, 8, 0)),
			testutil.Set("act_this_per_cost", 75.0)))

	r, err := s.CashFlow()
	require.NoError(t, err)
	assert.Equal(t, MonthlySeries{month(2024, time.January): 75}, r.ThisPeriod)
}

func TestCashFlow_RemainingHoursMismatch(t *testing.T) {
	start := testutil.At(2024, time.January, 8, 8, 0)
	finish := testutil.At(2024, time.January, 12, 17, 0)
	s := build(t, testutil.NewSchedule("100").
		AddTask("1", "A1000", "Short Task", testutil.WithDurationDays(5, 3)).
		AddResource("7", "Carpenter", "RT_Labor").
		AddAssignment("55", "1", "7", 1000, 1000,
			testutil.Set("restart_date", start),
			testutil.Set("reend_date", finish)))

	_, err := s.CashFlow()
	assert.ErrorIs(t, err, ErrRemainingHoursMismatch)
}

func TestCashFlow_RemainingLagCountsTowardDuration(t *testing.T) {
	b := func(lagHrs float64) *testutil.ScheduleBuilder {
		return testutil.NewSchedule("100").
			AddTask("1", "A1000", "Form Walls", testutil.WithDurationDays(5, 5)).
			AddResource("7", "Carpenter", "RT_Labor").
			AddAssignment("55", "1", "7", 1000, 600,
				testutil.Set("restart_date", testutil.At(2024, time.January, 10, 8, 0)),
				testutil.Set("reend_date", testutil.At(2024, time.January, 12, 17, 0)),
				testutil.Set("relag_drtn_hr_cnt", lagHrs))
	}

	r, err := build(t, b(16)).CashFlow()
	require.NoError(t, err)
	assert.InDelta(t, 600.0, r.EarlyRemaining[month(2024, time.January)], 1e-6)

	_, err = build(t, b(8)).CashFlow()
	assert.ErrorIs(t, err, ErrRemainingHoursMismatch)
}

func TestCashFlow_ResourceCalendarMeasuredOnTaskCalendar(t *testing.T) {
	sevenDay := testutil.CalendarData(testutil.CalendarDef{Week: map[time.Weekday][]string{
		time.Sunday: {"08:00-16:00"}, time.Monday: {"08:00-16:00"}, time.Tuesday: {"08:00-16:00"},
		time.Wednesday: {"08:00-16:00"}, time.Thursday: {"08:00-16:00"}, time.Friday: {"08:00-16:00"},
		time.Saturday: {"08:00-16:00"},
	}})
	b := func(start, finish time.Time) *testutil.ScheduleBuilder {
		return testutil.NewSchedule("100").
			AddCalendar("2", "Seven Day", "CA_Rsrc", sevenDay).
			AddTask("1", "A1000", "Dewater").
			AddResource("7", "Pump", "RT_Equip", testutil.Set("clndr_id", "2")).
			AddAssignment("55", "1", "7", 800, 800,
				testutil.Set("restart_date", start),
				testutil.Set("reend_date", finish))
	}

	// Saturday and Sunday carry 16 hours on the pump's calendar and none on the task's.
	_, err := build(t, b(testutil.At(2024, time.January, 6, 8, 0), testutil.At(2024, time.January, 7, 16, 0))).CashFlow()
	assert.ErrorIs(t, err, ErrRemainingHoursMismatch)

	r, err := build(t, b(testutil.At(2024, time.January, 8, 8, 0), testutil.At(2024, time.January, 12, 17, 0))).CashFlow()
	require.NoError(t, err)
	assert.InDelta(t, 800.0, r.EarlyRemaining.Total(), 1e-6)
}

func TestCashFlow_OpenTaskWithoutWindowFails(t *testing.T) {
	s := build(t, testutil.NewSchedule("100").
		AddTask("1", "A1000", "Undated").
		AddResource("7", "Carpenter", "RT_Labor").
		AddAssignment("55", "1", "7", 300, 300))

	_, err := s.CashFlow()
	assert.ErrorIs(t, err, ErrRemainingHoursMismatch)
}

func TestCashFlow_NoWindowFallsBackToDataDate(t *testing.T) {
	s := build(t, testutil.NewSchedule("100").
		AddTask("1", "M1000", "Permit Fee", testutil.WithTaskType("TT_FinMile"), testutil.WithDurationDays(0, 0)).
		AddResource("7", "Permits", "RT_Mat").
		AddAssignment("55", "1", "7", 300, 300))

	r, err := s.CashFlow()
	require.NoError(t, err)
	assert.Equal(t, MonthlySeries{month(2024, time.January): 300}, r.EarlyRemaining)
}

func TestCumulative_MergesSeries(t *testing.T) {
	a := MonthlySeries{}
	a.Add(testutil.Date(2024, time.January, 15), 10)
	b := MonthlySeries{}
	b.Add(testutil.Date(2024, time.March, 3), 5)
	b.Add(testutil.Date(2024, time.January, 31), 1)

	points := Cumulative("Total", a, b)
	require.Len(t, points, 2)
	assert.Equal(t, month(2024, time.January), points[0].Month)
	assert.Equal(t, 11.0, points[0].Value)
	assert.Equal(t, 16.0, points[1].Value)
	assert.Equal(t, "Total", points[1].Label)
}

func TestCashFlowReport_TableCarriesRunningTotals(t *testing.T) {
	dec, jan, feb := month(2023, time.December), month(2024, time.January), month(2024, time.February)
	r := &CashFlowReport{
		Actual:         MonthlySeries{dec: 100},
		ThisPeriod:     MonthlySeries{},
		EarlyRemaining: MonthlySeries{jan: 50},
		LateRemaining:  MonthlySeries{feb: 50},
	}

	rows := r.Table()
	require.Len(t, rows, 3)
	assert.Equal(t, CashFlowRow{Month: dec, Actual: 100, CumulativeEarly: 100, CumulativeLate: 100}, rows[0])
	assert.Equal(t, CashFlowRow{Month: jan, EarlyRemaining: 50, CumulativeEarly: 150, CumulativeLate: 100}, rows[1])
	assert.Equal(t, CashFlowRow{Month: feb, LateRemaining: 50, CumulativeEarly: 150, CumulativeLate: 150}, rows[2])
}

func TestMonthsOf_UnionInOrder(t *testing.T) {
	a := MonthlySeries{month(2024, time.March): 1, month(2024, time.January): 1}
	b := MonthlySeries{month(2024, time.January): 2, month(2023, time.November): 2}
	assert.Equal(t, []time.Time{month(2023, time.November), month(2024, time.January), month(2024, time.March)}, MonthsOf(a, b))
}
