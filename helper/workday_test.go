package helper

import (
	"testing"

	"khmer_calendar/model"
	"khmer_calendar/utils"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func mustDate(t *testing.T, s string) CalendarDate {
	t.Helper()
	cd, err := ParseCalendarDate(s)
	require.NoError(t, err)
	return cd
}

func TestWorkdayCalendar_IsWorkday(t *testing.T) {
	wc := NewWorkdayCalendar(DefaultHolidayCalendar())

	tests := []struct {
		date string
		want bool
	}{
		{"2024-04-12", true},  // Friday
		{"2024-04-13", false}, // Saturday
		{"2024-04-14", false}, // Sunday and a holiday
		{"2024-04-15", false}, // Khmer New Year
		{"2024-04-16", false},
		{"2024-04-17", true},
		{"2024-09-23", false}, // Pchum Ben
		{"2024-11-11", true},
	}
	for _, tt := range tests {
		assert.Equal(t, tt.want, wc.IsWorkday(mustDate(t, tt.date)), tt.date)
	}
}

func TestWorkdayCalendar_SkipsNonPublicRules(t *testing.T) {
	hc := NewHolidayCalendar([]model.HolidayRule{
		{Month: 3, Day: 4, NameEn: "Observance", Type: model.HolidayTypeReligious, IsPublicHoliday: false},
		{Month: 3, Day: 5, NameEn: "Day off", Type: model.HolidayTypePublic, IsPublicHoliday: true},
	})
	wc := NewWorkdayCalendar(hc)

	assert.True(t, wc.IsWorkday(mustDate(t, "2025-03-04")))
	assert.False(t, wc.IsWorkday(mustDate(t, "2025-03-05")))
}

func TestWorkdayCalendar_NextWorkday(t *testing.T) {
	wc := NewWorkdayCalendar(DefaultHolidayCalendar())

	assert.Equal(t, "2024-04-17", wc.NextWorkday(mustDate(t, "2024-04-12")).String())
	assert.Equal(t, "2024-04-18", wc.NextWorkday(mustDate(t, "2024-04-17")).String())
	// Peace Day is a Sunday in 2024; New Year is a Wednesday in 2025.
	assert.Equal(t, "2024-12-30", wc.NextWorkday(mustDate(t, "2024-12-27")).String())
	assert.Equal(t, "2025-01-02", wc.NextWorkday(mustDate(t, "2024-12-31")).String())
}

func TestWorkdayCalendar_WorkdaysBetween(t *testing.T) {
	wc := NewWorkdayCalendar(DefaultHolidayCalendar())

	n, err := wc.WorkdaysBetween(mustDate(t, "2024-04-01"), mustDate(t, "2024-04-30"))
	require.NoError(t, err)
	assert.Equal(t, 20, n)

	n, err = wc.WorkdaysBetween(mustDate(t, "2024-04-12"), mustDate(t, "2024-04-17"))
	require.NoError(t, err)
	assert.Equal(t, 2, n)

	n, err = wc.WorkdaysBetween(mustDate(t, "2024-04-15"), mustDate(t, "2024-04-15"))
	require.NoError(t, err)
	assert.Equal(t, 0, n)

	_, err = wc.WorkdaysBetween(mustDate(t, "2024-01-01"), mustDate(t, "2024-12-31"))
	assert.NoError(t, err)
}

func TestWorkdayCalendar_WorkdaysBetween_InvalidSpan(t *testing.T) {
	wc := NewWorkdayCalendar(DefaultHolidayCalendar())

	_, err := wc.WorkdaysBetween(mustDate(t, "2024-04-17"), mustDate(t, "2024-04-12"))
	assert.True(t, utils.IsInvalidRange(err))

	_, err = wc.WorkdaysBetween(mustDate(t, "2024-01-01"), mustDate(t, "2025-01-02"))
	assert.True(t, utils.IsInvalidRange(err))
}
