package helper

import (
	"testing"
	"time"

	"khmer_calendar/utils"

	"github.com/stretchr/testify/assert"
)

func TestClassifyDay(t *testing.T) {
	hc := DefaultHolidayCalendar()
	wc := NewWorkdayCalendar(hc)

	tests := []struct {
		date     string
		weekday  time.Weekday
		types    []string
		holidays []string
		workday  bool
	}{
		{"2024-04-17", time.Wednesday, []string{"weekday", "workday"}, nil, true},
		{"2024-04-20", time.Saturday, []string{"saturday", "weekend"}, nil, false},
		{"2024-04-15", time.Monday, []string{"weekday", "holiday", "public_holiday"}, []string{"Khmer New Year Day (Day 2)"}, false},
		{"2024-04-14", time.Sunday, []string{"sunday", "weekend", "holiday", "public_holiday"}, []string{"Khmer New Year Day (Day 1)"}, false},
		{"2024-09-23", time.Monday, []string{"weekday", "holiday", "religious", "public_holiday"}, []string{"Pchum Ben Festival (Day 3)"}, false},
	}
	for _, tt := range tests {
		t.Run(tt.date, func(t *testing.T) {
			info := ClassifyDay(hc, wc, mustDate(t, tt.date))
			assert.Equal(t, tt.weekday, info.Weekday)
			assert.Equal(t, tt.types, info.DayTypes)
			assert.Equal(t, tt.holidays, info.HolidayNames)
			assert.Equal(t, tt.workday, info.IsWorkday)
			assert.Equal(t, len(tt.holidays) > 0, info.IsHoliday)
			assert.Equal(t, len(tt.holidays) > 0, info.IsPublicHoliday)
			assert.Equal(t, tt.weekday == time.Saturday || tt.weekday == time.Sunday, info.IsWeekend)
		})
	}
}

func TestConvertDate(t *testing.T) {
	hc := DefaultHolidayCalendar()
	wc := NewWorkdayCalendar(hc)

	got := ConvertDate(hc, wc, mustDate(t, "2024-04-15"))
	assert.Equal(t, "2024-04-15", got.Date)
	assert.True(t, got.IsHoliday)
	assert.False(t, got.IsWorkday)
	assert.Len(t, got.Holidays, 1)
	assert.Equal(t, 2567, got.BuddhistEra.Year)
	assert.Equal(t, "ថ្ងៃច័ន្ទ ថ្ងៃទី 15 មេសា ឆ្នាំ 2567", got.Formatted.Khmer)

	plain := ConvertDate(hc, wc, mustDate(t, "2024-04-17"))
	assert.False(t, plain.IsHoliday)
	assert.Nil(t, plain.Holidays)
	assert.Equal(t, []string{"weekday", "workday"}, plain.DayTypes)
}

func TestToday(t *testing.T) {
	hc := DefaultHolidayCalendar()
	wc := NewWorkdayCalendar(hc)

	// Late evening UTC on the 31st is New Year's Day in Phnom Penh.
	now := time.Date(2024, 12, 31, 19, 0, 0, 0, time.UTC).In(utils.ICT)
	got := Today(hc, wc, now)
	assert.Equal(t, "2025-01-01", got.Date)
	assert.True(t, got.IsHoliday)
	assert.Equal(t, "New Year", got.Holidays[0].NameEn)
}
