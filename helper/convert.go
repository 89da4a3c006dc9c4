package helper

import (
	"time"

	"khmer_calendar/model"
)

// ConvertDate renders cd in the Khmer calendar together with its holidays.
func ConvertDate(hc *HolidayCalendar, wc *WorkdayCalendar, cd CalendarDate) model.ConvertResult {
	info := ClassifyDay(hc, wc, cd)

	result := model.ConvertResult{
		FormattedDate: FormatKhmerDate(cd),
		Date:          cd.String(),
		DayTypes:      info.DayTypes,
		IsWorkday:     info.IsWorkday,
		IsHoliday:     info.IsHoliday,
	}
	if info.IsHoliday {
		result.Holidays = hc.OnDate(cd.Year, cd.Month, cd.Day)
	}
	return result
}

// Today converts the calendar date of now, taken in now's location.
func Today(hc *HolidayCalendar, wc *WorkdayCalendar, now time.Time) model.ConvertResult {
	return ConvertDate(hc, wc, CalendarDateFromTime(now))
}
