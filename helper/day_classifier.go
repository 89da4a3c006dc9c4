package helper

import "time"

type DayInfo struct {
	Date            CalendarDate
	Weekday         time.Weekday
	IsWeekend       bool
	IsHoliday       bool
	IsPublicHoliday bool
	IsWorkday       bool
	DayTypes        []string
	HolidayNames    []string
}

func ClassifyDay(hc *HolidayCalendar, wc *WorkdayCalendar, cd CalendarDate) *DayInfo {
	info := &DayInfo{
		Date:     cd,
		Weekday:  time.Weekday(cd.DayOfWeek),
		DayTypes: []string{},
	}

	classifyWeekday(info)
	checkHoliday(hc, info)
	info.IsWorkday = wc.IsWorkday(cd)
	if info.IsWorkday {
		info.DayTypes = append(info.DayTypes, "workday")
	}

	return info
}

func classifyWeekday(info *DayInfo) {
	switch info.Weekday {
	case time.Monday, time.Tuesday, time.Wednesday, time.Thursday, time.Friday:
		info.DayTypes = append(info.DayTypes, "weekday")
	case time.Saturday:
		info.DayTypes = append(info.DayTypes, "saturday", "weekend")
		info.IsWeekend = true
	case time.Sunday:
		info.DayTypes = append(info.DayTypes, "sunday", "weekend")
		info.IsWeekend = true
	}
}

func checkHoliday(hc *HolidayCalendar, info *DayInfo) {
	holidays := hc.OnDate(info.Date.Year, info.Date.Month, info.Date.Day)
	if len(holidays) == 0 {
		return
	}

	info.IsHoliday = true
	info.DayTypes = append(info.DayTypes, "holiday")
	for _, h := range holidays {
		info.HolidayNames = append(info.HolidayNames, h.NameEn)
		if h.IsPublicHoliday {
			info.IsPublicHoliday = true
		}
		if h.Type.IsReligious() {
			info.DayTypes = append(info.DayTypes, "religious")
		}
	}
	if info.IsPublicHoliday {
		info.DayTypes = append(info.DayTypes, "public_holiday")
	}
}
