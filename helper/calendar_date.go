package helper

import (
	"fmt"
	"strings"
	"time"

	"khmer_calendar/model"
	"khmer_calendar/utils"
)

// CalendarDate is a validated proleptic Gregorian date.
type CalendarDate struct {
	Year      int
	Month     int
	Day       int
	DayOfWeek int // 0 = Sunday
}

// ParseCalendarDate accepts YYYY-MM-DD, or an RFC 3339 timestamp whose
// date is taken in its own offset.
func ParseCalendarDate(s string) (CalendarDate, error) {
	s = strings.TrimSpace(s)
	if t, err := time.Parse(utils.DateLayout, s); err == nil {
		return CalendarDateFromTime(t), nil
	}
	t, err := time.Parse(time.RFC3339, s)
	if err != nil {
		return CalendarDate{}, utils.NewInvalidDateError(s, err)
	}
	return CalendarDateFromTime(t), nil
}

// NewCalendarDate validates the components against the month length,
// leap years included.
func NewCalendarDate(year, month, day int) (CalendarDate, error) {
	if month < 1 || month > 12 || day < 1 || day > 31 {
		return CalendarDate{}, utils.NewInvalidDateError(formatDate(year, month, day), nil)
	}
	t := time.Date(year, time.Month(month), day, 0, 0, 0, 0, time.UTC)
	if t.Day() != day {
		return CalendarDate{}, utils.NewInvalidDateError(formatDate(year, month, day), nil)
	}
	return CalendarDateFromTime(t), nil
}

func CalendarDateFromTime(t time.Time) CalendarDate {
	y, m, d := t.Date()
	return CalendarDate{
		Year:      y,
		Month:     int(m),
		Day:       d,
		DayOfWeek: int(t.Weekday()),
	}
}

func (cd CalendarDate) String() string {
	return formatDate(cd.Year, cd.Month, cd.Day)
}

// Time returns midnight UTC of the date.
func (cd CalendarDate) Time() time.Time {
	return time.Date(cd.Year, time.Month(cd.Month), cd.Day, 0, 0, 0, 0, time.UTC)
}

func (cd CalendarDate) Before(other CalendarDate) bool {
	return compareDate(cd.Year, cd.Month, cd.Day, other.Year, other.Month, other.Day) < 0
}

func (cd CalendarDate) AddDays(n int) CalendarDate {
	return CalendarDateFromTime(cd.Time().AddDate(0, 0, n))
}

// FormatKhmerDate renders the date in the Khmer calendar presentation.
func FormatKhmerDate(cd CalendarDate) model.FormattedDate {
	dayName := DayName(cd.DayOfWeek)
	monthName := MonthName(cd.Month)
	be := ToBuddhistEra(cd.Year)

	return model.FormattedDate{
		Gregorian: model.GregorianDate{
			Year:    cd.Year,
			Month:   cd.Month,
			Day:     cd.Day,
			DayName: dayName,
		},
		BuddhistEra: model.BuddhistEraDate{
			Year:      be,
			Month:     cd.Month,
			Day:       cd.Day,
			MonthName: monthName,
			DayName:   dayName,
		},
		Formatted: model.FormattedText{
			Khmer:   fmt.Sprintf("%s ថ្ងៃទី %d %s ឆ្នាំ %d", dayName, cd.Day, monthName, be),
			English: fmt.Sprintf("%s %d %s %d BE", EnglishDayName(cd.DayOfWeek), cd.Day, EnglishMonthName(cd.Month), be),
		},
	}
}

func formatDate(year, month, day int) string {
	return fmt.Sprintf("%04d-%02d-%02d", year, month, day)
}

func compareDate(y1, m1, d1, y2, m2, d2 int) int {
	switch {
	case y1 != y2:
		return y1 - y2
	case m1 != m2:
		return m1 - m2
	default:
		return d1 - d2
	}
}
