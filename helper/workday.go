package helper

import (
	"time"

	"khmer_calendar/constants"
	"khmer_calendar/model"
	"khmer_calendar/utils"

	"github.com/rickar/cal/v2"
)

// WorkdayCalendar answers business-day questions: Monday to Friday, minus
// every rule flagged as a public holiday. Cambodia does not move holidays
// that fall on a weekend, so no observed-day shifting is configured.
type WorkdayCalendar struct {
	bc *cal.BusinessCalendar
}

func NewWorkdayCalendar(hc *HolidayCalendar) *WorkdayCalendar {
	bc := cal.NewBusinessCalendar()
	for _, r := range hc.Rules() {
		if !r.IsPublicHoliday {
			continue
		}
		bc.AddHoliday(&cal.Holiday{
			Name:  r.NameEn,
			Type:  observanceType(r.Type),
			Month: time.Month(r.Month),
			Day:   r.Day,
			Func:  cal.CalcDayOfMonth,
		})
	}
	return &WorkdayCalendar{bc: bc}
}

func observanceType(t model.HolidayType) cal.ObservanceType {
	if t.IsReligious() {
		return cal.ObservanceReligious
	}
	return cal.ObservancePublic
}

func (wc *WorkdayCalendar) IsWorkday(cd CalendarDate) bool {
	return wc.bc.IsWorkday(cd.Time())
}

// NextWorkday returns the first workday strictly after cd.
func (wc *WorkdayCalendar) NextWorkday(cd CalendarDate) CalendarDate {
	next := cd.AddDays(1)
	for !wc.IsWorkday(next) {
		next = next.AddDays(1)
	}
	return next
}

// WorkdaysBetween counts workdays in [from, to].
func (wc *WorkdayCalendar) WorkdaysBetween(from, to CalendarDate) (int, error) {
	span := int(to.Time().Sub(from.Time()).Hours() / 24)
	if span < 0 || span > constants.MAX_WORKDAY_SPAN_DAYS {
		return 0, utils.NewInvalidRangeError("span", span, 0, constants.MAX_WORKDAY_SPAN_DAYS)
	}

	count := 0
	for d := from; !to.Before(d); d = d.AddDays(1) {
		if wc.IsWorkday(d) {
			count++
		}
	}
	return count, nil
}
