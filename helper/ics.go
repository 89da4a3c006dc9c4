package helper

import (
	"fmt"
	"strings"
	"time"

	"khmer_calendar/constants"
	"khmer_calendar/model"

	ics "github.com/arran4/golang-ical"
	"github.com/gosimple/slug"
)

const icsProductID = "-//Khmer Calendar//Holidays//EN"

// BuildICS renders holidays as an RFC 5545 calendar of all-day events.
// stamp is written as DTSTAMP on every event.
func BuildICS(year int, holidays []model.ResolvedHoliday, stamp time.Time) string {
	cal := ics.NewCalendar()
	cal.SetProductId(icsProductID)
	cal.SetCalscale("GREGORIAN")
	cal.SetMethod(ics.MethodPublish)
	cal.SetXWRCalName(fmt.Sprintf("Cambodia Holidays %d (%d BE)", year, ToBuddhistEra(year)))

	for _, h := range holidays {
		start := time.Date(h.Year, time.Month(h.Month), h.Day, 0, 0, 0, 0, time.UTC)

		event := cal.AddEvent(HolidayUID(h))
		event.SetDtStampTime(stamp.UTC())
		event.SetAllDayStartAt(start)
		event.SetAllDayEndAt(start.AddDate(0, 0, 1))
		event.SetSummary(h.NameEn)
		event.SetDescription(h.NameKh)
		event.SetProperty(ics.ComponentPropertyCategories, strings.ToUpper(string(h.Type)))
		if h.IsPublicHoliday {
			event.SetProperty(ics.ComponentPropertyTransp, "TRANSPARENT")
		}
	}

	return cal.Serialize()
}

// HolidayUID is stable across requests for the same holiday and year.
func HolidayUID(h model.ResolvedHoliday) string {
	return fmt.Sprintf("%s-%s@%s", slug.Make(h.NameEn), h.Date, slug.Make(constants.SERVICE_NAME))
}
