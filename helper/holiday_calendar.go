package helper

import (
	"slices"
	"time"

	"khmer_calendar/model"

	"github.com/jinzhu/copier"
	"github.com/rs/zerolog/log"
)

// HolidayCalendar answers holiday queries against an immutable rule table.
// It holds no mutable state and is safe for concurrent use.
type HolidayCalendar struct {
	rules []model.HolidayRule
}

func NewHolidayCalendar(rules []model.HolidayRule) *HolidayCalendar {
	return &HolidayCalendar{rules: slices.Clone(rules)}
}

var defaultCalendar = NewHolidayCalendar(DefaultHolidayRules())

// DefaultHolidayCalendar returns the process-wide calendar built from the
// official table.
func DefaultHolidayCalendar() *HolidayCalendar {
	return defaultCalendar
}

// Rules returns a copy of the table in definition order.
func (hc *HolidayCalendar) Rules() []model.HolidayRule {
	return slices.Clone(hc.rules)
}

// Resolve binds a rule to year.
func Resolve(rule model.HolidayRule, year int) model.ResolvedHoliday {
	return model.ResolvedHoliday{
		Month:           rule.Month,
		Day:             rule.Day,
		NameKh:          rule.NameKh,
		NameEn:          rule.NameEn,
		Type:            rule.Type,
		IsPublicHoliday: rule.IsPublicHoliday,
		Date:            formatDate(year, rule.Month, rule.Day),
		Year:            year,
		BuddhistEra:     ToBuddhistEra(year),
	}
}

// OnDate returns every rule falling on month/day, in table order.
func (hc *HolidayCalendar) OnDate(year, month, day int) []model.ResolvedHoliday {
	result := []model.ResolvedHoliday{}
	for _, r := range hc.rules {
		if r.MatchesDate(month, day) {
			result = append(result, Resolve(r, year))
		}
	}
	return result
}

func (hc *HolidayCalendar) IsHoliday(year, month, day int) bool {
	return len(hc.OnDate(year, month, day)) > 0
}

// InYear resolves the whole table against year, sorted by date. Rules on
// the same day keep their table order.
func (hc *HolidayCalendar) InYear(year int) []model.ResolvedHoliday {
	result := make([]model.ResolvedHoliday, 0, len(hc.rules))
	for _, r := range hc.rules {
		result = append(result, Resolve(r, year))
	}
	sortByDate(result)
	return result
}

func (hc *HolidayCalendar) InMonth(year, month int) []model.ResolvedHoliday {
	return filter(hc.InYear(year), func(h model.ResolvedHoliday) bool {
		return h.Month == month
	})
}

func (hc *HolidayCalendar) PublicOnly(year int) []model.ResolvedHoliday {
	return filter(hc.InYear(year), func(h model.ResolvedHoliday) bool {
		return h.IsPublicHoliday
	})
}

func (hc *HolidayCalendar) ReligiousOnly(year int) []model.ResolvedHoliday {
	return filter(hc.InYear(year), func(h model.ResolvedHoliday) bool {
		return h.Type.IsReligious()
	})
}

// Upcoming returns at most limit holidays on or after the calendar date of
// now (in now's location), looking at now's year and the following one.
func (hc *HolidayCalendar) Upcoming(now time.Time, limit int) []model.ResolvedHoliday {
	result := []model.ResolvedHoliday{}
	if limit <= 0 {
		return result
	}

	today := CalendarDateFromTime(now)
	candidates := append(hc.InYear(today.Year), hc.InYear(today.Year+1)...)
	for _, h := range candidates {
		if compareDate(h.Year, h.Month, h.Day, today.Year, today.Month, today.Day) >= 0 {
			result = append(result, h)
		}
	}
	sortByDate(result)

	if len(result) > limit {
		result = result[:limit]
	}
	return result
}

// Summaries reduces resolved holidays to their names and classification.
func Summaries(holidays []model.ResolvedHoliday) []model.HolidaySummary {
	summaries := make([]model.HolidaySummary, 0, len(holidays))
	if err := copier.Copy(&summaries, &holidays); err != nil {
		log.Error().Err(err).Msg("copy holiday summaries")
	}
	return summaries
}

func sortByDate(holidays []model.ResolvedHoliday) {
	slices.SortStableFunc(holidays, func(a, b model.ResolvedHoliday) int {
		return compareDate(a.Year, a.Month, a.Day, b.Year, b.Month, b.Day)
	})
}

func filter(holidays []model.ResolvedHoliday, keep func(model.ResolvedHoliday) bool) []model.ResolvedHoliday {
	result := []model.ResolvedHoliday{}
	for _, h := range holidays {
		if keep(h) {
			result = append(result, h)
		}
	}
	return result
}
