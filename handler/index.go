package handler

import (
	"context"
	"strconv"

	"khmer_calendar/cache"
	"khmer_calendar/helper"
	"khmer_calendar/model"
	"khmer_calendar/utils"

	"github.com/rs/zerolog/log"
)

var (
	Holidays = helper.DefaultHolidayCalendar()
	Workdays = helper.NewWorkdayCalendar(Holidays)
)

func yearCacheKey(year int) string {
	return cache.Key("holidays", strconv.Itoa(year))
}

// yearHolidays is the cached form of Holidays.InYear.
func yearHolidays(ctx context.Context, year int) []model.ResolvedHoliday {
	return cache.Remember(ctx, yearCacheKey(year), func() []model.ResolvedHoliday {
		return Holidays.InYear(year)
	})
}

// WarmCache refreshes the cached listings of the current and next year.
func WarmCache() {
	ctx := context.Background()
	year := utils.NowICT().Year()
	for _, y := range []int{year, year + 1} {
		cache.Store(ctx, yearCacheKey(y), Holidays.InYear(y))
	}
	log.Debug().Int("year", year).Msg("[CRON] holiday cache warmed")
}
