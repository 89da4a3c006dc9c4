package helper

import (
	"time"

	"khmer_calendar/utils"

	"github.com/go-co-op/gocron/v2"
	"github.com/robfig/cron/v3"
	"github.com/rotisserie/eris"
	"github.com/rs/zerolog/log"
)

var (
	rolloverScheduler gocron.Scheduler
	warmScheduler     *cron.Cron
)

// StartDayRolloverScheduler calls onRollover shortly after every midnight
// in loc with the new current instant.
func StartDayRolloverScheduler(loc *time.Location, onRollover func(now time.Time)) error {
	s, err := gocron.NewScheduler(gocron.WithLocation(loc))
	if err != nil {
		return eris.Wrap(err, "create rollover scheduler")
	}

	_, err = s.NewJob(
		gocron.DailyJob(
			1,
			gocron.NewAtTimes(
				gocron.NewAtTime(0, 0, 5),
			),
		),
		gocron.NewTask(func() {
			now := utils.Now().In(loc)
			log.Info().Str("date", CalendarDateFromTime(now).String()).Msg("[CRON] day rollover")
			onRollover(now)
		}),
	)
	if err != nil {
		s.Shutdown()
		return eris.Wrap(err, "schedule rollover job")
	}

	s.Start()
	rolloverScheduler = s
	log.Info().Str("zone", loc.String()).Msg("day rollover scheduler started (00:00:05)")
	return nil
}

// StartCacheWarmer runs warm on the given cron spec ("@every 6h",
// "0 */6 * * *"), skipping a run while the previous one is still going.
// warm also runs once immediately.
func StartCacheWarmer(spec string, warm func()) error {
	c := cron.New(cron.WithChain(
		cron.SkipIfStillRunning(cron.DefaultLogger),
	))
	if _, err := c.AddFunc(spec, warm); err != nil {
		return eris.Wrapf(err, "invalid cache warm spec %q", spec)
	}

	c.Start()
	warmScheduler = c
	go warm()
	log.Info().Str("spec", spec).Msg("cache warmer started")
	return nil
}

func StopSchedulers() {
	if rolloverScheduler != nil {
		if err := rolloverScheduler.Shutdown(); err != nil {
			log.Warn().Err(err).Msg("stop rollover scheduler")
		}
		rolloverScheduler = nil
	}
	if warmScheduler != nil {
		<-warmScheduler.Stop().Done()
		warmScheduler = nil
	}
}
