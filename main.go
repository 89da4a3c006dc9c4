package main

import (
	"context"
	"os"
	"os/signal"
	"syscall"

	"khmer_calendar/cache"
	"khmer_calendar/config"
	"khmer_calendar/handler"
	"khmer_calendar/helper"
	"khmer_calendar/router"
	"khmer_calendar/utils"

	"github.com/rs/zerolog/log"
)

func main() {
	cfg, err := config.LoadFromEnv("")
	if err != nil {
		log.Fatal().Err(err).Msg("load config")
	}
	utils.SetupLogger(cfg.Log.Level, cfg.Log.Pretty)

	if err := cache.Connect(cfg.Redis); err != nil {
		log.Warn().Err(err).Msg("redis unavailable, continuing without cache")
	}
	defer cache.Close()

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	if cfg.Scheduler.Enabled {
		if err := helper.StartDayRolloverScheduler(utils.ICT, handler.PublishToday); err != nil {
			log.Fatal().Err(err).Msg("start rollover scheduler")
		}
		if cache.Client != nil {
			if err := helper.StartCacheWarmer(cfg.Scheduler.CacheWarmCron, handler.WarmCache); err != nil {
				log.Fatal().Err(err).Msg("start cache warmer")
			}
		}
		defer helper.StopSchedulers()
	}
	go handler.ListenToday(ctx)

	app := router.New(cfg.Server)
	go func() {
		<-ctx.Done()
		log.Info().Msg("shutting down")
		if err := app.Shutdown(); err != nil {
			log.Error().Err(err).Msg("shutdown")
		}
	}()

	log.Info().Str("addr", cfg.Server.Addr()).Msg("Khmer Calendar API listening")
	if err := app.Listen(cfg.Server.Addr()); err != nil {
		log.Error().Err(err).Msg("listen")
	}
}
