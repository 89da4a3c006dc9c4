package router

import (
	"khmer_calendar/config"
	"khmer_calendar/constants"
	"khmer_calendar/handler"
	"khmer_calendar/middleware"
	"khmer_calendar/validate"

	"github.com/gofiber/contrib/websocket"
	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/cors"
	"github.com/gofiber/fiber/v2/middleware/recover"
)

// New builds the application with its middleware stack and routes.
func New(cfg config.ServerConfig) *fiber.App {
	app := fiber.New(fiber.Config{
		AppName:      constants.SERVICE_NAME,
		ErrorHandler: middleware.ErrorHandler,
	})

	app.Use(middleware.RequestID())
	app.Use(middleware.RequestLogger())
	// Inside the logger so recovered panics are logged as 500s.
	app.Use(recover.New())
	app.Use(cors.New(cors.Config{
		AllowOrigins: cfg.AllowOrigins,
		AllowMethods: "GET,POST,OPTIONS",
		AllowHeaders: "Origin, Content-Type, Accept, X-Request-ID",
		MaxAge:       600,
	}))

	SetupRoutes(app)
	return app
}

func SetupRoutes(app *fiber.App) {
	app.Get("/", handler.Index)

	api := app.Group("/api")
	api.Get("/health", handler.Health)

	api.Get("/current", handler.GetCurrent)
	api.Get("/convert", validate.ConvertDate(), handler.ConvertDate)
	api.Post("/convert", validate.ConvertDate(), handler.ConvertDate)
	api.Get("/months", handler.GetMonths)
	api.Get("/days", handler.GetDays)
	api.Get("/buddhist-era/:year", validate.IntParam("year", constants.INVALID_GREGORIAN), handler.ToBuddhistEra)
	api.Get("/gregorian/:beYear", validate.IntParam("beYear", constants.INVALID_BUDDHIST_ERA), handler.ToGregorian)

	holidays := api.Group("/holidays")
	holidays.Get("/", validate.Year(), handler.GetHolidays)
	holidays.Get("/date", validate.Date(), handler.GetHolidaysByDate)
	holidays.Get("/month", validate.YearMonth(), handler.GetHolidaysByMonth)
	holidays.Get("/upcoming", validate.Limit(), handler.GetUpcomingHolidays)
	holidays.Get("/check", validate.Date(), handler.CheckHoliday)
	holidays.Get("/public", validate.Year(), handler.GetPublicHolidays)
	holidays.Get("/religious", validate.Year(), handler.GetReligiousHolidays)
	holidays.Get("/ics", validate.Year(), handler.GetHolidaysICS)

	workdays := api.Group("/workdays")
	workdays.Get("/", validate.WorkdayRange(), handler.CountWorkdays)
	workdays.Get("/next", validate.Date(), handler.GetNextWorkday)

	ws := api.Group("/ws", middleware.WebsocketUpgrade())
	ws.Get("/today", websocket.New(handler.TodayFeed))

	app.Use(middleware.NotFound)
}
