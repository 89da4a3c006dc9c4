package handler

import (
	"time"

	"khmer_calendar/constants"
	"khmer_calendar/model"
	"khmer_calendar/utils"

	"github.com/gofiber/fiber/v2"
)

func Health(c *fiber.Ctx) error {
	return c.JSON(model.HealthStatus{
		Status:    "healthy",
		Timestamp: utils.Now().UTC().Format(time.RFC3339),
		Service:   constants.SERVICE_NAME,
		Version:   constants.SERVICE_VERSION,
	})
}

// Index describes the service and lists its endpoints.
func Index(c *fiber.Ctx) error {
	return c.JSON(fiber.Map{
		"message":     "Welcome to Cambodia Khmer Calendar API",
		"version":     constants.SERVICE_VERSION,
		"description": "National API for Cambodia holidays, holy days, and Khmer calendar",
		"baseUrl":     c.BaseURL(),
		"endpoints": fiber.Map{
			"calendar": []string{
				"GET /api/health",
				"GET /api/current",
				"GET /api/convert?date=YYYY-MM-DD",
				"POST /api/convert",
				"GET /api/months",
				"GET /api/days",
				"GET /api/buddhist-era/:year",
				"GET /api/gregorian/:beYear",
				"GET /api/ws/today",
			},
			"holidays": []string{
				"GET /api/holidays?year=",
				"GET /api/holidays/date?date=YYYY-MM-DD",
				"GET /api/holidays/month?year=&month=",
				"GET /api/holidays/upcoming?limit=",
				"GET /api/holidays/check?date=YYYY-MM-DD",
				"GET /api/holidays/public?year=",
				"GET /api/holidays/religious?year=",
				"GET /api/holidays/ics?year=",
			},
			"workdays": []string{
				"GET /api/workdays?from=YYYY-MM-DD&to=YYYY-MM-DD",
				"GET /api/workdays/next?date=YYYY-MM-DD",
			},
		},
		"holidayTypes": fiber.Map{
			"public":    "Public holidays - Official government holidays",
			"religious": "Religious observances - Buddhist religious days",
			"holy":      "Holy days - Major Buddhist holy days",
		},
	})
}
