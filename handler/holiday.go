package handler

import (
	"fmt"

	"khmer_calendar/helper"
	"khmer_calendar/utils"

	"github.com/gofiber/fiber/v2"
)

func GetHolidays(c *fiber.Ctx) error {
	year := c.Locals("year").(int)
	holidays := yearHolidays(c.UserContext(), year)

	publicCount := 0
	for _, h := range holidays {
		if h.IsPublicHoliday {
			publicCount++
		}
	}

	return utils.SuccessResponse(c, fiber.StatusOK, fiber.Map{
		"year":           year,
		"buddhistEra":    helper.ToBuddhistEra(year),
		"total":          len(holidays),
		"publicHolidays": publicCount,
		"data":           holidays,
	})
}

func GetHolidaysByDate(c *fiber.Ctx) error {
	date := c.Locals("date").(helper.CalendarDate)
	holidays := Holidays.OnDate(date.Year, date.Month, date.Day)

	return utils.SuccessResponse(c, fiber.StatusOK, fiber.Map{
		"date":      date.String(),
		"isHoliday": len(holidays) > 0,
		"count":     len(holidays),
		"data":      holidays,
	})
}

func GetHolidaysByMonth(c *fiber.Ctx) error {
	year := c.Locals("year").(int)
	month := c.Locals("month").(int)
	holidays := Holidays.InMonth(year, month)

	return utils.SuccessResponse(c, fiber.StatusOK, fiber.Map{
		"year":        year,
		"month":       month,
		"buddhistEra": helper.ToBuddhistEra(year),
		"monthName":   helper.MonthName(month),
		"total":       len(holidays),
		"data":        holidays,
	})
}

func GetUpcomingHolidays(c *fiber.Ctx) error {
	limit := c.Locals("limit").(int)
	holidays := Holidays.Upcoming(utils.NowICT(), limit)

	return utils.SuccessResponse(c, fiber.StatusOK, fiber.Map{
		"limit": limit,
		"count": len(holidays),
		"data":  holidays,
	})
}

func CheckHoliday(c *fiber.Ctx) error {
	date := c.Locals("date").(helper.CalendarDate)
	holidays := Holidays.OnDate(date.Year, date.Month, date.Day)

	return utils.SuccessResponse(c, fiber.StatusOK, fiber.Map{
		"date":      date.String(),
		"isHoliday": len(holidays) > 0,
		"holidays":  helper.Summaries(holidays),
	})
}

func GetPublicHolidays(c *fiber.Ctx) error {
	year := c.Locals("year").(int)
	holidays := Holidays.PublicOnly(year)

	return utils.SuccessResponse(c, fiber.StatusOK, fiber.Map{
		"year":        year,
		"buddhistEra": helper.ToBuddhistEra(year),
		"total":       len(holidays),
		"data":        holidays,
	})
}

func GetReligiousHolidays(c *fiber.Ctx) error {
	year := c.Locals("year").(int)
	holidays := Holidays.ReligiousOnly(year)

	return utils.SuccessResponse(c, fiber.StatusOK, fiber.Map{
		"year":        year,
		"buddhistEra": helper.ToBuddhistEra(year),
		"total":       len(holidays),
		"data":        holidays,
	})
}

// GetHolidaysICS serves the year's holidays as an iCalendar feed.
func GetHolidaysICS(c *fiber.Ctx) error {
	year := c.Locals("year").(int)
	holidays := yearHolidays(c.UserContext(), year)

	c.Set(fiber.HeaderContentType, "text/calendar; charset=utf-8")
	c.Set(fiber.HeaderContentDisposition, fmt.Sprintf(`attachment; filename="cambodia-holidays-%d.ics"`, year))
	return c.Status(fiber.StatusOK).SendString(helper.BuildICS(year, holidays, utils.Now()))
}
