package handler

import (
	"khmer_calendar/helper"
	"khmer_calendar/model"
	"khmer_calendar/utils"

	"github.com/gofiber/fiber/v2"
)

func GetCurrent(c *fiber.Ctx) error {
	return utils.DataResponse(c, fiber.StatusOK, helper.Today(Holidays, Workdays, utils.NowICT()))
}

func ConvertDate(c *fiber.Ctx) error {
	date := c.Locals("date").(helper.CalendarDate)
	return utils.DataResponse(c, fiber.StatusOK, helper.ConvertDate(Holidays, Workdays, date))
}

func GetMonths(c *fiber.Ctx) error {
	months := helper.KhmerMonths()
	data := make([]model.NamedIndex, 0, len(months))
	for i, name := range months {
		data = append(data, model.NamedIndex{
			Index:   i + 1,
			Khmer:   name,
			English: helper.EnglishMonthName(i + 1),
		})
	}
	return utils.DataResponse(c, fiber.StatusOK, data)
}

func GetDays(c *fiber.Ctx) error {
	days := helper.KhmerDays()
	data := make([]model.NamedIndex, 0, len(days))
	for i, name := range days {
		data = append(data, model.NamedIndex{
			Index:   i,
			Khmer:   name,
			English: helper.EnglishDayName(i),
		})
	}
	return utils.DataResponse(c, fiber.StatusOK, data)
}

func ToBuddhistEra(c *fiber.Ctx) error {
	year := c.Locals("year").(int)
	return utils.DataResponse(c, fiber.StatusOK, model.EraConversion{
		Gregorian:   year,
		BuddhistEra: helper.ToBuddhistEra(year),
		Difference:  helper.BuddhistEraOffset,
	})
}

func ToGregorian(c *fiber.Ctx) error {
	beYear := c.Locals("beYear").(int)
	return utils.DataResponse(c, fiber.StatusOK, model.EraConversion{
		Gregorian:   helper.FromBuddhistEra(beYear),
		BuddhistEra: beYear,
		Difference:  helper.BuddhistEraOffset,
	})
}
