package handler

import (
	"khmer_calendar/constants"
	"khmer_calendar/helper"
	"khmer_calendar/model"
	"khmer_calendar/utils"

	"github.com/gofiber/fiber/v2"
)

func CountWorkdays(c *fiber.Ctx) error {
	from := c.Locals("from").(helper.CalendarDate)
	to := c.Locals("to").(helper.CalendarDate)

	count, err := Workdays.WorkdaysBetween(from, to)
	if err != nil {
		return utils.ErrorResponse(c, fiber.StatusBadRequest, constants.INVALID_DATE_RANGE, err)
	}

	return utils.DataResponse(c, fiber.StatusOK, model.WorkdayCount{
		From:     from.String(),
		To:       to.String(),
		Workdays: count,
	})
}

func GetNextWorkday(c *fiber.Ctx) error {
	date := c.Locals("date").(helper.CalendarDate)
	return utils.DataResponse(c, fiber.StatusOK, model.NextWorkday{
		Date:        date.String(),
		NextWorkday: Workdays.NextWorkday(date).String(),
	})
}
