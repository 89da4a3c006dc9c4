package validate

import (
	"khmer_calendar/constants"
	"khmer_calendar/helper"
	"khmer_calendar/model"
	"khmer_calendar/utils"

	"github.com/gofiber/fiber/v2"
)

// Year reads ?year=, defaulting to the current year in Cambodia.
func Year() fiber.Handler {
	return func(c *fiber.Ctx) error {
		var input model.YearQuery
		if err := c.QueryParser(&input); err != nil {
			return utils.ErrorResponse(c, fiber.StatusBadRequest, constants.INVALID_YEAR, err)
		}
		year := utils.IntOr(optionalInt(c, "year", input.Year), utils.NowICT().Year())
		if err := helper.CheckYear(year); err != nil {
			return utils.ErrorResponse(c, fiber.StatusBadRequest, constants.INVALID_YEAR, err)
		}
		c.Locals("year", year)
		return c.Next()
	}
}

// YearMonth reads ?year=&month=, both defaulting to the current date in
// Cambodia.
func YearMonth() fiber.Handler {
	return func(c *fiber.Ctx) error {
		var input model.MonthQuery
		if err := c.QueryParser(&input); err != nil {
			return utils.ErrorResponse(c, fiber.StatusBadRequest, constants.ERROR_INPUT, err)
		}
		now := utils.NowICT()
		year := utils.IntOr(optionalInt(c, "year", input.Year), now.Year())
		if err := helper.CheckYear(year); err != nil {
			return utils.ErrorResponse(c, fiber.StatusBadRequest, constants.INVALID_YEAR, err)
		}
		month := utils.IntOr(optionalInt(c, "month", input.Month), int(now.Month()))
		if err := helper.CheckMonth(month); err != nil {
			return utils.ErrorResponse(c, fiber.StatusBadRequest, constants.INVALID_MONTH, err)
		}
		c.Locals("year", year)
		c.Locals("month", month)
		return c.Next()
	}
}

func Limit() fiber.Handler {
	return func(c *fiber.Ctx) error {
		var input model.UpcomingQuery
		if err := c.QueryParser(&input); err != nil {
			return utils.ErrorResponse(c, fiber.StatusBadRequest, constants.INVALID_LIMIT, err)
		}
		limit := utils.IntOr(optionalInt(c, "limit", input.Limit), constants.DEFAULT_LIMIT)
		if err := helper.CheckLimit(limit); err != nil {
			return utils.ErrorResponse(c, fiber.StatusBadRequest, constants.INVALID_LIMIT, err)
		}
		c.Locals("limit", limit)
		return c.Next()
	}
}

// Date reads the required ?date= query parameter.
func Date() fiber.Handler {
	return func(c *fiber.Ctx) error {
		var input model.DateQuery
		if err := c.QueryParser(&input); err != nil {
			return utils.ErrorResponse(c, fiber.StatusBadRequest, constants.ERROR_INPUT, err)
		}
		if ok, err := dateFromInput(c, "date", input.Date); !ok {
			return err
		}
		return c.Next()
	}
}
