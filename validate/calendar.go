package validate

import (
	"khmer_calendar/constants"
	"khmer_calendar/model"
	"khmer_calendar/utils"

	"github.com/gofiber/fiber/v2"
)

// ConvertDate reads the date from the query string, falling back to a JSON
// or form body for POST requests.
func ConvertDate() fiber.Handler {
	return func(c *fiber.Ctx) error {
		raw := c.Query("date")
		if raw == "" && c.Method() == fiber.MethodPost && len(c.Body()) > 0 {
			var input model.ConvertInput
			if err := c.BodyParser(&input); err != nil {
				return utils.ErrorResponse(c, fiber.StatusBadRequest, constants.ERROR_INPUT, err)
			}
			raw = input.Date
		}
		if ok, err := dateFromInput(c, "date", raw); !ok {
			return err
		}
		return c.Next()
	}
}

func WorkdayRange() fiber.Handler {
	return func(c *fiber.Ctx) error {
		var input model.WorkdayRangeQuery
		if err := c.QueryParser(&input); err != nil {
			return utils.ErrorResponse(c, fiber.StatusBadRequest, constants.ERROR_INPUT, err)
		}
		if err := validate.Struct(input); err != nil {
			return utils.ErrorResponse(c, fiber.StatusBadRequest, constants.DATE_REQUIRED, err)
		}
		if ok, err := dateFromInput(c, "from", input.From); !ok {
			return err
		}
		if ok, err := dateFromInput(c, "to", input.To); !ok {
			return err
		}
		return c.Next()
	}
}
