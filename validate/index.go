package validate

import (
	"strconv"

	"khmer_calendar/constants"
	"khmer_calendar/helper"
	"khmer_calendar/utils"

	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"
)

var validate = validator.New()

// dateFromInput validates a raw date string and stores the parsed
// CalendarDate under key. When ok is false the error response has already
// been written and err is what the handler must return.
func dateFromInput(c *fiber.Ctx, key, raw string) (ok bool, err error) {
	if err := validate.Var(raw, "required"); err != nil {
		return false, utils.ErrorResponse(c, fiber.StatusBadRequest, constants.DATE_REQUIRED, err)
	}
	cd, err := helper.ParseCalendarDate(raw)
	if err != nil {
		return false, utils.ErrorResponse(c, fiber.StatusBadRequest, constants.INVALID_DATE_FORMAT, err)
	}
	c.Locals(key, cd)
	return true, nil
}

// optionalInt treats an empty query value (?year=) as absent.
// QueryParser decodes it as a pointer to 0.
func optionalInt(c *fiber.Ctx, key string, parsed *int) *int {
	if c.Query(key) == "" {
		return nil
	}
	return parsed
}

// IntParam parses a path parameter as an integer and stores it under the
// same key.
func IntParam(key, message string) fiber.Handler {
	return func(c *fiber.Ctx) error {
		value, err := strconv.Atoi(c.Params(key))
		if err != nil {
			return utils.ErrorResponse(c, fiber.StatusBadRequest, message, err)
		}
		c.Locals(key, value)
		return c.Next()
	}
}
