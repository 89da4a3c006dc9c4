package helper

import (
	"khmer_calendar/constants"
	"khmer_calendar/utils"
)

func CheckYear(year int) error {
	return checkRange("year", year, constants.MIN_YEAR, constants.MAX_YEAR)
}

func CheckMonth(month int) error {
	return checkRange("month", month, 1, 12)
}

func CheckLimit(limit int) error {
	return checkRange("limit", limit, constants.MIN_LIMIT, constants.MAX_LIMIT)
}

func checkRange(field string, value, min, max int) error {
	if value < min || value > max {
		return utils.NewInvalidRangeError(field, value, min, max)
	}
	return nil
}
