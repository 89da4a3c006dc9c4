package helper

import (
	"testing"

	"khmer_calendar/utils"

	"github.com/stretchr/testify/assert"
)

func TestCheckRanges(t *testing.T) {
	assert.NoError(t, CheckYear(1900))
	assert.NoError(t, CheckYear(2100))
	assert.True(t, utils.IsInvalidRange(CheckYear(1899)))
	assert.True(t, utils.IsInvalidRange(CheckYear(2101)))

	assert.NoError(t, CheckMonth(1))
	assert.NoError(t, CheckMonth(12))
	assert.Error(t, CheckMonth(0))
	assert.Error(t, CheckMonth(13))

	assert.NoError(t, CheckLimit(1))
	assert.NoError(t, CheckLimit(100))
	assert.Error(t, CheckLimit(0))
	assert.EqualError(t, CheckLimit(101), "limit 101 outside [1, 100]")
}
