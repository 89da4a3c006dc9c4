package utils

import (
	"time"

	"khmer_calendar/constants"
)

const DateLayout = "2006-01-02"

// ICT is Indochina Time, Cambodia's civil time zone.
var ICT = time.FixedZone("ICT", constants.ICT_OFFSET_SECONDS)

// Now is the clock used by handlers and schedulers; tests replace it.
var Now = time.Now

// NowICT returns the current instant in Cambodian time.
func NowICT() time.Time {
	return Now().In(ICT)
}
