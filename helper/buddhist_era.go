package helper

// BuddhistEraOffset is the number of years the Buddhist Era runs ahead of
// the Gregorian calendar in Cambodian civil use.
const BuddhistEraOffset = 543

func ToBuddhistEra(gregorianYear int) int {
	return gregorianYear + BuddhistEraOffset
}

func FromBuddhistEra(beYear int) int {
	return beYear - BuddhistEraOffset
}
