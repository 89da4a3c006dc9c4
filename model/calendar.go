package model

type GregorianDate struct {
	Year    int    `json:"year"`
	Month   int    `json:"month"`
	Day     int    `json:"day"`
	DayName string `json:"dayName"`
}

type BuddhistEraDate struct {
	Year      int    `json:"year"`
	Month     int    `json:"month"`
	Day       int    `json:"day"`
	MonthName string `json:"monthName"`
	DayName   string `json:"dayName"`
}

type FormattedText struct {
	Khmer   string `json:"khmer"`
	English string `json:"english"`
}

type FormattedDate struct {
	Gregorian   GregorianDate   `json:"gregorian"`
	BuddhistEra BuddhistEraDate `json:"buddhistEra"`
	Formatted   FormattedText   `json:"formatted"`
}

// ConvertResult is the payload of /api/current and /api/convert.
// Holidays is nil (JSON null) when the date matches no rule.
type ConvertResult struct {
	FormattedDate
	Date      string            `json:"date"`
	DayTypes  []string          `json:"dayTypes"`
	IsWorkday bool              `json:"isWorkday"`
	Holidays  []ResolvedHoliday `json:"holidays"`
	IsHoliday bool              `json:"isHoliday"`
}

type NamedIndex struct {
	Index   int    `json:"index"`
	Khmer   string `json:"khmer"`
	English string `json:"english"`
}

type EraConversion struct {
	Gregorian   int `json:"gregorian"`
	BuddhistEra int `json:"buddhistEra"`
	Difference  int `json:"difference"`
}
