package model

type HolidayType string

const (
	HolidayTypePublic    HolidayType = "public"
	HolidayTypeReligious HolidayType = "religious"
	HolidayTypeHoly      HolidayType = "holy"
)

// IsReligious reports whether the type is a religious observance or a holy day.
func (t HolidayType) IsReligious() bool {
	return t == HolidayTypeReligious || t == HolidayTypeHoly
}

// HolidayRule recurs every year on the same month and day.
type HolidayRule struct {
	Month           int         `json:"month"`
	Day             int         `json:"day"`
	NameKh          string      `json:"nameKh"`
	NameEn          string      `json:"nameEn"`
	Type            HolidayType `json:"type"`
	IsPublicHoliday bool        `json:"isPublicHoliday"`
}

// MatchesDate ignores the year: rules are calendar-fixed.
func (h HolidayRule) MatchesDate(month, day int) bool {
	return h.Month == month && h.Day == day
}

// ResolvedHoliday is a rule bound to one Gregorian year.
type ResolvedHoliday struct {
	Month           int         `json:"month"`
	Day             int         `json:"day"`
	NameKh          string      `json:"nameKh"`
	NameEn          string      `json:"nameEn"`
	Type            HolidayType `json:"type"`
	IsPublicHoliday bool        `json:"isPublicHoliday"`
	Date            string      `json:"date"`
	Year            int         `json:"year"`
	BuddhistEra     int         `json:"buddhistEra"`
}

type HolidaySummary struct {
	NameKh          string      `json:"nameKh"`
	NameEn          string      `json:"nameEn"`
	Type            HolidayType `json:"type"`
	IsPublicHoliday bool        `json:"isPublicHoliday"`
}

type YearQuery struct {
	Year *int `query:"year"`
}

type MonthQuery struct {
	Year  *int `query:"year"`
	Month *int `query:"month"`
}

type DateQuery struct {
	Date string `query:"date" json:"date" validate:"required"`
}

type UpcomingQuery struct {
	Limit *int `query:"limit"`
}

type WorkdayRangeQuery struct {
	From string `query:"from" validate:"required"`
	To   string `query:"to" validate:"required"`
}
