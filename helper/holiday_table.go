package helper

import "khmer_calendar/model"

func rule(month, day int, nameKh, nameEn string, typ model.HolidayType) model.HolidayRule {
	return model.HolidayRule{
		Month:           month,
		Day:             day,
		NameKh:          nameKh,
		NameEn:          nameEn,
		Type:            typ,
		IsPublicHoliday: true,
	}
}

// Official Cambodian observances on fixed Gregorian dates, in definition
// order. Lunar festivals are pinned to their usual dates.
var fixedHolidays = []model.HolidayRule{
	rule(1, 1, "ទិវាចូលឆ្នាំសកល", "New Year", model.HolidayTypePublic),
	rule(1, 7, "ទិវាជ័យជំនះលើរបបប្រល័យពូជសាសន៍", "Victory over Genocide Day", model.HolidayTypePublic),
	rule(3, 8, "ទិវាសិទ្ធិស្ត្រីអន្តរជាតិ", "International Women Day", model.HolidayTypePublic),
	rule(4, 14, "ពិធីបុណ្យចូលឆ្នាំខ្មែរ", "Khmer New Year Day (Day 1)", model.HolidayTypePublic),
	rule(4, 15, "ពិធីបុណ្យចូលឆ្នាំខ្មែរ", "Khmer New Year Day (Day 2)", model.HolidayTypePublic),
	rule(4, 16, "ពិធីបុណ្យចូលឆ្នាំខ្មែរ", "Khmer New Year Day (Day 3)", model.HolidayTypePublic),
	rule(5, 1, "ទិវាពលករ", "Labour Day", model.HolidayTypePublic),
	rule(5, 11, "វិសាខបូជា", "Visak Bochea Day", model.HolidayTypeHoly),
	rule(5, 14, "ថ្ងៃខួបកំណើតព្រះមហាក្សត្រ", "King's Birthday", model.HolidayTypePublic),
	rule(5, 15, "ទិវាព្រះរាជពិធីច្រត់ព្រះនង្គ័ល", "Royal Plowing Ceremony", model.HolidayTypePublic),
	rule(6, 18, "ថ្ងៃខួបកំណើតព្រះមាតា", "King's Mother's Birthday", model.HolidayTypePublic),
	rule(9, 21, "ពិធីបុណ្យភ្ជុំបិណ្ឌ", "Pchum Ben Festival (Day 1)", model.HolidayTypeReligious),
	rule(9, 22, "ពិធីបុណ្យភ្ជុំបិណ្ឌ", "Pchum Ben Festival (Day 2)", model.HolidayTypeReligious),
	rule(9, 23, "ពិធីបុណ្យភ្ជុំបិណ្ឌ", "Pchum Ben Festival (Day 3)", model.HolidayTypeReligious),
	rule(9, 24, "ទិវាប្រកាសរដ្ឋធម្មនុញ្ញ", "Constitutional Day", model.HolidayTypePublic),
	rule(10, 15, "ទិវារំលឹកព្រះបិតា", "Commemoration Day of King's Father", model.HolidayTypePublic),
	rule(10, 29, "ថ្ងៃខួបគ្រងរាជ្យព្រះមហាក្សត្រ", "King's Coronation Day", model.HolidayTypePublic),
	rule(11, 4, "បុណ្យអុំទូក", "Water Festival Ceremony (Day 1)", model.HolidayTypePublic),
	rule(11, 5, "បុណ្យអុំទូក", "Water Festival Ceremony (Day 2)", model.HolidayTypePublic),
	rule(11, 6, "បុណ្យអុំទូក", "Water Festival Ceremony (Day 3)", model.HolidayTypePublic),
	rule(11, 9, "ទិវាប្រារព្ធទិវាឯករាជ្យជាតិ", "Independence Day", model.HolidayTypePublic),
	rule(12, 29, "ទិវាសន្តិភាព", "Peace Day", model.HolidayTypePublic),
}

// Buddhist holy days that follow the lunar calendar. Empty until a lunar
// calendar is implemented; entries here are matched after fixedHolidays.
var buddhistHolyDays = []model.HolidayRule{}

// DefaultHolidayRules returns a copy of the built-in table.
func DefaultHolidayRules() []model.HolidayRule {
	rules := make([]model.HolidayRule, 0, len(fixedHolidays)+len(buddhistHolyDays))
	rules = append(rules, fixedHolidays...)
	rules = append(rules, buddhistHolyDays...)
	return rules
}
