package helper

import "time"

var khmerMonths = [12]string{
	"មករា",
	"កុម្ភៈ",
	"មីនា",
	"មេសា",
	"ឧសភា",
	"មិថុនា",
	"កក្កដា",
	"សីហា",
	"កញ្ញា",
	"តុលា",
	"វិច្ឆិកា",
	"ធ្នូ",
}

// Sunday first, matching time.Weekday.
var khmerDays = [7]string{
	"ថ្ងៃអាទិត្យ",
	"ថ្ងៃច័ន្ទ",
	"ថ្ងៃអង្គារ",
	"ថ្ងៃពុធ",
	"ថ្ងៃព្រហស្បតិ៍",
	"ថ្ងៃសុក្រ",
	"ថ្ងៃសៅរ៍",
}

// KhmerMonths returns the twelve month names, January first.
func KhmerMonths() []string {
	return append([]string(nil), khmerMonths[:]...)
}

// KhmerDays returns the seven day names, Sunday first.
func KhmerDays() []string {
	return append([]string(nil), khmerDays[:]...)
}

// MonthName returns the Khmer name of month 1..12, or "" when out of range.
func MonthName(index int) string {
	if index < 1 || index > len(khmerMonths) {
		return ""
	}
	return khmerMonths[index-1]
}

// DayName returns the Khmer name of weekday 0..6 (0 = Sunday), or "".
func DayName(index int) string {
	if index < 0 || index >= len(khmerDays) {
		return ""
	}
	return khmerDays[index]
}

func EnglishMonthName(index int) string {
	if index < 1 || index > 12 {
		return ""
	}
	return time.Month(index).String()
}

func EnglishDayName(index int) string {
	if index < 0 || index > 6 {
		return ""
	}
	return time.Weekday(index).String()
}
