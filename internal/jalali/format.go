package jalali

import "fmt"

var monthNames = [12]string{
	"فروردین", "اردیبهشت", "خرداد", "تیر", "مرداد", "شهریور",
	"مهر", "آبان", "آذر", "دی", "بهمن", "اسفند",
}

// WeekdayHeaders are the short day names of a Saturday-first week.
var WeekdayHeaders = [7]string{"ش", "ی", "د", "س", "چ", "پ", "ج"}

// MonthName returns the Persian name of a Jalali month, or "" when month is
// outside 1-12.
func MonthName(month int) string {
	if month < 1 || month > 12 {
		return ""
	}
	return monthNames[month-1]
}

// Format renders "{day} {month name} {year}". The date is assumed valid.
func Format(year, month, day int) string {
	return fmt.Sprintf("%d %s %d", day, MonthName(month), year)
}

// Label is Format applied to d.
func (d Date) Label() string {
	return Format(d.Year, d.Month, d.Day)
}
