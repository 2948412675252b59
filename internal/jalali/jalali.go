// Package jalali converts dates between the Solar Hijri (Jalali) and the
// proleptic Gregorian calendars.
//
// All functions are pure and safe for concurrent use. Conversion failures are
// reported through return values, never through panics.
package jalali

import (
	"fmt"
	"time"
)

// Date is a Jalali calendar date.
type Date struct {
	Year  int `json:"year"`
	Month int `json:"month"`
	Day   int `json:"day"`
}

// GregorianDate is a proleptic Gregorian calendar date.
type GregorianDate struct {
	Year  int `json:"year"`
	Month int `json:"month"`
	Day   int `json:"day"`
}

// cumulative days before each Gregorian month in a common year
var gregorianDaysBeforeMonth = [12]int{0, 31, 59, 90, 120, 151, 181, 212, 243, 273, 304, 334}

const (
	grandCycleDays   = 12053 // 33 Jalali years
	jalaliCycleDays  = 1461  // 4 years
	gregorian400Days = 146097
	gregorian100Days = 36524
)

// Today returns the current local date in the Jalali calendar.
func Today() Date {
	return FromTime(time.Now())
}

// FromTime converts the calendar date of t (in t's location) to Jalali.
func FromTime(t time.Time) Date {
	return GregorianToJalali(t.Year(), int(t.Month()), t.Day())
}

// GregorianToJalali converts a Gregorian date. The day is not validated and
// flows through the arithmetic unchecked. A month outside 1-12 has no table
// entry and yields the zero Date.
func GregorianToJalali(gy, gm, gd int) Date {
	if gm < 1 || gm > 12 {
		return Date{}
	}

	var jy int
	if gy > 1600 {
		jy = 979
		gy -= 1600
	} else {
		gy -= 621
	}

	// високосный день учитывается только после февраля
	gy2 := gy
	if gm > 2 {
		gy2 = gy + 1
	}

	days := 365*gy + (gy2+3)/4 - (gy2+99)/100 + (gy2+399)/400 - 80 + gd + gregorianDaysBeforeMonth[gm-1]

	jy += 33 * (days / grandCycleDays)
	days %= grandCycleDays

	jy += 4 * (days / jalaliCycleDays)
	days %= jalaliCycleDays

	if days > 365 {
		jy += (days - 1) / 365
		days = (days - 1) % 365
	}

	if days < 186 {
		return Date{Year: jy, Month: 1 + days/31, Day: 1 + days%31}
	}
	return Date{Year: jy, Month: 7 + (days-186)/30, Day: 1 + (days-186)%30}
}

// JalaliToGregorian converts a Jalali date. It reports false when the input
// or the result fails the shape check (non-zero parts, month 1-12, day 1-31).
// The check is not a calendar validation: day 31 of a 30-day month converts
// to the first day of the next month.
func JalaliToGregorian(jy, jm, jd int) (GregorianDate, bool) {
	if !validShape(jy, jm, jd) {
		return GregorianDate{}, false
	}

	gy := 621
	if jy > 979 {
		gy = 1600
		jy -= 979
	}

	days := 365*jy + (jy/33)*8 + (jy%33+3)/4 + 78 + jd
	if jm < 7 {
		days += (jm - 1) * 31
	} else {
		days += 186 + (jm-7)*30
	}

	gy += 400 * (days / gregorian400Days)
	days %= gregorian400Days

	if days > gregorian100Days {
		days--
		gy += 100 * (days / gregorian100Days)
		days %= gregorian100Days
		if days >= 365 {
			days++
		}
	}

	gy += 4 * (days / jalaliCycleDays)
	days %= jalaliCycleDays

	if days > 365 {
		gy += (days - 1) / 365
		days = (days - 1) % 365
	}

	gd := days + 1
	gm := 1
	for ; gm <= 12; gm++ {
		n := gregorianMonthDays(gy, gm)
		if gd <= n {
			break
		}
		gd -= n
	}

	if !validShape(gy, gm, gd) {
		return GregorianDate{}, false
	}
	return GregorianDate{Year: gy, Month: gm, Day: gd}, true
}

func validShape(y, m, d int) bool {
	return y != 0 && m >= 1 && m <= 12 && d >= 1 && d <= 31
}

// IsGregorianLeap reports whether gy is a Gregorian leap year.
func IsGregorianLeap(gy int) bool {
	return gy%4 == 0 && gy%100 != 0 || gy%400 == 0
}

func gregorianMonthDays(gy, gm int) int {
	switch gm {
	case 2:
		if IsGregorianLeap(gy) {
			return 29
		}
		return 28
	case 4, 6, 9, 11:
		return 30
	default:
		return 31
	}
}

// IsLeap reports whether Esfand of the given year has 30 days. This is the
// 128-year approximation the date picker has always used, not the 33-year
// arithmetic cycle of the converter; the two disagree for many years.
func IsLeap(year int) bool {
	return (year+2346)%128 < 30
}

// DaysInMonth returns the length of a Jalali month: 31 for months 1-6, 30 for
// months 7-11 and 29 or 30 for Esfand according to IsLeap.
func DaysInMonth(year, month int) int {
	switch {
	case month <= 6:
		return 31
	case month <= 11:
		return 30
	case IsLeap(year):
		return 30
	default:
		return 29
	}
}

// Valid reports whether d is a selectable calendar date.
func (d Date) Valid() bool {
	if d.Year == 0 || d.Month < 1 || d.Month > 12 {
		return false
	}
	return d.Day >= 1 && d.Day <= DaysInMonth(d.Year, d.Month)
}

// IsZero reports whether any part of d is missing.
func (d Date) IsZero() bool {
	return d.Year == 0 || d.Month == 0 || d.Day == 0
}

// Before reports whether d is strictly earlier than other.
func (d Date) Before(other Date) bool {
	if d.Year != other.Year {
		return d.Year < other.Year
	}
	if d.Month != other.Month {
		return d.Month < other.Month
	}
	return d.Day < other.Day
}

// Gregorian converts d, see JalaliToGregorian.
func (d Date) Gregorian() (GregorianDate, bool) {
	return JalaliToGregorian(d.Year, d.Month, d.Day)
}

func (d Date) String() string {
	return fmt.Sprintf("%04d/%02d/%02d", d.Year, d.Month, d.Day)
}

// Jalali converts g, see GregorianToJalali.
func (g GregorianDate) Jalali() Date {
	return GregorianToJalali(g.Year, g.Month, g.Day)
}

// Time returns midnight of g in loc. Out-of-range parts are normalised by
// time.Date.
func (g GregorianDate) Time(loc *time.Location) time.Time {
	return time.Date(g.Year, time.Month(g.Month), g.Day, 0, 0, 0, 0, loc)
}

func (g GregorianDate) String() string {
	return fmt.Sprintf("%04d-%02d-%02d", g.Year, g.Month, g.Day)
}
