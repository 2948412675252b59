package jalali

import "time"

// yearsAhead is how many years after the current one can be picked.
const yearsAhead = 4

// Day is one cell of the date picker; past days are disabled.
type Day struct {
	Day      int  `json:"day"`
	Disabled bool `json:"disabled"`
}

// MonthGrid is one month of the date picker.
type MonthGrid struct {
	Year      int    `json:"year"`
	Month     int    `json:"month"`
	MonthName string `json:"month_name"`
	// Offset is the column of day 1 in a Saturday-first week.
	Offset int   `json:"offset"`
	Days   []Day `json:"days"`
}

// Month builds the picker grid for year/month. Days before today are
// disabled. It returns false when month is outside 1-12 or year is zero.
func Month(year, month int, today Date) (MonthGrid, bool) {
	if year == 0 || month < 1 || month > 12 {
		return MonthGrid{}, false
	}

	grid := MonthGrid{
		Year:      year,
		Month:     month,
		MonthName: MonthName(month),
	}

	if g, ok := JalaliToGregorian(year, month, 1); ok {
		grid.Offset = saturdayOffset(g.Time(time.UTC).Weekday())
	}

	n := DaysInMonth(year, month)
	grid.Days = make([]Day, n)
	for i := range grid.Days {
		d := Date{Year: year, Month: month, Day: i + 1}
		grid.Days[i] = Day{Day: i + 1, Disabled: d.Before(today)}
	}

	return grid, true
}

// YearOptions lists the selectable years starting at today's year.
func YearOptions(today Date) []int {
	years := make([]int, 0, yearsAhead+1)
	for i := 0; i <= yearsAhead; i++ {
		years = append(years, today.Year+i)
	}
	return years
}

func saturdayOffset(wd time.Weekday) int {
	return (int(wd) + 1) % 7
}
