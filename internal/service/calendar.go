package service

import (
	"fmt"
	"time"

	"github.com/parsegasht/passenger/internal/domain"
	"github.com/parsegasht/passenger/internal/jalali"
)

// CalendarService answers date picker questions relative to the current day
// in the configured location.
type CalendarService struct {
	loc *time.Location
	now func() time.Time
}

func NewCalendarService(loc *time.Location) *CalendarService {
	return &CalendarService{loc: loc, now: time.Now}
}

func (s *CalendarService) Today() jalali.Date {
	return jalali.FromTime(s.now().In(s.loc))
}

func (s *CalendarService) ToGregorian(d jalali.Date) (jalali.GregorianDate, error) {
	if d.IsZero() {
		return jalali.GregorianDate{}, domain.ErrDateRequired
	}

	g, ok := d.Gregorian()
	if !ok {
		return jalali.GregorianDate{}, fmt.Errorf("%w: %s", domain.ErrDateConversion, d)
	}

	return g, nil
}

func (s *CalendarService) ToJalali(g jalali.GregorianDate) (jalali.Date, error) {
	t := g.Time(time.UTC)
	if t.Year() != g.Year || int(t.Month()) != g.Month || t.Day() != g.Day {
		return jalali.Date{}, fmt.Errorf("%w: %s", domain.ErrInvalidDate, g)
	}

	return g.Jalali(), nil
}

func (s *CalendarService) Month(year, month int) (jalali.MonthGrid, error) {
	grid, ok := jalali.Month(year, month, s.Today())
	if !ok {
		return jalali.MonthGrid{}, fmt.Errorf("%w: no month %d of year %d", domain.ErrValidation, month, year)
	}

	return grid, nil
}

func (s *CalendarService) YearOptions() []int {
	return jalali.YearOptions(s.Today())
}
