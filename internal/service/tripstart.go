package service

import (
	"fmt"
	"time"

	"github.com/parsegasht/passenger/internal/domain"
	"github.com/parsegasht/passenger/internal/jalali"
)

// DefaultTripClock is used when the passenger leaves the departure time empty.
const DefaultTripClock = "08:00"

const clockLayout = "15:04"

// TripStart combines a picked Jalali date and an "HH:MM" clock into the trip
// start instant in loc.
//
// The date goes through two checks: the converter must accept it, and the
// resulting Gregorian date must survive a round trip through time.Date.
func TripStart(date jalali.Date, clock string, loc *time.Location) (time.Time, error) {
	if date.IsZero() {
		return time.Time{}, domain.ErrDateRequired
	}

	g, ok := date.Gregorian()
	if !ok {
		return time.Time{}, fmt.Errorf("%w: %s", domain.ErrDateConversion, date)
	}

	day := g.Time(loc)
	if day.Year() != g.Year || int(day.Month()) != g.Month || day.Day() != g.Day {
		return time.Time{}, fmt.Errorf("%w: %s", domain.ErrInvalidDate, g)
	}

	hm, err := time.Parse(clockLayout, clock)
	if err != nil {
		return time.Time{}, fmt.Errorf("%w: time must be HH:MM", domain.ErrValidation)
	}

	return time.Date(g.Year, time.Month(g.Month), g.Day, hm.Hour(), hm.Minute(), 0, 0, loc), nil
}
