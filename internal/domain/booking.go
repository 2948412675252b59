package domain

import (
	"time"

	"github.com/parsegasht/passenger/internal/jalali"
	"github.com/shopspring/decimal"
)

type BookingStatus string

const (
	BookingStatusPending   BookingStatus = "pending"
	BookingStatusConfirmed BookingStatus = "confirmed"
	BookingStatusCancelled BookingStatus = "cancelled"
	BookingStatusExpired   BookingStatus = "expired"
)

var ActiveStatuses = []BookingStatus{BookingStatusPending, BookingStatusConfirmed}

type CarStatus string

const (
	CarDisposalOn  CarStatus = "car_disposal_turnon"
	CarDisposalOff CarStatus = "car_disposal_turnoff"
)

// TripStartLayout is the trip start format expected by the booking API.
const TripStartLayout = "2006-01-02 15:04:05"

// TripPoint is a stop of the trip. Coordinates are kept as the strings the
// booking API expects.
type TripPoint struct {
	Lat     string `json:"lat"`
	Lon     string `json:"lon"`
	Address string `json:"address"`
	City    string `json:"city"`
}

type Booking struct {
	ID                 string          `json:"id"`
	Status             BookingStatus   `json:"status"`
	TripDate           jalali.Date     `json:"trip_date"`
	TripStart          time.Time       `json:"trip_start"`
	PassengerCount     int             `json:"passenger_count"`
	DriverFood         bool            `json:"driver_food"`
	ReturnTrip         bool            `json:"return_trip"`
	CarStatus          CarStatus       `json:"car_status"`
	CarDisposalMinutes int             `json:"car_disposal_minutes"`
	CarTypeID          string          `json:"car_type_id"`
	FirstName          string          `json:"first_name"`
	LastName           string          `json:"last_name"`
	Phone              string          `json:"phone"`
	Points             []TripPoint     `json:"trip_points"`
	OriginCity         string          `json:"origin_city"`
	DestinationCity    string          `json:"destination_city"`
	Fare               decimal.Decimal `json:"fare"`
	CreatedAt          time.Time       `json:"created_at"`
	UpdatedAt          time.Time       `json:"updated_at"`
}

// TripStartText renders the trip start as "YYYY-MM-DD HH:MM:00".
func (b *Booking) TripStartText() string {
	return b.TripStart.Format(TripStartLayout)
}

func (b *Booking) FullName() string {
	return b.FirstName + " " + b.LastName
}

// Place is a point picked on the map together with its reverse-geocoded
// address.
type Place struct {
	Lat     float64 `validate:"required,latitude"`
	Lng     float64 `validate:"required,longitude"`
	Address string
	City    string
}

type SubmitBookingInput struct {
	Date           jalali.Date
	Time           string
	Origin         Place
	Destinations   []Place `validate:"required,min=1,dive"`
	Passengers     int     `validate:"min=1,max=8"`
	DriverFood     bool
	ReturnTrip     bool
	CarStopEnabled bool
	CarStopHours   int    `validate:"min=0,max=72"`
	CarTypeID      string `validate:"required"`
	FirstName      string `validate:"required"`
	LastName       string `validate:"required"`
	Phone          string `validate:"required,iran_mobile"`
	Fare           decimal.Decimal
}
