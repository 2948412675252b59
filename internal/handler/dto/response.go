package dto

import (
	"time"

	"github.com/parsegasht/passenger/internal/domain"
	"github.com/parsegasht/passenger/internal/jalali"
	"github.com/parsegasht/passenger/internal/route"
)

type TodayResponse struct {
	Today    jalali.Date `json:"today"`
	Label    string      `json:"label"`
	Years    []int       `json:"years"`
	Weekdays []string    `json:"weekdays"`
}

type GregorianResponse struct {
	Jalali    jalali.Date          `json:"jalali"`
	Gregorian jalali.GregorianDate `json:"gregorian"`
	Date      string               `json:"date"`
	Label     string               `json:"label"`
}

func ToGregorianResponse(d jalali.Date, g jalali.GregorianDate) GregorianResponse {
	return GregorianResponse{
		Jalali:    d,
		Gregorian: g,
		Date:      g.String(),
		Label:     d.Label(),
	}
}

type RouteResponse struct {
	Points        []PointRequest `json:"points"`
	Distance      float64        `json:"distance"`
	DistanceLabel string         `json:"distance_label"`
	Source        string         `json:"source"`
}

func ToRouteResponse(r *route.Route) RouteResponse {
	points := make([]PointRequest, 0, len(r.Points))
	for _, p := range r.Points {
		points = append(points, PointRequest{Lat: p.Lat, Lng: p.Lng})
	}

	return RouteResponse{
		Points:        points,
		Distance:      r.Distance,
		DistanceLabel: r.Label(),
		Source:        string(r.Source),
	}
}

type BookingResponse struct {
	ID                 string             `json:"id"`
	Status             string             `json:"status"`
	TripDate           jalali.Date        `json:"trip_date"`
	TripDateLabel      string             `json:"trip_date_label"`
	TripStart          string             `json:"trip_start"`
	PassengerCount     int                `json:"passenger_count"`
	DriverFood         bool               `json:"driver_food"`
	ReturnTrip         bool               `json:"return_trip"`
	CarStatus          string             `json:"car_status"`
	CarDisposalMinutes int                `json:"car_disposal_minutes"`
	CarTypeID          string             `json:"car_type_id"`
	FirstName          string             `json:"first_name"`
	LastName           string             `json:"last_name"`
	Phone              string             `json:"phone"`
	TripPoints         []domain.TripPoint `json:"trip_points"`
	OriginCity         string             `json:"origin_city"`
	DestinationCity    string             `json:"destination_city"`
	Fare               string             `json:"fare"`
	CreatedAt          string             `json:"created_at"`
}

func ToBookingResponse(b *domain.Booking) BookingResponse {
	return BookingResponse{
		ID:                 b.ID,
		Status:             string(b.Status),
		TripDate:           b.TripDate,
		TripDateLabel:      b.TripDate.Label(),
		TripStart:          b.TripStartText(),
		PassengerCount:     b.PassengerCount,
		DriverFood:         b.DriverFood,
		ReturnTrip:         b.ReturnTrip,
		CarStatus:          string(b.CarStatus),
		CarDisposalMinutes: b.CarDisposalMinutes,
		CarTypeID:          b.CarTypeID,
		FirstName:          b.FirstName,
		LastName:           b.LastName,
		Phone:              b.Phone,
		TripPoints:         b.Points,
		OriginCity:         b.OriginCity,
		DestinationCity:    b.DestinationCity,
		Fare:               b.Fare.String(),
		CreatedAt:          b.CreatedAt.Format(time.RFC3339),
	}
}

type ErrorResponse struct {
	Error   string `json:"error"`
	Message string `json:"message,omitempty"`
}
