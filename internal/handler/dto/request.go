package dto

import "github.com/shopspring/decimal"

type DateQuery struct {
	Year  int `form:"year"  binding:"required"`
	Month int `form:"month" binding:"required"`
	Day   int `form:"day"   binding:"required"`
}

type MonthQuery struct {
	Year  int `form:"year"  binding:"required"`
	Month int `form:"month" binding:"required,min=1,max=12"`
}

type PointRequest struct {
	Lat float64 `json:"lat" binding:"required"`
	Lng float64 `json:"lng" binding:"required"`
}

type RouteRequest struct {
	Points []PointRequest `json:"points" binding:"required,min=2,dive"`
}

type DateRequest struct {
	Year  int `json:"year"`
	Month int `json:"month"`
	Day   int `json:"day"`
}

type PlaceRequest struct {
	Lat     float64 `json:"lat"`
	Lng     float64 `json:"lng"`
	Address string  `json:"address"`
	City    string  `json:"city"`
}

// SubmitBookingRequest mirrors the booking form. Field rules are enforced by
// the booking service so that every caller gets the same messages.
type SubmitBookingRequest struct {
	Date           DateRequest     `json:"date"`
	Time           string          `json:"time"`
	Origin         PlaceRequest    `json:"origin"`
	Destinations   []PlaceRequest  `json:"destinations"`
	Passengers     int             `json:"passengers"`
	DriverFood     bool            `json:"driver_food"`
	ReturnTrip     bool            `json:"return_trip"`
	CarStopEnabled bool            `json:"car_stop_enabled"`
	CarStopHours   int             `json:"car_stop_hours"`
	CarTypeID      string          `json:"car_type_id"`
	FirstName      string          `json:"first_name"`
	LastName       string          `json:"last_name"`
	Phone          string          `json:"phone"`
	Fare           decimal.Decimal `json:"fare"`
}
