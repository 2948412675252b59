package handler

import (
	"context"
	"errors"
	"net/http"

	"github.com/google/uuid"
	"github.com/parsegasht/passenger/internal/domain"
	"github.com/parsegasht/passenger/internal/handler/dto"
	"github.com/parsegasht/passenger/internal/jalali"
	"github.com/parsegasht/passenger/internal/route"
	"github.com/wb-go/wbf/ginext"
)

type CalendarSvc interface {
	Today() jalali.Date
	ToGregorian(d jalali.Date) (jalali.GregorianDate, error)
	ToJalali(g jalali.GregorianDate) (jalali.Date, error)
	Month(year, month int) (jalali.MonthGrid, error)
	YearOptions() []int
}

type RouteSvc interface {
	Route(ctx context.Context, stops []route.Point) (*route.Route, error)
}

type BookingSvc interface {
	Submit(ctx context.Context, in domain.SubmitBookingInput) (*domain.Booking, error)
	Get(ctx context.Context, id string) (*domain.Booking, error)
	Confirm(ctx context.Context, id string) (*domain.Booking, error)
	Cancel(ctx context.Context, id string) (*domain.Booking, error)
	ListByPhone(ctx context.Context, phone string) ([]*domain.Booking, error)
}

type Handler struct {
	calendarService CalendarSvc
	routeService    RouteSvc
	bookingService  BookingSvc
}

func NewHandler(calendarService CalendarSvc, routeService RouteSvc, bookingService BookingSvc) *Handler {
	return &Handler{
		calendarService: calendarService,
		routeService:    routeService,
		bookingService:  bookingService,
	}
}

// Calendar

func (h *Handler) Today(c *ginext.Context) {
	today := h.calendarService.Today()

	c.JSON(http.StatusOK, dto.TodayResponse{
		Today:    today,
		Label:    today.Label(),
		Years:    h.calendarService.YearOptions(),
		Weekdays: jalali.WeekdayHeaders[:],
	})
}

func (h *Handler) ToGregorian(c *ginext.Context) {
	var q dto.DateQuery
	if err := c.ShouldBindQuery(&q); err != nil {
		c.JSON(http.StatusBadRequest, dto.ErrorResponse{Error: err.Error()})
		return
	}

	d := jalali.Date{Year: q.Year, Month: q.Month, Day: q.Day}
	g, err := h.calendarService.ToGregorian(d)
	if err != nil {
		h.handleError(c, err)
		return
	}

	c.JSON(http.StatusOK, dto.ToGregorianResponse(d, g))
}

func (h *Handler) ToJalali(c *ginext.Context) {
	var q dto.DateQuery
	if err := c.ShouldBindQuery(&q); err != nil {
		c.JSON(http.StatusBadRequest, dto.ErrorResponse{Error: err.Error()})
		return
	}

	g := jalali.GregorianDate{Year: q.Year, Month: q.Month, Day: q.Day}
	d, err := h.calendarService.ToJalali(g)
	if err != nil {
		h.handleError(c, err)
		return
	}

	c.JSON(http.StatusOK, dto.ToGregorianResponse(d, g))
}

func (h *Handler) Month(c *ginext.Context) {
	var q dto.MonthQuery
	if err := c.ShouldBindQuery(&q); err != nil {
		c.JSON(http.StatusBadRequest, dto.ErrorResponse{Error: err.Error()})
		return
	}

	grid, err := h.calendarService.Month(q.Year, q.Month)
	if err != nil {
		h.handleError(c, err)
		return
	}

	c.JSON(http.StatusOK, grid)
}

// Routes

func (h *Handler) BuildRoute(c *ginext.Context) {
	var req dto.RouteRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, dto.ErrorResponse{Error: err.Error()})
		return
	}

	stops := make([]route.Point, 0, len(req.Points))
	for _, p := range req.Points {
		stops = append(stops, route.Point{Lat: p.Lat, Lng: p.Lng})
	}

	r, err := h.routeService.Route(c.Request.Context(), stops)
	if err != nil {
		h.handleError(c, err)
		return
	}

	c.JSON(http.StatusOK, dto.ToRouteResponse(r))
}

// Bookings

func (h *Handler) SubmitBooking(c *ginext.Context) {
	var req dto.SubmitBookingRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, dto.ErrorResponse{Error: err.Error()})
		return
	}

	booking, err := h.bookingService.Submit(c.Request.Context(), toSubmitInput(req))
	if err != nil {
		h.handleError(c, err)
		return
	}

	c.JSON(http.StatusCreated, dto.ToBookingResponse(booking))
}

func toSubmitInput(req dto.SubmitBookingRequest) domain.SubmitBookingInput {
	destinations := make([]domain.Place, 0, len(req.Destinations))
	for _, d := range req.Destinations {
		destinations = append(destinations, toPlace(d))
	}

	return domain.SubmitBookingInput{
		Date:           jalali.Date{Year: req.Date.Year, Month: req.Date.Month, Day: req.Date.Day},
		Time:           req.Time,
		Origin:         toPlace(req.Origin),
		Destinations:   destinations,
		Passengers:     req.Passengers,
		DriverFood:     req.DriverFood,
		ReturnTrip:     req.ReturnTrip,
		CarStopEnabled: req.CarStopEnabled,
		CarStopHours:   req.CarStopHours,
		CarTypeID:      req.CarTypeID,
		FirstName:      req.FirstName,
		LastName:       req.LastName,
		Phone:          req.Phone,
		Fare:           req.Fare,
	}
}

func toPlace(p dto.PlaceRequest) domain.Place {
	return domain.Place{Lat: p.Lat, Lng: p.Lng, Address: p.Address, City: p.City}
}

func (h *Handler) GetBooking(c *ginext.Context) {
	id, ok := bookingID(c)
	if !ok {
		return
	}

	booking, err := h.bookingService.Get(c.Request.Context(), id)
	if err != nil {
		h.handleError(c, err)
		return
	}

	c.JSON(http.StatusOK, dto.ToBookingResponse(booking))
}

func (h *Handler) ConfirmBooking(c *ginext.Context) {
	id, ok := bookingID(c)
	if !ok {
		return
	}

	booking, err := h.bookingService.Confirm(c.Request.Context(), id)
	if err != nil {
		h.handleError(c, err)
		return
	}

	c.JSON(http.StatusOK, dto.ToBookingResponse(booking))
}

func (h *Handler) CancelBooking(c *ginext.Context) {
	id, ok := bookingID(c)
	if !ok {
		return
	}

	booking, err := h.bookingService.Cancel(c.Request.Context(), id)
	if err != nil {
		h.handleError(c, err)
		return
	}

	c.JSON(http.StatusOK, dto.ToBookingResponse(booking))
}

func (h *Handler) GetPassengerBookings(c *ginext.Context) {
	bookings, err := h.bookingService.ListByPhone(c.Request.Context(), c.Param("phone"))
	if err != nil {
		h.handleError(c, err)
		return
	}

	resp := make([]dto.BookingResponse, 0, len(bookings))
	for _, b := range bookings {
		resp = append(resp, dto.ToBookingResponse(b))
	}

	c.JSON(http.StatusOK, resp)
}

func bookingID(c *ginext.Context) (string, bool) {
	id := c.Param("id")
	if _, err := uuid.Parse(id); err != nil {
		c.JSON(http.StatusBadRequest, dto.ErrorResponse{Error: "invalid booking id"})
		return "", false
	}
	return id, true
}

func (h *Handler) handleError(c *ginext.Context, err error) {
	c.Set("error", err.Error())
	msg := domain.UserMessage(err)

	switch {
	case errors.Is(err, domain.ErrBookingNotFound):
		c.JSON(http.StatusNotFound, dto.ErrorResponse{Error: err.Error(), Message: msg})

	case errors.Is(err, domain.ErrBookingNotPending),
		errors.Is(err, domain.ErrBookingClosed):
		c.JSON(http.StatusConflict, dto.ErrorResponse{Error: err.Error(), Message: msg})

	case errors.Is(err, domain.ErrValidation),
		errors.Is(err, domain.ErrDateRequired),
		errors.Is(err, domain.ErrDateConversion),
		errors.Is(err, domain.ErrInvalidDate),
		errors.Is(err, domain.ErrDateInPast):
		c.JSON(http.StatusBadRequest, dto.ErrorResponse{Error: err.Error(), Message: msg})

	case errors.Is(err, domain.ErrRouteUnavailable):
		c.JSON(http.StatusBadGateway, dto.ErrorResponse{Error: err.Error(), Message: msg})

	default:
		c.JSON(http.StatusInternalServerError, dto.ErrorResponse{Error: "internal server error", Message: msg})
	}
}
