package router

import (
	"net/http"

	"github.com/wb-go/wbf/ginext"
)

type Handler interface {
	Today(c *ginext.Context)
	ToGregorian(c *ginext.Context)
	ToJalali(c *ginext.Context)
	Month(c *ginext.Context)
	BuildRoute(c *ginext.Context)
	SubmitBooking(c *ginext.Context)
	GetBooking(c *ginext.Context)
	ConfirmBooking(c *ginext.Context)
	CancelBooking(c *ginext.Context)
	GetPassengerBookings(c *ginext.Context)
}

func InitRouter(mode string, h Handler, metrics http.Handler, mw ...ginext.HandlerFunc) *ginext.Engine {
	router := ginext.New(mode)
	router.Use(mw...)

	api := router.Group("/api")
	{
		// Calendar
		api.GET("/calendar/today", h.Today)
		api.GET("/calendar/to-gregorian", h.ToGregorian)
		api.GET("/calendar/to-jalali", h.ToJalali)
		api.GET("/calendar/month", h.Month)

		// Routes
		api.POST("/routes", h.BuildRoute)

		// Bookings
		api.POST("/bookings", h.SubmitBooking)
		api.GET("/bookings/:id", h.GetBooking)
		api.POST("/bookings/:id/confirm", h.ConfirmBooking)
		api.POST("/bookings/:id/cancel", h.CancelBooking)

		// Passengers
		api.GET("/passengers/:phone/bookings", h.GetPassengerBookings)
	}

	router.GET("/health", func(c *ginext.Context) {
		c.JSON(http.StatusOK, ginext.H{"status": "ok"})
	})

	router.GET("/metrics", func(c *ginext.Context) {
		metrics.ServeHTTP(c.Writer, c.Request)
	})

	return router
}
