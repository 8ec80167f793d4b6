package router

import (
	"net/http"

	"github.com/wb-go/wbf/ginext"
)

type Handler interface {
	CreateBooking(c *ginext.Context)
	ListBookings(c *ginext.Context)
	GetBooking(c *ginext.Context)
	UpdateBooking(c *ginext.Context)
	UpdateBookingStatus(c *ginext.Context)
	CancelBooking(c *ginext.Context)
	CheckAvailability(c *ginext.Context)
	GetRating(c *ginext.Context)
	SubmitReview(c *ginext.Context)
}

// InitRouter mounts the API behind auth; /health stays public.
func InitRouter(mode string, h Handler, auth ginext.HandlerFunc, mw ...ginext.HandlerFunc) *ginext.Engine {
	router := ginext.New(mode)
	router.Use(mw...)

	api := router.Group("/api")
	api.Use(auth)
	{
		// Bookings
		api.POST("/bookings", h.CreateBooking)
		api.GET("/bookings", h.ListBookings)
		api.GET("/bookings/:id", h.GetBooking)
		api.PATCH("/bookings/:id", h.UpdateBooking)
		api.PATCH("/bookings/:id/status", h.UpdateBookingStatus)
		api.POST("/bookings/:id/cancel", h.CancelBooking)

		// Professionals
		api.GET("/professionals/:id/availability", h.CheckAvailability)
		api.GET("/professionals/:id/rating", h.GetRating)

		// Reviews
		api.POST("/reviews", h.SubmitReview)
	}

	router.GET("/health", func(c *ginext.Context) {
		c.JSON(http.StatusOK, ginext.H{"status": "ok"})
	})

	return router
}
