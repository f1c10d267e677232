package routes

import (
	"github.com/gin-gonic/gin"

	"voltdrive/internal/handlers"
)

// SetupBookingRoutes sets up routes for test drive availability and booking
func SetupBookingRoutes(r *gin.RouterGroup, bookingHandler *handlers.BookingHandler) {
	vehicles := r.Group("/vehicles/:slug")
	{
		vehicles.GET("/availability", bookingHandler.GetAvailableDates)
		vehicles.GET("/availability/slots", bookingHandler.GetDaySchedule)
		vehicles.POST("/bookings", bookingHandler.CreateBooking)
	}

	bookings := r.Group("/bookings")
	{
		bookings.GET("", bookingHandler.ListBookings)
		bookings.GET("/:reference", bookingHandler.GetBooking)
		bookings.POST("/:reference/cancel", bookingHandler.CancelBooking)
	}
}

// SetupInquiryRoutes sets up routes for quote and contact submissions
func SetupInquiryRoutes(r *gin.RouterGroup, inquiryHandler *handlers.InquiryHandler) {
	r.POST("/inquiries", inquiryHandler.CreateInquiry)
	r.GET("/inquiries", inquiryHandler.ListInquiries)
}
